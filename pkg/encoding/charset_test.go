package encoding

import (
	"errors"
	"testing"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		charset string
		want    string
	}{
		{"plain utf-8", []byte("o caf\xc3\xa9\n"), Auto, "o café\n"},
		{"utf-8 bom stripped", []byte("\xef\xbb\xbfv 1 2 3\n"), "", "v 1 2 3\n"},
		{"utf-16le bom", []byte{0xFF, 0xFE, 'o', 0, ' ', 0, 'a', 0}, Auto, "o a"},
		{"utf-16be bom", []byte{0xFE, 0xFF, 0, 'g', 0, ' ', 0, 'b'}, Auto, "g b"},
		{"invalid utf-8 falls back", []byte("o caf\xe9"), Auto, "o café"},
		{"explicit latin1", []byte("g \xe9t\xe9"), "latin1", "g été"},
		{"explicit utf8", []byte("v 0 0 0"), "UTF-8", "v 0 0 0"},
		{"euc-kr", []byte{'o', ' ', 0xC7, 0xD1}, "euc-kr", "o 한"},
		{"named utf-16le strips bom", []byte{0xFF, 0xFE, 'o', 0, ' ', 0, 'a', 0}, "utf-16le", "o a"},
		{"named utf-16be strips bom", []byte{0xFE, 0xFF, 0, 'g', 0, ' ', 0, 'b'}, "UTF-16BE", "g b"},
		{"named utf-16le without bom", []byte{'p', 0, ' ', 0, '1', 0}, "utf-16le", "p 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.data, tt.charset)
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			if got != tt.want {
				t.Errorf("Decode = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDecode_UnknownCharset(t *testing.T) {
	_, err := Decode([]byte("v 0 0 0"), "klingon")
	if !errors.Is(err, ErrUnknownCharset) {
		t.Errorf("got %v, want ErrUnknownCharset", err)
	}
}

func TestEncode_RoundTrip(t *testing.T) {
	for _, charset := range []string{"latin1", "euc-kr", "utf-8", Auto} {
		t.Run(charset, func(t *testing.T) {
			text := "o part\ng body\n"
			data, err := Encode(text, charset)
			if err != nil {
				t.Fatalf("Encode: %v", err)
			}
			got, err := Decode(data, charset)
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			if got != text {
				t.Errorf("round trip = %q, want %q", got, text)
			}
		})
	}
}

func TestDetect(t *testing.T) {
	tests := []struct {
		data []byte
		want string
	}{
		{[]byte("v 1 2 3"), "utf-8"},
		{[]byte{0xEF, 0xBB, 0xBF, 'v'}, "utf-8"},
		{[]byte{0xFF, 0xFE, 'v', 0}, "utf-16le"},
		{[]byte{0xFE, 0xFF, 0, 'v'}, "utf-16be"},
		{[]byte{'o', ' ', 0xE9}, "windows-1252"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := Detect(tt.data); got != tt.want {
				t.Errorf("Detect = %q, want %q", got, tt.want)
			}
		})
	}
}
