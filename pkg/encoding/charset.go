// Package encoding converts OBJ source files between their on-disk charset
// and UTF-8.
package encoding

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Auto selects the charset from a byte order mark, falling back to
// Windows-1252 when the data is not valid UTF-8.
const Auto = "auto"

// ErrUnknownCharset is returned for charset names the WHATWG index does not know.
var ErrUnknownCharset = errors.New("unknown charset")

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Decode converts data in the named charset to a UTF-8 string.
func Decode(data []byte, charset string) (string, error) {
	enc, err := resolve(data, charset)
	if err != nil {
		return "", err
	}
	if enc == nil {
		return string(bytes.TrimPrefix(data, utf8BOM)), nil
	}
	out, _, err := transform.Bytes(enc.NewDecoder(), data)
	if err != nil {
		return "", fmt.Errorf("decoding %s: %w", charset, err)
	}
	return string(out), nil
}

// Encode converts UTF-8 text to the named charset. Auto and UTF-8 return the
// text unchanged.
func Encode(text, charset string) ([]byte, error) {
	if isUTF8(charset) || strings.EqualFold(charset, Auto) {
		return []byte(text), nil
	}
	enc, err := Lookup(charset)
	if err != nil {
		return nil, err
	}
	out, _, err := transform.Bytes(enc.NewEncoder(), []byte(text))
	if err != nil {
		return nil, fmt.Errorf("encoding %s: %w", charset, err)
	}
	return out, nil
}

// Lookup returns the encoding registered under name, e.g. "latin1",
// "windows-1252", "euc-kr" or "utf-16le".
func Lookup(name string) (encoding.Encoding, error) {
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCharset, name)
	}
	return enc, nil
}

// Detect names the charset Decode would pick for data in Auto mode.
func Detect(data []byte) string {
	switch {
	case bytes.HasPrefix(data, utf8BOM):
		return "utf-8"
	case bytes.HasPrefix(data, []byte{0xFF, 0xFE}):
		return "utf-16le"
	case bytes.HasPrefix(data, []byte{0xFE, 0xFF}):
		return "utf-16be"
	case utf8.Valid(data):
		return "utf-8"
	default:
		return "windows-1252"
	}
}

// resolve returns nil for plain UTF-8 input. Named UTF-16 charsets strip a
// leading BOM.
func resolve(data []byte, charset string) (encoding.Encoding, error) {
	if charset == "" || strings.EqualFold(charset, Auto) {
		switch Detect(data) {
		case "utf-16le":
			return unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM), nil
		case "utf-16be":
			return unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM), nil
		case "windows-1252":
			return charmap.Windows1252, nil
		}
		return nil, nil
	}
	switch strings.ToLower(charset) {
	case "utf-8", "utf8":
		return nil, nil
	case "utf-16le":
		return unicode.UTF16(unicode.LittleEndian, unicode.UseBOM), nil
	case "utf-16be":
		return unicode.UTF16(unicode.BigEndian, unicode.UseBOM), nil
	}
	return Lookup(charset)
}

func isUTF8(charset string) bool {
	return strings.EqualFold(charset, "utf-8") || strings.EqualFold(charset, "utf8")
}
