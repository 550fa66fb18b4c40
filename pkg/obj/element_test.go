package obj

import (
	"errors"
	"reflect"
	"testing"
)

func parseElements(t *testing.T, src string) ([]Element, error) {
	t.Helper()
	return parseElement(newParserState(src), nil)
}

func TestParseVTNIndex(t *testing.T) {
	tests := []struct {
		text   string
		want   VTNIndex
		wantOK bool
	}{
		{"12", V(12), true},
		{"12/34", VT(12, 34), true},
		{"12//56", VN(12, 56), true},
		{"12/34/56", VTN(12, 34, 56), true},
		{"12/", VTNIndex{}, false},
		{"/34", VTNIndex{}, false},
		{"abc", VTNIndex{}, false},
		{"0", VTNIndex{}, false},
		{"-3", VTNIndex{}, false},
		{"1/2/", VTNIndex{}, false},
		{"//3", VTNIndex{}, false},
		{"1///3", VTNIndex{}, false},
		{"1/2/3/4", VTNIndex{}, false},
		{"1/x/3", VTNIndex{}, false},
		{"4294967296", VTNIndex{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, ok := parseVTNIndex(tt.text)
			if ok != tt.wantOK {
				t.Fatalf("parseVTNIndex(%q) ok = %v, want %v", tt.text, ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("parseVTNIndex(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestParseElement_Points(t *testing.T) {
	got, err := parseElements(t, "p 1 2 3 4 \n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []Element{Point{V(1)}, Point{V(2)}, Point{V(3)}, Point{V(4)}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestParseElement_Lines(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []Element
	}{
		{
			name: "vertex indices",
			src:  "l 297 38 118 108 \n",
			want: []Element{
				Line{V(297), V(38)},
				Line{V(38), V(118)},
				Line{V(118), V(108)},
			},
		},
		{
			name: "single segment",
			src:  "l 297/38 118/108 \n",
			want: []Element{Line{VT(297, 38), VT(118, 108)}},
		},
		{
			name: "texture indices",
			src:  "l 297/38 118/108 324/398 \n",
			want: []Element{
				Line{VT(297, 38), VT(118, 108)},
				Line{VT(118, 108), VT(324, 398)},
			},
		},
		{
			name: "no trailing newline",
			src:  "l 1 2",
			want: []Element{Line{V(1), V(2)}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseElements(t, tt.src)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseElement_Faces(t *testing.T) {
	got, err := parseElements(t, "f 1/1/1 2/2/2 3//3 4\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []Element{Face{Corners: []VTNIndex{VTN(1, 1, 1), VTN(2, 2, 2), VN(3, 3), V(4)}}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestParseElement_StopsAtRecordEnd(t *testing.T) {
	s := newParserState("p 1 2\nv 0 0 0\n")
	got, err := parseElement(s, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d elements, want 2", len(got))
	}
	if next, _ := s.peek(); next != "v" {
		t.Errorf("next token = %q, want v", next)
	}
}

func TestParseElement_Errors(t *testing.T) {
	tests := []struct {
		name      string
		src       string
		wantKind  error
		wantLine  int
		wantFound string
	}{
		{"line with one index", "l 5\n", ErrInsufficientIndices, 1, "l"},
		{"face with two indices", "f 1 2\n", ErrInsufficientIndices, 1, "f"},
		{"empty point record", "p\n", ErrInsufficientIndices, 1, "p"},
		{"bad index syntax", "f 1 2/ 3\n", ErrInvalidIndexSyntax, 1, "2/"},
		{"zero index", "p 0\n", ErrInvalidIndexSyntax, 1, "0"},
		{"stray word", "f 1 2 three\n", ErrExpectedInteger, 1, "three"},
		{"continued record", "f 1 \\\n 2 x\n", ErrExpectedInteger, 2, "x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseElements(t, tt.src)
			if !errors.Is(err, tt.wantKind) {
				t.Fatalf("got %v, want %v", err, tt.wantKind)
			}
			var pe *ParseError
			errors.As(err, &pe)
			if pe.Line != tt.wantLine {
				t.Errorf("line = %d, want %d", pe.Line, tt.wantLine)
			}
			if pe.Found != tt.wantFound {
				t.Errorf("found = %q, want %q", pe.Found, tt.wantFound)
			}
		})
	}
}

func TestParseElement_InsufficientIndicesDetail(t *testing.T) {
	_, err := parseElements(t, "f 1 2\n")
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("got %v, want *ParseError", err)
	}
	if pe.Element != KindFace || pe.Count != 2 || pe.Minimum != 3 {
		t.Errorf("got kind=%v count=%d minimum=%d, want face 2 3", pe.Element, pe.Count, pe.Minimum)
	}
}
