package obj

import (
	"strconv"
	"strings"
)

// Minimum index counts per element record.
const (
	minPointIndices = 1
	minLineIndices  = 2
	minFaceIndices  = 3
)

// parseElement decodes one p, l or f record and appends the resulting
// elements to dst.
func parseElement(s *parserState, dst []Element) ([]Element, error) {
	keyword, _ := s.peek()
	switch keyword {
	case "p":
		return parsePoint(s, dst)
	case "l":
		return parseLine(s, dst)
	case "f":
		return parseFace(s, dst)
	}
	tok, _ := s.advance()
	e := s.error(ErrExpectedKeyword, tok.text)
	e.Expected = "p, l or f"
	return dst, e
}

// parsePoint emits one Point per index: "p 1 2 3" is three points.
func parsePoint(s *parserState, dst []Element) ([]Element, error) {
	indices, err := elementIndices(s, "p", KindPoint, minPointIndices)
	if err != nil {
		return dst, err
	}
	for _, idx := range indices {
		dst = append(dst, Point{Index: idx})
	}
	return dst, nil
}

// parseLine folds consecutive index pairs into segments: "l 1 2 3" is
// Line(1,2) followed by Line(2,3).
func parseLine(s *parserState, dst []Element) ([]Element, error) {
	indices, err := elementIndices(s, "l", KindLine, minLineIndices)
	if err != nil {
		return dst, err
	}
	for i := 1; i < len(indices); i++ {
		dst = append(dst, Line{From: indices[i-1], To: indices[i]})
	}
	return dst, nil
}

func parseFace(s *parserState, dst []Element) ([]Element, error) {
	indices, err := elementIndices(s, "f", KindFace, minFaceIndices)
	if err != nil {
		return dst, err
	}
	return append(dst, Face{Corners: indices}), nil
}

// elementIndices consumes the keyword and every index up to the end of the
// record.
func elementIndices(s *parserState, keyword string, kind ElementKind, minimum int) ([]VTNIndex, error) {
	if err := s.expect(keyword); err != nil {
		return nil, err
	}

	var indices []VTNIndex
	for {
		tok, ok := s.advance()
		if !ok || tok.isNewline() {
			break
		}
		if !indexShaped(tok.text) {
			return nil, s.error(ErrExpectedInteger, tok.text)
		}
		idx, ok := parseVTNIndex(tok.text)
		if !ok {
			return nil, s.error(ErrInvalidIndexSyntax, tok.text)
		}
		indices = append(indices, idx)
	}

	if len(indices) < minimum {
		e := s.error(ErrInsufficientIndices, keyword)
		e.Element = kind
		e.Count = len(indices)
		e.Minimum = minimum
		return nil, e
	}
	return indices, nil
}

// indexShaped reports whether a token is meant as an index reference. Any
// other word inside an element record is a stray token, not a bad index.
func indexShaped(text string) bool {
	switch ch := text[0]; {
	case ch >= '0' && ch <= '9':
		return true
	case ch == '/' || ch == '-' || ch == '+':
		return true
	}
	return false
}

// parseVTNIndex decodes v, v/vt, v//vn or v/vt/vn. Every component must be
// a positive integer.
func parseVTNIndex(text string) (VTNIndex, bool) {
	parts := strings.Split(text, "/")
	nums := make([]uint32, len(parts))
	for i, p := range parts {
		if p == "" {
			continue
		}
		n, ok := parseIndexComponent(p)
		if !ok {
			return VTNIndex{}, false
		}
		nums[i] = n
	}

	switch len(parts) {
	case 1:
		if parts[0] != "" {
			return V(nums[0]), true
		}
	case 2:
		if parts[0] != "" && parts[1] != "" {
			return VT(nums[0], nums[1]), true
		}
	case 3:
		if parts[0] == "" || parts[2] == "" {
			break
		}
		if parts[1] == "" {
			return VN(nums[0], nums[2]), true
		}
		return VTN(nums[0], nums[1], nums[2]), true
	}
	return VTNIndex{}, false
}

func parseIndexComponent(p string) (uint32, bool) {
	n, err := strconv.ParseUint(p, 10, 32)
	if err != nil || n == 0 {
		return 0, false
	}
	return uint32(n), true
}
