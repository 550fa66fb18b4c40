package obj

import (
	"fmt"
	"io"
)

// Parse parses a complete OBJ document. It returns either the whole
// document or the first error encountered, never a partial result.
func Parse(src string) (*ObjectSet, error) {
	set, _, err := ParseWithSourceMap(src)
	return set, err
}

// SourceMap records where the parts of a parsed document were declared.
// Lines are 1-based and parallel the ObjectSet they were parsed with.
type SourceMap struct {
	// ObjectLines holds the line of each object's "o" record, or of the
	// first record of an unnamed leading object.
	ObjectLines []int
	// ElementLines holds, per object, the line of the record that declared
	// each element.
	ElementLines [][]int
}

// ElementLine returns the line element e of object o was declared on.
func (m *SourceMap) ElementLine(o, e int) int {
	return m.ElementLines[o][e]
}

// ParseWithSourceMap is Parse that also reports source lines.
func ParseWithSourceMap(src string) (*ObjectSet, *SourceMap, error) {
	p := &parser{state: newParserState(src), builder: newBuilder()}
	if err := p.run(); err != nil {
		return nil, nil, err
	}
	set, sm := p.builder.finish()
	return &set, &sm, nil
}

// ParseBytes parses a complete OBJ document held in a byte slice.
func ParseBytes(data []byte) (*ObjectSet, error) {
	return Parse(string(data))
}

// ParseReader reads r to the end and parses the result.
func ParseReader(r io.Reader) (*ObjectSet, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return Parse(string(data))
}

type parser struct {
	state    *parserState
	builder  *builder
	line     int       // line of the current record's keyword
	elements []Element // scratch buffer reused across element records
}

func (p *parser) run() error {
	for {
		keyword, ok := p.state.peek()
		if !ok {
			return nil
		}
		p.line = p.state.peekLine()
		if err := p.record(keyword); err != nil {
			return err
		}
	}
}

// record parses one record starting with keyword.
func (p *parser) record(keyword string) error {
	switch keyword {
	case "v":
		return p.vertex()
	case "vt":
		return p.textureVertex()
	case "vn":
		return p.normalVertex()
	case "p", "l", "f":
		return p.element()
	case "g":
		return p.group()
	case "s":
		return p.smoothingGroup()
	case "o":
		return p.object()
	}
	p.state.advance()
	return p.state.error(ErrUnknownKeyword, keyword)
}

func (p *parser) vertex() error {
	s := p.state
	if err := s.expect("v"); err != nil {
		return err
	}
	var v Vertex
	var err error
	if v.X, err = s.parseF64(); err != nil {
		return err
	}
	if v.Y, err = s.parseF64(); err != nil {
		return err
	}
	if v.Z, err = s.parseF64(); err != nil {
		return err
	}
	if !s.atEndOfRecord() {
		if v.W, err = s.parseF64(); err != nil {
			return err
		}
		v.HasW = true
	}
	if err := s.endRecord(); err != nil {
		return err
	}
	p.builder.addVertex(v, p.line)
	return nil
}

func (p *parser) textureVertex() error {
	s := p.state
	if err := s.expect("vt"); err != nil {
		return err
	}
	var vt TextureVertex
	fields := []*float64{&vt.U, &vt.V, &vt.W}
	for i, dst := range fields {
		if i > 0 && s.atEndOfRecord() {
			break
		}
		f, err := s.parseF64()
		if err != nil {
			return err
		}
		*dst = f
		vt.Arity++
	}
	if err := s.endRecord(); err != nil {
		return err
	}
	p.builder.addTextureVertex(vt, p.line)
	return nil
}

func (p *parser) normalVertex() error {
	s := p.state
	if err := s.expect("vn"); err != nil {
		return err
	}
	var vn NormalVertex
	var err error
	if vn.I, err = s.parseF64(); err != nil {
		return err
	}
	if vn.J, err = s.parseF64(); err != nil {
		return err
	}
	if vn.K, err = s.parseF64(); err != nil {
		return err
	}
	if err := s.endRecord(); err != nil {
		return err
	}
	p.builder.addNormalVertex(vn, p.line)
	return nil
}

func (p *parser) element() error {
	var err error
	p.elements, err = parseElement(p.state, p.elements[:0])
	if err != nil {
		return err
	}
	p.builder.addElements(p.elements, p.line)
	return nil
}

func (p *parser) group() error {
	s := p.state
	if err := s.expect("g"); err != nil {
		return err
	}
	var names []GroupName
	for !s.atEndOfRecord() {
		name, err := s.field()
		if err != nil {
			return err
		}
		names = append(names, GroupName(name))
	}
	if len(names) == 0 {
		_, err := s.field()
		return err
	}
	if err := s.endRecord(); err != nil {
		return err
	}
	p.builder.setGroups(names, p.line)
	return nil
}

// smoothingGroup handles "s off" and "s N". "s 0" is the same as "s off".
func (p *parser) smoothingGroup() error {
	s := p.state
	if err := s.expect("s"); err != nil {
		return err
	}
	group := SmoothingOff
	text, ok := s.peek()
	if !ok || text != "off" {
		n, err := s.parseU32()
		if err != nil {
			return err
		}
		group = SmoothingGroup(n)
	} else {
		s.advance()
	}
	if err := s.endRecord(); err != nil {
		return err
	}
	p.builder.setSmoothingGroup(group, p.line)
	return nil
}

func (p *parser) object() error {
	s := p.state
	if err := s.expect("o"); err != nil {
		return err
	}
	name, err := s.field()
	if err != nil {
		return err
	}
	if err := s.endRecord(); err != nil {
		return err
	}
	p.builder.startObject(name, p.line)
	return nil
}
