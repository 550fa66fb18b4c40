package obj

import (
	"bytes"
	"io"
	"slices"
	"strconv"
	"strings"
)

// Compositor writes an ObjectSet back to OBJ text. Parsing the output
// yields a document equal to the input for every document Parse can
// produce.
type Compositor struct {
	// Fold merges runs of points into one "p" record and chains of lines
	// sharing endpoints into one "l" record.
	Fold bool
	// Header is written as leading "#" comment lines when non-empty.
	Header string
}

// DefaultCompositor folds elements and writes no header.
func DefaultCompositor() Compositor {
	return Compositor{Fold: true}
}

// Compose returns the canonical text of set using the default compositor.
func Compose(set *ObjectSet) string {
	return DefaultCompositor().Compose(set)
}

// Compose returns the text of set.
func (c Compositor) Compose(set *ObjectSet) string {
	var buf bytes.Buffer
	c.compose(&buf, set)
	return buf.String()
}

// WriteTo writes the text of set to w.
func (c Compositor) WriteTo(w io.Writer, set *ObjectSet) (int64, error) {
	var buf bytes.Buffer
	c.compose(&buf, set)
	return buf.WriteTo(w)
}

var headerBreaks = strings.NewReplacer("\r\n", "\n", "\r", "\n")

func (c Compositor) compose(buf *bytes.Buffer, set *ObjectSet) {
	if c.Header != "" {
		for _, line := range strings.Split(headerBreaks.Replace(c.Header), "\n") {
			buf.WriteString("# ")
			buf.WriteString(line)
			buf.WriteByte('\n')
		}
	}
	for i := range set.Objects {
		c.composeObject(buf, &set.Objects[i], i == 0)
	}
}

func (c Compositor) composeObject(buf *bytes.Buffer, o *Object, leading bool) {
	switch {
	case o.Name != "":
		buf.WriteString("o ")
		buf.WriteString(o.Name)
		buf.WriteByte('\n')
	case leading && isEmptyObject(o):
		// An unnamed object only exists if some record preceded the first
		// "o"; write one that changes nothing.
		buf.WriteString("g default\n")
	}

	for _, v := range o.Vertices {
		buf.WriteString("v ")
		writeFloats(buf, v.X, v.Y, v.Z)
		if v.HasW {
			buf.WriteByte(' ')
			writeFloats(buf, v.W)
		}
		buf.WriteByte('\n')
	}
	for _, vt := range o.TextureVertices {
		buf.WriteString("vt ")
		writeFloats(buf, []float64{vt.U, vt.V, vt.W}[:clampArity(vt.Arity)]...)
		buf.WriteByte('\n')
	}
	for _, vn := range o.NormalVertices {
		buf.WriteString("vn ")
		writeFloats(buf, vn.I, vn.J, vn.K)
		buf.WriteByte('\n')
	}

	c.composeElements(buf, o)
}

// composeElements replays elements, emitting "g" and "s" records whenever
// the context differs from that of the previous element.
func (c Compositor) composeElements(buf *bytes.Buffer, o *Object) {
	groups := []GroupName{DefaultGroup}
	smoothing := SmoothingOff

	for i := 0; i < len(o.Elements); {
		g, s := elementContext(o, i)
		if !slices.Equal(g, groups) {
			buf.WriteString("g")
			for _, name := range g {
				buf.WriteByte(' ')
				buf.WriteString(string(name))
			}
			buf.WriteByte('\n')
			groups = g
		}
		if s != smoothing {
			buf.WriteString("s ")
			buf.WriteString(s.String())
			buf.WriteByte('\n')
			smoothing = s
		}

		n := c.run(o, i)
		writeElements(buf, o.Elements[i:i+n])
		i += n
	}
}

// run returns how many elements starting at i fit in a single record.
func (c Compositor) run(o *Object, i int) int {
	if !c.Fold {
		return 1
	}
	n := 1
	for j := i + 1; j < len(o.Elements); j++ {
		if !foldable(o.Elements[j-1], o.Elements[j]) || !sameContext(o, i, j) {
			break
		}
		n++
	}
	return n
}

func foldable(prev, next Element) bool {
	switch p := prev.(type) {
	case Point:
		_, ok := next.(Point)
		return ok
	case Line:
		n, ok := next.(Line)
		return ok && n.From == p.To
	}
	return false
}

// writeElements writes a run of elements of one kind as a single record.
func writeElements(buf *bytes.Buffer, run []Element) {
	switch first := run[0].(type) {
	case Point:
		buf.WriteByte('p')
		for _, e := range run {
			writeIndex(buf, e.(Point).Index)
		}
	case Line:
		buf.WriteByte('l')
		writeIndex(buf, first.From)
		for _, e := range run {
			writeIndex(buf, e.(Line).To)
		}
	case Face:
		buf.WriteByte('f')
		for _, idx := range first.Corners {
			writeIndex(buf, idx)
		}
	}
	buf.WriteByte('\n')
}

func writeIndex(buf *bytes.Buffer, idx VTNIndex) {
	buf.WriteByte(' ')
	buf.WriteString(idx.String())
}

func writeFloats(buf *bytes.Buffer, fs ...float64) {
	for i, f := range fs {
		if i > 0 {
			buf.WriteByte(' ')
		}
		buf.WriteString(strconv.FormatFloat(f, 'g', -1, 64))
	}
}

func clampArity(n int) int {
	return max(1, min(n, 3))
}

// elementContext resolves the shape entry of element i. Elements without
// an entry get the default context.
func elementContext(o *Object, i int) ([]GroupName, SmoothingGroup) {
	if i >= len(o.ShapeEntries) {
		return []GroupName{DefaultGroup}, SmoothingOff
	}
	return o.GroupsOf(i), o.SmoothingGroupOf(i)
}

func sameContext(o *Object, i, j int) bool {
	gi, si := elementContext(o, i)
	gj, sj := elementContext(o, j)
	return si == sj && slices.Equal(gi, gj)
}

func isEmptyObject(o *Object) bool {
	return len(o.Vertices) == 0 && len(o.TextureVertices) == 0 &&
		len(o.NormalVertices) == 0 && len(o.Elements) == 0
}
