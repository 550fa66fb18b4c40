package obj

import "slices"

// builder accumulates the object currently being parsed. It is private to
// one parse call; finished objects are handed to the caller and never
// touched again.
type builder struct {
	current   Object
	touched   bool // the current object received a record or was named by "o"
	groups    []GroupName
	smoothing SmoothingGroup

	// The context interned for the most recent element, reused while the
	// active groups and smoothing group stay unchanged.
	lastGroups    []int
	lastSmoothing int
	contextValid  bool

	objects []Object

	// Source lines, parallel to objects and their elements.
	objectLine   int
	elementLines []int
	sourceMap    SourceMap
}

func newBuilder() *builder {
	b := &builder{}
	b.resetContext()
	return b
}

func (b *builder) resetContext() {
	b.groups = []GroupName{DefaultGroup}
	b.smoothing = SmoothingOff
	b.contextValid = false
}

// startObject finalizes the current object, if it exists, and opens a new
// one named name declared on line.
func (b *builder) startObject(name string, line int) {
	if b.touched {
		b.objects = append(b.objects, b.finalizeObject())
	}
	b.current = Object{Name: name}
	b.touched = true
	b.objectLine = line
	b.resetContext()
}

// finalizeObject returns the current object and clears the scratch state.
func (b *builder) finalizeObject() Object {
	obj := b.current
	b.sourceMap.ObjectLines = append(b.sourceMap.ObjectLines, b.objectLine)
	b.sourceMap.ElementLines = append(b.sourceMap.ElementLines, b.elementLines)
	b.current = Object{}
	b.elementLines = nil
	b.touched = false
	return obj
}

// finish returns every object, including the current one when touched.
func (b *builder) finish() (ObjectSet, SourceMap) {
	if b.touched {
		b.objects = append(b.objects, b.finalizeObject())
	}
	return ObjectSet{Objects: b.objects}, b.sourceMap
}

// touch marks the current object as existing; line is where an implicit
// object starts.
func (b *builder) touch(line int) {
	if !b.touched {
		b.touched = true
		b.objectLine = line
	}
}

func (b *builder) addVertex(v Vertex, line int) {
	b.touch(line)
	b.current.Vertices = append(b.current.Vertices, v)
}

func (b *builder) addTextureVertex(vt TextureVertex, line int) {
	b.touch(line)
	b.current.TextureVertices = append(b.current.TextureVertices, vt)
}

func (b *builder) addNormalVertex(vn NormalVertex, line int) {
	b.touch(line)
	b.current.NormalVertices = append(b.current.NormalVertices, vn)
}

func (b *builder) setGroups(names []GroupName, line int) {
	b.touch(line)
	b.groups = names
	b.contextValid = false
}

func (b *builder) setSmoothingGroup(s SmoothingGroup, line int) {
	b.touch(line)
	b.smoothing = s
	b.contextValid = false
}

// addElements appends elements with one shape entry each, all sharing the
// active group set and smoothing group of the record on line.
func (b *builder) addElements(elements []Element, line int) {
	b.touch(line)
	if len(elements) == 0 {
		return
	}
	groups, smoothing := b.context()
	for _, e := range elements {
		b.current.ShapeEntries = append(b.current.ShapeEntries, ShapeEntry{
			Element:        len(b.current.Elements),
			Groups:         groups,
			SmoothingGroup: smoothing,
		})
		b.current.Elements = append(b.current.Elements, e)
		b.elementLines = append(b.elementLines, line)
	}
}

// context interns the active groups and smoothing group into the current
// object's tables. Names enter the tables when the first element using them
// is declared, so a group that never receives an element leaves no trace.
func (b *builder) context() ([]int, int) {
	if b.contextValid {
		return b.lastGroups, b.lastSmoothing
	}
	groups := make([]int, len(b.groups))
	for i, name := range b.groups {
		pos := slices.Index(b.current.Groups, name)
		if pos < 0 {
			pos = len(b.current.Groups)
			b.current.Groups = append(b.current.Groups, name)
		}
		groups[i] = pos
	}
	smoothing := slices.Index(b.current.SmoothingGroups, b.smoothing)
	if smoothing < 0 {
		smoothing = len(b.current.SmoothingGroups)
		b.current.SmoothingGroups = append(b.current.SmoothingGroups, b.smoothing)
	}
	b.lastGroups, b.lastSmoothing, b.contextValid = groups, smoothing, true
	return groups, smoothing
}
