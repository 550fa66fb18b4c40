// Package obj reads and writes line-oriented Wavefront OBJ geometry.
package obj

import (
	"fmt"
	"strconv"
)

// IndexKind tells which pools a VTNIndex references.
type IndexKind uint8

const (
	IndexV   IndexKind = iota // v
	IndexVT                   // v/vt
	IndexVN                   // v//vn
	IndexVTN                  // v/vt/vn
)

// VTNIndex is a reference into the vertex, texture-vertex and normal-vertex
// pools of an object. Indices are 1-based. VT and VN are only meaningful
// when Kind says they were present in the source.
type VTNIndex struct {
	Kind IndexKind
	V    uint32
	VT   uint32
	VN   uint32
}

// V returns a vertex-only index.
func V(v uint32) VTNIndex { return VTNIndex{Kind: IndexV, V: v} }

// VT returns a vertex/texture index.
func VT(v, vt uint32) VTNIndex { return VTNIndex{Kind: IndexVT, V: v, VT: vt} }

// VN returns a vertex//normal index.
func VN(v, vn uint32) VTNIndex { return VTNIndex{Kind: IndexVN, V: v, VN: vn} }

// VTN returns a vertex/texture/normal index.
func VTN(v, vt, vn uint32) VTNIndex { return VTNIndex{Kind: IndexVTN, V: v, VT: vt, VN: vn} }

// HasTexture reports whether the index carries a texture-vertex reference.
func (i VTNIndex) HasTexture() bool { return i.Kind == IndexVT || i.Kind == IndexVTN }

// HasNormal reports whether the index carries a normal-vertex reference.
func (i VTNIndex) HasNormal() bool { return i.Kind == IndexVN || i.Kind == IndexVTN }

// String returns the index in record syntax.
func (i VTNIndex) String() string {
	switch i.Kind {
	case IndexVT:
		return fmt.Sprintf("%d/%d", i.V, i.VT)
	case IndexVN:
		return fmt.Sprintf("%d//%d", i.V, i.VN)
	case IndexVTN:
		return fmt.Sprintf("%d/%d/%d", i.V, i.VT, i.VN)
	default:
		return strconv.FormatUint(uint64(i.V), 10)
	}
}

// Vertex is a geometric vertex. W is only meaningful when HasW is set.
type Vertex struct {
	X, Y, Z, W float64
	HasW       bool
}

// Weight returns W, or 1 when the record omitted it.
func (v Vertex) Weight() float64 {
	if !v.HasW {
		return 1.0
	}
	return v.W
}

// TextureVertex is a texture coordinate with 1 to 3 components.
// Arity records how many components the source record carried.
type TextureVertex struct {
	U, V, W float64
	Arity   int
}

// NormalVertex is a vertex normal.
type NormalVertex struct {
	I, J, K float64
}

// ElementKind identifies the primitive an Element describes.
type ElementKind uint8

const (
	KindPoint ElementKind = iota
	KindLine
	KindFace
)

// String returns the record keyword for the kind.
func (k ElementKind) String() string {
	switch k {
	case KindPoint:
		return "point"
	case KindLine:
		return "line"
	case KindFace:
		return "face"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(k))
	}
}

// Element is one geometric primitive. The set of implementations is closed:
// Point, Line and Face.
type Element interface {
	Kind() ElementKind
	// Indices returns the index references in declaration order.
	Indices() []VTNIndex
	isElement()
}

// Point is a single point primitive.
type Point struct {
	Index VTNIndex
}

// Line is one segment of a polyline.
type Line struct {
	From, To VTNIndex
}

// Face is a polygon with at least three corners.
type Face struct {
	Corners []VTNIndex
}

func (Point) Kind() ElementKind { return KindPoint }
func (Line) Kind() ElementKind  { return KindLine }
func (Face) Kind() ElementKind  { return KindFace }

func (p Point) Indices() []VTNIndex { return []VTNIndex{p.Index} }
func (l Line) Indices() []VTNIndex  { return []VTNIndex{l.From, l.To} }
func (f Face) Indices() []VTNIndex  { return f.Corners }

func (Point) isElement() {}
func (Line) isElement()  {}
func (Face) isElement()  {}

// GroupName names a group elements can belong to.
type GroupName string

// DefaultGroup is the group active at the start of every object.
const DefaultGroup GroupName = "default"

// SmoothingGroup is a smoothing group id. Zero means smoothing is off.
type SmoothingGroup uint32

// SmoothingOff disables smoothing.
const SmoothingOff SmoothingGroup = 0

// IsOff reports whether smoothing is disabled.
func (s SmoothingGroup) IsOff() bool { return s == SmoothingOff }

// String returns "off" or the numeric id.
func (s SmoothingGroup) String() string {
	if s.IsOff() {
		return "off"
	}
	return strconv.FormatUint(uint64(s), 10)
}

// ShapeEntry captures the grouping context of one element. Element, Groups
// and SmoothingGroup are 0-based positions into the owning Object's
// Elements, Groups and SmoothingGroups slices.
type ShapeEntry struct {
	Element        int
	Groups         []int
	SmoothingGroup int
}

// Object is one named section of a file. The leading object of a file has
// an empty name when records precede the first "o" record.
type Object struct {
	Name            string
	Vertices        []Vertex
	TextureVertices []TextureVertex
	NormalVertices  []NormalVertex
	Groups          []GroupName
	SmoothingGroups []SmoothingGroup
	Elements        []Element
	ShapeEntries    []ShapeEntry
}

// ObjectStats summarizes the pool sizes of an object.
type ObjectStats struct {
	Vertices        int
	TextureVertices int
	NormalVertices  int
	Points          int
	Lines           int
	Faces           int
	Groups          int
	SmoothingGroups int
}

// Stats returns pool and element counts, which consumers use to validate
// index references.
func (o *Object) Stats() ObjectStats {
	s := ObjectStats{
		Vertices:        len(o.Vertices),
		TextureVertices: len(o.TextureVertices),
		NormalVertices:  len(o.NormalVertices),
		Groups:          len(o.Groups),
		SmoothingGroups: len(o.SmoothingGroups),
	}
	for _, e := range o.Elements {
		switch e.(type) {
		case Point:
			s.Points++
		case Line:
			s.Lines++
		case Face:
			s.Faces++
		}
	}
	return s
}

// GroupsOf returns the group names of the element at position i.
func (o *Object) GroupsOf(i int) []GroupName {
	entry := o.ShapeEntries[i]
	names := make([]GroupName, len(entry.Groups))
	for j, g := range entry.Groups {
		names[j] = o.Groups[g]
	}
	return names
}

// SmoothingGroupOf returns the smoothing group of the element at position i.
func (o *Object) SmoothingGroupOf(i int) SmoothingGroup {
	return o.SmoothingGroups[o.ShapeEntries[i].SmoothingGroup]
}

// ObjectSet is a parsed document: its objects in source order.
type ObjectSet struct {
	Objects []Object
}

// Len returns the number of objects.
func (s *ObjectSet) Len() int { return len(s.Objects) }

// Lookup returns the first object with the given name.
func (s *ObjectSet) Lookup(name string) (*Object, bool) {
	for i := range s.Objects {
		if s.Objects[i].Name == name {
			return &s.Objects[i], true
		}
	}
	return nil, false
}
