package obj

import (
	"reflect"
	"testing"
)

func TestBuilder_UntouchedLeadingObjectIsDropped(t *testing.T) {
	b := newBuilder()
	b.startObject("first", 1)
	b.addVertex(Vertex{X: 1}, 2)
	set, _ := b.finish()

	if len(set.Objects) != 1 || set.Objects[0].Name != "first" {
		t.Fatalf("got objects %+v, want only first", set.Objects)
	}
}

func TestBuilder_FinalizeClearsScratch(t *testing.T) {
	b := newBuilder()
	b.addNormalVertex(NormalVertex{K: 1}, 1)
	b.setGroups([]GroupName{"a"}, 2)
	b.addElements([]Element{Point{V(1)}}, 3)
	b.startObject("next", 4)

	if len(b.objects) != 1 {
		t.Fatalf("got %d finished objects, want 1", len(b.objects))
	}
	if len(b.current.NormalVertices) != 0 || len(b.current.Elements) != 0 {
		t.Errorf("new object inherited state: %+v", b.current)
	}
	if !reflect.DeepEqual(b.groups, []GroupName{DefaultGroup}) || b.smoothing != SmoothingOff {
		t.Errorf("context not reset: groups=%v smoothing=%v", b.groups, b.smoothing)
	}
}

func TestBuilder_ShapeEntriesTrackContext(t *testing.T) {
	b := newBuilder()
	b.addElements([]Element{Point{V(1)}, Point{V(2)}}, 1)
	b.setSmoothingGroup(3, 2)
	b.setGroups([]GroupName{"x", "default"}, 3)
	b.addElements([]Element{Line{V(1), V(2)}}, 4)
	set, _ := b.finish()

	o := set.Objects[0]
	want := []ShapeEntry{
		{Element: 0, Groups: []int{0}, SmoothingGroup: 0},
		{Element: 1, Groups: []int{0}, SmoothingGroup: 0},
		{Element: 2, Groups: []int{1, 0}, SmoothingGroup: 1},
	}
	if !reflect.DeepEqual(o.ShapeEntries, want) {
		t.Errorf("shape entries = %+v, want %+v", o.ShapeEntries, want)
	}
	if !reflect.DeepEqual(o.Groups, []GroupName{"default", "x"}) {
		t.Errorf("groups = %v", o.Groups)
	}
	if !reflect.DeepEqual(o.SmoothingGroups, []SmoothingGroup{SmoothingOff, 3}) {
		t.Errorf("smoothing groups = %v", o.SmoothingGroups)
	}
}

func TestBuilder_SourceMap(t *testing.T) {
	b := newBuilder()
	b.addVertex(Vertex{}, 3)
	b.addElements([]Element{Point{V(1)}, Point{V(1)}}, 5)
	b.startObject("second", 7)
	b.addElements([]Element{Face{Corners: []VTNIndex{V(1), V(1), V(1)}}}, 9)
	set, sm := b.finish()

	if len(set.Objects) != 2 {
		t.Fatalf("got %d objects, want 2", len(set.Objects))
	}
	if !reflect.DeepEqual(sm.ObjectLines, []int{3, 7}) {
		t.Errorf("object lines = %v, want [3 7]", sm.ObjectLines)
	}
	if !reflect.DeepEqual(sm.ElementLines, [][]int{{5, 5}, {9}}) {
		t.Errorf("element lines = %v, want [[5 5] [9]]", sm.ElementLines)
	}
}
