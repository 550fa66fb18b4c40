package report

import (
	"errors"
	"strings"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/objkit/internal/source"
	"github.com/Faultbox/objkit/pkg/math"
	"github.com/Faultbox/objkit/pkg/obj"
)

func init() {
	pterm.DisableStyling()
}

func document(t *testing.T, src string) *source.Document {
	t.Helper()
	set, err := obj.Parse(src)
	require.NoError(t, err)
	return &source.Document{Path: "model.obj", Charset: "utf-8", Set: set, Problems: obj.Validate(set)}
}

func TestBounds(t *testing.T) {
	doc := document(t, "v -1 0 2\nv 3 4 -5\nv 0 0 0 1\n")
	b := Bounds(&doc.Set.Objects[0])
	assert.Equal(t, math.Vec3{X: -1, Y: 0, Z: -5}, b.Min)
	assert.Equal(t, math.Vec3{X: 3, Y: 4, Z: 2}, b.Max)

	empty := document(t, "o nothing\n")
	assert.True(t, Bounds(&empty.Set.Objects[0]).Empty())
}

func TestObjectTable(t *testing.T) {
	doc := document(t, "v 0 0 0\nv 1 1 1\no wheel\nvn 0 1 0\nf 1 2 3\nl 1 2 3\n")
	out, err := ObjectTable(doc.Set)
	require.NoError(t, err)

	row := func(prefix string) string {
		for _, line := range strings.Split(out, "\n") {
			if strings.HasPrefix(strings.TrimSpace(line), prefix) {
				return line
			}
		}
		t.Fatalf("no row starting with %q in:\n%s", prefix, out)
		return ""
	}
	assert.Contains(t, row("Object"), "Bounds")
	assert.Contains(t, row("(unnamed)"), "[0 0 0] - [1 1 1]")
	assert.Contains(t, row("wheel"), "empty")
}

func TestSummary(t *testing.T) {
	doc := document(t, "o a\nv 0 0 0\n")
	out, err := Summary(doc)
	require.NoError(t, err)
	assert.Contains(t, out, "model.obj (utf-8, 1 objects)")
	assert.Contains(t, out, "a")
}

func TestProblems(t *testing.T) {
	doc := document(t, "o quad\nv 0 0 0\nf 1 2 3\n")
	out := Problems(doc)
	assert.Contains(t, out, "model.obj: quad element 0: vertex index 2 out of range (pool has 1)")
	assert.Contains(t, out, "vertex index 3")
	assert.Equal(t, "", Problems(document(t, "v 0 0 0\np 1\n")))
}

func TestVerdicts(t *testing.T) {
	assert.Contains(t, Success(document(t, "o a\n")), "model.obj: 1 object")
	assert.Contains(t, Success(document(t, "o a\no b\n")), "model.obj: 2 objects")
	assert.Contains(t, Failure(errors.New("boom")), "boom")
}
