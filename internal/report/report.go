// Package report renders human-readable summaries of parsed documents.
package report

import (
	"fmt"
	"strconv"

	"github.com/pterm/pterm"

	"github.com/Faultbox/objkit/internal/source"
	"github.com/Faultbox/objkit/pkg/math"
	"github.com/Faultbox/objkit/pkg/obj"
)

// unnamed is how an unnamed leading object is shown.
const unnamed = "(unnamed)"

// Bounds returns the bounding box of an object's vertex pool.
func Bounds(o *obj.Object) math.Bounds {
	var b math.Bounds
	for _, v := range o.Vertices {
		b.Extend(math.Vec3{X: v.X, Y: v.Y, Z: v.Z})
	}
	return b
}

// ObjectTable renders one row per object with its pool sizes and bounds.
func ObjectTable(set *obj.ObjectSet) (string, error) {
	data := pterm.TableData{
		{"Object", "v", "vt", "vn", "p", "l", "f", "Groups", "Bounds"},
	}
	for i := range set.Objects {
		o := &set.Objects[i]
		s := o.Stats()
		name := o.Name
		if name == "" {
			name = unnamed
		}
		data = append(data, []string{
			name,
			strconv.Itoa(s.Vertices),
			strconv.Itoa(s.TextureVertices),
			strconv.Itoa(s.NormalVertices),
			strconv.Itoa(s.Points),
			strconv.Itoa(s.Lines),
			strconv.Itoa(s.Faces),
			strconv.Itoa(s.Groups),
			Bounds(o).String(),
		})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
}

// Summary renders the header line and object table for a document.
func Summary(doc *source.Document) (string, error) {
	table, err := ObjectTable(doc.Set)
	if err != nil {
		return "", err
	}
	header := pterm.DefaultSection.Sprintf("%s (%s, %d objects)", doc.Path, doc.Charset, doc.Set.Len())
	return header + table + "\n", nil
}

// Problems renders index validation problems, naming objects instead of
// numbering them.
func Problems(doc *source.Document) string {
	var out string
	for _, p := range doc.Problems {
		name := doc.Set.Objects[p.Object].Name
		if name == "" {
			name = unnamed
		}
		out += pterm.Warning.Sprintln(fmt.Sprintf("%s: %s element %d: %s index %d out of range (pool has %d)",
			doc.Path, name, p.Element, p.Pool, p.Index, p.Size))
	}
	return out
}

// Failure renders a load or parse error.
func Failure(err error) string {
	return pterm.Error.Sprintln(err)
}

// Success renders the one-line verdict for a file that parsed cleanly.
func Success(doc *source.Document) string {
	objects := "objects"
	if doc.Set.Len() == 1 {
		objects = "object"
	}
	return pterm.Success.Sprintln(fmt.Sprintf("%s: %d %s", doc.Path, doc.Set.Len(), objects))
}
