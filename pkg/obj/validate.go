package obj

import "fmt"

// Pool identifies one of an object's vertex pools.
type Pool uint8

const (
	PoolVertex Pool = iota
	PoolTexture
	PoolNormal
)

func (p Pool) String() string {
	switch p {
	case PoolTexture:
		return "texture vertex"
	case PoolNormal:
		return "normal vertex"
	default:
		return "vertex"
	}
}

// IndexProblem is an index reference that points past the end of its pool.
type IndexProblem struct {
	Object  int // position in the ObjectSet
	Element int // position in the object's Elements
	Pool    Pool
	Index   uint32
	Size    int
}

func (p IndexProblem) String() string {
	return fmt.Sprintf("object %d element %d: %s index %d out of range (pool has %d)",
		p.Object, p.Element, p.Pool, p.Index, p.Size)
}

// Validate checks every index reference against the final pool sizes of
// its object. Parse never does this itself.
func Validate(set *ObjectSet) []IndexProblem {
	var problems []IndexProblem
	for oi := range set.Objects {
		o := &set.Objects[oi]
		stats := o.Stats()
		check := func(ei int, pool Pool, index uint32, size int) {
			if int(index) > size {
				problems = append(problems, IndexProblem{
					Object: oi, Element: ei, Pool: pool, Index: index, Size: size,
				})
			}
		}
		for ei, e := range o.Elements {
			for _, idx := range e.Indices() {
				check(ei, PoolVertex, idx.V, stats.Vertices)
				if idx.HasTexture() {
					check(ei, PoolTexture, idx.VT, stats.TextureVertices)
				}
				if idx.HasNormal() {
					check(ei, PoolNormal, idx.VN, stats.NormalVertices)
				}
			}
		}
	}
	return problems
}
