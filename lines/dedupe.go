package lines

import (
	"math"

	"github.com/tidwall/rtree"

	"github.com/obrafacil/takeoff/model"
)

// Deduplicate keeps the first of any group of same-orientation lines whose
// defining coordinates match within DedupTolerance: the y and x extent for
// horizontal lines, the x and y extent for vertical lines. Kept lines are
// indexed in an R-tree per orientation so each candidate is only compared
// with nearby lines.
func (c Config) Deduplicate(in []model.Line) []model.Line {
	tol := c.DedupTolerance
	trees := map[model.Orientation]*rtree.RTreeG[model.Line]{}

	out := make([]model.Line, 0, len(in))
	for _, l := range in {
		tr := trees[l.Orientation]
		if tr == nil {
			tr = &rtree.RTreeG[model.Line]{}
			trees[l.Orientation] = tr
		}

		b := l.Bounds()
		lo := [2]float64{b.Left(), b.Bottom()}
		hi := [2]float64{b.Right(), b.Top()}

		duplicate := false
		tr.Search(
			[2]float64{lo[0] - tol, lo[1] - tol},
			[2]float64{hi[0] + tol, hi[1] + tol},
			func(_, _ [2]float64, kept model.Line) bool {
				if sameLine(kept, l, tol) {
					duplicate = true
					return false
				}
				return true
			},
		)
		if duplicate {
			continue
		}

		tr.Insert(lo, hi, l)
		out = append(out, l)
	}
	return out
}

// sameLine compares the defining coordinates of two lines of the same
// orientation.
func sameLine(a, b model.Line, tol float64) bool {
	return math.Abs(a.Position()-b.Position()) <= tol &&
		math.Abs(a.MinAlong()-b.MinAlong()) <= tol &&
		math.Abs(a.MaxAlong()-b.MaxAlong()) <= tol
}
