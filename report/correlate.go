package report

import (
	"math"

	"github.com/obrafacil/takeoff/model"
)

// Correlation limits.
const (
	// DefaultTopN is how many of the longest lines per orientation are
	// searched.
	DefaultTopN = 30

	// MaxDistanceRatio bounds the perpendicular distance between a token
	// and its line, relative to the page height (horizontal lines) or
	// width (vertical lines).
	MaxDistanceRatio = 0.05
)

// Correlation is the result of matching a dimension token to a line.
// Found is false when no line was close enough.
type Correlation struct {
	Dimension model.DimensionText
	Line      model.Line
	Found     bool

	// Distance is the perpendicular distance in page units.
	Distance float64
}

// Correlate finds the line among the topN longest of each orientation that
// is nearest to dim, measuring |y - line y| for horizontal lines and
// |x - line x| for vertical ones. When both orientations have a line
// within MaxDistanceRatio, the one nearer relative to its page dimension
// wins; ties go to the horizontal line.
func Correlate(dim model.DimensionText, geom model.PageGeometry, topN int) Correlation {
	result := Correlation{Dimension: dim}

	h, hDist, hOK := nearest(geom.Horizontal(), topN, dim.Y)
	v, vDist, vOK := nearest(geom.Vertical(), topN, dim.X)

	hOK = hOK && hDist < MaxDistanceRatio*geom.Height
	vOK = vOK && vDist < MaxDistanceRatio*geom.Width

	switch {
	case hOK && vOK:
		if hDist/geom.Height <= vDist/geom.Width {
			result.Line, result.Distance = h, hDist
		} else {
			result.Line, result.Distance = v, vDist
		}
		result.Found = true
	case hOK:
		result.Line, result.Distance, result.Found = h, hDist, true
	case vOK:
		result.Line, result.Distance, result.Found = v, vDist, true
	}
	return result
}

// nearest returns the first of the topN lines whose position is closest to
// pos.
func nearest(lines []model.Line, topN int, pos float64) (model.Line, float64, bool) {
	if topN >= 0 && len(lines) > topN {
		lines = lines[:topN]
	}

	var (
		best     model.Line
		bestDist = math.Inf(1)
		found    bool
	)
	for _, l := range lines {
		if d := math.Abs(pos - l.Position()); d < bestDist {
			best, bestDist, found = l, d, true
		}
	}
	return best, bestDist, found
}

// PercentX converts a page x coordinate to a percentage of the width.
func PercentX(x, width float64) float64 {
	return x / width * 100
}

// PercentY converts a page y coordinate to a percentage of the height
// measured from the top edge.
func PercentY(y, height float64) float64 {
	return (1 - y/height) * 100
}
