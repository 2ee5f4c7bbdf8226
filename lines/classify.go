package lines

import (
	"math"
	"sort"

	"github.com/obrafacil/takeoff/model"
)

// Classify filters raw extracted lines with DefaultConfig.
func Classify(raw []model.Line, width, height float64) []model.Line {
	return DefaultConfig().Classify(raw, width, height)
}

// Geometry builds the page geometry from raw extracted lines with
// DefaultConfig.
func Geometry(raw []model.Line, width, height float64) model.PageGeometry {
	return model.PageGeometry{
		Width:  width,
		Height: height,
		Lines:  Classify(raw, width, height),
	}
}

// Classify runs the full pipeline: noise filter, hatch removal,
// deduplication and ordering by descending length.
func (c Config) Classify(raw []model.Line, width, height float64) []model.Line {
	kept := c.FilterNoise(raw, width, height)
	kept = c.RemoveHatching(kept)
	kept = c.Deduplicate(kept)
	return SortByLength(kept)
}

// FilterNoise drops lines that are short relative to the page, touch the
// page margin, are stroked too thick, or are diagonal.
func (c Config) FilterNoise(in []model.Line, width, height float64) []model.Line {
	minLength := c.MinLengthRatio * math.Min(width, height)
	marginX := c.EdgeMarginRatio * width
	marginY := c.EdgeMarginRatio * height

	nearEdge := func(x, y float64) bool {
		return x < marginX || x > width-marginX || y < marginY || y > height-marginY
	}

	out := make([]model.Line, 0, len(in))
	for _, l := range in {
		switch {
		case l.Orientation == model.Diagonal:
		case l.Length < minLength:
		case l.StrokeWidth > c.MaxStrokeWidth:
		case nearEdge(l.X1, l.Y1) || nearEdge(l.X2, l.Y2):
		default:
			out = append(out, l)
		}
	}
	return out
}

// RemoveHatching drops every member of a position bucket that looks like a
// fill pattern. Horizontal lines are bucketed by y and vertical lines by x.
func (c Config) RemoveHatching(in []model.Line) []model.Line {
	type bucketKey struct {
		orientation model.Orientation
		slot        int64
	}
	type bucket struct {
		count int
		sum   float64
		max   float64
	}

	key := func(l model.Line) bucketKey {
		return bucketKey{l.Orientation, int64(math.Round(l.Position() / c.HatchBucketSize))}
	}

	buckets := make(map[bucketKey]*bucket)
	for _, l := range in {
		k := key(l)
		b := buckets[k]
		if b == nil {
			b = &bucket{}
			buckets[k] = b
		}
		b.count++
		b.sum += l.Length
		b.max = math.Max(b.max, l.Length)
	}

	isHatch := func(b *bucket) bool {
		return b.count > c.HatchMinMembers &&
			b.max < c.HatchMaxLength &&
			b.sum/float64(b.count) < c.HatchMaxAverage
	}

	out := make([]model.Line, 0, len(in))
	for _, l := range in {
		if !isHatch(buckets[key(l)]) {
			out = append(out, l)
		}
	}
	return out
}

// SortByLength returns the lines ordered by descending length. Lines of
// equal length keep their relative order.
func SortByLength(in []model.Line) []model.Line {
	out := make([]model.Line, len(in))
	copy(out, in)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Length > out[j].Length
	})
	return out
}
