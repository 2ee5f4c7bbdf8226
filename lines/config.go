package lines

// Config holds the thresholds of the classification pipeline. Ratios are
// relative to the page size; the remaining values are page units.
type Config struct {
	// Lines shorter than this fraction of min(width, height) are dropped
	MinLengthRatio float64

	// Lines with an endpoint closer than this fraction of the page extent
	// to any edge are dropped (frames and title-block borders)
	EdgeMarginRatio float64

	// Lines stroked wider than this are dropped
	MaxStrokeWidth float64

	// Width of the position buckets used by hatch detection
	HatchBucketSize float64

	// A bucket is a hatch when it has more than HatchMinMembers lines, the
	// longest shorter than HatchMaxLength and the mean shorter than
	// HatchMaxAverage
	HatchMinMembers int
	HatchMaxLength  float64
	HatchMaxAverage float64

	// Same-orientation lines whose defining coordinates all differ by at
	// most this much are duplicates
	DedupTolerance float64
}

// DefaultConfig returns default configuration
func DefaultConfig() Config {
	return Config{
		MinLengthRatio:  0.01,
		EdgeMarginRatio: 0.02,
		MaxStrokeWidth:  4,
		HatchBucketSize: 2,
		HatchMinMembers: 10,
		HatchMaxLength:  50,
		HatchMaxAverage: 30,
		DedupTolerance:  3,
	}
}
