package annotation

import "github.com/obrafacil/takeoff/model"

type options struct {
	unitPreference UnitPreference
}

// Option configures ExtractPageText.
type Option func(*options)

// WithUnitPreference sets the unit chosen for values that read as both
// meters and centimeters.
func WithUnitPreference(p UnitPreference) Option {
	return func(o *options) {
		o.unitPreference = p
	}
}

// ExtractPageText collects the text facts of one page: the runs
// themselves, dimension tokens in run order, the scale and the regions.
// Tokens found inside a run take the run's position.
func ExtractPageText(items []model.TextRun, width, height float64, opts ...Option) model.PageText {
	o := options{unitPreference: PreferMeters}
	for _, opt := range opts {
		opt(&o)
	}

	var dims []model.DimensionText
	for _, item := range items {
		for _, d := range FindDimensions(item.Text, o.unitPreference) {
			d.X, d.Y = item.X, item.Y
			dims = append(dims, d)
		}
	}

	return model.PageText{
		Items:      items,
		Dimensions: dims,
		Scale:      DetectScale(items),
		Regions:    DetectRegions(items, width, height),
	}
}
