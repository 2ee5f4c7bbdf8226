package takeoff

import (
	"runtime"

	"github.com/sirupsen/logrus"

	"github.com/obrafacil/takeoff/annotation"
)

// ExtractOptions holds configuration for the pipeline.
type ExtractOptions struct {
	// Page selection (1-indexed), applied to every document
	pages []int

	// Number of pages analysed in parallel
	concurrency int

	unitPreference annotation.UnitPreference

	logger *logrus.Logger
}

// defaultOptions returns the default pipeline options.
func defaultOptions() ExtractOptions {
	return ExtractOptions{
		pages:          nil, // nil means all pages
		concurrency:    runtime.GOMAXPROCS(0),
		unitPreference: annotation.PreferMeters,
		logger:         logrus.StandardLogger(),
	}
}

// clone creates a deep copy of ExtractOptions.
func (o ExtractOptions) clone() ExtractOptions {
	newOpts := ExtractOptions{
		concurrency:    o.concurrency,
		unitPreference: o.unitPreference,
		logger:         o.logger,
	}

	// Deep copy pages slice
	if o.pages != nil {
		newOpts.pages = make([]int, len(o.pages))
		copy(newOpts.pages, o.pages)
	}

	return newOpts
}

// wantsPage reports whether page n is selected.
func (o ExtractOptions) wantsPage(n int) bool {
	if len(o.pages) == 0 {
		return true
	}
	for _, p := range o.pages {
		if p == n {
			return true
		}
	}
	return false
}
