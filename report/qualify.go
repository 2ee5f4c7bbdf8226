package report

import "github.com/obrafacil/takeoff/model"

// Qualification thresholds.
const (
	MinLines    = 5
	MinTextRuns = 3
)

// Qualifies reports whether a page carries native vector content worth
// reporting: at least MinLines significant lines and MinTextRuns text runs.
func Qualifies(geom model.PageGeometry, text model.PageText) bool {
	return len(geom.Lines) >= MinLines && len(text.Items) >= MinTextRuns
}
