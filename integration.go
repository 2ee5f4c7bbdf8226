// integration.go ties the per-page stages together
package takeoff

import (
	"github.com/obrafacil/takeoff/annotation"
	"github.com/obrafacil/takeoff/graphicsstate"
	"github.com/obrafacil/takeoff/lines"
	"github.com/obrafacil/takeoff/report"
	"github.com/obrafacil/takeoff/source"
)

// AnalyzePage runs the per-page stages on one page: line extraction,
// classification and text extraction. It is pure and safe to call from
// several goroutines.
func AnalyzePage(file string, p source.Page, pref annotation.UnitPreference) report.PageFacts {
	raw := graphicsstate.ExtractLines(p.Operations)
	return report.PageFacts{
		File:     file,
		Page:     p.Number,
		Geometry: lines.Geometry(raw, p.Width, p.Height),
		Text:     annotation.ExtractPageText(p.Texts, p.Width, p.Height, annotation.WithUnitPreference(pref)),
	}
}
