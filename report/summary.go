package report

import (
	"fmt"
	"strings"

	"github.com/obrafacil/takeoff/annotation"
	"github.com/obrafacil/takeoff/model"
)

// Report limits per page.
const (
	MaxLinesPerOrientation = 30
	MaxDimensions          = 40
)

// PageFacts is everything extracted from one page.
type PageFacts struct {
	File     string
	Page     int // 1-based
	Geometry model.PageGeometry
	Text     model.PageText
}

// Qualifies reports whether the page takes part in the summary.
func (p PageFacts) Qualifies() bool {
	return Qualifies(p.Geometry, p.Text)
}

// Summarize renders the report for all qualifying pages in the given order.
// It returns "" when no page qualifies.
func Summarize(pages []PageFacts) string {
	var sections []string
	for _, p := range pages {
		if !p.Qualifies() {
			continue
		}
		sections = append(sections, summarizePage(p))
	}
	return strings.Join(sections, "\n")
}

func summarizePage(p PageFacts) string {
	var sb strings.Builder
	g := p.Geometry

	fmt.Fprintf(&sb, "=== Arquivo: %s | Página %d | %.1f x %.1f", p.File, p.Page, g.Width, g.Height)
	if p.Text.Scale != "" {
		fmt.Fprintf(&sb, " | Escala %s", p.Text.Scale)
	}
	sb.WriteString(" ===\n")

	if len(p.Text.Regions) > 0 {
		sb.WriteString("Regiões:\n")
		for _, r := range p.Text.Regions {
			b := r.Bounds
			fmt.Fprintf(&sb, "- %s: x %s-%s, y %s-%s\n", r.Label,
				pct(PercentX(b.Left(), g.Width)), pct(PercentX(b.Right(), g.Width)),
				pct(PercentY(b.Top(), g.Height)), pct(PercentY(b.Bottom(), g.Height)))
		}
	}

	writeLines(&sb, "Linhas horizontais", g.Horizontal(), g)
	writeLines(&sb, "Linhas verticais", g.Vertical(), g)

	if dims := p.Text.Dimensions; len(dims) > 0 {
		shown := dims
		if len(shown) > MaxDimensions {
			shown = shown[:MaxDimensions]
		}
		fmt.Fprintf(&sb, "Cotas (%d de %d):\n", len(shown), len(dims))
		for _, d := range shown {
			writeDimension(&sb, Correlate(d, g, DefaultTopN), g)
		}
	}

	if rooms := annotation.RoomLabels(p.Text.Items); len(rooms) > 0 {
		sb.WriteString("Ambientes:\n")
		for _, r := range rooms {
			fmt.Fprintf(&sb, "- %q em x=%s y=%s\n", r.Text, pct(PercentX(r.X, g.Width)), pct(PercentY(r.Y, g.Height)))
		}
	}

	return sb.String()
}

func writeLines(sb *strings.Builder, title string, lines []model.Line, g model.PageGeometry) {
	if len(lines) == 0 {
		return
	}
	shown := lines
	if len(shown) > MaxLinesPerOrientation {
		shown = shown[:MaxLinesPerOrientation]
	}
	fmt.Fprintf(sb, "%s (%d de %d):\n", title, len(shown), len(lines))
	for _, l := range shown {
		fmt.Fprintf(sb, "- %s comprimento=%.1f\n", describeLine(l, g), l.Length)
	}
}

// describeLine renders a line's position and extent in page percentages.
func describeLine(l model.Line, g model.PageGeometry) string {
	if l.Orientation == model.Horizontal {
		return fmt.Sprintf("H y=%s x=%s-%s",
			pct(PercentY(l.Position(), g.Height)),
			pct(PercentX(l.MinAlong(), g.Width)), pct(PercentX(l.MaxAlong(), g.Width)))
	}
	// top of the line first
	return fmt.Sprintf("V x=%s y=%s-%s",
		pct(PercentX(l.Position(), g.Width)),
		pct(PercentY(l.MaxAlong(), g.Height)), pct(PercentY(l.MinAlong(), g.Height)))
}

func writeDimension(sb *strings.Builder, c Correlation, g model.PageGeometry) {
	d := c.Dimension
	fmt.Fprintf(sb, "- %q (%.2f %s) em x=%s y=%s", d.Text, d.Value, d.Unit,
		pct(PercentX(d.X, g.Width)), pct(PercentY(d.Y, g.Height)))
	if c.Found {
		fmt.Fprintf(sb, " -> linha %s\n", describeLine(c.Line, g))
	} else {
		sb.WriteString(" -> sem linha próxima\n")
	}
}

func pct(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}
