package annotation

import (
	"strings"

	"github.com/obrafacil/takeoff/model"
)

// RegionExtent is the fraction of the page width and height a region
// extends from its label in every direction.
const RegionExtent = 0.30

// Region labels.
const (
	LabelFloorPlan    = "Planta Baixa"
	LabelRoofPlan     = "Planta de Cobertura"
	LabelSitePlan     = "Planta de Situação"
	LabelImplantation = "Implantação"
	LabelSection      = "Corte"
	LabelFacade       = "Fachada"
)

// regionKeywords maps each label to folded synonyms. The slice order is
// the order regions are reported in.
var regionKeywords = []struct {
	label    string
	keywords []string
}{
	{LabelFloorPlan, []string{"planta baixa", "planta do pavimento", "pavimento terreo", "planta terreo"}},
	{LabelRoofPlan, []string{"planta de cobertura", "planta de coberta", "cobertura", "coberta", "telhado"}},
	{LabelSitePlan, []string{"planta de situacao", "situacao"}},
	{LabelImplantation, []string{"planta de implantacao", "implantacao", "locacao"}},
	{LabelSection, []string{"corte", "secao"}},
	{LabelFacade, []string{"fachada", "elevacao", "vista frontal"}},
}

// DetectRegions finds, for each known label, the first run containing one
// of its synonyms and reports a region extending RegionExtent of the page
// around that run, clamped to the page.
func DetectRegions(items []model.TextRun, width, height float64) []model.Region {
	folded := make([]string, len(items))
	for i, item := range items {
		folded[i] = Fold(item.Text)
	}

	var regions []model.Region
	for _, entry := range regionKeywords {
		for i, text := range folded {
			if !containsAny(text, entry.keywords) {
				continue
			}
			at := model.NewBBox(items[i].X, items[i].Y, 0, 0)
			regions = append(regions, model.Region{
				Label:  entry.label,
				Bounds: at.ExpandXY(RegionExtent*width, RegionExtent*height).Clamp(width, height),
			})
			break
		}
	}
	return regions
}

func containsAny(text string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}
