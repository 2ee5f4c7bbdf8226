package annotation

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/obrafacil/takeoff/model"
)

// ============================================================================
// Fold
// ============================================================================

func TestFold(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Situação", "situacao"},
		{"IMPLANTAÇÃO", "implantacao"},
		{"Área de Serviço", "area de servico"},
		{"Suíte 01", "suite 01"},
		{"plain", "plain"},
	}

	for _, tt := range tests {
		if got := Fold(tt.input); got != tt.expected {
			t.Errorf("Fold(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

// ============================================================================
// Dimensions
// ============================================================================

func TestParseDimension(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		ok    bool
		value float64
		unit  model.Unit
	}{
		{"comma meters", "3,45", true, 3.45, model.Meters},
		{"dot meters", "2.8", true, 2.8, model.Meters},
		{"padded", "  1,20 ", true, 1.2, model.Meters},
		{"overlap prefers meters", "12,5", true, 12.5, model.Meters},
		{"centimeters", "120,00", true, 120, model.Centimeters},
		{"upper bound", "200,00", true, 200, model.Centimeters},
		{"too large", "450,00", false, 0, ""},
		{"zero", "0,00", false, 0, ""},
		{"below meter range", "0,05", true, 0.05, model.UnknownUnit},
		{"integer", "345", false, 0, ""},
		{"three decimals", "3,456", false, 0, ""},
		{"four integer digits", "1234,5", false, 0, ""},
		{"with unit suffix", "3,45m", false, 0, ""},
		{"year", "2024", false, 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, ok := ParseDimension(tt.text, PreferMeters)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if !ok {
				return
			}
			if d.Value != tt.value || d.Unit != tt.unit {
				t.Errorf("got %v %s, want %v %s", d.Value, d.Unit, tt.value, tt.unit)
			}
		})
	}
}

func TestInferUnitPreference(t *testing.T) {
	tests := []struct {
		value    float64
		pref     UnitPreference
		expected model.Unit
	}{
		{12.5, PreferMeters, model.Meters},
		{12.5, PreferCentimeters, model.Centimeters},
		{10, PreferCentimeters, model.Centimeters},
		{50, PreferMeters, model.Meters},
		{9.99, PreferCentimeters, model.Meters},
		{50.01, PreferMeters, model.Centimeters},
		{0.09, PreferMeters, model.UnknownUnit},
		{6000, PreferMeters, model.UnknownUnit},
	}

	for _, tt := range tests {
		if got := InferUnit(tt.value, tt.pref); got != tt.expected {
			t.Errorf("InferUnit(%v, %v) = %s, want %s", tt.value, tt.pref, got, tt.expected)
		}
	}
}

func TestParseUnitPreference(t *testing.T) {
	for input, want := range map[string]UnitPreference{"": PreferMeters, "m": PreferMeters, " CM ": PreferCentimeters} {
		got, err := ParseUnitPreference(input)
		if err != nil || got != want {
			t.Errorf("ParseUnitPreference(%q) = %v, %v", input, got, err)
		}
	}
	if _, err := ParseUnitPreference("mm"); err == nil {
		t.Error("expected error for mm")
	}
}

// ============================================================================
// Scale
// ============================================================================

func TestDetectScale(t *testing.T) {
	tests := []struct {
		name     string
		texts    []string
		expected string
	}{
		{"escala", []string{"PLANTA BAIXA", "ESCALA 1:100"}, "1:100"},
		{"esc abbreviation", []string{"esc. 1/50"}, "1:50"},
		{"bare", []string{"1 : 75"}, "1:75"},
		{"first wins", []string{"Escala 1:50", "Escala 1:200"}, "1:50"},
		{"none", []string{"COZINHA", "3,45"}, ""},
		{"empty", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var items []model.TextRun
			for _, s := range tt.texts {
				items = append(items, model.TextRun{Text: s})
			}
			if got := DetectScale(items); got != tt.expected {
				t.Errorf("DetectScale() = %q, want %q", got, tt.expected)
			}
		})
	}
}

// ============================================================================
// Regions
// ============================================================================

func TestDetectRegionsClamped(t *testing.T) {
	items := []model.TextRun{{Text: "Planta de Coberta", X: 100, Y: 100, FontSize: 10}}

	regions := DetectRegions(items, 1000, 1000)
	if len(regions) != 1 {
		t.Fatalf("expected 1 region, got %d: %+v", len(regions), regions)
	}
	r := regions[0]
	if r.Label != LabelRoofPlan {
		t.Errorf("label = %q, want %q", r.Label, LabelRoofPlan)
	}

	b := r.Bounds
	if b.Left() < 0 || b.Left() > 400 || b.Bottom() < 0 || b.Bottom() > 400 {
		t.Errorf("min corner out of range: %+v", b)
	}
	if b.Right() < 400 || b.Right() > 1000 || b.Top() < 400 || b.Top() > 1000 {
		t.Errorf("max corner out of range: %+v", b)
	}
	if want := model.NewBBox(0, 0, 400, 400); b != want {
		t.Errorf("bounds = %+v, want %+v", b, want)
	}
}

func TestDetectRegionsFirstMatchPerLabel(t *testing.T) {
	items := []model.TextRun{
		{Text: "FACHADA FRONTAL", X: 800, Y: 200},
		{Text: "PLANTA BAIXA - TÉRREO", X: 300, Y: 500},
		{Text: "Corte AA", X: 700, Y: 700},
		{Text: "Corte BB", X: 100, Y: 100},
		{Text: "SITUAÇÃO", X: 50, Y: 50},
	}

	regions := DetectRegions(items, 1000, 800)

	var labels []string
	for _, r := range regions {
		labels = append(labels, r.Label)
	}
	want := []string{LabelFloorPlan, LabelSitePlan, LabelSection, LabelFacade}
	if diff := cmp.Diff(want, labels); diff != "" {
		t.Errorf("labels mismatch (-want +got):\n%s", diff)
	}

	section := regions[2].Bounds
	if want := model.NewBBox(400, 460, 600, 340); section != want {
		t.Errorf("section bounds = %+v, want %+v", section, want)
	}
}

func TestFindDimensions(t *testing.T) {
	tests := []struct {
		text string
		want []string
	}{
		{"3,45", []string{"3,45"}},
		{"3,45m", []string{"3,45"}},
		{"L=3,45", []string{"3,45"}},
		{"3,45 x 2,80", []string{"3,45", "2,80"}},
		{"3,45/2,80", []string{"3,45", "2,80"}},
		{"3,456", nil},
		{"1234,5", nil},
		{"12.05.2024", nil},
		{"ESCALA 1:50", nil},
		{"PLANTA BAIXA", nil},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			var got []string
			for _, d := range FindDimensions(tt.text, PreferMeters) {
				got = append(got, d.Text)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("FindDimensions(%q) mismatch (-want +got):\n%s", tt.text, diff)
			}
		})
	}
}

func TestExtractPageTextLabelledDimension(t *testing.T) {
	items := []model.TextRun{{Text: "L=3,45m", X: 120, Y: 300, FontSize: 8}}

	pt := ExtractPageText(items, 800, 600)
	want := []model.DimensionText{{Value: 3.45, Text: "3,45", X: 120, Y: 300, Unit: model.Meters}}
	if diff := cmp.Diff(want, pt.Dimensions); diff != "" {
		t.Errorf("dimensions mismatch (-want +got):\n%s", diff)
	}
}

// ============================================================================
// Rooms
// ============================================================================

func TestIsRoomLabel(t *testing.T) {
	tests := []struct {
		text     string
		expected bool
	}{
		{"SALA DE ESTAR", true},
		{"Área de Serviço", true},
		{"DORMITÓRIO 2", true},
		{"Suíte", true},
		{"W.C.", false},
		{"WC", true},
		{"PLANTA BAIXA", false},
		{"3,45", false},
		{"ESCOPA", false},
		{"SHALL", false},
		{"ESTARIA", false},
		{"SALA/COZINHA", true},
		{"QUARTOS", true},
		{"AREA DE SERVICO 1", true},
		{"ÁREA DE LAZER", false},
	}

	for _, tt := range tests {
		if got := IsRoomLabel(tt.text); got != tt.expected {
			t.Errorf("IsRoomLabel(%q) = %v, want %v", tt.text, got, tt.expected)
		}
	}
}

// ============================================================================
// ExtractPageText
// ============================================================================

func TestExtractPageText(t *testing.T) {
	items := []model.TextRun{
		{Text: "PLANTA BAIXA", X: 400, Y: 80, FontSize: 14},
		{Text: "ESCALA 1:50", X: 400, Y: 60, FontSize: 10},
		{Text: "3,45", X: 200, Y: 310, FontSize: 8},
		{Text: "12,5", X: 120, Y: 200, FontSize: 8},
		{Text: "COZINHA", X: 250, Y: 250, FontSize: 9},
	}

	pt := ExtractPageText(items, 800, 600)

	wantDims := []model.DimensionText{
		{Value: 3.45, Text: "3,45", X: 200, Y: 310, Unit: model.Meters},
		{Value: 12.5, Text: "12,5", X: 120, Y: 200, Unit: model.Meters},
	}
	if diff := cmp.Diff(wantDims, pt.Dimensions); diff != "" {
		t.Errorf("dimensions mismatch (-want +got):\n%s", diff)
	}
	if pt.Scale != "1:50" {
		t.Errorf("scale = %q", pt.Scale)
	}
	if len(pt.Regions) != 1 || pt.Regions[0].Label != LabelFloorPlan {
		t.Errorf("regions = %+v", pt.Regions)
	}
	if len(pt.Items) != len(items) {
		t.Errorf("items = %d, want %d", len(pt.Items), len(items))
	}

	cm := ExtractPageText(items, 800, 600, WithUnitPreference(PreferCentimeters))
	if cm.Dimensions[1].Unit != model.Centimeters {
		t.Errorf("with centimeter preference unit = %s", cm.Dimensions[1].Unit)
	}
}
