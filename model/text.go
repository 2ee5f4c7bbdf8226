package model

// TextRun is a positioned run of text on a page.
type TextRun struct {
	Text     string
	X, Y     float64
	FontSize float64
}

// Unit is the inferred measurement unit of a dimension token.
type Unit string

const (
	Meters      Unit = "m"
	Centimeters Unit = "cm"
	Millimeters Unit = "mm"
	UnknownUnit Unit = "unknown"
)

// DimensionText is a text run recognised as a numeric measurement.
type DimensionText struct {
	Value float64
	Text  string
	X, Y  float64
	Unit  Unit
}

// Region marks the approximate extent of one drawing on a sheet, found by
// a label such as "Planta Baixa".
type Region struct {
	Label  string
	Bounds BBox
}

// PageText holds the text facts of one page. Scale is "" when no scale
// annotation was found.
type PageText struct {
	Items      []TextRun
	Dimensions []DimensionText
	Scale      string
	Regions    []Region
}
