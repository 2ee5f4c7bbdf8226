package quantity

import "math"

// Derivation constants.
const (
	RoofOverhang   = 1.15 // roof area per built area
	TrenchWidth    = 0.40 // m
	TrenchDepth    = 0.50 // m
	roundingFactor = 100
)

// DerivedValues are the quantities computed from a model. They are never
// stored as authoritative; recompute them whenever the model changes.
type DerivedValues struct {
	PHorizontal float64 `json:"pHorizontal"`
	PVertical   float64 `json:"pVertical"`
	PTotal      float64 `json:"pTotal"`
	PExterno    float64 `json:"pExterno"`
	PInterno    float64 `json:"pInterno"`
	PMuro       float64 `json:"pMuro"`

	AVaosPortasInt float64 `json:"aVaosPortasInt"`
	AVaosPortasExt float64 `json:"aVaosPortasExt"`
	AVaosJanelas   float64 `json:"aVaosJanelas"`
	AVaosPortoes   float64 `json:"aVaosPortoes"`
	AVaosTotal     float64 `json:"aVaosTotal"`

	AParedesInternas float64 `json:"aParedesInternas"`
	AParedesExternas float64 `json:"aParedesExternas"`
	AParedesMuros    float64 `json:"aParedesMuros"`
	AParedesTotal    float64 `json:"aParedesTotal"`

	ACobertura float64 `json:"aCobertura"`
	VEscavacao float64 `json:"vEscavacao"`
}

// Derive computes the quantities of m. A wall classified ext/muro counts
// in both the external and the boundary perimeter. Missing heights count
// as zero. Every value is rounded to two decimals. A nil model yields
// zero values.
func Derive(m *Model) DerivedValues {
	var d DerivedValues
	if m == nil {
		return d
	}

	var pH, pV, pExt, pInt, pMuro float64
	for _, w := range m.Walls {
		switch w.Direction {
		case DirectionH:
			pH += w.Length
		case DirectionV:
			pV += w.Length
		}
		switch w.Classification {
		case ClassExt:
			pExt += w.Length
		case ClassInt:
			pInt += w.Length
		case ClassMuro:
			pMuro += w.Length
		case ClassExtMuro:
			pExt += w.Length
			pMuro += w.Length
		}
	}
	pTotal := pH + pV

	var portasInt, portasExt, janelas, portoes float64
	for _, o := range m.Openings {
		switch o.Type {
		case OpeningPorta:
			switch o.Location {
			case LocationInt:
				portasInt += o.Area()
			case LocationExt:
				portasExt += o.Area()
			}
		case OpeningJanela:
			janelas += o.Area()
		case OpeningPortao:
			portoes += o.Area()
		}
	}
	vaosTotal := portasInt + portasExt + janelas + portoes

	var h Heights
	if m.Heights != nil {
		h = *m.Heights
	}
	paredesInt := math.Max(0, pInt*h.HInterno-portasInt)
	paredesExt := math.Max(0, pExt*h.HExterno-portasExt-janelas)
	paredesMuro := math.Max(0, pMuro*h.HMuro-portoes)

	d = DerivedValues{
		PHorizontal: round2(pH),
		PVertical:   round2(pV),
		PTotal:      round2(pTotal),
		PExterno:    round2(pExt),
		PInterno:    round2(pInt),
		PMuro:       round2(pMuro),

		AVaosPortasInt: round2(portasInt),
		AVaosPortasExt: round2(portasExt),
		AVaosJanelas:   round2(janelas),
		AVaosPortoes:   round2(portoes),
		AVaosTotal:     round2(vaosTotal),

		AParedesInternas: round2(paredesInt),
		AParedesExternas: round2(paredesExt),
		AParedesMuros:    round2(paredesMuro),
		AParedesTotal:    round2(paredesInt + paredesExt + paredesMuro),

		ACobertura: round2(m.AreaConstruida * RoofOverhang),
		VEscavacao: round2(pTotal * TrenchWidth * TrenchDepth),
	}
	return d
}

// round2 rounds half away from zero to two decimals.
func round2(v float64) float64 {
	return math.Round(v*roundingFactor) / roundingFactor
}
