package annotation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/obrafacil/takeoff/model"
)

// MaxDimension is the largest value accepted as a drawing measurement.
const MaxDimension = 200

var (
	dimensionPattern = regexp.MustCompile(`^\d{1,3}[.,]\d{1,2}$`)

	// numberPattern finds maximal numeric chunks, separators included, so
	// "3,456" and "12.05.2024" are never cut down to a shorter token.
	numberPattern = regexp.MustCompile(`\d+(?:[.,]\d+)*`)
)

// Unit ranges, inclusive.
const (
	meterMin      = 0.1
	meterMax      = 50
	centimeterMin = 10
	centimeterMax = 5000
)

// UnitPreference resolves values that read as both meters and centimeters.
type UnitPreference int

const (
	PreferMeters UnitPreference = iota
	PreferCentimeters
)

// String returns the unit symbol of the preferred unit.
func (p UnitPreference) String() string {
	if p == PreferCentimeters {
		return string(model.Centimeters)
	}
	return string(model.Meters)
}

// ParseUnitPreference accepts "m" or "cm" (case insensitive, surrounding
// space ignored). The empty string selects PreferMeters.
func ParseUnitPreference(s string) (UnitPreference, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "m":
		return PreferMeters, nil
	case "cm":
		return PreferCentimeters, nil
	default:
		return PreferMeters, fmt.Errorf("unknown unit preference %q", s)
	}
}

// ParseDimension recognises a dimension token: one to three integer
// digits, a '.' or ',' separator and one or two decimals, with a value in
// (0, MaxDimension]. Position fields of the result are zero.
func ParseDimension(text string, pref UnitPreference) (model.DimensionText, bool) {
	token := strings.TrimSpace(text)
	if !dimensionPattern.MatchString(token) {
		return model.DimensionText{}, false
	}

	value, err := strconv.ParseFloat(strings.Replace(token, ",", ".", 1), 64)
	if err != nil || value <= 0 || value > MaxDimension {
		return model.DimensionText{}, false
	}

	return model.DimensionText{
		Value: value,
		Text:  token,
		Unit:  InferUnit(value, pref),
	}, true
}

// FindDimensions returns the dimension tokens inside a longer text, such as
// "3,45m", "L=3,45" or "3,45 x 2,80", in order.
func FindDimensions(text string, pref UnitPreference) []model.DimensionText {
	var dims []model.DimensionText
	for _, chunk := range numberPattern.FindAllString(text, -1) {
		if d, ok := ParseDimension(chunk, pref); ok {
			dims = append(dims, d)
		}
	}
	return dims
}

// InferUnit guesses the unit of a dimension value from its magnitude.
func InferUnit(v float64, pref UnitPreference) model.Unit {
	meters := v >= meterMin && v <= meterMax
	centimeters := v >= centimeterMin && v <= centimeterMax

	switch {
	case meters && centimeters:
		if pref == PreferCentimeters {
			return model.Centimeters
		}
		return model.Meters
	case meters:
		return model.Meters
	case centimeters:
		return model.Centimeters
	default:
		return model.UnknownUnit
	}
}
