package quantity

import "strings"

// Result is a model together with its derived values and validation
// warnings. Warnings never prevent derivation.
type Result struct {
	Model    *Model        `json:"model"`
	Derived  DerivedValues `json:"derived"`
	Warnings []string      `json:"warnings,omitempty"`
}

// OK reports whether the model validated without warnings.
func (r Result) OK() bool {
	return len(r.Warnings) == 0
}

// Apply validates and derives m. The returned model is a copy of m whose
// Notes have the warnings appended, one per line; m itself is not
// modified.
func Apply(m *Model) Result {
	warnings := Validate(m)
	res := Result{
		Derived:  Derive(m),
		Warnings: warnings,
	}
	if m == nil {
		return res
	}

	clone := *m
	if len(warnings) > 0 {
		notes := warnings
		if clone.Notes != "" {
			notes = append([]string{clone.Notes}, warnings...)
		}
		clone.Notes = strings.Join(notes, "\n")
	}
	res.Model = &clone
	return res
}
