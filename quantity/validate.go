package quantity

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// Validate checks a model and returns advisory warnings. A nil model
// yields a single warning.
func Validate(m *Model) []string {
	if m == nil {
		return []string{"modelo ausente"}
	}

	var warnings []string
	if m.AreaConstruida <= 0 {
		warnings = append(warnings, "areaConstruida deve ser maior que zero")
	}
	if m.AreaTerreno <= 0 {
		warnings = append(warnings, "areaTerreno deve ser maior que zero")
	}
	if len(m.Walls) == 0 {
		warnings = append(warnings, "nenhuma parede informada")
	}
	if m.Heights == nil {
		warnings = append(warnings, "alturas não informadas")
	}

	for _, dir := range []Direction{DirectionH, DirectionV} {
		if msg, ok := checkSequence(m.Walls, dir); !ok {
			warnings = append(warnings, msg)
		}
	}

	for _, w := range m.Walls {
		if w.Length <= 0 {
			warnings = append(warnings, fmt.Sprintf("parede %s: comprimento deve ser maior que zero", w.ID))
		}
	}

	return warnings
}

// checkSequence verifies that the ids of the walls running in dir, sorted
// by numeric suffix, are exactly dir0, dir1, dir2, ... Only the first
// mismatch is reported.
func checkSequence(walls []Wall, dir Direction) (string, bool) {
	type entry struct {
		id string
		n  int
	}

	var ids []entry
	for _, w := range walls {
		if w.Direction == dir {
			ids = append(ids, entry{w.ID, wallNumber(w.ID)})
		}
	}
	sort.SliceStable(ids, func(i, j int) bool { return ids[i].n < ids[j].n })

	for i, e := range ids {
		if e.n != i {
			return fmt.Sprintf("sequência %s incorreta: esperado %s%d, encontrado %s", dir, dir, i, e.id), false
		}
	}
	return "", true
}

// wallNumber parses the numeric suffix of a wall id ("H12" → 12). Ids
// without one sort after every numbered id.
func wallNumber(id string) int {
	digits := strings.TrimLeftFunc(strings.TrimSpace(id), func(r rune) bool {
		return r < '0' || r > '9'
	})
	n, err := strconv.Atoi(digits)
	if err != nil || n < 0 {
		return math.MaxInt
	}
	return n
}
