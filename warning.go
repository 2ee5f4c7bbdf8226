package takeoff

import (
	"errors"
	"fmt"
	"strings"

	"github.com/obrafacil/takeoff/source"
)

// Warning is a non-fatal problem met while processing. File and Page are
// empty when the warning is not tied to a document or page.
type Warning struct {
	File    string
	Page    int // 1-based; 0 when document-wide
	Message string
}

func (w Warning) String() string {
	switch {
	case w.File != "" && w.Page > 0:
		return fmt.Sprintf("%s: page %d: %s", w.File, w.Page, w.Message)
	case w.File != "":
		return fmt.Sprintf("%s: %s", w.File, w.Message)
	default:
		return w.Message
	}
}

// FormatWarnings renders warnings one per line.
func FormatWarnings(warnings []Warning) string {
	lines := make([]string, len(warnings))
	for i, w := range warnings {
		lines[i] = w.String()
	}
	return strings.Join(lines, "\n")
}

// warningFromError attributes err to file and, when it is a page failure,
// to its page.
func warningFromError(file string, err error) Warning {
	var pe *source.PageError
	if errors.As(err, &pe) {
		return Warning{File: file, Page: pe.Page, Message: pe.Err.Error()}
	}
	return Warning{File: file, Message: err.Error()}
}
