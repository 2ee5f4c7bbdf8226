package annotation

import (
	"regexp"

	"github.com/obrafacil/takeoff/model"
)

var scalePattern = regexp.MustCompile(`(?i)(escala|esc\.?)?\s*1\s*[:/]\s*(\d+)`)

// DetectScale returns "1:N" for the first run containing a scale
// annotation such as "ESCALA 1:100" or "1/50", or "" when none does.
func DetectScale(items []model.TextRun) string {
	for _, item := range items {
		if m := scalePattern.FindStringSubmatch(item.Text); m != nil {
			return "1:" + m[2]
		}
	}
	return ""
}
