package quantity

import "github.com/lucasb-eyer/go-colorful"

// classificationColors is the fixed wall palette shared by overlays and
// reports.
var classificationColors = map[Classification]colorful.Color{
	ClassExt:     colorful.Hsv(215, 0.85, 0.85), // blue
	ClassInt:     colorful.Hsv(130, 0.70, 0.65), // green
	ClassMuro:    colorful.Hsv(25, 0.85, 0.80),  // orange
	ClassExtMuro: colorful.Hsv(285, 0.65, 0.70), // purple
}

var unknownClassificationColor = colorful.Hsv(0, 0, 0.5)

// ClassificationColor returns the display colour of a wall classification.
// Unknown classifications are grey.
func ClassificationColor(c Classification) colorful.Color {
	if col, ok := classificationColors[c]; ok {
		return col
	}
	return unknownClassificationColor
}
