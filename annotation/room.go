package annotation

import (
	"slices"
	"strings"
	"unicode"

	"github.com/obrafacil/takeoff/model"
)

// roomKeywords are folded names of rooms and environments.
var roomKeywords = []string{
	"sala", "quarto", "cozinha", "banheiro", "wc", "lavabo", "suite",
	"area de servico", "lavanderia", "varanda", "garagem", "circulacao",
	"hall", "escritorio", "copa", "closet", "despensa", "jantar", "estar",
	"dormitorio",
}

// IsRoomLabel reports whether text names a room, e.g. "SALA DE ESTAR" or
// "Área de Serviço". Keywords match whole words, and the last word of a
// keyword may carry a plural "s".
func IsRoomLabel(text string) bool {
	words := foldedWords(text)
	for _, k := range roomKeywords {
		if containsWords(words, strings.Fields(k)) {
			return true
		}
	}
	return false
}

// foldedWords folds text and splits it on anything but letters and digits.
func foldedWords(text string) []string {
	return strings.FieldsFunc(Fold(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// containsWords reports whether key appears as consecutive words.
func containsWords(words, key []string) bool {
	last := len(key) - 1
	for i := 0; i+last < len(words); i++ {
		if !slices.Equal(words[i:i+last], key[:last]) {
			continue
		}
		if w := words[i+last]; w == key[last] || w == key[last]+"s" {
			return true
		}
	}
	return false
}

// RoomLabels returns the runs that name rooms, in order.
func RoomLabels(items []model.TextRun) []model.TextRun {
	var out []model.TextRun
	for _, item := range items {
		if IsRoomLabel(item.Text) {
			out = append(out, item)
		}
	}
	return out
}
