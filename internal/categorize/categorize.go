// Package categorize assigns expense categories from free-text descriptions.
package categorize

import (
	"strings"

	"github.com/theirongolddev/spendwise/internal/model"
)

type rule struct {
	category model.Category
	keywords []string
}

// rules is checked in order; the first category with any matching keyword wins.
var rules = []rule{
	{model.Education, []string{"book", "textbook", "tuition", "class", "course", "study"}},
	{model.Food, []string{"coffee", "lunch", "dinner", "restaurant", "grocery", "food", "cafe"}},
	{model.Housing, []string{"rent", "utilities", "electric", "internet", "apartment"}},
	{model.Transportation, []string{"uber", "lyft", "gas", "parking", "bus", "metro"}},
	{model.Entertainment, []string{"movie", "game", "concert", "party", "streaming"}},
	{model.Health, []string{"pharmacy", "doctor", "medicine", "gym", "fitness"}},
}

var icons = map[model.Category]string{
	model.Education:      "📖",
	model.Food:           "☕",
	model.Housing:        "⌂",
	model.Transportation: "🚗",
	model.Entertainment:  "🎮",
	model.Health:         "♥",
}

// Categorize returns the first category whose keywords appear in the
// description (case-insensitive substring match), or Other.
func Categorize(description string) model.Category {
	desc := strings.ToLower(description)
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(desc, kw) {
				return r.category
			}
		}
	}
	return model.Other
}

// Keywords returns a copy of the keyword list for a category.
func Keywords(c model.Category) []string {
	for _, r := range rules {
		if r.category == c {
			out := make([]string, len(r.keywords))
			copy(out, r.keywords)
			return out
		}
	}
	return nil
}

// Icon returns the display glyph for a category.
func Icon(c model.Category) string {
	if icon, ok := icons[c]; ok {
		return icon
	}
	return "$"
}
