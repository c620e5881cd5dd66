package categorize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theirongolddev/spendwise/internal/model"
)

func TestCategorize_Examples(t *testing.T) {
	tests := []struct {
		desc string
		want model.Category
	}{
		{"Coffee at campus cafe", model.Food},
		{"Monthly rent payment", model.Housing},
		{"xyz unrelated", model.Other},
		{"Textbooks for calculus class", model.Education},
		{"Uber to downtown", model.Transportation},
		{"GYM membership", model.Health},
		{"Concert tickets", model.Entertainment},
		{"", model.Other},
	}
	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			assert.Equal(t, tt.want, Categorize(tt.desc))
		})
	}
}

func TestCategorize_FirstCategoryWins(t *testing.T) {
	// "book" (Education) and "coffee" (Food) both match; Education is declared first.
	assert.Equal(t, model.Education, Categorize("coffee table book"))
	// "rent" (Housing) beats "bus" (Transportation).
	assert.Equal(t, model.Housing, Categorize("bus fare and rent"))
}

func TestCategorize_SubstringMatch(t *testing.T) {
	// "gaming" does not contain "game".
	assert.Equal(t, model.Other, Categorize("New gaming headset"))
	assert.Equal(t, model.Entertainment, Categorize("board games night"))
	assert.Equal(t, model.Transportation, Categorize("Gasoline refill"))
}

func TestCategorize_KeywordsMatchTheirCategory(t *testing.T) {
	for _, r := range rules {
		for _, kw := range r.keywords {
			// A keyword that also contains an earlier category's keyword belongs to
			// that earlier category; skip those.
			if Categorize(kw) != r.category {
				continue
			}
			assert.Equal(t, r.category, Categorize("paid for "+kw+" today"), "keyword %q", kw)
		}
	}
}

func TestKeywords_ReturnsCopy(t *testing.T) {
	kws := Keywords(model.Food)
	require.NotEmpty(t, kws)
	kws[0] = "mutated"
	assert.Equal(t, "coffee", Keywords(model.Food)[0])
	assert.Nil(t, Keywords(model.Other))
}

func TestIcon(t *testing.T) {
	for _, c := range model.Categories {
		assert.NotEqual(t, "$", Icon(c), "category %s should have an icon", c)
	}
	assert.Equal(t, "$", Icon(model.Other))
}
