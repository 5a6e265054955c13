package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCategory(t *testing.T) {
	assert.Equal(t, "Watch", NormalizeCategory("Watch"))
	assert.Equal(t, "Watch, Fashion", NormalizeCategory(" Watch , Fashion "))
	assert.Equal(t, "Watch, Fashion", NormalizeCategory("Watch,Fashion,Watch"))
	assert.Equal(t, "Watch", NormalizeCategory("Watch,,  ,Watch"))
}

func TestNormalizeCategoryEmptyInput(t *testing.T) {
	assert.Equal(t, DefaultCategory, NormalizeCategory(""))
	assert.Equal(t, DefaultCategory, NormalizeCategory("  ,  , "))
}

func TestNormalizeCategoryIdempotent(t *testing.T) {
	inputs := []string{"Watch", "Watch, Fashion", "a,b,c", " x ,y,, x "}
	for _, input := range inputs {
		once := NormalizeCategory(input)
		assert.Equal(t, once, NormalizeCategory(once))
	}
}

func TestSplitCategories(t *testing.T) {
	assert.Equal(t, []string{"Watch", "Fashion"}, SplitCategories("Watch, Fashion"))
	assert.Equal(t, []string{"Watch"}, SplitCategories("  Watch  "))
	assert.Empty(t, SplitCategories(""))
	assert.Empty(t, SplitCategories(" , ,"))
}
