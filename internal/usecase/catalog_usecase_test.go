package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildCategoryList(t *testing.T) {
	stored := []string{
		"Watch, Fashion",
		"Electronics",
		"Fashion",
	}

	got := buildCategoryList(stored)

	assert.Equal(t, []string{"All", "Electronics", "Fashion", "Watch"}, got)
}

func TestBuildCategoryListEmpty(t *testing.T) {
	assert.Equal(t, []string{"All"}, buildCategoryList(nil))
	assert.Equal(t, []string{"All"}, buildCategoryList([]string{"", "  , "}))
}
