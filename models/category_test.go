package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategory_IsValid(t *testing.T) {
	for _, category := range AllCategories() {
		assert.True(t, category.IsValid(), "category %s", category)
	}

	assert.False(t, Category("passwords").IsValid())
	assert.False(t, Category("").IsValid())
}

func TestCategory_IsMirrored(t *testing.T) {
	mirrored := map[Category]bool{
		CategoryPinnedApps:  true,
		CategoryWorldClocks: true,
		CategorySettings:    true,
	}

	for _, category := range AllCategories() {
		assert.Equal(t, mirrored[category], category.IsMirrored(), "category %s", category)
	}
}

func TestMirroredCategories_SubsetOfAll(t *testing.T) {
	all := make(map[Category]bool, len(AllCategories()))
	for _, category := range AllCategories() {
		all[category] = true
	}

	for _, category := range MirroredCategories() {
		assert.True(t, all[category], "category %s", category)
		assert.True(t, category.IsMirrored(), "category %s", category)
	}
}

// Status probes and batched requests rely on a stable ordering so that two
// runs against the same state produce identical request bodies.
func TestAllCategories_StableOrder(t *testing.T) {
	assert.Equal(t, AllCategories(), AllCategories())
}
