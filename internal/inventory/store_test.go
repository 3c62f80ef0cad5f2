package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mealplanner/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(NewInMemoryRepository())
}

func TestAccumulateMergesQuantities(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Accumulate("西红柿", 2, "个", models.CategoryVegetable)
	require.NoError(t, err)
	item, err := store.Accumulate("西红柿", 3, "个", models.CategoryVegetable)
	require.NoError(t, err)

	assert.Equal(t, 5.0, item.Quantity)

	items, err := store.Items()
	require.NoError(t, err)
	require.Len(t, items, 1)
}

func TestAccumulateIsCaseInsensitive(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Accumulate("Tofu", 1, "盒", models.CategorySoy)
	require.NoError(t, err)
	item, err := store.Accumulate("tofu", 2, "盒", models.CategorySoy)
	require.NoError(t, err)

	assert.Equal(t, 3.0, item.Quantity)
}

func TestReplaceOverwritesQuantity(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Accumulate("西红柿", 2, "个", models.CategoryVegetable)
	require.NoError(t, err)
	item, err := store.Replace("西红柿", 10, "个", models.CategoryVegetable)
	require.NoError(t, err)

	// Replace is the direct-edit path: last explicit quantity wins.
	assert.Equal(t, 10.0, item.Quantity)
}

func TestReplaceCreatesWhenAbsent(t *testing.T) {
	store := newTestStore(t)

	item, err := store.Replace("青菜", 4, "把", models.CategoryVegetable)
	require.NoError(t, err)
	assert.Equal(t, 4.0, item.Quantity)
}

func TestAccumulateRejectsEmptyName(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Accumulate("   ", 1, "", "")
	assert.ErrorIs(t, err, ErrEmptyName)
}

func TestAccumulateNormalizesCategory(t *testing.T) {
	store := newTestStore(t)

	item, err := store.Accumulate("神秘食材", 1, "", "不存在的分类")
	require.NoError(t, err)
	assert.Equal(t, models.CategoryOther, item.Category)
}

func TestRenameChangesIdentity(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Accumulate("番茄", 3, "个", models.CategoryVegetable)
	require.NoError(t, err)

	item, err := store.Rename("番茄", "西红柿", 5, "个", models.CategoryVegetable)
	require.NoError(t, err)
	assert.Equal(t, "西红柿", item.Name)

	items, err := store.Items()
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "西红柿", items[0].Name)
}

func TestRenameSameNameActsAsUpdate(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Accumulate("Tofu", 3, "盒", models.CategorySoy)
	require.NoError(t, err)

	item, err := store.Rename("Tofu", "tofu", 7, "盒", models.CategorySoy)
	require.NoError(t, err)
	assert.Equal(t, 7.0, item.Quantity)

	items, err := store.Items()
	require.NoError(t, err)
	require.Len(t, items, 1)
}

func TestDeleteIsIdempotent(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Accumulate("青菜", 1, "把", models.CategoryVegetable)
	require.NoError(t, err)

	assert.NoError(t, store.Delete("青菜"))
	assert.NoError(t, store.Delete("青菜"))
	assert.NoError(t, store.Delete("从未存在"))
}

func TestDecrementFloorsAtZero(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Accumulate("西红柿", 3, "个", models.CategoryVegetable)
	require.NoError(t, err)

	result, err := store.Decrement("西红柿", 10)
	require.NoError(t, err)
	assert.True(t, result.Resolved)
	assert.Equal(t, 3.0, result.Removed)
	assert.Equal(t, 0.0, result.After)

	// A second decrement finds nothing left to remove.
	result, err = store.Decrement("西红柿", 1)
	require.NoError(t, err)
	assert.Equal(t, 0.0, result.Removed)
	assert.Equal(t, 0.0, result.After)
}

func TestDecrementUnknownNameIsNoOp(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Accumulate("青菜", 2, "把", models.CategoryVegetable)
	require.NoError(t, err)

	result, err := store.Decrement("牛肉", 1)
	require.NoError(t, err)
	assert.False(t, result.Resolved)
	assert.Equal(t, 0.0, result.Removed)

	items, err := store.Items()
	require.NoError(t, err)
	assert.Equal(t, 2.0, items[0].Quantity)
}

func TestDecrementClampsNegativeAmount(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Accumulate("青菜", 2, "把", models.CategoryVegetable)
	require.NoError(t, err)

	result, err := store.Decrement("青菜", -5)
	require.NoError(t, err)
	assert.Equal(t, 0.0, result.Removed)
	assert.Equal(t, 2.0, result.After)
}

func TestDecrementSubstringMatchesBothDirections(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Accumulate("鸡翅根", 4, "个", models.CategoryMeat)
	require.NoError(t, err)

	// Ingredient is a substring of the store key.
	result, err := store.Decrement("鸡翅", 1)
	require.NoError(t, err)
	assert.Equal(t, "鸡翅根", result.Matched)

	// Store key is a substring of the ingredient.
	result, err = store.Decrement("鸡翅根炖汤用鸡翅根", 1)
	require.NoError(t, err)
	assert.Equal(t, "鸡翅根", result.Matched)
}

func TestDecrementPrefersExactMatch(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Accumulate("鸡翅根", 4, "个", models.CategoryMeat)
	require.NoError(t, err)
	_, err = store.Accumulate("鸡翅", 2, "个", models.CategoryMeat)
	require.NoError(t, err)

	result, err := store.Decrement("鸡翅", 1)
	require.NoError(t, err)
	assert.Equal(t, "鸡翅", result.Matched)
	assert.Equal(t, 1.0, result.After)
}

func TestDecrementTieBreaksOnShortestKey(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Accumulate("老豆腐", 3, "块", models.CategorySoy)
	require.NoError(t, err)
	_, err = store.Accumulate("豆腐", 3, "块", models.CategorySoy)
	require.NoError(t, err)

	result, err := store.Decrement("豆", 1)
	require.NoError(t, err)
	assert.Equal(t, "豆腐", result.Matched)
}
