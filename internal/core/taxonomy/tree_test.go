package taxonomy

import (
	"testing"

	"github.com/SscSPs/household_ledger/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(v int64) *int64 { return &v }

func cat(id int64, name string, parent *int64) domain.Category {
	return domain.Category{ID: id, TenantID: 1, Name: name, SuperCategoryID: parent}
}

func sampleCategories() []domain.Category {
	// Food > Dairy > Cheese, Food > Bakery, Household
	return []domain.Category{
		cat(3, "Cheese", ptr(2)),
		cat(1, "Food", nil),
		cat(5, "Household", nil),
		cat(2, "Dairy", ptr(1)),
		cat(4, "Bakery", ptr(1)),
	}
}

func TestPath(t *testing.T) {
	idx := NewIndex(sampleCategories())

	assert.Equal(t, "Food > Dairy > Cheese", idx.Path(3))
	assert.Equal(t, "Food > Dairy", idx.Path(2))
	assert.Equal(t, "Food", idx.Path(1))
	assert.Equal(t, "", idx.Path(99))
}

func TestPath_IndependentOfInputOrder(t *testing.T) {
	cats := sampleCategories()
	reversed := make([]domain.Category, len(cats))
	for i, c := range cats {
		reversed[len(cats)-1-i] = c
	}

	assert.Equal(t, NewIndex(cats).Path(3), NewIndex(reversed).Path(3))
}

func TestPath_StopsOnCycle(t *testing.T) {
	idx := NewIndex([]domain.Category{
		cat(1, "A", ptr(2)),
		cat(2, "B", ptr(1)),
	})

	assert.Equal(t, "A > B", idx.Path(2))
	assert.Equal(t, "B > A", idx.Path(1))
}

func TestIsDescendant(t *testing.T) {
	idx := NewIndex(sampleCategories())

	testCases := []struct {
		name     string
		ancestor int64
		node     int64
		want     bool
	}{
		{"grandchild", 1, 3, true},
		{"child", 2, 3, true},
		{"self", 3, 3, false},
		{"parent is not a descendant of child", 3, 1, false},
		{"sibling", 4, 2, false},
		{"other root", 5, 3, false},
		{"unknown node", 1, 42, false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, idx.IsDescendant(tc.ancestor, tc.node))
		})
	}
}

func TestIsDescendant_CorruptCycleIsTreatedAsDescendant(t *testing.T) {
	idx := NewIndex([]domain.Category{
		cat(1, "A", ptr(2)),
		cat(2, "B", ptr(3)),
		cat(3, "C", ptr(2)),
		cat(9, "Z", nil),
	})

	assert.True(t, idx.IsDescendant(9, 1))
}

func TestSubtreeAndDeletionOrder(t *testing.T) {
	idx := NewIndex(sampleCategories())

	assert.Equal(t, []int64{1, 2, 3, 4}, idx.Subtree(1))
	assert.Equal(t, []int64{4, 3, 2, 1}, idx.DeletionOrder(1))
	assert.Equal(t, []int64{5}, idx.Subtree(5))
	assert.Nil(t, idx.Subtree(77))
}

func TestBuildTree(t *testing.T) {
	roots := BuildTree(sampleCategories())

	require.Len(t, roots, 2)
	assert.Equal(t, int64(1), roots[0].ID)
	assert.Equal(t, int64(5), roots[1].ID)
	assert.Empty(t, roots[1].Children)

	food := roots[0]
	require.Len(t, food.Children, 2)
	assert.Equal(t, "Dairy", food.Children[0].Name)
	assert.Equal(t, "Bakery", food.Children[1].Name)
	require.Len(t, food.Children[0].Children, 1)
	assert.Equal(t, "Cheese", food.Children[0].Children[0].Name)
}

func TestBuildTree_PromotesOrphans(t *testing.T) {
	idx := NewIndex([]domain.Category{
		cat(1, "Root", nil),
		cat(2, "Lost", ptr(40)),
	})
	assert.Equal(t, []int64{2}, idx.Orphans())

	roots := BuildTree([]domain.Category{
		cat(1, "Root", nil),
		cat(2, "Lost", ptr(40)),
	})
	require.Len(t, roots, 2)
	assert.Equal(t, "Lost", roots[1].Name)
}

func TestBuildTree_BreaksCycles(t *testing.T) {
	roots := BuildTree([]domain.Category{
		cat(1, "A", ptr(2)),
		cat(2, "B", ptr(1)),
	})

	require.Len(t, roots, 1)
	assert.Equal(t, int64(1), roots[0].ID)
	require.Len(t, roots[0].Children, 1)
	assert.Equal(t, int64(2), roots[0].Children[0].ID)
	assert.Empty(t, roots[0].Children[0].Children)
}

func TestBuildTree_Empty(t *testing.T) {
	assert.Empty(t, BuildTree(nil))
}
