package dto

import (
	"encoding/json"
	"testing"

	"github.com/SscSPs/household_ledger/internal/core/domain"
	"github.com/SscSPs/household_ledger/internal/core/taxonomy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexibleStrings_ScalarAndArrayAgree(t *testing.T) {
	var scalar, array, number, mixed TransactionQuery
	require.NoError(t, json.Unmarshal([]byte(`{"categoryIds":"5"}`), &scalar))
	require.NoError(t, json.Unmarshal([]byte(`{"categoryIds":["5"]}`), &array))
	require.NoError(t, json.Unmarshal([]byte(`{"categoryIds":5}`), &number))
	require.NoError(t, json.Unmarshal([]byte(`{"categoryIds":[5,"6"],"productNames":" milk "}`), &mixed))

	assert.Equal(t, FlexibleStrings{"5"}, scalar.CategoryIDs)
	assert.Equal(t, scalar.CategoryIDs, array.CategoryIDs)
	assert.Equal(t, scalar.CategoryIDs, number.CategoryIDs)
	assert.Equal(t, FlexibleStrings{"5", "6"}, mixed.CategoryIDs)
	assert.Equal(t, FlexibleStrings{" milk "}, mixed.ProductNames)
}

func TestFlexibleStrings_NullAndObjects(t *testing.T) {
	var q TransactionQuery
	require.NoError(t, json.Unmarshal([]byte(`{"categoryIds":null,"accountId":12}`), &q))
	assert.Empty(t, q.CategoryIDs)
	assert.Equal(t, FlexibleString("12"), q.AccountID)

	assert.Error(t, json.Unmarshal([]byte(`{"categoryIds":{"a":1}}`), &q))
}

func TestOptionalID(t *testing.T) {
	testCases := []struct {
		name      string
		body      string
		wantSet   bool
		wantValue *int64
	}{
		{"absent", `{"name":"x"}`, false, nil},
		{"null", `{"name":"x","superCategoryId":null}`, true, nil},
		{"value", `{"name":"x","superCategoryId":7}`, true, int64Ptr(7)},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var req UpdateCategoryRequest
			require.NoError(t, json.Unmarshal([]byte(tc.body), &req))
			assert.Equal(t, tc.wantSet, req.SuperCategoryID.Set)
			assert.Equal(t, tc.wantValue, req.SuperCategoryID.Value)
		})
	}

	var req UpdateCategoryRequest
	assert.Error(t, json.Unmarshal([]byte(`{"superCategoryId":"seven"}`), &req))
}

func TestTransactionResponse_OmitsNullFields(t *testing.T) {
	res := TransactionResponse{
		ID:   1,
		Name: "Groceries",
		Details: []TransactionDetailResponse{
			{ID: 2, ProductOrService: ProductResponse{ID: 3, Name: "Milk"}},
		},
	}

	raw, err := json.Marshal(res)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.NotContains(t, decoded, "description")

	details := decoded["details"].([]any)
	detail := details[0].(map[string]any)
	assert.NotContains(t, detail, "categoryPath")
	product := detail["productOrService"].(map[string]any)
	assert.NotContains(t, product, "category")
	assert.NotContains(t, product, "unit")
	assert.NotContains(t, product, "categoryId")
}

func TestToCategoryTreeResponse(t *testing.T) {
	parent := int64(1)
	roots := taxonomy.BuildTree([]domain.Category{
		{ID: 1, Name: "Food"},
		{ID: 2, Name: "Dairy", SuperCategoryID: &parent},
	})

	res := ToCategoryTreeResponse(roots)

	require.Len(t, res, 1)
	assert.Nil(t, res[0].SuperCategoryID)
	require.Len(t, res[0].Children, 1)
	assert.Equal(t, "Dairy", res[0].Children[0].Name)
	assert.Equal(t, &parent, res[0].Children[0].SuperCategoryID)
	assert.NotNil(t, res[0].Children[0].Children)

	raw, err := json.Marshal(res[0])
	require.NoError(t, err)
	assert.NotContains(t, string(raw), `"superCategoryId":null`)
}

func int64Ptr(v int64) *int64 { return &v }
