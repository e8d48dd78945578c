package main

import (
	"bytes"
	"testing"

	"github.com/SscSPs/household_ledger/internal/core/domain"
	"github.com/SscSPs/household_ledger/internal/core/taxonomy"
	"github.com/stretchr/testify/assert"
)

func TestPrintTree(t *testing.T) {
	food, dairy := int64(1), int64(2)
	roots := taxonomy.BuildTree([]domain.Category{
		{ID: 3, Name: "Cheese", SuperCategoryID: &dairy},
		{ID: 1, Name: "Food"},
		{ID: 2, Name: "Dairy", SuperCategoryID: &food},
		{ID: 4, Name: "Transport"},
	})

	var buf bytes.Buffer
	printTree(&buf, roots)

	assert.Equal(t, "Food (1)\n  Dairy (2)\n    Cheese (3)\nTransport (4)\n", buf.String())
}
