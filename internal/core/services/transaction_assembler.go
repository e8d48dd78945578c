package services

import (
	"github.com/SscSPs/household_ledger/internal/core/domain"
	"github.com/SscSPs/household_ledger/internal/core/taxonomy"
	"github.com/SscSPs/household_ledger/internal/dto"
	"github.com/SscSPs/household_ledger/internal/utils"
)

// CategoryPathCache maps a category id to its breadcrumb path. It lives for one request.
type CategoryPathCache map[int64]string

// NewCategoryPathCache computes the path of every distinct category referenced by the details of txns.
func NewCategoryPathCache(idx *taxonomy.Index, txns []domain.Transaction) CategoryPathCache {
	cache := make(CategoryPathCache)
	for _, txn := range txns {
		for _, d := range txn.Details {
			if d.Product == nil || d.Product.CategoryID == nil {
				continue
			}
			id := *d.Product.CategoryID
			if _, ok := cache[id]; ok {
				continue
			}
			if _, ok := idx.Get(id); !ok {
				continue
			}
			cache[id] = idx.Path(id)
		}
	}
	return cache
}

func (c CategoryPathCache) lookup(categoryID *int64) *string {
	if categoryID == nil {
		return nil
	}
	path, ok := c[*categoryID]
	if !ok {
		return nil
	}
	return &path
}

// AssembleTransactions shapes transactions with their details for clients.
func AssembleTransactions(txns []domain.Transaction, paths CategoryPathCache) []dto.TransactionResponse {
	res := make([]dto.TransactionResponse, len(txns))
	for i := range txns {
		res[i] = assembleTransaction(&txns[i], paths)
	}
	return res
}

func assembleTransaction(txn *domain.Transaction, paths CategoryPathCache) dto.TransactionResponse {
	res := dto.TransactionResponse{
		ID:          txn.ID,
		Name:        txn.Name,
		Description: txn.Description,
		Amount:      txn.Amount,
		Date:        txn.Date,
		TenantID:    txn.TenantID,
		Details:     make([]dto.TransactionDetailResponse, len(txn.Details)),
	}
	if txn.Account != nil {
		res.Account = dto.ToAccountResponse(txn.Account)
		res.FormattedAmount = utils.FormatAmount(txn.Amount, txn.Account.Currency)
	}
	if txn.Counterparty != nil {
		res.Counterparty = dto.ToAccountResponse(txn.Counterparty)
	}

	for i, d := range txn.Details {
		detail := dto.TransactionDetailResponse{
			ID:                 d.ID,
			TransactionID:      d.TransactionID,
			ProductOrServiceID: d.ProductOrServiceID,
			Quantity:           d.Quantity,
			PricePerUnit:       d.PricePerUnit,
			TenantID:           d.TenantID,
		}
		if d.Product != nil {
			detail.ProductOrService = dto.ToProductResponse(d.Product)
			detail.CategoryPath = paths.lookup(d.Product.CategoryID)
			if detail.ProductOrService.Category != nil {
				detail.ProductOrService.Category.CategoryPath = detail.CategoryPath
			}
		} else {
			detail.ProductOrService = dto.ProductResponse{ID: d.ProductOrServiceID}
		}
		res.Details[i] = detail
	}
	return res
}
