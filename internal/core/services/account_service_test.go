package services

import (
	"context"
	"testing"

	"github.com/SscSPs/household_ledger/internal/adapters/database/memory"
	"github.com/SscSPs/household_ledger/internal/apperrors"
	"github.com/SscSPs/household_ledger/internal/core/domain"
	"github.com/SscSPs/household_ledger/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountService(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	store.SeedReferenceData()
	repos := store.Repositories()
	svc := NewAccountService(repos.AccountRepo, WithCurrencyRepository(repos.CurrencyRepo))

	note := "daily spending"
	wallet, err := svc.CreateAccount(ctx, tenantA, dto.CreateAccountRequest{
		Name: "Wallet", Type: domain.AccountTypeOwn, CurrencyCode: "eur", Description: &note,
	})
	require.NoError(t, err)
	assert.Equal(t, "EUR", wallet.Currency.Code)

	_, err = svc.CreateAccount(ctx, tenantA, dto.CreateAccountRequest{Name: "Bakery", Type: domain.AccountTypeCounterparty, CurrencyCode: "EUR"})
	require.NoError(t, err)

	_, err = svc.CreateAccount(ctx, tenantA, dto.CreateAccountRequest{Name: "Bad", Type: domain.AccountTypeOwn, CurrencyCode: "XXX"})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	_, err = svc.CreateAccount(ctx, tenantA, dto.CreateAccountRequest{Name: "Bad", Type: "SAVINGS", CurrencyCode: "EUR"})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	all, err := svc.ListAccounts(ctx, tenantA)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	own, err := svc.ListAccountSelectItems(ctx, tenantA, domain.AccountTypeOwn)
	require.NoError(t, err)
	assert.Equal(t, []dto.SelectItem{{ID: wallet.ID, Label: "Wallet"}}, own)

	counterparties, err := svc.ListAccountSelectItems(ctx, tenantA, domain.AccountTypeCounterparty)
	require.NoError(t, err)
	require.Len(t, counterparties, 1)
	assert.Equal(t, "Bakery", counterparties[0].Label)

	others, err := svc.ListAccounts(ctx, tenantB)
	require.NoError(t, err)
	assert.Empty(t, others)
}
