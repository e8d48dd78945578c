package services

import (
	portsrepo "github.com/SscSPs/household_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/household_ledger/internal/core/ports/services"
)

// NewServiceContainer wires every application service against one store.
func NewServiceContainer(store portsrepo.Store, identity portssvc.IdentityResolver) *portssvc.ServiceContainer {
	repos := store.Repositories()
	return &portssvc.ServiceContainer{
		Account:     NewAccountService(repos.AccountRepo, WithCurrencyRepository(repos.CurrencyRepo)),
		Category:    NewCategoryService(store),
		Product:     NewProductService(store),
		Transaction: NewTransactionService(store),
		Identity:    identity,
	}
}
