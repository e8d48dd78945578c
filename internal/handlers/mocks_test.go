package handlers_test

import (
	"context"

	"github.com/SscSPs/household_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/household_ledger/internal/core/ports/services"
	"github.com/SscSPs/household_ledger/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock AccountService ---
type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) ListAccounts(ctx context.Context, tenantID int64) ([]domain.Account, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}
func (m *MockAccountService) ListAccountSelectItems(ctx context.Context, tenantID int64, accountType domain.AccountType) ([]dto.SelectItem, error) {
	args := m.Called(ctx, tenantID, accountType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.SelectItem), args.Error(1)
}
func (m *MockAccountService) CreateAccount(ctx context.Context, tenantID int64, req dto.CreateAccountRequest) (*domain.Account, error) {
	args := m.Called(ctx, tenantID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

var _ portssvc.AccountSvcFacade = (*MockAccountService)(nil)

// --- Mock CategoryService ---
type MockCategoryService struct {
	mock.Mock
}

func (m *MockCategoryService) GetCategoryTree(ctx context.Context, tenantID int64) ([]dto.CategoryTreeResponse, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.CategoryTreeResponse), args.Error(1)
}
func (m *MockCategoryService) ListCategorySelectItems(ctx context.Context, tenantID int64) ([]dto.SelectItem, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.SelectItem), args.Error(1)
}
func (m *MockCategoryService) CreateCategory(ctx context.Context, tenantID int64, req dto.CreateCategoryRequest) (*domain.Category, error) {
	args := m.Called(ctx, tenantID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}
func (m *MockCategoryService) UpdateCategory(ctx context.Context, tenantID, categoryID int64, req dto.UpdateCategoryRequest) (*domain.Category, error) {
	args := m.Called(ctx, tenantID, categoryID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}
func (m *MockCategoryService) DeleteCategory(ctx context.Context, tenantID, categoryID int64) error {
	args := m.Called(ctx, tenantID, categoryID)
	return args.Error(0)
}
func (m *MockCategoryService) MoveProducts(ctx context.Context, tenantID, fromCategoryID int64, toCategoryID *int64) (int64, error) {
	args := m.Called(ctx, tenantID, fromCategoryID, toCategoryID)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockCategoryService) MergeCategory(ctx context.Context, tenantID, sourceCategoryID, targetCategoryID int64) (int64, error) {
	args := m.Called(ctx, tenantID, sourceCategoryID, targetCategoryID)
	return args.Get(0).(int64), args.Error(1)
}

var _ portssvc.CategorySvcFacade = (*MockCategoryService)(nil)

// --- Mock ProductService ---
type MockProductService struct {
	mock.Mock
}

func (m *MockProductService) ListProducts(ctx context.Context, tenantID int64) ([]domain.Product, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}
func (m *MockProductService) ListProductSelectItems(ctx context.Context, tenantID int64) ([]dto.SelectItem, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.SelectItem), args.Error(1)
}
func (m *MockProductService) ListProductsByCategory(ctx context.Context, tenantID int64, categoryID *int64) ([]domain.Product, error) {
	args := m.Called(ctx, tenantID, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}
func (m *MockProductService) ListProductsNotInCategory(ctx context.Context, tenantID int64, categoryID *int64) ([]domain.Product, error) {
	args := m.Called(ctx, tenantID, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}
func (m *MockProductService) CreateProduct(ctx context.Context, tenantID int64, req dto.CreateProductRequest) (*domain.Product, error) {
	args := m.Called(ctx, tenantID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}
func (m *MockProductService) UpdateProductCategory(ctx context.Context, tenantID int64, req dto.UpdateProductCategoryRequest) (*domain.Product, error) {
	args := m.Called(ctx, tenantID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

var _ portssvc.ProductSvcFacade = (*MockProductService)(nil)

// --- Mock TransactionService ---
type MockTransactionService struct {
	mock.Mock
}

func (m *MockTransactionService) FindTransactions(ctx context.Context, tenantID int64, query dto.TransactionQuery) ([]dto.TransactionResponse, error) {
	args := m.Called(ctx, tenantID, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.TransactionResponse), args.Error(1)
}
func (m *MockTransactionService) CreateTransaction(ctx context.Context, tenantID int64, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, tenantID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

var _ portssvc.TransactionSvcFacade = (*MockTransactionService)(nil)
