// Package memory is an in-process implementation of the repository ports.
//
// It keeps the whole dataset in maps guarded by one RWMutex. RunAtomic works on a
// copy of the dataset and swaps it in on success, so a failed unit of work leaves
// no trace. Foreign keys are enforced the way the Postgres schema enforces them.
package memory

import (
	"context"
	"maps"
	"sync"

	"github.com/SscSPs/household_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/household_ledger/internal/core/ports/repositories"
)

type dataset struct {
	seq          map[string]int64
	currencies   map[int64]domain.Currency
	units        map[int64]domain.MeasureUnit
	accounts     map[int64]domain.Account
	categories   map[int64]domain.Category
	products     map[int64]domain.Product
	transactions map[int64]domain.Transaction
	details      map[int64]domain.TransactionDetail
}

func newDataset() *dataset {
	return &dataset{
		seq:          make(map[string]int64),
		currencies:   make(map[int64]domain.Currency),
		units:        make(map[int64]domain.MeasureUnit),
		accounts:     make(map[int64]domain.Account),
		categories:   make(map[int64]domain.Category),
		products:     make(map[int64]domain.Product),
		transactions: make(map[int64]domain.Transaction),
		details:      make(map[int64]domain.TransactionDetail),
	}
}

// clone copies every table. Stored values never share mutable state, so copying the maps is enough.
func (d *dataset) clone() *dataset {
	return &dataset{
		seq:          maps.Clone(d.seq),
		currencies:   maps.Clone(d.currencies),
		units:        maps.Clone(d.units),
		accounts:     maps.Clone(d.accounts),
		categories:   maps.Clone(d.categories),
		products:     maps.Clone(d.products),
		transactions: maps.Clone(d.transactions),
		details:      maps.Clone(d.details),
	}
}

func (d *dataset) nextID(table string) int64 {
	d.seq[table]++
	return d.seq[table]
}

// Store is the in-memory store. The zero value is not usable; call NewStore.
type Store struct {
	mu   sync.RWMutex
	data *dataset
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{data: newDataset()}
}

// Ensure Store implements portsrepo.Store
var _ portsrepo.Store = (*Store)(nil)

// Repositories returns repositories that lock the live dataset per call.
func (s *Store) Repositories() portsrepo.RepositoryProvider {
	return newProvider(&view{store: s})
}

// RunAtomic runs fn against a private copy of the dataset and publishes it only when fn succeeds.
// Atomic units are serialised.
func (s *Store) RunAtomic(ctx context.Context, fn portsrepo.AtomicFunc) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	work := s.data.clone()
	if err := fn(ctx, newProvider(&view{store: s, tx: work})); err != nil {
		return err
	}
	s.data = work
	return nil
}

// SeedCurrency inserts reference currency data and returns it with its id.
func (s *Store) SeedCurrency(c domain.Currency) domain.Currency {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.ID = s.data.nextID("currencies")
	s.data.currencies[c.ID] = c
	return c
}

// SeedUnit inserts a measure unit and returns it with its id.
func (s *Store) SeedUnit(u domain.MeasureUnit) domain.MeasureUnit {
	s.mu.Lock()
	defer s.mu.Unlock()
	u.ID = s.data.nextID("units")
	s.data.units[u.ID] = u
	return u
}

// SeedReferenceData inserts the same currencies and units the SQL migrations ship with.
func (s *Store) SeedReferenceData() {
	for _, c := range defaultCurrencies {
		s.SeedCurrency(c)
	}
	for _, u := range defaultUnits {
		s.SeedUnit(u)
	}
}

var defaultCurrencies = []domain.Currency{
	{Name: "US Dollar", Code: "USD", Symbol: "$", FractionalPartName: "cent", PartFraction: 100},
	{Name: "Euro", Code: "EUR", Symbol: "€", FractionalPartName: "cent", PartFraction: 100},
	{Name: "Indian Rupee", Code: "INR", Symbol: "₹", FractionalPartName: "paisa", PartFraction: 100},
	{Name: "Japanese Yen", Code: "JPY", Symbol: "¥", FractionalPartName: "sen", PartFraction: 1},
}

var defaultUnits = []domain.MeasureUnit{
	{Name: "piece", ShortName: "pc"},
	{Name: "kilogram", ShortName: "kg"},
	{Name: "gram", ShortName: "g"},
	{Name: "litre", ShortName: "l"},
	{Name: "millilitre", ShortName: "ml"},
	{Name: "hour", ShortName: "h"},
}

// view resolves which dataset a repository call works on and how it locks.
// Inside RunAtomic tx is set and the store lock is already held.
type view struct {
	store *Store
	tx    *dataset
}

func (v *view) read(fn func(d *dataset) error) error {
	if v.tx != nil {
		return fn(v.tx)
	}
	v.store.mu.RLock()
	defer v.store.mu.RUnlock()
	return fn(v.store.data)
}

func (v *view) write(fn func(d *dataset) error) error {
	if v.tx != nil {
		return fn(v.tx)
	}
	v.store.mu.Lock()
	defer v.store.mu.Unlock()
	return fn(v.store.data)
}

func newProvider(v *view) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo:     &accountRepository{v},
		CurrencyRepo:    &currencyRepository{v},
		UnitRepo:        &unitRepository{v},
		CategoryRepo:    &categoryRepository{v},
		ProductRepo:     &productRepository{v},
		TransactionRepo: &transactionRepository{v},
	}
}

func cloneID(p *int64) *int64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneString(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
