package pgsql

import (
	"context"
	"strconv"
	"strings"

	"github.com/SscSPs/household_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/household_ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
)

const currencyColumns = `id, name, code, symbol, fractional_part_name, part_fraction`

type PgxCurrencyRepository struct {
	db querier
}

func newPgxCurrencyRepository(db querier) *PgxCurrencyRepository {
	return &PgxCurrencyRepository{db: db}
}

// Ensure PgxCurrencyRepository implements portsrepo.CurrencyRepositoryFacade
var _ portsrepo.CurrencyRepositoryFacade = (*PgxCurrencyRepository)(nil)

func scanCurrency(row pgx.Row) (*domain.Currency, error) {
	var c domain.Currency
	if err := row.Scan(&c.ID, &c.Name, &c.Code, &c.Symbol, &c.FractionalPartName, &c.PartFraction); err != nil {
		return nil, err
	}
	return &c, nil
}

// FindCurrencyByID retrieves a currency by its ID.
func (r *PgxCurrencyRepository) FindCurrencyByID(ctx context.Context, id int64) (*domain.Currency, error) {
	query := `SELECT ` + currencyColumns + ` FROM currencies WHERE id = $1;`
	c, err := scanCurrency(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, mapError(err, "find currency "+strconv.FormatInt(id, 10))
	}
	return c, nil
}

// FindCurrencyByCode retrieves a currency by its ISO code, case-insensitively.
func (r *PgxCurrencyRepository) FindCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error) {
	query := `SELECT ` + currencyColumns + ` FROM currencies WHERE code = $1;`
	c, err := scanCurrency(r.db.QueryRow(ctx, query, strings.ToUpper(code)))
	if err != nil {
		return nil, mapError(err, "find currency "+code)
	}
	return c, nil
}

// ListCurrencies retrieves all currencies ordered by code.
func (r *PgxCurrencyRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	rows, err := r.db.Query(ctx, `SELECT `+currencyColumns+` FROM currencies ORDER BY code;`)
	if err != nil {
		return nil, mapError(err, "list currencies")
	}
	defer rows.Close()

	currencies := []domain.Currency{}
	for rows.Next() {
		c, err := scanCurrency(rows)
		if err != nil {
			return nil, mapError(err, "scan currency")
		}
		currencies = append(currencies, *c)
	}
	return currencies, mapError(rows.Err(), "iterate currencies")
}

type PgxUnitRepository struct {
	db querier
}

func newPgxUnitRepository(db querier) *PgxUnitRepository {
	return &PgxUnitRepository{db: db}
}

var _ portsrepo.UnitReader = (*PgxUnitRepository)(nil)

// FindUnitByID retrieves a measure unit by its ID.
func (r *PgxUnitRepository) FindUnitByID(ctx context.Context, id int64) (*domain.MeasureUnit, error) {
	var u domain.MeasureUnit
	err := r.db.QueryRow(ctx, `SELECT id, name, short_name FROM measure_units WHERE id = $1;`, id).
		Scan(&u.ID, &u.Name, &u.ShortName)
	if err != nil {
		return nil, mapError(err, "find unit "+strconv.FormatInt(id, 10))
	}
	return &u, nil
}

// ListUnits retrieves all measure units ordered by id.
func (r *PgxUnitRepository) ListUnits(ctx context.Context) ([]domain.MeasureUnit, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, short_name FROM measure_units ORDER BY id;`)
	if err != nil {
		return nil, mapError(err, "list units")
	}
	defer rows.Close()

	units := []domain.MeasureUnit{}
	for rows.Next() {
		var u domain.MeasureUnit
		if err := rows.Scan(&u.ID, &u.Name, &u.ShortName); err != nil {
			return nil, mapError(err, "scan unit")
		}
		units = append(units, u)
	}
	return units, mapError(rows.Err(), "iterate units")
}
