package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"currencyrates/internal/models"
	"currencyrates/internal/repository"

	"github.com/lib/pq"
)

const currencyEntity = "currency"

const currencyColumns = `id, status, name, code, created, updated`

type currencyRepository struct {
	repository.BaseRepository
}

// NewCurrencyRepository creates a new PostgreSQL currency repository
func NewCurrencyRepository(db *sql.DB) repository.CurrencyRepository {
	return &currencyRepository{
		BaseRepository: repository.NewBaseRepository(db),
	}
}

func (r *currencyRepository) Find(ctx context.Context, filter repository.CurrencyFilter) ([]models.Currency, error) {
	query := `SELECT ` + currencyColumns + ` FROM currencies`

	conditions := make([]string, 0)
	args := make([]interface{}, 0)
	argCount := 1

	if filter.ID != nil {
		conditions = append(conditions, fmt.Sprintf("id = $%d", argCount))
		args = append(args, *filter.ID)
		argCount++
	}
	if filter.Status != nil {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argCount))
		args = append(args, *filter.Status)
		argCount++
	}
	if filter.Code != nil {
		conditions = append(conditions, fmt.Sprintf("code = $%d", argCount))
		args = append(args, *filter.Code)
		argCount++
	}
	if filter.Name != nil {
		conditions = append(conditions, fmt.Sprintf("name = $%d", argCount))
		args = append(args, *filter.Name)
		argCount++
	}
	if filter.Codes != nil {
		conditions = append(conditions, fmt.Sprintf("code = ANY($%d)", argCount))
		args = append(args, pq.Array(filter.Codes))
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY id ASC"

	rows, err := r.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("find currencies: %w", err)
	}
	defer rows.Close()

	currencies := make([]models.Currency, 0)
	for rows.Next() {
		var currency models.Currency
		if err := scanCurrency(rows, &currency); err != nil {
			return nil, err
		}
		currencies = append(currencies, currency)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return currencies, nil
}

func (r *currencyRepository) GetByID(ctx context.Context, id int64) (*models.Currency, error) {
	query := `SELECT ` + currencyColumns + ` FROM currencies WHERE id = $1`

	currency := &models.Currency{}
	err := scanCurrency(r.DB().QueryRowContext(ctx, query, id), currency)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return currency, nil
}

// Create inserts the currency as ACTIVE whatever status it carries
func (r *currencyRepository) Create(ctx context.Context, currency *models.Currency) error {
	query := `
		INSERT INTO currencies (status, name, code)
		VALUES ($1, $2, $3)
		RETURNING id, created, updated`

	currency.Status = models.CurrencyStatusActive
	err := r.Transaction(ctx, func(tx *sql.Tx) error {
		return tx.QueryRowContext(ctx, query,
			currency.Status,
			currency.Name,
			currency.Code,
		).Scan(&currency.ID, &currency.Created, &currency.Updated)
	})

	if err != nil {
		if isIntegrityViolation(err) {
			return &repository.CreateError{Entity: currencyEntity, Reason: "Integrity error", Err: err}
		}
		return fmt.Errorf("create currency: %w", err)
	}
	return nil
}

// Update applies changes and stores the result. On failure currency is
// left untouched.
func (r *currencyRepository) Update(ctx context.Context, currency *models.Currency, changes models.CurrencyChanges) error {
	query := `
		UPDATE currencies
		SET status = $1, name = $2, code = $3, updated = now()
		WHERE id = $4
		RETURNING updated`

	next := *currency
	changes.Apply(&next)

	err := r.Transaction(ctx, func(tx *sql.Tx) error {
		return tx.QueryRowContext(ctx, query,
			next.Status,
			next.Name,
			next.Code,
			next.ID,
		).Scan(&next.Updated)
	})

	if err != nil {
		if reason, ok := rejection(err); ok {
			return &repository.UpdateError{Entity: currencyEntity, Reason: reason, Err: err}
		}
		return fmt.Errorf("update currency: %w", err)
	}

	*currency = next
	return nil
}

// SoftDelete flips the status to DELETED. The row is kept.
func (r *currencyRepository) SoftDelete(ctx context.Context, currency *models.Currency) error {
	deleted := models.CurrencyStatusDeleted
	err := r.Update(ctx, currency, models.CurrencyChanges{Status: &deleted})

	var updateErr *repository.UpdateError
	if errors.As(err, &updateErr) {
		return &repository.DeleteError{Entity: currencyEntity, Reason: updateErr.Reason, Err: err}
	}
	return err
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanCurrency(row rowScanner, currency *models.Currency) error {
	return row.Scan(
		&currency.ID,
		&currency.Status,
		&currency.Name,
		&currency.Code,
		&currency.Created,
		&currency.Updated,
	)
}
