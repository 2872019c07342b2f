package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"currencyrates/internal/models"
	"currencyrates/internal/repository"
)

const rateEntity = "rate"

const rateDetailQuery = `
	SELECT r.id, r.operation_type, r.rate, r.is_cash, r.currency_id, r.base_id, r.created, r.updated,
		c.id, c.code, c.status,
		b.id, b.code, b.status
	FROM rates r
	JOIN currencies c ON c.id = r.currency_id
	JOIN currencies b ON b.id = r.base_id`

type rateRepository struct {
	repository.BaseRepository
}

// NewRateRepository creates a new PostgreSQL rate repository
func NewRateRepository(db *sql.DB) repository.RateRepository {
	return &rateRepository{
		BaseRepository: repository.NewBaseRepository(db),
	}
}

func (r *rateRepository) Find(ctx context.Context, filter repository.RateFilter) ([]models.RateDetail, error) {
	query := rateDetailQuery

	conditions := make([]string, 0)
	args := make([]interface{}, 0)
	argCount := 1

	if filter.ID != nil {
		conditions = append(conditions, fmt.Sprintf("r.id = $%d", argCount))
		args = append(args, *filter.ID)
		argCount++
	}
	if filter.CurrencyID != nil {
		conditions = append(conditions, fmt.Sprintf("r.currency_id = $%d", argCount))
		args = append(args, *filter.CurrencyID)
		argCount++
	}
	if filter.BaseID != nil {
		conditions = append(conditions, fmt.Sprintf("r.base_id = $%d", argCount))
		args = append(args, *filter.BaseID)
		argCount++
	}
	if filter.Rate != nil {
		conditions = append(conditions, fmt.Sprintf("r.rate = $%d", argCount))
		args = append(args, *filter.Rate)
		argCount++
	}
	if filter.IsCash != nil {
		conditions = append(conditions, fmt.Sprintf("r.is_cash = $%d", argCount))
		args = append(args, *filter.IsCash)
		argCount++
	}
	if filter.OperationType != nil {
		conditions = append(conditions, fmt.Sprintf("r.operation_type = $%d", argCount))
		args = append(args, *filter.OperationType)
		argCount++
	}
	if filter.ActiveOnly {
		conditions = append(conditions, fmt.Sprintf("c.status = $%d AND b.status = $%d", argCount, argCount))
		args = append(args, models.CurrencyStatusActive)
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY r.id ASC"

	rows, err := r.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("find rates: %w", err)
	}
	defer rows.Close()

	rates := make([]models.RateDetail, 0)
	for rows.Next() {
		var rate models.RateDetail
		if err := scanRateDetail(rows, &rate); err != nil {
			return nil, err
		}
		rates = append(rates, rate)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return rates, nil
}

// GetByID returns the rate and both currencies whatever their status
func (r *rateRepository) GetByID(ctx context.Context, id int64) (*models.RateDetail, error) {
	query := rateDetailQuery + ` WHERE r.id = $1`

	rate := &models.RateDetail{}
	err := scanRateDetail(r.DB().QueryRowContext(ctx, query, id), rate)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return rate, nil
}

func (r *rateRepository) Create(ctx context.Context, rate *models.Rate) error {
	query := `
		INSERT INTO rates (operation_type, rate, is_cash, currency_id, base_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created, updated`

	err := r.Transaction(ctx, func(tx *sql.Tx) error {
		return tx.QueryRowContext(ctx, query,
			rate.OperationType,
			rate.Rate,
			rate.IsCash,
			rate.CurrencyID,
			rate.BaseID,
		).Scan(&rate.ID, &rate.Created, &rate.Updated)
	})

	if err != nil {
		if isIntegrityViolation(err) {
			return &repository.CreateError{Entity: rateEntity, Reason: "Integrity error", Err: err}
		}
		return fmt.Errorf("create rate: %w", err)
	}
	return nil
}

// Update applies changes and stores the result. On failure rate is left
// untouched.
func (r *rateRepository) Update(ctx context.Context, rate *models.Rate, changes models.RateChanges) error {
	query := `
		UPDATE rates
		SET operation_type = $1, rate = $2, is_cash = $3, updated = now()
		WHERE id = $4
		RETURNING updated`

	next := *rate
	changes.Apply(&next)

	err := r.Transaction(ctx, func(tx *sql.Tx) error {
		return tx.QueryRowContext(ctx, query,
			next.OperationType,
			next.Rate,
			next.IsCash,
			next.ID,
		).Scan(&next.Updated)
	})

	if err != nil {
		if reason, ok := rejection(err); ok {
			return &repository.UpdateError{Entity: rateEntity, Reason: reason, Err: err}
		}
		return fmt.Errorf("update rate: %w", err)
	}

	*rate = next
	return nil
}

// Delete removes the rate row
func (r *rateRepository) Delete(ctx context.Context, rate *models.Rate) error {
	err := r.Transaction(ctx, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, `DELETE FROM rates WHERE id = $1`, rate.ID)
		if err != nil {
			return err
		}

		rowsAffected, err := result.RowsAffected()
		if err != nil {
			return err
		}
		if rowsAffected == 0 {
			return sql.ErrNoRows
		}
		return nil
	})

	if err != nil {
		if reason, ok := rejection(err); ok {
			return &repository.DeleteError{Entity: rateEntity, Reason: reason, Err: err}
		}
		return fmt.Errorf("delete rate: %w", err)
	}
	return nil
}

func scanRateDetail(row rowScanner, rate *models.RateDetail) error {
	return row.Scan(
		&rate.ID,
		&rate.OperationType,
		&rate.Rate.Rate,
		&rate.IsCash,
		&rate.CurrencyID,
		&rate.BaseID,
		&rate.Created,
		&rate.Updated,
		&rate.Currency.ID,
		&rate.Currency.Code,
		&rate.Currency.Status,
		&rate.Base.ID,
		&rate.Base.Code,
		&rate.Base.Status,
	)
}
