package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"currencyrates/internal/logging"
	"currencyrates/internal/models"
	"currencyrates/internal/repository"
	"currencyrates/internal/schema"
)

// currencyListParams are the query arguments List honours
var currencyListParams = []string{schema.CurrencyFieldCode, schema.CurrencyFieldName}

// CurrencyService implements the currency operations
type CurrencyService struct {
	currencies repository.CurrencyRepository
	links      schema.Linker
}

// NewCurrencyService creates a new CurrencyService
func NewCurrencyService(currencies repository.CurrencyRepository, links schema.Linker) *CurrencyService {
	return &CurrencyService{currencies: currencies, links: links}
}

// List returns ACTIVE currencies, optionally filtered by code and name
func (s *CurrencyService) List(ctx context.Context, args schema.Payload) (*Response, error) {
	logging.FromContext(ctx).Info("Getting all currencies")

	active := models.CurrencyStatusActive
	filter := repository.CurrencyFilter{Status: &active}

	if args = args.Only(currencyListParams...); len(args) > 0 {
		q, err := schema.DecodeCurrencyQuery(args)
		if err != nil {
			return nil, invalid(err)
		}
		filter.Code = q.Code
		filter.Name = q.Name
	}

	currencies, err := s.currencies.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list currencies: %w", err)
	}

	body, err := schema.NewCurrencyListResponse(currencies)
	if err != nil {
		return nil, fmt.Errorf("encode currencies: %w", err)
	}
	return ok(body), nil
}

// Get returns the detail view of an ACTIVE currency
func (s *CurrencyService) Get(ctx context.Context, id int64) (*Response, error) {
	logging.FromContext(ctx).Info("Getting currency", slog.Int64("id", id))

	currency, err := s.activeCurrency(ctx, id)
	if err != nil {
		return nil, err
	}

	body, err := schema.NewCurrencyDetailResponse(*currency, s.links)
	if err != nil {
		return nil, fmt.Errorf("encode currency: %w", err)
	}
	return ok(body), nil
}

// Create stores a new ACTIVE currency. The code must not be held by
// another ACTIVE currency.
func (s *CurrencyService) Create(ctx context.Context, payload schema.Payload) (*Response, error) {
	logger := logging.FromContext(ctx)
	logger.Info("Creating a new currency")

	currency, err := schema.DecodeCurrencyCreate(payload)
	if err != nil {
		logger.Warn("Invalid currency payload", slog.Any("error", err))
		return nil, invalid(err)
	}

	duplicate, err := s.activeByCode(ctx, currency.Code)
	if err != nil {
		return nil, err
	}
	if duplicate != nil {
		return nil, conflict(duplicateMessage(duplicate.ID))
	}

	if err := s.currencies.Create(ctx, &currency); err != nil {
		var createErr *repository.CreateError
		if errors.As(err, &createErr) {
			logger.Error("Currency create rejected", slog.Any("error", err))
			return nil, newError(http.StatusUnprocessableEntity, createErr.Error(), err)
		}
		return nil, fmt.Errorf("create currency: %w", err)
	}

	logger.Info("Currency created", slog.Int64("id", currency.ID), slog.String("code", currency.Code))
	return created(currency.ID), nil
}

// Update applies a partial change to an ACTIVE currency
func (s *CurrencyService) Update(ctx context.Context, id int64, payload schema.Payload) (*Response, error) {
	logger := logging.FromContext(ctx)
	logger.Info("Updating currency", slog.Int64("id", id))

	currency, err := s.activeCurrency(ctx, id)
	if err != nil {
		return nil, err
	}

	if code, isString := payload[schema.CurrencyFieldCode].(string); isString {
		duplicate, err := s.activeByCode(ctx, code)
		if err != nil {
			return nil, err
		}
		if duplicate != nil && duplicate.ID != id {
			return nil, conflict(duplicateMessage(duplicate.ID))
		}
	}

	if payload.Has(schema.CurrencyFieldID) {
		return nil, badRequest(msgIDNotUpdatable)
	}

	changes, err := schema.DecodeCurrencyUpdate(payload)
	if err != nil {
		logger.Warn("Invalid currency payload", slog.Any("error", err))
		return nil, invalid(err)
	}

	if err := s.currencies.Update(ctx, currency, changes); err != nil {
		var updateErr *repository.UpdateError
		if errors.As(err, &updateErr) {
			logger.Error("Currency update rejected", slog.Any("error", err))
			return nil, newError(http.StatusBadRequest, updateErr.Reason, err)
		}
		return nil, fmt.Errorf("update currency: %w", err)
	}

	record, err := schema.NewCurrencyResponse(*currency)
	if err != nil {
		return nil, fmt.Errorf("encode currency: %w", err)
	}
	return ok(schema.CurrencyUpdatedResponse{Status: models.StatusUpdated, Record: record}), nil
}

// Delete soft-deletes an ACTIVE currency. Rates referring to it are kept.
func (s *CurrencyService) Delete(ctx context.Context, id int64) (*Response, error) {
	logger := logging.FromContext(ctx)
	logger.Info("Deleting currency", slog.Int64("id", id))

	currency, err := s.activeCurrency(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.currencies.SoftDelete(ctx, currency); err != nil {
		var deleteErr *repository.DeleteError
		if errors.As(err, &deleteErr) {
			logger.Error("Currency delete rejected", slog.Any("error", err))
			return nil, newError(http.StatusConflict, deleteErr.Reason, err)
		}
		return nil, fmt.Errorf("delete currency: %w", err)
	}
	return noContent(), nil
}

func (s *CurrencyService) activeCurrency(ctx context.Context, id int64) (*models.Currency, error) {
	currency, err := s.currencies.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) || (err == nil && !currency.IsActive()) {
		return nil, notFound(fmt.Sprintf("Currency with id: %d does not exist.", id))
	}
	if err != nil {
		return nil, fmt.Errorf("get currency: %w", err)
	}
	return currency, nil
}

func (s *CurrencyService) activeByCode(ctx context.Context, code string) (*models.Currency, error) {
	active := models.CurrencyStatusActive
	found, err := s.currencies.Find(ctx, repository.CurrencyFilter{Code: &code, Status: &active})
	if err != nil {
		return nil, fmt.Errorf("find currency by code: %w", err)
	}
	if len(found) == 0 {
		return nil, nil
	}
	return &found[0], nil
}

func duplicateMessage(id int64) string {
	return fmt.Sprintf("Currency with the same code already exists. Duplicated ID: %d", id)
}
