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

// rateListParams are the query arguments List honours
var rateListParams = []string{
	schema.RateFieldCurrency,
	schema.RateFieldBaseCurrency,
	schema.RateFieldRate,
	schema.RateFieldIsCash,
	schema.RateFieldOperationType,
}

// RateService implements the rate operations
type RateService struct {
	rates      repository.RateRepository
	currencies repository.CurrencyRepository
	links      schema.Linker
}

// NewRateService creates a new RateService
func NewRateService(rates repository.RateRepository, currencies repository.CurrencyRepository, links schema.Linker) *RateService {
	return &RateService{rates: rates, currencies: currencies, links: links}
}

// List returns rates whose both currencies are ACTIVE. Currency filters are
// given as codes; a code with no ACTIVE currency matches nothing.
func (s *RateService) List(ctx context.Context, args schema.Payload) (*Response, error) {
	logging.FromContext(ctx).Info("Getting rates")

	filter := repository.RateFilter{ActiveOnly: true}

	if args = args.Only(rateListParams...); len(args) > 0 {
		q, err := schema.DecodeRateQuery(args)
		if err != nil {
			return nil, invalid(err)
		}
		filter.Rate = q.Rate
		filter.IsCash = q.IsCash
		filter.OperationType = q.OperationType

		ids, err := s.resolveCodes(ctx, q.CurrencyCode, q.BaseCode)
		if err != nil {
			return nil, err
		}
		if (q.CurrencyCode != nil && ids[*q.CurrencyCode] == 0) || (q.BaseCode != nil && ids[*q.BaseCode] == 0) {
			return s.listResponse(nil)
		}
		if q.CurrencyCode != nil {
			id := ids[*q.CurrencyCode]
			filter.CurrencyID = &id
		}
		if q.BaseCode != nil {
			id := ids[*q.BaseCode]
			filter.BaseID = &id
		}
	}

	rates, err := s.rates.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list rates: %w", err)
	}
	return s.listResponse(rates)
}

// Get returns the detail view of a rate whose both currencies are ACTIVE
func (s *RateService) Get(ctx context.Context, id int64) (*Response, error) {
	logging.FromContext(ctx).Info("Getting rate", slog.Int64("id", id))

	rate, err := s.rates.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) ||
		(err == nil && (rate.Currency.Status != models.CurrencyStatusActive || rate.Base.Status != models.CurrencyStatusActive)) {
		return nil, notFound(fmt.Sprintf("Rate with id: %d not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("get rate: %w", err)
	}

	body, err := schema.NewRateDetailResponse(*rate, s.links)
	if err != nil {
		return nil, fmt.Errorf("encode rate: %w", err)
	}
	return ok(body), nil
}

// Create resolves both currency codes among ACTIVE currencies and stores
// the rate.
func (s *RateService) Create(ctx context.Context, payload schema.Payload) (*Response, error) {
	logger := logging.FromContext(ctx)
	logger.Info("Creating a new rate")

	in, err := schema.DecodeRateCreate(payload)
	if err != nil {
		logger.Warn("Invalid rate payload", slog.Any("error", err))
		return nil, invalid(err)
	}

	ids, err := s.resolveCodes(ctx, &in.BaseCode, &in.CurrencyCode)
	if err != nil {
		return nil, err
	}
	baseID, currencyID := ids[in.BaseCode], ids[in.CurrencyCode]
	if baseID == 0 {
		return nil, badRequest(currencyNotFound(in.BaseCode))
	}
	if currencyID == 0 {
		return nil, badRequest(currencyNotFound(in.CurrencyCode))
	}

	rate, err := in.Record(baseID, currencyID)
	if err != nil {
		return nil, invalid(err)
	}

	if err := s.rates.Create(ctx, &rate); err != nil {
		var createErr *repository.CreateError
		if errors.As(err, &createErr) {
			logger.Error("Rate create rejected", slog.Any("error", err))
			return nil, newError(http.StatusUnprocessableEntity, createErr.Error(), err)
		}
		return nil, fmt.Errorf("create rate: %w", err)
	}

	logger.Info("Rate created", slog.Int64("id", rate.ID))
	return created(rate.ID), nil
}

// Update changes operationType, rate or isCash of a rate. The status of
// the linked currencies is not checked.
func (s *RateService) Update(ctx context.Context, id int64, payload schema.Payload) (*Response, error) {
	logger := logging.FromContext(ctx)
	logger.Info("Updating rate", slog.Int64("id", id))

	rate, err := s.existingRate(ctx, id)
	if err != nil {
		return nil, err
	}

	if payload.Has(schema.RateFieldID) {
		return nil, badRequest(msgIDNotUpdatable)
	}

	changes, err := schema.DecodeRateUpdate(payload)
	if err != nil {
		logger.Warn("Invalid rate payload", slog.Any("error", err))
		return nil, invalid(err)
	}

	if err := s.rates.Update(ctx, &rate.Rate, changes); err != nil {
		var updateErr *repository.UpdateError
		if errors.As(err, &updateErr) {
			logger.Error("Rate update rejected", slog.Any("error", err))
			return nil, newError(http.StatusBadRequest, updateErr.Reason, err)
		}
		return nil, fmt.Errorf("update rate: %w", err)
	}

	record, err := schema.NewRateResponse(*rate)
	if err != nil {
		return nil, fmt.Errorf("encode rate: %w", err)
	}
	return ok(schema.RateUpdatedResponse{Status: models.StatusUpdated, Record: record}), nil
}

// Delete removes a rate
func (s *RateService) Delete(ctx context.Context, id int64) (*Response, error) {
	logger := logging.FromContext(ctx)
	logger.Info("Deleting rate", slog.Int64("id", id))

	rate, err := s.existingRate(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.rates.Delete(ctx, &rate.Rate); err != nil {
		var deleteErr *repository.DeleteError
		if errors.As(err, &deleteErr) {
			logger.Error("Rate delete rejected", slog.Any("error", err))
			return nil, newError(http.StatusConflict, deleteErr.Reason, err)
		}
		return nil, fmt.Errorf("delete rate: %w", err)
	}
	return noContent(), nil
}

func (s *RateService) existingRate(ctx context.Context, id int64) (*models.RateDetail, error) {
	rate, err := s.rates.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, notFound(fmt.Sprintf("Rate with id: %d does not exist.", id))
	}
	if err != nil {
		return nil, fmt.Errorf("get rate: %w", err)
	}
	return rate, nil
}

// resolveCodes maps the given codes to ids of ACTIVE currencies with a
// single lookup. Unresolved codes are absent from the result.
func (s *RateService) resolveCodes(ctx context.Context, codes ...*string) (map[string]int64, error) {
	wanted := make([]string, 0, len(codes))
	for _, c := range codes {
		if c != nil {
			wanted = append(wanted, *c)
		}
	}
	ids := make(map[string]int64, len(wanted))
	if len(wanted) == 0 {
		return ids, nil
	}

	active := models.CurrencyStatusActive
	found, err := s.currencies.Find(ctx, repository.CurrencyFilter{Codes: wanted, Status: &active})
	if err != nil {
		return nil, fmt.Errorf("resolve currency codes: %w", err)
	}
	for _, c := range found {
		ids[c.Code] = c.ID
	}
	return ids, nil
}

func (s *RateService) listResponse(rates []models.RateDetail) (*Response, error) {
	body, err := schema.NewRateListResponse(rates)
	if err != nil {
		return nil, fmt.Errorf("encode rates: %w", err)
	}
	return ok(body), nil
}

func currencyNotFound(code string) string {
	return fmt.Sprintf("Currency with code: %s not found", code)
}
