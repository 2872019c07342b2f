package service_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"currencyrates/internal/models"
	"currencyrates/internal/repository"
	"currencyrates/internal/schema"
	"currencyrates/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type CurrencyServiceTestSuite struct {
	suite.Suite
	ctx      context.Context
	mockRepo *MockCurrencyRepository
	service  *service.CurrencyService
}

func (suite *CurrencyServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.mockRepo = new(MockCurrencyRepository)
	suite.service = service.NewCurrencyService(suite.mockRepo, schema.NewLinker("http://api.test"))
}

func (suite *CurrencyServiceTestSuite) TearDownTest() {
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) requireError(err error, status int) *service.Error {
	suite.Require().Error(err)
	var svcErr *service.Error
	suite.Require().ErrorAs(err, &svcErr)
	suite.Equal(status, svcErr.Status)
	return svcErr
}

func usd() *models.Currency {
	return &models.Currency{
		ID:      1,
		Status:  models.CurrencyStatusActive,
		Name:    "US Dollar",
		Code:    "USD",
		Created: time.Date(2026, 10, 16, 10, 0, 0, 0, time.UTC),
	}
}

func (suite *CurrencyServiceTestSuite) TestList_AllActive() {
	active := models.CurrencyStatusActive
	suite.mockRepo.On("Find", suite.ctx, repository.CurrencyFilter{Status: &active}).
		Return([]models.Currency{*usd()}, nil).Once()

	resp, err := suite.service.List(suite.ctx, schema.Payload{"page": "2"})

	suite.Require().NoError(err)
	suite.Equal(http.StatusOK, resp.Status)
	body := resp.Body.(schema.CurrencyListResponse)
	suite.Nil(body.Next)
	suite.Equal([]schema.CurrencyResponse{{ID: 1, Status: "ACT", Code: "USD", Name: "US Dollar"}}, body.Currencies)
}

func (suite *CurrencyServiceTestSuite) TestList_ByCode() {
	suite.mockRepo.On("Find", suite.ctx, activeFilterByCode("USD")).
		Return([]models.Currency{}, nil).Once()

	resp, err := suite.service.List(suite.ctx, schema.Payload{"code": "USD"})

	suite.Require().NoError(err)
	suite.Empty(resp.Body.(schema.CurrencyListResponse).Currencies)
}

func (suite *CurrencyServiceTestSuite) TestList_InvalidArgs() {
	_, err := suite.service.List(suite.ctx, schema.Payload{"code": "usd"})

	svcErr := suite.requireError(err, http.StatusBadRequest)
	suite.Contains(svcErr.Details, "code")
}

func (suite *CurrencyServiceTestSuite) TestList_RepoError() {
	suite.mockRepo.On("Find", suite.ctx, mock.Anything).Return(nil, assert.AnError).Once()

	_, err := suite.service.List(suite.ctx, nil)

	suite.Require().ErrorIs(err, assert.AnError)
}

func (suite *CurrencyServiceTestSuite) TestGet_Success() {
	suite.mockRepo.On("GetByID", suite.ctx, int64(1)).Return(usd(), nil).Once()

	resp, err := suite.service.Get(suite.ctx, 1)

	suite.Require().NoError(err)
	body := resp.Body.(schema.CurrencyDetailResponse)
	suite.Equal("USD", body.Code)
	suite.Equal("http://api.test/api/v1/currencies/1", body.Metadata.Self)
}

func (suite *CurrencyServiceTestSuite) TestGet_NotFound() {
	suite.mockRepo.On("GetByID", suite.ctx, int64(9)).Return(nil, repository.ErrNotFound).Once()

	_, err := suite.service.Get(suite.ctx, 9)

	svcErr := suite.requireError(err, http.StatusNotFound)
	suite.Equal("Currency with id: 9 does not exist.", svcErr.Details)
}

func (suite *CurrencyServiceTestSuite) TestGet_SoftDeletedIsNotFound() {
	deleted := usd()
	deleted.Status = models.CurrencyStatusDeleted
	suite.mockRepo.On("GetByID", suite.ctx, int64(1)).Return(deleted, nil).Once()

	_, err := suite.service.Get(suite.ctx, 1)

	suite.requireError(err, http.StatusNotFound)
}

func (suite *CurrencyServiceTestSuite) TestCreate_Success() {
	suite.mockRepo.On("Find", suite.ctx, activeFilterByCode("USD")).Return([]models.Currency{}, nil).Once()
	suite.mockRepo.On("Create", suite.ctx, mock.MatchedBy(func(c *models.Currency) bool {
		return c.Code == "USD" && c.Name == "US Dollar" && c.Status == models.CurrencyStatusActive
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*models.Currency).ID = 1
	}).Return(nil).Once()

	resp, err := suite.service.Create(suite.ctx, schema.Payload{"name": "US Dollar", "code": "USD"})

	suite.Require().NoError(err)
	suite.Equal(http.StatusCreated, resp.Status)
	suite.Equal(schema.CreatedResponse{Status: "CREATED", ID: 1}, resp.Body)
}

func (suite *CurrencyServiceTestSuite) TestCreate_ValidationError() {
	_, err := suite.service.Create(suite.ctx, schema.Payload{"name": "US Dollar", "code": "usd"})

	svcErr := suite.requireError(err, http.StatusBadRequest)
	suite.Contains(svcErr.Details, "code")
	suite.mockRepo.AssertNotCalled(suite.T(), "Create", mock.Anything, mock.Anything)
}

func (suite *CurrencyServiceTestSuite) TestCreate_Duplicate() {
	suite.mockRepo.On("Find", suite.ctx, activeFilterByCode("USD")).Return([]models.Currency{*usd()}, nil).Once()

	_, err := suite.service.Create(suite.ctx, schema.Payload{"name": "Dollar", "code": "USD"})

	svcErr := suite.requireError(err, http.StatusConflict)
	suite.Equal("Currency with the same code already exists. Duplicated ID: 1", svcErr.Details)
}

func (suite *CurrencyServiceTestSuite) TestCreate_StoreRejects() {
	suite.mockRepo.On("Find", suite.ctx, activeFilterByCode("USD")).Return([]models.Currency{}, nil).Once()
	suite.mockRepo.On("Create", suite.ctx, mock.Anything).
		Return(&repository.CreateError{Entity: "currency", Reason: "Integrity error"}).Once()

	_, err := suite.service.Create(suite.ctx, schema.Payload{"name": "US Dollar", "code": "USD"})

	svcErr := suite.requireError(err, http.StatusUnprocessableEntity)
	suite.Equal("CreateError: Failed to create currency due to: Integrity error", svcErr.Details)
}

func (suite *CurrencyServiceTestSuite) TestUpdate_Success() {
	current := usd()
	suite.mockRepo.On("GetByID", suite.ctx, int64(1)).Return(current, nil).Once()
	suite.mockRepo.On("Update", suite.ctx, current, mock.MatchedBy(func(c models.CurrencyChanges) bool {
		return c.Name != nil && *c.Name == "Dollar" && c.Code == nil
	})).Run(func(args mock.Arguments) {
		args.Get(2).(models.CurrencyChanges).Apply(args.Get(1).(*models.Currency))
	}).Return(nil).Once()

	resp, err := suite.service.Update(suite.ctx, 1, schema.Payload{"name": "Dollar"})

	suite.Require().NoError(err)
	suite.Equal(http.StatusOK, resp.Status)
	suite.Equal(schema.CurrencyUpdatedResponse{
		Status: "UPDATED",
		Record: schema.CurrencyResponse{ID: 1, Status: "ACT", Code: "USD", Name: "Dollar"},
	}, resp.Body)
}

func (suite *CurrencyServiceTestSuite) TestUpdate_NotFound() {
	suite.mockRepo.On("GetByID", suite.ctx, int64(5)).Return(nil, repository.ErrNotFound).Once()

	_, err := suite.service.Update(suite.ctx, 5, schema.Payload{"name": "Dollar"})

	suite.requireError(err, http.StatusNotFound)
}

func (suite *CurrencyServiceTestSuite) TestUpdate_CodeHeldByAnother() {
	other := usd()
	other.ID = 2
	other.Code = "EUR"
	suite.mockRepo.On("GetByID", suite.ctx, int64(1)).Return(usd(), nil).Once()
	suite.mockRepo.On("Find", suite.ctx, activeFilterByCode("EUR")).Return([]models.Currency{*other}, nil).Once()

	_, err := suite.service.Update(suite.ctx, 1, schema.Payload{"code": "EUR"})

	svcErr := suite.requireError(err, http.StatusConflict)
	suite.Equal("Currency with the same code already exists. Duplicated ID: 2", svcErr.Details)
}

func (suite *CurrencyServiceTestSuite) TestUpdate_SameCodeOnItself() {
	current := usd()
	suite.mockRepo.On("GetByID", suite.ctx, int64(1)).Return(current, nil).Once()
	suite.mockRepo.On("Find", suite.ctx, activeFilterByCode("USD")).Return([]models.Currency{*usd()}, nil).Once()
	suite.mockRepo.On("Update", suite.ctx, current, mock.Anything).Return(nil).Once()

	_, err := suite.service.Update(suite.ctx, 1, schema.Payload{"code": "USD"})

	suite.Require().NoError(err)
}

func (suite *CurrencyServiceTestSuite) TestUpdate_IDNotAllowed() {
	suite.mockRepo.On("GetByID", suite.ctx, int64(1)).Return(usd(), nil).Once()

	_, err := suite.service.Update(suite.ctx, 1, schema.Payload{"id": 7, "name": "Dollar"})

	svcErr := suite.requireError(err, http.StatusBadRequest)
	suite.Equal("The 'id' field is not allowed to be updated.", svcErr.Details)
	suite.mockRepo.AssertNotCalled(suite.T(), "Update", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *CurrencyServiceTestSuite) TestUpdate_StoreRejects() {
	suite.mockRepo.On("GetByID", suite.ctx, int64(1)).Return(usd(), nil).Once()
	suite.mockRepo.On("Update", suite.ctx, mock.Anything, mock.Anything).
		Return(&repository.UpdateError{Entity: "currency", Reason: "value too long"}).Once()

	_, err := suite.service.Update(suite.ctx, 1, schema.Payload{"name": "Dollar"})

	svcErr := suite.requireError(err, http.StatusBadRequest)
	suite.Equal("value too long", svcErr.Details)
}

func (suite *CurrencyServiceTestSuite) TestDelete_Success() {
	current := usd()
	suite.mockRepo.On("GetByID", suite.ctx, int64(1)).Return(current, nil).Once()
	suite.mockRepo.On("SoftDelete", suite.ctx, current).Return(nil).Once()

	resp, err := suite.service.Delete(suite.ctx, 1)

	suite.Require().NoError(err)
	suite.Equal(http.StatusNoContent, resp.Status)
}

func (suite *CurrencyServiceTestSuite) TestDelete_NotFound() {
	suite.mockRepo.On("GetByID", suite.ctx, int64(1)).Return(nil, repository.ErrNotFound).Once()

	_, err := suite.service.Delete(suite.ctx, 1)

	suite.requireError(err, http.StatusNotFound)
}

func (suite *CurrencyServiceTestSuite) TestDelete_StoreRejects() {
	suite.mockRepo.On("GetByID", suite.ctx, int64(1)).Return(usd(), nil).Once()
	suite.mockRepo.On("SoftDelete", suite.ctx, mock.Anything).
		Return(&repository.DeleteError{Entity: "currency", Reason: "locked"}).Once()

	_, err := suite.service.Delete(suite.ctx, 1)

	svcErr := suite.requireError(err, http.StatusConflict)
	suite.Equal("locked", svcErr.Details)
}

func TestCurrencyServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CurrencyServiceTestSuite))
}
