package calculation

import (
	"context"
	"errors"
	"testing"

	"lexofis/internal/models"
	"lexofis/internal/services/feecalc"
	"lexofis/internal/services/tariff"
	"lexofis/internal/validation"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, calc *models.StoredCalculation) error {
	args := m.Called(ctx, calc)
	return args.Error(0)
}

func (m *MockRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.StoredCalculation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.StoredCalculation), args.Error(1)
}

func (m *MockRepository) List(ctx context.Context, filters ListFilters) ([]models.StoredCalculation, error) {
	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.StoredCalculation), args.Error(1)
}

func (m *MockRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func newService(repo Repository) *Service {
	calc := feecalc.NewCalculator(tariff.NewTable(), decimal.Decimal{})
	return NewService(repo, nil, calc)
}

func validRequest() feecalc.Request {
	return feecalc.Request{
		Category:     models.TariffCategoryStandard,
		SubjectValue: dec("7000"),
		PartyCount:   2,
		VATRate:      decPtr("18"),
		CaseID:       "case-42",
		ClientID:     "client-7",
	}
}

func TestCalculateAndStore(t *testing.T) {
	repo := new(MockRepository)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*models.StoredCalculation")).Return(nil)

	stored, err := newService(repo).CalculateAndStore(context.Background(), validRequest())
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, stored.ID)
	assert.Equal(t, models.TariffCategoryStandard, stored.Category)
	assert.Equal(t, 2, stored.PartyCount)
	assert.Equal(t, "950.00", stored.BaseFee.StringFixed(2))
	assert.Equal(t, "171.00", stored.VATAmount.StringFixed(2))
	assert.Equal(t, "1121.00", stored.TotalFee.StringFixed(2))
	assert.Equal(t, "560.50", stored.FeePerParty.StringFixed(2))
	assert.Equal(t, "case-42", stored.CaseID)
	assert.Equal(t, "client-7", stored.ClientID)
	assert.Len(t, stored.Steps, 5)

	repo.AssertExpectations(t)
}

func TestCalculateAndStore_ValidationFailureSkipsStorage(t *testing.T) {
	repo := new(MockRepository)

	req := validRequest()
	req.SubjectValue = dec("-5")

	stored, err := newService(repo).CalculateAndStore(context.Background(), req)
	assert.Nil(t, stored)

	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs, "subject_value")

	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCalculateAndStore_StorageErrorPropagates(t *testing.T) {
	repo := new(MockRepository)
	storageErr := errors.New("connection reset")
	repo.On("Create", mock.Anything, mock.Anything).Return(storageErr)

	stored, err := newService(repo).CalculateAndStore(context.Background(), validRequest())
	assert.Nil(t, stored)
	assert.ErrorIs(t, err, storageErr)
}

func TestGet_NotFound(t *testing.T) {
	repo := new(MockRepository)
	id := uuid.New()
	repo.On("FindByID", mock.Anything, id).Return(nil, ErrCalculationNotFound)

	_, err := newService(repo).Get(context.Background(), id)
	assert.ErrorIs(t, err, ErrCalculationNotFound)
}

func TestList_PassesFilters(t *testing.T) {
	repo := new(MockRepository)
	filters := ListFilters{CaseID: "case-42", Category: models.TariffCategoryUrgent}
	repo.On("List", mock.Anything, filters).Return([]models.StoredCalculation{}, nil)

	_, err := newService(repo).List(context.Background(), filters)
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestDelete(t *testing.T) {
	repo := new(MockRepository)
	id := uuid.New()
	repo.On("Delete", mock.Anything, id).Return(nil)

	assert.NoError(t, newService(repo).Delete(context.Background(), id))
	repo.AssertExpectations(t)
}

func TestDelete_NotFound(t *testing.T) {
	repo := new(MockRepository)
	id := uuid.New()
	repo.On("Delete", mock.Anything, id).Return(ErrCalculationNotFound)

	err := newService(repo).Delete(context.Background(), id)
	assert.ErrorIs(t, err, ErrCalculationNotFound)
}

func TestGenerateInvoiceLineItems(t *testing.T) {
	repo := new(MockRepository)
	id := uuid.New()
	stored := &models.StoredCalculation{
		ID:          id,
		Category:    models.TariffCategoryStandard,
		PartyCount:  2,
		VATRate:     dec("18"),
		BaseFee:     dec("950"),
		VATAmount:   dec("171"),
		TotalFee:    dec("1121"),
		FeePerParty: dec("560.50"),
	}
	repo.On("FindByID", mock.Anything, id).Return(stored, nil)

	items, err := newService(repo).GenerateInvoiceLineItems(context.Background(), id)
	require.NoError(t, err)
	require.Len(t, items, 1)

	item := items[0]
	assert.Equal(t, "Mediation service fee (2 parties)", item.Description)
	assert.Equal(t, 1, item.Quantity)
	assert.True(t, item.UnitPrice.Equal(stored.BaseFee))
	assert.True(t, item.VATAmount.Equal(stored.VATAmount))
	assert.True(t, item.LineTotal.Equal(stored.TotalFee))
	assert.Equal(t, id, item.ReferenceID)
}

func TestGenerateInvoiceLineItems_NotFound(t *testing.T) {
	repo := new(MockRepository)
	id := uuid.New()
	repo.On("FindByID", mock.Anything, id).Return(nil, ErrCalculationNotFound)

	items, err := newService(repo).GenerateInvoiceLineItems(context.Background(), id)
	assert.Nil(t, items)
	assert.ErrorIs(t, err, ErrCalculationNotFound)
}

type stubCache struct {
	calcs      map[uuid.UUID]*models.StoredCalculation
	invalidate []uuid.UUID
}

func newStubCache() *stubCache {
	return &stubCache{calcs: make(map[uuid.UUID]*models.StoredCalculation)}
}

func (c *stubCache) GetCalculation(_ context.Context, id uuid.UUID) (*models.StoredCalculation, bool, error) {
	calc, ok := c.calcs[id]
	return calc, ok, nil
}

func (c *stubCache) CacheCalculation(_ context.Context, calc *models.StoredCalculation) error {
	c.calcs[calc.ID] = calc
	return nil
}

func (c *stubCache) InvalidateCalculation(_ context.Context, id uuid.UUID) error {
	c.invalidate = append(c.invalidate, id)
	delete(c.calcs, id)
	return nil
}

func TestGet_CacheHitSkipsRepository(t *testing.T) {
	repo := new(MockRepository)
	cache := newStubCache()
	stored := &models.StoredCalculation{ID: uuid.New(), BaseFee: dec("650")}
	require.NoError(t, cache.CacheCalculation(context.Background(), stored))

	calc := feecalc.NewCalculator(tariff.NewTable(), decimal.Decimal{})
	svc := NewService(repo, cache, calc)

	got, err := svc.Get(context.Background(), stored.ID)
	require.NoError(t, err)
	assert.Equal(t, stored.ID, got.ID)
	repo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestDelete_InvalidatesCache(t *testing.T) {
	repo := new(MockRepository)
	cache := newStubCache()
	id := uuid.New()
	repo.On("Delete", mock.Anything, id).Return(nil)

	calc := feecalc.NewCalculator(tariff.NewTable(), decimal.Decimal{})
	svc := NewService(repo, cache, calc)

	require.NoError(t, svc.Delete(context.Background(), id))
	assert.Contains(t, cache.invalidate, id)
}
