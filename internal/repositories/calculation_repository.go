package repositories

import (
	"context"
	"errors"

	"lexofis/internal/models"
	"lexofis/internal/services/calculation"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type calculationRepository struct {
	db *gorm.DB
}

// NewCalculationRepository returns the GORM-backed implementation of
// calculation.Repository.
func NewCalculationRepository(db *gorm.DB) calculation.Repository {
	return &calculationRepository{db: db}
}

func (r *calculationRepository) Create(ctx context.Context, calc *models.StoredCalculation) error {
	return r.db.WithContext(ctx).Create(calc).Error
}

func (r *calculationRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.StoredCalculation, error) {
	var calc models.StoredCalculation
	err := r.db.WithContext(ctx).First(&calc, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, calculation.ErrCalculationNotFound
		}
		return nil, err
	}
	return &calc, nil
}

func (r *calculationRepository) List(ctx context.Context, filters calculation.ListFilters) ([]models.StoredCalculation, error) {
	q := r.db.WithContext(ctx).Model(&models.StoredCalculation{})

	if filters.CaseID != "" {
		q = q.Where("case_id = ?", filters.CaseID)
	}
	if filters.ClientID != "" {
		q = q.Where("client_id = ?", filters.ClientID)
	}
	if filters.Category != "" {
		q = q.Where("category = ?", filters.Category)
	}
	if filters.From != nil {
		q = q.Where("created_at >= ?", *filters.From)
	}
	if filters.To != nil {
		q = q.Where("created_at <= ?", *filters.To)
	}

	var calcs []models.StoredCalculation
	err := q.Order("created_at DESC").Find(&calcs).Error
	return calcs, err
}

func (r *calculationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.StoredCalculation{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return calculation.ErrCalculationNotFound
	}
	return nil
}
