package calculation

import (
	"context"
	"time"

	"lexofis/internal/models"

	"github.com/google/uuid"
)

// ListFilters narrows a calculation listing. Zero values mean "no filter".
type ListFilters struct {
	CaseID   string
	ClientID string
	Category models.TariffCategory
	From     *time.Time
	To       *time.Time
}

// Repository is the persistence capability this service needs. Lookups on
// a missing id return ErrCalculationNotFound; any other failure is an
// opaque storage error propagated unchanged.
type Repository interface {
	Create(ctx context.Context, calc *models.StoredCalculation) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.StoredCalculation, error)
	List(ctx context.Context, filters ListFilters) ([]models.StoredCalculation, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Cache is the optional read cache over stored calculations.
type Cache interface {
	GetCalculation(ctx context.Context, id uuid.UUID) (*models.StoredCalculation, bool, error)
	CacheCalculation(ctx context.Context, calc *models.StoredCalculation) error
	InvalidateCalculation(ctx context.Context, id uuid.UUID) error
}
