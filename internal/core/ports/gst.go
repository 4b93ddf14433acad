package ports

import (
	"context"
	"time"

	"github.com/aitax/tax-system/internal/core/domain"
)

// GSTReturnRepository defines persistence for GST returns.
type GSTReturnRepository interface {
	List(ctx context.Context) ([]*domain.GSTReturn, error)
	FindByID(ctx context.Context, id string) (*domain.GSTReturn, error)
	Create(ctx context.Context, r *domain.GSTReturn) error
	UpdateStatus(ctx context.Context, id string, status domain.GSTReturnStatus) error
}

// CreateGSTReturnInput names the period a return should cover.
type CreateGSTReturnInput struct {
	StartDate time.Time
	EndDate   time.Time
}

// GSTService derives and files GST returns.
type GSTService interface {
	List(ctx context.Context) ([]*domain.GSTReturn, error)
	Get(ctx context.Context, id string) (*domain.GSTReturn, error)
	// CreateReturn summarises the transactions inside the period into a
	// draft return.
	CreateReturn(ctx context.Context, input CreateGSTReturnInput) (*domain.GSTReturn, error)
	Submit(ctx context.Context, id string) (*domain.GSTReturn, error)
	MarkPaid(ctx context.Context, id string) (*domain.GSTReturn, error)
}
