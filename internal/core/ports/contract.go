package ports

import (
	"context"
	"time"

	"github.com/aitax/tax-system/internal/core/domain"
)

// ContractRepository defines persistence for contracts.
type ContractRepository interface {
	List(ctx context.Context) ([]*domain.Contract, error)
	FindByID(ctx context.Context, id string) (*domain.Contract, error)
	Create(ctx context.Context, c *domain.Contract) error
}

// CreateContractInput carries the details of a new agreement.
type CreateContractInput struct {
	Type      string
	Title     string
	PartyA    string
	PartyB    string
	StartDate time.Time
	EndDate   time.Time
	Amount    float64
	Terms     string
}

// ContractService records and lists employment and rental agreements.
type ContractService interface {
	List(ctx context.Context) ([]*domain.Contract, error)
	Get(ctx context.Context, id string) (*domain.Contract, error)
	Create(ctx context.Context, input CreateContractInput) (*domain.Contract, error)
}
