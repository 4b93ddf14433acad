package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/aitax/tax-system/internal/core/domain"
	"github.com/aitax/tax-system/internal/core/ports"
)

type stubContractRepo struct {
	contracts []*domain.Contract
}

func (r *stubContractRepo) List(_ context.Context) ([]*domain.Contract, error) {
	out := make([]*domain.Contract, 0, len(r.contracts))
	for _, c := range r.contracts {
		clone := *c
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubContractRepo) FindByID(_ context.Context, id string) (*domain.Contract, error) {
	for _, c := range r.contracts {
		if c.ID == id {
			clone := *c
			return &clone, nil
		}
	}
	return nil, domain.ErrContractNotFound
}

func (r *stubContractRepo) Create(_ context.Context, c *domain.Contract) error {
	clone := *c
	r.contracts = append(r.contracts, &clone)
	return nil
}

func TestContractService_Create(t *testing.T) {
	repo := &stubContractRepo{}
	svc := NewContractService(repo, zerolog.Nop())

	c, err := svc.Create(context.Background(), ports.CreateContractInput{
		Type:      "employment",
		Title:     "Full-time Employment Agreement",
		PartyA:    "TechCorp NZ Ltd",
		PartyB:    "John Smith",
		StartDate: time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
		Amount:    75000,
		Terms:     "Full-time position, 40 hours per week",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if c.Status != domain.ContractActive {
		t.Fatalf("expected active, got %s", c.Status)
	}
	if c.ID == "" {
		t.Fatalf("expected generated ID")
	}
	if len(repo.contracts) != 1 {
		t.Fatalf("contract not stored")
	}
}

func TestContractService_Create_InvalidType(t *testing.T) {
	svc := NewContractService(&stubContractRepo{}, zerolog.Nop())

	_, err := svc.Create(context.Background(), ports.CreateContractInput{
		Type:   "freelance",
		Title:  "x",
		PartyA: "a",
		PartyB: "b",
		Amount: 1,
		Terms:  "t",
	})
	if !errors.Is(err, domain.ErrInvalidContractType) {
		t.Fatalf("expected ErrInvalidContractType, got %v", err)
	}
}

func TestContractService_List_DerivesExpired(t *testing.T) {
	repo := &stubContractRepo{contracts: []*domain.Contract{
		{
			ID:        "1",
			Type:      domain.ContractRental,
			StartDate: time.Date(2020, 6, 1, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2023, 5, 31, 0, 0, 0, 0, time.UTC),
			Status:    domain.ContractActive,
		},
		{
			ID:        "2",
			Type:      domain.ContractEmployment,
			StartDate: time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
			Status:    domain.ContractActive,
		},
	}}
	svc := NewContractService(repo, zerolog.Nop())
	svc.now = func() time.Time { return time.Date(2025, 12, 15, 0, 0, 0, 0, time.UTC) }

	contracts, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	if contracts[0].Status != domain.ContractExpired {
		t.Fatalf("expected first contract expired, got %s", contracts[0].Status)
	}
	// Open-ended contracts never expire.
	if contracts[1].Status != domain.ContractActive {
		t.Fatalf("expected second contract active, got %s", contracts[1].Status)
	}

	// Derivation is read-time only: the stored record keeps its status.
	if repo.contracts[0].Status != domain.ContractActive {
		t.Fatalf("stored status mutated to %s", repo.contracts[0].Status)
	}
}
