package prices

import (
	"context"
	"errors"
	"fmt"

	"github.com/angelmondragon/pricetracker-backend/pkg/db/models"
	pkgerrors "github.com/angelmondragon/pricetracker-backend/pkg/errors"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Service exposes bulk ingestion and record CRUD over the repository.
type Service interface {
	InsertPrices(ctx context.Context, records []InsertPriceDTO) (int, error)
	SearchPrices(ctx context.Context, criteria SearchCriteria) ([]models.PriceRecord, error)
	GetPrice(ctx context.Context, id uuid.UUID) (*models.PriceRecord, error)
	UpdatePrice(ctx context.Context, id uuid.UUID, input UpdatePriceInput) (*models.PriceRecord, error)
	DeletePrice(ctx context.Context, id uuid.UUID) error
}

type repository interface {
	Insert(ctx context.Context, record *models.PriceRecord) error
	Search(ctx context.Context, criteria SearchCriteria) ([]models.PriceRecord, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.PriceRecord, error)
	Save(ctx context.Context, record *models.PriceRecord) error
	DeleteByID(ctx context.Context, id uuid.UUID) (bool, error)
}

type service struct {
	repo repository
}

// NewService constructs the pricing record service.
func NewService(repo repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("price repository is required")
	}
	return &service{repo: repo}, nil
}

// InsertPrices writes each candidate as an independent row. There is no
// batch transaction: the first failing insert aborts the loop and rows
// committed before it stay committed.
func (s *service) InsertPrices(ctx context.Context, records []InsertPriceDTO) (int, error) {
	inserted := 0
	for i, dto := range records {
		record := dto.ToModel()
		if err := s.repo.Insert(ctx, record); err != nil {
			return inserted, pkgerrors.Wrap(pkgerrors.CodeIngestion, err, fmt.Sprintf("failed to insert prices at row %d", i))
		}
		inserted++
	}
	return inserted, nil
}

func (s *service) SearchPrices(ctx context.Context, criteria SearchCriteria) ([]models.PriceRecord, error) {
	rows, err := s.repo.Search(ctx, criteria)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "failed to search prices")
	}
	return rows, nil
}

func (s *service) GetPrice(ctx context.Context, id uuid.UUID) (*models.PriceRecord, error) {
	record, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "failed to fetch price")
	}
	return record, nil
}

// UpdatePrice loads the existing row and coalesces field by field: anything
// the caller left out keeps its stored value.
func (s *service) UpdatePrice(ctx context.Context, id uuid.UUID, input UpdatePriceInput) (*models.PriceRecord, error) {
	record, err := s.GetPrice(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.StoreID != nil {
		record.StoreID = *input.StoreID
	}
	if input.SKU != nil {
		record.SKU = *input.SKU
	}
	if input.ProductName != nil {
		record.ProductName = input.ProductName
	}
	if input.Price != nil {
		record.Price = input.Price.Round(2)
	}
	if input.Date != nil {
		record.Date = *input.Date
	}

	if err := s.repo.Save(ctx, record); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "failed to update price")
	}
	return record, nil
}

// DeletePrice reports not-found for unknown ids instead of failing, which
// makes retried deletes harmless.
func (s *service) DeletePrice(ctx context.Context, id uuid.UUID) error {
	deleted, err := s.repo.DeleteByID(ctx, id)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "failed to delete price")
	}
	if !deleted {
		return pkgerrors.New(pkgerrors.CodeNotFound, "not found")
	}
	return nil
}
