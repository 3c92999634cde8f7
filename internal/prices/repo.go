package prices

import (
	"context"
	"strings"

	"github.com/angelmondragon/pricetracker-backend/pkg/db/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const defaultSearchLimit = 100

// Repository persists price records and builds the filtered search query.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Insert persists one price record row.
func (r *Repository) Insert(ctx context.Context, record *models.PriceRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

// Search builds a conjunctive predicate from the supplied criteria. Each
// present filter appends its clause and bound value in the same step, so
// clause order and parameter order can never drift apart. Absent fields
// contribute nothing: an empty criteria set scans the whole table.
func (r *Repository) Search(ctx context.Context, criteria SearchCriteria) ([]models.PriceRecord, error) {
	qb := r.db.WithContext(ctx).Model(&models.PriceRecord{})

	if criteria.StoreID != "" {
		qb = qb.Where("store_id = ?", criteria.StoreID)
	}
	if criteria.SKU != "" {
		qb = qb.Where("sku = ?", criteria.SKU)
	}
	if criteria.ProductName != "" {
		// LOWER + LIKE is the portable spelling of ILIKE; it behaves the
		// same on postgres and the sqlite test driver.
		pattern := "%" + strings.ToLower(criteria.ProductName) + "%"
		qb = qb.Where("LOWER(product_name) LIKE ?", pattern)
	}
	if criteria.FromDate != "" {
		qb = qb.Where("date >= ?", criteria.FromDate)
	}
	if criteria.ToDate != "" {
		qb = qb.Where("date <= ?", criteria.ToDate)
	}
	if criteria.MinPrice != nil {
		qb = qb.Where("price >= ?", *criteria.MinPrice)
	}
	if criteria.MaxPrice != nil {
		qb = qb.Where("price <= ?", *criteria.MaxPrice)
	}

	limit := criteria.Limit
	if limit <= 0 {
		limit = defaultSearchLimit
	}
	offset := criteria.Offset
	if offset < 0 {
		offset = 0
	}

	rows := []models.PriceRecord{}
	err := qb.
		Order("updated_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&rows).
		Error
	return rows, err
}

// FindByID loads a single price record.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.PriceRecord, error) {
	var record models.PriceRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

// Save overwrites an existing row in place, refreshing updated_at.
func (r *Repository) Save(ctx context.Context, record *models.PriceRecord) error {
	return r.db.WithContext(ctx).Save(record).Error
}

// DeleteByID removes a row and reports whether one actually existed.
func (r *Repository) DeleteByID(ctx context.Context, id uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.PriceRecord{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
