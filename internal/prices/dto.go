package prices

import (
	"github.com/angelmondragon/pricetracker-backend/pkg/db/models"
	"github.com/shopspring/decimal"
)

// InsertPriceDTO is one normalized CSV row ready to be persisted.
type InsertPriceDTO struct {
	StoreID     string
	SKU         string
	ProductName *string
	Price       decimal.Decimal
	Date        string
}

func (d InsertPriceDTO) ToModel() *models.PriceRecord {
	return &models.PriceRecord{
		StoreID:     d.StoreID,
		SKU:         d.SKU,
		ProductName: d.ProductName,
		Price:       d.Price,
		Date:        d.Date,
	}
}

// SearchCriteria carries the optional search filters. Empty string fields
// contribute no clause; min/max prices arrive pre-parsed so the repo only
// ever binds well-typed values.
type SearchCriteria struct {
	StoreID     string
	SKU         string
	ProductName string
	FromDate    string
	ToDate      string
	MinPrice    *decimal.Decimal
	MaxPrice    *decimal.Decimal
	Limit       int
	Offset      int
}

// UpdatePriceInput is a partial update: nil fields keep their stored value.
type UpdatePriceInput struct {
	StoreID     *string          `json:"store_id"`
	SKU         *string          `json:"sku"`
	ProductName *string          `json:"product_name"`
	Price       *decimal.Decimal `json:"price"`
	Date        *string          `json:"date"`
}
