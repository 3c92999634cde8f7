package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PriceRecord is one observed retail price for a SKU at a store on a date.
// Date is stored as an opaque string: uploads carry whatever the CSV said,
// and range filters compare it lexicographically.
type PriceRecord struct {
	ID          uuid.UUID       `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	StoreID     string          `gorm:"column:store_id;not null;index" json:"store_id"`
	SKU         string          `gorm:"column:sku;not null;index" json:"sku"`
	ProductName *string         `gorm:"column:product_name" json:"product_name"`
	Price       decimal.Decimal `gorm:"column:price;type:numeric(10,2)" json:"price"`
	Date        string          `gorm:"column:date;index" json:"date"`
	CreatedAt   time.Time       `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (p *PriceRecord) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
