package prices

import (
	"context"
	"testing"
	"time"

	pkgerrors "github.com/angelmondragon/pricetracker-backend/pkg/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupPriceService(t *testing.T) (Service, *Repository) {
	t.Helper()

	repo := NewRepository(setupPricesTestDB(t))
	svc, err := NewService(repo)
	require.NoError(t, err)
	return svc, repo
}

func TestServiceInsertPrices(t *testing.T) {
	svc, repo := setupPriceService(t)
	ctx := context.Background()

	inserted, err := svc.InsertPrices(ctx, []InsertPriceDTO{
		{StoreID: "store-1", SKU: "sku-1", ProductName: strPtr("Widget"), Price: decimal.RequireFromString("9.99"), Date: "2025-01-10"},
		{StoreID: "store-1", SKU: "sku-2", Price: decimal.RequireFromString("4.50"), Date: "2025-01-11"},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, inserted)

	rows, err := repo.Search(ctx, SearchCriteria{StoreID: "store-1"})
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestServiceInsertPricesEmpty(t *testing.T) {
	svc, _ := setupPriceService(t)

	inserted, err := svc.InsertPrices(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 0, inserted)
}

func TestServiceInsertPricesStoreFailure(t *testing.T) {
	db := setupPricesTestDB(t)
	repo := NewRepository(db)
	svc, err := NewService(repo)
	require.NoError(t, err)

	require.NoError(t, db.Exec(`DROP TABLE prices`).Error)

	inserted, err := svc.InsertPrices(context.Background(), []InsertPriceDTO{
		{StoreID: "store-1", SKU: "sku-1", Price: decimal.RequireFromString("1.00"), Date: "2025-01-10"},
	})
	require.Error(t, err)
	assert.Equal(t, 0, inserted)

	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeIngestion, typed.Code())
}

func TestServiceGetPrice(t *testing.T) {
	svc, _ := setupPriceService(t)
	ctx := context.Background()

	inserted, err := svc.InsertPrices(ctx, []InsertPriceDTO{
		{StoreID: "store-1", SKU: "sku-1", Price: decimal.RequireFromString("9.99"), Date: "2025-01-10"},
	})
	require.NoError(t, err)
	require.Equal(t, 1, inserted)

	rows, err := svc.SearchPrices(ctx, SearchCriteria{StoreID: "store-1"})
	require.NoError(t, err)
	require.Len(t, rows, 1)

	record, err := svc.GetPrice(ctx, rows[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "sku-1", record.SKU)
	assert.True(t, record.Price.Equal(decimal.RequireFromString("9.99")))
}

func TestServiceGetPriceMissing(t *testing.T) {
	svc, _ := setupPriceService(t)

	_, err := svc.GetPrice(context.Background(), uuid.New())
	require.Error(t, err)

	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeNotFound, typed.Code())
}

func TestServiceUpdatePricePartial(t *testing.T) {
	svc, repo := setupPriceService(t)
	ctx := context.Background()
	base := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)

	record := seedRecord(t, repo.db, "store-1", "sku-1", "Widget", "9.99", "2025-01-10", base)

	updated, err := svc.UpdatePrice(ctx, record.ID, UpdatePriceInput{
		Price: decPtr("12.345"),
	})
	require.NoError(t, err)

	assert.True(t, updated.Price.Equal(decimal.RequireFromString("12.35")))
	assert.Equal(t, "store-1", updated.StoreID)
	assert.Equal(t, "sku-1", updated.SKU)
	require.NotNil(t, updated.ProductName)
	assert.Equal(t, "Widget", *updated.ProductName)
	assert.Equal(t, "2025-01-10", updated.Date)

	stored, err := repo.FindByID(ctx, record.ID)
	require.NoError(t, err)
	assert.True(t, stored.Price.Equal(decimal.RequireFromString("12.35")))
	assert.True(t, stored.UpdatedAt.After(base), "expected updated_at refreshed")
}

func TestServiceUpdatePriceAllFields(t *testing.T) {
	svc, repo := setupPriceService(t)
	ctx := context.Background()
	base := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)

	record := seedRecord(t, repo.db, "store-1", "sku-1", "Widget", "9.99", "2025-01-10", base)

	updated, err := svc.UpdatePrice(ctx, record.ID, UpdatePriceInput{
		StoreID:     strPtr("store-9"),
		SKU:         strPtr("sku-9"),
		ProductName: strPtr("Gadget"),
		Price:       decPtr("1.00"),
		Date:        strPtr("2025-02-01"),
	})
	require.NoError(t, err)

	assert.Equal(t, "store-9", updated.StoreID)
	assert.Equal(t, "sku-9", updated.SKU)
	require.NotNil(t, updated.ProductName)
	assert.Equal(t, "Gadget", *updated.ProductName)
	assert.Equal(t, "2025-02-01", updated.Date)
}

func TestServiceUpdatePriceMissing(t *testing.T) {
	svc, _ := setupPriceService(t)

	_, err := svc.UpdatePrice(context.Background(), uuid.New(), UpdatePriceInput{
		Price: decPtr("1.00"),
	})
	require.Error(t, err)

	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeNotFound, typed.Code())
}

func TestServiceDeletePrice(t *testing.T) {
	svc, repo := setupPriceService(t)
	ctx := context.Background()
	base := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)

	record := seedRecord(t, repo.db, "store-1", "sku-1", "", "9.99", "2025-01-10", base)

	require.NoError(t, svc.DeletePrice(ctx, record.ID))

	_, err := svc.GetPrice(ctx, record.ID)
	require.Error(t, err)

	err = svc.DeletePrice(ctx, record.ID)
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeNotFound, typed.Code())
}
