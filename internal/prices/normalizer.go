package prices

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Row is one decoded CSV line keyed by header name.
type Row map[string]string

// Uploads come from several retailers whose export tools disagree on header
// spelling. Each canonical field tries its aliases in order and takes the
// first one carrying a value.
var (
	storeIDAliases     = []string{"Store ID", "store_id", "storeId"}
	skuAliases         = []string{"SKU", "sku"}
	productNameAliases = []string{"Product Name", "product_name", "name"}
	priceAliases       = []string{"Price", "price"}
	dateAliases        = []string{"Date", "date"}
)

// NormalizeRows maps loosely-structured CSV rows onto insert candidates,
// preserving input order. Rows never fail: an unparseable or missing price
// becomes 0, and a missing date becomes the ingestion timestamp.
func NormalizeRows(rows []Row, now time.Time) []InsertPriceDTO {
	out := make([]InsertPriceDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, normalizeRow(row, now))
	}
	return out
}

func normalizeRow(row Row, now time.Time) InsertPriceDTO {
	dto := InsertPriceDTO{
		StoreID: resolveField(row, storeIDAliases),
		SKU:     resolveField(row, skuAliases),
		Price:   parsePrice(resolveField(row, priceAliases)),
		Date:    resolveField(row, dateAliases),
	}

	if name := resolveField(row, productNameAliases); name != "" {
		dto.ProductName = &name
	}
	if dto.Date == "" {
		dto.Date = now.UTC().Format(time.RFC3339)
	}

	return dto
}

func resolveField(row Row, aliases []string) string {
	for _, alias := range aliases {
		if value := strings.TrimSpace(row[alias]); value != "" {
			return value
		}
	}
	return ""
}

func parsePrice(raw string) decimal.Decimal {
	if raw == "" {
		return decimal.Zero
	}
	value, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero
	}
	return value.Round(2)
}
