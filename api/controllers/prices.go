package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/angelmondragon/pricetracker-backend/api/responses"
	"github.com/angelmondragon/pricetracker-backend/api/validators"
	"github.com/angelmondragon/pricetracker-backend/internal/prices"
	"github.com/angelmondragon/pricetracker-backend/pkg/config"
	pkgerrors "github.com/angelmondragon/pricetracker-backend/pkg/errors"
	"github.com/angelmondragon/pricetracker-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const uploadFileField = "file"

// UploadResponse reports how many CSV rows were ingested.
type UploadResponse struct {
	Inserted int `json:"inserted"`
}

// MessageResponse carries a human-readable confirmation.
type MessageResponse struct {
	Message string `json:"message"`
}

// UploadPrices accepts a multipart CSV upload, normalizes its rows, and bulk
// inserts them.
func UploadPrices(svc prices.Service, cfg config.UploadConfig, logg *logger.Logger) http.HandlerFunc {
	maxBytes := int64(cfg.MaxUploadMB) << 20
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
		if err := r.ParseMultipartForm(maxBytes); err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid multipart body"))
			return
		}

		file, _, err := r.FormFile(uploadFileField)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "no file uploaded"))
			return
		}
		defer file.Close()

		rows, err := prices.ReadCSVRows(file)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		candidates := prices.NormalizeRows(rows, time.Now())
		inserted, err := svc.InsertPrices(r.Context(), candidates)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if logg != nil {
			ctx := logg.WithField(r.Context(), "inserted", inserted)
			logg.Info(ctx, "prices.ingested")
		}
		responses.WriteSuccess(w, UploadResponse{Inserted: inserted})
	}
}

// SearchPrices translates the query string into search criteria and returns
// the matching records as a bare array.
func SearchPrices(svc prices.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		criteria, err := criteriaFromQuery(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		rows, err := svc.SearchPrices(r.Context(), criteria)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, rows)
	}
}

// GetPrice returns a single record by id.
func GetPrice(svc prices.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := recordIDFromPath(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		record, err := svc.GetPrice(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, record)
	}
}

// UpdatePrice applies a partial update to a record.
func UpdatePrice(svc prices.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := recordIDFromPath(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body prices.UpdatePriceInput
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		record, err := svc.UpdatePrice(r.Context(), id, body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, record)
	}
}

// DeletePrice removes a record by id.
func DeletePrice(svc prices.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := recordIDFromPath(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.DeletePrice(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, MessageResponse{Message: "Record deleted successfully"})
	}
}

func recordIDFromPath(r *http.Request) (uuid.UUID, error) {
	raw := chi.URLParam(r, "id")
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid record id")
	}
	return id, nil
}

func criteriaFromQuery(r *http.Request) (prices.SearchCriteria, error) {
	query := r.URL.Query()
	criteria := prices.SearchCriteria{
		StoreID:     strings.TrimSpace(query.Get("store_id")),
		SKU:         strings.TrimSpace(query.Get("sku")),
		ProductName: strings.TrimSpace(query.Get("product_name")),
		FromDate:    strings.TrimSpace(query.Get("from_date")),
		ToDate:      strings.TrimSpace(query.Get("to_date")),
	}

	minPrice, err := parsePriceParam(query.Get("min_price"), "min_price")
	if err != nil {
		return prices.SearchCriteria{}, err
	}
	criteria.MinPrice = minPrice

	maxPrice, err := parsePriceParam(query.Get("max_price"), "max_price")
	if err != nil {
		return prices.SearchCriteria{}, err
	}
	criteria.MaxPrice = maxPrice

	limit, err := validators.ParseQueryInt(r, "limit", 0)
	if err != nil {
		return prices.SearchCriteria{}, err
	}
	criteria.Limit = limit

	offset, err := validators.ParseQueryInt(r, "offset", 0)
	if err != nil {
		return prices.SearchCriteria{}, err
	}
	criteria.Offset = offset

	return criteria, nil
}

func parsePriceParam(raw, key string) (*decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	value, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, key+" must be numeric")
	}
	return &value, nil
}
