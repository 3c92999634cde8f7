package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/angelmondragon/pricetracker-backend/api/responses"
	"github.com/angelmondragon/pricetracker-backend/pkg/db"
	"github.com/angelmondragon/pricetracker-backend/pkg/logger"
)

// HealthLive reports process liveness.
func HealthLive() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, map[string]string{"status": "ok"})
	}
}

// HealthReady verifies the datastore is reachable.
func HealthReady(dbP db.Pinger, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if dbP != nil {
			if err := dbP.Ping(ctx); err != nil {
				if logg != nil {
					logg.Error(r.Context(), "health.db_unreachable", err)
				}
				responses.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "degraded"})
				return
			}
		}

		responses.WriteSuccess(w, map[string]string{"status": "ok"})
	}
}

// Root serves the plain-text banner at /.
func Root() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte("Retail Pricing API"))
	}
}
