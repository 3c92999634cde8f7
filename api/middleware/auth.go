package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/angelmondragon/pricetracker-backend/api/responses"
	pkgAuth "github.com/angelmondragon/pricetracker-backend/pkg/auth"
	"github.com/angelmondragon/pricetracker-backend/pkg/config"
	pkgerrors "github.com/angelmondragon/pricetracker-backend/pkg/errors"
	"github.com/angelmondragon/pricetracker-backend/pkg/logger"
)

// Auth validates a bearer token and seeds the request context with the
// claims. No record handler runs without passing through here first: a
// missing token is a 401, a bad or expired one a 403.
func Auth(cfg config.JWTConfig, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := strings.TrimSpace(r.Header.Get("Authorization"))
			if raw == "" {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthenticated, "access token required"))
				return
			}

			token := raw
			if strings.HasPrefix(strings.ToLower(token), "bearer") {
				token = strings.TrimSpace(token[6:])
			}
			if token == "" {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthenticated, "access token required"))
				return
			}

			claims, err := pkgAuth.ParseSessionToken(cfg, token)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeInvalidToken, err, "invalid or expired token"))
				return
			}

			ctx := context.WithValue(r.Context(), ctxUserID, claims.UserID.String())
			ctx = context.WithValue(ctx, ctxEmail, claims.Email)

			if logg != nil {
				ctx = logg.WithUserID(ctx, claims.UserID.String())
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
