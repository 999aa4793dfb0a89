package http

import (
	"context"
	"net/http"

	"github.com/ananta-labs/tabsync/internal/logger"
	"github.com/ananta-labs/tabsync/internal/utils"
)

// authMiddleware validates the bearer token and stores the authenticated
// account key in the request context. Requests without a valid token never
// reach the sync handlers.
func (h *Handler) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
		if err != nil {
			log.Debug().Err(err).Msg("missing or malformed authorization header")
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		token, err := h.services.ParseToken(tokenString)
		if err != nil {
			log.Debug().Err(err).Msg("token rejected")
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), utils.AccountKeyCtxKey, token.AccountKey)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
