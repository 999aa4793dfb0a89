package http

import (
	"errors"
	"net/http"

	"github.com/ananta-labs/tabsync/internal/logger"
	"github.com/ananta-labs/tabsync/internal/service"
	"github.com/ananta-labs/tabsync/internal/store"
)

// writeError maps service and store errors onto HTTP status codes. Unknown
// errors become 500 without leaking their message.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	switch {
	case errors.Is(err, store.ErrAccountAlreadyExists):
		http.Error(w, "account already exists", http.StatusConflict)
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrTokenIsExpired):
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
	case errors.Is(err, service.ErrAccountMismatch):
		http.Error(w, "account key mismatch", http.StatusForbidden)
	case errors.Is(err, service.ErrUnknownCategory):
		http.Error(w, "unknown category", http.StatusBadRequest)
	default:
		log.Error().Err(err).Msg("internal error")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}
