package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/ananta-labs/tabsync/internal/logger"
	"github.com/ananta-labs/tabsync/internal/service"
	"github.com/ananta-labs/tabsync/internal/utils"
	"github.com/ananta-labs/tabsync/models"
)

// SyncStatus reports the server's (checksum, version) state for the
// requested categories of the authenticated account.
func (h *Handler) SyncStatus(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	accountKey, ok := h.requestAccount(w, r)
	if !ok {
		return
	}

	resp, err := h.services.Status(r.Context(), accountKey, parseCategories(r.URL.Query().Get("categories")))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if _, err := utils.WriteJSON(w, resp, http.StatusOK); err != nil {
		log.Error().Err(err).Msg("error writing status response")
	}
}

// SyncPush applies a batch of candidate values under optimistic concurrency.
func (h *Handler) SyncPush(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	accountKey, ok := utils.GetAccountKeyFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req models.PushRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Debug().Err(err).Msg("malformed push request")
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	if req.AccountKey != "" && req.AccountKey != accountKey {
		h.writeError(w, r, service.ErrAccountMismatch)
		return
	}

	resp, err := h.services.Push(r.Context(), accountKey, req.DeviceID, req.Items)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if _, err := utils.WriteJSON(w, resp, http.StatusOK); err != nil {
		log.Error().Err(err).Msg("error writing push response")
	}
}

// SyncPull returns the full authoritative value of the requested categories.
func (h *Handler) SyncPull(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	accountKey, ok := h.requestAccount(w, r)
	if !ok {
		return
	}

	resp, err := h.services.Pull(r.Context(), accountKey, parseCategories(r.URL.Query().Get("categories")))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if _, err := utils.WriteJSON(w, resp, http.StatusOK); err != nil {
		log.Error().Err(err).Msg("error writing pull response")
	}
}

// requestAccount resolves the authenticated account key and rejects requests
// whose account_key query parameter names a different account.
func (h *Handler) requestAccount(w http.ResponseWriter, r *http.Request) (string, bool) {
	accountKey, ok := utils.GetAccountKeyFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return "", false
	}

	if param := r.URL.Query().Get("account_key"); param != "" && param != accountKey {
		h.writeError(w, r, service.ErrAccountMismatch)
		return "", false
	}

	return accountKey, true
}

// parseCategories decodes the comma-separated categories query parameter.
// An empty parameter means all categories.
func parseCategories(raw string) []models.Category {
	if strings.TrimSpace(raw) == "" {
		return models.AllCategories()
	}

	parts := strings.Split(raw, ",")
	categories := make([]models.Category, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		categories = append(categories, models.Category(part))
	}
	return categories
}
