package http

import (
	"encoding/json"
	"net/http"

	"github.com/ananta-labs/tabsync/internal/logger"
	"github.com/ananta-labs/tabsync/internal/utils"
	"github.com/ananta-labs/tabsync/models"
)

// Register creates a new sync account and returns a bearer token for it.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.AuthRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Debug().Err(err).Msg("malformed register request")
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	if req.AccountKey == "" || req.Secret == "" {
		http.Error(w, "account_key and secret are required", http.StatusBadRequest)
		return
	}

	token, err := h.services.Register(r.Context(), req.AccountKey, req.Secret)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if _, err := utils.WriteJSON(w, models.AuthResponse{Token: token.String()}, http.StatusCreated); err != nil {
		log.Error().Err(err).Msg("error writing register response")
	}
}

// Login verifies account credentials and returns a fresh bearer token.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.AuthRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Debug().Err(err).Msg("malformed login request")
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	token, err := h.services.Login(r.Context(), req.AccountKey, req.Secret)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if _, err := utils.WriteJSON(w, models.AuthResponse{Token: token.String()}, http.StatusOK); err != nil {
		log.Error().Err(err).Msg("error writing login response")
	}
}
