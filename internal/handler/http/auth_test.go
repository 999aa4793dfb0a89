package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ananta-labs/tabsync/internal/logger"
	"github.com/ananta-labs/tabsync/internal/mock"
	"github.com/ananta-labs/tabsync/internal/service"
	"github.com/ananta-labs/tabsync/internal/store"
	"github.com/ananta-labs/tabsync/models"
)

func newTestHandler(t *testing.T, ctrl *gomock.Controller) (*Handler, *mock.MockAuthService, *mock.MockRecordService) {
	t.Helper()

	auth := mock.NewMockAuthService(ctrl)
	records := mock.NewMockRecordService(ctrl)

	h := NewHandler(&service.Services{
		AuthService:   auth,
		RecordService: records,
	}, logger.Nop())

	return h, auth, records
}

func signedToken(value string) models.Token {
	return models.Token{SignedString: value}
}

func TestHandler_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, auth, _ := newTestHandler(t, ctrl)
	router := h.Routes()

	t.Run("Success", func(t *testing.T) {
		auth.EXPECT().Register(gomock.Any(), "acc-1", "s3cret").
			Return(signedToken("jwt-token"), nil)

		req := httptest.NewRequest(http.MethodPost, "/api/auth/register",
			strings.NewReader(`{"account_key":"acc-1","secret":"s3cret"}`))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)

		var resp models.AuthResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "jwt-token", resp.Token)
	})

	t.Run("Duplicate", func(t *testing.T) {
		auth.EXPECT().Register(gomock.Any(), "acc-1", "s3cret").
			Return(models.Token{}, store.ErrAccountAlreadyExists)

		req := httptest.NewRequest(http.MethodPost, "/api/auth/register",
			strings.NewReader(`{"account_key":"acc-1","secret":"s3cret"}`))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("MalformedBody", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/register",
			strings.NewReader(`{not json`))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("MissingFields", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/register",
			strings.NewReader(`{"account_key":"","secret":""}`))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandler_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, auth, _ := newTestHandler(t, ctrl)
	router := h.Routes()

	t.Run("Success", func(t *testing.T) {
		auth.EXPECT().Login(gomock.Any(), "acc-1", "s3cret").
			Return(signedToken("jwt-token"), nil)

		req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
			strings.NewReader(`{"account_key":"acc-1","secret":"s3cret"}`))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp models.AuthResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "jwt-token", resp.Token)
	})

	t.Run("WrongSecret", func(t *testing.T) {
		auth.EXPECT().Login(gomock.Any(), "acc-1", "wrong").
			Return(models.Token{}, service.ErrInvalidCredentials)

		req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
			strings.NewReader(`{"account_key":"acc-1","secret":"wrong"}`))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
