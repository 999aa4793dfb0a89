package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/ananta-labs/tabsync/internal/logger"
	"github.com/ananta-labs/tabsync/models"
)

// HTTPClientConfig holds the settings for the resty-backed transport.
type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type httpSyncTransport struct {
	client *resty.Client
	logger *logger.Logger
}

// NewHTTPSyncTransport constructs a [SyncTransport] over JSON/HTTP.
func NewHTTPSyncTransport(cfg HTTPClientConfig, log *logger.Logger) SyncTransport {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &httpSyncTransport{client: cli, logger: log}
}

func (h *httpSyncTransport) Status(ctx context.Context, session models.SyncSession, categories []models.Category) (models.StatusResponse, error) {
	resp, err := h.authedRequest(ctx, session).
		SetQueryParam("account_key", session.AccountKey).
		SetQueryParam("categories", joinCategories(categories)).
		Get("/api/sync/status")
	if err != nil {
		return models.StatusResponse{}, fmt.Errorf("status request: %w: %w", ErrServer, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.StatusResponse{}, err
	}

	var sr models.StatusResponse
	if err = json.Unmarshal(resp.Body(), &sr); err != nil {
		return models.StatusResponse{}, fmt.Errorf("decode status response: %w: %w", ErrServer, err)
	}

	return sr, nil
}

func (h *httpSyncTransport) Push(ctx context.Context, session models.SyncSession, items []models.PushItem) (models.PushResponse, error) {
	req := models.PushRequest{
		AccountKey: session.AccountKey,
		DeviceID:   session.DeviceID,
		Items:      items,
		Length:     len(items),
	}

	resp, err := h.authedRequest(ctx, session).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/sync/push")
	if err != nil {
		return models.PushResponse{}, fmt.Errorf("push request: %w: %w", ErrServer, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PushResponse{}, err
	}

	var pr models.PushResponse
	if err = json.Unmarshal(resp.Body(), &pr); err != nil {
		return models.PushResponse{}, fmt.Errorf("decode push response: %w: %w", ErrServer, err)
	}

	return pr, nil
}

func (h *httpSyncTransport) Pull(ctx context.Context, session models.SyncSession, categories []models.Category) (models.PullResponse, error) {
	resp, err := h.authedRequest(ctx, session).
		SetQueryParam("account_key", session.AccountKey).
		SetQueryParam("categories", joinCategories(categories)).
		Get("/api/sync/pull")
	if err != nil {
		return models.PullResponse{}, fmt.Errorf("pull request: %w: %w", ErrServer, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PullResponse{}, err
	}

	var pr models.PullResponse
	if err = json.Unmarshal(resp.Body(), &pr); err != nil {
		return models.PullResponse{}, fmt.Errorf("decode pull response: %w: %w", ErrServer, err)
	}

	return pr, nil
}

func (h *httpSyncTransport) authedRequest(ctx context.Context, session models.SyncSession) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if session.Token != "" {
		req.SetHeader("Authorization", "Bearer "+session.Token)
	}
	return req
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	if resp.StatusCode() == http.StatusUnauthorized {
		return ErrUnauthorized
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}
	return fmt.Errorf("%w: http %d: %s", ErrServer, resp.StatusCode(), body)
}

func joinCategories(categories []models.Category) string {
	parts := make([]string, 0, len(categories))
	for _, c := range categories {
		parts = append(parts, string(c))
	}
	return strings.Join(parts, ",")
}
