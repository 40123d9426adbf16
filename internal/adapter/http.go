package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/isoron/habit-sync/internal/logger"
	"github.com/isoron/habit-sync/internal/utils"
	"github.com/isoron/habit-sync/models"
)

const traceIDHeader = "X-Trace-ID"

type httpServerAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the HTTP implementation of
// [ServerAdapter]. address may omit the scheme, in which case http is
// assumed. A zero timeout leaves requests unbounded.
//
// Returns an error if address is empty or cannot be parsed as a URL.
func NewHTTPServerAdapter(address string, timeout time.Duration, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid server address: %w", err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, timeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) Register(ctx context.Context) (string, error) {
	var result models.RegisterResponse

	resp, err := h.request(ctx).
		SetResult(&result).
		Post("/register")
	if err != nil {
		return "", fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return result.Key, nil
}

func (h *httpServerAdapter) GetData(ctx context.Context, key string) (models.SyncData, error) {
	var data models.SyncData

	resp, err := h.request(ctx).
		SetPathParam("key", key).
		SetResult(&data).
		Get("/db/{key}")
	if err != nil {
		return models.SyncData{}, fmt.Errorf("get data request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SyncData{}, err
	}

	return data, nil
}

func (h *httpServerAdapter) GetDataVersion(ctx context.Context, key string) (int64, error) {
	var version models.VersionResponse

	resp, err := h.request(ctx).
		SetPathParam("key", key).
		SetResult(&version).
		Get("/db/{key}/version")
	if err != nil {
		return 0, fmt.Errorf("get version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return 0, err
	}

	return version.Version, nil
}

func (h *httpServerAdapter) Put(ctx context.Context, key string, data models.SyncData) error {
	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("key", key).
		SetBody(data).
		Put("/db/{key}")
	if err != nil {
		return fmt.Errorf("put request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) RegisterLink(ctx context.Context, syncKey string) (models.Link, error) {
	var link models.Link

	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.LinkRequest{SyncKey: syncKey}).
		SetResult(&link).
		Post("/links")
	if err != nil {
		return models.Link{}, fmt.Errorf("register link request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Link{}, err
	}

	return link, nil
}

func (h *httpServerAdapter) GetLink(ctx context.Context, id string) (models.Link, error) {
	var link models.Link

	resp, err := h.request(ctx).
		SetPathParam("id", id).
		SetResult(&link).
		Get("/links/{id}")
	if err != nil {
		return models.Link{}, fmt.Errorf("get link request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Link{}, err
	}

	return link, nil
}

// request starts a request bound to ctx, forwarding the trace id if ctx
// carries one.
func (h *httpServerAdapter) request(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if traceID, ok := utils.GetTraceIDFromContext(ctx); ok {
		req.SetHeader(traceIDHeader, traceID)
	}
	return req
}
