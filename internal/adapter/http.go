package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/trade-journal/internal/config"
	"github.com/MKhiriev/trade-journal/internal/logger"
	"github.com/MKhiriev/trade-journal/internal/utils"
	"github.com/MKhiriev/trade-journal/models"
)

const (
	traceIDHeader = "X-Trace-ID"

	cellPath = "/api/journal/{date}/{bar}/{kind}"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPServerAdapter builds the REST implementation of [ServerAdapter].
// adapterCfg.HTTPAddress may omit the scheme ("localhost:8080").
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
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

func (h *httpServerAdapter) GetVersion(ctx context.Context) (string, error) {
	resp, err := h.request(ctx).Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

func (h *httpServerAdapter) GetPresets(ctx context.Context) (models.PresetsResponse, error) {
	var presets models.PresetsResponse

	resp, err := h.request(ctx).SetResult(&presets).Get("/api/presets")
	if err != nil {
		return models.PresetsResponse{}, fmt.Errorf("presets request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PresetsResponse{}, err
	}

	return presets, nil
}

func (h *httpServerAdapter) GetResolution(ctx context.Context) (models.ResolutionResponse, error) {
	var resolution models.ResolutionResponse

	resp, err := h.request(ctx).SetResult(&resolution).Get("/api/presets/resolution")
	if err != nil {
		return models.ResolutionResponse{}, fmt.Errorf("presets resolution request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ResolutionResponse{}, err
	}

	return resolution, nil
}

func (h *httpServerAdapter) GetLayout(ctx context.Context) (models.Layout, error) {
	var layout models.Layout

	resp, err := h.request(ctx).SetResult(&layout).Get("/api/layout")
	if err != nil {
		return models.Layout{}, fmt.Errorf("layout request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Layout{}, err
	}

	return layout, nil
}

func (h *httpServerAdapter) ListDays(ctx context.Context) ([]string, error) {
	var days models.DaysResponse

	resp, err := h.request(ctx).SetResult(&days).Get("/api/journal")
	if err != nil {
		return nil, fmt.Errorf("list days request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return days.Days, nil
}

func (h *httpServerAdapter) GetDay(ctx context.Context, date string) (models.Day, error) {
	var day models.Day

	resp, err := h.request(ctx).
		SetPathParam("date", date).
		SetResult(&day).
		Get("/api/journal/{date}")
	if err != nil {
		return models.Day{}, fmt.Errorf("get day request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Day{}, err
	}

	return day, nil
}

func (h *httpServerAdapter) DeleteDay(ctx context.Context, date string) error {
	resp, err := h.request(ctx).
		SetPathParam("date", date).
		Delete("/api/journal/{date}")
	if err != nil {
		return fmt.Errorf("delete day request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) GetCell(ctx context.Context, key models.CellKey) (models.Cell, error) {
	var cell models.Cell

	resp, err := h.cellRequest(ctx, key).SetResult(&cell).Get(cellPath)
	if err != nil {
		return models.Cell{}, fmt.Errorf("get cell request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Cell{}, err
	}

	return cell, nil
}

func (h *httpServerAdapter) SetLabels(ctx context.Context, key models.CellKey, labels []string) (models.Cell, error) {
	var cell models.Cell

	resp, err := h.cellRequest(ctx, key).
		SetHeader("Content-Type", "application/json").
		SetBody(models.SetLabelsRequest{Labels: labels}).
		SetResult(&cell).
		Put(cellPath)
	if err != nil {
		return models.Cell{}, fmt.Errorf("set labels request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Cell{}, err
	}

	return cell, nil
}

func (h *httpServerAdapter) AddLabel(ctx context.Context, key models.CellKey, label string) (models.Cell, error) {
	var cell models.Cell

	resp, err := h.cellRequest(ctx, key).
		SetHeader("Content-Type", "application/json").
		SetBody(models.AddLabelRequest{Label: label}).
		SetResult(&cell).
		Post(cellPath + "/labels")
	if err != nil {
		return models.Cell{}, fmt.Errorf("add label request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Cell{}, err
	}

	return cell, nil
}

func (h *httpServerAdapter) RemoveLabel(ctx context.Context, key models.CellKey, label string) (models.Cell, error) {
	var cell models.Cell

	resp, err := h.cellRequest(ctx, key).
		SetQueryParam("label", label).
		SetResult(&cell).
		Delete(cellPath + "/labels")
	if err != nil {
		return models.Cell{}, fmt.Errorf("remove label request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Cell{}, err
	}

	return cell, nil
}

func (h *httpServerAdapter) ClearCell(ctx context.Context, key models.CellKey) error {
	resp, err := h.cellRequest(ctx, key).Delete(cellPath)
	if err != nil {
		return fmt.Errorf("clear cell request: %w", err)
	}

	return mapHTTPError(resp)
}

// request starts a request carrying ctx and, if present, its trace ID.
func (h *httpServerAdapter) request(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if traceID, ok := utils.GetTraceIDFromContext(ctx); ok {
		req.SetHeader(traceIDHeader, traceID)
	}
	return req
}

func (h *httpServerAdapter) cellRequest(ctx context.Context, key models.CellKey) *resty.Request {
	return h.request(ctx).SetPathParams(map[string]string{
		"date": key.Date,
		"bar":  key.Bar,
		"kind": key.Kind.String(),
	})
}
