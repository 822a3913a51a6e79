package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/fieldtrack/syncserver/models"
	"github.com/go-resty/resty/v2"
)

type HTTPResolverConfig struct {
	BaseURL string
	Timeout time.Duration
}

// candidateRequest is the wire shape of one candidate lookup against the
// upstream ownership service.
type candidateRequest struct {
	DeviceID   string   `json:"device_id"`
	OwnerIDs   []string `json:"owner_ids"`
	SinceLogID string   `json:"since_log_id,omitempty"`
}

// httpOwnershipResolver queries an upstream ownership service for the cases
// relevant to a device. It satisfies service.OwnershipResolver.
type httpOwnershipResolver struct {
	client *resty.Client
}

func NewHTTPOwnershipResolver(cfg HTTPResolverConfig) *httpOwnershipResolver {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &httpOwnershipResolver{client: cli}
}

func (h *httpOwnershipResolver) CandidateUpdates(ctx context.Context, device models.Device, since *models.SyncLog) ([]models.CandidateUpdate, error) {
	req := candidateRequest{DeviceID: device.DeviceID, OwnerIDs: device.OwnerIDs}
	if since != nil {
		req.SinceLogID = since.ID
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/cases/candidates")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrResolverUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var candidates []models.CandidateUpdate
	if err = json.Unmarshal(resp.Body(), &candidates); err != nil {
		return nil, fmt.Errorf("decoding candidate updates: %w", err)
	}
	return candidates, nil
}
