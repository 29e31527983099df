package scoring

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// SidecarConfig configures the HTTP client for the local scoring sidecar.
type SidecarConfig struct {
	BaseURL string
	Timeout time.Duration
}

// DefaultSidecarConfig returns the config for a sidecar on its default port.
func DefaultSidecarConfig() SidecarConfig {
	return SidecarConfig{
		BaseURL: "http://127.0.0.1:8756",
		Timeout: 30 * time.Second,
	}
}

// SidecarClient talks to the embedding-based scoring sidecar over HTTP.
// The sidecar owns the scoring algorithm and the attempt history; this
// client is transport only. It implements Scorer and History.
type SidecarClient struct {
	baseURL string
	client  *http.Client
}

var _ Scorer = (*SidecarClient)(nil)
var _ History = (*SidecarClient)(nil)

// NewSidecarClient creates a sidecar client from config.
func NewSidecarClient(cfg SidecarConfig) *SidecarClient {
	base := cfg.BaseURL
	if base == "" {
		base = DefaultSidecarConfig().BaseURL
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultSidecarConfig().Timeout
	}
	return &SidecarClient{
		baseURL: base,
		client:  &http.Client{Timeout: timeout},
	}
}

// Score submits an answer for judgment.
func (c *SidecarClient) Score(ctx context.Context, req Request) (*AttemptRecord, error) {
	var rec AttemptRecord
	if err := c.post(ctx, "/score", req, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// Attempts returns the newest-first attempt history for a card.
func (c *SidecarClient) Attempts(ctx context.Context, cardID string, limit int) ([]AttemptRecord, error) {
	path := "/cards/" + url.PathEscape(cardID) + "/attempts"
	if limit > 0 {
		path += "?limit=" + strconv.Itoa(limit)
	}
	var recs []AttemptRecord
	if err := c.get(ctx, path, &recs); err != nil {
		return nil, err
	}
	return recs, nil
}

// HealthStatus reports sidecar readiness.
type HealthStatus struct {
	Status     string `json:"status"`
	Database   string `json:"database"`
	ModelCache string `json:"model_cache"`
}

// Health probes the sidecar.
func (c *SidecarClient) Health(ctx context.Context) (*HealthStatus, error) {
	var hs HealthStatus
	if err := c.get(ctx, "/health", &hs); err != nil {
		return nil, err
	}
	return &hs, nil
}

// WarmModel asks the sidecar to load its embedding model ahead of the
// first score request.
func (c *SidecarClient) WarmModel(ctx context.Context) error {
	return c.post(ctx, "/warm-model", nil, nil)
}

func (c *SidecarClient) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	return c.do(req, out)
}

func (c *SidecarClient) post(ctx context.Context, path string, body, out any) error {
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		rd = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, rd)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *SidecarClient) do(req *http.Request, out any) error {
	resp, err := c.client.Do(req)
	if err != nil {
		// net/http error text already carries the connection/timeout
		// markers the caller classifies on.
		return fmt.Errorf("scoring sidecar: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return decodeErrorResponse(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode sidecar response: %w", err)
	}
	return nil
}

// decodeErrorResponse extracts the detail message the sidecar puts in
// error bodies, falling back to the HTTP status.
func decodeErrorResponse(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Detail != "" {
		return fmt.Errorf("scoring sidecar: %d %s", resp.StatusCode, payload.Detail)
	}
	return fmt.Errorf("scoring sidecar: %s", resp.Status)
}
