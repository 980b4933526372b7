package adjustment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

type HTTPCollaborator struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewHTTPCollaborator(baseURL, apiKey string) *HTTPCollaborator {
	return &HTTPCollaborator{
		baseURL: baseURL,
		apiKey:  apiKey,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// httpResult memakai pointer supaya field yang hilang bisa dibedakan
// dari nilai nol yang sah.
type httpResult struct {
	AdjustedExpectedAmount *float64 `json:"adjusted_expected_amount"`
	Reasoning              *string  `json:"reasoning"`
}

func (h *HTTPCollaborator) Adjust(ctx context.Context, req Request) (Result, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return Result{}, fmt.Errorf("marshal adjustment request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, h.baseURL+"/v1/adjust", bytes.NewReader(payload))
	if err != nil {
		return Result{}, fmt.Errorf("build adjustment request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if h.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+h.apiKey)
	}

	resp, err := h.client.Do(httpReq)
	if err != nil {
		return Result{}, fmt.Errorf("call adjustment service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Result{}, fmt.Errorf("adjustment service returned status %d", resp.StatusCode)
	}

	var body httpResult
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Result{}, fmt.Errorf("decode adjustment response: %w", err)
	}

	// Kedua field wajib ada; respon setengah jadi dianggap gagal
	if body.AdjustedExpectedAmount == nil || body.Reasoning == nil || *body.Reasoning == "" {
		return Result{}, fmt.Errorf("adjustment response incomplete")
	}

	return Result{
		AdjustedExpectedAmount: *body.AdjustedExpectedAmount,
		Reasoning:              *body.Reasoning,
	}, nil
}
