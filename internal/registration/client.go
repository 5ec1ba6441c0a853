package registration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// HTTPSubmitter posts forms as JSON to the registration endpoint.
type HTTPSubmitter struct {
	client   *http.Client
	endpoint string
}

// NewHTTPSubmitter builds a submitter for endpoint (e.g.
// "http://localhost:8080/api/register"). A nil client gets a 15s timeout.
func NewHTTPSubmitter(client *http.Client, endpoint string) *HTTPSubmitter {
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	return &HTTPSubmitter{client: client, endpoint: endpoint}
}

// Submit sends f and returns whatever the endpoint answered.
func (h *HTTPSubmitter) Submit(ctx context.Context, f Form) (Response, error) {
	const op = "registration.Submit"

	payload, err := json.Marshal(f)
	if err != nil {
		return Response{}, fmt.Errorf("%s: encode: %w", op, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.endpoint, bytes.NewReader(payload))
	if err != nil {
		return Response{}, fmt.Errorf("%s: new_request: %w", op, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := h.client.Do(req)
	if err != nil {
		return Response{}, fmt.Errorf("%s: do: %w", op, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Response{}, fmt.Errorf("%s: read: %w", op, err)
	}
	return Response{Status: resp.StatusCode, Body: body}, nil
}
