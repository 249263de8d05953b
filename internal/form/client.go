// Package form holds the document-check form state and drives the critique
// request/response cycle against the dashboard API.
package form

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"careercoach/dashboard-api/internal/models"
)

// CritiquePath is the critique endpoint path on the API server.
const CritiquePath = "/api/v1/critique"

// DefaultTimeout bounds one critique round trip. Model calls routinely take
// tens of seconds.
const DefaultTimeout = 120 * time.Second

// Client is an HTTP client for the critique endpoint.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a critique API client.
func NewClient(baseURL string, timeout time.Duration) (client *Client) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	client = &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
	return client
}

// Critique posts the payload and decodes the response body. Non-2xx statuses
// are not an error at this level: the server's JSON error message comes back
// in the response struct, and only transport or decoding failures return err.
func (c *Client) Critique(ctx context.Context, payload models.CritiqueRequest) (response models.CritiqueResponse, err error) {
	var reqBody []byte
	reqBody, err = json.Marshal(payload)
	if err != nil {
		err = errors.Wrap(err, "failed to marshal request")
		return response, err
	}

	var httpReq *http.Request
	httpReq, err = http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+CritiquePath, bytes.NewReader(reqBody))
	if err != nil {
		err = errors.Wrap(err, "failed to create HTTP request")
		return response, err
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("X-Request-ID", uuid.New().String())

	var httpResp *http.Response
	httpResp, err = c.httpClient.Do(httpReq)
	if err != nil {
		err = errors.Wrap(err, "critique request failed")
		return response, err
	}
	defer httpResp.Body.Close()

	var respBody []byte
	respBody, err = io.ReadAll(httpResp.Body)
	if err != nil {
		err = errors.Wrap(err, "failed to read response body")
		return response, err
	}

	err = json.Unmarshal(respBody, &response)
	if err != nil {
		err = errors.Wrapf(err, "failed to parse response: %s", string(respBody))
		return response, err
	}

	return response, err
}
