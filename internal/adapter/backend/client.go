package backend

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/paramveer-prakash/career-sub001/internal/domain"
	"github.com/paramveer-prakash/career-sub001/internal/model"
)

const maxBodyBytes = 2 << 20

// Client fetches resumes from the resume backend:
// GET {BaseURL}/api/v1/resumes/{id} with the caller's bearer token.
type Client struct {
	BaseURL string
	HTTP    *http.Client
	Timeout time.Duration
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
			Timeout:   timeout,
		},
		Timeout: timeout,
	}
}

// Fetch never returns fallback data; it only classifies what the backend
// said. token is forwarded verbatim when non-empty.
func (c *Client) Fetch(ctx context.Context, resumeID, token string) domain.FetchResult {
	if c == nil || c.BaseURL == "" {
		return domain.FetchResult{Status: domain.Unreachable, Err: errors.New("resume backend not configured")}
	}

	ctx, cancel := context.WithTimeout(ctx, c.Timeout)
	defer cancel()

	endpoint := c.BaseURL + "/api/v1/resumes/" + url.PathEscape(resumeID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return domain.FetchResult{Status: domain.Unreachable, Err: fmt.Errorf("build request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return domain.FetchResult{Status: domain.Unreachable, Err: fmt.Errorf("http request failed: %w", err)}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return domain.FetchResult{Status: domain.Unauthorized, StatusCode: resp.StatusCode, Err: fmt.Errorf("backend rejected credentials: %d", resp.StatusCode)}
	case resp.StatusCode == http.StatusNotFound:
		return domain.FetchResult{Status: domain.NotFound, StatusCode: resp.StatusCode, Err: fmt.Errorf("resume %s not found", resumeID)}
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return domain.FetchResult{Status: domain.Unreachable, StatusCode: resp.StatusCode, Err: fmt.Errorf("received non-2xx status code: %d", resp.StatusCode)}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return domain.FetchResult{Status: domain.Unreachable, StatusCode: resp.StatusCode, Err: fmt.Errorf("failed to read response body: %w", err)}
	}

	r, err := model.Decode(body)
	if err != nil {
		return domain.FetchResult{Status: domain.Unreachable, StatusCode: resp.StatusCode, Err: err}
	}
	return domain.FoundResult(r)
}
