// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/ksc98/unifly-sub001/internal/errors"
	"github.com/ksc98/unifly-sub001/internal/logging"
	"github.com/ksc98/unifly-sub001/internal/wire"
)

// retryAfter parses a Retry-After header value given in seconds, returning
// zero if absent or malformed.
func retryAfter(header string) time.Duration {
	secs, err := strconv.Atoi(header)
	if err != nil || secs < 0 {
		return 0
	}
	return time.Duration(secs) * time.Second
}

// IntegrationClient is the HTTP client for the modern X-API-KEY
// Integration REST API.
type IntegrationClient struct {
	http    *http.Client
	baseURL string
	apiKey  string
	site    string
	log     *logging.Logger
}

// NewIntegrationClient builds an IntegrationClient against baseURL, scoped
// to site, authenticated with apiKey on every request.
func NewIntegrationClient(baseURL, site, apiKey string, t TransportConfig, log *logging.Logger) (*IntegrationClient, error) {
	httpClient, err := t.buildClient()
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = logging.NewNop()
	}
	return &IntegrationClient{
		http:    httpClient,
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		site:    site,
		log:     log.Named("integration"),
	}, nil
}

// Site reports the site slug this client is scoped to.
func (c *IntegrationClient) Site() string { return c.site }

// integrationErrorBody is the structured error body the Integration API
// returns on non-2xx responses.
type integrationErrorBody struct {
	Message string `json:"message"`
	Code    string `json:"code"`
}

func (c *IntegrationClient) newRequest(ctx context.Context, method, path string, payload any) (*http.Request, error) {
	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, errors.Wrap(err, errors.KindDeserialization, "failed to encode request body")
		}
		body = bytes.NewReader(encoded)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, errors.Transport(err)
	}
	req.Header.Set("X-API-KEY", c.apiKey)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

// integrationDo sends req and returns the raw response body, classifying
// non-2xx responses into structured errors.
func integrationDo(c *IntegrationClient, req *http.Request) ([]byte, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Transport(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Transport(err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, errors.InvalidApiKey()
	}
	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, errors.RateLimited(retryAfter(resp.Header.Get("Retry-After")))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errBody integrationErrorBody
		_ = json.Unmarshal(body, &errBody)
		return nil, errors.Integration(resp.StatusCode, errBody.Message, errBody.Code)
	}
	return body, nil
}

// IntegrationList sends a GET request to a list endpoint and decodes the
// Page[T] envelope, returning its data.
func IntegrationList[T any](ctx context.Context, c *IntegrationClient, path string) ([]T, error) {
	req, err := c.newRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	body, err := integrationDo(c, req)
	if err != nil {
		return nil, err
	}
	var page wire.Page[T]
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, errors.Deserialization(err, string(body))
	}
	return page.Data, nil
}

// IntegrationGet sends a GET request to a single-resource endpoint and
// decodes the body directly into T.
func IntegrationGet[T any](ctx context.Context, c *IntegrationClient, path string) (T, error) {
	var zero T
	req, err := c.newRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return zero, err
	}
	body, err := integrationDo(c, req)
	if err != nil {
		return zero, err
	}
	var out T
	if err := json.Unmarshal(body, &out); err != nil {
		return zero, errors.Deserialization(err, string(body))
	}
	return out, nil
}

// IntegrationPost sends a POST request with a JSON body and decodes the
// response into T.
func IntegrationPost[T any](ctx context.Context, c *IntegrationClient, path string, payload any) (T, error) {
	return integrationWrite[T](ctx, c, http.MethodPost, path, payload)
}

// IntegrationPut sends a PUT request with a JSON body and decodes the
// response into T.
func IntegrationPut[T any](ctx context.Context, c *IntegrationClient, path string, payload any) (T, error) {
	return integrationWrite[T](ctx, c, http.MethodPut, path, payload)
}

// IntegrationDelete sends a DELETE request and discards the response body.
func IntegrationDelete(ctx context.Context, c *IntegrationClient, path string) error {
	req, err := c.newRequest(ctx, http.MethodDelete, path, nil)
	if err != nil {
		return err
	}
	_, err = integrationDo(c, req)
	return err
}

func integrationWrite[T any](ctx context.Context, c *IntegrationClient, method, path string, payload any) (T, error) {
	var zero T
	req, err := c.newRequest(ctx, method, path, payload)
	if err != nil {
		return zero, err
	}
	body, err := integrationDo(c, req)
	if err != nil {
		return zero, err
	}
	if len(body) == 0 {
		return zero, nil
	}
	var out T
	if err := json.Unmarshal(body, &out); err != nil {
		return zero, errors.Deserialization(err, string(body))
	}
	return out, nil
}
