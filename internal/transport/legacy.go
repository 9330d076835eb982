// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/ksc98/unifly-sub001/internal/errors"
	"github.com/ksc98/unifly-sub001/internal/logging"
	"github.com/ksc98/unifly-sub001/internal/wire"
)

// LegacyClient is the HTTP client for the cookie/CSRF-session legacy API.
// It owns platform-aware URL construction, envelope unwrapping, and a
// mutex-protected CSRF token cache applied to every mutating request.
type LegacyClient struct {
	http     *http.Client
	baseURL  string
	site     string
	platform Platform
	log      *logging.Logger

	csrfMu sync.RWMutex
	csrf   string
}

// NewLegacyClient builds a LegacyClient against baseURL for the given
// site and platform. transport must carry a non-nil cookie jar; session
// auth depends on it.
func NewLegacyClient(baseURL, site string, platform Platform, t TransportConfig, log *logging.Logger) (*LegacyClient, error) {
	httpClient, err := t.buildClient()
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = logging.NewNop()
	}
	return &LegacyClient{
		http:     httpClient,
		baseURL:  strings.TrimRight(baseURL, "/"),
		site:     site,
		platform: platform,
		log:      log.Named("legacy"),
	}, nil
}

// Platform reports the controller platform this client was built for.
func (c *LegacyClient) Platform() Platform { return c.platform }

// Site reports the site slug this client is scoped to.
func (c *LegacyClient) Site() string { return c.site }

// CookieHeader returns the Cookie header value to hand the WebSocket
// dialer: every cookie the jar holds for baseURL, plus the separately
// cached CSRF token (UniFi OS sends it as a response header, never as a
// Set-Cookie, so it never lands in the jar on its own). Classic
// Controller never populates a CSRF token, so this degrades to the
// session cookie alone there.
func (c *LegacyClient) CookieHeader() string {
	var parts []string

	if u, err := url.Parse(c.baseURL); err == nil {
		for _, ck := range c.http.Jar.Cookies(u) {
			parts = append(parts, ck.Name+"="+ck.Value)
		}
	}

	c.csrfMu.RLock()
	token := c.csrf
	c.csrfMu.RUnlock()
	if token != "" {
		parts = append(parts, "csrf_token="+token)
	}

	return strings.Join(parts, "; ")
}

// apiURL builds a controller-scoped URL: {base}{prefix}/api/{path}.
func (c *LegacyClient) apiURL(path string) string {
	prefix, _ := c.platform.legacyPrefix()
	return c.baseURL + strings.TrimRight(prefix, "/") + "/api/" + strings.TrimLeft(path, "/")
}

// siteURL builds a site-scoped URL: {base}{prefix}/api/s/{site}/{path}.
func (c *LegacyClient) siteURL(path string) string {
	prefix, _ := c.platform.legacyPrefix()
	return c.baseURL + strings.TrimRight(prefix, "/") + "/api/s/" + c.site + "/" + strings.TrimLeft(path, "/")
}

func (c *LegacyClient) setCSRF(token string) {
	if token == "" {
		return
	}
	c.csrfMu.Lock()
	c.csrf = token
	c.csrfMu.Unlock()
}

func (c *LegacyClient) applyCSRF(req *http.Request) {
	c.csrfMu.RLock()
	token := c.csrf
	c.csrfMu.RUnlock()
	if token != "" {
		req.Header.Set("X-CSRF-Token", token)
	}
}

// Login authenticates against the platform-appropriate endpoint and caches
// any CSRF token returned in response headers. The session cookie lands in
// the client's jar automatically.
func (c *LegacyClient) Login(ctx context.Context, username, password string) error {
	path, ok := c.platform.loginPath()
	if !ok {
		return errors.Authentication("login not supported on this platform")
	}
	body, _ := json.Marshal(map[string]string{"username": username, "password": password})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return errors.Transport(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Transport(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		preview, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return errors.Errorf(errors.KindAuthentication, "login failed (HTTP %d): %s", resp.StatusCode, preview)
	}

	c.setCSRF(csrfFromHeader(resp.Header))
	c.log.Debugw("login successful", "platform", c.platform.String())
	return nil
}

// Logout posts to the platform-appropriate logout path. It is best-effort:
// errors are logged and swallowed since the caller is tearing down anyway.
func (c *LegacyClient) Logout(ctx context.Context) {
	path, ok := c.platform.logoutPath()
	if !ok {
		return
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, nil)
	if err != nil {
		return
	}
	c.applyCSRF(req)
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debugw("logout request failed, ignoring", "error", err)
		return
	}
	resp.Body.Close()
}

func csrfFromHeader(h http.Header) string {
	if v := h.Get("X-Updated-CSRF-Token"); v != "" {
		return v
	}
	return h.Get("X-CSRF-Token")
}

// legacyDo sends req through the shared envelope-parsing pipeline and
// decodes data into T, one element per envelope entry.
func legacyDo[T any](c *LegacyClient, req *http.Request) ([]T, error) {
	req.Header.Set("User-Agent", userAgent)
	c.applyCSRF(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Transport(err)
	}
	defer resp.Body.Close()

	c.setCSRF(csrfFromHeader(resp.Header))

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, errors.Authentication("session expired or invalid credentials")
	}
	if resp.StatusCode == http.StatusForbidden {
		return nil, errors.LegacyApi("insufficient permissions (HTTP 403)")
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Transport(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		preview := body
		if len(preview) > 200 {
			preview = preview[:200]
		}
		return nil, errors.LegacyApi(fmt.Sprintf("HTTP %d: %s", resp.StatusCode, preview))
	}

	var osErr wire.UnifiOsErrorEnvelope
	if json.Unmarshal(body, &osErr) == nil && osErr.Error.Code != 0 {
		if osErr.Error.Code == http.StatusUnauthorized {
			return nil, errors.Authentication(osErr.Error.Message)
		}
		return nil, errors.LegacyApi(osErr.Error.Message)
	}

	var envelope wire.LegacyEnvelope[T]
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, errors.Deserialization(err, string(body))
	}

	if envelope.Meta.Rc != "ok" {
		msg := envelope.Meta.Msg
		if msg == "" {
			msg = "rc=" + envelope.Meta.Rc
		}
		return nil, errors.LegacyApi(msg)
	}
	return envelope.Data, nil
}

// LegacyGet sends a GET request against url and decodes the envelope data
// into []T.
func LegacyGet[T any](ctx context.Context, c *LegacyClient, rawURL string) ([]T, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, errors.Transport(err)
	}
	return legacyDo[T](c, req)
}

// LegacyPost sends a POST request with a JSON body against url and decodes
// the envelope data into []T.
func LegacyPost[T any](ctx context.Context, c *LegacyClient, rawURL string, payload any) ([]T, error) {
	return legacyWriteVerb[T](ctx, c, http.MethodPost, rawURL, payload)
}

// LegacyPut sends a PUT request with a JSON body against url and decodes
// the envelope data into []T.
func LegacyPut[T any](ctx context.Context, c *LegacyClient, rawURL string, payload any) ([]T, error) {
	return legacyWriteVerb[T](ctx, c, http.MethodPut, rawURL, payload)
}

// LegacyDelete sends a DELETE request against url and decodes the envelope
// data into []T.
func LegacyDelete[T any](ctx context.Context, c *LegacyClient, rawURL string) ([]T, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, rawURL, nil)
	if err != nil {
		return nil, errors.Transport(err)
	}
	return legacyDo[T](c, req)
}

func legacyWriteVerb[T any](ctx context.Context, c *LegacyClient, method, rawURL string, payload any) ([]T, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Wrap(err, errors.KindDeserialization, "failed to encode request body")
	}
	req, err := http.NewRequestWithContext(ctx, method, rawURL, bytes.NewReader(body))
	if err != nil {
		return nil, errors.Transport(err)
	}
	req.Header.Set("Content-Type", "application/json")
	return legacyDo[T](c, req)
}

// ApiURL exposes apiURL for endpoint modules outside this file.
func (c *LegacyClient) ApiURL(path string) string { return c.apiURL(path) }

// SiteURL exposes siteURL for endpoint modules outside this file.
func (c *LegacyClient) SiteURL(path string) string { return c.siteURL(path) }

// WebSocketURL builds the wss:// event-stream URL for this client's site
// and platform. Reports false if the platform has no event stream
// (Cloud).
func (c *LegacyClient) WebSocketURL() (string, bool) {
	path, ok := c.platform.websocketPath(c.site)
	if !ok {
		return "", false
	}
	wsBase := c.baseURL
	switch {
	case strings.HasPrefix(wsBase, "https://"):
		wsBase = "wss://" + strings.TrimPrefix(wsBase, "https://")
	case strings.HasPrefix(wsBase, "http://"):
		wsBase = "ws://" + strings.TrimPrefix(wsBase, "http://")
	}
	return wsBase + path, true
}
