// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package transport

import (
	"context"
	"crypto/tls"
	"net/http"

	"github.com/ksc98/unifly-sub001/internal/errors"
)

// Platform names the controller variant the legacy client is talking to.
// It fixes the legacy API path prefix, the login/logout paths, and the
// WebSocket path template.
type Platform int

const (
	PlatformUnifiOs Platform = iota
	PlatformClassicController
	PlatformCloud
)

func (p Platform) String() string {
	switch p {
	case PlatformUnifiOs:
		return "unifi_os"
	case PlatformClassicController:
		return "classic_controller"
	case PlatformCloud:
		return "cloud"
	default:
		return "unknown"
	}
}

// legacyPrefix is the path segment inserted before every legacy-API URL.
// Cloud has no legacy surface.
func (p Platform) legacyPrefix() (string, bool) {
	switch p {
	case PlatformUnifiOs:
		return "/proxy/network", true
	case PlatformClassicController:
		return "", true
	default:
		return "", false
	}
}

func (p Platform) loginPath() (string, bool) {
	switch p {
	case PlatformUnifiOs:
		return "/api/auth/login", true
	case PlatformClassicController:
		return "/api/login", true
	default:
		return "", false
	}
}

func (p Platform) logoutPath() (string, bool) {
	switch p {
	case PlatformUnifiOs:
		return "/api/auth/logout", true
	case PlatformClassicController:
		return "/api/logout", true
	default:
		return "", false
	}
}

// websocketPath returns the WebSocket path template for site; "{site}" is
// substituted directly since the site slug never needs escaping.
func (p Platform) websocketPath(site string) (string, bool) {
	switch p {
	case PlatformUnifiOs:
		return "/proxy/network/wss/s/" + site + "/events", true
	case PlatformClassicController:
		return "/wss/s/" + site + "/events", true
	default:
		return "", false
	}
}

// DetectPlatform probes the controller at baseURL to tell a UniFi OS
// device apart from a standalone Network Application. It tries the UniFi
// OS login endpoint first; any response other than 404 means UniFi OS is
// present at that proxy path. Anything else falls back to probing the
// standalone login endpoint.
func DetectPlatform(ctx context.Context, baseURL string, insecureSkipVerify bool) (Platform, error) {
	client := &http.Client{
		Transport: &http.Transport{TLSClientConfig: &tls.Config{InsecureSkipVerify: insecureSkipVerify}},
	}

	if resp, err := probe(ctx, client, baseURL+"/api/auth/login"); err == nil {
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusNotFound {
			return PlatformUnifiOs, nil
		}
	}

	resp, err := probe(ctx, client, baseURL+"/api/login")
	if err != nil {
		return PlatformUnifiOs, errors.Transport(err)
	}
	defer resp.Body.Close()
	return PlatformClassicController, nil
}

func probe(ctx context.Context, client *http.Client, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	return client.Do(req)
}
