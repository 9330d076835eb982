// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

// Package transport implements the two HTTP clients the controller facade
// talks through (the legacy cookie/CSRF-session API and the modern
// Integration API), their shared TLS and timeout policy, CSRF-token
// caching, envelope parsing, and platform detection.
package transport

import (
	"crypto/tls"
	"crypto/x509"
	"net/http"
	"net/http/cookiejar"
	"os"
	"time"

	"github.com/ksc98/unifly-sub001/internal/config"
	"github.com/ksc98/unifly-sub001/internal/errors"
)

// userAgent identifies every request this module sends, legacy or
// Integration.
const userAgent = "unifly-sub001/0.1"

// TransportConfig is the shared TLS/timeout/cookie policy both HTTP
// clients are built from.
type TransportConfig struct {
	TLS       config.TLSConfig
	Timeout   time.Duration
	CookieJar http.CookieJar
}

// NewTransportConfig builds a TransportConfig from a ControllerConfig,
// creating a fresh cookie jar (session auth needs one even if the caller
// never asked for it explicitly).
func NewTransportConfig(cfg config.ControllerConfig) (TransportConfig, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return TransportConfig{}, errors.Wrap(err, errors.KindTransport, "failed to build cookie jar")
	}
	return TransportConfig{TLS: cfg.TLS, Timeout: cfg.Timeout, CookieJar: jar}, nil
}

// buildTLSConfig turns the config.TLSConfig into a *tls.Config.
func buildTLSConfig(cfg config.TLSConfig) (*tls.Config, error) {
	switch cfg.Mode {
	case config.TlsSkipVerification:
		return &tls.Config{InsecureSkipVerify: true}, nil
	case config.TlsCustomCaPem:
		pem, err := os.ReadFile(cfg.CustomCaPemPath)
		if err != nil {
			return nil, errors.Wrap(err, errors.KindTls, "failed to read CA cert")
		}
		pool := x509.NewCertPool()
		if !pool.AppendCertsFromPEM(pem) {
			return nil, errors.New(errors.KindTls, "invalid CA cert")
		}
		return &tls.Config{RootCAs: pool}, nil
	default:
		return &tls.Config{}, nil
	}
}

// buildClient builds an *http.Client honoring the shared TLS and timeout
// policy, with the given cookie jar attached (nil disables cookies).
func (c TransportConfig) buildClient() (*http.Client, error) {
	tlsConfig, err := buildTLSConfig(c.TLS)
	if err != nil {
		return nil, err
	}
	return &http.Client{
		Timeout:   c.Timeout,
		Jar:       c.CookieJar,
		Transport: &http.Transport{TLSClientConfig: tlsConfig},
	}, nil
}
