// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package errors

import (
	stderrors "errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMessage(t *testing.T) {
	err := New(KindAuthentication, "bad credentials")
	require.EqualError(t, err, "bad credentials")

	wrapped := Wrap(err, KindLegacyApi, "login failed")
	require.EqualError(t, wrapped, "login failed: bad credentials")
}

func TestGetKind(t *testing.T) {
	err := New(KindTls, "handshake failed")
	assert.Equal(t, KindTls, GetKind(err))

	wrapped := Wrap(err, KindTransport, "dial failed")
	assert.Equal(t, KindTransport, GetKind(wrapped))

	assert.Equal(t, KindUnknown, GetKind(stderrors.New("plain error")))
}

func TestAttributes(t *testing.T) {
	err := Integration(422, "Invalid VLAN ID", "VALIDATION_ERROR")
	attrs := GetAttributes(err)
	assert.Equal(t, 422, attrs["status"])
	assert.Equal(t, "VALIDATION_ERROR", attrs["code"])

	wrapped := Attr(err, "retryable", false)
	allAttrs := GetAttributes(wrapped)
	assert.Equal(t, 422, allAttrs["status"])
	assert.Equal(t, false, allAttrs["retryable"])
}

func TestRateLimitedAttributesRetryAfter(t *testing.T) {
	err := RateLimited(30 * time.Second)
	attrs := GetAttributes(err)
	assert.Equal(t, 30*time.Second, attrs["retry_after"])
}

func TestIsAuthExpired(t *testing.T) {
	assert.True(t, IsAuthExpired(Authentication("session expired")))
	assert.True(t, IsAuthExpired(InvalidApiKey()))
	assert.False(t, IsAuthExpired(New(KindTransport, "connect refused")))
}

func TestIsTransient(t *testing.T) {
	assert.True(t, IsTransient(Timeout(5*time.Second)))
	assert.True(t, IsTransient(RateLimited(time.Second)))
	assert.True(t, IsTransient(WebSocketConnect("dial tcp: timeout")))
	assert.False(t, IsTransient(New(KindAuthentication, "bad password")))
}

func TestIsNotFound(t *testing.T) {
	notFound := Integration(http.StatusNotFound, "no such network", "")
	assert.True(t, IsNotFound(notFound))

	other := Integration(http.StatusUnprocessableEntity, "invalid", "VALIDATION_ERROR")
	assert.False(t, IsNotFound(other))
}

func TestDeserializationTruncatesBody(t *testing.T) {
	longBody := make([]byte, 1000)
	for i := range longBody {
		longBody[i] = 'x'
	}
	err := Deserialization(stderrors.New("unexpected end of JSON input"), string(longBody))
	attrs := GetAttributes(err)
	body, ok := attrs["body"].(string)
	require.True(t, ok)
	assert.Less(t, len(body), 1000)
	assert.Equal(t, KindDeserialization, GetKind(err))
}
