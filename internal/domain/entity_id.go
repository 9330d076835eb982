// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

// Package domain holds the canonical, controller-agnostic entity types the
// facade exposes to callers, plus the wire-to-domain conversion logic that
// reconciles the legacy and Integration API shapes into them.
package domain

import (
	"strings"

	"github.com/google/uuid"
)

// EntityIdKind distinguishes the two shapes an EntityId can carry.
type EntityIdKind int

const (
	// EntityIdUUID is the modern Integration API identifier shape.
	EntityIdUUID EntityIdKind = iota
	// EntityIdLegacy is the legacy API's opaque Mongo-style hex string.
	EntityIdLegacy
)

// EntityId is a sum type over the two identifier shapes the controller
// hands out: a UUID from the Integration API, or an opaque legacy string
// (typically a 24-char hex ObjectId) from the cookie/CSRF API. Constructing
// one always succeeds; which variant it holds is decided on construction
// by attempting a UUID parse first.
type EntityId struct {
	kind   EntityIdKind
	uuid   uuid.UUID
	legacy string
}

// NewEntityId parses raw into an EntityId, preferring the UUID variant
// whenever raw parses as one and falling back to the legacy string variant
// otherwise.
func NewEntityId(raw string) EntityId {
	if u, err := uuid.Parse(raw); err == nil {
		return EntityId{kind: EntityIdUUID, uuid: u}
	}
	return EntityId{kind: EntityIdLegacy, legacy: raw}
}

// Kind reports which variant the id holds.
func (e EntityId) Kind() EntityIdKind {
	return e.kind
}

// String renders the id back to its canonical wire form.
func (e EntityId) String() string {
	if e.kind == EntityIdUUID {
		return e.uuid.String()
	}
	return e.legacy
}

// IsUUID reports whether the id is the Integration API's UUID variant.
func (e EntityId) IsUUID() bool {
	return e.kind == EntityIdUUID
}

// MacAddress is a MAC address normalized to lowercase colon-separated
// form ("aa:bb:cc:dd:ee:ff") regardless of the separator or case the
// controller sent it in.
type MacAddress string

// NewMacAddress normalizes raw into a MacAddress: lowercases it and
// replaces any "-" separators with ":".
func NewMacAddress(raw string) MacAddress {
	normalized := strings.ToLower(raw)
	normalized = strings.ReplaceAll(normalized, "-", ":")
	return MacAddress(normalized)
}

func (m MacAddress) String() string {
	return string(m)
}
