// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package domain

import "time"

// Voucher is a hotspot guest access code.
type Voucher struct {
	ID                   EntityId
	Code                 string
	Name                 *string
	CreatedAt            *time.Time
	ActivatedAt          *time.Time
	ExpiresAt            *time.Time
	Expired              bool
	TimeLimitMinutes     *int
	DataUsageLimitMB     *int64
	AuthorizedGuestLimit *int
	AuthorizedGuestCount *int
	RxRateLimitKbps      *int64
	TxRateLimitKbps      *int64
	Source               DataSource
}
