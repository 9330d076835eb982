// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package domain

// Site is one controller-managed site (a physical or logical deployment
// grouping of devices, clients, and networks).
type Site struct {
	ID           EntityId
	InternalName string
	Name         string
	DeviceCount  *int
	ClientCount  *int
	Source       DataSource
}
