// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ksc98/unifly-sub001/internal/domain"
)

func TestUpsertGetByKeyAndGetByIDAgree(t *testing.T) {
	c := NewEntityCollection[domain.Device]()
	id := domain.NewEntityId("550e8400-e29b-41d4-a716-446655440000")
	dev := domain.Device{ID: id, Mac: "aa:bb:cc:dd:ee:ff"}

	c.Upsert("aa:bb:cc:dd:ee:ff", id, dev)

	byKey, ok := c.Get("aa:bb:cc:dd:ee:ff")
	require.True(t, ok)
	byID, ok := c.GetByID(id)
	require.True(t, ok)
	assert.Equal(t, byKey, byID)
}

func TestUpsertMovingIDToNewKeyRemovesStaleMapping(t *testing.T) {
	c := NewEntityCollection[domain.Device]()
	id := domain.NewEntityId("550e8400-e29b-41d4-a716-446655440000")

	c.Upsert("key-a", id, domain.Device{ID: id})
	c.Upsert("key-b", id, domain.Device{ID: id})

	_, stillAtOldKey := c.Get("key-a")
	assert.True(t, stillAtOldKey, "old key's own entity is untouched by reassigning the id elsewhere")

	byID, ok := c.GetByID(id)
	require.True(t, ok)
	_ = byID
	resolved, _ := c.Get("key-b")
	byIDResolved, _ := c.GetByID(id)
	assert.Equal(t, resolved, byIDResolved)
}

func TestUpsertReturnsWhetherKeyWasNew(t *testing.T) {
	c := NewEntityCollection[domain.Device]()
	id := domain.NewEntityId("dev-1")
	assert.True(t, c.Upsert("k1", id, domain.Device{ID: id}))
	assert.False(t, c.Upsert("k1", id, domain.Device{ID: id}))
}

func TestVersionStrictlyIncreasesAcrossMutations(t *testing.T) {
	c := NewEntityCollection[domain.Device]()
	id := domain.NewEntityId("dev-1")

	v0 := c.Version()
	c.Upsert("k1", id, domain.Device{ID: id})
	v1 := c.Version()
	c.Upsert("k1", id, domain.Device{ID: id, Name: nil})
	v2 := c.Version()
	c.Remove("k1")
	v3 := c.Version()

	assert.Less(t, v0, v1)
	assert.Less(t, v1, v2)
	assert.Less(t, v2, v3)
}

func TestRemoveCleansBothIndices(t *testing.T) {
	c := NewEntityCollection[domain.Device]()
	id := domain.NewEntityId("dev-1")
	c.Upsert("k1", id, domain.Device{ID: id})
	c.Remove("k1")

	_, ok := c.Get("k1")
	assert.False(t, ok)
	_, ok = c.GetByID(id)
	assert.False(t, ok)
}

func TestSnapshotPublishedUnconditionallyEvenWithoutSubscribers(t *testing.T) {
	c := NewEntityCollection[domain.Device]()
	id := domain.NewEntityId("dev-1")
	c.Upsert("k1", id, domain.Device{ID: id, Mac: "aa:bb:cc:dd:ee:ff"})

	ch, cancel := c.Subscribe()
	defer cancel()

	snap := <-ch
	require.Len(t, snap, 1)
	assert.Equal(t, domain.MacAddress("aa:bb:cc:dd:ee:ff"), snap[0].Mac)
}

func TestSubscribeLateJoinerSeesLatestSnapshot(t *testing.T) {
	c := NewEntityCollection[domain.Device]()
	id := domain.NewEntityId("dev-1")
	c.Upsert("k1", id, domain.Device{ID: id})
	c.Upsert("k2", domain.NewEntityId("dev-2"), domain.Device{ID: domain.NewEntityId("dev-2")})

	ch, cancel := c.Subscribe()
	defer cancel()

	snap := <-ch
	assert.Len(t, snap, 2, "a subscriber joining after mutations still sees the latest full state")
}

func TestApplyRefreshStyleUpsertThenPrune(t *testing.T) {
	c := NewEntityCollection[domain.Device]()
	idA := domain.NewEntityId("AA")
	idB := domain.NewEntityId("BB")
	idC := domain.NewEntityId("CC")
	c.Upsert("AA", idA, domain.Device{ID: idA})
	c.Upsert("CC", idC, domain.Device{ID: idC})

	incoming := map[string]domain.Device{"AA": {ID: idA}, "BB": {ID: idB}}
	incomingKeys := make(map[string]bool, len(incoming))
	for k, v := range incoming {
		c.Upsert(k, v.ID, v)
		incomingKeys[k] = true
	}
	for _, k := range c.Keys() {
		if !incomingKeys[k] {
			c.Remove(k)
		}
	}

	_, hasC := c.Get("CC")
	assert.False(t, hasC, "keys absent from the incoming set must be pruned")
	_, hasA := c.Get("AA")
	assert.True(t, hasA)
	_, hasB := c.Get("BB")
	assert.True(t, hasB)
}
