// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package store

import (
	"sync"

	"github.com/ksc98/unifly-sub001/internal/domain"
)

// EntityCollection is a concurrent keyed map plus a secondary EntityId
// index, publishing its full contents as an immutable snapshot over a
// Watch on every mutation. The primary key is whatever the owning
// refresh/command logic finds natural to key on (MAC for devices and
// clients, EntityId string for everything else); the secondary index lets
// callers look an entity up by EntityId regardless of what the primary
// key is.
type EntityCollection[T any] struct {
	mu       sync.RWMutex
	items    map[string]T
	idToKey  map[string]string
	version  uint64
	snapshot *Watch[[]T]
}

// NewEntityCollection creates an empty collection.
func NewEntityCollection[T any]() *EntityCollection[T] {
	return &EntityCollection[T]{
		items:    make(map[string]T),
		idToKey:  make(map[string]string),
		snapshot: NewWatch[[]T](nil),
	}
}

// Upsert inserts or replaces the entity at key, maintaining the id index.
// If key previously held a different id, the stale id-to-key mapping is
// removed first. Returns true if key was not previously present.
func (c *EntityCollection[T]) Upsert(key string, id domain.EntityId, entity T) bool {
	c.mu.Lock()
	_, existed := c.items[key]
	if existed {
		for rid, rkey := range c.idToKey {
			if rkey == key && rid != id.String() {
				delete(c.idToKey, rid)
			}
		}
	}
	c.items[key] = entity
	c.idToKey[id.String()] = key
	c.version++
	c.mu.Unlock()

	c.rebuildSnapshot()
	return !existed
}

// Remove deletes the entity at key, cleaning both indices.
func (c *EntityCollection[T]) Remove(key string) {
	c.mu.Lock()
	if _, ok := c.items[key]; !ok {
		c.mu.Unlock()
		return
	}
	delete(c.items, key)
	for rid, rkey := range c.idToKey {
		if rkey == key {
			delete(c.idToKey, rid)
		}
	}
	c.version++
	c.mu.Unlock()

	c.rebuildSnapshot()
}

// Get looks an entity up by its primary key.
func (c *EntityCollection[T]) Get(key string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.items[key]
	return v, ok
}

// GetByID looks an entity up by its EntityId via the secondary index.
func (c *EntityCollection[T]) GetByID(id domain.EntityId) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	key, ok := c.idToKey[id.String()]
	if !ok {
		var zero T
		return zero, false
	}
	v, ok := c.items[key]
	return v, ok
}

// Keys currently present in the collection.
func (c *EntityCollection[T]) Keys() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	keys := make([]string, 0, len(c.items))
	for k := range c.items {
		keys = append(keys, k)
	}
	return keys
}

// Version is the monotonically increasing mutation counter.
func (c *EntityCollection[T]) Version() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.version
}

// Snapshot returns the current full contents as an immutable slice.
func (c *EntityCollection[T]) Snapshot() []T {
	return c.snapshot.Get()
}

// Subscribe returns a channel that yields the new full snapshot on every
// change, and a cancel func to release it.
func (c *EntityCollection[T]) Subscribe() (<-chan []T, func()) {
	return c.snapshot.Subscribe()
}

func (c *EntityCollection[T]) rebuildSnapshot() {
	c.mu.RLock()
	values := make([]T, 0, len(c.items))
	for _, v := range c.items {
		values = append(values, v)
	}
	c.mu.RUnlock()
	c.snapshot.Set(values)
}
