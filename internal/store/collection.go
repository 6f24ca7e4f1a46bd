// Package store holds the gateway's in-memory working set: one
// collection per upstream resource, the notification queues and the
// local activity log. The poller refreshes collections wholesale;
// admin mutations patch them optimistically after the backend confirms.
package store

import "sync"

// Collection is a concurrency-safe, order-preserving set of records
// keyed by id. New records are prepended so the freshest entries lead
// the admin tables, matching how every list view sorts.
type Collection[T any] struct {
	mu    sync.RWMutex
	idOf  func(T) string
	items []T
}

// NewCollection builds an empty collection using idOf as the key
// extractor.
func NewCollection[T any](idOf func(T) string) *Collection[T] {
	return &Collection[T]{idOf: idOf}
}

// ReplaceAll swaps the entire contents, preserving the given order.
func (c *Collection[T]) ReplaceAll(items []T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make([]T, len(items))
	copy(c.items, items)
}

// Upsert replaces the record with the same id in place, or prepends it
// when no such record exists.
func (c *Collection[T]) Upsert(item T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.idOf(item)
	for i := range c.items {
		if c.idOf(c.items[i]) == id {
			c.items[i] = item
			return
		}
	}

	c.items = append([]T{item}, c.items...)
}

// Append adds the record to the tail, replacing in place when the id
// already exists. Used for ordered collections like layout sections.
func (c *Collection[T]) Append(item T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.idOf(item)
	for i := range c.items {
		if c.idOf(c.items[i]) == id {
			c.items[i] = item
			return
		}
	}

	c.items = append(c.items, item)
}

// Remove deletes the record with the given id; absent ids are a no-op.
func (c *Collection[T]) Remove(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.idOf(c.items[i]) == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// RemoveMany deletes every record whose id is in ids.
func (c *Collection[T]) RemoveMany(ids []string) {
	drop := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		drop[id] = struct{}{}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	kept := c.items[:0]
	for _, item := range c.items {
		if _, gone := drop[c.idOf(item)]; !gone {
			kept = append(kept, item)
		}
	}
	c.items = kept
}

// Get returns the record with the given id.
func (c *Collection[T]) Get(id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, item := range c.items {
		if c.idOf(item) == id {
			return item, true
		}
	}

	var zero T

	return zero, false
}

// Items returns a copy of the current contents in order.
func (c *Collection[T]) Items() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, len(c.items))
	copy(out, c.items)

	return out
}

// Len returns the number of records.
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.items)
}
