package stores

import "sync"

// collection is the guarded backing state shared by every entity store:
// an ordered, id-unique item list, a loading flag and a generation
// counter. The counter is bumped whenever the collection's identity
// changes (a new list begins, or the tenant context clears it), and every
// completion handler presents the generation it started under — a stale
// response can therefore never overwrite newer state.
type collection[T any] struct {
	mu      sync.Mutex
	items   []T
	loading bool
	gen     uint64
	id      func(T) string
}

func newCollection[T any](id func(T) string) *collection[T] {
	return &collection[T]{id: id}
}

// Items returns a copy of the current collection.
func (c *collection[T]) Items() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Loading reports whether any call is in flight.
func (c *collection[T]) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

// GetByID looks the item up in the in-memory collection only; callers
// trigger a list first if the collection might be stale.
func (c *collection[T]) GetByID(id string) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, item := range c.items {
		if c.id(item) == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Len returns the number of items currently held.
func (c *collection[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// generation returns the current generation, for guarding mutations.
func (c *collection[T]) generation() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gen
}

// beginList starts a list call: sets loading and bumps the generation so
// any older in-flight list becomes stale.
func (c *collection[T]) beginList() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = true
	c.gen++
	return c.gen
}

// endList clears loading if gen is still current.
func (c *collection[T]) endList(gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen == c.gen {
		c.loading = false
	}
}

// replaceAll installs items as the new collection if gen is still
// current, deduplicating by id (first occurrence wins), and clears
// loading. Returns false for a stale response.
func (c *collection[T]) replaceAll(gen uint64, items []T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		return false
	}
	seen := make(map[string]struct{}, len(items))
	unique := make([]T, 0, len(items))
	for _, item := range items {
		id := c.id(item)
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, item)
	}
	c.items = unique
	c.loading = false
	return true
}

// clear empties the collection synchronously and bumps the generation,
// invalidating every in-flight completion.
func (c *collection[T]) clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
	c.loading = false
	c.gen++
}

func (c *collection[T]) setLoading(v bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = v
}

// add appends item if gen is still current. An existing item with the
// same id is replaced in place instead.
func (c *collection[T]) add(gen uint64, item T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		return false
	}
	id := c.id(item)
	for i := range c.items {
		if c.id(c.items[i]) == id {
			c.items[i] = item
			return true
		}
	}
	c.items = append(c.items, item)
	return true
}

// replace swaps the item with the given id for item (which may carry a
// different id, e.g. a placeholder being replaced by the server record).
func (c *collection[T]) replace(gen uint64, id string, item T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		return false
	}
	for i := range c.items {
		if c.id(c.items[i]) == id {
			c.items[i] = item
			return true
		}
	}
	return false
}

// remove deletes the item with the given id if gen is still current.
func (c *collection[T]) remove(gen uint64, id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		return false
	}
	for i := range c.items {
		if c.id(c.items[i]) == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return true
		}
	}
	return false
}
