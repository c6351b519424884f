package store

import (
	"context"
	"fmt"
)

// collection is one ordered record sequence of the state together with the way it is persisted.
// It is not safe for concurrent use; the Store serializes access.
type collection[T any] struct {
	name   string
	items  []T
	idOf   func(T) string
	withID func(T, string) T
	save   func(context.Context, []T) error
}

func (c *collection[T]) snapshot() []T {
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

func (c *collection[T]) find(id string) (T, bool) {
	for _, item := range c.items {
		if c.idOf(item) == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

func (c *collection[T]) add(ctx context.Context, item T, id string) (T, error) {
	item = c.withID(item, id)

	next := make([]T, len(c.items), len(c.items)+1)
	copy(next, c.items)
	next = append(next, item)

	if err := c.commit(ctx, next); err != nil {
		var zero T
		return zero, err
	}
	return item, nil
}

// update replaces the element with the same ID. An unmatched ID leaves the items unchanged
// but the collection is still persisted.
func (c *collection[T]) update(ctx context.Context, item T) (bool, error) {
	id := c.idOf(item)
	matched := false

	next := make([]T, len(c.items))
	for i, current := range c.items {
		if c.idOf(current) == id {
			next[i] = item
			matched = true
			continue
		}
		next[i] = current
	}

	if err := c.commit(ctx, next); err != nil {
		return false, err
	}
	return matched, nil
}

// remove drops every element with the given ID. Removing an absent ID is a no-op that still persists.
func (c *collection[T]) remove(ctx context.Context, id string) (bool, error) {
	next := make([]T, 0, len(c.items))
	for _, current := range c.items {
		if c.idOf(current) == id {
			continue
		}
		next = append(next, current)
	}
	removed := len(next) != len(c.items)

	if err := c.commit(ctx, next); err != nil {
		return false, err
	}
	return removed, nil
}

// commit persists next and only then makes it the in-memory state.
func (c *collection[T]) commit(ctx context.Context, next []T) error {
	if err := c.save(ctx, next); err != nil {
		return fmt.Errorf("failed to persist %s: %w", c.name, err)
	}
	c.items = next
	return nil
}
