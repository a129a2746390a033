package memory

import (
	"context"
	"fmt"

	"oficina_mecanica/internal/usecase/interfaces"
)

// catalog implements the single-record repositories (customers, mechanics,
// services, parts). Delete refuses ids still referenced by a work order, the
// way a RESTRICT foreign key would.
type catalog[T any] struct {
	st    *state
	rows  table[T]
	id    func(T) string
	inUse func(ctx context.Context, id string) error
}

func (c *catalog[T]) Create(_ context.Context, v T) (T, error) {
	var zero T
	id := c.id(v)
	if _, exists := c.rows[id]; exists {
		return zero, fmt.Errorf("memory: duplicate id %q", id)
	}
	c.rows[id] = entry[T]{seq: c.st.nextSeq(), value: v}
	return v, nil
}

func (c *catalog[T]) GetByID(_ context.Context, id string) (T, error) {
	return c.rows[id].value, nil
}

func (c *catalog[T]) List(_ context.Context, page interfaces.Page) ([]T, error) {
	return paginate(c.rows.sorted(), page), nil
}

func (c *catalog[T]) Count(_ context.Context) (int64, error) {
	return int64(len(c.rows)), nil
}

func (c *catalog[T]) Update(_ context.Context, v T) (T, error) {
	var zero T
	e, ok := c.rows[c.id(v)]
	if !ok {
		return zero, nil
	}
	e.value = v
	c.rows[c.id(v)] = e
	return v, nil
}

func (c *catalog[T]) Delete(ctx context.Context, id string) error {
	if c.inUse != nil {
		if err := c.inUse(ctx, id); err != nil {
			return err
		}
	}
	delete(c.rows, id)
	return nil
}

func paginate[T any](items []T, page interfaces.Page) []T {
	page = page.Normalize()
	if page.Skip >= len(items) {
		return []T{}
	}
	end := page.Skip + page.Limit
	if end > len(items) {
		end = len(items)
	}
	return items[page.Skip:end]
}
