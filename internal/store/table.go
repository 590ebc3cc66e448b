// AngelaMos | 2026
// table.go

package store

import (
	"context"
	"fmt"

	"github.com/carterperez-dev/templates/loyalty/internal/core"
)

// Table is an ordered collection of T keyed by a string id. Index 0 is the
// front of the collection; Prepend puts new records there.
type Table[T any] struct {
	db    *DB
	name  string
	key   func(*T) string
	clone func(T) T
	rows  []T
}

func NewTable[T any](
	db *DB,
	name string,
	key func(*T) string,
	clone func(T) T,
) *Table[T] {
	if clone == nil {
		clone = func(v T) T { return v }
	}
	return &Table[T]{
		db:    db,
		name:  name,
		key:   key,
		clone: clone,
	}
}

func (t *Table[T]) Name() string {
	return t.name
}

func (t *Table[T]) DB() *DB {
	return t.db
}

func (t *Table[T]) indexOf(id string) int {
	for i := range t.rows {
		if t.key(&t.rows[i]) == id {
			return i
		}
	}
	return -1
}

// All returns a copy of every row in table order.
func (t *Table[T]) All(ctx context.Context) []T {
	return t.Filter(ctx, nil)
}

// Filter returns copies of the rows matching pred, in table order. A nil
// pred matches everything.
func (t *Table[T]) Filter(ctx context.Context, pred func(*T) bool) []T {
	var out []T
	t.db.read(ctx, func() {
		out = make([]T, 0, len(t.rows))
		for i := range t.rows {
			if pred == nil || pred(&t.rows[i]) {
				out = append(out, t.clone(t.rows[i]))
			}
		}
	})
	return out
}

func (t *Table[T]) Count(ctx context.Context, pred func(*T) bool) int {
	n := 0
	t.db.read(ctx, func() {
		for i := range t.rows {
			if pred == nil || pred(&t.rows[i]) {
				n++
			}
		}
	})
	return n
}

func (t *Table[T]) Find(ctx context.Context, id string) (T, bool) {
	return t.FindFirst(ctx, func(v *T) bool { return t.key(v) == id })
}

func (t *Table[T]) FindFirst(ctx context.Context, pred func(*T) bool) (T, bool) {
	var (
		out   T
		found bool
	)
	t.db.read(ctx, func() {
		for i := range t.rows {
			if pred(&t.rows[i]) {
				out = t.clone(t.rows[i])
				found = true
				return
			}
		}
	})
	return out, found
}

func (t *Table[T]) Prepend(ctx context.Context, v T) error {
	return t.insert(ctx, v, true)
}

func (t *Table[T]) Append(ctx context.Context, v T) error {
	return t.insert(ctx, v, false)
}

func (t *Table[T]) insert(ctx context.Context, v T, front bool) error {
	id := t.key(&v)
	return t.db.write(ctx, func(record func(func())) error {
		if t.indexOf(id) >= 0 {
			return fmt.Errorf("insert %s %q: %w", t.name, id, core.ErrDuplicateKey)
		}

		row := t.clone(v)
		if front {
			t.rows = append([]T{row}, t.rows...)
			record(func() { t.rows = t.rows[1:] })
		} else {
			t.rows = append(t.rows, row)
			record(func() { t.rows = t.rows[:len(t.rows)-1] })
		}

		return nil
	})
}

// Update applies fn to a copy of the row with the given id and stores the
// result. If fn returns an error the row is left untouched.
func (t *Table[T]) Update(ctx context.Context, id string, fn func(*T) error) (T, error) {
	var out T
	err := t.db.write(ctx, func(record func(func())) error {
		i := t.indexOf(id)
		if i < 0 {
			return fmt.Errorf("%s %q: %w", t.name, id, core.ErrNotFound)
		}

		old := t.rows[i]
		next := t.clone(old)
		if err := fn(&next); err != nil {
			return err
		}

		t.rows[i] = next
		record(func() { t.rows[i] = old })
		out = t.clone(next)

		return nil
	})
	return out, err
}

func (t *Table[T]) Delete(ctx context.Context, id string) error {
	return t.db.write(ctx, func(record func(func())) error {
		i := t.indexOf(id)
		if i < 0 {
			return fmt.Errorf("%s %q: %w", t.name, id, core.ErrNotFound)
		}

		old := t.rows[i]
		t.rows = append(t.rows[:i:i], t.rows[i+1:]...)
		record(func() {
			t.rows = append(t.rows[:i:i], append([]T{old}, t.rows[i:]...)...)
		})

		return nil
	})
}

func (t *Table[T]) Len(ctx context.Context) int {
	return t.Count(ctx, nil)
}
