// AngelaMos | 2026
// store.go

package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

var ErrReadOnly = errors.New("write attempted inside a read-only view")

// DB owns every in-memory table of the process. Tables bound to the same DB
// share one lock, so a unit of work started with InTx sees and mutates all of
// them atomically.
type DB struct {
	mu    sync.RWMutex
	now   func() time.Time
	newID func() string
}

type Option func(*DB)

func WithClock(now func() time.Time) Option {
	return func(db *DB) {
		db.now = now
	}
}

func WithIDGenerator(fn func() string) Option {
	return func(db *DB) {
		db.newID = fn
	}
}

func New(opts ...Option) *DB {
	db := &DB{
		now:   time.Now,
		newID: func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(db)
	}
	return db
}

func (db *DB) Now() time.Time {
	return db.now()
}

func (db *DB) NewID() string {
	return db.newID()
}

type sessionKey struct{}

// session marks a context that already holds db's lock.
type session struct {
	db       *DB
	writable bool
	undo     []func()
	done     bool
}

func (db *DB) session(ctx context.Context) *session {
	s, ok := ctx.Value(sessionKey{}).(*session)
	if !ok || s.db != db || s.done {
		return nil
	}
	return s
}

// InTx runs fn as a single unit of work under the write lock. If fn returns
// an error or panics, every table mutation it made is undone in reverse
// order. Calls nested inside an open unit join it.
func (db *DB) InTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if s := db.session(ctx); s != nil {
		if !s.writable {
			return ErrReadOnly
		}
		return fn(ctx)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	db.mu.Lock()
	defer db.mu.Unlock()

	s := &session{db: db, writable: true}
	defer func() { s.done = true }()

	defer func() {
		if p := recover(); p != nil {
			s.rollback()
			panic(p)
		}
	}()

	if err := fn(context.WithValue(ctx, sessionKey{}, s)); err != nil {
		s.rollback()
		return err
	}

	return nil
}

// View runs fn under the read lock so that it observes every table at one
// point in time.
func (db *DB) View(ctx context.Context, fn func(ctx context.Context) error) error {
	if s := db.session(ctx); s != nil {
		return fn(ctx)
	}

	db.mu.RLock()
	defer db.mu.RUnlock()

	s := &session{db: db}
	defer func() { s.done = true }()

	return fn(context.WithValue(ctx, sessionKey{}, s))
}

func (s *session) rollback() {
	for i := len(s.undo) - 1; i >= 0; i-- {
		s.undo[i]()
	}
	s.undo = nil
}

func (db *DB) read(ctx context.Context, fn func()) {
	if s := db.session(ctx); s != nil {
		fn()
		return
	}

	db.mu.RLock()
	defer db.mu.RUnlock()
	fn()
}

// write runs fn under the write lock. fn reports an undo step through record;
// outside a unit of work the step is discarded.
func (db *DB) write(ctx context.Context, fn func(record func(undo func())) error) error {
	if s := db.session(ctx); s != nil {
		if !s.writable {
			return ErrReadOnly
		}
		return fn(func(undo func()) {
			s.undo = append(s.undo, undo)
		})
	}

	db.mu.Lock()
	defer db.mu.Unlock()
	return fn(func(func()) {})
}
