// Package query caches backend reads keyed by resource kind and parameters.
//
// A Store coalesces concurrent reads of the same key into one call, serves
// fresh entries from memory and refetches entries that were invalidated.
// There is no time-based expiry: entries go stale only through Invalidate.
package query

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// Status is the state of one key.
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusSuccess
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// ErrDisabled is returned by Fetch when the read is disabled, for example a
// detail read whose id is not known yet.
var ErrDisabled = errors.New("query disabled")

// Snapshot describes a key without fetching it.
type Snapshot struct {
	Status    Status
	Stale     bool
	Err       error
	FetchedAt time.Time
}

type entry struct {
	status     Status
	value      any
	err        error
	stale      bool
	generation uint64
	fetchedAt  time.Time
}

// Store is the read cache shared by the resource services. Construct one per
// process (or per test) and pass it explicitly.
type Store struct {
	mu       sync.Mutex
	entries  map[Key]*entry
	inflight map[Key]int
	group    singleflight.Group
	logger   *slog.Logger
	now      func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger for cache events.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewStore creates an empty Store.
func NewStore(opts ...Option) *Store {
	s := &Store{
		entries:  make(map[Key]*entry),
		inflight: make(map[Key]int),
		logger:   slog.Default(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type fetchOptions struct {
	enabled bool
}

// FetchOption adjusts a single Fetch.
type FetchOption func(*fetchOptions)

// Enabled gates the read. A disabled read does not touch the backend and
// leaves the key idle.
func Enabled(enabled bool) FetchOption {
	return func(o *fetchOptions) {
		o.enabled = enabled
	}
}

// Fetch returns the cached value for key when it is fresh, and otherwise runs
// fn and caches its result.
//
// At most one fn runs per key at a time; concurrent callers wait for the same
// result. fn runs detached from the caller's cancellation so a shared fetch is
// never cut short by one impatient caller; a caller whose ctx ends stops
// waiting and gets ctx.Err(), while the fetch still populates the cache.
func Fetch[T any](ctx context.Context, s *Store, key Key, fn func(context.Context) (T, error), opts ...FetchOption) (T, error) {
	var zero T

	o := fetchOptions{enabled: true}
	for _, opt := range opts {
		opt(&o)
	}
	if !o.enabled {
		return zero, ErrDisabled
	}

	if v, ok := s.fresh(key); ok {
		if typed, ok := v.(T); ok {
			return typed, nil
		}
	}

	s.join(key)
	defer s.leave(key)

	detached := context.WithoutCancel(ctx)
	ch := s.group.DoChan(key.String(), func() (any, error) {
		if v, ok := s.fresh(key); ok {
			return v, nil
		}
		gen := s.begin(key)
		v, err := fn(detached)
		s.finish(key, gen, v, err)
		return v, err
	})

	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return zero, res.Err
		}
		typed, ok := res.Val.(T)
		if !ok {
			return zero, errors.New("query: cached value has unexpected type for " + key.String())
		}
		return typed, nil
	}
}

// Invalidate marks every entry of the given kinds stale. The next Fetch of
// such a key goes back to the backend, even when a fetch that started before
// the invalidation is still running: later callers do not join it. That
// older fetch still stores its value, but the entry stays stale.
// It returns the number of entries affected.
func (s *Store) Invalidate(kinds ...Kind) int {
	s.mu.Lock()
	var keys []Key
	n := 0
	for key, e := range s.entries {
		if !slices.Contains(kinds, key.Kind) {
			continue
		}
		e.generation++
		e.stale = true
		keys = append(keys, key)
		n++
	}
	for key := range s.inflight {
		if slices.Contains(kinds, key.Kind) && s.entries[key] == nil {
			keys = append(keys, key)
		}
	}
	s.mu.Unlock()

	for _, key := range keys {
		s.group.Forget(key.String())
	}
	s.logger.Debug("query invalidated", slog.Any("kinds", kinds), slog.Int("entries", n))
	return n
}

// State returns the status of key; unknown keys are idle.
func (s *Store) State(key Key) Status {
	return s.Snapshot(key).Status
}

// Snapshot describes key without fetching it.
func (s *Store) Snapshot(key Key) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		return Snapshot{Status: StatusIdle}
	}
	return Snapshot{Status: e.status, Stale: e.stale, Err: e.err, FetchedAt: e.fetchedAt}
}

// Len returns the number of known keys.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// fresh returns the cached value when the entry succeeded and is not stale.
func (s *Store) fresh(key Key) (any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok || e.status != StatusSuccess || e.stale {
		return nil, false
	}
	return e.value, true
}

// begin moves key to loading and returns the generation the fetch belongs to.
func (s *Store) begin(key Key) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		e = &entry{}
		s.entries[key] = e
	}
	e.status = StatusLoading
	s.logger.Debug("query fetch", slog.String("key", key.String()))
	return e.generation
}

// finish records the outcome of a fetch started at generation gen.
func (s *Store) finish(key Key, gen uint64, v any, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		return
	}
	if gen != e.generation && e.status == StatusSuccess && !e.stale {
		// A newer fetch already stored a fresh value.
		return
	}
	e.fetchedAt = s.now()
	if err != nil {
		e.status = StatusError
		e.err = err
	} else {
		e.status = StatusSuccess
		e.value = v
		e.err = nil
	}
	// Superseded by an invalidation while in flight: keep the result but do
	// not let it count as fresh.
	e.stale = e.generation != gen
}

func (s *Store) join(key Key) {
	s.mu.Lock()
	s.inflight[key]++
	s.mu.Unlock()
}

func (s *Store) leave(key Key) {
	s.mu.Lock()
	s.inflight[key]--
	if s.inflight[key] <= 0 {
		delete(s.inflight, key)
	}
	s.mu.Unlock()
}

// waiting returns how many callers are currently waiting on key.
func (s *Store) waiting(key Key) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inflight[key]
}
