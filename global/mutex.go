package global

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/kbukum/deferred/errors"
	"github.com/kbukum/deferred/logger"
)

// Mutex is a mutual-exclusion lock that owns the value it protects and is
// poisoned when a holder panics. The zero value is an unlocked, unpoisoned
// Mutex holding the zero T. A Mutex must not be copied after first use.
type Mutex[T any] struct {
	name     string
	mu       sync.Mutex
	poisoned atomic.Bool
	value    T
}

// NewMutex returns a Mutex protecting value.
func NewMutex[T any](value T) *Mutex[T] {
	return &Mutex[T]{value: value}
}

// Lock blocks until the lock is acquired and returns a guard for it. If a
// previous holder panicked the guard is still returned, held, together with
// an error matching ErrPoisoned.
func (m *Mutex[T]) Lock() (*Guard[T], error) {
	m.mu.Lock()
	return m.acquired()
}

// TryLock acquires the lock without blocking. When the lock is held by
// someone else it returns a nil guard and an error matching ErrWouldBlock.
// Poisoning is reported as in Lock.
func (m *Mutex[T]) TryLock() (*Guard[T], error) {
	if !m.mu.TryLock() {
		return nil, errors.WouldBlock(m.name)
	}
	return m.acquired()
}

func (m *Mutex[T]) acquired() (*Guard[T], error) {
	g := &Guard[T]{m: m}
	if m.poisoned.Load() {
		return g, errors.Poisoned(m.name)
	}
	return g, nil
}

// Do runs fn with exclusive access to the value and releases the lock on
// every exit path. A poisoned lock is released and reported without running
// fn. A panic in fn poisons the lock and is re-raised.
func (m *Mutex[T]) Do(fn func(*T) error) error {
	g, err := m.Lock()
	if err != nil {
		g.Unlock()
		return err
	}
	defer g.Unlock()
	return fn(g.Value())
}

// IsPoisoned reports whether a holder panicked since the last ClearPoison.
func (m *Mutex[T]) IsPoisoned() bool {
	return m.poisoned.Load()
}

// ClearPoison marks the protected value as consistent again. Callers
// normally do this while holding the lock, after repairing the value.
func (m *Mutex[T]) ClearPoison() {
	if m.poisoned.CompareAndSwap(true, false) {
		logger.Get("global").Info("lock poison cleared", logger.Fields(logger.FieldGlobal, m.name))
	}
}

func (m *Mutex[T]) poison(r any) {
	m.poisoned.Store(true)
	logger.Get("global").Error("lock poisoned by panicking holder", logger.Fields(
		logger.FieldGlobal, m.name,
		logger.FieldPanic, fmt.Sprint(r),
	))
}

// Guard is exclusive, scoped access to the value of a Mutex. It is released
// by Unlock, which should be deferred directly:
//
//	g, err := m.Lock()
//	...
//	defer g.Unlock()
//
// A Guard is owned by the goroutine that acquired it.
type Guard[T any] struct {
	m        *Mutex[T]
	released bool
}

// Value returns a pointer to the protected value. The pointer must not be
// retained after Unlock.
func (g *Guard[T]) Value() *T {
	g.mustHold()
	return &g.m.value
}

// Get returns a copy of the protected value.
func (g *Guard[T]) Get() T {
	g.mustHold()
	return g.m.value
}

// Set replaces the protected value.
func (g *Guard[T]) Set(value T) {
	g.mustHold()
	g.m.value = value
}

// Unlock releases the lock. It is a no-op on a nil or already released
// guard. When deferred directly and run while the goroutine is panicking,
// it poisons the lock before releasing it and then continues the panic.
func (g *Guard[T]) Unlock() {
	if g == nil || g.released {
		return
	}
	g.released = true
	if r := recover(); r != nil {
		g.m.poison(r)
		g.m.mu.Unlock()
		panic(r)
	}
	g.m.mu.Unlock()
}

func (g *Guard[T]) mustHold() {
	if g.released {
		panic("global: use of guard after Unlock")
	}
}
