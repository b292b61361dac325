package global

import (
	"reflect"
	"sync/atomic"

	"github.com/kbukum/deferred/errors"
	"github.com/kbukum/deferred/logger"
)

// State is the initialization state of a Var.
type State int

const (
	StateUninitialized State = iota
	StateInitialized
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateInitialized:
		return "initialized"
	default:
		return "unknown"
	}
}

// Var is a process-wide variable that is initialized at most once and then
// accessed through a poisoning mutex. The zero value is Uninitialized and
// ready to use. A Var must not be copied.
type Var[T any] struct {
	name string
	// nil until Set installs a fully built Mutex; never changes afterwards.
	cell atomic.Pointer[Mutex[T]]
}

// New returns an uninitialized Var.
func New[T any]() *Var[T] {
	return &Var[T]{}
}

// Named returns an uninitialized Var whose name appears in logs and faults.
func Named[T any](name string) *Var[T] {
	return &Var[T]{name: name}
}

// Name returns the name given to Named, or "".
func (v *Var[T]) Name() string {
	return v.name
}

// Set installs value and moves the Var to StateInitialized. Only the first
// call succeeds; later calls return an error matching ErrAlreadyInitialized
// and discard their value. Set is safe to call concurrently.
func (v *Var[T]) Set(value T) error {
	log := logger.Get("global")
	if v.cell.Load() == nil {
		m := &Mutex[T]{name: v.name, value: value}
		if v.cell.CompareAndSwap(nil, m) {
			log.Debug("global initialized", v.fields())
			return nil
		}
	}
	err := errors.AlreadyInitialized(v.name)
	log.Warn("global already initialized, value discarded", v.fields())
	return err
}

// MustSet is like Set but panics if the Var is already initialized.
func (v *Var[T]) MustSet(value T) {
	if err := v.Set(value); err != nil {
		panic(err)
	}
}

// Lock blocks until the value's lock is acquired. See Mutex.Lock.
// It panics with *UninitializedError if Set has not been called.
func (v *Var[T]) Lock() (*Guard[T], error) {
	return v.Mutex().Lock()
}

// TryLock acquires the value's lock without blocking. See Mutex.TryLock.
// It panics with *UninitializedError if Set has not been called.
func (v *Var[T]) TryLock() (*Guard[T], error) {
	return v.Mutex().TryLock()
}

// Do runs fn under the value's lock. See Mutex.Do.
// It panics with *UninitializedError if Set has not been called.
func (v *Var[T]) Do(fn func(*T) error) error {
	return v.Mutex().Do(fn)
}

// Mutex returns the lock protecting the value without acquiring it.
// It panics with *UninitializedError if Set has not been called.
func (v *Var[T]) Mutex() *Mutex[T] {
	m := v.cell.Load()
	if m == nil {
		panic(&UninitializedError{Name: v.name, Type: typeName[T]()})
	}
	return m
}

// State reports whether the Var has been initialized.
func (v *Var[T]) State() State {
	if v.cell.Load() == nil {
		return StateUninitialized
	}
	return StateInitialized
}

// IsInitialized is shorthand for State() == StateInitialized.
func (v *Var[T]) IsInitialized() bool {
	return v.State() == StateInitialized
}

func (v *Var[T]) fields() map[string]interface{} {
	return logger.Fields(
		logger.FieldGlobal, v.name,
		logger.FieldType, typeName[T](),
	)
}

func typeName[T any]() string {
	return reflect.TypeFor[T]().String()
}
