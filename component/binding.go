package component

import (
	"context"
	"fmt"

	"github.com/kbukum/deferred/global"
	"github.com/kbukum/deferred/logger"
)

// Initializer produces the value a Binding installs.
type Initializer[T any] func(ctx context.Context) (T, error)

// Binding is a Component that installs the value of a global.Var on Start.
// It is the single authoritative initializer for its Var.
type Binding[T any] struct {
	name   string
	target *global.Var[T]
	init   Initializer[T]
}

// NewBinding returns a Binding that fills target with the result of init.
func NewBinding[T any](name string, target *global.Var[T], init Initializer[T]) *Binding[T] {
	return &Binding[T]{
		name:   name,
		target: target,
		init:   init,
	}
}

// Name returns the component name.
func (b *Binding[T]) Name() string {
	return b.name
}

// Start runs the initializer and installs its result. If the global is
// already initialized, the initializer is not run and Start returns nil.
func (b *Binding[T]) Start(ctx context.Context) error {
	if b.target.IsInitialized() {
		logger.Debug("Global already initialized, skipping", map[string]interface{}{
			logger.FieldComponent: b.name,
		})
		return nil
	}
	if b.init == nil {
		return fmt.Errorf("no initializer for component: %s", b.name)
	}

	value, err := b.init(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize %s: %w", b.name, err)
	}
	if err := b.target.Set(value); err != nil {
		return err
	}

	logger.Debug("Global bound", map[string]interface{}{
		logger.FieldComponent: b.name,
		logger.FieldGlobal:    b.target.Name(),
	})
	return nil
}

// Stop is a no-op: installed globals live until the process exits.
func (b *Binding[T]) Stop(ctx context.Context) error {
	return nil
}

// Health reports unhealthy before Start, degraded while the lock is
// poisoned and healthy otherwise.
func (b *Binding[T]) Health(ctx context.Context) Health {
	h := Health{Name: b.name, Status: StatusHealthy}
	switch {
	case !b.target.IsInitialized():
		h.Status = StatusUnhealthy
		h.Message = "global not initialized"
	case b.target.Mutex().IsPoisoned():
		h.Status = StatusDegraded
		h.Message = "global lock poisoned"
	}
	return h
}
