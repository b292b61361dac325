package config

import (
	"reflect"

	"github.com/kbukum/deferred/errors"
	"github.com/kbukum/deferred/global"
	"github.com/kbukum/deferred/logger"
	"github.com/kbukum/deferred/validation"
)

// Defaulter is implemented by config structs that fill in defaults after loading.
type Defaulter interface {
	ApplyDefaults()
}

// Validator is implemented by config structs with checks beyond struct tags.
type Validator interface {
	Validate() error
}

// LoadGlobal loads configuration for serviceName into a fresh T, applies
// defaults, validates it, and installs it into g. It is meant to be called
// once from startup code; if g already holds a value nothing is loaded and
// an error matching global.ErrAlreadyInitialized is returned.
func LoadGlobal[T any](g *global.Var[T], serviceName string, opts ...LoaderOption) error {
	if g.IsInitialized() {
		return errors.AlreadyInitialized(g.Name())
	}

	cfg, err := Load[T](serviceName, opts...)
	if err != nil {
		return err
	}
	if err := g.Set(cfg); err != nil {
		return err
	}

	logger.Get("config").Info("configuration installed", logger.Fields(
		logger.FieldGlobal, g.Name(),
		"service", serviceName,
	))
	return nil
}

// Load loads, defaults and validates a T without installing it anywhere.
func Load[T any](serviceName string, opts ...LoaderOption) (T, error) {
	var cfg T
	if err := LoadConfig(serviceName, &cfg, opts...); err != nil {
		var zero T
		return zero, errors.InvalidConfig("unable to load").WithCause(err)
	}

	if d, ok := any(&cfg).(Defaulter); ok {
		d.ApplyDefaults()
	}
	if err := check(&cfg); err != nil {
		var zero T
		return zero, err
	}
	return cfg, nil
}

func check(cfg any) error {
	if reflect.Indirect(reflect.ValueOf(cfg)).Kind() == reflect.Struct {
		if err := validation.Validate(cfg); err != nil {
			return errors.InvalidConfig("struct validation failed").WithCause(err)
		}
	}
	if v, ok := cfg.(Validator); ok {
		if err := v.Validate(); err != nil {
			return errors.InvalidConfig("validation failed").WithCause(err)
		}
	}
	return nil
}
