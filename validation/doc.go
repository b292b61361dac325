// Package validation checks values before they are installed into a
// deferred global.
//
// Struct tag validation (go-playground/validator) is used for whole config
// structs; the programmatic Validator collects field errors for checks that
// depend on other fields.
//
// # Struct Tag Validation
//
//	type Settings struct {
//	    Name    string `mapstructure:"name" validate:"required"`
//	    Workers int    `mapstructure:"workers" validate:"min=1"`
//	}
//	err := validation.Validate(settings)
//
// # Programmatic Validation
//
//	err := validation.New().
//	    Required("name", cfg.Name).
//	    OneOf("environment", cfg.Environment, envs).
//	    Err()
package validation
