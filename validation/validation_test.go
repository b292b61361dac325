package validation

import (
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/kbukum/deferred/errors"
)

func TestValidatorRequired(t *testing.T) {
	if New().Required("name", "John").HasErrors() {
		t.Error("expected no errors for valid input")
	}
	if !New().Required("name", "").HasErrors() {
		t.Error("expected error for empty required field")
	}
	if !New().Required("name", "   ").HasErrors() {
		t.Error("expected error for whitespace-only required field")
	}
}

func TestValidatorRequiredUUID(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"valid", uuid.New().String(), false},
		{"empty", "", true},
		{"malformed", "not-a-uuid", true},
		{"nil uuid", uuid.Nil.String(), true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v := New().RequiredUUID("instance_id", tc.value)
			if v.HasErrors() != tc.wantErr {
				t.Errorf("RequiredUUID(%q) errors=%v, wantErr %v", tc.value, v.Errors(), tc.wantErr)
			}
		})
	}
}

func TestValidatorOneOf(t *testing.T) {
	envs := []string{"development", "staging", "production"}
	if New().OneOf("environment", "staging", envs).HasErrors() {
		t.Error("expected staging to be accepted")
	}
	v := New().OneOf("environment", "qa", envs)
	if !v.HasErrors() {
		t.Fatal("expected qa to be rejected")
	}
	if !strings.Contains(v.Errors()[0].Message, "production") {
		t.Errorf("expected allowed values in message, got %q", v.Errors()[0].Message)
	}
}

func TestValidatorCustom(t *testing.T) {
	if New().Custom(true, "workers", "must be positive").HasErrors() {
		t.Error("expected no error when condition holds")
	}
	if !New().Custom(false, "workers", "must be positive").HasErrors() {
		t.Error("expected error when condition fails")
	}
}

func TestValidatorErr(t *testing.T) {
	if err := New().Required("name", "ok").Err(); err != nil {
		t.Errorf("expected nil error, got %v", err)
	}

	err := New().
		Required("name", "").
		Custom(false, "workers", "must be positive").
		Err()
	if err == nil {
		t.Fatal("expected error")
	}
	appErr, ok := errors.AsAppError(err)
	if !ok {
		t.Fatalf("expected AppError, got %T", err)
	}
	if appErr.Code != errors.ErrCodeInvalidInput {
		t.Errorf("expected INVALID_INPUT, got %s", appErr.Code)
	}
	fields, ok := appErr.Details["fields"].([]FieldError)
	if !ok || len(fields) != 2 {
		t.Fatalf("expected 2 field errors in details, got %v", appErr.Details["fields"])
	}
	if !strings.Contains(appErr.Message, "name: is required") {
		t.Errorf("unexpected message %q", appErr.Message)
	}
}

type nested struct {
	Level string `mapstructure:"level" validate:"oneof=debug info"`
}

type settings struct {
	Name     string `mapstructure:"name" validate:"required"`
	Workers  int    `mapstructure:"workers" validate:"min=1,max=64"`
	Endpoint string `yaml:"endpoint" validate:"omitempty,url"`
	Logging  nested `mapstructure:"logging"`
}

func TestStructValidateValid(t *testing.T) {
	s := settings{Name: "svc", Workers: 4, Endpoint: "http://localhost:8080", Logging: nested{Level: "info"}}
	if err := Validate(s); err != nil {
		t.Errorf("expected valid struct, got %v", err)
	}
}

func TestStructValidateInvalid(t *testing.T) {
	s := settings{Workers: 0, Endpoint: "::bad", Logging: nested{Level: "loud"}}
	err := Validate(s)
	if err == nil {
		t.Fatal("expected validation error")
	}
	msg := err.Error()
	for _, want := range []string{"name: is required", "workers: must be at least 1", "endpoint: must be a valid URL", "logging.level: must be one of: debug info"} {
		if !strings.Contains(msg, want) {
			t.Errorf("expected %q in %q", want, msg)
		}
	}
}

func TestToSnakeCase(t *testing.T) {
	if got := toSnakeCase("InstanceID"); got != "instance_i_d" {
		t.Errorf("unexpected snake case %q", got)
	}
	if got := toSnakeCase("name"); got != "name" {
		t.Errorf("unexpected snake case %q", got)
	}
}
