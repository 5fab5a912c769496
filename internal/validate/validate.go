package validate

// This package adds struct and field validation as a thin wrapper around the go-playground/validator package.
//
// e.g. internal/config/config.go
//   type Config struct {
//       ...
//       Background string `yaml:"background" validate:"required,glyph"`
//       Layout     string `yaml:"layout" validate:"required,oneof=bordered grouped"`
//   }
//
// On top of the built-in tags it registers "glyph": a string holding exactly one
// character that occupies a single terminal cell.

import (
	"sync"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/mattn/go-runewidth"
)

// validatorInstance is a shared validator for the application.
// It is initialized once and reused to avoid repeated allocations.
//
//nolint:gochecknoglobals // Shared validator singleton.
var (
	validatorOnce sync.Once
	validatorInst *validator.Validate
)

// get returns a process-wide singleton of the validator.
func get() *validator.Validate {
	validatorOnce.Do(func() {
		validatorInst = validator.New(validator.WithRequiredStructEnabled())
		// Registration only fails on an empty tag or a nil func.
		_ = validatorInst.RegisterValidation("glyph", isGlyph)
	})
	return validatorInst
}

// IsGlyph reports whether s is one printable single-cell character.
func IsGlyph(s string) bool {
	if utf8.RuneCountInString(s) != 1 {
		return false
	}
	return runewidth.StringWidth(s) == 1
}

func isGlyph(fl validator.FieldLevel) bool {
	return IsGlyph(fl.Field().String())
}

// Struct validates a struct using the shared validator instance.
func Struct(v any) error {
	return get().Struct(v)
}

// Var validates a single variable against the provided tag constraints.
func Var(field any, tag string) error {
	return get().Var(field, tag)
}
