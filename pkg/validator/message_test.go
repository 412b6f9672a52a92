package validator_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/validkit/pkg/validator"
)

func TestFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		tmpl string
		args []any
		want string
	}{
		{"label and args", "%{0} must be between %{1} and %{2}.", []any{"Quantity", 1, 100}, "Quantity must be between 1 and 100."},
		{"reordered", "%{0} must be between %{2} and %{1} characters long.", []any{"Name", 5, 2}, "Name must be between 2 and 5 characters long."},
		{"repeated", "%{0}, %{0}!", []any{"Hey"}, "Hey, Hey!"},
		{"missing argument kept", "%{0} vs %{3}", []any{"a"}, "a vs %{3}"},
		{"decimal", "%{0} max %{1}", []any{"Price", decimal.RequireFromString("9.99")}, "Price max 9.99"},
		{"time", "%{0} after %{1}", []any{"Date", time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)}, "Date after 2025-01-02T03:04:05Z"},
		{"nil argument", "[%{1}]", []any{"x", nil}, "[]"},
		{"no placeholders", "plain", []any{"x"}, "plain"},
		{"named placeholders untouched", "%{name}", []any{"x"}, "%{name}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, validator.Format(tt.tmpl, tt.args...))
		})
	}
}

func TestDefaultTemplatesCoverEveryKey(t *testing.T) {
	t.Parallel()
	defaults := validator.DefaultTemplates()
	for _, key := range validator.TemplateKeys() {
		tmpl, ok := defaults.Template(key)
		assert.True(t, ok, key)
		assert.Contains(t, tmpl, "%{", key)
	}
	assert.Len(t, defaults, len(validator.TemplateKeys()))
}

func TestDefaultTemplatesIsACopy(t *testing.T) {
	t.Parallel()

	defaults := validator.DefaultTemplates()
	defaults[validator.KeyRequired] = "%{0} is changed."
	delete(defaults, validator.KeyRange)

	resolver := validator.NewMessageResolver(nil)
	assert.Equal(t, "Name is required.",
		resolver.Resolve(validator.Required(), &validator.Failure{Reason: validator.ReasonConstraint, Key: validator.KeyRequired}, "Name"))

	again := validator.DefaultTemplates()
	assert.Equal(t, "%{0} is required.", again[validator.KeyRequired])
	assert.Contains(t, again, validator.KeyRange)
}

func TestMessageResolver(t *testing.T) {
	t.Parallel()

	rangeFailure := &validator.Failure{Reason: validator.ReasonConstraint, Key: validator.KeyRange, Args: []any{1, 100}}

	t.Run("default templates", func(t *testing.T) {
		t.Parallel()
		r := validator.NewMessageResolver(nil)
		msg := r.Resolve(validator.Range(1, 100), rangeFailure, "Quantity")
		assert.Equal(t, "Quantity must be between 1 and 100.", msg)
	})

	t.Run("provider wins over defaults", func(t *testing.T) {
		t.Parallel()
		r := validator.NewMessageResolver(validator.Templates{
			validator.KeyRange: "%{0}: %{1}..%{2}",
		})
		assert.Equal(t, "Qty: 1..100", r.Resolve(validator.Range(1, 100), rangeFailure, "Qty"))
	})

	t.Run("empty provider entry falls back", func(t *testing.T) {
		t.Parallel()
		r := validator.NewMessageResolver(validator.Templates{validator.KeyRange: ""})
		assert.Equal(t, "Qty must be between 1 and 100.", r.Resolve(validator.Range(1, 100), rangeFailure, "Qty"))
	})

	t.Run("rule override wins for constraints", func(t *testing.T) {
		t.Parallel()
		r := validator.NewMessageResolver(validator.Templates{validator.KeyRange: "catalog"})
		rule := validator.Range(1, 100, validator.WithMessage("%{0} out of %{1}-%{2}"))
		assert.Equal(t, "Qty out of 1-100", r.Resolve(rule, rangeFailure, "Qty"))
	})

	t.Run("override ignored for type mismatch", func(t *testing.T) {
		t.Parallel()
		r := validator.NewMessageResolver(nil)
		rule := validator.Range(1, 100, validator.WithMessage("custom"))
		f := &validator.Failure{Reason: validator.ReasonTypeMismatch, Key: validator.KeyNotNumeric, Args: []any{"string"}}
		assert.Equal(t, "Qty must be a number, got string.", r.Resolve(rule, f, "Qty"))
	})

	t.Run("unknown key uses generic template", func(t *testing.T) {
		t.Parallel()
		r := validator.NewMessageResolver(validator.TemplateFunc(func(string) (string, bool) { return "", false }))
		f := &validator.Failure{Reason: validator.ReasonConstraint, Key: "validation.custom"}
		assert.Equal(t, "Code is invalid.", r.Resolve(validator.Pattern(`x`), f, "Code"))
	})

	t.Run("args start with label", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, []any{"Qty", 1, 100}, validator.Args("Qty", rangeFailure))
	})
}
