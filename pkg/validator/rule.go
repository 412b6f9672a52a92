package validator

import (
	"fmt"
	"reflect"
	"strings"
)

// Rule is a single configured constraint bound to one field. Implementations
// are immutable once constructed, so one Rule may be shared by many schemas
// and evaluated from many goroutines at the same time.
type Rule interface {
	// Kind reports the rule variant.
	Kind() Kind
	// Evaluate checks value and returns nil on success. Siblings gives
	// read access to the other fields of the instance being validated.
	Evaluate(value any, siblings Siblings) *Failure
	// Message returns the override template, or "" to use the catalog.
	Message() string
}

// Siblings resolves other fields of the instance under validation by name.
type Siblings interface {
	Lookup(name string) (any, bool)
}

// Failure is the outcome of a rule that did not pass.
type Failure struct {
	Reason Reason
	// Key selects the message template.
	Key string
	// Args are the rule-specific template values, %{1} onwards.
	Args []any
}

func constraint(key string, args ...any) *Failure {
	return &Failure{Reason: ReasonConstraint, Key: key, Args: args}
}

func notNumeric(value any) *Failure {
	return &Failure{Reason: ReasonTypeMismatch, Key: KeyNotNumeric, Args: []any{typeName(value)}}
}

func typeMismatch(expected string, value any) *Failure {
	return &Failure{Reason: ReasonTypeMismatch, Key: KeyTypeMismatch, Args: []any{expected, typeName(value)}}
}

func unknownField(name string) *Failure {
	return &Failure{Reason: ReasonConfiguration, Key: KeyUnknownField, Args: []any{name}}
}

// RuleOption tweaks a rule at construction time. Options that make no sense
// for a given rule are ignored by it.
type RuleOption func(*settings)

type settings struct {
	message           string
	key               string
	exclusive         bool
	allowEmptyStrings bool
	allowZero         bool
	minLength         int
}

func newSettings(opts []RuleOption) settings {
	var s settings
	for _, opt := range opts {
		if opt != nil {
			opt(&s)
		}
	}
	return s
}

// WithMessage overrides the catalog template. The override uses the same
// positional placeholders as the catalog entry for the rule.
func WithMessage(template string) RuleOption {
	return func(s *settings) { s.message = template }
}

// MessageKey replaces the catalog key used when the rule fails.
// Pattern rules use it to point at a format-specific message.
func MessageKey(key string) RuleOption {
	return func(s *settings) {
		if key != "" {
			s.key = key
		}
	}
}

// Exclusive makes Min and Max strict.
func Exclusive() RuleOption {
	return func(s *settings) { s.exclusive = true }
}

// AllowEmptyStrings lets Required accept "" and whitespace-only strings.
func AllowEmptyStrings() RuleOption {
	return func(s *settings) { s.allowEmptyStrings = true }
}

// AllowZero lets PositiveDecimal accept zero.
func AllowZero() RuleOption {
	return func(s *settings) { s.allowZero = true }
}

// MinLength sets the lower bound of StringLength.
func MinLength(n int) RuleOption {
	return func(s *settings) {
		if n > 0 {
			s.minLength = n
		}
	}
}

type base struct {
	kind    Kind
	message string
}

func (b base) Kind() Kind      { return b.kind }
func (b base) Message() string { return b.message }

// indirect follows pointers and interfaces until it reaches a concrete value.
// Nil pointers, maps, slices, funcs and channels come back as untyped nil so
// every rule sees a single notion of "absent".
func indirect(value any) any {
	if value == nil {
		return nil
	}
	rv := reflect.ValueOf(value)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		if rv.IsNil() {
			return nil
		}
	case reflect.Invalid:
		return nil
	}
	if !rv.CanInterface() {
		return nil
	}
	return rv.Interface()
}

// asString accepts string and named string types.
func asString(value any) (string, bool) {
	if s, ok := value.(string); ok {
		return s, true
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.String {
		return rv.String(), true
	}
	return "", false
}

// isEmpty is the emptiness test used by cross-field rules: nil, or a string
// with no visible characters. Other values are never empty.
func isEmpty(value any) bool {
	if value == nil {
		return true
	}
	if s, ok := asString(value); ok {
		return strings.TrimSpace(s) == ""
	}
	return false
}

func typeName(value any) string {
	if value == nil {
		return "nil"
	}
	return fmt.Sprintf("%T", value)
}
