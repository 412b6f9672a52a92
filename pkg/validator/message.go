package validator

import (
	"fmt"
	"maps"
	"regexp"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// TemplateProvider returns the message template for a key. Implementations
// usually wrap a translation catalog for one language.
type TemplateProvider interface {
	Template(key string) (string, bool)
}

// TemplateFunc adapts a plain function to TemplateProvider.
type TemplateFunc func(key string) (string, bool)

func (f TemplateFunc) Template(key string) (string, bool) { return f(key) }

// Templates is an in-memory TemplateProvider.
type Templates map[string]string

func (t Templates) Template(key string) (string, bool) {
	tmpl, ok := t[key]
	return tmpl, ok && tmpl != ""
}

// defaultTemplates is the English catalog used when a provider has no entry.
// It is never handed out, so no caller can change the fallback of other engines.
var defaultTemplates = Templates{
	KeyRequired:          "%{0} is required.",
	KeyNotEmptyString:    "%{0} must not be empty.",
	KeyRange:             "%{0} must be between %{1} and %{2}.",
	KeyMin:               "%{0} must be at least %{1}.",
	KeyMinExclusive:      "%{0} must be greater than %{1}.",
	KeyMax:               "%{0} must be at most %{1}.",
	KeyMaxExclusive:      "%{0} must be less than %{1}.",
	KeyStringLength:      "%{0} must be at most %{1} characters long.",
	KeyStringLengthRange: "%{0} must be between %{2} and %{1} characters long.",
	KeyPositive:          "%{0} must be greater than zero.",
	KeyNonNegative:       "%{0} must not be negative.",
	KeyRequiredIfEmpty:   "%{0} is required when %{1} is empty.",
	KeyPattern:           "%{0} has an invalid format.",
	KeyUUID:              "%{0} must be a valid UUID.",
	KeyNotNumeric:        "%{0} must be a number, got %{1}.",
	KeyTypeMismatch:      "%{0} must be a %{1}, got %{2}.",
	KeyUnknownField:      "%{0} refers to unknown field %{1}.",
	KeyMaxDepth:          "%{0} is nested deeper than %{1} levels.",
	KeyNilInstance:       "%{0} is nil and cannot be validated.",
	KeySchemaNotFound:    "No validation schema is registered for %{1}.",
	KeyInvalid:           "%{0} is invalid.",
}

// DefaultTemplates returns a copy of the built-in English catalog.
func DefaultTemplates() Templates {
	return maps.Clone(defaultTemplates)
}

// MessageResolver turns failures into human readable messages.
type MessageResolver struct {
	templates TemplateProvider
}

// NewMessageResolver creates a resolver backed by templates. A nil provider
// falls back to the built-in English catalog.
func NewMessageResolver(templates TemplateProvider) *MessageResolver {
	if templates == nil {
		templates = defaultTemplates
	}
	return &MessageResolver{templates: templates}
}

// Resolve formats the message for a failure of rule on the field labelled
// label. A rule override wins for constraint failures; type mismatches and
// configuration problems always use their catalog entries. Both paths share
// one formatter so the resulting messages have the same shape.
func (r *MessageResolver) Resolve(rule Rule, f *Failure, label string) string {
	return Format(r.template(rule, f), Args(label, f)...)
}

func (r *MessageResolver) template(rule Rule, f *Failure) string {
	if rule != nil && f.Reason == ReasonConstraint {
		if override := rule.Message(); override != "" {
			return override
		}
	}
	if tmpl, ok := r.templates.Template(f.Key); ok && tmpl != "" {
		return tmpl
	}
	if tmpl, ok := defaultTemplates[f.Key]; ok {
		return tmpl
	}
	return defaultTemplates[KeyInvalid]
}

// Args builds the positional template arguments: the label, then the
// rule-specific values.
func Args(label string, f *Failure) []any {
	args := make([]any, 0, len(f.Args)+1)
	args = append(args, label)
	return append(args, f.Args...)
}

var placeholderRegex = regexp.MustCompile(`%\{(\d+)\}`)

// Format replaces %{N} placeholders with the N-th argument. Placeholders
// without a matching argument are kept as they are.
func Format(template string, args ...any) string {
	return placeholderRegex.ReplaceAllStringFunc(template, func(match string) string {
		idx, err := strconv.Atoi(match[2 : len(match)-1])
		if err != nil || idx >= len(args) {
			return match
		}
		return formatArg(args[idx])
	})
}

func formatArg(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case decimal.Decimal:
		return val.String()
	case time.Time:
		return val.Format(time.RFC3339)
	case nil:
		return ""
	default:
		return fmt.Sprint(val)
	}
}
