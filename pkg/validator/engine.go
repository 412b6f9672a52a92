package validator

import (
	"log/slog"
	"reflect"

	"github.com/dmitrymomot/validkit/pkg/logger"
)

// DefaultMaxDepth bounds recursive validation when no limit is configured.
const DefaultMaxDepth = 32

// Engine evaluates registered schemas against instances. It keeps no per-call
// state, so one Engine may serve concurrent callers.
type Engine struct {
	registry *Registry
	resolver *MessageResolver
	maxDepth int
	logger   *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithTemplates sets the message catalog. Keys it does not know fall back
// to the built-in English catalog.
func WithTemplates(p TemplateProvider) Option {
	return func(e *Engine) {
		if p != nil {
			e.resolver = NewMessageResolver(p)
		}
	}
}

// WithMaxDepth limits how many nested levels recursive validation descends.
func WithMaxDepth(depth int) Option {
	return func(e *Engine) {
		if depth > 0 {
			e.maxDepth = depth
		}
	}
}

// WithLogger receives warnings about schema configuration problems.
// If not specified, a discard logger is used.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// New creates an engine that validates the types registered in registry.
func New(registry *Registry, opts ...Option) *Engine {
	if registry == nil {
		registry = NewRegistry()
	}
	e := &Engine{
		registry: registry,
		resolver: NewMessageResolver(nil),
		maxDepth: DefaultMaxDepth,
		logger:   logger.Discard(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(e)
		}
	}
	return e
}

// Localize returns a copy of the engine that renders messages from p,
// typically the catalog for the language of the current request.
func (e *Engine) Localize(p TemplateProvider) *Engine {
	cp := *e
	if p != nil {
		cp.resolver = NewMessageResolver(p)
	}
	return &cp
}

// TryValidate evaluates every rule declared on the direct fields of
// instance. ok is true exactly when errs is empty. Misconfigured schemas
// surface as violations rather than panics.
func (e *Engine) TryValidate(instance any) (ok bool, errs ValidationErrors) {
	s, bound, fail := e.resolveRoot(instance)
	if fail != nil {
		return false, ValidationErrors{*fail}
	}
	errs = e.validateFields(s, bound)
	return len(errs) == 0, errs
}

// Validate is the strict form of TryValidate: it returns the violations as
// an error, which matches ErrValidationFailed.
func (e *Engine) Validate(instance any) error {
	if ok, errs := e.TryValidate(instance); !ok {
		return errs
	}
	return nil
}

// IsValid reports whether instance passes every rule.
func (e *Engine) IsValid(instance any) bool {
	ok, _ := e.TryValidate(instance)
	return ok
}

// FirstError returns the first violation message, or "" when valid.
func (e *Engine) FirstError(instance any) string {
	_, errs := e.TryValidate(instance)
	if first, ok := errs.First(); ok {
		return first.Message
	}
	return ""
}

// AllErrors returns every violation message in declaration order.
func (e *Engine) AllErrors(instance any) []string {
	_, errs := e.TryValidate(instance)
	return errs.Messages()
}

func (e *Engine) resolveRoot(instance any) (boundSchema, any, *ValidationError) {
	if indirect(instance) == nil {
		return nil, nil, e.schemaViolation("", "", KeyNilInstance, nil)
	}

	t := reflect.TypeOf(instance)
	s, ok := e.registry.lookup(t)
	if !ok {
		for t.Kind() == reflect.Pointer {
			t = t.Elem()
		}
		return nil, nil, e.schemaViolation("", "", KeySchemaNotFound, []any{t.String()})
	}

	bound, ok := s.bind(instance)
	if !ok {
		bound, ok = s.bind(indirect(instance))
	}
	if !ok {
		return nil, nil, e.schemaViolation("", "", KeySchemaNotFound, []any{s.typeName()})
	}
	return s, bound, nil
}

// validateFields runs every rule of s against the direct fields of bound.
func (e *Engine) validateFields(s boundSchema, bound any) ValidationErrors {
	var errs ValidationErrors
	siblings := instanceSiblings{schema: s, instance: bound}

	for _, field := range s.descriptors() {
		if len(field.Rules) == 0 {
			continue
		}
		value := field.get(bound)
		for _, rule := range field.Rules {
			f := rule.Evaluate(value, siblings)
			if f == nil {
				continue
			}
			if f.Reason == ReasonConfiguration {
				e.logger.Warn("validator schema misconfigured",
					logger.Component("validator"),
					logger.Field(field.Name),
					logger.Rule(string(rule.Kind())),
					logger.Key(f.Key),
				)
			}
			errs = append(errs, e.violation(rule, f, field.Name, field.DisplayName()))
		}
	}
	return errs
}

func (e *Engine) violation(rule Rule, f *Failure, path, label string) ValidationError {
	kind := KindSchema
	if rule != nil {
		kind = rule.Kind()
	}
	return ValidationError{
		Field:           path,
		Message:         e.resolver.Resolve(rule, f, label),
		Rule:            kind,
		Reason:          f.Reason,
		TranslationKey:  f.Key,
		TranslationArgs: Args(label, f),
	}
}

// schemaViolation reports a problem found by the engine rather than a rule.
// At the root there is no field to name, so the label is "value".
func (e *Engine) schemaViolation(path, label, key string, args []any) *ValidationError {
	f := &Failure{Reason: ReasonConfiguration, Key: key, Args: args}
	if label == "" {
		label = "value"
	}
	e.logger.Warn("validator schema misconfigured",
		logger.Component("validator"),
		logger.Field(path),
		logger.Key(key),
	)
	v := e.violation(nil, f, path, label)
	return &v
}
