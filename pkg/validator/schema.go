package validator

import (
	"errors"
	"fmt"
	"reflect"
	"sync"
)

// FieldDescriptor describes one validatable field of a type.
type FieldDescriptor struct {
	Name  string
	Label string
	Rules []Rule

	get func(instance any) any
}

// DisplayName is the label used in messages, the field name by default.
func (d FieldDescriptor) DisplayName() string {
	if d.Label != "" {
		return d.Label
	}
	return d.Name
}

// Schema is the validatable shape of T: an ordered list of fields, each with
// an accessor and the rules attached to it. Build it once, typically in a
// package-level variable, and register it; it must not be modified after
// validation has started.
//
//	var orderItemSchema = validator.NewSchema[OrderItem]().
//		Field("Name", func(o *OrderItem) any { return o.Name },
//			validator.RequiredIfEmpty("Barcode"), validator.StringLength(120)).
//		Field("Barcode", func(o *OrderItem) any { return o.Barcode })
type Schema[T any] struct {
	fields []FieldDescriptor
	index  map[string]int
}

// NewSchema starts an empty schema for T.
func NewSchema[T any]() *Schema[T] {
	return &Schema[T]{index: make(map[string]int)}
}

// Field declares a field. Fields without rules are still useful as targets
// of cross-field rules. It panics on an empty or duplicate name or a nil
// accessor since those are programming errors in the schema definition.
func (s *Schema[T]) Field(name string, get func(*T) any, rules ...Rule) *Schema[T] {
	if name == "" {
		panic("validator: field name is empty")
	}
	if get == nil {
		panic(fmt.Sprintf("validator: field %q has no accessor", name))
	}
	if _, ok := s.index[name]; ok {
		panic(fmt.Errorf("validator: %w: %s", ErrDuplicateField, name))
	}

	clean := make([]Rule, 0, len(rules))
	for _, r := range rules {
		if r != nil {
			clean = append(clean, r)
		}
	}

	s.index[name] = len(s.fields)
	s.fields = append(s.fields, FieldDescriptor{
		Name:  name,
		Rules: clean,
		get:   func(instance any) any { return get(instance.(*T)) },
	})
	return s
}

// Label sets the display name used in messages for a declared field.
func (s *Schema[T]) Label(name, label string) *Schema[T] {
	i, ok := s.index[name]
	if !ok {
		panic(fmt.Errorf("validator: %w: %s", ErrUnknownField, name))
	}
	s.fields[i].Label = label
	return s
}

// Fields returns a copy of the field descriptors in declaration order.
func (s *Schema[T]) Fields() []FieldDescriptor {
	out := make([]FieldDescriptor, len(s.fields))
	for i, f := range s.fields {
		f.Rules = append([]Rule(nil), f.Rules...)
		out[i] = f
	}
	return out
}

// Check reports cross-field rules that reference undeclared fields. The
// engine reports the same problem as a violation at validation time; Check
// lets a test catch it without building an instance.
func (s *Schema[T]) Check() error {
	var errs []error
	for _, f := range s.fields {
		for _, r := range f.Rules {
			cf, ok := r.(crossField)
			if !ok {
				continue
			}
			if _, ok := s.index[cf.OtherField()]; !ok {
				errs = append(errs, fmt.Errorf("%w: %s.%s references %q", ErrUnknownField, s.typeName(), f.Name, cf.OtherField()))
			}
		}
	}
	return errors.Join(errs...)
}

func (s *Schema[T]) typeName() string {
	return reflect.TypeFor[T]().String()
}

func (s *Schema[T]) descriptors() []FieldDescriptor { return s.fields }

// bind converts a T or *T into the *T accessors expect.
func (s *Schema[T]) bind(instance any) (any, bool) {
	switch v := instance.(type) {
	case *T:
		if v == nil {
			return nil, false
		}
		return v, true
	case T:
		return &v, true
	default:
		return nil, false
	}
}

func (s *Schema[T]) lookup(instance any, name string) (any, bool) {
	i, ok := s.index[name]
	if !ok {
		return nil, false
	}
	return s.fields[i].get(instance), true
}

// boundSchema is the type-erased view of Schema[T] used by the engine.
type boundSchema interface {
	descriptors() []FieldDescriptor
	bind(instance any) (any, bool)
	lookup(instance any, name string) (any, bool)
	typeName() string
}

// Registry maps Go types to their schemas. Register schemas during start-up;
// lookups are safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	schemas map[reflect.Type]boundSchema
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{schemas: make(map[reflect.Type]boundSchema)}
}

// Register stores the schema for T, replacing any previous one.
// Both T and *T instances are validated with it.
func Register[T any](r *Registry, s *Schema[T]) {
	if r == nil || s == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.schemas[reflect.TypeFor[T]()] = s
}

// Has reports whether a schema is registered for t, or for the type t points to.
func (r *Registry) Has(t reflect.Type) bool {
	_, ok := r.lookup(t)
	return ok
}

func (r *Registry) lookup(t reflect.Type) (boundSchema, bool) {
	if r == nil || t == nil {
		return nil, false
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.schemas[t]
	return s, ok
}

// instanceSiblings resolves sibling fields of one bound instance.
type instanceSiblings struct {
	schema   boundSchema
	instance any
}

func (s instanceSiblings) Lookup(name string) (any, bool) {
	return s.schema.lookup(s.instance, name)
}
