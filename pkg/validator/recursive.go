package validator

import (
	"encoding"
	"reflect"
)

// TryValidateRecursive validates instance like TryValidate, then descends
// into every declared field holding a struct (or pointer to struct) whose
// type has a registered schema. Nested violations are reported under
// "Parent.Child" paths.
//
// Strings, numbers, slices, arrays and maps are never descended into:
// collection elements need their own validation. Structs that marshal
// themselves to text, such as time.Time and decimal.Decimal, are values
// rather than nested objects. Any other struct without a registered schema
// is reported as a configuration violation at its path. A pointer that is already
// being validated further up the path is skipped, which makes cyclic graphs
// safe, and nesting deeper than the engine's max depth is reported as a
// configuration violation instead of being followed.
func (e *Engine) TryValidateRecursive(instance any) (ok bool, errs ValidationErrors) {
	s, bound, fail := e.resolveRoot(instance)
	if fail != nil {
		return false, ValidationErrors{*fail}
	}
	w := walker{engine: e, ancestors: make(map[any]struct{})}
	errs = w.walk(s, bound, 0)
	return len(errs) == 0, errs
}

// ValidateRecursive is the strict form of TryValidateRecursive.
func (e *Engine) ValidateRecursive(instance any) error {
	if ok, errs := e.TryValidateRecursive(instance); !ok {
		return errs
	}
	return nil
}

// IsValidRecursive reports whether instance and its nested values pass.
func (e *Engine) IsValidRecursive(instance any) bool {
	ok, _ := e.TryValidateRecursive(instance)
	return ok
}

// walker carries the state of one recursive call; it is never shared.
type walker struct {
	engine    *Engine
	ancestors map[any]struct{}
}

func (w *walker) walk(s boundSchema, bound any, depth int) ValidationErrors {
	errs := w.engine.validateFields(s, bound)

	w.ancestors[bound] = struct{}{}
	defer delete(w.ancestors, bound)

	for _, field := range s.descriptors() {
		raw := field.get(bound)
		value := indirect(raw)
		if value == nil {
			continue
		}
		t := reflect.TypeOf(value)
		if t.Kind() != reflect.Struct || isValueStruct(t) {
			continue
		}
		nested, ok := w.engine.registry.lookup(t)
		if !ok {
			errs = append(errs, *w.engine.schemaViolation(field.Name, field.DisplayName(), KeySchemaNotFound, []any{t.String()}))
			continue
		}

		if depth >= w.engine.maxDepth {
			errs = append(errs, *w.engine.schemaViolation(field.Name, field.DisplayName(), KeyMaxDepth, []any{w.engine.maxDepth}))
			continue
		}

		child, ok := nested.bind(raw)
		if !ok {
			child, ok = nested.bind(value)
		}
		if !ok {
			continue
		}
		if _, seen := w.ancestors[child]; seen {
			continue
		}

		errs = append(errs, w.walk(nested, child, depth+1).withPrefix(field.Name)...)
	}
	return errs
}

var textMarshalerType = reflect.TypeFor[encoding.TextMarshaler]()

// isValueStruct reports whether t is a struct used as a scalar value.
func isValueStruct(t reflect.Type) bool {
	return t.Implements(textMarshalerType) || reflect.PointerTo(t).Implements(textMarshalerType)
}
