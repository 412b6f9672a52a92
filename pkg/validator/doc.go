// Package validator provides a declarative, reusable object validation engine:
// composable field-level rules attached to the fields of data-transfer types,
// and an Engine that evaluates them against live instances, optionally
// descending through nested values, and reports structured violations.
//
// # Architecture
//
// Rules are small immutable values (`presence_rules.go`, `numeric_rules.go`,
// `string_rules.go`, `pattern_rules.go`). Each one evaluates a single field
// value and returns a Failure carrying a template key and positional
// arguments. A nil value passes every rule except Required, so rules compose
// into "optional, but valid when present" semantics.
//
// Types describe their validatable shape with a Schema built once from
// explicit accessors, so no struct tags or reflection walks are needed on the
// hot path. Schemas are stored in a Registry keyed by Go type.
//
// The Engine looks up the schema of an instance, evaluates every rule in
// declaration order and turns failures into ValidationError values through a
// MessageResolver. Messages come from a TemplateProvider (for example an
// i18n catalog) with DefaultTemplates() as the English fallback; a rule may
// override its template with WithMessage.
//
// Core building blocks:
//   - Rule              – immutable constraint with Kind, Evaluate and Message
//   - Schema / Registry – explicit field accessors per type
//   - Engine            – TryValidate, Validate, IsValid, FirstError, AllErrors
//   - ValidationErrors  – slice type that implements the error interface
//
// Magnitude rules (Range, Min, Max, PositiveDecimal) share one coercion
// ladder: every integer type, decimal.Decimal, float64 and float32 are
// compared exactly as decimals; anything else is a type mismatch.
//
// # Usage
//
//	type OrderItem struct {
//		Name     *string
//		Barcode  *string
//		Quantity int
//		Price    decimal.Decimal
//	}
//
//	var orderItemSchema = validator.NewSchema[OrderItem]().
//		Field("Name", func(o *OrderItem) any { return o.Name },
//			validator.RequiredIfEmpty("Barcode"), validator.StringLength(120)).
//		Field("Barcode", func(o *OrderItem) any { return o.Barcode },
//			validator.Pattern(`^[0-9]{8,14}$`)).
//		Field("Quantity", func(o *OrderItem) any { return o.Quantity },
//			validator.Range(1, 100)).
//		Field("Price", func(o *OrderItem) any { return o.Price },
//			validator.PositiveDecimal())
//
//	registry := validator.NewRegistry()
//	validator.Register(registry, orderItemSchema)
//	engine := validator.New(registry)
//
//	if ok, errs := engine.TryValidate(item); !ok {
//		for _, e := range errs {
//			fmt.Println(e.Field, e.Message)
//		}
//	}
//
// # Error Handling
//
// Broken values, values of the wrong type and schema mistakes (such as a
// cross-field rule naming a missing field) are all reported as violations,
// distinguished by Reason. Only Validate and ValidateRecursive return an
// error; it is a ValidationErrors value matching ErrValidationFailed.
//
// # Concurrency
//
// Rules, schemas and engines are immutable after set-up and safe for
// concurrent use. The instance must not be mutated while it is validated
// because cross-field rules read sibling fields during evaluation.
package validator
