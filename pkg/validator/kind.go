package validator

// Kind identifies a rule variant.
type Kind string

const (
	KindRequired        Kind = "required"
	KindNotEmptyString  Kind = "not_empty_string"
	KindRange           Kind = "range"
	KindMin             Kind = "min"
	KindMax             Kind = "max"
	KindStringLength    Kind = "string_length"
	KindPositiveDecimal Kind = "positive_decimal"
	KindRequiredIfEmpty Kind = "required_if_empty"
	KindPattern         Kind = "pattern"

	// KindSchema marks violations raised by the engine itself rather than by a rule.
	KindSchema Kind = "schema"
)

// Reason classifies why a rule did not pass.
type Reason int

const (
	// ReasonConstraint is the ordinary outcome of a value breaking a rule.
	ReasonConstraint Reason = iota
	// ReasonTypeMismatch means the rule cannot evaluate values of the given type.
	ReasonTypeMismatch
	// ReasonConfiguration means the schema itself is wrong, e.g. a cross-field
	// rule pointing at a field that does not exist.
	ReasonConfiguration
)

func (r Reason) String() string {
	switch r {
	case ReasonConstraint:
		return "constraint"
	case ReasonTypeMismatch:
		return "type_mismatch"
	case ReasonConfiguration:
		return "configuration"
	default:
		return "unknown"
	}
}

// Message template keys. Placeholders are positional: %{0} is always the
// field label, the following ones are listed next to each key.
const (
	KeyRequired          = "validation.required"
	KeyNotEmptyString    = "validation.not_empty_string"
	KeyRange             = "validation.range"               // %{1} min, %{2} max
	KeyMin               = "validation.min"                 // %{1} min
	KeyMinExclusive      = "validation.min_exclusive"       // %{1} min
	KeyMax               = "validation.max"                 // %{1} max
	KeyMaxExclusive      = "validation.max_exclusive"       // %{1} max
	KeyStringLength      = "validation.string_length"       // %{1} max
	KeyStringLengthRange = "validation.string_length_range" // %{1} max, %{2} min
	KeyPositive          = "validation.positive"
	KeyNonNegative       = "validation.non_negative"
	KeyRequiredIfEmpty   = "validation.required_if_empty"   // %{1} other field
	KeyPattern           = "validation.pattern"             // %{1} pattern
	KeyUUID              = "validation.uuid"
	KeyNotNumeric        = "validation.not_numeric"         // %{1} actual type
	KeyTypeMismatch      = "validation.type_mismatch"       // %{1} expected, %{2} actual type
	KeyUnknownField      = "validation.unknown_field"       // %{1} other field
	KeyMaxDepth          = "validation.max_depth"           // %{1} depth limit
	KeyNilInstance       = "validation.nil_instance"
	KeySchemaNotFound    = "validation.schema_not_found"    // %{1} type
	KeyInvalid           = "validation.invalid"
)

// TemplateKeys lists every key the engine and built-in rules may emit.
// Catalog tooling uses it to detect missing translations.
func TemplateKeys() []string {
	return []string{
		KeyRequired,
		KeyNotEmptyString,
		KeyRange,
		KeyMin,
		KeyMinExclusive,
		KeyMax,
		KeyMaxExclusive,
		KeyStringLength,
		KeyStringLengthRange,
		KeyPositive,
		KeyNonNegative,
		KeyRequiredIfEmpty,
		KeyPattern,
		KeyUUID,
		KeyNotNumeric,
		KeyTypeMismatch,
		KeyUnknownField,
		KeyMaxDepth,
		KeyNilInstance,
		KeySchemaNotFound,
		KeyInvalid,
	}
}
