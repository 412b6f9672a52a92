package validator

import "strings"

type requiredRule struct {
	base
	allowEmptyStrings bool
}

// Required fails when the value is absent. Strings that are empty or only
// whitespace also fail unless AllowEmptyStrings is given. It is the only rule
// that treats nil as a failure; combine it with other rules to make a field
// mandatory.
func Required(opts ...RuleOption) Rule {
	s := newSettings(opts)
	return requiredRule{
		base:              base{kind: KindRequired, message: s.message},
		allowEmptyStrings: s.allowEmptyStrings,
	}
}

func (r requiredRule) Evaluate(value any, _ Siblings) *Failure {
	value = indirect(value)
	if value == nil {
		return constraint(KeyRequired)
	}
	if str, ok := asString(value); ok && !r.allowEmptyStrings && strings.TrimSpace(str) == "" {
		return constraint(KeyRequired)
	}
	return nil
}

type notEmptyStringRule struct {
	base
}

// NotEmptyString rejects empty and whitespace-only strings. A nil value
// passes and any non-string value is a type mismatch.
func NotEmptyString(opts ...RuleOption) Rule {
	s := newSettings(opts)
	return notEmptyStringRule{base: base{kind: KindNotEmptyString, message: s.message}}
}

func (r notEmptyStringRule) Evaluate(value any, _ Siblings) *Failure {
	value = indirect(value)
	if value == nil {
		return nil
	}
	str, ok := asString(value)
	if !ok {
		return typeMismatch("string", value)
	}
	if strings.TrimSpace(str) == "" {
		return constraint(KeyNotEmptyString)
	}
	return nil
}

type requiredIfEmptyRule struct {
	base
	other string
}

// RequiredIfEmpty makes a field mandatory only while the named sibling is
// empty: it fails when both values are nil or blank strings. Naming a field
// the schema does not declare is reported as a configuration violation.
func RequiredIfEmpty(other string, opts ...RuleOption) Rule {
	s := newSettings(opts)
	return requiredIfEmptyRule{
		base:  base{kind: KindRequiredIfEmpty, message: s.message},
		other: other,
	}
}

// OtherField returns the sibling the rule depends on.
func (r requiredIfEmptyRule) OtherField() string { return r.other }

func (r requiredIfEmptyRule) Evaluate(value any, siblings Siblings) *Failure {
	if siblings == nil {
		return unknownField(r.other)
	}
	other, ok := siblings.Lookup(r.other)
	if !ok {
		return unknownField(r.other)
	}
	if isEmpty(indirect(value)) && isEmpty(indirect(other)) {
		return constraint(KeyRequiredIfEmpty, r.other)
	}
	return nil
}

// crossField is implemented by rules that read other fields, so schemas can
// verify the references up front.
type crossField interface {
	OtherField() string
}
