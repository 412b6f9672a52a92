package validator

import "unicode/utf8"

type stringLengthRule struct {
	base
	min, max int
}

// StringLength limits the number of characters (runes) in a string to at most
// max, and at least MinLength when that option is set. Nil passes and
// non-string values are a type mismatch.
func StringLength(max int, opts ...RuleOption) Rule {
	s := newSettings(opts)
	if max < 0 || s.minLength > max {
		panic("validator: invalid string length bounds")
	}
	return stringLengthRule{
		base: base{kind: KindStringLength, message: s.message},
		min:  s.minLength,
		max:  max,
	}
}

func (r stringLengthRule) Evaluate(value any, _ Siblings) *Failure {
	value = indirect(value)
	if value == nil {
		return nil
	}
	str, ok := asString(value)
	if !ok {
		return typeMismatch("string", value)
	}
	n := utf8.RuneCountInString(str)
	if n >= r.min && n <= r.max {
		return nil
	}
	if r.min > 0 {
		return constraint(KeyStringLengthRange, r.max, r.min)
	}
	return constraint(KeyStringLength, r.max)
}
