package validator

import (
	"time"

	"github.com/shopspring/decimal"
)

type rangeRule struct {
	base
	min, max       decimal.Decimal
	minArg, maxArg any
}

// Range checks min <= value <= max for any value on the coercion ladder.
// It panics if min is greater than max.
func Range[T Bound](min, max T, opts ...RuleOption) Rule {
	return newRange(mustDecimal(min), mustDecimal(max), min, max, opts)
}

// RangeOf is Range with bounds written as decimal strings, for bounds that do
// not fit a Go number literal. It panics if a bound cannot be parsed.
func RangeOf(min, max string, opts ...RuleOption) Rule {
	lo := decimal.RequireFromString(min)
	hi := decimal.RequireFromString(max)
	return newRange(lo, hi, lo, hi, opts)
}

func newRange(lo, hi decimal.Decimal, loArg, hiArg any, opts []RuleOption) Rule {
	if lo.GreaterThan(hi) {
		panic("validator: range minimum is greater than maximum")
	}
	s := newSettings(opts)
	return rangeRule{
		base:   base{kind: KindRange, message: s.message},
		min:    lo,
		max:    hi,
		minArg: loArg,
		maxArg: hiArg,
	}
}

func (r rangeRule) Evaluate(value any, _ Siblings) *Failure {
	value = indirect(value)
	if value == nil {
		return nil
	}
	d, ok := toDecimal(value)
	if !ok {
		return notNumeric(value)
	}
	if d.LessThan(r.min) || d.GreaterThan(r.max) {
		return constraint(KeyRange, r.minArg, r.maxArg)
	}
	return nil
}

type timeRangeRule struct {
	base
	min, max time.Time
}

// RangeTime checks that a time.Time value lies within [min, max].
// It panics if min is after max.
func RangeTime(min, max time.Time, opts ...RuleOption) Rule {
	if min.After(max) {
		panic("validator: range minimum is after maximum")
	}
	s := newSettings(opts)
	return timeRangeRule{
		base: base{kind: KindRange, message: s.message},
		min:  min,
		max:  max,
	}
}

func (r timeRangeRule) Evaluate(value any, _ Siblings) *Failure {
	value = indirect(value)
	if value == nil {
		return nil
	}
	t, ok := value.(time.Time)
	if !ok {
		return typeMismatch("time.Time", value)
	}
	if t.Before(r.min) || t.After(r.max) {
		return constraint(KeyRange, r.min, r.max)
	}
	return nil
}

type boundRule struct {
	base
	bound     decimal.Decimal
	boundArg  any
	exclusive bool
	upper     bool
}

// Min requires value >= minimum, or value > minimum with Exclusive.
func Min[T Bound](minimum T, opts ...RuleOption) Rule {
	s := newSettings(opts)
	return boundRule{
		base:      base{kind: KindMin, message: s.message},
		bound:     mustDecimal(minimum),
		boundArg:  minimum,
		exclusive: s.exclusive,
	}
}

// Max requires value <= maximum, or value < maximum with Exclusive.
func Max[T Bound](maximum T, opts ...RuleOption) Rule {
	s := newSettings(opts)
	return boundRule{
		base:      base{kind: KindMax, message: s.message},
		bound:     mustDecimal(maximum),
		boundArg:  maximum,
		exclusive: s.exclusive,
		upper:     true,
	}
}

func (r boundRule) Evaluate(value any, _ Siblings) *Failure {
	value = indirect(value)
	if value == nil {
		return nil
	}
	d, ok := toDecimal(value)
	if !ok {
		return notNumeric(value)
	}

	cmp := d.Cmp(r.bound)
	if r.upper {
		cmp = -cmp
	}
	// cmp > 0 means the value is on the allowed side of the bound.
	if cmp > 0 || (cmp == 0 && !r.exclusive) {
		return nil
	}
	return constraint(r.key(), r.boundArg)
}

func (r boundRule) key() string {
	switch {
	case r.upper && r.exclusive:
		return KeyMaxExclusive
	case r.upper:
		return KeyMax
	case r.exclusive:
		return KeyMinExclusive
	default:
		return KeyMin
	}
}

type positiveRule struct {
	base
	allowZero bool
}

// PositiveDecimal requires a value greater than zero, or not below zero with
// AllowZero. Input goes through the same coercion ladder as Min and Max.
func PositiveDecimal(opts ...RuleOption) Rule {
	s := newSettings(opts)
	return positiveRule{
		base:      base{kind: KindPositiveDecimal, message: s.message},
		allowZero: s.allowZero,
	}
}

func (r positiveRule) Evaluate(value any, _ Siblings) *Failure {
	value = indirect(value)
	if value == nil {
		return nil
	}
	d, ok := toDecimal(value)
	if !ok {
		return notNumeric(value)
	}
	switch sign := d.Sign(); {
	case sign > 0:
		return nil
	case sign == 0 && r.allowZero:
		return nil
	case r.allowZero:
		return constraint(KeyNonNegative)
	default:
		return constraint(KeyPositive)
	}
}
