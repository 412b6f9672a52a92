package validator

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

type patternRule struct {
	base
	key   string
	expr  string
	match func(string) bool
}

// Pattern checks the format of a string against a regular expression.
// Nil and blank strings pass: presence is the job of Required or
// NotEmptyString. Use MessageKey to report a format-specific message.
// The expression is compiled once and Pattern panics if it is invalid.
func Pattern(expr string, opts ...RuleOption) Rule {
	re := regexp.MustCompile(expr)
	return newPattern(expr, KeyPattern, re.MatchString, opts)
}

// MatchPattern is Pattern for an already compiled expression.
func MatchPattern(re *regexp.Regexp, opts ...RuleOption) Rule {
	return newPattern(re.String(), KeyPattern, re.MatchString, opts)
}

// UUID checks the canonical 36 character UUID form.
func UUID(opts ...RuleOption) Rule {
	return newPattern("uuid", KeyUUID, isCanonicalUUID, opts)
}

func newPattern(expr, key string, match func(string) bool, opts []RuleOption) Rule {
	s := newSettings(opts)
	if s.key != "" {
		key = s.key
	}
	return patternRule{
		base:  base{kind: KindPattern, message: s.message},
		key:   key,
		expr:  expr,
		match: match,
	}
}

func (r patternRule) Evaluate(value any, _ Siblings) *Failure {
	value = indirect(value)
	if value == nil {
		return nil
	}
	str, ok := asString(value)
	if !ok {
		return typeMismatch("string", value)
	}
	if strings.TrimSpace(str) == "" {
		return nil
	}
	if !r.match(str) {
		return constraint(r.key, r.expr)
	}
	return nil
}

// isCanonicalUUID rejects the braced and URN forms uuid.Parse also accepts.
func isCanonicalUUID(s string) bool {
	if len(s) != 36 {
		return false
	}
	if s[8] != '-' || s[13] != '-' || s[18] != '-' || s[23] != '-' {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}
