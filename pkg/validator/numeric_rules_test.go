package validator_test

import (
	"math"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validkit/pkg/validator"
)

type cents int64

type ratio float64

type gauge float32

func testTime(day int) time.Time {
	return time.Date(2025, time.January, 1+day, 0, 0, 0, 0, time.UTC)
}

func TestRange_Boundaries(t *testing.T) {
	t.Parallel()
	rule := validator.Range(1, 100)
	assert.Equal(t, validator.KindRange, rule.Kind())

	tests := []struct {
		value int
		fail  bool
	}{
		{0, true},
		{1, false},
		{50, false},
		{100, false},
		{101, true},
	}
	for _, tt := range tests {
		f := rule.Evaluate(tt.value, nil)
		if !tt.fail {
			assert.Nil(t, f, "value %d", tt.value)
			continue
		}
		require.NotNil(t, f, "value %d", tt.value)
		assert.Equal(t, validator.ReasonConstraint, f.Reason)
		assert.Equal(t, validator.KeyRange, f.Key)
		assert.Equal(t, []any{1, 100}, f.Args)
	}
}

func TestRange_CoercionLadder(t *testing.T) {
	t.Parallel()
	rule := validator.Range(0, 100)

	inside := map[string]any{
		"int":          50,
		"int8":         int8(50),
		"int16":        int16(50),
		"int32":        int32(50),
		"int64":        int64(50),
		"uint":         uint(50),
		"uint8":        uint8(50),
		"uint16":       uint16(50),
		"uint32":       uint32(50),
		"uint64":       uint64(50),
		"float32":      float32(99.5),
		"float64":      99.99,
		"decimal":      decimal.RequireFromString("100.00"),
		"named int":    cents(100),
		"named float":  ratio(0.5),
		"pointer":      ptr(7),
		"decimal ptr":  ptr(decimal.NewFromInt(0)),
		"float64 zero": 0.0,
	}
	for name, value := range inside {
		t.Run("inside/"+name, func(t *testing.T) {
			t.Parallel()
			assert.Nil(t, rule.Evaluate(value, nil))
		})
	}

	outside := map[string]any{
		"int":       101,
		"negative":  int64(-1),
		"uint64":    uint64(math.MaxUint64),
		"float32":   float32(100.5),
		"float64":   100.0001,
		"decimal":   decimal.RequireFromString("100.000001"),
		"named int": cents(-5),
	}
	for name, value := range outside {
		t.Run("outside/"+name, func(t *testing.T) {
			t.Parallel()
			f := rule.Evaluate(value, nil)
			require.NotNil(t, f)
			assert.Equal(t, validator.ReasonConstraint, f.Reason)
		})
	}

	notNumeric := map[string]struct {
		value any
		typ   string
	}{
		"string":  {"50", "string"},
		"bool":    {true, "bool"},
		"NaN":     {math.NaN(), "float64"},
		"Inf":     {math.Inf(1), "float64"},
		"struct":  {struct{}{}, "struct {}"},
		"complex": {complex(1, 1), "complex128"},
	}
	for name, tt := range notNumeric {
		t.Run("not numeric/"+name, func(t *testing.T) {
			t.Parallel()
			f := rule.Evaluate(tt.value, nil)
			require.NotNil(t, f)
			assert.Equal(t, validator.ReasonTypeMismatch, f.Reason)
			assert.Equal(t, validator.KeyNotNumeric, f.Key)
			assert.Equal(t, []any{tt.typ}, f.Args)
		})
	}
}

func TestRange_DecimalBounds(t *testing.T) {
	t.Parallel()

	rule := validator.Range(decimal.RequireFromString("0.01"), decimal.RequireFromString("9.99"))
	assert.Nil(t, rule.Evaluate(decimal.RequireFromString("0.01"), nil))
	assert.NotNil(t, rule.Evaluate(decimal.RequireFromString("0.009"), nil))
	assert.NotNil(t, rule.Evaluate(10, nil))

	huge := validator.RangeOf("0", "123456789012345678901234567890")
	assert.Nil(t, huge.Evaluate(decimal.RequireFromString("123456789012345678901234567890"), nil))
	assert.NotNil(t, huge.Evaluate(decimal.RequireFromString("123456789012345678901234567891"), nil))
}

func TestFloat32Boundaries(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		rule  validator.Rule
		value any
		pass  bool
	}{
		{"max at bound", validator.Max(0.1), float32(0.1), true},
		{"max above bound", validator.Max(0.1), float32(0.11), false},
		{"exclusive max at bound", validator.Max(0.1, validator.Exclusive()), float32(0.1), false},
		{"min at bound", validator.Min(0.3), float32(0.3), true},
		{"exclusive min at bound", validator.Min(0.3, validator.Exclusive()), float32(0.3), false},
		{"range upper bound", validator.Range(0.0, 0.3), float32(0.3), true},
		{"range above upper bound", validator.Range(0.0, 0.3), float32(0.31), false},
		{"named float32 at bound", validator.Max(0.1), gauge(0.1), true},
		{"named float32 above bound", validator.Max(0.1), gauge(0.2), false},
		{"float32 bound", validator.Max(float32(0.1)), 0.1, true},
		{"positive", validator.PositiveDecimal(), float32(0.01), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			f := tt.rule.Evaluate(tt.value, nil)
			if tt.pass {
				assert.Nil(t, f)
				return
			}
			require.NotNil(t, f)
			assert.Equal(t, validator.ReasonConstraint, f.Reason)
		})
	}

	t.Run("nan", func(t *testing.T) {
		t.Parallel()
		f := validator.Max(1).Evaluate(float32(math.NaN()), nil)
		require.NotNil(t, f)
		assert.Equal(t, validator.ReasonTypeMismatch, f.Reason)
	})
}

func TestRange_InvalidConfiguration(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { validator.Range(10, 1) })
	assert.Panics(t, func() { validator.RangeOf("x", "1") })
	assert.Panics(t, func() { validator.Range(0, math.Inf(1)) })
	assert.Panics(t, func() { validator.RangeTime(testTime(2), testTime(1)) })
}

func TestRangeTime(t *testing.T) {
	t.Parallel()
	rule := validator.RangeTime(testTime(0), testTime(10))

	assert.Nil(t, rule.Evaluate(testTime(0), nil))
	assert.Nil(t, rule.Evaluate(ptr(testTime(10)), nil))

	f := rule.Evaluate(testTime(11), nil)
	require.NotNil(t, f)
	assert.Equal(t, validator.KeyRange, f.Key)
	assert.Equal(t, []any{testTime(0), testTime(10)}, f.Args)

	f = rule.Evaluate("2025-01-02", nil)
	require.NotNil(t, f)
	assert.Equal(t, validator.ReasonTypeMismatch, f.Reason)
	assert.Equal(t, []any{"time.Time", "string"}, f.Args)
}

func TestMinMax(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		rule  validator.Rule
		value any
		key   string
	}{
		{"min below", validator.Min(10), 9, validator.KeyMin},
		{"min equal", validator.Min(10), 10, ""},
		{"min above", validator.Min(10), 11, ""},
		{"min exclusive equal", validator.Min(10, validator.Exclusive()), 10, validator.KeyMinExclusive},
		{"min exclusive above", validator.Min(10, validator.Exclusive()), 10.5, ""},
		{"max above", validator.Max(10), 11, validator.KeyMax},
		{"max equal", validator.Max(10), int64(10), ""},
		{"max below", validator.Max(10), -3, ""},
		{"max exclusive equal", validator.Max(10, validator.Exclusive()), float32(10), validator.KeyMaxExclusive},
		{"max exclusive below", validator.Max(10, validator.Exclusive()), 9.999, ""},
		{"decimal min", validator.Min(decimal.RequireFromString("0.01")), decimal.RequireFromString("0.005"), validator.KeyMin},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			f := tt.rule.Evaluate(tt.value, nil)
			if tt.key == "" {
				assert.Nil(t, f)
				return
			}
			require.NotNil(t, f)
			assert.Equal(t, validator.ReasonConstraint, f.Reason)
			assert.Equal(t, tt.key, f.Key)
			assert.Len(t, f.Args, 1)
		})
	}

	assert.Equal(t, validator.KindMin, validator.Min(1).Kind())
	assert.Equal(t, validator.KindMax, validator.Max(1).Kind())

	f := validator.Min(1).Evaluate("1", nil)
	require.NotNil(t, f)
	assert.Equal(t, validator.KeyNotNumeric, f.Key)
}

func TestPositiveDecimal(t *testing.T) {
	t.Parallel()
	rule := validator.PositiveDecimal()
	allowZero := validator.PositiveDecimal(validator.AllowZero())
	assert.Equal(t, validator.KindPositiveDecimal, rule.Kind())

	assert.Nil(t, rule.Evaluate(decimal.RequireFromString("0.01"), nil))
	assert.Nil(t, rule.Evaluate(1, nil))

	f := rule.Evaluate(decimal.Zero, nil)
	require.NotNil(t, f)
	assert.Equal(t, validator.KeyPositive, f.Key)

	f = rule.Evaluate(-2.5, nil)
	require.NotNil(t, f)
	assert.Equal(t, validator.KeyPositive, f.Key)

	assert.Nil(t, allowZero.Evaluate(0, nil))
	f = allowZero.Evaluate(decimal.NewFromInt(-1), nil)
	require.NotNil(t, f)
	assert.Equal(t, validator.KeyNonNegative, f.Key)

	f = rule.Evaluate("1.00", nil)
	require.NotNil(t, f)
	assert.Equal(t, validator.ReasonTypeMismatch, f.Reason)
	assert.Equal(t, validator.KeyNotNumeric, f.Key)
}
