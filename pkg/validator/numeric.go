package validator

import (
	"math"
	"math/big"
	"reflect"

	"github.com/shopspring/decimal"
)

// Numeric covers the built-in number types.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Bound is the set of types accepted as configuration for magnitude rules.
type Bound interface {
	Numeric | decimal.Decimal
}

// toDecimal is the coercion ladder shared by every magnitude rule: integers of
// any width, decimal.Decimal, float64 and float32. Everything else, including
// NaN and infinities, is reported as not numeric.
func toDecimal(value any) (decimal.Decimal, bool) {
	switch v := value.(type) {
	case int:
		return decimal.NewFromInt(int64(v)), true
	case int64:
		return decimal.NewFromInt(v), true
	case decimal.Decimal:
		return v, true
	case float64:
		return fromFloat(v)
	case float32:
		return fromFloat32(v)
	case int8:
		return decimal.NewFromInt(int64(v)), true
	case int16:
		return decimal.NewFromInt(int64(v)), true
	case int32:
		return decimal.NewFromInt(int64(v)), true
	case uint8:
		return decimal.NewFromInt(int64(v)), true
	case uint16:
		return decimal.NewFromInt(int64(v)), true
	case uint32:
		return decimal.NewFromInt(int64(v)), true
	case uint:
		return fromUint(uint64(v)), true
	case uint64:
		return fromUint(v), true
	}

	// Named types such as `type Cents int64` fall through to their kind.
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return decimal.NewFromInt(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return fromUint(rv.Uint()), true
	case reflect.Float32:
		return fromFloat32(float32(rv.Float()))
	case reflect.Float64:
		return fromFloat(rv.Float())
	}

	return decimal.Decimal{}, false
}

func fromFloat(f float64) (decimal.Decimal, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Decimal{}, false
	}
	return decimal.NewFromFloat(f), true
}

// fromFloat32 keeps the shortest float32 representation, so float32(0.1)
// compares as 0.1 rather than its widened float64 value.
func fromFloat32(f float32) (decimal.Decimal, bool) {
	if math.IsNaN(float64(f)) || math.IsInf(float64(f), 0) {
		return decimal.Decimal{}, false
	}
	return decimal.NewFromFloat32(f), true
}

func fromUint(u uint64) decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(u), 0)
}

// mustDecimal converts a rule bound at schema-definition time.
func mustDecimal[T Bound](bound T) decimal.Decimal {
	d, ok := toDecimal(any(bound))
	if !ok {
		panic("validator: bound is not a finite number")
	}
	return d
}
