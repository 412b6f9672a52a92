package validator_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validkit/pkg/validator"
)

type product struct {
	Name  string
	Price float64
}

func TestSchema_Fields(t *testing.T) {
	t.Parallel()

	schema := validator.NewSchema[product]().
		Field("Name", func(p *product) any { return p.Name }, validator.Required(), nil, validator.StringLength(10)).
		Field("Price", func(p *product) any { return p.Price }).
		Label("Name", "Product name")

	got := schema.Fields()
	require.Len(t, got, 2)
	assert.Equal(t, "Name", got[0].Name)
	assert.Equal(t, "Product name", got[0].DisplayName())
	assert.Len(t, got[0].Rules, 2, "nil rules are dropped")
	assert.Equal(t, "Price", got[1].DisplayName())
	assert.Empty(t, got[1].Rules)

	got[0].Rules[0] = nil
	assert.NotNil(t, schema.Fields()[0].Rules[0], "Fields returns a copy")
}

func TestSchema_DefinitionErrors(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		validator.NewSchema[product]().Field("", func(p *product) any { return p.Name })
	})
	assert.Panics(t, func() {
		validator.NewSchema[product]().Field("Name", nil)
	})
	assert.PanicsWithError(t, "validator: duplicate field: Name", func() {
		validator.NewSchema[product]().
			Field("Name", func(p *product) any { return p.Name }).
			Field("Name", func(p *product) any { return p.Name })
	})
	assert.Panics(t, func() {
		validator.NewSchema[product]().Label("Missing", "x")
	})
}

func TestSchema_Check(t *testing.T) {
	t.Parallel()

	valid := validator.NewSchema[product]().
		Field("Name", func(p *product) any { return p.Name }, validator.RequiredIfEmpty("Price")).
		Field("Price", func(p *product) any { return p.Price })
	assert.NoError(t, valid.Check())

	broken := validator.NewSchema[product]().
		Field("Name", func(p *product) any { return p.Name }, validator.RequiredIfEmpty("Barcode"))
	err := broken.Check()
	require.Error(t, err)
	assert.True(t, errors.Is(err, validator.ErrUnknownField))
	assert.Contains(t, err.Error(), `references "Barcode"`)
}

func TestRegistry(t *testing.T) {
	t.Parallel()

	registry := validator.NewRegistry()
	assert.False(t, registry.Has(reflect.TypeFor[product]()))

	validator.Register(registry, validator.NewSchema[product]())
	assert.True(t, registry.Has(reflect.TypeFor[product]()))
	assert.True(t, registry.Has(reflect.TypeFor[*product]()), "pointer types resolve to the element schema")
	assert.False(t, registry.Has(reflect.TypeFor[string]()))

	assert.NotPanics(t, func() {
		validator.Register[product](nil, validator.NewSchema[product]())
		validator.Register[product](registry, nil)
	})
}
