package main

import (
	"github.com/shopspring/decimal"

	"github.com/dmitrymomot/validkit/pkg/validator"
)

type address struct {
	PostalCode string
}

type orderItem struct {
	Name     *string
	Barcode  *string
	SKU      string
	Quantity int
	Price    decimal.Decimal
	Shipping *address
}

func sampleRegistry() *validator.Registry {
	registry := validator.NewRegistry()

	validator.Register(registry, validator.NewSchema[address]().
		Field("PostalCode", func(a *address) any { return a.PostalCode },
			validator.Required(), validator.StringLength(10, validator.MinLength(3))).
		Label("PostalCode", "Postal code"))

	validator.Register(registry, validator.NewSchema[orderItem]().
		Field("Name", func(o *orderItem) any { return o.Name },
			validator.RequiredIfEmpty("Barcode"), validator.StringLength(120)).
		Field("Barcode", func(o *orderItem) any { return o.Barcode },
			validator.Pattern(`^[0-9]{8,14}$`)).
		Field("SKU", func(o *orderItem) any { return o.SKU },
			validator.Pattern(`^[B-X][0-9]{8}$`)).
		Field("Quantity", func(o *orderItem) any { return o.Quantity },
			validator.Range(1, 100)).
		Field("Price", func(o *orderItem) any { return o.Price },
			validator.PositiveDecimal()).
		Field("Shipping", func(o *orderItem) any { return o.Shipping }))

	return registry
}

// sampleOrderItem breaks one rule per field.
func sampleOrderItem() *orderItem {
	return &orderItem{
		SKU:      "A1234",
		Quantity: 0,
		Price:    decimal.NewFromInt(-5),
		Shipping: &address{PostalCode: "12"},
	}
}
