package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriceUnmarshal(t *testing.T) {
	t.Run("Number", func(t *testing.T) {
		var s Service
		require.NoError(t, json.Unmarshal([]byte(`{"preco":45}`), &s))
		assert.Equal(t, Price(45), s.Price)
	})

	t.Run("NumericString", func(t *testing.T) {
		var s Service
		require.NoError(t, json.Unmarshal([]byte(`{"preco":"45.00"}`), &s))
		assert.Equal(t, Price(45), s.Price)
	})

	t.Run("StringWithWhitespace", func(t *testing.T) {
		var s Service
		require.NoError(t, json.Unmarshal([]byte(`{"preco":" 32.5 "}`), &s))
		assert.Equal(t, Price(32.5), s.Price)
	})

	t.Run("Null", func(t *testing.T) {
		var s Service
		require.NoError(t, json.Unmarshal([]byte(`{"preco":null}`), &s))
		assert.Equal(t, Price(0), s.Price)
	})

	t.Run("NonNumericStringRejected", func(t *testing.T) {
		var s Service
		require.Error(t, json.Unmarshal([]byte(`{"preco":"grátis"}`), &s))
	})

	t.Run("MarshalEmitsNumber", func(t *testing.T) {
		data, err := json.Marshal(Service{ID: "1", Price: Price(45)})
		require.NoError(t, err)
		assert.Contains(t, string(data), `"preco":45`)
	})
}

func TestFormatBRL(t *testing.T) {
	assert.Equal(t, "R$ 45,00", Price(45).FormatBRL())
	assert.Equal(t, "R$ 32,50", Price(32.5).FormatBRL())
	assert.Equal(t, "R$ 0,00", Price(0).FormatBRL())
}

func TestServiceInputValidate(t *testing.T) {
	valid := ServiceInput{Name: "Corte", Description: "Corte masculino", Price: 45, BarberShopID: "shop-1"}
	require.NoError(t, valid.Validate())

	cases := map[string]ServiceInput{
		"MissingName":        {Description: "d", Price: 45, BarberShopID: "s"},
		"MissingDescription": {Name: "n", Price: 45, BarberShopID: "s"},
		"ZeroPrice":          {Name: "n", Description: "d", BarberShopID: "s"},
		"NegativePrice":      {Name: "n", Description: "d", Price: -1, BarberShopID: "s"},
		"MissingShop":        {Name: "n", Description: "d", Price: 45},
	}
	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Error(t, input.Validate())
		})
	}
}
