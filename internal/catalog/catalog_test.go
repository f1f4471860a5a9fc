package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettlementDivisor(t *testing.T) {
	tests := []struct {
		currency string
		want     float64
	}{
		{"USD", 40},
		{"EUR", 45},
		{"CNY", 5.5},
		{"PLN", 10},
		{"UAH", 1},
		{"GBP", 1},
	}

	for _, tt := range tests {
		t.Run(tt.currency, func(t *testing.T) {
			assert.Equal(t, tt.want, SettlementDivisor(tt.currency))
		})
	}
}

func TestVendorByID(t *testing.T) {
	v, ok := VendorByID(1)
	require.True(t, ok)
	assert.Equal(t, "ThermoTech USA Inc.", v.Name)

	_, ok = VendorByID(0)
	assert.False(t, ok)
	_, ok = VendorByID(len(Vendors) + 1)
	assert.False(t, ok)
}

func TestReferenceIntegrity(t *testing.T) {
	countries := make(map[string]bool)
	for _, c := range Countries {
		countries[c.Code] = true
	}
	currencies := make(map[string]bool)
	for _, c := range Currencies {
		currencies[c.Code] = true
	}

	for _, v := range Vendors {
		assert.True(t, countries[v.CountryCode], "vendor %s country %s", v.Name, v.CountryCode)
		assert.True(t, currencies[v.CurrencyCode], "vendor %s currency %s", v.Name, v.CurrencyCode)
	}
	for _, r := range InitialRates {
		assert.True(t, currencies[r.Pair.From], r.Pair.String())
		assert.Equal(t, BaseCurrency, r.Pair.To)
		assert.Positive(t, r.Rate)
	}

	skus := make(map[string]bool)
	for _, m := range HeaterModels {
		assert.False(t, skus[m.SKU], "duplicate sku %s", m.SKU)
		skus[m.SKU] = true
		assert.Less(t, m.PriceLow, m.PriceHigh, m.SKU)
	}
}
