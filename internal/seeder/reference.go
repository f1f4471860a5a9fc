package seeder

import (
	"time"

	"github.com/Lumos-Labs-HQ/hotseed/internal/catalog"
	"github.com/Lumos-Labs-HQ/hotseed/internal/money"
	"github.com/Lumos-Labs-HQ/hotseed/internal/rates"
	"github.com/Lumos-Labs-HQ/hotseed/internal/sqlgen"
)

// GenerateListPrices draws one current price per heater model from its band.
func GenerateListPrices(g *DataGenerator, effective time.Time) []ListPrice {
	prices := make([]ListPrice, 0, len(catalog.HeaterModels))
	for _, m := range catalog.HeaterModels {
		prices = append(prices, ListPrice{
			SKU:           m.SKU,
			Price:         money.Amount(g.Uniform(m.PriceLow, m.PriceHigh)),
			EffectiveDate: effective,
			IsCurrent:     true,
		})
	}
	return prices
}

// EmitReference writes the static tables: countries, currencies, heater
// models, list prices, vendors and customers.
func EmitReference(s *sqlgen.Script, prices []ListPrice) {
	s.Comment("Countries")
	for _, c := range catalog.Countries {
		s.Insert("countries", []string{"country_code", "country_name"}, c.Code, c.Name)
	}
	s.Blank()

	s.Comment("Currencies")
	for _, c := range catalog.Currencies {
		s.Insert("currencies", []string{"currency_code", "currency_name", "symbol"}, c.Code, c.Name, c.Symbol)
	}
	s.Blank()

	s.Comment("Heater Models")
	for _, m := range catalog.HeaterModels {
		s.Insert("heater_models",
			[]string{"sku", "model_name", "manufacturer", "capacity_kw"},
			m.SKU, m.Name, m.Manufacturer, sqlgen.Raw(money.Round(m.CapacityKW, 1).StringFixed(1)),
		)
	}
	s.Blank()

	s.Comment("List Prices (current)")
	for _, p := range prices {
		s.Insert("list_prices",
			[]string{"sku", "list_price_uah", "effective_date", "is_current"},
			p.SKU, sqlgen.Raw(money.FormatAmount(p.Price)), p.EffectiveDate, p.IsCurrent,
		)
	}
	s.Blank()

	s.Comment("Vendors")
	for i, v := range catalog.Vendors {
		s.Insert("vendors",
			[]string{"vendor_id", "vendor_name", "country_code", "currency_code", "contact_info"},
			i+1, v.Name, v.CountryCode, v.CurrencyCode, v.Contact,
		)
	}
	s.Blank()

	s.Comment("Customers")
	for i, c := range catalog.Customers {
		s.Insert("customers",
			[]string{"customer_id", "company_name", "contact_person", "email", "phone"},
			i+1, c.Company, c.Contact, c.Email, c.Phone,
		)
	}
	s.Blank()
}

// EmitRates writes one exchange_rates row per pair per day.
func EmitRates(s *sqlgen.Script, series []rates.Series) {
	s.Comment("Exchange Rates (daily)")
	for _, ser := range series {
		for _, p := range ser.Points {
			s.Insert("exchange_rates",
				[]string{"from_currency", "to_currency", "rate_date", "exchange_rate"},
				ser.Pair.From, ser.Pair.To, p.Date, sqlgen.Raw(money.FormatRate(money.Rate(p.Rate))),
			)
		}
	}
	s.Blank()
}
