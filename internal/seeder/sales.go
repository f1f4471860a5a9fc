package seeder

import (
	"time"

	"github.com/Lumos-Labs-HQ/hotseed/internal/catalog"
	"github.com/Lumos-Labs-HQ/hotseed/internal/money"
	"github.com/Lumos-Labs-HQ/hotseed/internal/sqlgen"
)

const (
	maxLinesPerInvoice = 3

	priceVariationLow  = 0.95
	priceVariationHigh = 1.05
)

var saleQuantities = []int{1, 2, 3, 5, 8, 10}

// GenerateInvoices builds count invoices dated from day offset through the
// last day of the range. An offset past the range is clamped to its last day.
func GenerateInvoices(g *DataGenerator, c *Counters, start time.Time, days, offset, count int) []Invoice {
	if offset > days-1 {
		offset = days - 1
	}
	dates := g.SortedDates(start, offset, days-1, count)
	invoices := make([]Invoice, 0, count)

	for _, date := range dates {
		inv := Invoice{
			ID:         c.NextInvoice(),
			CustomerID: g.IntBetween(1, len(catalog.Customers)),
			Date:       date,
		}

		n := g.IntBetween(1, maxLinesPerInvoice)
		for _, idx := range g.Sample(len(catalog.HeaterModels), n) {
			model := catalog.HeaterModels[idx]
			base := money.Amount(g.Uniform(model.PriceLow, model.PriceHigh))
			multiplier := g.Uniform(priceVariationLow, priceVariationHigh)
			unit := money.Amount(base.InexactFloat64() * multiplier)
			qty := g.Choice(saleQuantities)

			inv.Lines = append(inv.Lines, InvoiceLine{
				ID:        c.NextInvoiceLine(),
				InvoiceID: inv.ID,
				SKU:       model.SKU,
				Quantity:  qty,
				UnitPrice: unit,
			})
		}

		inv.Total = LinesTotal(inv.Lines)
		invoices = append(invoices, inv)
	}

	return invoices
}

// EmitInvoices writes each invoice followed by its lines.
func EmitInvoices(s *sqlgen.Script, invoices []Invoice) {
	s.Comment("Sales Invoices and Lines")
	for _, inv := range invoices {
		s.Insert("invoices",
			[]string{"invoice_id", "customer_id", "invoice_date", "total_amount"},
			inv.ID, inv.CustomerID, inv.Date, sqlgen.Raw(money.FormatAmount(inv.Total)),
		)
		for _, line := range inv.Lines {
			s.Insert("invoice_lines",
				[]string{"invoice_line_id", "invoice_id", "sku", "quantity_sold", "unit_price_uah"},
				line.ID, line.InvoiceID, line.SKU, line.Quantity, sqlgen.Raw(money.FormatAmount(line.UnitPrice)),
			)
		}

		// spacing for readability
		if inv.ID%20 == 0 {
			s.Blank()
		}
	}
	s.Blank()
}
