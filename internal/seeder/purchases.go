package seeder

import (
	"fmt"
	"time"

	"github.com/Lumos-Labs-HQ/hotseed/internal/catalog"
	"github.com/Lumos-Labs-HQ/hotseed/internal/money"
	"github.com/Lumos-Labs-HQ/hotseed/internal/sqlgen"
)

const maxLotsPerOrder = 4

var purchaseQuantities = []int{5, 10, 15, 20, 25, 30, 40, 50}

// LotNumber renders the human-readable lot code, e.g. LOT-20240315-0042.
func LotNumber(date time.Time, lotID int) string {
	return fmt.Sprintf("LOT-%s-%04d", date.Format("20060102"), lotID)
}

// GeneratePurchases builds count purchase orders dated uniformly across the
// days-long range beginning at start. Unit prices are quoted in the vendor's currency through the
// static settlement divisor.
func GeneratePurchases(g *DataGenerator, c *Counters, start time.Time, days, count int) []PurchaseOrder {
	dates := g.SortedDates(start, 0, days-1, count)
	orders := make([]PurchaseOrder, 0, count)

	for _, date := range dates {
		vendorID := g.IntBetween(1, len(catalog.Vendors))
		vendor, _ := catalog.VendorByID(vendorID)
		divisor := catalog.SettlementDivisor(vendor.CurrencyCode)

		po := PurchaseOrder{
			ID:       c.NextPO(),
			VendorID: vendorID,
			Currency: vendor.CurrencyCode,
			Date:     date,
		}

		n := g.IntBetween(1, maxLotsPerOrder)
		for _, idx := range g.Sample(len(catalog.HeaterModels), n) {
			model := catalog.HeaterModels[idx]
			unit := money.Amount(g.Uniform(model.PriceLow, model.PriceHigh) / divisor)
			qty := g.Choice(purchaseQuantities)
			lotID := c.NextLot()

			po.Lots = append(po.Lots, PurchaseLot{
				ID:                lotID,
				POID:              po.ID,
				SKU:               model.SKU,
				LotNumber:         LotNumber(date, lotID),
				QuantityPurchased: qty,
				QuantityRemaining: qty,
				UnitPrice:         unit,
				PurchaseDate:      date,
			})
		}

		po.Total = LotsTotal(po.Lots)
		orders = append(orders, po)
	}

	return orders
}

// EmitPurchases writes each order followed by its lots.
func EmitPurchases(s *sqlgen.Script, orders []PurchaseOrder) {
	s.Comment("Purchase Orders and Lots")
	for _, po := range orders {
		s.Comment("PO #%d on %s", po.ID, po.Date.Format("2006-01-02"))
		s.Insert("purchase_orders",
			[]string{"po_id", "vendor_id", "po_date", "total_amount"},
			po.ID, po.VendorID, po.Date, sqlgen.Raw(money.FormatAmount(po.Total)),
		)
		for _, lot := range po.Lots {
			s.Insert("purchase_lots",
				[]string{"lot_id", "po_id", "sku", "lot_number", "quantity_purchased",
					"quantity_remaining", "unit_price_original", "purchase_date"},
				lot.ID, lot.POID, lot.SKU, lot.LotNumber, lot.QuantityPurchased,
				lot.QuantityRemaining, sqlgen.Raw(money.FormatAmount(lot.UnitPrice)), lot.PurchaseDate,
			)
		}
		s.Blank()
	}
}
