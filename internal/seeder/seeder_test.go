package seeder

import (
	"bytes"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/Lumos-Labs-HQ/hotseed/internal/catalog"
	"github.com/Lumos-Labs-HQ/hotseed/internal/config"
	"github.com/Lumos-Labs-HQ/hotseed/internal/money"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runSeed(t *testing.T, cfg *config.Config, seed int64) *Result {
	t.Helper()
	s, err := NewSeeder(cfg, seed)
	require.NoError(t, err)
	res, err := s.Quiet().Seed()
	require.NoError(t, err)
	return res
}

func render(t *testing.T, res *Result) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, res.Script.Render(&buf))
	return buf.String()
}

func TestSeed_DeterministicForSeed(t *testing.T) {
	a := render(t, runSeed(t, config.Default(), 20240101))
	b := render(t, runSeed(t, config.Default(), 20240101))
	c := render(t, runSeed(t, config.Default(), 20240102))

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestSeed_Counts(t *testing.T) {
	res := runSeed(t, config.Default(), 1)

	assert.Len(t, res.Orders, config.DefaultPurchases)
	assert.Len(t, res.Invoices, config.DefaultInvoices)
	assert.Equal(t, len(catalog.InitialRates)*366, res.Script.Count("exchange_rates"))
	assert.Equal(t, len(catalog.HeaterModels), res.Script.Count("list_prices"))
	assert.Equal(t, len(catalog.Vendors), res.Script.Count("vendors"))
	assert.Equal(t, len(catalog.Customers), res.Script.Count("customers"))
	assert.Equal(t, config.DefaultPurchases, res.Script.Count("purchase_orders"))
	assert.Equal(t, config.DefaultInvoices, res.Script.Count("invoices"))
}

func TestSeed_EmissionOrder(t *testing.T) {
	res := runSeed(t, config.Default(), 1)

	assert.Equal(t, []string{
		"countries", "currencies", "heater_models", "list_prices", "vendors", "customers",
		"exchange_rates", "purchase_orders", "purchase_lots", "invoices", "invoice_lines",
	}, res.Script.Tables())
}

func TestSeed_RatesStartAtInitial(t *testing.T) {
	res := runSeed(t, config.Default(), 5)

	require.Len(t, res.Rates, len(catalog.InitialRates))
	for i, series := range res.Rates {
		assert.Equal(t, catalog.InitialRates[i].Rate, series.Points[0].Rate)
		assert.Equal(t, "2024-01-01", series.Points[0].Date.Format(config.DateLayout))
		assert.Equal(t, "2024-12-31", series.Points[len(series.Points)-1].Date.Format(config.DateLayout))
		for _, p := range series.Points {
			assert.Greater(t, p.Rate, 0.0)
		}
	}
}

func TestSeed_PurchaseInvariants(t *testing.T) {
	cfg := config.Default()
	res := runSeed(t, cfg, 77)
	start, _ := cfg.Start()
	end, _ := cfg.End()

	lastPO, lastLot := 0, 0
	var prev time.Time
	for _, po := range res.Orders {
		assert.Equal(t, lastPO+1, po.ID)
		lastPO = po.ID

		assert.False(t, po.Date.Before(prev), "dates sorted")
		prev = po.Date
		assert.False(t, po.Date.Before(start) || po.Date.After(end))

		vendor, ok := catalog.VendorByID(po.VendorID)
		require.True(t, ok)
		assert.Equal(t, vendor.CurrencyCode, po.Currency)

		require.NotEmpty(t, po.Lots)
		assert.LessOrEqual(t, len(po.Lots), maxLotsPerOrder)

		skus := make(map[string]bool)
		sum := decimal.Zero
		for _, lot := range po.Lots {
			assert.Equal(t, lastLot+1, lot.ID)
			lastLot = lot.ID

			assert.Equal(t, po.ID, lot.POID)
			assert.Equal(t, lot.QuantityPurchased, lot.QuantityRemaining)
			assert.Contains(t, purchaseQuantities, lot.QuantityPurchased)
			assert.Equal(t, LotNumber(po.Date, lot.ID), lot.LotNumber)
			assert.False(t, skus[lot.SKU], "sku repeated within an order")
			skus[lot.SKU] = true
			assert.True(t, lot.UnitPrice.Equal(lot.UnitPrice.Round(2)))

			sum = sum.Add(lot.UnitPrice.Mul(decimal.NewFromInt(int64(lot.QuantityPurchased))))
		}
		assert.True(t, sum.Round(2).Equal(po.Total), "po %d total %s != %s", po.ID, po.Total, sum)
	}
}

func TestSeed_PurchasePricesUseSettlementDivisor(t *testing.T) {
	res := runSeed(t, config.Default(), 13)
	bands := make(map[string]catalog.HeaterModel)
	for _, m := range catalog.HeaterModels {
		bands[m.SKU] = m
	}

	for _, po := range res.Orders {
		div := catalog.SettlementDivisor(po.Currency)
		for _, lot := range po.Lots {
			m := bands[lot.SKU]
			price := lot.UnitPrice.InexactFloat64()
			assert.GreaterOrEqual(t, price, m.PriceLow/div-0.005, lot.SKU)
			assert.LessOrEqual(t, price, m.PriceHigh/div+0.005, lot.SKU)
		}
	}
}

func TestSeed_SalesInvariants(t *testing.T) {
	cfg := config.Default()
	res := runSeed(t, cfg, 99)
	start, _ := cfg.Start()
	firstSaleDay := start.AddDate(0, 0, cfg.SalesStartOffset)
	bands := make(map[string]catalog.HeaterModel)
	for _, m := range catalog.HeaterModels {
		bands[m.SKU] = m
	}

	lastInvoice, lastLine := 0, 0
	var prev time.Time
	for _, inv := range res.Invoices {
		assert.Equal(t, lastInvoice+1, inv.ID)
		lastInvoice = inv.ID
		assert.False(t, inv.Date.Before(firstSaleDay), "no sales in the first week")
		assert.False(t, inv.Date.Before(prev))
		prev = inv.Date
		assert.GreaterOrEqual(t, inv.CustomerID, 1)
		assert.LessOrEqual(t, inv.CustomerID, len(catalog.Customers))

		require.NotEmpty(t, inv.Lines)
		assert.LessOrEqual(t, len(inv.Lines), maxLinesPerInvoice)

		sum := decimal.Zero
		for _, line := range inv.Lines {
			assert.Equal(t, lastLine+1, line.ID)
			lastLine = line.ID
			assert.Equal(t, inv.ID, line.InvoiceID)
			assert.Contains(t, saleQuantities, line.Quantity)

			m := bands[line.SKU]
			price := line.UnitPrice.InexactFloat64()
			assert.GreaterOrEqual(t, price, m.PriceLow*priceVariationLow-0.01)
			assert.LessOrEqual(t, price, m.PriceHigh*priceVariationHigh+0.01)

			sum = sum.Add(money.Extend(line.UnitPrice, line.Quantity))
		}
		assert.True(t, sum.Round(2).Equal(inv.Total))
	}
}

func TestSeed_SequencesReflectLastIDs(t *testing.T) {
	res := runSeed(t, config.Default(), 3)
	out := render(t, res)

	lastLot := res.Orders[len(res.Orders)-1].Lots
	lastInv := res.Invoices[len(res.Invoices)-1]

	assert.Contains(t, out, "SELECT setval('vendors_vendor_id_seq', 4);")
	assert.Contains(t, out, "SELECT setval('customers_customer_id_seq', 15);")
	assert.Contains(t, out, "SELECT setval('purchase_orders_po_id_seq', 80);")
	assert.Contains(t, out, "SELECT setval('purchase_lots_lot_id_seq', "+strconv.Itoa(lastLot[len(lastLot)-1].ID)+");")
	assert.Contains(t, out, "SELECT setval('invoices_invoice_id_seq', 300);")
	assert.Contains(t, out, "SELECT setval('invoice_lines_invoice_line_id_seq', "+strconv.Itoa(lastInv.Lines[len(lastInv.Lines)-1].ID)+");")

	commit := strings.Index(out, "COMMIT;")
	assert.Less(t, strings.Index(out, "BEGIN;"), strings.Index(out, "INSERT INTO countries"))
	assert.Less(t, strings.LastIndex(out, "setval("), commit)
	assert.Less(t, commit, strings.Index(out, "ANALYZE;"))
}

func TestSeed_RenderedRows(t *testing.T) {
	out := render(t, runSeed(t, config.Default(), 3))

	assert.Contains(t, out, "INSERT INTO vendors (vendor_id,vendor_name,country_code,currency_code,contact_info) VALUES (1,'ThermoTech USA Inc.','US','USD','contact@thermotech-usa.com');")
	assert.Contains(t, out, "INSERT INTO heater_models (sku,model_name,manufacturer,capacity_kw) VALUES ('BOSCH-IH-5000','Bosch Industrial Heater 5000','Bosch',50.0);")
	assert.Contains(t, out, "VALUES ('USD','UAH','2024-01-01',38.500000);")
	assert.Contains(t, out, ",'2024-12-31',true);")
	assert.Contains(t, out, "-- Seed: 3")
	assert.Contains(t, out, "-- PO #1 on ")
}

func TestSeed_ZeroCounts(t *testing.T) {
	cfg := config.Default()
	cfg.Purchases = 0
	cfg.Invoices = 0

	res := runSeed(t, cfg, 1)
	out := render(t, res)

	assert.Empty(t, res.Orders)
	assert.Empty(t, res.Invoices)
	assert.Contains(t, out, "SELECT setval('purchase_orders_po_id_seq', 1, false);")
	assert.Contains(t, out, "SELECT setval('invoice_lines_invoice_line_id_seq', 1, false);")
}

func TestSeed_ShortRangeClampsSalesOffset(t *testing.T) {
	cfg := config.Default()
	cfg.EndDate = "2024-01-03"
	cfg.Invoices = 20

	res := runSeed(t, cfg, 8)
	for _, inv := range res.Invoices {
		assert.Equal(t, "2024-01-03", inv.Date.Format(config.DateLayout))
	}
	assert.Equal(t, len(catalog.InitialRates)*3, res.Script.Count("exchange_rates"))
}

func TestSeed_DialectFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Dialect = "mysql"

	out := render(t, runSeed(t, cfg, 1))

	assert.True(t, strings.Contains(out, "START TRANSACTION;"))
	assert.Contains(t, out, "ALTER TABLE purchase_orders AUTO_INCREMENT = 81;")
	assert.NotContains(t, out, "setval(")
}

func TestNewSeeder_InvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.EndDate = "2023-01-01"

	_, err := NewSeeder(cfg, 1)
	assert.ErrorContains(t, err, "invalid config")
}

func TestLotsTotal_Example(t *testing.T) {
	lots := []PurchaseLot{
		{UnitPrice: decimal.RequireFromString("100.00"), QuantityPurchased: 10},
		{UnitPrice: decimal.RequireFromString("250.50"), QuantityPurchased: 5},
	}

	assert.Equal(t, "2252.50", money.FormatAmount(LotsTotal(lots)))
}

func TestLinesTotal(t *testing.T) {
	lines := []InvoiceLine{
		{UnitPrice: decimal.RequireFromString("19999.99"), Quantity: 3},
		{UnitPrice: decimal.RequireFromString("0.01"), Quantity: 1},
	}

	assert.Equal(t, "59999.98", money.FormatAmount(LinesTotal(lines)))

	carry := []InvoiceLine{
		{UnitPrice: decimal.RequireFromString("19999.99"), Quantity: 3},
		{UnitPrice: decimal.RequireFromString("0.03"), Quantity: 1},
	}
	assert.Equal(t, "60000.00", money.FormatAmount(LinesTotal(carry)))
	assert.Equal(t, "0.00", money.FormatAmount(LinesTotal(nil)))
}

func TestLotNumber(t *testing.T) {
	date := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "LOT-20240305-0042", LotNumber(date, 42))
	assert.Equal(t, "LOT-20240305-12345", LotNumber(date, 12345))
}
