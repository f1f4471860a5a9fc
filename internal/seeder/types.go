package seeder

import (
	"time"

	"github.com/Lumos-Labs-HQ/hotseed/internal/money"
	"github.com/Lumos-Labs-HQ/hotseed/internal/rates"
	"github.com/Lumos-Labs-HQ/hotseed/internal/sqlgen"
	"github.com/shopspring/decimal"
)

type ListPrice struct {
	SKU           string
	Price         decimal.Decimal
	EffectiveDate time.Time
	IsCurrent     bool
}

type PurchaseOrder struct {
	ID       int
	VendorID int
	Currency string
	Date     time.Time
	Total    decimal.Decimal
	Lots     []PurchaseLot
}

// PurchaseLot is one purchased batch of a SKU. UnitPrice is in the vendor's
// settlement currency.
type PurchaseLot struct {
	ID                int
	POID              int
	SKU               string
	LotNumber         string
	QuantityPurchased int
	QuantityRemaining int
	UnitPrice         decimal.Decimal
	PurchaseDate      time.Time
}

type Invoice struct {
	ID         int
	CustomerID int
	Date       time.Time
	Total      decimal.Decimal
	Lines      []InvoiceLine
}

// InvoiceLine prices are in the base currency.
type InvoiceLine struct {
	ID        int
	InvoiceID int
	SKU       string
	Quantity  int
	UnitPrice decimal.Decimal
}

// LotsTotal is the rounded sum of unit price times quantity.
func LotsTotal(lots []PurchaseLot) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lots {
		total = total.Add(money.Extend(l.UnitPrice, l.QuantityPurchased))
	}
	return total.Round(money.MoneyPlaces)
}

func LinesTotal(lines []InvoiceLine) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(money.Extend(l.UnitPrice, l.Quantity))
	}
	return total.Round(money.MoneyPlaces)
}

// Counters hands out table identifiers. Each starts at 1 and is never reused
// within a run.
type Counters struct {
	po          int
	lot         int
	invoice     int
	invoiceLine int
}

func (c *Counters) NextPO() int {
	c.po++
	return c.po
}

func (c *Counters) NextLot() int {
	c.lot++
	return c.lot
}

func (c *Counters) NextInvoice() int {
	c.invoice++
	return c.invoice
}

func (c *Counters) NextInvoiceLine() int {
	c.invoiceLine++
	return c.invoiceLine
}

func (c *Counters) LastPO() int          { return c.po }
func (c *Counters) LastLot() int         { return c.lot }
func (c *Counters) LastInvoice() int     { return c.invoice }
func (c *Counters) LastInvoiceLine() int { return c.invoiceLine }

// Result is everything a run produced.
type Result struct {
	Seed       int64
	Script     *sqlgen.Script
	ListPrices []ListPrice
	Rates      []rates.Series
	Orders     []PurchaseOrder
	Invoices   []Invoice
}
