package seeder

import (
	"fmt"
	"time"

	"github.com/Lumos-Labs-HQ/hotseed/internal/catalog"
	"github.com/Lumos-Labs-HQ/hotseed/internal/config"
	"github.com/Lumos-Labs-HQ/hotseed/internal/rates"
	"github.com/Lumos-Labs-HQ/hotseed/internal/sqlgen"
	"github.com/fatih/color"
)

type Seeder struct {
	config    *config.Config
	generator *DataGenerator
	counters  Counters
	graph     *DependencyGraph
	start     time.Time
	end       time.Time
	days      int
	quiet     bool
}

// NewSeeder validates cfg and prepares a run driven by seed.
func NewSeeder(cfg *config.Config, seed int64) (*Seeder, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	start, err := cfg.Start()
	if err != nil {
		return nil, err
	}
	end, err := cfg.End()
	if err != nil {
		return nil, err
	}
	days, err := cfg.Days()
	if err != nil {
		return nil, err
	}

	return &Seeder{
		config:    cfg,
		generator: NewDataGenerator(seed),
		graph:     NewSchemaGraph(),
		start:     start,
		end:       end,
		days:      days,
	}, nil
}

// Quiet suppresses progress output.
func (s *Seeder) Quiet() *Seeder {
	s.quiet = true
	return s
}

func (s *Seeder) logf(c *color.Color, format string, args ...interface{}) {
	if s.quiet {
		return
	}
	c.Fprintf(color.Output, format+"\n", args...)
}

// Seed runs the four stages in order (reference data, rates, purchases,
// sales) and returns the assembled script. A Seeder is single-use.
func (s *Seeder) Seed() (*Result, error) {
	cyan := color.New(color.FgCyan)
	green := color.New(color.FgGreen)

	script := sqlgen.NewScript(s.config.GetDialect())
	script.Header("HotWind Seed Data")
	script.Header("Period: %s to %s", s.config.StartDate, s.config.EndDate)
	script.Header("Seed: %d", s.generator.Seed())
	script.Header("Dialect: %s", script.Dialect())

	s.logf(cyan, "🌱 Generating seed data for %s → %s (%d days, seed %d)",
		s.config.StartDate, s.config.EndDate, s.days, s.generator.Seed())

	prices := GenerateListPrices(s.generator, s.end)
	EmitReference(script, prices)
	s.logf(green, "  ✅ reference data: %d countries, %d currencies, %d models, %d vendors, %d customers",
		len(catalog.Countries), len(catalog.Currencies), len(catalog.HeaterModels),
		len(catalog.Vendors), len(catalog.Customers))

	series := rates.Generate(s.generator, catalog.InitialRates, s.start, s.days,
		s.config.Rates.Mu, s.config.Rates.Sigma)
	EmitRates(script, series)
	s.logf(green, "  ✅ exchange rates: %d pairs × %d days", len(series), s.days)

	orders := GeneratePurchases(s.generator, &s.counters, s.start, s.days, s.config.Purchases)
	EmitPurchases(script, orders)
	s.logf(green, "  ✅ purchases: %d orders, %d lots", s.counters.LastPO(), s.counters.LastLot())

	invoices := GenerateInvoices(s.generator, &s.counters, s.start, s.days,
		s.config.SalesStartOffset, s.config.Invoices)
	EmitInvoices(script, invoices)
	s.logf(green, "  ✅ sales: %d invoices, %d lines", s.counters.LastInvoice(), s.counters.LastInvoiceLine())

	script.Sequence("vendors", "vendor_id", len(catalog.Vendors))
	script.Sequence("customers", "customer_id", len(catalog.Customers))
	script.Sequence("purchase_orders", "po_id", s.counters.LastPO())
	script.Sequence("purchase_lots", "lot_id", s.counters.LastLot())
	script.Sequence("invoices", "invoice_id", s.counters.LastInvoice())
	script.Sequence("invoice_lines", "invoice_line_id", s.counters.LastInvoiceLine())

	if err := script.Err(); err != nil {
		return nil, fmt.Errorf("failed to build script: %w", err)
	}
	if err := s.graph.ValidateOrder(script.Tables()); err != nil {
		return nil, fmt.Errorf("insertion order check failed: %w", err)
	}

	return &Result{
		Seed:       s.generator.Seed(),
		Script:     script,
		ListPrices: prices,
		Rates:      series,
		Orders:     orders,
		Invoices:   invoices,
	}, nil
}
