package config

import (
	"fmt"
	"os"
	"reflect"
	"strings"
	"time"

	"github.com/Lumos-Labs-HQ/hotseed/internal/rates"
	"github.com/Lumos-Labs-HQ/hotseed/internal/sqlgen"
	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

const (
	DateLayout = "2006-01-02"

	DefaultStartDate        = "2024-01-01"
	DefaultEndDate          = "2024-12-31"
	DefaultPurchases        = 80
	DefaultInvoices         = 300
	DefaultSalesStartOffset = 7
	DefaultURLEnv           = "DATABASE_URL"

	EnvPrefix = "HOTSEED"
)

type Config struct {
	StartDate        string   `json:"start_date" yaml:"start_date" mapstructure:"start_date"`
	EndDate          string   `json:"end_date" yaml:"end_date" mapstructure:"end_date"`
	Seed             int64    `json:"seed" yaml:"seed" mapstructure:"seed"` // 0 = derive from the clock
	Dialect          string   `json:"dialect" yaml:"dialect" mapstructure:"dialect"`
	Purchases        int      `json:"purchases" yaml:"purchases" mapstructure:"purchases"`
	Invoices         int      `json:"invoices" yaml:"invoices" mapstructure:"invoices"`
	SalesStartOffset int      `json:"sales_start_offset" yaml:"sales_start_offset" mapstructure:"sales_start_offset"`
	Output           string   `json:"output,omitempty" yaml:"output,omitempty" mapstructure:"output"`
	Rates            Rates    `json:"rates" yaml:"rates" mapstructure:"rates"`
	Database         Database `json:"database" yaml:"database" mapstructure:"database"`
}

// Rates parameterizes the geometric Brownian motion.
type Rates struct {
	Mu    float64 `json:"mu" yaml:"mu" mapstructure:"mu"`
	Sigma float64 `json:"sigma" yaml:"sigma" mapstructure:"sigma"`
}

type Database struct {
	URLEnv string `json:"url_env" yaml:"url_env" mapstructure:"url_env"`
}

// Default returns the configuration used when nothing overrides it.
func Default() *Config {
	return &Config{
		StartDate:        DefaultStartDate,
		EndDate:          DefaultEndDate,
		Dialect:          string(sqlgen.Postgres),
		Purchases:        DefaultPurchases,
		Invoices:         DefaultInvoices,
		SalesStartOffset: DefaultSalesStartOffset,
		Rates:            Rates{Mu: rates.DefaultMu, Sigma: rates.DefaultSigma},
		Database:         Database{URLEnv: DefaultURLEnv},
	}
}

// SetDefaults registers every key so env vars and flags are seen by Unmarshal.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("start_date", d.StartDate)
	v.SetDefault("end_date", d.EndDate)
	v.SetDefault("seed", d.Seed)
	v.SetDefault("dialect", d.Dialect)
	v.SetDefault("purchases", d.Purchases)
	v.SetDefault("invoices", d.Invoices)
	v.SetDefault("sales_start_offset", d.SalesStartOffset)
	v.SetDefault("output", d.Output)
	v.SetDefault("rates.mu", d.Rates.Mu)
	v.SetDefault("rates.sigma", d.Rates.Sigma)
	v.SetDefault("database.url_env", d.Database.URLEnv)
}

// Load reads the global viper instance populated by the root command.
func Load() (*Config, error) {
	return LoadFrom(viper.GetViper())
}

func LoadFrom(v *viper.Viper) (*Config, error) {
	SetDefaults(v)

	var cfg Config
	hook := viper.DecodeHook(mapstructure.DecodeHookFuncType(timeToDateHook))
	if err := v.Unmarshal(&cfg, hook); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.StartDate = strings.TrimSpace(cfg.StartDate)
	cfg.EndDate = strings.TrimSpace(cfg.EndDate)
	if cfg.StartDate == "" {
		cfg.StartDate = DefaultStartDate
	}
	if cfg.EndDate == "" {
		cfg.EndDate = DefaultEndDate
	}
	if cfg.Dialect == "" {
		cfg.Dialect = string(sqlgen.Postgres)
	}
	if cfg.Database.URLEnv == "" {
		cfg.Database.URLEnv = DefaultURLEnv
	}

	return &cfg, nil
}

// YAML parsers hand back unquoted dates as time.Time.
func timeToDateHook(from, to reflect.Type, data interface{}) (interface{}, error) {
	if to.Kind() != reflect.String {
		return data, nil
	}
	if t, ok := data.(time.Time); ok {
		return t.Format(DateLayout), nil
	}
	return data, nil
}

func (c *Config) Validate() error {
	if _, err := sqlgen.ParseDialect(c.Dialect); err != nil {
		return err
	}

	start, err := c.Start()
	if err != nil {
		return err
	}
	end, err := c.End()
	if err != nil {
		return err
	}
	if end.Before(start) {
		return fmt.Errorf("end_date %s is before start_date %s", c.EndDate, c.StartDate)
	}

	if c.Purchases < 0 {
		return fmt.Errorf("purchases cannot be negative: %d", c.Purchases)
	}
	if c.Invoices < 0 {
		return fmt.Errorf("invoices cannot be negative: %d", c.Invoices)
	}
	if c.SalesStartOffset < 0 {
		return fmt.Errorf("sales_start_offset cannot be negative: %d", c.SalesStartOffset)
	}
	if c.Rates.Sigma < 0 {
		return fmt.Errorf("rates.sigma cannot be negative: %v", c.Rates.Sigma)
	}

	return nil
}

func (c *Config) Start() (time.Time, error) {
	t, err := time.Parse(DateLayout, c.StartDate)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid start_date %q (want YYYY-MM-DD): %w", c.StartDate, err)
	}
	return t, nil
}

func (c *Config) End() (time.Time, error) {
	t, err := time.Parse(DateLayout, c.EndDate)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid end_date %q (want YYYY-MM-DD): %w", c.EndDate, err)
	}
	return t, nil
}

// Days is the inclusive number of calendar days in the range.
func (c *Config) Days() (int, error) {
	start, err := c.Start()
	if err != nil {
		return 0, err
	}
	end, err := c.End()
	if err != nil {
		return 0, err
	}
	return int(end.Sub(start).Hours()/24) + 1, nil
}

func (c *Config) GetDialect() sqlgen.Dialect {
	d, err := sqlgen.ParseDialect(c.Dialect)
	if err != nil {
		return sqlgen.Postgres
	}
	return d
}

func (c *Config) GetDatabaseURL() (string, error) {
	dbURL := os.Getenv(c.Database.URLEnv)
	if dbURL == "" {
		return "", fmt.Errorf("database URL not found in environment variable %s", c.Database.URLEnv)
	}
	return dbURL, nil
}
