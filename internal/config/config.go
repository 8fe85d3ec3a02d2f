package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/user/expose-extractor/internal/estimator"
)

// DefaultUserAgent is sent with every portal request. Both portals reject
// the stock Go client identifier.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// Config stores all configuration for the application.
type Config struct {
	ServerPort   string `mapstructure:"SERVER_PORT"`
	LogLevel     string `mapstructure:"LOG_LEVEL"`
	FetchTimeout int    `mapstructure:"FETCH_TIMEOUT"`
	FetchMode    string `mapstructure:"FETCH_MODE"`
	UserAgent    string `mapstructure:"USER_AGENT"`
	ProxyURLs    string `mapstructure:"PROXY_URLS"`
	CORSOrigins  string `mapstructure:"CORS_ORIGINS"`
	StaticDir    string `mapstructure:"STATIC_DIR"`

	RentPerSqm          float64 `mapstructure:"RENT_PER_SQM"`
	AnnualYield         float64 `mapstructure:"ANNUAL_YIELD"`
	TransactionCostRate float64 `mapstructure:"TRANSACTION_COST_RATE"`
	RenovationRate      float64 `mapstructure:"RENOVATION_RATE"`
	PropertyTaxRate     float64 `mapstructure:"PROPERTY_TAX_RATE"`
	ManagementCostRate  float64 `mapstructure:"MANAGEMENT_COST_RATE"`
}

// Load reads configuration from an optional .env file and environment variables.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()

	// A missing .env is fine, the environment alone is enough in production.
	_ = v.ReadInConfig()

	defaults := estimator.DefaultRates()
	v.SetDefault("SERVER_PORT", "3000")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("FETCH_TIMEOUT", 10) // in seconds
	v.SetDefault("FETCH_MODE", "http")
	v.SetDefault("USER_AGENT", DefaultUserAgent)
	v.SetDefault("PROXY_URLS", "")
	v.SetDefault("CORS_ORIGINS", "*")
	v.SetDefault("STATIC_DIR", "public")
	v.SetDefault("RENT_PER_SQM", defaults.RentPerSqm)
	v.SetDefault("ANNUAL_YIELD", defaults.AnnualYield)
	v.SetDefault("TRANSACTION_COST_RATE", defaults.TransactionCost)
	v.SetDefault("RENOVATION_RATE", defaults.Renovation)
	v.SetDefault("PROPERTY_TAX_RATE", defaults.PropertyTax)
	v.SetDefault("MANAGEMENT_COST_RATE", defaults.Management)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// FetchTimeoutDuration is the upper bound for a single portal fetch.
func (c *Config) FetchTimeoutDuration() time.Duration {
	if c.FetchTimeout <= 0 {
		return 10 * time.Second
	}
	return time.Duration(c.FetchTimeout) * time.Second
}

// Proxies returns the configured outbound proxies, empty entries removed.
func (c *Config) Proxies() []string {
	return splitList(c.ProxyURLs)
}

// AllowedOrigins returns the CORS origin list.
func (c *Config) AllowedOrigins() []string {
	origins := splitList(c.CORSOrigins)
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// Rates builds the estimator rates from the configured percentages.
func (c *Config) Rates() estimator.Rates {
	return estimator.Rates{
		RentPerSqm:      c.RentPerSqm,
		AnnualYield:     c.AnnualYield,
		TransactionCost: c.TransactionCostRate,
		Renovation:      c.RenovationRate,
		PropertyTax:     c.PropertyTaxRate,
		Management:      c.ManagementCostRate,
	}
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
