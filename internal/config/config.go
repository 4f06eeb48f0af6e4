package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	App     AppConfig
	Server  ServerConfig
	Dynamo  DynamoConfig
	Mail    MailConfig
	Pricing PricingConfig
}

// AppConfig holds application-level settings.
type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Debug       bool
	LogLevel    string
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host string
	Port int
}

// Addr returns the host:port listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// DynamoConfig holds DynamoDB connection and table settings.
type DynamoConfig struct {
	Region             string
	Endpoint           string // optional, e.g. http://dynamodb:8000 for local
	LeadsTable         string
	QuotesTable        string
	EventsTable        string
	PackagesTable      string
	AddOnsTable        string
	ItineraryDaysTable string
}

// MailConfig holds quote email delivery settings.
type MailConfig struct {
	Region   string
	Sender   string
	MockMode bool
}

// PricingConfig holds the tunable parameters of the pricing engine.
//
// SeasonalCalendar maps calendar months (1-12) to the fallback seasonal rate
// applied when an event carries no season months of its own. Deployments can
// override the calendar without a code change.
type PricingConfig struct {
	SeasonalCalendar  map[int]float64
	QuoteValidityDays int
}

// Load reads configuration from an optional .env file plus environment
// variables, with sensible local-development defaults.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigFile(".env")
	v.SetConfigType("env")
	_ = v.ReadInConfig() // .env is optional; env vars still apply

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	cfg := &Config{
		App: AppConfig{
			Name:        v.GetString("APP_NAME"),
			Environment: v.GetString("APP_ENV"),
			Debug:       v.GetBool("APP_DEBUG"),
			LogLevel:    v.GetString("LOG_LEVEL"),
		},
		Server: ServerConfig{
			Host: v.GetString("SERVER_HOST"),
			Port: v.GetInt("SERVER_PORT"),
		},
		Dynamo: DynamoConfig{
			Region:             v.GetString("AWS_REGION"),
			Endpoint:           v.GetString("DYNAMODB_ENDPOINT"),
			LeadsTable:         v.GetString("LEADS_TABLE"),
			QuotesTable:        v.GetString("QUOTES_TABLE"),
			EventsTable:        v.GetString("EVENTS_TABLE"),
			PackagesTable:      v.GetString("PACKAGES_TABLE"),
			AddOnsTable:        v.GetString("ADDONS_TABLE"),
			ItineraryDaysTable: v.GetString("ITINERARY_DAYS_TABLE"),
		},
		Mail: MailConfig{
			Region:   v.GetString("MAIL_REGION"),
			Sender:   v.GetString("MAIL_SENDER"),
			MockMode: v.GetBool("MAIL_MOCK"),
		},
		Pricing: PricingConfig{
			SeasonalCalendar:  parseSeasonalCalendar(v.GetString("PRICING_SEASONAL_CALENDAR")),
			QuoteValidityDays: v.GetInt("QUOTE_VALIDITY_DAYS"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_NAME", "fanvoyage")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("APP_DEBUG", true)
	v.SetDefault("LOG_LEVEL", "info")

	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", 8080)

	v.SetDefault("AWS_REGION", "us-east-1")
	v.SetDefault("LEADS_TABLE", "leads")
	v.SetDefault("QUOTES_TABLE", "quotes")
	v.SetDefault("EVENTS_TABLE", "events")
	v.SetDefault("PACKAGES_TABLE", "packages")
	v.SetDefault("ADDONS_TABLE", "addons")
	v.SetDefault("ITINERARY_DAYS_TABLE", "itinerary_days")

	v.SetDefault("MAIL_REGION", v.GetString("AWS_REGION"))
	v.SetDefault("MAIL_SENDER", "quotes@fanvoyage.example")
	v.SetDefault("MAIL_MOCK", true)

	// High season Jun/Jul/Dec, shoulder season Apr/May/Sep.
	v.SetDefault("PRICING_SEASONAL_CALENDAR", "6:0.20,7:0.20,12:0.20,4:0.10,5:0.10,9:0.10")
	v.SetDefault("QUOTE_VALIDITY_DAYS", 30)
}

func (c *Config) validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}
	if c.Pricing.QuoteValidityDays <= 0 {
		return fmt.Errorf("invalid quote validity days %d", c.Pricing.QuoteValidityDays)
	}
	for m := range c.Pricing.SeasonalCalendar {
		if m < 1 || m > 12 {
			return fmt.Errorf("invalid seasonal calendar month %d", m)
		}
	}
	return nil
}

// parseSeasonalCalendar parses "month:rate" pairs, e.g. "6:0.20,7:0.20".
// Malformed pairs are skipped.
func parseSeasonalCalendar(raw string) map[int]float64 {
	out := make(map[int]float64)
	for _, pair := range strings.Split(raw, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		var month int
		var rate float64
		if _, err := fmt.Sscanf(pair, "%d:%f", &month, &rate); err != nil {
			continue
		}
		out[month] = rate
	}
	return out
}

// SeasonalCalendarByMonth converts the config calendar to time.Month keys.
func (p PricingConfig) SeasonalCalendarByMonth() map[time.Month]float64 {
	out := make(map[time.Month]float64, len(p.SeasonalCalendar))
	for m, rate := range p.SeasonalCalendar {
		out[time.Month(m)] = rate
	}
	return out
}
