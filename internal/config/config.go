package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment is the deployment environment the process runs in.
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvProduction  Environment = "production"
	EnvTest        Environment = "test"
)

// Quote sources for live mode.
const (
	QuoteSourceAlphaVantage = "alphavantage"
	QuoteSourceYahoo        = "yahoo"
)

// Auth modes.
const (
	AuthModeMock     = "mock"
	AuthModeSupabase = "supabase"
)

// Config holds all application configuration. It is resolved once at startup
// and passed into the services that need it.
type Config struct {
	Environment Environment `yaml:"environment"`
	MockMode    bool        `yaml:"mock_mode"`
	// MockLatency simulates the delay of a real forecast call in mock mode.
	MockLatency time.Duration `yaml:"mock_latency"`

	Server struct {
		Port string `yaml:"port"`
	} `yaml:"server"`

	Database struct {
		Driver     string `yaml:"driver"`
		SQLitePath string `yaml:"sqlite_path"`
		Host       string `yaml:"host"`
		Port       string `yaml:"port"`
		User       string `yaml:"user"`
		Password   string `yaml:"password"`
		Name       string `yaml:"name"`
		SSLMode    string `yaml:"ssl_mode"`
	} `yaml:"database"`

	OpenAI struct {
		APIKey  string        `yaml:"api_key"`
		BaseURL string        `yaml:"base_url"`
		Model   string        `yaml:"model"`
		Timeout time.Duration `yaml:"timeout"`
	} `yaml:"openai"`

	Quotes struct {
		Source          string        `yaml:"source"`
		AlphaVantageKey string        `yaml:"alpha_vantage_key"`
		AlphaVantageURL string        `yaml:"alpha_vantage_url"`
		YahooURL        string        `yaml:"yahoo_url"`
		Timeout         time.Duration `yaml:"timeout"`
	} `yaml:"quotes"`

	Auth struct {
		Mode            string `yaml:"mode"`
		SupabaseURL     string `yaml:"supabase_url"`
		SupabaseAnonKey string `yaml:"supabase_anon_key"`
	} `yaml:"auth"`

	LogEnv string `yaml:"log_env"`
}

// Load reads an optional .env file and an optional YAML file, then applies
// environment variable overrides and defaults.
func Load(path string) (*Config, error) {
	// Load environment variables from .env file
	_ = godotenv.Load()

	cfg := &Config{}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if len(data) > 0 {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config: %w", err)
			}
		}
	}

	if err := cfg.loadFromEnv(); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) loadFromEnv() error {
	if v := os.Getenv("APP_ENV"); v != "" {
		c.Environment = Environment(strings.ToLower(v))
	}
	if v := os.Getenv("MOCK_MODE"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("MOCK_MODE: %w", err)
		}
		c.MockMode = b
	}
	if err := durationEnv("MOCK_LATENCY", &c.MockLatency); err != nil {
		return err
	}
	if v := os.Getenv("SERVER_PORT"); v != "" {
		c.Server.Port = v
	}

	stringEnv("DB_DRIVER", &c.Database.Driver)
	stringEnv("SQLITE_PATH", &c.Database.SQLitePath)
	stringEnv("DB_HOST", &c.Database.Host)
	stringEnv("DB_PORT", &c.Database.Port)
	stringEnv("DB_USER", &c.Database.User)
	stringEnv("DB_PASSWORD", &c.Database.Password)
	stringEnv("DB_NAME", &c.Database.Name)
	stringEnv("DB_SSL_MODE", &c.Database.SSLMode)

	stringEnv("OPENAI_API_KEY", &c.OpenAI.APIKey)
	stringEnv("OPENAI_BASE_URL", &c.OpenAI.BaseURL)
	stringEnv("OPENAI_MODEL", &c.OpenAI.Model)
	if err := durationEnv("OPENAI_TIMEOUT", &c.OpenAI.Timeout); err != nil {
		return err
	}

	stringEnv("QUOTE_SOURCE", &c.Quotes.Source)
	stringEnv("ALPHA_VANTAGE_API_KEY", &c.Quotes.AlphaVantageKey)
	stringEnv("ALPHA_VANTAGE_BASE_URL", &c.Quotes.AlphaVantageURL)
	stringEnv("YAHOO_BASE_URL", &c.Quotes.YahooURL)
	if err := durationEnv("QUOTE_TIMEOUT", &c.Quotes.Timeout); err != nil {
		return err
	}

	stringEnv("AUTH_MODE", &c.Auth.Mode)
	stringEnv("SUPABASE_URL", &c.Auth.SupabaseURL)
	stringEnv("SUPABASE_ANON_KEY", &c.Auth.SupabaseAnonKey)

	stringEnv("LOG_ENV", &c.LogEnv)
	return nil
}

func (c *Config) applyDefaults() {
	if c.Environment == "" {
		c.Environment = EnvProduction
	}
	if c.Server.Port == "" {
		c.Server.Port = "8080"
	}
	if c.Database.Driver == "" {
		c.Database.Driver = "sqlite"
	}
	if c.Database.SQLitePath == "" {
		c.Database.SQLitePath = "data/stocks_forecast.db"
	}
	if c.Database.Host == "" {
		c.Database.Host = "localhost"
	}
	if c.Database.Port == "" {
		c.Database.Port = "5432"
	}
	if c.Database.User == "" {
		c.Database.User = "forecast_user"
	}
	if c.Database.Name == "" {
		c.Database.Name = "stocks_forecast"
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.OpenAI.BaseURL == "" {
		c.OpenAI.BaseURL = "https://api.openai.com/v1"
	}
	if c.OpenAI.Model == "" {
		c.OpenAI.Model = "gpt-4o"
	}
	if c.OpenAI.Timeout == 0 {
		c.OpenAI.Timeout = 60 * time.Second
	}
	if c.Quotes.Source == "" {
		c.Quotes.Source = QuoteSourceAlphaVantage
	}
	if c.Quotes.AlphaVantageURL == "" {
		c.Quotes.AlphaVantageURL = "https://www.alphavantage.co"
	}
	if c.Quotes.Timeout == 0 {
		c.Quotes.Timeout = 10 * time.Second
	}
	if c.Auth.Mode == "" {
		// Only mock mode implies mock auth; development still talks to Supabase.
		if c.MockMode {
			c.Auth.Mode = AuthModeMock
		} else {
			c.Auth.Mode = AuthModeSupabase
		}
	}
	if c.LogEnv == "" {
		c.LogEnv = string(c.Environment)
	}
}

// Validate checks option values. Credentials are deliberately not required here:
// a missing OpenAI key only fails the first live forecast.
func (c *Config) Validate() error {
	switch c.Environment {
	case EnvDevelopment, EnvProduction, EnvTest:
	default:
		return fmt.Errorf("environment must be one of development, production, test; got %q", c.Environment)
	}
	switch c.Database.Driver {
	case "sqlite", "postgres":
	default:
		return fmt.Errorf("database.driver must be sqlite or postgres; got %q", c.Database.Driver)
	}
	switch c.Quotes.Source {
	case QuoteSourceAlphaVantage, QuoteSourceYahoo:
	default:
		return fmt.Errorf("quotes.source must be alphavantage or yahoo; got %q", c.Quotes.Source)
	}
	switch c.Auth.Mode {
	case AuthModeMock:
	case AuthModeSupabase:
		if c.Auth.SupabaseURL == "" || c.Auth.SupabaseAnonKey == "" {
			return fmt.Errorf("auth.supabase_url and auth.supabase_anon_key are required in supabase auth mode")
		}
	default:
		return fmt.Errorf("auth.mode must be mock or supabase; got %q", c.Auth.Mode)
	}
	if c.MockLatency < 0 {
		return fmt.Errorf("mock_latency must not be negative")
	}
	return nil
}

// UseMockQuotes reports whether quote lookups use synthetic data. The
// development environment always forces mock data regardless of MockMode.
func (c *Config) UseMockQuotes() bool {
	return c.MockMode || c.Environment == EnvDevelopment
}

// UseMockForecasts reports whether forecasts come from the local synthesizer.
func (c *Config) UseMockForecasts() bool {
	return c.MockMode
}

func stringEnv(key string, dst *string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func durationEnv(key string, dst *time.Duration) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = d
	return nil
}
