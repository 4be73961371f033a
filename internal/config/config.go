package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/spf13/viper"
)

// ErrConflictingReset is returned when both reset strategies are requested.
var ErrConflictingReset = errors.New("wipe and reset_schema are mutually exclusive")

type Config struct {
	Version     string   `json:"version" mapstructure:"version"`
	SchemaPath  string   `json:"schema_path" mapstructure:"schema_path"` // empty: embedded DDL for the provider
	ReportPath  string   `json:"report_path" mapstructure:"report_path"`
	MetricsPath string   `json:"metrics_path" mapstructure:"metrics_path"`
	Database    Database `json:"database" mapstructure:"database"`
	Seed        Seed     `json:"seed" mapstructure:"seed"`
}

type Database struct {
	Provider string `json:"provider" mapstructure:"provider"`
	URLEnv   string `json:"url_env" mapstructure:"url_env"`
	Host     string `json:"host" mapstructure:"host"`
	Port     int    `json:"port" mapstructure:"port"`
	Name     string `json:"name" mapstructure:"name"`
	User     string `json:"user" mapstructure:"user"`
	Password string `json:"password" mapstructure:"password"`
	SSLMode  string `json:"sslmode" mapstructure:"sslmode"`
	Path     string `json:"path" mapstructure:"path"` // sqlite only
}

type Seed struct {
	Profile     string         `json:"profile" mapstructure:"profile"`
	Counts      map[string]int `json:"counts,omitempty" mapstructure:"counts"` // per-table overrides
	Seed        uint64         `json:"seed" mapstructure:"seed"`               // 0 = random
	Wipe        bool           `json:"wipe" mapstructure:"wipe"`
	ResetSchema bool           `json:"reset_schema" mapstructure:"reset_schema"`
}

// SetDefaults registers every key with viper so AutomaticEnv can override
// it on Unmarshal.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("version", "1")
	v.SetDefault("schema_path", "")
	v.SetDefault("report_path", "")
	v.SetDefault("metrics_path", "")
	v.SetDefault("database.provider", "postgresql")
	v.SetDefault("database.url_env", "DATABASE_URL")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 0)
	v.SetDefault("database.name", "postgres")
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.path", "gatil.db")
	v.SetDefault("seed.profile", "large")
	v.SetDefault("seed.seed", 0)
	v.SetDefault("seed.wipe", false)
	v.SetDefault("seed.reset_schema", false)
}

func Load() (*Config, error) {
	return LoadFrom(viper.GetViper())
}

func LoadFrom(v *viper.Viper) (*Config, error) {
	var cfg Config

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.Version == "" {
		cfg.Version = "1"
	}
	if cfg.Database.Provider == "" {
		cfg.Database.Provider = "postgresql"
	}
	if cfg.Database.URLEnv == "" {
		cfg.Database.URLEnv = "DATABASE_URL"
	}
	if cfg.Seed.Profile == "" {
		cfg.Seed.Profile = "large"
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	supportedProviders := []string{"postgresql", "postgres", "mysql", "sqlite", "sqlite3"}
	supported := false
	for _, provider := range supportedProviders {
		if c.Database.Provider == provider {
			supported = true
			break
		}
	}
	if !supported {
		return fmt.Errorf("unsupported database provider: %s. Supported providers: %v", c.Database.Provider, supportedProviders)
	}

	if c.Seed.Wipe && c.Seed.ResetSchema {
		return ErrConflictingReset
	}

	for table, n := range c.Seed.Counts {
		if n < 0 {
			return fmt.Errorf("seed count for %s cannot be negative: %d", table, n)
		}
	}

	return nil
}

// ProviderName folds provider aliases into the name of the embedded schema.
func (c *Config) ProviderName() string {
	switch c.Database.Provider {
	case "mysql":
		return "mysql"
	case "sqlite", "sqlite3":
		return "sqlite"
	default:
		return "postgresql"
	}
}

// GetDatabaseURL prefers the URL found in the configured environment
// variable and falls back to the discrete connection fields.
func (c *Config) GetDatabaseURL() (string, error) {
	if dbURL := os.Getenv(c.Database.URLEnv); dbURL != "" {
		return dbURL, nil
	}

	db := c.Database
	switch c.ProviderName() {
	case "sqlite":
		if db.Path == "" {
			return "", fmt.Errorf("database path is required for sqlite (or set %s)", db.URLEnv)
		}
		return db.Path, nil
	case "mysql":
		if db.Host == "" || db.Name == "" {
			return "", fmt.Errorf("database host and name are required (or set %s)", db.URLEnv)
		}
		mc := mysql.NewConfig()
		mc.User = db.User
		mc.Passwd = db.Password
		mc.Net = "tcp"
		mc.Addr = net.JoinHostPort(db.Host, strconv.Itoa(portOr(db.Port, 3306)))
		mc.DBName = db.Name
		mc.ParseTime = true
		return mc.FormatDSN(), nil
	default:
		if db.Host == "" || db.Name == "" {
			return "", fmt.Errorf("database host and name are required (or set %s)", db.URLEnv)
		}
		u := url.URL{
			Scheme: "postgres",
			Host:   net.JoinHostPort(db.Host, strconv.Itoa(portOr(db.Port, 5432))),
			Path:   "/" + db.Name,
		}
		if db.Password != "" {
			u.User = url.UserPassword(db.User, db.Password)
		} else if db.User != "" {
			u.User = url.User(db.User)
		}
		if db.SSLMode != "" {
			u.RawQuery = "sslmode=" + db.SSLMode
		}
		return u.String(), nil
	}
}

// RedactedURL hides the password of a URL-style DSN for display.
func RedactedURL(dsn string) string {
	u, err := url.Parse(dsn)
	if err != nil || u.User == nil || u.Scheme == "" {
		if at := strings.LastIndex(dsn, "@"); at > 0 {
			if colon := strings.Index(dsn[:at], ":"); colon > 0 {
				return dsn[:colon] + ":xxxxx" + dsn[at:]
			}
		}
		return dsn
	}
	return u.Redacted()
}

func portOr(port, fallback int) int {
	if port > 0 {
		return port
	}
	return fallback
}
