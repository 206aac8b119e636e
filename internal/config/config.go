package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort  string
	LogLevel string

	DBDriver      string // mysql | sqlite
	DBLogLevel    string
	DBAutoMigrate bool
	SQLitePath    string

	MySQLHost string
	MySQLPort string
	MySQLDB   string
	MySQLUser string
	MySQLPass string

	RedisAddr string
	RedisDB   int

	IdempTTLSecs          int
	AnalyticsCacheTTLSecs int

	JWTSecret  string
	JWTIssuer  string
	JWTTTLMins int
	BcryptCost int
	AnnualRate float64 // percent per year
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func getint(k string, d int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return d
}

// Load reads the environment, after merging an optional .env file into it.
// Variables already set in the process win over the file.
func Load() *Config {
	_ = godotenv.Load()

	c := &Config{
		AppPort:  getenv("APP_PORT", "8080"),
		LogLevel: getenv("LOG_LEVEL", "info"),

		DBDriver:   getenv("DB_DRIVER", "mysql"),
		DBLogLevel: getenv("DB_LOG_LEVEL", "error"),
		SQLitePath: getenv("SQLITE_PATH", "loans.db"),

		MySQLHost: getenv("MYSQL_HOST", "mysql"),
		MySQLPort: getenv("MYSQL_PORT", "3306"),
		MySQLDB:   getenv("MYSQL_DB", "loans"),
		MySQLUser: getenv("MYSQL_USER", "loans"),
		MySQLPass: getenv("MYSQL_PASS", "loans"),

		RedisAddr: getenv("REDIS_ADDR", "redis:6379"),
		RedisDB:   getint("REDIS_DB", 0),

		IdempTTLSecs:          getint("IDEMPOTENCY_TTL_SECONDS", 300),
		AnalyticsCacheTTLSecs: getint("ANALYTICS_CACHE_TTL_SECONDS", 30),

		JWTSecret:  os.Getenv("JWT_SECRET"),
		JWTIssuer:  getenv("JWT_ISSUER", "loan-origination"),
		JWTTTLMins: getint("JWT_TTL_MINUTES", 60),
		BcryptCost: getint("BCRYPT_COST", 0),
		AnnualRate: 10.0,
	}
	c.DBAutoMigrate, _ = strconv.ParseBool(getenv("DB_AUTO_MIGRATE", "false"))
	if v := os.Getenv("LOAN_ANNUAL_INTEREST_RATE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.AnnualRate = f
		}
	}
	return c
}

func (c *Config) Validate() error {
	if c.AppPort == "" {
		return errors.New("missing APP_PORT")
	}
	switch c.DBDriver {
	case "mysql":
		if c.MySQLHost == "" || c.MySQLPort == "" || c.MySQLDB == "" || c.MySQLUser == "" {
			return errors.New("missing MySQL config (MYSQL_HOST/PORT/DB/USER)")
		}
		// ensure port is valid
		if _, err := net.LookupPort("tcp", c.MySQLPort); err != nil {
			return fmt.Errorf("invalid MYSQL_PORT %q: %w", c.MySQLPort, err)
		}
	case "sqlite":
		if c.SQLitePath == "" {
			return errors.New("missing SQLITE_PATH")
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
	if len(c.JWTSecret) < 16 {
		return errors.New("JWT_SECRET must be at least 16 characters")
	}
	if c.AnnualRate < 0 {
		return fmt.Errorf("invalid LOAN_ANNUAL_INTEREST_RATE %v", c.AnnualRate)
	}
	return nil
}

func (c *Config) mysqlAddr() string { return net.JoinHostPort(c.MySQLHost, c.MySQLPort) }

func (c *Config) MySQLDSN() string {
	// parseTime needed for DATETIME
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?parseTime=true&charset=utf8mb4,utf8&loc=UTC",
		c.MySQLUser, c.MySQLPass, c.mysqlAddr(), c.MySQLDB)
}

// DSN returns the connection string for the configured driver.
func (c *Config) DSN() string {
	if c.DBDriver == "sqlite" {
		return c.SQLitePath
	}
	return c.MySQLDSN()
}

func (c *Config) IdempotencyTTL() time.Duration {
	return time.Duration(c.IdempTTLSecs) * time.Second
}

func (c *Config) AnalyticsCacheTTL() time.Duration {
	return time.Duration(c.AnalyticsCacheTTLSecs) * time.Second
}

func (c *Config) JWTTTL() time.Duration { return time.Duration(c.JWTTTLMins) * time.Minute }
