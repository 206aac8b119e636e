package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "0123456789abcdef")
	c := Load()

	if c.AppPort != "8080" || c.DBDriver != "mysql" || c.AnnualRate != 10.0 {
		t.Fatalf("unexpected defaults: %+v", c)
	}
	if c.IdempotencyTTL() != 5*time.Minute || c.AnalyticsCacheTTL() != 30*time.Second || c.JWTTTL() != time.Hour {
		t.Fatalf("unexpected ttls: %v %v %v", c.IdempotencyTTL(), c.AnalyticsCacheTTL(), c.JWTTTL())
	}
	if c.DBAutoMigrate {
		t.Fatalf("auto migrate should be off by default")
	}
	if err := c.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("SQLITE_PATH", "file::memory:")
	t.Setenv("DB_AUTO_MIGRATE", "true")
	t.Setenv("LOAN_ANNUAL_INTEREST_RATE", "12.5")
	t.Setenv("ANALYTICS_CACHE_TTL_SECONDS", "5")
	t.Setenv("REDIS_DB", "not-a-number")
	t.Setenv("JWT_SECRET", "0123456789abcdef")

	c := Load()
	if c.DSN() != "file::memory:" || !c.DBAutoMigrate || c.AnnualRate != 12.5 || c.AnalyticsCacheTTLSecs != 5 {
		t.Fatalf("overrides not applied: %+v", c)
	}
	if c.RedisDB != 0 {
		t.Fatalf("bad REDIS_DB should fall back to 0, got %d", c.RedisDB)
	}
	if err := c.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestValidate_Errors(t *testing.T) {
	base := func() *Config {
		return &Config{
			AppPort: "8080", DBDriver: "mysql",
			MySQLHost: "h", MySQLPort: "3306", MySQLDB: "d", MySQLUser: "u",
			JWTSecret: "0123456789abcdef", AnnualRate: 10,
		}
	}
	cases := map[string]func(*Config){
		"no port":      func(c *Config) { c.AppPort = "" },
		"bad driver":   func(c *Config) { c.DBDriver = "oracle" },
		"no host":      func(c *Config) { c.MySQLHost = "" },
		"bad port":     func(c *Config) { c.MySQLPort = "99999999" },
		"short secret": func(c *Config) { c.JWTSecret = "short" },
		"neg rate":     func(c *Config) { c.AnnualRate = -1 },
	}
	for name, mut := range cases {
		c := base()
		mut(c)
		if err := c.Validate(); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
	if err := base().Validate(); err != nil {
		t.Fatalf("base config invalid: %v", err)
	}
}

func TestMySQLDSN(t *testing.T) {
	c := &Config{MySQLUser: "u", MySQLPass: "p", MySQLHost: "db", MySQLPort: "3306", MySQLDB: "loans", DBDriver: "mysql"}
	dsn := c.DSN()
	if !strings.HasPrefix(dsn, "u:p@tcp(db:3306)/loans?") || !strings.Contains(dsn, "parseTime=true") {
		t.Fatalf("dsn = %s", dsn)
	}
}
