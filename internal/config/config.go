// Package config handles configuration for the account client,
// including defaults, JSON overlay, and command-line flags.
package config

// Storage backend kinds accepted in Config.Storage.
const (
	StorageMemory   = "memory"
	StorageSQLite   = "sqlite"
	StoragePostgres = "postgres"
)

// Config holds runtime settings for the Valencirè account client.
//
// Fields:
//   - Storage: key-value backend kind ("memory", "sqlite", "postgres").
//   - DatabaseDSN: SQLite file path or PostgreSQL DSN, depending on Storage.
//   - MinPasswordLen: minimum accepted password length at signup.
type Config struct {
	Storage        string
	DatabaseDSN    string
	MinPasswordLen int
}

// LoadDefaults populates Config with sensible development defaults.
func (c *Config) LoadDefaults() {
	c.Storage = StorageSQLite
	c.DatabaseDSN = "valencire.db"
	c.MinPasswordLen = 6
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
