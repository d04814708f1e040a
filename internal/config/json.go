package config

import (
	"encoding/json"
	"os"

	"github.com/valencire/account/internal/flagx"
)

// JsonConfig defines a configuration structure tailored for JSON
// unmarshalling. It is an intermediate DTO used only for reading JSON
// configuration files; after unmarshalling, its fields are copied into
// the runtime Config struct.
type JsonConfig struct {
	Storage        string `json:"storage"`
	DatabaseDSN    string `json:"database_dsn"`
	MinPasswordLen int    `json:"min_password_len"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance.
//
// The JSON file path is taken from the -c or -config command-line flags.
// If neither is set, no file is loaded. If the file cannot be read or
// contains invalid JSON, the function panics.
//
// Zero-valued fields in the file are treated as "not set" and leave the
// corresponding Config field untouched, so a partial overlay works.
func parseJson(config *Config) {

	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	err = json.Unmarshal(file, c)
	if err != nil {
		panic(err)
	}

	if c.Storage != "" {
		config.Storage = c.Storage
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.MinPasswordLen != 0 {
		config.MinPasswordLen = c.MinPasswordLen
	}
}
