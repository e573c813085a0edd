package config

import (
	"encoding/json"
	"os"

	"github.com/avelkovs/fleetdesk/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
type JsonConfig struct {
	DatabaseDSN string `json:"database_dsn"`
	LogLevel    string `json:"log_level"`
}

// parseJson overlays cfg with values loaded from a JSON file selected via
// the -c or -config flags. When no file is given the config is left as is.
// Empty JSON fields do not override earlier stages. Panics on read or
// unmarshal errors.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DatabaseDSN != "" {
		cfg.DatabaseDSN = jc.DatabaseDSN
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
}
