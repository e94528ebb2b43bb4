package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/userreg/internal/flagx"
	"github.com/dmitrijs2005/userreg/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
// Zero-valued fields leave the corresponding Config value untouched.
type JsonConfig struct {
	DatabaseFile string         `json:"database_file"`
	LogLevel     string         `json:"log_level"`
	BusyTimeout  timex.Duration `json:"busy_timeout"`
}

// parseJson overlays cfg with values from the JSON file named by -c/-config.
// If no file is given it does nothing. Panics on read or unmarshal errors.
func parseJson(cfg *Config, args []string) {
	jsonConfigFile := flagx.ConfigFilePath(args)
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

	if jc.DatabaseFile != "" {
		cfg.DatabaseFile = jc.DatabaseFile
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
	if jc.BusyTimeout.Duration != 0 {
		cfg.BusyTimeout = jc.BusyTimeout.Duration
	}
}
