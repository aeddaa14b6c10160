package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/todolist/internal/flagx"
	"github.com/dmitrijs2005/todolist/internal/timex"
)

// JsonConfig defines a configuration structure tailored for JSON unmarshalling.
// It uses timex.Duration for the token lifetime, which allows parsing both
// string values such as "24h" and integer nanoseconds.
type JsonConfig struct {
	EndpointAddr       string         `json:"endpoint_addr"`
	DatabaseDSN        string         `json:"database_dsn"`
	SecretKey          string         `json:"secret_key"`
	TokenValidity      timex.Duration `json:"token_validity"`
	RateLimitPerMinute int            `json:"rate_limit_per_minute"`
	RateLimitBurst     int            `json:"rate_limit_burst"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance. The file path comes from the -c or -config command-line
// flags; if neither is set, no JSON file is loaded. An unreadable or invalid
// file is a startup failure and panics.
func parseJson(config *Config) {

	// try flags
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

	config.EndpointAddr = c.EndpointAddr
	config.DatabaseDSN = c.DatabaseDSN
	config.SecretKey = c.SecretKey
	config.TokenValidity = time.Duration(c.TokenValidity.Duration)
	config.RateLimitPerMinute = c.RateLimitPerMinute
	config.RateLimitBurst = c.RateLimitBurst
}
