package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/todolist/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
type JsonConfig struct {
	ServerBaseURL string `json:"server_base_url"`
	StateFile     string `json:"state_file"`
}

// parseJson overlays Config with values loaded from a JSON file given via
// -c or -config. Absent fields keep their previous values. Read or parse
// errors panic, matching the flag-parsing behavior at startup.
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

	if jc.ServerBaseURL != "" {
		cfg.ServerBaseURL = jc.ServerBaseURL
	}
	if jc.StateFile != "" {
		cfg.StateFile = jc.StateFile
	}
}
