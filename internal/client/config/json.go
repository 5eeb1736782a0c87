package config

import (
	"encoding/json"
	"os"

	"github.com/andrissp/invoicedesk/internal/flagx"
	"github.com/andrissp/invoicedesk/internal/timex"
)

// jsonConfig is a DTO used exclusively for JSON unmarshalling.
type jsonConfig struct {
	APIBaseURL     string         `json:"api_base_url"`
	DatabasePath   string         `json:"database_path"`
	RequestTimeout timex.Duration `json:"request_timeout"`
}

// parseJSON overlays Config with values loaded from a JSON file. The file
// path comes from the -c or -config flags; when neither is given, nothing is
// loaded. Fields absent from the file keep their current values. Read and
// unmarshal errors panic (caller may recover if desired).
func parseJSON(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc jsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
}
