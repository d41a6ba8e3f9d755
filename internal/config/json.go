package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type structuredJSONConfig struct {
	App struct {
		Version string `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Remote struct {
		BaseURL        string   `json:"address"`
		ServiceKey     string   `json:"service_key"`
		RequestTimeout Duration `json:"request_timeout"`
		ProbeTimeout   Duration `json:"probe_timeout"`
		ProbeCacheTTL  Duration `json:"probe_cache_ttl"`
	} `json:"remote,omitempty"`

	Sync struct {
		Interval     Duration `json:"interval"`
		InitialDelay Duration `json:"initial_delay"`
	} `json:"sync,omitempty"`
}

// Duration wraps time.Duration so JSON config values can be written as
// human-readable strings like "15s" or "5m".
type Duration time.Duration

func (d *Duration) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("duration must be a string like \"15s\": %w", err)
	}

	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", raw, err)
	}

	*d = Duration(parsed)
	return nil
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg structuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Version: jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Remote: Remote{
			BaseURL:        jsonCfg.Remote.BaseURL,
			ServiceKey:     jsonCfg.Remote.ServiceKey,
			RequestTimeout: time.Duration(jsonCfg.Remote.RequestTimeout),
			ProbeTimeout:   time.Duration(jsonCfg.Remote.ProbeTimeout),
			ProbeCacheTTL:  time.Duration(jsonCfg.Remote.ProbeCacheTTL),
		},
		Sync: Sync{
			Interval:     time.Duration(jsonCfg.Sync.Interval),
			InitialDelay: time.Duration(jsonCfg.Sync.InitialDelay),
		},
	}

	return cfg, nil
}
