package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] for JSON decoding. Duration
// fields accept either nanoseconds or strings like "30s".
type StructuredJSONConfig struct {
	App struct {
		Version       string `json:"version"`
		LogFile       string `json:"log_file"`
		OwnerOverride string `json:"owner_override"`
	} `json:"app,omitempty"`

	Storage struct {
		Driver string `json:"driver"`
		DB     struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
		Files struct {
			Path string `json:"path"`
		} `json:"files,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Adapter struct {
		Kind           string   `json:"kind"`
		HTTPAddress    string   `json:"http_address"`
		RedisAddress   string   `json:"redis_address"`
		RedisPassword  string   `json:"redis_password"`
		RedisDB        int      `json:"redis_db"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Sync struct {
		Disabled         bool     `json:"disabled"`
		DeploymentHost   string   `json:"deployment_host"`
		DeploymentAuthor string   `json:"deployment_author"`
		SkipPrivate      bool     `json:"skip_private"`
		Timeout          Duration `json:"timeout"`
	} `json:"sync,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Version:       jsonCfg.App.Version,
			LogFile:       jsonCfg.App.LogFile,
			OwnerOverride: jsonCfg.App.OwnerOverride,
		},
		Storage: Storage{
			Driver: jsonCfg.Storage.Driver,
			DB:     DB{DSN: jsonCfg.Storage.DB.DSN},
			Files:  Files{Path: jsonCfg.Storage.Files.Path},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Adapter: Adapter{
			Kind:           jsonCfg.Adapter.Kind,
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RedisAddress:   jsonCfg.Adapter.RedisAddress,
			RedisPassword:  jsonCfg.Adapter.RedisPassword,
			RedisDB:        jsonCfg.Adapter.RedisDB,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Sync: Sync{
			Disabled:         jsonCfg.Sync.Disabled,
			DeploymentHost:   jsonCfg.Sync.DeploymentHost,
			DeploymentAuthor: jsonCfg.Sync.DeploymentAuthor,
			SkipPrivate:      jsonCfg.Sync.SkipPrivate,
			Timeout:          time.Duration(jsonCfg.Sync.Timeout),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
