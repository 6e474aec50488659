package config

import (
	_ "embed"
	"encoding/json"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
)

type Config struct {
	Importer struct {
		BaseURL        string `json:"base_url"`
		PageSize       int    `json:"page_size"`
		TimeoutSeconds int    `json:"timeout_seconds"`
	} `json:"importer"`

	History struct {
		BaseURL           string `json:"base_url"`
		Retries           int    `json:"retries"`
		RetryDelaySeconds int    `json:"retry_delay_seconds"`
		PauseMilliseconds int    `json:"pause_milliseconds"`
		TimeoutSeconds    int    `json:"timeout_seconds"`
	} `json:"history"`

	Geocode struct {
		BaseURL           string `json:"base_url"`
		PauseMilliseconds int    `json:"pause_milliseconds"`
		TimeoutSeconds    int    `json:"timeout_seconds"`
	} `json:"geocode"`

	Dashboard struct {
		TopCountries int `json:"top_countries"`
	} `json:"dashboard"`
}

const settingsFilePath = "data/settings.json"

var (
	//go:embed default_settings.json
	defaultConfig []byte

	configValue atomic.Value
	configMu    sync.Mutex

	InProductionMode bool
)

func init() {
	var cfg Config
	if err := json.Unmarshal(defaultConfig, &cfg); err == nil {
		configValue.Store(cfg)
	} else {
		configValue.Store(Config{})
	}
}

func ReadSettings() {
	data, err := os.ReadFile(settingsFilePath)
	if err != nil {
		if os.IsNotExist(err) {
			log.Warn("Settings file not found, creating with default configuration")

			if err := os.MkdirAll("data", os.ModePerm); err != nil {
				log.Error("Error creating directory for settings file:", err)
				return
			}

			if err := os.WriteFile(settingsFilePath, defaultConfig, os.ModePerm); err != nil {
				log.Error("Error writing default settings file:", err)
				return
			}

			data = defaultConfig
		} else {
			log.Error("Error reading settings file:", err)
			return
		}
	}

	var newConfig Config
	if err := json.Unmarshal(data, &newConfig); err != nil {
		log.Error("Error unmarshalling settings file:", err)
		return
	}

	configMu.Lock()
	configValue.Store(newConfig)
	configMu.Unlock()

	log.Debug("Settings file loaded successfully")
}

func SetConfig(newConfig Config) {
	configMu.Lock()
	defer configMu.Unlock()

	configValue.Store(newConfig)

	data, err := json.MarshalIndent(newConfig, "", "  ")
	if err != nil {
		log.Error("Error marshalling new configuration:", err)
		return
	}
	if err := os.WriteFile(settingsFilePath, data, os.ModePerm); err != nil {
		log.Error("Error writing new configuration to file:", err)
		return
	}

	log.Debug("Configuration updated and written to file successfully")
}

func GetConfig() Config {
	return configValue.Load().(Config)
}

func SetProductionMode(productionMode bool) {
	InProductionMode = productionMode
}

// Duration helpers so job code does not repeat unit conversions.

func (cfg Config) HistoryRetryDelay() time.Duration {
	return time.Duration(cfg.History.RetryDelaySeconds) * time.Second
}

func (cfg Config) HistoryPause() time.Duration {
	return time.Duration(cfg.History.PauseMilliseconds) * time.Millisecond
}

func (cfg Config) GeocodePause() time.Duration {
	return time.Duration(cfg.Geocode.PauseMilliseconds) * time.Millisecond
}
