package shared

import (
	"encoding/json"
	"github.com/tailscale/hujson"
	"log"
	"os"
)

const (
	configVarName  = "CONFIG"                  // If set, will load config.json from this path and not from devConfigPath
	secretsVarName = "SECRETS"                 // If set, will load secrets.json from this path and not from devSecretsPath
	devConfigPath  = "./dev/config.dev.jsonc"  // Path to config.json in development environment
	devSecretsPath = "./dev/secrets.dev.jsonc" // Path to secrets.json in development environment
)

const (
	defaultApiBaseUrl        = "https://api.twitter.com/1.1/"
	defaultServiceHost       = "127.0.0.1"
	defaultRequestTimeoutSec = 30
	defaultPageSize          = 100
	defaultTrendsPlaceId     = 1
	defaultTrendsCacheMin    = 5
)

type Config struct {
	Secrets            Secrets `json:"-"`
	LogFile            string  `json:"log_file"`
	LogLevel           string  `json:"log_level"`
	ServiceHost        string  `json:"service_host"`
	ServicePort        uint    `json:"service_port"`
	ApiBaseUrl         string  `json:"api_base_url"`
	RequestTimeoutSec  int     `json:"request_timeout_sec"`
	PageSize           int     `json:"page_size"`
	NoMedia            bool    `json:"no_media"`
	AutoPlay           bool    `json:"auto_play"`
	AutoRefreshMinutes int     `json:"auto_refresh_minutes"`
	TrendsPlaceId      int     `json:"trends_place_id"`
	TrendsCacheMinutes int     `json:"trends_cache_minutes"`
	ProfileDir         string  `json:"profile_dir"`
	ProfileKeepDays    int     `json:"profile_keep_days"`
}

type Secrets struct {
	ConsumerKey       string   `json:"consumer_key"`
	ConsumerSecret    string   `json:"consumer_secret"`
	AccessToken       string   `json:"access_token"`
	AccessTokenSecret string   `json:"access_token_secret"`
	ApiKeys           []string `json:"api_keys"`
	MetricsAuth       string   `json:"metrics_auth"`
}

func LoadConfig() *Config {

	// Where are our config and secrets files?
	cfgPath := os.Getenv(configVarName)
	if len(cfgPath) == 0 {
		cfgPath = devConfigPath
	}
	secretsPath := os.Getenv(secretsVarName)
	if len(secretsPath) == 0 {
		secretsPath = devSecretsPath
	}

	// Read config file
	var config Config
	mustDeserializeFile(cfgPath, &config)
	// Read secrets member from secrets file
	mustDeserializeFile(secretsPath, &config.Secrets)
	config.ApplyDefaults()
	return &config
}

// ApplyDefaults fills in zero-valued settings that have a sensible fallback.
// A zero ServicePort is kept: it means an ephemeral port.
func (cfg *Config) ApplyDefaults() {
	if cfg.ApiBaseUrl == "" {
		cfg.ApiBaseUrl = defaultApiBaseUrl
	}
	if cfg.ServiceHost == "" {
		cfg.ServiceHost = defaultServiceHost
	}
	if cfg.RequestTimeoutSec <= 0 {
		cfg.RequestTimeoutSec = defaultRequestTimeoutSec
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = defaultPageSize
	}
	if cfg.TrendsPlaceId == 0 {
		cfg.TrendsPlaceId = defaultTrendsPlaceId
	}
	if cfg.TrendsCacheMinutes <= 0 {
		cfg.TrendsCacheMinutes = defaultTrendsCacheMin
	}
}

func mustDeserializeFile[T any](fileName string, obj *T) {
	var err error
	var cfgJson []byte
	cfgJson, err = os.ReadFile(fileName)
	if err != nil {
		log.Fatal(err)
	}
	// JSONC => JSON
	cfgJson, err = standardizeJSON(cfgJson)
	if err != nil {
		log.Fatal(err)
	}
	// Parse
	if err := json.Unmarshal(cfgJson, obj); err != nil {
		log.Fatal(err)
	}
}

func standardizeJSON(b []byte) ([]byte, error) {
	ast, err := hujson.Parse(b)
	if err != nil {
		return b, err
	}
	ast.Standardize()
	return ast.Pack(), nil
}
