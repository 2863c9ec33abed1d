package config

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// Built-in defaults, overridable through the environment.
const (
	DefaultAddr        = ":8090"
	DefaultVLLMBaseURL = "http://localhost:8001"
	DefaultVLLMModel   = "Qwen/Qwen2.5-14B-Instruct"
	DefaultCORSOrigin  = "*"
)

// Config holds all process configuration. It is constructed once at startup
// by [Load] and treated as read-only afterwards; components receive it by
// value and never consult the environment themselves.
type Config struct {
	// Addr is the listen address of the HTTP server (ADDR).
	Addr string `koanf:"addr"`
	// ServerAPIKey, when non-empty, enables bearer-token auth on /generate
	// (MODEL_SERVER_API_KEY).
	ServerAPIKey string `koanf:"model_server_api_key"`
	// VLLMBaseURL is the remote completion endpoint base (VLLM_BASE_URL).
	VLLMBaseURL string `koanf:"vllm_base_url"`
	// VLLMModel is the default model id (VLLM_MODEL).
	VLLMModel string `koanf:"vllm_model"`
	// VLLMAPIKey is forwarded as a bearer token to the remote endpoint when
	// non-empty (VLLM_API_KEY).
	VLLMAPIKey string `koanf:"vllm_api_key"`
	// CORSOrigin is a comma-separated list of allowed origins (CORS_ORIGIN).
	CORSOrigin string `koanf:"cors_origin"`
	// LogFile, when non-empty, routes logs to a rotating file (LOG_FILE).
	LogFile string `koanf:"log_file"`
}

// AuthEnabled reports whether /generate requires a bearer token.
func (c Config) AuthEnabled() bool {
	return c.ServerAPIKey != ""
}

// Load builds a Config from defaults overlaid with environment variables.
// Priority: Env > Defaults.
func Load() (Config, error) {
	k := koanf.New(".")

	defaults := map[string]interface{}{
		"addr":                 DefaultAddr,
		"model_server_api_key": "",
		"vllm_base_url":        DefaultVLLMBaseURL,
		"vllm_model":           DefaultVLLMModel,
		"vllm_api_key":         "",
		"cors_origin":          DefaultCORSOrigin,
		"log_file":             "",
	}
	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return Config{}, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Environment variables map to keys verbatim, lowercased
	// (e.g. VLLM_BASE_URL -> vllm_base_url).
	if err := k.Load(env.Provider("", ".", strings.ToLower), nil); err != nil {
		return Config{}, fmt.Errorf("failed to load env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return normalize(cfg), nil
}

// normalize trims credential whitespace and strips the trailing slash from
// the base URL so path joining stays predictable. Empty values fall back to
// the built-in defaults.
func normalize(cfg Config) Config {
	cfg.ServerAPIKey = strings.TrimSpace(cfg.ServerAPIKey)
	cfg.VLLMAPIKey = strings.TrimSpace(cfg.VLLMAPIKey)
	cfg.VLLMModel = strings.TrimSpace(cfg.VLLMModel)
	cfg.VLLMBaseURL = strings.TrimRight(strings.TrimSpace(cfg.VLLMBaseURL), "/")

	if cfg.Addr == "" {
		cfg.Addr = DefaultAddr
	}
	if cfg.VLLMBaseURL == "" {
		cfg.VLLMBaseURL = strings.TrimRight(DefaultVLLMBaseURL, "/")
	}
	if cfg.VLLMModel == "" {
		cfg.VLLMModel = DefaultVLLMModel
	}
	if cfg.CORSOrigin == "" {
		cfg.CORSOrigin = DefaultCORSOrigin
	}
	return cfg
}
