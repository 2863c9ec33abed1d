package config

import (
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	// Make sure ambient environment from the test runner does not leak in.
	for _, key := range []string{"ADDR", "MODEL_SERVER_API_KEY", "VLLM_BASE_URL", "VLLM_MODEL", "VLLM_API_KEY", "CORS_ORIGIN", "LOG_FILE"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Addr != DefaultAddr {
		t.Errorf("Addr = %q, want %q", cfg.Addr, DefaultAddr)
	}
	if cfg.VLLMBaseURL != DefaultVLLMBaseURL {
		t.Errorf("VLLMBaseURL = %q, want %q", cfg.VLLMBaseURL, DefaultVLLMBaseURL)
	}
	if cfg.VLLMModel != DefaultVLLMModel {
		t.Errorf("VLLMModel = %q, want %q", cfg.VLLMModel, DefaultVLLMModel)
	}
	if cfg.AuthEnabled() {
		t.Error("AuthEnabled() = true with no MODEL_SERVER_API_KEY set")
	}
}

func TestLoad_EnvOverridesDefaults(t *testing.T) {
	t.Setenv("ADDR", ":9000")
	t.Setenv("MODEL_SERVER_API_KEY", "secret123")
	t.Setenv("VLLM_BASE_URL", "http://model.internal:8001")
	t.Setenv("VLLM_MODEL", "Qwen/Qwen2.5-72B-Instruct")
	t.Setenv("VLLM_API_KEY", "upstream-key")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Addr != ":9000" {
		t.Errorf("Addr = %q, want %q", cfg.Addr, ":9000")
	}
	if cfg.ServerAPIKey != "secret123" {
		t.Errorf("ServerAPIKey = %q, want %q", cfg.ServerAPIKey, "secret123")
	}
	if cfg.VLLMBaseURL != "http://model.internal:8001" {
		t.Errorf("VLLMBaseURL = %q, want %q", cfg.VLLMBaseURL, "http://model.internal:8001")
	}
	if cfg.VLLMModel != "Qwen/Qwen2.5-72B-Instruct" {
		t.Errorf("VLLMModel = %q, want %q", cfg.VLLMModel, "Qwen/Qwen2.5-72B-Instruct")
	}
	if !cfg.AuthEnabled() {
		t.Error("AuthEnabled() = false with MODEL_SERVER_API_KEY set")
	}
}

func TestLoad_Normalization(t *testing.T) {
	tests := []struct {
		name   string
		envKey string
		envVal string
		got    func(Config) string
		want   string
	}{
		{
			name:   "base URL trailing slash stripped",
			envKey: "VLLM_BASE_URL",
			envVal: "http://localhost:8001/",
			got:    func(c Config) string { return c.VLLMBaseURL },
			want:   "http://localhost:8001",
		},
		{
			name:   "credential whitespace trimmed",
			envKey: "VLLM_API_KEY",
			envVal: "  upstream-key \n",
			got:    func(c Config) string { return c.VLLMAPIKey },
			want:   "upstream-key",
		},
		{
			name:   "whitespace-only server key disables auth",
			envKey: "MODEL_SERVER_API_KEY",
			envVal: "   ",
			got:    func(c Config) string { return c.ServerAPIKey },
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.envKey, tt.envVal)

			cfg, err := Load()
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if got := tt.got(cfg); got != tt.want {
				t.Errorf("%s = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}
