package config

import (
	"testing"
	"time"
)

var envKeys = []string{
	"PORT",
	"NEWS_API_KEY",
	"NEWS_API_TIMEOUT_SECONDS",
	"NEWS_WORKERS",
	"NEWS_QUEUE_SIZE",
	"NEWS_SOURCES",
	"NEWS_SOURCES_FILE",
	"HTTP_CLIENT_TIMEOUT_SECONDS",
	"LOG_BACKEND",
	"LOG_LEVEL",
	"LOG_FORMAT",
	"LOG_FILE",
}

// clearEnv blanks every variable LoadFromEnv reads
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range envKeys {
		t.Setenv(key, "")
	}
}

func TestLoadFromEnv(t *testing.T) {
	tests := []struct {
		name            string
		envVars         map[string]string
		expectedPort    string
		expectedTimeout int
		expectedWorkers int
	}{
		{
			name:            "defaults when nothing set",
			envVars:         map[string]string{},
			expectedPort:    "8000",
			expectedTimeout: 5,
			expectedWorkers: 5,
		},
		{
			name:            "uses PORT env var when set",
			envVars:         map[string]string{"PORT": "3000"},
			expectedPort:    "3000",
			expectedTimeout: 5,
			expectedWorkers: 5,
		},
		{
			name:            "uses NEWS_API_TIMEOUT_SECONDS when set",
			envVars:         map[string]string{"NEWS_API_TIMEOUT_SECONDS": "12"},
			expectedPort:    "8000",
			expectedTimeout: 12,
			expectedWorkers: 5,
		},
		{
			name:            "uses NEWS_WORKERS when set",
			envVars:         map[string]string{"NEWS_WORKERS": "9"},
			expectedPort:    "8000",
			expectedTimeout: 5,
			expectedWorkers: 9,
		},
		{
			name:            "ignores non-numeric values",
			envVars:         map[string]string{"NEWS_WORKERS": "many"},
			expectedPort:    "8000",
			expectedTimeout: 5,
			expectedWorkers: 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)

			// Set test environment variables
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			cfg, err := LoadFromEnv()
			if err != nil {
				t.Fatalf("LoadFromEnv() error = %v", err)
			}

			if cfg.Server.Port != tt.expectedPort {
				t.Errorf("Port = %v, want %v", cfg.Server.Port, tt.expectedPort)
			}
			if cfg.News.TimeoutSeconds != tt.expectedTimeout {
				t.Errorf("TimeoutSeconds = %v, want %v", cfg.News.TimeoutSeconds, tt.expectedTimeout)
			}
			if cfg.News.Workers != tt.expectedWorkers {
				t.Errorf("Workers = %v, want %v", cfg.News.Workers, tt.expectedWorkers)
			}
		})
	}
}

func TestLoadFromEnv_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv() error = %v", err)
	}

	if cfg.News.QueueSize != 64 {
		t.Errorf("QueueSize = %d, want 64", cfg.News.QueueSize)
	}
	if cfg.HTTP.TimeoutSeconds != 30 {
		t.Errorf("HTTP.TimeoutSeconds = %d, want 30", cfg.HTTP.TimeoutSeconds)
	}
	if cfg.Log.Backend != "logrus" || cfg.Log.Level != "info" || cfg.Log.Format != "json" {
		t.Errorf("Log = %+v, want logrus/info/json", cfg.Log)
	}
	if cfg.News.Sources != nil {
		t.Errorf("Sources = %v, want nil", cfg.News.Sources)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid, got %v", err)
	}
}

func TestLoadFromEnv_ParsesSourceList(t *testing.T) {
	clearEnv(t)
	t.Setenv("NEWS_SOURCES", " https://a.example/v2/top , ,https://b.example/v2/everything ")

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv() error = %v", err)
	}

	want := []string{"https://a.example/v2/top", "https://b.example/v2/everything"}
	if len(cfg.News.Sources) != len(want) {
		t.Fatalf("Sources = %v, want %v", cfg.News.Sources, want)
	}
	for i := range want {
		if cfg.News.Sources[i] != want[i] {
			t.Errorf("Sources[%d] = %s, want %s", i, cfg.News.Sources[i], want[i])
		}
	}
}

func TestLoadFromEnv_NormalisesLogSettings(t *testing.T) {
	clearEnv(t)
	t.Setenv("LOG_BACKEND", "ZAP")
	t.Setenv("LOG_LEVEL", "Debug")

	cfg, _ := LoadFromEnv()

	if cfg.Log.Backend != "zap" {
		t.Errorf("Backend = %s, want zap", cfg.Log.Backend)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Level = %s, want debug", cfg.Log.Level)
	}
}

func TestDurations(t *testing.T) {
	news := NewsConfig{TimeoutSeconds: 5}
	if news.Timeout() != 5*time.Second {
		t.Errorf("News.Timeout() = %v, want 5s", news.Timeout())
	}

	client := HTTPConfig{TimeoutSeconds: 30}
	if client.Timeout() != 30*time.Second {
		t.Errorf("HTTP.Timeout() = %v, want 30s", client.Timeout())
	}
}

func validConfig() *Config {
	return &Config{
		Server: ServerConfig{Port: "8000"},
		News:   NewsConfig{TimeoutSeconds: 5, Workers: 5, QueueSize: 64},
		HTTP:   HTTPConfig{TimeoutSeconds: 30},
		Log:    LogConfig{Backend: "logrus", Level: "info", Format: "json"},
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:   "valid config",
			mutate: func(c *Config) {},
		},
		{
			name:    "empty port",
			mutate:  func(c *Config) { c.Server.Port = "" },
			wantErr: true,
		},
		{
			name:    "zero timeout",
			mutate:  func(c *Config) { c.News.TimeoutSeconds = 0 },
			wantErr: true,
		},
		{
			name:    "zero workers",
			mutate:  func(c *Config) { c.News.Workers = 0 },
			wantErr: true,
		},
		{
			name:    "zero queue",
			mutate:  func(c *Config) { c.News.QueueSize = 0 },
			wantErr: true,
		},
		{
			name:    "zero http timeout",
			mutate:  func(c *Config) { c.HTTP.TimeoutSeconds = 0 },
			wantErr: true,
		},
		{
			name:    "unknown backend",
			mutate:  func(c *Config) { c.Log.Backend = "stdlib" },
			wantErr: true,
		},
		{
			name:    "unknown format",
			mutate:  func(c *Config) { c.Log.Format = "xml" },
			wantErr: true,
		},
		{
			name:    "unknown level",
			mutate:  func(c *Config) { c.Log.Level = "trace" },
			wantErr: true,
		},
		{
			name:   "zap backend with text format",
			mutate: func(c *Config) { c.Log.Backend = "zap"; c.Log.Format = "text" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
