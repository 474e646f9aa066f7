package config

import (
	"os"
	"testing"
)

func TestLoadFromEnv(t *testing.T) {
	tests := []struct {
		name         string
		envVars      map[string]string
		expectedPort string
		expectedType string
	}{
		{
			name:         "defaults when nothing set",
			envVars:      map[string]string{},
			expectedPort: "8000",
			expectedType: "memory",
		},
		{
			name:         "uses PORT env var when set",
			envVars:      map[string]string{"PORT": "3000"},
			expectedPort: "3000",
			expectedType: "memory",
		},
		{
			name:         "uses CACHE_TYPE env var when set",
			envVars:      map[string]string{"CACHE_TYPE": "redis"},
			expectedPort: "8000",
			expectedType: "redis",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Clear environment
			os.Clearenv()

			// Set test environment variables
			for k, v := range tt.envVars {
				os.Setenv(k, v)
			}

			cfg, err := LoadFromEnv()
			if err != nil {
				t.Fatalf("LoadFromEnv() error = %v", err)
			}

			if cfg.Server.Port != tt.expectedPort {
				t.Errorf("Port = %v, want %v", cfg.Server.Port, tt.expectedPort)
			}

			if cfg.Cache.Type != tt.expectedType {
				t.Errorf("Cache.Type = %v, want %v", cfg.Cache.Type, tt.expectedType)
			}
		})
	}
}

func TestLoadFromEnv_RateLimitDefaults(t *testing.T) {
	os.Clearenv()

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv() error = %v", err)
	}

	if cfg.RateLimit.RequestsPerMinute != 100 {
		t.Errorf("RequestsPerMinute = %d, want 100", cfg.RateLimit.RequestsPerMinute)
	}
	if cfg.RateLimit.Burst != 20 {
		t.Errorf("Burst = %d, want 20", cfg.RateLimit.Burst)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid defaults",
			mutate:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "empty port",
			mutate:  func(c *Config) { c.Server.Port = "" },
			wantErr: true,
		},
		{
			name:    "unknown cache type",
			mutate:  func(c *Config) { c.Cache.Type = "etcd" },
			wantErr: true,
		},
		{
			name: "redis cache without address",
			mutate: func(c *Config) {
				c.Cache.Type = "redis"
				c.Cache.Redis.Address = ""
			},
			wantErr: true,
		},
		{
			name:    "zero rate limit",
			mutate:  func(c *Config) { c.RateLimit.RequestsPerMinute = 0 },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Clearenv()
			cfg, _ := LoadFromEnv()
			tt.mutate(cfg)

			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
