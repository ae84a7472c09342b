package config

import (
	"testing"
	"time"
)

func TestRequireEnv(t *testing.T) {
	tests := []struct {
		name      string
		key       string
		value     string
		wantPanic bool
	}{
		{
			name:  "variable set",
			key:   "TEST_VAR",
			value: "test_value",
		},
		{
			name:      "variable not set",
			key:       "TEST_VAR_MISSING",
			wantPanic: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			if tt.wantPanic {
				defer func() {
					if r := recover(); r == nil {
						t.Errorf("requireEnv() should have panicked")
					}
				}()
			}

			result := requireEnv(tt.key)
			if !tt.wantPanic && result != tt.value {
				t.Errorf("requireEnv() = %v, want %v", result, tt.value)
			}
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("API_TOKEN", "secret")
	t.Setenv("BOOKMARKS_ENV", "")
	t.Setenv("NODE_ENV", "")
	t.Setenv("BOOKMARKS_LISTEN_PORT", "")
	t.Setenv("BOOKMARKS_REDIS_ADDR", "")
	t.Setenv("BOOKMARKS_RATE_LIMIT_BURST", "")

	cfg := Load()

	if cfg.APIToken != "secret" {
		t.Errorf("APIToken = %q, want %q", cfg.APIToken, "secret")
	}
	if cfg.Env != EnvDevelopment {
		t.Errorf("Env = %q, want %q", cfg.Env, EnvDevelopment)
	}
	if cfg.Production() {
		t.Error("Production() should be false by default")
	}
	if cfg.ListenPort != ":8000" {
		t.Errorf("ListenPort = %q, want %q", cfg.ListenPort, ":8000")
	}
	if cfg.RedisAddr != "" {
		t.Errorf("RedisAddr = %q, want empty (memory store)", cfg.RedisAddr)
	}
	if cfg.RateLimitBurst != 0 {
		t.Errorf("RateLimitBurst = %d, want 0", cfg.RateLimitBurst)
	}
	if cfg.LogFile != "info.log" {
		t.Errorf("LogFile = %q, want %q", cfg.LogFile, "info.log")
	}
	if cfg.StatsInterval != 30*time.Second {
		t.Errorf("StatsInterval = %v, want 30s", cfg.StatsInterval)
	}
}

func TestLoadEnvFallback(t *testing.T) {
	t.Setenv("API_TOKEN", "secret")

	tests := []struct {
		name           string
		bookmarksEnv   string
		nodeEnv        string
		wantProduction bool
	}{
		{name: "node env production", nodeEnv: "production", wantProduction: true},
		{name: "bookmarks env wins", bookmarksEnv: "development", nodeEnv: "production", wantProduction: false},
		{name: "bookmarks env production", bookmarksEnv: "production", wantProduction: true},
		{name: "unknown env is not production", nodeEnv: "staging", wantProduction: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("BOOKMARKS_ENV", tt.bookmarksEnv)
			t.Setenv("NODE_ENV", tt.nodeEnv)

			cfg := Load()
			if cfg.Production() != tt.wantProduction {
				t.Errorf("Production() = %v, want %v (env=%q)", cfg.Production(), tt.wantProduction, cfg.Env)
			}
		})
	}
}

func TestLoadPanicsWithoutToken(t *testing.T) {
	t.Setenv("API_TOKEN", "")

	defer func() {
		if r := recover(); r == nil {
			t.Errorf("Load() should have panicked without API_TOKEN")
		}
	}()
	Load()
}

func TestSplitAndTrim(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected []string
	}{
		{name: "empty", value: "", expected: nil},
		{name: "single value", value: "10.0.0.0/8", expected: []string{"10.0.0.0/8"}},
		{name: "multiple values", value: "a.example.com, b.example.com", expected: []string{"a.example.com", "b.example.com"}},
		{name: "quoted and blank", value: `"a", ,'b'`, expected: []string{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := splitAndTrim(tt.value)
			if len(result) != len(tt.expected) {
				t.Fatalf("splitAndTrim() length = %v, want %v", len(result), len(tt.expected))
			}
			for i := range result {
				if result[i] != tt.expected[i] {
					t.Errorf("splitAndTrim()[%d] = %v, want %v", i, result[i], tt.expected[i])
				}
			}
		})
	}
}

func TestMustDuration(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		value    string
		def      time.Duration
		expected time.Duration
	}{
		{
			name:     "valid duration",
			key:      "TEST_DURATION",
			value:    "5s",
			def:      1 * time.Second,
			expected: 5 * time.Second,
		},
		{
			name:     "invalid duration uses default",
			key:      "TEST_DURATION_INVALID",
			value:    "invalid",
			def:      10 * time.Second,
			expected: 10 * time.Second,
		},
		{
			name:     "missing variable uses default",
			key:      "TEST_DURATION_MISSING",
			value:    "",
			def:      15 * time.Second,
			expected: 15 * time.Second,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			result := mustDuration(tt.key, tt.def)
			if result != tt.expected {
				t.Errorf("mustDuration() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestMustBool(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		value    string
		def      bool
		expected bool
	}{
		{name: "true value", key: "TEST_BOOL", value: "true", def: false, expected: true},
		{name: "false value", key: "TEST_BOOL_FALSE", value: "false", def: true, expected: false},
		{name: "invalid value uses default", key: "TEST_BOOL_INVALID", value: "invalid", def: true, expected: true},
		{name: "missing variable uses default", key: "TEST_BOOL_MISSING", value: "", def: false, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			result := mustBool(tt.key, tt.def)
			if result != tt.expected {
				t.Errorf("mustBool() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestGetenvInt(t *testing.T) {
	t.Setenv("TEST_INT", "42")
	t.Setenv("TEST_INT_INVALID", "not_a_number")

	if got := getenvInt("TEST_INT", 1); got != 42 {
		t.Errorf("getenvInt() = %v, want 42", got)
	}
	if got := getenvInt("TEST_INT_INVALID", 7); got != 7 {
		t.Errorf("getenvInt() invalid = %v, want default 7", got)
	}
}
