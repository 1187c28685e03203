package config

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/rs/zerolog/log"
)

func TestResolveSecretKey(t *testing.T) {
	cases := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{name: "empty", value: "", wantErr: true},
		{name: "production placeholder", value: "change_me_in_production", wantErr: true},
		{name: "example placeholder", value: "replace_with_at_least_32_random_characters", wantErr: true},
		{name: "too short", value: "too-short-secret", wantErr: true},
		{name: "valid", value: "0123456789abcdef0123456789abcdef"},
	}

	for _, testCase := range cases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Setenv("SECRET_KEY", testCase.value)
			secret, err := resolveSecretKey()
			if testCase.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", testCase.value)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected valid secret, got error: %v", err)
			}
			if secret != testCase.value {
				t.Fatalf("expected %q, got %q", testCase.value, secret)
			}
		})
	}
}

func TestResolvePort(t *testing.T) {
	cases := []struct {
		value   string
		want    string
		wantErr bool
	}{
		{value: "", want: "8080"},
		{value: "9090", want: "9090"},
		{value: "0", wantErr: true},
		{value: "70000", wantErr: true},
		{value: "not-a-number", wantErr: true},
	}

	for _, testCase := range cases {
		t.Setenv("PORT", testCase.value)
		port, err := resolvePort()
		if testCase.wantErr {
			if err == nil {
				t.Fatalf("expected PORT %q to fail", testCase.value)
			}
			continue
		}
		if err != nil {
			t.Fatalf("expected PORT %q to pass, got %v", testCase.value, err)
		}
		if port != testCase.want {
			t.Fatalf("expected port %q, got %q", testCase.want, port)
		}
	}
}

func TestFromEnvDefaults(t *testing.T) {
	t.Setenv("SECRET_KEY", "0123456789abcdef0123456789abcdef")
	t.Setenv("PORT", "")
	t.Setenv("DB_PATH", "")
	t.Setenv("TZ", "Not/AZone")
	t.Setenv("COOKIE_SECURE", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("LOG_FORMAT", "")
	t.Setenv("LOGIN_RATE_PER_MINUTE", "")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Port != "8080" || cfg.DBPath != "data/fertilis.db" || cfg.LoginRatePerMinute != 10 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.Location.String() != "UTC" {
		t.Fatalf("expected invalid TZ to fall back to UTC, got %s", cfg.Location)
	}
	if cfg.CookieSecure || cfg.LogLevel != "info" || cfg.LogFormat != "json" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("SECRET_KEY", "0123456789abcdef0123456789abcdef")
	t.Setenv("PORT", "3000")
	t.Setenv("TZ", "Europe/Berlin")
	t.Setenv("COOKIE_SECURE", "true")
	t.Setenv("LOGIN_RATE_PER_MINUTE", "0")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Port != "3000" || !cfg.CookieSecure || cfg.LoginRatePerMinute != 0 {
		t.Fatalf("unexpected overrides: %+v", cfg)
	}
	if cfg.Location.String() != "Europe/Berlin" {
		t.Fatalf("expected Europe/Berlin, got %s", cfg.Location)
	}

	t.Setenv("LOGIN_RATE_PER_MINUTE", "ten")
	if _, err := FromEnv(); err == nil {
		t.Fatal("expected non-numeric login rate to fail")
	}
}

func TestConfigureLoggerHonoursLevel(t *testing.T) {
	original := log.Logger
	t.Cleanup(func() { log.Logger = original })

	var buffer bytes.Buffer
	configureLogger(&buffer, "warn", "json")
	log.Info().Msg("hidden")
	log.Warn().Str("component", "test").Msg("shown")

	output := buffer.String()
	if strings.Contains(output, "hidden") {
		t.Fatalf("expected info message to be filtered, got %q", output)
	}
	if !strings.Contains(output, `"component":"test"`) || !strings.Contains(output, "shown") {
		t.Fatalf("expected structured warn message, got %q", output)
	}
}

func TestSetupLoggingWritesJSONToStderr(t *testing.T) {
	original := log.Logger
	originalStderr := os.Stderr
	reader, writer, err := os.Pipe()
	if err != nil {
		t.Fatalf("create pipe: %v", err)
	}
	os.Stderr = writer
	t.Cleanup(func() {
		os.Stderr = originalStderr
		log.Logger = original
	})

	SetupLogging("info", "json")
	log.Info().Str("component", "test").Msg("to stderr")
	_ = writer.Close()

	output, err := io.ReadAll(reader)
	if err != nil {
		t.Fatalf("read pipe: %v", err)
	}
	if !strings.Contains(string(output), `"message":"to stderr"`) {
		t.Fatalf("expected JSON log line on stderr, got %q", output)
	}
}
