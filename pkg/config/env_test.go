package config

import (
	"testing"
	"time"
)

func TestGetEnvString(t *testing.T) {
	t.Setenv("TEST_STRING", "hello")

	if got := GetEnvString("TEST_STRING", "default"); got != "hello" {
		t.Errorf("got %q, want %q", got, "hello")
	}
	if got := GetEnvString("TEST_STRING_UNSET", "default"); got != "default" {
		t.Errorf("got %q, want %q", got, "default")
	}
}

func TestGetEnvInt(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  int
	}{
		{"valid integer", "42", 42},
		{"negative integer", "-7", -7},
		{"invalid falls back to default", "not-a-number", 10},
		{"empty falls back to default", "", 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_INT", tt.value)
			if got := GetEnvInt("TEST_INT", 10); got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestGetEnvBool(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"1", true},
		{"true", true},
		{"True", true},
		{"0", false},
		{"false", false},
		{"F", false},
		{"yes", true}, // invalid, default true
		{"", true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv("TEST_BOOL", tt.value)
			if got := GetEnvBool("TEST_BOOL", true); got != tt.want {
				t.Errorf("GetEnvBool(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestGetEnvDuration(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  time.Duration
	}{
		{"seconds", "30s", 30 * time.Second},
		{"compound", "1h30m", 90 * time.Minute},
		{"invalid falls back to default", "soon", 10 * time.Second},
		{"empty falls back to default", "", 10 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_DURATION", tt.value)
			if got := GetEnvDuration("TEST_DURATION", 10*time.Second); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetEnvFloat(t *testing.T) {
	t.Setenv("TEST_FLOAT", "0.85")
	if got := GetEnvFloat("TEST_FLOAT", 0.7); got != 0.85 {
		t.Errorf("got %g, want 0.85", got)
	}

	t.Setenv("TEST_FLOAT", "warm")
	if got := GetEnvFloat("TEST_FLOAT", 0.7); got != 0.7 {
		t.Errorf("got %g, want default 0.7", got)
	}
}

func TestValidatePositiveDuration(t *testing.T) {
	if err := ValidatePositiveDuration(5 * time.Second); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := ValidatePositiveDuration(0); err == nil {
		t.Error("want error for zero duration")
	}
	if err := ValidatePositiveDuration(-time.Second); err == nil {
		t.Error("want error for negative duration")
	}
}

func TestValidateDurationRange(t *testing.T) {
	tests := []struct {
		name     string
		d        time.Duration
		min, max time.Duration
		wantErr  bool
	}{
		{"within range", 5 * time.Second, time.Second, time.Minute, false},
		{"at minimum", time.Second, time.Second, time.Minute, false},
		{"at maximum", time.Minute, time.Second, time.Minute, false},
		{"below minimum", 500 * time.Millisecond, time.Second, time.Minute, true},
		{"above maximum", 2 * time.Minute, time.Second, time.Minute, true},
		{"inverted range", 5 * time.Second, time.Minute, time.Second, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDurationRange(tt.d, tt.min, tt.max)
			if (err != nil) != tt.wantErr {
				t.Errorf("got err=%v, wantErr=%v", err, tt.wantErr)
			}
		})
	}
}
