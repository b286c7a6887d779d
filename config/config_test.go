package config

import (
	"testing"
	"time"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"poller": map[string]any{
			"deviceTimeout": "30s",
			"deviceDelay":   "2s",
		},
		"env": map[string]any{
			"serviceName": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "POLLER_DEVICETIMEOUT", want: "poller.deviceTimeout"},
		{envKey: "POLLER_DEVICEDELAY", want: "poller.deviceDelay"},
		{envKey: "ENV_SERVICENAME", want: "env.serviceName"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyPollerDefaults(t *testing.T) {
	var p PollerConfig
	applyPollerDefaults(&p)

	if p.Interval != 30*time.Second {
		t.Fatalf("Interval = %s, want 30s", p.Interval)
	}
	if p.DeviceTimeout != 30*time.Second {
		t.Fatalf("DeviceTimeout = %s, want 30s", p.DeviceTimeout)
	}
	if p.DeviceDelay != 2*time.Second {
		t.Fatalf("DeviceDelay = %s, want 2s", p.DeviceDelay)
	}
	if p.Timezone != "UTC" {
		t.Fatalf("Timezone = %q, want UTC", p.Timezone)
	}

	// Explicit values survive.
	p = PollerConfig{Interval: time.Minute, DeviceTimeout: 10 * time.Second, DeviceDelay: time.Second, Timezone: "Asia/Kolkata"}
	applyPollerDefaults(&p)
	if p.Interval != time.Minute || p.Timezone != "Asia/Kolkata" {
		t.Fatalf("defaults overwrote explicit values: %+v", p)
	}
}

func TestPollerConfigLocation(t *testing.T) {
	loc, err := PollerConfig{Timezone: "Asia/Kolkata"}.Location()
	if err != nil {
		t.Fatalf("Location() error: %v", err)
	}
	if loc.String() != "Asia/Kolkata" {
		t.Fatalf("Location() = %s, want Asia/Kolkata", loc)
	}

	if _, err := (PollerConfig{Timezone: "Not/AZone"}).Location(); err == nil {
		t.Fatal("expected error for bogus timezone")
	}
}
