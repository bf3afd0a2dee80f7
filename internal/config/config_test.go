package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"STORE_BACKEND", "DATABASE_URL", "SQLITE_PATH", "DATA_DIR", "LOCAL_TIMEZONE",
		"CHECK_INTERVAL", "DUE_WINDOW", "NOTIFY_WHATSAPP_TO", "TWILIO_ACCOUNT_SID",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.StoreBackend != BackendSQL {
		t.Errorf("StoreBackend = %q, want %q", cfg.StoreBackend, BackendSQL)
	}
	if cfg.SQLitePath != "studyplanner.db" {
		t.Errorf("SQLitePath = %q", cfg.SQLitePath)
	}
	if cfg.CheckInterval != time.Minute {
		t.Errorf("CheckInterval = %v, want 1m", cfg.CheckInterval)
	}
	if cfg.DueWindow != 5*time.Minute {
		t.Errorf("DueWindow = %v, want 5m", cfg.DueWindow)
	}
	if cfg.NotificationsEnabled() {
		t.Error("notifications should be disabled without Twilio credentials")
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("STORE_BACKEND", "Disk")
	t.Setenv("DATA_DIR", "/tmp/planner")
	t.Setenv("LOCAL_TIMEZONE", "UTC")
	t.Setenv("CHECK_INTERVAL", "30s")
	t.Setenv("DUE_WINDOW", "10m")
	t.Setenv("TWILIO_ACCOUNT_SID", "AC123")
	t.Setenv("TWILIO_AUTH_TOKEN", "token")
	t.Setenv("TWILIO_WHATSAPP_NUMBER", "+14155238886")
	t.Setenv("NOTIFY_WHATSAPP_TO", "+15551234567")

	cfg := Load()
	if cfg.StoreBackend != BackendDisk {
		t.Errorf("StoreBackend = %q, want disk", cfg.StoreBackend)
	}
	if cfg.DataDir != "/tmp/planner" {
		t.Errorf("DataDir = %q", cfg.DataDir)
	}
	if cfg.LocalTimezone != time.UTC {
		t.Errorf("LocalTimezone = %v, want UTC", cfg.LocalTimezone)
	}
	if cfg.CheckInterval != 30*time.Second || cfg.DueWindow != 10*time.Minute {
		t.Errorf("durations = %v / %v", cfg.CheckInterval, cfg.DueWindow)
	}
	if !cfg.NotificationsEnabled() {
		t.Error("notifications should be enabled")
	}
}

func TestLoadFallbacks(t *testing.T) {
	t.Setenv("STORE_BACKEND", "cassandra")
	t.Setenv("LOCAL_TIMEZONE", "Mars/Olympus_Mons")
	t.Setenv("CHECK_INTERVAL", "often")

	cfg := Load()
	if cfg.StoreBackend != BackendSQL {
		t.Errorf("StoreBackend = %q, want sql", cfg.StoreBackend)
	}
	if cfg.LocalTimezone != time.Local {
		t.Errorf("LocalTimezone = %v, want Local", cfg.LocalTimezone)
	}
	if cfg.CheckInterval != time.Minute {
		t.Errorf("CheckInterval = %v, want 1m", cfg.CheckInterval)
	}
}
