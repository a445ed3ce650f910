package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	// Empty values read as unset.
	for _, key := range []string{"PORT", "WORKER_COUNT", "MAX_QUEUE_SIZE",
		"MAX_UPLOAD_BYTES", "JOB_TTL", "DEFAULT_TARGET_TONE", "DEFAULT_DETAIL_LEVEL"} {
		t.Setenv(key, "")
	}
	cfg := Load()

	if cfg.Port != "8091" {
		t.Errorf("expected default port 8091, got %q", cfg.Port)
	}
	if cfg.WorkerCount != 4 {
		t.Errorf("expected 4 workers, got %d", cfg.WorkerCount)
	}
	if cfg.MaxQueueSize != 100 {
		t.Errorf("expected queue size 100, got %d", cfg.MaxQueueSize)
	}
	if cfg.MaxUploadBytes != 52428800 {
		t.Errorf("expected 50MB upload limit, got %d", cfg.MaxUploadBytes)
	}
	if cfg.JobTTL != time.Hour {
		t.Errorf("expected 1h job TTL, got %v", cfg.JobTTL)
	}
	if cfg.DefaultTargetTone != "neutral" || cfg.DefaultDetailLevel != "standard" {
		t.Errorf("unexpected analysis defaults: %q %q",
			cfg.DefaultTargetTone, cfg.DefaultDetailLevel)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("WORKER_COUNT", "8")
	t.Setenv("JOB_TTL", "30m")
	t.Setenv("DEFAULT_TARGET_TONE", "formal")

	cfg := Load()
	if cfg.Port != "9000" {
		t.Errorf("expected port 9000, got %q", cfg.Port)
	}
	if cfg.WorkerCount != 8 {
		t.Errorf("expected 8 workers, got %d", cfg.WorkerCount)
	}
	if cfg.JobTTL != 30*time.Minute {
		t.Errorf("expected 30m TTL, got %v", cfg.JobTTL)
	}
	if cfg.DefaultTargetTone != "formal" {
		t.Errorf("expected formal default tone, got %q", cfg.DefaultTargetTone)
	}
}

func TestLoad_ClampsInvalidValues(t *testing.T) {
	t.Setenv("WORKER_COUNT", "-2")
	t.Setenv("MAX_QUEUE_SIZE", "0")
	t.Setenv("JOB_TTL", "garbage")
	t.Setenv("DEFAULT_MIN_SECTIONS", "5")
	t.Setenv("DEFAULT_MAX_SECTIONS", "2")

	cfg := Load()
	if cfg.WorkerCount != 4 {
		t.Errorf("expected worker count clamped to 4, got %d", cfg.WorkerCount)
	}
	if cfg.MaxQueueSize != 100 {
		t.Errorf("expected queue size clamped to 100, got %d", cfg.MaxQueueSize)
	}
	if cfg.JobTTL != time.Hour {
		t.Errorf("expected TTL fallback to 1h, got %v", cfg.JobTTL)
	}
	if cfg.DefaultMaxSections != 5 {
		t.Errorf("expected max sections raised to min, got %d", cfg.DefaultMaxSections)
	}
}

func TestValidate(t *testing.T) {
	valid := Config{Port: "8091", DefaultDetailLevel: "standard"}
	if err := valid.Validate(); err != nil {
		t.Errorf("expected valid config, got %v", err)
	}

	noPort := valid
	noPort.Port = ""
	if err := noPort.Validate(); err == nil {
		t.Error("expected an error for an empty port")
	}

	storeNoKey := valid
	storeNoKey.ResultstoreURL = "http://store:8080"
	if err := storeNoKey.Validate(); err == nil {
		t.Error("expected an error when the store URL has no API key")
	}
	storeNoKey.ResultstoreAPIKey = "k"
	if err := storeNoKey.Validate(); err != nil {
		t.Errorf("expected valid store config, got %v", err)
	}

	badDetail := valid
	badDetail.DefaultDetailLevel = "verbose"
	if err := badDetail.Validate(); err == nil {
		t.Error("expected an error for an unknown detail level")
	}
}
