package config

import "testing"

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.General.DefaultStrategy != "avalanche" {
		t.Errorf("DefaultStrategy = %q, want avalanche", cfg.General.DefaultStrategy)
	}
	if cfg.Minimum.Percent != 2 || cfg.Minimum.Flat != 25 {
		t.Errorf("minimum heuristic = %v%%/%v, want 2%%/25", cfg.Minimum.Percent, cfg.Minimum.Flat)
	}
	if cfg.Mortgage.DefaultTermYears != 30 {
		t.Errorf("DefaultTermYears = %d, want 30", cfg.Mortgage.DefaultTermYears)
	}
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("Load without a file = %+v, want defaults", cfg)
	}
	if Exists() {
		t.Error("Exists() should be false before any Save")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.General.DefaultStrategy = "snowball"
	budget := 750.0
	cfg.General.MonthlyBudget = &budget
	cfg.Minimum.Flat = 35

	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !Exists() {
		t.Fatal("Exists() should be true after Save")
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.General.DefaultStrategy != "snowball" {
		t.Errorf("DefaultStrategy = %q, want snowball", loaded.General.DefaultStrategy)
	}
	if loaded.General.MonthlyBudget == nil || *loaded.General.MonthlyBudget != 750 {
		t.Errorf("MonthlyBudget = %v, want 750", loaded.General.MonthlyBudget)
	}
	if loaded.Minimum.Flat != 35 {
		t.Errorf("Minimum.Flat = %v, want 35", loaded.Minimum.Flat)
	}
}
