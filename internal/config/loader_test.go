package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, "grid_width: 20\ngrid_height: 12\nstarting_money: 750\nend_x: 18\nend_y: 6\nstart_y: 6\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load = %v", err)
	}
	if cfg.GridWidth != 20 || cfg.GridHeight != 12 || cfg.StartingMoney != 750 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	// Omitted fields keep their defaults.
	if cfg.SpawnInterval != SpawnIntervalTicks || cfg.WaveBonus != WaveBonusPerWave {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"start outside grid", "grid_width: 10\ngrid_height: 10\nstart_x: 12\nend_x: 5\nstart_y: 5\nend_y: 5\n"},
		{"start equals end", "start_x: 5\nstart_y: 5\nend_x: 5\nend_y: 5\n"},
		{"flat health scaling", "wave_health_multiplier: 1.0\n"},
		{"zero spawn interval", "spawn_interval_ticks: 0\n"},
	}
	for _, tc := range tests {
		if _, err := Load(writeConfig(t, tc.yaml)); err == nil {
			t.Errorf("%s: Load accepted an invalid config", tc.name)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestDefaultValidates(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("the built-in configuration must validate: %v", err)
	}
}
