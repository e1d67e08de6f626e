package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultPlatformerConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	cfg, err := decode(defaultPlatformerYAML)
	if err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	if cfg != DefaultPlatformerConfig() {
		t.Errorf("embedded default = %+v, expected %+v", cfg, DefaultPlatformerConfig())
	}
}

func TestLoadPlatformerFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadPlatformer("")
	if err != nil {
		t.Fatalf("LoadPlatformer failed: %v", err)
	}
	if cfg != DefaultPlatformerConfig() {
		t.Errorf("LoadPlatformer(\"\") = %+v, expected defaults", cfg)
	}
}

func TestLoadPlatformerUserDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	writeFile(t, filepath.Join(home, ".platformer", "configs", ConfigFile), "player:\n  max_lives: 7\n")

	cfg, err := LoadPlatformer("")
	if err != nil {
		t.Fatalf("LoadPlatformer failed: %v", err)
	}
	if cfg.Player.MaxLives != 7 {
		t.Errorf("MaxLives = %d, expected 7", cfg.Player.MaxLives)
	}
	if cfg.Physics.Gravity != 0.5 {
		t.Errorf("Gravity = %g, expected default 0.5 for missing key", cfg.Physics.Gravity)
	}
}

func TestLoadPlatformerSkipsInvalidUserFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	writeFile(t, filepath.Join(home, ".platformer", "configs", ConfigFile), "physics:\n  gravity: -1\n")

	cfg, err := LoadPlatformer("")
	if err != nil {
		t.Fatalf("LoadPlatformer failed: %v", err)
	}
	if cfg.Physics.Gravity != 0.5 {
		t.Errorf("invalid user file should be skipped, Gravity = %g", cfg.Physics.Gravity)
	}
}

func TestLoadPlatformerCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	writeFile(t, path, "rules:\n  fall_death: true\n  fall_margin: 50\nphysics:\n  speed_max: 9\n")

	cfg, err := LoadPlatformer(path)
	if err != nil {
		t.Fatalf("LoadPlatformer failed: %v", err)
	}
	if !cfg.Rules.FallDeath || cfg.Rules.FallMargin != 50 {
		t.Errorf("rules = %+v", cfg.Rules)
	}
	if cfg.Physics.SpeedMax != 9 {
		t.Errorf("SpeedMax = %g, expected 9", cfg.Physics.SpeedMax)
	}
	if cfg.Physics.Acceleration != 0.75 {
		t.Errorf("Acceleration = %g, expected 0.75", cfg.Physics.Acceleration)
	}
}

func TestLoadPlatformerCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		create  bool
	}{
		{"missing file", "", false},
		{"bad yaml", "physics: [1, 2", true},
		{"invalid values", "player:\n  max_lives: 0\n", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, tc.name+".yaml")
			if tc.create {
				writeFile(t, path, tc.content)
			}
			if _, err := LoadPlatformer(path); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *PlatformerConfig)
	}{
		{"zero acceleration", func(c *PlatformerConfig) { c.Physics.Acceleration = 0 }},
		{"zero deceleration", func(c *PlatformerConfig) { c.Physics.Deceleration = 0 }},
		{"zero speed", func(c *PlatformerConfig) { c.Physics.SpeedMax = 0 }},
		{"zero jump", func(c *PlatformerConfig) { c.Physics.JumpSpeedMax = 0 }},
		{"negative gravity", func(c *PlatformerConfig) { c.Physics.Gravity = -0.5 }},
		{"negative boost", func(c *PlatformerConfig) { c.Physics.JumpBoostTicks = -1 }},
		{"flat player", func(c *PlatformerConfig) { c.Player.Height = 0 }},
		{"no lives", func(c *PlatformerConfig) { c.Player.MaxLives = 0 }},
		{"negative recovery", func(c *PlatformerConfig) { c.Player.RecoveryTicks = -1 }},
		{"no pole", func(c *PlatformerConfig) { c.Items.GoalPoleWidth = 0 }},
		{"negative coin margin", func(c *PlatformerConfig) { c.Items.CoinMargin = -1 }},
		{"negative fall margin", func(c *PlatformerConfig) { c.Rules.FallMargin = -1 }},
		{"no hold", func(c *PlatformerConfig) { c.Input.HoldTicks = 0 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultPlatformerConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in       string
		expected DifficultyPreset
		wantErr  bool
	}{
		{"", DifficultyNormal, false},
		{"easy", DifficultyEasy, false},
		{" HARD ", DifficultyHard, false},
		{"nightmare", "", true},
	}

	for _, tc := range tests {
		got, err := ParsePreset(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParsePreset(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if got != tc.expected {
			t.Errorf("ParsePreset(%q) = %q, expected %q", tc.in, got, tc.expected)
		}
	}
}

func TestApplyPlatformerPreset(t *testing.T) {
	normal := DefaultPlatformerConfig()
	ApplyPlatformerPreset(&normal, DifficultyNormal)
	if normal != DefaultPlatformerConfig() {
		t.Error("normal preset should not change the config")
	}

	easy := DefaultPlatformerConfig()
	ApplyPlatformerPreset(&easy, DifficultyEasy)
	if easy.Player.MaxLives != 5 || easy.Rules.FallDeath {
		t.Errorf("easy preset = %+v", easy.Player)
	}

	hard := DefaultPlatformerConfig()
	ApplyPlatformerPreset(&hard, DifficultyHard)
	if hard.Player.MaxLives != 2 || !hard.Rules.FallDeath {
		t.Errorf("hard preset lives=%d fall=%v", hard.Player.MaxLives, hard.Rules.FallDeath)
	}

	for _, p := range Presets() {
		cfg := DefaultPlatformerConfig()
		ApplyPlatformerPreset(&cfg, p)
		if err := cfg.Validate(); err != nil {
			t.Errorf("preset %s produces invalid config: %v", p, err)
		}
	}
}
