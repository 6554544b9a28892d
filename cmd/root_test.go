package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/they4kman/remotesweep/config"
	"github.com/they4kman/remotesweep/game"
)

func TestDifficultyValue(t *testing.T) {
	var difficulty game.Difficulty
	value := newDifficultyValue(game.DifficultyUnset, &difficulty)
	if value.String() != "unset" {
		t.Errorf("default = %q", value.String())
	}

	tests := map[string]game.Difficulty{
		"easy":   game.Easy,
		"Medium": game.Medium,
		"2":      game.Hard,
	}
	for in, want := range tests {
		t.Run(in, func(t *testing.T) {
			if err := value.Set(in); err != nil {
				t.Fatalf("Set(%q): %v", in, err)
			}
			if difficulty != want {
				t.Errorf("difficulty = %s, want %s", difficulty, want)
			}
		})
	}

	if err := value.Set("nightmare"); err == nil {
		t.Error("expected an error")
	}
}

func TestLoadConfigFlagsOverrideFile(t *testing.T) {
	t.Setenv(config.BaseURLEnv, "")
	path := filepath.Join(t.TempDir(), "sweep.yaml")
	content := "url: http://file.test\nglyphs: ascii\ndifficulty: medium\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	flags := rootCmd.Flags()
	if err := flags.Parse([]string{"--config", path, "--difficulty", "hard"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}

	cfg, err := loadConfig(flags)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.BaseURL != "http://file.test" {
		t.Errorf("url = %q", cfg.BaseURL)
	}
	if cfg.Glyphs != "ascii" {
		t.Errorf("glyphs = %q", cfg.Glyphs)
	}
	if cfg.Difficulty != game.Hard {
		t.Errorf("difficulty = %s", cfg.Difficulty)
	}
}
