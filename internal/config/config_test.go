package config

import (
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-battleship/internal/games/battleship/ai"
	"github.com/vovakirdan/tui-battleship/internal/games/battleship/core"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "battleship.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefaultsAreValid(t *testing.T) {
	cfg := DefaultBattleshipConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}

	embedded, err := parse(defaultBattleshipYAML, "embedded")
	if err != nil {
		t.Fatalf("embedded config invalid: %v", err)
	}
	if embedded.Grid != cfg.Grid || embedded.Scoring != cfg.Scoring || embedded.Display != cfg.Display {
		t.Errorf("embedded YAML and hardcoded defaults differ: %+v vs %+v", embedded, cfg)
	}
}

func TestLoadCustomPartial(t *testing.T) {
	path := writeConfig(t, "ai:\n  difficulty: easy\ngrid:\n  width: 8\n  height: 8\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Level() != ai.Easy {
		t.Errorf("expected easy, got %s", cfg.Level())
	}
	if cfg.Grid.Width != 8 || cfg.Grid.Height != 8 {
		t.Errorf("expected 8x8, got %dx%d", cfg.Grid.Width, cfg.Grid.Height)
	}
	// Untouched sections keep defaults
	if cfg.Scoring.HitPoints != 12 {
		t.Errorf("expected default hit points, got %d", cfg.Scoring.HitPoints)
	}
}

func TestLoadCustomMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing custom config")
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	testCases := []struct {
		name string
		body string
		want string
	}{
		{"bad yaml", "grid: [", "parse"},
		{"tiny grid", "grid:\n  width: 2\n  height: 2\n", "grid width"},
		{"unknown ship", "fleet: [tug, frigate]\n", "frigate"},
		{"duplicate ship", "fleet: [tug, tug]\n", "twice"},
		{"bad difficulty", "ai:\n  difficulty: brutal\n", "brutal"},
		{"negative scoring", "scoring:\n  shot_cost: -1\n", "negative"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tc.body))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q does not mention %q", err, tc.want)
			}
		})
	}
}

func TestFleetMustFit(t *testing.T) {
	cfg := DefaultBattleshipConfig()
	cfg.Grid = GridConfig{Width: 6, Height: 6}
	cfg.Fleet = []string{"aircraft_carrier", "battleship", "destroyer", "submarine", "tug"}
	if err := cfg.Validate(); err != nil {
		t.Errorf("full fleet should fit on 6x6: %v", err)
	}
}

func TestValidFleetDeploysForEverySeed(t *testing.T) {
	cfg := DefaultBattleshipConfig()
	cfg.Grid = GridConfig{Width: MinGridSize, Height: MinGridSize}
	cfg.Fleet = nil
	if err := cfg.Validate(); err != nil {
		t.Fatalf("full fleet should fit on %dx%d: %v", MinGridSize, MinGridSize, err)
	}
	ships, err := cfg.Ships()
	if err != nil {
		t.Fatalf("Ships() failed: %v", err)
	}

	failures := 0
	for seed := int64(0); seed < 1000; seed++ {
		rng := rand.New(rand.NewSource(seed))
		_, err := core.NewSession(core.SessionOptions{
			Width:    cfg.Grid.Width,
			Height:   cfg.Grid.Height,
			Fleet:    ships,
			Computer: ai.New(cfg.Level(), rng),
			Rng:      rng,
		})
		if err != nil {
			failures++
			if failures == 1 {
				t.Errorf("seed %d: %v", seed, err)
			}
		}
	}
	if failures > 0 {
		t.Errorf("%d of 1000 sessions failed to deploy", failures)
	}
}

func TestShipsDefaultsToFullFleet(t *testing.T) {
	cfg := DefaultBattleshipConfig()
	cfg.Fleet = nil
	ships, err := cfg.Ships()
	if err != nil {
		t.Fatalf("Ships failed: %v", err)
	}
	if len(ships) != len(core.AllShips()) {
		t.Errorf("expected full fleet, got %v", ships)
	}
}

func TestLevelFallsBackToHard(t *testing.T) {
	cfg := DefaultBattleshipConfig()
	cfg.AI.Difficulty = ""
	if cfg.Level() != ai.Hard {
		t.Errorf("expected hard, got %s", cfg.Level())
	}
}

func TestApplyDifficulty(t *testing.T) {
	cfg := DefaultBattleshipConfig()

	if err := ApplyDifficulty(&cfg, "Medium"); err != nil {
		t.Fatalf("ApplyDifficulty failed: %v", err)
	}
	if cfg.AI.Difficulty != "medium" {
		t.Errorf("expected medium, got %q", cfg.AI.Difficulty)
	}

	if err := ApplyDifficulty(&cfg, ""); err != nil || cfg.AI.Difficulty != "medium" {
		t.Errorf("empty name should be a no-op")
	}
	if err := ApplyDifficulty(&cfg, "impossible"); err == nil {
		t.Error("expected error for unknown difficulty")
	}
}

func TestCoreScoring(t *testing.T) {
	got := DefaultBattleshipConfig().CoreScoring()
	if got != core.DefaultScoring() {
		t.Errorf("CoreScoring() = %+v, expected %+v", got, core.DefaultScoring())
	}
}
