package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-battleship/internal/storage"
)

func seededStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "results.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	for _, r := range []storage.Result{
		{Player: "ahab", Difficulty: "hard", Won: true, Score: 64, Shots: 40, Hits: 17},
		{Player: "ishmael", Difficulty: "hard", Score: 12, Shots: 60, Hits: 14},
		{Player: "ahab", Difficulty: "easy", Won: true, Score: 90, Shots: 30, Hits: 17},
	} {
		if _, err := store.SaveResult(r); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}
	return store
}

func TestPrintScores(t *testing.T) {
	store := seededStore(t)

	var out bytes.Buffer
	if err := printScores(&out, store, "hard", 10); err != nil {
		t.Fatalf("printScores() failed: %v", err)
	}
	got := out.String()
	for _, want := range []string{"Battleship results - hard", "ahab", "ishmael", "Games: 2", "Best: 64"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "Best: 90") {
		t.Error("best score should only count the chosen difficulty")
	}
}

func TestPrintScoresEmpty(t *testing.T) {
	store := seededStore(t)

	var out bytes.Buffer
	if err := printScores(&out, store, "medium", 10); err != nil {
		t.Fatalf("printScores() failed: %v", err)
	}
	if !strings.Contains(out.String(), "No games recorded yet.") {
		t.Errorf("unexpected output:\n%s", out.String())
	}
}

func TestPrintPlayerResults(t *testing.T) {
	store := seededStore(t)

	var out bytes.Buffer
	if err := printPlayerResults(&out, store, "ahab", 10); err != nil {
		t.Fatalf("printPlayerResults() failed: %v", err)
	}
	got := out.String()
	if strings.Contains(got, "ishmael") {
		t.Error("other players should not be listed")
	}
	if strings.Count(got, "ahab") != 3 { // title plus two games
		t.Errorf("expected two games for ahab:\n%s", got)
	}

	out.Reset()
	if err := printPlayerResults(&out, store, "queequeg", 10); err != nil {
		t.Fatalf("printPlayerResults() failed: %v", err)
	}
	if !strings.Contains(out.String(), "No games recorded for queequeg.") {
		t.Errorf("unexpected output:\n%s", out.String())
	}
}

func TestClearScores(t *testing.T) {
	store := seededStore(t)

	var out bytes.Buffer
	if err := clearScores(&out, store, "hard"); err != nil {
		t.Fatalf("clearScores() failed: %v", err)
	}
	if !strings.Contains(out.String(), "Deleted 2 results (hard)") {
		t.Errorf("unexpected output: %q", out.String())
	}

	if hard, _ := store.TopResults("hard", 10); len(hard) != 0 {
		t.Errorf("hard results left: %d", len(hard))
	}
	if easy, _ := store.TopResults("easy", 10); len(easy) != 1 {
		t.Errorf("easy results should survive, got %d", len(easy))
	}

	if err := clearScores(&out, store, ""); err != nil {
		t.Fatalf("clearScores() failed: %v", err)
	}
	if all, _ := store.TopResults("", 10); len(all) != 0 {
		t.Errorf("results left after clearing all: %d", len(all))
	}
}
