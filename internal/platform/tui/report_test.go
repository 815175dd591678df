package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/subkiller/internal/core"
	"github.com/vovakirdan/subkiller/internal/storage"
)

func TestFormatAccuracy(t *testing.T) {
	tests := []struct {
		ratio    float64
		expected string
	}{
		{0, "0.0%"},
		{0.5, "50.0%"},
		{0.48, "48.0%"},
		{1, "100.0%"},
	}

	for _, tt := range tests {
		if got := FormatAccuracy(tt.ratio); got != tt.expected {
			t.Errorf("FormatAccuracy(%v) = %q, expected %q", tt.ratio, got, tt.expected)
		}
	}
}

func TestReportView(t *testing.T) {
	r := Report{
		Title:    "Submarine Killer",
		State:    core.GameState{Hits: 12, Misses: 13, Charges: 25, GameOver: true},
		Accuracy: 0.48,
		Best:     &storage.Result{Hits: 20, Accuracy: 0.8},
		History: []storage.Result{
			{Hits: 12, Misses: 13, Accuracy: 0.48, CreatedAt: time.Now()},
			{Hits: 20, Misses: 5, Accuracy: 0.8, CreatedAt: time.Now()},
		},
	}

	view := r.View(80, 40)
	for _, want := range []string{
		"SUBMARINE KILLER",
		"GAME OVER",
		"hit the submarine 12 times",
		"missed 13 times",
		"48.0%",
		"Best so far: 20 hits",
		"Play again? (y/n)",
		"Accuracy",
		"#2",
		"#1",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("report view missing %q", want)
		}
	}
}

func TestReportViewWithoutHistory(t *testing.T) {
	r := Report{State: core.GameState{Charges: 25, GameOver: true}}
	view := r.View(60, 20)

	if !strings.Contains(view, "0.0%") {
		t.Error("empty game should report 0.0%")
	}
	if strings.Contains(view, "Best so far") || strings.Contains(view, "Misses") {
		t.Error("report without a ledger should have no best or table")
	}
}
