package cli

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/footbagworks/panelcut/pkg/settings"
)

func key(k tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: k} }

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func update(t *testing.T, m TuneModel, msg tea.Msg) (TuneModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	tm, ok := next.(TuneModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return tm, cmd
}

func TestTuneModelInitialMetrics(t *testing.T) {
	m := NewTuneModel(settings.Default(), "bag.toml")
	if m.err != nil {
		t.Fatalf("err = %v", m.err)
	}
	// Default pentagon: 10 holes on each of 5 edges.
	if m.metrics.holes != 50 {
		t.Errorf("holes = %d, want 50", m.metrics.holes)
	}
	if m.metrics.utilization <= 0 {
		t.Errorf("utilization = %v, want > 0", m.metrics.utilization)
	}
}

func TestTuneModelAdjustShape(t *testing.T) {
	m := NewTuneModel(settings.Default(), "bag.toml")

	m, _ = update(t, m, key(tea.KeyRight))
	if m.Snap.Shape != 6 {
		t.Fatalf("Shape = %d, want 6", m.Snap.Shape)
	}
	if m.metrics.holes != 60 {
		t.Errorf("holes = %d, want 60", m.metrics.holes)
	}

	// Shape is clamped at the star.
	for range 10 {
		m, _ = update(t, m, key(tea.KeyRight))
	}
	if m.Snap.Shape != settings.StarSides {
		t.Errorf("Shape = %d, want %d", m.Snap.Shape, settings.StarSides)
	}
	if !strings.Contains(m.View(), "star") {
		t.Error("view does not show the star")
	}
}

func TestTuneModelNavigateAndToggle(t *testing.T) {
	m := NewTuneModel(settings.Default(), "bag.toml")

	for range 4 {
		m, _ = update(t, m, key(tea.KeyDown))
	}
	if tuneFields[m.Cursor].label != "curved" {
		t.Fatalf("cursor on %q, want curved", tuneFields[m.Cursor].label)
	}
	before := m.metrics.area
	m, _ = update(t, m, runes(" "))
	if !m.Snap.Curved {
		t.Fatal("curved not toggled")
	}
	if m.metrics.area <= before {
		t.Errorf("curved area %v not larger than straight %v", m.metrics.area, before)
	}

	m, _ = update(t, m, key(tea.KeyUp))
	if m.Cursor != 3 {
		t.Errorf("Cursor = %d, want 3", m.Cursor)
	}
}

func TestTuneModelCursorBounds(t *testing.T) {
	m := NewTuneModel(settings.Default(), "bag.toml")
	m, _ = update(t, m, key(tea.KeyUp))
	if m.Cursor != 0 {
		t.Errorf("Cursor = %d, want 0", m.Cursor)
	}
	for range len(tuneFields) + 5 {
		m, _ = update(t, m, key(tea.KeyDown))
	}
	if m.Cursor != len(tuneFields)-1 {
		t.Errorf("Cursor = %d, want %d", m.Cursor, len(tuneFields)-1)
	}
}

func TestTuneModelSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bag.toml")
	m := NewTuneModel(settings.Default(), path)
	m, _ = update(t, m, runes("j"))
	m, _ = update(t, m, runes("l")) // side 30 -> 31

	m, cmd := update(t, m, runes("s"))
	if cmd == nil {
		t.Fatal("save returned no command")
	}
	m, _ = update(t, m, cmd())
	if !strings.Contains(m.status, "wrote") {
		t.Errorf("status = %q, want wrote", m.status)
	}

	snap, err := settings.Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if snap.Side != 31 {
		t.Errorf("saved Side = %v, want 31", snap.Side)
	}
}

func TestTuneModelExport(t *testing.T) {
	dir := t.TempDir()
	m := NewTuneModel(settings.Default(), filepath.Join(dir, "bag.json"))

	_, cmd := update(t, m, runes("w"))
	msg, ok := cmd().(savedMsg)
	if !ok {
		t.Fatalf("export returned %T", cmd())
	}
	if msg.err != nil {
		t.Fatalf("export error: %v", msg.err)
	}
	if msg.path != filepath.Join(dir, "bag.svg") {
		t.Errorf("path = %q, want bag.svg", msg.path)
	}
}

func TestTuneModelQuit(t *testing.T) {
	m := NewTuneModel(settings.Default(), "bag.toml")
	_, cmd := update(t, m, runes("q"))
	if cmd == nil {
		t.Fatal("q returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q did not quit")
	}
}
