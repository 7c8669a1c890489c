package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/grigorchuk/pkg/algebra"
	"github.com/matzehuels/grigorchuk/pkg/cayley"
	"github.com/matzehuels/grigorchuk/pkg/config"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m exploreModel, keys ...tea.KeyMsg) exploreModel {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(k)
		m = next.(exploreModel)
	}
	return m
}

func newTestModel() exploreModel {
	return newExploreModel(cayley.NewTileMap(algebra.New(nil), cayley.MapOptions{}), config.Default().View)
}

func TestExploreStep(t *testing.T) {
	m := press(t, newTestModel(), runeKey("0"))
	if m.cur == m.m.Origin() {
		t.Fatal("step did not move")
	}
	if len(m.path) != 1 || m.path[0] != cayley.DirAC {
		t.Errorf("path = %v", m.path)
	}
	view := m.View()
	for _, want := range []string{"ac", "aca", "#1 of 2"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestExploreArrowKeys(t *testing.T) {
	// ← is ac and → is ca, so they cancel.
	m := press(t, newTestModel(), tea.KeyMsg{Type: tea.KeyLeft}, tea.KeyMsg{Type: tea.KeyRight})
	if m.cur != m.m.Origin() {
		t.Error("ac then ca did not return to the origin")
	}
	if len(m.path) != 2 {
		t.Errorf("path = %v", m.path)
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if m.path[len(m.path)-1] != cayley.DirB {
		t.Errorf("↑ stepped %v", m.path[len(m.path)-1])
	}
}

func TestExploreUndo(t *testing.T) {
	m := press(t, newTestModel(), runeKey("2"), runeKey("0"), runeKey("u"))
	want, _ := m.m.Walk(m.m.Origin(), cayley.DirB)
	if m.cur != want {
		t.Errorf("undo landed on tile %d, want %d", m.cur.ID, want.ID)
	}
	if len(m.path) != 1 {
		t.Errorf("path = %v", m.path)
	}

	m = press(t, m, runeKey("u"), runeKey("u"))
	if m.cur != m.m.Origin() || len(m.path) != 0 {
		t.Error("undo past the origin moved the cursor")
	}
}

func TestExploreOriginAndQuit(t *testing.T) {
	m := press(t, newTestModel(), runeKey("0"), runeKey("0"), runeKey("o"))
	if m.cur != m.m.Origin() || m.path != nil {
		t.Error("o did not reset to the origin")
	}
	if m.m.Len() != 3 {
		t.Errorf("map forgot tiles: Len = %d", m.m.Len())
	}
	if _, cmd := m.Update(runeKey("q")); cmd == nil {
		t.Error("q did not quit")
	}
}

func TestExploreViewOptions(t *testing.T) {
	m := newExploreModel(cayley.NewTileMap(algebra.New(nil), cayley.MapOptions{}),
		config.ViewConfig{Labels: false, Lines: false})
	m = press(t, m, runeKey("0"))
	view := m.View()
	if strings.Contains(view, "word") || strings.Contains(view, "halves") {
		t.Errorf("hidden annotations shown:\n%s", view)
	}
	if !strings.Contains(view, "distance") {
		t.Errorf("distance missing:\n%s", view)
	}
}

func TestFormatPath(t *testing.T) {
	if got := formatPath(nil); got != "-" {
		t.Errorf("formatPath(nil) = %q", got)
	}
	if got := formatPath([]cayley.Direction{cayley.DirAC, cayley.DirB}); got != "ac b" {
		t.Errorf("formatPath = %q", got)
	}
}
