package menu

import (
	"testing"

	"spacewarp/pkg/engine/input"
)

func press(t *testing.T, m *Model, a input.Action) Command {
	t.Helper()

	rec := input.NewRecorder()
	rec.Press(a)
	return m.Update(rec)
}

func TestMenuNavigationWraps(t *testing.T) {
	m := New()

	press(t, m, input.ActionJump) // up from the first entry
	if m.Selected != 2 {
		t.Errorf("Selected = %d after wrapping up, want 2", m.Selected)
	}

	press(t, m, input.ActionDown)
	if m.Selected != 0 {
		t.Errorf("Selected = %d after wrapping down, want 0", m.Selected)
	}
}

func TestMenuStart(t *testing.T) {
	m := New()

	if got := press(t, m, input.ActionConfirm); got != CommandStart {
		t.Errorf("Update() = %v on Start, want %v", got, CommandStart)
	}
}

func TestMenuHelp(t *testing.T) {
	m := New()
	m.Selected = 2

	if got := press(t, m, input.ActionConfirm); got != CommandHelp {
		t.Errorf("Update() = %v on Help, want %v", got, CommandHelp)
	}
}

func TestMenuDifficultySubmenu(t *testing.T) {
	m := New()
	m.Selected = 1

	if got := press(t, m, input.ActionConfirm); got != CommandNone {
		t.Fatalf("Update() = %v entering the submenu, want %v", got, CommandNone)
	}
	if !m.InDifficulty() {
		t.Fatal("InDifficulty() = false after entering, want true")
	}
	if m.Selected != 0 {
		t.Errorf("Selected = %d entering the submenu, want 0", m.Selected)
	}

	// Pick Hard; the submenu stays open for further changes.
	m.Selected = 2
	press(t, m, input.ActionConfirm)
	if m.Difficulty != 3 {
		t.Errorf("Difficulty = %d after picking Hard, want 3", m.Difficulty)
	}
	if !m.InDifficulty() {
		t.Error("InDifficulty() = false after picking, want true")
	}

	// Back returns to the default menu, keeping the choice.
	m.Selected = 4
	press(t, m, input.ActionConfirm)
	if m.InDifficulty() {
		t.Error("InDifficulty() = true after Back, want false")
	}
	if m.Selected != 0 {
		t.Errorf("Selected = %d after Back, want 0", m.Selected)
	}
	if m.Difficulty != 3 {
		t.Errorf("Difficulty = %d after Back, want 3", m.Difficulty)
	}
}

func TestMenuSubmenuNavigationWraps(t *testing.T) {
	m := New()
	m.Selected = 1
	press(t, m, input.ActionConfirm)

	press(t, m, input.ActionJump)
	if m.Selected != len(difficultyItems)-1 {
		t.Errorf("Selected = %d after wrapping up, want %d", m.Selected, len(difficultyItems)-1)
	}
}

func TestMenuHeldKeysDoNotNavigate(t *testing.T) {
	m := New()
	rec := input.NewRecorder()
	rec.SetHeld(input.ActionDown, true)

	m.Update(rec)
	if m.Selected != 0 {
		t.Errorf("Selected = %d with down merely held, want 0", m.Selected)
	}
}

func TestDifficultyName(t *testing.T) {
	if got := DifficultyName(4); got != "Lunatic" {
		t.Errorf("DifficultyName(4) = %q, want %q", got, "Lunatic")
	}
	if got := DifficultyName(0); got != "Easy" {
		t.Errorf("DifficultyName(0) = %q, want %q", got, "Easy")
	}
}

func TestItems(t *testing.T) {
	m := New()
	if got := m.Items(); len(got) != 3 || got[0] != "Start" {
		t.Errorf("Items() = %v, want the default menu", got)
	}

	m.Selected = 1
	press(t, m, input.ActionConfirm)
	if got := m.Items(); len(got) != 5 || got[4] != "Back" {
		t.Errorf("Items() = %v, want the difficulty menu", got)
	}
}
