package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/drill/internal/ui/theme"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func TestMultiChoice_NumberKeySubmits(t *testing.T) {
	mc := NewMultiChoice([]string{"8", "16", "24", "32"}, 1)
	mc, _ = mc.Update(keyPress('2'))
	if !mc.Submitted || mc.ChosenIndex != 1 {
		t.Fatalf("Submitted=%v ChosenIndex=%d, want true 1", mc.Submitted, mc.ChosenIndex)
	}
	if !mc.IsCorrect() {
		t.Error("expected correct")
	}
}

func TestMultiChoice_ArrowsAndEnter(t *testing.T) {
	mc := NewMultiChoice([]string{"True", "False"}, 0)
	mc, _ = mc.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	mc, _ = mc.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if mc.Selected != 1 {
		t.Fatalf("Selected = %d, want 1 (clamped)", mc.Selected)
	}
	mc, _ = mc.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if mc.IsCorrect() {
		t.Error("expected incorrect")
	}
}

func TestMultiChoice_OutOfRangeIgnored(t *testing.T) {
	mc := NewMultiChoice([]string{"True", "False"}, 0)
	mc, _ = mc.Update(keyPress('4'))
	if mc.Submitted {
		t.Error("option 4 of 2 should be ignored")
	}
}

func TestMultiChoice_View(t *testing.T) {
	mc := NewMultiChoice([]string{"1.5", "3"}, 1)
	v := mc.View()
	for _, want := range []string{"1)  1.5", "2)  3"} {
		if !strings.Contains(v, want) {
			t.Errorf("view missing %q:\n%s", want, v)
		}
	}
}

func TestTextInput_Choice(t *testing.T) {
	tests := []struct {
		value   string
		want    int
		wantErr bool
	}{
		{"1", 0, false},
		{"4", 3, false},
		{" 2 ", 1, false},
		{"0", 0, true},
		{"5", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		ti := NewTextInput("", true, 0)
		ti.Model.SetValue(tt.value)
		got, err := ti.Choice(4)
		if (err != nil) != tt.wantErr {
			t.Errorf("Choice(%q) err = %v, wantErr %v", tt.value, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("Choice(%q) = %d, want %d", tt.value, got, tt.want)
		}
	}
}

func TestTextInput_NumericOnly(t *testing.T) {
	ti := NewTextInput("", true, 2)
	ti, _ = ti.Update(keyPress('x'))
	ti, _ = ti.Update(keyPress('3'))
	if ti.Value() != "3" {
		t.Errorf("Value = %q, want %q", ti.Value(), "3")
	}

	ti.Submit(true)
	ti, _ = ti.Update(keyPress('4'))
	if ti.Value() != "3" {
		t.Error("submitted input should ignore keys")
	}
	ti.Reset()
	if ti.Value() != "" {
		t.Error("Reset should clear the value")
	}
}

func TestMenu_SkipsDisabled(t *testing.T) {
	m := NewMenu([]MenuItem{
		{Label: "Practice", Disabled: true},
		{Label: "Stats"},
		{Label: "Quit"},
	})
	if m.Selected != 1 {
		t.Fatalf("initial Selected = %d, want 1", m.Selected)
	}
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if m.Selected != 1 {
		t.Errorf("Selected = %d after up, want 1", m.Selected)
	}
}

func TestAccuracyBar_View(t *testing.T) {
	tests := []struct {
		name     string
		accuracy float64
		reviews  int
		want     string
	}{
		{"some reviews", 62.5, 8, "62.5% of 8"},
		{"perfect", 100, 3, "100.0% of 3"},
		{"no reviews", 0, 0, "no reviews yet"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := NewAccuracyBar("Accuracy", tt.accuracy, tt.reviews, 50).View()
			if !strings.Contains(view, tt.want) {
				t.Errorf("view missing %q: %q", tt.want, view)
			}
		})
	}
}

func TestAccuracyBar_Fill(t *testing.T) {
	if got := NewAccuracyBar("", 85, 10, 40).fill(); got != theme.Success {
		t.Errorf("fill(85) = %v, want success", got)
	}
	if got := NewAccuracyBar("", 50, 10, 40).fill(); got != theme.Accent {
		t.Errorf("fill(50) = %v, want accent", got)
	}
	if got := NewAccuracyBar("", 20, 10, 40).fill(); got != theme.Error {
		t.Errorf("fill(20) = %v, want error", got)
	}
}
