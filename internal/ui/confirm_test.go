package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	. "github.com/onsi/gomega"
)

func press(m ConfirmModel, keys ...tea.KeyMsg) (ConfirmModel, tea.Cmd) {
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(k)
		m = next.(ConfirmModel)
	}
	return m, cmd
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestConfirmModel(t *testing.T) {
	tests := []struct {
		name       string
		defaultYes bool
		keys       []tea.KeyMsg
		confirmed  bool
		cancelled  bool
	}{
		{"enter keeps default yes", true, []tea.KeyMsg{{Type: tea.KeyEnter}}, true, false},
		{"enter keeps default no", false, []tea.KeyMsg{{Type: tea.KeyEnter}}, false, false},
		{"y answers yes", false, []tea.KeyMsg{runeKey('y')}, true, false},
		{"n answers no", true, []tea.KeyMsg{runeKey('n')}, false, false},
		{"toggle then enter", false, []tea.KeyMsg{{Type: tea.KeyTab}, {Type: tea.KeyEnter}}, true, false},
		{"esc cancels", true, []tea.KeyMsg{{Type: tea.KeyEsc}}, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewWithT(t)

			m, cmd := press(NewConfirm("Remove?", tt.defaultYes), tt.keys...)
			g.Expect(cmd).ToNot(BeNil())
			g.Expect(m.IsConfirmed()).To(Equal(tt.confirmed))
			g.Expect(m.IsCancelled()).To(Equal(tt.cancelled))
			g.Expect(m.View()).To(BeEmpty())
		})
	}
}

func TestConfirmModel_View(t *testing.T) {
	g := NewWithT(t)

	m := NewConfirm("Remove 2 published files?", false)
	g.Expect(m.View()).To(ContainSubstring("Remove 2 published files?"))

	m, cmd := press(m, tea.KeyMsg{Type: tea.KeyLeft})
	g.Expect(cmd).To(BeNil())
	g.Expect(m.View()).To(ContainSubstring("Yes"))
}
