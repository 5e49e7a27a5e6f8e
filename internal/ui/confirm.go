package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// ConfirmModel is a yes/no confirmation prompt.
type ConfirmModel struct {
	prompt    string
	yes       bool
	answered  bool
	cancelled bool
}

// NewConfirm creates a confirmation prompt with yes or no preselected.
func NewConfirm(prompt string, defaultYes bool) ConfirmModel {
	return ConfirmModel{
		prompt: prompt,
		yes:    defaultYes,
	}
}

func (m ConfirmModel) Init() tea.Cmd {
	return nil
}

func (m ConfirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "y", "Y":
		m.yes, m.answered = true, true
	case "n", "N":
		m.yes, m.answered = false, true
	case "enter":
		m.answered = true
	case "left", "right", "tab", "h", "l":
		m.yes = !m.yes
		return m, nil
	case "ctrl+c", "esc", "q":
		m.cancelled = true
	default:
		return m, nil
	}

	return m, tea.Quit
}

func (m ConfirmModel) View() string {
	if m.answered || m.cancelled {
		return ""
	}

	yesStyle, noStyle := UnselectedStyle, SelectedStyle
	if m.yes {
		yesStyle, noStyle = SelectedStyle, UnselectedStyle
	}

	return fmt.Sprintf(
		"%s %s\n\n%s%s\n\n%s\n",
		IconWarning,
		TitleStyle.Render(m.prompt),
		yesStyle.Render("Yes"),
		noStyle.Render("No"),
		HelpStyle.Render("←/→ toggle • enter confirm • y/n quick select • esc cancel"),
	)
}

// IsConfirmed returns whether the user answered yes.
func (m ConfirmModel) IsConfirmed() bool {
	return m.answered && m.yes
}

// IsCancelled returns whether the user dismissed the prompt.
func (m ConfirmModel) IsCancelled() bool {
	return m.cancelled
}
