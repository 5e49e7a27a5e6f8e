package ui

import (
	"errors"
	"io"

	tea "github.com/charmbracelet/bubbletea"
)

// ErrCancelled is returned when the user dismisses a prompt.
var ErrCancelled = errors.New("cancelled")

// AskConfirmIO prompts for yes/no confirmation on the given streams.
func AskConfirmIO(prompt string, defaultYes bool, in io.Reader, out io.Writer) (bool, error) {
	return askConfirm(prompt, defaultYes, tea.WithInput(in), tea.WithOutput(out))
}

func askConfirm(prompt string, defaultYes bool, opts ...tea.ProgramOption) (bool, error) {
	m := NewConfirm(prompt, defaultYes)
	p := tea.NewProgram(m, opts...)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	result := finalModel.(ConfirmModel)
	if result.IsCancelled() {
		return false, ErrCancelled
	}

	return result.IsConfirmed(), nil
}
