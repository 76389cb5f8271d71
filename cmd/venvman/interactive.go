package main

import (
	"fmt"
	"strings"

	"github.com/Plyrolith/venvman/internal/manifest"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	errStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Underline(true)
)

// inputModel asks for a single line of text. Enter accepts the value once
// the validator passes; esc cancels the whole prompt flow.
type inputModel struct {
	field    textinput.Model
	label    string
	validate func(string) error
	invalid  string
	accepted bool
	canceled bool
}

func (m inputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "esc":
			m.canceled = true
			return m, tea.Quit
		case "enter":
			if m.validate != nil {
				if err := m.validate(m.field.Value()); err != nil {
					m.invalid = err.Error()
					return m, nil
				}
			}
			m.accepted = true
			return m, tea.Quit
		}
	}
	m.invalid = ""
	var cmd tea.Cmd
	m.field, cmd = m.field.Update(msg)
	return m, cmd
}

func (m inputModel) View() string {
	if m.accepted {
		return ""
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.label))
	b.WriteString("\n")
	b.WriteString(m.field.View())
	b.WriteString("\n")
	if m.invalid != "" {
		b.WriteString(errStyle.Render("! " + m.invalid))
		b.WriteString("\n")
	}
	return b.String()
}

// confirmModel is a yes/no toggle. y/n answer directly, arrows flip the
// highlighted choice, enter takes it.
type confirmModel struct {
	label    string
	value    bool
	accepted bool
	canceled bool
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "ctrl+c", "esc":
		m.canceled = true
		return m, tea.Quit
	case "y", "Y":
		m.value = true
		m.accepted = true
		return m, tea.Quit
	case "n", "N":
		m.value = false
		m.accepted = true
		return m, tea.Quit
	case "enter":
		m.accepted = true
		return m, tea.Quit
	case "left", "right", "tab":
		m.value = !m.value
	}
	return m, nil
}

func (m confirmModel) View() string {
	if m.accepted {
		return ""
	}
	yes, no := " yes ", " no "
	if m.value {
		yes = selectedStyle.Render(yes)
	} else {
		no = selectedStyle.Render(no)
	}
	return fmt.Sprintf("%s %s/%s\n", titleStyle.Render(m.label), yes, no)
}

func promptInput(label, placeholder string, validate func(string) error) (string, error) {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()

	out, err := tea.NewProgram(inputModel{field: ti, label: label, validate: validate}).Run()
	if err != nil {
		return "", err
	}
	m := out.(inputModel)
	if m.canceled {
		return "", fmt.Errorf("canceled")
	}
	return m.field.Value(), nil
}

func promptConfirm(label string) (bool, error) {
	out, err := tea.NewProgram(confirmModel{label: label}).Run()
	if err != nil {
		return false, err
	}
	m := out.(confirmModel)
	if m.canceled {
		return false, fmt.Errorf("canceled")
	}
	return m.value, nil
}

// packageNameValidator rejects names that cannot be a pip package name on
// a requirements line.
func packageNameValidator(seen map[string]bool) func(string) error {
	return func(s string) error {
		s = strings.TrimSpace(s)
		if s == "" {
			return fmt.Errorf("package name is required")
		}
		if strings.ContainsAny(s, " \t/\\") {
			return fmt.Errorf("invalid package name %q", s)
		}
		if strings.Contains(s, "==") {
			return fmt.Errorf("give the version in the next prompt, not inline")
		}
		if seen[s] {
			return fmt.Errorf("package %q is already added", s)
		}
		return nil
	}
}

// collectPackagesInteractive runs an interactive loop collecting package
// entries to install.
func collectPackagesInteractive() ([]manifest.Entry, error) {
	var entries []manifest.Entry
	seen := make(map[string]bool)

	for {
		name, err := promptInput("Package name", "requests", packageNameValidator(seen))
		if err != nil {
			return nil, err
		}
		name = strings.TrimSpace(name)

		pin, err := promptInput("Version (empty for latest)", "", nil)
		if err != nil {
			return nil, err
		}
		pin = strings.TrimSpace(pin)

		seen[name] = true
		entries = append(entries, manifest.Entry{Name: name, Version: pin})

		more, err := promptConfirm("Add another package?")
		if err != nil {
			return nil, err
		}
		if !more {
			break
		}
	}

	return entries, nil
}
