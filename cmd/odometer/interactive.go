package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/levicook/odometer/internal/version"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	hintStyle     = lipgloss.NewStyle().Faint(true)
	errStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Underline(true)
)

var errAborted = errors.New("aborted")

// Swapped out in tests.
var (
	stdinIsTerminal = func() bool { return term.IsTerminal(int(os.Stdin.Fd())) }
	confirmPrompt   = promptConfirm
	versionPrompt   = promptVersion
)

func requireTerminal() error {
	if !stdinIsTerminal() {
		return errors.New("--interactive requires a terminal")
	}
	return nil
}

// versionInputModel asks for a version and refuses anything that does not
// parse as strict semver.
type versionInputModel struct {
	textInput textinput.Model
	title     string
	errMsg    string
	done      bool
	aborted   bool
}

func newVersionInputModel(title, current string) versionInputModel {
	ti := textinput.New()
	ti.Placeholder = current
	ti.Prompt = "› "
	ti.CharLimit = 128
	ti.Focus()
	return versionInputModel{textInput: ti, title: title}
}

func (m versionInputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m versionInputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "esc":
			m.aborted = true
			return m, tea.Quit
		case "tab":
			if m.textInput.Value() == "" {
				m.textInput.SetValue(m.textInput.Placeholder)
				m.textInput.CursorEnd()
			}
			return m, nil
		case "enter":
			if err := version.Validate(m.value()); err != nil {
				m.errMsg = err.Error()
				return m, nil
			}
			m.done = true
			return m, tea.Quit
		}
	}
	m.errMsg = ""
	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m versionInputModel) View() string {
	if m.done {
		return ""
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title) + "\n")
	b.WriteString(m.textInput.View() + "\n")
	if m.errMsg != "" {
		b.WriteString(errStyle.Render(m.errMsg) + "\n")
	} else if m.textInput.Placeholder != "" {
		b.WriteString(hintStyle.Render("tab to start from the current version") + "\n")
	}
	return b.String()
}

func (m versionInputModel) value() string {
	return strings.TrimSpace(m.textInput.Value())
}

// confirmModel is a yes/no question that defaults to no.
type confirmModel struct {
	title   string
	value   bool
	done    bool
	aborted bool
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "esc", "q":
			m.aborted = true
			return m, tea.Quit
		case "enter":
			m.done = true
			return m, tea.Quit
		case "y", "Y":
			m.value = true
			m.done = true
			return m, tea.Quit
		case "n", "N":
			m.value = false
			m.done = true
			return m, tea.Quit
		case "left", "right", "tab", "h", "l":
			m.value = !m.value
		}
	}
	return m, nil
}

func (m confirmModel) View() string {
	if m.done {
		return ""
	}
	yes, no := " Yes ", " No "
	if m.value {
		yes = selectedStyle.Render(yes)
	} else {
		no = selectedStyle.Render(no)
	}
	return fmt.Sprintf("%s %s / %s\n", titleStyle.Render(m.title), yes, no)
}

func promptVersion(in io.Reader, out io.Writer, title, current string) (string, error) {
	result, err := tea.NewProgram(newVersionInputModel(title, current), tea.WithInput(in), tea.WithOutput(out)).Run()
	if err != nil {
		return "", err
	}
	m := result.(versionInputModel)
	if m.aborted {
		return "", errAborted
	}
	return m.value(), nil
}

func promptConfirm(in io.Reader, out io.Writer, title string) (bool, error) {
	result, err := tea.NewProgram(confirmModel{title: title}, tea.WithInput(in), tea.WithOutput(out)).Run()
	if err != nil {
		return false, err
	}
	m := result.(confirmModel)
	if m.aborted {
		return false, nil
	}
	return m.value, nil
}
