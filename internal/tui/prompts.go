package tui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ErrInteractiveDisabled is returned when interactive prompts are disabled via PUSHIT_TEST_NO_INTERACTIVE
var ErrInteractiveDisabled = errors.New("interactive prompts are disabled (PUSHIT_TEST_NO_INTERACTIVE is set)")

// ErrPromptCanceled is returned when the operator aborts a prompt with Ctrl+C or Esc
var ErrPromptCanceled = errors.New("canceled")

// checkInteractiveAllowed returns an error if interactive mode is disabled for testing
func checkInteractiveAllowed() error {
	if os.Getenv("PUSHIT_TEST_NO_INTERACTIVE") != "" {
		return ErrInteractiveDisabled
	}
	return nil
}

// Prompter asks the operator questions. Confirm is a yes/no question where only
// an answer starting with y or Y counts as yes. Input reads one free-text line.
type Prompter interface {
	Confirm(prompt string) (bool, error)
	Input(prompt string) (string, error)
}

// NewPrompter returns a terminal prompter when stdin and stdout are terminals
// and a line prompter over stdin otherwise.
func NewPrompter() Prompter {
	if IsTTY() {
		return &TerminalPrompter{}
	}
	return NewLinePrompter(os.Stdin, os.Stdout)
}

// IsAffirmative reports whether an answer means yes
func IsAffirmative(answer string) bool {
	answer = strings.TrimSpace(answer)
	return answer != "" && (answer[0] == 'y' || answer[0] == 'Y')
}

// LinePrompter reads answers line by line from any reader
type LinePrompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewLinePrompter creates a LinePrompter reading from in and writing prompts to out
func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{in: bufio.NewReader(in), out: out}
}

// Confirm asks a yes/no question. End of input counts as no.
func (p *LinePrompter) Confirm(prompt string) (bool, error) {
	_, _ = fmt.Fprintf(p.out, "%s (y/n) ", prompt)
	line, err := p.readLine()
	if err != nil {
		return false, err
	}
	return IsAffirmative(line), nil
}

// Input reads one line of text
func (p *LinePrompter) Input(prompt string) (string, error) {
	_, _ = fmt.Fprintf(p.out, "%s ", prompt)
	line, err := p.readLine()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (p *LinePrompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read answer: %w", err)
	}
	if errors.Is(err, io.EOF) {
		// Keep the next output off the prompt line
		_, _ = fmt.Fprintln(p.out)
	}
	return line, nil
}

// TerminalPrompter prompts on a real terminal: a single keypress for yes/no
// questions and a survey input for text.
type TerminalPrompter struct{}

// Confirm asks a yes/no question answered by a single key
func (p *TerminalPrompter) Confirm(prompt string) (bool, error) {
	if err := checkInteractiveAllowed(); err != nil {
		return false, err
	}

	m := newConfirmModel(prompt)
	program := tea.NewProgram(m, tea.WithInput(os.Stdin), tea.WithOutput(os.Stdout))
	model, err := program.Run()
	if err != nil {
		return false, err
	}

	finalModel, ok := model.(confirmModel)
	if !ok {
		return false, fmt.Errorf("unexpected model type")
	}
	if finalModel.err != nil {
		return false, finalModel.err
	}
	return finalModel.choice, nil
}

// Input reads one line of text
func (p *TerminalPrompter) Input(prompt string) (string, error) {
	if err := checkInteractiveAllowed(); err != nil {
		return "", err
	}

	var answer string
	if err := survey.AskOne(&survey.Input{Message: prompt}, &answer); err != nil {
		return "", inputError(err)
	}
	return strings.TrimSpace(answer), nil
}

// inputError maps an interrupt to ErrPromptCanceled and wraps anything else
func inputError(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return ErrPromptCanceled
	}
	return fmt.Errorf("failed to read input: %w", err)
}

type confirmKeyMap struct {
	Yes    key.Binding
	Cancel key.Binding
}

var confirmKeys = confirmKeyMap{
	Yes:    key.NewBinding(key.WithKeys("y", "Y"), key.WithHelp("y", "yes")),
	Cancel: key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("ctrl+c", "cancel")),
}

// confirmModel is a single keypress yes/no prompt. y or Y confirms, Ctrl+C or
// Esc cancels, and any other key declines.
type confirmModel struct {
	prompt string
	choice bool
	answer string
	done   bool
	err    error
}

func newConfirmModel(prompt string) confirmModel {
	return confirmModel{prompt: prompt}
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, confirmKeys.Cancel):
		m.err = ErrPromptCanceled
	case key.Matches(keyMsg, confirmKeys.Yes):
		m.choice = true
		m.answer = keyMsg.String()
	default:
		m.answer = keyMsg.String()
	}
	m.done = true
	return m, tea.Quit
}

func (m confirmModel) View() string {
	if m.done {
		return fmt.Sprintf("%s (y/n) %s\n", m.prompt, m.answer)
	}
	hint := lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Render("(y/n)")
	return fmt.Sprintf("%s %s ", m.prompt, hint)
}
