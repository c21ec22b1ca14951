package reporting

import (
	"io"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

type statusDoneMsg struct{}

// statusModel shows a spinner next to the name of the running test.
type statusModel struct {
	spinner spinner.Model
	label   string
	done    bool
}

func newStatusModel(label string) statusModel {
	return statusModel{
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(spinnerStyle)),
		label:   label,
	}
}

func (m statusModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m statusModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case statusDoneMsg:
		m.done = true
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m statusModel) View() string {
	if m.done {
		return ""
	}
	return m.spinner.View() + " Running " + m.label
}

// statusLine runs a statusModel in the background while a test runs. The
// line is erased when the test is over.
type statusLine struct {
	program *tea.Program
	done    chan struct{}
}

func startStatusLine(out io.Writer, label string) *statusLine {
	s := &statusLine{
		program: tea.NewProgram(newStatusModel(label),
			tea.WithOutput(out),
			tea.WithInput(nil),
			tea.WithoutSignalHandler(),
		),
		done: make(chan struct{}),
	}
	go func() {
		defer close(s.done)
		_, _ = s.program.Run()
	}()
	return s
}

func (s *statusLine) stop() {
	s.program.Send(statusDoneMsg{})
	<-s.done
}
