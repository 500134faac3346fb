// Package tui provides a Bubble Tea terminal browser over the metadata
// of a directory of wav files.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wavtools/wavmeta/internal/aggregate"
	"github.com/wavtools/wavmeta/internal/field"
	"github.com/wavtools/wavmeta/internal/metadata"
	"github.com/wavtools/wavmeta/internal/scan"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F8B500")).
			MarginBottom(1)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	detailStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(0, 2)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))
)

// State represents the current UI state.
type State int

const (
	StateInput State = iota
	StateScanning
	StateBrowse
	StateError
)

// scanDoneMsg is sent when the directory scan finishes.
type scanDoneMsg struct {
	agg      *aggregate.Aggregator
	fileErrs []scan.FileError
	err      error
}

// Model is the Bubble Tea model for the browser.
type Model struct {
	state     State
	textInput textinput.Model
	spinner   spinner.Model
	table     table.Model

	dir      string
	agg      *aggregate.Aggregator
	fileErrs []scan.FileError
	err      error

	width  int
	height int
}

// NewModel creates a browser model. When dir is non-empty the scan
// starts immediately instead of prompting for a directory.
func NewModel(dir string) Model {
	ti := textinput.New()
	ti.Placeholder = "/path/to/wav/files"
	ti.Focus()
	ti.CharLimit = 500
	ti.Width = 60

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#F8B500"))

	m := Model{
		state:     StateInput,
		textInput: ti,
		spinner:   sp,
	}
	if dir != "" {
		m.dir = dir
		m.state = StateScanning
	}
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	if m.state == StateScanning {
		return tea.Batch(m.spinner.Tick, scanDir(m.dir))
	}
	return textinput.Blink
}

// scanDir runs one skip-and-continue batch over the directory. The TUI
// always derives every field; the detail pane shows them all.
func scanDir(dir string) tea.Cmd {
	return func() tea.Msg {
		agg, fileErrs, err := scan.Run(scan.Options{
			Dir:            dir,
			Selection:      field.All,
			SkipUnreadable: true,
		})
		return scanDoneMsg{agg: agg, fileErrs: fileErrs, err: err}
	}
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "q":
			if m.state == StateBrowse || m.state == StateError {
				return m, tea.Quit
			}

		case "esc":
			switch m.state {
			case StateInput:
				return m, tea.Quit
			case StateBrowse, StateError:
				m.state = StateInput
				m.textInput.SetValue(m.dir)
				m.textInput.Focus()
				return m, textinput.Blink
			}

		case "enter":
			if m.state == StateInput && m.textInput.Value() != "" {
				m.dir = m.textInput.Value()
				m.state = StateScanning
				return m, tea.Batch(m.spinner.Tick, scanDir(m.dir))
			}

		case "r":
			if m.state == StateBrowse {
				m.state = StateScanning
				return m, tea.Batch(m.spinner.Tick, scanDir(m.dir))
			}
		}

	case scanDoneMsg:
		if msg.err != nil {
			m.state = StateError
			m.err = msg.err
			return m, nil
		}
		m.agg = msg.agg
		m.fileErrs = msg.fileErrs
		m.table = buildTable(msg.agg)
		m.state = StateBrowse
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	switch m.state {
	case StateInput:
		m.textInput, cmd = m.textInput.Update(msg)
	case StateBrowse:
		m.table, cmd = m.table.Update(msg)
	}
	return m, cmd
}

// browseColumns are the fields shown in the overview table; the detail
// pane below it carries the full catalog.
var browseColumns = []field.Field{
	field.NumChannels,
	field.BitsPerSample,
	field.SampleRateHz,
	field.FrameCount,
	field.CompressionType,
}

func buildTable(agg *aggregate.Aggregator) table.Model {
	columns := []table.Column{{Title: "Filename", Width: 28}}
	for _, f := range browseColumns {
		columns = append(columns, table.Column{Title: f.DisplayName(), Width: len(f.DisplayName()) + 2})
	}

	rows := make([]table.Row, 0, agg.Len())
	for _, name := range agg.Names() {
		fm, _ := agg.Fields(name)
		row := table.Row{name}
		for _, f := range browseColumns {
			v, _ := fm.Value(f)
			row = append(row, metadata.FormatValue(v))
		}
		rows = append(rows, row)
	}

	height := len(rows)
	if height > 14 {
		height = 14
	}
	if height < 1 {
		height = 1
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("#1A1B26")).
		Background(lipgloss.Color("#F8B500"))
	t.SetStyles(s)

	return t
}

// View renders the UI.
func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("wavmeta") + "\n")

	switch m.state {
	case StateInput:
		sb.WriteString("Directory to scan:\n\n")
		sb.WriteString(m.textInput.View() + "\n\n")
		sb.WriteString(dimStyle.Render("enter: scan • esc: quit"))

	case StateScanning:
		sb.WriteString(fmt.Sprintf("%s Scanning %s ...\n", m.spinner.View(), m.dir))

	case StateBrowse:
		if m.agg.Len() == 0 {
			sb.WriteString(fmt.Sprintf("No wav files in %s\n\n", m.dir))
		} else {
			sb.WriteString(m.table.View() + "\n")
			sb.WriteString(m.detailView() + "\n")
		}
		for _, fe := range m.fileErrs {
			sb.WriteString(warningStyle.Render(fmt.Sprintf("skipped %s", fe.Name)) + "\n")
		}
		sb.WriteString(dimStyle.Render("↑/↓: select • r: rescan • esc: change directory • q: quit"))

	case StateError:
		sb.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)) + "\n\n")
		sb.WriteString(dimStyle.Render("esc: change directory • q: quit"))
	}

	return sb.String() + "\n"
}

// detailView renders every catalog field of the selected file.
func (m Model) detailView() string {
	row := m.table.SelectedRow()
	if row == nil {
		return ""
	}
	fm, ok := m.agg.Fields(row[0])
	if !ok {
		return ""
	}

	lines := make([]string, 0, fm.Len()+1)
	lines = append(lines, labelStyle.Render(row[0]+scan.Ext))
	for _, f := range fm.Fields() {
		v, _ := fm.Value(f)
		lines = append(lines, fmt.Sprintf("%-26s %s", f.DisplayName(), metadata.FormatValue(v)))
	}
	return detailStyle.Render(strings.Join(lines, "\n"))
}

// Run starts the browser. dir may be empty, in which case the UI
// prompts for one.
func Run(dir string) error {
	p := tea.NewProgram(NewModel(dir), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
