// Package tui provides an interactive Bubble Tea viewer for long payment
// schedules.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"fincalc/internal/cli"
)

var (
	browserTitleStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	browserHelpStyle  = lipgloss.NewStyle().Faint(true).Padding(0, 1)
)

// Browser is a scrollable viewer over a rendered schedule table.
type Browser struct {
	title    string
	content  string
	viewport viewport.Model
	ready    bool
}

// NewBrowser builds a Browser over tabular schedule data.
func NewBrowser(title string, headers []string, rows [][]string) Browser {
	content := cli.RenderTable(cli.Table{Headers: headers, Rows: rows})
	return Browser{title: title, content: content}
}

// Init implements tea.Model.
func (b Browser) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (b Browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return b, tea.Quit
		case "g", "home":
			b.viewport.GotoTop()
		case "G", "end":
			b.viewport.GotoBottom()
		}

	case tea.WindowSizeMsg:
		headerHeight := 2
		footerHeight := 1
		if !b.ready {
			b.viewport = viewport.New(msg.Width, msg.Height-headerHeight-footerHeight)
			b.viewport.SetContent(b.content)
			b.ready = true
		} else {
			b.viewport.Width = msg.Width
			b.viewport.Height = msg.Height - headerHeight - footerHeight
		}
	}

	var cmd tea.Cmd
	b.viewport, cmd = b.viewport.Update(msg)
	return b, cmd
}

// View implements tea.Model.
func (b Browser) View() string {
	if !b.ready {
		return "loading..."
	}

	var s strings.Builder
	s.WriteString(browserTitleStyle.Render(b.title))
	s.WriteString("\n\n")
	s.WriteString(b.viewport.View())
	s.WriteString("\n")
	s.WriteString(browserHelpStyle.Render(fmt.Sprintf(
		"↑/↓ scroll · g/G top/bottom · q quit · %3.f%%", b.viewport.ScrollPercent()*100)))
	return s.String()
}

// Run opens the browser in the alternate screen and blocks until the user
// quits.
func Run(title string, headers []string, rows [][]string) error {
	p := tea.NewProgram(NewBrowser(title, headers, rows), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
