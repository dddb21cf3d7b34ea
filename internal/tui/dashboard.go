package tui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sferro/chatlens/internal/analyze"
)

type tab int

const (
	tabOverview tab = iota
	tabTimeline
	tabActivity
	tabWords
	tabScores
	tabCount
)

var tabNames = [tabCount]string{"Overview", "Timeline", "Activity", "Words", "Scores"}

// model is the dashboard over one immutable ChatData snapshot. The data is
// never mutated here; switching tabs only re-renders views from it.
type model struct {
	data     *analyze.ChatData
	fileName string
	active   tab
	content  viewport.Model
	width    int
	height   int
	ready    bool
	quitting bool
	status   string
}

// Run opens the dashboard TUI and blocks until the user quits.
func Run(data *analyze.ChatData, fileName string) error {
	m := model{
		data:     data,
		fileName: fileName,
		content:  viewport.New(0, 0),
	}
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.content = viewport.New(m.panelWidth(), m.panelHeight())
		m.content.SetContent(m.renderActiveTab())
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, keys.NextTab):
			m.active = (m.active + 1) % tabCount
			m.status = ""
			m.content.SetContent(m.renderActiveTab())
			m.content.GotoTop()
			return m, nil

		case key.Matches(msg, keys.PrevTab):
			m.active = (m.active + tabCount - 1) % tabCount
			m.status = ""
			m.content.SetContent(m.renderActiveTab())
			m.content.GotoTop()
			return m, nil

		case key.Matches(msg, keys.Copy):
			if err := clipboard.WriteAll(summaryText(m.data, m.fileName)); err != nil {
				m.status = "clipboard unavailable"
			} else {
				m.status = "summary copied to clipboard"
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.content, cmd = m.content.Update(msg)
	return m, cmd
}

func (m model) View() string {
	if m.quitting || !m.ready {
		return ""
	}

	header := styleTitle.Render("chatlens") + "  " + styleStatusBar.Render(m.fileName)

	var tabs []string
	for t := tab(0); t < tabCount; t++ {
		if t == m.active {
			tabs = append(tabs, styleTabActive.Render(tabNames[t]))
		} else {
			tabs = append(tabs, styleTabInactive.Render(tabNames[t]))
		}
	}
	tabBar := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)

	m.content.Width = m.panelWidth()
	m.content.Height = m.panelHeight()
	panel := stylePanelBorder.
		Width(m.panelWidth()).
		Height(m.panelHeight()).
		Render(m.content.View())

	return lipgloss.JoinVertical(lipgloss.Left, header, tabBar, panel, m.statusBar())
}

func (m model) panelWidth() int {
	if m.width <= 0 {
		return 80
	}
	w := m.width - 4
	if w < 20 {
		w = 20
	}
	return w
}

func (m model) panelHeight() int {
	if m.height <= 0 {
		return 20
	}
	// header (1) + tab bar (1) + status bar (1) + borders (2)
	h := m.height - 5
	if h < 5 {
		h = 5
	}
	return h
}

func (m model) statusBar() string {
	parts := []string{"←/→ tabs", "↑/↓ scroll", "c copy summary", "esc quit"}
	if m.status != "" {
		parts = append([]string{m.status}, parts...)
	}
	return styleStatusBar.Render(strings.Join(parts, " | "))
}

func (m model) renderActiveTab() string {
	w := m.panelWidth()
	switch m.active {
	case tabTimeline:
		return renderTimeline(m.data, w)
	case tabActivity:
		return renderActivity(m.data)
	case tabWords:
		return renderWords(m.data, w)
	case tabScores:
		return renderScores(m.data, w)
	default:
		return renderOverview(m.data)
	}
}

// summaryText is the plain-text digest copied to the clipboard.
func summaryText(data *analyze.ChatData, fileName string) string {
	return fmt.Sprintf(
		"%s: %d messages from %s, %s to %s, %d active days, avg response %s, peak hour %d:00",
		fileName,
		data.TotalMessages,
		strings.Join(data.Participants, " and "),
		data.DateRange.Start,
		data.DateRange.End,
		data.ActiveDays,
		data.AvgResponseTime,
		data.PeakHour,
	)
}
