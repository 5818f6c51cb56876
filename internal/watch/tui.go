// Package watch renders a live analysis dashboard using a bubbletea TUI.
// The catalog is re-analyzed on an interval so a running test harness can
// be observed while it fills the results directory.
package watch

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"meshcheck/internal/analyze"
	"meshcheck/internal/catalog"
)

// tickMsg schedules the next analysis pass.
type tickMsg time.Time

// resultsMsg carries one completed analysis pass.
type resultsMsg struct {
	rows    []scenarioRow
	summary analyze.Summary
	at      time.Time
}

type scenarioRow struct {
	name       string
	result     string
	detail     string
	violations []string
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	passStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	failStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	skipStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	dividerSty  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// Model is the bubbletea model for the watch dashboard.
type Model struct {
	catalog  catalog.Catalog
	root     string
	interval time.Duration

	table   table.Model
	vp      viewport.Model
	summary analyze.Summary
	lastRun time.Time
	wrap    bool
	width   int
	height  int
	lines   []string
}

// NewModel builds the dashboard model for a catalog and results root.
func NewModel(cat catalog.Catalog, root string, interval time.Duration) Model {
	cols := []table.Column{
		{Title: "Scenario", Width: 34},
		{Title: "Result", Width: 8},
		{Title: "Detail", Width: 40},
	}
	t := table.New(table.WithColumns(cols), table.WithHeight(len(cat.Scenarios)+1))
	return Model{
		catalog:  cat,
		root:     root,
		interval: interval,
		table:    t,
		vp:       viewport.New(0, 0),
		wrap:     true,
	}
}

// Run starts the dashboard and blocks until the user quits.
func Run(cat catalog.Catalog, root string, interval time.Duration) error {
	p := tea.NewProgram(NewModel(cat, root, interval), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m Model) analyzeCmd() tea.Cmd {
	cat, root := m.catalog, m.root
	return func() tea.Msg {
		msg := resultsMsg{at: time.Now()}
		for _, sc := range cat.Scenarios {
			path, ok := sc.Locate(root)
			if !ok {
				msg.summary.Skipped++
				msg.rows = append(msg.rows, scenarioRow{
					name:   sc.Name,
					result: "SKIP",
					detail: "no results found",
				})
				continue
			}
			rep := analyze.AnalyzeScenario(path, sc.Name)
			row := scenarioRow{name: sc.Name}
			if rep.Passed {
				msg.summary.Passed++
				row.result = "PASS"
				row.detail = fmt.Sprintf("%d data points", rep.Rows)
			} else {
				msg.summary.Failed++
				row.result = "FAIL"
				row.detail = rep.Reason
			}
			for _, c := range rep.Checks {
				if c.Passed {
					continue
				}
				if row.detail == "" {
					row.detail = c.FailText
				}
				row.violations = append(row.violations, c.Violations...)
			}
			msg.rows = append(msg.rows, row)
		}
		return msg
	}
}

func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Init starts the first analysis pass and the refresh timer.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.analyzeCmd(), m.tickCmd())
}

// Update handles refresh ticks, incoming results, resizes, and keys.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetWidth(msg.Width)
		m.vp.Width = msg.Width
		m.layout()
		m.refreshViewport()
	case tickMsg:
		return m, tea.Batch(m.analyzeCmd(), m.tickCmd())
	case resultsMsg:
		m.summary = msg.summary
		m.lastRun = msg.at
		rows := make([]table.Row, 0, len(msg.rows))
		var lines []string
		for _, r := range msg.rows {
			rows = append(rows, table.Row{r.name, r.result, r.detail})
			if len(r.violations) > 0 {
				lines = append(lines, failStyle.Render(r.name))
				lines = append(lines, r.violations...)
			}
		}
		m.table.SetRows(rows)
		m.lines = lines
		m.layout()
		m.refreshViewport()
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "r":
			return m, m.analyzeCmd()
		case "w":
			m.wrap = !m.wrap
			m.refreshViewport()
		default:
			var cmd tea.Cmd
			m.vp, cmd = m.vp.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

func (m *Model) layout() {
	used := m.table.Height() + lipgloss.Height(m.renderTitle()) + lipgloss.Height(m.renderFooter()) + 2
	h := m.height - used
	if h < 3 {
		h = 3
	}
	m.vp.Height = h
}

func (m *Model) refreshViewport() {
	content := strings.Join(m.lines, "\n")
	if m.wrap && m.vp.Width > 0 {
		content = wordwrap.String(content, m.vp.Width)
	}
	m.vp.SetContent(content)
	m.vp.GotoBottom()
}

func (m Model) renderTitle() string {
	title := titleStyle.Render("meshcheck watch") + "  " + m.root
	sum := fmt.Sprintf("%s %s %s",
		passStyle.Render(fmt.Sprintf("passed=%d", m.summary.Passed)),
		failStyle.Render(fmt.Sprintf("failed=%d", m.summary.Failed)),
		skipStyle.Render(fmt.Sprintf("skipped=%d", m.summary.Skipped)))
	if !m.lastRun.IsZero() {
		sum += footerStyle.Render("  last run " + m.lastRun.Format("15:04:05"))
	}
	return title + "\n" + sum
}

func (m Model) renderFooter() string {
	return footerStyle.Render("q quit · r refresh · w wrap · every " + m.interval.String())
}

// View renders the dashboard.
func (m Model) View() string {
	divider := dividerSty.Render(strings.Repeat("─", max(m.width, 1)))
	sections := []string{
		m.renderTitle(),
		m.table.View(),
		divider,
		m.vp.View(),
		m.renderFooter(),
	}
	return strings.Join(sections, "\n")
}
