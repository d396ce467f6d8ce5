package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/nightwatch/internal/storage"
)

// maxHistory is how many nights the history table loads.
const maxHistory = 50

// historyView shows the night journal as a table.
type historyView struct {
	table   table.Model
	records []storage.NightRecord
	width   int
	height  int
}

func newHistoryView(width, height int) historyView {
	h := historyView{width: width, height: height}
	h.table = h.createTable()
	return h
}

// createTable creates a new table sized for the view.
func (h *historyView) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Result", Width: 12},
		{Title: "Survived", Width: 9},
		{Title: "Power", Width: 6},
		{Title: "Repels", Width: 7},
		{Title: "Started", Width: 14},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(h.height-8, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("52")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// SetRecords replaces the rows, newest first.
func (h *historyView) SetRecords(records []storage.NightRecord) {
	h.records = records
	rows := make([]table.Row, len(records))
	for i, r := range records {
		rows[i] = table.Row{
			strconv.Itoa(len(records) - i),
			resultText(r),
			clockText(r.Survived),
			fmt.Sprintf("%d%%", int(r.PowerLeft)),
			strconv.Itoa(r.Repels),
			r.StartedAt.Format("Jan 02 15:04"),
		}
	}
	h.table.SetRows(rows)
	h.table.GotoTop()
}

// Resize rebuilds the table for a new terminal size.
func (h *historyView) Resize(width, height int) {
	h.width = width
	h.height = height
	h.table = h.createTable()
	h.SetRecords(h.records)
}

// Update passes scrolling keys to the table.
func (h historyView) Update(msg tea.Msg) (historyView, tea.Cmd) {
	var cmd tea.Cmd
	h.table, cmd = h.table.Update(msg)
	return h, cmd
}

// View renders the journal.
func (h historyView) View() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	var content string
	if len(h.records) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		content = emptyStyle.Render("No nights played yet.")
	} else {
		content = h.table.View()
	}

	body := lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render("NIGHT JOURNAL"),
		boxStyle.Render(content),
	)
	return lipgloss.Place(h.width, max(h.height-footerHeight, 1), lipgloss.Center, lipgloss.Center, body)
}

func resultText(r storage.NightRecord) string {
	if r.Won {
		return "survived"
	}
	if r.Cause == "power" {
		return "power out"
	}
	return "caught"
}
