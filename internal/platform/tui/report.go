package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/subkiller/internal/core"
	"github.com/vovakirdan/subkiller/internal/storage"
)

const maxReportRows = 8

// Report is the end-of-game summary with the restart question.
type Report struct {
	Title    string
	State    core.GameState
	Accuracy float64          // In [0, 1]
	Best     *storage.Result  // Best game of the process, if any
	History  []storage.Result // Games of this session, newest first
}

var reportBoxStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("160")).
	Padding(1, 3).
	Align(lipgloss.Center)

var reportTitleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("226"))

var reportGameStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("33"))

var reportQuestionStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("231"))

var tableBoxStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("240")).
	Padding(0, 1)

// FormatAccuracy renders a ratio as a percentage.
func FormatAccuracy(ratio float64) string {
	return fmt.Sprintf("%.1f%%", ratio*100)
}

// View renders the report centered in a width x height area.
func (r Report) View(width, height int) string {
	var b strings.Builder
	if r.Title != "" {
		b.WriteString(reportGameStyle.Render(strings.ToUpper(r.Title)))
		b.WriteString("\n")
	}
	b.WriteString(reportTitleStyle.Render("GAME OVER"))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "You hit the submarine %d times\n", r.State.Hits)
	fmt.Fprintf(&b, "and missed %d times.\n", r.State.Misses)
	fmt.Fprintf(&b, "Accuracy: %s\n", FormatAccuracy(r.Accuracy))
	if r.Best != nil {
		fmt.Fprintf(&b, "Best so far: %d hits (%s)\n", r.Best.Hits, FormatAccuracy(r.Best.Accuracy))
	}
	b.WriteString("\n")
	b.WriteString(reportQuestionStyle.Render("Play again? (y/n)"))

	parts := []string{reportBoxStyle.Render(b.String())}
	if len(r.History) > 0 {
		parts = append(parts, tableBoxStyle.Render(r.historyTable().View()))
	}

	content := lipgloss.JoinVertical(lipgloss.Center, parts...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// historyTable lists the session's finished games.
func (r Report) historyTable() table.Model {
	columns := []table.Column{
		{Title: "Game", Width: 5},
		{Title: "Hits", Width: 5},
		{Title: "Misses", Width: 7},
		{Title: "Accuracy", Width: 9},
		{Title: "Time", Width: 9},
	}

	rows := make([]table.Row, 0, min(len(r.History), maxReportRows))
	for i, res := range r.History {
		if i == maxReportRows {
			break
		}
		rows = append(rows, table.Row{
			fmt.Sprintf("#%d", len(r.History)-i),
			fmt.Sprintf("%d", res.Hits),
			fmt.Sprintf("%d", res.Misses),
			FormatAccuracy(res.Accuracy),
			res.CreatedAt.Format("15:04:05"),
		})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(len(rows)+1),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Cell
	t.SetStyles(s)
	return t
}
