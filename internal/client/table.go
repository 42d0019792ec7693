package client

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-movie-finder/models"
)

var tableColumns = []string{"Title", "Year", "Genre", "Country", "Rating", "Votes"}

const maxCellWidth = 40

// RenderTable lays movies out as a table, one row per movie in the given
// order. Long cells are cut to keep rows on one line.
func RenderTable(movies []models.Movie) string {
	rows := make([][]string, 0, len(movies))
	for _, m := range movies {
		rows = append(rows, []string{
			m.FilmTitle,
			m.Year.String(),
			m.Genre,
			m.Country,
			m.AvgVote.String(),
			m.Votes.String(),
		})
	}

	widths := make([]int, len(tableColumns))
	for i, col := range tableColumns {
		widths[i] = lipgloss.Width(col)
	}
	for _, row := range rows {
		for i, cell := range row {
			row[i] = truncate(cell, maxCellWidth)
			if w := lipgloss.Width(row[i]); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var b strings.Builder
	writeRow(&b, tableColumns, widths, headerStyle)

	for i, w := range widths {
		if i > 0 {
			b.WriteString("─┼─")
		}
		b.WriteString(strings.Repeat("─", w))
	}
	b.WriteString("\n")

	for _, row := range rows {
		writeRow(&b, row, widths, lipgloss.NewStyle())
	}

	return strings.TrimRight(b.String(), "\n")
}

func writeRow(b *strings.Builder, cells []string, widths []int, style lipgloss.Style) {
	for i, cell := range cells {
		if i > 0 {
			b.WriteString(" │ ")
		}
		b.WriteString(style.Render(cell))
		b.WriteString(strings.Repeat(" ", widths[i]-lipgloss.Width(cell)))
	}
	b.WriteString("\n")
}

func truncate(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}

	var b strings.Builder
	for _, r := range s {
		if lipgloss.Width(b.String()+string(r)) > width-1 {
			break
		}
		b.WriteRune(r)
	}
	b.WriteString("…")
	return b.String()
}
