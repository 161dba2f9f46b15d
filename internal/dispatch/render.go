package dispatch

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"phonebook/internal/domain"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

// renderTable draws records as a two-column grid. Multiple phones share a
// cell, one per line.
func renderTable(records []domain.Record) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderRow(true).
		Headers("Name", "Phones").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	for _, r := range records {
		phones := make([]string, len(r.Phones))
		for i, p := range r.Phones {
			phones[i] = p.String()
		}
		t.Row(r.Name.String(), strings.Join(phones, "\n"))
	}
	return t.String()
}
