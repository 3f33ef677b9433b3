package cli

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/custodia-labs/wppm-cli/internal/core/domain"
)

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

// renderTable renders rows under headers with a plain border.
func renderTable(headers []string, rows [][]string) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...).
		Rows(rows...)
	return t.Render()
}

// curveRows samples about n evenly spaced rows of c, always including the
// last point. n <= 0 keeps every point.
func curveRows(c domain.Curve, n int) [][]string {
	total := c.Len()
	if total == 0 {
		return nil
	}
	stride := 1
	if n > 0 && total > n {
		stride = total / n
	}

	var rows [][]string
	for i := 0; i < total; i += stride {
		rows = append(rows, []string{formatFloat(c.X[i]), formatFloat(c.Y[i])})
	}
	if (total-1)%stride != 0 {
		rows = append(rows, []string{formatFloat(c.X[total-1]), formatFloat(c.Y[total-1])})
	}
	return rows
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}
