package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"pptxswap/internal/processor"
)

type SummaryRow struct {
	Label string
	Value string
}

func RenderSummary(rows []SummaryRow) string {
	labelWidth := 0
	valueWidth := 0
	for _, row := range rows {
		if len(row.Label) > labelWidth {
			labelWidth = len(row.Label)
		}
		if len(row.Value) > valueWidth {
			valueWidth = len(row.Value)
		}
	}

	hline := strings.Repeat("-", labelWidth+valueWidth+3)
	lines := []string{hline}

	for _, row := range rows {
		label := padRight(row.Label, labelWidth)
		value := padRight(row.Value, valueWidth)
		line := fmt.Sprintf("%s | %s", labelStyle.Render(label), valueStyle.Render(value))
		lines = append(lines, line)
	}

	lines = append(lines, hline)
	return strings.Join(lines, "\n")
}

// RenderStatusLine formats one archive's outcome for the per-file report.
func RenderStatusLine(res processor.FileResult) string {
	switch res.Status {
	case processor.StatusReplaced:
		return fmt.Sprintf("%s %s: replaced %d image(s)",
			successStyle.Render("✓"), res.RelPath, res.Replaced)
	case processor.StatusNoMatch:
		return fmt.Sprintf("%s %s: no matching image",
			neutralStyle.Render("○"), res.RelPath)
	default:
		return fmt.Sprintf("%s %s: %v",
			errorStyle.Render("✗"), res.RelPath, res.Err)
	}
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

var (
	valueStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(ColorSuccess)
	neutralStyle = lipgloss.NewStyle().Foreground(ColorDim)
	errorStyle   = lipgloss.NewStyle().Foreground(ColorError)
)
