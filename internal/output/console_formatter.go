package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rpgo/card-optimizer/internal/domain"
)

var (
	colorText   = lipgloss.Color("#FFFCF0")
	colorAccent = lipgloss.Color("#3AA99F")
	colorDim    = lipgloss.Color("#575653")
	colorGreen  = lipgloss.Color("#879A39")
	colorOrange = lipgloss.Color("#DA702C")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorText).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDim).
			Padding(0, 1)

	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	valueStyle  = lipgloss.NewStyle().Foreground(colorText)
	dimStyle    = lipgloss.NewStyle().Foreground(colorDim)
	goodStyle   = lipgloss.NewStyle().Foreground(colorGreen)
	warnStyle   = lipgloss.NewStyle().Foreground(colorOrange)
)

// ConsoleFormatter renders human readable tables for a terminal.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) FormatAllocation(summary *domain.AllocationSummary) ([]byte, error) {
	var b strings.Builder
	b.WriteString(titleStyle.Render("PAYMENT ALLOCATION"))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "  Budget: %s   Solver: %s\n\n", valueStyle.Render(FormatCurrency(summary.Budget)), statusText(summary.Solution))

	rows := make([][]string, 0, len(summary.UpdatedCards))
	for _, card := range summary.UpdatedCards {
		rows = append(rows, []string{
			card.Nickname,
			FormatCurrency(card.Balance),
			FormatPercentage(card.APR),
			FormatCurrency(card.MinPayment),
			FormatCurrency(card.SuggestedPayment),
			FormatCurrency(card.NextBalanceOnSuggested),
			FormatCurrency(card.NextBalanceOnMin),
			FormatCurrency(card.NextBalanceOnCurrentPayment),
		})
	}
	b.WriteString(renderTable(
		[]string{"Card", "Balance", "APR", "Minimum", "Suggested", "Next (suggested)", "Next (minimum)", "Next (current)"},
		rows,
	))
	b.WriteString("\n")
	fmt.Fprintf(&b, "  Initial balance:        %s\n", FormatCurrency(summary.InitialBalance))
	fmt.Fprintf(&b, "  End balance (minimum):  %s\n", FormatCurrency(summary.EndBalanceOnMinimumPayment))
	fmt.Fprintf(&b, "  End balance (current):  %s\n", FormatCurrency(summary.EndBalanceOnCurrentPayment))
	fmt.Fprintf(&b, "  End balance (suggested): %s\n", FormatCurrency(summary.EndBalanceOnSuggestedPayment))
	fmt.Fprintf(&b, "  Interest saved:         %s\n", goodStyle.Render(FormatCurrency(summary.InterestSaved)))
	return []byte(b.String()), nil
}

func (c ConsoleFormatter) FormatComparison(report *domain.ComparisonReport) ([]byte, error) {
	var b strings.Builder
	b.WriteString(titleStyle.Render("PAYOFF COMPARISON"))
	b.WriteString("\n\n")

	for _, card := range report.Progress {
		b.WriteString("  ")
		b.WriteString(headerStyle.Render(card.Nickname))
		b.WriteString("\n")
		rows := make([][]string, 0, len(card.Projection))
		for i, m := range card.Projection {
			rows = append(rows, []string{
				fmt.Sprintf("%2d %s", i, m.Month),
				FormatCurrency(m.NextBalanceOnMin),
				FormatCurrency(m.NextBalanceOnCurrentPayment),
				FormatCurrency(m.NextBalanceOnSuggested),
			})
		}
		b.WriteString(renderTable([]string{"Month", "Minimum", "Current", "Suggested"}, rows))
		b.WriteString("\n")
	}

	s := AnalyzeComparison(report)
	if s.Months == 0 {
		return []byte(b.String()), nil
	}
	fmt.Fprintf(&b, "  Starting balance:            %s\n", FormatCurrency(s.StartBalance))
	fmt.Fprintf(&b, "  After %2d months (minimum):   %s\n", s.Months, FormatCurrency(s.EndOnMinimum))
	fmt.Fprintf(&b, "  After %2d months (current):   %s\n", s.Months, FormatCurrency(s.EndOnCurrent))
	fmt.Fprintf(&b, "  After %2d months (suggested): %s\n", s.Months, FormatCurrency(s.EndOnSuggested))
	fmt.Fprintf(&b, "  Lowest ending balance: %s (%s below minimum payments)\n",
		goodStyle.Render(s.BestStrategy), FormatCurrency(s.SavedVsMinimum))
	return []byte(b.String()), nil
}

func statusText(status domain.SolverStatus) string {
	if status == domain.StatusOptimal {
		return goodStyle.Render(string(status))
	}
	return warnStyle.Render(string(status))
}

// renderTable draws a bordered table; the first column is left aligned and
// the rest are right aligned.
func renderTable(headers []string, rows [][]string) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && lipgloss.Width(cell) > widths[i] {
				widths[i] = lipgloss.Width(cell)
			}
		}
	}

	rule := func(left, mid, right string) string {
		parts := make([]string, len(widths))
		for i, w := range widths {
			parts[i] = strings.Repeat("─", w+2)
		}
		return dimStyle.Render(left+strings.Join(parts, mid)+right) + "\n"
	}
	line := func(cells []string, style lipgloss.Style) string {
		var b strings.Builder
		b.WriteString(dimStyle.Render("│"))
		for i, w := range widths {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			align := lipgloss.Right
			if i == 0 {
				align = lipgloss.Left
			}
			b.WriteString(" ")
			b.WriteString(style.Width(w).Align(align).Render(cell))
			b.WriteString(" ")
			b.WriteString(dimStyle.Render("│"))
		}
		b.WriteString("\n")
		return b.String()
	}

	var b strings.Builder
	b.WriteString(rule("╭", "┬", "╮"))
	b.WriteString(line(headers, headerStyle))
	b.WriteString(rule("├", "┼", "┤"))
	for _, row := range rows {
		b.WriteString(line(row, valueStyle))
	}
	b.WriteString(rule("╰", "┴", "╯"))
	return b.String()
}
