package cli

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/romero-archive/concordia/internal/core/domain"
)

const chartWidth = 40

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	monthStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#06B6D4")) // Cyan
	barStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#7C3AED")) // Purple
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086")) // Medium gray
)

// renderReport prints the monthly distribution chart and the top
// homilies, mirroring the report structure: months in chronological
// order, top list ranked by match count.
func renderReport(cmd *cobra.Command, report *domain.Report, lang domain.Language, accentSensitive bool, top int, norm string) {
	mode := "accent-insensitive"
	if accentSensitive {
		mode = "accent-sensitive"
	}

	cmd.Println()
	cmd.Println(headerStyle.Render(fmt.Sprintf("Searching %s corpus for: %q [%s] (%s)",
		lang.Name(), report.Term, strings.Join(report.Tokens, " "), mode)))
	cmd.Printf("Found %d occurrences in %d homilies (%.2fs)\n\n",
		report.TotalCount, report.TotalHomilies, report.ElapsedSeconds)

	if len(report.Tokens) == 0 {
		cmd.Println(mutedStyle.Render("No search tokens in term."))
		return
	}
	if report.TotalCount == 0 {
		cmd.Println(mutedStyle.Render("No matches found."))
		return
	}

	label := "raw count"
	value := func(b *domain.MonthBucket) float64 { return float64(b.Count) }
	switch norm {
	case "words":
		label = "per 10k words"
		value = func(b *domain.MonthBucket) float64 { return b.Per10kWords }
	case "homilies":
		label = "per homily"
		value = func(b *domain.MonthBucket) float64 { return b.PerHomily }
	}

	maxValue := 0.0
	for _, key := range report.Months.Keys() {
		b, _ := report.Months.Get(key)
		maxValue = math.Max(maxValue, value(b))
	}

	cmd.Printf("Monthly distribution (%s):\n", label)
	for _, key := range report.Months.Keys() {
		b, _ := report.Months.Get(key)
		v := value(b)
		// Pad before styling: ANSI escapes would throw off %-*s widths.
		padded := fmt.Sprintf("%-*s", chartWidth, bar(v, maxValue))
		line := fmt.Sprintf("  %s  %s", monthStyle.Render(key), barStyle.Render(padded))
		if norm == "" {
			line += fmt.Sprintf("  %4d", b.Count)
		} else {
			line += fmt.Sprintf("  %6.1f  (%3d)", v, b.Count)
		}
		cmd.Println(line)
	}

	hits := report.TopHomilies(top)
	cmd.Printf("\nTop %d homilies:\n", len(hits))
	for _, h := range hits {
		cmd.Printf("  %s  %3dx  %s\n", mutedStyle.Render(h.Date), h.Count, h.Title)
	}
	cmd.Println()
}

// bar renders a proportional bar of block characters.
func bar(value, maxValue float64) string {
	if maxValue <= 0 {
		return ""
	}
	filled := int(math.Round(value / maxValue * chartWidth))
	return strings.Repeat("█", filled)
}
