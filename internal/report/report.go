// Package report renders aggregate results for the terminal. It is the only
// layer with presentation side effects; the analytics engine stays pure.
package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/daykeep/daykeep/internal/analytics"
)

const barWidth = 24

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	subtitleStyle = lipgloss.NewStyle().Faint(true)
	labelStyle    = lipgloss.NewStyle().Width(18)
	barFillStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	barRestStyle  = lipgloss.NewStyle().Faint(true)
	axisStyle     = lipgloss.NewStyle().Faint(true)
)

// Render formats the full analytics view: headline figures, percentage bars
// and the bucketized chart.
func Render(res analytics.Result, series analytics.Series, w analytics.Window, dailyGoal int) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Analytics"))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render("Your progress for " + w.Label))
	b.WriteString("\n\n")

	writeStat(&b, "Perfect routine days",
		fmt.Sprintf("%d/%d", res.PerfectRoutineDays, res.DaysInPeriod),
		Percent(res.PerfectRoutineDays, res.DaysInPeriod))
	writeStat(&b, "Deadlines met",
		fmt.Sprintf("%d/%d", res.DeadlinesMet, res.TotalDeadlinesInPeriod),
		Percent(res.DeadlinesMet, res.TotalDeadlinesInPeriod))

	goal := res.DaysInPeriod * dailyGoal
	writeStat(&b, "Tasks completed",
		fmt.Sprintf("%d", res.TotalTasksCompleted),
		Percent(res.TotalTasksCompleted, goal))

	if len(series.Buckets) > 0 {
		b.WriteString("\n")
		b.WriteString(renderChart(series))
	}
	return b.String()
}

func writeStat(b *strings.Builder, label, value string, pct float64) {
	b.WriteString(labelStyle.Render(label))
	b.WriteString(percentBar(pct))
	b.WriteString(fmt.Sprintf("  %s (%.0f%%)\n", value, pct))
}

// Percent returns 100*num/den capped at 100, or 0 when the denominator is
// zero. A zero denominator is the no-data state, never NaN.
func Percent(num, den int) float64 {
	if den <= 0 {
		return 0
	}
	pct := float64(num) / float64(den) * 100
	if pct > 100 {
		return 100
	}
	return pct
}

func percentBar(pct float64) string {
	filled := int(pct / 100 * barWidth)
	if filled > barWidth {
		filled = barWidth
	}
	return barFillStyle.Render(strings.Repeat("█", filled)) +
		barRestStyle.Render(strings.Repeat("░", barWidth-filled))
}

// renderChart draws one horizontal bar per bucket, scaled to the series'
// axis ceiling so gridlines stay round across refreshes.
func renderChart(series analytics.Series) string {
	var b strings.Builder
	for _, bucket := range series.Buckets {
		width := 0
		if series.AxisMax > 0 {
			width = bucket.Count * barWidth / series.AxisMax
		}
		b.WriteString(fmt.Sprintf("%-4s", bucket.Label))
		b.WriteString(barFillStyle.Render(strings.Repeat("█", width)))
		b.WriteString(fmt.Sprintf(" %d\n", bucket.Count))
	}
	b.WriteString(axisStyle.Render(fmt.Sprintf("%4s0%s%d", "", strings.Repeat(" ", barWidth-len(fmt.Sprint(series.AxisMax))), series.AxisMax)))
	b.WriteString("\n")
	return b.String()
}
