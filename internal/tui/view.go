package tui

import (
	"fmt"
	"strings"

	"market-mood/internal/domain"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
)

func (m Model) View() string {
	header := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("CNN Fear & Greed Index"),
		captionStyle.Render("Market sentiment at a glance"),
	)

	if m.loading {
		return header + "\n\n " + m.spinner.View() + " Fetching market sentiment...\n"
	}

	if m.err != nil || m.snapshot == nil {
		msg := "Unable to load Fear & Greed data. Please try again later."
		if m.err != nil {
			msg += "\n" + m.err.Error()
		}
		return header + "\n\n" + warnStyle.Render(msg) + "\n\n" + dimStyle.Render(" r refresh • q quit") + "\n"
	}

	snap := m.snapshot
	colWidth := max(m.width/2-2, 36)

	top := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderGauge(snap.Current, colWidth),
		m.renderCurrentPanel(snap.Current, colWidth),
	)

	sections := []string{
		header,
		top,
		m.divider(),
		m.renderHistory(snap.History),
		m.divider(),
		m.renderIndicators(snap.Indicators),
		m.divider(),
		dimStyle.Render(" Data sourced from CNN's Fear & Greed Index. Informational only, not financial advice."),
		dimStyle.Render(" r refresh • q quit"),
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...) + "\n"
}

func (m Model) divider() string {
	return dividerStyle.Render(strings.Repeat("─", max(m.width-2, 10)))
}

// renderGauge draws the 0-100 scale with the five colored zones and a marker
// at the current score.
func (m Model) renderGauge(current domain.IndexReading, width int) string {
	inner := max(width-6, 20)

	pos := int(clamp(current.Score, 0, 100) / 100 * float64(inner-1))
	marker := strings.Repeat(" ", pos) + bandStyle(current.Band).Bold(true).Render("▼")

	var bar strings.Builder
	for i := 0; i < inner; i++ {
		zone := domain.Classify((float64(i) + 0.5) * 100 / float64(inner))
		bar.WriteString(bandStyle(zone).Render("█"))
	}

	axis := "0" + strings.Repeat(" ", inner/2-2) + "50" + strings.Repeat(" ", inner-inner/2-4) + "100"

	score := scoreStyle.Foreground(bandColor(current.Band)).Render(fmt.Sprintf("%.1f", current.Score))

	body := lipgloss.JoinVertical(lipgloss.Left,
		panelTitleStyle.Render("Current Index"),
		"",
		marker,
		bar.String(),
		dimStyle.Render(axis),
		"",
		score,
	)

	return panelStyle.Width(width).Render(body)
}

var referenceRanges = []struct {
	span string
	band domain.Band
}{
	{"0-25", domain.ExtremeFear},
	{"25-45", domain.Fear},
	{"45-55", domain.Neutral},
	{"55-75", domain.Greed},
	{"75-100", domain.ExtremeGreed},
}

func (m Model) renderCurrentPanel(current domain.IndexReading, width int) string {
	lines := []string{
		panelTitleStyle.Render("Sentiment"),
		"",
		bandStyle(current.Band).Bold(true).Render(current.Band.String()),
		fmt.Sprintf("Score %.1f  %+.1f vs prev close", current.Score, current.Delta()),
	}

	if !current.ObservedAt.IsZero() {
		lines = append(lines, dimStyle.Render("Last updated: "+current.ObservedAt.UTC().Format("Jan 02, 2006 15:04 UTC")))
	}

	lines = append(lines, "")
	for _, row := range referenceRanges {
		lines = append(lines, fmt.Sprintf("%-7s %s", row.span, bandStyle(row.band).Render(row.band.String())))
	}

	return panelStyle.Width(width).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (m Model) renderHistory(history []domain.HistoricalPoint) string {
	if len(history) == 0 {
		return infoStyle.Render(" Historical data is not available right now.")
	}

	scores := make([]float64, len(history))
	for i, p := range history {
		scores[i] = p.Score
	}

	chart := asciigraph.Plot(scores,
		asciigraph.Height(10),
		asciigraph.Width(max(m.width-12, 40)),
		asciigraph.LowerBound(0),
		asciigraph.UpperBound(100),
		asciigraph.Precision(0),
	)

	first := history[0].ObservedAt.UTC().Format("Jan 02, 2006")
	last := history[len(history)-1].ObservedAt.UTC().Format("Jan 02, 2006")

	var legend strings.Builder
	for i, row := range referenceRanges {
		if i > 0 {
			legend.WriteString("  ")
		}
		legend.WriteString(bandStyle(row.band).Render("■ " + row.band.String()))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		panelTitleStyle.Render(" Past Year"),
		chart,
		dimStyle.Render(fmt.Sprintf(" %s to %s", first, last)),
		" "+legend.String(),
	)
}

const indicatorColumns = 2

func (m Model) renderIndicators(indicators []domain.IndicatorReading) string {
	title := panelTitleStyle.Render(" Component Indicators")
	if len(indicators) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, title,
			infoStyle.Render(" Component indicators are not available right now."))
	}

	cardWidth := max(m.width/indicatorColumns-2, 36)

	var rows []string
	for i := 0; i < len(indicators); i += indicatorColumns {
		var cards []string
		for j := i; j < min(i+indicatorColumns, len(indicators)); j++ {
			cards = append(cards, renderIndicatorCard(indicators[j], cardWidth))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, append([]string{title}, rows...)...)
}

func renderIndicatorCard(ind domain.IndicatorReading, width int) string {
	inner := max(width-4, 20)
	badge := badgeStyle(ind.Band).Render(ind.Band.String())
	label := panelTitleStyle.Render(ind.Label)

	gap := inner - lipgloss.Width(label) - lipgloss.Width(badge)
	header := label + strings.Repeat(" ", max(gap, 1)) + badge

	body := lipgloss.JoinVertical(lipgloss.Left,
		header,
		scoreStyle.Foreground(bandColor(ind.Band)).Render(fmt.Sprintf("%.1f", ind.Score)),
		dimStyle.Render(ind.Description),
	)

	return panelStyle.Width(width).Render(body)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
