package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/sferro/chatlens/internal/analyze"
)

// bar renders a horizontal bar scaled so that max fills width cells.
// A nonzero value always shows at least one cell.
func bar(value, max, width int) string {
	if max <= 0 || width <= 0 {
		return ""
	}
	n := value * width / max
	if n == 0 && value > 0 {
		n = 1
	}
	return styleBar.Render(strings.Repeat("█", n))
}

func metric(label, value string) string {
	return fmt.Sprintf("  %s %s", styleMetricLabel.Render(label), styleMetricValue.Render(value))
}

func renderOverview(data *analyze.ChatData) string {
	d := data.ResponseTimeDistribution
	lines := []string{
		styleHeading.Render("Chat Overview"),
		"",
		metric("Total messages:   ", fmt.Sprintf("%d", data.TotalMessages)),
		metric("Participants:     ", strings.Join(data.Participants, ", ")),
		metric("Date range:       ", data.DateRange.Start+" to "+data.DateRange.End),
		metric("Active days:      ", fmt.Sprintf("%d", data.ActiveDays)),
		metric("Avg response time:", data.AvgResponseTime),
		metric("Peak hour:        ", fmt.Sprintf("%d:00", data.PeakHour)),
		metric("Emoji density:    ", fmt.Sprintf("%d%%", data.EmojiDensity)),
		metric("Questions asked:  ", fmt.Sprintf("%d", data.TotalQuestions)),
		"",
		styleHeading.Render("Response Times"),
		"",
		metric("Instant (<5m):    ", fmt.Sprintf("%d", d.Instant)),
		metric("Fast (<1h):       ", fmt.Sprintf("%d", d.Fast)),
		metric("Slow (>1h):       ", fmt.Sprintf("%d", d.Slow)),
	}
	return strings.Join(lines, "\n")
}

func renderTimeline(data *analyze.ChatData, width int) string {
	maxCount := 0
	for _, e := range data.Timeline {
		if e.Count > maxCount {
			maxCount = e.Count
		}
	}

	barWidth := width - 22 // date label + count column
	if barWidth < 10 {
		barWidth = 10
	}

	lines := []string{styleHeading.Render("Messages per Day"), ""}
	for _, e := range data.Timeline {
		lines = append(lines, fmt.Sprintf("  %s %s %d", e.Date, bar(e.Count, maxCount, barWidth), e.Count))
	}
	return strings.Join(lines, "\n")
}

// heatLevels maps cell intensity to a glyph, lightest to darkest.
var heatLevels = []string{"·", "░", "▒", "▓", "█"}

func renderActivity(data *analyze.ChatData) string {
	maxCount := 0
	for _, c := range data.ActivityHeatmap {
		if c > maxCount {
			maxCount = c
		}
	}

	var header strings.Builder
	header.WriteString("      ")
	for h := 0; h < 24; h += 3 {
		header.WriteString(fmt.Sprintf("%-3d", h))
	}

	lines := []string{styleHeading.Render("Activity by Day and Hour"), "", header.String()}
	for d := 0; d < 7; d++ {
		var row strings.Builder
		row.WriteString(fmt.Sprintf("  %s ", time.Weekday(d).String()[:3]))
		for h := 0; h < 24; h++ {
			count := data.ActivityHeatmap[fmt.Sprintf("%d-%d", d, h)]
			row.WriteString(heatCell(count, maxCount))
		}
		lines = append(lines, row.String())
	}
	lines = append(lines, "", fmt.Sprintf("  peak hour: %d:00", data.PeakHour))
	return strings.Join(lines, "\n")
}

func heatCell(count, max int) string {
	if count == 0 || max == 0 {
		return " "
	}
	level := (count*(len(heatLevels)-1) + max - 1) / max
	if level >= len(heatLevels) {
		level = len(heatLevels) - 1
	}
	return styleBar.Render(heatLevels[level])
}

const wordsShown = 30

func renderWords(data *analyze.ChatData, width int) string {
	words := data.WordFrequency
	if len(words) > wordsShown {
		words = words[:wordsShown]
	}

	maxCount := 0
	for _, w := range words {
		if w.Count > maxCount {
			maxCount = w.Count
		}
	}

	barWidth := width - 28
	if barWidth < 10 {
		barWidth = 10
	}

	lines := []string{styleHeading.Render("Most Used Words"), ""}
	for _, w := range words {
		word := runewidth.Truncate(w.Word, 18, "…")
		lines = append(lines, fmt.Sprintf("  %-18s %s %d", word, bar(w.Count, maxCount, barWidth), w.Count))
	}
	if len(lines) == 2 {
		lines = append(lines, "  (no words outside the stop list)")
	}
	return strings.Join(lines, "\n")
}

func renderScores(data *analyze.ChatData, width int) string {
	barWidth := width - 30
	if barWidth < 10 {
		barWidth = 10
	}

	lines := []string{styleHeading.Render("Interest Scores"), ""}
	for _, p := range data.Participants {
		s, ok := data.InterestScores[p]
		if !ok {
			continue
		}
		lines = append(lines,
			fmt.Sprintf("  %s — %d/100", styleMetricValue.Render(p), s.Overall),
			fmt.Sprintf("    responsiveness %3d %s", s.Responsiveness, bar(s.Responsiveness, 100, barWidth)),
			fmt.Sprintf("    initiation     %3d %s", s.Initiation, bar(s.Initiation, 100, barWidth)),
			fmt.Sprintf("    effort         %3d %s", s.Effort, bar(s.Effort, 100, barWidth)),
			"    "+styleMetricLabel.Render(s.Explanation),
			"")
	}
	return strings.Join(lines, "\n")
}
