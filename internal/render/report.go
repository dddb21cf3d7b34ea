package render

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/sferro/chatlens/internal/analyze"
)

const reportWordLimit = 20

// Report renders a printable chat analysis report from a ChatData snapshot.
// Pure templating: no statistic is computed here that the analyzer did not
// already produce. Color codes are dropped automatically when stdout is not
// a terminal.
func Report(data *analyze.ChatData) string {
	title := color.New(color.FgCyan, color.Bold).SprintFunc()
	heading := color.New(color.FgGreen, color.Bold).SprintFunc()
	label := color.New(color.Bold).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()

	var b strings.Builder

	b.WriteString(title("WhatsApp Chat Analysis Report") + "\n")
	b.WriteString(dim("Generated on "+time.Now().Format("2006-01-02")) + "\n")
	b.WriteString(fmt.Sprintf("%d messages • %d participants • %s to %s\n",
		data.TotalMessages, len(data.Participants), data.DateRange.Start, data.DateRange.End))

	b.WriteString("\n" + heading("Key Metrics") + "\n")
	b.WriteString(fmt.Sprintf("  %s %d\n", label("Total Messages:"), data.TotalMessages))
	b.WriteString(fmt.Sprintf("  %s %d\n", label("Active Days:"), data.ActiveDays))
	b.WriteString(fmt.Sprintf("  %s %s\n", label("Avg Response Time:"), data.AvgResponseTime))
	b.WriteString(fmt.Sprintf("  %s %d:00\n", label("Peak Hour:"), data.PeakHour))
	b.WriteString(fmt.Sprintf("  %s %d%%\n", label("Emoji Density:"), data.EmojiDensity))
	b.WriteString(fmt.Sprintf("  %s %d\n", label("Questions Asked:"), data.TotalQuestions))

	b.WriteString("\n" + heading("Interest Level Analysis") + "\n")
	for _, p := range sortedParticipants(data) {
		s := data.InterestScores[p]
		b.WriteString(fmt.Sprintf("  %s — %s\n", label(p), title(fmt.Sprintf("%d/100", s.Overall))))
		b.WriteString(fmt.Sprintf("    Responsiveness: %d%%  Initiation: %d%%  Effort: %d%%\n",
			s.Responsiveness, s.Initiation, s.Effort))
		b.WriteString("    " + dim(s.Explanation) + "\n")
	}

	b.WriteString("\n" + heading("Most Used Words") + "\n")
	words := data.WordFrequency
	if len(words) > reportWordLimit {
		words = words[:reportWordLimit]
	}
	for _, w := range words {
		b.WriteString(fmt.Sprintf("  %-20s %d\n", w.Word, w.Count))
	}

	d := data.ResponseTimeDistribution
	b.WriteString("\n" + heading("Response Time Distribution") + "\n")
	b.WriteString(fmt.Sprintf("  Instant (<5m): %d\n", d.Instant))
	b.WriteString(fmt.Sprintf("  Fast (<1h):    %d\n", d.Fast))
	b.WriteString(fmt.Sprintf("  Slow (>1h):    %d\n", d.Slow))

	return b.String()
}

// sortedParticipants keeps the chat's first-seen order for participants
// that have scores, so report and dashboard agree.
func sortedParticipants(data *analyze.ChatData) []string {
	out := make([]string, 0, len(data.InterestScores))
	for _, p := range data.Participants {
		if _, ok := data.InterestScores[p]; ok {
			out = append(out, p)
		}
	}
	// scores for senders missing from the participant list should not be
	// silently lost
	if len(out) < len(data.InterestScores) {
		var extra []string
		seen := make(map[string]bool, len(out))
		for _, p := range out {
			seen[p] = true
		}
		for p := range data.InterestScores {
			if !seen[p] {
				extra = append(extra, p)
			}
		}
		sort.Strings(extra)
		out = append(out, extra...)
	}
	return out
}
