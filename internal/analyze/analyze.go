package analyze

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/sferro/chatlens/internal/parse"
)

// ErrEmptyChat is returned when analysis is requested on a chat with zero
// messages; every downstream statistic is undefined without at least one.
var ErrEmptyChat = errors.New("no messages to analyze")

// dateLayout is the display format for calendar dates. Lexicographic order
// equals chronological order, which the timeline sort relies on.
const dateLayout = "2006-01-02"

// Analyze derives the full ChatData aggregate from a parsed chat.
// It is a pure function of its input: messages are never mutated, and
// identical input always yields identical output.
func Analyze(chat *parse.ParsedChat) (*ChatData, error) {
	if len(chat.Messages) == 0 {
		return nil, ErrEmptyChat
	}
	msgs := chat.Messages

	dist, avg := responseTimes(msgs)

	questions := 0
	for _, m := range msgs {
		if m.IsQuestion {
			questions++
		}
	}

	return &ChatData{
		TotalMessages:            len(msgs),
		Participants:             append([]string(nil), chat.Participants...),
		DateRange:                dateRange(msgs),
		ActiveDays:               activeDays(msgs),
		Timeline:                 timeline(msgs),
		ResponseTimeDistribution: dist,
		AvgResponseTime:          avg,
		ActivityHeatmap:          activityHeatmap(msgs),
		PeakHour:                 peakHour(msgs),
		WordFrequency:            wordFrequency(msgs),
		EmojiDensity:             emojiDensity(msgs),
		TotalQuestions:           questions,
		InterestScores:           interestScores(msgs, chat.Participants),
	}, nil
}

func dateRange(msgs []parse.Message) DateRange {
	start, end := msgs[0].Timestamp, msgs[0].Timestamp
	for _, m := range msgs[1:] {
		if m.Timestamp.Before(start) {
			start = m.Timestamp
		}
		if m.Timestamp.After(end) {
			end = m.Timestamp
		}
	}
	return DateRange{Start: start.Format(dateLayout), End: end.Format(dateLayout)}
}

func activeDays(msgs []parse.Message) int {
	days := make(map[string]struct{})
	for _, m := range msgs {
		days[m.Timestamp.Format(dateLayout)] = struct{}{}
	}
	return len(days)
}

func timeline(msgs []parse.Message) []TimelineEntry {
	daily := make(map[string]int)
	for _, m := range msgs {
		daily[m.Timestamp.Format(dateLayout)]++
	}
	entries := make([]TimelineEntry, 0, len(daily))
	for date, count := range daily {
		entries = append(entries, TimelineEntry{Date: date, Count: count})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Date < entries[j].Date })
	return entries
}

// responseTimes walks consecutive message pairs; a pair counts as a
// response only when the sender changes. Gaps under 5 minutes are instant,
// under an hour fast, everything else slow.
func responseTimes(msgs []parse.Message) (ResponseTimeDistribution, string) {
	var dist ResponseTimeDistribution
	var gaps []float64

	for i := 1; i < len(msgs); i++ {
		if msgs[i].Sender == msgs[i-1].Sender {
			continue
		}
		gap := msgs[i].Timestamp.Sub(msgs[i-1].Timestamp).Minutes()
		gaps = append(gaps, gap)
		switch {
		case gap < 5:
			dist.Instant++
		case gap < 60:
			dist.Fast++
		default:
			dist.Slow++
		}
	}

	avg := 0
	if len(gaps) > 0 {
		sum := 0.0
		for _, g := range gaps {
			sum += g
		}
		avg = int(math.Round(sum / float64(len(gaps))))
	}
	return dist, formatResponseTime(avg)
}

func formatResponseTime(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}
	if minutes < 1440 {
		return fmt.Sprintf("%dh", int(math.Round(float64(minutes)/60)))
	}
	return fmt.Sprintf("%dd", int(math.Round(float64(minutes)/1440)))
}

// activityHeatmap counts messages per (weekday, hour) cell. Keys are
// "day-hour" with Sunday as day 0; absent keys mean zero.
func activityHeatmap(msgs []parse.Message) map[string]int {
	heatmap := make(map[string]int)
	for _, m := range msgs {
		key := fmt.Sprintf("%d-%d", int(m.Timestamp.Weekday()), m.Timestamp.Hour())
		heatmap[key]++
	}
	return heatmap
}

// peakHour is the hour of day with the most messages; the earliest hour
// wins ties.
func peakHour(msgs []parse.Message) int {
	var counts [24]int
	for _, m := range msgs {
		counts[m.Timestamp.Hour()]++
	}
	peak := 0
	for h := 1; h < 24; h++ {
		if counts[h] > counts[peak] {
			peak = h
		}
	}
	return peak
}

// emojiDensity is the percentage of non-media messages containing at least
// one emoji, rounded to the nearest integer.
func emojiDensity(msgs []parse.Message) int {
	total, withEmoji := 0, 0
	for _, m := range msgs {
		if m.IsMedia {
			continue
		}
		total++
		if m.HasEmoji {
			withEmoji++
		}
	}
	return roundPercent(withEmoji, total)
}

func roundPercent(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}
