package analyze

import (
	"math"

	"github.com/sferro/chatlens/internal/parse"
)

// Thresholds for the interest heuristics.
const (
	quickReplyMinutes = 30 // a response under this counts as quick
	gapHours          = 3  // silence longer than this starts a new conversation
)

// interestScores computes the engagement heuristics for every participant.
// Responsiveness and initiation read the full message sequence; effort only
// looks at the participant's own messages.
func interestScores(msgs []parse.Message, participants []string) map[string]InterestScore {
	scores := make(map[string]InterestScore, len(participants))
	for _, p := range participants {
		var own []parse.Message
		for _, m := range msgs {
			if m.Sender == p {
				own = append(own, m)
			}
		}

		r := responsiveness(msgs, p)
		i := initiation(msgs, p)
		e := effort(own)
		overall := int(math.Round(float64(r+i+e) / 3))

		scores[p] = InterestScore{
			Responsiveness: r,
			Initiation:     i,
			Effort:         e,
			Overall:        overall,
			Explanation:    explanation(overall),
		}
	}
	return scores
}

// responsiveness is the percentage of this participant's responses (pairs
// where the previous sender differs) arriving within quickReplyMinutes.
// No responses at all scores 0.
func responsiveness(msgs []parse.Message, participant string) int {
	quick, total := 0, 0
	for i := 1; i < len(msgs); i++ {
		if msgs[i].Sender != participant || msgs[i-1].Sender == participant {
			continue
		}
		total++
		if msgs[i].Timestamp.Sub(msgs[i-1].Timestamp).Minutes() < quickReplyMinutes {
			quick++
		}
	}
	return roundPercent(quick, total)
}

// initiation is the percentage of conversation gaps (over gapHours of
// silence) where this participant sent the first message after the gap.
// No gaps in the whole chat scores 0.
func initiation(msgs []parse.Message, participant string) int {
	started, gaps := 0, 0
	for i := 1; i < len(msgs); i++ {
		if msgs[i].Timestamp.Sub(msgs[i-1].Timestamp).Hours() <= gapHours {
			continue
		}
		gaps++
		if msgs[i].Sender == participant {
			started++
		}
	}
	return roundPercent(started, gaps)
}

// effort scores message length (capped at 70) plus emoji usage (up to 30)
// over the participant's own messages, so the sum stays within 100.
func effort(own []parse.Message) int {
	if len(own) == 0 {
		return 0
	}
	words := 0
	withEmoji := 0
	for _, m := range own {
		words += m.WordCount
		if m.HasEmoji {
			withEmoji++
		}
	}
	avgWords := float64(words) / float64(len(own))
	emojiFrac := float64(withEmoji) / float64(len(own))

	lengthScore := math.Min(avgWords*10, 70)
	emojiScore := emojiFrac * 30
	return int(math.Round(lengthScore + emojiScore))
}

func explanation(overall int) string {
	switch {
	case overall >= 80:
		return "High interest: Fast responses, frequent conversation starters, and engaging messages!"
	case overall >= 60:
		return "Good interest: Shows engagement with decent response times and effort."
	case overall >= 40:
		return "Moderate interest: Some engagement but could be more responsive or initiating."
	default:
		return "Low interest: Infrequent responses and minimal conversation initiation."
	}
}
