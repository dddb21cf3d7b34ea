package parse

import (
	"regexp"
	"strings"
)

// MediaMarkers are the placeholder phrases WhatsApp substitutes for
// attachments in a text export. Matching is case-insensitive substring.
var MediaMarkers = []string{
	"<Media omitted>",
	"image omitted",
	"video omitted",
	"audio omitted",
	"document omitted",
	"sticker omitted",
}

// emojiRanges are the Unicode blocks counted as emoji: emoticons, misc
// symbols and pictographs, transport, regional indicators, misc symbols,
// dingbats.
var emojiRanges = [...][2]rune{
	{0x1F600, 0x1F64F},
	{0x1F300, 0x1F5FF},
	{0x1F680, 0x1F6FF},
	{0x1F1E0, 0x1F1FF},
	{0x2600, 0x26FF},
	{0x2700, 0x27BF},
}

var questionWordRe = regexp.MustCompile(
	`(?i)\b(what|how|when|where|why|who|which|can|could|would|will|do|does|did|is|are|was|were)\b`)

// IsMedia reports whether content is a media placeholder rather than text.
func IsMedia(content string) bool {
	lower := strings.ToLower(content)
	for _, marker := range MediaMarkers {
		if strings.Contains(lower, strings.ToLower(marker)) {
			return true
		}
	}
	return false
}

// HasEmoji reports whether text contains at least one rune in emojiRanges.
func HasEmoji(text string) bool {
	for _, r := range text {
		for _, rng := range emojiRanges {
			if r >= rng[0] && r <= rng[1] {
				return true
			}
		}
	}
	return false
}

// IsQuestion reports whether text contains a question mark or a common
// English question word.
func IsQuestion(text string) bool {
	return strings.Contains(text, "?") || questionWordRe.MatchString(text)
}

// CountWords counts whitespace-delimited tokens.
func CountWords(text string) int {
	return len(strings.Fields(text))
}
