package parse

import (
	"os"
	"strings"
)

// Parse recovers structured messages from a raw WhatsApp text export.
// It never fails on malformed input: lines that match no known format are
// either appended to the open message as continuations or dropped, and an
// empty result is a valid output. Callers treat zero messages as the
// empty-chat condition.
func Parse(text string) *ParsedChat {
	chat := &ParsedChat{}
	seen := make(map[string]bool)

	var current *Message
	flush := func() {
		if current != nil {
			chat.Messages = append(chat.Messages, *current)
			current = nil
		}
	}

	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}

		var m []string
		for _, rule := range lineRules {
			if m = rule.re.FindStringSubmatch(line); m != nil {
				break
			}
		}

		if m == nil {
			// Continuation of the open message; a continuation-shaped line
			// before any message opens cannot be attributed and is dropped.
			if current != nil {
				current.Content += "\n" + strings.TrimSpace(line)
				current.WordCount = CountWords(current.Content)
				current.HasEmoji = HasEmoji(current.Content)
				current.IsQuestion = IsQuestion(current.Content)
			}
			continue
		}

		flush()

		ts, err := parseTimestamp(m[1], m[2])
		if err != nil {
			// Matched line with an unparseable date: that message is lost,
			// later lines still parse.
			continue
		}

		sender := strings.TrimSpace(m[3])
		if !seen[sender] {
			seen[sender] = true
			chat.Participants = append(chat.Participants, sender)
		}

		content := strings.TrimSpace(m[4])
		current = &Message{
			ID:         len(chat.Messages),
			Timestamp:  ts,
			Sender:     sender,
			Content:    content,
			IsMedia:    IsMedia(content),
			HasEmoji:   HasEmoji(content),
			IsQuestion: IsQuestion(content),
			WordCount:  CountWords(content),
		}
	}

	flush()
	return chat
}

// ParseFile reads path and parses it as a WhatsApp export.
func ParseFile(path string) (*ParsedChat, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(string(data)), nil
}
