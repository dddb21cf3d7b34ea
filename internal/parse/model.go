package parse

import "time"

// Message is a single chat utterance recovered from the export.
type Message struct {
	ID         int       `json:"id"`
	Timestamp  time.Time `json:"timestamp"`
	Sender     string    `json:"sender"`
	Content    string    `json:"content"`
	IsMedia    bool      `json:"isMedia"`
	HasEmoji   bool      `json:"hasEmoji"`
	IsQuestion bool      `json:"isQuestion"`
	WordCount  int       `json:"wordCount"`
}

// ParsedChat is the parser output: messages in file order and the
// participants in first-seen order. Treated as immutable once built.
type ParsedChat struct {
	Messages     []Message `json:"messages"`
	Participants []string  `json:"participants"`
}
