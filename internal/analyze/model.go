package analyze

// DateRange is the first and last message date, formatted for display.
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// TimelineEntry is the message count for one calendar date.
type TimelineEntry struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// ResponseTimeDistribution buckets sender-changing reply gaps:
// under 5 minutes, under an hour, and everything slower.
type ResponseTimeDistribution struct {
	Instant int `json:"instant"`
	Fast    int `json:"fast"`
	Slow    int `json:"slow"`
}

// WordFrequency is one entry of the word ranking.
type WordFrequency struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// InterestScore holds the per-participant engagement heuristics.
// All four numeric fields are integers in [0, 100].
type InterestScore struct {
	Responsiveness int    `json:"responsiveness"`
	Initiation     int    `json:"initiation"`
	Effort         int    `json:"effort"`
	Overall        int    `json:"overall"`
	Explanation    string `json:"explanation"`
}

// ChatData is the complete analytics aggregate for one chat export.
// It is built once per analysis and treated as an immutable snapshot by
// every consumer (dashboard, report, HTTP API, history store).
type ChatData struct {
	TotalMessages            int                      `json:"totalMessages"`
	Participants             []string                 `json:"participants"`
	DateRange                DateRange                `json:"dateRange"`
	ActiveDays               int                      `json:"activeDays"`
	Timeline                 []TimelineEntry          `json:"timeline"`
	ResponseTimeDistribution ResponseTimeDistribution `json:"responseTimeDistribution"`
	AvgResponseTime          string                   `json:"avgResponseTime"`
	ActivityHeatmap          map[string]int           `json:"activityHeatmap"`
	PeakHour                 int                      `json:"peakHour"`
	WordFrequency            []WordFrequency          `json:"wordFrequency"`
	EmojiDensity             int                      `json:"emojiDensity"`
	TotalQuestions           int                      `json:"totalQuestions"`
	InterestScores           map[string]InterestScore `json:"interestScores"`
}
