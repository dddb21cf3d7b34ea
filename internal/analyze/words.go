package analyze

import (
	"regexp"
	"sort"
	"strings"

	"github.com/sferro/chatlens/internal/parse"
)

// topWordLimit caps the word-frequency ranking.
const topWordLimit = 100

// StopWords are the common English function words and pronouns excluded
// from the word-frequency ranking. Policy data, not logic.
var StopWords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "and": {}, "or": {}, "but": {},
	"in": {}, "on": {}, "at": {}, "to": {}, "for": {}, "of": {},
	"with": {}, "by": {}, "is": {}, "are": {}, "was": {}, "were": {},
	"be": {}, "been": {}, "have": {}, "has": {}, "had": {},
	"do": {}, "does": {}, "did": {}, "will": {}, "would": {},
	"could": {}, "should": {}, "may": {}, "might": {}, "must": {},
	"can": {}, "i": {}, "you": {}, "he": {}, "she": {}, "it": {},
	"we": {}, "they": {}, "me": {}, "him": {}, "her": {}, "us": {},
	"them": {}, "my": {}, "your": {}, "his": {}, "its": {},
	"our": {}, "their": {},
}

var nonWordRe = regexp.MustCompile(`[^\w\s]`)

// wordFrequency ranks words across all non-media messages: lower-cased,
// punctuation stripped, tokens of length <=2 and stop words discarded.
// Sorted by count descending, ties alphabetical so output is deterministic.
func wordFrequency(msgs []parse.Message) []WordFrequency {
	counts := make(map[string]int)
	for _, m := range msgs {
		if m.IsMedia {
			continue
		}
		cleaned := nonWordRe.ReplaceAllString(strings.ToLower(m.Content), "")
		for _, word := range strings.Fields(cleaned) {
			if len(word) <= 2 {
				continue
			}
			if _, stop := StopWords[word]; stop {
				continue
			}
			counts[word]++
		}
	}

	ranking := make([]WordFrequency, 0, len(counts))
	for word, count := range counts {
		ranking = append(ranking, WordFrequency{Word: word, Count: count})
	}
	sort.Slice(ranking, func(i, j int) bool {
		if ranking[i].Count != ranking[j].Count {
			return ranking[i].Count > ranking[j].Count
		}
		return ranking[i].Word < ranking[j].Word
	})
	if len(ranking) > topWordLimit {
		ranking = ranking[:topWordLimit]
	}
	return ranking
}
