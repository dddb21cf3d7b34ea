package parse

import "strings"

// FormatHits counts lines matched by one grammar table entry.
type FormatHits struct {
	Name string
	Hits int
}

// SniffReport summarizes which line formats a raw export matches. Used by
// the doctor command to explain why a file parsed poorly.
type SniffReport struct {
	TotalLines int
	NonEmpty   int
	Matched    int
	ByFormat   []FormatHits
	Unmatched  []string // first few unmatched non-blank lines
}

const maxUnmatchedSamples = 3

// Sniff runs the grammar table over text without building messages.
func Sniff(text string) SniffReport {
	rep := SniffReport{ByFormat: make([]FormatHits, len(lineRules))}
	for i, rule := range lineRules {
		rep.ByFormat[i].Name = rule.name
	}

	for _, line := range strings.Split(text, "\n") {
		rep.TotalLines++
		if strings.TrimSpace(line) == "" {
			continue
		}
		rep.NonEmpty++

		matched := false
		for i, rule := range lineRules {
			if rule.re.MatchString(line) {
				rep.ByFormat[i].Hits++
				rep.Matched++
				matched = true
				break
			}
		}
		if !matched && len(rep.Unmatched) < maxUnmatchedSamples {
			rep.Unmatched = append(rep.Unmatched, line)
		}
	}
	return rep
}
