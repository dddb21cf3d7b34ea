package parse

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ErrUnsupportedDate is returned when a date token matches none of the
// expected separator schemes. The message on that line is lost; parsing of
// later lines continues.
var ErrUnsupportedDate = errors.New("unsupported date format")

// Date token shapes seen across WhatsApp export variants.
const (
	dateSlashYear4 = `\d{1,2}/\d{1,2}/\d{4}`
	dateSlashYear2 = `\d{1,2}/\d{1,2}/\d{2}`
	dateDotYear2   = `\d{1,2}\.\d{1,2}\.\d{2}`
	dateISO        = `\d{4}-\d{1,2}-\d{1,2}`
)

// Time token shapes.
const (
	timeHM   = `\d{1,2}:\d{2}`
	timeHMS  = `\d{1,2}:\d{2}:\d{2}`
	timeHM12 = `\d{1,2}:\d{2}\s(?i:AM|PM)`
)

// Delimiter styles. Each template receives the date and time fragments and
// yields a full-line pattern with four capture groups: date, time, sender,
// content.
const (
	delimBracketed = `^\[(%s),\s(%s)\]\s([^:]+):\s(.*)$`
	delimDashed    = `^(%s),\s(%s)\s-\s([^:]+):\s(.*)$`
	delimSpaced    = `^(%s)\s(%s)\s-\s([^:]+):\s(.*)$`
)

// lineFormat is one entry of the grammar table: a date shape, a time shape
// and a delimiter style.
type lineFormat struct {
	name  string
	date  string
	time  string
	delim string
}

// lineFormats are tried in order for every line; the first match wins.
// The DD/MM vs MM/DD ambiguity is inherent to the input (no locale metadata
// in the export), so ordering and the magnitude heuristic in parseTimestamp
// are deliberately kept simple rather than "solved".
var lineFormats = []lineFormat{
	{"bracketed d/m/yyyy hh:mm:ss", dateSlashYear4, timeHMS, delimBracketed},
	{"d/m/yyyy hh:mm", dateSlashYear4, timeHM, delimDashed},
	{"d/m/yy hh:mm", dateSlashYear2, timeHM, delimDashed},
	{"d/m/yyyy hh:mm:ss", dateSlashYear4, timeHMS, delimDashed},
	{"d/m/yy h:mm am/pm", dateSlashYear2, timeHM12, delimDashed},
	{"d.m.yy hh:mm", dateDotYear2, timeHM, delimDashed},
	{"yyyy-m-d hh:mm:ss", dateISO, timeHMS, delimSpaced},
	{"bracketed d.m.yy hh:mm:ss", dateDotYear2, timeHMS, delimBracketed},
}

type lineRule struct {
	name string
	re   *regexp.Regexp
}

var lineRules = compileRules()

func compileRules() []lineRule {
	rules := make([]lineRule, len(lineFormats))
	for i, f := range lineFormats {
		rules[i] = lineRule{
			name: f.name,
			re:   regexp.MustCompile(fmt.Sprintf(f.delim, f.date, f.time)),
		}
	}
	return rules
}

var meridiemRe = regexp.MustCompile(`\s*(?i:AM|PM)`)

// parseTimestamp normalizes a matched date and time token pair into a local
// time. Slash and dot dates with a 4-digit year are disambiguated by
// magnitude: first component >12 means day-first, second component >12 means
// month-first, otherwise day-first (most common internationally). 2-digit
// years get a "20" prefix and default to US month-first order.
func parseTimestamp(dateTok, timeTok string) (time.Time, error) {
	var day, month, year string

	switch {
	case strings.Contains(dateTok, "/") || strings.Contains(dateTok, "."):
		sep := "/"
		if strings.Contains(dateTok, ".") {
			sep = "."
		}
		parts := strings.Split(dateTok, sep)
		if len(parts) != 3 {
			return time.Time{}, fmt.Errorf("%w: %q", ErrUnsupportedDate, dateTok)
		}
		first, _ := strconv.Atoi(parts[0])
		second, _ := strconv.Atoi(parts[1])
		if len(parts[2]) == 4 {
			switch {
			case first > 12:
				day, month, year = parts[0], parts[1], parts[2]
			case second > 12:
				month, day, year = parts[0], parts[1], parts[2]
			default:
				day, month, year = parts[0], parts[1], parts[2]
			}
		} else {
			if first > 12 {
				day, month = parts[0], parts[1]
			} else {
				month, day = parts[0], parts[1]
			}
			year = "20" + parts[2]
		}

	case strings.Contains(dateTok, "-"):
		parts := strings.Split(dateTok, "-")
		if len(parts) != 3 {
			return time.Time{}, fmt.Errorf("%w: %q", ErrUnsupportedDate, dateTok)
		}
		year, month, day = parts[0], parts[1], parts[2]

	default:
		return time.Time{}, fmt.Errorf("%w: %q", ErrUnsupportedDate, dateTok)
	}

	hour, minute, second := parseClock(timeTok)

	y, _ := strconv.Atoi(year)
	mo, _ := strconv.Atoi(month)
	d, _ := strconv.Atoi(day)
	return time.Date(y, time.Month(mo), d, hour, minute, second, 0, time.Local), nil
}

// parseClock converts a matched time token to 24-hour clock components.
// Seconds default to 0 when absent.
func parseClock(timeTok string) (hour, minute, second int) {
	upper := strings.ToUpper(timeTok)
	if strings.Contains(upper, "AM") || strings.Contains(upper, "PM") {
		isPM := strings.Contains(upper, "PM")
		plain := meridiemRe.ReplaceAllString(timeTok, "")
		parts := strings.Split(plain, ":")
		hour, _ = strconv.Atoi(parts[0])
		minute, _ = strconv.Atoi(parts[1])
		if isPM && hour != 12 {
			hour += 12
		} else if !isPM && hour == 12 {
			hour = 0
		}
		return hour, minute, 0
	}

	parts := strings.Split(timeTok, ":")
	hour, _ = strconv.Atoi(parts[0])
	minute, _ = strconv.Atoi(parts[1])
	if len(parts) > 2 {
		second, _ = strconv.Atoi(parts[2])
	}
	return hour, minute, second
}
