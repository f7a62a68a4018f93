package listing

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Date handling for source listings. Posted dates arrive either as relative
// phrasing ("3 days ago") or absolute phrasing ("Posted on March 13, 2026");
// deadlines arrive as labeled absolute dates ("Closing Date: 15th September
// 2026"). Anything unrecognized passes through as trimmed raw text, so
// downstream consumers must tolerate non-canonical date strings.

// PostedLayout is the stored form of a normalized posted date.
const PostedLayout = time.RFC3339

// DeadlineLayout is the stored form of a normalized deadline.
const DeadlineLayout = "2006-01-02"

var (
	relativeDays  = regexp.MustCompile(`(?i)(\d+)\s+days?\s+ago`)
	ordinalSuffix = regexp.MustCompile(`(?i)(\d{1,2})(st|nd|rd|th)\b`)
	labelPrefix   = regexp.MustCompile(`(?i)^(closing date|deadline|posted on|posted)\s*:?\s*`)
)

// postedLayouts are tried in order for absolute posted-date text.
var postedLayouts = []string{
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
	"2006-01-02",
}

// deadlineLayouts are tried in order for deadline text after label and
// ordinal stripping.
var deadlineLayouts = []string{
	"2 January 2006",
	"January 2, 2006",
	"Jan 2, 2006",
	"2006-01-02",
}

// NormalizePosted converts posted-date text into a UTC timestamp. Relative
// "N days ago" phrasing is anchored to now; absolute phrasing is assumed
// UTC. Returns ok == false when the text is unrecognized, in which case the
// caller should keep the raw text.
func NormalizePosted(raw string, now time.Time) (time.Time, bool) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return time.Time{}, false
	}

	if m := relativeDays.FindStringSubmatch(text); m != nil {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return time.Time{}, false
		}
		return now.UTC().AddDate(0, 0, -n), true
	}

	text = labelPrefix.ReplaceAllString(text, "")
	text = strings.TrimSpace(text)
	for _, layout := range postedLayouts {
		if t, err := time.ParseInLocation(layout, text, time.UTC); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// NormalizeDeadline converts deadline text into a date-only value at
// midnight UTC. The "Closing Date:" label and ordinal day suffixes
// (1st, 2nd, …) are stripped before parsing. Returns ok == false when the
// text is unrecognized.
func NormalizeDeadline(raw string) (time.Time, bool) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return time.Time{}, false
	}

	text = labelPrefix.ReplaceAllString(text, "")
	text = ordinalSuffix.ReplaceAllString(text, "$1")
	text = strings.TrimSpace(text)

	for _, layout := range deadlineLayouts {
		if t, err := time.ParseInLocation(layout, text, time.UTC); err == nil {
			// Date only, no time component.
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
		}
	}
	return time.Time{}, false
}

// Sanitize collapses internal whitespace and trims the ends; it is the
// pass-through form stored when normalization fails.
func Sanitize(raw string) string {
	return strings.Join(strings.Fields(raw), " ")
}
