package utils

import (
	"fmt"
	"strings"
	"time"
)

// zone-less ISO-8601 layouts tried after the UTC marker is stripped
var timestampLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseTimestamp parses an ISO-8601 timestamp as sent by the API. A trailing
// "Z" is stripped and the remainder read as UTC; explicit offsets such as
// "+02:00" are honoured. On failure it returns time.Now() together with the
// parse error so callers can warn and carry on.
func ParseTimestamp(raw string) (time.Time, error) {
	s := strings.TrimSpace(raw)
	s = strings.TrimSuffix(strings.TrimSuffix(s, "Z"), "z")

	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, nil
		}
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}

	return time.Now(), fmt.Errorf("invalid timestamp %q", raw)
}

// FormatTimeAgo renders the distance between t and now as "just now",
// "5 minutes ago", "1 hour ago", "2 days ago".
func FormatTimeAgo(t, now time.Time) string {
	diff := now.Sub(t)

	switch {
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		return plural(int(diff/time.Minute), "minute")
	case diff < 24*time.Hour:
		return plural(int(diff/time.Hour), "hour")
	default:
		return plural(int(diff/(24*time.Hour)), "day")
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s ago", unit)
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}
