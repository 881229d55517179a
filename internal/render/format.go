package render

import (
	"strconv"
	"time"
)

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// formatTimestamp shows backend timestamps the way a en-US browser
// prints a local date ("1/2/2006, 3:04:05 PM"). Unparseable values are
// shown verbatim.
func formatTimestamp(raw string) string {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("1/2/2006, 3:04:05 PM")
		}
	}
	return raw
}

// formatNumber prints a float the shortest way that round-trips: 100, 1.5.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
