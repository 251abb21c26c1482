package parser

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"
)

// Deadline states written into congresses.json.
const (
	DeadlineUnknown  = "unknown"
	DeadlinePassed   = "passed"
	DeadlineUrgent   = "urgent"
	DeadlineUpcoming = "upcoming"
	DeadlineFuture   = "future"
)

// normalizeSheetDate turns D/M/YYYY into YYYY-MM-DD and truncates ISO
// timestamps to the date. Anything else is returned trimmed.
func normalizeSheetDate(value string) string {
	v := strings.TrimSpace(value)
	if v == "" {
		return ""
	}

	if strings.Contains(v, "/") {
		parts := strings.Split(v, "/")
		if len(parts) == 3 {
			day, month, year := strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]), strings.TrimSpace(parts[2])
			return fmt.Sprintf("%s-%s-%s", year, zeroPad(month), zeroPad(day))
		}
	}

	if strings.Contains(v, "-") && len(v) >= 10 {
		return v[:10]
	}
	return v
}

func zeroPad(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}

// deadlineStatus classifies a normalized deadline by whole days elapsed
// until it, rounding down.
func deadlineStatus(deadline string, now time.Time) string {
	if deadline == "" {
		return DeadlineUnknown
	}
	t, err := time.ParseInLocation("2006-01-02", deadline, now.Location())
	if err != nil {
		return DeadlineUnknown
	}

	days := int(math.Floor(t.Sub(now).Hours() / 24))
	switch {
	case days < 0:
		return DeadlinePassed
	case days <= 30:
		return DeadlineUrgent
	case days <= 90:
		return DeadlineUpcoming
	default:
		return DeadlineFuture
	}
}

// splitList splits on sep, trims and drops empty values.
func splitList(value, sep string) []string {
	if strings.TrimSpace(value) == "" {
		return []string{}
	}
	parts := strings.Split(value, sep)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func splitSorted(value, sep string) []string {
	out := splitList(value, sep)
	sort.Strings(out)
	return out
}
