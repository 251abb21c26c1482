package dashboard

import (
	"math"
	"strings"
	"time"

	"ResearchCatalog/internal/domain"
)

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// ParseDate reads an ISO-like catalog date. Date-only values are placed at
// midnight of loc. ok is false for empty or unparseable input.
func ParseDate(value string, loc *time.Location) (t time.Time, ok bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	if loc == nil {
		loc = time.UTC
	}
	for _, layout := range dateLayouts {
		parsed, err := time.ParseInLocation(layout, value, loc)
		if err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}

// DaysUntil is ceil((target - now) / 24h).
func DaysUntil(target, now time.Time) int {
	days := math.Ceil(float64(target.Sub(now)) / float64(24*time.Hour))
	return int(days)
}

// NormalizeCongress derives the display fields of one congress against now.
func NormalizeCongress(c domain.Congress, now time.Time, loc *time.Location) domain.EnrichedCongress {
	out := domain.EnrichedCongress{Congress: c, Month: domain.MonthPending}

	if deadline, ok := ParseDate(c.Deadline, loc); ok {
		days := DaysUntil(deadline, now)
		out.DeadlineDays = &days
	}

	venue := fold(c.Publicacion)
	out.IsScopus = strings.Contains(venue, "scopus")
	out.IsIEEE = strings.Contains(venue, "ieee")
	out.IsWoS = strings.Contains(venue, "wos")

	if start, ok := ParseDate(c.FechaInicio, loc); ok {
		out.StartDate = start
		out.Month = MonthLabel(start)
	}

	return out
}

// NormalizeCongresses normalizes a whole catalog with a single reading of the clock.
func NormalizeCongresses(records []domain.Congress, now time.Time, loc *time.Location) []domain.EnrichedCongress {
	out := make([]domain.EnrichedCongress, len(records))
	for i, c := range records {
		out[i] = NormalizeCongress(c, now, loc)
	}
	return out
}

// ExternalURL forces the https scheme on scheme-less or http links.
func ExternalURL(link string) string {
	link = strings.TrimSpace(link)
	if link == "" {
		return ""
	}
	lower := strings.ToLower(link)
	switch {
	case strings.HasPrefix(lower, "https://"):
		link = link[len("https://"):]
	case strings.HasPrefix(lower, "http://"):
		link = link[len("http://"):]
	}
	return "https://" + link
}
