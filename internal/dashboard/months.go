package dashboard

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"ResearchCatalog/internal/domain"
)

var monthNames = [12]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

var yearExpr = regexp.MustCompile(`\d{4}`)

// MonthLabel renders t as "marzo de 2025".
func MonthLabel(t time.Time) string {
	return monthNames[t.Month()-1] + " de " + strconv.Itoa(t.Year())
}

// monthKey places a label on the calendar. Known labels rank by (year, month);
// labels without a month name rank after every known label and the pending
// sentinel ranks last of all.
type monthKey struct {
	bucket int
	year   int
	month  int
}

func keyOfMonth(label string) monthKey {
	if label == domain.MonthPending {
		return monthKey{bucket: 2}
	}

	lower := fold(label)
	month := -1
	for i, name := range monthNames {
		if strings.Contains(lower, name+" de") {
			month = i
			break
		}
	}
	if month < 0 {
		return monthKey{bucket: 1}
	}

	year := 0
	if m := yearExpr.FindString(label); m != "" {
		year, _ = strconv.Atoi(m)
	}
	return monthKey{year: year, month: month}
}

// lessMonth orders month labels on the calendar; equal keys keep input order
// when used with a stable sort.
func lessMonth(a, b string) bool {
	ka, kb := keyOfMonth(a), keyOfMonth(b)
	if ka.bucket != kb.bucket {
		return ka.bucket < kb.bucket
	}
	if ka.year != kb.year {
		return ka.year < kb.year
	}
	return ka.month < kb.month
}
