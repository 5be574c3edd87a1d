package ledger

import (
	"fmt"
	"time"

	"github.com/centavos/backend/internal/types"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Period classification happens in the local time of the record. No
// timezone normalization is performed beyond what the timestamp itself
// carries. This is a known simplification inherited from the mobile
// client, which always classified in device-local time.

// SameDay reports whether t falls on the same calendar day as ref.
func SameDay(t, ref time.Time) bool {
	return t.Day() == ref.Day() && t.Month() == ref.Month() && t.Year() == ref.Year()
}

// InWeekWindow reports whether t falls into the rolling 7-day window
// ending at ref.
func InWeekWindow(t, ref time.Time) bool {
	start := ref.AddDate(0, 0, -7)
	return !t.Before(start) && !t.After(ref)
}

// SameCalendarMonth reports whether t is in the same month and year as ref.
func SameCalendarMonth(t, ref time.Time) bool {
	return types.MonthOf(ref).Contains(t)
}

// WeekOfMonth returns the week bucket of a timestamp within its month,
// as "Week 1" to "Week 5".
//
// The bucket is ceil(dayOfMonth / 7), not an ISO week: days 1-7 are
// "Week 1", days 8-14 are "Week 2", and days 29-31 always land in
// "Week 5" regardless of month length. Downstream charts assume at
// most 5 buckets per month indexed this way.
func WeekOfMonth(t time.Time) string {
	return fmt.Sprintf("Week %d", (t.Day()+6)/7)
}

// Month names as the original data set uses them: Brazilian Portuguese
// long names, title-cased for use as chart grouping keys.
var monthNames = [...]string{
	time.January:   "janeiro",
	time.February:  "fevereiro",
	time.March:     "março",
	time.April:     "abril",
	time.May:       "maio",
	time.June:      "junho",
	time.July:      "julho",
	time.August:    "agosto",
	time.September: "setembro",
	time.October:   "outubro",
	time.November:  "novembro",
	time.December:  "dezembro",
}

var monthTitle = cases.Title(language.BrazilianPortuguese)

// MonthName returns the localized, title-cased month name of a
// timestamp. Unlike the other classifiers it is not relative to a
// reference time, it groups an entire data set by month.
func MonthName(t time.Time) string {
	return monthTitle.String(monthNames[t.Month()])
}
