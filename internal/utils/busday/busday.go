package busday

import "time"

// DateOnly normalizes a timestamp to midnight UTC so that calendar dates
// compare and hash consistently regardless of the wall clock they came from.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// IsWeekend reports whether t falls on a Saturday or Sunday.
func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// IsBusinessDay reports whether t is a weekday. Public holidays are not
// modeled; the sync engine discovers them through empty responses instead.
func IsBusinessDay(t time.Time) bool {
	return !IsWeekend(t)
}

// PrevBusinessDay returns the latest business day strictly before t,
// walking backward over weekends.
func PrevBusinessDay(t time.Time) time.Time {
	d := DateOnly(t).AddDate(0, 0, -1)
	for IsWeekend(d) {
		d = d.AddDate(0, 0, -1)
	}
	return d
}

// NextBusinessDay returns t itself when t is a business day, otherwise the
// next weekday after it.
func NextBusinessDay(t time.Time) time.Time {
	d := DateOnly(t)
	for IsWeekend(d) {
		d = d.AddDate(0, 0, 1)
	}
	return d
}

// BusinessDaysBetween returns every business day in [start, end] inclusive,
// in ascending order. The result is empty when end precedes start or the
// range covers only weekend days.
func BusinessDaysBetween(start, end time.Time) []time.Time {
	var days []time.Time
	for d := DateOnly(start); !d.After(DateOnly(end)); d = d.AddDate(0, 0, 1) {
		if IsBusinessDay(d) {
			days = append(days, d)
		}
	}
	return days
}

// DaysApart returns the number of whole calendar days from a to b,
// negative when b precedes a.
func DaysApart(a, b time.Time) int {
	return int(DateOnly(b).Sub(DateOnly(a)).Hours() / 24)
}
