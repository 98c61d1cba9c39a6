// Package calendar consolidates all date arithmetic used by the engine.
// Every function is pure. The week is Monday-anchored everywhere — the one
// consistent convention for the whole engine.
package calendar

import (
	"math"
	"time"

	"github.com/heropath-app/heropath/internal/domain"
)

// DaysInMonth returns the number of days in t's calendar month.
// Day 0 of the next month is the last day of this one.
func DaysInMonth(t time.Time) int {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location()).Day()
}

// DayKey returns the ISO date key "YYYY-MM-DD" for t.
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// MonthKey identifies t's (year, month) as "YYYY-M", no zero padding.
func MonthKey(t time.Time) string {
	return t.Format("2006-1")
}

// MonthLabel returns the human month label used in monthly archives,
// e.g. "August 2026".
func MonthLabel(t time.Time) string {
	return t.Format("January 2006")
}

// Midnight truncates t to the start of its calendar day, keeping location.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// StartOfWeek returns midnight of the Monday of t's week.
func StartOfWeek(t time.Time) time.Time {
	d := Midnight(t)
	// Go weeks start on Sunday; shift so Monday is offset 0.
	offset := (int(d.Weekday()) + 6) % 7
	return d.AddDate(0, 0, -offset)
}

// SameWeek reports whether a and b fall in the same Monday-anchored week.
func SameWeek(a, b time.Time) bool {
	return StartOfWeek(a).Equal(StartOfWeek(b))
}

// DiffDays returns b − a in whole calendar days, sign-preserving.
// Hours within the day are irrelevant: Jan 1 23:59 → Jan 2 00:01 is 1 day.
// Rounding absorbs the ±1h a DST transition adds to a midnight delta.
func DiffDays(a, b time.Time) int {
	am, bm := Midnight(a), Midnight(b)
	return int(math.Round(bm.Sub(am).Hours() / 24))
}

// ParseDay parses an ISO date key produced by DayKey. The zero time is
// returned for "" or malformed input — callers treat that as "never".
func ParseDay(key string) time.Time {
	t, err := time.Parse("2006-01-02", key)
	if err != nil {
		return time.Time{}
	}
	return t
}

// WeekdayLabel returns the Monday-first label (Mon..Sun) for t.
func WeekdayLabel(t time.Time) string {
	return domain.WeekdayLabels[(int(t.Weekday())+6)%7]
}

// IsMonday reports whether t falls on a Monday (weekly rollover boundary).
func IsMonday(t time.Time) bool {
	return t.Weekday() == time.Monday
}

// IsFirstOfMonth reports whether t is the 1st (monthly rollover boundary).
func IsFirstOfMonth(t time.Time) bool {
	return t.Day() == 1
}
