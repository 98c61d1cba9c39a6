package calendar_test

import (
	"testing"
	"time"

	"github.com/heropath-app/heropath/internal/app/calendar"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func TestDaysInMonth(t *testing.T) {
	cases := []struct {
		y    int
		m    time.Month
		want int
	}{
		{2025, time.January, 31},
		{2025, time.February, 28},
		{2024, time.February, 29}, // leap year
		{2000, time.February, 29}, // century leap year
		{1900, time.February, 28}, // century non-leap year
		{2025, time.April, 30},
		{2025, time.December, 31},
	}
	for _, c := range cases {
		if got := calendar.DaysInMonth(date(c.y, c.m, 15)); got != c.want {
			t.Errorf("DaysInMonth(%d-%d) = %d, want %d", c.y, c.m, got, c.want)
		}
	}
}

func TestDayAndMonthKeys(t *testing.T) {
	d := date(2026, time.August, 9)
	if got := calendar.DayKey(d); got != "2026-08-09" {
		t.Errorf("DayKey = %q", got)
	}
	if got := calendar.MonthKey(d); got != "2026-8" {
		t.Errorf("MonthKey = %q", got)
	}
	if got := calendar.MonthLabel(d); got != "August 2026" {
		t.Errorf("MonthLabel = %q", got)
	}
}

func TestStartOfWeek(t *testing.T) {
	// 2025-06-23 is a Monday.
	monday := date(2025, time.June, 23)
	for i := 0; i < 7; i++ {
		d := monday.AddDate(0, 0, i)
		got := calendar.StartOfWeek(d)
		if got.Day() != 23 || got.Month() != time.June {
			t.Errorf("StartOfWeek(%s) = %s, want 2025-06-23", d.Format("Mon 2006-01-02"), got.Format("2006-01-02"))
		}
		if got.Hour() != 0 {
			t.Errorf("StartOfWeek must be midnight, got hour %d", got.Hour())
		}
	}
}

func TestSameWeek(t *testing.T) {
	monday := date(2025, time.June, 23)
	sunday := date(2025, time.June, 29)
	nextMonday := date(2025, time.June, 30)

	if !calendar.SameWeek(monday, sunday) {
		t.Error("Mon and Sun of the same week should match")
	}
	if calendar.SameWeek(sunday, nextMonday) {
		t.Error("Sun and the following Mon are different weeks")
	}
}

func TestDiffDays(t *testing.T) {
	cases := []struct {
		a, b time.Time
		want int
	}{
		{date(2025, time.July, 1), date(2025, time.July, 1), 0},
		{date(2025, time.July, 1), date(2025, time.July, 2), 1},
		{date(2025, time.July, 1), date(2025, time.July, 8), 7},
		{date(2025, time.July, 5), date(2025, time.July, 2), -3},
		// Hours within the day are irrelevant.
		{time.Date(2025, time.July, 1, 23, 59, 0, 0, time.UTC), time.Date(2025, time.July, 2, 0, 1, 0, 0, time.UTC), 1},
		// Month and year boundaries.
		{date(2025, time.January, 31), date(2025, time.February, 1), 1},
		{date(2024, time.December, 31), date(2025, time.January, 1), 1},
	}
	for _, c := range cases {
		if got := calendar.DiffDays(c.a, c.b); got != c.want {
			t.Errorf("DiffDays(%s, %s) = %d, want %d",
				c.a.Format("2006-01-02"), c.b.Format("2006-01-02"), got, c.want)
		}
	}
}

func TestParseDay(t *testing.T) {
	if got := calendar.ParseDay("2025-07-01"); got.IsZero() {
		t.Error("valid key should parse")
	}
	if got := calendar.ParseDay(""); !got.IsZero() {
		t.Error("empty key should be zero time")
	}
	if got := calendar.ParseDay("garbage"); !got.IsZero() {
		t.Error("malformed key should be zero time")
	}
}

func TestWeekdayLabel(t *testing.T) {
	// 2025-06-23 Monday through 2025-06-29 Sunday.
	want := []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
	for i, w := range want {
		d := date(2025, time.June, 23+i)
		if got := calendar.WeekdayLabel(d); got != w {
			t.Errorf("WeekdayLabel(%s) = %q, want %q", d.Format("2006-01-02"), got, w)
		}
	}
}

func TestBoundaryPredicates(t *testing.T) {
	if !calendar.IsMonday(date(2025, time.June, 30)) {
		t.Error("2025-06-30 is a Monday")
	}
	if calendar.IsMonday(date(2025, time.July, 1)) {
		t.Error("2025-07-01 is a Tuesday")
	}
	if !calendar.IsFirstOfMonth(date(2025, time.July, 1)) {
		t.Error("July 1st is the first of the month")
	}
	if calendar.IsFirstOfMonth(date(2025, time.July, 2)) {
		t.Error("July 2nd is not the first")
	}
}
