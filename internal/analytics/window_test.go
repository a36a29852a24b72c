package analytics

import (
	"testing"
	"time"

	"github.com/daykeep/daykeep/internal/model"
)

func TestParseRange(t *testing.T) {
	tests := []struct {
		in   string
		want RangeToken
	}{
		{"weekly", RangeWeekly},
		{"monthly", RangeMonthly},
		{"ytd", RangeYTD},
		{"yearly", RangeYearly},
		{"all-time", RangeAllTime},
		{"", RangeWeekly},
		{"quarterly", RangeWeekly},
		{"WEEKLY", RangeWeekly},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseRange(tt.in); got != tt.want {
				t.Errorf("ParseRange(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestResolveWindowWeekly(t *testing.T) {
	// 2024-06-05 is a Wednesday; the week runs Sunday 06-02 to Saturday 06-08.
	w := ResolveWindow(RangeWeekly, localDate(2024, time.June, 5), &fakeSource{})

	if got := model.DayKey(w.Start); got != "2024-06-02" {
		t.Errorf("Start = %s, want 2024-06-02", got)
	}
	if got := model.DayKey(w.End); got != "2024-06-08" {
		t.Errorf("End = %s, want 2024-06-08", got)
	}
	if w.Days() != 7 {
		t.Errorf("Days = %d, want 7", w.Days())
	}
}

func TestResolveWindowWeeklyOnSunday(t *testing.T) {
	// A Sunday is its own week start.
	w := ResolveWindow(RangeWeekly, localDate(2024, time.June, 2), &fakeSource{})
	if got := model.DayKey(w.Start); got != "2024-06-02" {
		t.Errorf("Start = %s, want 2024-06-02", got)
	}
}

func TestResolveWindowMonthly(t *testing.T) {
	w := ResolveWindow(RangeMonthly, localDate(2024, time.February, 15), &fakeSource{})

	if got := model.DayKey(w.Start); got != "2024-02-01" {
		t.Errorf("Start = %s, want 2024-02-01", got)
	}
	if got := model.DayKey(w.End); got != "2024-02-29" {
		t.Errorf("End = %s, want 2024-02-29 (leap year)", got)
	}
	if w.Days() != 29 {
		t.Errorf("Days = %d, want 29", w.Days())
	}
}

func TestResolveWindowYTD(t *testing.T) {
	w := ResolveWindow(RangeYTD, localDate(2024, time.June, 5), &fakeSource{})

	if got := model.DayKey(w.Start); got != "2024-01-01" {
		t.Errorf("Start = %s, want 2024-01-01", got)
	}
	if got := model.DayKey(w.End); got != "2024-06-05" {
		t.Errorf("End = %s, want today", got)
	}
}

func TestResolveWindowYearly(t *testing.T) {
	w := ResolveWindow(RangeYearly, localDate(2024, time.June, 5), &fakeSource{})

	if got := model.DayKey(w.Start); got != "2024-01-01" {
		t.Errorf("Start = %s, want 2024-01-01", got)
	}
	if got := model.DayKey(w.End); got != "2024-12-31" {
		t.Errorf("End = %s, want 2024-12-31", got)
	}
	if w.Days() != 366 {
		t.Errorf("Days = %d, want 366 (leap year)", w.Days())
	}
}

func TestResolveWindowAllTimeScansBothPrefixes(t *testing.T) {
	// The earliest day lives under completedRecurring, not calendarTasks;
	// the window must still start there.
	src := &fakeSource{
		completed: map[string][]string{"2024-01-10": {"Gym"}},
		calendar: map[string][]model.CalendarTask{
			"2024-03-01": {{ID: "a", Text: "x"}},
		},
	}
	w := ResolveWindow(RangeAllTime, localDate(2024, time.June, 5), src)

	if got := model.DayKey(w.Start); got != "2024-01-10" {
		t.Errorf("Start = %s, want 2024-01-10", got)
	}
	if got := model.DayKey(w.End); got != "2024-06-05" {
		t.Errorf("End = %s, want today", got)
	}
}

func TestResolveWindowAllTimeEmptyStore(t *testing.T) {
	// With no day-keyed records the window collapses to today.
	w := ResolveWindow(RangeAllTime, localDate(2024, time.June, 5), &fakeSource{})

	if got := model.DayKey(w.Start); got != "2024-06-05" {
		t.Errorf("Start = %s, want today", got)
	}
	if w.Days() != 1 {
		t.Errorf("Days = %d, want 1", w.Days())
	}
}

func TestResolveWindowAllTimeSkipsMalformedKeys(t *testing.T) {
	src := &fakeSource{
		completed: map[string][]string{
			"garbage":    {"x"},
			"2024-02-01": {"Gym"},
		},
	}
	w := ResolveWindow(RangeAllTime, localDate(2024, time.June, 5), src)

	if got := model.DayKey(w.Start); got != "2024-02-01" {
		t.Errorf("Start = %s, want 2024-02-01", got)
	}
}

func TestWindowDaysEmpty(t *testing.T) {
	w := Window{Start: localDate(2024, time.June, 5), End: localDate(2024, time.June, 1)}
	if got := w.Days(); got != 0 {
		t.Errorf("Days on inverted window = %d, want 0", got)
	}
}
