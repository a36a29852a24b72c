// Package analytics derives completion statistics from a read-only snapshot
// of the task store. It never mutates the store; aggregation is a pure
// function of the snapshot and the requested date window.
package analytics

import (
	"time"

	"github.com/daykeep/daykeep/internal/model"
	"github.com/daykeep/daykeep/internal/store"
)

// Source is the read-only view of the task store the engine consumes.
// Every accessor returns an empty default rather than failing.
type Source interface {
	RecurringSchedule() model.RecurringSchedule
	CompletedRecurring(dayKey string) map[string]bool
	CalendarTasks(dayKey string) []model.CalendarTask
	DeadlineIndex() map[string]model.CalendarTask
	SustainedItems() []model.SustainedItem
	DayKeysWithPrefix(prefix string) []string
}

// RangeToken names a supported date range.
type RangeToken string

const (
	RangeWeekly  RangeToken = "weekly"
	RangeMonthly RangeToken = "monthly"
	RangeYTD     RangeToken = "ytd"
	RangeYearly  RangeToken = "yearly"
	RangeAllTime RangeToken = "all-time"
)

// ParseRange maps a user-supplied token to a RangeToken. Unknown tokens fall
// back to the weekly default.
func ParseRange(s string) RangeToken {
	switch RangeToken(s) {
	case RangeMonthly, RangeYTD, RangeYearly, RangeAllTime:
		return RangeToken(s)
	default:
		return RangeWeekly
	}
}

// Window is an inclusive date range: Start is local midnight, End is local
// end of day (23:59:59.999).
type Window struct {
	Start time.Time
	End   time.Time
	Label string
}

// ResolveWindow computes the inclusive window for a range token.
//
// The all-time range scans every day-keyed prefix for the earliest stored
// day: scanning only one category underestimates the window when, say, a
// routine was completed before the first calendar task existed.
func ResolveWindow(token RangeToken, today time.Time, src Source) Window {
	day := model.StartOfDay(today)

	switch token {
	case RangeMonthly:
		first := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, day.Location())
		last := first.AddDate(0, 1, -1)
		return Window{Start: first, End: model.EndOfDay(last), Label: "current month"}

	case RangeYTD:
		jan1 := time.Date(day.Year(), time.January, 1, 0, 0, 0, 0, day.Location())
		return Window{Start: jan1, End: model.EndOfDay(day), Label: "Jan 1 to today"}

	case RangeYearly:
		jan1 := time.Date(day.Year(), time.January, 1, 0, 0, 0, 0, day.Location())
		dec31 := time.Date(day.Year(), time.December, 31, 0, 0, 0, 0, day.Location())
		return Window{Start: jan1, End: model.EndOfDay(dec31), Label: "current year"}

	case RangeAllTime:
		start := firstTaskDay(src, day)
		return Window{Start: start, End: model.EndOfDay(day), Label: "all time"}

	default: // weekly
		sunday := day.AddDate(0, 0, -int(day.Weekday()))
		saturday := sunday.AddDate(0, 0, 6)
		return Window{Start: sunday, End: model.EndOfDay(saturday), Label: "current week (Sun-Sat)"}
	}
}

// firstTaskDay finds the earliest task-bearing day anywhere in the store,
// or today when no day-keyed records exist.
func firstTaskDay(src Source, today time.Time) time.Time {
	earliest := ""
	for _, prefix := range []string{store.PrefixCompletedRecurring, store.PrefixCalendarTasks} {
		for _, key := range src.DayKeysWithPrefix(prefix) {
			if !model.IsDayKey(key) {
				continue
			}
			if earliest == "" || key < earliest {
				earliest = key
			}
		}
	}
	if earliest == "" {
		return today
	}
	day, err := model.ParseDayKey(earliest)
	if err != nil {
		return today
	}
	return day
}

// Days returns the inclusive day count of the window, 0 when it is empty.
func (w Window) Days() int {
	if w.Start.After(w.End) {
		return 0
	}
	n := 0
	end := model.StartOfDay(w.End)
	for d := model.StartOfDay(w.Start); !d.After(end); d = d.AddDate(0, 0, 1) {
		n++
	}
	return n
}
