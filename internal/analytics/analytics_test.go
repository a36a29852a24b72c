package analytics

import (
	"time"

	"github.com/daykeep/daykeep/internal/model"
	"github.com/daykeep/daykeep/internal/store"
)

// fakeSource is an in-memory Source for aggregation tests. It mimics the
// store's read behavior: every accessor yields an empty default.
type fakeSource struct {
	schedule  model.RecurringSchedule
	completed map[string][]string             // dayKey -> labels
	calendar  map[string][]model.CalendarTask // dayKey -> tasks
	deadlines map[string]model.CalendarTask   // id -> mirror copy
	sustained []model.SustainedItem
}

func (f *fakeSource) RecurringSchedule() model.RecurringSchedule {
	if f.schedule == nil {
		return model.RecurringSchedule{}
	}
	return f.schedule
}

func (f *fakeSource) CompletedRecurring(dayKey string) map[string]bool {
	set := map[string]bool{}
	for _, l := range f.completed[dayKey] {
		set[l] = true
	}
	return set
}

func (f *fakeSource) CalendarTasks(dayKey string) []model.CalendarTask {
	return f.calendar[dayKey]
}

func (f *fakeSource) DeadlineIndex() map[string]model.CalendarTask {
	if f.deadlines == nil {
		return map[string]model.CalendarTask{}
	}
	return f.deadlines
}

func (f *fakeSource) SustainedItems() []model.SustainedItem {
	return f.sustained
}

func (f *fakeSource) DayKeysWithPrefix(prefix string) []string {
	var keys []string
	switch prefix {
	case store.PrefixCompletedRecurring:
		for k := range f.completed {
			keys = append(keys, k)
		}
	case store.PrefixCalendarTasks:
		for k := range f.calendar {
			keys = append(keys, k)
		}
	}
	return keys
}

// localDate builds a local time for test inputs.
func localDate(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

// weekOf builds the Sun-Sat window containing a day, bypassing ResolveWindow
// for tests that want a fixed range.
func weekOf(day time.Time) Window {
	sunday := model.StartOfDay(day).AddDate(0, 0, -int(day.Weekday()))
	return Window{Start: sunday, End: model.EndOfDay(sunday.AddDate(0, 0, 6))}
}
