package analytics

import (
	"github.com/daykeep/daykeep/internal/model"
	"github.com/daykeep/daykeep/internal/store"
)

// Result holds the aggregate statistics for one window.
type Result struct {
	// DailyCounts maps a day key to that day's completed-task count.
	// Days with a zero count are omitted.
	DailyCounts map[string]int

	// PerfectRoutineDays counts days whose non-empty scheduled routine was
	// fully completed.
	PerfectRoutineDays int

	// DaysInPeriod is the inclusive day count of the window.
	DaysInPeriod int

	// DeadlinesMet and TotalDeadlinesInPeriod cover deadline tasks due
	// within the window, deduplicated across the index and the per-day
	// task lists.
	DeadlinesMet           int
	TotalDeadlinesInPeriod int

	// TotalTasksCompleted is the sum of DailyCounts.
	TotalTasksCompleted int
}

// Aggregate walks every calendar day of the window once and derives the
// window's statistics. It is a pure function of the store snapshot and the
// window: calling it twice on an unchanged store yields identical results.
//
// Per day it counts completed routine labels, completed non-deadline
// calendar tasks, and sustained items completed that day. Deadline tasks are
// excluded from the daily counts; they are accounted once over the whole
// window against their own denominator, since a deadline's due date may
// differ from its completion date.
func Aggregate(src Source, w Window) Result {
	res := Result{DailyCounts: map[string]int{}}
	if w.Start.After(w.End) {
		return res
	}

	sched := src.RecurringSchedule()
	sustainedByDay := indexSustained(src.SustainedItems())

	end := model.StartOfDay(w.End)
	for d := model.StartOfDay(w.Start); !d.After(end); d = d.AddDate(0, 0, 1) {
		res.DaysInPeriod++
		dayKey := model.DayKey(d)

		completed := src.CompletedRecurring(dayKey)
		count := len(completed)

		// A day with zero scheduled routine tasks is never perfect; it
		// neither helps nor hurts the streak.
		required := sched.Tasks(model.WeekdayName(d))
		if len(required) > 0 && allCompleted(required, completed) {
			res.PerfectRoutineDays++
		}

		for _, task := range src.CalendarTasks(dayKey) {
			if task.Completed && !task.IsDeadline {
				count++
			}
		}

		count += sustainedByDay[dayKey]

		if count > 0 {
			res.DailyCounts[dayKey] = count
			res.TotalTasksCompleted += count
		}
	}

	res.TotalDeadlinesInPeriod, res.DeadlinesMet = countDeadlines(src, w)
	return res
}

func allCompleted(required []string, completed map[string]bool) bool {
	for _, label := range required {
		if !completed[label] {
			return false
		}
	}
	return true
}

// indexSustained counts completed sustained items per completion day.
func indexSustained(items []model.SustainedItem) map[string]int {
	byDay := map[string]int{}
	for _, item := range items {
		if item.Completed && item.CompletionDate != "" {
			byDay[item.CompletionDate]++
		}
	}
	return byDay
}

// countDeadlines computes the deadline hit-rate inputs over the whole window.
//
// A deadline task is stored twice: embedded in its day's task list and
// mirrored in the global index. Either copy can be missing or stale, so the
// two are unioned by task id, with the embedded copy taking precedence on
// conflict: it is the instance the user actually interacts with.
func countDeadlines(src Source, w Window) (total, met int) {
	if w.Start.After(w.End) {
		return 0, 0
	}
	startKey := model.DayKey(w.Start)
	endKey := model.DayKey(w.End)

	merged := map[string]model.CalendarTask{}
	for id, entry := range src.DeadlineIndex() {
		merged[id] = entry
	}
	for _, dayKey := range src.DayKeysWithPrefix(store.PrefixCalendarTasks) {
		for _, task := range src.CalendarTasks(dayKey) {
			if !task.IsDeadline {
				continue
			}
			task.DeadlineDateKey = task.DueDayKey(dayKey)
			merged[task.ID] = task
		}
	}

	// Canonical zero-padded day keys order lexicographically.
	for _, task := range merged {
		due := task.DeadlineDateKey
		if due < startKey || due > endKey {
			continue
		}
		total++
		if task.Completed {
			met++
		}
	}
	return total, met
}
