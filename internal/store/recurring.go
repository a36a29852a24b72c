package store

import (
	"fmt"

	"github.com/daykeep/daykeep/internal/model"
)

// RecurringSchedule returns the weekly routine schedule, empty when unset.
func (s *Store) RecurringSchedule() model.RecurringSchedule {
	sched := model.RecurringSchedule{}
	s.get(KeyRecurring, &sched)
	return sched
}

// SaveRecurringSchedule overwrites the weekly routine schedule.
func (s *Store) SaveRecurringSchedule(sched model.RecurringSchedule) error {
	return s.set(KeyRecurring, sched)
}

// AddRecurringTask appends a label to a weekday's routine.
//
// Labels are the identity of recurring tasks (canonical schema); renaming or
// removing a label orphans its prior completion records. Orphaned completions
// still count toward daily totals but no longer contribute to perfect days.
func (s *Store) AddRecurringTask(weekday, label string) error {
	weekday, err := model.NormalizeWeekday(weekday)
	if err != nil {
		return err
	}
	sched := s.RecurringSchedule()
	for _, l := range sched[weekday] {
		if l == label {
			return fmt.Errorf("task %q already scheduled on %s", label, weekday)
		}
	}
	sched[weekday] = append(sched[weekday], label)
	return s.SaveRecurringSchedule(sched)
}

// RemoveRecurringTask removes a label from a weekday's routine.
func (s *Store) RemoveRecurringTask(weekday, label string) error {
	weekday, err := model.NormalizeWeekday(weekday)
	if err != nil {
		return err
	}
	sched := s.RecurringSchedule()
	tasks := sched[weekday]
	for i, l := range tasks {
		if l == label {
			sched[weekday] = append(tasks[:i:i], tasks[i+1:]...)
			return s.SaveRecurringSchedule(sched)
		}
	}
	return fmt.Errorf("task %q is not scheduled on %s", label, weekday)
}

// CompletedRecurring returns the set of routine labels completed on a day.
func (s *Store) CompletedRecurring(dayKey string) map[string]bool {
	var labels []string
	s.get(PrefixCompletedRecurring+dayKey, &labels)
	set := make(map[string]bool, len(labels))
	for _, l := range labels {
		set[l] = true
	}
	return set
}

// SetRecurringCompleted marks a routine label completed or not for a day.
// The day's completion record is independent of the schedule: it may keep
// referencing labels that were later renamed or removed.
func (s *Store) SetRecurringCompleted(dayKey, label string, done bool) error {
	var labels []string
	s.get(PrefixCompletedRecurring+dayKey, &labels)

	idx := -1
	for i, l := range labels {
		if l == label {
			idx = i
			break
		}
	}
	switch {
	case done && idx < 0:
		labels = append(labels, label)
	case !done && idx >= 0:
		labels = append(labels[:idx:idx], labels[idx+1:]...)
	default:
		return nil
	}
	return s.set(PrefixCompletedRecurring+dayKey, labels)
}

// DigestShown reports whether the weekly digest was already shown for the
// week starting at weekStartKey.
func (s *Store) DigestShown(weekStartKey string) bool {
	var shown bool
	return s.get(PrefixDigestShown+weekStartKey, &shown) && shown
}

// MarkDigestShown records that the weekly digest was shown for a week.
func (s *Store) MarkDigestShown(weekStartKey string) error {
	return s.set(PrefixDigestShown+weekStartKey, true)
}
