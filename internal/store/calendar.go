package store

import (
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/daykeep/daykeep/internal/model"
)

// CalendarTasks returns the tasks owned by a day, sorted by time of day
// (untimed tasks last). Empty when the day has no record.
func (s *Store) CalendarTasks(dayKey string) []model.CalendarTask {
	var tasks []model.CalendarTask
	s.get(PrefixCalendarTasks+dayKey, &tasks)
	sort.SliceStable(tasks, func(i, j int) bool {
		return sortTime(tasks[i].Time) < sortTime(tasks[j].Time)
	})
	return tasks
}

func sortTime(t string) string {
	if t == "" {
		return "23:59"
	}
	return t
}

// DeadlineIndex returns the global deadline index: task id to the mirrored
// deadline copy. The index is denormalized from per-day task lists and may
// diverge from them; consumers reconcile the two, they never trust one copy.
func (s *Store) DeadlineIndex() map[string]model.CalendarTask {
	index := map[string]model.CalendarTask{}
	s.get(KeyDeadlines, &index)
	return index
}

func (s *Store) saveCalendarTasks(dayKey string, tasks []model.CalendarTask) error {
	return s.set(PrefixCalendarTasks+dayKey, tasks)
}

func (s *Store) saveDeadlineIndex(index map[string]model.CalendarTask) error {
	return s.set(KeyDeadlines, index)
}

// AddCalendarTask creates a task on a day. Deadline tasks are mirrored into
// the global deadline index with the owning day as their due date.
func (s *Store) AddCalendarTask(dayKey, text, timeOfDay string, isDeadline bool, tags []string) (model.CalendarTask, error) {
	task := model.CalendarTask{
		ID:         uuid.NewString(),
		Text:       text,
		Time:       timeOfDay,
		IsDeadline: isDeadline,
		Tags:       tags,
	}

	tasks := s.CalendarTasks(dayKey)
	tasks = append(tasks, task)
	if err := s.saveCalendarTasks(dayKey, tasks); err != nil {
		return model.CalendarTask{}, err
	}

	if isDeadline {
		if err := s.mirrorDeadline(task, dayKey); err != nil {
			return model.CalendarTask{}, err
		}
	}
	return task, nil
}

// UpdateCalendarTask replaces a task's text, time, deadline flag and tags,
// keeping the deadline mirror consistent: setting the flag creates or
// refreshes the mirror entry, clearing it removes the entry.
func (s *Store) UpdateCalendarTask(dayKey string, updated model.CalendarTask) error {
	tasks := s.CalendarTasks(dayKey)
	idx := taskIndex(tasks, updated.ID)
	if idx < 0 {
		return fmt.Errorf("task %s not found on %s", updated.ID, dayKey)
	}

	wasDeadline := tasks[idx].IsDeadline
	updated.Completed = tasks[idx].Completed
	updated.CompletionDate = tasks[idx].CompletionDate
	tasks[idx] = updated
	if err := s.saveCalendarTasks(dayKey, tasks); err != nil {
		return err
	}

	switch {
	case updated.IsDeadline:
		return s.mirrorDeadline(updated, dayKey)
	case wasDeadline:
		return s.unmirrorDeadline(updated.ID)
	}
	return nil
}

// DeleteCalendarTask removes a task from its day and from the deadline index.
func (s *Store) DeleteCalendarTask(dayKey, id string) error {
	tasks := s.CalendarTasks(dayKey)
	idx := taskIndex(tasks, id)
	if idx < 0 {
		return fmt.Errorf("task %s not found on %s", id, dayKey)
	}
	tasks = append(tasks[:idx:idx], tasks[idx+1:]...)
	if err := s.saveCalendarTasks(dayKey, tasks); err != nil {
		return err
	}
	return s.unmirrorDeadline(id)
}

// SetCalendarTaskCompleted toggles a task's completion, stamping the
// completion date. For deadline tasks the completed flag is written to both
// the embedded copy and the index mirror.
func (s *Store) SetCalendarTaskCompleted(dayKey, id string, completed bool) error {
	tasks := s.CalendarTasks(dayKey)
	idx := taskIndex(tasks, id)
	if idx < 0 {
		return fmt.Errorf("task %s not found on %s", id, dayKey)
	}

	tasks[idx].Completed = completed
	if completed {
		tasks[idx].CompletionDate = model.DayKey(s.now())
	} else {
		tasks[idx].CompletionDate = ""
	}
	if err := s.saveCalendarTasks(dayKey, tasks); err != nil {
		return err
	}

	if tasks[idx].IsDeadline {
		index := s.DeadlineIndex()
		if entry, ok := index[id]; ok {
			entry.Completed = completed
			entry.CompletionDate = tasks[idx].CompletionDate
			index[id] = entry
			return s.saveDeadlineIndex(index)
		}
	}
	return nil
}

// mirrorDeadline writes the denormalized index copy of a deadline task.
func (s *Store) mirrorDeadline(task model.CalendarTask, dueDayKey string) error {
	index := s.DeadlineIndex()
	task.DeadlineDateKey = dueDayKey
	index[task.ID] = task
	return s.saveDeadlineIndex(index)
}

func (s *Store) unmirrorDeadline(id string) error {
	index := s.DeadlineIndex()
	if _, ok := index[id]; !ok {
		return nil
	}
	delete(index, id)
	return s.saveDeadlineIndex(index)
}

func taskIndex(tasks []model.CalendarTask, id string) int {
	for i, t := range tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// OpenDeadlines returns deadline entries not yet completed and due on or
// after fromDayKey, sorted by due date. Used by the today view.
func (s *Store) OpenDeadlines(fromDayKey string) []model.CalendarTask {
	var open []model.CalendarTask
	for _, entry := range s.DeadlineIndex() {
		if !entry.Completed && entry.DeadlineDateKey >= fromDayKey {
			open = append(open, entry)
		}
	}
	sort.Slice(open, func(i, j int) bool {
		return open[i].DeadlineDateKey < open[j].DeadlineDateKey
	})
	return open
}
