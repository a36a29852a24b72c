// Package model defines the persisted task entities and day-key helpers.
package model

import (
	"fmt"
	"strings"
	"time"
)

// DayKeyLayout is the canonical local-calendar day key format.
// Every day-keyed collection in the store uses this format; it is the only
// key format the rest of the system may assume.
const DayKeyLayout = "2006-01-02"

// Weekdays lists the lowercase weekday names in store order (Sunday first).
var Weekdays = []string{
	"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday",
}

// DayKey returns the canonical YYYY-MM-DD key for t in local time.
func DayKey(t time.Time) string {
	return t.Format(DayKeyLayout)
}

// ParseDayKey parses a canonical day key into local midnight of that day.
func ParseDayKey(key string) (time.Time, error) {
	t, err := time.ParseInLocation(DayKeyLayout, key, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid day key %q: %w", key, err)
	}
	return t, nil
}

// IsDayKey reports whether key is a well-formed canonical day key.
func IsDayKey(key string) bool {
	_, err := ParseDayKey(key)
	return err == nil
}

// StartOfDay returns local midnight of the day containing t.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the local end of day (23:59:59.999) containing t.
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999*int(time.Millisecond), t.Location())
}

// WeekdayName returns the lowercase weekday name used as a RecurringSchedule key.
func WeekdayName(t time.Time) string {
	return Weekdays[int(t.Weekday())]
}

// NormalizeWeekday lowercases and validates a weekday name.
func NormalizeWeekday(name string) (string, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, w := range Weekdays {
		if w == name {
			return w, nil
		}
	}
	return "", fmt.Errorf("invalid weekday %q", name)
}

// RecurringSchedule maps a weekday name to the ordered task labels scheduled
// for that weekday. Labels are both the key and the display text; a
// completion record can reference a label no longer in the schedule.
type RecurringSchedule map[string][]string

// Tasks returns the scheduled labels for a weekday, nil when none.
func (s RecurringSchedule) Tasks(weekday string) []string {
	if s == nil {
		return nil
	}
	return s[weekday]
}

// CalendarTask is one concrete task instance owned by exactly one calendar
// day. Tasks with IsDeadline set are mirrored into the global deadline index;
// the mirror copy additionally carries DeadlineDateKey (the day it is due).
type CalendarTask struct {
	ID              string   `json:"id"`
	Text            string   `json:"text"`
	Time            string   `json:"time,omitempty"`
	Completed       bool     `json:"completed"`
	IsDeadline      bool     `json:"isDeadline"`
	Tags            []string `json:"tags,omitempty"`
	CompletionDate  string   `json:"completionDate,omitempty"`
	DeadlineDateKey string   `json:"deadlineDateKey,omitempty"`
}

// DueDayKey returns the day the task is due: its explicit DeadlineDateKey if
// present, otherwise the day it is stored under.
func (t CalendarTask) DueDayKey(ownerDayKey string) string {
	if t.DeadlineDateKey != "" {
		return t.DeadlineDateKey
	}
	return ownerDayKey
}

// SustainedItem is one entry of a sustained checklist. CompletionDate is the
// day key the item was last marked complete; it is used only by analytics.
type SustainedItem struct {
	ID             string `json:"id"`
	Text           string `json:"text"`
	Completed      bool   `json:"completed"`
	CompletionDate string `json:"completionDate,omitempty"`
}

// SustainedList is a named freeform checklist, unrelated to calendar days.
type SustainedList struct {
	Title string          `json:"title"`
	Items []SustainedItem `json:"items"`
}
