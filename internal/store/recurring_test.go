package store

import "testing"

func TestAddRecurringTask(t *testing.T) {
	s := newTestStore(t)

	if err := s.AddRecurringTask("Monday", "Gym"); err != nil {
		t.Fatal(err)
	}
	if err := s.AddRecurringTask("monday", "Read"); err != nil {
		t.Fatal(err)
	}

	got := s.RecurringSchedule().Tasks("monday")
	if len(got) != 2 || got[0] != "Gym" || got[1] != "Read" {
		t.Errorf("schedule = %v, want [Gym Read]", got)
	}
}

func TestAddRecurringTaskRejectsDuplicates(t *testing.T) {
	s := newTestStore(t)

	if err := s.AddRecurringTask("monday", "Gym"); err != nil {
		t.Fatal(err)
	}
	if err := s.AddRecurringTask("monday", "Gym"); err == nil {
		t.Error("duplicate label on the same weekday should fail")
	}
}

func TestAddRecurringTaskRejectsBadWeekday(t *testing.T) {
	s := newTestStore(t)

	if err := s.AddRecurringTask("mondayy", "Gym"); err == nil {
		t.Error("invalid weekday should fail")
	}
}

func TestRemoveRecurringTask(t *testing.T) {
	s := newTestStore(t)

	if err := s.AddRecurringTask("monday", "Gym"); err != nil {
		t.Fatal(err)
	}
	if err := s.RemoveRecurringTask("monday", "Gym"); err != nil {
		t.Fatal(err)
	}
	if got := s.RecurringSchedule().Tasks("monday"); len(got) != 0 {
		t.Errorf("schedule after remove = %v, want empty", got)
	}

	if err := s.RemoveRecurringTask("monday", "Gym"); err == nil {
		t.Error("removing an unscheduled label should fail")
	}
}

func TestSetRecurringCompleted(t *testing.T) {
	s := newTestStore(t)

	if err := s.SetRecurringCompleted("2024-06-03", "Gym", true); err != nil {
		t.Fatal(err)
	}
	if err := s.SetRecurringCompleted("2024-06-03", "Read", true); err != nil {
		t.Fatal(err)
	}

	done := s.CompletedRecurring("2024-06-03")
	if !done["Gym"] || !done["Read"] {
		t.Errorf("completed = %v, want Gym and Read", done)
	}

	// Marking twice is a no-op, unchecking removes the label.
	if err := s.SetRecurringCompleted("2024-06-03", "Gym", true); err != nil {
		t.Fatal(err)
	}
	if err := s.SetRecurringCompleted("2024-06-03", "Gym", false); err != nil {
		t.Fatal(err)
	}

	done = s.CompletedRecurring("2024-06-03")
	if done["Gym"] {
		t.Error("Gym should be unchecked")
	}
	if !done["Read"] {
		t.Error("Read should stay checked")
	}

	// Completions are per day.
	if other := s.CompletedRecurring("2024-06-04"); len(other) != 0 {
		t.Errorf("other day completed = %v, want empty", other)
	}
}

func TestDigestShown(t *testing.T) {
	s := newTestStore(t)

	if s.DigestShown("2024-06-02") {
		t.Error("digest should not be marked shown initially")
	}
	if err := s.MarkDigestShown("2024-06-02"); err != nil {
		t.Fatal(err)
	}
	if !s.DigestShown("2024-06-02") {
		t.Error("digest should be marked shown")
	}
	if s.DigestShown("2024-06-09") {
		t.Error("digest mark is per week start")
	}
}
