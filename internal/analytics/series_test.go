package analytics

import (
	"testing"
	"time"
)

func TestModeForRange(t *testing.T) {
	tests := []struct {
		token RangeToken
		want  Mode
	}{
		{RangeWeekly, ModeDaily},
		{RangeMonthly, ModeDaily},
		{RangeYTD, ModeMonthly},
		{RangeYearly, ModeMonthly},
		{RangeAllTime, ModeMonthly},
	}

	for _, tt := range tests {
		t.Run(string(tt.token), func(t *testing.T) {
			if got := ModeForRange(tt.token); got != tt.want {
				t.Errorf("ModeForRange(%s) = %s, want %s", tt.token, got, tt.want)
			}
		})
	}
}

func TestBucketizeDaily(t *testing.T) {
	w := weekOf(localDate(2024, time.June, 5))
	counts := map[string]int{
		"2024-06-03": 2,
		"2024-06-05": 4,
	}

	series := Bucketize(counts, w, ModeDaily)
	if len(series.Buckets) != 7 {
		t.Fatalf("buckets = %d, want 7", len(series.Buckets))
	}
	if series.Buckets[0].Label != "Sun" || series.Buckets[6].Label != "Sat" {
		t.Errorf("labels = %s..%s, want Sun..Sat", series.Buckets[0].Label, series.Buckets[6].Label)
	}
	if series.Buckets[1].Count != 2 {
		t.Errorf("Monday count = %d, want 2", series.Buckets[1].Count)
	}
	if series.Buckets[2].Count != 0 {
		t.Errorf("Tuesday count = %d, want 0", series.Buckets[2].Count)
	}
	if series.Buckets[3].Count != 4 {
		t.Errorf("Wednesday count = %d, want 4", series.Buckets[3].Count)
	}
}

func TestBucketizeMonthlyIncludesZeroMonths(t *testing.T) {
	w := Window{
		Start: localDate(2024, time.January, 1),
		End:   localDate(2024, time.June, 5),
	}
	counts := map[string]int{
		"2024-01-10": 3,
		"2024-01-20": 2,
		"2024-04-01": 7,
	}

	series := Bucketize(counts, w, ModeMonthly)
	if len(series.Buckets) != 6 {
		t.Fatalf("buckets = %d, want 6 (Jan through Jun)", len(series.Buckets))
	}

	wantCounts := []int{5, 0, 0, 7, 0, 0}
	wantLabels := []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun"}
	for i := range series.Buckets {
		if series.Buckets[i].Label != wantLabels[i] {
			t.Errorf("bucket[%d] label = %s, want %s", i, series.Buckets[i].Label, wantLabels[i])
		}
		if series.Buckets[i].Count != wantCounts[i] {
			t.Errorf("bucket[%d] count = %d, want %d", i, series.Buckets[i].Count, wantCounts[i])
		}
	}
}

func TestBucketizeEmptyWindow(t *testing.T) {
	w := Window{Start: localDate(2024, time.June, 5), End: localDate(2024, time.June, 1)}
	series := Bucketize(nil, w, ModeDaily)
	if len(series.Buckets) != 0 {
		t.Errorf("buckets = %d, want 0", len(series.Buckets))
	}
	if series.AxisMax != 5 {
		t.Errorf("AxisMax = %d, want floor of 5", series.AxisMax)
	}
}

func TestAxisMax(t *testing.T) {
	tests := []struct {
		max  int
		mode Mode
		want int
	}{
		{0, ModeDaily, 5},
		{3, ModeDaily, 5},
		{5, ModeDaily, 5},
		{6, ModeDaily, 10},
		{10, ModeDaily, 10},
		{11, ModeDaily, 20},
		{37, ModeDaily, 40},
		{0, ModeMonthly, 10},
		{10, ModeMonthly, 10},
		{11, ModeMonthly, 50},
		{50, ModeMonthly, 50},
		{51, ModeMonthly, 100},
		{120, ModeMonthly, 150},
	}

	for _, tt := range tests {
		if got := axisMax(tt.max, tt.mode); got != tt.want {
			t.Errorf("axisMax(%d, %s) = %d, want %d", tt.max, tt.mode, got, tt.want)
		}
	}
}
