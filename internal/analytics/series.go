package analytics

import (
	"time"

	"github.com/daykeep/daykeep/internal/model"
)

// Mode selects the bucket granularity of a series.
type Mode string

const (
	ModeDaily   Mode = "daily"
	ModeMonthly Mode = "monthly"
)

// ModeForRange picks the bucket granularity for a range token: long windows
// (ytd, yearly, all-time) fold into months, everything else stays daily.
func ModeForRange(token RangeToken) Mode {
	switch token {
	case RangeYTD, RangeYearly, RangeAllTime:
		return ModeMonthly
	default:
		return ModeDaily
	}
}

// Bucket is one chart bar.
type Bucket struct {
	Label string
	Count int
}

// Series is the bucketized view of a window's daily counts, ready for
// rendering against a rounded axis ceiling.
type Series struct {
	Buckets []Bucket
	AxisMax int
}

// Bucketize regroups per-day counts into chart buckets.
//
// Daily mode emits one bucket per calendar day, labeled with the abbreviated
// weekday name. Monthly mode folds counts by their YYYY-MM prefix and emits
// one bucket per month spanned by the window, including zero-count months.
func Bucketize(dailyCounts map[string]int, w Window, mode Mode) Series {
	if w.Start.After(w.End) {
		return Series{AxisMax: axisMax(0, mode)}
	}

	var buckets []Bucket
	if mode == ModeMonthly {
		byMonth := map[string]int{}
		for dayKey, count := range dailyCounts {
			if len(dayKey) >= 7 {
				byMonth[dayKey[:7]] += count
			}
		}

		end := time.Date(w.End.Year(), w.End.Month(), 1, 0, 0, 0, 0, w.End.Location())
		for m := time.Date(w.Start.Year(), w.Start.Month(), 1, 0, 0, 0, 0, w.Start.Location()); !m.After(end); m = m.AddDate(0, 1, 0) {
			buckets = append(buckets, Bucket{
				Label: m.Format("Jan"),
				Count: byMonth[m.Format("2006-01")],
			})
		}
	} else {
		end := model.StartOfDay(w.End)
		for d := model.StartOfDay(w.Start); !d.After(end); d = d.AddDate(0, 0, 1) {
			buckets = append(buckets, Bucket{
				Label: d.Format("Mon"),
				Count: dailyCounts[model.DayKey(d)],
			})
		}
	}

	max := 0
	for _, b := range buckets {
		if b.Count > max {
			max = b.Count
		}
	}
	return Series{Buckets: buckets, AxisMax: axisMax(max, mode)}
}

// axisMax rounds the observed maximum up to a stable gridline ceiling.
func axisMax(max int, mode Mode) int {
	if mode == ModeMonthly {
		switch {
		case max <= 10:
			return 10
		case max <= 50:
			return 50
		default:
			return (max + 49) / 50 * 50
		}
	}
	switch {
	case max <= 5:
		return 5
	case max <= 10:
		return 10
	default:
		return (max + 9) / 10 * 10
	}
}
