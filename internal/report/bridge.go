package report

import (
	"fmt"
	"io"
	"time"

	"github.com/daykeep/daykeep/internal/analytics"
)

// Bridge owns the currently selected range token and re-renders the
// analytics view on demand. Store-change notifications and range switches
// both funnel through Refresh; a new refresh simply supersedes the prior
// output, there is no in-flight work to cancel.
type Bridge struct {
	src       analytics.Source
	out       io.Writer
	rng       analytics.RangeToken
	dailyGoal int
	now       func() time.Time
}

// NewBridge creates a bridge writing rendered views to out.
func NewBridge(src analytics.Source, out io.Writer, rng analytics.RangeToken, dailyGoal int) *Bridge {
	return &Bridge{src: src, out: out, rng: rng, dailyGoal: dailyGoal, now: time.Now}
}

// SetRange switches the active range token for subsequent refreshes.
func (b *Bridge) SetRange(rng analytics.RangeToken) {
	b.rng = rng
}

// Range returns the active range token.
func (b *Bridge) Range() analytics.RangeToken {
	return b.rng
}

// Refresh resolves the active window, aggregates and renders it.
func (b *Bridge) Refresh() error {
	w := analytics.ResolveWindow(b.rng, b.now(), b.src)
	res := analytics.Aggregate(b.src, w)
	series := analytics.Bucketize(res.DailyCounts, w, analytics.ModeForRange(b.rng))

	if _, err := fmt.Fprintln(b.out, Render(res, series, w, b.dailyGoal)); err != nil {
		return fmt.Errorf("render analytics: %w", err)
	}
	return nil
}
