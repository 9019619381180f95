package searcher

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Pacer throttles successive calls to an external service. It is
// injectable so tests can run without wall-clock delays.
type Pacer interface {
	Wait(ctx context.Context) error
}

type intervalPacer struct {
	lim *rate.Limiter
}

// NewIntervalPacer returns a Pacer that keeps at least interval between
// successive calls. The first call proceeds immediately.
func NewIntervalPacer(interval time.Duration) Pacer {
	return &intervalPacer{lim: rate.NewLimiter(rate.Every(interval), 1)}
}

func (p *intervalPacer) Wait(ctx context.Context) error {
	return p.lim.Wait(ctx)
}

// NopPacer never waits.
type NopPacer struct{}

func (NopPacer) Wait(context.Context) error { return nil }
