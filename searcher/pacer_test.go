package searcher

import (
	"context"
	"testing"
	"time"
)

func TestIntervalPacerFirstWaitIsImmediate(t *testing.T) {
	p := NewIntervalPacer(time.Hour)

	done := time.Now()
	if err := p.Wait(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if elapsed := time.Since(done); elapsed > time.Second {
		t.Errorf("first wait blocked for %v", elapsed)
	}
}

func TestIntervalPacerHonoursCancellation(t *testing.T) {
	p := NewIntervalPacer(time.Hour)
	if err := p.Wait(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := p.Wait(ctx); err == nil {
		t.Error("expected an error from a cancelled wait")
	}
}

func TestNopPacer(t *testing.T) {
	if err := (NopPacer{}).Wait(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
