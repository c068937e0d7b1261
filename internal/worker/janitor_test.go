package worker

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"
)

type pruneStub struct {
	calls   int32
	dropped int64
	err     error
	cutoffs atomic.Value
}

func (s *pruneStub) PrunePendingBefore(_ context.Context, cutoff time.Time) (int64, error) {
	atomic.AddInt32(&s.calls, 1)
	s.cutoffs.Store(cutoff)
	return s.dropped, s.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func TestNewJanitorDefaultsInterval(t *testing.T) {
	j := NewJanitor(&pruneStub{}, 0, time.Hour, discardLogger())
	if j.interval != time.Hour {
		t.Fatalf("expected interval default to an hour, got %s", j.interval)
	}
}

func TestJanitorSweeps(t *testing.T) {
	stub := &pruneStub{dropped: 2}
	j := NewJanitor(stub, 5*time.Millisecond, 30*24*time.Hour, discardLogger())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	j.Start(ctx)

	deadline := time.After(500 * time.Millisecond)
	for atomic.LoadInt32(&stub.calls) == 0 {
		select {
		case <-deadline:
			t.Fatal("timeout waiting for sweep")
		case <-time.After(5 * time.Millisecond):
		}
	}

	j.Stop()

	cutoff, ok := stub.cutoffs.Load().(time.Time)
	if !ok {
		t.Fatal("expected recorded cutoff")
	}
	age := time.Since(cutoff)
	if age < 29*24*time.Hour || age > 31*24*time.Hour {
		t.Fatalf("cutoff not derived from pending TTL: %s ago", age)
	}
}

func TestJanitorKeepsSweepingAfterError(t *testing.T) {
	stub := &pruneStub{err: errors.New("db down")}
	j := NewJanitor(stub, 5*time.Millisecond, time.Hour, discardLogger())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	j.Start(ctx)

	deadline := time.After(500 * time.Millisecond)
	for atomic.LoadInt32(&stub.calls) < 2 {
		select {
		case <-deadline:
			t.Fatal("timeout waiting for repeated sweeps")
		case <-time.After(5 * time.Millisecond):
		}
	}

	j.Stop()
}

func TestJanitorDisabledWithoutTTL(t *testing.T) {
	stub := &pruneStub{}
	j := NewJanitor(stub, time.Millisecond, 0, discardLogger())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	j.Start(ctx)

	time.Sleep(20 * time.Millisecond)
	j.Stop()

	if atomic.LoadInt32(&stub.calls) != 0 {
		t.Fatalf("expected no sweeps when disabled, got %d", stub.calls)
	}
}

func TestJanitorStopIsIdempotent(t *testing.T) {
	j := NewJanitor(&pruneStub{}, time.Millisecond, time.Hour, discardLogger())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	j.Start(ctx)

	j.Stop()
	j.Stop()
}
