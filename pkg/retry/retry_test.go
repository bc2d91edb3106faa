package retry

import (
	"context"
	"errors"
	"testing"
	"time"
)

// fakeSleeper records requested delays without actually sleeping.
type fakeSleeper struct {
	delays []time.Duration
	err    error
}

func (f *fakeSleeper) sleep(_ context.Context, d time.Duration) error {
	f.delays = append(f.delays, d)
	return f.err
}

func TestDoSucceedsFirstTry(t *testing.T) {
	s := &fakeSleeper{}
	calls := 0
	err := doWithSleeper(context.Background(), DefaultConfig(), func() error {
		calls++
		return nil
	}, s)
	if err != nil {
		t.Fatalf("Do: %v", err)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
	if len(s.delays) != 0 {
		t.Errorf("slept %d times, want 0", len(s.delays))
	}
}

func TestDoRetriesThenSucceeds(t *testing.T) {
	s := &fakeSleeper{}
	calls := 0
	err := doWithSleeper(context.Background(), Config{
		MaxAttempts: 3,
		InitDelay:   time.Second,
		MaxDelay:    time.Minute,
		Strategy:    Exponential,
	}, func() error {
		calls++
		if calls < 3 {
			return errors.New("transient")
		}
		return nil
	}, s)
	if err != nil {
		t.Fatalf("Do: %v", err)
	}
	if calls != 3 {
		t.Errorf("calls = %d, want 3", calls)
	}
	if len(s.delays) != 2 {
		t.Fatalf("slept %d times, want 2", len(s.delays))
	}
	if s.delays[0] != time.Second || s.delays[1] != 2*time.Second {
		t.Errorf("delays = %v, want [1s 2s]", s.delays)
	}
}

func TestDoExhaustsAttempts(t *testing.T) {
	s := &fakeSleeper{}
	wantErr := errors.New("still broken")
	calls := 0
	err := doWithSleeper(context.Background(), Config{
		MaxAttempts: 3,
		InitDelay:   time.Millisecond,
		MaxDelay:    time.Second,
	}, func() error {
		calls++
		return wantErr
	}, s)
	if !errors.Is(err, wantErr) {
		t.Fatalf("err = %v, want %v", err, wantErr)
	}
	if calls != 3 {
		t.Errorf("calls = %d, want 3", calls)
	}
}

// Stop marks an error permanent: no further attempts, and the returned
// error is the wrapped one, not the StopError.
func TestDoStopShortCircuits(t *testing.T) {
	s := &fakeSleeper{}
	permanent := errors.New("401 unauthorized")
	calls := 0
	err := doWithSleeper(context.Background(), DefaultConfig(), func() error {
		calls++
		return Stop(permanent)
	}, s)
	if !errors.Is(err, permanent) {
		t.Fatalf("err = %v, want %v", err, permanent)
	}
	var stop *StopError
	if errors.As(err, &stop) {
		t.Error("returned error should be unwrapped, not a StopError")
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
	if len(s.delays) != 0 {
		t.Errorf("slept %d times, want 0", len(s.delays))
	}
}

func TestDoContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	calls := 0
	err := doWithSleeper(ctx, DefaultConfig(), func() error {
		calls++
		return errors.New("never seen")
	}, &fakeSleeper{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if calls != 0 {
		t.Errorf("calls = %d, want 0", calls)
	}
}

func TestDoZeroAttempts(t *testing.T) {
	err := doWithSleeper(context.Background(), Config{}, func() error {
		t.Fatal("fn must not run with MaxAttempts 0")
		return nil
	}, &fakeSleeper{})
	if err != nil {
		t.Fatalf("Do: %v", err)
	}
}

func TestCalcDelayStrategies(t *testing.T) {
	tests := []struct {
		name     string
		strategy Strategy
		attempt  int
		want     time.Duration
	}{
		{"exponential first", Exponential, 0, time.Second},
		{"exponential third", Exponential, 2, 4 * time.Second},
		{"linear first", Linear, 0, time.Second},
		{"linear third", Linear, 2, 3 * time.Second},
		{"constant third", Constant, 2, time.Second},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{InitDelay: time.Second, MaxDelay: time.Minute, Strategy: tt.strategy}
			if got := CalcDelay(cfg, tt.attempt); got != tt.want {
				t.Errorf("CalcDelay = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCalcDelayCapped(t *testing.T) {
	cfg := Config{InitDelay: time.Second, MaxDelay: 5 * time.Second, Strategy: Exponential}
	if got := CalcDelay(cfg, 10); got != 5*time.Second {
		t.Errorf("CalcDelay = %v, want cap 5s", got)
	}
}

func TestCalcDelayJitterBounds(t *testing.T) {
	cfg := Config{InitDelay: 4 * time.Second, MaxDelay: time.Minute, Strategy: Constant, Jitter: true}
	for range 50 {
		d := CalcDelay(cfg, 0)
		if d < 3*time.Second || d > 5*time.Second {
			t.Fatalf("jittered delay %v outside ±25%% of 4s", d)
		}
	}
}
