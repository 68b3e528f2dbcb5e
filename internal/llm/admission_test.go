package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestAdmission_DisabledPassesThrough(t *testing.T) {
	a := NewAdmission(AdmissionConfig{})
	for range 5 {
		if err := a.Acquire(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		a.Release()
	}
}

func TestAdmission_HardCapRejectsOverQuota(t *testing.T) {
	a := NewAdmission(AdmissionConfig{
		CallsPerMinute: 60,
		Burst:          2,
		HardCap:        true,
	})

	// Burst of 2 admitted, third rejected.
	for i := range 2 {
		if err := a.Acquire(context.Background()); err != nil {
			t.Fatalf("call %d: unexpected error: %v", i, err)
		}
		a.Release()
	}

	err := a.Acquire(context.Background())
	if err == nil {
		t.Fatal("expected rejection over quota")
	}
	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("expected ErrRateLimit, got %T", err)
	}
}

func TestAdmission_ConcurrencyCeilingHardCap(t *testing.T) {
	a := NewAdmission(AdmissionConfig{MaxConcurrent: 1, HardCap: true})

	if err := a.Acquire(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := a.Acquire(context.Background())
	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("expected ErrRateLimit while slot held, got %v", err)
	}

	a.Release()
	if err := a.Acquire(context.Background()); err != nil {
		t.Fatalf("expected slot after release, got %v", err)
	}
	a.Release()
}

func TestAdmission_BlocksWithoutBusyWait(t *testing.T) {
	// 600 calls/min = one token every 100ms. After the burst token is
	// spent, the next acquire must wait roughly one interval.
	a := NewAdmission(AdmissionConfig{CallsPerMinute: 600, Burst: 1})

	if err := a.Acquire(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	a.Release()

	start := time.Now()
	if err := a.Acquire(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	a.Release()

	if elapsed := time.Since(start); elapsed < 50*time.Millisecond {
		t.Errorf("expected the second acquire to be delayed, waited %v", elapsed)
	}
}

func TestAdmission_CancelledContext(t *testing.T) {
	a := NewAdmission(AdmissionConfig{CallsPerMinute: 1, Burst: 1})

	if err := a.Acquire(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	a.Release()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := a.Acquire(ctx); err == nil {
		t.Fatal("expected error from cancelled context")
	}
}

func TestAdmissionProvider_GatesEveryCall(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"ok":true}`)},
	)
	a := NewAdmission(AdmissionConfig{CallsPerMinute: 60, Burst: 1, HardCap: true})
	p := WithAdmission(mock, a)

	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Bucket drained: the next call is rejected before reaching the mock.
	_, err := p.Generate(context.Background(), Request{})
	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("expected ErrRateLimit, got %v", err)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected provider untouched on rejection, got %d calls", mock.CallCount())
	}
}
