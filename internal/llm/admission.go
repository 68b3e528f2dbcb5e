package llm

import (
	"context"
	"fmt"

	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
)

// AdmissionConfig configures the rate limiter that gates outbound calls.
type AdmissionConfig struct {
	// CallsPerMinute is the sustained throughput quota. 0 disables the
	// token bucket.
	CallsPerMinute int

	// Burst is the token-bucket burst size. Defaults to 1 when the bucket
	// is enabled.
	Burst int

	// MaxConcurrent caps in-flight calls. 0 disables the ceiling.
	MaxConcurrent int

	// HardCap, when true, rejects callers with ErrRateLimit instead of
	// queueing them once the quota is exhausted.
	HardCap bool
}

// Admission gates outbound model calls under a throughput quota and a
// concurrency ceiling. Acquire blocks without busy-waiting until a slot is
// available; in hard-cap mode it fails instead of queueing.
type Admission struct {
	limiter *rate.Limiter
	sem     *semaphore.Weighted
	hardCap bool
}

// NewAdmission builds an Admission from config.
func NewAdmission(cfg AdmissionConfig) *Admission {
	a := &Admission{hardCap: cfg.HardCap}

	if cfg.CallsPerMinute > 0 {
		burst := cfg.Burst
		if burst < 1 {
			burst = 1
		}
		a.limiter = rate.NewLimiter(rate.Limit(float64(cfg.CallsPerMinute)/60.0), burst)
	}
	if cfg.MaxConcurrent > 0 {
		a.sem = semaphore.NewWeighted(int64(cfg.MaxConcurrent))
	}

	return a
}

// Acquire claims a call slot. The caller must call Release after the call
// completes. A nil error means the slot is held.
func (a *Admission) Acquire(ctx context.Context) error {
	if a.sem != nil {
		if a.hardCap {
			if !a.sem.TryAcquire(1) {
				return &ErrRateLimit{Err: fmt.Errorf("concurrency ceiling reached")}
			}
		} else if err := a.sem.Acquire(ctx, 1); err != nil {
			return err
		}
	}

	if a.limiter != nil {
		if a.hardCap {
			if !a.limiter.Allow() {
				a.release()
				return &ErrRateLimit{Err: fmt.Errorf("call quota exhausted")}
			}
		} else if err := a.limiter.Wait(ctx); err != nil {
			a.release()
			return err
		}
	}

	return nil
}

// Release returns the concurrency slot claimed by Acquire.
func (a *Admission) Release() {
	a.release()
}

func (a *Admission) release() {
	if a.sem != nil {
		a.sem.Release(1)
	}
}

// AdmissionProvider is a decorator that acquires an admission slot before
// every provider call, including retry attempts.
type AdmissionProvider struct {
	inner     Provider
	admission *Admission
}

// WithAdmission wraps a Provider with admission control.
func WithAdmission(p Provider, a *Admission) Provider {
	return &AdmissionProvider{inner: p, admission: a}
}

func (a *AdmissionProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	if err := a.admission.Acquire(ctx); err != nil {
		return nil, err
	}
	defer a.admission.Release()

	return a.inner.Generate(ctx, req)
}

func (a *AdmissionProvider) ModelID() string {
	return a.inner.ModelID()
}
