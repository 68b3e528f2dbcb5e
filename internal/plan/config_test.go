package plan

import (
	"testing"
	"time"
)

func TestConfigFromEnv_MaxPlanRetries(t *testing.T) {
	t.Setenv("FIA_MAX_PLAN_RETRIES", "5")

	cfg := ConfigFromEnv()
	if cfg.MaxAttempts != 5 {
		t.Errorf("MaxAttempts = %d, want 5", cfg.MaxAttempts)
	}
}

func TestConfigFromEnv_PlanTimeout(t *testing.T) {
	t.Setenv("FIA_PLAN_TIMEOUT", "90s")

	cfg := ConfigFromEnv()
	if cfg.Timeout != 90*time.Second {
		t.Errorf("Timeout = %v, want 90s", cfg.Timeout)
	}
}

func TestConfigFromEnv_IgnoresInvalidValues(t *testing.T) {
	t.Setenv("FIA_MAX_PLAN_RETRIES", "zero")
	t.Setenv("FIA_PLAN_TIMEOUT", "-3s")

	cfg := ConfigFromEnv()
	def := DefaultConfig()
	if cfg.MaxAttempts != def.MaxAttempts {
		t.Errorf("MaxAttempts = %d, want default %d", cfg.MaxAttempts, def.MaxAttempts)
	}
	if cfg.Timeout != def.Timeout {
		t.Errorf("Timeout = %v, want default %v", cfg.Timeout, def.Timeout)
	}
}
