package llm

import "testing"

func TestConfigFromEnv_RetryBudget(t *testing.T) {
	t.Setenv("FIA_LLM_MAX_RETRIES", "7")

	cfg := ConfigFromEnv()
	if cfg.Retry.MaxAttempts != 7 {
		t.Errorf("Retry.MaxAttempts = %d, want 7", cfg.Retry.MaxAttempts)
	}
}

func TestConfigFromEnv_RetryBudgetDefault(t *testing.T) {
	t.Setenv("FIA_LLM_MAX_RETRIES", "")

	cfg := ConfigFromEnv()
	if cfg.Retry.MaxAttempts != DefaultConfig().Retry.MaxAttempts {
		t.Errorf("Retry.MaxAttempts = %d, want default", cfg.Retry.MaxAttempts)
	}
}
