package logger

import "testing"

func TestRedactKVs(t *testing.T) {
	kv := []any{
		"gemini_api_key", "sk-live-abc",
		"input_tokens", 250,
		"refresh_token", "zzz",
		"purpose", "slide-gen",
	}
	out := redactKVs(kv)

	if out[1] != "[REDACTED]" {
		t.Errorf("api key not redacted: %v", out[1])
	}
	if out[3] != 250 {
		t.Errorf("token count wrongly redacted: %v", out[3])
	}
	if out[5] != "[REDACTED]" {
		t.Errorf("refresh token not redacted: %v", out[5])
	}
	if out[7] != "slide-gen" {
		t.Errorf("plain value changed: %v", out[7])
	}
}

func TestNopLoggerDoesNotPanic(t *testing.T) {
	l := Nop()
	l.Debug("debug", "k", "v")
	l.Info("info")
	l.Warn("warn", "count", 1)
	l.Error("error", "err", "boom")
	l.With("component", "test").Info("child")
	l.Sync()
}
