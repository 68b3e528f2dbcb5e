package plan

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/deathnote2501/fia-v3.0-sub000/internal/document"
	"github.com/deathnote2501/fia-v3.0-sub000/internal/llm"
	"github.com/deathnote2501/fia-v3.0-sub000/internal/profile"
)

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.InitialDelay = time.Millisecond
	cfg.Timeout = time.Second
	return cfg
}

func testProfile() profile.LearnerProfile {
	return profile.LearnerProfile{
		ExperienceLevel: profile.LevelIntermediate,
		LearningStyle:   profile.StyleReading,
		JobPosition:     "Support engineer",
		ActivitySector:  "SaaS",
		Language:        "en",
	}
}

func testDocument(t *testing.T) *document.Source {
	t.Helper()
	src, err := document.New("handbook.md", []byte("# Incident handbook\nDetection, triage, escalation."))
	if err != nil {
		t.Fatalf("build document fixture: %v", err)
	}
	return src
}

func validPlanJSON(t *testing.T) json.RawMessage {
	t.Helper()
	raw, err := json.Marshal(validPlan())
	if err != nil {
		t.Fatalf("marshal fixture: %v", err)
	}
	return raw
}

// stubCache is a ContentCache that either returns a fixed entry name or
// fails every call.
type stubCache struct {
	name string
	err  error
	keys []string
}

func (c *stubCache) FindOrCreate(_ context.Context, key string, _ llm.Attachment) (string, error) {
	c.keys = append(c.keys, key)
	if c.err != nil {
		return "", c.err
	}
	return c.name, nil
}

func TestEngine_Generate_Success(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validPlanJSON(t)})
	eng := NewEngine(mock, nil, testConfig())

	p, err := eng.Generate(context.Background(), testProfile(), testDocument(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(p.Stages) != StageCount {
		t.Errorf("expected %d stages, got %d", StageCount, len(p.Stages))
	}
	if mock.CallCount() != 1 {
		t.Errorf("expected 1 call, got %d", mock.CallCount())
	}

	req := mock.Calls[0]
	if req.Document == nil {
		t.Error("expected document attached inline when no cache is configured")
	}
	if req.Schema == nil {
		t.Error("expected a schema on the plan request")
	}
}

func TestEngine_Generate_UsesDocumentCache(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validPlanJSON(t)})
	cache := &stubCache{name: "cachedContents/plan-doc"}
	eng := NewEngine(mock, cache, testConfig())

	src := testDocument(t)
	if _, err := eng.Generate(context.Background(), testProfile(), src); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(cache.keys) != 1 || cache.keys[0] != src.Key() {
		t.Errorf("cache keys = %v, want [%s]", cache.keys, src.Key())
	}

	req := mock.Calls[0]
	if req.CachedContent != "cachedContents/plan-doc" {
		t.Errorf("cached content = %q", req.CachedContent)
	}
	if req.Document != nil {
		t.Error("document must not be re-attached when the cache entry is used")
	}
	if req.System != "" {
		t.Error("system prompt should fold into the user message on the cached path")
	}
	if !strings.Contains(req.Messages[0].Content, "instructional designer") {
		t.Error("folded user message should carry the role statement")
	}
}

func TestEngine_Generate_CacheFailureFallsBackToInline(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validPlanJSON(t)})
	cache := &stubCache{err: errors.New("cache service down")}
	eng := NewEngine(mock, cache, testConfig())

	p, err := eng.Generate(context.Background(), testProfile(), testDocument(t))
	if err != nil {
		t.Fatalf("cache failure must not surface: %v", err)
	}
	if len(p.Stages) != StageCount {
		t.Errorf("expected %d stages, got %d", StageCount, len(p.Stages))
	}

	req := mock.Calls[0]
	if req.CachedContent != "" {
		t.Errorf("cached content = %q, want none after cache failure", req.CachedContent)
	}
	if req.Document == nil {
		t.Error("expected inline document fallback when the cache fails")
	}
	if req.System == "" {
		t.Error("system prompt should stay in place on the uncached path")
	}
}

func TestEngine_Generate_InvalidJSONExhaustsAttempts(t *testing.T) {
	bad := llm.MockResponse{Content: json.RawMessage(`not json at all`)}
	mock := llm.NewMockProvider(bad, bad, bad)
	eng := NewEngine(mock, nil, testConfig())

	_, err := eng.Generate(context.Background(), testProfile(), testDocument(t))
	if err == nil {
		t.Fatal("expected terminal error")
	}

	var perr *Error
	if !errors.As(err, &perr) || perr.Kind != KindRetriesExhausted {
		t.Fatalf("expected KindRetriesExhausted, got %v", err)
	}
	if mock.CallCount() != testConfig().MaxAttempts {
		t.Errorf("expected %d calls, got %d", testConfig().MaxAttempts, mock.CallCount())
	}
}

func TestEngine_Generate_RecoversFencedJSON(t *testing.T) {
	fenced := "```json\n" + string(validPlanJSON(t)) + "\n```"
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(fenced)})
	eng := NewEngine(mock, nil, testConfig())

	p, err := eng.Generate(context.Background(), testProfile(), testDocument(t))
	if err != nil {
		t.Fatalf("fenced but valid JSON should parse, got: %v", err)
	}
	if mock.CallCount() != 1 {
		t.Errorf("fence recovery must not consume an extra attempt, got %d calls", mock.CallCount())
	}
	if p.TotalSlides() == 0 {
		t.Error("parsed plan has no slides")
	}
}

func TestEngine_Generate_InvalidPlanThenValid(t *testing.T) {
	broken := validPlan()
	broken.Stages[0].Title = "Warmup"
	brokenJSON, _ := json.Marshal(broken)

	mock := llm.NewMockProvider(
		llm.MockResponse{Content: brokenJSON},
		llm.MockResponse{Content: validPlanJSON(t)},
	)
	eng := NewEngine(mock, nil, testConfig())

	p, err := eng.Generate(context.Background(), testProfile(), testDocument(t))
	if err != nil {
		t.Fatalf("second attempt should succeed, got: %v", err)
	}
	if p.Stages[0].Title != CanonicalStageTitles[1] {
		t.Errorf("got title %q", p.Stages[0].Title)
	}
	if mock.CallCount() != 2 {
		t.Errorf("expected 2 calls, got %d", mock.CallCount())
	}
}

func TestEngine_Generate_OversizedDocumentFailsFast(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validPlanJSON(t)})
	cfg := testConfig()
	cfg.MaxDocumentBytes = 8
	eng := NewEngine(mock, nil, cfg)

	_, err := eng.Generate(context.Background(), testProfile(), testDocument(t))
	var perr *Error
	if !errors.As(err, &perr) || perr.Kind != KindDocument {
		t.Fatalf("expected KindDocument, got %v", err)
	}
	if mock.CallCount() != 0 {
		t.Errorf("oversized document must not reach the provider, got %d calls", mock.CallCount())
	}
}

func TestEngine_Generate_EmptyDocumentFailsFast(t *testing.T) {
	mock := llm.NewMockProvider()
	eng := NewEngine(mock, nil, testConfig())

	src := &document.Source{Name: "empty.pdf", MIMEType: "application/pdf"}
	_, err := eng.Generate(context.Background(), testProfile(), src)
	var perr *Error
	if !errors.As(err, &perr) || perr.Kind != KindDocument {
		t.Fatalf("expected KindDocument, got %v", err)
	}
	if mock.CallCount() != 0 {
		t.Errorf("expected 0 calls, got %d", mock.CallCount())
	}
}

func TestEngine_Generate_ContextCancelledStopsRetrying(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	mock := llm.NewMockProvider(llm.MockResponse{Err: context.Canceled})
	eng := NewEngine(mock, nil, testConfig())

	_, err := eng.Generate(ctx, testProfile(), testDocument(t))
	if err == nil {
		t.Fatal("expected error")
	}
	if mock.CallCount() > 1 {
		t.Errorf("cancelled context must not retry, got %d calls", mock.CallCount())
	}
}

func TestEngine_Generate_BeginnerVisualPersonalization(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validPlanJSON(t)})
	eng := NewEngine(mock, nil, testConfig())

	prof := testProfile()
	prof.ExperienceLevel = profile.LevelBeginner
	prof.LearningStyle = profile.StyleVisual

	if _, err := eng.Generate(context.Background(), prof, testDocument(t)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	msg := mock.Calls[0].Messages[0].Content
	if !strings.Contains(msg, "Beginner") {
		t.Error("prompt should carry the beginner pacing rule")
	}
	if !strings.Contains(msg, "Visual learner") {
		t.Error("prompt should carry the visual style rule")
	}
}
