package slides

import (
	"context"
	"strings"
	"testing"

	"github.com/deathnote2501/fia-v3.0-sub000/internal/llm"
	"github.com/deathnote2501/fia-v3.0-sub000/internal/platform/logger"
)

const originalSlide = `# Handling data requests

Paragraph one explains the request intake process in detail.
Paragraph two explains identity verification.
Paragraph three explains response deadlines.
Paragraph four explains escalation.
Paragraph five explains documentation.
Paragraph six explains closure.`

func newModifier(responses ...llm.MockResponse) (*Modifier, *llm.MockProvider) {
	mock := llm.NewMockProvider(responses...)
	return NewModifier(mock, logger.Nop(), DefaultConfig()), mock
}

func TestSimplify_ReturnsModelResultWithDelta(t *testing.T) {
	short := "# Handling data requests\n\nShorter version."
	m, mock := newModifier(slideJSON(short))

	res, err := m.Simplify(context.Background(), originalSlide, testProfile())
	if err != nil {
		t.Fatalf("simplify: %v", err)
	}
	if res.Fallback {
		t.Error("model path succeeded, fallback must be false")
	}
	if res.Content != short {
		t.Errorf("content = %q", res.Content)
	}
	if res.DeltaPercent >= 0 {
		t.Errorf("delta = %d, want negative for a shorter result", res.DeltaPercent)
	}

	prompt := mock.Calls[0].Messages[0].Content
	if !strings.Contains(prompt, "SIMPLER") {
		t.Error("prompt missing simplify instruction")
	}
	if !strings.Contains(prompt, "request intake process") {
		t.Error("prompt missing the original content")
	}
}

func TestDeepen_ReturnsModelResult(t *testing.T) {
	longer := originalSlide + "\n\n## Edge cases\n\nMore detail."
	m, _ := newModifier(slideJSON(longer))

	res, err := m.Deepen(context.Background(), originalSlide, testProfile())
	if err != nil {
		t.Fatalf("deepen: %v", err)
	}
	if res.DeltaPercent <= 0 {
		t.Errorf("delta = %d, want positive for a longer result", res.DeltaPercent)
	}
	if res.Action != ActionDeepen {
		t.Errorf("action = %s", res.Action)
	}
}

func TestSimplify_FallsBackToTruncation(t *testing.T) {
	m, _ := newModifier(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})

	res, err := m.Simplify(context.Background(), originalSlide, testProfile())
	if err != nil {
		t.Fatalf("simplify must not fail when the model does: %v", err)
	}
	if !res.Fallback {
		t.Fatal("expected fallback result")
	}
	if !strings.HasPrefix(res.Content, "# Handling data requests") {
		t.Error("fallback lost the title")
	}
	if len(res.Content) >= len(originalSlide) {
		t.Error("fallback simplify did not shrink the content")
	}
}

func TestDeepen_FallsBackToFurtherReading(t *testing.T) {
	m, _ := newModifier(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})

	res, err := m.Deepen(context.Background(), originalSlide, testProfile())
	if err != nil {
		t.Fatalf("deepen must not fail when the model does: %v", err)
	}
	if !res.Fallback {
		t.Fatal("expected fallback result")
	}
	if !strings.Contains(res.Content, "## To go further") {
		t.Error("fallback deepen missing the templated section")
	}
	if !strings.HasPrefix(res.Content, originalSlide) {
		t.Error("fallback deepen must preserve the original body")
	}
}

func TestModify_RejectsEmptyContent(t *testing.T) {
	m, mock := newModifier()
	if _, err := m.Simplify(context.Background(), "   ", testProfile()); err == nil {
		t.Fatal("expected error for empty content")
	}
	if mock.CallCount() != 0 {
		t.Errorf("expected no provider calls, got %d", mock.CallCount())
	}
}

func TestModify_EmptyModelOutputFallsBack(t *testing.T) {
	m, _ := newModifier(slideJSON(""))

	res, err := m.Deepen(context.Background(), originalSlide, testProfile())
	if err != nil {
		t.Fatalf("deepen: %v", err)
	}
	if !res.Fallback {
		t.Error("empty model output should trigger the fallback")
	}
}
