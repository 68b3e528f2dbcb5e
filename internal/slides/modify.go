package slides

import (
	"context"
	"fmt"
	"strings"

	"github.com/deathnote2501/fia-v3.0-sub000/internal/llm"
	"github.com/deathnote2501/fia-v3.0-sub000/internal/platform/logger"
	"github.com/deathnote2501/fia-v3.0-sub000/internal/profile"
	"github.com/deathnote2501/fia-v3.0-sub000/internal/repair"
)

// Modifier rewrites existing slide content on demand. It never persists:
// the caller receives the new body plus metrics and decides storage.
//
// The model path can fail; the learner still gets a result, produced by a
// deterministic local transform instead.
type Modifier struct {
	provider llm.Provider
	log      *logger.Logger
	cfg      Config
}

// NewModifier creates a content modification engine.
func NewModifier(provider llm.Provider, log *logger.Logger, cfg Config) *Modifier {
	return &Modifier{provider: provider, log: log, cfg: cfg}
}

// Simplify rewrites content shorter and plainer for the learner.
func (m *Modifier) Simplify(ctx context.Context, content string, prof profile.LearnerProfile) (*ModifyResult, error) {
	return m.modify(ctx, ActionSimplify, content, prof)
}

// Deepen rewrites content with more depth and detail for the learner.
func (m *Modifier) Deepen(ctx context.Context, content string, prof profile.LearnerProfile) (*ModifyResult, error) {
	return m.modify(ctx, ActionDeepen, content, prof)
}

func (m *Modifier) modify(ctx context.Context, action ModifyAction, content string, prof profile.LearnerProfile) (*ModifyResult, error) {
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("nothing to %s: content is empty", action)
	}

	ctx = llm.WithPurpose(ctx, "modify")

	newContent, err := m.generate(ctx, action, content, prof)
	if err != nil {
		m.log.Warn("modification fell back to local transform",
			"action", string(action), "err", err.Error())
		return result(action, content, localTransform(action, content), true), nil
	}
	return result(action, content, newContent, false), nil
}

func (m *Modifier) generate(ctx context.Context, action ModifyAction, content string, prof profile.LearnerProfile) (string, error) {
	callCtx := ctx
	if m.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, m.cfg.Timeout)
		defer cancel()
	}

	resp, err := m.provider.Generate(callCtx, llm.Request{
		System:      slideSystemPrompt,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: modifyPrompt(action, content, prof)}},
		MaxTokens:   m.cfg.MaxTokens,
		Temperature: m.cfg.Temperature,
	})
	if err != nil {
		return "", err
	}

	out := repair.Extract(string(resp.Content))
	// Unlike slide generation, raw-JSON passthrough is worthless here: the
	// local transform is the better degradation.
	if strings.TrimSpace(out) == "" || repair.LooksLikeJSON(out) {
		return "", fmt.Errorf("model returned unusable %s result", action)
	}
	return out, nil
}

func modifyPrompt(action ModifyAction, content string, prof profile.LearnerProfile) string {
	var b strings.Builder
	b.WriteString(profileBlock(prof))
	switch action {
	case ActionSimplify:
		b.WriteString("\nRewrite the slide below SIMPLER for this learner: shorter sentences, plainer words, fewer ideas per paragraph, concrete examples. Keep the same title and the same core message. Aim for roughly two thirds of the original length.\n")
	case ActionDeepen:
		b.WriteString("\nRewrite the slide below DEEPER for this learner: keep everything it teaches, then add precision, edge cases, and a worked example tied to the learner's job. Keep the same title.\n")
	}
	b.WriteString("\nSlide:\n")
	b.WriteString(content)
	b.WriteString("\n")
	b.WriteString(jsonReminder)
	return b.String()
}

func result(action ModifyAction, oldContent, newContent string, fallback bool) *ModifyResult {
	return &ModifyResult{
		Action:       action,
		Content:      newContent,
		DeltaPercent: deltaPercent(len(oldContent), len(newContent)),
		Fallback:     fallback,
	}
}

// deltaPercent is the signed length change relative to the original.
func deltaPercent(oldLen, newLen int) int {
	if oldLen == 0 {
		return 0
	}
	return (newLen - oldLen) * 100 / oldLen
}

// localTransform is the deterministic fallback when the model path fails.
func localTransform(action ModifyAction, content string) string {
	if action == ActionSimplify {
		return truncateLines(content)
	}
	return content + furtherReading
}

// truncateLines keeps the title and roughly the first two thirds of the
// body lines.
func truncateLines(content string) string {
	lines := strings.Split(content, "\n")
	if len(lines) <= 3 {
		return content
	}
	keep := len(lines) * 2 / 3
	if keep < 1 {
		keep = 1
	}
	return strings.TrimRight(strings.Join(lines[:keep], "\n"), "\n")
}

const furtherReading = `

## To go further

- Revisit the key terms above and restate each one in your own words.
- Look for one situation in your own work this week where this applies.
- Ask the tutor for a concrete example if any point is still unclear.`
