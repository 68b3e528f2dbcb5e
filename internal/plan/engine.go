package plan

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/deathnote2501/fia-v3.0-sub000/internal/document"
	"github.com/deathnote2501/fia-v3.0-sub000/internal/llm"
	"github.com/deathnote2501/fia-v3.0-sub000/internal/profile"
	"github.com/deathnote2501/fia-v3.0-sub000/internal/repair"
)

// ContentCache resolves a provider-side cache entry for a source document,
// creating one if none exists. *llm.CacheManager implements it.
type ContentCache interface {
	FindOrCreate(ctx context.Context, key string, doc llm.Attachment) (string, error)
}

// Engine generates validated training plans from a learner profile and a
// source document.
type Engine struct {
	provider llm.Provider
	cache    ContentCache // nil when the provider has no cache support
	cfg      Config
}

// NewEngine creates a plan generation engine. cache may be nil.
func NewEngine(provider llm.Provider, cache ContentCache, cfg Config) *Engine {
	return &Engine{provider: provider, cache: cache, cfg: cfg}
}

// Generate produces a TrainingPlan or a classified *Error. It never
// returns a partially valid plan: every candidate is strictly validated
// and invalid ones are regenerated until the attempt budget runs out.
func (e *Engine) Generate(ctx context.Context, prof profile.LearnerProfile, src *document.Source) (*TrainingPlan, error) {
	maxBytes := e.cfg.MaxDocumentBytes
	if maxBytes == 0 {
		maxBytes = document.DefaultMaxBytes
	}
	if err := src.CheckSize(maxBytes); err != nil {
		return nil, &Error{Kind: KindDocument, Err: err}
	}

	ctx = llm.WithPurpose(ctx, "plan-gen")
	req := e.buildRequest(ctx, prof, src)

	var lastErr *Error
	for attempt := range e.cfg.MaxAttempts {
		if attempt > 0 {
			if err := e.backoff(ctx, attempt); err != nil {
				return nil, &Error{Kind: KindProvider, Err: err}
			}
		}

		p, genErr := e.attempt(ctx, req)
		if genErr == nil {
			return p, nil
		}
		lastErr = genErr

		// Context errors will not improve with another attempt.
		if ctx.Err() != nil {
			return nil, genErr
		}
	}

	return nil, &Error{Kind: KindRetriesExhausted, Err: lastErr}
}

// buildRequest assembles the generation request, preferring a provider-side
// cache entry over re-uploading the document. Cache failures of any kind
// degrade to inline attachment: caching is a cost optimization, never a
// correctness dependency.
func (e *Engine) buildRequest(ctx context.Context, prof profile.LearnerProfile, src *document.Source) llm.Request {
	req := llm.Request{
		System: planSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildPlanUserMessage(prof)},
		},
		Schema:      PlanSchema,
		MaxTokens:   e.cfg.MaxTokens,
		Temperature: e.cfg.Temperature,
	}

	doc := llm.Attachment{Data: src.Data, MIMEType: src.MIMEType}
	if e.cache != nil {
		if name, err := e.cache.FindOrCreate(ctx, src.Key(), doc); err == nil {
			req.CachedContent = name
			// The cache already carries the system instruction slot, so the
			// role statement moves into the user message.
			req.Messages[0].Content = planSystemPrompt + "\n\n" + req.Messages[0].Content
			req.System = ""
			return req
		}
	}

	req.Document = &doc
	return req
}

func (e *Engine) attempt(ctx context.Context, req llm.Request) (*TrainingPlan, *Error) {
	callCtx := ctx
	if e.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, e.cfg.Timeout)
		defer cancel()
	}

	resp, err := e.provider.Generate(callCtx, req)
	if err != nil {
		return nil, &Error{Kind: KindProvider, Err: err}
	}

	p, perr := parsePlan(resp.Content)
	if perr != nil {
		return nil, perr
	}

	if err := Validate(*p); err != nil {
		return nil, &Error{Kind: KindValidation, Err: err}
	}

	return p, nil
}

// parsePlan decodes the response, stripping a markdown code fence and
// reparsing once before giving up.
func parsePlan(raw json.RawMessage) (*TrainingPlan, *Error) {
	var p TrainingPlan
	if err := json.Unmarshal(raw, &p); err == nil {
		return &p, nil
	}

	stripped := repair.StripCodeFence(string(raw))
	if err := json.Unmarshal([]byte(stripped), &p); err != nil {
		return nil, &Error{Kind: KindInvalidJSON, Err: fmt.Errorf("parse plan response: %w", err)}
	}
	return &p, nil
}

func (e *Engine) backoff(ctx context.Context, attempt int) error {
	delay := e.cfg.InitialDelay
	for range attempt - 1 {
		delay *= 2
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(delay):
		return nil
	}
}
