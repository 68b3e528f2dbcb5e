package slides

import (
	"context"
	"fmt"

	"github.com/deathnote2501/fia-v3.0-sub000/internal/llm"
	"github.com/deathnote2501/fia-v3.0-sub000/internal/platform/logger"
	"github.com/deathnote2501/fia-v3.0-sub000/internal/repair"
	"github.com/deathnote2501/fia-v3.0-sub000/internal/store"
)

// ContentCache looks up the provider-side cached copy of a plan's source
// document by its stored key. *llm.CacheManager implements it.
type ContentCache interface {
	FindCacheByDocument(ctx context.Context, key string) (string, bool, error)
}

// Navigator resolves slides by structural order and fills their content
// lazily. Navigation works identically whether or not content exists: the
// target slide is found by global position, then generated if empty.
//
// Requests for one session are expected to be serialized by the caller;
// the resume pointer is not safe under concurrent navigation of the same
// session.
type Navigator struct {
	provider llm.Provider
	cache    ContentCache // nil when the provider has no cache support
	plans    store.PlanRepo
	slides   store.SlideRepo
	sessions store.SessionRepo
	log      *logger.Logger
	cfg      Config
}

// NewNavigator creates a slide navigator. cache may be nil.
func NewNavigator(provider llm.Provider, cache ContentCache, plans store.PlanRepo, slides store.SlideRepo, sessions store.SessionRepo, log *logger.Logger, cfg Config) *Navigator {
	return &Navigator{
		provider: provider,
		cache:    cache,
		plans:    plans,
		slides:   slides,
		sessions: sessions,
		log:      log,
		cfg:      cfg,
	}
}

// GetFirstSlide serves slide 1, the plan overview.
func (n *Navigator) GetFirstSlide(ctx context.Context, sess *store.Session) (*SlideResult, error) {
	return n.serve(ctx, sess, 1)
}

// GetCurrentSlide re-serves the learner's resume point. It never
// regenerates content that is already there, so calling it repeatedly
// returns identical slides.
func (n *Navigator) GetCurrentSlide(ctx context.Context, sess *store.Session) (*SlideResult, error) {
	pos := sess.CurrentSlideNumber
	if pos < 1 {
		pos = 1
	}
	return n.serve(ctx, sess, pos)
}

// GetNextSlide advances one position. Past the last slide it returns a
// boundary result with HasNext false and a nil Slide.
func (n *Navigator) GetNextSlide(ctx context.Context, sess *store.Session) (*SlideResult, error) {
	return n.serve(ctx, sess, sess.CurrentSlideNumber+1)
}

// GetPreviousSlide steps one position back. Before the first slide it
// returns a boundary result with HasPrevious false and a nil Slide.
func (n *Navigator) GetPreviousSlide(ctx context.Context, sess *store.Session) (*SlideResult, error) {
	return n.serve(ctx, sess, sess.CurrentSlideNumber-1)
}

func (n *Navigator) serve(ctx context.Context, sess *store.Session, pos int) (*SlideResult, error) {
	if sess.PlanID == nil {
		return nil, fmt.Errorf("session %s has no plan", sess.ID)
	}
	planID := *sess.PlanID

	total, err := n.slides.Count(ctx, planID)
	if err != nil {
		return nil, fmt.Errorf("count slides: %w", err)
	}

	// Curriculum boundaries are results, not errors.
	if pos < 1 {
		return &SlideResult{TotalSlides: total, HasNext: total > 0, HasPrevious: false}, nil
	}
	if pos > total {
		return &SlideResult{TotalSlides: total, HasNext: false, HasPrevious: total > 0}, nil
	}

	slide, err := n.slides.ByGlobalPosition(ctx, planID, pos)
	if err != nil {
		return nil, fmt.Errorf("resolve slide %d: %w", pos, err)
	}
	if slide == nil {
		return nil, fmt.Errorf("plan %s has no slide at position %d", planID, pos)
	}

	if err := n.ensureContent(ctx, sess, slide); err != nil {
		return nil, err
	}

	// Resume pointer moves only after the slide was served successfully.
	if err := n.sessions.SetCurrentSlide(ctx, sess.ID, pos); err != nil {
		return nil, fmt.Errorf("update resume pointer: %w", err)
	}
	sess.CurrentSlideNumber = pos

	return &SlideResult{
		Slide:       slide,
		TotalSlides: total,
		HasNext:     pos < total,
		HasPrevious: pos > 1,
	}, nil
}

// ensureContent fills an empty slide, or re-repairs stored content that
// still looks like unparsed JSON. GENERATED slides are otherwise returned
// untouched.
func (n *Navigator) ensureContent(ctx context.Context, sess *store.Session, slide *store.SlideView) error {
	if slide.Generated() {
		stored := *slide.Content
		if !repair.LooksLikeJSON(stored) {
			return nil
		}
		fixed := repair.EnsureTitle(repair.Extract(stored), slide.Title)
		if fixed == stored {
			return nil
		}
		n.log.Warn("repairing corrupted slide content",
			"slide_id", slide.ID, "global_position", slide.GlobalPosition)
		if err := n.slides.SetContent(ctx, slide.ID, fixed); err != nil {
			return fmt.Errorf("store repaired content: %w", err)
		}
		slide.Content = &fixed
		return nil
	}

	content, err := n.generate(ctx, sess, slide)
	if err != nil {
		// No automatic retry: the learner's next navigation attempt
		// re-enters generation for this slide.
		return fmt.Errorf("generate slide %d (%s): %w", slide.GlobalPosition, slide.Type, err)
	}

	if err := n.slides.SetContent(ctx, slide.ID, content); err != nil {
		return fmt.Errorf("store slide content: %w", err)
	}
	slide.Content = &content
	return nil
}

func (n *Navigator) generate(ctx context.Context, sess *store.Session, slide *store.SlideView) (string, error) {
	purpose := "slide-gen"
	if slide.Type == store.SlideQuiz {
		purpose = "quiz-gen"
	}
	ctx = llm.WithPurpose(ctx, purpose)

	planView, err := n.plans.Get(ctx, slide.PlanID)
	if err != nil {
		return "", fmt.Errorf("load plan: %w", err)
	}
	if planView == nil {
		return "", fmt.Errorf("plan %s not found", slide.PlanID)
	}

	var scopeContent []string
	if slide.Type == store.SlideQuiz {
		scopeContent, err = n.gatherQuizScope(ctx, slide)
		if err != nil {
			return "", fmt.Errorf("gather quiz scope: %w", err)
		}
	}

	prompt := buildSlidePrompt(sess.Profile, planView, slide, scopeContent, n.cfg)

	req := llm.Request{
		System:      slideSystemPrompt,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: prompt}},
		MaxTokens:   n.cfg.MaxTokens,
		Temperature: n.cfg.Temperature,
	}
	if name := n.documentCache(ctx, planView.DocumentKey, slide); name != "" {
		req.CachedContent = name
		// The cache already carries the system instruction slot, so the
		// role statement moves into the user message.
		req.Messages[0].Content = slideSystemPrompt + "\n\n" + req.Messages[0].Content
		req.System = ""
	}

	callCtx := ctx
	if n.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, n.cfg.Timeout)
		defer cancel()
	}

	resp, err := n.provider.Generate(callCtx, req)
	if err != nil {
		return "", err
	}

	n.log.Debug("slide generated",
		"global_position", slide.GlobalPosition,
		"slide_type", string(slide.Type),
		"output_tokens", resp.Usage.OutputTokens)

	content := repair.Extract(string(resp.Content))
	return repair.EnsureTitle(content, slide.Title), nil
}

// documentCache resolves the cached source document for content and quiz
// slides, which teach from the document itself. Structural slides (plan,
// stage, module intros) describe the plan and don't need it. A lookup
// failure or miss degrades to generating without the document.
func (n *Navigator) documentCache(ctx context.Context, key string, slide *store.SlideView) string {
	if n.cache == nil || key == "" {
		return ""
	}
	if slide.Type != store.SlideContent && slide.Type != store.SlideQuiz {
		return ""
	}
	name, ok, err := n.cache.FindCacheByDocument(ctx, key)
	if err != nil {
		n.log.Warn("document cache lookup failed, generating without source document",
			"document_key", key, "global_position", slide.GlobalPosition, "error", err)
		return ""
	}
	if !ok {
		return ""
	}
	return name
}

// gatherQuizScope collects the generated content slides the quiz covers:
// only slides inside the quiz's scope, and only those the learner has
// already reached.
func (n *Navigator) gatherQuizScope(ctx context.Context, quiz *store.SlideView) ([]string, error) {
	all, err := n.slides.ListByPlan(ctx, quiz.PlanID)
	if err != nil {
		return nil, err
	}

	var out []string
	for _, s := range all {
		if s.Type != store.SlideContent || !s.Generated() {
			continue
		}
		if s.GlobalPosition >= quiz.GlobalPosition {
			continue
		}
		if !inQuizScope(quiz, s) {
			continue
		}
		out = append(out, *s.Content)
	}
	return out, nil
}

// inQuizScope reports whether a content slide falls inside the quiz's scope.
func inQuizScope(quiz, s *store.SlideView) bool {
	scope := quiz.QuizScope
	if scope == "" {
		// Older rows materialized before explicit scopes: fall back to the
		// title-keyword heuristic.
		scope = store.InferQuizScope(quiz.Title)
	}
	switch scope {
	case store.ScopeStage:
		return s.StageNumber == quiz.StageNumber
	case store.ScopeModule:
		return s.StageNumber == quiz.StageNumber && s.ModuleName == quiz.ModuleName
	default:
		return s.StageNumber == quiz.StageNumber &&
			s.ModuleName == quiz.ModuleName &&
			s.SubmoduleName == quiz.SubmoduleName
	}
}
