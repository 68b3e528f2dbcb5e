package slides

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/deathnote2501/fia-v3.0-sub000/internal/llm"
	"github.com/deathnote2501/fia-v3.0-sub000/internal/plan"
	"github.com/deathnote2501/fia-v3.0-sub000/internal/platform/logger"
	"github.com/deathnote2501/fia-v3.0-sub000/internal/profile"
	"github.com/deathnote2501/fia-v3.0-sub000/internal/store"
)

func testProfile() profile.LearnerProfile {
	return profile.LearnerProfile{
		ExperienceLevel: profile.LevelBeginner,
		LearningStyle:   profile.StyleVisual,
		JobPosition:     "Claims handler",
		ActivitySector:  "Insurance",
		Language:        "en",
	}
}

// testPlan has one module per stage with two submodules; stage 1 module
// closes with a module-scoped quiz.
func testPlan() plan.TrainingPlan {
	stages := make([]plan.Stage, 0, plan.StageCount)
	for n := 1; n <= plan.StageCount; n++ {
		stages = append(stages, plan.Stage{
			Number: n,
			Title:  plan.CanonicalStageTitles[n],
			Modules: []plan.Module{
				{
					Name: fmt.Sprintf("Claims module %d", n),
					Submodules: []plan.Submodule{
						{Name: fmt.Sprintf("Topic %d.1", n), SlideCount: 2},
						{Name: fmt.Sprintf("Topic %d.2", n), SlideCount: 2},
					},
				},
			},
		})
	}
	stages[0].Modules[0].Submodules[1] = plan.Submodule{Name: "Module quiz", SlideCount: 2}
	return plan.TrainingPlan{Stages: stages}
}

// stubDocCache is a ContentCache returning a fixed entry name, a miss, or
// an error, and recording every lookup key.
type stubDocCache struct {
	name    string
	err     error
	lookups []string
}

func (c *stubDocCache) FindCacheByDocument(_ context.Context, key string) (string, bool, error) {
	c.lookups = append(c.lookups, key)
	if c.err != nil {
		return "", false, c.err
	}
	if c.name == "" {
		return "", false, nil
	}
	return c.name, true, nil
}

const fixtureDocKey = "sha256:fixture-doc"

type fixture struct {
	mem  *store.Memory
	mock *llm.MockProvider
	nav  *Navigator
	sess *store.Session
	rec  *store.PlanRecord
}

func newFixture(t *testing.T, responses ...llm.MockResponse) *fixture {
	t.Helper()
	return newCachedFixture(t, nil, responses...)
}

func newCachedFixture(t *testing.T, cache ContentCache, responses ...llm.MockResponse) *fixture {
	t.Helper()
	ctx := context.Background()

	mem := store.NewMemory()
	mock := llm.NewMockProvider(responses...)

	sess, err := mem.SessionRepo().Create(ctx, "learner-1", testProfile())
	if err != nil {
		t.Fatalf("create session: %v", err)
	}
	rec, err := mem.PlanRepo().Create(ctx, "learner-1", "training-1", fixtureDocKey, testPlan())
	if err != nil {
		t.Fatalf("create plan: %v", err)
	}
	if err := mem.SessionRepo().SetPlan(ctx, sess.ID, rec.ID); err != nil {
		t.Fatalf("bind plan: %v", err)
	}
	sess.PlanID = &rec.ID

	nav := NewNavigator(mock, cache, mem.PlanRepo(), mem.SlideRepo(), mem.SessionRepo(), logger.Nop(), DefaultConfig())
	return &fixture{mem: mem, mock: mock, nav: nav, sess: sess, rec: rec}
}

func slideJSON(markdown string) llm.MockResponse {
	raw, _ := json.Marshal(map[string]string{"slide_content": markdown})
	return llm.MockResponse{Content: raw}
}

func TestGetFirstSlide_IsPlanOverview(t *testing.T) {
	f := newFixture(t, slideJSON("# Your Training Plan\n\nFive stages ahead."))
	ctx := context.Background()

	res, err := f.nav.GetFirstSlide(ctx, f.sess)
	if err != nil {
		t.Fatalf("first slide: %v", err)
	}
	if res.Slide == nil || res.Slide.Type != store.SlidePlan {
		t.Fatalf("first slide type = %v, want plan", res.Slide)
	}
	if res.Slide.GlobalPosition != 1 {
		t.Errorf("global position = %d, want 1", res.Slide.GlobalPosition)
	}
	if !res.HasNext || res.HasPrevious {
		t.Errorf("boundaries: has_next=%v has_previous=%v", res.HasNext, res.HasPrevious)
	}
	if res.TotalSlides != f.rec.SlideTotal {
		t.Errorf("total = %d, want %d", res.TotalSlides, f.rec.SlideTotal)
	}
	if !strings.Contains(*res.Slide.Content, "Five stages") {
		t.Errorf("content = %q", *res.Slide.Content)
	}

	// The overview prompt must carry the whole curriculum structure.
	prompt := f.mock.Calls[0].Messages[0].Content
	for n := 1; n <= plan.StageCount; n++ {
		if !strings.Contains(prompt, plan.CanonicalStageTitles[n]) {
			t.Errorf("overview prompt missing stage title %q", plan.CanonicalStageTitles[n])
		}
	}

	// Resume pointer follows the served slide.
	sess, _ := f.mem.SessionRepo().Get(ctx, "learner-1")
	if sess.CurrentSlideNumber != 1 {
		t.Errorf("resume pointer = %d, want 1", sess.CurrentSlideNumber)
	}
}

func TestGetCurrentSlide_IsIdempotent(t *testing.T) {
	f := newFixture(t, slideJSON("# Slide\n\nBody."))
	ctx := context.Background()

	first, err := f.nav.GetCurrentSlide(ctx, f.sess)
	if err != nil {
		t.Fatalf("serve 1: %v", err)
	}
	second, err := f.nav.GetCurrentSlide(ctx, f.sess)
	if err != nil {
		t.Fatalf("serve 2: %v", err)
	}

	if f.mock.CallCount() != 1 {
		t.Errorf("provider calls = %d, want 1 (no silent regeneration)", f.mock.CallCount())
	}
	if *first.Slide.Content != *second.Slide.Content {
		t.Error("contents differ between identical requests")
	}
}

func TestNavigationBoundaries(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// Previous from the start.
	f.sess.CurrentSlideNumber = 1
	res, err := f.nav.GetPreviousSlide(ctx, f.sess)
	if err != nil {
		t.Fatalf("previous at start: %v", err)
	}
	if res.Slide != nil || res.HasPrevious {
		t.Error("expected has_previous=false boundary at the first slide")
	}

	// Next past the end.
	f.sess.CurrentSlideNumber = f.rec.SlideTotal
	res, err = f.nav.GetNextSlide(ctx, f.sess)
	if err != nil {
		t.Fatalf("next at end: %v", err)
	}
	if res.Slide != nil || res.HasNext {
		t.Error("expected has_next=false boundary at the last slide")
	}
	if !res.HasPrevious {
		t.Error("end boundary should still report has_previous")
	}

	if f.mock.CallCount() != 0 {
		t.Errorf("boundary navigation must not call the provider, got %d calls", f.mock.CallCount())
	}
}

func TestNextSlide_AdvancesSequentially(t *testing.T) {
	f := newFixture(t,
		slideJSON("# One"), slideJSON("# Two"), slideJSON("# Three"))
	ctx := context.Background()

	for want := 1; want <= 3; want++ {
		res, err := f.nav.GetNextSlide(ctx, f.sess)
		if err != nil {
			t.Fatalf("next %d: %v", want, err)
		}
		if res.Slide.GlobalPosition != want {
			t.Fatalf("position = %d, want %d", res.Slide.GlobalPosition, want)
		}
	}
	if f.sess.CurrentSlideNumber != 3 {
		t.Errorf("resume pointer = %d, want 3", f.sess.CurrentSlideNumber)
	}
}

func TestGenerationFailure_LeavesSlideRetryable(t *testing.T) {
	f := newFixture(t,
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{}},
		slideJSON("# Recovered"))
	ctx := context.Background()

	if _, err := f.nav.GetFirstSlide(ctx, f.sess); err == nil {
		t.Fatal("expected generation failure to surface")
	}

	// Pointer must not move past a failed slide.
	sess, _ := f.mem.SessionRepo().Get(ctx, "learner-1")
	if sess.CurrentSlideNumber != 0 {
		t.Errorf("resume pointer = %d, want 0 after failure", sess.CurrentSlideNumber)
	}

	// The next attempt regenerates the same slide.
	res, err := f.nav.GetFirstSlide(ctx, f.sess)
	if err != nil {
		t.Fatalf("retry: %v", err)
	}
	if !strings.Contains(*res.Slide.Content, "Recovered") {
		t.Errorf("content = %q", *res.Slide.Content)
	}
}

func TestCorruptedContentIsRepairedWithoutRegeneration(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	slide, err := f.mem.SlideRepo().ByGlobalPosition(ctx, f.rec.ID, 1)
	if err != nil || slide == nil {
		t.Fatalf("slide 1: %v", err)
	}
	// Stored body is raw unparsed model JSON, the corruption the repair
	// pass exists for.
	corrupted := `{"slide_content": "# Plan\n\nOverview body."}`
	if err := f.mem.SlideRepo().SetContent(ctx, slide.ID, corrupted); err != nil {
		t.Fatalf("seed corrupted content: %v", err)
	}

	res, err := f.nav.GetFirstSlide(ctx, f.sess)
	if err != nil {
		t.Fatalf("serve: %v", err)
	}
	if f.mock.CallCount() != 0 {
		t.Errorf("repair must not regenerate, got %d provider calls", f.mock.CallCount())
	}
	if got := *res.Slide.Content; got != "# Plan\n\nOverview body." {
		t.Errorf("repaired content = %q", got)
	}
}

func TestQuizGathersOnlyItsModuleContent(t *testing.T) {
	f := newFixture(t, slideJSON("# Quiz\n\n1. Question."))
	ctx := context.Background()

	slides, err := f.mem.SlideRepo().ListByPlan(ctx, f.rec.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	// Seed generated content inside and outside the quiz's module.
	var quizPos int
	for _, s := range slides {
		switch {
		case s.Type == store.SlideQuiz:
			if quizPos == 0 {
				quizPos = s.GlobalPosition
			}
		case s.Type == store.SlideContent && s.StageNumber == 1:
			f.mem.SlideRepo().SetContent(ctx, s.ID, "IN-SCOPE material about claims intake")
		case s.Type == store.SlideContent && s.StageNumber == 2:
			f.mem.SlideRepo().SetContent(ctx, s.ID, "OUT-OF-SCOPE material from stage two")
		}
	}
	if quizPos == 0 {
		t.Fatal("fixture plan has no quiz slide")
	}

	f.sess.CurrentSlideNumber = quizPos - 1
	res, err := f.nav.GetNextSlide(ctx, f.sess)
	if err != nil {
		t.Fatalf("serve quiz: %v", err)
	}
	if res.Slide.Type != store.SlideQuiz {
		t.Fatalf("slide type = %s, want quiz", res.Slide.Type)
	}

	prompt := f.mock.Calls[0].Messages[0].Content
	if !strings.Contains(prompt, "IN-SCOPE material") {
		t.Error("quiz prompt missing its own module's content")
	}
	if strings.Contains(prompt, "OUT-OF-SCOPE material") {
		t.Error("quiz prompt leaked content from another stage")
	}
}

// firstSlideOfType returns the global position of the first slide of the
// given type in the fixture plan.
func firstSlideOfType(t *testing.T, f *fixture, typ store.SlideType) int {
	t.Helper()
	all, err := f.mem.SlideRepo().ListByPlan(context.Background(), f.rec.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for _, s := range all {
		if s.Type == typ {
			return s.GlobalPosition
		}
	}
	t.Fatalf("fixture plan has no %s slide", typ)
	return 0
}

func TestContentSlideUsesDocumentCache(t *testing.T) {
	cache := &stubDocCache{name: "cachedContents/fixture-doc"}
	f := newCachedFixture(t, cache, slideJSON("# Topic\n\nGrounded in the handbook."))
	ctx := context.Background()

	f.sess.CurrentSlideNumber = firstSlideOfType(t, f, store.SlideContent) - 1
	res, err := f.nav.GetNextSlide(ctx, f.sess)
	if err != nil {
		t.Fatalf("serve content slide: %v", err)
	}
	if res.Slide.Type != store.SlideContent {
		t.Fatalf("slide type = %s, want content", res.Slide.Type)
	}

	if len(cache.lookups) != 1 || cache.lookups[0] != fixtureDocKey {
		t.Errorf("cache lookups = %v, want [%s]", cache.lookups, fixtureDocKey)
	}

	req := f.mock.Calls[0]
	if req.CachedContent != "cachedContents/fixture-doc" {
		t.Errorf("cached content = %q, want the resolved entry name", req.CachedContent)
	}
	if req.System != "" {
		t.Error("system prompt should fold into the user message on the cached path")
	}
	if !strings.Contains(req.Messages[0].Content, "slide_content") {
		t.Error("folded user message should carry the JSON output contract")
	}
}

func TestStructuralSlidesSkipDocumentCache(t *testing.T) {
	cache := &stubDocCache{name: "cachedContents/fixture-doc"}
	f := newCachedFixture(t, cache, slideJSON("# Your Training Plan\n\nOverview."))
	ctx := context.Background()

	if _, err := f.nav.GetFirstSlide(ctx, f.sess); err != nil {
		t.Fatalf("serve overview: %v", err)
	}

	if len(cache.lookups) != 0 {
		t.Errorf("overview generation consulted the document cache: %v", cache.lookups)
	}
	if got := f.mock.Calls[0].CachedContent; got != "" {
		t.Errorf("cached content = %q, want none on structural slides", got)
	}
}

func TestCacheLookupFailureDegradesToUncached(t *testing.T) {
	cache := &stubDocCache{err: fmt.Errorf("cache service down")}
	f := newCachedFixture(t, cache, slideJSON("# Topic\n\nStill generated."))
	ctx := context.Background()

	f.sess.CurrentSlideNumber = firstSlideOfType(t, f, store.SlideContent) - 1
	res, err := f.nav.GetNextSlide(ctx, f.sess)
	if err != nil {
		t.Fatalf("cache failure must not surface: %v", err)
	}
	if !strings.Contains(*res.Slide.Content, "Still generated") {
		t.Errorf("content = %q", *res.Slide.Content)
	}

	req := f.mock.Calls[0]
	if req.CachedContent != "" {
		t.Errorf("cached content = %q, want none after lookup failure", req.CachedContent)
	}
	if req.System == "" {
		t.Error("system prompt should stay in place on the uncached path")
	}
}

func TestQuizSlideUsesDocumentCache(t *testing.T) {
	cache := &stubDocCache{name: "cachedContents/fixture-doc"}
	f := newCachedFixture(t, cache, slideJSON("# Quiz\n\n1. Question."))
	ctx := context.Background()

	f.sess.CurrentSlideNumber = firstSlideOfType(t, f, store.SlideQuiz) - 1
	res, err := f.nav.GetNextSlide(ctx, f.sess)
	if err != nil {
		t.Fatalf("serve quiz: %v", err)
	}
	if res.Slide.Type != store.SlideQuiz {
		t.Fatalf("slide type = %s, want quiz", res.Slide.Type)
	}
	if got := f.mock.Calls[0].CachedContent; got != "cachedContents/fixture-doc" {
		t.Errorf("cached content = %q, want the resolved entry name", got)
	}
}
