package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/deathnote2501/fia-v3.0-sub000/internal/profile"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testStoreProfile() profile.LearnerProfile {
	return profile.LearnerProfile{
		ExperienceLevel: profile.LevelBeginner,
		LearningStyle:   profile.StyleVisual,
		JobPosition:     "Account manager",
		ActivitySector:  "Insurance",
		Language:        "fr",
	}
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestPlanCreateAndGet(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	rec, err := s.PlanRepo().Create(ctx, "learner-1", "training-1", "doc-key", fixturePlan())
	if err != nil {
		t.Fatalf("create plan: %v", err)
	}
	if rec.SlideTotal == 0 {
		t.Fatal("expected materialized slides")
	}

	view, err := s.PlanRepo().Get(ctx, rec.ID)
	if err != nil {
		t.Fatalf("get plan: %v", err)
	}
	if view == nil {
		t.Fatal("plan not found")
	}
	if len(view.Stages) != 5 {
		t.Errorf("stage count = %d, want 5", len(view.Stages))
	}
	if view.Stages[0].Number != 1 || view.Stages[4].Number != 5 {
		t.Error("stages not ordered by number")
	}
	if view.SlideTotal != rec.SlideTotal {
		t.Errorf("view slide total = %d, want %d", view.SlideTotal, rec.SlideTotal)
	}
}

func TestPlanCreateRejectsInvalidPlan(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	p := fixturePlan()
	p.Stages = p.Stages[:3]
	if _, err := s.PlanRepo().Create(ctx, "learner-1", "training-1", "", p); err == nil {
		t.Fatal("expected error persisting a 3-stage plan")
	}
}

func TestPlanFindByLearnerTraining(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	found, err := s.PlanRepo().FindByLearnerTraining(ctx, "learner-1", "training-1")
	if err != nil {
		t.Fatalf("find (empty): %v", err)
	}
	if found != nil {
		t.Fatal("expected nil before any plan exists")
	}

	rec, err := s.PlanRepo().Create(ctx, "learner-1", "training-1", "", fixturePlan())
	if err != nil {
		t.Fatalf("create plan: %v", err)
	}

	found, err = s.PlanRepo().FindByLearnerTraining(ctx, "learner-1", "training-1")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if found == nil || found.ID != rec.ID {
		t.Fatal("expected the created plan")
	}
}

func TestSlideByGlobalPositionAndBreadcrumb(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	rec, err := s.PlanRepo().Create(ctx, "learner-1", "training-1", "", fixturePlan())
	if err != nil {
		t.Fatalf("create plan: %v", err)
	}

	first, err := s.SlideRepo().ByGlobalPosition(ctx, rec.ID, 1)
	if err != nil {
		t.Fatalf("slide 1: %v", err)
	}
	if first == nil {
		t.Fatal("slide 1 not found")
	}
	if first.Type != SlidePlan {
		t.Errorf("slide 1 type = %s, want plan", first.Type)
	}
	if first.StageNumber != 1 || first.StageTitle == "" || first.ModuleName == "" || first.SubmoduleName == "" {
		t.Errorf("breadcrumb not populated: %+v", first)
	}
	if first.Generated() {
		t.Error("fresh slide must have no content")
	}

	beyond, err := s.SlideRepo().ByGlobalPosition(ctx, rec.ID, rec.SlideTotal+1)
	if err != nil {
		t.Fatalf("slide beyond end: %v", err)
	}
	if beyond != nil {
		t.Error("expected nil past the last slide")
	}
}

func TestSlideSetContent(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	rec, err := s.PlanRepo().Create(ctx, "learner-1", "training-1", "", fixturePlan())
	if err != nil {
		t.Fatalf("create plan: %v", err)
	}

	slide, err := s.SlideRepo().ByGlobalPosition(ctx, rec.ID, 4)
	if err != nil || slide == nil {
		t.Fatalf("slide 4: %v", err)
	}

	if err := s.SlideRepo().SetContent(ctx, slide.ID, "# Generated\n\nBody."); err != nil {
		t.Fatalf("set content: %v", err)
	}

	again, err := s.SlideRepo().ByID(ctx, slide.ID)
	if err != nil || again == nil {
		t.Fatalf("reload slide: %v", err)
	}
	if !again.Generated() {
		t.Fatal("slide should report generated")
	}
	if *again.Content != "# Generated\n\nBody." {
		t.Errorf("content = %q", *again.Content)
	}
	if again.GeneratedAt == nil {
		t.Error("generated_at not stamped")
	}
}

func TestSlideCountAndList(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	rec, err := s.PlanRepo().Create(ctx, "learner-1", "training-1", "", fixturePlan())
	if err != nil {
		t.Fatalf("create plan: %v", err)
	}

	n, err := s.SlideRepo().Count(ctx, rec.ID)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != rec.SlideTotal {
		t.Errorf("count = %d, want %d", n, rec.SlideTotal)
	}

	slides, err := s.SlideRepo().ListByPlan(ctx, rec.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(slides) != n {
		t.Fatalf("list length = %d, want %d", len(slides), n)
	}
	for i, sl := range slides {
		if sl.GlobalPosition != i+1 {
			t.Fatalf("slide %d has global position %d", i, sl.GlobalPosition)
		}
	}
}

func TestSessionLifecycle(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	sess, err := s.SessionRepo().Get(ctx, "learner-1")
	if err != nil {
		t.Fatalf("get (empty): %v", err)
	}
	if sess != nil {
		t.Fatal("expected nil session before creation")
	}

	sess, err = s.SessionRepo().Create(ctx, "learner-1", testStoreProfile())
	if err != nil {
		t.Fatalf("create session: %v", err)
	}
	if sess.CurrentSlideNumber != 0 {
		t.Errorf("fresh session slide number = %d, want 0", sess.CurrentSlideNumber)
	}

	rec, err := s.PlanRepo().Create(ctx, "learner-1", "training-1", "", fixturePlan())
	if err != nil {
		t.Fatalf("create plan: %v", err)
	}
	if err := s.SessionRepo().SetPlan(ctx, sess.ID, rec.ID); err != nil {
		t.Fatalf("set plan: %v", err)
	}
	if err := s.SessionRepo().SetCurrentSlide(ctx, sess.ID, 3); err != nil {
		t.Fatalf("set current slide: %v", err)
	}

	sess, err = s.SessionRepo().Get(ctx, "learner-1")
	if err != nil || sess == nil {
		t.Fatalf("reload session: %v", err)
	}
	if sess.PlanID == nil || *sess.PlanID != rec.ID {
		t.Error("plan not bound to session")
	}
	if sess.CurrentSlideNumber != 3 {
		t.Errorf("slide number = %d, want 3", sess.CurrentSlideNumber)
	}
	if sess.Profile.ExperienceLevel != profile.LevelBeginner {
		t.Errorf("profile level = %s, want beginner", sess.Profile.ExperienceLevel)
	}
}

func TestEventAppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.EventRepo()

	for i := 0; i < 3; i++ {
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider:     "gemini",
			Model:        "gemini-2.0-flash",
			Purpose:      "slide-gen",
			InputTokens:  100,
			OutputTokens: 50,
			LatencyMs:    800,
			Success:      true,
			RequestBody:  "[user]\nprompt",
			ResponseBody: "content",
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("event count = %d, want 2", len(events))
	}
	if events[0].Sequence <= events[1].Sequence {
		t.Error("events not newest-first")
	}

	e, err := repo.GetLLMEvent(ctx, events[0].ID)
	if err != nil || e == nil {
		t.Fatalf("get event: %v", err)
	}
	if e.RequestBody == "" || e.ResponseBody == "" {
		t.Error("bodies not persisted")
	}
}

func TestEventUsageAggregates(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.EventRepo()

	data := LLMRequestEventData{
		Provider: "gemini", Model: "gemini-2.0-flash",
		Purpose: "plan-gen", InputTokens: 200, OutputTokens: 100,
		LatencyMs: 1000, Success: true,
	}
	for i := 0; i < 2; i++ {
		if err := repo.AppendLLMRequest(ctx, data); err != nil {
			t.Fatalf("append: %v", err)
		}
	}
	data.Purpose = "quiz-gen"
	if err := repo.AppendLLMRequest(ctx, data); err != nil {
		t.Fatalf("append: %v", err)
	}

	stats, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("purpose count = %d, want 2", len(stats))
	}
	for _, st := range stats {
		switch st.Purpose {
		case "plan-gen":
			if st.Calls != 2 || st.InputTokens != 400 {
				t.Errorf("plan-gen stats = %+v", st)
			}
		case "quiz-gen":
			if st.Calls != 1 || st.OutputTokens != 100 {
				t.Errorf("quiz-gen stats = %+v", st)
			}
		}
	}

	models, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(models) != 1 || models[0].Calls != 3 {
		t.Errorf("model usage = %+v", models)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}
