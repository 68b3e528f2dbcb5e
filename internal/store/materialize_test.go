package store

import (
	"testing"

	"github.com/deathnote2501/fia-v3.0-sub000/internal/plan"
)

// fixturePlan builds a minimal valid plan: one module per stage, two
// submodules per module, with a module-scoped quiz block in stage 5.
func fixturePlan() plan.TrainingPlan {
	stages := make([]plan.Stage, 0, plan.StageCount)
	for n := 1; n <= plan.StageCount; n++ {
		stages = append(stages, plan.Stage{
			Number: n,
			Title:  plan.CanonicalStageTitles[n],
			Modules: []plan.Module{
				{
					Name: "GDPR in daily support work",
					Submodules: []plan.Submodule{
						{Name: "Handling data requests", SlideCount: 3},
						{Name: "Consent records", SlideCount: 2},
					},
				},
			},
		})
	}
	// Stage 5 closes with a module quiz.
	stages[4].Modules[0].Submodules[1] = plan.Submodule{Name: "Module quiz", SlideCount: 2}
	return plan.TrainingPlan{Stages: stages}
}

func TestMaterialize_OverviewIsFirst(t *testing.T) {
	seeds := Materialize(fixturePlan())
	if len(seeds) == 0 {
		t.Fatal("no seeds")
	}
	first := seeds[0]
	if first.Type != SlidePlan {
		t.Errorf("first slide type = %s, want plan", first.Type)
	}
	if first.GlobalPosition != 1 {
		t.Errorf("first slide global position = %d, want 1", first.GlobalPosition)
	}
	if first.Stage != 0 || first.Module != 0 || first.Submodule != 0 {
		t.Error("overview must attach to the first submodule of the plan")
	}
}

func TestMaterialize_TotalCount(t *testing.T) {
	p := fixturePlan()
	seeds := Materialize(p)
	// 1 overview + 5 stage intros + 5 module intros + declared slides.
	want := 1 + 5 + 5 + p.TotalSlides()
	if len(seeds) != want {
		t.Errorf("seed count = %d, want %d", len(seeds), want)
	}
}

func TestMaterialize_GlobalPositionsAreContiguous(t *testing.T) {
	seeds := Materialize(fixturePlan())
	for i, s := range seeds {
		if s.GlobalPosition != i+1 {
			t.Fatalf("seed %d has global position %d", i, s.GlobalPosition)
		}
	}
}

func TestMaterialize_StageIntroPrecedesItsContent(t *testing.T) {
	seeds := Materialize(fixturePlan())
	seenStageIntro := map[int]bool{}
	for _, s := range seeds {
		switch s.Type {
		case SlideStage:
			seenStageIntro[s.Stage] = true
		case SlideContent, SlideQuiz:
			if !seenStageIntro[s.Stage] {
				t.Fatalf("slide %d (stage index %d) appears before its stage intro", s.GlobalPosition, s.Stage)
			}
		}
	}
}

func TestMaterialize_QuizSubmoduleYieldsQuizSlides(t *testing.T) {
	seeds := Materialize(fixturePlan())
	var quizzes []SlideSeed
	for _, s := range seeds {
		if s.Type == SlideQuiz {
			quizzes = append(quizzes, s)
		}
	}
	if len(quizzes) != 2 {
		t.Fatalf("quiz slide count = %d, want 2", len(quizzes))
	}
	for _, q := range quizzes {
		if q.QuizScope != ScopeModule {
			t.Errorf("quiz scope = %s, want module (name contains 'module')", q.QuizScope)
		}
		if q.Stage != 4 {
			t.Errorf("quiz slide in stage index %d, want 4", q.Stage)
		}
	}
}

func TestMaterialize_PositionsRestartPerSubmodule(t *testing.T) {
	seeds := Materialize(fixturePlan())
	// The first declared slide of any submodule after intros landed on it
	// must continue that submodule's position sequence.
	positions := map[[3]int][]int{}
	for _, s := range seeds {
		key := [3]int{s.Stage, s.Module, s.Submodule}
		positions[key] = append(positions[key], s.Position)
	}
	for key, ps := range positions {
		for i, p := range ps {
			if p != i+1 {
				t.Fatalf("submodule %v positions %v not contiguous", key, ps)
			}
		}
	}
}

func TestIsQuizSubmodule(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"Handling data requests", false},
		{"Module quiz", true},
		{"Évaluation finale", true},
		{"Stage assessment", true},
		{"Validation checkpoint", true},
		{"Evaluating customer needs", false},
	}
	for _, tt := range tests {
		if got := IsQuizSubmodule(tt.name); got != tt.want {
			t.Errorf("IsQuizSubmodule(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestInferQuizScope(t *testing.T) {
	tests := []struct {
		name string
		want QuizScope
	}{
		{"Quiz", ScopeSubmodule},
		{"Module quiz", ScopeModule},
		{"Stage assessment", ScopeStage},
		{"Évaluation de l'étape", ScopeStage},
		{"Final validation", ScopeSubmodule},
	}
	for _, tt := range tests {
		if got := InferQuizScope(tt.name); got != tt.want {
			t.Errorf("InferQuizScope(%q) = %s, want %s", tt.name, got, tt.want)
		}
	}
}
