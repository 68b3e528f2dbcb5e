package plan

import (
	"strings"
	"testing"
)

func validPlan() TrainingPlan {
	stages := make([]Stage, 0, StageCount)
	for n := 1; n <= StageCount; n++ {
		stages = append(stages, Stage{
			Number: n,
			Title:  CanonicalStageTitles[n],
			Modules: []Module{
				{
					Name: "Incident response basics",
					Submodules: []Submodule{
						{Name: "Detection and triage", SlideCount: 4},
						{Name: "Escalation paths", SlideCount: 3},
					},
				},
			},
		})
	}
	return TrainingPlan{Stages: stages}
}

func TestValidate_AcceptsCanonicalPlan(t *testing.T) {
	if err := Validate(validPlan()); err != nil {
		t.Fatalf("expected valid plan, got: %v", err)
	}
}

func TestValidate_RejectsWrongStageCount(t *testing.T) {
	p := validPlan()
	p.Stages = p.Stages[:4]
	if err := Validate(p); err == nil {
		t.Fatal("expected error for 4 stages")
	}
}

func TestValidate_RejectsDuplicateStageNumbers(t *testing.T) {
	p := validPlan()
	p.Stages[4].Number = 1
	p.Stages[4].Title = CanonicalStageTitles[1]
	if err := Validate(p); err == nil {
		t.Fatal("expected error for duplicate stage number")
	}
}

func TestValidate_RejectsNonCanonicalTitle(t *testing.T) {
	p := validPlan()
	p.Stages[0].Title = "Introduction"
	err := Validate(p)
	if err == nil {
		t.Fatal("expected error for non-canonical title")
	}
	if !strings.Contains(err.Error(), "Context Setting") {
		t.Errorf("error should name the expected title, got: %v", err)
	}
}

func TestValidate_RejectsTooManyModules(t *testing.T) {
	p := validPlan()
	m := p.Stages[2].Modules[0]
	p.Stages[2].Modules = []Module{m, m, m, m}
	if err := Validate(p); err == nil {
		t.Fatal("expected error for 4 modules in a stage")
	}
}

func TestValidate_RejectsEmptyModuleName(t *testing.T) {
	p := validPlan()
	p.Stages[1].Modules[0].Name = "  "
	if err := Validate(p); err == nil {
		t.Fatal("expected error for blank module name")
	}
}

func TestValidate_RejectsTooManySubmodules(t *testing.T) {
	p := validPlan()
	sm := p.Stages[0].Modules[0].Submodules[0]
	p.Stages[0].Modules[0].Submodules = []Submodule{sm, sm, sm, sm, sm}
	if err := Validate(p); err == nil {
		t.Fatal("expected error for 5 submodules in a module")
	}
}

func TestValidate_RejectsSlideCountOutOfRange(t *testing.T) {
	for _, count := range []int{0, 1, 9, 20} {
		p := validPlan()
		p.Stages[3].Modules[0].Submodules[0].SlideCount = count
		if err := Validate(p); err == nil {
			t.Errorf("expected error for slide_count %d", count)
		}
	}
}

func TestValidate_BoundaryValuesAccepted(t *testing.T) {
	p := validPlan()
	p.Stages[0].Modules[0].Submodules[0].SlideCount = MinSlidesPerSubmodule
	p.Stages[0].Modules[0].Submodules[1].SlideCount = MaxSlidesPerSubmodule
	if err := Validate(p); err != nil {
		t.Fatalf("boundary slide counts must pass, got: %v", err)
	}
}

func TestTotalSlides(t *testing.T) {
	p := validPlan()
	// 5 stages × 1 module × (4 + 3) slides.
	if got := p.TotalSlides(); got != 35 {
		t.Errorf("expected 35 declared slides, got %d", got)
	}
}
