package store

import (
	"fmt"
	"strings"

	"github.com/deathnote2501/fia-v3.0-sub000/internal/plan"
)

// SlideSeed is one slide of the materialized skeleton: everything known at
// plan time except content, which stays empty until a learner reaches it.
// Stage/Module/Submodule are 0-based indices into the plan structure so the
// persistence layer can attach each seed to the right parent row.
type SlideSeed struct {
	Stage     int
	Module    int
	Submodule int

	Title          string
	Type           SlideType
	QuizScope      QuizScope
	Position       int // order within the submodule
	GlobalPosition int
}

// Materialize expands a validated plan into the full ordered slide skeleton:
// one plan overview slide, a stage intro per stage, a module intro per
// module, then the declared slides of each submodule. Intro slides attach to
// the first submodule of their scope so every slide has a submodule parent.
func Materialize(p plan.TrainingPlan) []SlideSeed {
	var seeds []SlideSeed
	global := 0
	// Per-submodule position counters, keyed by stage/module/submodule index.
	pos := map[[3]int]int{}

	add := func(si, mi, smi int, title string, typ SlideType, scope QuizScope) {
		global++
		key := [3]int{si, mi, smi}
		pos[key]++
		seeds = append(seeds, SlideSeed{
			Stage:          si,
			Module:         mi,
			Submodule:      smi,
			Title:          title,
			Type:           typ,
			QuizScope:      scope,
			Position:       pos[key],
			GlobalPosition: global,
		})
	}

	add(0, 0, 0, "Your Training Plan", SlidePlan, "")

	for si, st := range p.Stages {
		add(si, 0, 0, st.Title, SlideStage, "")

		for mi, m := range st.Modules {
			add(si, mi, 0, m.Name, SlideModule, "")

			for smi, sm := range m.Submodules {
				if IsQuizSubmodule(sm.Name) {
					scope := InferQuizScope(sm.Name)
					for i := range sm.SlideCount {
						add(si, mi, smi, slideTitle(sm.Name, i+1, sm.SlideCount), SlideQuiz, scope)
					}
					continue
				}
				for i := range sm.SlideCount {
					add(si, mi, smi, slideTitle(sm.Name, i+1, sm.SlideCount), SlideContent, "")
				}
			}
		}
	}

	return seeds
}

// quizKeywords mark a submodule whose slides are knowledge checks rather
// than teaching material. French variants included: source documents and
// generated plans are frequently French.
var quizKeywords = []string{"quiz", "évaluation", "evaluation", "assessment", "validation"}

// IsQuizSubmodule reports whether a submodule name declares a quiz block.
func IsQuizSubmodule(name string) bool {
	lower := strings.ToLower(name)
	for _, kw := range quizKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// InferQuizScope reads the coverage hint out of a quiz submodule name.
// "module quiz" covers the enclosing module, "stage assessment" the
// enclosing stage; anything else covers just the submodule.
func InferQuizScope(name string) QuizScope {
	lower := strings.ToLower(name)
	switch {
	case strings.Contains(lower, "module"):
		return ScopeModule
	case strings.Contains(lower, "stage"), strings.Contains(lower, "étape"):
		return ScopeStage
	default:
		return ScopeSubmodule
	}
}

// slideTitle numbers the slides of a multi-slide submodule.
func slideTitle(name string, n, total int) string {
	if total == 1 {
		return name
	}
	return fmt.Sprintf("%s (%d/%d)", name, n, total)
}
