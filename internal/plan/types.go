// Package plan builds and validates personalized training plans: the
// five-stage curriculum skeleton generated from a learner profile and a
// source training document.
package plan

// StageCount is the fixed number of stages in every training plan.
const StageCount = 5

// CanonicalStageTitles maps stage numbers (1..5) to the only titles the
// validator accepts. The generation prompt states them verbatim.
var CanonicalStageTitles = [StageCount + 1]string{
	"", // stages are 1-based
	"Context Setting",
	"Fundamentals Acquisition",
	"Progressive Construction",
	"Mastery",
	"Validation",
}

// Structural bounds enforced by the validator.
const (
	MinModulesPerStage     = 1
	MaxModulesPerStage     = 3
	MinSubmodulesPerModule = 1
	MaxSubmodulesPerModule = 4
	MinSlidesPerSubmodule  = 2
	MaxSlidesPerSubmodule  = 8
	MinNameLength          = 3
)

// TrainingPlan is a validated curriculum skeleton.
type TrainingPlan struct {
	Stages []Stage `json:"stages"`
}

// Stage is one of the five fixed curriculum stages.
type Stage struct {
	Number  int      `json:"stage_number"`
	Title   string   `json:"title"`
	Modules []Module `json:"modules"`
}

// Module is a thematic unit inside a stage.
type Module struct {
	Name       string      `json:"name"`
	Submodules []Submodule `json:"submodules"`
}

// Submodule declares a group of slides and its target slide count.
type Submodule struct {
	Name       string `json:"name"`
	SlideCount int    `json:"slide_count"`
}

// TotalSlides returns the number of content/quiz slides declared by the
// plan, excluding the overview and intro slides added at materialization.
func (p TrainingPlan) TotalSlides() int {
	total := 0
	for _, st := range p.Stages {
		for _, m := range st.Modules {
			for _, sm := range m.Submodules {
				total += sm.SlideCount
			}
		}
	}
	return total
}
