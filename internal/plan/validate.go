package plan

import (
	"fmt"
	"strings"
)

// Validate checks a generated plan against the structural business rules.
// Violations are never auto-corrected: the plan is rejected so the engine
// can regenerate or surface the failure.
func Validate(p TrainingPlan) error {
	if len(p.Stages) != StageCount {
		return fmt.Errorf("expected %d stages, got %d", StageCount, len(p.Stages))
	}

	seen := make(map[int]bool, StageCount)
	for i, st := range p.Stages {
		if st.Number < 1 || st.Number > StageCount {
			return fmt.Errorf("stage %d: number %d out of range 1..%d", i+1, st.Number, StageCount)
		}
		if seen[st.Number] {
			return fmt.Errorf("duplicate stage number %d", st.Number)
		}
		seen[st.Number] = true

		if want := CanonicalStageTitles[st.Number]; st.Title != want {
			return fmt.Errorf("stage %d: title %q, want %q", st.Number, st.Title, want)
		}

		if err := validateStage(st); err != nil {
			return fmt.Errorf("stage %d: %w", st.Number, err)
		}
	}

	return nil
}

func validateStage(st Stage) error {
	if n := len(st.Modules); n < MinModulesPerStage || n > MaxModulesPerStage {
		return fmt.Errorf("%d modules, want %d..%d", n, MinModulesPerStage, MaxModulesPerStage)
	}

	for i, m := range st.Modules {
		if len(strings.TrimSpace(m.Name)) < MinNameLength {
			return fmt.Errorf("module %d: name too short", i+1)
		}
		if n := len(m.Submodules); n < MinSubmodulesPerModule || n > MaxSubmodulesPerModule {
			return fmt.Errorf("module %q: %d submodules, want %d..%d",
				m.Name, n, MinSubmodulesPerModule, MaxSubmodulesPerModule)
		}
		for j, sm := range m.Submodules {
			if len(strings.TrimSpace(sm.Name)) < MinNameLength {
				return fmt.Errorf("module %q: submodule %d: name too short", m.Name, j+1)
			}
			if sm.SlideCount < MinSlidesPerSubmodule || sm.SlideCount > MaxSlidesPerSubmodule {
				return fmt.Errorf("submodule %q: slide_count %d, want %d..%d",
					sm.Name, sm.SlideCount, MinSlidesPerSubmodule, MaxSlidesPerSubmodule)
			}
		}
	}

	return nil
}
