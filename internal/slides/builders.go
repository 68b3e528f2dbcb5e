package slides

import (
	"fmt"
	"strings"

	"github.com/deathnote2501/fia-v3.0-sub000/internal/profile"
	"github.com/deathnote2501/fia-v3.0-sub000/internal/store"
)

const slideSystemPrompt = `You are an expert corporate trainer writing one slide of a personalized training course. You write clear, engaging markdown adapted to the learner described in the prompt, in the learner's preferred language. You respond with a JSON object of exactly this shape and nothing else: {"slide_content": "<markdown>"}`

// buildSlidePrompt dispatches to the type-specific builder. plan is required
// for plan and stage slides; scopeContent only for quiz slides.
func buildSlidePrompt(prof profile.LearnerProfile, plan *store.PlanView, slide *store.SlideView, scopeContent []string, cfg Config) string {
	switch slide.Type {
	case store.SlidePlan:
		return overviewPrompt(prof, plan)
	case store.SlideStage:
		return stageIntroPrompt(prof, plan, slide)
	case store.SlideModule:
		return moduleIntroPrompt(prof, plan, slide)
	case store.SlideQuiz:
		return quizPrompt(prof, slide, scopeContent, cfg.QuizQuestions)
	default:
		return contentPrompt(prof, slide)
	}
}

// profileBlock renders the learner lines shared by every builder.
func profileBlock(prof profile.LearnerProfile) string {
	var b strings.Builder
	b.WriteString("Learner:\n")
	b.WriteString(fmt.Sprintf("- Experience level: %s\n", prof.ExperienceLevel))
	b.WriteString(fmt.Sprintf("- Learning style: %s\n", prof.LearningStyle))
	if prof.JobPosition != "" {
		b.WriteString(fmt.Sprintf("- Job position: %s\n", prof.JobPosition))
	}
	if prof.ActivitySector != "" {
		b.WriteString(fmt.Sprintf("- Activity sector: %s\n", prof.ActivitySector))
	}
	if prof.Language != "" {
		b.WriteString(fmt.Sprintf("- Write the slide in: %s\n", prof.Language))
	}
	if e := prof.Enriched; e != nil {
		if e.ComprehensionLevel != "" {
			b.WriteString(fmt.Sprintf("- Observed comprehension: %s\n", e.ComprehensionLevel))
		}
		if len(e.Interests) > 0 {
			b.WriteString(fmt.Sprintf("- Interests: %s\n", strings.Join(e.Interests, ", ")))
		}
		if len(e.Blockers) > 0 {
			b.WriteString(fmt.Sprintf("- Known blockers: %s\n", strings.Join(e.Blockers, ", ")))
		}
	}
	return b.String()
}

// styleHint turns the declared learning style into a writing instruction.
func styleHint(style profile.LearningStyle) string {
	switch style {
	case profile.StyleVisual:
		return "Favor diagrams described in text, tables, and spatial structure."
	case profile.StyleAuditory:
		return "Favor a conversational, narrated tone, as if explaining aloud."
	case profile.StyleKinesthetic:
		return "Favor hands-on steps, exercises, and things to try immediately."
	default:
		return "Favor structured notes, precise definitions, and written summaries."
	}
}

// levelHint turns the experience level into a depth instruction.
func levelHint(level profile.ExperienceLevel) string {
	switch level {
	case profile.LevelBeginner:
		return "Assume no prior knowledge. One idea at a time, define every term, use everyday analogies."
	case profile.LevelAdvanced:
		return "Skip basics. Go straight to nuances, edge cases, and expert practice."
	default:
		return "Briefly anchor each concept before extending it. Balanced depth."
	}
}

func overviewPrompt(prof profile.LearnerProfile, plan *store.PlanView) string {
	var b strings.Builder
	b.WriteString(profileBlock(prof))
	b.WriteString("\nWrite the OPENING slide of the training: a structural overview of the full personalized plan below. Present all 5 stages in order, name each stage's modules, and say in one sentence per stage what the learner will be able to do afterwards. End with an encouraging transition into stage 1.\n\nPlan:\n")
	for _, st := range plan.Stages {
		b.WriteString(fmt.Sprintf("Stage %d: %s\n", st.Number, st.Title))
		for _, m := range st.Modules {
			b.WriteString(fmt.Sprintf("  - Module: %s\n", m.Name))
			for _, sm := range m.Submodules {
				b.WriteString(fmt.Sprintf("      - %s (%d slides)\n", sm.Name, sm.SlideCount))
			}
		}
	}
	b.WriteString("\n" + styleHint(prof.LearningStyle) + "\n")
	b.WriteString(jsonReminder)
	return b.String()
}

func stageIntroPrompt(prof profile.LearnerProfile, plan *store.PlanView, slide *store.SlideView) string {
	var b strings.Builder
	b.WriteString(profileBlock(prof))
	b.WriteString(fmt.Sprintf("\nWrite the INTRODUCTION slide for stage %d, %q. Motivate why this stage matters for the learner's work and preview its modules:\n", slide.StageNumber, slide.StageTitle))
	for _, st := range plan.Stages {
		if st.Number != slide.StageNumber {
			continue
		}
		for _, m := range st.Modules {
			b.WriteString(fmt.Sprintf("- %s\n", m.Name))
		}
	}
	b.WriteString("\n" + levelHint(prof.ExperienceLevel) + "\n")
	b.WriteString(jsonReminder)
	return b.String()
}

func moduleIntroPrompt(prof profile.LearnerProfile, plan *store.PlanView, slide *store.SlideView) string {
	var b strings.Builder
	b.WriteString(profileBlock(prof))
	b.WriteString(fmt.Sprintf("\nWrite the INTRODUCTION slide for the module %q (stage %d, %s). Connect the module to the learner's day-to-day work", slide.ModuleName, slide.StageNumber, slide.StageTitle))
	if prof.JobPosition != "" || prof.ActivitySector != "" {
		b.WriteString(fmt.Sprintf(" as %s", strings.TrimSpace(prof.JobPosition+" in "+prof.ActivitySector)))
	}
	b.WriteString(" and preview its submodules:\n")
	for _, st := range plan.Stages {
		if st.Number != slide.StageNumber {
			continue
		}
		for _, m := range st.Modules {
			if m.Name != slide.ModuleName {
				continue
			}
			for _, sm := range m.Submodules {
				b.WriteString(fmt.Sprintf("- %s\n", sm.Name))
			}
		}
	}
	b.WriteString("\n" + styleHint(prof.LearningStyle) + "\n")
	b.WriteString(jsonReminder)
	return b.String()
}

func contentPrompt(prof profile.LearnerProfile, slide *store.SlideView) string {
	var b strings.Builder
	b.WriteString(profileBlock(prof))
	b.WriteString(fmt.Sprintf("\nWrite the teaching slide %q.\nContext: submodule %q, module %q, stage %d (%s). This is slide %d within its submodule; continue from where the previous slide of the submodule would have left off, do not restart from scratch.\n\n",
		slide.Title, slide.SubmoduleName, slide.ModuleName, slide.StageNumber, slide.StageTitle, slide.Position))
	b.WriteString(levelHint(prof.ExperienceLevel) + "\n")
	b.WriteString(styleHint(prof.LearningStyle) + "\n")
	b.WriteString(jsonReminder)
	return b.String()
}

func quizPrompt(prof profile.LearnerProfile, slide *store.SlideView, scopeContent []string, questions int) string {
	var b strings.Builder
	b.WriteString(profileBlock(prof))
	b.WriteString(fmt.Sprintf("\nWrite the quiz slide %q with %d questions (mix multiple-choice and open questions) followed by an answer key.\n", slide.Title, questions))
	b.WriteString(fmt.Sprintf("Base EVERY question strictly on the course material below (scope: %s). Never ask about anything not covered in it.\n\nCourse material:\n", slide.QuizScope))
	if len(scopeContent) == 0 {
		b.WriteString("(no content slides generated yet; quiz the concepts named by the submodule titles of this scope)\n")
	}
	for i, c := range scopeContent {
		b.WriteString(fmt.Sprintf("--- slide %d ---\n%s\n", i+1, c))
	}
	b.WriteString(jsonReminder)
	return b.String()
}

const jsonReminder = "\nReturn ONLY the JSON object {\"slide_content\": \"<markdown>\"}."
