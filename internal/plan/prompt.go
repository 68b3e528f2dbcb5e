package plan

import (
	"fmt"
	"strings"

	"github.com/deathnote2501/fia-v3.0-sub000/internal/profile"
)

const planSystemPrompt = `You are an expert instructional designer for professional corporate training. You turn a source training document into a personalized five-stage curriculum for one specific learner. You respond with machine-parseable JSON only: no prose, no markdown, no code fences.`

func buildPlanUserMessage(p profile.LearnerProfile) string {
	var b strings.Builder

	b.WriteString("Learner profile:\n")
	b.WriteString(fmt.Sprintf("- Experience level: %s\n", p.ExperienceLevel))
	b.WriteString(fmt.Sprintf("- Learning style: %s\n", p.LearningStyle))
	if p.JobPosition != "" {
		b.WriteString(fmt.Sprintf("- Job position: %s\n", p.JobPosition))
	}
	if p.ActivitySector != "" {
		b.WriteString(fmt.Sprintf("- Activity sector: %s\n", p.ActivitySector))
	}
	if p.Country != "" {
		b.WriteString(fmt.Sprintf("- Country: %s\n", p.Country))
	}
	if p.Language != "" {
		b.WriteString(fmt.Sprintf("- Preferred language: %s\n", p.Language))
	}
	writeEnrichment(&b, p.Enriched)

	b.WriteString(`
Build a training plan from the attached document with EXACTLY these 5 stages, in this order, with these exact titles:
1. "Context Setting"
2. "Fundamentals Acquisition"
3. "Progressive Construction"
4. "Mastery"
5. "Validation"

Structure rules:
- Each stage has 1 to 3 modules named after themes actually present in the document.
- Each module has 1 to 4 submodules; each submodule declares a slide_count between 2 and 8.
- Module and submodule names must be specific to the document content, never generic filler.

`)

	b.WriteString("Personalization rules:\n")
	b.WriteString(levelRule(p.ExperienceLevel))
	b.WriteString(styleRule(p.LearningStyle))
	if p.ActivitySector != "" || p.JobPosition != "" {
		b.WriteString(fmt.Sprintf("- Anchor examples and module framing in the learner's work: %s%s.\n",
			p.JobPosition, sectorSuffix(p.ActivitySector)))
	}

	b.WriteString("\nReturn ONLY the JSON object. No explanation, no code fences.")

	return b.String()
}

func levelRule(level profile.ExperienceLevel) string {
	switch level {
	case profile.LevelBeginner:
		return "- Beginner: more slides per concept (favor slide_count 5-8), slower progression, one idea at a time, define every term.\n"
	case profile.LevelAdvanced:
		return "- Advanced: compact coverage (favor slide_count 2-4), skip basics, emphasize edge cases and expert practice.\n"
	default:
		return "- Intermediate: balanced pacing (favor slide_count 3-6), brief refreshers before new material.\n"
	}
}

func styleRule(style profile.LearningStyle) string {
	switch style {
	case profile.StyleVisual:
		return "- Visual learner: name submodules around diagrams, schemas, and visual walkthroughs.\n"
	case profile.StyleAuditory:
		return "- Auditory learner: name submodules around explanations, discussions, and narrated sequences.\n"
	case profile.StyleKinesthetic:
		return "- Kinesthetic learner: name submodules around exercises, manipulations, and hands-on cases.\n"
	default:
		return "- Reading learner: name submodules around structured notes, definitions, and written summaries.\n"
	}
}

func sectorSuffix(sector string) string {
	if sector == "" {
		return ""
	}
	return " in " + sector
}

func writeEnrichment(b *strings.Builder, e *profile.EnrichedProfile) {
	if e == nil {
		return
	}
	b.WriteString("\nObserved since enrollment:\n")
	if e.ObservedStyle != "" {
		b.WriteString(fmt.Sprintf("- Observed learning style: %s\n", e.ObservedStyle))
	}
	if e.ComprehensionLevel != "" {
		b.WriteString(fmt.Sprintf("- Comprehension level: %s\n", e.ComprehensionLevel))
	}
	if len(e.Interests) > 0 {
		b.WriteString(fmt.Sprintf("- Interests: %s\n", strings.Join(e.Interests, ", ")))
	}
	if len(e.Blockers) > 0 {
		b.WriteString(fmt.Sprintf("- Blockers: %s\n", strings.Join(e.Blockers, ", ")))
	}
	if len(e.RefinedObjectives) > 0 {
		b.WriteString(fmt.Sprintf("- Refined objectives: %s\n", strings.Join(e.RefinedObjectives, ", ")))
	}
}
