package plan

import (
	"strings"
	"testing"

	"github.com/deathnote2501/fia-v3.0-sub000/internal/profile"
)

func TestBuildPlanUserMessage_CarriesCanonicalTitles(t *testing.T) {
	msg := buildPlanUserMessage(testProfile())
	for n := 1; n <= StageCount; n++ {
		if !strings.Contains(msg, `"`+CanonicalStageTitles[n]+`"`) {
			t.Errorf("prompt missing canonical title %q", CanonicalStageTitles[n])
		}
	}
}

func TestBuildPlanUserMessage_OmitsBlankFields(t *testing.T) {
	msg := buildPlanUserMessage(profile.LearnerProfile{
		ExperienceLevel: profile.LevelAdvanced,
		LearningStyle:   profile.StyleKinesthetic,
	})
	if strings.Contains(msg, "Job position") {
		t.Error("blank job position should not appear")
	}
	if strings.Contains(msg, "Country") {
		t.Error("blank country should not appear")
	}
	if !strings.Contains(msg, "Advanced") {
		t.Error("advanced pacing rule missing")
	}
	if !strings.Contains(msg, "Kinesthetic") {
		t.Error("kinesthetic style rule missing")
	}
}

func TestBuildPlanUserMessage_IncludesEnrichment(t *testing.T) {
	prof := testProfile()
	prof.Enriched = &profile.EnrichedProfile{
		ObservedStyle:      "visual",
		ComprehensionLevel: "solid on fundamentals",
		Interests:          []string{"automation"},
		Blockers:           []string{"regex syntax"},
	}

	msg := buildPlanUserMessage(prof)
	if !strings.Contains(msg, "Observed since enrollment") {
		t.Fatal("enrichment section missing")
	}
	if !strings.Contains(msg, "automation") || !strings.Contains(msg, "regex syntax") {
		t.Error("enrichment details missing")
	}
}

func TestBuildPlanUserMessage_NoEnrichmentSectionWhenNil(t *testing.T) {
	msg := buildPlanUserMessage(testProfile())
	if strings.Contains(msg, "Observed since enrollment") {
		t.Error("enrichment section should be absent for new learners")
	}
}
