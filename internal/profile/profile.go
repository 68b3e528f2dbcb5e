// Package profile defines the learner profile passed to every prompt
// builder in the generation pipeline. The pipeline reads it, never writes
// it: enrichment happens upstream in conversation analysis and lands in
// the optional Enriched record.
package profile

import "fmt"

// ExperienceLevel is the learner's self-declared experience with the
// training subject.
type ExperienceLevel string

const (
	LevelBeginner     ExperienceLevel = "beginner"
	LevelIntermediate ExperienceLevel = "intermediate"
	LevelAdvanced     ExperienceLevel = "advanced"
)

// LearningStyle is the learner's preferred way of absorbing material.
type LearningStyle string

const (
	StyleVisual      LearningStyle = "visual"
	StyleAuditory    LearningStyle = "auditory"
	StyleKinesthetic LearningStyle = "kinesthetic"
	StyleReading     LearningStyle = "reading"
)

// LearnerProfile holds the enrollment attributes used to personalize plan
// and slide generation.
type LearnerProfile struct {
	ExperienceLevel ExperienceLevel `json:"experience_level"`
	LearningStyle   LearningStyle   `json:"learning_style"`
	JobPosition     string          `json:"job_position"`
	ActivitySector  string          `json:"activity_sector"`
	Country         string          `json:"country"`
	Language        string          `json:"language"`

	// Enriched is populated over time from chat interactions. Nil until
	// the first analysis pass has run.
	Enriched *EnrichedProfile `json:"enriched_profile,omitempty"`
}

// EnrichedProfile captures what the platform has inferred about the learner
// beyond the enrollment form.
type EnrichedProfile struct {
	ObservedStyle      string   `json:"observed_learning_style,omitempty"`
	ComprehensionLevel string   `json:"comprehension_level,omitempty"`
	Interests          []string `json:"interests,omitempty"`
	Blockers           []string `json:"blockers,omitempty"`
	RefinedObjectives  []string `json:"refined_objectives,omitempty"`
	EngagementPatterns []string `json:"engagement_patterns,omitempty"`
}

// Validate checks the enum fields. Free-text fields are accepted as-is.
func (p LearnerProfile) Validate() error {
	switch p.ExperienceLevel {
	case LevelBeginner, LevelIntermediate, LevelAdvanced:
	default:
		return fmt.Errorf("unknown experience level: %q", p.ExperienceLevel)
	}
	switch p.LearningStyle {
	case StyleVisual, StyleAuditory, StyleKinesthetic, StyleReading:
	default:
		return fmt.Errorf("unknown learning style: %q", p.LearningStyle)
	}
	return nil
}
