// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// LearnerSession is the predicate function for learnersession builders.
type LearnerSession func(*sql.Selector)

// Module is the predicate function for module builders.
type Module func(*sql.Selector)

// Slide is the predicate function for slide builders.
type Slide func(*sql.Selector)

// Stage is the predicate function for stage builders.
type Stage func(*sql.Selector)

// Submodule is the predicate function for submodule builders.
type Submodule func(*sql.Selector)

// TrainingPlan is the predicate function for trainingplan builders.
type TrainingPlan func(*sql.Selector)
