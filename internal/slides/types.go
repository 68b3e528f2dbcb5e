// Package slides serves the materialized curriculum: navigation by global
// position, lazy content generation through type-specific builders, and
// explicit simplify/deepen modification of existing content.
package slides

import "github.com/deathnote2501/fia-v3.0-sub000/internal/store"

// SlideResult is a served slide plus its place in the plan. Slide is nil
// when navigation hit a curriculum boundary; HasNext/HasPrevious say which
// end. Boundaries are results, never errors.
type SlideResult struct {
	Slide       *store.SlideView
	TotalSlides int
	HasNext     bool
	HasPrevious bool
}

// ModifyAction names a content modification.
type ModifyAction string

const (
	ActionSimplify ModifyAction = "simplify"
	ActionDeepen   ModifyAction = "deepen"
)

// ModifyResult is the outcome of a simplify/deepen call. The new content is
// NOT persisted by the engine; the caller decides whether to store it.
type ModifyResult struct {
	Action  ModifyAction
	Content string

	// DeltaPercent is the length change relative to the original body:
	// negative for shrinkage, positive for growth.
	DeltaPercent int

	// Fallback is true when the model path failed and the deterministic
	// local transform produced the content instead.
	Fallback bool
}
