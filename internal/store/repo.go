package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/deathnote2501/fia-v3.0-sub000/internal/plan"
	"github.com/deathnote2501/fia-v3.0-sub000/internal/profile"
)

// SlideType classifies a slide by its role in the curriculum.
type SlideType string

const (
	SlidePlan    SlideType = "plan"    // one-per-plan overview, always global position 1
	SlideStage   SlideType = "stage"   // stage introduction
	SlideModule  SlideType = "module"  // module introduction
	SlideContent SlideType = "content" // teaching material
	SlideQuiz    SlideType = "quiz"    // knowledge check
)

// QuizScope names the slice of curriculum a quiz slide covers. It is fixed
// at materialization so generation never has to re-guess it from the title.
type QuizScope string

const (
	ScopeSubmodule QuizScope = "submodule"
	ScopeModule    QuizScope = "module"
	ScopeStage     QuizScope = "stage"
)

// PlanRecord is the persisted identity of a materialized training plan.
type PlanRecord struct {
	ID          uuid.UUID
	LearnerID   string
	TrainingID  string
	DocumentKey string
	CreatedAt   time.Time
	SlideTotal  int
}

// PlanView is a PlanRecord with its full curriculum skeleton loaded.
type PlanView struct {
	PlanRecord
	Stages []StageView
}

// StageView mirrors one persisted stage.
type StageView struct {
	Number  int
	Title   string
	Modules []ModuleView
}

// ModuleView mirrors one persisted module.
type ModuleView struct {
	Name       string
	Submodules []SubmoduleView
}

// SubmoduleView mirrors one persisted submodule.
type SubmoduleView struct {
	Name       string
	SlideCount int
}

// SlideView is a slide denormalized with its curriculum breadcrumb, the
// shape every consumer (navigator, builders, CLI) reads.
type SlideView struct {
	ID             uuid.UUID
	PlanID         uuid.UUID
	Title          string
	Type           SlideType
	QuizScope      QuizScope // set only for quiz slides
	Position       int       // order within the submodule
	GlobalPosition int       // order across the plan, 1-based

	StageNumber   int
	StageTitle    string
	ModuleName    string
	SubmoduleName string

	// Content is nil until the slide is generated.
	Content     *string
	GeneratedAt *time.Time
}

// Generated reports whether the slide already has content.
func (s *SlideView) Generated() bool {
	return s.Content != nil
}

// Session tracks one learner's resume point and profile.
type Session struct {
	ID                 uuid.UUID
	LearnerID          string
	PlanID             *uuid.UUID
	CurrentSlideNumber int // global position of the last served slide, 0 before the first
	Profile            profile.LearnerProfile
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// PlanRepo persists training plans and their materialized slide skeletons.
type PlanRepo interface {
	// Create stores a validated plan and its materialized slides in one
	// transaction. The plan must already have passed plan.Validate.
	Create(ctx context.Context, learnerID, trainingID, documentKey string, p plan.TrainingPlan) (*PlanRecord, error)

	// Get loads a plan with its full stage/module/submodule skeleton.
	// Returns nil if the plan does not exist.
	Get(ctx context.Context, id uuid.UUID) (*PlanView, error)

	// FindByLearnerTraining returns the most recent plan for the pair, or
	// nil if the learner has no plan for this training yet.
	FindByLearnerTraining(ctx context.Context, learnerID, trainingID string) (*PlanRecord, error)
}

// SlideRepo reads and fills the slides of a materialized plan.
type SlideRepo interface {
	// ByGlobalPosition returns the slide at the 1-based global position,
	// or nil when the position is outside the plan.
	ByGlobalPosition(ctx context.Context, planID uuid.UUID, pos int) (*SlideView, error)

	// ByID returns a single slide, or nil if it does not exist.
	ByID(ctx context.Context, id uuid.UUID) (*SlideView, error)

	// Count returns the total number of slides in the plan.
	Count(ctx context.Context, planID uuid.UUID) (int, error)

	// ListByPlan returns every slide of the plan ordered by global position.
	ListByPlan(ctx context.Context, planID uuid.UUID) ([]*SlideView, error)

	// SetContent stores generated content and stamps generated_at. It
	// overwrites unconditionally; callers decide idempotence.
	SetContent(ctx context.Context, id uuid.UUID, content string) error
}

// SessionRepo persists learner sessions.
type SessionRepo interface {
	// Get returns the learner's session, or nil if none exists.
	Get(ctx context.Context, learnerID string) (*Session, error)

	// Create starts a session for a learner with the given profile.
	Create(ctx context.Context, learnerID string, prof profile.LearnerProfile) (*Session, error)

	// SetPlan binds the session to a materialized plan.
	SetPlan(ctx context.Context, sessionID, planID uuid.UUID) error

	// SetCurrentSlide updates the resume pointer.
	SetCurrentSlide(ctx context.Context, sessionID uuid.UUID, globalPosition int) error

	// SetProfile replaces the stored profile, including enrichment.
	SetProfile(ctx context.Context, sessionID uuid.UUID, prof profile.LearnerProfile) error
}

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestEvent is a persisted LLM request event.
type LLMRequestEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// LLMUsageStat aggregates token usage per purpose.
type LLMUsageStat struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// LLMModelUsage aggregates token usage per model, for cost estimation.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns events newest-first, honoring opts.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]*LLMRequestEvent, error)

	// GetLLMEvent returns one event by ID, or nil if it does not exist.
	GetLLMEvent(ctx context.Context, id int) (*LLMRequestEvent, error)

	// LLMUsageByPurpose aggregates usage per purpose.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStat, error)

	// LLMUsageByModel aggregates usage per model.
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)
}
