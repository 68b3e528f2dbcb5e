package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/deathnote2501/fia-v3.0-sub000/internal/plan"
	"github.com/deathnote2501/fia-v3.0-sub000/internal/profile"
)

// Memory is an in-memory implementation of all repositories, for tests and
// for running the pipeline without a database. Repositories are exposed
// through the same accessors Store has, sharing one locked state.
type Memory struct {
	mu       sync.Mutex
	plans    map[uuid.UUID]*PlanView
	slides   map[uuid.UUID][]*SlideView // keyed by plan ID
	sessions map[uuid.UUID]*Session
	events   []*LLMRequestEvent
	nextSeq  int64
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		plans:    make(map[uuid.UUID]*PlanView),
		slides:   make(map[uuid.UUID][]*SlideView),
		sessions: make(map[uuid.UUID]*Session),
		nextSeq:  1,
	}
}

// PlanRepo returns the in-memory PlanRepo.
func (m *Memory) PlanRepo() PlanRepo { return &memPlanRepo{m} }

// SlideRepo returns the in-memory SlideRepo.
func (m *Memory) SlideRepo() SlideRepo { return &memSlideRepo{m} }

// SessionRepo returns the in-memory SessionRepo.
func (m *Memory) SessionRepo() SessionRepo { return &memSessionRepo{m} }

// EventRepo returns the in-memory EventRepo.
func (m *Memory) EventRepo() EventRepo { return &memEventRepo{m} }

type memPlanRepo struct{ m *Memory }

func (r *memPlanRepo) Create(_ context.Context, learnerID, trainingID, documentKey string, p plan.TrainingPlan) (*PlanRecord, error) {
	if err := plan.Validate(p); err != nil {
		return nil, err
	}

	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	seeds := Materialize(p)
	rec := PlanRecord{
		ID:          uuid.New(),
		LearnerID:   learnerID,
		TrainingID:  trainingID,
		DocumentKey: documentKey,
		CreatedAt:   time.Now().UTC(),
		SlideTotal:  len(seeds),
	}

	view := &PlanView{PlanRecord: rec}
	for _, st := range p.Stages {
		sv := StageView{Number: st.Number, Title: st.Title}
		for _, mod := range st.Modules {
			mv := ModuleView{Name: mod.Name}
			for _, sm := range mod.Submodules {
				mv.Submodules = append(mv.Submodules, SubmoduleView{Name: sm.Name, SlideCount: sm.SlideCount})
			}
			sv.Modules = append(sv.Modules, mv)
		}
		view.Stages = append(view.Stages, sv)
	}
	r.m.plans[rec.ID] = view

	slides := make([]*SlideView, 0, len(seeds))
	for _, seed := range seeds {
		st := p.Stages[seed.Stage]
		slides = append(slides, &SlideView{
			ID:             uuid.New(),
			PlanID:         rec.ID,
			Title:          seed.Title,
			Type:           seed.Type,
			QuizScope:      seed.QuizScope,
			Position:       seed.Position,
			GlobalPosition: seed.GlobalPosition,
			StageNumber:    st.Number,
			StageTitle:     st.Title,
			ModuleName:     st.Modules[seed.Module].Name,
			SubmoduleName:  st.Modules[seed.Module].Submodules[seed.Submodule].Name,
		})
	}
	r.m.slides[rec.ID] = slides

	return &rec, nil
}

func (r *memPlanRepo) Get(_ context.Context, id uuid.UUID) (*PlanView, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	v, ok := r.m.plans[id]
	if !ok {
		return nil, nil
	}
	cp := *v
	return &cp, nil
}

func (r *memPlanRepo) FindByLearnerTraining(_ context.Context, learnerID, trainingID string) (*PlanRecord, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	var latest *PlanRecord
	for _, v := range r.m.plans {
		if v.LearnerID != learnerID || v.TrainingID != trainingID {
			continue
		}
		if latest == nil || v.CreatedAt.After(latest.CreatedAt) {
			rec := v.PlanRecord
			latest = &rec
		}
	}
	return latest, nil
}

type memSlideRepo struct{ m *Memory }

func (r *memSlideRepo) ByGlobalPosition(_ context.Context, planID uuid.UUID, pos int) (*SlideView, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for _, s := range r.m.slides[planID] {
		if s.GlobalPosition == pos {
			cp := *s
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memSlideRepo) ByID(_ context.Context, id uuid.UUID) (*SlideView, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if s := r.m.findSlide(id); s != nil {
		cp := *s
		return &cp, nil
	}
	return nil, nil
}

func (r *memSlideRepo) Count(_ context.Context, planID uuid.UUID) (int, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	return len(r.m.slides[planID]), nil
}

func (r *memSlideRepo) ListByPlan(_ context.Context, planID uuid.UUID) ([]*SlideView, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	src := r.m.slides[planID]
	out := make([]*SlideView, 0, len(src))
	for _, s := range src {
		cp := *s
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].GlobalPosition < out[j].GlobalPosition })
	return out, nil
}

func (r *memSlideRepo) SetContent(_ context.Context, id uuid.UUID, content string) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if s := r.m.findSlide(id); s != nil {
		now := time.Now().UTC()
		s.Content = &content
		s.GeneratedAt = &now
	}
	return nil
}

// findSlide must be called with the lock held.
func (m *Memory) findSlide(id uuid.UUID) *SlideView {
	for _, slides := range m.slides {
		for _, s := range slides {
			if s.ID == id {
				return s
			}
		}
	}
	return nil
}

type memSessionRepo struct{ m *Memory }

func (r *memSessionRepo) Get(_ context.Context, learnerID string) (*Session, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	var latest *Session
	for _, s := range r.m.sessions {
		if s.LearnerID != learnerID {
			continue
		}
		if latest == nil || s.UpdatedAt.After(latest.UpdatedAt) {
			latest = s
		}
	}
	if latest == nil {
		return nil, nil
	}
	cp := *latest
	return &cp, nil
}

func (r *memSessionRepo) Create(_ context.Context, learnerID string, prof profile.LearnerProfile) (*Session, error) {
	if err := prof.Validate(); err != nil {
		return nil, err
	}

	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	now := time.Now().UTC()
	s := &Session{
		ID:        uuid.New(),
		LearnerID: learnerID,
		Profile:   prof,
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.m.sessions[s.ID] = s
	cp := *s
	return &cp, nil
}

func (r *memSessionRepo) SetPlan(_ context.Context, sessionID, planID uuid.UUID) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if s, ok := r.m.sessions[sessionID]; ok {
		pid := planID
		s.PlanID = &pid
		s.CurrentSlideNumber = 0
		s.UpdatedAt = time.Now().UTC()
	}
	return nil
}

func (r *memSessionRepo) SetCurrentSlide(_ context.Context, sessionID uuid.UUID, globalPosition int) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if s, ok := r.m.sessions[sessionID]; ok {
		s.CurrentSlideNumber = globalPosition
		s.UpdatedAt = time.Now().UTC()
	}
	return nil
}

func (r *memSessionRepo) SetProfile(_ context.Context, sessionID uuid.UUID, prof profile.LearnerProfile) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if s, ok := r.m.sessions[sessionID]; ok {
		s.Profile = prof
		s.UpdatedAt = time.Now().UTC()
	}
	return nil
}

type memEventRepo struct{ m *Memory }

func (r *memEventRepo) AppendLLMRequest(_ context.Context, data LLMRequestEventData) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	r.m.events = append(r.m.events, &LLMRequestEvent{
		ID:                  len(r.m.events) + 1,
		Sequence:            r.m.nextSeq,
		Timestamp:           time.Now().UTC(),
		LLMRequestEventData: data,
	})
	r.m.nextSeq++
	return nil
}

func (r *memEventRepo) QueryLLMEvents(_ context.Context, opts QueryOpts) ([]*LLMRequestEvent, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	var out []*LLMRequestEvent
	for i := len(r.m.events) - 1; i >= 0; i-- {
		e := r.m.events[i]
		if opts.After > 0 && e.Sequence <= opts.After {
			continue
		}
		if opts.Before > 0 && e.Sequence >= opts.Before {
			continue
		}
		if !opts.From.IsZero() && e.Timestamp.Before(opts.From) {
			continue
		}
		if !opts.To.IsZero() && e.Timestamp.After(opts.To) {
			continue
		}
		cp := *e
		out = append(out, &cp)
		if opts.Limit > 0 && len(out) >= opts.Limit {
			break
		}
	}
	return out, nil
}

func (r *memEventRepo) GetLLMEvent(_ context.Context, id int) (*LLMRequestEvent, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for _, e := range r.m.events {
		if e.ID == id {
			cp := *e
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memEventRepo) LLMUsageByPurpose(_ context.Context) ([]LLMUsageStat, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	byPurpose := map[string]*LLMUsageStat{}
	latency := map[string]int64{}
	var purposes []string
	for _, e := range r.m.events {
		st, ok := byPurpose[e.Purpose]
		if !ok {
			st = &LLMUsageStat{Purpose: e.Purpose}
			byPurpose[e.Purpose] = st
			purposes = append(purposes, e.Purpose)
		}
		st.Calls++
		st.InputTokens += e.InputTokens
		st.OutputTokens += e.OutputTokens
		latency[e.Purpose] += e.LatencyMs
	}

	sort.Strings(purposes)
	out := make([]LLMUsageStat, 0, len(purposes))
	for _, p := range purposes {
		st := byPurpose[p]
		st.AvgLatencyMs = latency[p] / int64(st.Calls)
		out = append(out, *st)
	}
	return out, nil
}

func (r *memEventRepo) LLMUsageByModel(_ context.Context) ([]LLMModelUsage, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	byModel := map[string]*LLMModelUsage{}
	var models []string
	for _, e := range r.m.events {
		mu, ok := byModel[e.Model]
		if !ok {
			mu = &LLMModelUsage{Model: e.Model}
			byModel[e.Model] = mu
			models = append(models, e.Model)
		}
		mu.Calls++
		mu.InputTokens += e.InputTokens
		mu.OutputTokens += e.OutputTokens
	}

	sort.Strings(models)
	out := make([]LLMModelUsage, 0, len(models))
	for _, m := range models {
		out = append(out, *byModel[m])
	}
	return out, nil
}
