package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/deathnote2501/fia-v3.0-sub000/ent"
	entsession "github.com/deathnote2501/fia-v3.0-sub000/ent/learnersession"
	"github.com/deathnote2501/fia-v3.0-sub000/internal/profile"
)

// sessionRepo implements SessionRepo using the ent client.
type sessionRepo struct {
	client *ent.Client
}

func (r *sessionRepo) Get(ctx context.Context, learnerID string) (*Session, error) {
	s, err := r.client.LearnerSession.Query().
		Where(entsession.LearnerID(learnerID)).
		Order(ent.Desc(entsession.FieldUpdatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query session: %w", err)
	}
	return entSessionToSession(s)
}

func (r *sessionRepo) Create(ctx context.Context, learnerID string, prof profile.LearnerProfile) (*Session, error) {
	if err := prof.Validate(); err != nil {
		return nil, fmt.Errorf("invalid profile: %w", err)
	}

	profMap, err := profileToMap(prof)
	if err != nil {
		return nil, fmt.Errorf("marshal profile: %w", err)
	}

	s, err := r.client.LearnerSession.Create().
		SetLearnerID(learnerID).
		SetProfile(profMap).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	return entSessionToSession(s)
}

func (r *sessionRepo) SetPlan(ctx context.Context, sessionID, planID uuid.UUID) error {
	err := r.client.LearnerSession.UpdateOneID(sessionID).
		SetPlanID(planID).
		SetCurrentSlideNumber(0).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("set session plan: %w", err)
	}
	return nil
}

func (r *sessionRepo) SetCurrentSlide(ctx context.Context, sessionID uuid.UUID, globalPosition int) error {
	err := r.client.LearnerSession.UpdateOneID(sessionID).
		SetCurrentSlideNumber(globalPosition).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("set current slide: %w", err)
	}
	return nil
}

func (r *sessionRepo) SetProfile(ctx context.Context, sessionID uuid.UUID, prof profile.LearnerProfile) error {
	profMap, err := profileToMap(prof)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}
	err = r.client.LearnerSession.UpdateOneID(sessionID).
		SetProfile(profMap).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("set profile: %w", err)
	}
	return nil
}

// profileToMap converts a profile to map[string]any for ent JSON storage.
func profileToMap(prof profile.LearnerProfile) (map[string]any, error) {
	b, err := json.Marshal(prof)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// entSessionToSession converts an ent LearnerSession to a store Session.
func entSessionToSession(s *ent.LearnerSession) (*Session, error) {
	b, err := json.Marshal(s.Profile)
	if err != nil {
		return nil, fmt.Errorf("marshal ent profile: %w", err)
	}
	var prof profile.LearnerProfile
	if err := json.Unmarshal(b, &prof); err != nil {
		return nil, fmt.Errorf("unmarshal profile: %w", err)
	}
	return &Session{
		ID:                 s.ID,
		LearnerID:          s.LearnerID,
		PlanID:             s.PlanID,
		CurrentSlideNumber: s.CurrentSlideNumber,
		Profile:            prof,
		CreatedAt:          s.CreatedAt,
		UpdatedAt:          s.UpdatedAt,
	}, nil
}
