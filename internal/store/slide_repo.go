package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/deathnote2501/fia-v3.0-sub000/ent"
	entmodule "github.com/deathnote2501/fia-v3.0-sub000/ent/module"
	entslide "github.com/deathnote2501/fia-v3.0-sub000/ent/slide"
	entstage "github.com/deathnote2501/fia-v3.0-sub000/ent/stage"
	entsubmodule "github.com/deathnote2501/fia-v3.0-sub000/ent/submodule"
	enttrainingplan "github.com/deathnote2501/fia-v3.0-sub000/ent/trainingplan"
)

// slideRepo implements SlideRepo using the ent client.
type slideRepo struct {
	client *ent.Client
}

// planPredicate scopes a slide query to one plan through the submodule chain.
func planPredicate(planID uuid.UUID) func(*ent.SlideQuery) *ent.SlideQuery {
	return func(q *ent.SlideQuery) *ent.SlideQuery {
		return q.Where(entslide.HasSubmoduleWith(
			entsubmodule.HasModuleWith(
				entmodule.HasStageWith(
					entstage.HasPlanWith(enttrainingplan.ID(planID)),
				),
			),
		))
	}
}

// withBreadcrumb eager-loads the submodule, module, stage, and plan chain.
func withBreadcrumb(q *ent.SlideQuery) *ent.SlideQuery {
	return q.WithSubmodule(func(q *ent.SubmoduleQuery) {
		q.WithModule(func(q *ent.ModuleQuery) {
			q.WithStage(func(q *ent.StageQuery) {
				q.WithPlan()
			})
		})
	})
}

func (r *slideRepo) ByGlobalPosition(ctx context.Context, planID uuid.UUID, pos int) (*SlideView, error) {
	q := planPredicate(planID)(r.client.Slide.Query()).
		Where(entslide.GlobalPosition(pos))
	s, err := withBreadcrumb(q).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query slide at position %d: %w", pos, err)
	}
	return entSlideToView(s)
}

func (r *slideRepo) ByID(ctx context.Context, id uuid.UUID) (*SlideView, error) {
	q := r.client.Slide.Query().Where(entslide.ID(id))
	s, err := withBreadcrumb(q).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query slide %s: %w", id, err)
	}
	return entSlideToView(s)
}

func (r *slideRepo) Count(ctx context.Context, planID uuid.UUID) (int, error) {
	n, err := planPredicate(planID)(r.client.Slide.Query()).Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count slides: %w", err)
	}
	return n, nil
}

func (r *slideRepo) ListByPlan(ctx context.Context, planID uuid.UUID) ([]*SlideView, error) {
	q := planPredicate(planID)(r.client.Slide.Query()).
		Order(ent.Asc(entslide.FieldGlobalPosition))
	slides, err := withBreadcrumb(q).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list slides: %w", err)
	}

	views := make([]*SlideView, 0, len(slides))
	for _, s := range slides {
		v, err := entSlideToView(s)
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, nil
}

func (r *slideRepo) SetContent(ctx context.Context, id uuid.UUID, content string) error {
	err := r.client.Slide.UpdateOneID(id).
		SetContent(content).
		SetGeneratedAt(time.Now().UTC()).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("set slide content: %w", err)
	}
	return nil
}

// entSlideToView flattens an eager-loaded slide into the denormalized view.
func entSlideToView(s *ent.Slide) (*SlideView, error) {
	sub := s.Edges.Submodule
	if sub == nil || sub.Edges.Module == nil || sub.Edges.Module.Edges.Stage == nil ||
		sub.Edges.Module.Edges.Stage.Edges.Plan == nil {
		return nil, fmt.Errorf("slide %s: breadcrumb edges not loaded", s.ID)
	}
	mod := sub.Edges.Module
	stage := mod.Edges.Stage

	v := &SlideView{
		ID:             s.ID,
		PlanID:         stage.Edges.Plan.ID,
		Title:          s.Title,
		Type:           SlideType(s.SlideType),
		QuizScope:      QuizScope(s.QuizScope),
		Position:       s.Position,
		GlobalPosition: s.GlobalPosition,
		StageNumber:    stage.Number,
		StageTitle:     stage.Title,
		ModuleName:     mod.Name,
		SubmoduleName:  sub.Name,
		Content:        s.Content,
		GeneratedAt:    s.GeneratedAt,
	}
	return v, nil
}
