package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/deathnote2501/fia-v3.0-sub000/ent"
	entmodule "github.com/deathnote2501/fia-v3.0-sub000/ent/module"
	entslide "github.com/deathnote2501/fia-v3.0-sub000/ent/slide"
	entstage "github.com/deathnote2501/fia-v3.0-sub000/ent/stage"
	entsubmodule "github.com/deathnote2501/fia-v3.0-sub000/ent/submodule"
	enttrainingplan "github.com/deathnote2501/fia-v3.0-sub000/ent/trainingplan"
	"github.com/deathnote2501/fia-v3.0-sub000/internal/plan"
)

// planRepo implements PlanRepo using the ent client.
type planRepo struct {
	client *ent.Client
}

func (r *planRepo) Create(ctx context.Context, learnerID, trainingID, documentKey string, p plan.TrainingPlan) (*PlanRecord, error) {
	if err := plan.Validate(p); err != nil {
		return nil, fmt.Errorf("refusing to persist invalid plan: %w", err)
	}

	tx, err := r.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}

	rec, err := createPlanGraph(ctx, tx, learnerID, trainingID, documentKey, p)
	if err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			return nil, fmt.Errorf("%w (rollback: %v)", err, rerr)
		}
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit plan: %w", err)
	}
	return rec, nil
}

// createPlanGraph persists the plan skeleton and its materialized slides.
func createPlanGraph(ctx context.Context, tx *ent.Tx, learnerID, trainingID, documentKey string, p plan.TrainingPlan) (*PlanRecord, error) {
	tp, err := tx.TrainingPlan.Create().
		SetLearnerID(learnerID).
		SetTrainingID(trainingID).
		SetDocumentKey(documentKey).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create plan: %w", err)
	}

	// Submodule entities indexed by plan coordinates, for slide attachment.
	subs := make(map[[3]int]*ent.Submodule)

	for si, st := range p.Stages {
		stage, err := tx.Stage.Create().
			SetNumber(st.Number).
			SetTitle(st.Title).
			SetPlan(tp).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("create stage %d: %w", st.Number, err)
		}

		for mi, m := range st.Modules {
			mod, err := tx.Module.Create().
				SetName(m.Name).
				SetPosition(mi + 1).
				SetStage(stage).
				Save(ctx)
			if err != nil {
				return nil, fmt.Errorf("create module %q: %w", m.Name, err)
			}

			for smi, sm := range m.Submodules {
				sub, err := tx.Submodule.Create().
					SetName(sm.Name).
					SetPosition(smi + 1).
					SetSlideCount(sm.SlideCount).
					SetModule(mod).
					Save(ctx)
				if err != nil {
					return nil, fmt.Errorf("create submodule %q: %w", sm.Name, err)
				}
				subs[[3]int{si, mi, smi}] = sub
			}
		}
	}

	seeds := Materialize(p)
	for _, seed := range seeds {
		sub := subs[[3]int{seed.Stage, seed.Module, seed.Submodule}]
		create := tx.Slide.Create().
			SetTitle(seed.Title).
			SetSlideType(entslide.SlideType(seed.Type)).
			SetPosition(seed.Position).
			SetGlobalPosition(seed.GlobalPosition).
			SetSubmodule(sub)
		if seed.QuizScope != "" {
			create.SetQuizScope(entslide.QuizScope(seed.QuizScope))
		}
		if _, err := create.Save(ctx); err != nil {
			return nil, fmt.Errorf("create slide %d: %w", seed.GlobalPosition, err)
		}
	}

	return &PlanRecord{
		ID:          tp.ID,
		LearnerID:   tp.LearnerID,
		TrainingID:  tp.TrainingID,
		DocumentKey: tp.DocumentKey,
		CreatedAt:   tp.CreatedAt,
		SlideTotal:  len(seeds),
	}, nil
}

func (r *planRepo) Get(ctx context.Context, id uuid.UUID) (*PlanView, error) {
	tp, err := r.client.TrainingPlan.Query().
		Where(enttrainingplan.ID(id)).
		WithStages(func(q *ent.StageQuery) {
			q.Order(ent.Asc(entstage.FieldNumber)).
				WithModules(func(q *ent.ModuleQuery) {
					q.Order(ent.Asc(entmodule.FieldPosition)).
						WithSubmodules(func(q *ent.SubmoduleQuery) {
							q.Order(ent.Asc(entsubmodule.FieldPosition))
						})
				})
		}).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query plan: %w", err)
	}

	total, err := r.client.Slide.Query().
		Where(entslide.HasSubmoduleWith(
			entsubmodule.HasModuleWith(
				entmodule.HasStageWith(
					entstage.HasPlanWith(enttrainingplan.ID(id)),
				),
			),
		)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count slides: %w", err)
	}

	view := &PlanView{
		PlanRecord: PlanRecord{
			ID:          tp.ID,
			LearnerID:   tp.LearnerID,
			TrainingID:  tp.TrainingID,
			DocumentKey: tp.DocumentKey,
			CreatedAt:   tp.CreatedAt,
			SlideTotal:  total,
		},
	}
	for _, st := range tp.Edges.Stages {
		sv := StageView{Number: st.Number, Title: st.Title}
		for _, m := range st.Edges.Modules {
			mv := ModuleView{Name: m.Name}
			for _, sm := range m.Edges.Submodules {
				mv.Submodules = append(mv.Submodules, SubmoduleView{
					Name:       sm.Name,
					SlideCount: sm.SlideCount,
				})
			}
			sv.Modules = append(sv.Modules, mv)
		}
		view.Stages = append(view.Stages, sv)
	}
	return view, nil
}

func (r *planRepo) FindByLearnerTraining(ctx context.Context, learnerID, trainingID string) (*PlanRecord, error) {
	tp, err := r.client.TrainingPlan.Query().
		Where(
			enttrainingplan.LearnerID(learnerID),
			enttrainingplan.TrainingID(trainingID),
		).
		Order(ent.Desc(enttrainingplan.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query plan by learner/training: %w", err)
	}
	return &PlanRecord{
		ID:          tp.ID,
		LearnerID:   tp.LearnerID,
		TrainingID:  tp.TrainingID,
		DocumentKey: tp.DocumentKey,
		CreatedAt:   tp.CreatedAt,
	}, nil
}
