package store

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryPlanLifecycle(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	rec, err := m.PlanRepo().Create(ctx, "learner-1", "training-1", "doc-key", fixturePlan())
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, rec.ID)
	assert.Equal(t, "learner-1", rec.LearnerID)

	view, err := m.PlanRepo().Get(ctx, rec.ID)
	require.NoError(t, err)
	require.NotNil(t, view)
	require.Len(t, view.Stages, 5)
	assert.Equal(t, "Context Setting", view.Stages[0].Title)

	count, err := m.SlideRepo().Count(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, rec.SlideTotal, count)

	found, err := m.PlanRepo().FindByLearnerTraining(ctx, "learner-1", "training-1")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, rec.ID, found.ID)

	missing, err := m.PlanRepo().FindByLearnerTraining(ctx, "learner-1", "other")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestMemorySlideContent(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	rec, err := m.PlanRepo().Create(ctx, "learner-1", "training-1", "doc-key", fixturePlan())
	require.NoError(t, err)

	first, err := m.SlideRepo().ByGlobalPosition(ctx, rec.ID, 1)
	require.NoError(t, err)
	require.NotNil(t, first)
	assert.Equal(t, SlidePlan, first.Type)
	assert.False(t, first.Generated())

	require.NoError(t, m.SlideRepo().SetContent(ctx, first.ID, "# Overview"))

	again, err := m.SlideRepo().ByID(ctx, first.ID)
	require.NoError(t, err)
	require.NotNil(t, again)
	require.True(t, again.Generated())
	assert.Equal(t, "# Overview", *again.Content)

	past, err := m.SlideRepo().ByGlobalPosition(ctx, rec.ID, rec.SlideTotal+1)
	require.NoError(t, err)
	assert.Nil(t, past)

	all, err := m.SlideRepo().ListByPlan(ctx, rec.ID)
	require.NoError(t, err)
	require.Len(t, all, rec.SlideTotal)
	for i, s := range all {
		assert.Equal(t, i+1, s.GlobalPosition)
	}
}

func TestMemorySessionLifecycle(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	none, err := m.SessionRepo().Get(ctx, "learner-1")
	require.NoError(t, err)
	assert.Nil(t, none)

	sess, err := m.SessionRepo().Create(ctx, "learner-1", testStoreProfile())
	require.NoError(t, err)

	rec, err := m.PlanRepo().Create(ctx, "learner-1", "training-1", "doc-key", fixturePlan())
	require.NoError(t, err)

	require.NoError(t, m.SessionRepo().SetPlan(ctx, sess.ID, rec.ID))
	require.NoError(t, m.SessionRepo().SetCurrentSlide(ctx, sess.ID, 3))

	got, err := m.SessionRepo().Get(ctx, "learner-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.NotNil(t, got.PlanID)
	assert.Equal(t, rec.ID, *got.PlanID)
	assert.Equal(t, 3, got.CurrentSlideNumber)
}

func TestMemoryEventAggregates(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	events := []LLMRequestEventData{
		{Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "plan-gen", InputTokens: 100, OutputTokens: 50, LatencyMs: 200, Success: true},
		{Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "slide-gen", InputTokens: 40, OutputTokens: 30, LatencyMs: 100, Success: true},
		{Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "slide-gen", InputTokens: 60, OutputTokens: 20, LatencyMs: 300, Success: false, ErrorMessage: "timeout"},
	}
	for _, e := range events {
		require.NoError(t, m.EventRepo().AppendLLMRequest(ctx, e))
	}

	recent, err := m.EventRepo().QueryLLMEvents(ctx, QueryOpts{Limit: 2})
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "slide-gen", recent[0].Purpose) // newest first

	stats, err := m.EventRepo().LLMUsageByPurpose(ctx)
	require.NoError(t, err)
	require.Len(t, stats, 2)
	assert.Equal(t, "plan-gen", stats[0].Purpose)
	assert.Equal(t, 1, stats[0].Calls)
	assert.Equal(t, "slide-gen", stats[1].Purpose)
	assert.Equal(t, 2, stats[1].Calls)
	assert.Equal(t, 100, stats[1].InputTokens)
	assert.Equal(t, int64(200), stats[1].AvgLatencyMs)

	models, err := m.EventRepo().LLMUsageByModel(ctx)
	require.NoError(t, err)
	require.Len(t, models, 1)
	assert.Equal(t, 3, models[0].Calls)
	assert.Equal(t, 200, models[0].InputTokens)
}
