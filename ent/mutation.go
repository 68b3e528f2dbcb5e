// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/deathnote2501/fia-v3.0-sub000/ent/learnersession"
	"github.com/deathnote2501/fia-v3.0-sub000/ent/llmrequestevent"
	"github.com/deathnote2501/fia-v3.0-sub000/ent/module"
	"github.com/deathnote2501/fia-v3.0-sub000/ent/predicate"
	"github.com/deathnote2501/fia-v3.0-sub000/ent/slide"
	"github.com/deathnote2501/fia-v3.0-sub000/ent/stage"
	"github.com/deathnote2501/fia-v3.0-sub000/ent/submodule"
	"github.com/deathnote2501/fia-v3.0-sub000/ent/trainingplan"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeLLMRequestEvent = "LLMRequestEvent"
	TypeLearnerSession  = "LearnerSession"
	TypeModule          = "Module"
	TypeSlide           = "Slide"
	TypeStage           = "Stage"
	TypeSubmodule       = "Submodule"
	TypeTrainingPlan    = "TrainingPlan"
)

// LLMRequestEventMutation represents an operation that mutates the LLMRequestEvent nodes in the graph.
type LLMRequestEventMutation struct {
	config
	op               Op
	typ              string
	id               *int
	sequence         *int64
	addsequence      *int64
	timestamp        *time.Time
	provider         *string
	model            *string
	purpose          *string
	input_tokens     *int
	addinput_tokens  *int
	output_tokens    *int
	addoutput_tokens *int
	latency_ms       *int64
	addlatency_ms    *int64
	success          *bool
	error_message    *string
	request_body     *string
	response_body    *string
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*LLMRequestEvent, error)
	predicates       []predicate.LLMRequestEvent
}

var _ ent.Mutation = (*LLMRequestEventMutation)(nil)

// llmrequesteventOption allows management of the mutation configuration using functional options.
type llmrequesteventOption func(*LLMRequestEventMutation)

// newLLMRequestEventMutation creates new mutation for the LLMRequestEvent entity.
func newLLMRequestEventMutation(c config, op Op, opts ...llmrequesteventOption) *LLMRequestEventMutation {
	m := &LLMRequestEventMutation{
		config:        c,
		op:            op,
		typ:           TypeLLMRequestEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLLMRequestEventID sets the ID field of the mutation.
func withLLMRequestEventID(id int) llmrequesteventOption {
	return func(m *LLMRequestEventMutation) {
		var (
			err   error
			once  sync.Once
			value *LLMRequestEvent
		)
		m.oldValue = func(ctx context.Context) (*LLMRequestEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LLMRequestEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLLMRequestEvent sets the old LLMRequestEvent of the mutation.
func withLLMRequestEvent(node *LLMRequestEvent) llmrequesteventOption {
	return func(m *LLMRequestEventMutation) {
		m.oldValue = func(context.Context) (*LLMRequestEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LLMRequestEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LLMRequestEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LLMRequestEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LLMRequestEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LLMRequestEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *LLMRequestEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *LLMRequestEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *LLMRequestEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *LLMRequestEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *LLMRequestEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *LLMRequestEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *LLMRequestEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *LLMRequestEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetProvider sets the "provider" field.
func (m *LLMRequestEventMutation) SetProvider(s string) {
	m.provider = &s
}

// Provider returns the value of the "provider" field in the mutation.
func (m *LLMRequestEventMutation) Provider() (r string, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldProvider(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ResetProvider resets all changes to the "provider" field.
func (m *LLMRequestEventMutation) ResetProvider() {
	m.provider = nil
}

// SetModel sets the "model" field.
func (m *LLMRequestEventMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *LLMRequestEventMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ResetModel resets all changes to the "model" field.
func (m *LLMRequestEventMutation) ResetModel() {
	m.model = nil
}

// SetPurpose sets the "purpose" field.
func (m *LLMRequestEventMutation) SetPurpose(s string) {
	m.purpose = &s
}

// Purpose returns the value of the "purpose" field in the mutation.
func (m *LLMRequestEventMutation) Purpose() (r string, exists bool) {
	v := m.purpose
	if v == nil {
		return
	}
	return *v, true
}

// OldPurpose returns the old "purpose" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldPurpose(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPurpose is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPurpose requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPurpose: %w", err)
	}
	return oldValue.Purpose, nil
}

// ResetPurpose resets all changes to the "purpose" field.
func (m *LLMRequestEventMutation) ResetPurpose() {
	m.purpose = nil
}

// SetInputTokens sets the "input_tokens" field.
func (m *LLMRequestEventMutation) SetInputTokens(i int) {
	m.input_tokens = &i
	m.addinput_tokens = nil
}

// InputTokens returns the value of the "input_tokens" field in the mutation.
func (m *LLMRequestEventMutation) InputTokens() (r int, exists bool) {
	v := m.input_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldInputTokens returns the old "input_tokens" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldInputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputTokens: %w", err)
	}
	return oldValue.InputTokens, nil
}

// AddInputTokens adds i to the "input_tokens" field.
func (m *LLMRequestEventMutation) AddInputTokens(i int) {
	if m.addinput_tokens != nil {
		*m.addinput_tokens += i
	} else {
		m.addinput_tokens = &i
	}
}

// AddedInputTokens returns the value that was added to the "input_tokens" field in this mutation.
func (m *LLMRequestEventMutation) AddedInputTokens() (r int, exists bool) {
	v := m.addinput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetInputTokens resets all changes to the "input_tokens" field.
func (m *LLMRequestEventMutation) ResetInputTokens() {
	m.input_tokens = nil
	m.addinput_tokens = nil
}

// SetOutputTokens sets the "output_tokens" field.
func (m *LLMRequestEventMutation) SetOutputTokens(i int) {
	m.output_tokens = &i
	m.addoutput_tokens = nil
}

// OutputTokens returns the value of the "output_tokens" field in the mutation.
func (m *LLMRequestEventMutation) OutputTokens() (r int, exists bool) {
	v := m.output_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputTokens returns the old "output_tokens" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldOutputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputTokens: %w", err)
	}
	return oldValue.OutputTokens, nil
}

// AddOutputTokens adds i to the "output_tokens" field.
func (m *LLMRequestEventMutation) AddOutputTokens(i int) {
	if m.addoutput_tokens != nil {
		*m.addoutput_tokens += i
	} else {
		m.addoutput_tokens = &i
	}
}

// AddedOutputTokens returns the value that was added to the "output_tokens" field in this mutation.
func (m *LLMRequestEventMutation) AddedOutputTokens() (r int, exists bool) {
	v := m.addoutput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetOutputTokens resets all changes to the "output_tokens" field.
func (m *LLMRequestEventMutation) ResetOutputTokens() {
	m.output_tokens = nil
	m.addoutput_tokens = nil
}

// SetLatencyMs sets the "latency_ms" field.
func (m *LLMRequestEventMutation) SetLatencyMs(i int64) {
	m.latency_ms = &i
	m.addlatency_ms = nil
}

// LatencyMs returns the value of the "latency_ms" field in the mutation.
func (m *LLMRequestEventMutation) LatencyMs() (r int64, exists bool) {
	v := m.latency_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldLatencyMs returns the old "latency_ms" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldLatencyMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLatencyMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLatencyMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLatencyMs: %w", err)
	}
	return oldValue.LatencyMs, nil
}

// AddLatencyMs adds i to the "latency_ms" field.
func (m *LLMRequestEventMutation) AddLatencyMs(i int64) {
	if m.addlatency_ms != nil {
		*m.addlatency_ms += i
	} else {
		m.addlatency_ms = &i
	}
}

// AddedLatencyMs returns the value that was added to the "latency_ms" field in this mutation.
func (m *LLMRequestEventMutation) AddedLatencyMs() (r int64, exists bool) {
	v := m.addlatency_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetLatencyMs resets all changes to the "latency_ms" field.
func (m *LLMRequestEventMutation) ResetLatencyMs() {
	m.latency_ms = nil
	m.addlatency_ms = nil
}

// SetSuccess sets the "success" field.
func (m *LLMRequestEventMutation) SetSuccess(b bool) {
	m.success = &b
}

// Success returns the value of the "success" field in the mutation.
func (m *LLMRequestEventMutation) Success() (r bool, exists bool) {
	v := m.success
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccess returns the old "success" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldSuccess(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccess is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccess requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccess: %w", err)
	}
	return oldValue.Success, nil
}

// ResetSuccess resets all changes to the "success" field.
func (m *LLMRequestEventMutation) ResetSuccess() {
	m.success = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *LLMRequestEventMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *LLMRequestEventMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldErrorMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *LLMRequestEventMutation) ResetErrorMessage() {
	m.error_message = nil
}

// SetRequestBody sets the "request_body" field.
func (m *LLMRequestEventMutation) SetRequestBody(s string) {
	m.request_body = &s
}

// RequestBody returns the value of the "request_body" field in the mutation.
func (m *LLMRequestEventMutation) RequestBody() (r string, exists bool) {
	v := m.request_body
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestBody returns the old "request_body" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldRequestBody(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestBody is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestBody requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestBody: %w", err)
	}
	return oldValue.RequestBody, nil
}

// ResetRequestBody resets all changes to the "request_body" field.
func (m *LLMRequestEventMutation) ResetRequestBody() {
	m.request_body = nil
}

// SetResponseBody sets the "response_body" field.
func (m *LLMRequestEventMutation) SetResponseBody(s string) {
	m.response_body = &s
}

// ResponseBody returns the value of the "response_body" field in the mutation.
func (m *LLMRequestEventMutation) ResponseBody() (r string, exists bool) {
	v := m.response_body
	if v == nil {
		return
	}
	return *v, true
}

// OldResponseBody returns the old "response_body" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldResponseBody(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResponseBody is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResponseBody requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResponseBody: %w", err)
	}
	return oldValue.ResponseBody, nil
}

// ResetResponseBody resets all changes to the "response_body" field.
func (m *LLMRequestEventMutation) ResetResponseBody() {
	m.response_body = nil
}

// Where appends a list predicates to the LLMRequestEventMutation builder.
func (m *LLMRequestEventMutation) Where(ps ...predicate.LLMRequestEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LLMRequestEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LLMRequestEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LLMRequestEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LLMRequestEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LLMRequestEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LLMRequestEvent).
func (m *LLMRequestEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LLMRequestEventMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.sequence != nil {
		fields = append(fields, llmrequestevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, llmrequestevent.FieldTimestamp)
	}
	if m.provider != nil {
		fields = append(fields, llmrequestevent.FieldProvider)
	}
	if m.model != nil {
		fields = append(fields, llmrequestevent.FieldModel)
	}
	if m.purpose != nil {
		fields = append(fields, llmrequestevent.FieldPurpose)
	}
	if m.input_tokens != nil {
		fields = append(fields, llmrequestevent.FieldInputTokens)
	}
	if m.output_tokens != nil {
		fields = append(fields, llmrequestevent.FieldOutputTokens)
	}
	if m.latency_ms != nil {
		fields = append(fields, llmrequestevent.FieldLatencyMs)
	}
	if m.success != nil {
		fields = append(fields, llmrequestevent.FieldSuccess)
	}
	if m.error_message != nil {
		fields = append(fields, llmrequestevent.FieldErrorMessage)
	}
	if m.request_body != nil {
		fields = append(fields, llmrequestevent.FieldRequestBody)
	}
	if m.response_body != nil {
		fields = append(fields, llmrequestevent.FieldResponseBody)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LLMRequestEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case llmrequestevent.FieldSequence:
		return m.Sequence()
	case llmrequestevent.FieldTimestamp:
		return m.Timestamp()
	case llmrequestevent.FieldProvider:
		return m.Provider()
	case llmrequestevent.FieldModel:
		return m.Model()
	case llmrequestevent.FieldPurpose:
		return m.Purpose()
	case llmrequestevent.FieldInputTokens:
		return m.InputTokens()
	case llmrequestevent.FieldOutputTokens:
		return m.OutputTokens()
	case llmrequestevent.FieldLatencyMs:
		return m.LatencyMs()
	case llmrequestevent.FieldSuccess:
		return m.Success()
	case llmrequestevent.FieldErrorMessage:
		return m.ErrorMessage()
	case llmrequestevent.FieldRequestBody:
		return m.RequestBody()
	case llmrequestevent.FieldResponseBody:
		return m.ResponseBody()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LLMRequestEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case llmrequestevent.FieldSequence:
		return m.OldSequence(ctx)
	case llmrequestevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case llmrequestevent.FieldProvider:
		return m.OldProvider(ctx)
	case llmrequestevent.FieldModel:
		return m.OldModel(ctx)
	case llmrequestevent.FieldPurpose:
		return m.OldPurpose(ctx)
	case llmrequestevent.FieldInputTokens:
		return m.OldInputTokens(ctx)
	case llmrequestevent.FieldOutputTokens:
		return m.OldOutputTokens(ctx)
	case llmrequestevent.FieldLatencyMs:
		return m.OldLatencyMs(ctx)
	case llmrequestevent.FieldSuccess:
		return m.OldSuccess(ctx)
	case llmrequestevent.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case llmrequestevent.FieldRequestBody:
		return m.OldRequestBody(ctx)
	case llmrequestevent.FieldResponseBody:
		return m.OldResponseBody(ctx)
	}
	return nil, fmt.Errorf("unknown LLMRequestEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LLMRequestEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case llmrequestevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case llmrequestevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case llmrequestevent.FieldProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case llmrequestevent.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case llmrequestevent.FieldPurpose:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPurpose(v)
		return nil
	case llmrequestevent.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputTokens(v)
		return nil
	case llmrequestevent.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputTokens(v)
		return nil
	case llmrequestevent.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLatencyMs(v)
		return nil
	case llmrequestevent.FieldSuccess:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccess(v)
		return nil
	case llmrequestevent.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case llmrequestevent.FieldRequestBody:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestBody(v)
		return nil
	case llmrequestevent.FieldResponseBody:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResponseBody(v)
		return nil
	}
	return fmt.Errorf("unknown LLMRequestEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LLMRequestEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, llmrequestevent.FieldSequence)
	}
	if m.addinput_tokens != nil {
		fields = append(fields, llmrequestevent.FieldInputTokens)
	}
	if m.addoutput_tokens != nil {
		fields = append(fields, llmrequestevent.FieldOutputTokens)
	}
	if m.addlatency_ms != nil {
		fields = append(fields, llmrequestevent.FieldLatencyMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LLMRequestEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case llmrequestevent.FieldSequence:
		return m.AddedSequence()
	case llmrequestevent.FieldInputTokens:
		return m.AddedInputTokens()
	case llmrequestevent.FieldOutputTokens:
		return m.AddedOutputTokens()
	case llmrequestevent.FieldLatencyMs:
		return m.AddedLatencyMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LLMRequestEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case llmrequestevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case llmrequestevent.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInputTokens(v)
		return nil
	case llmrequestevent.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOutputTokens(v)
		return nil
	case llmrequestevent.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLatencyMs(v)
		return nil
	}
	return fmt.Errorf("unknown LLMRequestEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LLMRequestEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LLMRequestEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LLMRequestEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown LLMRequestEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LLMRequestEventMutation) ResetField(name string) error {
	switch name {
	case llmrequestevent.FieldSequence:
		m.ResetSequence()
		return nil
	case llmrequestevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case llmrequestevent.FieldProvider:
		m.ResetProvider()
		return nil
	case llmrequestevent.FieldModel:
		m.ResetModel()
		return nil
	case llmrequestevent.FieldPurpose:
		m.ResetPurpose()
		return nil
	case llmrequestevent.FieldInputTokens:
		m.ResetInputTokens()
		return nil
	case llmrequestevent.FieldOutputTokens:
		m.ResetOutputTokens()
		return nil
	case llmrequestevent.FieldLatencyMs:
		m.ResetLatencyMs()
		return nil
	case llmrequestevent.FieldSuccess:
		m.ResetSuccess()
		return nil
	case llmrequestevent.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case llmrequestevent.FieldRequestBody:
		m.ResetRequestBody()
		return nil
	case llmrequestevent.FieldResponseBody:
		m.ResetResponseBody()
		return nil
	}
	return fmt.Errorf("unknown LLMRequestEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LLMRequestEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LLMRequestEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LLMRequestEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LLMRequestEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LLMRequestEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LLMRequestEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LLMRequestEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown LLMRequestEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LLMRequestEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown LLMRequestEvent edge %s", name)
}

// LearnerSessionMutation represents an operation that mutates the LearnerSession nodes in the graph.
type LearnerSessionMutation struct {
	config
	op                      Op
	typ                     string
	id                      *uuid.UUID
	learner_id              *string
	plan_id                 *uuid.UUID
	current_slide_number    *int
	addcurrent_slide_number *int
	profile                 *map[string]interface{}
	created_at              *time.Time
	updated_at              *time.Time
	clearedFields           map[string]struct{}
	done                    bool
	oldValue                func(context.Context) (*LearnerSession, error)
	predicates              []predicate.LearnerSession
}

var _ ent.Mutation = (*LearnerSessionMutation)(nil)

// learnersessionOption allows management of the mutation configuration using functional options.
type learnersessionOption func(*LearnerSessionMutation)

// newLearnerSessionMutation creates new mutation for the LearnerSession entity.
func newLearnerSessionMutation(c config, op Op, opts ...learnersessionOption) *LearnerSessionMutation {
	m := &LearnerSessionMutation{
		config:        c,
		op:            op,
		typ:           TypeLearnerSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLearnerSessionID sets the ID field of the mutation.
func withLearnerSessionID(id uuid.UUID) learnersessionOption {
	return func(m *LearnerSessionMutation) {
		var (
			err   error
			once  sync.Once
			value *LearnerSession
		)
		m.oldValue = func(ctx context.Context) (*LearnerSession, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LearnerSession.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLearnerSession sets the old LearnerSession of the mutation.
func withLearnerSession(node *LearnerSession) learnersessionOption {
	return func(m *LearnerSessionMutation) {
		m.oldValue = func(context.Context) (*LearnerSession, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LearnerSessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LearnerSessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of LearnerSession entities.
func (m *LearnerSessionMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LearnerSessionMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LearnerSessionMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LearnerSession.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetLearnerID sets the "learner_id" field.
func (m *LearnerSessionMutation) SetLearnerID(s string) {
	m.learner_id = &s
}

// LearnerID returns the value of the "learner_id" field in the mutation.
func (m *LearnerSessionMutation) LearnerID() (r string, exists bool) {
	v := m.learner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLearnerID returns the old "learner_id" field's value of the LearnerSession entity.
// If the LearnerSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnerSessionMutation) OldLearnerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLearnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLearnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLearnerID: %w", err)
	}
	return oldValue.LearnerID, nil
}

// ResetLearnerID resets all changes to the "learner_id" field.
func (m *LearnerSessionMutation) ResetLearnerID() {
	m.learner_id = nil
}

// SetPlanID sets the "plan_id" field.
func (m *LearnerSessionMutation) SetPlanID(u uuid.UUID) {
	m.plan_id = &u
}

// PlanID returns the value of the "plan_id" field in the mutation.
func (m *LearnerSessionMutation) PlanID() (r uuid.UUID, exists bool) {
	v := m.plan_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPlanID returns the old "plan_id" field's value of the LearnerSession entity.
// If the LearnerSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnerSessionMutation) OldPlanID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlanID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlanID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlanID: %w", err)
	}
	return oldValue.PlanID, nil
}

// ClearPlanID clears the value of the "plan_id" field.
func (m *LearnerSessionMutation) ClearPlanID() {
	m.plan_id = nil
	m.clearedFields[learnersession.FieldPlanID] = struct{}{}
}

// PlanIDCleared returns if the "plan_id" field was cleared in this mutation.
func (m *LearnerSessionMutation) PlanIDCleared() bool {
	_, ok := m.clearedFields[learnersession.FieldPlanID]
	return ok
}

// ResetPlanID resets all changes to the "plan_id" field.
func (m *LearnerSessionMutation) ResetPlanID() {
	m.plan_id = nil
	delete(m.clearedFields, learnersession.FieldPlanID)
}

// SetCurrentSlideNumber sets the "current_slide_number" field.
func (m *LearnerSessionMutation) SetCurrentSlideNumber(i int) {
	m.current_slide_number = &i
	m.addcurrent_slide_number = nil
}

// CurrentSlideNumber returns the value of the "current_slide_number" field in the mutation.
func (m *LearnerSessionMutation) CurrentSlideNumber() (r int, exists bool) {
	v := m.current_slide_number
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentSlideNumber returns the old "current_slide_number" field's value of the LearnerSession entity.
// If the LearnerSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnerSessionMutation) OldCurrentSlideNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentSlideNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentSlideNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentSlideNumber: %w", err)
	}
	return oldValue.CurrentSlideNumber, nil
}

// AddCurrentSlideNumber adds i to the "current_slide_number" field.
func (m *LearnerSessionMutation) AddCurrentSlideNumber(i int) {
	if m.addcurrent_slide_number != nil {
		*m.addcurrent_slide_number += i
	} else {
		m.addcurrent_slide_number = &i
	}
}

// AddedCurrentSlideNumber returns the value that was added to the "current_slide_number" field in this mutation.
func (m *LearnerSessionMutation) AddedCurrentSlideNumber() (r int, exists bool) {
	v := m.addcurrent_slide_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetCurrentSlideNumber resets all changes to the "current_slide_number" field.
func (m *LearnerSessionMutation) ResetCurrentSlideNumber() {
	m.current_slide_number = nil
	m.addcurrent_slide_number = nil
}

// SetProfile sets the "profile" field.
func (m *LearnerSessionMutation) SetProfile(value map[string]interface{}) {
	m.profile = &value
}

// Profile returns the value of the "profile" field in the mutation.
func (m *LearnerSessionMutation) Profile() (r map[string]interface{}, exists bool) {
	v := m.profile
	if v == nil {
		return
	}
	return *v, true
}

// OldProfile returns the old "profile" field's value of the LearnerSession entity.
// If the LearnerSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnerSessionMutation) OldProfile(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProfile is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProfile requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProfile: %w", err)
	}
	return oldValue.Profile, nil
}

// ResetProfile resets all changes to the "profile" field.
func (m *LearnerSessionMutation) ResetProfile() {
	m.profile = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *LearnerSessionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *LearnerSessionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the LearnerSession entity.
// If the LearnerSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnerSessionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *LearnerSessionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *LearnerSessionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *LearnerSessionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the LearnerSession entity.
// If the LearnerSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnerSessionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *LearnerSessionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the LearnerSessionMutation builder.
func (m *LearnerSessionMutation) Where(ps ...predicate.LearnerSession) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LearnerSessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LearnerSessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LearnerSession, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LearnerSessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LearnerSessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LearnerSession).
func (m *LearnerSessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LearnerSessionMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.learner_id != nil {
		fields = append(fields, learnersession.FieldLearnerID)
	}
	if m.plan_id != nil {
		fields = append(fields, learnersession.FieldPlanID)
	}
	if m.current_slide_number != nil {
		fields = append(fields, learnersession.FieldCurrentSlideNumber)
	}
	if m.profile != nil {
		fields = append(fields, learnersession.FieldProfile)
	}
	if m.created_at != nil {
		fields = append(fields, learnersession.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, learnersession.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LearnerSessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case learnersession.FieldLearnerID:
		return m.LearnerID()
	case learnersession.FieldPlanID:
		return m.PlanID()
	case learnersession.FieldCurrentSlideNumber:
		return m.CurrentSlideNumber()
	case learnersession.FieldProfile:
		return m.Profile()
	case learnersession.FieldCreatedAt:
		return m.CreatedAt()
	case learnersession.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LearnerSessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case learnersession.FieldLearnerID:
		return m.OldLearnerID(ctx)
	case learnersession.FieldPlanID:
		return m.OldPlanID(ctx)
	case learnersession.FieldCurrentSlideNumber:
		return m.OldCurrentSlideNumber(ctx)
	case learnersession.FieldProfile:
		return m.OldProfile(ctx)
	case learnersession.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case learnersession.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown LearnerSession field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LearnerSessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case learnersession.FieldLearnerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLearnerID(v)
		return nil
	case learnersession.FieldPlanID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlanID(v)
		return nil
	case learnersession.FieldCurrentSlideNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentSlideNumber(v)
		return nil
	case learnersession.FieldProfile:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProfile(v)
		return nil
	case learnersession.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case learnersession.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown LearnerSession field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LearnerSessionMutation) AddedFields() []string {
	var fields []string
	if m.addcurrent_slide_number != nil {
		fields = append(fields, learnersession.FieldCurrentSlideNumber)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LearnerSessionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case learnersession.FieldCurrentSlideNumber:
		return m.AddedCurrentSlideNumber()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LearnerSessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case learnersession.FieldCurrentSlideNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCurrentSlideNumber(v)
		return nil
	}
	return fmt.Errorf("unknown LearnerSession numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LearnerSessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(learnersession.FieldPlanID) {
		fields = append(fields, learnersession.FieldPlanID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LearnerSessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LearnerSessionMutation) ClearField(name string) error {
	switch name {
	case learnersession.FieldPlanID:
		m.ClearPlanID()
		return nil
	}
	return fmt.Errorf("unknown LearnerSession nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LearnerSessionMutation) ResetField(name string) error {
	switch name {
	case learnersession.FieldLearnerID:
		m.ResetLearnerID()
		return nil
	case learnersession.FieldPlanID:
		m.ResetPlanID()
		return nil
	case learnersession.FieldCurrentSlideNumber:
		m.ResetCurrentSlideNumber()
		return nil
	case learnersession.FieldProfile:
		m.ResetProfile()
		return nil
	case learnersession.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case learnersession.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown LearnerSession field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LearnerSessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LearnerSessionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LearnerSessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LearnerSessionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LearnerSessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LearnerSessionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LearnerSessionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown LearnerSession unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LearnerSessionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown LearnerSession edge %s", name)
}

// ModuleMutation represents an operation that mutates the Module nodes in the graph.
type ModuleMutation struct {
	config
	op                Op
	typ               string
	id                *uuid.UUID
	name              *string
	position          *int
	addposition       *int
	clearedFields     map[string]struct{}
	stage             *uuid.UUID
	clearedstage      bool
	submodules        map[uuid.UUID]struct{}
	removedsubmodules map[uuid.UUID]struct{}
	clearedsubmodules bool
	done              bool
	oldValue          func(context.Context) (*Module, error)
	predicates        []predicate.Module
}

var _ ent.Mutation = (*ModuleMutation)(nil)

// moduleOption allows management of the mutation configuration using functional options.
type moduleOption func(*ModuleMutation)

// newModuleMutation creates new mutation for the Module entity.
func newModuleMutation(c config, op Op, opts ...moduleOption) *ModuleMutation {
	m := &ModuleMutation{
		config:        c,
		op:            op,
		typ:           TypeModule,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withModuleID sets the ID field of the mutation.
func withModuleID(id uuid.UUID) moduleOption {
	return func(m *ModuleMutation) {
		var (
			err   error
			once  sync.Once
			value *Module
		)
		m.oldValue = func(ctx context.Context) (*Module, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Module.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withModule sets the old Module of the mutation.
func withModule(node *Module) moduleOption {
	return func(m *ModuleMutation) {
		m.oldValue = func(context.Context) (*Module, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ModuleMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ModuleMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Module entities.
func (m *ModuleMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ModuleMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ModuleMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Module.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *ModuleMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ModuleMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Module entity.
// If the Module object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModuleMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ModuleMutation) ResetName() {
	m.name = nil
}

// SetPosition sets the "position" field.
func (m *ModuleMutation) SetPosition(i int) {
	m.position = &i
	m.addposition = nil
}

// Position returns the value of the "position" field in the mutation.
func (m *ModuleMutation) Position() (r int, exists bool) {
	v := m.position
	if v == nil {
		return
	}
	return *v, true
}

// OldPosition returns the old "position" field's value of the Module entity.
// If the Module object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModuleMutation) OldPosition(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPosition is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPosition requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPosition: %w", err)
	}
	return oldValue.Position, nil
}

// AddPosition adds i to the "position" field.
func (m *ModuleMutation) AddPosition(i int) {
	if m.addposition != nil {
		*m.addposition += i
	} else {
		m.addposition = &i
	}
}

// AddedPosition returns the value that was added to the "position" field in this mutation.
func (m *ModuleMutation) AddedPosition() (r int, exists bool) {
	v := m.addposition
	if v == nil {
		return
	}
	return *v, true
}

// ResetPosition resets all changes to the "position" field.
func (m *ModuleMutation) ResetPosition() {
	m.position = nil
	m.addposition = nil
}

// SetStageID sets the "stage" edge to the Stage entity by id.
func (m *ModuleMutation) SetStageID(id uuid.UUID) {
	m.stage = &id
}

// ClearStage clears the "stage" edge to the Stage entity.
func (m *ModuleMutation) ClearStage() {
	m.clearedstage = true
}

// StageCleared reports if the "stage" edge to the Stage entity was cleared.
func (m *ModuleMutation) StageCleared() bool {
	return m.clearedstage
}

// StageID returns the "stage" edge ID in the mutation.
func (m *ModuleMutation) StageID() (id uuid.UUID, exists bool) {
	if m.stage != nil {
		return *m.stage, true
	}
	return
}

// StageIDs returns the "stage" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// StageID instead. It exists only for internal usage by the builders.
func (m *ModuleMutation) StageIDs() (ids []uuid.UUID) {
	if id := m.stage; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetStage resets all changes to the "stage" edge.
func (m *ModuleMutation) ResetStage() {
	m.stage = nil
	m.clearedstage = false
}

// AddSubmoduleIDs adds the "submodules" edge to the Submodule entity by ids.
func (m *ModuleMutation) AddSubmoduleIDs(ids ...uuid.UUID) {
	if m.submodules == nil {
		m.submodules = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.submodules[ids[i]] = struct{}{}
	}
}

// ClearSubmodules clears the "submodules" edge to the Submodule entity.
func (m *ModuleMutation) ClearSubmodules() {
	m.clearedsubmodules = true
}

// SubmodulesCleared reports if the "submodules" edge to the Submodule entity was cleared.
func (m *ModuleMutation) SubmodulesCleared() bool {
	return m.clearedsubmodules
}

// RemoveSubmoduleIDs removes the "submodules" edge to the Submodule entity by IDs.
func (m *ModuleMutation) RemoveSubmoduleIDs(ids ...uuid.UUID) {
	if m.removedsubmodules == nil {
		m.removedsubmodules = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.submodules, ids[i])
		m.removedsubmodules[ids[i]] = struct{}{}
	}
}

// RemovedSubmodules returns the removed IDs of the "submodules" edge to the Submodule entity.
func (m *ModuleMutation) RemovedSubmodulesIDs() (ids []uuid.UUID) {
	for id := range m.removedsubmodules {
		ids = append(ids, id)
	}
	return
}

// SubmodulesIDs returns the "submodules" edge IDs in the mutation.
func (m *ModuleMutation) SubmodulesIDs() (ids []uuid.UUID) {
	for id := range m.submodules {
		ids = append(ids, id)
	}
	return
}

// ResetSubmodules resets all changes to the "submodules" edge.
func (m *ModuleMutation) ResetSubmodules() {
	m.submodules = nil
	m.clearedsubmodules = false
	m.removedsubmodules = nil
}

// Where appends a list predicates to the ModuleMutation builder.
func (m *ModuleMutation) Where(ps ...predicate.Module) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ModuleMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ModuleMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Module, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ModuleMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ModuleMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Module).
func (m *ModuleMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ModuleMutation) Fields() []string {
	fields := make([]string, 0, 2)
	if m.name != nil {
		fields = append(fields, module.FieldName)
	}
	if m.position != nil {
		fields = append(fields, module.FieldPosition)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ModuleMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case module.FieldName:
		return m.Name()
	case module.FieldPosition:
		return m.Position()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ModuleMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case module.FieldName:
		return m.OldName(ctx)
	case module.FieldPosition:
		return m.OldPosition(ctx)
	}
	return nil, fmt.Errorf("unknown Module field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ModuleMutation) SetField(name string, value ent.Value) error {
	switch name {
	case module.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case module.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPosition(v)
		return nil
	}
	return fmt.Errorf("unknown Module field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ModuleMutation) AddedFields() []string {
	var fields []string
	if m.addposition != nil {
		fields = append(fields, module.FieldPosition)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ModuleMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case module.FieldPosition:
		return m.AddedPosition()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ModuleMutation) AddField(name string, value ent.Value) error {
	switch name {
	case module.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPosition(v)
		return nil
	}
	return fmt.Errorf("unknown Module numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ModuleMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ModuleMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ModuleMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Module nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ModuleMutation) ResetField(name string) error {
	switch name {
	case module.FieldName:
		m.ResetName()
		return nil
	case module.FieldPosition:
		m.ResetPosition()
		return nil
	}
	return fmt.Errorf("unknown Module field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ModuleMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.stage != nil {
		edges = append(edges, module.EdgeStage)
	}
	if m.submodules != nil {
		edges = append(edges, module.EdgeSubmodules)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ModuleMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case module.EdgeStage:
		if id := m.stage; id != nil {
			return []ent.Value{*id}
		}
	case module.EdgeSubmodules:
		ids := make([]ent.Value, 0, len(m.submodules))
		for id := range m.submodules {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ModuleMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedsubmodules != nil {
		edges = append(edges, module.EdgeSubmodules)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ModuleMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case module.EdgeSubmodules:
		ids := make([]ent.Value, 0, len(m.removedsubmodules))
		for id := range m.removedsubmodules {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ModuleMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedstage {
		edges = append(edges, module.EdgeStage)
	}
	if m.clearedsubmodules {
		edges = append(edges, module.EdgeSubmodules)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ModuleMutation) EdgeCleared(name string) bool {
	switch name {
	case module.EdgeStage:
		return m.clearedstage
	case module.EdgeSubmodules:
		return m.clearedsubmodules
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ModuleMutation) ClearEdge(name string) error {
	switch name {
	case module.EdgeStage:
		m.ClearStage()
		return nil
	}
	return fmt.Errorf("unknown Module unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ModuleMutation) ResetEdge(name string) error {
	switch name {
	case module.EdgeStage:
		m.ResetStage()
		return nil
	case module.EdgeSubmodules:
		m.ResetSubmodules()
		return nil
	}
	return fmt.Errorf("unknown Module edge %s", name)
}

// SlideMutation represents an operation that mutates the Slide nodes in the graph.
type SlideMutation struct {
	config
	op                 Op
	typ                string
	id                 *uuid.UUID
	title              *string
	slide_type         *slide.SlideType
	quiz_scope         *slide.QuizScope
	position           *int
	addposition        *int
	global_position    *int
	addglobal_position *int
	content            *string
	generated_at       *time.Time
	clearedFields      map[string]struct{}
	submodule          *uuid.UUID
	clearedsubmodule   bool
	done               bool
	oldValue           func(context.Context) (*Slide, error)
	predicates         []predicate.Slide
}

var _ ent.Mutation = (*SlideMutation)(nil)

// slideOption allows management of the mutation configuration using functional options.
type slideOption func(*SlideMutation)

// newSlideMutation creates new mutation for the Slide entity.
func newSlideMutation(c config, op Op, opts ...slideOption) *SlideMutation {
	m := &SlideMutation{
		config:        c,
		op:            op,
		typ:           TypeSlide,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSlideID sets the ID field of the mutation.
func withSlideID(id uuid.UUID) slideOption {
	return func(m *SlideMutation) {
		var (
			err   error
			once  sync.Once
			value *Slide
		)
		m.oldValue = func(ctx context.Context) (*Slide, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Slide.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSlide sets the old Slide of the mutation.
func withSlide(node *Slide) slideOption {
	return func(m *SlideMutation) {
		m.oldValue = func(context.Context) (*Slide, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SlideMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SlideMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Slide entities.
func (m *SlideMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SlideMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SlideMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Slide.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTitle sets the "title" field.
func (m *SlideMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *SlideMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Slide entity.
// If the Slide object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SlideMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *SlideMutation) ResetTitle() {
	m.title = nil
}

// SetSlideType sets the "slide_type" field.
func (m *SlideMutation) SetSlideType(st slide.SlideType) {
	m.slide_type = &st
}

// SlideType returns the value of the "slide_type" field in the mutation.
func (m *SlideMutation) SlideType() (r slide.SlideType, exists bool) {
	v := m.slide_type
	if v == nil {
		return
	}
	return *v, true
}

// OldSlideType returns the old "slide_type" field's value of the Slide entity.
// If the Slide object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SlideMutation) OldSlideType(ctx context.Context) (v slide.SlideType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSlideType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSlideType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSlideType: %w", err)
	}
	return oldValue.SlideType, nil
}

// ResetSlideType resets all changes to the "slide_type" field.
func (m *SlideMutation) ResetSlideType() {
	m.slide_type = nil
}

// SetQuizScope sets the "quiz_scope" field.
func (m *SlideMutation) SetQuizScope(ss slide.QuizScope) {
	m.quiz_scope = &ss
}

// QuizScope returns the value of the "quiz_scope" field in the mutation.
func (m *SlideMutation) QuizScope() (r slide.QuizScope, exists bool) {
	v := m.quiz_scope
	if v == nil {
		return
	}
	return *v, true
}

// OldQuizScope returns the old "quiz_scope" field's value of the Slide entity.
// If the Slide object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SlideMutation) OldQuizScope(ctx context.Context) (v slide.QuizScope, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuizScope is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuizScope requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuizScope: %w", err)
	}
	return oldValue.QuizScope, nil
}

// ClearQuizScope clears the value of the "quiz_scope" field.
func (m *SlideMutation) ClearQuizScope() {
	m.quiz_scope = nil
	m.clearedFields[slide.FieldQuizScope] = struct{}{}
}

// QuizScopeCleared returns if the "quiz_scope" field was cleared in this mutation.
func (m *SlideMutation) QuizScopeCleared() bool {
	_, ok := m.clearedFields[slide.FieldQuizScope]
	return ok
}

// ResetQuizScope resets all changes to the "quiz_scope" field.
func (m *SlideMutation) ResetQuizScope() {
	m.quiz_scope = nil
	delete(m.clearedFields, slide.FieldQuizScope)
}

// SetPosition sets the "position" field.
func (m *SlideMutation) SetPosition(i int) {
	m.position = &i
	m.addposition = nil
}

// Position returns the value of the "position" field in the mutation.
func (m *SlideMutation) Position() (r int, exists bool) {
	v := m.position
	if v == nil {
		return
	}
	return *v, true
}

// OldPosition returns the old "position" field's value of the Slide entity.
// If the Slide object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SlideMutation) OldPosition(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPosition is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPosition requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPosition: %w", err)
	}
	return oldValue.Position, nil
}

// AddPosition adds i to the "position" field.
func (m *SlideMutation) AddPosition(i int) {
	if m.addposition != nil {
		*m.addposition += i
	} else {
		m.addposition = &i
	}
}

// AddedPosition returns the value that was added to the "position" field in this mutation.
func (m *SlideMutation) AddedPosition() (r int, exists bool) {
	v := m.addposition
	if v == nil {
		return
	}
	return *v, true
}

// ResetPosition resets all changes to the "position" field.
func (m *SlideMutation) ResetPosition() {
	m.position = nil
	m.addposition = nil
}

// SetGlobalPosition sets the "global_position" field.
func (m *SlideMutation) SetGlobalPosition(i int) {
	m.global_position = &i
	m.addglobal_position = nil
}

// GlobalPosition returns the value of the "global_position" field in the mutation.
func (m *SlideMutation) GlobalPosition() (r int, exists bool) {
	v := m.global_position
	if v == nil {
		return
	}
	return *v, true
}

// OldGlobalPosition returns the old "global_position" field's value of the Slide entity.
// If the Slide object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SlideMutation) OldGlobalPosition(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGlobalPosition is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGlobalPosition requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGlobalPosition: %w", err)
	}
	return oldValue.GlobalPosition, nil
}

// AddGlobalPosition adds i to the "global_position" field.
func (m *SlideMutation) AddGlobalPosition(i int) {
	if m.addglobal_position != nil {
		*m.addglobal_position += i
	} else {
		m.addglobal_position = &i
	}
}

// AddedGlobalPosition returns the value that was added to the "global_position" field in this mutation.
func (m *SlideMutation) AddedGlobalPosition() (r int, exists bool) {
	v := m.addglobal_position
	if v == nil {
		return
	}
	return *v, true
}

// ResetGlobalPosition resets all changes to the "global_position" field.
func (m *SlideMutation) ResetGlobalPosition() {
	m.global_position = nil
	m.addglobal_position = nil
}

// SetContent sets the "content" field.
func (m *SlideMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *SlideMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the Slide entity.
// If the Slide object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SlideMutation) OldContent(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ClearContent clears the value of the "content" field.
func (m *SlideMutation) ClearContent() {
	m.content = nil
	m.clearedFields[slide.FieldContent] = struct{}{}
}

// ContentCleared returns if the "content" field was cleared in this mutation.
func (m *SlideMutation) ContentCleared() bool {
	_, ok := m.clearedFields[slide.FieldContent]
	return ok
}

// ResetContent resets all changes to the "content" field.
func (m *SlideMutation) ResetContent() {
	m.content = nil
	delete(m.clearedFields, slide.FieldContent)
}

// SetGeneratedAt sets the "generated_at" field.
func (m *SlideMutation) SetGeneratedAt(t time.Time) {
	m.generated_at = &t
}

// GeneratedAt returns the value of the "generated_at" field in the mutation.
func (m *SlideMutation) GeneratedAt() (r time.Time, exists bool) {
	v := m.generated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldGeneratedAt returns the old "generated_at" field's value of the Slide entity.
// If the Slide object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SlideMutation) OldGeneratedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGeneratedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGeneratedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGeneratedAt: %w", err)
	}
	return oldValue.GeneratedAt, nil
}

// ClearGeneratedAt clears the value of the "generated_at" field.
func (m *SlideMutation) ClearGeneratedAt() {
	m.generated_at = nil
	m.clearedFields[slide.FieldGeneratedAt] = struct{}{}
}

// GeneratedAtCleared returns if the "generated_at" field was cleared in this mutation.
func (m *SlideMutation) GeneratedAtCleared() bool {
	_, ok := m.clearedFields[slide.FieldGeneratedAt]
	return ok
}

// ResetGeneratedAt resets all changes to the "generated_at" field.
func (m *SlideMutation) ResetGeneratedAt() {
	m.generated_at = nil
	delete(m.clearedFields, slide.FieldGeneratedAt)
}

// SetSubmoduleID sets the "submodule" edge to the Submodule entity by id.
func (m *SlideMutation) SetSubmoduleID(id uuid.UUID) {
	m.submodule = &id
}

// ClearSubmodule clears the "submodule" edge to the Submodule entity.
func (m *SlideMutation) ClearSubmodule() {
	m.clearedsubmodule = true
}

// SubmoduleCleared reports if the "submodule" edge to the Submodule entity was cleared.
func (m *SlideMutation) SubmoduleCleared() bool {
	return m.clearedsubmodule
}

// SubmoduleID returns the "submodule" edge ID in the mutation.
func (m *SlideMutation) SubmoduleID() (id uuid.UUID, exists bool) {
	if m.submodule != nil {
		return *m.submodule, true
	}
	return
}

// SubmoduleIDs returns the "submodule" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SubmoduleID instead. It exists only for internal usage by the builders.
func (m *SlideMutation) SubmoduleIDs() (ids []uuid.UUID) {
	if id := m.submodule; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSubmodule resets all changes to the "submodule" edge.
func (m *SlideMutation) ResetSubmodule() {
	m.submodule = nil
	m.clearedsubmodule = false
}

// Where appends a list predicates to the SlideMutation builder.
func (m *SlideMutation) Where(ps ...predicate.Slide) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SlideMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SlideMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Slide, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SlideMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SlideMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Slide).
func (m *SlideMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SlideMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.title != nil {
		fields = append(fields, slide.FieldTitle)
	}
	if m.slide_type != nil {
		fields = append(fields, slide.FieldSlideType)
	}
	if m.quiz_scope != nil {
		fields = append(fields, slide.FieldQuizScope)
	}
	if m.position != nil {
		fields = append(fields, slide.FieldPosition)
	}
	if m.global_position != nil {
		fields = append(fields, slide.FieldGlobalPosition)
	}
	if m.content != nil {
		fields = append(fields, slide.FieldContent)
	}
	if m.generated_at != nil {
		fields = append(fields, slide.FieldGeneratedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SlideMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case slide.FieldTitle:
		return m.Title()
	case slide.FieldSlideType:
		return m.SlideType()
	case slide.FieldQuizScope:
		return m.QuizScope()
	case slide.FieldPosition:
		return m.Position()
	case slide.FieldGlobalPosition:
		return m.GlobalPosition()
	case slide.FieldContent:
		return m.Content()
	case slide.FieldGeneratedAt:
		return m.GeneratedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SlideMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case slide.FieldTitle:
		return m.OldTitle(ctx)
	case slide.FieldSlideType:
		return m.OldSlideType(ctx)
	case slide.FieldQuizScope:
		return m.OldQuizScope(ctx)
	case slide.FieldPosition:
		return m.OldPosition(ctx)
	case slide.FieldGlobalPosition:
		return m.OldGlobalPosition(ctx)
	case slide.FieldContent:
		return m.OldContent(ctx)
	case slide.FieldGeneratedAt:
		return m.OldGeneratedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Slide field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SlideMutation) SetField(name string, value ent.Value) error {
	switch name {
	case slide.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case slide.FieldSlideType:
		v, ok := value.(slide.SlideType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSlideType(v)
		return nil
	case slide.FieldQuizScope:
		v, ok := value.(slide.QuizScope)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuizScope(v)
		return nil
	case slide.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPosition(v)
		return nil
	case slide.FieldGlobalPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGlobalPosition(v)
		return nil
	case slide.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case slide.FieldGeneratedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGeneratedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Slide field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SlideMutation) AddedFields() []string {
	var fields []string
	if m.addposition != nil {
		fields = append(fields, slide.FieldPosition)
	}
	if m.addglobal_position != nil {
		fields = append(fields, slide.FieldGlobalPosition)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SlideMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case slide.FieldPosition:
		return m.AddedPosition()
	case slide.FieldGlobalPosition:
		return m.AddedGlobalPosition()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SlideMutation) AddField(name string, value ent.Value) error {
	switch name {
	case slide.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPosition(v)
		return nil
	case slide.FieldGlobalPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddGlobalPosition(v)
		return nil
	}
	return fmt.Errorf("unknown Slide numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SlideMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(slide.FieldQuizScope) {
		fields = append(fields, slide.FieldQuizScope)
	}
	if m.FieldCleared(slide.FieldContent) {
		fields = append(fields, slide.FieldContent)
	}
	if m.FieldCleared(slide.FieldGeneratedAt) {
		fields = append(fields, slide.FieldGeneratedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SlideMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SlideMutation) ClearField(name string) error {
	switch name {
	case slide.FieldQuizScope:
		m.ClearQuizScope()
		return nil
	case slide.FieldContent:
		m.ClearContent()
		return nil
	case slide.FieldGeneratedAt:
		m.ClearGeneratedAt()
		return nil
	}
	return fmt.Errorf("unknown Slide nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SlideMutation) ResetField(name string) error {
	switch name {
	case slide.FieldTitle:
		m.ResetTitle()
		return nil
	case slide.FieldSlideType:
		m.ResetSlideType()
		return nil
	case slide.FieldQuizScope:
		m.ResetQuizScope()
		return nil
	case slide.FieldPosition:
		m.ResetPosition()
		return nil
	case slide.FieldGlobalPosition:
		m.ResetGlobalPosition()
		return nil
	case slide.FieldContent:
		m.ResetContent()
		return nil
	case slide.FieldGeneratedAt:
		m.ResetGeneratedAt()
		return nil
	}
	return fmt.Errorf("unknown Slide field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SlideMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.submodule != nil {
		edges = append(edges, slide.EdgeSubmodule)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SlideMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case slide.EdgeSubmodule:
		if id := m.submodule; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SlideMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SlideMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SlideMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsubmodule {
		edges = append(edges, slide.EdgeSubmodule)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SlideMutation) EdgeCleared(name string) bool {
	switch name {
	case slide.EdgeSubmodule:
		return m.clearedsubmodule
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SlideMutation) ClearEdge(name string) error {
	switch name {
	case slide.EdgeSubmodule:
		m.ClearSubmodule()
		return nil
	}
	return fmt.Errorf("unknown Slide unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SlideMutation) ResetEdge(name string) error {
	switch name {
	case slide.EdgeSubmodule:
		m.ResetSubmodule()
		return nil
	}
	return fmt.Errorf("unknown Slide edge %s", name)
}

// StageMutation represents an operation that mutates the Stage nodes in the graph.
type StageMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	number         *int
	addnumber      *int
	title          *string
	clearedFields  map[string]struct{}
	plan           *uuid.UUID
	clearedplan    bool
	modules        map[uuid.UUID]struct{}
	removedmodules map[uuid.UUID]struct{}
	clearedmodules bool
	done           bool
	oldValue       func(context.Context) (*Stage, error)
	predicates     []predicate.Stage
}

var _ ent.Mutation = (*StageMutation)(nil)

// stageOption allows management of the mutation configuration using functional options.
type stageOption func(*StageMutation)

// newStageMutation creates new mutation for the Stage entity.
func newStageMutation(c config, op Op, opts ...stageOption) *StageMutation {
	m := &StageMutation{
		config:        c,
		op:            op,
		typ:           TypeStage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStageID sets the ID field of the mutation.
func withStageID(id uuid.UUID) stageOption {
	return func(m *StageMutation) {
		var (
			err   error
			once  sync.Once
			value *Stage
		)
		m.oldValue = func(ctx context.Context) (*Stage, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Stage.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStage sets the old Stage of the mutation.
func withStage(node *Stage) stageOption {
	return func(m *StageMutation) {
		m.oldValue = func(context.Context) (*Stage, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Stage entities.
func (m *StageMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StageMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StageMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Stage.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetNumber sets the "number" field.
func (m *StageMutation) SetNumber(i int) {
	m.number = &i
	m.addnumber = nil
}

// Number returns the value of the "number" field in the mutation.
func (m *StageMutation) Number() (r int, exists bool) {
	v := m.number
	if v == nil {
		return
	}
	return *v, true
}

// OldNumber returns the old "number" field's value of the Stage entity.
// If the Stage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageMutation) OldNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNumber: %w", err)
	}
	return oldValue.Number, nil
}

// AddNumber adds i to the "number" field.
func (m *StageMutation) AddNumber(i int) {
	if m.addnumber != nil {
		*m.addnumber += i
	} else {
		m.addnumber = &i
	}
}

// AddedNumber returns the value that was added to the "number" field in this mutation.
func (m *StageMutation) AddedNumber() (r int, exists bool) {
	v := m.addnumber
	if v == nil {
		return
	}
	return *v, true
}

// ResetNumber resets all changes to the "number" field.
func (m *StageMutation) ResetNumber() {
	m.number = nil
	m.addnumber = nil
}

// SetTitle sets the "title" field.
func (m *StageMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *StageMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Stage entity.
// If the Stage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *StageMutation) ResetTitle() {
	m.title = nil
}

// SetPlanID sets the "plan" edge to the TrainingPlan entity by id.
func (m *StageMutation) SetPlanID(id uuid.UUID) {
	m.plan = &id
}

// ClearPlan clears the "plan" edge to the TrainingPlan entity.
func (m *StageMutation) ClearPlan() {
	m.clearedplan = true
}

// PlanCleared reports if the "plan" edge to the TrainingPlan entity was cleared.
func (m *StageMutation) PlanCleared() bool {
	return m.clearedplan
}

// PlanID returns the "plan" edge ID in the mutation.
func (m *StageMutation) PlanID() (id uuid.UUID, exists bool) {
	if m.plan != nil {
		return *m.plan, true
	}
	return
}

// PlanIDs returns the "plan" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PlanID instead. It exists only for internal usage by the builders.
func (m *StageMutation) PlanIDs() (ids []uuid.UUID) {
	if id := m.plan; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPlan resets all changes to the "plan" edge.
func (m *StageMutation) ResetPlan() {
	m.plan = nil
	m.clearedplan = false
}

// AddModuleIDs adds the "modules" edge to the Module entity by ids.
func (m *StageMutation) AddModuleIDs(ids ...uuid.UUID) {
	if m.modules == nil {
		m.modules = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.modules[ids[i]] = struct{}{}
	}
}

// ClearModules clears the "modules" edge to the Module entity.
func (m *StageMutation) ClearModules() {
	m.clearedmodules = true
}

// ModulesCleared reports if the "modules" edge to the Module entity was cleared.
func (m *StageMutation) ModulesCleared() bool {
	return m.clearedmodules
}

// RemoveModuleIDs removes the "modules" edge to the Module entity by IDs.
func (m *StageMutation) RemoveModuleIDs(ids ...uuid.UUID) {
	if m.removedmodules == nil {
		m.removedmodules = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.modules, ids[i])
		m.removedmodules[ids[i]] = struct{}{}
	}
}

// RemovedModules returns the removed IDs of the "modules" edge to the Module entity.
func (m *StageMutation) RemovedModulesIDs() (ids []uuid.UUID) {
	for id := range m.removedmodules {
		ids = append(ids, id)
	}
	return
}

// ModulesIDs returns the "modules" edge IDs in the mutation.
func (m *StageMutation) ModulesIDs() (ids []uuid.UUID) {
	for id := range m.modules {
		ids = append(ids, id)
	}
	return
}

// ResetModules resets all changes to the "modules" edge.
func (m *StageMutation) ResetModules() {
	m.modules = nil
	m.clearedmodules = false
	m.removedmodules = nil
}

// Where appends a list predicates to the StageMutation builder.
func (m *StageMutation) Where(ps ...predicate.Stage) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Stage, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Stage).
func (m *StageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StageMutation) Fields() []string {
	fields := make([]string, 0, 2)
	if m.number != nil {
		fields = append(fields, stage.FieldNumber)
	}
	if m.title != nil {
		fields = append(fields, stage.FieldTitle)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case stage.FieldNumber:
		return m.Number()
	case stage.FieldTitle:
		return m.Title()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case stage.FieldNumber:
		return m.OldNumber(ctx)
	case stage.FieldTitle:
		return m.OldTitle(ctx)
	}
	return nil, fmt.Errorf("unknown Stage field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case stage.FieldNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNumber(v)
		return nil
	case stage.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	}
	return fmt.Errorf("unknown Stage field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StageMutation) AddedFields() []string {
	var fields []string
	if m.addnumber != nil {
		fields = append(fields, stage.FieldNumber)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StageMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case stage.FieldNumber:
		return m.AddedNumber()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StageMutation) AddField(name string, value ent.Value) error {
	switch name {
	case stage.FieldNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddNumber(v)
		return nil
	}
	return fmt.Errorf("unknown Stage numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StageMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StageMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Stage nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StageMutation) ResetField(name string) error {
	switch name {
	case stage.FieldNumber:
		m.ResetNumber()
		return nil
	case stage.FieldTitle:
		m.ResetTitle()
		return nil
	}
	return fmt.Errorf("unknown Stage field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StageMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.plan != nil {
		edges = append(edges, stage.EdgePlan)
	}
	if m.modules != nil {
		edges = append(edges, stage.EdgeModules)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StageMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case stage.EdgePlan:
		if id := m.plan; id != nil {
			return []ent.Value{*id}
		}
	case stage.EdgeModules:
		ids := make([]ent.Value, 0, len(m.modules))
		for id := range m.modules {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedmodules != nil {
		edges = append(edges, stage.EdgeModules)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StageMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case stage.EdgeModules:
		ids := make([]ent.Value, 0, len(m.removedmodules))
		for id := range m.removedmodules {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedplan {
		edges = append(edges, stage.EdgePlan)
	}
	if m.clearedmodules {
		edges = append(edges, stage.EdgeModules)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StageMutation) EdgeCleared(name string) bool {
	switch name {
	case stage.EdgePlan:
		return m.clearedplan
	case stage.EdgeModules:
		return m.clearedmodules
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StageMutation) ClearEdge(name string) error {
	switch name {
	case stage.EdgePlan:
		m.ClearPlan()
		return nil
	}
	return fmt.Errorf("unknown Stage unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StageMutation) ResetEdge(name string) error {
	switch name {
	case stage.EdgePlan:
		m.ResetPlan()
		return nil
	case stage.EdgeModules:
		m.ResetModules()
		return nil
	}
	return fmt.Errorf("unknown Stage edge %s", name)
}

// SubmoduleMutation represents an operation that mutates the Submodule nodes in the graph.
type SubmoduleMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	name           *string
	position       *int
	addposition    *int
	slide_count    *int
	addslide_count *int
	clearedFields  map[string]struct{}
	module         *uuid.UUID
	clearedmodule  bool
	slides         map[uuid.UUID]struct{}
	removedslides  map[uuid.UUID]struct{}
	clearedslides  bool
	done           bool
	oldValue       func(context.Context) (*Submodule, error)
	predicates     []predicate.Submodule
}

var _ ent.Mutation = (*SubmoduleMutation)(nil)

// submoduleOption allows management of the mutation configuration using functional options.
type submoduleOption func(*SubmoduleMutation)

// newSubmoduleMutation creates new mutation for the Submodule entity.
func newSubmoduleMutation(c config, op Op, opts ...submoduleOption) *SubmoduleMutation {
	m := &SubmoduleMutation{
		config:        c,
		op:            op,
		typ:           TypeSubmodule,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSubmoduleID sets the ID field of the mutation.
func withSubmoduleID(id uuid.UUID) submoduleOption {
	return func(m *SubmoduleMutation) {
		var (
			err   error
			once  sync.Once
			value *Submodule
		)
		m.oldValue = func(ctx context.Context) (*Submodule, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Submodule.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSubmodule sets the old Submodule of the mutation.
func withSubmodule(node *Submodule) submoduleOption {
	return func(m *SubmoduleMutation) {
		m.oldValue = func(context.Context) (*Submodule, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SubmoduleMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SubmoduleMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Submodule entities.
func (m *SubmoduleMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SubmoduleMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SubmoduleMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Submodule.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *SubmoduleMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *SubmoduleMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Submodule entity.
// If the Submodule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmoduleMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *SubmoduleMutation) ResetName() {
	m.name = nil
}

// SetPosition sets the "position" field.
func (m *SubmoduleMutation) SetPosition(i int) {
	m.position = &i
	m.addposition = nil
}

// Position returns the value of the "position" field in the mutation.
func (m *SubmoduleMutation) Position() (r int, exists bool) {
	v := m.position
	if v == nil {
		return
	}
	return *v, true
}

// OldPosition returns the old "position" field's value of the Submodule entity.
// If the Submodule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmoduleMutation) OldPosition(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPosition is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPosition requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPosition: %w", err)
	}
	return oldValue.Position, nil
}

// AddPosition adds i to the "position" field.
func (m *SubmoduleMutation) AddPosition(i int) {
	if m.addposition != nil {
		*m.addposition += i
	} else {
		m.addposition = &i
	}
}

// AddedPosition returns the value that was added to the "position" field in this mutation.
func (m *SubmoduleMutation) AddedPosition() (r int, exists bool) {
	v := m.addposition
	if v == nil {
		return
	}
	return *v, true
}

// ResetPosition resets all changes to the "position" field.
func (m *SubmoduleMutation) ResetPosition() {
	m.position = nil
	m.addposition = nil
}

// SetSlideCount sets the "slide_count" field.
func (m *SubmoduleMutation) SetSlideCount(i int) {
	m.slide_count = &i
	m.addslide_count = nil
}

// SlideCount returns the value of the "slide_count" field in the mutation.
func (m *SubmoduleMutation) SlideCount() (r int, exists bool) {
	v := m.slide_count
	if v == nil {
		return
	}
	return *v, true
}

// OldSlideCount returns the old "slide_count" field's value of the Submodule entity.
// If the Submodule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmoduleMutation) OldSlideCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSlideCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSlideCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSlideCount: %w", err)
	}
	return oldValue.SlideCount, nil
}

// AddSlideCount adds i to the "slide_count" field.
func (m *SubmoduleMutation) AddSlideCount(i int) {
	if m.addslide_count != nil {
		*m.addslide_count += i
	} else {
		m.addslide_count = &i
	}
}

// AddedSlideCount returns the value that was added to the "slide_count" field in this mutation.
func (m *SubmoduleMutation) AddedSlideCount() (r int, exists bool) {
	v := m.addslide_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetSlideCount resets all changes to the "slide_count" field.
func (m *SubmoduleMutation) ResetSlideCount() {
	m.slide_count = nil
	m.addslide_count = nil
}

// SetModuleID sets the "module" edge to the Module entity by id.
func (m *SubmoduleMutation) SetModuleID(id uuid.UUID) {
	m.module = &id
}

// ClearModule clears the "module" edge to the Module entity.
func (m *SubmoduleMutation) ClearModule() {
	m.clearedmodule = true
}

// ModuleCleared reports if the "module" edge to the Module entity was cleared.
func (m *SubmoduleMutation) ModuleCleared() bool {
	return m.clearedmodule
}

// ModuleID returns the "module" edge ID in the mutation.
func (m *SubmoduleMutation) ModuleID() (id uuid.UUID, exists bool) {
	if m.module != nil {
		return *m.module, true
	}
	return
}

// ModuleIDs returns the "module" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ModuleID instead. It exists only for internal usage by the builders.
func (m *SubmoduleMutation) ModuleIDs() (ids []uuid.UUID) {
	if id := m.module; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetModule resets all changes to the "module" edge.
func (m *SubmoduleMutation) ResetModule() {
	m.module = nil
	m.clearedmodule = false
}

// AddSlideIDs adds the "slides" edge to the Slide entity by ids.
func (m *SubmoduleMutation) AddSlideIDs(ids ...uuid.UUID) {
	if m.slides == nil {
		m.slides = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.slides[ids[i]] = struct{}{}
	}
}

// ClearSlides clears the "slides" edge to the Slide entity.
func (m *SubmoduleMutation) ClearSlides() {
	m.clearedslides = true
}

// SlidesCleared reports if the "slides" edge to the Slide entity was cleared.
func (m *SubmoduleMutation) SlidesCleared() bool {
	return m.clearedslides
}

// RemoveSlideIDs removes the "slides" edge to the Slide entity by IDs.
func (m *SubmoduleMutation) RemoveSlideIDs(ids ...uuid.UUID) {
	if m.removedslides == nil {
		m.removedslides = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.slides, ids[i])
		m.removedslides[ids[i]] = struct{}{}
	}
}

// RemovedSlides returns the removed IDs of the "slides" edge to the Slide entity.
func (m *SubmoduleMutation) RemovedSlidesIDs() (ids []uuid.UUID) {
	for id := range m.removedslides {
		ids = append(ids, id)
	}
	return
}

// SlidesIDs returns the "slides" edge IDs in the mutation.
func (m *SubmoduleMutation) SlidesIDs() (ids []uuid.UUID) {
	for id := range m.slides {
		ids = append(ids, id)
	}
	return
}

// ResetSlides resets all changes to the "slides" edge.
func (m *SubmoduleMutation) ResetSlides() {
	m.slides = nil
	m.clearedslides = false
	m.removedslides = nil
}

// Where appends a list predicates to the SubmoduleMutation builder.
func (m *SubmoduleMutation) Where(ps ...predicate.Submodule) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SubmoduleMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SubmoduleMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Submodule, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SubmoduleMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SubmoduleMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Submodule).
func (m *SubmoduleMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SubmoduleMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.name != nil {
		fields = append(fields, submodule.FieldName)
	}
	if m.position != nil {
		fields = append(fields, submodule.FieldPosition)
	}
	if m.slide_count != nil {
		fields = append(fields, submodule.FieldSlideCount)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SubmoduleMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case submodule.FieldName:
		return m.Name()
	case submodule.FieldPosition:
		return m.Position()
	case submodule.FieldSlideCount:
		return m.SlideCount()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SubmoduleMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case submodule.FieldName:
		return m.OldName(ctx)
	case submodule.FieldPosition:
		return m.OldPosition(ctx)
	case submodule.FieldSlideCount:
		return m.OldSlideCount(ctx)
	}
	return nil, fmt.Errorf("unknown Submodule field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SubmoduleMutation) SetField(name string, value ent.Value) error {
	switch name {
	case submodule.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case submodule.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPosition(v)
		return nil
	case submodule.FieldSlideCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSlideCount(v)
		return nil
	}
	return fmt.Errorf("unknown Submodule field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SubmoduleMutation) AddedFields() []string {
	var fields []string
	if m.addposition != nil {
		fields = append(fields, submodule.FieldPosition)
	}
	if m.addslide_count != nil {
		fields = append(fields, submodule.FieldSlideCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SubmoduleMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case submodule.FieldPosition:
		return m.AddedPosition()
	case submodule.FieldSlideCount:
		return m.AddedSlideCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SubmoduleMutation) AddField(name string, value ent.Value) error {
	switch name {
	case submodule.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPosition(v)
		return nil
	case submodule.FieldSlideCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSlideCount(v)
		return nil
	}
	return fmt.Errorf("unknown Submodule numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SubmoduleMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SubmoduleMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SubmoduleMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Submodule nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SubmoduleMutation) ResetField(name string) error {
	switch name {
	case submodule.FieldName:
		m.ResetName()
		return nil
	case submodule.FieldPosition:
		m.ResetPosition()
		return nil
	case submodule.FieldSlideCount:
		m.ResetSlideCount()
		return nil
	}
	return fmt.Errorf("unknown Submodule field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SubmoduleMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.module != nil {
		edges = append(edges, submodule.EdgeModule)
	}
	if m.slides != nil {
		edges = append(edges, submodule.EdgeSlides)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SubmoduleMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case submodule.EdgeModule:
		if id := m.module; id != nil {
			return []ent.Value{*id}
		}
	case submodule.EdgeSlides:
		ids := make([]ent.Value, 0, len(m.slides))
		for id := range m.slides {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SubmoduleMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedslides != nil {
		edges = append(edges, submodule.EdgeSlides)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SubmoduleMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case submodule.EdgeSlides:
		ids := make([]ent.Value, 0, len(m.removedslides))
		for id := range m.removedslides {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SubmoduleMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedmodule {
		edges = append(edges, submodule.EdgeModule)
	}
	if m.clearedslides {
		edges = append(edges, submodule.EdgeSlides)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SubmoduleMutation) EdgeCleared(name string) bool {
	switch name {
	case submodule.EdgeModule:
		return m.clearedmodule
	case submodule.EdgeSlides:
		return m.clearedslides
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SubmoduleMutation) ClearEdge(name string) error {
	switch name {
	case submodule.EdgeModule:
		m.ClearModule()
		return nil
	}
	return fmt.Errorf("unknown Submodule unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SubmoduleMutation) ResetEdge(name string) error {
	switch name {
	case submodule.EdgeModule:
		m.ResetModule()
		return nil
	case submodule.EdgeSlides:
		m.ResetSlides()
		return nil
	}
	return fmt.Errorf("unknown Submodule edge %s", name)
}

// TrainingPlanMutation represents an operation that mutates the TrainingPlan nodes in the graph.
type TrainingPlanMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	learner_id    *string
	training_id   *string
	document_key  *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	stages        map[uuid.UUID]struct{}
	removedstages map[uuid.UUID]struct{}
	clearedstages bool
	done          bool
	oldValue      func(context.Context) (*TrainingPlan, error)
	predicates    []predicate.TrainingPlan
}

var _ ent.Mutation = (*TrainingPlanMutation)(nil)

// trainingplanOption allows management of the mutation configuration using functional options.
type trainingplanOption func(*TrainingPlanMutation)

// newTrainingPlanMutation creates new mutation for the TrainingPlan entity.
func newTrainingPlanMutation(c config, op Op, opts ...trainingplanOption) *TrainingPlanMutation {
	m := &TrainingPlanMutation{
		config:        c,
		op:            op,
		typ:           TypeTrainingPlan,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTrainingPlanID sets the ID field of the mutation.
func withTrainingPlanID(id uuid.UUID) trainingplanOption {
	return func(m *TrainingPlanMutation) {
		var (
			err   error
			once  sync.Once
			value *TrainingPlan
		)
		m.oldValue = func(ctx context.Context) (*TrainingPlan, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TrainingPlan.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTrainingPlan sets the old TrainingPlan of the mutation.
func withTrainingPlan(node *TrainingPlan) trainingplanOption {
	return func(m *TrainingPlanMutation) {
		m.oldValue = func(context.Context) (*TrainingPlan, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TrainingPlanMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TrainingPlanMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TrainingPlan entities.
func (m *TrainingPlanMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TrainingPlanMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TrainingPlanMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TrainingPlan.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetLearnerID sets the "learner_id" field.
func (m *TrainingPlanMutation) SetLearnerID(s string) {
	m.learner_id = &s
}

// LearnerID returns the value of the "learner_id" field in the mutation.
func (m *TrainingPlanMutation) LearnerID() (r string, exists bool) {
	v := m.learner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLearnerID returns the old "learner_id" field's value of the TrainingPlan entity.
// If the TrainingPlan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrainingPlanMutation) OldLearnerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLearnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLearnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLearnerID: %w", err)
	}
	return oldValue.LearnerID, nil
}

// ResetLearnerID resets all changes to the "learner_id" field.
func (m *TrainingPlanMutation) ResetLearnerID() {
	m.learner_id = nil
}

// SetTrainingID sets the "training_id" field.
func (m *TrainingPlanMutation) SetTrainingID(s string) {
	m.training_id = &s
}

// TrainingID returns the value of the "training_id" field in the mutation.
func (m *TrainingPlanMutation) TrainingID() (r string, exists bool) {
	v := m.training_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTrainingID returns the old "training_id" field's value of the TrainingPlan entity.
// If the TrainingPlan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrainingPlanMutation) OldTrainingID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTrainingID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTrainingID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTrainingID: %w", err)
	}
	return oldValue.TrainingID, nil
}

// ResetTrainingID resets all changes to the "training_id" field.
func (m *TrainingPlanMutation) ResetTrainingID() {
	m.training_id = nil
}

// SetDocumentKey sets the "document_key" field.
func (m *TrainingPlanMutation) SetDocumentKey(s string) {
	m.document_key = &s
}

// DocumentKey returns the value of the "document_key" field in the mutation.
func (m *TrainingPlanMutation) DocumentKey() (r string, exists bool) {
	v := m.document_key
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentKey returns the old "document_key" field's value of the TrainingPlan entity.
// If the TrainingPlan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrainingPlanMutation) OldDocumentKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentKey: %w", err)
	}
	return oldValue.DocumentKey, nil
}

// ResetDocumentKey resets all changes to the "document_key" field.
func (m *TrainingPlanMutation) ResetDocumentKey() {
	m.document_key = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *TrainingPlanMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TrainingPlanMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TrainingPlan entity.
// If the TrainingPlan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrainingPlanMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TrainingPlanMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddStageIDs adds the "stages" edge to the Stage entity by ids.
func (m *TrainingPlanMutation) AddStageIDs(ids ...uuid.UUID) {
	if m.stages == nil {
		m.stages = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.stages[ids[i]] = struct{}{}
	}
}

// ClearStages clears the "stages" edge to the Stage entity.
func (m *TrainingPlanMutation) ClearStages() {
	m.clearedstages = true
}

// StagesCleared reports if the "stages" edge to the Stage entity was cleared.
func (m *TrainingPlanMutation) StagesCleared() bool {
	return m.clearedstages
}

// RemoveStageIDs removes the "stages" edge to the Stage entity by IDs.
func (m *TrainingPlanMutation) RemoveStageIDs(ids ...uuid.UUID) {
	if m.removedstages == nil {
		m.removedstages = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.stages, ids[i])
		m.removedstages[ids[i]] = struct{}{}
	}
}

// RemovedStages returns the removed IDs of the "stages" edge to the Stage entity.
func (m *TrainingPlanMutation) RemovedStagesIDs() (ids []uuid.UUID) {
	for id := range m.removedstages {
		ids = append(ids, id)
	}
	return
}

// StagesIDs returns the "stages" edge IDs in the mutation.
func (m *TrainingPlanMutation) StagesIDs() (ids []uuid.UUID) {
	for id := range m.stages {
		ids = append(ids, id)
	}
	return
}

// ResetStages resets all changes to the "stages" edge.
func (m *TrainingPlanMutation) ResetStages() {
	m.stages = nil
	m.clearedstages = false
	m.removedstages = nil
}

// Where appends a list predicates to the TrainingPlanMutation builder.
func (m *TrainingPlanMutation) Where(ps ...predicate.TrainingPlan) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TrainingPlanMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TrainingPlanMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TrainingPlan, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TrainingPlanMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TrainingPlanMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TrainingPlan).
func (m *TrainingPlanMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TrainingPlanMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.learner_id != nil {
		fields = append(fields, trainingplan.FieldLearnerID)
	}
	if m.training_id != nil {
		fields = append(fields, trainingplan.FieldTrainingID)
	}
	if m.document_key != nil {
		fields = append(fields, trainingplan.FieldDocumentKey)
	}
	if m.created_at != nil {
		fields = append(fields, trainingplan.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TrainingPlanMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case trainingplan.FieldLearnerID:
		return m.LearnerID()
	case trainingplan.FieldTrainingID:
		return m.TrainingID()
	case trainingplan.FieldDocumentKey:
		return m.DocumentKey()
	case trainingplan.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TrainingPlanMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case trainingplan.FieldLearnerID:
		return m.OldLearnerID(ctx)
	case trainingplan.FieldTrainingID:
		return m.OldTrainingID(ctx)
	case trainingplan.FieldDocumentKey:
		return m.OldDocumentKey(ctx)
	case trainingplan.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TrainingPlan field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TrainingPlanMutation) SetField(name string, value ent.Value) error {
	switch name {
	case trainingplan.FieldLearnerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLearnerID(v)
		return nil
	case trainingplan.FieldTrainingID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTrainingID(v)
		return nil
	case trainingplan.FieldDocumentKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentKey(v)
		return nil
	case trainingplan.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TrainingPlan field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TrainingPlanMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TrainingPlanMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TrainingPlanMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown TrainingPlan numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TrainingPlanMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TrainingPlanMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TrainingPlanMutation) ClearField(name string) error {
	return fmt.Errorf("unknown TrainingPlan nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TrainingPlanMutation) ResetField(name string) error {
	switch name {
	case trainingplan.FieldLearnerID:
		m.ResetLearnerID()
		return nil
	case trainingplan.FieldTrainingID:
		m.ResetTrainingID()
		return nil
	case trainingplan.FieldDocumentKey:
		m.ResetDocumentKey()
		return nil
	case trainingplan.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown TrainingPlan field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TrainingPlanMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.stages != nil {
		edges = append(edges, trainingplan.EdgeStages)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TrainingPlanMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case trainingplan.EdgeStages:
		ids := make([]ent.Value, 0, len(m.stages))
		for id := range m.stages {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TrainingPlanMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedstages != nil {
		edges = append(edges, trainingplan.EdgeStages)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TrainingPlanMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case trainingplan.EdgeStages:
		ids := make([]ent.Value, 0, len(m.removedstages))
		for id := range m.removedstages {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TrainingPlanMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedstages {
		edges = append(edges, trainingplan.EdgeStages)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TrainingPlanMutation) EdgeCleared(name string) bool {
	switch name {
	case trainingplan.EdgeStages:
		return m.clearedstages
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TrainingPlanMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown TrainingPlan unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TrainingPlanMutation) ResetEdge(name string) error {
	switch name {
	case trainingplan.EdgeStages:
		m.ResetStages()
		return nil
	}
	return fmt.Errorf("unknown TrainingPlan edge %s", name)
}
