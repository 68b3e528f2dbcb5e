// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/deathnote2501/fia-v3.0-sub000/ent/trainingplan"
	"github.com/google/uuid"
)

// TrainingPlan is the model entity for the TrainingPlan schema.
type TrainingPlan struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Owning learner (external identity)
	LearnerID string `json:"learner_id,omitempty"`
	// Source training document identity
	TrainingID string `json:"training_id,omitempty"`
	// SHA-256 identity of the source document, shared with the context cache
	DocumentKey string `json:"document_key,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TrainingPlanQuery when eager-loading is set.
	Edges        TrainingPlanEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TrainingPlanEdges holds the relations/edges for other nodes in the graph.
type TrainingPlanEdges struct {
	// Stages holds the value of the stages edge.
	Stages []*Stage `json:"stages,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// StagesOrErr returns the Stages value or an error if the edge
// was not loaded in eager-loading.
func (e TrainingPlanEdges) StagesOrErr() ([]*Stage, error) {
	if e.loadedTypes[0] {
		return e.Stages, nil
	}
	return nil, &NotLoadedError{edge: "stages"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TrainingPlan) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case trainingplan.FieldLearnerID, trainingplan.FieldTrainingID, trainingplan.FieldDocumentKey:
			values[i] = new(sql.NullString)
		case trainingplan.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case trainingplan.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TrainingPlan fields.
func (_m *TrainingPlan) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case trainingplan.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case trainingplan.FieldLearnerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field learner_id", values[i])
			} else if value.Valid {
				_m.LearnerID = value.String
			}
		case trainingplan.FieldTrainingID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field training_id", values[i])
			} else if value.Valid {
				_m.TrainingID = value.String
			}
		case trainingplan.FieldDocumentKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field document_key", values[i])
			} else if value.Valid {
				_m.DocumentKey = value.String
			}
		case trainingplan.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TrainingPlan.
// This includes values selected through modifiers, order, etc.
func (_m *TrainingPlan) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryStages queries the "stages" edge of the TrainingPlan entity.
func (_m *TrainingPlan) QueryStages() *StageQuery {
	return NewTrainingPlanClient(_m.config).QueryStages(_m)
}

// Update returns a builder for updating this TrainingPlan.
// Note that you need to call TrainingPlan.Unwrap() before calling this method if this TrainingPlan
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TrainingPlan) Update() *TrainingPlanUpdateOne {
	return NewTrainingPlanClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TrainingPlan entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TrainingPlan) Unwrap() *TrainingPlan {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TrainingPlan is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TrainingPlan) String() string {
	var builder strings.Builder
	builder.WriteString("TrainingPlan(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("learner_id=")
	builder.WriteString(_m.LearnerID)
	builder.WriteString(", ")
	builder.WriteString("training_id=")
	builder.WriteString(_m.TrainingID)
	builder.WriteString(", ")
	builder.WriteString("document_key=")
	builder.WriteString(_m.DocumentKey)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// TrainingPlans is a parsable slice of TrainingPlan.
type TrainingPlans []*TrainingPlan
