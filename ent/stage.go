// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/deathnote2501/fia-v3.0-sub000/ent/stage"
	"github.com/deathnote2501/fia-v3.0-sub000/ent/trainingplan"
	"github.com/google/uuid"
)

// Stage is the model entity for the Stage schema.
type Stage struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Stage number 1..5, unique within a plan
	Number int `json:"number,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the StageQuery when eager-loading is set.
	Edges                StageEdges `json:"edges"`
	training_plan_stages *uuid.UUID
	selectValues         sql.SelectValues
}

// StageEdges holds the relations/edges for other nodes in the graph.
type StageEdges struct {
	// Plan holds the value of the plan edge.
	Plan *TrainingPlan `json:"plan,omitempty"`
	// Modules holds the value of the modules edge.
	Modules []*Module `json:"modules,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// PlanOrErr returns the Plan value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e StageEdges) PlanOrErr() (*TrainingPlan, error) {
	if e.Plan != nil {
		return e.Plan, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: trainingplan.Label}
	}
	return nil, &NotLoadedError{edge: "plan"}
}

// ModulesOrErr returns the Modules value or an error if the edge
// was not loaded in eager-loading.
func (e StageEdges) ModulesOrErr() ([]*Module, error) {
	if e.loadedTypes[1] {
		return e.Modules, nil
	}
	return nil, &NotLoadedError{edge: "modules"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Stage) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case stage.FieldNumber:
			values[i] = new(sql.NullInt64)
		case stage.FieldTitle:
			values[i] = new(sql.NullString)
		case stage.FieldID:
			values[i] = new(uuid.UUID)
		case stage.ForeignKeys[0]: // training_plan_stages
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Stage fields.
func (_m *Stage) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case stage.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case stage.FieldNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field number", values[i])
			} else if value.Valid {
				_m.Number = int(value.Int64)
			}
		case stage.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case stage.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field training_plan_stages", values[i])
			} else if value.Valid {
				_m.training_plan_stages = new(uuid.UUID)
				*_m.training_plan_stages = *value.S.(*uuid.UUID)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Stage.
// This includes values selected through modifiers, order, etc.
func (_m *Stage) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryPlan queries the "plan" edge of the Stage entity.
func (_m *Stage) QueryPlan() *TrainingPlanQuery {
	return NewStageClient(_m.config).QueryPlan(_m)
}

// QueryModules queries the "modules" edge of the Stage entity.
func (_m *Stage) QueryModules() *ModuleQuery {
	return NewStageClient(_m.config).QueryModules(_m)
}

// Update returns a builder for updating this Stage.
// Note that you need to call Stage.Unwrap() before calling this method if this Stage
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Stage) Update() *StageUpdateOne {
	return NewStageClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Stage entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Stage) Unwrap() *Stage {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Stage is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Stage) String() string {
	var builder strings.Builder
	builder.WriteString("Stage(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("number=")
	builder.WriteString(fmt.Sprintf("%v", _m.Number))
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteByte(')')
	return builder.String()
}

// Stages is a parsable slice of Stage.
type Stages []*Stage
