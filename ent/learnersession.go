// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/deathnote2501/fia-v3.0-sub000/ent/learnersession"
	"github.com/google/uuid"
)

// LearnerSession is the model entity for the LearnerSession schema.
type LearnerSession struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// LearnerID holds the value of the "learner_id" field.
	LearnerID string `json:"learner_id,omitempty"`
	// PlanID holds the value of the "plan_id" field.
	PlanID *uuid.UUID `json:"plan_id,omitempty"`
	// Global index of the last served slide; 0 before the first
	CurrentSlideNumber int `json:"current_slide_number,omitempty"`
	// LearnerProfile snapshot, including the enriched record
	Profile map[string]interface{} `json:"profile,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*LearnerSession) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case learnersession.FieldPlanID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case learnersession.FieldProfile:
			values[i] = new([]byte)
		case learnersession.FieldCurrentSlideNumber:
			values[i] = new(sql.NullInt64)
		case learnersession.FieldLearnerID:
			values[i] = new(sql.NullString)
		case learnersession.FieldCreatedAt, learnersession.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case learnersession.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the LearnerSession fields.
func (_m *LearnerSession) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case learnersession.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case learnersession.FieldLearnerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field learner_id", values[i])
			} else if value.Valid {
				_m.LearnerID = value.String
			}
		case learnersession.FieldPlanID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field plan_id", values[i])
			} else if value.Valid {
				_m.PlanID = new(uuid.UUID)
				*_m.PlanID = *value.S.(*uuid.UUID)
			}
		case learnersession.FieldCurrentSlideNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field current_slide_number", values[i])
			} else if value.Valid {
				_m.CurrentSlideNumber = int(value.Int64)
			}
		case learnersession.FieldProfile:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field profile", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Profile); err != nil {
					return fmt.Errorf("unmarshal field profile: %w", err)
				}
			}
		case learnersession.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case learnersession.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the LearnerSession.
// This includes values selected through modifiers, order, etc.
func (_m *LearnerSession) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this LearnerSession.
// Note that you need to call LearnerSession.Unwrap() before calling this method if this LearnerSession
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *LearnerSession) Update() *LearnerSessionUpdateOne {
	return NewLearnerSessionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the LearnerSession entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *LearnerSession) Unwrap() *LearnerSession {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: LearnerSession is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *LearnerSession) String() string {
	var builder strings.Builder
	builder.WriteString("LearnerSession(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("learner_id=")
	builder.WriteString(_m.LearnerID)
	builder.WriteString(", ")
	if v := _m.PlanID; v != nil {
		builder.WriteString("plan_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("current_slide_number=")
	builder.WriteString(fmt.Sprintf("%v", _m.CurrentSlideNumber))
	builder.WriteString(", ")
	builder.WriteString("profile=")
	builder.WriteString(fmt.Sprintf("%v", _m.Profile))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// LearnerSessions is a parsable slice of LearnerSession.
type LearnerSessions []*LearnerSession
