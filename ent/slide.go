// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/deathnote2501/fia-v3.0-sub000/ent/slide"
	"github.com/deathnote2501/fia-v3.0-sub000/ent/submodule"
	"github.com/google/uuid"
)

// Slide is the model entity for the Slide schema.
type Slide struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// SlideType holds the value of the "slide_type" field.
	SlideType slide.SlideType `json:"slide_type,omitempty"`
	// Set at materialization for quiz slides; empty otherwise
	QuizScope slide.QuizScope `json:"quiz_scope,omitempty"`
	// Order within the submodule
	Position int `json:"position,omitempty"`
	// Order across the whole plan, used for slide N of M
	GlobalPosition int `json:"global_position,omitempty"`
	// Content holds the value of the "content" field.
	Content *string `json:"content,omitempty"`
	// GeneratedAt holds the value of the "generated_at" field.
	GeneratedAt *time.Time `json:"generated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SlideQuery when eager-loading is set.
	Edges            SlideEdges `json:"edges"`
	submodule_slides *uuid.UUID
	selectValues     sql.SelectValues
}

// SlideEdges holds the relations/edges for other nodes in the graph.
type SlideEdges struct {
	// Submodule holds the value of the submodule edge.
	Submodule *Submodule `json:"submodule,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// SubmoduleOrErr returns the Submodule value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SlideEdges) SubmoduleOrErr() (*Submodule, error) {
	if e.Submodule != nil {
		return e.Submodule, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: submodule.Label}
	}
	return nil, &NotLoadedError{edge: "submodule"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Slide) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case slide.FieldPosition, slide.FieldGlobalPosition:
			values[i] = new(sql.NullInt64)
		case slide.FieldTitle, slide.FieldSlideType, slide.FieldQuizScope, slide.FieldContent:
			values[i] = new(sql.NullString)
		case slide.FieldGeneratedAt:
			values[i] = new(sql.NullTime)
		case slide.FieldID:
			values[i] = new(uuid.UUID)
		case slide.ForeignKeys[0]: // submodule_slides
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Slide fields.
func (_m *Slide) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case slide.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case slide.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case slide.FieldSlideType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field slide_type", values[i])
			} else if value.Valid {
				_m.SlideType = slide.SlideType(value.String)
			}
		case slide.FieldQuizScope:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field quiz_scope", values[i])
			} else if value.Valid {
				_m.QuizScope = slide.QuizScope(value.String)
			}
		case slide.FieldPosition:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field position", values[i])
			} else if value.Valid {
				_m.Position = int(value.Int64)
			}
		case slide.FieldGlobalPosition:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field global_position", values[i])
			} else if value.Valid {
				_m.GlobalPosition = int(value.Int64)
			}
		case slide.FieldContent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content", values[i])
			} else if value.Valid {
				_m.Content = new(string)
				*_m.Content = value.String
			}
		case slide.FieldGeneratedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field generated_at", values[i])
			} else if value.Valid {
				_m.GeneratedAt = new(time.Time)
				*_m.GeneratedAt = value.Time
			}
		case slide.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field submodule_slides", values[i])
			} else if value.Valid {
				_m.submodule_slides = new(uuid.UUID)
				*_m.submodule_slides = *value.S.(*uuid.UUID)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Slide.
// This includes values selected through modifiers, order, etc.
func (_m *Slide) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySubmodule queries the "submodule" edge of the Slide entity.
func (_m *Slide) QuerySubmodule() *SubmoduleQuery {
	return NewSlideClient(_m.config).QuerySubmodule(_m)
}

// Update returns a builder for updating this Slide.
// Note that you need to call Slide.Unwrap() before calling this method if this Slide
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Slide) Update() *SlideUpdateOne {
	return NewSlideClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Slide entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Slide) Unwrap() *Slide {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Slide is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Slide) String() string {
	var builder strings.Builder
	builder.WriteString("Slide(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("slide_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.SlideType))
	builder.WriteString(", ")
	builder.WriteString("quiz_scope=")
	builder.WriteString(fmt.Sprintf("%v", _m.QuizScope))
	builder.WriteString(", ")
	builder.WriteString("position=")
	builder.WriteString(fmt.Sprintf("%v", _m.Position))
	builder.WriteString(", ")
	builder.WriteString("global_position=")
	builder.WriteString(fmt.Sprintf("%v", _m.GlobalPosition))
	builder.WriteString(", ")
	if v := _m.Content; v != nil {
		builder.WriteString("content=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.GeneratedAt; v != nil {
		builder.WriteString("generated_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Slides is a parsable slice of Slide.
type Slides []*Slide
