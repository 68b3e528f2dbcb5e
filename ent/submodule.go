// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/deathnote2501/fia-v3.0-sub000/ent/module"
	"github.com/deathnote2501/fia-v3.0-sub000/ent/submodule"
	"github.com/google/uuid"
)

// Submodule is the model entity for the Submodule schema.
type Submodule struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Order within the module
	Position int `json:"position,omitempty"`
	// SlideCount holds the value of the "slide_count" field.
	SlideCount int `json:"slide_count,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SubmoduleQuery when eager-loading is set.
	Edges             SubmoduleEdges `json:"edges"`
	module_submodules *uuid.UUID
	selectValues      sql.SelectValues
}

// SubmoduleEdges holds the relations/edges for other nodes in the graph.
type SubmoduleEdges struct {
	// Module holds the value of the module edge.
	Module *Module `json:"module,omitempty"`
	// Slides holds the value of the slides edge.
	Slides []*Slide `json:"slides,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// ModuleOrErr returns the Module value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SubmoduleEdges) ModuleOrErr() (*Module, error) {
	if e.Module != nil {
		return e.Module, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: module.Label}
	}
	return nil, &NotLoadedError{edge: "module"}
}

// SlidesOrErr returns the Slides value or an error if the edge
// was not loaded in eager-loading.
func (e SubmoduleEdges) SlidesOrErr() ([]*Slide, error) {
	if e.loadedTypes[1] {
		return e.Slides, nil
	}
	return nil, &NotLoadedError{edge: "slides"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Submodule) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case submodule.FieldPosition, submodule.FieldSlideCount:
			values[i] = new(sql.NullInt64)
		case submodule.FieldName:
			values[i] = new(sql.NullString)
		case submodule.FieldID:
			values[i] = new(uuid.UUID)
		case submodule.ForeignKeys[0]: // module_submodules
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Submodule fields.
func (_m *Submodule) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case submodule.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case submodule.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case submodule.FieldPosition:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field position", values[i])
			} else if value.Valid {
				_m.Position = int(value.Int64)
			}
		case submodule.FieldSlideCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field slide_count", values[i])
			} else if value.Valid {
				_m.SlideCount = int(value.Int64)
			}
		case submodule.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field module_submodules", values[i])
			} else if value.Valid {
				_m.module_submodules = new(uuid.UUID)
				*_m.module_submodules = *value.S.(*uuid.UUID)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Submodule.
// This includes values selected through modifiers, order, etc.
func (_m *Submodule) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryModule queries the "module" edge of the Submodule entity.
func (_m *Submodule) QueryModule() *ModuleQuery {
	return NewSubmoduleClient(_m.config).QueryModule(_m)
}

// QuerySlides queries the "slides" edge of the Submodule entity.
func (_m *Submodule) QuerySlides() *SlideQuery {
	return NewSubmoduleClient(_m.config).QuerySlides(_m)
}

// Update returns a builder for updating this Submodule.
// Note that you need to call Submodule.Unwrap() before calling this method if this Submodule
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Submodule) Update() *SubmoduleUpdateOne {
	return NewSubmoduleClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Submodule entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Submodule) Unwrap() *Submodule {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Submodule is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Submodule) String() string {
	var builder strings.Builder
	builder.WriteString("Submodule(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("position=")
	builder.WriteString(fmt.Sprintf("%v", _m.Position))
	builder.WriteString(", ")
	builder.WriteString("slide_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.SlideCount))
	builder.WriteByte(')')
	return builder.String()
}

// Submodules is a parsable slice of Submodule.
type Submodules []*Submodule
