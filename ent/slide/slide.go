// Code generated by ent, DO NOT EDIT.

package slide

import (
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the slide type in the database.
	Label = "slide"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldSlideType holds the string denoting the slide_type field in the database.
	FieldSlideType = "slide_type"
	// FieldQuizScope holds the string denoting the quiz_scope field in the database.
	FieldQuizScope = "quiz_scope"
	// FieldPosition holds the string denoting the position field in the database.
	FieldPosition = "position"
	// FieldGlobalPosition holds the string denoting the global_position field in the database.
	FieldGlobalPosition = "global_position"
	// FieldContent holds the string denoting the content field in the database.
	FieldContent = "content"
	// FieldGeneratedAt holds the string denoting the generated_at field in the database.
	FieldGeneratedAt = "generated_at"
	// EdgeSubmodule holds the string denoting the submodule edge name in mutations.
	EdgeSubmodule = "submodule"
	// Table holds the table name of the slide in the database.
	Table = "slides"
	// SubmoduleTable is the table that holds the submodule relation/edge.
	SubmoduleTable = "slides"
	// SubmoduleInverseTable is the table name for the Submodule entity.
	// It exists in this package in order to avoid circular dependency with the "submodule" package.
	SubmoduleInverseTable = "submodules"
	// SubmoduleColumn is the table column denoting the submodule relation/edge.
	SubmoduleColumn = "submodule_slides"
)

// Columns holds all SQL columns for slide fields.
var Columns = []string{
	FieldID,
	FieldTitle,
	FieldSlideType,
	FieldQuizScope,
	FieldPosition,
	FieldGlobalPosition,
	FieldContent,
	FieldGeneratedAt,
}

// ForeignKeys holds the SQL foreign-keys that are owned by the "slides"
// table and are not defined as standalone fields in the schema.
var ForeignKeys = []string{
	"submodule_slides",
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	for i := range ForeignKeys {
		if column == ForeignKeys[i] {
			return true
		}
	}
	return false
}

var (
	// TitleValidator is a validator for the "title" field. It is called by the builders before save.
	TitleValidator func(string) error
	// PositionValidator is a validator for the "position" field. It is called by the builders before save.
	PositionValidator func(int) error
	// GlobalPositionValidator is a validator for the "global_position" field. It is called by the builders before save.
	GlobalPositionValidator func(int) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// SlideType defines the type for the "slide_type" enum field.
type SlideType string

// SlideType values.
const (
	SlideTypePlan    SlideType = "plan"
	SlideTypeStage   SlideType = "stage"
	SlideTypeModule  SlideType = "module"
	SlideTypeContent SlideType = "content"
	SlideTypeQuiz    SlideType = "quiz"
)

func (st SlideType) String() string {
	return string(st)
}

// SlideTypeValidator is a validator for the "slide_type" field enum values. It is called by the builders before save.
func SlideTypeValidator(st SlideType) error {
	switch st {
	case SlideTypePlan, SlideTypeStage, SlideTypeModule, SlideTypeContent, SlideTypeQuiz:
		return nil
	default:
		return fmt.Errorf("slide: invalid enum value for slide_type field: %q", st)
	}
}

// QuizScope defines the type for the "quiz_scope" enum field.
type QuizScope string

// QuizScope values.
const (
	QuizScopeSubmodule QuizScope = "submodule"
	QuizScopeModule    QuizScope = "module"
	QuizScopeStage     QuizScope = "stage"
)

func (qs QuizScope) String() string {
	return string(qs)
}

// QuizScopeValidator is a validator for the "quiz_scope" field enum values. It is called by the builders before save.
func QuizScopeValidator(qs QuizScope) error {
	switch qs {
	case QuizScopeSubmodule, QuizScopeModule, QuizScopeStage:
		return nil
	default:
		return fmt.Errorf("slide: invalid enum value for quiz_scope field: %q", qs)
	}
}

// OrderOption defines the ordering options for the Slide queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// BySlideType orders the results by the slide_type field.
func BySlideType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSlideType, opts...).ToFunc()
}

// ByQuizScope orders the results by the quiz_scope field.
func ByQuizScope(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuizScope, opts...).ToFunc()
}

// ByPosition orders the results by the position field.
func ByPosition(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPosition, opts...).ToFunc()
}

// ByGlobalPosition orders the results by the global_position field.
func ByGlobalPosition(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGlobalPosition, opts...).ToFunc()
}

// ByContent orders the results by the content field.
func ByContent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContent, opts...).ToFunc()
}

// ByGeneratedAt orders the results by the generated_at field.
func ByGeneratedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGeneratedAt, opts...).ToFunc()
}

// BySubmoduleField orders the results by submodule field.
func BySubmoduleField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSubmoduleStep(), sql.OrderByField(field, opts...))
	}
}
func newSubmoduleStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SubmoduleInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, SubmoduleTable, SubmoduleColumn),
	)
}
