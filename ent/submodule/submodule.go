// Code generated by ent, DO NOT EDIT.

package submodule

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the submodule type in the database.
	Label = "submodule"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldPosition holds the string denoting the position field in the database.
	FieldPosition = "position"
	// FieldSlideCount holds the string denoting the slide_count field in the database.
	FieldSlideCount = "slide_count"
	// EdgeModule holds the string denoting the module edge name in mutations.
	EdgeModule = "module"
	// EdgeSlides holds the string denoting the slides edge name in mutations.
	EdgeSlides = "slides"
	// Table holds the table name of the submodule in the database.
	Table = "submodules"
	// ModuleTable is the table that holds the module relation/edge.
	ModuleTable = "submodules"
	// ModuleInverseTable is the table name for the Module entity.
	// It exists in this package in order to avoid circular dependency with the "module" package.
	ModuleInverseTable = "modules"
	// ModuleColumn is the table column denoting the module relation/edge.
	ModuleColumn = "module_submodules"
	// SlidesTable is the table that holds the slides relation/edge.
	SlidesTable = "slides"
	// SlidesInverseTable is the table name for the Slide entity.
	// It exists in this package in order to avoid circular dependency with the "slide" package.
	SlidesInverseTable = "slides"
	// SlidesColumn is the table column denoting the slides relation/edge.
	SlidesColumn = "submodule_slides"
)

// Columns holds all SQL columns for submodule fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldPosition,
	FieldSlideCount,
}

// ForeignKeys holds the SQL foreign-keys that are owned by the "submodules"
// table and are not defined as standalone fields in the schema.
var ForeignKeys = []string{
	"module_submodules",
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
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// PositionValidator is a validator for the "position" field. It is called by the builders before save.
	PositionValidator func(int) error
	// SlideCountValidator is a validator for the "slide_count" field. It is called by the builders before save.
	SlideCountValidator func(int) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Submodule queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByPosition orders the results by the position field.
func ByPosition(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPosition, opts...).ToFunc()
}

// BySlideCount orders the results by the slide_count field.
func BySlideCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSlideCount, opts...).ToFunc()
}

// ByModuleField orders the results by module field.
func ByModuleField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newModuleStep(), sql.OrderByField(field, opts...))
	}
}

// BySlidesCount orders the results by slides count.
func BySlidesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newSlidesStep(), opts...)
	}
}

// BySlides orders the results by slides terms.
func BySlides(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSlidesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newModuleStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ModuleInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ModuleTable, ModuleColumn),
	)
}
func newSlidesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SlidesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, SlidesTable, SlidesColumn),
	)
}
