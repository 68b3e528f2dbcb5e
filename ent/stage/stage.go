// Code generated by ent, DO NOT EDIT.

package stage

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the stage type in the database.
	Label = "stage"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldNumber holds the string denoting the number field in the database.
	FieldNumber = "number"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// EdgePlan holds the string denoting the plan edge name in mutations.
	EdgePlan = "plan"
	// EdgeModules holds the string denoting the modules edge name in mutations.
	EdgeModules = "modules"
	// Table holds the table name of the stage in the database.
	Table = "stages"
	// PlanTable is the table that holds the plan relation/edge.
	PlanTable = "stages"
	// PlanInverseTable is the table name for the TrainingPlan entity.
	// It exists in this package in order to avoid circular dependency with the "trainingplan" package.
	PlanInverseTable = "training_plans"
	// PlanColumn is the table column denoting the plan relation/edge.
	PlanColumn = "training_plan_stages"
	// ModulesTable is the table that holds the modules relation/edge.
	ModulesTable = "modules"
	// ModulesInverseTable is the table name for the Module entity.
	// It exists in this package in order to avoid circular dependency with the "module" package.
	ModulesInverseTable = "modules"
	// ModulesColumn is the table column denoting the modules relation/edge.
	ModulesColumn = "stage_modules"
)

// Columns holds all SQL columns for stage fields.
var Columns = []string{
	FieldID,
	FieldNumber,
	FieldTitle,
}

// ForeignKeys holds the SQL foreign-keys that are owned by the "stages"
// table and are not defined as standalone fields in the schema.
var ForeignKeys = []string{
	"training_plan_stages",
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
	// NumberValidator is a validator for the "number" field. It is called by the builders before save.
	NumberValidator func(int) error
	// TitleValidator is a validator for the "title" field. It is called by the builders before save.
	TitleValidator func(string) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Stage queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByNumber orders the results by the number field.
func ByNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNumber, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByPlanField orders the results by plan field.
func ByPlanField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPlanStep(), sql.OrderByField(field, opts...))
	}
}

// ByModulesCount orders the results by modules count.
func ByModulesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newModulesStep(), opts...)
	}
}

// ByModules orders the results by modules terms.
func ByModules(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newModulesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newPlanStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PlanInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, PlanTable, PlanColumn),
	)
}
func newModulesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ModulesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ModulesTable, ModulesColumn),
	)
}
