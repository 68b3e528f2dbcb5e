// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// LearnerSessionsColumns holds the columns for the "learner_sessions" table.
	LearnerSessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "plan_id", Type: field.TypeUUID, Nullable: true},
		{Name: "current_slide_number", Type: field.TypeInt, Default: 0},
		{Name: "profile", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// LearnerSessionsTable holds the schema information for the "learner_sessions" table.
	LearnerSessionsTable = &schema.Table{
		Name:       "learner_sessions",
		Columns:    LearnerSessionsColumns,
		PrimaryKey: []*schema.Column{LearnerSessionsColumns[0]},
	}
	// ModulesColumns holds the columns for the "modules" table.
	ModulesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "position", Type: field.TypeInt},
		{Name: "stage_modules", Type: field.TypeUUID},
	}
	// ModulesTable holds the schema information for the "modules" table.
	ModulesTable = &schema.Table{
		Name:       "modules",
		Columns:    ModulesColumns,
		PrimaryKey: []*schema.Column{ModulesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "modules_stages_modules",
				Columns:    []*schema.Column{ModulesColumns[3]},
				RefColumns: []*schema.Column{StagesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// SlidesColumns holds the columns for the "slides" table.
	SlidesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "title", Type: field.TypeString},
		{Name: "slide_type", Type: field.TypeEnum, Enums: []string{"plan", "stage", "module", "content", "quiz"}},
		{Name: "quiz_scope", Type: field.TypeEnum, Nullable: true, Enums: []string{"submodule", "module", "stage"}},
		{Name: "position", Type: field.TypeInt},
		{Name: "global_position", Type: field.TypeInt},
		{Name: "content", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "generated_at", Type: field.TypeTime, Nullable: true},
		{Name: "submodule_slides", Type: field.TypeUUID},
	}
	// SlidesTable holds the schema information for the "slides" table.
	SlidesTable = &schema.Table{
		Name:       "slides",
		Columns:    SlidesColumns,
		PrimaryKey: []*schema.Column{SlidesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "slides_submodules_slides",
				Columns:    []*schema.Column{SlidesColumns[8]},
				RefColumns: []*schema.Column{SubmodulesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "slide_global_position",
				Unique:  false,
				Columns: []*schema.Column{SlidesColumns[5]},
			},
		},
	}
	// StagesColumns holds the columns for the "stages" table.
	StagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "number", Type: field.TypeInt},
		{Name: "title", Type: field.TypeString},
		{Name: "training_plan_stages", Type: field.TypeUUID},
	}
	// StagesTable holds the schema information for the "stages" table.
	StagesTable = &schema.Table{
		Name:       "stages",
		Columns:    StagesColumns,
		PrimaryKey: []*schema.Column{StagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "stages_training_plans_stages",
				Columns:    []*schema.Column{StagesColumns[3]},
				RefColumns: []*schema.Column{TrainingPlansColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// SubmodulesColumns holds the columns for the "submodules" table.
	SubmodulesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "position", Type: field.TypeInt},
		{Name: "slide_count", Type: field.TypeInt},
		{Name: "module_submodules", Type: field.TypeUUID},
	}
	// SubmodulesTable holds the schema information for the "submodules" table.
	SubmodulesTable = &schema.Table{
		Name:       "submodules",
		Columns:    SubmodulesColumns,
		PrimaryKey: []*schema.Column{SubmodulesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "submodules_modules_submodules",
				Columns:    []*schema.Column{SubmodulesColumns[4]},
				RefColumns: []*schema.Column{ModulesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// TrainingPlansColumns holds the columns for the "training_plans" table.
	TrainingPlansColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "training_id", Type: field.TypeString},
		{Name: "document_key", Type: field.TypeString, Default: ""},
		{Name: "created_at", Type: field.TypeTime},
	}
	// TrainingPlansTable holds the schema information for the "training_plans" table.
	TrainingPlansTable = &schema.Table{
		Name:       "training_plans",
		Columns:    TrainingPlansColumns,
		PrimaryKey: []*schema.Column{TrainingPlansColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "trainingplan_learner_id_training_id",
				Unique:  false,
				Columns: []*schema.Column{TrainingPlansColumns[1], TrainingPlansColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		LlmRequestEventsTable,
		LearnerSessionsTable,
		ModulesTable,
		SlidesTable,
		StagesTable,
		SubmodulesTable,
		TrainingPlansTable,
	}
)

func init() {
	ModulesTable.ForeignKeys[0].RefTable = StagesTable
	SlidesTable.ForeignKeys[0].RefTable = SubmodulesTable
	StagesTable.ForeignKeys[0].RefTable = TrainingPlansTable
	SubmodulesTable.ForeignKeys[0].RefTable = ModulesTable
}
