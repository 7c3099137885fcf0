// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AssignmentsColumns holds the columns for the "assignments" table.
	AssignmentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "assignment_id", Type: field.TypeString, Unique: true},
		{Name: "class_id", Type: field.TypeString, Default: ""},
		{Name: "title", Type: field.TypeString, Default: ""},
		{Name: "due_at", Type: field.TypeTime},
	}
	// AssignmentsTable holds the schema information for the "assignments" table.
	AssignmentsTable = &schema.Table{
		Name:       "assignments",
		Columns:    AssignmentsColumns,
		PrimaryKey: []*schema.Column{AssignmentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "assignment_class_id_due_at",
				Unique:  false,
				Columns: []*schema.Column{AssignmentsColumns[2], AssignmentsColumns[4]},
			},
		},
	}
	// CaseRecordsColumns holds the columns for the "case_records" table.
	CaseRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "case_manager_id", Type: field.TypeString},
		{Name: "student_id", Type: field.TypeString},
	}
	// CaseRecordsTable holds the schema information for the "case_records" table.
	CaseRecordsTable = &schema.Table{
		Name:       "case_records",
		Columns:    CaseRecordsColumns,
		PrimaryKey: []*schema.Column{CaseRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "caserecord_case_manager_id_student_id",
				Unique:  true,
				Columns: []*schema.Column{CaseRecordsColumns[1], CaseRecordsColumns[2]},
			},
		},
	}
	// ComplianceDeadlinesColumns holds the columns for the "compliance_deadlines" table.
	ComplianceDeadlinesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "deadline_id", Type: field.TypeString, Unique: true},
		{Name: "student_id", Type: field.TypeString},
		{Name: "type", Type: field.TypeString},
		{Name: "due_at", Type: field.TypeTime},
		{Name: "status", Type: field.TypeString, Default: "upcoming"},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
	}
	// ComplianceDeadlinesTable holds the schema information for the "compliance_deadlines" table.
	ComplianceDeadlinesTable = &schema.Table{
		Name:       "compliance_deadlines",
		Columns:    ComplianceDeadlinesColumns,
		PrimaryKey: []*schema.Column{ComplianceDeadlinesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "compliancedeadline_student_id",
				Unique:  false,
				Columns: []*schema.Column{ComplianceDeadlinesColumns[2]},
			},
			{
				Name:    "compliancedeadline_due_at",
				Unique:  false,
				Columns: []*schema.Column{ComplianceDeadlinesColumns[4]},
			},
		},
	}
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
	// MasteryRecordsColumns holds the columns for the "mastery_records" table.
	MasteryRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "student_id", Type: field.TypeString},
		{Name: "standard_id", Type: field.TypeString},
		{Name: "standard_description", Type: field.TypeString, Default: ""},
		{Name: "subject", Type: field.TypeString, Default: ""},
		{Name: "level", Type: field.TypeString},
		{Name: "score", Type: field.TypeFloat64},
		{Name: "assessed_at", Type: field.TypeTime},
	}
	// MasteryRecordsTable holds the schema information for the "mastery_records" table.
	MasteryRecordsTable = &schema.Table{
		Name:       "mastery_records",
		Columns:    MasteryRecordsColumns,
		PrimaryKey: []*schema.Column{MasteryRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "masteryrecord_student_id_assessed_at",
				Unique:  false,
				Columns: []*schema.Column{MasteryRecordsColumns[1], MasteryRecordsColumns[7]},
			},
			{
				Name:    "masteryrecord_standard_id",
				Unique:  false,
				Columns: []*schema.Column{MasteryRecordsColumns[2]},
			},
		},
	}
	// StudentsColumns holds the columns for the "students" table.
	StudentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "student_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "email", Type: field.TypeString, Default: ""},
		{Name: "class_id", Type: field.TypeString, Default: ""},
	}
	// StudentsTable holds the schema information for the "students" table.
	StudentsTable = &schema.Table{
		Name:       "students",
		Columns:    StudentsColumns,
		PrimaryKey: []*schema.Column{StudentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "student_class_id",
				Unique:  false,
				Columns: []*schema.Column{StudentsColumns[4]},
			},
		},
	}
	// SubmissionsColumns holds the columns for the "submissions" table.
	SubmissionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "student_id", Type: field.TypeString},
		{Name: "assignment_id", Type: field.TypeString},
		{Name: "subject", Type: field.TypeString, Default: ""},
		{Name: "total_score", Type: field.TypeFloat64, Default: 0},
		{Name: "max_score", Type: field.TypeFloat64, Default: 0},
		{Name: "status", Type: field.TypeString},
		{Name: "submitted_at", Type: field.TypeTime},
		{Name: "graded_at", Type: field.TypeTime, Nullable: true},
	}
	// SubmissionsTable holds the schema information for the "submissions" table.
	SubmissionsTable = &schema.Table{
		Name:       "submissions",
		Columns:    SubmissionsColumns,
		PrimaryKey: []*schema.Column{SubmissionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "submission_student_id_submitted_at",
				Unique:  false,
				Columns: []*schema.Column{SubmissionsColumns[1], SubmissionsColumns[7]},
			},
			{
				Name:    "submission_assignment_id",
				Unique:  false,
				Columns: []*schema.Column{SubmissionsColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AssignmentsTable,
		CaseRecordsTable,
		ComplianceDeadlinesTable,
		LlmRequestEventsTable,
		MasteryRecordsTable,
		StudentsTable,
		SubmissionsTable,
	}
)

func init() {
}
