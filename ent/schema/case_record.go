package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CaseRecord assigns a student to a case manager's caseload. Restricted
// callers only see deadlines for students they hold a case record for.
type CaseRecord struct {
	ent.Schema
}

func (CaseRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("case_manager_id").NotEmpty(),
		field.String("student_id").NotEmpty(),
	}
}

func (CaseRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("case_manager_id", "student_id").Unique(),
	}
}
