package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ComplianceDeadline is a date-bound obligation on a student record, such
// as an IEP review or an evaluation consent. Written by caseload-management
// workflows; the engine only reads it.
type ComplianceDeadline struct {
	ent.Schema
}

func (ComplianceDeadline) Fields() []ent.Field {
	return []ent.Field{
		field.String("deadline_id").
			Unique().
			NotEmpty(),
		field.String("student_id").NotEmpty(),
		field.String("type").
			NotEmpty().
			Comment("Obligation kind, e.g. iep_review, evaluation_consent"),
		field.Time("due_at"),
		field.String("status").
			Default("upcoming").
			Comment("upcoming or completed"),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

func (ComplianceDeadline) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("student_id"),
		index.Fields("due_at"),
	}
}
