package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Submission is one piece of turned-in student work.
type Submission struct {
	ent.Schema
}

func (Submission) Fields() []ent.Field {
	return []ent.Field{
		field.String("student_id").NotEmpty(),
		field.String("assignment_id").NotEmpty(),
		field.String("subject").Default(""),
		field.Float("total_score").Default(0),
		field.Float("max_score").Default(0),
		field.String("status").
			NotEmpty().
			Comment("submitted, graded, returned"),
		field.Time("submitted_at").Immutable(),
		field.Time("graded_at").
			Optional().
			Nillable(),
	}
}

func (Submission) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("student_id", "submitted_at"),
		index.Fields("assignment_id"),
	}
}
