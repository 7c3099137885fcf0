package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MasteryRecord is one standards-based assessment result.
type MasteryRecord struct {
	ent.Schema
}

func (MasteryRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("student_id").NotEmpty(),
		field.String("standard_id").NotEmpty(),
		field.String("standard_description").Default(""),
		field.String("subject").Default(""),
		field.String("level").
			NotEmpty().
			Comment("beginning, developing, proficient, advanced"),
		field.Float("score").
			Comment("0-100 numeric score for the assessment"),
		field.Time("assessed_at").Immutable(),
	}
}

func (MasteryRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("student_id", "assessed_at"),
		index.Fields("standard_id"),
	}
}
