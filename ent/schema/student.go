package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Student is one learner known to the engine. The SIS identifier is the
// external key every signal row points back to.
type Student struct {
	ent.Schema
}

func (Student) Fields() []ent.Field {
	return []ent.Field{
		field.String("student_id").
			Unique().
			NotEmpty().
			Comment("External SIS identifier"),
		field.String("name").NotEmpty(),
		field.String("email").Default(""),
		field.String("class_id").
			Default("").
			Comment("Enrollment class, empty for unassigned"),
	}
}

func (Student) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("class_id"),
	}
}
