package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Assignment is issued work with a due date; the count of assignments due
// in-window feeds the missing-submissions indicator.
type Assignment struct {
	ent.Schema
}

func (Assignment) Fields() []ent.Field {
	return []ent.Field{
		field.String("assignment_id").
			Unique().
			NotEmpty(),
		field.String("class_id").Default(""),
		field.String("title").Default(""),
		field.Time("due_at"),
	}
}

func (Assignment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("class_id", "due_at"),
	}
}
