package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Setting is a global key/value row. Commission and deduction rates live
// here; latest write wins, no change history (rates are snapshotted into
// payout items at calculation time instead).
type Setting struct {
	ent.Schema
}

func (Setting) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Setting) Fields() []ent.Field {
	return []ent.Field{
		field.String("key").
			MaxLen(100).
			Unique(),

		field.String("value").
			MaxLen(500),
	}
}
