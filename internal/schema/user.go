package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// User is a staff account: administrators, HR, reception and therapists.
// Patients do not have accounts; they are records owned by the clinic.
type User struct {
	ent.Schema
}

func (User) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			MaxLen(200),

		field.String("email").
			MaxLen(254).
			Unique(),

		field.String("phone").
			MaxLen(20).
			Optional().
			Nillable().
			Comment("E.164 normalized"),

		field.Enum("role").
			Values("admin", "rrhh", "terapeuta", "recepcion"),

		field.String("password_hash").
			Sensitive().
			Optional().
			Nillable(),

		field.Bool("active").
			Default(true),
	}
}

func (User) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("role", "active"),
	}
}
