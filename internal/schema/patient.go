package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Patient is a clinic patient record. The type classification decides which
// commission tier applies to payments made by the patient.
type Patient struct {
	ent.Schema
}

func (Patient) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Patient) Fields() []ent.Field {
	return []ent.Field{
		field.String("first_name").
			MaxLen(100),

		field.String("last_name").
			MaxLen(100),

		field.Enum("type").
			Values("fundacion", "externo").
			Default("externo"),

		field.UUID("primary_therapist_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("FK → users.id; fallback attribution when a payment has no appointment"),

		field.String("email").
			MaxLen(254).
			Optional().
			Nillable(),

		field.String("phone").
			MaxLen(20).
			Optional().
			Nillable(),

		field.Text("notes").
			Optional().
			Nillable(),

		field.Bool("active").
			Default(true),
	}
}

func (Patient) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("payments", Payment.Type),
		edge.To("appointments", Appointment.Type),
		edge.To("documents", PatientDocument.Type),
	}
}

func (Patient) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("primary_therapist_id"),
		index.Fields("last_name", "first_name"),
	}
}
