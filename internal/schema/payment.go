package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Payment is a captured patient payment. Capture happens upstream; the payout
// engine reads these rows and never mutates the amount.
type Payment struct {
	ent.Schema
}

func (Payment) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Payment) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("patient_id", uuid.UUID{}),

		field.UUID("appointment_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("FK → appointments.id; payments without a session link exist (packages, deposits)"),

		field.Int64("amount").
			Immutable().
			Comment("Minor currency units"),

		field.Time("date"),

		field.Enum("status").
			Values("pendiente", "pagado", "parcial", "cancelado").
			Default("pendiente"),

		field.String("method").
			MaxLen(30).
			Optional().
			Nillable(),

		field.String("concept").
			MaxLen(255).
			Optional().
			Nillable(),
	}
}

func (Payment) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("patient", Patient.Type).
			Ref("payments").
			Unique().
			Required().
			Field("patient_id"),
		edge.From("appointment", Appointment.Type).
			Ref("payments").
			Unique().
			Field("appointment_id"),
	}
}

func (Payment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "date"),
		index.Fields("patient_id", "date"),
	}
}
