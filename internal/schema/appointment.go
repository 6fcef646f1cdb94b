package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Appointment is a session between a therapist and a patient. Scheduling is
// owned by the booking subsystem; this backend consumes appointments to
// attribute payments to therapists.
type Appointment struct {
	ent.Schema
}

func (Appointment) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Appointment) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("therapist_id", uuid.UUID{}).
			Comment("FK → users.id (assigned professional)"),

		field.UUID("patient_id", uuid.UUID{}),

		field.Time("start_time"),

		field.Time("end_time"),

		field.Enum("status").
			Values("programada", "completada", "cancelada", "no_asistio").
			Default("programada"),

		field.Text("notes").
			Optional().
			Nillable(),
	}
}

func (Appointment) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("patient", Patient.Type).
			Ref("appointments").
			Unique().
			Required().
			Field("patient_id"),
		edge.To("payments", Payment.Type),
	}
}

func (Appointment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("therapist_id", "start_time"),
		index.Fields("patient_id", "status"),
	}
}
