package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// TherapistPayout is the immutable settlement header for one therapist and
// period. Totals are written once at creation; only status, paid_at and
// bank_transfer_ref mutate afterwards.
type TherapistPayout struct {
	ent.Schema
}

func (TherapistPayout) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (TherapistPayout) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("therapist_id", uuid.UUID{}).
			Comment("FK → users.id"),

		field.Time("period_start").
			Immutable(),

		field.Time("period_end").
			Immutable().
			Comment("Inclusive"),

		field.Enum("payout_type").
			Values("mensual", "por_pago").
			Immutable(),

		field.Int64("gross_amount").
			Immutable().
			Comment("Σ item.payment_amount, minor units"),

		field.Int64("commission_amount").
			Immutable().
			Comment("Σ item.commission_amount"),

		field.Int64("deduction_amount").
			Immutable(),

		field.Int64("net_amount").
			Immutable().
			Comment("gross − commission − deduction, exact"),

		field.Enum("status").
			Values("pendiente", "pagado").
			Default("pendiente"),

		field.String("bank_transfer_ref").
			MaxLen(100).
			Optional().
			Nillable(),

		field.Time("paid_at").
			Optional().
			Nillable(),

		field.Text("notes").
			Optional().
			Nillable(),

		field.UUID("created_by", uuid.UUID{}).
			Immutable().
			Comment("FK → users.id (the admin who settled)"),
	}
}

func (TherapistPayout) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("items", PayoutItem.Type),
	}
}

func (TherapistPayout) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("therapist_id", "status"),
		index.Fields("status", "created_at"),
	}
}
