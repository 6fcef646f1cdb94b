package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// PayoutItem is one settled payment line inside a payout. Patient type,
// amount and rate are snapshotted: the source payment or the global rates may
// change after settlement, and the ledger must stay reproducible.
type PayoutItem struct {
	ent.Schema
}

func (PayoutItem) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (PayoutItem) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("payout_id", uuid.UUID{}),

		field.UUID("payment_id", uuid.UUID{}).
			Immutable().
			Comment("Reference to payments.id, deliberately not an edge: not owned"),

		field.Enum("patient_type").
			Values("fundacion", "externo").
			Immutable(),

		field.Int64("payment_amount").
			Immutable(),

		field.Int("commission_rate").
			Immutable().
			Comment("Basis points at calculation time"),

		field.Int64("commission_amount").
			Immutable(),
	}
}

func (PayoutItem) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("payout", TherapistPayout.Type).
			Ref("items").
			Unique().
			Required().
			Field("payout_id"),
	}
}

func (PayoutItem) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("payout_id"),
		index.Fields("payment_id"),
	}
}
