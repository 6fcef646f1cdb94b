package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

// BankAccount holds a therapist's settlement account for display next to a
// payout. The IBAN is AES-256-GCM encrypted at rest.
type BankAccount struct {
	ent.Schema
}

func (BankAccount) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (BankAccount) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("user_id", uuid.UUID{}).
			Unique().
			Comment("FK → users.id (one account per therapist)"),

		field.String("bank_name").
			MaxLen(100),

		field.String("account_holder").
			MaxLen(200),

		field.String("iban_encrypted").
			MaxLen(500).
			Sensitive(),
	}
}
