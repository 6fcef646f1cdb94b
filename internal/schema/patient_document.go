package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// PatientDocument is a file attached to a patient record. The bytes live in
// S3-compatible object storage; this row keeps the key and metadata.
type PatientDocument struct {
	ent.Schema
}

func (PatientDocument) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (PatientDocument) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("patient_id", uuid.UUID{}),

		field.String("file_key").
			MaxLen(512).
			Comment("Object storage key"),

		field.String("file_name").
			MaxLen(255),

		field.String("content_type").
			MaxLen(100),

		field.Int64("size_bytes"),

		field.UUID("uploaded_by", uuid.UUID{}).
			Comment("FK → users.id"),
	}
}

func (PatientDocument) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("patient", Patient.Type).
			Ref("documents").
			Unique().
			Required().
			Field("patient_id"),
	}
}

func (PatientDocument) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("patient_id", "created_at"),
	}
}
