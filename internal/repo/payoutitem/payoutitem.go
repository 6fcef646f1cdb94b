// Code generated by ent, DO NOT EDIT.

package payoutitem

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the payoutitem type in the database.
	Label = "payout_item"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldPayoutID holds the string denoting the payout_id field in the database.
	FieldPayoutID = "payout_id"
	// FieldPaymentID holds the string denoting the payment_id field in the database.
	FieldPaymentID = "payment_id"
	// FieldPatientType holds the string denoting the patient_type field in the database.
	FieldPatientType = "patient_type"
	// FieldPaymentAmount holds the string denoting the payment_amount field in the database.
	FieldPaymentAmount = "payment_amount"
	// FieldCommissionRate holds the string denoting the commission_rate field in the database.
	FieldCommissionRate = "commission_rate"
	// FieldCommissionAmount holds the string denoting the commission_amount field in the database.
	FieldCommissionAmount = "commission_amount"
	// EdgePayout holds the string denoting the payout edge name in mutations.
	EdgePayout = "payout"
	// Table holds the table name of the payoutitem in the database.
	Table = "payout_items"
	// PayoutTable is the table that holds the payout relation/edge.
	PayoutTable = "payout_items"
	// PayoutInverseTable is the table name for the TherapistPayout entity.
	// It exists in this package in order to avoid circular dependency with the "therapistpayout" package.
	PayoutInverseTable = "therapist_payouts"
	// PayoutColumn is the table column denoting the payout relation/edge.
	PayoutColumn = "payout_id"
)

// Columns holds all SQL columns for payoutitem fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldPayoutID,
	FieldPaymentID,
	FieldPatientType,
	FieldPaymentAmount,
	FieldCommissionRate,
	FieldCommissionAmount,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// PatientType defines the type for the "patient_type" enum field.
type PatientType string

// PatientType values.
const (
	PatientTypeFundacion PatientType = "fundacion"
	PatientTypeExterno   PatientType = "externo"
)

func (pt PatientType) String() string {
	return string(pt)
}

// PatientTypeValidator is a validator for the "patient_type" field enum values. It is called by the builders before save.
func PatientTypeValidator(pt PatientType) error {
	switch pt {
	case PatientTypeFundacion, PatientTypeExterno:
		return nil
	default:
		return fmt.Errorf("payoutitem: invalid enum value for patient_type field: %q", pt)
	}
}

// OrderOption defines the ordering options for the PayoutItem queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByPayoutID orders the results by the payout_id field.
func ByPayoutID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPayoutID, opts...).ToFunc()
}

// ByPaymentID orders the results by the payment_id field.
func ByPaymentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPaymentID, opts...).ToFunc()
}

// ByPatientType orders the results by the patient_type field.
func ByPatientType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPatientType, opts...).ToFunc()
}

// ByPaymentAmount orders the results by the payment_amount field.
func ByPaymentAmount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPaymentAmount, opts...).ToFunc()
}

// ByCommissionRate orders the results by the commission_rate field.
func ByCommissionRate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCommissionRate, opts...).ToFunc()
}

// ByCommissionAmount orders the results by the commission_amount field.
func ByCommissionAmount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCommissionAmount, opts...).ToFunc()
}

// ByPayoutField orders the results by payout field.
func ByPayoutField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPayoutStep(), sql.OrderByField(field, opts...))
	}
}
func newPayoutStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PayoutInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, PayoutTable, PayoutColumn),
	)
}
