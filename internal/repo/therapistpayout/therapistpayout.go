// Code generated by ent, DO NOT EDIT.

package therapistpayout

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the therapistpayout type in the database.
	Label = "therapist_payout"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldTherapistID holds the string denoting the therapist_id field in the database.
	FieldTherapistID = "therapist_id"
	// FieldPeriodStart holds the string denoting the period_start field in the database.
	FieldPeriodStart = "period_start"
	// FieldPeriodEnd holds the string denoting the period_end field in the database.
	FieldPeriodEnd = "period_end"
	// FieldPayoutType holds the string denoting the payout_type field in the database.
	FieldPayoutType = "payout_type"
	// FieldGrossAmount holds the string denoting the gross_amount field in the database.
	FieldGrossAmount = "gross_amount"
	// FieldCommissionAmount holds the string denoting the commission_amount field in the database.
	FieldCommissionAmount = "commission_amount"
	// FieldDeductionAmount holds the string denoting the deduction_amount field in the database.
	FieldDeductionAmount = "deduction_amount"
	// FieldNetAmount holds the string denoting the net_amount field in the database.
	FieldNetAmount = "net_amount"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldBankTransferRef holds the string denoting the bank_transfer_ref field in the database.
	FieldBankTransferRef = "bank_transfer_ref"
	// FieldPaidAt holds the string denoting the paid_at field in the database.
	FieldPaidAt = "paid_at"
	// FieldNotes holds the string denoting the notes field in the database.
	FieldNotes = "notes"
	// FieldCreatedBy holds the string denoting the created_by field in the database.
	FieldCreatedBy = "created_by"
	// EdgeItems holds the string denoting the items edge name in mutations.
	EdgeItems = "items"
	// Table holds the table name of the therapistpayout in the database.
	Table = "therapist_payouts"
	// ItemsTable is the table that holds the items relation/edge.
	ItemsTable = "payout_items"
	// ItemsInverseTable is the table name for the PayoutItem entity.
	// It exists in this package in order to avoid circular dependency with the "payoutitem" package.
	ItemsInverseTable = "payout_items"
	// ItemsColumn is the table column denoting the items relation/edge.
	ItemsColumn = "payout_id"
)

// Columns holds all SQL columns for therapistpayout fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldTherapistID,
	FieldPeriodStart,
	FieldPeriodEnd,
	FieldPayoutType,
	FieldGrossAmount,
	FieldCommissionAmount,
	FieldDeductionAmount,
	FieldNetAmount,
	FieldStatus,
	FieldBankTransferRef,
	FieldPaidAt,
	FieldNotes,
	FieldCreatedBy,
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
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// BankTransferRefValidator is a validator for the "bank_transfer_ref" field. It is called by the builders before save.
	BankTransferRefValidator func(string) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// PayoutType defines the type for the "payout_type" enum field.
type PayoutType string

// PayoutType values.
const (
	PayoutTypeMensual PayoutType = "mensual"
	PayoutTypePorPago PayoutType = "por_pago"
)

func (pt PayoutType) String() string {
	return string(pt)
}

// PayoutTypeValidator is a validator for the "payout_type" field enum values. It is called by the builders before save.
func PayoutTypeValidator(pt PayoutType) error {
	switch pt {
	case PayoutTypeMensual, PayoutTypePorPago:
		return nil
	default:
		return fmt.Errorf("therapistpayout: invalid enum value for payout_type field: %q", pt)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusPendiente is the default value of the Status enum.
const DefaultStatus = StatusPendiente

// Status values.
const (
	StatusPendiente Status = "pendiente"
	StatusPagado    Status = "pagado"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPendiente, StatusPagado:
		return nil
	default:
		return fmt.Errorf("therapistpayout: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the TherapistPayout queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByTherapistID orders the results by the therapist_id field.
func ByTherapistID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTherapistID, opts...).ToFunc()
}

// ByPeriodStart orders the results by the period_start field.
func ByPeriodStart(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPeriodStart, opts...).ToFunc()
}

// ByPeriodEnd orders the results by the period_end field.
func ByPeriodEnd(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPeriodEnd, opts...).ToFunc()
}

// ByPayoutType orders the results by the payout_type field.
func ByPayoutType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPayoutType, opts...).ToFunc()
}

// ByGrossAmount orders the results by the gross_amount field.
func ByGrossAmount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGrossAmount, opts...).ToFunc()
}

// ByCommissionAmount orders the results by the commission_amount field.
func ByCommissionAmount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCommissionAmount, opts...).ToFunc()
}

// ByDeductionAmount orders the results by the deduction_amount field.
func ByDeductionAmount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeductionAmount, opts...).ToFunc()
}

// ByNetAmount orders the results by the net_amount field.
func ByNetAmount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNetAmount, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByBankTransferRef orders the results by the bank_transfer_ref field.
func ByBankTransferRef(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBankTransferRef, opts...).ToFunc()
}

// ByPaidAt orders the results by the paid_at field.
func ByPaidAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPaidAt, opts...).ToFunc()
}

// ByNotes orders the results by the notes field.
func ByNotes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNotes, opts...).ToFunc()
}

// ByCreatedBy orders the results by the created_by field.
func ByCreatedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedBy, opts...).ToFunc()
}

// ByItemsCount orders the results by items count.
func ByItemsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newItemsStep(), opts...)
	}
}

// ByItems orders the results by items terms.
func ByItems(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newItemsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newItemsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ItemsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ItemsTable, ItemsColumn),
	)
}
