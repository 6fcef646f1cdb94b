// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/fundacionaurora/clinica_backend/internal/repo/payoutitem"
	"github.com/fundacionaurora/clinica_backend/internal/repo/therapistpayout"
	"github.com/google/uuid"
)

// PayoutItem is the model entity for the PayoutItem schema.
type PayoutItem struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// PayoutID holds the value of the "payout_id" field.
	PayoutID uuid.UUID `json:"payout_id,omitempty"`
	// Reference to payments.id, deliberately not an edge: not owned
	PaymentID uuid.UUID `json:"payment_id,omitempty"`
	// PatientType holds the value of the "patient_type" field.
	PatientType payoutitem.PatientType `json:"patient_type,omitempty"`
	// PaymentAmount holds the value of the "payment_amount" field.
	PaymentAmount int64 `json:"payment_amount,omitempty"`
	// Basis points at calculation time
	CommissionRate int `json:"commission_rate,omitempty"`
	// CommissionAmount holds the value of the "commission_amount" field.
	CommissionAmount int64 `json:"commission_amount,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PayoutItemQuery when eager-loading is set.
	Edges        PayoutItemEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PayoutItemEdges holds the relations/edges for other nodes in the graph.
type PayoutItemEdges struct {
	// Payout holds the value of the payout edge.
	Payout *TherapistPayout `json:"payout,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// PayoutOrErr returns the Payout value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PayoutItemEdges) PayoutOrErr() (*TherapistPayout, error) {
	if e.Payout != nil {
		return e.Payout, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: therapistpayout.Label}
	}
	return nil, &NotLoadedError{edge: "payout"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PayoutItem) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case payoutitem.FieldPaymentAmount, payoutitem.FieldCommissionRate, payoutitem.FieldCommissionAmount:
			values[i] = new(sql.NullInt64)
		case payoutitem.FieldPatientType:
			values[i] = new(sql.NullString)
		case payoutitem.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case payoutitem.FieldID, payoutitem.FieldPayoutID, payoutitem.FieldPaymentID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PayoutItem fields.
func (_m *PayoutItem) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case payoutitem.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case payoutitem.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case payoutitem.FieldPayoutID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field payout_id", values[i])
			} else if value != nil {
				_m.PayoutID = *value
			}
		case payoutitem.FieldPaymentID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field payment_id", values[i])
			} else if value != nil {
				_m.PaymentID = *value
			}
		case payoutitem.FieldPatientType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field patient_type", values[i])
			} else if value.Valid {
				_m.PatientType = payoutitem.PatientType(value.String)
			}
		case payoutitem.FieldPaymentAmount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field payment_amount", values[i])
			} else if value.Valid {
				_m.PaymentAmount = value.Int64
			}
		case payoutitem.FieldCommissionRate:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field commission_rate", values[i])
			} else if value.Valid {
				_m.CommissionRate = int(value.Int64)
			}
		case payoutitem.FieldCommissionAmount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field commission_amount", values[i])
			} else if value.Valid {
				_m.CommissionAmount = value.Int64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PayoutItem.
// This includes values selected through modifiers, order, etc.
func (_m *PayoutItem) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryPayout queries the "payout" edge of the PayoutItem entity.
func (_m *PayoutItem) QueryPayout() *TherapistPayoutQuery {
	return NewPayoutItemClient(_m.config).QueryPayout(_m)
}

// Update returns a builder for updating this PayoutItem.
// Note that you need to call PayoutItem.Unwrap() before calling this method if this PayoutItem
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PayoutItem) Update() *PayoutItemUpdateOne {
	return NewPayoutItemClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PayoutItem entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PayoutItem) Unwrap() *PayoutItem {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: PayoutItem is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PayoutItem) String() string {
	var builder strings.Builder
	builder.WriteString("PayoutItem(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("payout_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.PayoutID))
	builder.WriteString(", ")
	builder.WriteString("payment_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.PaymentID))
	builder.WriteString(", ")
	builder.WriteString("patient_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.PatientType))
	builder.WriteString(", ")
	builder.WriteString("payment_amount=")
	builder.WriteString(fmt.Sprintf("%v", _m.PaymentAmount))
	builder.WriteString(", ")
	builder.WriteString("commission_rate=")
	builder.WriteString(fmt.Sprintf("%v", _m.CommissionRate))
	builder.WriteString(", ")
	builder.WriteString("commission_amount=")
	builder.WriteString(fmt.Sprintf("%v", _m.CommissionAmount))
	builder.WriteByte(')')
	return builder.String()
}

// PayoutItems is a parsable slice of PayoutItem.
type PayoutItems []*PayoutItem
