// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/fundacionaurora/clinica_backend/internal/repo/therapistpayout"
	"github.com/google/uuid"
)

// TherapistPayout is the model entity for the TherapistPayout schema.
type TherapistPayout struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// FK → users.id
	TherapistID uuid.UUID `json:"therapist_id,omitempty"`
	// PeriodStart holds the value of the "period_start" field.
	PeriodStart time.Time `json:"period_start,omitempty"`
	// Inclusive
	PeriodEnd time.Time `json:"period_end,omitempty"`
	// PayoutType holds the value of the "payout_type" field.
	PayoutType therapistpayout.PayoutType `json:"payout_type,omitempty"`
	// Σ item.payment_amount, minor units
	GrossAmount int64 `json:"gross_amount,omitempty"`
	// Σ item.commission_amount
	CommissionAmount int64 `json:"commission_amount,omitempty"`
	// DeductionAmount holds the value of the "deduction_amount" field.
	DeductionAmount int64 `json:"deduction_amount,omitempty"`
	// gross − commission − deduction, exact
	NetAmount int64 `json:"net_amount,omitempty"`
	// Status holds the value of the "status" field.
	Status therapistpayout.Status `json:"status,omitempty"`
	// BankTransferRef holds the value of the "bank_transfer_ref" field.
	BankTransferRef *string `json:"bank_transfer_ref,omitempty"`
	// PaidAt holds the value of the "paid_at" field.
	PaidAt *time.Time `json:"paid_at,omitempty"`
	// Notes holds the value of the "notes" field.
	Notes *string `json:"notes,omitempty"`
	// FK → users.id (the admin who settled)
	CreatedBy uuid.UUID `json:"created_by,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TherapistPayoutQuery when eager-loading is set.
	Edges        TherapistPayoutEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TherapistPayoutEdges holds the relations/edges for other nodes in the graph.
type TherapistPayoutEdges struct {
	// Items holds the value of the items edge.
	Items []*PayoutItem `json:"items,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ItemsOrErr returns the Items value or an error if the edge
// was not loaded in eager-loading.
func (e TherapistPayoutEdges) ItemsOrErr() ([]*PayoutItem, error) {
	if e.loadedTypes[0] {
		return e.Items, nil
	}
	return nil, &NotLoadedError{edge: "items"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TherapistPayout) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case therapistpayout.FieldGrossAmount, therapistpayout.FieldCommissionAmount, therapistpayout.FieldDeductionAmount, therapistpayout.FieldNetAmount:
			values[i] = new(sql.NullInt64)
		case therapistpayout.FieldPayoutType, therapistpayout.FieldStatus, therapistpayout.FieldBankTransferRef, therapistpayout.FieldNotes:
			values[i] = new(sql.NullString)
		case therapistpayout.FieldCreatedAt, therapistpayout.FieldUpdatedAt, therapistpayout.FieldPeriodStart, therapistpayout.FieldPeriodEnd, therapistpayout.FieldPaidAt:
			values[i] = new(sql.NullTime)
		case therapistpayout.FieldID, therapistpayout.FieldTherapistID, therapistpayout.FieldCreatedBy:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TherapistPayout fields.
func (_m *TherapistPayout) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case therapistpayout.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case therapistpayout.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case therapistpayout.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case therapistpayout.FieldTherapistID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field therapist_id", values[i])
			} else if value != nil {
				_m.TherapistID = *value
			}
		case therapistpayout.FieldPeriodStart:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field period_start", values[i])
			} else if value.Valid {
				_m.PeriodStart = value.Time
			}
		case therapistpayout.FieldPeriodEnd:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field period_end", values[i])
			} else if value.Valid {
				_m.PeriodEnd = value.Time
			}
		case therapistpayout.FieldPayoutType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field payout_type", values[i])
			} else if value.Valid {
				_m.PayoutType = therapistpayout.PayoutType(value.String)
			}
		case therapistpayout.FieldGrossAmount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field gross_amount", values[i])
			} else if value.Valid {
				_m.GrossAmount = value.Int64
			}
		case therapistpayout.FieldCommissionAmount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field commission_amount", values[i])
			} else if value.Valid {
				_m.CommissionAmount = value.Int64
			}
		case therapistpayout.FieldDeductionAmount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field deduction_amount", values[i])
			} else if value.Valid {
				_m.DeductionAmount = value.Int64
			}
		case therapistpayout.FieldNetAmount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field net_amount", values[i])
			} else if value.Valid {
				_m.NetAmount = value.Int64
			}
		case therapistpayout.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = therapistpayout.Status(value.String)
			}
		case therapistpayout.FieldBankTransferRef:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field bank_transfer_ref", values[i])
			} else if value.Valid {
				_m.BankTransferRef = new(string)
				*_m.BankTransferRef = value.String
			}
		case therapistpayout.FieldPaidAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field paid_at", values[i])
			} else if value.Valid {
				_m.PaidAt = new(time.Time)
				*_m.PaidAt = value.Time
			}
		case therapistpayout.FieldNotes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field notes", values[i])
			} else if value.Valid {
				_m.Notes = new(string)
				*_m.Notes = value.String
			}
		case therapistpayout.FieldCreatedBy:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field created_by", values[i])
			} else if value != nil {
				_m.CreatedBy = *value
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TherapistPayout.
// This includes values selected through modifiers, order, etc.
func (_m *TherapistPayout) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryItems queries the "items" edge of the TherapistPayout entity.
func (_m *TherapistPayout) QueryItems() *PayoutItemQuery {
	return NewTherapistPayoutClient(_m.config).QueryItems(_m)
}

// Update returns a builder for updating this TherapistPayout.
// Note that you need to call TherapistPayout.Unwrap() before calling this method if this TherapistPayout
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TherapistPayout) Update() *TherapistPayoutUpdateOne {
	return NewTherapistPayoutClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TherapistPayout entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TherapistPayout) Unwrap() *TherapistPayout {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: TherapistPayout is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TherapistPayout) String() string {
	var builder strings.Builder
	builder.WriteString("TherapistPayout(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("therapist_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.TherapistID))
	builder.WriteString(", ")
	builder.WriteString("period_start=")
	builder.WriteString(_m.PeriodStart.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("period_end=")
	builder.WriteString(_m.PeriodEnd.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("payout_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.PayoutType))
	builder.WriteString(", ")
	builder.WriteString("gross_amount=")
	builder.WriteString(fmt.Sprintf("%v", _m.GrossAmount))
	builder.WriteString(", ")
	builder.WriteString("commission_amount=")
	builder.WriteString(fmt.Sprintf("%v", _m.CommissionAmount))
	builder.WriteString(", ")
	builder.WriteString("deduction_amount=")
	builder.WriteString(fmt.Sprintf("%v", _m.DeductionAmount))
	builder.WriteString(", ")
	builder.WriteString("net_amount=")
	builder.WriteString(fmt.Sprintf("%v", _m.NetAmount))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.BankTransferRef; v != nil {
		builder.WriteString("bank_transfer_ref=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.PaidAt; v != nil {
		builder.WriteString("paid_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.Notes; v != nil {
		builder.WriteString("notes=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_by=")
	builder.WriteString(fmt.Sprintf("%v", _m.CreatedBy))
	builder.WriteByte(')')
	return builder.String()
}

// TherapistPayouts is a parsable slice of TherapistPayout.
type TherapistPayouts []*TherapistPayout
