// Code generated by ent, DO NOT EDIT.

package therapistpayout

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/fundacionaurora/clinica_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.TherapistPayout {
	return predicate.TherapistPayout(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.TherapistPayout {
	return predicate.TherapistPayout(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.TherapistPayout {
	return predicate.TherapistPayout(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.TherapistPayout {
	return predicate.TherapistPayout(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.TherapistPayout {
	return predicate.TherapistPayout(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.TherapistPayout {
	return predicate.TherapistPayout(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.TherapistPayout {
	return predicate.TherapistPayout(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.TherapistPayout {
	return predicate.TherapistPayout(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.TherapistPayout {
	return predicate.TherapistPayout(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.TherapistPayout {
	return predicate.TherapistPayout(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.TherapistPayout {
	return predicate.TherapistPayout(sql.FieldEQ(FieldUpdatedAt, v))
}

// TherapistID applies equality check predicate on the "therapist_id" field. It's identical to TherapistIDEQ.
func TherapistID(v uuid.UUID) predicate.TherapistPayout {
	return predicate.TherapistPayout(sql.FieldEQ(FieldTherapistID, v))
}

// PeriodStart applies equality check predicate on the "period_start" field. It's identical to PeriodStartEQ.
func PeriodStart(v time.Time) predicate.TherapistPayout {
	return predicate.TherapistPayout(sql.FieldEQ(FieldPeriodStart, v))
}

// PeriodEnd applies equality check predicate on the "period_end" field. It's identical to PeriodEndEQ.
func PeriodEnd(v time.Time) predicate.TherapistPayout {
	return predicate.TherapistPayout(sql.FieldEQ(FieldPeriodEnd, v))
}

// GrossAmount applies equality check predicate on the "gross_amount" field. It's identical to GrossAmountEQ.
func GrossAmount(v int64) predicate.TherapistPayout {
	return predicate.TherapistPayout(sql.FieldEQ(FieldGrossAmount, v))
}

// CommissionAmount applies equality check predicate on the "commission_amount" field. It's identical to CommissionAmountEQ.
func CommissionAmount(v int64) predicate.TherapistPayout {
	return predicate.TherapistPayout(sql.FieldEQ(FieldCommissionAmount, v))
}

// DeductionAmount applies equality check predicate on the "deduction_amount" field. It's identical to DeductionAmountEQ.
func DeductionAmount(v int64) predicate.TherapistPayout {
	return predicate.TherapistPayout(sql.FieldEQ(FieldDeductionAmount, v))
}

// NetAmount applies equality check predicate on the "net_amount" field. It's identical to NetAmountEQ.
func NetAmount(v int64) predicate.TherapistPayout {
	return predicate.TherapistPayout(sql.FieldEQ(FieldNetAmount, v))
}

// BankTransferRef applies equality check predicate on the "bank_transfer_ref" field. It's identical to BankTransferRefEQ.
func BankTransferRef(v string) predicate.TherapistPayout {
	return predicate.TherapistPayout(sql.FieldEQ(FieldBankTransferRef, v))
}

// PaidAt applies equality check predicate on the "paid_at" field. It's identical to PaidAtEQ.
func PaidAt(v time.Time) predicate.TherapistPayout {
	return predicate.TherapistPayout(sql.FieldEQ(FieldPaidAt, v))
}

// Notes applies equality check predicate on the "notes" field. It's identical to NotesEQ.
func Notes(v string) predicate.TherapistPayout {
	return predicate.TherapistPayout(sql.FieldEQ(FieldNotes, v))
}

// CreatedBy applies equality check predicate on the "created_by" field. It's identical to CreatedByEQ.
func CreatedBy(v uuid.UUID) predicate.TherapistPayout {
	return predicate.TherapistPayout(sql.FieldEQ(FieldCreatedBy, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.TherapistPayout {
	return predicate.TherapistPayout(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.TherapistPayout {
	return predicate.TherapistPayout(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.TherapistPayout {
	return predicate.TherapistPayout(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.TherapistPayout {
	return predicate.TherapistPayout(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.TherapistPayout {
	return predicate.TherapistPayout(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.TherapistPayout {
	return predicate.TherapistPayout(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.TherapistPayout {
	return predicate.TherapistPayout(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.TherapistPayout {
	return predicate.TherapistPayout(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.TherapistPayout {
	return predicate.TherapistPayout(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.TherapistPayout {
	return predicate.TherapistPayout(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.TherapistPayout {
	return predicate.TherapistPayout(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.TherapistPayout {
	return predicate.TherapistPayout(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.TherapistPayout {
	return predicate.TherapistPayout(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.TherapistPayout {
	return predicate.TherapistPayout(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.TherapistPayout {
	return predicate.TherapistPayout(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.TherapistPayout {
	return predicate.TherapistPayout(sql.FieldLTE(FieldUpdatedAt, v))
}

// TherapistIDEQ applies the EQ predicate on the "therapist_id" field.
func TherapistIDEQ(v uuid.UUID) predicate.TherapistPayout {
	return predicate.TherapistPayout(sql.FieldEQ(FieldTherapistID, v))
}

// TherapistIDNEQ applies the NEQ predicate on the "therapist_id" field.
func TherapistIDNEQ(v uuid.UUID) predicate.TherapistPayout {
	return predicate.TherapistPayout(sql.FieldNEQ(FieldTherapistID, v))
}

// TherapistIDIn applies the In predicate on the "therapist_id" field.
func TherapistIDIn(vs ...uuid.UUID) predicate.TherapistPayout {
	return predicate.TherapistPayout(sql.FieldIn(FieldTherapistID, vs...))
}

// TherapistIDNotIn applies the NotIn predicate on the "therapist_id" field.
func TherapistIDNotIn(vs ...uuid.UUID) predicate.TherapistPayout {
	return predicate.TherapistPayout(sql.FieldNotIn(FieldTherapistID, vs...))
}

// TherapistIDGT applies the GT predicate on the "therapist_id" field.
func TherapistIDGT(v uuid.UUID) predicate.TherapistPayout {
	return predicate.TherapistPayout(sql.FieldGT(FieldTherapistID, v))
}

// TherapistIDGTE applies the GTE predicate on the "therapist_id" field.
func TherapistIDGTE(v uuid.UUID) predicate.TherapistPayout {
	return predicate.TherapistPayout(sql.FieldGTE(FieldTherapistID, v))
}

// TherapistIDLT applies the LT predicate on the "therapist_id" field.
func TherapistIDLT(v uuid.UUID) predicate.TherapistPayout {
	return predicate.TherapistPayout(sql.FieldLT(FieldTherapistID, v))
}

// TherapistIDLTE applies the LTE predicate on the "therapist_id" field.
func TherapistIDLTE(v uuid.UUID) predicate.TherapistPayout {
	return predicate.TherapistPayout(sql.FieldLTE(FieldTherapistID, v))
}

// PeriodStartEQ applies the EQ predicate on the "period_start" field.
func PeriodStartEQ(v time.Time) predicate.TherapistPayout {
	return predicate.TherapistPayout(sql.FieldEQ(FieldPeriodStart, v))
}

// PeriodStartNEQ applies the NEQ predicate on the "period_start" field.
func PeriodStartNEQ(v time.Time) predicate.TherapistPayout {
	return predicate.TherapistPayout(sql.FieldNEQ(FieldPeriodStart, v))
}

// PeriodStartIn applies the In predicate on the "period_start" field.
func PeriodStartIn(vs ...time.Time) predicate.TherapistPayout {
	return predicate.TherapistPayout(sql.FieldIn(FieldPeriodStart, vs...))
}

// PeriodStartNotIn applies the NotIn predicate on the "period_start" field.
func PeriodStartNotIn(vs ...time.Time) predicate.TherapistPayout {
	return predicate.TherapistPayout(sql.FieldNotIn(FieldPeriodStart, vs...))
}

// PeriodStartGT applies the GT predicate on the "period_start" field.
func PeriodStartGT(v time.Time) predicate.TherapistPayout {
	return predicate.TherapistPayout(sql.FieldGT(FieldPeriodStart, v))
}

// PeriodStartGTE applies the GTE predicate on the "period_start" field.
func PeriodStartGTE(v time.Time) predicate.TherapistPayout {
	return predicate.TherapistPayout(sql.FieldGTE(FieldPeriodStart, v))
}

// PeriodStartLT applies the LT predicate on the "period_start" field.
func PeriodStartLT(v time.Time) predicate.TherapistPayout {
	return predicate.TherapistPayout(sql.FieldLT(FieldPeriodStart, v))
}

// PeriodStartLTE applies the LTE predicate on the "period_start" field.
func PeriodStartLTE(v time.Time) predicate.TherapistPayout {
	return predicate.TherapistPayout(sql.FieldLTE(FieldPeriodStart, v))
}

// PeriodEndEQ applies the EQ predicate on the "period_end" field.
func PeriodEndEQ(v time.Time) predicate.TherapistPayout {
	return predicate.TherapistPayout(sql.FieldEQ(FieldPeriodEnd, v))
}

// PeriodEndNEQ applies the NEQ predicate on the "period_end" field.
func PeriodEndNEQ(v time.Time) predicate.TherapistPayout {
	return predicate.TherapistPayout(sql.FieldNEQ(FieldPeriodEnd, v))
}

// PeriodEndIn applies the In predicate on the "period_end" field.
func PeriodEndIn(vs ...time.Time) predicate.TherapistPayout {
	return predicate.TherapistPayout(sql.FieldIn(FieldPeriodEnd, vs...))
}

// PeriodEndNotIn applies the NotIn predicate on the "period_end" field.
func PeriodEndNotIn(vs ...time.Time) predicate.TherapistPayout {
	return predicate.TherapistPayout(sql.FieldNotIn(FieldPeriodEnd, vs...))
}

// PeriodEndGT applies the GT predicate on the "period_end" field.
func PeriodEndGT(v time.Time) predicate.TherapistPayout {
	return predicate.TherapistPayout(sql.FieldGT(FieldPeriodEnd, v))
}

// PeriodEndGTE applies the GTE predicate on the "period_end" field.
func PeriodEndGTE(v time.Time) predicate.TherapistPayout {
	return predicate.TherapistPayout(sql.FieldGTE(FieldPeriodEnd, v))
}

// PeriodEndLT applies the LT predicate on the "period_end" field.
func PeriodEndLT(v time.Time) predicate.TherapistPayout {
	return predicate.TherapistPayout(sql.FieldLT(FieldPeriodEnd, v))
}

// PeriodEndLTE applies the LTE predicate on the "period_end" field.
func PeriodEndLTE(v time.Time) predicate.TherapistPayout {
	return predicate.TherapistPayout(sql.FieldLTE(FieldPeriodEnd, v))
}

// PayoutTypeEQ applies the EQ predicate on the "payout_type" field.
func PayoutTypeEQ(v PayoutType) predicate.TherapistPayout {
	return predicate.TherapistPayout(sql.FieldEQ(FieldPayoutType, v))
}

// PayoutTypeNEQ applies the NEQ predicate on the "payout_type" field.
func PayoutTypeNEQ(v PayoutType) predicate.TherapistPayout {
	return predicate.TherapistPayout(sql.FieldNEQ(FieldPayoutType, v))
}

// PayoutTypeIn applies the In predicate on the "payout_type" field.
func PayoutTypeIn(vs ...PayoutType) predicate.TherapistPayout {
	return predicate.TherapistPayout(sql.FieldIn(FieldPayoutType, vs...))
}

// PayoutTypeNotIn applies the NotIn predicate on the "payout_type" field.
func PayoutTypeNotIn(vs ...PayoutType) predicate.TherapistPayout {
	return predicate.TherapistPayout(sql.FieldNotIn(FieldPayoutType, vs...))
}

// GrossAmountEQ applies the EQ predicate on the "gross_amount" field.
func GrossAmountEQ(v int64) predicate.TherapistPayout {
	return predicate.TherapistPayout(sql.FieldEQ(FieldGrossAmount, v))
}

// GrossAmountNEQ applies the NEQ predicate on the "gross_amount" field.
func GrossAmountNEQ(v int64) predicate.TherapistPayout {
	return predicate.TherapistPayout(sql.FieldNEQ(FieldGrossAmount, v))
}

// GrossAmountIn applies the In predicate on the "gross_amount" field.
func GrossAmountIn(vs ...int64) predicate.TherapistPayout {
	return predicate.TherapistPayout(sql.FieldIn(FieldGrossAmount, vs...))
}

// GrossAmountNotIn applies the NotIn predicate on the "gross_amount" field.
func GrossAmountNotIn(vs ...int64) predicate.TherapistPayout {
	return predicate.TherapistPayout(sql.FieldNotIn(FieldGrossAmount, vs...))
}

// GrossAmountGT applies the GT predicate on the "gross_amount" field.
func GrossAmountGT(v int64) predicate.TherapistPayout {
	return predicate.TherapistPayout(sql.FieldGT(FieldGrossAmount, v))
}

// GrossAmountGTE applies the GTE predicate on the "gross_amount" field.
func GrossAmountGTE(v int64) predicate.TherapistPayout {
	return predicate.TherapistPayout(sql.FieldGTE(FieldGrossAmount, v))
}

// GrossAmountLT applies the LT predicate on the "gross_amount" field.
func GrossAmountLT(v int64) predicate.TherapistPayout {
	return predicate.TherapistPayout(sql.FieldLT(FieldGrossAmount, v))
}

// GrossAmountLTE applies the LTE predicate on the "gross_amount" field.
func GrossAmountLTE(v int64) predicate.TherapistPayout {
	return predicate.TherapistPayout(sql.FieldLTE(FieldGrossAmount, v))
}

// CommissionAmountEQ applies the EQ predicate on the "commission_amount" field.
func CommissionAmountEQ(v int64) predicate.TherapistPayout {
	return predicate.TherapistPayout(sql.FieldEQ(FieldCommissionAmount, v))
}

// CommissionAmountNEQ applies the NEQ predicate on the "commission_amount" field.
func CommissionAmountNEQ(v int64) predicate.TherapistPayout {
	return predicate.TherapistPayout(sql.FieldNEQ(FieldCommissionAmount, v))
}

// CommissionAmountIn applies the In predicate on the "commission_amount" field.
func CommissionAmountIn(vs ...int64) predicate.TherapistPayout {
	return predicate.TherapistPayout(sql.FieldIn(FieldCommissionAmount, vs...))
}

// CommissionAmountNotIn applies the NotIn predicate on the "commission_amount" field.
func CommissionAmountNotIn(vs ...int64) predicate.TherapistPayout {
	return predicate.TherapistPayout(sql.FieldNotIn(FieldCommissionAmount, vs...))
}

// CommissionAmountGT applies the GT predicate on the "commission_amount" field.
func CommissionAmountGT(v int64) predicate.TherapistPayout {
	return predicate.TherapistPayout(sql.FieldGT(FieldCommissionAmount, v))
}

// CommissionAmountGTE applies the GTE predicate on the "commission_amount" field.
func CommissionAmountGTE(v int64) predicate.TherapistPayout {
	return predicate.TherapistPayout(sql.FieldGTE(FieldCommissionAmount, v))
}

// CommissionAmountLT applies the LT predicate on the "commission_amount" field.
func CommissionAmountLT(v int64) predicate.TherapistPayout {
	return predicate.TherapistPayout(sql.FieldLT(FieldCommissionAmount, v))
}

// CommissionAmountLTE applies the LTE predicate on the "commission_amount" field.
func CommissionAmountLTE(v int64) predicate.TherapistPayout {
	return predicate.TherapistPayout(sql.FieldLTE(FieldCommissionAmount, v))
}

// DeductionAmountEQ applies the EQ predicate on the "deduction_amount" field.
func DeductionAmountEQ(v int64) predicate.TherapistPayout {
	return predicate.TherapistPayout(sql.FieldEQ(FieldDeductionAmount, v))
}

// DeductionAmountNEQ applies the NEQ predicate on the "deduction_amount" field.
func DeductionAmountNEQ(v int64) predicate.TherapistPayout {
	return predicate.TherapistPayout(sql.FieldNEQ(FieldDeductionAmount, v))
}

// DeductionAmountIn applies the In predicate on the "deduction_amount" field.
func DeductionAmountIn(vs ...int64) predicate.TherapistPayout {
	return predicate.TherapistPayout(sql.FieldIn(FieldDeductionAmount, vs...))
}

// DeductionAmountNotIn applies the NotIn predicate on the "deduction_amount" field.
func DeductionAmountNotIn(vs ...int64) predicate.TherapistPayout {
	return predicate.TherapistPayout(sql.FieldNotIn(FieldDeductionAmount, vs...))
}

// DeductionAmountGT applies the GT predicate on the "deduction_amount" field.
func DeductionAmountGT(v int64) predicate.TherapistPayout {
	return predicate.TherapistPayout(sql.FieldGT(FieldDeductionAmount, v))
}

// DeductionAmountGTE applies the GTE predicate on the "deduction_amount" field.
func DeductionAmountGTE(v int64) predicate.TherapistPayout {
	return predicate.TherapistPayout(sql.FieldGTE(FieldDeductionAmount, v))
}

// DeductionAmountLT applies the LT predicate on the "deduction_amount" field.
func DeductionAmountLT(v int64) predicate.TherapistPayout {
	return predicate.TherapistPayout(sql.FieldLT(FieldDeductionAmount, v))
}

// DeductionAmountLTE applies the LTE predicate on the "deduction_amount" field.
func DeductionAmountLTE(v int64) predicate.TherapistPayout {
	return predicate.TherapistPayout(sql.FieldLTE(FieldDeductionAmount, v))
}

// NetAmountEQ applies the EQ predicate on the "net_amount" field.
func NetAmountEQ(v int64) predicate.TherapistPayout {
	return predicate.TherapistPayout(sql.FieldEQ(FieldNetAmount, v))
}

// NetAmountNEQ applies the NEQ predicate on the "net_amount" field.
func NetAmountNEQ(v int64) predicate.TherapistPayout {
	return predicate.TherapistPayout(sql.FieldNEQ(FieldNetAmount, v))
}

// NetAmountIn applies the In predicate on the "net_amount" field.
func NetAmountIn(vs ...int64) predicate.TherapistPayout {
	return predicate.TherapistPayout(sql.FieldIn(FieldNetAmount, vs...))
}

// NetAmountNotIn applies the NotIn predicate on the "net_amount" field.
func NetAmountNotIn(vs ...int64) predicate.TherapistPayout {
	return predicate.TherapistPayout(sql.FieldNotIn(FieldNetAmount, vs...))
}

// NetAmountGT applies the GT predicate on the "net_amount" field.
func NetAmountGT(v int64) predicate.TherapistPayout {
	return predicate.TherapistPayout(sql.FieldGT(FieldNetAmount, v))
}

// NetAmountGTE applies the GTE predicate on the "net_amount" field.
func NetAmountGTE(v int64) predicate.TherapistPayout {
	return predicate.TherapistPayout(sql.FieldGTE(FieldNetAmount, v))
}

// NetAmountLT applies the LT predicate on the "net_amount" field.
func NetAmountLT(v int64) predicate.TherapistPayout {
	return predicate.TherapistPayout(sql.FieldLT(FieldNetAmount, v))
}

// NetAmountLTE applies the LTE predicate on the "net_amount" field.
func NetAmountLTE(v int64) predicate.TherapistPayout {
	return predicate.TherapistPayout(sql.FieldLTE(FieldNetAmount, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.TherapistPayout {
	return predicate.TherapistPayout(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.TherapistPayout {
	return predicate.TherapistPayout(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.TherapistPayout {
	return predicate.TherapistPayout(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.TherapistPayout {
	return predicate.TherapistPayout(sql.FieldNotIn(FieldStatus, vs...))
}

// BankTransferRefEQ applies the EQ predicate on the "bank_transfer_ref" field.
func BankTransferRefEQ(v string) predicate.TherapistPayout {
	return predicate.TherapistPayout(sql.FieldEQ(FieldBankTransferRef, v))
}

// BankTransferRefNEQ applies the NEQ predicate on the "bank_transfer_ref" field.
func BankTransferRefNEQ(v string) predicate.TherapistPayout {
	return predicate.TherapistPayout(sql.FieldNEQ(FieldBankTransferRef, v))
}

// BankTransferRefIn applies the In predicate on the "bank_transfer_ref" field.
func BankTransferRefIn(vs ...string) predicate.TherapistPayout {
	return predicate.TherapistPayout(sql.FieldIn(FieldBankTransferRef, vs...))
}

// BankTransferRefNotIn applies the NotIn predicate on the "bank_transfer_ref" field.
func BankTransferRefNotIn(vs ...string) predicate.TherapistPayout {
	return predicate.TherapistPayout(sql.FieldNotIn(FieldBankTransferRef, vs...))
}

// BankTransferRefGT applies the GT predicate on the "bank_transfer_ref" field.
func BankTransferRefGT(v string) predicate.TherapistPayout {
	return predicate.TherapistPayout(sql.FieldGT(FieldBankTransferRef, v))
}

// BankTransferRefGTE applies the GTE predicate on the "bank_transfer_ref" field.
func BankTransferRefGTE(v string) predicate.TherapistPayout {
	return predicate.TherapistPayout(sql.FieldGTE(FieldBankTransferRef, v))
}

// BankTransferRefLT applies the LT predicate on the "bank_transfer_ref" field.
func BankTransferRefLT(v string) predicate.TherapistPayout {
	return predicate.TherapistPayout(sql.FieldLT(FieldBankTransferRef, v))
}

// BankTransferRefLTE applies the LTE predicate on the "bank_transfer_ref" field.
func BankTransferRefLTE(v string) predicate.TherapistPayout {
	return predicate.TherapistPayout(sql.FieldLTE(FieldBankTransferRef, v))
}

// BankTransferRefContains applies the Contains predicate on the "bank_transfer_ref" field.
func BankTransferRefContains(v string) predicate.TherapistPayout {
	return predicate.TherapistPayout(sql.FieldContains(FieldBankTransferRef, v))
}

// BankTransferRefHasPrefix applies the HasPrefix predicate on the "bank_transfer_ref" field.
func BankTransferRefHasPrefix(v string) predicate.TherapistPayout {
	return predicate.TherapistPayout(sql.FieldHasPrefix(FieldBankTransferRef, v))
}

// BankTransferRefHasSuffix applies the HasSuffix predicate on the "bank_transfer_ref" field.
func BankTransferRefHasSuffix(v string) predicate.TherapistPayout {
	return predicate.TherapistPayout(sql.FieldHasSuffix(FieldBankTransferRef, v))
}

// BankTransferRefIsNil applies the IsNil predicate on the "bank_transfer_ref" field.
func BankTransferRefIsNil() predicate.TherapistPayout {
	return predicate.TherapistPayout(sql.FieldIsNull(FieldBankTransferRef))
}

// BankTransferRefNotNil applies the NotNil predicate on the "bank_transfer_ref" field.
func BankTransferRefNotNil() predicate.TherapistPayout {
	return predicate.TherapistPayout(sql.FieldNotNull(FieldBankTransferRef))
}

// BankTransferRefEqualFold applies the EqualFold predicate on the "bank_transfer_ref" field.
func BankTransferRefEqualFold(v string) predicate.TherapistPayout {
	return predicate.TherapistPayout(sql.FieldEqualFold(FieldBankTransferRef, v))
}

// BankTransferRefContainsFold applies the ContainsFold predicate on the "bank_transfer_ref" field.
func BankTransferRefContainsFold(v string) predicate.TherapistPayout {
	return predicate.TherapistPayout(sql.FieldContainsFold(FieldBankTransferRef, v))
}

// PaidAtEQ applies the EQ predicate on the "paid_at" field.
func PaidAtEQ(v time.Time) predicate.TherapistPayout {
	return predicate.TherapistPayout(sql.FieldEQ(FieldPaidAt, v))
}

// PaidAtNEQ applies the NEQ predicate on the "paid_at" field.
func PaidAtNEQ(v time.Time) predicate.TherapistPayout {
	return predicate.TherapistPayout(sql.FieldNEQ(FieldPaidAt, v))
}

// PaidAtIn applies the In predicate on the "paid_at" field.
func PaidAtIn(vs ...time.Time) predicate.TherapistPayout {
	return predicate.TherapistPayout(sql.FieldIn(FieldPaidAt, vs...))
}

// PaidAtNotIn applies the NotIn predicate on the "paid_at" field.
func PaidAtNotIn(vs ...time.Time) predicate.TherapistPayout {
	return predicate.TherapistPayout(sql.FieldNotIn(FieldPaidAt, vs...))
}

// PaidAtGT applies the GT predicate on the "paid_at" field.
func PaidAtGT(v time.Time) predicate.TherapistPayout {
	return predicate.TherapistPayout(sql.FieldGT(FieldPaidAt, v))
}

// PaidAtGTE applies the GTE predicate on the "paid_at" field.
func PaidAtGTE(v time.Time) predicate.TherapistPayout {
	return predicate.TherapistPayout(sql.FieldGTE(FieldPaidAt, v))
}

// PaidAtLT applies the LT predicate on the "paid_at" field.
func PaidAtLT(v time.Time) predicate.TherapistPayout {
	return predicate.TherapistPayout(sql.FieldLT(FieldPaidAt, v))
}

// PaidAtLTE applies the LTE predicate on the "paid_at" field.
func PaidAtLTE(v time.Time) predicate.TherapistPayout {
	return predicate.TherapistPayout(sql.FieldLTE(FieldPaidAt, v))
}

// PaidAtIsNil applies the IsNil predicate on the "paid_at" field.
func PaidAtIsNil() predicate.TherapistPayout {
	return predicate.TherapistPayout(sql.FieldIsNull(FieldPaidAt))
}

// PaidAtNotNil applies the NotNil predicate on the "paid_at" field.
func PaidAtNotNil() predicate.TherapistPayout {
	return predicate.TherapistPayout(sql.FieldNotNull(FieldPaidAt))
}

// NotesEQ applies the EQ predicate on the "notes" field.
func NotesEQ(v string) predicate.TherapistPayout {
	return predicate.TherapistPayout(sql.FieldEQ(FieldNotes, v))
}

// NotesNEQ applies the NEQ predicate on the "notes" field.
func NotesNEQ(v string) predicate.TherapistPayout {
	return predicate.TherapistPayout(sql.FieldNEQ(FieldNotes, v))
}

// NotesIn applies the In predicate on the "notes" field.
func NotesIn(vs ...string) predicate.TherapistPayout {
	return predicate.TherapistPayout(sql.FieldIn(FieldNotes, vs...))
}

// NotesNotIn applies the NotIn predicate on the "notes" field.
func NotesNotIn(vs ...string) predicate.TherapistPayout {
	return predicate.TherapistPayout(sql.FieldNotIn(FieldNotes, vs...))
}

// NotesGT applies the GT predicate on the "notes" field.
func NotesGT(v string) predicate.TherapistPayout {
	return predicate.TherapistPayout(sql.FieldGT(FieldNotes, v))
}

// NotesGTE applies the GTE predicate on the "notes" field.
func NotesGTE(v string) predicate.TherapistPayout {
	return predicate.TherapistPayout(sql.FieldGTE(FieldNotes, v))
}

// NotesLT applies the LT predicate on the "notes" field.
func NotesLT(v string) predicate.TherapistPayout {
	return predicate.TherapistPayout(sql.FieldLT(FieldNotes, v))
}

// NotesLTE applies the LTE predicate on the "notes" field.
func NotesLTE(v string) predicate.TherapistPayout {
	return predicate.TherapistPayout(sql.FieldLTE(FieldNotes, v))
}

// NotesContains applies the Contains predicate on the "notes" field.
func NotesContains(v string) predicate.TherapistPayout {
	return predicate.TherapistPayout(sql.FieldContains(FieldNotes, v))
}

// NotesHasPrefix applies the HasPrefix predicate on the "notes" field.
func NotesHasPrefix(v string) predicate.TherapistPayout {
	return predicate.TherapistPayout(sql.FieldHasPrefix(FieldNotes, v))
}

// NotesHasSuffix applies the HasSuffix predicate on the "notes" field.
func NotesHasSuffix(v string) predicate.TherapistPayout {
	return predicate.TherapistPayout(sql.FieldHasSuffix(FieldNotes, v))
}

// NotesIsNil applies the IsNil predicate on the "notes" field.
func NotesIsNil() predicate.TherapistPayout {
	return predicate.TherapistPayout(sql.FieldIsNull(FieldNotes))
}

// NotesNotNil applies the NotNil predicate on the "notes" field.
func NotesNotNil() predicate.TherapistPayout {
	return predicate.TherapistPayout(sql.FieldNotNull(FieldNotes))
}

// NotesEqualFold applies the EqualFold predicate on the "notes" field.
func NotesEqualFold(v string) predicate.TherapistPayout {
	return predicate.TherapistPayout(sql.FieldEqualFold(FieldNotes, v))
}

// NotesContainsFold applies the ContainsFold predicate on the "notes" field.
func NotesContainsFold(v string) predicate.TherapistPayout {
	return predicate.TherapistPayout(sql.FieldContainsFold(FieldNotes, v))
}

// CreatedByEQ applies the EQ predicate on the "created_by" field.
func CreatedByEQ(v uuid.UUID) predicate.TherapistPayout {
	return predicate.TherapistPayout(sql.FieldEQ(FieldCreatedBy, v))
}

// CreatedByNEQ applies the NEQ predicate on the "created_by" field.
func CreatedByNEQ(v uuid.UUID) predicate.TherapistPayout {
	return predicate.TherapistPayout(sql.FieldNEQ(FieldCreatedBy, v))
}

// CreatedByIn applies the In predicate on the "created_by" field.
func CreatedByIn(vs ...uuid.UUID) predicate.TherapistPayout {
	return predicate.TherapistPayout(sql.FieldIn(FieldCreatedBy, vs...))
}

// CreatedByNotIn applies the NotIn predicate on the "created_by" field.
func CreatedByNotIn(vs ...uuid.UUID) predicate.TherapistPayout {
	return predicate.TherapistPayout(sql.FieldNotIn(FieldCreatedBy, vs...))
}

// CreatedByGT applies the GT predicate on the "created_by" field.
func CreatedByGT(v uuid.UUID) predicate.TherapistPayout {
	return predicate.TherapistPayout(sql.FieldGT(FieldCreatedBy, v))
}

// CreatedByGTE applies the GTE predicate on the "created_by" field.
func CreatedByGTE(v uuid.UUID) predicate.TherapistPayout {
	return predicate.TherapistPayout(sql.FieldGTE(FieldCreatedBy, v))
}

// CreatedByLT applies the LT predicate on the "created_by" field.
func CreatedByLT(v uuid.UUID) predicate.TherapistPayout {
	return predicate.TherapistPayout(sql.FieldLT(FieldCreatedBy, v))
}

// CreatedByLTE applies the LTE predicate on the "created_by" field.
func CreatedByLTE(v uuid.UUID) predicate.TherapistPayout {
	return predicate.TherapistPayout(sql.FieldLTE(FieldCreatedBy, v))
}

// HasItems applies the HasEdge predicate on the "items" edge.
func HasItems() predicate.TherapistPayout {
	return predicate.TherapistPayout(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ItemsTable, ItemsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasItemsWith applies the HasEdge predicate on the "items" edge with a given conditions (other predicates).
func HasItemsWith(preds ...predicate.PayoutItem) predicate.TherapistPayout {
	return predicate.TherapistPayout(func(s *sql.Selector) {
		step := newItemsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TherapistPayout) predicate.TherapistPayout {
	return predicate.TherapistPayout(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TherapistPayout) predicate.TherapistPayout {
	return predicate.TherapistPayout(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TherapistPayout) predicate.TherapistPayout {
	return predicate.TherapistPayout(sql.NotPredicates(p))
}
