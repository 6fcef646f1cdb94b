// Code generated by ent, DO NOT EDIT.

package payoutitem

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/fundacionaurora/clinica_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.PayoutItem {
	return predicate.PayoutItem(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.PayoutItem {
	return predicate.PayoutItem(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.PayoutItem {
	return predicate.PayoutItem(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.PayoutItem {
	return predicate.PayoutItem(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.PayoutItem {
	return predicate.PayoutItem(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.PayoutItem {
	return predicate.PayoutItem(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.PayoutItem {
	return predicate.PayoutItem(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.PayoutItem {
	return predicate.PayoutItem(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.PayoutItem {
	return predicate.PayoutItem(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.PayoutItem {
	return predicate.PayoutItem(sql.FieldEQ(FieldCreatedAt, v))
}

// PayoutID applies equality check predicate on the "payout_id" field. It's identical to PayoutIDEQ.
func PayoutID(v uuid.UUID) predicate.PayoutItem {
	return predicate.PayoutItem(sql.FieldEQ(FieldPayoutID, v))
}

// PaymentID applies equality check predicate on the "payment_id" field. It's identical to PaymentIDEQ.
func PaymentID(v uuid.UUID) predicate.PayoutItem {
	return predicate.PayoutItem(sql.FieldEQ(FieldPaymentID, v))
}

// PaymentAmount applies equality check predicate on the "payment_amount" field. It's identical to PaymentAmountEQ.
func PaymentAmount(v int64) predicate.PayoutItem {
	return predicate.PayoutItem(sql.FieldEQ(FieldPaymentAmount, v))
}

// CommissionRate applies equality check predicate on the "commission_rate" field. It's identical to CommissionRateEQ.
func CommissionRate(v int) predicate.PayoutItem {
	return predicate.PayoutItem(sql.FieldEQ(FieldCommissionRate, v))
}

// CommissionAmount applies equality check predicate on the "commission_amount" field. It's identical to CommissionAmountEQ.
func CommissionAmount(v int64) predicate.PayoutItem {
	return predicate.PayoutItem(sql.FieldEQ(FieldCommissionAmount, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.PayoutItem {
	return predicate.PayoutItem(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.PayoutItem {
	return predicate.PayoutItem(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.PayoutItem {
	return predicate.PayoutItem(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.PayoutItem {
	return predicate.PayoutItem(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.PayoutItem {
	return predicate.PayoutItem(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.PayoutItem {
	return predicate.PayoutItem(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.PayoutItem {
	return predicate.PayoutItem(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.PayoutItem {
	return predicate.PayoutItem(sql.FieldLTE(FieldCreatedAt, v))
}

// PayoutIDEQ applies the EQ predicate on the "payout_id" field.
func PayoutIDEQ(v uuid.UUID) predicate.PayoutItem {
	return predicate.PayoutItem(sql.FieldEQ(FieldPayoutID, v))
}

// PayoutIDNEQ applies the NEQ predicate on the "payout_id" field.
func PayoutIDNEQ(v uuid.UUID) predicate.PayoutItem {
	return predicate.PayoutItem(sql.FieldNEQ(FieldPayoutID, v))
}

// PayoutIDIn applies the In predicate on the "payout_id" field.
func PayoutIDIn(vs ...uuid.UUID) predicate.PayoutItem {
	return predicate.PayoutItem(sql.FieldIn(FieldPayoutID, vs...))
}

// PayoutIDNotIn applies the NotIn predicate on the "payout_id" field.
func PayoutIDNotIn(vs ...uuid.UUID) predicate.PayoutItem {
	return predicate.PayoutItem(sql.FieldNotIn(FieldPayoutID, vs...))
}

// PaymentIDEQ applies the EQ predicate on the "payment_id" field.
func PaymentIDEQ(v uuid.UUID) predicate.PayoutItem {
	return predicate.PayoutItem(sql.FieldEQ(FieldPaymentID, v))
}

// PaymentIDNEQ applies the NEQ predicate on the "payment_id" field.
func PaymentIDNEQ(v uuid.UUID) predicate.PayoutItem {
	return predicate.PayoutItem(sql.FieldNEQ(FieldPaymentID, v))
}

// PaymentIDIn applies the In predicate on the "payment_id" field.
func PaymentIDIn(vs ...uuid.UUID) predicate.PayoutItem {
	return predicate.PayoutItem(sql.FieldIn(FieldPaymentID, vs...))
}

// PaymentIDNotIn applies the NotIn predicate on the "payment_id" field.
func PaymentIDNotIn(vs ...uuid.UUID) predicate.PayoutItem {
	return predicate.PayoutItem(sql.FieldNotIn(FieldPaymentID, vs...))
}

// PaymentIDGT applies the GT predicate on the "payment_id" field.
func PaymentIDGT(v uuid.UUID) predicate.PayoutItem {
	return predicate.PayoutItem(sql.FieldGT(FieldPaymentID, v))
}

// PaymentIDGTE applies the GTE predicate on the "payment_id" field.
func PaymentIDGTE(v uuid.UUID) predicate.PayoutItem {
	return predicate.PayoutItem(sql.FieldGTE(FieldPaymentID, v))
}

// PaymentIDLT applies the LT predicate on the "payment_id" field.
func PaymentIDLT(v uuid.UUID) predicate.PayoutItem {
	return predicate.PayoutItem(sql.FieldLT(FieldPaymentID, v))
}

// PaymentIDLTE applies the LTE predicate on the "payment_id" field.
func PaymentIDLTE(v uuid.UUID) predicate.PayoutItem {
	return predicate.PayoutItem(sql.FieldLTE(FieldPaymentID, v))
}

// PatientTypeEQ applies the EQ predicate on the "patient_type" field.
func PatientTypeEQ(v PatientType) predicate.PayoutItem {
	return predicate.PayoutItem(sql.FieldEQ(FieldPatientType, v))
}

// PatientTypeNEQ applies the NEQ predicate on the "patient_type" field.
func PatientTypeNEQ(v PatientType) predicate.PayoutItem {
	return predicate.PayoutItem(sql.FieldNEQ(FieldPatientType, v))
}

// PatientTypeIn applies the In predicate on the "patient_type" field.
func PatientTypeIn(vs ...PatientType) predicate.PayoutItem {
	return predicate.PayoutItem(sql.FieldIn(FieldPatientType, vs...))
}

// PatientTypeNotIn applies the NotIn predicate on the "patient_type" field.
func PatientTypeNotIn(vs ...PatientType) predicate.PayoutItem {
	return predicate.PayoutItem(sql.FieldNotIn(FieldPatientType, vs...))
}

// PaymentAmountEQ applies the EQ predicate on the "payment_amount" field.
func PaymentAmountEQ(v int64) predicate.PayoutItem {
	return predicate.PayoutItem(sql.FieldEQ(FieldPaymentAmount, v))
}

// PaymentAmountNEQ applies the NEQ predicate on the "payment_amount" field.
func PaymentAmountNEQ(v int64) predicate.PayoutItem {
	return predicate.PayoutItem(sql.FieldNEQ(FieldPaymentAmount, v))
}

// PaymentAmountIn applies the In predicate on the "payment_amount" field.
func PaymentAmountIn(vs ...int64) predicate.PayoutItem {
	return predicate.PayoutItem(sql.FieldIn(FieldPaymentAmount, vs...))
}

// PaymentAmountNotIn applies the NotIn predicate on the "payment_amount" field.
func PaymentAmountNotIn(vs ...int64) predicate.PayoutItem {
	return predicate.PayoutItem(sql.FieldNotIn(FieldPaymentAmount, vs...))
}

// PaymentAmountGT applies the GT predicate on the "payment_amount" field.
func PaymentAmountGT(v int64) predicate.PayoutItem {
	return predicate.PayoutItem(sql.FieldGT(FieldPaymentAmount, v))
}

// PaymentAmountGTE applies the GTE predicate on the "payment_amount" field.
func PaymentAmountGTE(v int64) predicate.PayoutItem {
	return predicate.PayoutItem(sql.FieldGTE(FieldPaymentAmount, v))
}

// PaymentAmountLT applies the LT predicate on the "payment_amount" field.
func PaymentAmountLT(v int64) predicate.PayoutItem {
	return predicate.PayoutItem(sql.FieldLT(FieldPaymentAmount, v))
}

// PaymentAmountLTE applies the LTE predicate on the "payment_amount" field.
func PaymentAmountLTE(v int64) predicate.PayoutItem {
	return predicate.PayoutItem(sql.FieldLTE(FieldPaymentAmount, v))
}

// CommissionRateEQ applies the EQ predicate on the "commission_rate" field.
func CommissionRateEQ(v int) predicate.PayoutItem {
	return predicate.PayoutItem(sql.FieldEQ(FieldCommissionRate, v))
}

// CommissionRateNEQ applies the NEQ predicate on the "commission_rate" field.
func CommissionRateNEQ(v int) predicate.PayoutItem {
	return predicate.PayoutItem(sql.FieldNEQ(FieldCommissionRate, v))
}

// CommissionRateIn applies the In predicate on the "commission_rate" field.
func CommissionRateIn(vs ...int) predicate.PayoutItem {
	return predicate.PayoutItem(sql.FieldIn(FieldCommissionRate, vs...))
}

// CommissionRateNotIn applies the NotIn predicate on the "commission_rate" field.
func CommissionRateNotIn(vs ...int) predicate.PayoutItem {
	return predicate.PayoutItem(sql.FieldNotIn(FieldCommissionRate, vs...))
}

// CommissionRateGT applies the GT predicate on the "commission_rate" field.
func CommissionRateGT(v int) predicate.PayoutItem {
	return predicate.PayoutItem(sql.FieldGT(FieldCommissionRate, v))
}

// CommissionRateGTE applies the GTE predicate on the "commission_rate" field.
func CommissionRateGTE(v int) predicate.PayoutItem {
	return predicate.PayoutItem(sql.FieldGTE(FieldCommissionRate, v))
}

// CommissionRateLT applies the LT predicate on the "commission_rate" field.
func CommissionRateLT(v int) predicate.PayoutItem {
	return predicate.PayoutItem(sql.FieldLT(FieldCommissionRate, v))
}

// CommissionRateLTE applies the LTE predicate on the "commission_rate" field.
func CommissionRateLTE(v int) predicate.PayoutItem {
	return predicate.PayoutItem(sql.FieldLTE(FieldCommissionRate, v))
}

// CommissionAmountEQ applies the EQ predicate on the "commission_amount" field.
func CommissionAmountEQ(v int64) predicate.PayoutItem {
	return predicate.PayoutItem(sql.FieldEQ(FieldCommissionAmount, v))
}

// CommissionAmountNEQ applies the NEQ predicate on the "commission_amount" field.
func CommissionAmountNEQ(v int64) predicate.PayoutItem {
	return predicate.PayoutItem(sql.FieldNEQ(FieldCommissionAmount, v))
}

// CommissionAmountIn applies the In predicate on the "commission_amount" field.
func CommissionAmountIn(vs ...int64) predicate.PayoutItem {
	return predicate.PayoutItem(sql.FieldIn(FieldCommissionAmount, vs...))
}

// CommissionAmountNotIn applies the NotIn predicate on the "commission_amount" field.
func CommissionAmountNotIn(vs ...int64) predicate.PayoutItem {
	return predicate.PayoutItem(sql.FieldNotIn(FieldCommissionAmount, vs...))
}

// CommissionAmountGT applies the GT predicate on the "commission_amount" field.
func CommissionAmountGT(v int64) predicate.PayoutItem {
	return predicate.PayoutItem(sql.FieldGT(FieldCommissionAmount, v))
}

// CommissionAmountGTE applies the GTE predicate on the "commission_amount" field.
func CommissionAmountGTE(v int64) predicate.PayoutItem {
	return predicate.PayoutItem(sql.FieldGTE(FieldCommissionAmount, v))
}

// CommissionAmountLT applies the LT predicate on the "commission_amount" field.
func CommissionAmountLT(v int64) predicate.PayoutItem {
	return predicate.PayoutItem(sql.FieldLT(FieldCommissionAmount, v))
}

// CommissionAmountLTE applies the LTE predicate on the "commission_amount" field.
func CommissionAmountLTE(v int64) predicate.PayoutItem {
	return predicate.PayoutItem(sql.FieldLTE(FieldCommissionAmount, v))
}

// HasPayout applies the HasEdge predicate on the "payout" edge.
func HasPayout() predicate.PayoutItem {
	return predicate.PayoutItem(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, PayoutTable, PayoutColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPayoutWith applies the HasEdge predicate on the "payout" edge with a given conditions (other predicates).
func HasPayoutWith(preds ...predicate.TherapistPayout) predicate.PayoutItem {
	return predicate.PayoutItem(func(s *sql.Selector) {
		step := newPayoutStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PayoutItem) predicate.PayoutItem {
	return predicate.PayoutItem(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PayoutItem) predicate.PayoutItem {
	return predicate.PayoutItem(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PayoutItem) predicate.PayoutItem {
	return predicate.PayoutItem(sql.NotPredicates(p))
}
