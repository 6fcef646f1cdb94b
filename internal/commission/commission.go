// Package commission holds the payout calculation core: pure integer
// arithmetic over captured payments, with no storage dependency. Preview and
// settlement both run through this package so their totals cannot drift.
package commission

import (
	"time"

	"github.com/google/uuid"
)

// Rate values are basis points: 10000 = 100%.
const (
	RateScale = 10000

	DefaultInternalRate        = 2000
	DefaultExternalRate        = 500
	DefaultDeductionMonthly    = 400
	DefaultDeductionPerPayment = 700
)

// Setting keys for the four global rates.
const (
	KeyInternalRate        = "commission_internal_rate"
	KeyExternalRate        = "commission_external_rate"
	KeyDeductionMonthly    = "payout_deduction_monthly"
	KeyDeductionPerPayment = "payout_deduction_per_payment"
)

type PatientType string

const (
	PatientFundacion PatientType = "fundacion"
	PatientExterno   PatientType = "externo"
)

type PayoutType string

const (
	PayoutMensual PayoutType = "mensual"
	PayoutPorPago PayoutType = "por_pago"
)

// Rates is the global rate configuration in effect for one calculation.
type Rates struct {
	InternalRate        int
	ExternalRate        int
	DeductionMonthly    int
	DeductionPerPayment int
}

// DefaultRates returns the hardcoded fallback used when a setting row is
// missing.
func DefaultRates() Rates {
	return Rates{
		InternalRate:        DefaultInternalRate,
		ExternalRate:        DefaultExternalRate,
		DeductionMonthly:    DefaultDeductionMonthly,
		DeductionPerPayment: DefaultDeductionPerPayment,
	}
}

// RateFor selects the commission tier for a patient classification.
func (r Rates) RateFor(pt PatientType) int {
	if pt == PatientExterno {
		return r.ExternalRate
	}
	return r.InternalRate
}

// DeductionFor selects the payout deduction rate.
func (r Rates) DeductionFor(pt PayoutType) int {
	if pt == PayoutMensual {
		return r.DeductionMonthly
	}
	return r.DeductionPerPayment
}

// Line is one eligible payment with its calculated commission.
type Line struct {
	PaymentID        uuid.UUID
	PatientName      string
	PatientType      PatientType
	PaymentDate      time.Time
	PaymentAmount    int64
	CommissionRate   int
	CommissionAmount int64
}

// Totals is the aggregated settlement breakdown for a set of lines.
type Totals struct {
	GrossAmount      int64
	CommissionAmount int64
	DeductionRate    int
	DeductionAmount  int64
	NetAmount        int64
}

// Apply computes rate/RateScale of amount, rounding half up on the exact
// integer product. The whole system uses this single rounding rule; floating
// point is never involved, so two runs over the same inputs always produce
// identical results.
func Apply(amount int64, rateBP int) int64 {
	return (amount*int64(rateBP) + RateScale/2) / RateScale
}

// Calculate builds the commission line for one payment.
func Calculate(paymentID uuid.UUID, amount int64, pt PatientType, rates Rates) Line {
	rate := rates.RateFor(pt)
	return Line{
		PaymentID:        paymentID,
		PatientType:      pt,
		PaymentAmount:    amount,
		CommissionRate:   rate,
		CommissionAmount: Apply(amount, rate),
	}
}

// Aggregate reduces calculated lines into the payout totals. The deduction
// applies to the amount remaining after commission, with the rate chosen by
// payout type.
func Aggregate(lines []Line, pt PayoutType, rates Rates) Totals {
	var gross, totalCommission int64
	for _, l := range lines {
		gross += l.PaymentAmount
		totalCommission += l.CommissionAmount
	}

	afterCommission := gross - totalCommission
	deductionRate := rates.DeductionFor(pt)
	deduction := Apply(afterCommission, deductionRate)

	return Totals{
		GrossAmount:      gross,
		CommissionAmount: totalCommission,
		DeductionRate:    deductionRate,
		DeductionAmount:  deduction,
		NetAmount:        afterCommission - deduction,
	}
}
