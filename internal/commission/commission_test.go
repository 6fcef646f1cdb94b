package commission

import (
	"math/rand"
	"testing"

	"github.com/google/uuid"
)

func TestApply(t *testing.T) {
	tests := []struct {
		name   string
		amount int64
		rate   int
		want   int64
	}{
		{"20% of 100", 100, 2000, 20},
		{"20% of 333 rounds half up", 333, 2000, 67},
		{"5% of 100000", 100000, 500, 5000},
		{"4% of 95000", 95000, 400, 3800},
		{"zero rate", 12345, 0, 0},
		{"full rate", 12345, 10000, 12345},
		{"zero amount", 0, 2000, 0},
		{"exact half rounds up", 25, 1000, 3}, // 25*1000 = 25000, +5000 = 30000 / 10000 = 3
		{"just below half rounds down", 24, 1000, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Apply(tt.amount, tt.rate)
			if got != tt.want {
				t.Errorf("Apply(%d, %d) = %d, want %d", tt.amount, tt.rate, got, tt.want)
			}
		})
	}
}

func TestApplyBounds(t *testing.T) {
	// Deterministic seed: the same cases run on every machine.
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 2000; i++ {
		amount := rng.Int63n(10_000_000)
		rate := rng.Intn(RateScale + 1)

		got := Apply(amount, rate)
		if got < 0 || got > amount {
			t.Fatalf("Apply(%d, %d) = %d, outside [0, amount]", amount, rate, got)
		}
		if again := Apply(amount, rate); again != got {
			t.Fatalf("Apply(%d, %d) not deterministic: %d then %d", amount, rate, got, again)
		}
	}
}

func TestRateFor(t *testing.T) {
	r := Rates{InternalRate: 2000, ExternalRate: 500}

	if got := r.RateFor(PatientExterno); got != 500 {
		t.Errorf("RateFor(externo) = %d, want 500", got)
	}
	if got := r.RateFor(PatientFundacion); got != 2000 {
		t.Errorf("RateFor(fundacion) = %d, want 2000", got)
	}
}

func TestAggregateSingleMonthlyPayment(t *testing.T) {
	// One eligible payment of 100000 for an external patient, monthly payout:
	// commission 5%, deduction 4% of the remainder.
	rates := Rates{
		InternalRate:        2000,
		ExternalRate:        500,
		DeductionMonthly:    400,
		DeductionPerPayment: 700,
	}

	line := Calculate(uuid.New(), 100000, PatientExterno, rates)
	if line.CommissionAmount != 5000 {
		t.Fatalf("commission = %d, want 5000", line.CommissionAmount)
	}
	if line.CommissionRate != 500 {
		t.Fatalf("snapshotted rate = %d, want 500", line.CommissionRate)
	}

	totals := Aggregate([]Line{line}, PayoutMensual, rates)

	if totals.GrossAmount != 100000 {
		t.Errorf("gross = %d, want 100000", totals.GrossAmount)
	}
	if totals.CommissionAmount != 5000 {
		t.Errorf("commission = %d, want 5000", totals.CommissionAmount)
	}
	if totals.DeductionAmount != 3800 {
		t.Errorf("deduction = %d, want 3800", totals.DeductionAmount)
	}
	if totals.NetAmount != 91200 {
		t.Errorf("net = %d, want 91200", totals.NetAmount)
	}
}

func TestAggregateDeductionRateSelection(t *testing.T) {
	rates := DefaultRates()
	lines := []Line{Calculate(uuid.New(), 50000, PatientFundacion, rates)}

	monthly := Aggregate(lines, PayoutMensual, rates)
	if monthly.DeductionRate != rates.DeductionMonthly {
		t.Errorf("mensual deduction rate = %d, want %d", monthly.DeductionRate, rates.DeductionMonthly)
	}

	perPayment := Aggregate(lines, PayoutPorPago, rates)
	if perPayment.DeductionRate != rates.DeductionPerPayment {
		t.Errorf("por_pago deduction rate = %d, want %d", perPayment.DeductionRate, rates.DeductionPerPayment)
	}
}

func TestAggregateEmpty(t *testing.T) {
	totals := Aggregate(nil, PayoutMensual, DefaultRates())
	if totals.GrossAmount != 0 || totals.CommissionAmount != 0 || totals.DeductionAmount != 0 || totals.NetAmount != 0 {
		t.Errorf("empty aggregate not zero: %+v", totals)
	}
}

// TestAggregateConsistency checks the ledger invariants over random item
// sets: item sums match the header totals and gross − commission − deduction
// equals net, exactly.
func TestAggregateConsistency(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 1000; i++ {
		rates := Rates{
			InternalRate:        rng.Intn(RateScale + 1),
			ExternalRate:        rng.Intn(RateScale + 1),
			DeductionMonthly:    rng.Intn(RateScale + 1),
			DeductionPerPayment: rng.Intn(RateScale + 1),
		}

		n := rng.Intn(30) + 1
		lines := make([]Line, 0, n)
		for j := 0; j < n; j++ {
			pt := PatientFundacion
			if rng.Intn(2) == 1 {
				pt = PatientExterno
			}
			lines = append(lines, Calculate(uuid.New(), rng.Int63n(5_000_000), pt, rates))
		}

		pt := PayoutMensual
		if rng.Intn(2) == 1 {
			pt = PayoutPorPago
		}
		totals := Aggregate(lines, pt, rates)

		var gross, comm int64
		for _, l := range lines {
			gross += l.PaymentAmount
			comm += l.CommissionAmount
		}

		if totals.GrossAmount != gross {
			t.Fatalf("case %d: gross %d != Σ payment %d", i, totals.GrossAmount, gross)
		}
		if totals.CommissionAmount != comm {
			t.Fatalf("case %d: commission %d != Σ item commission %d", i, totals.CommissionAmount, comm)
		}
		if totals.GrossAmount-totals.CommissionAmount-totals.DeductionAmount != totals.NetAmount {
			t.Fatalf("case %d: gross−commission−deduction != net (%+v)", i, totals)
		}

		// Re-running the same inputs must be byte-identical.
		if again := Aggregate(lines, pt, rates); again != totals {
			t.Fatalf("case %d: aggregate not reproducible: %+v then %+v", i, totals, again)
		}
	}
}
