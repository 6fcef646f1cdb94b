package payout_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/fundacionaurora/clinica_backend/internal/commission"
	"github.com/fundacionaurora/clinica_backend/internal/repo"
	entpatient "github.com/fundacionaurora/clinica_backend/internal/repo/patient"
	entpayment "github.com/fundacionaurora/clinica_backend/internal/repo/payment"
	entitem "github.com/fundacionaurora/clinica_backend/internal/repo/payoutitem"
	entpayout "github.com/fundacionaurora/clinica_backend/internal/repo/therapistpayout"
	entuser "github.com/fundacionaurora/clinica_backend/internal/repo/user"
	"github.com/fundacionaurora/clinica_backend/internal/service/audit"
	"github.com/fundacionaurora/clinica_backend/internal/service/payout"
	"github.com/fundacionaurora/clinica_backend/internal/service/rates"
	"github.com/fundacionaurora/clinica_backend/internal/service/user"
	"github.com/fundacionaurora/clinica_backend/internal/testdb"
)

var (
	periodStart = time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	periodEnd   = time.Date(2026, 7, 31, 23, 59, 59, 0, time.UTC)

	testAESKey = []byte("0123456789abcdef0123456789abcdef")
)

type fixture struct {
	db        *repo.Client
	svc       payout.Service
	rates     rates.Service
	users     user.Service
	therapist *repo.User
	admin     *repo.User
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	db := testdb.New(t)

	therapist, err := db.User.Create().
		SetName("María López").
		SetEmail("maria@example.org").
		SetRole(entuser.RoleTerapeuta).
		Save(ctx)
	if err != nil {
		t.Fatalf("seed therapist: %v", err)
	}

	admin, err := db.User.Create().
		SetName("Admin").
		SetEmail("admin@example.org").
		SetRole(entuser.RoleAdmin).
		Save(ctx)
	if err != nil {
		t.Fatalf("seed admin: %v", err)
	}

	auditSvc := audit.New(db, nil, slog.Default())
	ratesSvc := rates.New(db, auditSvc)
	userSvc := user.New(db, nil, testAESKey, nil)
	svc := payout.New(db, ratesSvc, auditSvc, nil, userSvc)

	return &fixture{db: db, svc: svc, rates: ratesSvc, users: userSvc, therapist: therapist, admin: admin}
}

func (f *fixture) addPatient(t *testing.T, ptype entpatient.Type, primary *uuid.UUID) *repo.Patient {
	t.Helper()
	c := f.db.Patient.Create().
		SetFirstName("Paciente").
		SetLastName(string(ptype)).
		SetType(ptype)
	if primary != nil {
		c = c.SetPrimaryTherapistID(*primary)
	}
	p, err := c.Save(context.Background())
	if err != nil {
		t.Fatalf("seed patient: %v", err)
	}
	return p
}

func (f *fixture) addAppointment(t *testing.T, therapistID, patientID uuid.UUID, at time.Time) *repo.Appointment {
	t.Helper()
	a, err := f.db.Appointment.Create().
		SetTherapistID(therapistID).
		SetPatientID(patientID).
		SetStartTime(at).
		SetEndTime(at.Add(time.Hour)).
		Save(context.Background())
	if err != nil {
		t.Fatalf("seed appointment: %v", err)
	}
	return a
}

type paymentOpts struct {
	appointmentID *uuid.UUID
	status        string
	date          time.Time
}

func (f *fixture) addPayment(t *testing.T, patientID uuid.UUID, amount int64, opts paymentOpts) *repo.Payment {
	t.Helper()
	if opts.status == "" {
		opts.status = "pagado"
	}
	if opts.date.IsZero() {
		opts.date = periodStart.Add(24 * time.Hour)
	}
	c := f.db.Payment.Create().
		SetPatientID(patientID).
		SetAmount(amount).
		SetDate(opts.date).
		SetStatus(entpayment.Status(opts.status))
	if opts.appointmentID != nil {
		c = c.SetAppointmentID(*opts.appointmentID)
	}
	p, err := c.Save(context.Background())
	if err != nil {
		t.Fatalf("seed payment: %v", err)
	}
	return p
}

func monthlyReq(therapistID uuid.UUID) payout.PeriodRequest {
	return payout.PeriodRequest{
		TherapistID: therapistID,
		PeriodStart: periodStart,
		PeriodEnd:   periodEnd,
		PayoutType:  commission.PayoutMensual,
	}
}

func TestCreateEmptyPeriod(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Create(context.Background(), f.admin.ID, payout.CreateRequest{
		PeriodRequest: monthlyReq(f.therapist.ID),
	})
	if err != payout.ErrEmptyPeriod {
		t.Fatalf("expected ErrEmptyPeriod, got %v", err)
	}

	count, _ := f.db.TherapistPayout.Query().Count(context.Background())
	if count != 0 {
		t.Errorf("expected no payout rows, got %d", count)
	}
}

func TestCreateSettlesExternalPatient(t *testing.T) {
	// One paid 1000.00 payment from an external patient, default rates:
	// commission 5% = 50.00, deduction 4% of 950.00 = 38.00, net 912.00.
	f := newFixture(t)
	ctx := context.Background()

	patient := f.addPatient(t, entpatient.TypeExterno, nil)
	appt := f.addAppointment(t, f.therapist.ID, patient.ID, periodStart.Add(48*time.Hour))
	f.addPayment(t, patient.ID, 100000, paymentOpts{appointmentID: &appt.ID})

	header, err := f.svc.Create(ctx, f.admin.ID, payout.CreateRequest{
		PeriodRequest: monthlyReq(f.therapist.ID),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if header.GrossAmount != 100000 {
		t.Errorf("gross = %d, want 100000", header.GrossAmount)
	}
	if header.CommissionAmount != 5000 {
		t.Errorf("commission = %d, want 5000", header.CommissionAmount)
	}
	if header.DeductionAmount != 3800 {
		t.Errorf("deduction = %d, want 3800", header.DeductionAmount)
	}
	if header.NetAmount != 91200 {
		t.Errorf("net = %d, want 91200", header.NetAmount)
	}
	if header.Status != entpayout.StatusPendiente {
		t.Errorf("status = %s, want pendiente", header.Status)
	}

	items, err := f.db.PayoutItem.Query().
		Where(entitem.PayoutID(header.ID)).
		All(ctx)
	if err != nil {
		t.Fatalf("load items: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("items = %d, want 1", len(items))
	}
	if items[0].CommissionRate != 500 {
		t.Errorf("snapshot rate = %d, want 500", items[0].CommissionRate)
	}
	if items[0].PatientType != entitem.PatientTypeExterno {
		t.Errorf("snapshot patient type = %s, want externo", items[0].PatientType)
	}
}

func TestCreateItemSumsMatchHeader(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	internal := f.addPatient(t, entpatient.TypeFundacion, &f.therapist.ID)
	external := f.addPatient(t, entpatient.TypeExterno, &f.therapist.ID)

	amounts := []int64{12345, 333, 100, 99999, 1}
	for i, amt := range amounts {
		pid := internal.ID
		if i%2 == 1 {
			pid = external.ID
		}
		f.addPayment(t, pid, amt, paymentOpts{})
	}

	header, err := f.svc.Create(ctx, f.admin.ID, payout.CreateRequest{
		PeriodRequest: monthlyReq(f.therapist.ID),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	items, err := f.db.PayoutItem.Query().
		Where(entitem.PayoutID(header.ID)).
		All(ctx)
	if err != nil {
		t.Fatalf("load items: %v", err)
	}
	if len(items) != len(amounts) {
		t.Fatalf("items = %d, want %d", len(items), len(amounts))
	}

	var gross, comm int64
	for _, it := range items {
		gross += it.PaymentAmount
		comm += it.CommissionAmount
	}
	if gross != header.GrossAmount {
		t.Errorf("Σ item amounts %d != header gross %d", gross, header.GrossAmount)
	}
	if comm != header.CommissionAmount {
		t.Errorf("Σ item commissions %d != header commission %d", comm, header.CommissionAmount)
	}
	if header.GrossAmount-header.CommissionAmount-header.DeductionAmount != header.NetAmount {
		t.Errorf("header totals do not reconcile: %+v", header)
	}
}

func TestEligibilityAttribution(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	other, err := f.db.User.Create().
		SetName("Otro Terapeuta").
		SetEmail("otro@example.org").
		SetRole(entuser.RoleTerapeuta).
		Save(ctx)
	if err != nil {
		t.Fatalf("seed other therapist: %v", err)
	}

	mine := f.addPatient(t, entpatient.TypeExterno, &f.therapist.ID)
	theirs := f.addPatient(t, entpatient.TypeExterno, &other.ID)

	// Included: appointment with my therapist.
	myAppt := f.addAppointment(t, f.therapist.ID, mine.ID, periodStart.Add(time.Hour))
	f.addPayment(t, mine.ID, 10000, paymentOpts{appointmentID: &myAppt.ID})

	// Included: no appointment, patient's primary therapist is mine.
	f.addPayment(t, mine.ID, 20000, paymentOpts{})

	// Excluded: appointment belongs to the other therapist, even though the
	// patient's primary therapist is mine.
	otherAppt := f.addAppointment(t, other.ID, mine.ID, periodStart.Add(2*time.Hour))
	f.addPayment(t, mine.ID, 40000, paymentOpts{appointmentID: &otherAppt.ID})

	// Excluded: no appointment and primary therapist is someone else.
	f.addPayment(t, theirs.ID, 80000, paymentOpts{})

	// Excluded: pending payment.
	f.addPayment(t, mine.ID, 160000, paymentOpts{status: "pendiente"})

	// Excluded: outside the period.
	f.addPayment(t, mine.ID, 320000, paymentOpts{date: periodEnd.Add(24 * time.Hour)})

	pv, err := f.svc.Preview(ctx, monthlyReq(f.therapist.ID))
	if err != nil {
		t.Fatalf("Preview: %v", err)
	}

	if len(pv.Lines) != 2 {
		t.Fatalf("lines = %d, want 2", len(pv.Lines))
	}
	if pv.Totals.GrossAmount != 30000 {
		t.Errorf("gross = %d, want 30000", pv.Totals.GrossAmount)
	}
}

func TestPreviewDoesNotPersist(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	patient := f.addPatient(t, entpatient.TypeFundacion, &f.therapist.ID)
	f.addPayment(t, patient.ID, 50000, paymentOpts{})

	first, err := f.svc.Preview(ctx, monthlyReq(f.therapist.ID))
	if err != nil {
		t.Fatalf("Preview: %v", err)
	}
	second, err := f.svc.Preview(ctx, monthlyReq(f.therapist.ID))
	if err != nil {
		t.Fatalf("Preview: %v", err)
	}
	if first.Totals != second.Totals {
		t.Errorf("previews differ: %+v vs %+v", first.Totals, second.Totals)
	}

	payouts, _ := f.db.TherapistPayout.Query().Count(ctx)
	items, _ := f.db.PayoutItem.Query().Count(ctx)
	if payouts != 0 || items != 0 {
		t.Errorf("preview persisted rows: %d payouts, %d items", payouts, items)
	}
}

func TestPreviewEmptyPeriodIsZero(t *testing.T) {
	f := newFixture(t)

	pv, err := f.svc.Preview(context.Background(), monthlyReq(f.therapist.ID))
	if err != nil {
		t.Fatalf("Preview: %v", err)
	}
	if len(pv.Lines) != 0 {
		t.Errorf("lines = %d, want 0", len(pv.Lines))
	}
	if pv.Totals.NetAmount != 0 || pv.Totals.GrossAmount != 0 {
		t.Errorf("totals not zero: %+v", pv.Totals)
	}
}

func TestInvalidPeriod(t *testing.T) {
	f := newFixture(t)

	req := monthlyReq(f.therapist.ID)
	req.PeriodStart, req.PeriodEnd = req.PeriodEnd, req.PeriodStart

	if _, err := f.svc.Preview(context.Background(), req); err != payout.ErrInvalidPeriod {
		t.Errorf("expected ErrInvalidPeriod, got %v", err)
	}
}

func TestMarkPaidLifecycle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	patient := f.addPatient(t, entpatient.TypeExterno, &f.therapist.ID)
	f.addPayment(t, patient.ID, 100000, paymentOpts{})

	header, err := f.svc.Create(ctx, f.admin.ID, payout.CreateRequest{
		PeriodRequest: monthlyReq(f.therapist.ID),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	ref := "TRF-2026-0042"
	paid, err := f.svc.MarkPaid(ctx, f.admin.ID, header.ID, payout.MarkPaidRequest{BankTransferRef: &ref})
	if err != nil {
		t.Fatalf("MarkPaid: %v", err)
	}

	if paid.Status != entpayout.StatusPagado {
		t.Errorf("status = %s, want pagado", paid.Status)
	}
	if paid.PaidAt == nil {
		t.Error("paid_at not set")
	}
	if paid.BankTransferRef == nil || *paid.BankTransferRef != ref {
		t.Errorf("bank_transfer_ref = %v, want %q", paid.BankTransferRef, ref)
	}

	// Totals are untouched by the transition.
	if paid.NetAmount != header.NetAmount {
		t.Errorf("net changed on mark paid: %d -> %d", header.NetAmount, paid.NetAmount)
	}

	// The transition is one-way.
	if _, err := f.svc.MarkPaid(ctx, f.admin.ID, header.ID, payout.MarkPaidRequest{}); err != payout.ErrAlreadyPaid {
		t.Errorf("expected ErrAlreadyPaid, got %v", err)
	}
}

func TestMarkPaidNotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.MarkPaid(context.Background(), f.admin.ID, uuid.New(), payout.MarkPaidRequest{})
	if err != payout.ErrPayoutNotFound {
		t.Errorf("expected ErrPayoutNotFound, got %v", err)
	}
}

func TestGetByID(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	patient := f.addPatient(t, entpatient.TypeFundacion, &f.therapist.ID)
	f.addPayment(t, patient.ID, 30000, paymentOpts{})
	f.addPayment(t, patient.ID, 70000, paymentOpts{})

	header, err := f.svc.Create(ctx, f.admin.ID, payout.CreateRequest{
		PeriodRequest: monthlyReq(f.therapist.ID),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	detail, err := f.svc.GetByID(ctx, header.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if detail.Payout.ID != header.ID {
		t.Errorf("wrong payout returned")
	}
	if len(detail.Items) != 2 {
		t.Errorf("items = %d, want 2", len(detail.Items))
	}

	if _, err := f.svc.GetByID(ctx, uuid.New()); err != payout.ErrPayoutNotFound {
		t.Errorf("expected ErrPayoutNotFound, got %v", err)
	}
}

func TestGetByIDIncludesBankAccount(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if err := f.users.SetBankAccount(ctx, f.therapist.ID, user.SetBankAccountRequest{
		BankName:      "Banco Aurora",
		AccountHolder: "María López",
		IBAN:          "ES91 2100 0418 4502 0005 1332",
	}); err != nil {
		t.Fatalf("SetBankAccount: %v", err)
	}

	patient := f.addPatient(t, entpatient.TypeExterno, &f.therapist.ID)
	f.addPayment(t, patient.ID, 100000, paymentOpts{})

	header, err := f.svc.Create(ctx, f.admin.ID, payout.CreateRequest{
		PeriodRequest: monthlyReq(f.therapist.ID),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	detail, err := f.svc.GetByID(ctx, header.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if detail.BankAccount == nil {
		t.Fatal("detail has no bank account")
	}
	// The detail is where administration reads the full IBAN for the transfer.
	if detail.BankAccount.IBAN != "ES9121000418450200051332" {
		t.Errorf("iban = %q", detail.BankAccount.IBAN)
	}
	if detail.BankAccount.IBANMasked == detail.BankAccount.IBAN {
		t.Error("masked iban equals full iban")
	}
	if detail.BankAccount.BankName != "Banco Aurora" {
		t.Errorf("bank name = %q", detail.BankAccount.BankName)
	}
}

func TestGetByIDWithoutBankAccount(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	patient := f.addPatient(t, entpatient.TypeExterno, &f.therapist.ID)
	f.addPayment(t, patient.ID, 100000, paymentOpts{})

	header, err := f.svc.Create(ctx, f.admin.ID, payout.CreateRequest{
		PeriodRequest: monthlyReq(f.therapist.ID),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	detail, err := f.svc.GetByID(ctx, header.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if detail.BankAccount != nil {
		t.Errorf("expected nil bank account, got %+v", detail.BankAccount)
	}
}

// failingAudit simulates an audit-store outage.
type failingAudit struct{}

func (failingAudit) Record(context.Context, audit.Entry) error {
	return errors.New("audit store down")
}

func (failingAudit) List(context.Context, audit.ListRequest) (*audit.PaginatedResult[*repo.AuditLog], error) {
	return nil, errors.New("audit store down")
}

func TestCommittedWritesSurviveAuditOutage(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	svc := payout.New(f.db, f.rates, failingAudit{}, nil, nil)

	patient := f.addPatient(t, entpatient.TypeExterno, &f.therapist.ID)
	f.addPayment(t, patient.ID, 100000, paymentOpts{})

	header, err := svc.Create(ctx, f.admin.ID, payout.CreateRequest{
		PeriodRequest: monthlyReq(f.therapist.ID),
	})
	if err != nil {
		t.Fatalf("Create with failing audit store: %v", err)
	}

	count, _ := f.db.TherapistPayout.Query().Count(ctx)
	if count != 1 {
		t.Fatalf("payout rows = %d, want 1", count)
	}

	paid, err := svc.MarkPaid(ctx, f.admin.ID, header.ID, payout.MarkPaidRequest{})
	if err != nil {
		t.Fatalf("MarkPaid with failing audit store: %v", err)
	}
	if paid.Status != entpayout.StatusPagado {
		t.Errorf("status = %s, want pagado", paid.Status)
	}
}

func TestListAndSummary(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	patient := f.addPatient(t, entpatient.TypeExterno, &f.therapist.ID)
	f.addPayment(t, patient.ID, 100000, paymentOpts{})

	first, err := f.svc.Create(ctx, f.admin.ID, payout.CreateRequest{
		PeriodRequest: monthlyReq(f.therapist.ID),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	// Settle a second period.
	f.addPayment(t, patient.ID, 50000, paymentOpts{date: periodEnd.Add(48 * time.Hour)})
	req2 := payout.PeriodRequest{
		TherapistID: f.therapist.ID,
		PeriodStart: periodEnd.Add(time.Second),
		PeriodEnd:   periodEnd.Add(30 * 24 * time.Hour),
		PayoutType:  commission.PayoutPorPago,
	}
	if _, err := f.svc.Create(ctx, f.admin.ID, payout.CreateRequest{PeriodRequest: req2}); err != nil {
		t.Fatalf("Create second: %v", err)
	}

	if _, err := f.svc.MarkPaid(ctx, f.admin.ID, first.ID, payout.MarkPaidRequest{}); err != nil {
		t.Fatalf("MarkPaid: %v", err)
	}

	list, err := f.svc.List(ctx, payout.ListRequest{TherapistID: &f.therapist.ID})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if list.Total != 2 || len(list.Data) != 2 {
		t.Fatalf("list total = %d len = %d, want 2/2", list.Total, len(list.Data))
	}

	status := "pagado"
	paidOnly, err := f.svc.List(ctx, payout.ListRequest{Status: &status})
	if err != nil {
		t.Fatalf("List paid: %v", err)
	}
	if paidOnly.Total != 1 {
		t.Errorf("paid list total = %d, want 1", paidOnly.Total)
	}

	sum, err := f.svc.Summary(ctx)
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if sum.Paid.Count != 1 || sum.Pending.Count != 1 {
		t.Errorf("summary counts = %+v", sum)
	}
	if sum.Paid.NetTotal != first.NetAmount {
		t.Errorf("paid net total = %d, want %d", sum.Paid.NetTotal, first.NetAmount)
	}
}

func TestCustomRatesSnapshot(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ten, twenty := 1000, 2000
	if _, err := f.rates.Update(ctx, f.admin.ID, rates.UpdateRequest{
		ExternalRate:     &ten,
		DeductionMonthly: &twenty,
	}); err != nil {
		t.Fatalf("update rates: %v", err)
	}

	patient := f.addPatient(t, entpatient.TypeExterno, &f.therapist.ID)
	f.addPayment(t, patient.ID, 100000, paymentOpts{})

	header, err := f.svc.Create(ctx, f.admin.ID, payout.CreateRequest{
		PeriodRequest: monthlyReq(f.therapist.ID),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	// 10% commission = 10000, 20% of 90000 = 18000, net 72000.
	if header.CommissionAmount != 10000 || header.DeductionAmount != 18000 || header.NetAmount != 72000 {
		t.Errorf("totals with custom rates: %+v", header)
	}

	item, err := f.db.PayoutItem.Query().
		Where(entitem.PayoutID(header.ID)).
		Only(ctx)
	if err != nil {
		t.Fatalf("load item: %v", err)
	}
	if item.CommissionRate != 1000 {
		t.Errorf("snapshot rate = %d, want 1000", item.CommissionRate)
	}

	// Later rate changes must not disturb the settled snapshot.
	five := 500
	if _, err := f.rates.Update(ctx, f.admin.ID, rates.UpdateRequest{ExternalRate: &five}); err != nil {
		t.Fatalf("update rates again: %v", err)
	}
	reloaded, err := f.svc.GetByID(ctx, header.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if reloaded.Items[0].CommissionRate != 1000 {
		t.Errorf("snapshot mutated after rate change")
	}
}
