// Package payout implements the therapist settlement engine: eligibility,
// commission calculation, atomic settlement and the payment lifecycle.
package payout

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/fundacionaurora/clinica_backend/internal/commission"
	"github.com/fundacionaurora/clinica_backend/internal/repo"
	entappt "github.com/fundacionaurora/clinica_backend/internal/repo/appointment"
	entpatient "github.com/fundacionaurora/clinica_backend/internal/repo/patient"
	entpayment "github.com/fundacionaurora/clinica_backend/internal/repo/payment"
	entitem "github.com/fundacionaurora/clinica_backend/internal/repo/payoutitem"
	entpayout "github.com/fundacionaurora/clinica_backend/internal/repo/therapistpayout"
	entuser "github.com/fundacionaurora/clinica_backend/internal/repo/user"
	"github.com/fundacionaurora/clinica_backend/internal/service/audit"
	"github.com/fundacionaurora/clinica_backend/internal/service/notify"
	"github.com/fundacionaurora/clinica_backend/internal/service/user"
)

const PageSize = 20

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type PeriodRequest struct {
	TherapistID uuid.UUID
	PeriodStart time.Time
	PeriodEnd   time.Time // inclusive
	PayoutType  commission.PayoutType
}

type CreateRequest struct {
	PeriodRequest
	Notes *string
}

type MarkPaidRequest struct {
	BankTransferRef *string
}

type ListRequest struct {
	Page        int
	TherapistID *uuid.UUID
	Status      *string
}

type PaginatedResult[T any] struct {
	Data       []T
	Total      int
	Page       int
	PerPage    int
	TotalPages int
}

// Preview is the non-persisted settlement breakdown.
type Preview struct {
	Lines  []commission.Line
	Totals commission.Totals
	Rates  commission.Rates
}

// Detail is a settled payout with its snapshot lines and the therapist's
// settlement account. BankAccount carries the full IBAN: administration
// executes the transfer from this screen. Nil when none is on file.
type Detail struct {
	Payout      *repo.TherapistPayout
	Items       []*repo.PayoutItem
	BankAccount *user.BankAccountInfo
}

type StatusSummary struct {
	Count    int
	NetTotal int64
}

type Summary struct {
	Pending StatusSummary
	Paid    StatusSummary
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	// Preview computes the breakdown for a period without persisting
	// anything. An empty period previews as zeros, not an error.
	Preview(ctx context.Context, req PeriodRequest) (*Preview, error)

	// Create recomputes the breakdown from scratch and persists header and
	// items in one transaction. Returns ErrEmptyPeriod when nothing is
	// eligible.
	Create(ctx context.Context, actorID uuid.UUID, req CreateRequest) (*repo.TherapistPayout, error)

	// MarkPaid moves a pending payout to paid. The transition is one-way;
	// a second call returns ErrAlreadyPaid.
	MarkPaid(ctx context.Context, actorID, payoutID uuid.UUID, req MarkPaidRequest) (*repo.TherapistPayout, error)

	List(ctx context.Context, req ListRequest) (*PaginatedResult[*repo.TherapistPayout], error)
	GetByID(ctx context.Context, payoutID uuid.UUID) (*Detail, error)
	Summary(ctx context.Context) (*Summary, error)
}

// RatesProvider decouples the engine from the settings store.
type RatesProvider interface {
	Get(ctx context.Context) (commission.Rates, error)
}

// BankAccountProvider resolves the therapist's settlement account for the
// payout detail.
type BankAccountProvider interface {
	GetBankAccount(ctx context.Context, userID uuid.UUID) (*user.BankAccountInfo, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type payoutService struct {
	db     *repo.Client
	rates  RatesProvider
	audit  audit.Service
	notify notify.Service
	bank   BankAccountProvider
}

func New(db *repo.Client, rates RatesProvider, auditSvc audit.Service, notifySvc notify.Service, bankSvc BankAccountProvider) Service {
	return &payoutService{db: db, rates: rates, audit: auditSvc, notify: notifySvc, bank: bankSvc}
}

// eligiblePayments returns the paid payments attributed to the therapist in
// the inclusive period. Attribution is via the appointment's therapist, or,
// for payments without an appointment, the patient's primary therapist.
func (s *payoutService) eligiblePayments(ctx context.Context, req PeriodRequest) ([]*repo.Payment, error) {
	return s.db.Payment.Query().
		Where(
			entpayment.StatusEQ(entpayment.StatusPagado),
			entpayment.DateGTE(req.PeriodStart),
			entpayment.DateLTE(req.PeriodEnd),
			entpayment.Or(
				entpayment.HasAppointmentWith(entappt.TherapistID(req.TherapistID)),
				entpayment.And(
					entpayment.AppointmentIDIsNil(),
					entpayment.HasPatientWith(entpatient.PrimaryTherapistID(req.TherapistID)),
				),
			),
		).
		WithPatient().
		Order(entpayment.ByDate(sql.OrderAsc())).
		All(ctx)
}

func (s *payoutService) compute(ctx context.Context, req PeriodRequest) (*Preview, error) {
	if req.PeriodEnd.Before(req.PeriodStart) {
		return nil, ErrInvalidPeriod
	}

	rates, err := s.rates.Get(ctx)
	if err != nil {
		return nil, err
	}

	payments, err := s.eligiblePayments(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("query eligible payments: %w", err)
	}

	lines := make([]commission.Line, 0, len(payments))
	for _, p := range payments {
		pt := commission.PatientType(p.Edges.Patient.Type)
		line := commission.Calculate(p.ID, p.Amount, pt, rates)
		line.PatientName = p.Edges.Patient.FirstName + " " + p.Edges.Patient.LastName
		line.PaymentDate = p.Date
		lines = append(lines, line)
	}

	return &Preview{
		Lines:  lines,
		Totals: commission.Aggregate(lines, req.PayoutType, rates),
		Rates:  rates,
	}, nil
}

func (s *payoutService) Preview(ctx context.Context, req PeriodRequest) (*Preview, error) {
	return s.compute(ctx, req)
}

func (s *payoutService) Create(ctx context.Context, actorID uuid.UUID, req CreateRequest) (*repo.TherapistPayout, error) {
	// Never trust a client-side preview: recompute against current data.
	pv, err := s.compute(ctx, req.PeriodRequest)
	if err != nil {
		return nil, err
	}
	if len(pv.Lines) == 0 {
		return nil, ErrEmptyPeriod
	}

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	c := tx.TherapistPayout.Create().
		SetTherapistID(req.TherapistID).
		SetPeriodStart(req.PeriodStart).
		SetPeriodEnd(req.PeriodEnd).
		SetPayoutType(entpayout.PayoutType(req.PayoutType)).
		SetGrossAmount(pv.Totals.GrossAmount).
		SetCommissionAmount(pv.Totals.CommissionAmount).
		SetDeductionAmount(pv.Totals.DeductionAmount).
		SetNetAmount(pv.Totals.NetAmount).
		SetCreatedBy(actorID)
	if req.Notes != nil {
		c = c.SetNillableNotes(req.Notes)
	}

	header, err := c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create payout header: %w", err)
	}

	builders := make([]*repo.PayoutItemCreate, 0, len(pv.Lines))
	for _, l := range pv.Lines {
		builders = append(builders, tx.PayoutItem.Create().
			SetPayoutID(header.ID).
			SetPaymentID(l.PaymentID).
			SetPatientType(entitem.PatientType(l.PatientType)).
			SetPaymentAmount(l.PaymentAmount).
			SetCommissionRate(l.CommissionRate).
			SetCommissionAmount(l.CommissionAmount))
	}
	if _, err := tx.PayoutItem.CreateBulk(builders...).Save(ctx); err != nil {
		return nil, fmt.Errorf("create payout items: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit payout: %w", err)
	}

	s.recordAudit(ctx, audit.Entry{
		ActorID:    actorID,
		Action:     "payout.create",
		EntityType: "therapist_payout",
		EntityID:   header.ID.String(),
		Details: map[string]any{
			"therapist_id": req.TherapistID,
			"period_start": req.PeriodStart,
			"period_end":   req.PeriodEnd,
			"payout_type":  req.PayoutType,
			"net_amount":   pv.Totals.NetAmount,
			"items":        len(pv.Lines),
		},
	})

	return header, nil
}

// recordAudit writes the trail entry after the settlement write has already
// committed: a failing audit store is logged, never surfaced to the caller.
func (s *payoutService) recordAudit(ctx context.Context, e audit.Entry) {
	if s.audit == nil {
		return
	}
	if err := s.audit.Record(ctx, e); err != nil {
		slog.WarnContext(ctx, "record audit entry", "action", e.Action, "entity_id", e.EntityID, "error", err)
	}
}

func (s *payoutService) MarkPaid(ctx context.Context, actorID, payoutID uuid.UUID, req MarkPaidRequest) (*repo.TherapistPayout, error) {
	now := time.Now()

	// Conditional update: only a pending payout transitions. Zero rows means
	// the payout is missing or already paid.
	n, err := s.db.TherapistPayout.Update().
		Where(
			entpayout.ID(payoutID),
			entpayout.StatusEQ(entpayout.StatusPendiente),
		).
		SetStatus(entpayout.StatusPagado).
		SetPaidAt(now).
		SetNillableBankTransferRef(req.BankTransferRef).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("mark payout paid: %w", err)
	}
	if n == 0 {
		exists, err := s.db.TherapistPayout.Query().
			Where(entpayout.ID(payoutID)).
			Exist(ctx)
		if err != nil {
			return nil, fmt.Errorf("check payout: %w", err)
		}
		if !exists {
			return nil, ErrPayoutNotFound
		}
		return nil, ErrAlreadyPaid
	}

	p, err := s.db.TherapistPayout.Get(ctx, payoutID)
	if err != nil {
		return nil, fmt.Errorf("reload payout: %w", err)
	}

	s.recordAudit(ctx, audit.Entry{
		ActorID:    actorID,
		Action:     "payout.mark_paid",
		EntityType: "therapist_payout",
		EntityID:   p.ID.String(),
		Details: map[string]any{
			"therapist_id":      p.TherapistID,
			"net_amount":        p.NetAmount,
			"bank_transfer_ref": p.BankTransferRef,
		},
	})

	s.notifyPaid(ctx, p)

	return p, nil
}

// notifyPaid resolves the therapist's contact details and fires the
// best-effort notification fan-out.
func (s *payoutService) notifyPaid(ctx context.Context, p *repo.TherapistPayout) {
	if s.notify == nil {
		return
	}

	therapist, err := s.db.User.Query().
		Where(entuser.ID(p.TherapistID)).
		Only(ctx)
	if err != nil {
		// The settlement is done; a missing contact only mutes the notice.
		return
	}

	ev := notify.PayoutPaidEvent{
		PayoutID:       p.ID,
		TherapistID:    p.TherapistID,
		TherapistName:  therapist.Name,
		TherapistEmail: therapist.Email,
		PeriodStart:    p.PeriodStart,
		PeriodEnd:      p.PeriodEnd,
		GrossAmount:    p.GrossAmount,
		Commission:     p.CommissionAmount,
		Deduction:      p.DeductionAmount,
		NetAmount:      p.NetAmount,
	}
	if therapist.Phone != nil {
		ev.TherapistPhone = *therapist.Phone
	}
	if p.BankTransferRef != nil {
		ev.TransferRef = *p.BankTransferRef
	}

	_ = s.notify.PayoutPaid(ctx, ev)
}

func (s *payoutService) List(ctx context.Context, req ListRequest) (*PaginatedResult[*repo.TherapistPayout], error) {
	if req.Page < 1 {
		req.Page = 1
	}
	offset := (req.Page - 1) * PageSize

	q := s.db.TherapistPayout.Query()

	if req.TherapistID != nil {
		q = q.Where(entpayout.TherapistID(*req.TherapistID))
	}
	if req.Status != nil {
		q = q.Where(entpayout.StatusEQ(entpayout.Status(*req.Status)))
	}

	total, err := q.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count payouts: %w", err)
	}

	payouts, err := q.
		Order(entpayout.ByCreatedAt(sql.OrderDesc())).
		Offset(offset).
		Limit(PageSize).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list payouts: %w", err)
	}

	totalPages := (total + PageSize - 1) / PageSize
	return &PaginatedResult[*repo.TherapistPayout]{
		Data:       payouts,
		Total:      total,
		Page:       req.Page,
		PerPage:    PageSize,
		TotalPages: totalPages,
	}, nil
}

func (s *payoutService) GetByID(ctx context.Context, payoutID uuid.UUID) (*Detail, error) {
	p, err := s.db.TherapistPayout.Query().
		Where(entpayout.ID(payoutID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrPayoutNotFound
		}
		return nil, fmt.Errorf("get payout: %w", err)
	}

	items, err := s.db.PayoutItem.Query().
		Where(entitem.PayoutID(payoutID)).
		Order(entitem.ByCreatedAt(sql.OrderAsc())).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load payout items: %w", err)
	}

	d := &Detail{Payout: p, Items: items}

	if s.bank != nil {
		acct, err := s.bank.GetBankAccount(ctx, p.TherapistID)
		switch {
		case err == nil:
			d.BankAccount = acct
		case errors.Is(err, user.ErrBankAccountNotFound):
			// No account on file yet; the detail still renders.
		default:
			return nil, fmt.Errorf("load bank account: %w", err)
		}
	}

	return d, nil
}

func (s *payoutService) Summary(ctx context.Context) (*Summary, error) {
	out := &Summary{}

	for _, st := range []struct {
		status entpayout.Status
		dst    *StatusSummary
	}{
		{entpayout.StatusPendiente, &out.Pending},
		{entpayout.StatusPagado, &out.Paid},
	} {
		q := s.db.TherapistPayout.Query().
			Where(entpayout.StatusEQ(st.status))

		count, err := q.Count(ctx)
		if err != nil {
			return nil, fmt.Errorf("count %s payouts: %w", st.status, err)
		}
		st.dst.Count = count

		if count == 0 {
			continue
		}

		sum, err := s.db.TherapistPayout.Query().
			Where(entpayout.StatusEQ(st.status)).
			Aggregate(repo.Sum(entpayout.FieldNetAmount)).
			Int(ctx)
		if err != nil {
			return nil, fmt.Errorf("sum %s payouts: %w", st.status, err)
		}
		st.dst.NetTotal = int64(sum)
	}

	return out, nil
}
