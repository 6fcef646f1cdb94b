// Package notify fans a settlement event out to email, SMS and the message
// bus. Every channel is best-effort: a failed notification never rolls back
// the payment it announces.
package notify

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"github.com/fundacionaurora/clinica_backend/pkg/email"
	"github.com/fundacionaurora/clinica_backend/pkg/sms"
)

const subjectPayoutPaid = "clinica.payouts.paid"

// PayoutPaidEvent carries everything the channels need; the caller resolves
// the therapist contact details.
type PayoutPaidEvent struct {
	PayoutID       uuid.UUID
	TherapistID    uuid.UUID
	TherapistName  string
	TherapistEmail string
	TherapistPhone string
	PeriodStart    time.Time
	PeriodEnd      time.Time
	GrossAmount    int64
	Commission     int64
	Deduction      int64
	NetAmount      int64
	TransferRef    string
}

type Service interface {
	// PayoutPaid notifies the therapist and publishes the event. Always
	// returns nil; failures are logged per channel.
	PayoutPaid(ctx context.Context, ev PayoutPaidEvent) error
}

type notifyService struct {
	email  *email.Client
	sms    *sms.Client
	nc     *nats.Conn
	logger *slog.Logger
}

// New creates the notify service. Any of email, sms, nc may be nil when the
// channel is not configured.
func New(emailClient *email.Client, smsClient *sms.Client, nc *nats.Conn, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &notifyService{email: emailClient, sms: smsClient, nc: nc, logger: logger}
}

func (s *notifyService) PayoutPaid(ctx context.Context, ev PayoutPaidEvent) error {
	s.sendEmail(ctx, ev)
	s.sendSMS(ctx, ev)
	s.publish(ev)
	return nil
}

func (s *notifyService) sendEmail(ctx context.Context, ev PayoutPaidEvent) {
	if s.email == nil || ev.TherapistEmail == "" {
		return
	}

	msg := email.BuildPayoutPaidEmail(email.PayoutEmailData{
		TherapistName: ev.TherapistName,
		Email:         ev.TherapistEmail,
		PeriodStart:   ev.PeriodStart.Format("2006-01-02"),
		PeriodEnd:     ev.PeriodEnd.Format("2006-01-02"),
		GrossAmount:   ev.GrossAmount,
		Commission:    ev.Commission,
		Deduction:     ev.Deduction,
		NetAmount:     ev.NetAmount,
		TransferRef:   ev.TransferRef,
	})

	if err := s.email.Send(ctx, msg); err != nil {
		s.logger.Warn("payout email failed",
			"payout_id", ev.PayoutID, "therapist_id", ev.TherapistID, "error", err)
	}
}

func (s *notifyService) sendSMS(ctx context.Context, ev PayoutPaidEvent) {
	if s.sms == nil || ev.TherapistPhone == "" {
		return
	}

	period := ev.PeriodStart.Format("2006-01-02") + " / " + ev.PeriodEnd.Format("2006-01-02")
	if err := s.sms.SendPayoutNotice(ctx, ev.TherapistPhone, period, email.FormatEUR(ev.NetAmount)); err != nil {
		s.logger.Warn("payout sms failed",
			"payout_id", ev.PayoutID, "therapist_id", ev.TherapistID, "error", err)
	}
}

func (s *notifyService) publish(ev PayoutPaidEvent) {
	if s.nc == nil {
		return
	}

	payload, err := json.Marshal(map[string]any{
		"payout_id":    ev.PayoutID,
		"therapist_id": ev.TherapistID,
		"period_start": ev.PeriodStart,
		"period_end":   ev.PeriodEnd,
		"net_amount":   ev.NetAmount,
		"transfer_ref": ev.TransferRef,
	})
	if err != nil {
		s.logger.Error("marshal payout event", "error", err)
		return
	}

	if err := s.nc.Publish(subjectPayoutPaid, payload); err != nil {
		s.logger.Warn("publish payout event", "payout_id", ev.PayoutID, "error", err)
	}
}
