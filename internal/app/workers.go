package app

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"go.uber.org/fx"

	"github.com/fundacionaurora/clinica_backend/internal/repo"
	entappt "github.com/fundacionaurora/clinica_backend/internal/repo/appointment"
	entpayment "github.com/fundacionaurora/clinica_backend/internal/repo/payment"
)

// WorkerModule registers all NATS event workers.
var WorkerModule = fx.Module("workers",
	fx.Invoke(RegisterWorkers),
)

type WorkerParams struct {
	fx.In

	Lc fx.Lifecycle
	NC *nats.Conn
	DB *repo.Client
}

func RegisterWorkers(p WorkerParams) {
	p.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			startPaymentIngestWorker(p.NC, p.DB)
			startAppointmentIngestWorker(p.NC, p.DB)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			// Drain handled by ProvideNatsClient
			return nil
		},
	})
}

// ---------------------------------------------------------------------------
// payment_ingest_worker
// ---------------------------------------------------------------------------

// paymentEvent mirrors what the point-of-sale system publishes when a payment
// is captured or its status changes.
type paymentEvent struct {
	ID            uuid.UUID  `json:"id"`
	PatientID     uuid.UUID  `json:"patient_id"`
	AppointmentID *uuid.UUID `json:"appointment_id"`
	Amount        int64      `json:"amount"`
	Date          time.Time  `json:"date"`
	Status        string     `json:"status"`
	Method        *string    `json:"method"`
	Concept       *string    `json:"concept"`
}

func startPaymentIngestWorker(nc *nats.Conn, db *repo.Client) {
	_, err := nc.Subscribe("clinica.payments.recorded", func(msg *nats.Msg) {
		var ev paymentEvent
		if err := json.Unmarshal(msg.Data, &ev); err != nil {
			slog.Warn("payment_ingest: bad payload", "err", err)
			return
		}

		ctx := context.Background()

		exists, err := db.Payment.Query().
			Where(entpayment.ID(ev.ID)).
			Exist(ctx)
		if err != nil {
			slog.Warn("payment_ingest: lookup failed", "payment_id", ev.ID, "err", err)
			return
		}

		if exists {
			// Amount is immutable once captured; only the status moves.
			err = db.Payment.UpdateOneID(ev.ID).
				SetStatus(entpayment.Status(ev.Status)).
				SetDate(ev.Date).
				Exec(ctx)
		} else {
			err = db.Payment.Create().
				SetID(ev.ID).
				SetPatientID(ev.PatientID).
				SetNillableAppointmentID(ev.AppointmentID).
				SetAmount(ev.Amount).
				SetDate(ev.Date).
				SetStatus(entpayment.Status(ev.Status)).
				SetNillableMethod(ev.Method).
				SetNillableConcept(ev.Concept).
				Exec(ctx)
		}
		if err != nil {
			slog.Warn("payment_ingest: persist failed", "payment_id", ev.ID, "err", err)
			return
		}

		slog.Debug("payment_ingest: payment stored", "payment_id", ev.ID, "status", ev.Status)
	})
	if err != nil {
		slog.Error("payment_ingest: subscribe failed", "err", err)
	}

	slog.Info("payment_ingest: started")
}

// ---------------------------------------------------------------------------
// appointment_ingest_worker
// ---------------------------------------------------------------------------

type appointmentEvent struct {
	ID          uuid.UUID `json:"id"`
	TherapistID uuid.UUID `json:"therapist_id"`
	PatientID   uuid.UUID `json:"patient_id"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	Status      string    `json:"status"`
	Notes       *string   `json:"notes"`
}

func startAppointmentIngestWorker(nc *nats.Conn, db *repo.Client) {
	_, err := nc.Subscribe("clinica.appointments.upserted", func(msg *nats.Msg) {
		var ev appointmentEvent
		if err := json.Unmarshal(msg.Data, &ev); err != nil {
			slog.Warn("appointment_ingest: bad payload", "err", err)
			return
		}

		ctx := context.Background()

		exists, err := db.Appointment.Query().
			Where(entappt.ID(ev.ID)).
			Exist(ctx)
		if err != nil {
			slog.Warn("appointment_ingest: lookup failed", "appointment_id", ev.ID, "err", err)
			return
		}

		if exists {
			err = db.Appointment.UpdateOneID(ev.ID).
				SetTherapistID(ev.TherapistID).
				SetStartTime(ev.StartTime).
				SetEndTime(ev.EndTime).
				SetStatus(entappt.Status(ev.Status)).
				SetNillableNotes(ev.Notes).
				Exec(ctx)
		} else {
			err = db.Appointment.Create().
				SetID(ev.ID).
				SetTherapistID(ev.TherapistID).
				SetPatientID(ev.PatientID).
				SetStartTime(ev.StartTime).
				SetEndTime(ev.EndTime).
				SetStatus(entappt.Status(ev.Status)).
				SetNillableNotes(ev.Notes).
				Exec(ctx)
		}
		if err != nil {
			slog.Warn("appointment_ingest: persist failed", "appointment_id", ev.ID, "err", err)
			return
		}

		slog.Debug("appointment_ingest: appointment stored", "appointment_id", ev.ID)
	})
	if err != nil {
		slog.Error("appointment_ingest: subscribe failed", "err", err)
	}

	slog.Info("appointment_ingest: started")
}
