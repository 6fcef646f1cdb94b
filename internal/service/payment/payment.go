// Package payment exposes read access to captured payments. Capture and
// status transitions happen in the point-of-sale system upstream; here the
// rows only feed eligibility queries and reporting.
package payment

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/fundacionaurora/clinica_backend/internal/repo"
	entpayment "github.com/fundacionaurora/clinica_backend/internal/repo/payment"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type PaginatedResult[T any] struct {
	Data       []T
	Total      int
	Page       int
	PerPage    int
	TotalPages int
}

type ListRequest struct {
	Page      int
	PerPage   int
	PatientID *uuid.UUID
	Status    *string
	DateFrom  *time.Time
	DateTo    *time.Time // inclusive
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	List(ctx context.Context, req ListRequest) (*PaginatedResult[*repo.Payment], error)
	GetByID(ctx context.Context, paymentID uuid.UUID) (*repo.Payment, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type paymentService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &paymentService{db: db}
}

func (s *paymentService) List(ctx context.Context, req ListRequest) (*PaginatedResult[*repo.Payment], error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 20
	}
	offset := (req.Page - 1) * req.PerPage

	q := s.db.Payment.Query()

	if req.PatientID != nil {
		q = q.Where(entpayment.PatientID(*req.PatientID))
	}
	if req.Status != nil {
		q = q.Where(entpayment.StatusEQ(entpayment.Status(*req.Status)))
	}
	if req.DateFrom != nil {
		q = q.Where(entpayment.DateGTE(*req.DateFrom))
	}
	if req.DateTo != nil {
		q = q.Where(entpayment.DateLTE(*req.DateTo))
	}

	total, err := q.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count payments: %w", err)
	}

	payments, err := q.
		WithPatient().
		Order(entpayment.ByDate(sql.OrderDesc())).
		Offset(offset).
		Limit(req.PerPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}

	totalPages := (total + req.PerPage - 1) / req.PerPage
	return &PaginatedResult[*repo.Payment]{
		Data:       payments,
		Total:      total,
		Page:       req.Page,
		PerPage:    req.PerPage,
		TotalPages: totalPages,
	}, nil
}

func (s *paymentService) GetByID(ctx context.Context, paymentID uuid.UUID) (*repo.Payment, error) {
	p, err := s.db.Payment.Query().
		Where(entpayment.ID(paymentID)).
		WithPatient().
		WithAppointment().
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrPaymentNotFound
		}
		return nil, fmt.Errorf("get payment: %w", err)
	}
	return p, nil
}
