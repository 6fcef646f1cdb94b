// Package patient manages clinic patient records. The type classification
// (fundacion/externo) drives the commission tier applied to the patient's
// payments.
package patient

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/fundacionaurora/clinica_backend/internal/repo"
	entpatient "github.com/fundacionaurora/clinica_backend/internal/repo/patient"
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
	Page        int
	PerPage     int
	Type        *string
	TherapistID *uuid.UUID
	Active      *bool
	Search      string // matches first or last name prefix
}

type CreateRequest struct {
	FirstName          string
	LastName           string
	Type               *string // fundacion | externo, defaults to externo
	PrimaryTherapistID *uuid.UUID
	Email              *string
	Phone              *string
	Notes              *string
}

type UpdateRequest struct {
	FirstName          *string
	LastName           *string
	Type               *string
	PrimaryTherapistID *uuid.UUID
	Email              *string
	Phone              *string
	Notes              *string
	Active             *bool
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*repo.Patient, error)
	GetByID(ctx context.Context, patientID uuid.UUID) (*repo.Patient, error)
	List(ctx context.Context, req ListRequest) (*PaginatedResult[*repo.Patient], error)
	Update(ctx context.Context, patientID uuid.UUID, req UpdateRequest) (*repo.Patient, error)

	// Deactivate retires the record. Patient rows are never hard-deleted:
	// settled payout items reference their payments.
	Deactivate(ctx context.Context, patientID uuid.UUID) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type patientService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &patientService{db: db}
}

func validType(t string) bool {
	return t == string(entpatient.TypeFundacion) || t == string(entpatient.TypeExterno)
}

func (s *patientService) Create(ctx context.Context, req CreateRequest) (*repo.Patient, error) {
	c := s.db.Patient.Create().
		SetFirstName(req.FirstName).
		SetLastName(req.LastName)

	if req.Type != nil {
		if !validType(*req.Type) {
			return nil, ErrInvalidPatientType
		}
		c = c.SetType(entpatient.Type(*req.Type))
	}
	if req.PrimaryTherapistID != nil {
		c = c.SetPrimaryTherapistID(*req.PrimaryTherapistID)
	}
	if req.Email != nil {
		c = c.SetNillableEmail(req.Email)
	}
	if req.Phone != nil {
		c = c.SetNillablePhone(req.Phone)
	}
	if req.Notes != nil {
		c = c.SetNillableNotes(req.Notes)
	}

	p, err := c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create patient: %w", err)
	}
	return p, nil
}

func (s *patientService) GetByID(ctx context.Context, patientID uuid.UUID) (*repo.Patient, error) {
	p, err := s.db.Patient.Get(ctx, patientID)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrPatientNotFound
		}
		return nil, fmt.Errorf("get patient: %w", err)
	}
	return p, nil
}

func (s *patientService) List(ctx context.Context, req ListRequest) (*PaginatedResult[*repo.Patient], error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 20
	}
	offset := (req.Page - 1) * req.PerPage

	q := s.db.Patient.Query()

	if req.Type != nil {
		q = q.Where(entpatient.TypeEQ(entpatient.Type(*req.Type)))
	}
	if req.TherapistID != nil {
		q = q.Where(entpatient.PrimaryTherapistID(*req.TherapistID))
	}
	if req.Active != nil {
		q = q.Where(entpatient.Active(*req.Active))
	}
	if req.Search != "" {
		q = q.Where(entpatient.Or(
			entpatient.FirstNameHasPrefix(req.Search),
			entpatient.LastNameHasPrefix(req.Search),
		))
	}

	total, err := q.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count patients: %w", err)
	}

	patients, err := q.
		Order(entpatient.ByLastName(sql.OrderAsc()), entpatient.ByFirstName(sql.OrderAsc())).
		Offset(offset).
		Limit(req.PerPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list patients: %w", err)
	}

	totalPages := (total + req.PerPage - 1) / req.PerPage
	return &PaginatedResult[*repo.Patient]{
		Data:       patients,
		Total:      total,
		Page:       req.Page,
		PerPage:    req.PerPage,
		TotalPages: totalPages,
	}, nil
}

func (s *patientService) Update(ctx context.Context, patientID uuid.UUID, req UpdateRequest) (*repo.Patient, error) {
	p, err := s.GetByID(ctx, patientID)
	if err != nil {
		return nil, err
	}

	u := s.db.Patient.UpdateOne(p)

	if req.FirstName != nil {
		u = u.SetFirstName(*req.FirstName)
	}
	if req.LastName != nil {
		u = u.SetLastName(*req.LastName)
	}
	if req.Type != nil {
		if !validType(*req.Type) {
			return nil, ErrInvalidPatientType
		}
		u = u.SetType(entpatient.Type(*req.Type))
	}
	if req.PrimaryTherapistID != nil {
		u = u.SetPrimaryTherapistID(*req.PrimaryTherapistID)
	}
	if req.Email != nil {
		u = u.SetNillableEmail(req.Email)
	}
	if req.Phone != nil {
		u = u.SetNillablePhone(req.Phone)
	}
	if req.Notes != nil {
		u = u.SetNillableNotes(req.Notes)
	}
	if req.Active != nil {
		u = u.SetActive(*req.Active)
	}

	updated, err := u.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update patient: %w", err)
	}
	return updated, nil
}

func (s *patientService) Deactivate(ctx context.Context, patientID uuid.UUID) error {
	p, err := s.GetByID(ctx, patientID)
	if err != nil {
		return err
	}
	if _, err := s.db.Patient.UpdateOne(p).SetActive(false).Save(ctx); err != nil {
		return fmt.Errorf("deactivate patient: %w", err)
	}
	return nil
}
