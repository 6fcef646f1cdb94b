// Package audit records sensitive writes in an append-only trail and mirrors
// them onto the message bus for external consumers.
package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"entgo.io/ent/dialect/sql"

	"github.com/fundacionaurora/clinica_backend/internal/repo"
	entaudit "github.com/fundacionaurora/clinica_backend/internal/repo/auditlog"
	"github.com/fundacionaurora/clinica_backend/pkg/reqctx"
)

const subjectPrefix = "clinica.audit."

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type Entry struct {
	ActorID    uuid.UUID
	Action     string // e.g. "payout.create", "rates.update"
	EntityType string
	EntityID   string
	Details    map[string]any
}

type ListRequest struct {
	Page       int
	PerPage    int
	ActorID    *uuid.UUID
	EntityType *string
	EntityID   *string
}

type PaginatedResult[T any] struct {
	Data       []T
	Total      int
	Page       int
	PerPage    int
	TotalPages int
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	// Record writes the trail row. A database failure is returned to the
	// caller; the NATS mirror is best-effort.
	Record(ctx context.Context, e Entry) error

	List(ctx context.Context, req ListRequest) (*PaginatedResult[*repo.AuditLog], error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type auditService struct {
	db     *repo.Client
	nc     *nats.Conn
	logger *slog.Logger
}

// New creates the audit service. nc may be nil when the bus is not configured.
func New(db *repo.Client, nc *nats.Conn, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &auditService{db: db, nc: nc, logger: logger}
}

func (s *auditService) Record(ctx context.Context, e Entry) error {
	if e.Action == "" || e.EntityType == "" {
		return fmt.Errorf("audit entry requires action and entity type")
	}

	details := e.Details
	if rid := reqctx.RequestIDFromContext(ctx); rid != "" {
		details = withKey(details, "request_id", rid)
	}
	if tid := reqctx.TraceIDFromContext(ctx); tid != "" {
		details = withKey(details, "trace_id", tid)
	}

	c := s.db.AuditLog.Create().
		SetActorID(e.ActorID).
		SetAction(e.Action).
		SetEntityType(e.EntityType).
		SetEntityID(e.EntityID)

	if details != nil {
		c = c.SetDetails(details)
	}

	row, err := c.Save(ctx)
	if err != nil {
		return fmt.Errorf("record audit entry: %w", err)
	}

	s.publish(row)
	return nil
}

// withKey returns a copy of m with k set; the caller's map is never mutated.
func withKey(m map[string]any, k string, v any) map[string]any {
	out := make(map[string]any, len(m)+1)
	for key, val := range m {
		out[key] = val
	}
	out[k] = v
	return out
}

// publish mirrors the entry onto NATS. Failures are logged, never returned:
// the trail row is already durable.
func (s *auditService) publish(row *repo.AuditLog) {
	if s.nc == nil {
		return
	}

	payload, err := json.Marshal(map[string]any{
		"id":          row.ID,
		"actor_id":    row.ActorID,
		"action":      row.Action,
		"entity_type": row.EntityType,
		"entity_id":   row.EntityID,
		"details":     row.Details,
		"created_at":  row.CreatedAt,
	})
	if err != nil {
		s.logger.Error("marshal audit event", "error", err)
		return
	}

	if err := s.nc.Publish(subjectPrefix+row.Action, payload); err != nil {
		s.logger.Warn("publish audit event", "subject", subjectPrefix+row.Action, "error", err)
	}
}

func (s *auditService) List(ctx context.Context, req ListRequest) (*PaginatedResult[*repo.AuditLog], error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 20
	}
	offset := (req.Page - 1) * req.PerPage

	q := s.db.AuditLog.Query()

	if req.ActorID != nil {
		q = q.Where(entaudit.ActorID(*req.ActorID))
	}
	if req.EntityType != nil {
		q = q.Where(entaudit.EntityType(*req.EntityType))
	}
	if req.EntityID != nil {
		q = q.Where(entaudit.EntityID(*req.EntityID))
	}

	total, err := q.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count audit entries: %w", err)
	}

	rows, err := q.
		Order(entaudit.ByCreatedAt(sql.OrderDesc())).
		Offset(offset).
		Limit(req.PerPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list audit entries: %w", err)
	}

	totalPages := (total + req.PerPage - 1) / req.PerPage
	return &PaginatedResult[*repo.AuditLog]{
		Data:       rows,
		Total:      total,
		Page:       req.Page,
		PerPage:    req.PerPage,
		TotalPages: totalPages,
	}, nil
}
