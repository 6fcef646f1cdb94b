// Package rates manages the four global commission and deduction rates.
package rates

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/google/uuid"

	"github.com/fundacionaurora/clinica_backend/internal/commission"
	"github.com/fundacionaurora/clinica_backend/internal/repo"
	entsetting "github.com/fundacionaurora/clinica_backend/internal/repo/setting"
	"github.com/fundacionaurora/clinica_backend/internal/service/audit"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type UpdateRequest struct {
	InternalRate        *int
	ExternalRate        *int
	DeductionMonthly    *int
	DeductionPerPayment *int
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	// Get returns the effective rates. A missing or unparseable setting row
	// falls back to its hardcoded default.
	Get(ctx context.Context) (commission.Rates, error)

	// Update validates and persists the provided rates, leaving absent
	// fields untouched. Returns the effective rates after the write.
	Update(ctx context.Context, actorID uuid.UUID, req UpdateRequest) (commission.Rates, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type ratesService struct {
	db    *repo.Client
	audit audit.Service
}

func New(db *repo.Client, auditSvc audit.Service) Service {
	return &ratesService{db: db, audit: auditSvc}
}

func (s *ratesService) Get(ctx context.Context) (commission.Rates, error) {
	keys := []string{
		commission.KeyInternalRate,
		commission.KeyExternalRate,
		commission.KeyDeductionMonthly,
		commission.KeyDeductionPerPayment,
	}

	rows, err := s.db.Setting.Query().
		Where(entsetting.KeyIn(keys...)).
		All(ctx)
	if err != nil {
		return commission.Rates{}, fmt.Errorf("load rate settings: %w", err)
	}

	out := commission.DefaultRates()
	for _, row := range rows {
		v, err := strconv.Atoi(row.Value)
		if err != nil || v < 0 || v > commission.RateScale {
			// Corrupt row: keep the default rather than settling on garbage.
			continue
		}
		switch row.Key {
		case commission.KeyInternalRate:
			out.InternalRate = v
		case commission.KeyExternalRate:
			out.ExternalRate = v
		case commission.KeyDeductionMonthly:
			out.DeductionMonthly = v
		case commission.KeyDeductionPerPayment:
			out.DeductionPerPayment = v
		}
	}
	return out, nil
}

func (s *ratesService) Update(ctx context.Context, actorID uuid.UUID, req UpdateRequest) (commission.Rates, error) {
	updates := map[string]*int{
		commission.KeyInternalRate:        req.InternalRate,
		commission.KeyExternalRate:        req.ExternalRate,
		commission.KeyDeductionMonthly:    req.DeductionMonthly,
		commission.KeyDeductionPerPayment: req.DeductionPerPayment,
	}

	for _, v := range updates {
		if v != nil && (*v < 0 || *v > commission.RateScale) {
			return commission.Rates{}, ErrInvalidRate
		}
	}

	changed := map[string]any{}

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return commission.Rates{}, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	for key, v := range updates {
		if v == nil {
			continue
		}
		if err := upsert(ctx, tx, key, strconv.Itoa(*v)); err != nil {
			return commission.Rates{}, err
		}
		changed[key] = *v
	}

	if err := tx.Commit(); err != nil {
		return commission.Rates{}, fmt.Errorf("commit rates: %w", err)
	}

	// The rates are committed; a failing audit store must not report the
	// update as lost.
	if len(changed) > 0 && s.audit != nil {
		if err := s.audit.Record(ctx, audit.Entry{
			ActorID:    actorID,
			Action:     "rates.update",
			EntityType: "setting",
			EntityID:   "commission_rates",
			Details:    changed,
		}); err != nil {
			slog.WarnContext(ctx, "record audit entry", "action", "rates.update", "error", err)
		}
	}

	return s.Get(ctx)
}

func upsert(ctx context.Context, tx *repo.Tx, key, value string) error {
	row, err := tx.Setting.Query().
		Where(entsetting.Key(key)).
		Only(ctx)
	switch {
	case err == nil:
		if _, err := tx.Setting.UpdateOne(row).SetValue(value).Save(ctx); err != nil {
			return fmt.Errorf("update setting %q: %w", key, err)
		}
	case repo.IsNotFound(err):
		if _, err := tx.Setting.Create().SetKey(key).SetValue(value).Save(ctx); err != nil {
			return fmt.Errorf("create setting %q: %w", key, err)
		}
	default:
		return fmt.Errorf("query setting %q: %w", key, err)
	}
	return nil
}
