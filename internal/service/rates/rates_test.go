package rates_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/google/uuid"

	"github.com/fundacionaurora/clinica_backend/internal/commission"
	"github.com/fundacionaurora/clinica_backend/internal/repo"
	"github.com/fundacionaurora/clinica_backend/internal/service/audit"
	"github.com/fundacionaurora/clinica_backend/internal/service/rates"
	"github.com/fundacionaurora/clinica_backend/internal/testdb"
)

func newService(t *testing.T) (rates.Service, *repo.Client) {
	t.Helper()
	db := testdb.New(t)
	return rates.New(db, audit.New(db, nil, slog.Default())), db
}

func TestGetDefaults(t *testing.T) {
	svc, _ := newService(t)

	got, err := svc.Get(context.Background())
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != commission.DefaultRates() {
		t.Errorf("Get() = %+v, want defaults", got)
	}
}

func TestUpdateRoundtrip(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()
	actor := uuid.New()

	internal, external := 1500, 800
	got, err := svc.Update(ctx, actor, rates.UpdateRequest{
		InternalRate: &internal,
		ExternalRate: &external,
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	if got.InternalRate != 1500 || got.ExternalRate != 800 {
		t.Errorf("updated rates = %+v", got)
	}
	// Untouched fields keep their defaults.
	if got.DeductionMonthly != commission.DefaultDeductionMonthly {
		t.Errorf("deduction monthly = %d, want default", got.DeductionMonthly)
	}

	// A fresh read sees the same values.
	again, err := svc.Get(ctx)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if again != got {
		t.Errorf("Get() = %+v after Update() = %+v", again, got)
	}
}

func TestUpdateOverwrites(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()
	actor := uuid.New()

	v1, v2 := 100, 200
	if _, err := svc.Update(ctx, actor, rates.UpdateRequest{InternalRate: &v1}); err != nil {
		t.Fatalf("first update: %v", err)
	}
	got, err := svc.Update(ctx, actor, rates.UpdateRequest{InternalRate: &v2})
	if err != nil {
		t.Fatalf("second update: %v", err)
	}
	if got.InternalRate != 200 {
		t.Errorf("internal rate = %d, want 200 (latest write wins)", got.InternalRate)
	}
}

func TestUpdateValidation(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	tests := []struct {
		name string
		rate int
	}{
		{"negative", -1},
		{"above scale", commission.RateScale + 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := tt.rate
			_, err := svc.Update(ctx, uuid.New(), rates.UpdateRequest{ExternalRate: &r})
			if err != rates.ErrInvalidRate {
				t.Errorf("expected ErrInvalidRate, got %v", err)
			}
		})
	}

	// Boundaries are valid.
	zero, full := 0, commission.RateScale
	if _, err := svc.Update(ctx, uuid.New(), rates.UpdateRequest{ExternalRate: &zero, InternalRate: &full}); err != nil {
		t.Errorf("boundary rates rejected: %v", err)
	}
}

func TestGetIgnoresCorruptRow(t *testing.T) {
	svc, db := newService(t)
	ctx := context.Background()

	if _, err := db.Setting.Create().
		SetKey(commission.KeyExternalRate).
		SetValue("not-a-number").
		Save(ctx); err != nil {
		t.Fatalf("seed corrupt setting: %v", err)
	}

	got, err := svc.Get(ctx)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.ExternalRate != commission.DefaultExternalRate {
		t.Errorf("external rate = %d, want default on corrupt row", got.ExternalRate)
	}
}

// brokenAudit simulates an audit-store outage.
type brokenAudit struct{}

func (brokenAudit) Record(context.Context, audit.Entry) error {
	return errors.New("audit store down")
}

func (brokenAudit) List(context.Context, audit.ListRequest) (*audit.PaginatedResult[*repo.AuditLog], error) {
	return nil, errors.New("audit store down")
}

func TestUpdateSurvivesAuditOutage(t *testing.T) {
	db := testdb.New(t)
	svc := rates.New(db, brokenAudit{})
	ctx := context.Background()

	v := 1200
	got, err := svc.Update(ctx, uuid.New(), rates.UpdateRequest{InternalRate: &v})
	if err != nil {
		t.Fatalf("Update with failing audit store: %v", err)
	}
	if got.InternalRate != 1200 {
		t.Errorf("internal rate = %d, want 1200", got.InternalRate)
	}

	// The write is durable even though the trail entry was lost.
	again, err := svc.Get(ctx)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if again.InternalRate != 1200 {
		t.Errorf("persisted rate = %d, want 1200", again.InternalRate)
	}
}

func TestUpdateWritesAuditTrail(t *testing.T) {
	svc, db := newService(t)
	ctx := context.Background()
	actor := uuid.New()

	v := 900
	if _, err := svc.Update(ctx, actor, rates.UpdateRequest{DeductionPerPayment: &v}); err != nil {
		t.Fatalf("Update: %v", err)
	}

	rows, err := db.AuditLog.Query().All(ctx)
	if err != nil {
		t.Fatalf("query audit: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("audit rows = %d, want 1", len(rows))
	}
	if rows[0].Action != "rates.update" || rows[0].ActorID != actor {
		t.Errorf("audit row = %+v", rows[0])
	}
}
