package patient_test

import (
	"context"
	"testing"

	"github.com/google/uuid"

	entpatient "github.com/fundacionaurora/clinica_backend/internal/repo/patient"
	"github.com/fundacionaurora/clinica_backend/internal/service/patient"
	"github.com/fundacionaurora/clinica_backend/internal/testdb"
)

func strPtr(s string) *string { return &s }

func TestCreateDefaults(t *testing.T) {
	svc := patient.New(testdb.New(t))

	p, err := svc.Create(context.Background(), patient.CreateRequest{
		FirstName: "Lucía",
		LastName:  "García",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if p.Type != entpatient.TypeExterno {
		t.Errorf("type = %s, want externo by default", p.Type)
	}
	if !p.Active {
		t.Error("new patient not active")
	}
}

func TestUpdateAndGet(t *testing.T) {
	svc := patient.New(testdb.New(t))
	ctx := context.Background()

	p, err := svc.Create(ctx, patient.CreateRequest{FirstName: "Lucía", LastName: "García"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	therapistID := uuid.New()
	updated, err := svc.Update(ctx, p.ID, patient.UpdateRequest{
		Type:               strPtr("fundacion"),
		PrimaryTherapistID: &therapistID,
		Phone:              strPtr("+34612345678"),
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Type != entpatient.TypeFundacion {
		t.Errorf("type = %s, want fundacion", updated.Type)
	}
	if updated.PrimaryTherapistID == nil || *updated.PrimaryTherapistID != therapistID {
		t.Errorf("primary therapist = %v", updated.PrimaryTherapistID)
	}

	got, err := svc.GetByID(ctx, p.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Phone == nil || *got.Phone != "+34612345678" {
		t.Errorf("phone = %v", got.Phone)
	}

	if _, err := svc.GetByID(ctx, uuid.New()); err != patient.ErrPatientNotFound {
		t.Errorf("expected ErrPatientNotFound, got %v", err)
	}
}

func TestListFilters(t *testing.T) {
	svc := patient.New(testdb.New(t))
	ctx := context.Background()

	therapistID := uuid.New()
	seed := []patient.CreateRequest{
		{FirstName: "Ana", LastName: "Martín", Type: strPtr("fundacion"), PrimaryTherapistID: &therapistID},
		{FirstName: "Bruno", LastName: "Martínez", Type: strPtr("externo")},
		{FirstName: "Carla", LastName: "Núñez", Type: strPtr("externo"), PrimaryTherapistID: &therapistID},
	}
	for i, req := range seed {
		if _, err := svc.Create(ctx, req); err != nil {
			t.Fatalf("seed %d: %v", i, err)
		}
	}

	externo := "externo"
	res, err := svc.List(ctx, patient.ListRequest{Type: &externo})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if res.Total != 2 {
		t.Errorf("externo total = %d, want 2", res.Total)
	}

	res, err = svc.List(ctx, patient.ListRequest{TherapistID: &therapistID})
	if err != nil {
		t.Fatalf("List by therapist: %v", err)
	}
	if res.Total != 2 {
		t.Errorf("therapist total = %d, want 2", res.Total)
	}

	res, err = svc.List(ctx, patient.ListRequest{Search: "Mart"})
	if err != nil {
		t.Fatalf("List search: %v", err)
	}
	if res.Total != 2 {
		t.Errorf("search total = %d, want 2", res.Total)
	}

	// Ordered by last name, first name.
	res, err = svc.List(ctx, patient.ListRequest{})
	if err != nil {
		t.Fatalf("List all: %v", err)
	}
	if res.Data[0].LastName != "Martín" || res.Data[2].LastName != "Núñez" {
		t.Errorf("unexpected order: %s ... %s", res.Data[0].LastName, res.Data[2].LastName)
	}
}

func TestDeactivate(t *testing.T) {
	svc := patient.New(testdb.New(t))
	ctx := context.Background()

	p, err := svc.Create(ctx, patient.CreateRequest{FirstName: "Lucía", LastName: "García"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := svc.Deactivate(ctx, p.ID); err != nil {
		t.Fatalf("Deactivate: %v", err)
	}

	got, err := svc.GetByID(ctx, p.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Active {
		t.Error("patient still active after deactivation")
	}

	active := true
	res, err := svc.List(ctx, patient.ListRequest{Active: &active})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if res.Total != 0 {
		t.Errorf("active total = %d, want 0", res.Total)
	}
}
