package user_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/uuid"

	entuser "github.com/fundacionaurora/clinica_backend/internal/repo/user"
	"github.com/fundacionaurora/clinica_backend/internal/service/user"
	"github.com/fundacionaurora/clinica_backend/internal/testdb"
)

var testKey = bytes.Repeat([]byte{0x42}, 32)

func TestCreateStaff(t *testing.T) {
	db := testdb.New(t)
	svc := user.New(db, nil, testKey, nil)
	ctx := context.Background()

	u, err := svc.CreateStaff(ctx, user.CreateStaffRequest{
		Name:     "Carmen Ruiz",
		Email:    "carmen@example.org",
		Role:     "rrhh",
		Password: "correct horse battery staple",
	})
	if err != nil {
		t.Fatalf("CreateStaff: %v", err)
	}
	if u.Role != entuser.RoleRrhh {
		t.Errorf("role = %s, want rrhh", u.Role)
	}

	_, err = svc.CreateStaff(ctx, user.CreateStaffRequest{
		Name:     "Duplicate",
		Email:    "carmen@example.org",
		Role:     "recepcion",
		Password: "irrelevant",
	})
	if err != user.ErrEmailTaken {
		t.Errorf("expected ErrEmailTaken, got %v", err)
	}
}

func TestListTherapists(t *testing.T) {
	db := testdb.New(t)
	svc := user.New(db, nil, testKey, nil)
	ctx := context.Background()

	seed := []struct {
		name   string
		role   entuser.Role
		active bool
	}{
		{"Zulema", entuser.RoleTerapeuta, true},
		{"Andrés", entuser.RoleTerapeuta, true},
		{"Inactiva", entuser.RoleTerapeuta, false},
		{"Admin", entuser.RoleAdmin, true},
	}
	for i, s := range seed {
		if _, err := db.User.Create().
			SetName(s.name).
			SetEmail(s.name + "@example.org").
			SetRole(s.role).
			SetActive(s.active).
			Save(ctx); err != nil {
			t.Fatalf("seed user %d: %v", i, err)
		}
	}

	therapists, err := svc.ListTherapists(ctx)
	if err != nil {
		t.Fatalf("ListTherapists: %v", err)
	}
	if len(therapists) != 2 {
		t.Fatalf("therapists = %d, want 2", len(therapists))
	}
	// Ordered by name.
	if therapists[0].Name != "Andrés" || therapists[1].Name != "Zulema" {
		t.Errorf("order = %s, %s", therapists[0].Name, therapists[1].Name)
	}
}

func TestBankAccountRoundtrip(t *testing.T) {
	db := testdb.New(t)
	svc := user.New(db, nil, testKey, nil)
	ctx := context.Background()

	u, err := svc.CreateStaff(ctx, user.CreateStaffRequest{
		Name:     "María López",
		Email:    "maria@example.org",
		Role:     "terapeuta",
		Password: "secret-enough",
	})
	if err != nil {
		t.Fatalf("CreateStaff: %v", err)
	}

	if _, err := svc.GetBankAccount(ctx, u.ID); err != user.ErrBankAccountNotFound {
		t.Errorf("expected ErrBankAccountNotFound, got %v", err)
	}

	err = svc.SetBankAccount(ctx, u.ID, user.SetBankAccountRequest{
		BankName:      "Banco Aurora",
		AccountHolder: "María López",
		IBAN:          "es91 2100 0418 4502 0005 1332",
	})
	if err != nil {
		t.Fatalf("SetBankAccount: %v", err)
	}

	info, err := svc.GetBankAccount(ctx, u.ID)
	if err != nil {
		t.Fatalf("GetBankAccount: %v", err)
	}
	if info.IBAN != "ES9121000418450200051332" {
		t.Errorf("IBAN = %q, want normalized uppercase", info.IBAN)
	}
	if info.IBANMasked != "ES91****************1332" {
		t.Errorf("masked IBAN = %q", info.IBANMasked)
	}

	// The stored column never contains the plaintext.
	row, err := db.BankAccount.Query().Only(ctx)
	if err != nil {
		t.Fatalf("load row: %v", err)
	}
	if row.IbanEncrypted == info.IBAN {
		t.Error("IBAN stored in plaintext")
	}

	// Upsert replaces the existing account.
	err = svc.SetBankAccount(ctx, u.ID, user.SetBankAccountRequest{
		BankName:      "Otro Banco",
		AccountHolder: "María López",
		IBAN:          "ES7921000813610123456789",
	})
	if err != nil {
		t.Fatalf("SetBankAccount update: %v", err)
	}
	info, err = svc.GetBankAccount(ctx, u.ID)
	if err != nil {
		t.Fatalf("GetBankAccount: %v", err)
	}
	if info.BankName != "Otro Banco" || info.IBAN != "ES7921000813610123456789" {
		t.Errorf("account not replaced: %+v", info)
	}

	count, _ := db.BankAccount.Query().Count(ctx)
	if count != 1 {
		t.Errorf("bank account rows = %d, want 1", count)
	}
}

func TestSetBankAccountValidation(t *testing.T) {
	db := testdb.New(t)
	svc := user.New(db, nil, testKey, nil)
	ctx := context.Background()

	if err := svc.SetBankAccount(ctx, uuid.New(), user.SetBankAccountRequest{
		BankName: "X", AccountHolder: "Y", IBAN: "ES12",
	}); err != user.ErrInvalidIBAN {
		t.Errorf("expected ErrInvalidIBAN, got %v", err)
	}

	if err := svc.SetBankAccount(ctx, uuid.New(), user.SetBankAccountRequest{
		BankName: "X", AccountHolder: "Y", IBAN: "ES9121000418450200051332",
	}); err != user.ErrUserNotFound {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

func TestMaskIBAN(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"ES9121000418450200051332", "ES91****************1332"},
		{"SHORT", "SHORT"},
	}
	for _, tt := range tests {
		if got := user.MaskIBAN(tt.in); got != tt.want {
			t.Errorf("MaskIBAN(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
