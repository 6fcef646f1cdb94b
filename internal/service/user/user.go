// Package user manages staff accounts and therapist bank accounts. IBANs are
// encrypted at rest and only ever leave the service masked, except on the
// payout detail where administration needs the full number for the transfer.
package user

import (
	"context"
	"fmt"
	"strings"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/fundacionaurora/clinica_backend/internal/repo"
	entbank "github.com/fundacionaurora/clinica_backend/internal/repo/bankaccount"
	entuser "github.com/fundacionaurora/clinica_backend/internal/repo/user"
	"github.com/fundacionaurora/clinica_backend/pkg/authorize"
	"github.com/fundacionaurora/clinica_backend/pkg/crypto"
	"github.com/fundacionaurora/clinica_backend/pkg/util/password"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreateStaffRequest struct {
	Name     string
	Email    string
	Phone    *string
	Role     string // admin | rrhh | terapeuta | recepcion
	Password string
}

type SetBankAccountRequest struct {
	BankName      string
	AccountHolder string
	IBAN          string
}

// BankAccountInfo is the decrypted view of a stored account.
type BankAccountInfo struct {
	BankName      string
	AccountHolder string
	IBAN          string // full, caller decides exposure
	IBANMasked    string
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	CreateStaff(ctx context.Context, req CreateStaffRequest) (*repo.User, error)
	GetByID(ctx context.Context, userID uuid.UUID) (*repo.User, error)
	ListTherapists(ctx context.Context) ([]*repo.User, error)

	SetBankAccount(ctx context.Context, userID uuid.UUID, req SetBankAccountRequest) error
	GetBankAccount(ctx context.Context, userID uuid.UUID) (*BankAccountInfo, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type userService struct {
	db         *repo.Client
	authz      authorize.IAuthorization
	aesKey     []byte
	hashParams *password.Params
}

// New creates the user service. authz may be nil in tests; role grouping is
// then skipped. A nil hashParams falls back to the package defaults.
func New(db *repo.Client, authz authorize.IAuthorization, aesKey []byte, hashParams *password.Params) Service {
	return &userService{db: db, authz: authz, aesKey: aesKey, hashParams: hashParams}
}

func (s *userService) CreateStaff(ctx context.Context, req CreateStaffRequest) (*repo.User, error) {
	exists, err := s.db.User.Query().
		Where(entuser.Email(req.Email)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if exists {
		return nil, ErrEmailTaken
	}

	hash, err := password.HashWithParams(req.Password, s.hashParams)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	c := s.db.User.Create().
		SetName(req.Name).
		SetEmail(req.Email).
		SetRole(entuser.Role(req.Role)).
		SetPasswordHash(hash)
	if req.Phone != nil {
		c = c.SetNillablePhone(req.Phone)
	}

	u, err := c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	if s.authz != nil {
		if err := authorize.AssignUserRole(ctx, s.authz, u.ID.String(), req.Role); err != nil {
			return nil, fmt.Errorf("assign role: %w", err)
		}
	}

	return u, nil
}

func (s *userService) GetByID(ctx context.Context, userID uuid.UUID) (*repo.User, error) {
	u, err := s.db.User.Get(ctx, userID)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

func (s *userService) ListTherapists(ctx context.Context) ([]*repo.User, error) {
	therapists, err := s.db.User.Query().
		Where(
			entuser.RoleEQ(entuser.RoleTerapeuta),
			entuser.Active(true),
		).
		Order(entuser.ByName(sql.OrderAsc())).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list therapists: %w", err)
	}
	return therapists, nil
}

func (s *userService) SetBankAccount(ctx context.Context, userID uuid.UUID, req SetBankAccountRequest) error {
	iban := normalizeIBAN(req.IBAN)
	if len(iban) < 15 || len(iban) > 34 {
		return ErrInvalidIBAN
	}

	if _, err := s.GetByID(ctx, userID); err != nil {
		return err
	}

	encrypted, err := crypto.Encrypt(s.aesKey, iban)
	if err != nil {
		return fmt.Errorf("encrypt iban: %w", err)
	}

	existing, err := s.db.BankAccount.Query().
		Where(entbank.UserID(userID)).
		Only(ctx)
	switch {
	case err == nil:
		_, err = s.db.BankAccount.UpdateOne(existing).
			SetBankName(req.BankName).
			SetAccountHolder(req.AccountHolder).
			SetIbanEncrypted(encrypted).
			Save(ctx)
	case repo.IsNotFound(err):
		_, err = s.db.BankAccount.Create().
			SetUserID(userID).
			SetBankName(req.BankName).
			SetAccountHolder(req.AccountHolder).
			SetIbanEncrypted(encrypted).
			Save(ctx)
	default:
		return fmt.Errorf("query bank account: %w", err)
	}
	if err != nil {
		return fmt.Errorf("save bank account: %w", err)
	}
	return nil
}

func (s *userService) GetBankAccount(ctx context.Context, userID uuid.UUID) (*BankAccountInfo, error) {
	row, err := s.db.BankAccount.Query().
		Where(entbank.UserID(userID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrBankAccountNotFound
		}
		return nil, fmt.Errorf("query bank account: %w", err)
	}

	iban, err := crypto.Decrypt(s.aesKey, row.IbanEncrypted)
	if err != nil {
		return nil, fmt.Errorf("decrypt iban: %w", err)
	}

	return &BankAccountInfo{
		BankName:      row.BankName,
		AccountHolder: row.AccountHolder,
		IBAN:          iban,
		IBANMasked:    MaskIBAN(iban),
	}, nil
}

func normalizeIBAN(raw string) string {
	return strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(raw), " ", ""))
}

// MaskIBAN keeps the country prefix and last four digits.
func MaskIBAN(iban string) string {
	if len(iban) <= 8 {
		return iban
	}
	return iban[:4] + strings.Repeat("*", len(iban)-8) + iban[len(iban)-4:]
}
