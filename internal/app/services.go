package app

import (
	"log/slog"

	"github.com/nats-io/nats.go"
	"go.uber.org/fx"

	"github.com/fundacionaurora/clinica_backend/config"
	"github.com/fundacionaurora/clinica_backend/internal/repo"
	"github.com/fundacionaurora/clinica_backend/internal/service/audit"
	"github.com/fundacionaurora/clinica_backend/internal/service/document"
	"github.com/fundacionaurora/clinica_backend/internal/service/notify"
	"github.com/fundacionaurora/clinica_backend/internal/service/patient"
	"github.com/fundacionaurora/clinica_backend/internal/service/payment"
	"github.com/fundacionaurora/clinica_backend/internal/service/payout"
	"github.com/fundacionaurora/clinica_backend/internal/service/rates"
	"github.com/fundacionaurora/clinica_backend/internal/service/user"
	"github.com/fundacionaurora/clinica_backend/pkg/authorize"
	"github.com/fundacionaurora/clinica_backend/pkg/crypto"
	"github.com/fundacionaurora/clinica_backend/pkg/email"
	pasetotoken "github.com/fundacionaurora/clinica_backend/pkg/paseto"
	s3pkg "github.com/fundacionaurora/clinica_backend/pkg/s3"
	"github.com/fundacionaurora/clinica_backend/pkg/sms"
	"github.com/fundacionaurora/clinica_backend/pkg/util/password"
)

// ServiceModule provides all application service dependencies.
var ServiceModule = fx.Module("services",
	fx.Provide(
		ProvideAuditService,
		ProvideNotifyService,
		ProvideRatesService,
		ProvidePayoutService,
		ProvidePatientService,
		ProvidePaymentService,
		ProvideUserService,
		ProvideDocumentService,
		ProvidePasetoManager,
	),
)

func ProvideAuditService(db *repo.Client, nc *nats.Conn) audit.Service {
	return audit.New(db, nc, slog.Default())
}

func ProvideNotifyService(emailClient *email.Client, smsClient *sms.Client, nc *nats.Conn) notify.Service {
	return notify.New(emailClient, smsClient, nc, slog.Default())
}

func ProvideRatesService(db *repo.Client, auditSvc audit.Service) rates.Service {
	return rates.New(db, auditSvc)
}

func ProvidePayoutService(db *repo.Client, ratesSvc rates.Service, auditSvc audit.Service, notifySvc notify.Service, userSvc user.Service) payout.Service {
	return payout.New(db, ratesSvc, auditSvc, notifySvc, userSvc)
}

func ProvidePatientService(db *repo.Client) patient.Service {
	return patient.New(db)
}

func ProvidePaymentService(db *repo.Client) payment.Service {
	return payment.New(db)
}

func ProvideUserService(db *repo.Client, authz authorize.IAuthorization, cfg *config.Config) (user.Service, error) {
	aesKey, err := crypto.KeyFromHex(cfg.Authentication.EncryptionKey)
	if err != nil {
		return nil, err
	}
	var hashParams *password.Params
	if cfg.Password.Algorithm != "" {
		hashParams = password.FromCentralConfig(cfg.Password).ToParams()
	}
	return user.New(db, authz, aesKey, hashParams), nil
}

func ProvideDocumentService(db *repo.Client, s3 *s3pkg.Client) document.Service {
	return document.New(db, s3)
}

func ProvidePasetoManager(cfg *config.Config) (*pasetotoken.Manager, error) {
	return pasetotoken.NewPasetoManager(cfg)
}
