package router

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/fundacionaurora/clinica_backend/config"
	"github.com/fundacionaurora/clinica_backend/internal/api/http/handler"
	"github.com/fundacionaurora/clinica_backend/internal/api/http/middleware"
	"github.com/fundacionaurora/clinica_backend/internal/service/audit"
	"github.com/fundacionaurora/clinica_backend/internal/service/document"
	"github.com/fundacionaurora/clinica_backend/internal/service/patient"
	"github.com/fundacionaurora/clinica_backend/internal/service/payment"
	"github.com/fundacionaurora/clinica_backend/internal/service/payout"
	"github.com/fundacionaurora/clinica_backend/internal/service/rates"
	"github.com/fundacionaurora/clinica_backend/internal/service/user"
	"github.com/fundacionaurora/clinica_backend/pkg/authorize"
	pasetotoken "github.com/fundacionaurora/clinica_backend/pkg/paseto"
)

// Module provides the Router to the fx graph.
var Module = fx.Module("router", fx.Provide(NewRouter))

type Params struct {
	fx.In

	Cfg         *config.Config
	Redis       *redis.Client
	Auth        authorize.IAuthorization
	PayoutSvc   payout.Service
	RatesSvc    rates.Service
	PatientSvc  patient.Service
	PaymentSvc  payment.Service
	UserSvc     user.Service
	DocumentSvc document.Service
	AuditSvc    audit.Service
	PasetoMgr   *pasetotoken.Manager
}

type Router struct {
	p Params
}

func NewRouter(p Params) *Router {
	return &Router{p: p}
}

func (r *Router) Register(app *fiber.App) {
	r.registerSystemRoutes(app)

	authRequired := middleware.AuthRequired(r.p.PasetoMgr, r.p.Redis)

	requirePerm := func(res authorize.Resource, act authorize.Action) fiber.Handler {
		return middleware.RequirePermission(r.p.Auth, res, act)
	}

	payoutH := handler.NewPayoutHandler(r.p.PayoutSvc, r.p.Auth)
	ratesH := handler.NewRatesHandler(r.p.RatesSvc)
	patientH := handler.NewPatientHandler(r.p.PatientSvc)
	paymentH := handler.NewPaymentHandler(r.p.PaymentSvc)
	userH := handler.NewUserHandler(r.p.UserSvc)
	documentH := handler.NewDocumentHandler(r.p.DocumentSvc)
	auditH := handler.NewAuditHandler(r.p.AuditSvc)

	api := app.Group("/api/v1")

	r.registerPayoutRoutes(api, payoutH, authRequired, requirePerm)
	r.registerRatesRoutes(api, ratesH, authRequired, requirePerm)
	r.registerPatientRoutes(api, patientH, documentH, authRequired, requirePerm)
	r.registerPaymentRoutes(api, paymentH, authRequired, requirePerm)
	r.registerUserRoutes(api, userH, authRequired, requirePerm)
	r.registerAuditRoutes(api, auditH, authRequired, requirePerm)
}

func (r *Router) registerSystemRoutes(app *fiber.App) {
	app.Get(healthcheck.LivenessEndpoint, healthcheck.New())
	app.Get(healthcheck.ReadinessEndpoint, healthcheck.New(healthcheck.Config{
		Probe: func(c fiber.Ctx) bool { return authorize.IsPolicyHealthy() },
	}))
	app.Get(healthcheck.StartupEndpoint, healthcheck.New())

	if r.p.Cfg.Observability.Enabled && r.p.Cfg.Observability.Metrics.Enabled {
		path := r.p.Cfg.Observability.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		app.Get(path, adaptor.HTTPHandler(promhttp.Handler()))
	}
}
