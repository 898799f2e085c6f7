package portal

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpSwagger "github.com/swaggo/http-swagger"

	auditlist "github.com/magabrotheeeer/billing-portal/internal/http/handlers/audit/list"
	"github.com/magabrotheeeer/billing-portal/internal/http/handlers/auth/login"
	"github.com/magabrotheeeer/billing-portal/internal/http/handlers/auth/register"
	"github.com/magabrotheeeer/billing-portal/internal/http/handlers/dashboard/summary"
	"github.com/magabrotheeeer/billing-portal/internal/http/handlers/health"
	"github.com/magabrotheeeer/billing-portal/internal/http/handlers/invoice/changestate"
	invoicelist "github.com/magabrotheeeer/billing-portal/internal/http/handlers/invoice/list"
	"github.com/magabrotheeeer/billing-portal/internal/http/handlers/invoice/pay"
	invoiceremove "github.com/magabrotheeeer/billing-portal/internal/http/handlers/invoice/remove"
	"github.com/magabrotheeeer/billing-portal/internal/http/handlers/invoice/taxes"
	planlist "github.com/magabrotheeeer/billing-portal/internal/http/handlers/plan/list"
	planremove "github.com/magabrotheeeer/billing-portal/internal/http/handlers/plan/remove"
	plansave "github.com/magabrotheeeer/billing-portal/internal/http/handlers/plan/save"
	"github.com/magabrotheeeer/billing-portal/internal/http/handlers/subscription/activate"
	"github.com/magabrotheeeer/billing-portal/internal/http/handlers/subscription/autorenew"
	"github.com/magabrotheeeer/billing-portal/internal/http/handlers/subscription/cancel"
	"github.com/magabrotheeeer/billing-portal/internal/http/handlers/subscription/changeplan"
	sublist "github.com/magabrotheeeer/billing-portal/internal/http/handlers/subscription/list"
	subremove "github.com/magabrotheeeer/billing-portal/internal/http/handlers/subscription/remove"
	userlist "github.com/magabrotheeeer/billing-portal/internal/http/handlers/user/list"
	userremove "github.com/magabrotheeeer/billing-portal/internal/http/handlers/user/remove"
	"github.com/magabrotheeeer/billing-portal/internal/http/handlers/user/toggle"
	"github.com/magabrotheeeer/billing-portal/internal/http/middlewarectx"
	"github.com/magabrotheeeer/billing-portal/internal/services"
)

// Services bundles everything the router hands to the handlers.
type Services struct {
	Auth          *services.AuthService
	Dashboard     *services.DashboardService
	Plans         *services.PlanService
	Users         *services.UserService
	Subscriptions *services.SubscriptionService
	Invoices      *services.InvoiceService
	Audit         *services.AuditService
	TokenParser   middlewarectx.TokenParser
}

// RegisterRoutes registers every portal route.
func RegisterRoutes(r chi.Router, logger *slog.Logger, svc *Services) {
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
		middlewarectx.MetricsMiddleware,
	)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/register", register.New(logger, svc.Auth).ServeHTTP)
		r.Post("/login", login.New(logger, svc.Auth).ServeHTTP)

		// Authenticated endpoints
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.JWTMiddleware(svc.TokenParser, logger))
			r.Use(middlewarectx.RateLimitMiddleware(logger))

			r.Get("/plans", planlist.New(logger, svc.Plans).ServeHTTP)

			r.Get("/subscriptions", sublist.New(logger, svc.Subscriptions).ServeHTTP)
			r.Put("/subscriptions/{id}/cancel", cancel.New(logger, svc.Subscriptions).ServeHTTP)
			r.Post("/subscriptions/changeplan", changeplan.New(logger, svc.Subscriptions).ServeHTTP)

			r.Get("/invoices", invoicelist.New(logger, svc.Invoices).ServeHTTP)
			r.Put("/invoices/{id}/pay", pay.New(logger, svc.Invoices).ServeHTTP)
			r.Get("/invoices/taxes", taxes.New(logger, svc.Invoices).ServeHTTP)

			// Admin-only endpoints
			r.Group(func(r chi.Router) {
				r.Use(middlewarectx.AdminOnlyMiddleware(logger))

				r.Get("/dashboard/summary", summary.New(logger, svc.Dashboard).ServeHTTP)

				r.Get("/users", userlist.New(logger, svc.Users).ServeHTTP)
				r.Put("/users/{id}/toggle", toggle.New(logger, svc.Users).ServeHTTP)
				r.Delete("/users/{id}", userremove.New(logger, svc.Users).ServeHTTP)

				r.Post("/plans", plansave.New(logger, svc.Plans).ServeHTTP)
				r.Put("/plans/{id}", plansave.New(logger, svc.Plans).ServeHTTP)
				r.Delete("/plans/{id}", planremove.New(logger, svc.Plans).ServeHTTP)

				r.Put("/subscriptions/{id}/activate", activate.New(logger, svc.Subscriptions).ServeHTTP)
				r.Put("/subscriptions/{id}/autorenew", autorenew.New(logger, svc.Subscriptions).ServeHTTP)
				r.Delete("/subscriptions/{id}", subremove.New(logger, svc.Subscriptions).ServeHTTP)

				r.Put("/invoices/{id}/state/{state}", changestate.New(logger, svc.Invoices).ServeHTTP)
				r.Delete("/invoices/{id}", invoiceremove.New(logger, svc.Invoices).ServeHTTP)

				r.Get("/audit/{entity}", auditlist.New(logger, svc.Audit).ServeHTTP)
			})
		})
	})

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/docs/*", httpSwagger.WrapHandler)
	r.Get("/health", health.New())
}
