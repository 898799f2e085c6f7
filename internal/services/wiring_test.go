package services

import (
	"github.com/magabrotheeeer/billing-portal/internal/cache"
	"github.com/magabrotheeeer/billing-portal/internal/collaborator"
	jwtlib "github.com/magabrotheeeer/billing-portal/internal/lib/jwt"
)

// Compile-time checks that the concrete types wired in the app satisfy
// the service-side interfaces.
var (
	_ SubscriptionAPI = (*collaborator.Client)(nil)
	_ PlanAPI         = (*collaborator.Client)(nil)
	_ InvoiceAPI      = (*collaborator.Client)(nil)
	_ UserAPI         = (*collaborator.Client)(nil)
	_ AuditAPI        = (*collaborator.Client)(nil)
	_ AuthAPI         = (*collaborator.Client)(nil)

	_ PlanReader = (*PlanService)(nil)

	_ UserLister         = (*UserService)(nil)
	_ PlanLister         = (*PlanService)(nil)
	_ SubscriptionLister = (*SubscriptionService)(nil)
	_ InvoiceLister      = (*InvoiceService)(nil)

	_ Cache = (*cache.Cache)(nil)

	_ TokenMaker = (*jwtlib.MakerImpl)(nil)
)
