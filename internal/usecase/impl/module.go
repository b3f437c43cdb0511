package impl

import "go.uber.org/fx"

// Module provides the usecase FX module and subscribes the guest cart merge to logins
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewGuestCartService,
		NewUserCartService,
		NewCartService,
		NewCartMergeService,
		NewOrderSummaryService,
		NewCheckoutService,
		NewSessionService,
		NewAddressService,
		NewPaymentService,
		NewOrderService,
		NewCatalogService,
	),
	fx.Invoke(SubscribeCartMerge),
)
