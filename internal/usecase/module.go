package usecase

import (
	"go.uber.org/fx"

	"github.com/invoicehub/invoicehub/internal/viewcache"
)

// Module provides core business use cases to the fx container.
var Module = fx.Options(
	fx.Provide(func(c *viewcache.Cache) ViewInvalidator { return c }),
	fx.Provide(
		NewAuthUseCase,
		NewInvoiceUseCase,
		NewCustomerUseCase,
	),
)
