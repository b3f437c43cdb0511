package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"storefront/config"
	"storefront/internal/domain/service"
	"storefront/internal/infra/gateway"
	logs "storefront/internal/infra/log"
	"storefront/internal/infra/persistence/kv"
	"storefront/internal/infra/pubsub"
	"storefront/internal/infra/qrcode"
	"storefront/internal/usecase"
	"storefront/internal/usecase/impl"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Supported subcommands:
// - cart, add, update, remove, clear: the guest or authenticated cart
// - login, logout, register, whoami:  the stored session
// - products, product, addresses:     read-only lookups
// - checkout:                         begin a checkout and place the order
// - orders, cancel:                   order history
// - bank-info, qr:                    bank transfer details

// usecases is filled by fx.Populate before a subcommand runs.
type usecases struct {
	cart     usecase.CartUsecase
	session  usecase.SessionUsecase
	catalog  usecase.CatalogUsecase
	address  usecase.AddressUsecase
	checkout usecase.CheckoutUsecase
	order    usecase.OrderUsecase
	payment  usecase.PaymentUsecase
}

func main() {
	if len(os.Args) < 2 {
		printUsage(os.Stderr)
		os.Exit(1)
	}

	cmd, ok := commands()[os.Args[1]]
	if !ok {
		printUsage(os.Stderr)
		fmt.Fprintf(os.Stderr, "Error: unknown subcommand %q\n", os.Args[1])
		os.Exit(1)
	}

	if err := cmd.flags.Parse(os.Args[2:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := run(context.Background(), cmd); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run starts the dependency graph, runs one subcommand against it and stops the graph again
// so the durable store and event forwarder are flushed.
func run(ctx context.Context, cmd *command) error {
	var uc usecases
	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			fx.Annotate(
				func() io.Writer { return os.Stderr },
				fx.ResultTags(`name:"logOutput"`),
			),
			logs.New,
			func() context.Context { return ctx },
			newQRCodeService,
		),
		pubsub.Module,
		kv.Module,
		gateway.Module,
		impl.Module,
		fx.Populate(
			&uc.cart,
			&uc.session,
			&uc.catalog,
			&uc.address,
			&uc.checkout,
			&uc.order,
			&uc.payment,
		),
	)

	if err := app.Start(ctx); err != nil {
		return errors.Wrap(err, "failed to start")
	}

	runErr := cmd.run(ctx, &uc, os.Stdout)

	if err := app.Stop(ctx); err != nil && runErr == nil {
		return errors.Wrap(err, "failed to stop")
	}

	return runErr
}

func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}
