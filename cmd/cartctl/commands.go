package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
)

type command struct {
	flags *flag.FlagSet
	usage string
	run   func(ctx context.Context, uc *usecases, out io.Writer) error
}

func newCommand(name, usage string) *command {
	return &command{
		flags: flag.NewFlagSet(name, flag.ExitOnError),
		usage: usage,
	}
}

//nolint:funlen
func commands() map[string]*command {
	cmds := map[string]*command{}

	cartCmd := newCommand("cart", "Show the current cart")
	cartCmd.run = func(ctx context.Context, uc *usecases, out io.Writer) error {
		cart, err := uc.cart.GetCart(ctx)
		if err != nil {
			return err
		}
		renderCart(out, cart)

		return nil
	}
	cmds["cart"] = cartCmd

	addCmd := newCommand("add", "Add a product to the cart")
	addProduct := addCmd.flags.Int64("product", 0, "Product ID")
	addQty := addCmd.flags.Int("qty", 1, "Quantity")
	addVariant := addCmd.flags.Int64("variant", 0, "Variant ID, 0 for the base product")
	addCmd.run = func(ctx context.Context, uc *usecases, out io.Writer) error {
		input := &usecase.AddToCartInput{ProductID: *addProduct, Quantity: *addQty}
		if *addVariant > 0 {
			input.VariantID = addVariant
		}
		cart, err := uc.cart.AddToCart(ctx, input)
		if err != nil {
			return err
		}
		renderCart(out, cart)

		return nil
	}
	cmds["add"] = addCmd

	updateCmd := newCommand("update", "Change the quantity of a cart line, 0 removes it")
	updateItem := updateCmd.flags.String("item", "", "Cart item ID")
	updateQty := updateCmd.flags.Int("qty", 1, "New quantity")
	updateCmd.run = func(ctx context.Context, uc *usecases, out io.Writer) error {
		cart, err := uc.cart.UpdateItem(ctx, *updateItem, *updateQty)
		if err != nil {
			return err
		}
		renderCart(out, cart)

		return nil
	}
	cmds["update"] = updateCmd

	removeCmd := newCommand("remove", "Remove a cart line")
	removeItem := removeCmd.flags.String("item", "", "Cart item ID")
	removeCmd.run = func(ctx context.Context, uc *usecases, out io.Writer) error {
		cart, err := uc.cart.RemoveItem(ctx, *removeItem)
		if err != nil {
			return err
		}
		renderCart(out, cart)

		return nil
	}
	cmds["remove"] = removeCmd

	clearCmd := newCommand("clear", "Empty the cart")
	clearCmd.run = func(ctx context.Context, uc *usecases, out io.Writer) error {
		cart, err := uc.cart.ClearCart(ctx)
		if err != nil {
			return err
		}
		renderCart(out, cart)

		return nil
	}
	cmds["clear"] = clearCmd

	loginCmd := newCommand("login", "Sign in; the guest cart is merged into the account")
	loginEmail := loginCmd.flags.String("email", "", "Account email")
	loginPassword := loginCmd.flags.String("password", "", "Account password")
	loginCmd.run = func(ctx context.Context, uc *usecases, out io.Writer) error {
		user, err := uc.session.Login(ctx, &usecase.LoginInput{Email: *loginEmail, Password: *loginPassword})
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Signed in as %s <%s>\n", user.FullName, user.Email)
		fmt.Fprintf(out, "Cart: %d item(s)\n", uc.cart.ItemCount(ctx))

		return nil
	}
	cmds["login"] = loginCmd

	logoutCmd := newCommand("logout", "Sign out")
	logoutCmd.run = func(ctx context.Context, uc *usecases, out io.Writer) error {
		if err := uc.session.Logout(ctx); err != nil {
			return err
		}
		fmt.Fprintln(out, "Signed out")

		return nil
	}
	cmds["logout"] = logoutCmd

	registerCmd := newCommand("register", "Create an account")
	registerName := registerCmd.flags.String("name", "", "Full name")
	registerEmail := registerCmd.flags.String("email", "", "Account email")
	registerPassword := registerCmd.flags.String("password", "", "Account password")
	registerPhone := registerCmd.flags.String("phone", "", "Phone number")
	registerCmd.run = func(ctx context.Context, uc *usecases, out io.Writer) error {
		err := uc.session.Register(ctx, &usecase.RegisterInput{
			FullName:        *registerName,
			Email:           *registerEmail,
			Password:        *registerPassword,
			ConfirmPassword: *registerPassword,
			Phone:           *registerPhone,
		})
		if err != nil {
			return err
		}
		fmt.Fprintln(out, "Account created, run login to sign in")

		return nil
	}
	cmds["register"] = registerCmd

	whoamiCmd := newCommand("whoami", "Show the stored session")
	whoamiCmd.run = func(ctx context.Context, uc *usecases, out io.Writer) error {
		user, err := uc.session.CurrentUser(ctx)
		if err != nil {
			return err
		}
		if user == nil {
			fmt.Fprintln(out, "Guest")

			return nil
		}
		fmt.Fprintf(out, "%s <%s>\n", user.FullName, user.Email)

		return nil
	}
	cmds["whoami"] = whoamiCmd

	productsCmd := newCommand("products", "List products")
	productsCategory := productsCmd.flags.String("category", "", "Category name")
	productsCmd.run = func(ctx context.Context, uc *usecases, out io.Writer) error {
		products, err := uc.catalog.ListProducts(ctx, *productsCategory)
		if err != nil {
			return err
		}
		renderProducts(out, products)

		return nil
	}
	cmds["products"] = productsCmd

	productCmd := newCommand("product", "Show one product")
	productID := productCmd.flags.Int64("id", 0, "Product ID")
	productCmd.run = func(ctx context.Context, uc *usecases, out io.Writer) error {
		product, err := uc.catalog.GetProduct(ctx, *productID)
		if err != nil {
			return err
		}
		renderProducts(out, []*entity.Product{product})

		return nil
	}
	cmds["product"] = productCmd

	categoriesCmd := newCommand("categories", "List catalog categories")
	categoriesCmd.run = func(ctx context.Context, uc *usecases, out io.Writer) error {
		categories, err := uc.catalog.ListCategories(ctx)
		if err != nil {
			return err
		}
		for _, c := range categories {
			fmt.Fprintf(out, "%d\t%s\n", c.CategoryID, c.CategoryName)
		}

		return nil
	}
	cmds["categories"] = categoriesCmd

	dealsCmd := newCommand("deals", "List discounted products")
	dealsAll := dealsCmd.flags.Bool("all", false, "Include inactive and expired deals")
	dealsCmd.run = func(ctx context.Context, uc *usecases, out io.Writer) error {
		deals, err := uc.catalog.ListDiscountedProducts(ctx, !*dealsAll)
		if err != nil {
			return err
		}
		renderDeals(out, deals)

		return nil
	}
	cmds["deals"] = dealsCmd

	addressesCmd := newCommand("addresses", "List saved addresses")
	addressesCmd.run = func(ctx context.Context, uc *usecases, out io.Writer) error {
		addresses, err := uc.address.List(ctx)
		if err != nil {
			return err
		}
		renderAddresses(out, addresses)

		return nil
	}
	cmds["addresses"] = addressesCmd

	checkoutCmd := newCommand("checkout", "Check out the cart, or -items of it, and place the order")
	checkoutItems := checkoutCmd.flags.String("items", "", "Comma-separated cart item IDs, empty for the whole cart")
	checkoutAddress := checkoutCmd.flags.Int64("address", 0, "Address ID, 0 for the default address")
	checkoutPayment := checkoutCmd.flags.String("payment", "", "Payment method ID")
	checkoutDiscount := checkoutCmd.flags.String("discount", "", "Discount code")
	checkoutNotes := checkoutCmd.flags.String("notes", "", "Order notes")
	checkoutDryRun := checkoutCmd.flags.Bool("dry-run", false, "Show the summary without placing the order")
	checkoutCmd.run = func(ctx context.Context, uc *usecases, out io.Writer) error {
		checkout, err := uc.checkout.Begin(ctx, &usecase.BeginCheckoutInput{CartItemIDs: splitIDs(*checkoutItems)})
		if err != nil {
			return err
		}
		id := checkout.ID

		steps := []func() error{
			func() error {
				if *checkoutAddress == 0 {
					return nil
				}
				checkout, err = uc.checkout.SelectAddress(ctx, id, *checkoutAddress)

				return err
			},
			func() error {
				if *checkoutPayment == "" {
					return nil
				}
				checkout, err = uc.checkout.SelectPaymentMethod(ctx, id, *checkoutPayment)

				return err
			},
			func() error {
				if *checkoutDiscount == "" {
					return nil
				}
				checkout, err = uc.checkout.ApplyDiscountCode(ctx, id, *checkoutDiscount)

				return err
			},
		}
		for _, step := range steps {
			if err := step(); err != nil {
				return err
			}
		}

		renderCheckout(out, checkout)
		if *checkoutDryRun {
			return nil
		}

		checkout, err = uc.checkout.PlaceOrder(ctx, id, &usecase.PlaceOrderInput{Notes: *checkoutNotes})
		if err != nil {
			return err
		}
		renderOrder(out, checkout.Order)

		return nil
	}
	cmds["checkout"] = checkoutCmd

	ordersCmd := newCommand("orders", "List orders")
	ordersPage := ordersCmd.flags.Int("page", 1, "Page number")
	ordersLimit := ordersCmd.flags.Int("limit", 0, "Page size, 0 for the configured default")
	ordersCmd.run = func(ctx context.Context, uc *usecases, out io.Writer) error {
		page, err := uc.order.List(ctx, *ordersPage, *ordersLimit)
		if err != nil {
			return err
		}
		renderOrders(out, page)

		return nil
	}
	cmds["orders"] = ordersCmd

	cancelCmd := newCommand("cancel", "Cancel an order")
	cancelOrder := cancelCmd.flags.Int64("order", 0, "Order ID")
	cancelReason := cancelCmd.flags.String("reason", "", "Cancellation reason")
	cancelCmd.run = func(ctx context.Context, uc *usecases, out io.Writer) error {
		if err := uc.order.Cancel(ctx, *cancelOrder, &usecase.CancelOrderInput{Reason: *cancelReason}); err != nil {
			return err
		}
		fmt.Fprintf(out, "Order %d cancelled\n", *cancelOrder)

		return nil
	}
	cmds["cancel"] = cancelCmd

	invoiceCmd := newCommand("invoice", "Show the invoice of an order")
	invoiceOrder := invoiceCmd.flags.Int64("order", 0, "Order ID")
	invoiceIssue := invoiceCmd.flags.Bool("issue", false, "Ask the backend to issue the invoice first")
	invoiceCmd.run = func(ctx context.Context, uc *usecases, out io.Writer) error {
		read := uc.order.GetInvoice
		if *invoiceIssue {
			read = uc.order.GenerateInvoice
		}
		invoice, err := read(ctx, *invoiceOrder)
		if err != nil {
			return err
		}
		renderInvoice(out, invoice)

		return nil
	}
	cmds["invoice"] = invoiceCmd

	bankInfoCmd := newCommand("bank-info", "Show the bank transfer account")
	bankInfoOrder := bankInfoCmd.flags.String("order", "", "Order number used in the transfer content")
	bankInfoCmd.run = func(ctx context.Context, uc *usecases, out io.Writer) error {
		renderBankInfo(out, uc.payment.BankTransferInfo(ctx, *bankInfoOrder))

		return nil
	}
	cmds["bank-info"] = bankInfoCmd

	shippingCmd := newCommand("shipping", "Quote shipping rates for the current cart")
	shippingAddress := shippingCmd.flags.Int64("address", 0, "Address ID")
	shippingExpress := shippingCmd.flags.Bool("express", false, "Quote express delivery")
	shippingCmd.run = func(ctx context.Context, uc *usecases, out io.Writer) error {
		cart, err := uc.cart.GetCart(ctx)
		if err != nil {
			return err
		}
		fee, err := uc.payment.ShippingFee(ctx, &usecase.ShippingFeeInput{AddressID: *shippingAddress, CartTotal: cart.TotalAmount})
		if err != nil {
			return err
		}
		renderShipping(out, fee, cart.TotalAmount, *shippingExpress)

		return nil
	}
	cmds["shipping"] = shippingCmd

	qrCmd := newCommand("qr", "Write the bank transfer QR code of an order as PNG")
	qrOrder := qrCmd.flags.String("order", "", "Order number")
	qrOutput := qrCmd.flags.String("output", "transfer.png", "Output file")
	qrCmd.run = func(ctx context.Context, uc *usecases, out io.Writer) error {
		png, err := uc.payment.BankTransferQR(ctx, *qrOrder)
		if err != nil {
			return err
		}
		if err := os.WriteFile(*qrOutput, png, 0o600); err != nil {
			return errors.Wrap(err, "failed to write QR code")
		}
		fmt.Fprintf(out, "QR code written to %s\n", *qrOutput)

		return nil
	}
	cmds["qr"] = qrCmd

	return cmds
}

// splitIDs turns "501, 502" into ["501" "502"], dropping blanks.
func splitIDs(raw string) []string {
	var ids []string
	for _, part := range strings.Split(raw, ",") {
		if id := strings.TrimSpace(part); id != "" {
			ids = append(ids, id)
		}
	}

	return ids
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: cartctl <subcommand> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Subcommands:")

	cmds := commands()
	names := make([]string, 0, len(cmds))
	for name := range cmds {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "  %-10s %s\n", name, cmds[name].usage)
	}
}
