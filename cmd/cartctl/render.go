package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"storefront/internal/domain/entity"
	"storefront/internal/util"

	"github.com/shopspring/decimal"
)

func renderCart(w io.Writer, cart *entity.Cart) {
	if len(cart.Items) == 0 {
		fmt.Fprintf(w, "Cart (%s) is empty\n", cart.Kind)

		return
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ITEM\tPRODUCT\tQTY\tUNIT\tTOTAL")
	for i := range cart.Items {
		item := &cart.Items[i]
		name := item.ProductName
		if item.VariantInfo != nil {
			name = fmt.Sprintf("%s (%s/%s)", name, item.VariantInfo.Color, item.VariantInfo.Size)
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\n",
			item.ID, name, item.Quantity, util.FormatPrice(item.EffectivePrice()), util.FormatPrice(item.TotalPrice))
	}
	_ = tw.Flush()
	fmt.Fprintf(w, "Cart (%s): %d item(s), total %s\n", cart.Kind, cart.TotalItems, util.FormatPrice(cart.TotalAmount))
}

func renderProducts(w io.Writer, products []*entity.Product) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tCATEGORY\tPRICE")
	for _, p := range products {
		price := util.FormatPrice(p.Price)
		if p.DiscountedPrice.Valid && p.DiscountedPrice.Decimal.IsPositive() {
			price = util.FormatPrice(p.DiscountedPrice.Decimal) + " (was " + price + ")"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", p.ProductID, p.Name, p.CategoryName, price)
	}
	_ = tw.Flush()
}

func renderAddresses(w io.Writer, addresses []*entity.Address) {
	if len(addresses) == 0 {
		fmt.Fprintln(w, "No saved addresses")

		return
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tRECEIVER\tADDRESS\tDEFAULT")
	for _, a := range addresses {
		def := ""
		if a.IsDefault {
			def = "*"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s, %s, %s\t%s\n", a.ID, a.ReceiverName, a.AddressLine1, a.State, a.City, def)
	}
	_ = tw.Flush()
}

func renderCheckout(w io.Writer, checkout *entity.Checkout) {
	fmt.Fprintf(w, "Checkout %s, step %s\n", checkout.ID, checkout.Step)
	if checkout.Address != nil {
		fmt.Fprintf(w, "Ship to: %s, %s, %s\n", checkout.Address.ReceiverName, checkout.Address.AddressLine1, checkout.Address.City)
	}
	if checkout.PaymentMethod != "" {
		fmt.Fprintf(w, "Payment: %s\n", checkout.PaymentMethod)
	}
	if s := checkout.Summary; s != nil {
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)
		fmt.Fprintf(tw, "Subtotal\t%s\t\n", util.FormatPrice(s.Subtotal))
		fmt.Fprintf(tw, "Shipping\t%s\t\n", util.FormatPrice(s.ShippingFee))
		if !s.Discount.IsZero() {
			fmt.Fprintf(tw, "Discount\t-%s\t\n", util.FormatPrice(s.Discount))
		}
		if !s.Tax.IsZero() {
			fmt.Fprintf(tw, "Tax\t%s\t\n", util.FormatPrice(s.Tax))
		}
		fmt.Fprintf(tw, "Total\t%s\t\n", util.FormatPrice(s.Total))
		_ = tw.Flush()
	}
}

func renderOrder(w io.Writer, order *entity.Order) {
	if order == nil {
		return
	}
	fmt.Fprintf(w, "Order %s placed: %s, %s, %s\n",
		order.OrderNumber, order.Status, order.PaymentStatus, util.FormatPrice(order.TotalAmount))
}

func renderOrders(w io.Writer, page *entity.OrderPage) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNUMBER\tSTATUS\tPAYMENT\tTOTAL")
	for _, o := range page.Orders {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", o.ID, o.OrderNumber, o.Status, o.PaymentStatus, util.FormatPrice(o.TotalAmount))
	}
	_ = tw.Flush()
	fmt.Fprintf(w, "Page %d, %d of %d order(s)\n", page.Page, len(page.Orders), page.Total)
}

func renderBankInfo(w io.Writer, info *entity.BankTransferInfo) {
	fmt.Fprintf(w, "Bank:    %s\n", info.BankName)
	fmt.Fprintf(w, "Account: %s\n", info.AccountNumber)
	fmt.Fprintf(w, "Name:    %s\n", info.AccountName)
	fmt.Fprintf(w, "Content: %s\n", info.TransferContent)
}

func renderDeals(w io.Writer, deals []*entity.DiscountedProduct) {
	if len(deals) == 0 {
		fmt.Fprintln(w, "No deals right now")

		return
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tPRICE\tWAS\tOFF")
	for _, d := range deals {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t-%s%%\n",
			d.ProductID, d.ProductName, util.FormatPrice(d.DiscountedPrice), util.FormatPrice(d.OriginalPrice), d.DiscountPercentage.String())
	}
	_ = tw.Flush()
}

func renderShipping(w io.Writer, fee *entity.ShippingFee, cartTotal decimal.Decimal, express bool) {
	fmt.Fprintf(w, "Standard: %s\n", util.FormatPrice(fee.BaseShipping))
	fmt.Fprintf(w, "Express:  %s\n", util.FormatPrice(fee.ExpressShipping))
	fmt.Fprintf(w, "Free from %s (%s rates)\n", util.FormatPrice(fee.FreeShippingThreshold), fee.Source)
	fmt.Fprintf(w, "This cart pays %s\n", util.FormatPrice(fee.Fee(cartTotal, express)))
}

func renderInvoice(w io.Writer, invoice *entity.Invoice) {
	fmt.Fprintf(w, "Invoice %s for order %d\n", invoice.InvoiceNumber, invoice.OrderID)
	if invoice.Customer.Name != "" {
		fmt.Fprintf(w, "Bill to: %s <%s>\n", invoice.Customer.Name, invoice.Customer.Email)
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)
	for i := range invoice.Items {
		item := &invoice.Items[i]
		fmt.Fprintf(tw, "%s x%d\t%s\t\n", item.ProductName, item.Quantity, util.FormatPrice(item.TotalPrice))
	}
	fmt.Fprintf(tw, "Subtotal\t%s\t\n", util.FormatPrice(invoice.Subtotal))
	fmt.Fprintf(tw, "Shipping\t%s\t\n", util.FormatPrice(invoice.ShippingFee))
	if !invoice.Discount.IsZero() {
		fmt.Fprintf(tw, "Discount\t-%s\t\n", util.FormatPrice(invoice.Discount))
	}
	fmt.Fprintf(tw, "Total\t%s\t\n", util.FormatPrice(invoice.Total))
	_ = tw.Flush()
	fmt.Fprintf(w, "Payment: %s, %s\n", invoice.PaymentMethod, invoice.PaymentStatus)
}
