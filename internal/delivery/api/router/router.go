// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CartHandler     *handler.CartHandler
	SessionHandler  *handler.SessionHandler
	AddressHandler  *handler.AddressHandler
	CatalogHandler  *handler.CatalogHandler
	CheckoutHandler *handler.CheckoutHandler
	OrderHandler    *handler.OrderHandler
	PaymentHandler  *handler.PaymentHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	cartHandler     *handler.CartHandler
	sessionHandler  *handler.SessionHandler
	addressHandler  *handler.AddressHandler
	catalogHandler  *handler.CatalogHandler
	checkoutHandler *handler.CheckoutHandler
	orderHandler    *handler.OrderHandler
	paymentHandler  *handler.PaymentHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		cartHandler:     params.CartHandler,
		sessionHandler:  params.SessionHandler,
		addressHandler:  params.AddressHandler,
		catalogHandler:  params.CatalogHandler,
		checkoutHandler: params.CheckoutHandler,
		orderHandler:    params.OrderHandler,
		paymentHandler:  params.PaymentHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// Login is required by the address, checkout and order usecases, not by a middleware:
// the cart routes serve guests and shoppers alike.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Cart routes, guest or authenticated depending on the stored session
	cartGroup := e.Group("/cart")
	{
		cartGroup.GET("", r.cartHandler.GetCart)
		cartGroup.DELETE("", r.cartHandler.ClearCart)
		cartGroup.POST("/items", r.cartHandler.AddItem)
		cartGroup.PUT("/items/:id", r.cartHandler.UpdateItem)
		cartGroup.DELETE("/items/:id", r.cartHandler.RemoveItem)
	}

	// Session routes
	sessionGroup := e.Group("/session")
	{
		sessionGroup.GET("", r.sessionHandler.Current)
		sessionGroup.POST("/login", r.sessionHandler.Login)
		sessionGroup.POST("/register", r.sessionHandler.Register)
		sessionGroup.POST("/logout", r.sessionHandler.Logout)
	}

	// Address book routes
	addressGroup := e.Group("/addresses")
	{
		addressGroup.GET("", r.addressHandler.ListAddresses)
		addressGroup.POST("", r.addressHandler.CreateAddress)
		addressGroup.PUT("/:id", r.addressHandler.UpdateAddress)
		addressGroup.DELETE("/:id", r.addressHandler.DeleteAddress)
		addressGroup.PUT("/:id/default", r.addressHandler.SetDefaultAddress)
	}

	// Catalog routes
	e.GET("/categories", r.catalogHandler.ListCategories)
	productGroup := e.Group("/products")
	{
		productGroup.GET("", r.catalogHandler.ListProducts)
		productGroup.GET("/discounted", r.catalogHandler.ListDiscountedProducts)
		productGroup.GET("/:id", r.catalogHandler.GetProduct)
	}

	// Checkout routes
	checkoutGroup := e.Group("/checkout")
	{
		checkoutGroup.POST("", r.checkoutHandler.BeginCheckout)
		checkoutGroup.GET("/:id", r.checkoutHandler.GetCheckout)
		checkoutGroup.PUT("/:id/address", r.checkoutHandler.SelectAddress)
		checkoutGroup.PUT("/:id/payment-method", r.checkoutHandler.SelectPaymentMethod)
		checkoutGroup.PUT("/:id/discount", r.checkoutHandler.ApplyDiscount)
		checkoutGroup.POST("/:id/order", r.checkoutHandler.PlaceOrder)
	}

	// Order history routes
	orderGroup := e.Group("/orders")
	{
		orderGroup.GET("", r.orderHandler.ListOrders)
		orderGroup.PUT("/:id/cancel", r.orderHandler.CancelOrder)
		orderGroup.POST("/:id/confirm-payment", r.orderHandler.ConfirmPayment)
		orderGroup.PUT("/:id/payment-status", r.orderHandler.UpdatePaymentStatus)
		orderGroup.POST("/:id/invoice", r.orderHandler.GenerateInvoice)
		orderGroup.GET("/:id/invoice", r.orderHandler.GetInvoice)
	}

	// Payment routes
	paymentGroup := e.Group("/payment")
	{
		paymentGroup.GET("/methods", r.paymentHandler.ListMethods)
		paymentGroup.GET("/bank-info", r.paymentHandler.BankTransferInfo)
		paymentGroup.GET("/bank-info/qr", r.paymentHandler.BankTransferQR)
		paymentGroup.POST("/shipping-fee", r.paymentHandler.ShippingFee)
	}
}
