package routes

import (
	"medibay/carts"
	"medibay/catalog"
	"medibay/middleware"
	"medibay/orders"
	"medibay/pay"
	"medibay/ratelim"
	"medibay/receipts"

	"github.com/julienschmidt/httprouter"
)

func AddCatalogRoutes(router *httprouter.Router, rl *ratelim.RateLimiter, h *catalog.Handler) {
	router.GET("/api/catalog", rl.Limit(middleware.OptionalAuth(h.ListItems)))
	router.GET("/api/catalog/:itemId", rl.Limit(middleware.OptionalAuth(h.GetItem)))
}

func AddCartRoutes(router *httprouter.Router, rl *ratelim.RateLimiter, h *carts.Handler) {
	router.GET("/api/cart", rl.Limit(middleware.Authenticate(h.GetCart)))
	router.POST("/api/cart/items", rl.Limit(middleware.Authenticate(h.AddItem)))
	router.PATCH("/api/cart/items/:itemId", rl.Limit(middleware.Authenticate(h.UpdateItem)))
	router.DELETE("/api/cart", rl.Limit(middleware.Authenticate(h.ClearCart)))

	router.POST("/api/checkout", rl.Limit(middleware.Authenticate(h.Checkout)))
	router.GET("/api/checkout/:reference", rl.Limit(middleware.Authenticate(h.GetDraft)))
	router.DELETE("/api/checkout/:reference", rl.Limit(middleware.Authenticate(h.Abandon)))
}

func AddPaymentRoutes(router *httprouter.Router, rl *ratelim.RateLimiter, p *pay.Service) {
	router.GET("/api/payment/methods", rl.Limit(middleware.OptionalAuth(p.ListMethods)))
	router.POST("/api/checkout/:reference/pay", rl.Limit(middleware.Authenticate(pay.Idempotent(p.Pay))))
}

func AddOrderRoutes(router *httprouter.Router, rl *ratelim.RateLimiter, h *orders.Handler) {
	router.GET("/api/orders", rl.Limit(middleware.Authenticate(h.ListOrders)))
}

func AddReceiptRoutes(router *httprouter.Router, rl *ratelim.RateLimiter, h *receipts.Handler) {
	router.GET("/api/checkout/:reference/receipt", rl.Limit(middleware.Authenticate(h.PrintReceipt)))
}
