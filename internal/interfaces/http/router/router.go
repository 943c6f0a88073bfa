package router

import (
	"github.com/gin-gonic/gin"
	"github.com/shoply/backend/internal/infrastructure/auth"
	"github.com/shoply/backend/internal/infrastructure/config"
	"github.com/shoply/backend/internal/infrastructure/logger"
	"github.com/shoply/backend/internal/interfaces/http/handler"
	"github.com/shoply/backend/internal/interfaces/http/middleware"
	"go.uber.org/zap"
)

// Handlers bundles the handlers the router wires up
type Handlers struct {
	System  *handler.SystemHandler
	Store   *handler.StoreHandler
	Product *handler.ProductHandler
	Cart    *handler.CartHandler
	Order   *handler.OrderHandler
	Address *handler.AddressHandler
	Import  *handler.ImportHandler
}

// New builds the gin engine with middleware and all routes registered.
// Catalog reads are public; cart, orders and addresses require a token;
// catalog writes, order status changes and imports require an admin token.
func New(cfg *config.Config, log *zap.Logger, jwtService *auth.JWTService, h Handlers) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	middleware.SetupValidator()

	engine := gin.New()
	engine.Use(
		middleware.RequestID(),
		logger.GinMiddleware(log),
		logger.Recovery(log),
		middleware.CORS(cfg.HTTP),
		middleware.BodyLimit(cfg.HTTP.MaxBodySize),
	)

	engine.GET("/health", h.System.Health)
	engine.GET("/ready", h.System.Ready)

	api := engine.Group("/api/v1")

	// public catalog
	api.GET("/stores", h.Store.List)
	api.GET("/stores/:id", h.Store.GetByID)
	api.GET("/stores/:id/products", h.Product.ListByStore)
	api.GET("/products/:id", h.Product.GetByID)

	// authenticated
	authed := api.Group("", middleware.JWTAuth(jwtService))
	{
		authed.GET("/cart", h.Cart.Get)
		authed.POST("/cart/items", h.Cart.AddItem)
		authed.DELETE("/cart/items/:itemId", h.Cart.RemoveItem)

		authed.POST("/orders/checkout", h.Order.Checkout)
		authed.GET("/orders", h.Order.List)
		authed.GET("/orders/:id", h.Order.GetByID)
		authed.POST("/orders/:id/cancel", h.Order.Cancel)

		authed.GET("/addresses", h.Address.List)
		authed.POST("/addresses", h.Address.Create)
		authed.PUT("/addresses/:id", h.Address.Update)
		authed.POST("/addresses/:id/default", h.Address.SetDefault)
		authed.DELETE("/addresses/:id", h.Address.Delete)
	}

	// administrative
	admin := api.Group("", middleware.JWTAuth(jwtService), middleware.RequireAdmin())
	{
		admin.POST("/stores", h.Store.Create)
		admin.PUT("/stores/:id", h.Store.Update)
		admin.POST("/stores/:id/products", h.Product.Create)
		admin.PUT("/products/:id", h.Product.Update)
		admin.DELETE("/products/:id", h.Product.Delete)

		admin.PATCH("/orders/:id/status", h.Order.UpdateStatus)

		admin.POST("/import/products", h.Import.ImportProducts)
	}

	return engine
}
