package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/spicemart/spicemart/internal/server/http/handlers"
	"github.com/spicemart/spicemart/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.StoreFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)
	productHandler := handlers.NewProductHandler(facade)
	categoryHandler := handlers.NewCategoryHandler(facade)

	api := engine.Group("/api")
	api.POST("/register", authHandler.Register)
	api.POST("/login", authHandler.Login)

	api.GET("/products", productHandler.List)
	api.GET("/products/:slug", productHandler.Get)
	api.GET("/product/photo/:productId", productHandler.Photo)
	api.POST("/filtered-products", productHandler.Filtered)
	api.GET("/products-count", productHandler.Count)
	api.GET("/products-search/:keyword", productHandler.Search)
	api.GET("/related-products/:productId/:categoryId", productHandler.Related)
	api.GET("/categories", categoryHandler.List)
	api.GET("/categories/:slug", categoryHandler.Get)
	api.GET("/products-by-category/:slug", categoryHandler.ProductsByCategory)

	authed := api.Group("")
	authed.Use(middleware.AuthRequired(facade))
	authed.GET("/auth-check", authHandler.AuthCheck)
	authed.PUT("/profile", authHandler.Profile)
	authed.GET("/braintree/token", orderHandler.Token)
	authed.POST("/braintree/payment", orderHandler.Checkout)
	authed.GET("/orders", orderHandler.MyOrders)

	admin := authed.Group("")
	admin.Use(middleware.AdminRequired(facade))
	admin.GET("/admin-check", authHandler.AdminCheck)
	admin.GET("/all-orders", orderHandler.AllOrders)
	admin.PUT("/order-status/:orderId", orderHandler.UpdateStatus)
	admin.POST("/product", productHandler.Create)
	admin.PUT("/product/:productId", productHandler.Update)
	admin.DELETE("/product/:productId", productHandler.Delete)
	admin.POST("/category", categoryHandler.Create)
	admin.PUT("/category/:categoryId", categoryHandler.Update)
	admin.DELETE("/category/:categoryId", categoryHandler.Delete)

	return engine
}
