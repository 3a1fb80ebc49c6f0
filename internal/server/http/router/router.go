package router

import (
	"log/slog"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/invoicehub/invoicehub/internal/server/http/handlers"
	"github.com/invoicehub/invoicehub/internal/server/http/middleware"
	"github.com/invoicehub/invoicehub/internal/viewcache"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.DashboardFacade, views *viewcache.Cache, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))
	engine.Use(cors.New(corsCfg))
	engine.Use(middleware.SessionGate(facade))

	authHandler := handlers.NewAuthHandler(facade)
	invoiceHandler := handlers.NewInvoiceHandler(facade, views)
	customerHandler := handlers.NewCustomerHandler(facade)
	dashboardHandler := handlers.NewDashboardHandler(facade)

	engine.POST("/login", authHandler.Login)
	engine.POST("/register", authHandler.Register)
	engine.POST("/logout", authHandler.Logout)

	dashboard := engine.Group(middleware.DashboardPath)
	dashboard.GET("", dashboardHandler.Overview)
	dashboard.GET("/invoices", invoiceHandler.List)
	dashboard.POST("/invoices", invoiceHandler.Create)
	dashboard.GET("/invoices/:id", invoiceHandler.Get)
	dashboard.POST("/invoices/:id", invoiceHandler.Update)
	dashboard.DELETE("/invoices/:id", invoiceHandler.Delete)
	dashboard.GET("/customers", customerHandler.List)

	return engine
}
