package router

import (
	"time"

	"github.com/mdSHash/SleekSell/internal/config"
	"github.com/mdSHash/SleekSell/internal/handler"
	"github.com/mdSHash/SleekSell/internal/middleware"
	"github.com/mdSHash/SleekSell/internal/model"
	"github.com/mdSHash/SleekSell/internal/persist"
	"github.com/mdSHash/SleekSell/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// New wires the HTTP surface over the already-constructed services and
// returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Store/Persist
func New(cfg *config.Config, posSvc service.POSService, authSvc service.AuthService, persistSt persist.Store, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	cartH := handler.NewCartHandler(posSvc)
	checkoutH := handler.NewCheckoutHandler(posSvc)
	inventoryH := handler.NewInventoryHandler(posSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(persistSt, rdb))

	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/refresh", authH.Refresh)
	}

	// Protected routes — any authenticated operator
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)

	v1 := r.Group("/v1", jwtMW)
	{
		v1.GET("/cart", cartH.Get)
		v1.POST("/cart/items", cartH.AddItem)
		v1.DELETE("/cart/items/:id", cartH.RemoveItem)
		v1.DELETE("/cart", cartH.Abandon)

		v1.POST("/checkout", checkoutH.Checkout)
		v1.GET("/transactions", checkoutH.List)
		v1.GET("/transactions/last", checkoutH.Last)

		v1.GET("/inventory", inventoryH.List)
	}

	// Admin-only routes
	adminMW := middleware.RequireRole(string(model.RoleAdmin))

	admin := r.Group("/v1", jwtMW, adminMW)
	{
		admin.POST("/users", authH.Register)
		admin.POST("/inventory", inventoryH.Add)
		admin.PATCH("/inventory/:id/stock", inventoryH.AdjustStock)
		admin.POST("/inventory/save", inventoryH.Save)
	}

	return r
}
