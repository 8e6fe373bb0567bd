package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"clubhub/internal/domain/member"
	"clubhub/internal/handler/api"
	"clubhub/internal/handler/middleware"
	"clubhub/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	authHandler *api.AuthHandler,
	visitHandler *api.VisitHandler,
	lendingHandler *api.LendingHandler,
	kioskHandler *api.KioskHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, visitHandler, lendingHandler, kioskHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	visitHandler *api.VisitHandler,
	lendingHandler *api.LendingHandler,
	kioskHandler *api.KioskHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: authHandler.Refresh},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: authHandler.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: authHandler.Me},
			})
		}

		visits := apiGroup.Group("/visits")
		visits.Use(authMiddleware.RequireAuth())
		{
			addRoutes(visits, []route{
				{Method: http.MethodPost, Path: "", Handler: visitHandler.CheckIn,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRoleAtLeast(member.RoleStaff)}},
				{Method: http.MethodPost, Path: "/:id/checkout", Handler: visitHandler.CheckOut},
			})
		}

		kiosk := apiGroup.Group("/kiosk")
		kiosk.Use(authMiddleware.RequireAuth())
		{
			addRoutes(kiosk, []route{
				{Method: http.MethodPost, Path: "/tokens", Handler: kioskHandler.IssueToken,
					Mw: []gin.HandlerFunc{authMiddleware.RequireKiosk()}},
				{Method: http.MethodPost, Path: "/redeem", Handler: kioskHandler.RedeemToken},
			})
		}

		items := apiGroup.Group("/items")
		items.Use(authMiddleware.RequireAuth())
		{
			addRoutes(items, []route{
				{Method: http.MethodGet, Path: "/:id", Handler: lendingHandler.ItemStatus},
				{Method: http.MethodPost, Path: "/:id/borrow", Handler: lendingHandler.Borrow},
				{Method: http.MethodPost, Path: "/:id/return", Handler: lendingHandler.Return},
				{Method: http.MethodPost, Path: "/:id/queue", Handler: lendingHandler.Enqueue},
				{Method: http.MethodDelete, Path: "/:id/queue", Handler: lendingHandler.Dequeue},
			})
		}

		members := apiGroup.Group("/members")
		members.Use(authMiddleware.RequireAuth())
		{
			addRoutes(members, []route{
				{Method: http.MethodGet, Path: "/:id/visit", Handler: visitHandler.ActiveVisit},
				{Method: http.MethodGet, Path: "/:id/visits", Handler: visitHandler.History},
				{Method: http.MethodGet, Path: "/:id/loans", Handler: lendingHandler.MemberLoans},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
