package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"library-lending/internal/handler/api"
	"library-lending/internal/handler/middleware"
	"library-lending/internal/pkg/config"
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
	bookHandler *api.BookHandler,
	lendingHandler *api.LendingHandler,
	authHandler *api.AuthHandler,
	adminHandler *api.AdminHandler,
	adminMiddleware *middleware.AdminMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, bookHandler, lendingHandler, authHandler, adminHandler, adminMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	bookHandler *api.BookHandler,
	lendingHandler *api.LendingHandler,
	authHandler *api.AuthHandler,
	adminHandler *api.AdminHandler,
	adminMiddleware *middleware.AdminMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		books := apiGroup.Group("/books")
		{
			addRoutes(books, []route{
				{Method: http.MethodGet, Path: "", Handler: bookHandler.ListAvailable},
				{Method: http.MethodGet, Path: "/:id", Handler: bookHandler.GetBook},
			})
		}

		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/google-login", Handler: authHandler.GoogleLogin},
				{Method: http.MethodPost, Path: "/complete-profile", Handler: authHandler.CompleteProfile},
			})
		}

		borrow := apiGroup.Group("/borrow")
		{
			addRoutes(borrow, []route{
				{Method: http.MethodGet, Path: "/status/:bookId/:userId", Handler: lendingHandler.Status},
				{Method: http.MethodGet, Path: "/user/:userId/count", Handler: lendingHandler.Count},
				{Method: http.MethodGet, Path: "/user/:userId/active", Handler: lendingHandler.Active},
				{Method: http.MethodGet, Path: "/user/:userId/history", Handler: lendingHandler.History},
				{Method: http.MethodPost, Path: "/return/:recordId", Handler: lendingHandler.Return},
				{Method: http.MethodPost, Path: "/:bookId", Handler: lendingHandler.Borrow},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(adminMiddleware.RequireAdmin())
		{
			addRoutes(admin, []route{
				{Method: http.MethodGet, Path: "/books", Handler: adminHandler.ListBooks},
				{Method: http.MethodPost, Path: "/books/add", Handler: adminHandler.AddBook},
				{Method: http.MethodPut, Path: "/books/edit/:bookId", Handler: adminHandler.EditBook},
				{Method: http.MethodDelete, Path: "/books/delete/:bookId", Handler: adminHandler.DeleteBook},
				{Method: http.MethodGet, Path: "/users", Handler: adminHandler.ListUsers},
				{Method: http.MethodPost, Path: "/users/block/:userId", Handler: adminHandler.BlockUser},
				{Method: http.MethodPost, Path: "/users/unblock/:userId", Handler: adminHandler.UnblockUser},
				{Method: http.MethodGet, Path: "/users/:userId/borrows", Handler: adminHandler.UserBorrows},
				{Method: http.MethodGet, Path: "/overdue-users", Handler: adminHandler.Overdue},
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
