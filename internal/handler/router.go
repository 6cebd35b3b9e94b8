package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"resource-desk/internal/domain/user"
	"resource-desk/internal/handler/api"
	"resource-desk/internal/handler/middleware"
	"resource-desk/internal/pkg/config"
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
	borrowingHandler *api.BorrowingHandler,
	bookingHandler *api.BookingHandler,
	acquiringHandler *api.AcquiringHandler,
	myRequestsHandler *api.MyRequestsHandler,
	notificationHandler *api.NotificationHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(
		engine,
		authHandler,
		borrowingHandler,
		bookingHandler,
		acquiringHandler,
		myRequestsHandler,
		notificationHandler,
		authMiddleware,
	)
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
	authHandler *api.AuthHandler,
	borrowingHandler *api.BorrowingHandler,
	bookingHandler *api.BookingHandler,
	acquiringHandler *api.AcquiringHandler,
	myRequestsHandler *api.MyRequestsHandler,
	notificationHandler *api.NotificationHandler,
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
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: authHandler.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: authHandler.Me},
			})
		}

		// Requester surface: any authenticated user, scoped to own rows.
		my := apiGroup.Group("/my")
		my.Use(authMiddleware.RequireAuth())
		{
			addRoutes(my, []route{
				{Method: http.MethodGet, Path: "/borrowing/requests", Handler: myRequestsHandler.ListBorrowing},
				{Method: http.MethodPost, Path: "/borrowing/mark-returned", Handler: myRequestsHandler.MarkReturned},
				{Method: http.MethodDelete, Path: "/borrowing/bulk-delete", Handler: myRequestsHandler.DeleteBorrowing},
				{Method: http.MethodGet, Path: "/booking/requests", Handler: myRequestsHandler.ListBooking},
				{Method: http.MethodPost, Path: "/booking/mark-done", Handler: myRequestsHandler.MarkDone},
				{Method: http.MethodDelete, Path: "/booking/bulk-delete", Handler: myRequestsHandler.DeleteBooking},
				{Method: http.MethodGet, Path: "/acquiring/requests", Handler: myRequestsHandler.ListAcquiring},
				{Method: http.MethodDelete, Path: "/acquiring/bulk-delete", Handler: myRequestsHandler.DeleteAcquiring},
			})
		}

		notifications := apiGroup.Group("/notifications")
		notifications.Use(authMiddleware.RequireAuth())
		{
			addRoutes(notifications, []route{
				{Method: http.MethodGet, Path: "", Handler: notificationHandler.List},
				{Method: http.MethodGet, Path: "/unread-count", Handler: notificationHandler.UnreadCount},
				{Method: http.MethodPatch, Path: "/:id/read", Handler: notificationHandler.MarkRead},
				{Method: http.MethodPost, Path: "/mark-all-read", Handler: notificationHandler.MarkAllRead},
				{Method: http.MethodDelete, Path: "/:id", Handler: notificationHandler.Delete},
				{Method: http.MethodDelete, Path: "", Handler: notificationHandler.DeleteAll},
			})
		}

		// Admin surface: full visibility plus the decision endpoints.
		admin := apiGroup.Group("")
		admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRoleAtLeast(user.RoleAdmin))
		{
			borrowing := admin.Group("/borrowing")
			addRoutes(borrowing, []route{
				{Method: http.MethodGet, Path: "/requests", Handler: borrowingHandler.List},
				{Method: http.MethodGet, Path: "/return-notifications", Handler: borrowingHandler.ListReturnNotifications},
				{Method: http.MethodPut, Path: "/bulk-update-status", Handler: borrowingHandler.BulkUpdateStatus},
				{Method: http.MethodDelete, Path: "/bulk-delete", Handler: borrowingHandler.BulkDelete},
				{Method: http.MethodPost, Path: "/confirm-return", Handler: borrowingHandler.ConfirmReturn},
				{Method: http.MethodPost, Path: "/reject-return", Handler: borrowingHandler.RejectReturn},
			})

			booking := admin.Group("/booking")
			addRoutes(booking, []route{
				{Method: http.MethodGet, Path: "/requests", Handler: bookingHandler.List},
				{Method: http.MethodGet, Path: "/done-notifications", Handler: bookingHandler.ListDoneNotifications},
				{Method: http.MethodPut, Path: "/bulk-update-status", Handler: bookingHandler.BulkUpdateStatus},
				{Method: http.MethodDelete, Path: "/bulk-delete", Handler: bookingHandler.BulkDelete},
				{Method: http.MethodPost, Path: "/confirm-done", Handler: bookingHandler.ConfirmDone},
				{Method: http.MethodPost, Path: "/dismiss-done", Handler: bookingHandler.DismissDone},
			})

			acquiring := admin.Group("/acquiring")
			addRoutes(acquiring, []route{
				{Method: http.MethodGet, Path: "/requests", Handler: acquiringHandler.List},
				{Method: http.MethodPut, Path: "/bulk-update-status", Handler: acquiringHandler.BulkUpdateStatus},
				{Method: http.MethodDelete, Path: "/bulk-delete", Handler: acquiringHandler.BulkDelete},
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
