package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	md "github.com/openshelf/circulation/pkg/middleware"
	"github.com/openshelf/circulation/pkg/validate"
	"go.uber.org/zap"
)

type Handler struct {
	svc CirculationService
	log *zap.Logger
}

func New(svc CirculationService, log *zap.Logger) *Handler {
	return &Handler{
		svc: svc,
		log: log,
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig()),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
		md.JwtAuthentication,
		h.actorContext,
	)

	api.GET("/books", h.ListBooks)
	api.GET("/books/:id", h.GetBook)
	api.POST("/books", h.CreateBook)
	api.PUT("/books/:id", h.UpdateBook)
	api.DELETE("/books/:id", h.DeleteBook)

	api.GET("/members", h.ListMembers)
	api.GET("/members/:id", h.GetMember)
	api.POST("/members", h.CreateMember)
	api.PUT("/members/:id", h.UpdateMember)

	api.GET("/holds", h.ListHolds)
	api.POST("/holds", h.PlaceHold)
	api.DELETE("/holds/:id", h.CancelHold)
	api.POST("/holds/:id/fulfill", h.FulfillHold)

	api.GET("/checkout-requests", h.ListRequests)
	api.POST("/checkout-requests", h.RequestCheckout)
	api.POST("/checkout-requests/:id/approve", h.ApproveRequest)
	api.POST("/checkout-requests/:id/window", h.SelectWindow)
	api.POST("/checkout-requests/:id/complete", h.CompleteRequest)
	api.POST("/checkout-requests/:id/cancel", h.CancelRequest)

	api.GET("/transactions", h.ListTransactions)
	api.POST("/checkouts", h.Checkout)
	api.POST("/checkouts/:id/checkin", h.Checkin)

	api.GET("/settings", h.GetSettings)
	api.PUT("/settings", h.UpdateSettings)

	api.GET("/notifications", h.ListNotifications)
	api.POST("/notifications/:id/read", h.MarkNotificationRead)
	api.POST("/notifications/read-all", h.MarkAllNotificationsRead)

	api.GET("/my/dashboard", h.GetDashboard)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}
