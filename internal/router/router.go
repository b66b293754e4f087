package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	"bistro/internal/auth"
	"bistro/internal/handler"
	"bistro/internal/logging"
)

// Handlers groups every HTTP handler the router mounts.
type Handlers struct {
	Auth    *handler.AuthHandler
	User    *handler.UserHandler
	Menu    *handler.MenuHandler
	Cart    *handler.CartHandler
	Payment *handler.PaymentHandler
	Stats   *handler.StatsHandler
	Review  *handler.ReviewHandler
	Health  *handler.HealthHandler
}

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	log *zap.Logger,
	jwtService *auth.JWTService,
	admins auth.AdminChecker,
	h Handlers,
) {
	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: func() string { return uuid.NewString() },
	}))
	e.Use(logging.RequestLogger(log))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	e.Validator = &CustomValidator{validator: validator.New()}

	verify := auth.Middleware(jwtService)
	admin := auth.RequireAdmin(admins)

	e.GET("/", h.Health.Root)
	e.GET("/healthz", h.Health.Healthz)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Token
	e.POST("/jwt", h.Auth.IssueToken)

	// Users
	e.POST("/users", h.User.CreateUser)
	e.GET("/users", h.User.ListUsers, verify, admin)
	e.GET("/users/admin/:email", h.User.CheckAdmin, verify)
	e.PATCH("/users/admin/:id", h.User.PromoteUser, verify, admin)
	e.DELETE("/users/:id", h.User.DeleteUser, verify, admin)

	// Menu and reviews
	e.GET("/menu", h.Menu.ListMenu)
	e.GET("/menu/:id", h.Menu.GetMenuItem)
	e.POST("/menu", h.Menu.CreateMenuItem, verify, admin)
	e.GET("/reviews", h.Review.ListReviews)

	// Carts
	e.POST("/carts", h.Cart.AddToCart)
	e.GET("/carts", h.Cart.ListCart)
	e.DELETE("/carts/:id", h.Cart.RemoveFromCart)

	// Payments
	e.POST("/create-payment-intent", h.Payment.CreatePaymentIntent)
	e.POST("/payments", h.Payment.RecordPayment)
	e.GET("/payments/:email", h.Payment.ListPayments, verify)

	// Stats
	e.GET("/admin-stats", h.Stats.AdminStats, verify, admin)
	e.GET("/order-stats", h.Stats.OrderStats)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
