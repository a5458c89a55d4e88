package router

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
	echoSwagger "github.com/swaggo/echo-swagger"
	"golang.org/x/time/rate"

	"invoicedash/internal/auth"
	"invoicedash/internal/config"
	"invoicedash/internal/errors"
	"invoicedash/internal/handler"
	"invoicedash/internal/logging"
	"invoicedash/internal/metrics"
	"invoicedash/internal/service"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	logger logrus.FieldLogger,
	jwtService *auth.JWTService,
	authService service.AuthService,
	authHandler *handler.AuthHandler,
	dashboardHandler *handler.DashboardHandler,
	invoiceHandler *handler.InvoiceHandler,
) {
	e.Use(middleware.RequestID())
	e.Use(logging.Middleware(logger))
	e.Use(middleware.Recover())
	e.Use(metrics.Middleware())

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	session := SessionMiddleware(cfg.SessionCookie, jwtService, authService)
	gate := GateMiddleware(auth.NewGate())

	// Page routes: the session is resolved first, then the gate decides.
	e.GET("/login", authHandler.LoginForm, session, gate)
	e.POST("/login", authHandler.Login, LoginRateLimiter(cfg.LoginRate, cfg.LoginBurst), session, gate)

	dashboard := e.Group("/dashboard", session, gate)
	dashboard.GET("", dashboardHandler.Overview)
	dashboard.POST("/logout", authHandler.Logout)
	dashboard.GET("/customers", dashboardHandler.Customers)
	dashboard.GET("/invoices", invoiceHandler.List)
	dashboard.POST("/invoices", invoiceHandler.Create)
	dashboard.GET("/invoices/create", invoiceHandler.CreateForm)
	dashboard.GET("/invoices/:id/edit", invoiceHandler.Edit)
	dashboard.POST("/invoices/:id", invoiceHandler.Update)
	dashboard.POST("/invoices/:id/delete", invoiceHandler.Delete)
}

// SessionMiddleware reads the session token from the cookie (or a bearer
// header) and, when it names a live session, puts the session in the request
// context. A missing or bad token leaves the request anonymous.
func SessionMiddleware(cookieName string, jwtService *auth.JWTService, authService service.AuthService) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey:  jwtService.Secret(),
		TokenLookup: "cookie:" + cookieName + ",header:" + echo.HeaderAuthorization + ":Bearer ",
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(auth.Claims)
		},
		SuccessHandler: func(c echo.Context) {
			token, ok := c.Get("user").(*jwt.Token)
			if !ok {
				return
			}
			claims, ok := token.Claims.(*auth.Claims)
			if !ok {
				return
			}
			ctx := c.Request().Context()
			if session, ok := authService.ResolveSession(ctx, claims); ok {
				c.SetRequest(c.Request().WithContext(auth.WithSession(ctx, session)))
			}
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return nil
		},
		ContinueOnIgnoredError: true,
	})
}

// GateMiddleware redirects requests the gate does not allow.
func GateMiddleware(gate auth.Gate) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			_, authenticated := auth.SessionFromContext(c.Request().Context())
			decision := gate.Authorize(c.Request().URL.Path, authenticated)
			if !decision.Allowed() {
				return c.Redirect(http.StatusSeeOther, decision.RedirectTo)
			}
			return next(c)
		}
	}
}

// LoginRateLimiter throttles sign-in attempts per client IP.
func LoginRateLimiter(perSecond float64, burst int) echo.MiddlewareFunc {
	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
			Rate:      rate.Limit(perSecond),
			Burst:     burst,
			ExpiresIn: 3 * time.Minute,
		}),
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return echo.NewHTTPError(http.StatusTooManyRequests, errors.ErrorResponse{
				Error: "too many sign-in attempts",
				Code:  "RATE_LIMITED",
			})
		},
	})
}
