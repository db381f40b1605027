package handler

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/sessionbook/ledger/internal/pkg/database"
	"github.com/sessionbook/ledger/internal/pkg/middleware"
	"github.com/sessionbook/ledger/internal/pkg/models"
	httpHandler "github.com/sessionbook/ledger/services/ledger/handler/http"
)

// Handler wires the ledger HTTP handlers to their routes and gates
type Handler struct {
	transactionHandler *httpHandler.TransactionHandler
	cfg                *models.Config
	redisClient        *database.RedisClient
}

// NewHandler creates a new handler instance
func NewHandler(transactionHandler *httpHandler.TransactionHandler, cfg *models.Config, redisClient *database.RedisClient) *Handler {
	return &Handler{
		transactionHandler: transactionHandler,
		cfg:                cfg,
		redisClient:        redisClient,
	}
}

// RegisterRoutes registers the ledger routes. Static segments (master,
// summary) are registered alongside :id; echo resolves them first.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/transactions")

	requireSession := middleware.RequireSession(h.cfg.Session.CookieName)
	requireOperator := middleware.RequireOperatorKey(h.cfg.Operator.APIKey)

	g.POST("", h.transactionHandler.CreateTransaction, h.createMiddlewares()...)
	g.GET("", h.transactionHandler.ListTransactions, requireSession)
	g.GET("/master", h.transactionHandler.ListAllTransactions, requireOperator)
	g.GET("/summary", h.transactionHandler.GetSummary, requireSession)
	g.GET("/:id", h.transactionHandler.GetTransaction, requireSession)
}

// createMiddlewares returns the middleware chain for the create route.
// Rate limiting only applies when Redis is configured.
func (h *Handler) createMiddlewares() []echo.MiddlewareFunc {
	if h.redisClient == nil {
		return nil
	}

	return []echo.MiddlewareFunc{
		middleware.RateLimiterMiddleware(middleware.RateLimiterConfig{
			RedisClient: h.redisClient.GetClient(),
			Key:         "ratelimit",
			Limit:       h.cfg.RateLimit.Limit,
			Period:      time.Duration(h.cfg.RateLimit.Period) * time.Second,
		}),
	}
}
