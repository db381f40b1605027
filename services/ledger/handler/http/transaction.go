package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/sessionbook/ledger/internal/pkg/middleware"
	"github.com/sessionbook/ledger/internal/pkg/models"
	"github.com/sessionbook/ledger/internal/pkg/session"
	"github.com/sessionbook/ledger/internal/utils"
	"github.com/sessionbook/ledger/services/ledger"
)

// TransactionHandler handles HTTP requests for ledger operations
type TransactionHandler struct {
	ledgerUC     ledger.LedgerUC
	cookieName   string
	cookieMaxAge int
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(ledgerUC ledger.LedgerUC, sessionCfg models.SessionConfig) *TransactionHandler {
	return &TransactionHandler{
		ledgerUC:     ledgerUC,
		cookieName:   sessionCfg.CookieName,
		cookieMaxAge: sessionCfg.MaxAge,
	}
}

// CreateTransaction handles POST /transactions. A request without a session
// cookie gets a fresh session attached to the response; this is the only
// place a session is ever issued.
func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	var req models.CreateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := validateCreateRequest(&req); err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	sessionID, _ := session.FromRequest(c.Request(), h.cookieName)

	result, err := h.ledgerUC.CreateTransaction(c.Request().Context(), &req, sessionID)
	if err != nil {
		return utils.InternalServerErrorResponse(c, "Failed to create transaction")
	}

	if result.NewSession {
		c.SetCookie(session.NewCookie(h.cookieName, result.SessionID, h.cookieMaxAge))
	}

	return c.JSON(http.StatusCreated, result.Transaction)
}

// ListTransactions handles GET /transactions
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	sessionID := middleware.SessionFromContext(c)

	transactions, err := h.ledgerUC.ListTransactions(c.Request().Context(), sessionID)
	if err != nil {
		return utils.InternalServerErrorResponse(c, "Failed to list transactions")
	}

	return c.JSON(http.StatusOK, models.TransactionListResponse{Transactions: transactions})
}

// ListAllTransactions handles GET /transactions/master, the operator-gated
// listing across every session
func (h *TransactionHandler) ListAllTransactions(c echo.Context) error {
	transactions, err := h.ledgerUC.ListAllTransactions(c.Request().Context())
	if err != nil {
		return utils.InternalServerErrorResponse(c, "Failed to list transactions")
	}

	return c.JSON(http.StatusOK, models.TransactionListResponse{Transactions: transactions})
}

// GetTransaction handles GET /transactions/:id. Malformed ids are rejected
// before any store access; a miss and a cross-session hit both return 404.
func (h *TransactionHandler) GetTransaction(c echo.Context) error {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		return utils.BadRequestResponse(c, "id must be a valid UUID")
	}

	sessionID := middleware.SessionFromContext(c)

	transaction, err := h.ledgerUC.GetTransaction(c.Request().Context(), id, sessionID)
	if err != nil {
		if errors.Is(err, ledger.ErrTransactionNotFound) {
			return utils.NotFoundResponse(c, "Transaction not found")
		}
		return utils.InternalServerErrorResponse(c, "Failed to get transaction")
	}

	return c.JSON(http.StatusOK, transaction)
}

// GetSummary handles GET /transactions/summary
func (h *TransactionHandler) GetSummary(c echo.Context) error {
	sessionID := middleware.SessionFromContext(c)

	total, err := h.ledgerUC.GetSummary(c.Request().Context(), sessionID)
	if err != nil {
		return utils.InternalServerErrorResponse(c, "Failed to get summary")
	}

	return c.JSON(http.StatusOK, models.SummaryResponse{Total: total})
}

// validateCreateRequest checks the create body before any store access.
// The amount is a positive magnitude; the sign comes from the type field.
func validateCreateRequest(req *models.CreateTransactionRequest) error {
	if strings.TrimSpace(req.Title) == "" {
		return errors.New("title is required")
	}
	if req.Amount == nil {
		return errors.New("amount is required")
	}
	if *req.Amount <= 0 {
		return errors.New("amount must be a positive number")
	}
	if req.Type != models.TransactionTypeCredit && req.Type != models.TransactionTypeDebit {
		return errors.New("type must be either credit or debit")
	}
	return nil
}
