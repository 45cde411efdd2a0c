package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "tanzine/internal/errors"
	"tanzine/internal/ledger"
	"tanzine/internal/models"
)

// AccountHandler handles account-related requests.
type AccountHandler struct {
	ledger *ledger.Ledger
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(l *ledger.Ledger) *AccountHandler {
	return &AccountHandler{ledger: l}
}

// CreateAccountRequest represents the request payload for creating an account.
type CreateAccountRequest struct {
	Name     string `json:"name" binding:"required,min=1,max=100"`
	Type     string `json:"type" binding:"required,account_type"`
	Balance  int64  `json:"balance"`
	Currency string `json:"currency" binding:"omitempty,iso4217"`
	Color    string `json:"color" binding:"omitempty,hex_color"`

	// Credit card fields
	CreditLimit int64 `json:"credit_limit" binding:"gte=0"`
	ClosingDay  int   `json:"closing_day" binding:"gte=0,lte=31"`
	DueDay      int   `json:"due_day" binding:"gte=0,lte=31"`
}

// CreateAccount creates a new account. The initial balance is taken as given;
// no opening transaction is recorded for it.
func (h *AccountHandler) CreateAccount(c *gin.Context) {
	var req CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	account, err := h.ledger.AddAccount(ledger.AccountSpec{
		Name:        req.Name,
		Type:        models.AccountType(req.Type),
		Balance:     req.Balance,
		Currency:    req.Currency,
		Color:       req.Color,
		CreditLimit: req.CreditLimit,
		ClosingDay:  req.ClosingDay,
		DueDay:      req.DueDay,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, account)
}

// ListAccounts returns all accounts in insertion order, so the first element
// is the primary account.
func (h *AccountHandler) ListAccounts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": h.ledger.Accounts()})
}

// GetAccount returns a single account by id.
func (h *AccountHandler) GetAccount(c *gin.Context) {
	account, err := h.ledger.AccountByID(c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, account)
}
