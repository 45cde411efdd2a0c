package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "tanzine/internal/errors"
	"tanzine/internal/ledger"
	"tanzine/internal/models"
	"tanzine/internal/pagination"
)

// TransactionHandler handles transaction-related requests.
type TransactionHandler struct {
	ledger *ledger.Ledger
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(l *ledger.Ledger) *TransactionHandler {
	return &TransactionHandler{ledger: l}
}

// InstallmentsRequest mirrors models.Installments for request binding.
type InstallmentsRequest struct {
	Current int `json:"current" binding:"required,min=1"`
	Total   int `json:"total" binding:"required,min=1"`
}

// CreateTransactionRequest represents the request payload for recording a
// transaction. Amount is a positive magnitude in cents; the direction comes
// from Type. Omitting account_id targets the primary account.
type CreateTransactionRequest struct {
	AccountID    string               `json:"account_id"`
	ToAccountID  string               `json:"to_account_id"`
	Amount       int64                `json:"amount" binding:"required"`
	Type         string               `json:"type" binding:"required,transaction_type"`
	CategoryID   string               `json:"category_id"`
	Description  string               `json:"description" binding:"max=500"`
	Date         *time.Time           `json:"date"`
	Tags         []string             `json:"tags"`
	IsRecurring  bool                 `json:"is_recurring"`
	Installments *InstallmentsRequest `json:"installments"`
}

// CreateTransaction records a transaction and applies its balance effect.
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	accountID := req.AccountID
	if accountID == "" {
		primary, err := h.ledger.PrimaryAccount()
		if err != nil {
			respondWithError(c, err)
			return
		}
		accountID = primary.ID
	}

	spec := ledger.TransactionSpec{
		AccountID:   accountID,
		ToAccountID: req.ToAccountID,
		Amount:      req.Amount,
		Type:        models.TransactionType(req.Type),
		CategoryID:  req.CategoryID,
		Description: req.Description,
		Tags:        req.Tags,
		IsRecurring: req.IsRecurring,
	}
	if req.Date != nil {
		spec.Date = *req.Date
	}
	if req.Installments != nil {
		spec.Installments = &models.Installments{
			Current: req.Installments.Current,
			Total:   req.Installments.Total,
		}
	}

	tx, err := h.ledger.AddTransaction(spec)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, tx)
}

// ListTransactions returns a page of transactions, newest first.
func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	c.JSON(http.StatusOK, pagination.Paginate(h.ledger.Transactions(), page))
}

// GetTransaction returns a single transaction by id.
func (h *TransactionHandler) GetTransaction(c *gin.Context) {
	tx, err := h.ledger.TransactionByID(c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, tx)
}

// DeleteTransaction removes a transaction and reverses its balance effect.
func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	if err := h.ledger.DeleteTransaction(c.Param("id")); err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
