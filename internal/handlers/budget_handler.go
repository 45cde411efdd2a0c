package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "tanzine/internal/errors"
	"tanzine/internal/ledger"
)

// BudgetHandler handles budget-related requests.
type BudgetHandler struct {
	ledger *ledger.Ledger
}

// NewBudgetHandler creates a new BudgetHandler.
func NewBudgetHandler(l *ledger.Ledger) *BudgetHandler {
	return &BudgetHandler{ledger: l}
}

// CreateBudgetRequest represents the request payload for creating a budget.
type CreateBudgetRequest struct {
	CategoryID string `json:"category_id" binding:"required"`
	Limit      int64  `json:"limit" binding:"required,gt=0"`
	Month      string `json:"month" binding:"required,budget_month"`
}

// CreateBudget creates a new monthly budget with spent initialized to zero.
func (h *BudgetHandler) CreateBudget(c *gin.Context) {
	var req CreateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	budget, err := h.ledger.AddBudget(ledger.BudgetSpec{
		CategoryID: req.CategoryID,
		Limit:      req.Limit,
		Month:      req.Month,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, budget)
}

// ListBudgets returns all budgets in insertion order.
func (h *BudgetHandler) ListBudgets(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": h.ledger.Budgets()})
}
