package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "tanzine/internal/errors"
	"tanzine/internal/ledger"
	"tanzine/internal/models"
)

// GoalHandler handles savings-goal requests.
type GoalHandler struct {
	ledger *ledger.Ledger
}

// NewGoalHandler creates a new GoalHandler.
func NewGoalHandler(l *ledger.Ledger) *GoalHandler {
	return &GoalHandler{ledger: l}
}

// CreateGoalRequest represents the request payload for creating a goal.
type CreateGoalRequest struct {
	Name         string    `json:"name" binding:"required,min=1,max=100"`
	TargetAmount int64     `json:"target_amount" binding:"required,gt=0"`
	Deadline     time.Time `json:"deadline" binding:"required"`
	Color        string    `json:"color" binding:"omitempty,hex_color"`
}

// GoalResponse augments a goal with its progress ratio.
type GoalResponse struct {
	models.Goal
	Progress float64 `json:"progress"`
}

// CreateGoal creates a new goal with current_amount initialized to zero.
func (h *GoalHandler) CreateGoal(c *gin.Context) {
	var req CreateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	goal, err := h.ledger.AddGoal(ledger.GoalSpec{
		Name:         req.Name,
		TargetAmount: req.TargetAmount,
		Deadline:     req.Deadline,
		Color:        req.Color,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, GoalResponse{Goal: goal, Progress: goal.Progress()})
}

// ListGoals returns all goals with their progress ratios.
func (h *GoalHandler) ListGoals(c *gin.Context) {
	goals := h.ledger.Goals()
	out := make([]GoalResponse, len(goals))
	for i, g := range goals {
		out[i] = GoalResponse{Goal: g, Progress: g.Progress()}
	}
	c.JSON(http.StatusOK, gin.H{"data": out})
}
