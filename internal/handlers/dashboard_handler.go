package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "tanzine/internal/errors"
	"tanzine/internal/insight"
	"tanzine/internal/ledger"
	"tanzine/internal/models"
)

// recentCount is how many transactions the dashboard shows.
const recentCount = 5

// DashboardHandler assembles the home screen data: total balance, recent
// activity, goals, and the AI advice line.
type DashboardHandler struct {
	ledger  *ledger.Ledger
	insight *insight.Service
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(l *ledger.Ledger, s *insight.Service) *DashboardHandler {
	return &DashboardHandler{ledger: l, insight: s}
}

// DashboardResponse represents the dashboard payload.
type DashboardResponse struct {
	Name               string               `json:"name"`
	Currency           string               `json:"currency"`
	TotalBalance       int64                `json:"total_balance"`
	RecentTransactions []models.Transaction `json:"recent_transactions"`
	Goals              []models.Goal        `json:"goals"`
	Insight            string               `json:"insight"`
}

// GetDashboard returns the dashboard. Requires a completed onboarding. The
// insight line is served from cache; reading the dashboard after the
// transaction count changed triggers a background refresh.
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	profile := h.ledger.Profile()
	if !profile.IsOnboarded {
		respondWithError(c, apperrors.ErrNotOnboarded)
		return
	}

	total := h.ledger.TotalBalance()
	recent := h.ledger.RecentTransactions(recentCount)

	c.JSON(http.StatusOK, DashboardResponse{
		Name:               profile.Name,
		Currency:           profile.Currency,
		TotalBalance:       total,
		RecentTransactions: recent,
		Goals:              h.ledger.Goals(),
		Insight:            h.insight.Advice(h.ledger.Transactions(), total),
	})
}
