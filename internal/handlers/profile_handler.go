package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "tanzine/internal/errors"
	"tanzine/internal/ledger"
)

// ProfileHandler handles onboarding, profile reads, and the full store reset.
type ProfileHandler struct {
	ledger *ledger.Ledger
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(l *ledger.Ledger) *ProfileHandler {
	return &ProfileHandler{ledger: l}
}

// OnboardRequest represents the request payload for onboarding.
type OnboardRequest struct {
	Name     string `json:"name" binding:"required,min=1,max=100"`
	Currency string `json:"currency" binding:"required,iso4217"`
}

// Onboard completes onboarding: it overwrites the profile with the given name
// and currency and marks the user as onboarded.
func (h *ProfileHandler) Onboard(c *gin.Context) {
	var req OnboardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	profile, err := h.ledger.Onboard(req.Name, req.Currency)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// GetProfile returns the current user profile.
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	c.JSON(http.StatusOK, h.ledger.Profile())
}

// Reset wipes the entire store and clears the persisted blob. The UI asks the
// user to confirm before calling this.
func (h *ProfileHandler) Reset(c *gin.Context) {
	if err := h.ledger.Reset(); err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "reset"})
}
