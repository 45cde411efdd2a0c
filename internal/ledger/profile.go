package ledger

import (
	"strings"

	apperrors "tanzine/internal/errors"
	"tanzine/internal/models"
)

// Onboard sets the user profile to {name, currency, onboarded}. It always
// overwrites, so re-running onboarding is harmless.
func (l *Ledger) Onboard(name, currency string) (models.UserProfile, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.UserProfile{}, apperrors.WithMessage(apperrors.ErrInvalidInput, "name is required")
	}
	if currency == "" {
		return models.UserProfile{}, apperrors.WithMessage(apperrors.ErrInvalidInput, "currency is required")
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	next := l.state.Clone()
	next.User = models.UserProfile{
		IsOnboarded: true,
		Name:        name,
		Currency:    currency,
	}
	if err := l.commit(next); err != nil {
		return models.UserProfile{}, err
	}
	return l.state.User, nil
}

// Profile returns the current user profile.
func (l *Ledger) Profile() models.UserProfile {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state.User
}
