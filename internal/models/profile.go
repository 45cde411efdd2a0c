package models

// UserProfile represents the single local user of the app. IsOnboarded flips
// to true exactly once via onboarding and only a full store reset clears it.
type UserProfile struct {
	IsOnboarded bool   `json:"is_onboarded"`
	Name        string `json:"name"`
	Currency    string `json:"currency"`
}
