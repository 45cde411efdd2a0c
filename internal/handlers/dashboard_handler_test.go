package handlers

import (
	"net/http"
	"testing"

	"tanzine/internal/insight"
	"tanzine/internal/models"
	"tanzine/internal/testutil"
)

func TestDashboardHandler_GetDashboard(t *testing.T) {
	t.Run("returns 409 before onboarding", func(t *testing.T) {
		r, _ := setupRouter(t)

		rec := doRequest(r, "GET", "/dashboard", "")

		if rec.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d: %s", rec.Code, rec.Body.String())
		}
		assertErrorCode(t, parseJSON(t, rec), "NOT_ONBOARDED")
	})

	t.Run("returns totals, recent activity and goals", func(t *testing.T) {
		r, l := setupRouter(t)
		profile := testutil.OnboardTestUser(t, l)
		account := testutil.CreateTestAccountWithBalance(t, l, 100000)
		for i := 0; i < 7; i++ {
			testutil.CreateTestTransaction(t, l, account.ID, models.TransactionTypeExpense, 1000)
		}
		testutil.CreateTestGoal(t, l)

		rec := doRequest(r, "GET", "/dashboard", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["name"] != profile.Name || result["currency"] != "BRL" {
			t.Errorf("unexpected profile fields: %v", result)
		}
		if result["total_balance"].(float64) != 93000 {
			t.Errorf("expected total balance 93000, got %v", result["total_balance"])
		}
		if recent := result["recent_transactions"].([]interface{}); len(recent) != 5 {
			t.Errorf("expected 5 recent transactions, got %d", len(recent))
		}
		if goals := result["goals"].([]interface{}); len(goals) != 1 {
			t.Errorf("expected 1 goal, got %d", len(goals))
		}
	})

	t.Run("serves the static insight line without a generator", func(t *testing.T) {
		r, l := setupRouter(t)
		testutil.OnboardTestUser(t, l)

		rec := doRequest(r, "GET", "/dashboard", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if got := parseJSON(t, rec)["insight"]; got != insight.Empty {
			t.Errorf("expected %q, got %v", insight.Empty, got)
		}
	})
}
