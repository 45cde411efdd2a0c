package handlers

import (
	"net/http"
	"testing"

	"tanzine/internal/testutil"
)

func TestProfileHandler_Onboard(t *testing.T) {
	t.Run("returns 200 and onboarded profile", func(t *testing.T) {
		r, _ := setupRouter(t)

		rec := doRequest(r, "POST", "/onboard", `{"name":"Alex","currency":"BRL"}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["name"] != "Alex" || result["currency"] != "BRL" || result["is_onboarded"] != true {
			t.Errorf("unexpected profile: %v", result)
		}
	})

	t.Run("returns 400 on missing name", func(t *testing.T) {
		r, _ := setupRouter(t)

		rec := doRequest(r, "POST", "/onboard", `{"currency":"BRL"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("returns 400 on invalid currency", func(t *testing.T) {
		r, _ := setupRouter(t)

		rec := doRequest(r, "POST", "/onboard", `{"name":"Alex","currency":"REAIS"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestProfileHandler_Reset(t *testing.T) {
	t.Run("wipes the whole store", func(t *testing.T) {
		r, l := setupRouter(t)
		testutil.OnboardTestUser(t, l)
		account := testutil.CreateTestAccountWithBalance(t, l, 5000)
		testutil.CreateTestTransaction(t, l, account.ID, "expense", 100)

		rec := doRequest(r, "POST", "/reset", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if l.Profile().IsOnboarded {
			t.Error("expected profile reset to not-onboarded")
		}
		if len(l.Accounts()) != 0 || len(l.Transactions()) != 0 {
			t.Error("expected empty collections after reset")
		}
	})
}
