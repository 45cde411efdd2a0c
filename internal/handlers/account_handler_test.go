package handlers

import (
	"net/http"
	"testing"

	"tanzine/internal/testutil"
)

func TestAccountHandler_CreateAccount(t *testing.T) {
	t.Run("returns 201 with the created account", func(t *testing.T) {
		r, _ := setupRouter(t)

		rec := doRequest(r, "POST", "/accounts",
			`{"name":"Nubank","type":"checking","balance":150000,"currency":"BRL","color":"#820AD1"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["name"] != "Nubank" || result["type"] != "checking" {
			t.Errorf("unexpected account: %v", result)
		}
		if result["balance"].(float64) != 150000 {
			t.Errorf("expected balance 150000, got %v", result["balance"])
		}
		if result["id"] == "" {
			t.Error("expected a generated id")
		}
	})

	t.Run("defaults currency to the profile currency", func(t *testing.T) {
		r, l := setupRouter(t)
		testutil.OnboardTestUser(t, l)

		rec := doRequest(r, "POST", "/accounts", `{"name":"Wallet","type":"cash"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		if got := parseJSON(t, rec)["currency"]; got != "BRL" {
			t.Errorf("expected currency BRL, got %v", got)
		}
	})

	t.Run("returns 400 on missing name", func(t *testing.T) {
		r, _ := setupRouter(t)

		rec := doRequest(r, "POST", "/accounts", `{"type":"checking"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("returns 400 on unknown account type", func(t *testing.T) {
		r, _ := setupRouter(t)

		rec := doRequest(r, "POST", "/accounts", `{"name":"X","type":"offshore"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 400 on bad color", func(t *testing.T) {
		r, _ := setupRouter(t)

		rec := doRequest(r, "POST", "/accounts", `{"name":"X","type":"checking","color":"purple"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestAccountHandler_ListAccounts(t *testing.T) {
	t.Run("returns accounts in creation order", func(t *testing.T) {
		r, l := setupRouter(t)
		first := testutil.CreateTestAccount(t, l)
		testutil.CreateTestAccount(t, l)

		rec := doRequest(r, "GET", "/accounts", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		data := parseJSON(t, rec)["data"].([]interface{})
		if len(data) != 2 {
			t.Fatalf("expected 2 accounts, got %d", len(data))
		}
		if data[0].(map[string]interface{})["id"] != first.ID {
			t.Error("expected the first created account first")
		}
	})

	t.Run("returns empty list without accounts", func(t *testing.T) {
		r, _ := setupRouter(t)

		rec := doRequest(r, "GET", "/accounts", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if data := parseJSON(t, rec)["data"].([]interface{}); len(data) != 0 {
			t.Errorf("expected empty list, got %v", data)
		}
	})
}

func TestAccountHandler_GetAccount(t *testing.T) {
	t.Run("returns the account", func(t *testing.T) {
		r, l := setupRouter(t)
		account := testutil.CreateTestAccountWithBalance(t, l, 4200)

		rec := doRequest(r, "GET", "/accounts/"+account.ID, "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		if result["id"] != account.ID || result["balance"].(float64) != 4200 {
			t.Errorf("unexpected account: %v", result)
		}
	})

	t.Run("returns 404 for unknown id", func(t *testing.T) {
		r, _ := setupRouter(t)

		rec := doRequest(r, "GET", "/accounts/no-such-id", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "ACCOUNT_NOT_FOUND")
	})
}
