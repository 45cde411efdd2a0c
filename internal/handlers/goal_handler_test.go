package handlers

import (
	"net/http"
	"testing"

	"tanzine/internal/testutil"
)

func TestGoalHandler_CreateGoal(t *testing.T) {
	t.Run("returns 201 with zero progress", func(t *testing.T) {
		r, _ := setupRouter(t)

		rec := doRequest(r, "POST", "/goals",
			`{"name":"Trip to Japan","target_amount":1500000,"deadline":"2027-06-01T00:00:00Z","color":"#FF9800"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["name"] != "Trip to Japan" {
			t.Errorf("unexpected goal: %v", result)
		}
		if result["current_amount"].(float64) != 0 {
			t.Errorf("expected current_amount 0, got %v", result["current_amount"])
		}
		if result["progress"].(float64) != 0 {
			t.Errorf("expected progress 0, got %v", result["progress"])
		}
	})

	t.Run("returns 400 on missing deadline", func(t *testing.T) {
		r, _ := setupRouter(t)

		rec := doRequest(r, "POST", "/goals", `{"name":"X","target_amount":1000}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("returns 400 on non-positive target", func(t *testing.T) {
		r, _ := setupRouter(t)

		rec := doRequest(r, "POST", "/goals",
			`{"name":"X","target_amount":-5,"deadline":"2027-06-01T00:00:00Z"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestGoalHandler_ListGoals(t *testing.T) {
	t.Run("returns goals with progress", func(t *testing.T) {
		r, l := setupRouter(t)
		testutil.CreateTestGoal(t, l)

		rec := doRequest(r, "GET", "/goals", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		data := parseJSON(t, rec)["data"].([]interface{})
		if len(data) != 1 {
			t.Fatalf("expected 1 goal, got %d", len(data))
		}
		goal := data[0].(map[string]interface{})
		if _, ok := goal["progress"]; !ok {
			t.Error("expected progress field on listed goals")
		}
	})
}
