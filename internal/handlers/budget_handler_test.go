package handlers

import (
	"net/http"
	"testing"

	"tanzine/internal/testutil"
)

func TestBudgetHandler_CreateBudget(t *testing.T) {
	t.Run("returns 201 with spent initialized to zero", func(t *testing.T) {
		r, _ := setupRouter(t)

		rec := doRequest(r, "POST", "/budgets",
			`{"category_id":"cat_food","limit":50000,"month":"2026-08"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["category_id"] != "cat_food" || result["month"] != "2026-08" {
			t.Errorf("unexpected budget: %v", result)
		}
		if result["spent"].(float64) != 0 {
			t.Errorf("expected spent 0, got %v", result["spent"])
		}
	})

	t.Run("returns 404 for unknown category", func(t *testing.T) {
		r, _ := setupRouter(t)

		rec := doRequest(r, "POST", "/budgets",
			`{"category_id":"cat_bogus","limit":50000,"month":"2026-08"}`)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "CATEGORY_NOT_FOUND")
	})

	t.Run("returns 400 on malformed month", func(t *testing.T) {
		r, _ := setupRouter(t)

		for _, month := range []string{"2026-13", "2026", "08-2026", "2026-8"} {
			rec := doRequest(r, "POST", "/budgets",
				`{"category_id":"cat_food","limit":50000,"month":"`+month+`"}`)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("month %q: expected 400, got %d", month, rec.Code)
			}
		}
	})

	t.Run("returns 400 on non-positive limit", func(t *testing.T) {
		r, _ := setupRouter(t)

		rec := doRequest(r, "POST", "/budgets",
			`{"category_id":"cat_food","limit":0,"month":"2026-08"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestBudgetHandler_ListBudgets(t *testing.T) {
	t.Run("returns budgets in creation order", func(t *testing.T) {
		r, l := setupRouter(t)
		testutil.CreateTestBudget(t, l)
		testutil.CreateTestBudget(t, l)

		rec := doRequest(r, "GET", "/budgets", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if data := parseJSON(t, rec)["data"].([]interface{}); len(data) != 2 {
			t.Errorf("expected 2 budgets, got %d", len(data))
		}
	})
}
