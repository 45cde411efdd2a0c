package handlers

import (
	"net/http"
	"testing"

	"tanzine/internal/catalog"
)

func TestCategoryHandler_ListCategories(t *testing.T) {
	r, _ := setupRouter(t)

	rec := doRequest(r, "GET", "/categories", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	data := parseJSON(t, rec)["data"].([]interface{})
	if len(data) != len(catalog.All()) {
		t.Fatalf("expected %d categories, got %d", len(catalog.All()), len(data))
	}
	if data[0].(map[string]interface{})["id"] != "cat_food" {
		t.Error("expected cat_food first in display order")
	}
}

func TestCategoryHandler_GetCategory(t *testing.T) {
	t.Run("returns a known category", func(t *testing.T) {
		r, _ := setupRouter(t)

		rec := doRequest(r, "GET", "/categories/cat_trans", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if got := parseJSON(t, rec)["name"]; got != "Transport" {
			t.Errorf("expected Transport, got %v", got)
		}
	})

	t.Run("returns 404 for unknown id", func(t *testing.T) {
		r, _ := setupRouter(t)

		rec := doRequest(r, "GET", "/categories/cat_bogus", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "CATEGORY_NOT_FOUND")
	})
}
