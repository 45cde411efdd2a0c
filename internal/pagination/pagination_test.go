package pagination

import "testing"

func TestPaginate(t *testing.T) {
	items := make([]int, 45)
	for i := range items {
		items[i] = i
	}

	t.Run("defaults", func(t *testing.T) {
		resp := Paginate(items, PageRequest{})
		if resp.Page != 1 || resp.PageSize != 20 {
			t.Errorf("expected defaults 1/20, got %d/%d", resp.Page, resp.PageSize)
		}
		if len(resp.Data) != 20 || resp.Data[0] != 0 {
			t.Errorf("unexpected first page: len=%d", len(resp.Data))
		}
		if resp.TotalItems != 45 || resp.TotalPages != 3 {
			t.Errorf("expected 45 items over 3 pages, got %d/%d", resp.TotalItems, resp.TotalPages)
		}
	})

	t.Run("middle page", func(t *testing.T) {
		resp := Paginate(items, PageRequest{Page: 2, PageSize: 10})
		if len(resp.Data) != 10 || resp.Data[0] != 10 {
			t.Errorf("unexpected second page: %v", resp.Data)
		}
	})

	t.Run("last partial page", func(t *testing.T) {
		resp := Paginate(items, PageRequest{Page: 3, PageSize: 20})
		if len(resp.Data) != 5 || resp.Data[0] != 40 {
			t.Errorf("unexpected last page: %v", resp.Data)
		}
	})

	t.Run("page past the end", func(t *testing.T) {
		resp := Paginate(items, PageRequest{Page: 99, PageSize: 20})
		if len(resp.Data) != 0 {
			t.Errorf("expected empty page, got %v", resp.Data)
		}
	})

	t.Run("empty input", func(t *testing.T) {
		resp := Paginate([]int{}, PageRequest{})
		if len(resp.Data) != 0 || resp.TotalItems != 0 || resp.TotalPages != 0 {
			t.Errorf("unexpected response for empty input: %+v", resp)
		}
	})
}
