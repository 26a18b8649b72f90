package paging

import (
	"net/http/httptest"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name      string
		target    string
		wantPage  int
		wantLimit int
	}{
		{"defaults", "/api/x", 1, DefaultLimit},
		{"explicit", "/api/x?page=3&limit=25", 3, 25},
		{"zero page falls back", "/api/x?page=0", 1, DefaultLimit},
		{"negative page falls back", "/api/x?page=-2", 1, DefaultLimit},
		{"garbage falls back", "/api/x?page=abc&limit=xyz", 1, DefaultLimit},
		{"limit capped", "/api/x?limit=5000", 1, MaxLimit},
		{"limit of one", "/api/x?limit=1", 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", tt.target, nil)
			got := Parse(r)
			if got.Page != tt.wantPage {
				t.Errorf("Parse() Page = %d, want %d", got.Page, tt.wantPage)
			}
			if got.Limit != tt.wantLimit {
				t.Errorf("Parse() Limit = %d, want %d", got.Limit, tt.wantLimit)
			}
		})
	}
}

func TestSkip(t *testing.T) {
	tests := []struct {
		page  int
		limit int
		want  int64
	}{
		{1, 10, 0},
		{2, 10, 10},
		{5, 25, 100},
	}

	for _, tt := range tests {
		got := Params{Page: tt.page, Limit: tt.limit}.Skip()
		if got != tt.want {
			t.Errorf("Params{%d,%d}.Skip() = %d, want %d", tt.page, tt.limit, got, tt.want)
		}
	}
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		name  string
		total int64
		limit int
		want  int
	}{
		{"zero total", 0, 10, 0},
		{"exact multiple", 20, 10, 2},
		{"partial last page", 21, 10, 3},
		{"single item", 1, 10, 1},
		{"zero limit", 5, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TotalPages(tt.total, tt.limit)
			if got != tt.want {
				t.Errorf("TotalPages(%d, %d) = %d, want %d", tt.total, tt.limit, got, tt.want)
			}
		})
	}
}
