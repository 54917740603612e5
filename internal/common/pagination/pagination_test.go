package pagination

import (
	"net/http/httptest"
	"testing"
)

func TestParseQueryParams(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name      string
		query     string
		wantPage  int
		wantLimit int
		wantErr   bool
	}{
		{name: "defaults when absent", query: "", wantPage: 1, wantLimit: 20},
		{name: "explicit values", query: "page=3&limit=50", wantPage: 3, wantLimit: 50},
		{name: "page zero", query: "page=0", wantErr: true},
		{name: "negative page", query: "page=-1", wantErr: true},
		{name: "non numeric page", query: "page=abc", wantErr: true},
		{name: "limit above max", query: "limit=101", wantErr: true},
		{name: "limit at max", query: "limit=100", wantPage: 1, wantLimit: 100},
		{name: "limit zero", query: "limit=0", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/posts?"+tt.query, nil)
			params, err := ParseQueryParams(r, cfg)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for query %q", tt.query)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if params.Page != tt.wantPage || params.Limit != tt.wantLimit {
				t.Errorf("got page=%d limit=%d, want page=%d limit=%d",
					params.Page, params.Limit, tt.wantPage, tt.wantLimit)
			}
		})
	}
}

func TestOffset(t *testing.T) {
	tests := []struct {
		page, limit, want int
	}{
		{1, 20, 0},
		{2, 20, 20},
		{3, 10, 20},
		{5, 25, 100},
	}
	for _, tt := range tests {
		got := Params{Page: tt.page, Limit: tt.limit}.Offset()
		if got != tt.want {
			t.Errorf("Offset(page=%d, limit=%d) = %d, want %d", tt.page, tt.limit, got, tt.want)
		}
	}
}

func TestNewMetadata(t *testing.T) {
	tests := []struct {
		name  string
		total int64
		limit int
		want  int
	}{
		{name: "empty still one page", total: 0, limit: 20, want: 1},
		{name: "under one page", total: 10, limit: 20, want: 1},
		{name: "exact boundary", total: 20, limit: 20, want: 1},
		{name: "one over boundary", total: 21, limit: 20, want: 2},
		{name: "many pages", total: 100, limit: 20, want: 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			md := NewMetadata(Params{Page: 1, Limit: tt.limit}, tt.total)
			if md.TotalPages != tt.want {
				t.Errorf("TotalPages = %d, want %d", md.TotalPages, tt.want)
			}
			if md.Total != tt.total {
				t.Errorf("Total = %d, want %d", md.Total, tt.total)
			}
		})
	}
}
