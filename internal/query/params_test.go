package query

import "testing"

func TestFilterChangesResetPage(t *testing.T) {
	base := New().WithPage(7)

	tests := []struct {
		name   string
		change func(Params) Params
	}{
		{"search", func(p Params) Params { return p.WithSearch("rent") }},
		{"type", func(p Params) Params { return p.WithType("income") }},
		{"category", func(p Params) Params { return p.WithCategory("Food") }},
		{"time range", func(p Params) Params { return p.WithRange(RangeWeek) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.change(base).Page; got != 1 {
				t.Errorf("page after %s change = %d, want 1", tt.name, got)
			}
		})
	}

	// A page navigation is the one change that keeps its page.
	if got := base.WithPage(3).Page; got != 3 {
		t.Errorf("page after navigation = %d, want 3", got)
	}
	if got := base.WithPage(0).Page; got != 1 {
		t.Errorf("page clamps at 1, got %d", got)
	}
}

func TestParamsAreValues(t *testing.T) {
	base := New()
	_ = base.WithSearch("coffee").WithType("expense")
	if base.Search != "" || base.Type != All || base.Page != 1 {
		t.Error("With* must not mutate the receiver")
	}
}

func TestValuesOmitsSentinels(t *testing.T) {
	v := New().Values()
	if v.Get("page") != "1" || v.Get("limit") != "10" {
		t.Errorf("default list query = %s, want page=1&limit=10", v.Encode())
	}
	for _, key := range []string{"search", "type", "category", "timeRange"} {
		if v.Has(key) {
			t.Errorf("unconstrained query must omit %q, got %s", key, v.Encode())
		}
	}

	v = New().WithSearch("rent").WithType("expense").WithCategory("Bills").Values()
	if v.Get("search") != "rent" || v.Get("type") != "expense" || v.Get("category") != "Bills" {
		t.Errorf("constrained query = %s", v.Encode())
	}

	// The "all" sentinel means no constraint and must never be sent
	// literally.
	v = New().WithType(All).WithCategory(All).Values()
	if v.Has("type") || v.Has("category") {
		t.Errorf("'all' sentinel leaked into query: %s", v.Encode())
	}
}

func TestWindowIsUnpaginated(t *testing.T) {
	v := Window(RangeYear).Values()
	if v.Has("page") || v.Has("limit") {
		t.Errorf("window query must not paginate, got %s", v.Encode())
	}
	if v.Get("timeRange") != RangeYear {
		t.Errorf("timeRange = %q, want %q", v.Get("timeRange"), RangeYear)
	}
}
