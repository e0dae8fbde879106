// Ecosphere - Ecosystem Catalog and Discovery Engine
// Copyright 2026 Peter M. (pmarkee)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/pmarkee/ecosphere

package scoring

import "testing"

type scored struct {
	id    string
	score float64
}

func TestRankTopSortsDescending(t *testing.T) {
	in := []scored{{"a", 0.2}, {"b", 0.9}, {"c", 0.5}}

	out := rankTop(in, func(s scored) float64 { return s.score }, 10)

	want := []string{"b", "c", "a"}
	for i, w := range want {
		if out[i].id != w {
			t.Errorf("position %d = %s, want %s", i, out[i].id, w)
		}
	}
}

func TestRankTopStableOnTies(t *testing.T) {
	in := []scored{{"first", 0.5}, {"second", 0.5}, {"third", 0.5}}

	out := rankTop(in, func(s scored) float64 { return s.score }, 10)

	for i, w := range []string{"first", "second", "third"} {
		if out[i].id != w {
			t.Errorf("tie order broken at %d: got %s, want %s", i, out[i].id, w)
		}
	}
}

func TestRankTopTruncates(t *testing.T) {
	in := []scored{{"a", 0.1}, {"b", 0.2}, {"c", 0.3}}

	if got := len(rankTop(in, func(s scored) float64 { return s.score }, 2)); got != 2 {
		t.Errorf("len = %d, want 2", got)
	}
}

func TestRankTopZeroAndNegativeLimit(t *testing.T) {
	in := []scored{{"a", 0.1}}

	if got := rankTop(in, func(s scored) float64 { return s.score }, 0); len(got) != 0 {
		t.Errorf("limit 0: len = %d, want 0", len(got))
	}
	if got := rankTop(in, func(s scored) float64 { return s.score }, -5); len(got) != 0 {
		t.Errorf("negative limit: len = %d, want 0", len(got))
	}
}

func TestClampLimit(t *testing.T) {
	tests := []struct {
		requested, def, max, want int
	}{
		{-1, 5, 100, 5},   // absent, use default
		{0, 5, 100, 0},    // explicit zero honored
		{7, 5, 100, 7},    // explicit value honored
		{500, 5, 100, 100}, // capped
	}

	for _, tt := range tests {
		if got := clampLimit(tt.requested, tt.def, tt.max); got != tt.want {
			t.Errorf("clampLimit(%d, %d, %d) = %d, want %d",
				tt.requested, tt.def, tt.max, got, tt.want)
		}
	}
}

func TestClamp01(t *testing.T) {
	tests := []struct{ in, want float64 }{
		{-0.5, 0},
		{0, 0},
		{0.7, 0.7},
		{1.0, 1.0},
		{1.8, 1.0},
	}

	for _, tt := range tests {
		if got := clamp01(tt.in); got != tt.want {
			t.Errorf("clamp01(%f) = %f, want %f", tt.in, got, tt.want)
		}
	}
}
