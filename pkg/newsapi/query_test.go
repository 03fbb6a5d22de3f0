package newsapi

import (
	"testing"
	"time"

	"github.com/samvad-hq/samvad-news-fetcher/internal/domain"
)

func TestDateFromWindows(t *testing.T) {
	now := time.Date(2024, time.March, 10, 15, 4, 5, 0, time.Local)

	cases := []struct {
		window domain.Window
		want   string
	}{
		{domain.WindowDaily, "2024-03-09"},
		{domain.WindowWeekly, "2024-03-03"},
		{domain.WindowMonthly, "2024-02-09"},
		{domain.WindowYearly, "2023-03-11"},
	}

	for _, tc := range cases {
		if got := DateFrom(tc.window, now); got != tc.want {
			t.Errorf("DateFrom(%s) = %s, want %s", tc.window, got, tc.want)
		}
	}
}

func TestDateFromUnknownWindowFallsBackToYear(t *testing.T) {
	now := time.Date(2024, time.March, 10, 9, 0, 0, 0, time.Local)

	for _, w := range []domain.Window{"", "daily", "Hourly", "Yearly "} {
		if got := OffsetDays(w); got != 365 {
			t.Errorf("OffsetDays(%q) = %d, want 365", w, got)
		}
		if got, want := DateFrom(w, now), DateFrom(domain.WindowYearly, now); got != want {
			t.Errorf("DateFrom(%q) = %s, want %s", w, got, want)
		}
	}
}

func TestDateFromUsesCallerLocation(t *testing.T) {
	// 01:00 on the 2nd in UTC+5 is still the 1st in UTC.
	loc := time.FixedZone("UTC+5", 5*60*60)
	now := time.Date(2024, time.June, 2, 1, 0, 0, 0, loc)

	if got := DateFrom(domain.WindowDaily, now); got != "2024-06-01" {
		t.Fatalf("expected local calendar date, got %s", got)
	}
}

func TestBuildParamsScenario(t *testing.T) {
	now := time.Date(2024, time.May, 20, 12, 0, 0, 0, time.Local)
	req := domain.SearchRequest{
		Topic:    "elections",
		Window:   domain.WindowWeekly,
		SortBy:   domain.SortPopularity,
		Language: domain.LanguageFR,
	}

	params := BuildParams(req, now, "key")

	want := map[string]string{
		ParamQuery:    "elections",
		ParamFrom:     "2024-05-13",
		ParamSortBy:   "popularity",
		ParamLanguage: "fr",
		ParamAPIKey:   "key",
	}
	if len(params) != len(want) {
		t.Fatalf("expected %d params, got %d: %v", len(want), len(params), params)
	}
	for k, v := range want {
		if params[k] != v {
			t.Errorf("param %s = %q, want %q", k, params[k], v)
		}
	}
}

func TestBuildParamsKeepsEmptyTopic(t *testing.T) {
	params := BuildParams(domain.SearchRequest{Window: domain.WindowDaily}, time.Now(), "key")

	topic, ok := params[ParamQuery]
	if !ok {
		t.Fatal("expected q param to be present")
	}
	if topic != "" {
		t.Fatalf("expected empty topic, got %q", topic)
	}
}
