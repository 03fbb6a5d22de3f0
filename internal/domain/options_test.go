package domain

import "testing"

func TestParseOptionsAcceptExactLabels(t *testing.T) {
	for _, w := range Windows() {
		if got, err := ParseWindow(string(w)); err != nil || got != w {
			t.Errorf("ParseWindow(%q) = %q, %v", w, got, err)
		}
	}
	for _, s := range SortOrders() {
		if got, err := ParseSortBy(string(s)); err != nil || got != s {
			t.Errorf("ParseSortBy(%q) = %q, %v", s, got, err)
		}
	}
	for _, l := range Languages() {
		if got, err := ParseLanguage(string(l)); err != nil || got != l {
			t.Errorf("ParseLanguage(%q) = %q, %v", l, got, err)
		}
	}
}

func TestParseOptionsRejectOthers(t *testing.T) {
	if _, err := ParseWindow("daily"); err == nil {
		t.Error("expected lower-case window to be rejected")
	}
	if _, err := ParseSortBy("date"); err == nil {
		t.Error("expected unknown sort order to be rejected")
	}
	if _, err := ParseLanguage("pt"); err == nil {
		t.Error("expected unsupported language to be rejected")
	}
}

func TestSearchResultVariants(t *testing.T) {
	ok := Succeeded(nil)
	if ok.Failed() || ok.Articles == nil {
		t.Fatalf("expected non-nil empty articles variant, got %+v", ok)
	}

	failed := FailedWith("boom")
	if !failed.Failed() || failed.Articles != nil {
		t.Fatalf("expected failure variant only, got %+v", failed)
	}
}
