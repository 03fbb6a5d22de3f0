package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/samvad-hq/samvad-news-fetcher/internal/domain"
)

func openTestStore(t *testing.T, opts Options) *boltStore {
	t.Helper()
	storeRaw, err := openBolt(filepath.Join(t.TempDir(), "history.db"), normalizeOptions(opts))
	if err != nil {
		t.Fatalf("openBolt: %v", err)
	}
	store := storeRaw.(*boltStore)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestBoltStoreRecentNewestFirst(t *testing.T) {
	store := openTestStore(t, Options{})
	base := time.Date(2025, time.January, 1, 12, 0, 0, 0, time.UTC)

	for i, topic := range []string{"a", "b", "c"} {
		e := Entry{At: base.Add(time.Duration(i) * time.Minute), Request: domain.SearchRequest{Topic: topic}, Outcome: OutcomeArticles}
		if err := store.Record(e); err != nil {
			t.Fatalf("Record: %v", err)
		}
	}

	got, err := store.Recent(2)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(got))
	}
	if got[0].Request.Topic != "c" || got[1].Request.Topic != "b" {
		t.Fatalf("unexpected order: %q, %q", got[0].Request.Topic, got[1].Request.Topic)
	}

	all, err := store.Recent(0)
	if err != nil || len(all) != 3 {
		t.Fatalf("expected all 3 entries, got %d err=%v", len(all), err)
	}
}

func TestBoltStoreKeepsEntriesWithSameTimestamp(t *testing.T) {
	store := openTestStore(t, Options{})
	at := time.Date(2025, time.January, 1, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		if err := store.Record(Entry{At: at, Outcome: OutcomeFailure}); err != nil {
			t.Fatalf("Record: %v", err)
		}
	}

	got, err := store.Recent(0)
	if err != nil || len(got) != 3 {
		t.Fatalf("expected 3 entries, got %d err=%v", len(got), err)
	}
}

func TestBoltStoreExpiresEntries(t *testing.T) {
	store := openTestStore(t, Options{EntryTTL: time.Hour, CleanupInterval: time.Minute})
	now := time.Now()
	store.now = func() time.Time { return now }

	if err := store.Record(Entry{Outcome: OutcomeArticles, Articles: 3}); err != nil {
		t.Fatalf("Record: %v", err)
	}
	got, err := store.Recent(0)
	if err != nil || len(got) != 1 {
		t.Fatalf("expected entry before expiry, got %d err=%v", len(got), err)
	}

	now = now.Add(2 * time.Hour)

	got, err = store.Recent(0)
	if err != nil {
		t.Fatalf("Recent after expiry: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected entry to expire, got %d", len(got))
	}
}

func TestNewEntrySummarizesResult(t *testing.T) {
	at := time.Now()
	req := domain.SearchRequest{Topic: "x"}

	ok := NewEntry(at, req, domain.Succeeded(make([]domain.Article, 4)))
	if ok.Outcome != OutcomeArticles || ok.Articles != 4 || ok.Message != "" {
		t.Fatalf("unexpected success entry %+v", ok)
	}

	failed := NewEntry(at, req, domain.FailedWith("rate limited"))
	if failed.Outcome != OutcomeFailure || failed.Message != "rate limited" {
		t.Fatalf("unexpected failure entry %+v", failed)
	}
}

func TestNewStoreSupportsNoop(t *testing.T) {
	store, err := NewStore("none", "", Options{})
	if err != nil {
		t.Fatalf("NewStore none: %v", err)
	}
	if err := store.Record(Entry{}); err != nil {
		t.Fatalf("noop store Record: %v", err)
	}
	if got, err := store.Recent(5); err != nil || got != nil {
		t.Fatalf("noop store Recent: %v %v", got, err)
	}
}

func TestNewStoreRejectsUnknownType(t *testing.T) {
	if _, err := NewStore("redis", "x", Options{}); err == nil {
		t.Fatal("expected error for unsupported type")
	}
	if _, err := NewStore("bbolt", " ", Options{}); err == nil {
		t.Fatal("expected error for empty bbolt path")
	}
}
