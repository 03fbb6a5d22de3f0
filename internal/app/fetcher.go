package app

import (
	"context"
	"fmt"
	"time"

	"github.com/samvad-hq/samvad-news-fetcher/internal/config"
	"github.com/samvad-hq/samvad-news-fetcher/internal/domain"
	"github.com/samvad-hq/samvad-news-fetcher/internal/logger"
	"github.com/samvad-hq/samvad-news-fetcher/internal/render"
	"github.com/samvad-hq/samvad-news-fetcher/internal/storage"
	"github.com/samvad-hq/samvad-news-fetcher/pkg/httpclient"
	"github.com/samvad-hq/samvad-news-fetcher/pkg/newsapi"
)

// Searcher executes one search request.
type Searcher interface {
	Search(ctx context.Context, req domain.SearchRequest) domain.SearchResult
}

// Fetcher is the fetch command: it runs a search, renders the result and records it.
// Calls block until the remote answers; there is no retry and no cancellation
// beyond what ctx carries.
type Fetcher struct {
	searcher Searcher
	display  render.Display
	store    storage.Store
	log      logger.Logger
	now      func() time.Time
}

// NewFetcher builds the fetch command from config.
func NewFetcher(cfg *config.Config, display render.Display, log logger.Logger) (*Fetcher, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if display == nil {
		return nil, fmt.Errorf("display must not be nil")
	}
	if log == nil {
		log = logger.NopLogger{}
	}

	store, err := storage.NewStore(cfg.HistoryType, cfg.HistoryPath, storage.Options{
		EntryTTL:        cfg.HistoryTTL,
		CleanupInterval: cfg.HistoryCleanupInterval,
	})
	if err != nil {
		return nil, fmt.Errorf("init history storage: %w", err)
	}
	log.InfoObj("history storage initialized", "storage_config", map[string]any{
		"type":                     cfg.HistoryType,
		"path":                     cfg.HistoryPath,
		"entry_ttl_seconds":        int(cfg.HistoryTTL.Seconds()),
		"cleanup_interval_seconds": int(cfg.HistoryCleanupInterval.Seconds()),
	})

	executor := newsapi.NewExecutor(httpclient.NewRestyClient(cfg.HTTPTimeout), cfg.Endpoint, cfg.APIKey, log)
	return newFetcher(executor, display, store, log), nil
}

func newFetcher(searcher Searcher, display render.Display, store storage.Store, log logger.Logger) *Fetcher {
	if store == nil {
		store, _ = storage.NewStore("none", "", storage.Options{})
	}
	if log == nil {
		log = logger.NopLogger{}
	}
	return &Fetcher{
		searcher: searcher,
		display:  display,
		store:    store,
		log:      log,
		now:      time.Now,
	}
}

// Fetch runs req and renders the outcome. The returned result mirrors what was displayed.
func (f *Fetcher) Fetch(ctx context.Context, req domain.SearchRequest) domain.SearchResult {
	start := f.now()
	res := f.searcher.Search(ctx, req)
	render.Render(f.display, res)

	meta := map[string]any{
		"topic":      req.Topic,
		"window":     req.Window,
		"sort_by":    req.SortBy,
		"language":   req.Language,
		"elapsed_ms": f.now().Sub(start).Milliseconds(),
	}
	if res.Failed() {
		meta["message"] = res.Failure.Message
		f.log.WarnObj("fetch failed", "fetch_meta", meta)
	} else {
		meta["articles"] = len(res.Articles)
		f.log.InfoObj("fetch completed", "fetch_meta", meta)
	}

	if err := f.store.Record(storage.NewEntry(start, req, res)); err != nil {
		f.log.ErrorObj("history record failed", "error", err)
	}
	return res
}

// History returns up to limit recorded fetches, newest first.
func (f *Fetcher) History(limit int) ([]storage.Entry, error) {
	return f.store.Recent(limit)
}

// Close releases the history store.
func (f *Fetcher) Close() error {
	if f == nil || f.store == nil {
		return nil
	}
	return f.store.Close()
}
