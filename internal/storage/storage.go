package storage

import (
	"fmt"
	"strings"
	"time"

	"github.com/samvad-hq/samvad-news-fetcher/internal/domain"
)

// Package storage keeps a local history of fetch attempts.

// Outcome values recorded for an entry.
const (
	OutcomeArticles = "articles"
	OutcomeFailure  = "failure"
)

// Entry is one recorded fetch attempt.
type Entry struct {
	At       time.Time            `json:"at"`
	Request  domain.SearchRequest `json:"request"`
	Outcome  string               `json:"outcome"`
	Articles int                  `json:"articles"`
	Message  string               `json:"message,omitempty"`
}

// NewEntry summarizes a request and its result.
func NewEntry(at time.Time, req domain.SearchRequest, res domain.SearchResult) Entry {
	e := Entry{At: at, Request: req}
	if res.Failed() {
		e.Outcome = OutcomeFailure
		e.Message = res.Failure.Message
		return e
	}
	e.Outcome = OutcomeArticles
	e.Articles = len(res.Articles)
	return e
}

// Store records fetch history.
type Store interface {
	Close() error
	Record(e Entry) error
	Recent(limit int) ([]Entry, error)
}

// Options controls retention characteristics for concrete store implementations.
type Options struct {
	EntryTTL        time.Duration
	CleanupInterval time.Duration
}

const (
	defaultEntryTTL        = 30 * 24 * time.Hour
	defaultCleanupInterval = 12 * time.Hour
)

// NewStore creates the configured storage backend.
func NewStore(typ, path string, opts Options) (Store, error) {
	typ = strings.TrimSpace(strings.ToLower(typ))
	opts = normalizeOptions(opts)

	switch typ {
	case "", "none", "disabled":
		return noopStore{}, nil
	case "bbolt":
		if strings.TrimSpace(path) == "" {
			return nil, fmt.Errorf("bbolt storage requires a path")
		}
		return openBolt(path, opts)
	default:
		return nil, fmt.Errorf("unsupported storage type %q", typ)
	}
}

func normalizeOptions(opts Options) Options {
	if opts.EntryTTL <= 0 {
		opts.EntryTTL = defaultEntryTTL
	}
	if opts.CleanupInterval <= 0 {
		opts.CleanupInterval = defaultCleanupInterval
	}
	return opts
}

type noopStore struct{}

func (noopStore) Close() error                { return nil }
func (noopStore) Record(Entry) error          { return nil }
func (noopStore) Recent(int) ([]Entry, error) { return nil, nil }
