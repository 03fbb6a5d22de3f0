package newsapi

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/samvad-hq/samvad-news-fetcher/internal/domain"
	"github.com/samvad-hq/samvad-news-fetcher/pkg/httpclient"
)

// Executor turns a SearchRequest into one GET against the everything endpoint.
type Executor struct {
	client   httpclient.Client
	endpoint string
	apiKey   string
	now      func() time.Time
	log      Logger
}

// NewExecutor builds an executor. A nil client gets a resty client without timeout.
func NewExecutor(client httpclient.Client, endpoint, apiKey string, log Logger) *Executor {
	return newExecutorWithClock(client, endpoint, apiKey, log, time.Now)
}

func newExecutorWithClock(client httpclient.Client, endpoint, apiKey string, log Logger, now func() time.Time) *Executor {
	if client == nil {
		client = httpclient.NewRestyClient(0)
	}
	if now == nil {
		now = time.Now
	}
	return &Executor{
		client:   client,
		endpoint: endpoint,
		apiKey:   apiKey,
		now:      now,
		log:      ensureLogger(log),
	}
}

// Search performs the call and always returns a result: transport failures and
// malformed bodies come back as the failure variant. No retry is attempted.
func (e *Executor) Search(ctx context.Context, req domain.SearchRequest) domain.SearchResult {
	params := BuildParams(req, e.now(), e.apiKey)
	e.log.DebugObj("news search request", "search_request", map[string]any{
		"endpoint": e.endpoint,
		"q":        params[ParamQuery],
		"from":     params[ParamFrom],
		"sortBy":   params[ParamSortBy],
		"language": params[ParamLanguage],
	})

	resp, err := e.client.Get(ctx, e.endpoint, params, nil)
	if err != nil {
		msg := e.redact(transportMessage(err))
		e.log.WarnObj("news search transport failed", "search_error", msg)
		return domain.FailedWith(msg)
	}

	result, err := Decode(resp.StatusCode(), resp.Body())
	if err != nil {
		msg := e.redact(err.Error())
		e.log.WarnObj("news search response rejected", "search_error", msg)
		return domain.FailedWith(msg)
	}
	return result
}

// transportMessage drops the request URL from url.Error, since it carries the credential.
func transportMessage(err error) string {
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Err != nil {
		return fmt.Sprintf("request failed: %v", urlErr.Err)
	}
	return fmt.Sprintf("request failed: %v", err)
}

func (e *Executor) redact(msg string) string {
	if e.apiKey == "" {
		return msg
	}
	return strings.ReplaceAll(msg, e.apiKey, "***")
}
