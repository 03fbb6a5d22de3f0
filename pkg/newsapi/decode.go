package newsapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/samvad-hq/samvad-news-fetcher/internal/domain"
)

// ErrMalformedResponse marks a body that does not have the expected shape.
var ErrMalformedResponse = errors.New("malformed response")

type successBody struct {
	Articles *[]domain.Article `json:"articles"`
}

type failureBody struct {
	Message *string `json:"message"`
}

// Decode maps a raw status and body onto a SearchResult.
// A 200 needs an articles array, anything else needs a message string.
func Decode(status int, body []byte) (domain.SearchResult, error) {
	if status == http.StatusOK {
		var b successBody
		if err := json.Unmarshal(body, &b); err != nil {
			return domain.SearchResult{}, fmt.Errorf("%w: status %d: %v", ErrMalformedResponse, status, err)
		}
		if b.Articles == nil {
			return domain.SearchResult{}, fmt.Errorf("%w: status %d: articles field missing", ErrMalformedResponse, status)
		}
		return domain.Succeeded(*b.Articles), nil
	}

	var b failureBody
	if err := json.Unmarshal(body, &b); err != nil {
		return domain.SearchResult{}, fmt.Errorf("%w: status %d: %v (body: %s)", ErrMalformedResponse, status, err, responseSnippet(body))
	}
	if b.Message == nil {
		return domain.SearchResult{}, fmt.Errorf("%w: status %d: message field missing", ErrMalformedResponse, status)
	}
	return domain.FailedWith(*b.Message), nil
}

func responseSnippet(body []byte) string {
	const maxLen = 200
	s := strings.TrimSpace(string(body))
	if len(s) > maxLen {
		return s[:maxLen] + "..."
	}
	if s == "" {
		return "<empty>"
	}
	return s
}
