package render

import (
	"github.com/samvad-hq/samvad-news-fetcher/internal/domain"
)

const (
	// FailurePrefix starts every failure display.
	FailurePrefix = "Failed to fetch news: "
	// NullPlaceholder stands in for a field that was null or absent.
	NullPlaceholder = "null"
)

// Display is the read-only output area the renderer writes to.
type Display interface {
	Clear()
	Append(text string)
	SetText(text string)
}

// Render writes a result to the display. Articles clear the display and are
// appended in the order received; a failure replaces the whole display.
func Render(d Display, res domain.SearchResult) {
	if res.Failed() {
		d.SetText(FailurePrefix + res.Failure.Message)
		return
	}

	d.Clear()
	for _, a := range res.Articles {
		d.Append("Title: " + field(a.Title))
		d.Append("Description: " + field(a.Description))
		d.Append("URL: " + field(a.URL) + "\n")
	}
}

func field(v *string) string {
	if v == nil {
		return NullPlaceholder
	}
	return *v
}
