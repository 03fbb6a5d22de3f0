package collector

import (
	"github.com/samvad-hq/samvad-news-fetcher/internal/domain"
)

// Form holds the current values of the four search inputs.
// Selectors only ever hold one of their listed options.
type Form struct {
	topic    string
	window   domain.Window
	sortBy   domain.SortBy
	language domain.Language
}

// NewForm returns a form with each selector on its first option and an empty topic.
func NewForm() *Form {
	return &Form{
		window:   domain.Windows()[0],
		sortBy:   domain.SortOrders()[0],
		language: domain.Languages()[0],
	}
}

// SetTopic stores the raw topic text; empty is allowed.
func (f *Form) SetTopic(topic string) { f.topic = topic }

// SelectWindow switches the window selector. The previous value is kept on error.
func (f *Form) SelectWindow(label string) error {
	w, err := domain.ParseWindow(label)
	if err != nil {
		return err
	}
	f.window = w
	return nil
}

// SelectSortBy switches the sort selector. The previous value is kept on error.
func (f *Form) SelectSortBy(label string) error {
	s, err := domain.ParseSortBy(label)
	if err != nil {
		return err
	}
	f.sortBy = s
	return nil
}

// SelectLanguage switches the language selector. The previous value is kept on error.
func (f *Form) SelectLanguage(code string) error {
	l, err := domain.ParseLanguage(code)
	if err != nil {
		return err
	}
	f.language = l
	return nil
}

// Fill copies every field of req into the form, validating the selectors first.
func (f *Form) Fill(req domain.SearchRequest) error {
	if _, err := domain.ParseWindow(string(req.Window)); err != nil {
		return err
	}
	if _, err := domain.ParseSortBy(string(req.SortBy)); err != nil {
		return err
	}
	if _, err := domain.ParseLanguage(string(req.Language)); err != nil {
		return err
	}
	f.topic = req.Topic
	f.window = req.Window
	f.sortBy = req.SortBy
	f.language = req.Language
	return nil
}

// Snapshot reads the current values into a fresh request.
func (f *Form) Snapshot() domain.SearchRequest {
	return domain.SearchRequest{
		Topic:    f.topic,
		Window:   f.window,
		SortBy:   f.sortBy,
		Language: f.language,
	}
}
