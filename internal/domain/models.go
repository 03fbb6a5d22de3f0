package domain

// Domain contains core models shared by the collector, executor and renderer.

// Window is the recency constraint converted into the query's from date.
type Window string

const (
	WindowDaily   Window = "Daily"
	WindowWeekly  Window = "Weekly"
	WindowMonthly Window = "Monthly"
	WindowYearly  Window = "Yearly"
)

// SortBy is the remote ordering key; it is passed through unmodified.
type SortBy string

const (
	SortRelevancy   SortBy = "relevancy"
	SortPopularity  SortBy = "popularity"
	SortPublishedAt SortBy = "publishedAt"
)

// Language is the two-letter code the remote service filters on.
type Language string

const (
	LanguageEN Language = "en"
	LanguageES Language = "es"
	LanguageFR Language = "fr"
	LanguageDE Language = "de"
	LanguageIT Language = "it"
)

// Windows lists the selectable windows in display order.
func Windows() []Window {
	return []Window{WindowDaily, WindowWeekly, WindowMonthly, WindowYearly}
}

// SortOrders lists the selectable sort keys in display order.
func SortOrders() []SortBy {
	return []SortBy{SortRelevancy, SortPopularity, SortPublishedAt}
}

// Languages lists the selectable language codes in display order.
func Languages() []Language {
	return []Language{LanguageEN, LanguageES, LanguageFR, LanguageDE, LanguageIT}
}

// SearchRequest is a snapshot of the input fields taken when a fetch is triggered.
type SearchRequest struct {
	Topic    string   `json:"topic"`
	Window   Window   `json:"window"`
	SortBy   SortBy   `json:"sort_by"`
	Language Language `json:"language"`
}

// Article is one entry of the remote articles array. Nil fields were JSON null or absent.
type Article struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	URL         *string `json:"url"`
}

// SearchResult carries exactly one of Articles or Failure.
type SearchResult struct {
	Articles []Article
	Failure  *Failure
}

// Failure is the failure variant of a SearchResult.
type Failure struct {
	Message string
}

// Failed reports whether the result is the failure variant.
func (r SearchResult) Failed() bool { return r.Failure != nil }

// Succeeded builds the articles variant.
func Succeeded(articles []Article) SearchResult {
	if articles == nil {
		articles = []Article{}
	}
	return SearchResult{Articles: articles}
}

// FailedWith builds the failure variant.
func FailedWith(message string) SearchResult {
	return SearchResult{Failure: &Failure{Message: message}}
}
