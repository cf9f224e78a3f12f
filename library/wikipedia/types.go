package wikipedia

// ArticleSummary is the explanation of a single article.
// All fields are non-empty when returned by Client.Summary.
type ArticleSummary struct {
	Title   string `json:"title"`
	Summary string `json:"summary"`
	URL     string `json:"url"`
}
