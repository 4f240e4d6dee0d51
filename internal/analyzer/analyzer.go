// Package analyzer prepares profile text for comment generation: it cleans the
// text, extracts the keywords worth referencing and labels the overall
// sentiment. Lexicon is a dependency-light default; any Analyzer can be
// plugged into the pipeline.
package analyzer

// Analyzer defines the text analysis the comment pipeline depends on.
type Analyzer interface {
	// Clean normalizes raw profile text.
	Clean(text string) string

	// ExtractKeywords returns keywords in ranked order. It may return none.
	ExtractKeywords(text string) []string

	// AnalyzeSentiment returns a free-form sentiment label.
	AnalyzeSentiment(text string) string
}

const (
	SentimentPositive = "positive"
	SentimentNegative = "negative"
	SentimentNeutral  = "neutral"
)

// Stub is an Analyzer with fixed outputs. Clean returns its input unchanged
// unless Cleaned is set.
type Stub struct {
	Cleaned   string
	Keywords  []string
	Sentiment string
}

func (s Stub) Clean(text string) string {
	if s.Cleaned != "" {
		return s.Cleaned
	}
	return text
}

func (s Stub) ExtractKeywords(string) []string {
	return s.Keywords
}

func (s Stub) AnalyzeSentiment(string) string {
	return s.Sentiment
}
