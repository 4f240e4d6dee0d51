package analyzer

import (
	"regexp"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// DefaultMaxKeywords caps ExtractKeywords when MaxKeywords is zero.
const DefaultMaxKeywords = 5

// minKeywordLength drops short tokens such as "go" or "tv".
const minKeywordLength = 3

var (
	urlPattern   = regexp.MustCompile(`(?i)\b(?:https?://|www\.)\S+`)
	emailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)
)

// Lexicon is a word-list analyzer. The zero value is ready to use.
type Lexicon struct {
	// MaxKeywords limits the number of keywords returned (0 = DefaultMaxKeywords).
	MaxKeywords int
}

// NewLexicon creates a Lexicon returning at most maxKeywords keywords.
func NewLexicon(maxKeywords int) *Lexicon {
	return &Lexicon{MaxKeywords: maxKeywords}
}

// Clean applies NFKC normalization and lower-casing, drops URLs and e-mail
// addresses, and keeps only letters, digits, apostrophes and single spaces.
func (l *Lexicon) Clean(text string) string {
	text = norm.NFKC.String(text)
	text = cases.Lower(language.Und).String(text)
	text = strings.NewReplacer("’", "'", "‘", "'").Replace(text)
	text = urlPattern.ReplaceAllString(text, " ")
	text = emailPattern.ReplaceAllString(text, " ")

	mapped := strings.Map(func(r rune) rune {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r), r == '\'':
			return r
		default:
			return ' '
		}
	}, text)

	return strings.Join(strings.Fields(mapped), " ")
}

// ExtractKeywords ranks non-stop-word tokens by frequency, breaking ties by
// first appearance.
func (l *Lexicon) ExtractKeywords(text string) []string {
	type entry struct {
		word  string
		count int
		first int
	}

	seen := make(map[string]*entry)
	var entries []*entry
	for i, tok := range tokens(text) {
		if len([]rune(tok)) < minKeywordLength || isStopWord(tok) || isNumeric(tok) {
			continue
		}
		if e, ok := seen[tok]; ok {
			e.count++
			continue
		}
		e := &entry{word: tok, count: 1, first: i}
		seen[tok] = e
		entries = append(entries, e)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return entries[i].first < entries[j].first
	})

	limit := l.MaxKeywords
	if limit <= 0 {
		limit = DefaultMaxKeywords
	}
	if len(entries) > limit {
		entries = entries[:limit]
	}

	keywords := make([]string, 0, len(entries))
	for _, e := range entries {
		keywords = append(keywords, e.word)
	}
	return keywords
}

// AnalyzeSentiment scores the text against small positive and negative word
// lists. A negator directly before a sentiment word flips it.
func (l *Lexicon) AnalyzeSentiment(text string) string {
	score := 0
	toks := tokens(text)
	for i, tok := range toks {
		polarity := 0
		switch {
		case positiveWords[tok]:
			polarity = 1
		case negativeWords[tok]:
			polarity = -1
		default:
			continue
		}
		if i > 0 && negators[toks[i-1]] {
			polarity = -polarity
		}
		score += polarity
	}

	switch {
	case score > 0:
		return SentimentPositive
	case score < 0:
		return SentimentNegative
	default:
		return SentimentNeutral
	}
}

func tokens(text string) []string {
	fields := strings.Fields(cases.Lower(language.Und).String(text))
	out := fields[:0]
	for _, f := range fields {
		f = strings.Trim(f, "'.,!?;:\"()[]")
		if f != "" {
			out = append(out, f)
		}
	}
	return out
}

func isNumeric(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func isStopWord(s string) bool {
	return stopWords[s] || positiveWords[s] || negativeWords[s] || negators[s]
}
