package analyzer

import (
	"reflect"
	"testing"
)

func TestLexicon_Clean(t *testing.T) {
	l := NewLexicon(0)

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lowercases and collapses space", "  I Love   Hiking\tand COFFEE \n", "i love hiking and coffee"},
		{"strips punctuation and symbols", "Hiking & coffee ☕!!!", "hiking coffee"},
		{"keeps apostrophes", "I’m into jazz", "i'm into jazz"},
		{"drops urls and emails", "see https://example.com/me or mail me@example.com today", "see or mail today"},
		{"normalizes fullwidth text", "ｈｉｋｉｎｇ", "hiking"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := l.Clean(tt.in); got != tt.want {
				t.Errorf("Clean(%q) = %q, expected %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestLexicon_ExtractKeywords(t *testing.T) {
	tests := []struct {
		name string
		max  int
		in   string
		want []string
	}{
		{"profile", 0, "i love hiking and coffee", []string{"hiking", "coffee"}},
		{"ranked by frequency", 0, "coffee hiking coffee dogs", []string{"coffee", "hiking", "dogs"}},
		{"capped", 2, "jazz hiking coffee dogs", []string{"jazz", "hiking"}},
		{"skips short and numeric tokens", 0, "tv in 1990 was rad", []string{"rad"}},
		{"duplicates collapsed", 0, "pizza pizza pizza", []string{"pizza"}},
		{"only stop words", 0, "i am so into it", []string{}},
		{"empty", 0, "", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewLexicon(tt.max).ExtractKeywords(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExtractKeywords(%q) = %v, expected %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestLexicon_ExtractKeywords_DefaultCap(t *testing.T) {
	var l Lexicon
	got := l.ExtractKeywords("alpha bravo charlie delta echo foxtrot golf")
	if len(got) != DefaultMaxKeywords {
		t.Fatalf("expected %d keywords, got %d (%v)", DefaultMaxKeywords, len(got), got)
	}
}

func TestLexicon_AnalyzeSentiment(t *testing.T) {
	l := NewLexicon(0)

	tests := []struct {
		in   string
		want string
	}{
		{"i love hiking and coffee", SentimentPositive},
		{"i hate boring dates", SentimentNegative},
		{"i am not happy", SentimentNegative},
		{"never boring", SentimentPositive},
		{"hiking and coffee", SentimentNeutral},
		{"", SentimentNeutral},
	}

	for _, tt := range tests {
		if got := l.AnalyzeSentiment(tt.in); got != tt.want {
			t.Errorf("AnalyzeSentiment(%q) = %q, expected %q", tt.in, got, tt.want)
		}
	}
}

func TestStub(t *testing.T) {
	s := Stub{Keywords: []string{"hiking"}, Sentiment: "positive"}
	if got := s.Clean("raw"); got != "raw" {
		t.Errorf("expected passthrough clean, got %q", got)
	}
	if got := s.ExtractKeywords("anything"); !reflect.DeepEqual(got, []string{"hiking"}) {
		t.Errorf("unexpected keywords %v", got)
	}
	if got := s.AnalyzeSentiment("anything"); got != "positive" {
		t.Errorf("unexpected sentiment %q", got)
	}

	s.Cleaned = "cleaned"
	if got := s.Clean("raw"); got != "cleaned" {
		t.Errorf("expected fixed clean output, got %q", got)
	}
}

var _ Analyzer = (*Lexicon)(nil)
var _ Analyzer = Stub{}
