package analyzer

func wordSet(words ...string) map[string]bool {
	m := make(map[string]bool, len(words))
	for _, w := range words {
		m[w] = true
	}
	return m
}

var stopWords = wordSet(
	"a", "about", "above", "after", "again", "all", "also", "am", "an", "and", "any", "are", "as", "at",
	"be", "because", "been", "before", "being", "between", "both", "but", "by",
	"can", "could", "did", "do", "does", "doing", "down", "during",
	"each", "even", "ever", "every", "few", "for", "from", "further",
	"get", "gets", "getting", "got", "had", "has", "have", "having", "he", "her", "here", "hers", "him", "his", "how",
	"i", "i'm", "i've", "i'll", "i'd", "if", "in", "into", "is", "it", "it's", "its", "itself",
	"just", "let's", "like", "likes", "looking", "lot", "lots", "me", "more", "most", "much", "my", "myself",
	"of", "off", "on", "once", "only", "or", "other", "our", "ours", "out", "over", "own",
	"really", "same", "she", "should", "so", "some", "someone", "something", "such",
	"than", "that", "that's", "the", "their", "them", "then", "there", "these", "they", "thing", "things", "this", "those", "through", "to", "too",
	"under", "until", "up", "us", "very", "want", "was", "we", "were", "what", "when", "where", "which", "while", "who", "whom", "why", "will", "with", "would",
	"you", "you're", "your", "yours", "yourself",
	"fan", "big", "huge", "always", "usually", "sometimes", "time", "weekend", "weekends",
)

var positiveWords = wordSet(
	"adore", "amazing", "awesome", "beautiful", "best", "brilliant", "cheerful", "cool", "delightful",
	"excited", "exciting", "fantastic", "fun", "funny", "glad", "good", "great", "happy", "kind",
	"laugh", "love", "loves", "lovely", "enjoy", "enjoys", "passionate", "perfect", "positive", "wonderful",
)

var negativeWords = wordSet(
	"angry", "annoying", "awful", "bad", "boring", "dislike", "hate", "hates", "horrible", "lonely",
	"miserable", "nasty", "negative", "sad", "terrible", "tired", "ugly", "upset", "worst",
)

var negators = wordSet(
	"not", "no", "never", "don't", "doesn't", "didn't", "isn't", "wasn't", "can't", "won't", "hardly",
)
