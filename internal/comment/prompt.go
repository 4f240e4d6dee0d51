package comment

import (
	"fmt"
	"strings"

	"github.com/Yates-Labs/wingman/internal/style"
)

// FallbackKeyword fills the slot when there are no keywords to choose from.
const FallbackKeyword = "something interesting"

// Picker chooses an index in [0, n). style.Rand satisfies it.
type Picker interface {
	IntN(n int) int
}

// BuildPrompt fills template with one keyword picked uniformly at random and
// wraps it in the persona preamble. Keyword and sentiment are embedded as-is.
func BuildPrompt(template string, keywords []string, sentiment string, pick Picker) string {
	keyword := FallbackKeyword
	if len(keywords) > 0 {
		keyword = keywords[pick.IntN(len(keywords))]
	}

	sentence := strings.ReplaceAll(template, style.KeywordSlot, keyword)

	var b strings.Builder
	b.WriteString("You are a friendly and likable person who is witty and humorous.\n")
	b.WriteString(fmt.Sprintf("The user's sentiment is: %s.\n", sentiment))
	b.WriteString(sentence)
	b.WriteString("\n")

	return b.String()
}
