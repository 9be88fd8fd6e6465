package helpers

import (
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/Makepad-fr/itemdetail/internal/model"
)

// Mention is a suggestion offered by the "@mention" input.
type Mention struct {
	ID      model.MemberID
	Display string
}

type mentionSource []Mention

func (m mentionSource) String(i int) string { return m[i].Display }
func (m mentionSource) Len() int            { return len(m) }

// FormatMentionMembers converts members into mention suggestions, keeping order.
func FormatMentionMembers(members []model.Member) []Mention {
	out := make([]Mention, 0, len(members))
	for _, m := range members {
		out = append(out, Mention{ID: m.Value, Display: m.Label})
	}
	return out
}

// SuggestMentions ranks mentions against query. An empty query returns all of them.
func SuggestMentions(query string, mentions []Mention) []Mention {
	query = strings.TrimPrefix(strings.TrimSpace(query), "@")
	if query == "" {
		return mentions
	}
	matches := fuzzy.FindFrom(query, mentionSource(mentions))
	out := make([]Mention, 0, len(matches))
	for _, m := range matches {
		out = append(out, mentions[m.Index])
	}
	return out
}

// PendingMention returns the "@word" being typed at the end of value.
func PendingMention(value string) (string, bool) {
	i := strings.LastIndexAny(value, " \n\t")
	word := value[i+1:]
	if !strings.HasPrefix(word, "@") {
		return "", false
	}
	return word[1:], true
}

// CompleteMention replaces the pending "@word" at the end of value with m.
func CompleteMention(value string, m Mention) string {
	i := strings.LastIndexAny(value, " \n\t")
	return value[:i+1] + "@" + m.Display + " "
}
