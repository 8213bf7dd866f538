// Package tags infers short keyword tags for generated documents.
package tags

import (
	"regexp"
	"strings"
)

const (
	// MaxTags caps the number of tags attached to a document.
	MaxTags = 5

	minKeywordLen  = 3
	maxKeywordLen  = 15
	keywordsPerSrc = 10
	titleKeywords  = 2
	promptKeywords = 3

	defaultCategory = "personal"
	defaultType     = "document"
)

var (
	nonWord = regexp.MustCompile(`[^\w\s]`)
	numeric = regexp.MustCompile(`^\d+$`)
)

var stopWords = toSet(
	"a", "an", "and", "are", "as", "at", "be", "by", "for", "from",
	"has", "he", "in", "is", "it", "its", "of", "on", "that", "the",
	"to", "was", "will", "with", "this", "but", "they", "have", "had",
	"what", "said", "each", "which", "their", "time", "if", "up", "out",
	"many", "then", "them", "these", "so", "some", "her", "would", "make",
	"like", "into", "him", "two", "more", "very", "know", "just", "first",
	"get", "over", "think", "also", "your", "work", "life", "only", "can",
	"still", "should", "after", "being", "now", "made", "before", "here",
	"through", "when", "where", "how", "all", "any", "may", "say", "there",
	"use", "than", "she", "well", "other", "create", "generate", "write",
	"design", "build",
)

// Extract derives up to MaxTags tags from a document's title and prompt.
// The first two title keywords come first, then the first three prompt
// keywords, then category (unless personal) and type (unless document).
// Duplicates keep their first position. The result is deterministic.
func Extract(title, prompt, category, docType string) []string {
	var tags orderedSet

	tags.add(firstN(Keywords(title), titleKeywords)...)
	tags.add(firstN(Keywords(prompt), promptKeywords)...)

	if category != defaultCategory {
		tags.add(category)
	}
	if docType != defaultType {
		tags.add(docType)
	}

	if len(tags.items) == 0 {
		return []string{}
	}
	return firstN(tags.items, MaxTags)
}

// Keywords returns up to ten qualifying tokens of text in order of appearance.
// Tokens are lower-cased, stripped of punctuation, 3 to 15 characters long,
// not stop words, and not purely numeric.
func Keywords(text string) []string {
	cleaned := nonWord.ReplaceAllString(strings.ToLower(text), " ")

	var out []string
	for _, word := range strings.Fields(cleaned) {
		if len(out) == keywordsPerSrc {
			break
		}
		if qualifies(word) {
			out = append(out, word)
		}
	}
	return out
}

func qualifies(word string) bool {
	if len(word) < minKeywordLen || len(word) > maxKeywordLen {
		return false
	}
	if _, stop := stopWords[word]; stop {
		return false
	}
	return !numeric.MatchString(word)
}

type orderedSet struct {
	items []string
	seen  map[string]struct{}
}

func (s *orderedSet) add(values ...string) {
	if s.seen == nil {
		s.seen = make(map[string]struct{})
	}
	for _, v := range values {
		if v == "" {
			continue
		}
		if _, ok := s.seen[v]; ok {
			continue
		}
		s.seen[v] = struct{}{}
		s.items = append(s.items, v)
	}
}

func firstN(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}

func toSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}
