// Package wordfreq turns raw text into weighted tags: it splits text into normalised words,
// counts them and maps the counts onto a font size range.
package wordfreq

import (
	"cmp"
	"errors"
	"slices"
	"strings"
	"unicode"

	"github.com/maruel/natural"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// ErrNilWords is returned by Count when it is given a nil word list.
var ErrNilWords = errors.New("word list is nil")

// Tag is a distinct word and the number of times it occurred.
type Tag struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// Tokenizer splits text into words.
type Tokenizer struct {
	// MinLength drops words shorter than this many runes. Zero keeps everything.
	MinLength int
}

// Tokenize splits text on every rune that is not a letter, digit or apostrophe. Words are
// NFKC-normalised and lower-cased so that "Ｇo", "GO" and "go" count as the same tag.
// Leading and trailing apostrophes are dropped.
func (t Tokenizer) Tokenize(text string) []string {
	lower := cases.Lower(language.Und)
	fields := strings.FieldsFunc(norm.NFKC.String(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\''
	})
	words := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.Trim(f, "'")
		if f == "" {
			continue
		}
		w := lower.String(f)
		if t.MinLength > 0 && len([]rune(w)) < t.MinLength {
			continue
		}
		words = append(words, w)
	}
	return words
}

// Tokenize splits text using a Tokenizer with default settings.
func Tokenize(text string) []string {
	return Tokenizer{}.Tokenize(text)
}

// Frequencies is an occurrence count for each distinct word.
type Frequencies struct {
	counts map[string]int
	total  int
}

// Count tallies words. Words are used as given; tokenize first to normalise them.
func Count(words []string) (Frequencies, error) {
	if words == nil {
		return Frequencies{}, ErrNilWords
	}
	f := Frequencies{counts: make(map[string]int, len(words))}
	for _, w := range words {
		f.counts[w]++
		f.total++
	}
	return f, nil
}

// Len returns the number of distinct words.
func (f Frequencies) Len() int {
	return len(f.counts)
}

// Total returns the number of words counted, including repeats.
func (f Frequencies) Total() int {
	return f.total
}

// Get returns the count of word, or zero.
func (f Frequencies) Get(word string) int {
	return f.counts[word]
}

// Tags returns the words ordered by count, most frequent first. Words with equal counts are
// ordered naturally ("2" before "10") so the result is the same on every run. A limit above
// zero keeps only that many tags.
func (f Frequencies) Tags(limit int) []Tag {
	tags := make([]Tag, 0, len(f.counts))
	for label, count := range f.counts {
		tags = append(tags, Tag{Label: label, Count: count})
	}
	slices.SortFunc(tags, func(a, b Tag) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		if natural.Less(a.Label, b.Label) {
			return -1
		}
		if natural.Less(b.Label, a.Label) {
			return 1
		}
		return strings.Compare(a.Label, b.Label)
	})
	if limit > 0 && len(tags) > limit {
		tags = tags[:limit]
	}
	return tags
}
