// Package titlecase applies AP-style title casing to single-line titles.
//
// Short articles, conjunctions and prepositions stay lowercase in the
// interior of a title, period-delimited acronyms are uppercased, and every
// other word is capitalized. The first and last words of a title are always
// capitalized regardless of lexicon membership. All state is immutable and
// CaseTitle is safe for concurrent use.
package titlecase

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	// acronymRe matches the classification core of a period-delimited
	// acronym: two or more letters, each immediately followed by a period,
	// and nothing else ("u.s.", "s.o.s.").
	acronymRe = regexp.MustCompile(`^(\p{L}\.){2,}$`)

	// ordinalRe matches ordinal numbers like 1st, 2nd, 3rd, 101ST.
	ordinalRe = regexp.MustCompile(`^[0-9]+(?i:st|nd|rd|th)$`)

	upperCaser = cases.Upper(language.AmericanEnglish)
	lowerCaser = cases.Lower(language.AmericanEnglish)
)

// CaseTitle title-cases one line of text. Words are delimited by
// whitespace and rejoined with single spaces; aside from spacing, only
// letter casing changes. A string with no words yields "".
func CaseTitle(input string) string {
	words := strings.Fields(input)
	if len(words) == 0 {
		return ""
	}

	first, last := wordBounds(words)
	lowered := lexiconRuns(words, first, last)

	cased := make([]string, len(words))
	for i, w := range words {
		switch {
		case acronymRe.MatchString(classCore(w)):
			// Acronyms win over every other rule, boundary included.
			cased[i] = upperCaser.String(w)
		case lowered[i]:
			cased[i] = lowerCaser.String(w)
		case (i == first || i == last) && ordinalRe.MatchString(classCore(w)):
			// Boundary ordinals keep their lowercase suffix: "the 22nd".
			cased[i] = lowerCaser.String(w)
		default:
			cased[i] = capitalize(w)
		}
	}

	lowerPhrases(words, cased, first, last)

	return strings.Join(cased, " ")
}

// classCore strips leading and trailing characters that play no part in
// word classification (commas, colons, quotes, ...). Letters, digits,
// periods and apostrophes are kept so acronyms, ordinals and contraction
// forms like "'n'" classify on their full shape.
func classCore(w string) string {
	return strings.TrimFunc(w, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) &&
			r != '.' && r != '\'' && r != '’' && r != 'ʼ'
	})
}

// wordBounds returns the indexes of the first and last words containing a
// letter or digit. Pure-punctuation words (a lone ellipsis or dash) do not
// count as title boundaries. Returns (-1, -1) when no word qualifies.
func wordBounds(words []string) (first, last int) {
	first, last = -1, -1
	for i, w := range words {
		if !wordLike(w) {
			continue
		}
		if first < 0 {
			first = i
		}
		last = i
	}
	return first, last
}

func wordLike(w string) bool {
	return strings.IndexFunc(w, func(r rune) bool {
		return unicode.IsLetter(r) || unicode.IsDigit(r)
	}) >= 0
}

// shortLexicon reports whether a word's classification core is a lexicon
// entry shorter than shortWordLen characters.
func shortLexicon(w string) bool {
	core := classCore(w)
	if len([]rune(core)) >= shortWordLen {
		return false
	}
	return lexicon[strings.ToLower(core)]
}

// lexiconRuns marks the words eligible for lowercasing: maximal contiguous
// runs of short lexicon words, scanned by index. A run touching the first
// or last word surrenders that boundary word to capitalization; the rest of
// the run stays eligible.
func lexiconRuns(words []string, first, last int) []bool {
	lowered := make([]bool, len(words))

	i := 0
	for i < len(words) {
		if !shortLexicon(words[i]) {
			i++
			continue
		}
		j := i
		for j+1 < len(words) && shortLexicon(words[j+1]) {
			j++
		}
		for k := i; k <= j; k++ {
			if k != first && k != last {
				lowered[k] = true
			}
		}
		i = j + 1
	}
	return lowered
}

// capitalize uppercases the first letter of a word and lowercases every
// letter after it. Leading punctuation is skipped, so "...and" becomes
// "...And". A leading digit suppresses the uppercase step, which keeps
// ordinals like "21st" intact; words with no letters pass through
// unchanged.
func capitalize(w string) string {
	runes := []rune(w)
	seen := false
	for i, r := range runes {
		switch {
		case unicode.IsLetter(r):
			if seen {
				runes[i] = unicode.ToLower(r)
			} else {
				runes[i] = unicode.ToUpper(r)
			}
			seen = true
		case unicode.IsDigit(r):
			seen = true
		}
	}
	return string(runes)
}

// lowerPhrases rewrites any phrasal preposition sitting strictly between
// the first and last words to all lowercase. Matching is case-insensitive
// on classification cores, so the pass is stable when CaseTitle is applied
// to its own output.
func lowerPhrases(words, cased []string, first, last int) {
	cores := make([]string, len(words))
	for i, w := range words {
		cores[i] = strings.ToLower(classCore(w))
	}

	for _, phrase := range phrases {
		for i := 0; i+len(phrase) <= len(words); i++ {
			end := i + len(phrase) - 1
			if i <= first || end >= last {
				continue
			}
			if !phraseAt(cores, i, phrase) {
				continue
			}
			for k := i; k <= end; k++ {
				cased[k] = lowerCaser.String(words[k])
			}
		}
	}
}

func phraseAt(cores []string, i int, phrase []string) bool {
	for k, p := range phrase {
		if cores[i+k] != p {
			return false
		}
	}
	return true
}
