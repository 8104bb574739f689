package titlecase

// shortWordLen is the exclusive length cap for lowercase-eligible words.
// Function words of four or more characters ("with", "from", "over") are
// capitalized like ordinary words.
const shortWordLen = 4

// lexicon holds the articles, conjunctions and prepositions that stay
// lowercase in the interior of a title. Keys are lowercase classification
// cores. The 'n entries cover contraction spellings like "Toys 'n' Games",
// in both ASCII and Unicode apostrophe forms.
var lexicon = map[string]bool{
	"a":   true,
	"an":  true,
	"and": true,
	"as":  true,
	"at":  true,
	"but": true,
	"by":  true,
	"cum": true,
	"for": true,
	"in":  true,
	"nor": true,
	"of":  true,
	"off": true,
	"on":  true,
	"or":  true,
	"out": true,
	"per": true,
	"pro": true,
	"so":  true,
	"the": true,
	"to":  true,
	"up":  true,
	"via": true,
	"yet": true,

	"'n":  true,
	"n'":  true,
	"'n'": true,
	"’n":  true,
	"n’":  true,
	"’n’": true,
	"ʼn":  true,
	"nʼ":  true,
	"ʼnʼ": true,
}

// phrases lists the multi-word phrasal prepositions that are lowercased as
// a unit when they appear strictly between the first and last words of a
// title. Individual members ("well", "due", "case") are not lexicon words
// on their own.
var phrases = [][]string{
	{"as", "for"},
	{"as", "per"},
	{"as", "well", "as"},
	{"away", "from"},
	{"but", "for"},
	{"due", "to"},
	{"far", "from"},
	{"in", "case", "of"},
	{"in", "face", "of"},
	{"in", "view", "of"},
	{"near", "to"},
	{"off", "of"},
	{"out", "of"},
}
