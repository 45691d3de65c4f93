package autowrap

// Word is a run of non-separator characters, stored as a half-open range
// [Start, End) of rune offsets into the source text.
type Word struct {
	Start int
	End   int
}

// Len returns the number of characters in the word.
func (w Word) Len() int {
	return w.End - w.Start
}

func isSeparator(r rune) bool {
	return r == ' ' || r == '\n'
}

// Tokenize splits text into words. Spaces and newlines separate words and are
// never part of one. Runs of separators, leading and trailing ones included,
// do not produce empty words.
func Tokenize(text []rune) []Word {
	var (
		words []Word
		start = -1
	)
	for idx, r := range text {
		if isSeparator(r) {
			if start >= 0 {
				words = append(words, Word{Start: start, End: idx})
				start = -1
			}
			continue
		}
		if start < 0 {
			start = idx
		}
	}
	if start >= 0 {
		// the text does not end with a separator
		words = append(words, Word{Start: start, End: len(text)})
	}
	return words
}
