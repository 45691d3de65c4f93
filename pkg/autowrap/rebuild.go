package autowrap

// Rebuild returns a copy of text laid out according to lines. Every separator
// becomes a space, except the one right after the last word of each line,
// which becomes a newline. The result has as many characters as text.
func Rebuild(text []rune, words []Word, lines []Segment) []rune {
	out := make([]rune, len(text))
	copy(out, text)

	prevEnd := 0
	for _, w := range words {
		for i := prevEnd; i < w.Start; i++ {
			out[i] = ' '
		}
		prevEnd = w.End
	}
	// trailing separators
	for i := prevEnd; i < len(out); i++ {
		out[i] = ' '
	}

	for _, line := range lines {
		if line.Length <= 0 {
			continue
		}
		if end := words[line.Last()].End; end < len(out) {
			out[end] = '\n'
		}
	}
	return out
}
