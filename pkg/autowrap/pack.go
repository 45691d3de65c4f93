package autowrap

// Segment is a run of consecutive words that end up on the same output line.
// It covers the words with indices [Index, Index+Length).
type Segment struct {
	Index  int
	Length int
}

// Last returns the index of the last word in the segment.
func (s Segment) Last() int {
	return s.Index + s.Length - 1
}

// LineLength returns the length of the line made of the words in seg, with a
// single space between each pair of words.
func LineLength(seg Segment, words []Word) int {
	if seg.Length <= 0 {
		return 0
	}
	var l int
	for i := seg.Index; i < seg.Index+seg.Length; i++ {
		l += words[i].Len()
	}
	return l + seg.Length - 1
}

// Pack arranges the words into lines of at most maxcpl characters, putting as
// many words as possible on each line. Words are never split: a word longer
// than maxcpl gets a line of its own, which will be longer than maxcpl.
func Pack(words []Word, maxcpl int) []Segment {
	var (
		lines   []Segment
		lineLen int
		first   int
	)
	for idx := 0; idx < len(words); idx++ {
		newLen := lineLen + words[idx].Len()
		if lineLen > 0 {
			// the space before the word
			newLen++
		}
		switch {
		case newLen < maxcpl:
			lineLen = newLen
		case newLen == maxcpl:
			lines = append(lines, Segment{Index: first, Length: idx - first + 1})
			first, lineLen = idx+1, 0
		case idx > first:
			// the word does not fit, close the line before it and try it
			// again on a new line
			lines = append(lines, Segment{Index: first, Length: idx - first})
			first, lineLen = idx, 0
			idx--
		default:
			// a single word longer than the line
			lines = append(lines, Segment{Index: first, Length: 1})
			first, lineLen = idx+1, 0
		}
	}
	if first < len(words) {
		// there's one last line to add
		lines = append(lines, Segment{Index: first, Length: len(words) - first})
	}
	return lines
}
