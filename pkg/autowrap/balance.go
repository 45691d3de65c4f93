package autowrap

// Balance evens out the lengths of the lines produced by Pack. It repeatedly
// moves the last word of a line to the beginning of the line below, as long as
// that does not make the difference between the two lines larger and the line
// below does not grow past maxcpl. The segments are modified in place.
func Balance(lines []Segment, words []Word, maxcpl int) {
	if len(lines) < 2 {
		return
	}
	// Words only ever move down, so the number of useful passes is bounded by
	// the number of possible moves.
	maxPasses := len(words)*len(lines) + 1
	for pass := 1; ; pass++ {
		if !snakeWordsDown(lines, words, maxcpl) {
			log.Debugf("Balanced %d lines in %d passes", len(lines), pass)
			return
		}
		if pass >= maxPasses {
			log.Warningf("Giving up balancing %d lines after %d passes", len(lines), pass)
			return
		}
	}
}

// snakeWordsDown runs a single balancing pass over all line pairs, from the
// bottom up. It returns true if at least one word was moved.
func snakeWordsDown(lines []Segment, words []Word, maxcpl int) bool {
	moved := false
	botLen := LineLength(lines[len(lines)-1], words)
	for li := len(lines) - 1; li > 0; li-- {
		top, bot := &lines[li-1], &lines[li]
		topLen := LineLength(*top, words)
		diff := topLen - botLen
		// a line always keeps at least one word
		if diff > 0 && top.Length > 1 {
			wordLen := words[top.Last()].Len()
			newBotLen := botLen + wordLen
			if botLen > 0 {
				newBotLen++
			}
			// the top line keeps at least one word, so it loses a space too
			newTopLen := topLen - wordLen - 1
			if abs(newTopLen-newBotLen) <= diff && newBotLen <= maxcpl {
				top.Length--
				bot.Index--
				bot.Length++
				topLen = newTopLen
				moved = true
			}
		}
		botLen = topLen
	}
	return moved
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
