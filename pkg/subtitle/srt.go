package subtitle

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseSRT reads a SubRip file. Each cue is a numeric index line, a timing
// line containing "-->" and one or more lines of text, and cues are separated
// by blank lines.
func ParseSRT(r io.Reader) (*Document, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, err
	}
	doc := Document{Format: FormatSRT}
	for i := 0; i < len(lines); {
		if isBlank(lines[i]) {
			i++
			continue
		}
		index, err := strconv.Atoi(strings.TrimSpace(lines[i]))
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: invalid cue index '%s'", ErrMalformed, i+1, lines[i])
		}
		i++
		if i >= len(lines) || !strings.Contains(lines[i], "-->") {
			return nil, fmt.Errorf("%w: line %d: missing timing line for cue %d", ErrMalformed, i+1, index)
		}
		timing := strings.TrimSpace(lines[i])
		i++
		var text []string
		for ; i < len(lines) && !isBlank(lines[i]); i++ {
			text = append(text, lines[i])
		}
		doc.Cues = append(doc.Cues, Cue{Index: index, Timing: timing, Text: strings.Join(text, "\n")})
	}
	log.Debugf("Parsed %d SubRip cues", len(doc.Cues))
	return &doc, nil
}
