package subtitle

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidSelection is returned by ParseSelection for malformed input.
var ErrInvalidSelection = errors.New("invalid selection")

type span struct {
	first, last int
}

// Selection is a set of 1-based cue positions. The zero value selects every
// cue.
type Selection struct {
	spans []span
}

// ParseSelection parses a comma-separated list of positions and inclusive
// ranges, like "1,3-5". An empty string selects everything.
func ParseSelection(s string) (Selection, error) {
	var sel Selection
	if strings.TrimSpace(s) == "" {
		return sel, nil
	}
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		first, last, isRange := strings.Cut(item, "-")
		if !isRange {
			last = first
		}
		a, err := strconv.Atoi(strings.TrimSpace(first))
		if err != nil {
			return Selection{}, fmt.Errorf("%w: '%s' is not a number or range", ErrInvalidSelection, item)
		}
		b, err := strconv.Atoi(strings.TrimSpace(last))
		if err != nil {
			return Selection{}, fmt.Errorf("%w: '%s' is not a number or range", ErrInvalidSelection, item)
		}
		if a < 1 || b < a {
			return Selection{}, fmt.Errorf("%w: bad range '%s'", ErrInvalidSelection, item)
		}
		sel.spans = append(sel.spans, span{first: a, last: b})
	}
	return sel, nil
}

// All returns true if the selection contains every cue.
func (s Selection) All() bool {
	return len(s.spans) == 0
}

// Contains returns true if the 1-based position pos is selected.
func (s Selection) Contains(pos int) bool {
	if s.All() {
		return true
	}
	for _, sp := range s.spans {
		if pos >= sp.first && pos <= sp.last {
			return true
		}
	}
	return false
}

// Select returns the 0-based indices into d.Cues of the selected cues, in
// document order. Selected positions past the end of the document are
// ignored.
func (d *Document) Select(sel Selection) []int {
	var selected []int
	for idx := range d.Cues {
		if sel.Contains(idx + 1) {
			selected = append(selected, idx)
		}
	}
	return selected
}

// Texts returns the text of the cues at the given indices.
func (d *Document) Texts(indices []int) []string {
	texts := make([]string, 0, len(indices))
	for _, idx := range indices {
		texts = append(texts, d.Cues[idx].Text)
	}
	return texts
}

// SetTexts replaces the text of the cues at the given indices.
func (d *Document) SetTexts(indices []int, texts []string) error {
	if len(indices) != len(texts) {
		return fmt.Errorf("got %d texts for %d cues", len(texts), len(indices))
	}
	for i, idx := range indices {
		if idx < 0 || idx >= len(d.Cues) {
			return fmt.Errorf("cue index %d out of range", idx)
		}
		d.Cues[idx].Text = texts[i]
	}
	return nil
}
