package subtitle

import (
	"context"
	"fmt"

	"github.com/insomniacslk/autowrap/pkg/autowrap"
)

// Wrap reflows the text of the selected cues and returns how many cues were
// wrapped. It returns autowrap.ErrEmptySelection if no cue is selected, in
// which case the document is left untouched.
func (d *Document) Wrap(ctx context.Context, sel Selection, opts autowrap.Options) (int, error) {
	indices := d.Select(sel)
	wrapped, err := autowrap.WrapBlocks(ctx, d.Texts(indices), opts)
	if err != nil {
		return 0, fmt.Errorf("failed to wrap text into lines: %w", err)
	}
	if err := d.SetTexts(indices, wrapped); err != nil {
		return 0, err
	}
	log.Debugf("Wrapped %d of %d cues", len(indices), len(d.Cues))
	return len(indices), nil
}
