package caption

import (
	"fmt"

	"go.uber.org/multierr"
)

// Validate reports every structural problem of c. Selection and rendering
// never call it; malformed cues still render, possibly garbled.
func (c Cue) Validate() error {
	var err error

	if c.Start > c.End {
		err = multierr.Append(err, fmt.Errorf(
			"%w: start %d is after end %d", ErrInvalidCue, c.Start, c.End,
		))
	}

	length := ContentLength(c.Content)
	for i, s := range c.InlineStyles {
		if _, _, serr := s.Style.Tags(); serr != nil {
			err = multierr.Append(err, fmt.Errorf("%w: span %d: %w", ErrInvalidCue, i, serr))
		}
		if s.Offset < 0 {
			err = multierr.Append(err, fmt.Errorf(
				"%w: span %d: negative offset %d", ErrInvalidCue, i, s.Offset,
			))
		}
		if s.Length < 0 {
			err = multierr.Append(err, fmt.Errorf(
				"%w: span %d: negative length %d", ErrInvalidCue, i, s.Length,
			))
		}
		if s.End() > length {
			err = multierr.Append(err, fmt.Errorf(
				"%w: span %d: ends at %d past content length %d",
				ErrInvalidCue, i, s.End(), length,
			))
		}
	}

	return err
}

// ValidateAll validates every cue and prefixes problems with the cue index.
func ValidateAll(cues []Cue) error {
	var err error
	for i, c := range cues {
		if cerr := c.Validate(); cerr != nil {
			for _, e := range multierr.Errors(cerr) {
				err = multierr.Append(err, fmt.Errorf("cue %d: %w", i, e))
			}
		}
	}
	return err
}
