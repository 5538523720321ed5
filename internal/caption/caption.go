package caption

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownStyle is returned when a span names a style outside the closed set.
	ErrUnknownStyle = errors.New("unknown inline style")

	// ErrInvalidCue wraps every problem reported by Cue.Validate.
	ErrInvalidCue = errors.New("invalid cue")
)

// inline formatting applied to a run of cue text
type Style string

const (
	StyleBold      Style = "BOLD"
	StyleItalic    Style = "ITALIC"
	StyleUnderline Style = "UNDERLINE"
)

// Tags returns the opening and closing markup for s.
func (s Style) Tags() (open, close string, err error) {
	switch s {
	case StyleBold:
		return "<b>", "</b>", nil
	case StyleItalic:
		return "<i>", "</i>", nil
	case StyleUnderline:
		return "<u>", "</u>", nil
	default:
		return "", "", fmt.Errorf("%w: %q", ErrUnknownStyle, string(s))
	}
}

// styled run inside cue content, offsets in UTF-16 code units
type StyleSpan struct {
	Style  Style `json:"style" yaml:"style"`
	Offset int   `json:"offset" yaml:"offset"`
	Length int   `json:"length" yaml:"length"`
}

// End is the position right after the styled run.
func (s StyleSpan) End() int {
	return s.Offset + s.Length
}

// declared horizontal placement, free-form values are passed through
type HorizontalPosition string

const (
	HorizontalLeft   HorizontalPosition = "LEFT"
	HorizontalCenter HorizontalPosition = "CENTER"
	HorizontalRight  HorizontalPosition = "RIGHT"
)

// declared vertical placement
type VerticalPosition string

const (
	VerticalTop    VerticalPosition = "TOP"
	VerticalMiddle VerticalPosition = "MIDDLE"
	VerticalBottom VerticalPosition = "BOTTOM"
)

// Cue is a single timed caption. Start and End are milliseconds and the cue
// is on screen for the closed interval [Start, End].
type Cue struct {
	Start              int64              `json:"start" yaml:"start"`
	End                int64              `json:"end" yaml:"end"`
	Content            string             `json:"content" yaml:"content"`
	InlineStyles       []StyleSpan        `json:"inlineStyles,omitempty" yaml:"inlineStyles,omitempty"`
	HorizontalPosition HorizontalPosition `json:"horizontalPosition,omitempty" yaml:"horizontalPosition,omitempty"`
	VerticalPosition   VerticalPosition   `json:"verticalPosition,omitempty" yaml:"verticalPosition,omitempty"`
}

// Active reports whether the cue is on screen at t milliseconds.
func (c Cue) Active(t int64) bool {
	return c.Start <= t && t <= c.End
}

// text direction of rendered captions
type Direction string

const (
	DirectionLTR Direction = "ltr"
	DirectionRTL Direction = "rtl"
)

// Language carries the direction applied to rendered text and the tag it
// was derived from, if any.
type Language struct {
	Code      string    `json:"code,omitempty" yaml:"code,omitempty"`
	Direction Direction `json:"direction" yaml:"direction"`
}

// DefaultLanguage is left-to-right with no tag.
func DefaultLanguage() Language {
	return Language{Direction: DirectionLTR}
}

// normalizes the direction, anything but rtl is ltr
func (l Language) normalized() Language {
	if Direction(strings.ToLower(string(l.Direction))) == DirectionRTL {
		l.Direction = DirectionRTL
	} else {
		l.Direction = DirectionLTR
	}
	return l
}
