package caption

import "strings"

const (
	bottomOffsetPx = 40
	topOffsetPx    = 10
	middleGapPx    = 10
)

// edge a container is anchored to
type Edge string

const (
	EdgeTop    Edge = "top"
	EdgeBottom Edge = "bottom"
)

// vertical anchor and distance from it in pixels
type Vertical struct {
	Edge     Edge
	OffsetPx float64
}

// Layout tells the rendering layer where a container goes.
type Layout struct {
	Align    string
	Vertical Vertical
}

// PositionKey identifies a container. It is the raw declared position pair,
// so cues that land on the same pixels through different declarations still
// get separate containers.
type PositionKey struct {
	Horizontal HorizontalPosition
	Vertical   VerticalPosition
}

func (k PositionKey) String() string {
	return orUndefined(string(k.Horizontal)) + "-" + orUndefined(string(k.Vertical))
}

func orUndefined(s string) string {
	if s == "" {
		return "undefined"
	}
	return s
}

// KeyOf returns the container key of c.
func KeyOf(c Cue) PositionKey {
	return PositionKey{
		Horizontal: c.HorizontalPosition,
		Vertical:   c.VerticalPosition,
	}
}

// Resolve maps the declared position of c to a layout. viewportHeight is
// only used for MIDDLE placement.
func Resolve(c Cue, viewportHeight float64) Layout {
	align := "center"
	if c.HorizontalPosition != "" {
		align = strings.ToLower(string(c.HorizontalPosition))
	}

	return Layout{
		Align:    align,
		Vertical: resolveVertical(c.VerticalPosition, viewportHeight),
	}
}

func resolveVertical(vp VerticalPosition, viewportHeight float64) Vertical {
	switch vp {
	case VerticalMiddle:
		return Vertical{Edge: EdgeTop, OffsetPx: viewportHeight/3 + middleGapPx}
	case VerticalTop:
		return Vertical{Edge: EdgeTop, OffsetPx: topOffsetPx}
	default:
		// BOTTOM, absent and unrecognized values
		return Vertical{Edge: EdgeBottom, OffsetPx: bottomOffsetPx}
	}
}
