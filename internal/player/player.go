package player

import (
	"errors"
	"time"

	"github.com/mgpai22/cueview/internal/caption"
)

var (
	// ErrClosed is returned when starting a session that was already closed.
	ErrClosed = errors.New("session closed")

	// ErrStarted is returned when a session is started twice.
	ErrStarted = errors.New("session already started")
)

// Host is the player a session renders captions for.
type Host interface {
	// current playback position
	CurrentTime() time.Duration
	// height of the video area in pixels
	ViewportHeight() float64
	// called once the first frame has been handed to the sink
	Ready()
}

// Sink is the rendering layer. It owns the on-screen containers and must
// tolerate calls after it has been torn down.
type Sink interface {
	// Render replaces everything on screen with f, creating one container
	// per entry of f.Containers.
	Render(f Frame)
	// Clear removes every container.
	Clear()
	// SetDirection applies a text direction to the containers on screen.
	SetDirection(dir caption.Direction)
}

// rendered markup of one cue
type Entry struct {
	Cue    caption.Cue
	Markup string
}

// Container is one positioned box holding stacked entries.
type Container struct {
	Key     caption.PositionKey
	Layout  caption.Layout
	Entries []Entry
}

// Frame is everything on screen at one instant.
type Frame struct {
	Time       int64
	Direction  caption.Direction
	Containers []Container
}

// Empty reports whether the frame shows nothing.
func (f Frame) Empty() bool {
	return len(f.Containers) == 0
}

// EntryCount is the number of cues shown across all containers.
func (f Frame) EntryCount() int {
	n := 0
	for _, c := range f.Containers {
		n += len(c.Entries)
	}
	return n
}
