package player

import (
	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"

	"github.com/mgpai22/cueview/internal/caption"
)

// what was last handed to the sink
type displayState struct {
	Cues   []caption.Cue
	Height float64
}

// Session renders one caption track for one host. Sessions share nothing, so
// several players can run side by side; a single session must be driven from
// one goroutine.
type Session struct {
	host  Host
	sink  Sink
	track *caption.Track
	log   *zap.Logger

	strictStyles bool

	display *displayState
	started bool
	closed  bool
}

type Option func(*Session)

// WithLogger sets the logger, a no-op logger is used otherwise.
func WithLogger(log *zap.Logger) Option {
	return func(s *Session) {
		if log != nil {
			s.log = log
		}
	}
}

// WithCaptions sets the initial cues.
func WithCaptions(cues []caption.Cue) Option {
	return func(s *Session) {
		s.track.SetCaptions(cues)
	}
}

// WithLanguage sets the initial language.
func WithLanguage(lang caption.Language) Option {
	return func(s *Session) {
		s.track.SetLanguage(lang)
	}
}

// WithStrictStyles makes a cue with an unknown style span render as plain
// text instead of skipping the unknown span.
func WithStrictStyles(strict bool) Option {
	return func(s *Session) {
		s.strictStyles = strict
	}
}

func NewSession(host Host, sink Sink, opts ...Option) *Session {
	s := &Session{
		host:  host,
		sink:  sink,
		track: caption.NewTrack(),
		log:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start renders the first frame at the host's current time and tells the host
// captions are ready. Ticks before Start are ignored.
func (s *Session) Start() error {
	if s.closed {
		return ErrClosed
	}
	if s.started {
		return ErrStarted
	}
	s.started = true

	s.warnInvalid(s.track.Cues())
	s.update(true)
	s.host.Ready()

	s.log.Debug("Captions ready",
		zap.Int("cues", len(s.track.Cues())),
		zap.String("direction", string(s.track.Language().Direction)),
	)
	return nil
}

// Tick re-renders for the host's current time. Nothing is sent to the sink
// when the active cues and viewport are unchanged.
func (s *Session) Tick() {
	if !s.live() {
		return
	}
	s.update(false)
}

// SetCaptions replaces the whole track and re-renders at the current time.
func (s *Session) SetCaptions(cues []caption.Cue) {
	if s.closed {
		return
	}
	s.track.SetCaptions(cues)
	if !s.started {
		return
	}
	s.warnInvalid(cues)
	s.update(false)
}

// SetLanguage updates the direction and applies it to rendered text at once.
func (s *Session) SetLanguage(lang caption.Language) {
	if s.closed {
		return
	}
	s.track.SetLanguage(lang)
	if !s.started {
		return
	}
	s.sink.SetDirection(s.track.Language().Direction)
}

// Close clears the sink. Every later call is a no-op.
func (s *Session) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.display = nil
	s.sink.Clear()
}

// Track exposes the session's captions and language.
func (s *Session) Track() *caption.Track {
	return s.track
}

// Frame derives what is on screen at ms without touching the sink.
func (s *Session) Frame(ms int64, viewportHeight float64) Frame {
	return s.compose(ms, s.track.Active(ms), viewportHeight)
}

func (s *Session) live() bool {
	return s.started && !s.closed
}

func (s *Session) update(force bool) {
	ms := s.host.CurrentTime().Milliseconds()
	next := displayState{
		Cues:   s.track.Active(ms),
		Height: s.host.ViewportHeight(),
	}

	if !force && s.display != nil && cmp.Equal(*s.display, next) {
		return
	}
	s.display = &next

	if len(next.Cues) == 0 {
		s.log.Debug("Clearing captions", zap.Int64("time_ms", ms))
		s.sink.Clear()
		return
	}

	frame := s.compose(ms, next.Cues, next.Height)
	s.log.Debug("Rendering captions",
		zap.Int64("time_ms", ms),
		zap.Int("cues", len(next.Cues)),
		zap.Int("containers", len(frame.Containers)),
	)
	s.sink.Render(frame)
}

func (s *Session) compose(ms int64, active []caption.Cue, height float64) Frame {
	frame := Frame{
		Time:      ms,
		Direction: s.track.Language().Direction,
	}

	for _, g := range caption.GroupByPosition(active, height) {
		container := Container{
			Key:     g.Key,
			Layout:  g.Layout,
			Entries: make([]Entry, 0, len(g.Cues)),
		}
		for _, c := range g.Cues {
			container.Entries = append(container.Entries, Entry{
				Cue:    c,
				Markup: s.markup(c),
			})
		}
		frame.Containers = append(frame.Containers, container)
	}

	return frame
}

func (s *Session) markup(c caption.Cue) string {
	markup, err := caption.Render(c)
	if err == nil {
		return markup
	}

	if s.strictStyles {
		s.log.Error("Rendering cue without styles",
			zap.Int64("start", c.Start),
			zap.Error(err),
		)
		markup, _ = caption.Render(caption.Cue{Content: c.Content})
		return markup
	}

	// already reported once by warnInvalid
	s.log.Debug("Skipping unknown style spans",
		zap.Int64("start", c.Start),
		zap.Error(err),
	)
	markup, _ = caption.Renderer{SkipUnknown: true}.Render(c)
	return markup
}

func (s *Session) warnInvalid(cues []caption.Cue) {
	if err := caption.ValidateAll(cues); err != nil {
		s.log.Warn("Caption track has malformed cues", zap.Error(err))
	}
}
