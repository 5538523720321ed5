package caption

// Track holds the captions and language of one player. It is not safe for
// concurrent use; each player session owns its own track.
type Track struct {
	cues     []Cue
	language Language
}

// NewTrack returns an empty left-to-right track.
func NewTrack() *Track {
	return &Track{language: DefaultLanguage()}
}

// SetCaptions replaces the whole cue list. The slice is copied so later
// changes by the caller do not leak into rendering.
func (t *Track) SetCaptions(cues []Cue) {
	t.cues = append([]Cue(nil), cues...)
}

// SetLanguage updates the text direction in place.
func (t *Track) SetLanguage(lang Language) {
	t.language = lang.normalized()
}

func (t *Track) Cues() []Cue {
	return t.cues
}

func (t *Track) Language() Language {
	return t.language
}

// Active selects the cues on screen at t milliseconds.
func (t *Track) Active(ms int64) []Cue {
	return SelectActive(t.cues, ms)
}

// Duration is the largest cue end, zero for an empty track.
func (t *Track) Duration() int64 {
	var end int64
	for _, c := range t.cues {
		if c.End > end {
			end = c.End
		}
	}
	return end
}
