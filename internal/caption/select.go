package caption

// SelectActive returns the cues on screen at t milliseconds, in their
// original order. The input slice is never modified.
func SelectActive(cues []Cue, t int64) []Cue {
	var active []Cue
	for _, c := range cues {
		if c.Active(t) {
			active = append(active, c)
		}
	}
	return active
}
