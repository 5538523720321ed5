package caption

// Group is the set of cues sharing one container.
type Group struct {
	Key    PositionKey
	Layout Layout
	Cues   []Cue
}

// GroupByPosition buckets cues by raw position key. Groups appear in the
// order their first cue does and keep cue order inside. The layout of a group
// comes from its first cue.
func GroupByPosition(cues []Cue, viewportHeight float64) []Group {
	var groups []Group
	index := make(map[PositionKey]int)

	for _, c := range cues {
		key := KeyOf(c)
		if i, ok := index[key]; ok {
			groups[i].Cues = append(groups[i].Cues, c)
			continue
		}
		index[key] = len(groups)
		groups = append(groups, Group{
			Key:    key,
			Layout: Resolve(c, viewportHeight),
			Cues:   []Cue{c},
		})
	}

	return groups
}
