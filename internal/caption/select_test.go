package caption

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSelectActiveBoundaries(t *testing.T) {
	cues := []Cue{{Start: 0, End: 3000, Content: "foo"}}

	tests := []struct {
		at   int64
		want int
	}{
		{-1, 0},
		{0, 1},
		{1500, 1},
		{3000, 1},
		{3001, 0},
	}

	for _, tt := range tests {
		got := SelectActive(cues, tt.at)
		if len(got) != tt.want {
			t.Errorf("SelectActive(t=%d) returned %d cues, want %d", tt.at, len(got), tt.want)
		}
	}
}

func TestSelectActivePreservesOrder(t *testing.T) {
	cues := []Cue{
		{Start: 500, End: 2000, Content: "A"},
		{Start: 0, End: 100, Content: "gone"},
		{Start: 0, End: 3000, Content: "B", VerticalPosition: VerticalTop},
		{Start: 1000, End: 1000, Content: "C"},
	}

	got := SelectActive(cues, 1000)
	want := []Cue{cues[0], cues[2], cues[3]}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("SelectActive() mismatch (-want +got):\n%s", diff)
	}

	again := SelectActive(cues, 1000)
	if !cmp.Equal(got, again) {
		t.Errorf("SelectActive() not deterministic")
	}
}

func TestSelectActiveEmpty(t *testing.T) {
	if got := SelectActive(nil, 0); len(got) != 0 {
		t.Errorf("expected no cues from empty track, got %d", len(got))
	}

	inverted := []Cue{{Start: 2000, End: 1000, Content: "never"}}
	for _, at := range []int64{999, 1000, 1500, 2000} {
		if got := SelectActive(inverted, at); len(got) != 0 {
			t.Errorf("inverted cue active at %d", at)
		}
	}
}

func TestTrack(t *testing.T) {
	track := NewTrack()
	if track.Language().Direction != DirectionLTR {
		t.Errorf("default direction = %q, want ltr", track.Language().Direction)
	}
	if len(track.Cues()) != 0 {
		t.Errorf("new track has %d cues", len(track.Cues()))
	}

	cues := []Cue{
		{Start: 0, End: 1000, Content: "one"},
		{Start: 500, End: 4000, Content: "two"},
	}
	track.SetCaptions(cues)
	cues[0].Content = "mutated"

	if track.Cues()[0].Content != "one" {
		t.Errorf("track shares caller slice")
	}
	if got := track.Duration(); got != 4000 {
		t.Errorf("Duration() = %d, want 4000", got)
	}
	if got := track.Active(750); len(got) != 2 {
		t.Errorf("Active(750) returned %d cues, want 2", len(got))
	}

	track.SetCaptions(nil)
	if len(track.Cues()) != 0 || track.Duration() != 0 {
		t.Errorf("SetCaptions(nil) did not replace the track")
	}

	track.SetLanguage(Language{Direction: "RTL"})
	if track.Language().Direction != DirectionRTL {
		t.Errorf("direction = %q, want rtl", track.Language().Direction)
	}
	track.SetLanguage(Language{})
	if track.Language().Direction != DirectionLTR {
		t.Errorf("empty direction = %q, want ltr", track.Language().Direction)
	}
}
