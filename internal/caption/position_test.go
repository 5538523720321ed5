package caption

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name   string
		cue    Cue
		height float64
		want   Layout
	}{
		{
			name:   "defaults",
			cue:    Cue{},
			height: 300,
			want:   Layout{Align: "center", Vertical: Vertical{Edge: EdgeBottom, OffsetPx: 40}},
		},
		{
			name:   "bottom",
			cue:    Cue{VerticalPosition: VerticalBottom},
			height: 300,
			want:   Layout{Align: "center", Vertical: Vertical{Edge: EdgeBottom, OffsetPx: 40}},
		},
		{
			name:   "middle scales with viewport",
			cue:    Cue{VerticalPosition: VerticalMiddle},
			height: 300,
			want:   Layout{Align: "center", Vertical: Vertical{Edge: EdgeTop, OffsetPx: 110}},
		},
		{
			name:   "middle on a taller viewport",
			cue:    Cue{VerticalPosition: VerticalMiddle},
			height: 720,
			want:   Layout{Align: "center", Vertical: Vertical{Edge: EdgeTop, OffsetPx: 250}},
		},
		{
			name:   "top",
			cue:    Cue{HorizontalPosition: HorizontalLeft, VerticalPosition: VerticalTop},
			height: 300,
			want:   Layout{Align: "left", Vertical: Vertical{Edge: EdgeTop, OffsetPx: 10}},
		},
		{
			name:   "unrecognized vertical falls back to bottom",
			cue:    Cue{HorizontalPosition: HorizontalRight, VerticalPosition: "SIDEWAYS"},
			height: 300,
			want:   Layout{Align: "right", Vertical: Vertical{Edge: EdgeBottom, OffsetPx: 40}},
		},
		{
			name:   "free-form horizontal is lower-cased",
			cue:    Cue{HorizontalPosition: "Justify"},
			height: 300,
			want:   Layout{Align: "justify", Vertical: Vertical{Edge: EdgeBottom, OffsetPx: 40}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(tt.cue, tt.height)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Resolve() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestGroupByPosition(t *testing.T) {
	cues := []Cue{
		{Start: 0, End: 3000, Content: "foo"},
		{Start: 0, End: 3000, Content: "bar!", VerticalPosition: VerticalTop},
		{Start: 0, End: 3000, Content: "baz"},
		// same pixels as the unpositioned cues, different declaration
		{Start: 0, End: 3000, Content: "qux", VerticalPosition: VerticalBottom},
	}

	groups := GroupByPosition(cues, 300)
	if len(groups) != 3 {
		t.Fatalf("expected 3 groups, got %d", len(groups))
	}

	if groups[0].Key != (PositionKey{}) {
		t.Errorf("group 0 key = %v, want undefined-undefined", groups[0].Key)
	}
	if len(groups[0].Cues) != 2 ||
		groups[0].Cues[0].Content != "foo" ||
		groups[0].Cues[1].Content != "baz" {
		t.Errorf("group 0 cues = %+v", groups[0].Cues)
	}
	if groups[1].Key.Vertical != VerticalTop || len(groups[1].Cues) != 1 {
		t.Errorf("group 1 = %+v", groups[1])
	}
	if groups[2].Key.Vertical != VerticalBottom {
		t.Errorf("group 2 key = %v", groups[2].Key)
	}
	if groups[0].Layout != groups[2].Layout {
		t.Errorf("bottom and default layouts differ: %+v vs %+v", groups[0].Layout, groups[2].Layout)
	}
}

func TestPositionKeyString(t *testing.T) {
	tests := []struct {
		key  PositionKey
		want string
	}{
		{PositionKey{}, "undefined-undefined"},
		{PositionKey{Vertical: VerticalTop}, "undefined-TOP"},
		{PositionKey{Horizontal: HorizontalLeft, Vertical: VerticalMiddle}, "LEFT-MIDDLE"},
	}

	for _, tt := range tests {
		if got := tt.key.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

// an explicitly empty position is not told apart from an absent one
func TestKeyOfEmptyPositionMatchesAbsent(t *testing.T) {
	absent := KeyOf(Cue{Content: "a"})
	empty := KeyOf(Cue{Content: "b", HorizontalPosition: "", VerticalPosition: VerticalTop})

	if empty.String() != "undefined-TOP" {
		t.Errorf("String() = %q, want %q", empty.String(), "undefined-TOP")
	}
	if absent.Horizontal != empty.Horizontal {
		t.Errorf("horizontal keys differ: %q vs %q", absent.Horizontal, empty.Horizontal)
	}

	groups := GroupByPosition([]Cue{
		{Content: "a", VerticalPosition: VerticalTop},
		{Content: "b", HorizontalPosition: "", VerticalPosition: VerticalTop},
	}, 300)
	if len(groups) != 1 || len(groups[0].Cues) != 2 {
		t.Errorf("expected one shared container, got %d groups", len(groups))
	}
}
