package correlate

import (
	"testing"

	"timewalker/internal/keyframe"
	"timewalker/internal/vtreplay"
)

func TestCorrelateEmptyStatesReturnsEmptyMap(t *testing.T) {
	result := Correlate(nil, []keyframe.Frame{{Label: "a", Offset: 5}})
	if len(result) != 0 {
		t.Fatalf("expected empty map, got %+v", result)
	}
}

func TestCorrelatePicksFirstStateAtOrAfterOffset(t *testing.T) {
	states := []vtreplay.ScreenState{
		{Offset: 0},
		{Offset: 10},
		{Offset: 20},
	}
	keyframes := []keyframe.Frame{
		{Label: "early", Offset: 5},
		{Label: "exact", Offset: 10},
		{Label: "late", Offset: 100},
	}

	result := Correlate(states, keyframes)

	if result["early"].Offset != 10 {
		t.Fatalf("early -> offset %d, want 10", result["early"].Offset)
	}
	if result["exact"].Offset != 10 {
		t.Fatalf("exact -> offset %d, want 10", result["exact"].Offset)
	}
	if result["late"].Offset != 20 {
		t.Fatalf("late -> offset %d, want fallback to last state (20)", result["late"].Offset)
	}
}
