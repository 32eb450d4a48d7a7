// Package correlate maps keyframe labels recorded during a script run to
// the ScreenState that best represents the terminal at that point in the
// byte stream.
package correlate

import (
	"timewalker/internal/keyframe"
	"timewalker/internal/vtreplay"
)

// Correlate resolves each keyframe to a ScreenState: the first state whose
// Offset is >= the keyframe's Offset, or the last available state if none
// qualifies. It returns an empty map if states is empty.
func Correlate(states []vtreplay.ScreenState, keyframes []keyframe.Frame) map[string]vtreplay.ScreenState {
	result := make(map[string]vtreplay.ScreenState, len(keyframes))
	if len(states) == 0 {
		return result
	}

	for _, kf := range keyframes {
		result[kf.Label] = locateState(states, kf.Offset)
	}
	return result
}

func locateState(states []vtreplay.ScreenState, offset int) vtreplay.ScreenState {
	for _, s := range states {
		if s.Offset >= offset {
			return s
		}
	}
	return states[len(states)-1]
}
