package domain

import "strings"

// Stage is the visible phase of a dispatch widget.
type Stage int

const (
	StageDetails Stage = iota
	StageDispatch
	StageTrack
)

// Stages lists every stage in stepper order.
var Stages = []Stage{StageDetails, StageDispatch, StageTrack}

var stageNames = map[Stage]string{
	StageDetails:  "details",
	StageDispatch: "dispatch",
	StageTrack:    "track",
}

var stageLabels = map[Stage]string{
	StageDetails:  "Details",
	StageDispatch: "Dispatch",
	StageTrack:    "Track",
}

func (s Stage) String() string {
	if name, ok := stageNames[s]; ok {
		return name
	}
	return "unknown"
}

// Label is the stepper caption.
func (s Stage) Label() string { return stageLabels[s] }

// Valid reports whether s is one of the three stages.
func (s Stage) Valid() bool {
	_, ok := stageNames[s]
	return ok
}

// ParseStage maps a wire name ("details", "dispatch", "track") to a Stage.
func ParseStage(name string) (Stage, bool) {
	n := strings.ToLower(strings.TrimSpace(name))
	for s, candidate := range stageNames {
		if candidate == n {
			return s, true
		}
	}
	return StageDetails, false
}

// CanOpenDispatch reports whether the Dispatch stage is reachable for in.
func CanOpenDispatch(in BookingInput) bool {
	return in.HasMatchSignal()
}

// CanOpenTrack reports whether the Track stage is reachable from current.
func CanOpenTrack(current Stage) bool {
	return current != StageDetails
}

// CanJumpTo reports whether the stepper may move from current to target.
// Details is always reachable. Forward targets additionally require the
// match signal, so clearing the destination after dispatch locks Track.
func CanJumpTo(current, target Stage, in BookingInput) bool {
	switch target {
	case StageDetails:
		return true
	case StageDispatch:
		return CanOpenDispatch(in)
	case StageTrack:
		return CanOpenTrack(current) && CanOpenDispatch(in)
	default:
		return false
	}
}
