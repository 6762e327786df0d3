package service

import (
	"github.com/vpclogistics/dispatch-widget/internal/core/domain"
	"github.com/vpclogistics/dispatch-widget/internal/core/ports"
)

// DispatchWidget owns one draft and one stage controller and maps user
// actions onto them. It is not safe for concurrent use; callers serialise
// access per widget.
type DispatchWidget struct {
	input      domain.BookingInput
	controller *StageController
	handoff    *ExternalHandoff
	tracker    ports.Tracker
}

// NewDispatchWidget mounts a widget with an empty draft at Details.
func NewDispatchWidget(tracker ports.Tracker, handoff *ExternalHandoff) *DispatchWidget {
	return RestoreDispatchWidget(domain.BookingInput{}, domain.StageDetails, tracker, handoff)
}

// RestoreDispatchWidget rebuilds a widget from a stored draft and stage.
func RestoreDispatchWidget(in domain.BookingInput, stage domain.Stage, tracker ports.Tracker, handoff *ExternalHandoff) *DispatchWidget {
	return &DispatchWidget{
		input:      in,
		controller: NewStageController(stage, tracker),
		handoff:    handoff,
		tracker:    tracker,
	}
}

func (w *DispatchWidget) Input() domain.BookingInput { return w.input }

func (w *DispatchWidget) Stage() domain.Stage { return w.controller.Stage() }

// Estimate is recomputed from the current draft on every call.
func (w *DispatchWidget) Estimate() *domain.Estimate {
	return domain.EstimateForInput(w.input)
}

// Message is the handoff text for the current draft.
func (w *DispatchWidget) Message() string {
	return domain.ComposeMessage(w.input, w.Estimate())
}

func (w *DispatchWidget) View() domain.WidgetView {
	return domain.BuildView(w.input, w.controller.Stage())
}

func (w *DispatchWidget) SetPickup(p domain.PickupPoint) error {
	if p != domain.PickupNone && !p.Valid() {
		return domain.ErrInvalidOption
	}
	w.input.Pickup = p
	return nil
}

// SetDestination stores free text; surrounding whitespace is dropped and
// long values are truncated.
func (w *DispatchWidget) SetDestination(dest string) {
	w.input.Destination = domain.NormalizeDestination(dest)
}

func (w *DispatchWidget) SetContainer(c domain.ContainerType) error {
	if c != domain.ContainerNone && !c.Valid() {
		return domain.ErrInvalidOption
	}
	w.input.ContainerType = c
	return nil
}

func (w *DispatchWidget) SetTiming(t domain.Timing) error {
	if t != domain.TimingNone && !t.Valid() {
		return domain.ErrInvalidOption
	}
	w.input.Timing = t
	return nil
}

// Apply sets every non-nil field of patch. The patch is checked in full
// before anything is written, so a bad value leaves the draft unchanged.
func (w *DispatchWidget) Apply(patch ports.InputPatch) error {
	if patch.Pickup != nil && *patch.Pickup != domain.PickupNone && !patch.Pickup.Valid() {
		return domain.ErrInvalidOption
	}
	if patch.Container != nil && *patch.Container != domain.ContainerNone && !patch.Container.Valid() {
		return domain.ErrInvalidOption
	}
	if patch.Timing != nil && *patch.Timing != domain.TimingNone && !patch.Timing.Valid() {
		return domain.ErrInvalidOption
	}

	if patch.Pickup != nil {
		_ = w.SetPickup(*patch.Pickup)
	}
	if patch.Destination != nil {
		w.SetDestination(*patch.Destination)
	}
	if patch.Container != nil {
		_ = w.SetContainer(*patch.Container)
	}
	if patch.Timing != nil {
		_ = w.SetTiming(*patch.Timing)
	}
	return nil
}

// RequestDispatch is the primary action. When the guards allow it the
// widget advances to Dispatch and hands off the composed message; fallback
// runs if the handoff is blocked. A nil result means the request was a
// no-op.
func (w *DispatchWidget) RequestDispatch(fallback func(domain.Fallback)) *domain.HandoffResult {
	var result *domain.HandoffResult
	message := w.Message()

	w.controller.AdvanceToDispatch(w.input, func() {
		r := w.handoff.RequestHandoff(message, fallback)
		result = &r
	})
	return result
}

func (w *DispatchWidget) JumpToStage(target domain.Stage) bool {
	return w.controller.JumpToStage(target, w.input)
}

func (w *DispatchWidget) StartTracking() bool {
	return w.controller.AdvanceToTrack()
}

func (w *DispatchWidget) Reset() {
	w.controller.Reset()
}

// ClickCTA records one of the secondary links. see-tracking lives on the
// Details view and open-watchtower on the Track view.
func (w *DispatchWidget) ClickCTA(cta string) error {
	var section string
	switch cta {
	case domain.CTASeeTracking:
		section = domain.SectionHeroDispatch
	case domain.CTAOpenWatchTower:
		section = domain.SourceDispatchCard
	default:
		return domain.ErrUnknownCTA
	}
	w.tracker.Track(domain.EventCTAClick, map[string]string{"cta_name": cta, "section": section})
	return nil
}
