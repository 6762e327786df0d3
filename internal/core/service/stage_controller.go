package service

import (
	"github.com/vpclogistics/dispatch-widget/internal/core/domain"
	"github.com/vpclogistics/dispatch-widget/internal/core/ports"
	"github.com/vpclogistics/dispatch-widget/pkg/metrics"
)

// StageController is the widget's three-stage state machine. Illegal
// transition requests are no-ops: they return false and leave the stage
// untouched.
type StageController struct {
	stage   domain.Stage
	tracker ports.Tracker
}

// NewStageController starts a controller at the given stage. An invalid
// stage falls back to Details.
func NewStageController(initial domain.Stage, tracker ports.Tracker) *StageController {
	if !initial.Valid() {
		initial = domain.StageDetails
	}
	return &StageController{stage: initial, tracker: tracker}
}

// Stage returns the current stage.
func (c *StageController) Stage() domain.Stage { return c.stage }

func (c *StageController) CanOpenDispatch(in domain.BookingInput) bool {
	return domain.CanOpenDispatch(in)
}

func (c *StageController) CanOpenTrack() bool {
	return domain.CanOpenTrack(c.stage)
}

// AdvanceToDispatch moves Details → Dispatch when the match signal holds,
// emits dispatch_request and then calls handoff. It returns false, without
// emitting anything, when the guard rejects the request.
func (c *StageController) AdvanceToDispatch(in domain.BookingInput, handoff func()) bool {
	if c.stage != domain.StageDetails || !c.CanOpenDispatch(in) {
		metrics.GuardRejectionsTotal.WithLabelValues("advance_to_dispatch").Inc()
		return false
	}

	c.moveTo(domain.StageDispatch)
	c.tracker.Track(domain.EventDispatchRequest, domain.DispatchRequestProperties(in))
	metrics.DispatchRequestsTotal.Inc()

	if handoff != nil {
		handoff()
	}
	return true
}

// JumpToStage is stepper navigation. Details is always reachable; forward
// stages need their guards.
func (c *StageController) JumpToStage(target domain.Stage, in domain.BookingInput) bool {
	if !domain.CanJumpTo(c.stage, target, in) {
		metrics.GuardRejectionsTotal.WithLabelValues("jump_to_stage").Inc()
		return false
	}
	c.moveTo(target)
	return true
}

// AdvanceToTrack moves Dispatch → Track and emits tracking_open.
func (c *StageController) AdvanceToTrack() bool {
	if c.stage != domain.StageDispatch {
		metrics.GuardRejectionsTotal.WithLabelValues("advance_to_track").Inc()
		return false
	}
	c.moveTo(domain.StageTrack)
	c.tracker.Track(domain.EventTrackingOpen, map[string]string{"source": domain.SourceDispatchCard})
	return true
}

// Reset returns to Details and emits dispatch_reset. The draft is not
// touched.
func (c *StageController) Reset() {
	c.moveTo(domain.StageDetails)
	c.tracker.Track(domain.EventDispatchReset, map[string]string{"source": domain.SourceDispatchCard})
}

func (c *StageController) moveTo(next domain.Stage) {
	if next != c.stage {
		metrics.StageTransitionsTotal.WithLabelValues(c.stage.String(), next.String()).Inc()
	}
	c.stage = next
}
