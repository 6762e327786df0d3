package handler

import (
	"github.com/vpclogistics/dispatch-widget/internal/core/domain"
	"github.com/vpclogistics/dispatch-widget/internal/core/ports"
)

// --- Request → Service input ---

func toInputPatch(req updateInputRequest) ports.InputPatch {
	var patch ports.InputPatch
	if req.Pickup != nil {
		p := domain.PickupPoint(*req.Pickup)
		patch.Pickup = &p
	}
	if req.Destination != nil {
		d := *req.Destination
		patch.Destination = &d
	}
	if req.Container != nil {
		c := domain.ContainerType(*req.Container)
		patch.Container = &c
	}
	if req.When != nil {
		t := domain.Timing(*req.When)
		patch.Timing = &t
	}
	return patch
}

func toBookingInput(q estimateQuery) domain.BookingInput {
	return domain.BookingInput{
		Pickup:        domain.PickupPoint(q.Pickup),
		Destination:   q.Destination,
		ContainerType: domain.ContainerType(q.Container),
	}
}

// --- Domain → Response ---

func toViewResponse(v domain.WidgetView) viewResponse {
	resp := viewResponse{
		Stage:   v.Stage.String(),
		Stepper: make([]stepResponse, 0, len(v.Stepper)),
	}
	for _, s := range v.Stepper {
		resp.Stepper = append(resp.Stepper, stepResponse{
			Stage:   s.Stage.String(),
			Label:   s.Label,
			Active:  s.Active,
			Enabled: s.Enabled,
		})
	}

	if d := v.Details; d != nil {
		resp.Details = &detailsViewResponse{
			Input:              toInputResponse(d.Input),
			Summary:            d.Summary,
			Prompt:             d.Prompt,
			Estimate:           toEstimateResponse(d.Estimate),
			CanRequestDispatch: d.CanRequestDispatch,
		}
	}

	if d := v.Dispatch; d != nil {
		resp.Dispatch = &dispatchViewResponse{
			Headline:     d.Headline,
			Route:        d.Route,
			EstimateLine: d.EstimateLine,
			Driver:       driverResponse{Name: d.Driver.Name, Vehicle: d.Driver.Vehicle},
			DocsTitle:    d.DocsTitle,
			DocsNote:     d.DocsNote,
			OpsLog:       d.OpsLog,
		}
	}

	if t := v.Track; t != nil {
		milestones := make([]milestoneResponse, 0, len(t.Milestones))
		for _, m := range t.Milestones {
			milestones = append(milestones, milestoneResponse{Label: m.Label, Active: m.Active})
		}
		resp.Track = &trackViewResponse{
			Headline:     t.Headline,
			Cadence:      t.Cadence,
			Milestones:   milestones,
			OriginMarker: t.OriginMarker,
			DropMarker:   t.DropMarker,
		}
	}
	return resp
}

func toInputResponse(in domain.BookingInput) inputResponse {
	return inputResponse{
		Pickup:         string(in.Pickup),
		PickupLabel:    in.Pickup.Label(),
		Destination:    in.Destination,
		Container:      string(in.ContainerType),
		ContainerLabel: in.ContainerType.Label(),
		When:           string(in.Timing),
		WhenLabel:      in.Timing.Label(),
	}
}

func toEstimateResponse(est *domain.Estimate) *estimateResponse {
	if est == nil {
		return nil
	}
	return &estimateResponse{
		PriceRange:     est.PriceRange(),
		PriceRangeLow:  est.PriceRangeLow,
		PriceRangeHigh: est.PriceRangeHigh,
		PickupETA:      est.PickupETA,
		DropoffETA:     est.DropoffETA,
	}
}

func toHandoffResponse(h *domain.HandoffResult) *handoffResponse {
	if h == nil {
		return nil
	}
	resp := &handoffResponse{Link: h.Link, Outcome: h.Outcome.String()}
	if h.Fallback != nil {
		resp.Fallback = &fallbackResponse{Anchor: h.Fallback.Anchor, Behavior: h.Fallback.Behavior}
	}
	return resp
}
