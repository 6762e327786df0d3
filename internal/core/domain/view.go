package domain

// The Dispatch and Track views are simulated: nothing here is backed by a
// real driver, truck or tracking feed.

const (
	DetailsPrompt   = "Add pickup + drop‑off to generate an ETA and rate estimate."
	EstimatePending = "Generating estimate…"
)

var simulatedOpsLog = []string{
	"Request accepted",
	"Route confirmed",
	"Driver assigned (availability checked)",
	"Tracking enabled for stakeholders",
}

// StepView is one stepper button.
type StepView struct {
	Stage   Stage
	Label   string
	Active  bool
	Enabled bool
}

// DetailsView is rendered while the visitor is editing the draft.
type DetailsView struct {
	Input              BookingInput
	Summary            string // empty when Prompt is set
	Prompt             string
	Estimate           *Estimate
	CanRequestDispatch bool
}

// DriverCard is the simulated driver assignment.
type DriverCard struct {
	Name    string
	Vehicle string
}

// DispatchView is the optimistic confirmation shown after the handoff.
type DispatchView struct {
	Headline     string
	Route        string
	EstimateLine string
	Driver       DriverCard
	DocsTitle    string
	DocsNote     string
	OpsLog       []string
}

// Milestone is one tracking status chip.
type Milestone struct {
	Label  string
	Active bool
}

// TrackView is the simulated live-tracking panel.
type TrackView struct {
	Headline     string
	Cadence      string
	Milestones   []Milestone
	OriginMarker string
	DropMarker   string
}

// WidgetView is everything a client needs to render the widget. Exactly one
// of Details, Dispatch or Track is set, matching Stage.
type WidgetView struct {
	Stage    Stage
	Stepper  []StepView
	Details  *DetailsView
	Dispatch *DispatchView
	Track    *TrackView
}

// BuildView renders the widget for the given draft and stage. The estimate
// is recomputed from in on every call.
func BuildView(in BookingInput, stage Stage) WidgetView {
	est := EstimateForInput(in)
	v := WidgetView{
		Stage:   stage,
		Stepper: buildStepper(in, stage),
	}

	switch stage {
	case StageDispatch:
		v.Dispatch = buildDispatchView(in, est)
	case StageTrack:
		v.Track = buildTrackView()
	default:
		v.Details = buildDetailsView(in, est)
	}
	return v
}

func buildStepper(in BookingInput, current Stage) []StepView {
	steps := make([]StepView, 0, len(Stages))
	for _, s := range Stages {
		enabled := s <= current ||
			(s == StageDispatch && CanOpenDispatch(in)) ||
			(s == StageTrack && CanOpenTrack(current))
		steps = append(steps, StepView{
			Stage:   s,
			Label:   s.Label(),
			Active:  s == current,
			Enabled: enabled,
		})
	}
	return steps
}

func buildDetailsView(in BookingInput, est *Estimate) *DetailsView {
	dv := &DetailsView{
		Input:              in,
		Summary:            in.Summary(),
		Estimate:           est,
		CanRequestDispatch: CanOpenDispatch(in),
	}
	if dv.Summary == "" {
		dv.Prompt = DetailsPrompt
	}
	return dv
}

func buildDispatchView(in BookingInput, est *Estimate) *DispatchView {
	origin := in.Pickup.Label()
	if origin == "" {
		origin = "Pickup"
	}
	dest := in.Destination
	if dest == "" {
		dest = "Drop‑off"
	}

	line := EstimatePending
	if est != nil {
		line = est.PriceRange() + " • Pickup " + est.PickupETA + " • ETA " + est.DropoffETA
	}

	ops := make([]string, len(simulatedOpsLog))
	copy(ops, simulatedOpsLog)

	return &DispatchView{
		Headline:     "Dispatch confirmed",
		Route:        origin + " → " + dest,
		EstimateLine: line,
		Driver:       DriverCard{Name: "Musa A.", Vehicle: "Truck TB‑041 • Type‑B • Verified"},
		DocsTitle:    "Waybill + POD",
		DocsNote:     "Receipt + audit trail generated at close‑out",
		OpsLog:       ops,
	}
}

func buildTrackView() *TrackView {
	return &TrackView{
		Headline: "Live tracking",
		Cadence:  "Status updates every ~2 minutes • shareable link for terminals + warehouse.",
		Milestones: []Milestone{
			{Label: "At Gate", Active: true},
			{Label: "En Route", Active: true},
			{Label: "Delivered", Active: false},
		},
		OriginMarker: "Apapa",
		DropMarker:   "Drop‑off",
	}
}
