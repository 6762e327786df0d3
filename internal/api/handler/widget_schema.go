package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

// updateInputRequest is a partial draft update. Absent fields are left
// untouched; an empty string clears the field.
type updateInputRequest struct {
	Pickup      *string `json:"pickup"      validate:"omitempty,pickup_point"`
	Destination *string `json:"destination" validate:"omitempty,max=512"`
	Container   *string `json:"container"   validate:"omitempty,container_type"`
	When        *string `json:"when"        validate:"omitempty,timing"`
}

type requestDispatchRequest struct {
	// PopupAllowed is false when the browser blocked the new tab.
	PopupAllowed *bool `json:"popup_allowed" validate:"required"`
}

type jumpToStageRequest struct {
	Stage string `json:"stage" validate:"required,oneof=details dispatch track"`
}

type ctaRequest struct {
	CTA string `json:"cta" validate:"required"`
}

type estimateQuery struct {
	Pickup      string `query:"pickup"      validate:"omitempty,pickup_point"`
	Destination string `query:"destination" validate:"omitempty,max=512"`
	Container   string `query:"container"   validate:"omitempty,container_type"`
}

// --- Response types ---

type inputResponse struct {
	Pickup         string `json:"pickup"`
	PickupLabel    string `json:"pickup_label"`
	Destination    string `json:"destination"`
	Container      string `json:"container"`
	ContainerLabel string `json:"container_label"`
	When           string `json:"when"`
	WhenLabel      string `json:"when_label"`
}

type estimateResponse struct {
	PriceRange     string `json:"price_range"`
	PriceRangeLow  int64  `json:"price_range_low"`
	PriceRangeHigh int64  `json:"price_range_high"`
	PickupETA      string `json:"pickup_eta"`
	DropoffETA     string `json:"dropoff_eta"`
}

type stepResponse struct {
	Stage   string `json:"stage"`
	Label   string `json:"label"`
	Active  bool   `json:"active"`
	Enabled bool   `json:"enabled"`
}

type detailsViewResponse struct {
	Input              inputResponse     `json:"input"`
	Summary            string            `json:"summary,omitempty"`
	Prompt             string            `json:"prompt,omitempty"`
	Estimate           *estimateResponse `json:"estimate"`
	CanRequestDispatch bool              `json:"can_request_dispatch"`
}

type driverResponse struct {
	Name    string `json:"name"`
	Vehicle string `json:"vehicle"`
}

type dispatchViewResponse struct {
	Headline     string         `json:"headline"`
	Route        string         `json:"route"`
	EstimateLine string         `json:"estimate_line"`
	Driver       driverResponse `json:"driver"`
	DocsTitle    string         `json:"docs_title"`
	DocsNote     string         `json:"docs_note"`
	OpsLog       []string       `json:"ops_log"`
}

type milestoneResponse struct {
	Label  string `json:"label"`
	Active bool   `json:"active"`
}

type trackViewResponse struct {
	Headline     string              `json:"headline"`
	Cadence      string              `json:"cadence"`
	Milestones   []milestoneResponse `json:"milestones"`
	OriginMarker string              `json:"origin_marker"`
	DropMarker   string              `json:"drop_marker"`
}

type viewResponse struct {
	Stage    string                `json:"stage"`
	Stepper  []stepResponse        `json:"stepper"`
	Details  *detailsViewResponse  `json:"details,omitempty"`
	Dispatch *dispatchViewResponse `json:"dispatch,omitempty"`
	Track    *trackViewResponse    `json:"track,omitempty"`
}

type sessionResponse struct {
	SessionID string       `json:"session_id"`
	Token     string       `json:"token"`
	View      viewResponse `json:"view"`
}

type fallbackResponse struct {
	Anchor   string `json:"anchor"`
	Behavior string `json:"behavior"`
}

type handoffResponse struct {
	Link     string            `json:"link"`
	Outcome  string            `json:"outcome"`
	Fallback *fallbackResponse `json:"fallback,omitempty"`
}

type requestDispatchResponse struct {
	View    viewResponse     `json:"view"`
	Handoff *handoffResponse `json:"handoff"`
}

type quoteResponse struct {
	Estimate *estimateResponse `json:"estimate"`
	Summary  string            `json:"summary"`
	Message  string            `json:"message"`
}
