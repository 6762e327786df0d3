package domain

import "strings"

// PickupPoint is the terminal a container is collected from.
type PickupPoint string

const (
	PickupNone          PickupPoint = ""
	PickupApapaPort     PickupPoint = "apapa"
	PickupTinCanIsland  PickupPoint = "tincan"
	PickupLekkiFreeZone PickupPoint = "lekki"
	PickupOffDockICD    PickupPoint = "odock"
)

// ContainerType is the size/type of the box being moved.
type ContainerType string

const (
	ContainerNone        ContainerType = ""
	ContainerTwentyFoot  ContainerType = "20"
	ContainerFortyFoot   ContainerType = "40"
	ContainerEmptyReturn ContainerType = "empty"
)

// Timing is when the visitor wants the truck.
type Timing string

const (
	TimingNone      Timing = ""
	TimingASAP      Timing = "asap"
	TimingToday     Timing = "today"
	TimingThisWeek  Timing = "this_week"
	TimingScheduled Timing = "scheduled"
)

// pickupOption is the record attached to each pickup variant.
type pickupOption struct {
	Label  string
	Adjust int64
	ETA    string
}

type containerOption struct {
	Label  string
	Adjust int64
}

// Option tables. Ordered slices keep the select-list order stable.
var (
	pickupOrder = []PickupPoint{PickupApapaPort, PickupTinCanIsland, PickupLekkiFreeZone, PickupOffDockICD}
	pickupTable = map[PickupPoint]pickupOption{
		PickupApapaPort:     {Label: "Apapa Port", Adjust: 45_000, ETA: "30–60m"},
		PickupTinCanIsland:  {Label: "Tin Can Island", Adjust: 35_000, ETA: "30–60m"},
		PickupLekkiFreeZone: {Label: "Lekki / Free Zone", Adjust: 55_000, ETA: "40–70m"},
		PickupOffDockICD:    {Label: "Off-dock / ICD", Adjust: 25_000, ETA: "25–45m"},
	}

	containerOrder = []ContainerType{ContainerTwentyFoot, ContainerFortyFoot, ContainerEmptyReturn}
	containerTable = map[ContainerType]containerOption{
		ContainerTwentyFoot:  {Label: "20ft", Adjust: 70_000},
		ContainerFortyFoot:   {Label: "40ft", Adjust: 150_000},
		ContainerEmptyReturn: {Label: "Empty return", Adjust: 10_000},
	}

	timingOrder = []Timing{TimingASAP, TimingToday, TimingThisWeek, TimingScheduled}
	timingTable = map[Timing]string{
		TimingASAP:      "ASAP",
		TimingToday:     "Today",
		TimingThisWeek:  "This week",
		TimingScheduled: "Schedule",
	}
)

// Label returns the display label, or "" when unset or unknown.
func (p PickupPoint) Label() string { return pickupTable[p].Label }

// Valid reports whether p is one of the known pickup points.
func (p PickupPoint) Valid() bool {
	_, ok := pickupTable[p]
	return ok
}

func (c ContainerType) Label() string { return containerTable[c].Label }

func (c ContainerType) Valid() bool {
	_, ok := containerTable[c]
	return ok
}

func (t Timing) Label() string { return timingTable[t] }

func (t Timing) Valid() bool {
	_, ok := timingTable[t]
	return ok
}

// Option is a value/label pair for a select list.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// PickupOptions lists the pickup select entries in display order.
func PickupOptions() []Option {
	out := make([]Option, 0, len(pickupOrder))
	for _, p := range pickupOrder {
		out = append(out, Option{Value: string(p), Label: p.Label()})
	}
	return out
}

func ContainerOptions() []Option {
	out := make([]Option, 0, len(containerOrder))
	for _, c := range containerOrder {
		out = append(out, Option{Value: string(c), Label: c.Label()})
	}
	return out
}

func TimingOptions() []Option {
	out := make([]Option, 0, len(timingOrder))
	for _, t := range timingOrder {
		out = append(out, Option{Value: string(t), Label: t.Label()})
	}
	return out
}

// BookingInput is the draft a widget holds for its lifetime. Every field
// starts empty and may be set in any order; no field constrains another.
type BookingInput struct {
	Pickup        PickupPoint   `json:"pickup" bson:"pickup"`
	Destination   string        `json:"destination" bson:"destination"`
	ContainerType ContainerType `json:"container" bson:"container"`
	Timing        Timing        `json:"when" bson:"when"`
}

// MaxDestinationLen is the longest destination, in runes, a draft keeps.
const MaxDestinationLen = 120

// NormalizeDestination trims surrounding whitespace and truncates to
// MaxDestinationLen runes. A blank value becomes "".
func NormalizeDestination(dest string) string {
	dest = strings.TrimSpace(dest)
	if r := []rune(dest); len(r) > MaxDestinationLen {
		dest = strings.TrimSpace(string(r[:MaxDestinationLen]))
	}
	return dest
}

// HasMatchSignal reports whether both pickup and destination are set.
func (in BookingInput) HasMatchSignal() bool {
	return in.Pickup != PickupNone && in.Destination != ""
}

// IsEmpty reports whether no field has been set.
func (in BookingInput) IsEmpty() bool {
	return in == BookingInput{}
}

// Summary joins the set fields as "Pickup: … • Drop-off: … • …".
// It returns "" when nothing with a label is set.
func (in BookingInput) Summary() string {
	parts := make([]string, 0, 4)
	if l := in.Pickup.Label(); l != "" {
		parts = append(parts, "Pickup: "+l)
	}
	if in.Destination != "" {
		parts = append(parts, "Drop-off: "+in.Destination)
	}
	if l := in.ContainerType.Label(); l != "" {
		parts = append(parts, "Container: "+l)
	}
	if l := in.Timing.Label(); l != "" {
		parts = append(parts, "When: "+l)
	}
	return strings.Join(parts, " • ")
}
