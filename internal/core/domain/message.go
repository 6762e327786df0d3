package domain

import "strings"

// MessageGreeting opens every handoff message.
const MessageGreeting = "Hello VPC Dispatch — I'd like to request a Type‑B truck."

// ComposeMessage builds the plain-text request handed to the messaging
// channel. Only set fields get a line; the estimate block is appended when
// est is non-nil. The text is not escaped here.
func ComposeMessage(in BookingInput, est *Estimate) string {
	lines := []string{MessageGreeting}

	pickupLabel := in.Pickup.Label()
	containerLabel := in.ContainerType.Label()
	timingLabel := in.Timing.Label()

	if pickupLabel != "" || in.Destination != "" || containerLabel != "" || timingLabel != "" {
		lines = append(lines, "")
	}
	if pickupLabel != "" {
		lines = append(lines, "Pickup: "+pickupLabel)
	}
	if in.Destination != "" {
		lines = append(lines, "Drop‑off: "+in.Destination)
	}
	if containerLabel != "" {
		lines = append(lines, "Container: "+containerLabel)
	}
	if timingLabel != "" {
		lines = append(lines, "When: "+timingLabel)
	}

	if est != nil {
		lines = append(lines,
			"",
			"Estimate: "+est.PriceRange(),
			"Pickup ETA: "+est.PickupETA,
			"Trip ETA: "+est.DropoffETA,
		)
	}

	return strings.Join(lines, "\n")
}
