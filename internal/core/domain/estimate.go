package domain

import (
	"fmt"
	"math"
	"strings"
)

// Quote heuristics. These are marketing placeholder values, not a rate card.
const (
	baseFare               int64 = 240_000
	defaultPickupAdjust    int64 = 35_000
	defaultContainerAdjust int64 = 50_000
	defaultDistanceAdjust  int64 = 75_000
	quoteRounding          int64 = 10_000

	lowFactor  = 0.98
	highFactor = 1.12

	defaultPickupETA  = "30–60m"
	defaultDropoffETA = "1–3h"
)

// Zone is a destination band found by keyword match on free text.
type Zone struct {
	Keyword    string
	Surcharge  int64
	DropoffETA string
}

// ZoneDefault is returned for destinations that match no keyword.
var ZoneDefault = Zone{Keyword: "", Surcharge: defaultDistanceAdjust, DropoffETA: defaultDropoffETA}

// zones are checked in order; the first keyword contained in the
// lower-cased destination wins.
var zones = []Zone{
	{Keyword: "abuja", Surcharge: 240_000, DropoffETA: "10–14h"},
	{Keyword: "ibadan", Surcharge: 95_000, DropoffETA: "3–5h"},
	{Keyword: "sagamu", Surcharge: 55_000, DropoffETA: "2–3h"},
	{Keyword: "oshodi", Surcharge: 25_000, DropoffETA: "1–3h"},
}

// MatchZone resolves a free-text destination to its zone. Matching is a
// case-insensitive substring test, so "Ibadan North" and "IBADAN" match.
func MatchZone(destination string) Zone {
	normalized := strings.ToLower(destination)
	for _, z := range zones {
		if strings.Contains(normalized, z.Keyword) {
			return z
		}
	}
	return ZoneDefault
}

// Estimate is the derived quote for a booking. It is never stored.
type Estimate struct {
	PriceRangeLow  int64  `json:"price_range_low"`
	PriceRangeHigh int64  `json:"price_range_high"`
	PickupETA      string `json:"pickup_eta"`
	DropoffETA     string `json:"dropoff_eta"`
	Zone           string `json:"-"`
}

// PriceRange renders the quote window, e.g. "₦520k–₦590k".
func (e Estimate) PriceRange() string {
	return FormatNaira(e.PriceRangeLow) + "–" + FormatNaira(e.PriceRangeHigh)
}

// EstimateFor computes the quote for the given choices. It returns nil
// unless both pickup and destination are set. Timing never affects the
// result.
func EstimateFor(pickup PickupPoint, destination string, container ContainerType) *Estimate {
	if pickup == PickupNone || destination == "" {
		return nil
	}

	zone := MatchZone(destination)
	base := baseFare + pickupAdjust(pickup) + containerAdjust(container) + zone.Surcharge

	zoneName := zone.Keyword
	if zoneName == "" {
		zoneName = "other"
	}

	return &Estimate{
		PriceRangeLow:  roundQuote(float64(base) * lowFactor),
		PriceRangeHigh: roundQuote(float64(base) * highFactor),
		PickupETA:      pickupETA(pickup),
		DropoffETA:     zone.DropoffETA,
		Zone:           zoneName,
	}
}

// EstimateForInput is EstimateFor applied to a draft.
func EstimateForInput(in BookingInput) *Estimate {
	return EstimateFor(in.Pickup, in.Destination, in.ContainerType)
}

func pickupAdjust(p PickupPoint) int64 {
	if opt, ok := pickupTable[p]; ok {
		return opt.Adjust
	}
	return defaultPickupAdjust
}

func containerAdjust(c ContainerType) int64 {
	if opt, ok := containerTable[c]; ok {
		return opt.Adjust
	}
	return defaultContainerAdjust
}

func pickupETA(p PickupPoint) string {
	if opt, ok := pickupTable[p]; ok {
		return opt.ETA
	}
	return defaultPickupETA
}

// roundQuote rounds to the nearest quoteRounding, halves away from zero.
func roundQuote(v float64) int64 {
	return int64(math.Round(v/float64(quoteRounding))) * quoteRounding
}

// FormatNaira renders amounts >= 1m as "₦1.2m" and smaller ones as "₦450k".
func FormatNaira(amount int64) string {
	if amount >= 1_000_000 {
		return fmt.Sprintf("₦%.1fm", float64(amount)/1_000_000)
	}
	return fmt.Sprintf("₦%dk", amount/1_000)
}
