package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBookingInput_Summary(t *testing.T) {
	assert.Equal(t, "", BookingInput{}.Summary())

	in := BookingInput{Pickup: PickupTinCanIsland, Destination: "Oshodi", Timing: TimingToday}
	assert.Equal(t, "Pickup: Tin Can Island • Drop-off: Oshodi • When: Today", in.Summary())
}

func TestBookingInput_MatchSignal(t *testing.T) {
	assert.False(t, BookingInput{}.HasMatchSignal())
	assert.False(t, BookingInput{Destination: "Ibadan"}.HasMatchSignal())
	assert.True(t, BookingInput{Pickup: PickupOffDockICD, Destination: "Ibadan"}.HasMatchSignal())
	assert.True(t, BookingInput{}.IsEmpty())
}

func TestOptions_Order(t *testing.T) {
	pickups := PickupOptions()
	if assert.Len(t, pickups, 4) {
		assert.Equal(t, Option{Value: "apapa", Label: "Apapa Port"}, pickups[0])
		assert.Equal(t, Option{Value: "odock", Label: "Off-dock / ICD"}, pickups[3])
	}
	assert.Len(t, ContainerOptions(), 3)
	assert.Equal(t, "Schedule", TimingOptions()[3].Label)
	assert.False(t, PickupPoint("ikeja").Valid())
	assert.Equal(t, "", PickupPoint("ikeja").Label())
}

func TestDispatchRequestProperties(t *testing.T) {
	props := DispatchRequestProperties(BookingInput{Pickup: PickupApapaPort, Destination: "Ibadan"})
	assert.Equal(t, map[string]string{
		"pickup":      "apapa",
		"destination": "Ibadan",
		"container":   NotSet,
		"when":        NotSet,
	}, props)
}

func TestNormalizeDestination(t *testing.T) {
	assert.Equal(t, "", NormalizeDestination("   "))
	assert.Equal(t, "Ibadan", NormalizeDestination("  Ibadan\t"))

	long := NormalizeDestination(strings.Repeat("é", MaxDestinationLen+30))
	assert.Len(t, []rune(long), MaxDestinationLen)
}
