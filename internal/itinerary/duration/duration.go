// Package duration estimates the total hours of a session from its itinerary.
// Every function is pure: identical inputs always give identical output.
package duration

import (
	"math"
	"strconv"
	"strings"

	"github.com/m04kA/SMC-SessionService/internal/domain"
	"github.com/m04kA/SMC-SessionService/pkg/types"
)

// Breakdown splits an estimate into its parts, before clamping
type Breakdown struct {
	OnSite   float64 `json:"onSite"`
	Outbound float64 `json:"outbound"`
	Return   float64 `json:"return"`
}

// Total returns the unclamped sum
func (b Breakdown) Total() float64 {
	return b.OnSite + b.Outbound + b.Return
}

// Estimate returns the clamped session hours for data laid out by tpl
func Estimate(tpl *domain.Template, data domain.ItineraryData, remainingHours float64) float64 {
	return Clamp(Compute(tpl, data).Total(), remainingHours)
}

// Clamp bounds hours to [0.5, max(0.5, remainingHours)]
func Clamp(hours, remainingHours float64) float64 {
	if math.IsNaN(remainingHours) {
		remainingHours = 0
	}
	upper := math.Max(domain.MinSessionHours, remainingHours)

	if math.IsNaN(hours) || hours < domain.MinSessionHours {
		return domain.MinSessionHours
	}
	if hours > upper {
		return upper
	}
	return hours
}

// Compute returns the per-part contributions without clamping
func Compute(tpl *domain.Template, data domain.ItineraryData) Breakdown {
	var b Breakdown
	if tpl == nil {
		return b
	}

	stop := firstStop(tpl)
	if stop != nil {
		b.OnSite = onSiteHours(tpl, stop, data)
	}

	transport := tpl.Transport()
	if transport == nil || stop == nil {
		return b
	}

	pickupAddress := data.Text(transport.PickupAddressKey)
	stopAddress := data.Text(stop.AddressKey)

	b.Outbound = legHours(
		pickupAddress, stopAddress,
		data.Text(transport.PickupTimeKey), data.Text(stop.StartTimeKey),
	)

	if transport.HasReturn() {
		b.Return = legHours(
			stopAddress, EffectiveDropoffAddress(transport, data),
			data.Text(stop.EndTimeKey), data.Text(transport.DropoffTimeKey),
		)
	}

	return b
}

// EffectiveDropoffAddress substitutes the pickup address when the drop-off is
// flagged as the same as pickup or left blank
func EffectiveDropoffAddress(transport *domain.TransportSegment, data domain.ItineraryData) string {
	if transport.SameAsPickupKey != "" && data.Flag(transport.SameAsPickupKey) {
		return data.Text(transport.PickupAddressKey)
	}
	dropoff := data.Text(transport.DropoffAddressKey)
	if strings.TrimSpace(dropoff) == "" {
		return data.Text(transport.PickupAddressKey)
	}
	return dropoff
}

// SameAddress compares addresses case-insensitively after trimming.
// This is plain text equality, not geocoding.
func SameAddress(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

// TravelHours is the travel heuristic for one leg
func TravelHours(from, to string) float64 {
	if SameAddress(from, to) {
		return domain.TravelHoursSameAddress
	}
	return domain.TravelHoursDifferent
}

// ParseHours reads a decimal-hours value; blank, invalid or negative is 0
func ParseHours(s string) float64 {
	h, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(h) || math.IsInf(h, 0) || h < 0 {
		return 0
	}
	return h
}

// legHours uses the actual gap between departure and arrival when it is
// known and positive, the address heuristic otherwise
func legHours(fromAddress, toAddress, departure, arrival string) float64 {
	if gap, ok := gapHours(departure, arrival); ok {
		return gap
	}
	return TravelHours(fromAddress, toAddress)
}

func onSiteHours(tpl *domain.Template, stop *domain.StopSegment, data domain.ItineraryData) float64 {
	start := data.Text(stop.StartTimeKey)
	end := data.Text(stop.EndTimeKey)

	hasStart := validTime(start)
	hasEnd := stop.EndTimeKey != "" && validTime(end)

	if hasStart && hasEnd {
		if gap, ok := gapHours(start, end); ok {
			return gap
		}
		return 0
	}

	if hasStart {
		if wait := waitOf(tpl); wait != nil {
			return ParseHours(data.Text(wait.DurationKey)) + domain.OnSiteAssumptionHours
		}
	}

	if tpl.FixedDurationKey != "" {
		return ParseHours(data.Text(tpl.FixedDurationKey))
	}

	return 0
}

func gapHours(from, to string) (float64, bool) {
	if !validTime(from) || !validTime(to) {
		return 0, false
	}
	minutes, err := types.TimeString(from).MinutesUntil(types.TimeString(to))
	if err != nil || minutes <= 0 {
		return 0, false
	}
	return float64(minutes) / 60, true
}

func validTime(s string) bool {
	if strings.TrimSpace(s) == "" {
		return false
	}
	return types.TimeString(s).Validate() == nil
}

func firstStop(tpl *domain.Template) *domain.StopSegment {
	for _, seg := range tpl.Segments {
		if seg.Kind == domain.SegmentStop {
			return seg.Stop
		}
	}
	return nil
}

func waitOf(tpl *domain.Template) *domain.WaitSegment {
	for _, seg := range tpl.Segments {
		if seg.Kind == domain.SegmentWait {
			return seg.Wait
		}
	}
	return nil
}
