// Package suggestions derives candidate pickup times from a destination
// arrival time and the travel-time heuristic.
package suggestions

import (
	"sort"

	"github.com/m04kA/SMC-SessionService/internal/domain"
	"github.com/m04kA/SMC-SessionService/internal/itinerary/duration"
	"github.com/m04kA/SMC-SessionService/pkg/types"
)

// Config configures suggestion generation
type Config struct {
	// Floor is the earliest time a suggestion may have
	Floor types.TimeString
	// OffsetsMinutes are added to the primary suggestion to build extra candidates
	OffsetsMinutes []int
}

// DefaultConfig returns floor 06:00 and offsets -30/-60/-90/-120
func DefaultConfig() Config {
	offsets := make([]int, len(domain.DefaultSuggestionOffsetsMinutes))
	copy(offsets, domain.DefaultSuggestionOffsetsMinutes)
	return Config{
		Floor:          types.TimeString(domain.DefaultSuggestionFloor),
		OffsetsMinutes: offsets,
	}
}

func (c Config) floor() types.TimeString {
	if c.Floor.Validate() != nil {
		return types.TimeString(domain.DefaultSuggestionFloor)
	}
	return c.Floor
}

// TravelMinutes is 120 when the addresses differ and 60 when they match
func TravelMinutes(pickupAddress, destinationAddress string) int {
	if duration.SameAddress(pickupAddress, destinationAddress) {
		return domain.TravelMinutesSameAddress
	}
	return domain.TravelMinutesDifferent
}

// Primary returns arrival minus travel time. It is not derivable when the
// arrival is missing or invalid, or when the result falls before the floor.
func Primary(cfg Config, arrival types.TimeString, pickupAddress, destinationAddress string) (types.TimeString, bool) {
	if arrival.IsZero() || arrival.Validate() != nil {
		return "", false
	}

	primary, err := arrival.AddMinutes(-TravelMinutes(pickupAddress, destinationAddress))
	if err != nil {
		return "", false
	}
	if primary.IsBefore(cfg.floor()) {
		return "", false
	}
	return primary, true
}

// Suggest returns the primary suggestion plus every offset candidate that is
// not before the floor, de-duplicated and sorted ascending. An empty result
// means the pickup time must be entered manually.
func Suggest(cfg Config, arrival types.TimeString, pickupAddress, destinationAddress string) []types.TimeString {
	primary, ok := Primary(cfg, arrival, pickupAddress, destinationAddress)
	if !ok {
		return []types.TimeString{}
	}

	floor := cfg.floor()
	seen := map[types.TimeString]struct{}{primary: {}}
	out := []types.TimeString{primary}

	for _, offset := range cfg.OffsetsMinutes {
		candidate, err := primary.AddMinutes(offset)
		if err != nil || candidate.IsBefore(floor) {
			continue
		}
		if _, dup := seen[candidate]; dup {
			continue
		}
		seen[candidate] = struct{}{}
		out = append(out, candidate)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].IsBefore(out[j]) })
	return out
}
