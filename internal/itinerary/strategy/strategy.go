// Package strategy binds, per booking mode, the itinerary template to its
// validation, duration, pickup suggestion and summary behaviour.
package strategy

import (
	"strings"

	"github.com/m04kA/SMC-SessionService/internal/domain"
	"github.com/m04kA/SMC-SessionService/internal/itinerary/duration"
	"github.com/m04kA/SMC-SessionService/internal/itinerary/store"
	"github.com/m04kA/SMC-SessionService/internal/itinerary/suggestions"
	"github.com/m04kA/SMC-SessionService/internal/itinerary/validation"
	"github.com/m04kA/SMC-SessionService/pkg/types"
)

// Meta is the display metadata of a mode
type Meta struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Badge       string `json:"badge,omitempty"`
	Popular     bool   `json:"popular"`
}

// Strategy is the behaviour bundle of one booking mode
type Strategy struct {
	Key      domain.Mode
	Meta     Meta
	Sections []validation.Section
	Template *domain.Template

	suggestCfg suggestions.Config

	// arrival returns the time the child must be at the destination;
	// defaults to the template's suggestion source time
	arrival func(s *Strategy, data domain.ItineraryData) types.TimeString
	summary func(s *Strategy, data domain.ItineraryData) string
}

// SectionNames returns the ordered section names
func (s *Strategy) SectionNames() []string {
	names := make([]string, len(s.Sections))
	for i, section := range s.Sections {
		names[i] = section.Name
	}
	return names
}

// InitializeData returns an empty record with the pickup address prefilled
func (s *Strategy) InitializeData(parentAddress string) domain.ItineraryData {
	return store.InitializeForParent(s.Template, parentAddress)
}

// Validate reports completeness; a derivable pickup suggestion satisfies the
// pickup time
func (s *Strategy) Validate(data domain.ItineraryData) validation.Result {
	return validation.Validate(s.Template, data, s.pickupDerivable)
}

// SectionValidations returns validity per wizard section
func (s *Strategy) SectionValidations(data domain.ItineraryData) map[string]bool {
	return validation.Sections(s.Sections, s.Template, data, s.pickupDerivable)
}

// CalculateDuration returns estimated hours clamped to the remaining budget
func (s *Strategy) CalculateDuration(data domain.ItineraryData, remainingHours float64) float64 {
	return duration.Estimate(s.Template, data, remainingHours)
}

// DurationBreakdown returns the unclamped estimate parts
func (s *Strategy) DurationBreakdown(data domain.ItineraryData) duration.Breakdown {
	return duration.Compute(s.Template, data)
}

// GetPickupSuggestions returns candidate pickup times, ascending. Empty means
// manual entry.
func (s *Strategy) GetPickupSuggestions(data domain.ItineraryData) []types.TimeString {
	tr := s.Template.Transport()
	if tr == nil || tr.SuggestFromTimeKey == "" {
		return []types.TimeString{}
	}
	return suggestions.Suggest(
		s.suggestCfg,
		s.arrivalTime(data),
		data.Text(tr.PickupAddressKey),
		data.Text(tr.SuggestFromAddressKey),
	)
}

// GetEffectivePickupTime returns the entered pickup time, or the primary
// suggestion when none was entered, or "" when neither exists
func (s *Strategy) GetEffectivePickupTime(data domain.ItineraryData) types.TimeString {
	tr := s.Template.Transport()
	if tr == nil {
		return ""
	}

	if entered, err := types.NewTimeStringFromString(data.Text(tr.PickupTimeKey)); err == nil {
		return entered
	}

	if tr.SuggestFromTimeKey == "" {
		return ""
	}
	primary, ok := suggestions.Primary(
		s.suggestCfg,
		s.arrivalTime(data),
		data.Text(tr.PickupAddressKey),
		data.Text(tr.SuggestFromAddressKey),
	)
	if !ok {
		return ""
	}
	return primary
}

// PreviewSummary returns a one-line human summary of the itinerary
func (s *Strategy) PreviewSummary(data domain.ItineraryData) string {
	if s.summary == nil {
		return s.Template.Name
	}
	return s.summary(s, data)
}

func (s *Strategy) pickupDerivable(data domain.ItineraryData) bool {
	return len(s.GetPickupSuggestions(data)) > 0
}

func (s *Strategy) arrivalTime(data domain.ItineraryData) types.TimeString {
	if s.arrival != nil {
		return s.arrival(s, data)
	}
	tr := s.Template.Transport()
	return types.TimeString(strings.TrimSpace(data.Text(tr.SuggestFromTimeKey)))
}

// pickupPhrase renders "pickup 08:00 from 10 Elm St" from what is known
func (s *Strategy) pickupPhrase(data domain.ItineraryData) string {
	tr := s.Template.Transport()
	if tr == nil {
		return ""
	}

	parts := []string{"pickup"}
	if t := s.GetEffectivePickupTime(data); t != "" {
		parts = append(parts, t.String())
	}
	if addr := strings.TrimSpace(data.Text(tr.PickupAddressKey)); addr != "" {
		parts = append(parts, "from", addr)
	}
	if len(parts) == 1 {
		return ""
	}
	return strings.Join(parts, " ")
}

// dropoffPhrase renders the return leg, empty for one-way legs
func (s *Strategy) dropoffPhrase(data domain.ItineraryData) string {
	tr := s.Template.Transport()
	if tr == nil || !tr.HasReturn() {
		return ""
	}
	if data.Flag(tr.SameAsPickupKey) {
		return "drop-off same as pickup"
	}
	if addr := strings.TrimSpace(data.Text(tr.DropoffAddressKey)); addr != "" {
		return "drop-off at " + addr
	}
	return ""
}

// joinSummary joins non-empty parts with "; "
func joinSummary(parts ...string) string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, "; ")
}

// timeRange renders "10:00-13:00", "from 10:00" or ""
func timeRange(start, end string) string {
	start, end = strings.TrimSpace(start), strings.TrimSpace(end)
	switch {
	case start != "" && end != "":
		return start + "-" + end
	case start != "":
		return "from " + start
	}
	return ""
}
