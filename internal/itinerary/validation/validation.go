// Package validation computes itinerary completeness per segment and per
// wizard section. Missing fields are reported, never raised.
package validation

import (
	"strings"

	"github.com/m04kA/SMC-SessionService/internal/domain"
	"github.com/m04kA/SMC-SessionService/pkg/types"
)

// Result is the outcome of Validate
type Result struct {
	Valid         bool     `json:"valid"`
	MissingFields []string `json:"missingFields"`
}

// PickupDerivable reports whether a pickup time suggestion can be derived
// from data; a derivable suggestion satisfies the pickup time requirement
type PickupDerivable func(data domain.ItineraryData) bool

// Section groups field keys under one wizard section
type Section struct {
	Name string
	Keys []domain.FieldKey
}

// Validate checks data against the segment rules of tpl
func Validate(tpl *domain.Template, data domain.ItineraryData, derivable PickupDerivable) Result {
	missing := MissingKeys(tpl, data, derivable)

	names := make([]string, 0, len(missing))
	for _, key := range missing {
		names = append(names, key.Label())
	}

	return Result{
		Valid:         len(missing) == 0,
		MissingFields: names,
	}
}

// MissingKeys returns the required keys that are not satisfied, in segment order
func MissingKeys(tpl *domain.Template, data domain.ItineraryData, derivable PickupDerivable) []domain.FieldKey {
	missing := make([]domain.FieldKey, 0)
	if tpl == nil {
		return missing
	}

	seen := make(map[domain.FieldKey]struct{})
	add := func(key domain.FieldKey) {
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		missing = append(missing, key)
	}

	for _, seg := range tpl.Segments {
		switch seg.Kind {
		case domain.SegmentTransport:
			tr := seg.Transport
			if isBlank(data.Text(tr.PickupAddressKey)) {
				add(tr.PickupAddressKey)
			}
			if tr.PickupTimeKey != "" && !hasTime(data, tr.PickupTimeKey) {
				if derivable == nil || !derivable(data) {
					add(tr.PickupTimeKey)
				}
			}

		case domain.SegmentStop:
			st := seg.Stop
			if isBlank(data.Text(st.AddressKey)) {
				add(st.AddressKey)
			}
			if st.StartTimeKey != "" && !hasTime(data, st.StartTimeKey) {
				add(st.StartTimeKey)
			}
			if st.EndTimeKey != "" && !hasTime(data, st.EndTimeKey) {
				add(st.EndTimeKey)
			}

		case domain.SegmentWait:
			// Never required: an absent wait is "0"
		}
	}

	return missing
}

// Sections returns per-section validity: a section is valid when none of its
// keys is missing
func Sections(sections []Section, tpl *domain.Template, data domain.ItineraryData, derivable PickupDerivable) map[string]bool {
	missing := make(map[domain.FieldKey]struct{})
	for _, key := range MissingKeys(tpl, data, derivable) {
		missing[key] = struct{}{}
	}

	out := make(map[string]bool, len(sections))
	for _, section := range sections {
		valid := true
		for _, key := range section.Keys {
			if _, ok := missing[key]; ok {
				valid = false
				break
			}
		}
		out[section.Name] = valid
	}
	return out
}

func hasTime(data domain.ItineraryData, key domain.FieldKey) bool {
	value := data.Text(key)
	if isBlank(value) {
		return false
	}
	return types.TimeString(value).Validate() == nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
