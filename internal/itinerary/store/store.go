// Package store holds the storage semantics of itinerary records: initialise,
// patch and read. It performs no validation.
package store

import (
	"strings"

	"github.com/m04kA/SMC-SessionService/internal/domain"
)

// Initialize returns a record with every key declared by tpl set to its empty default
func Initialize(tpl *domain.Template) domain.ItineraryData {
	data := domain.NewItineraryData()
	if tpl == nil {
		return data
	}
	for _, key := range tpl.Keys() {
		data = data.With(key, key.DefaultValue())
	}
	return data
}

// InitializeForParent initialises tpl and prefills the pickup address
func InitializeForParent(tpl *domain.Template, parentAddress string) domain.ItineraryData {
	data := Initialize(tpl)
	if transport := transportOf(tpl); transport != nil && parentAddress != "" {
		data = data.WithText(transport.PickupAddressKey, parentAddress)
	}
	return data
}

// Patch shallow-merges partial over current. Keys are never removed and
// current is left untouched.
func Patch(current, partial domain.ItineraryData) domain.ItineraryData {
	return current.Merge(partial)
}

// Get returns the value stored under key
func Get(data domain.ItineraryData, key domain.FieldKey) (domain.Value, bool) {
	return data.Get(key)
}

// Reinitialize builds a fresh record for tpl after a mode change, carrying
// over every non-empty value the previous record holds for a key tpl declares.
// The pickup address falls back to parentAddress.
func Reinitialize(tpl *domain.Template, prior domain.ItineraryData, parentAddress string) domain.ItineraryData {
	data := InitializeForParent(tpl, parentAddress)
	if tpl == nil {
		return data
	}

	for _, key := range tpl.Keys() {
		v, ok := prior.Get(key)
		if !ok {
			continue
		}
		v = conformValue(key, v)
		if isEmpty(key, v) {
			continue
		}
		data = data.With(key, v)
	}
	return data
}

// ResetForNextBooking clears times, durations and addresses after a
// successful submission. Names, notes and flags are kept; the pickup address
// is kept only when keepPickupAddress is set.
func ResetForNextBooking(tpl *domain.Template, data domain.ItineraryData, keepPickupAddress bool) domain.ItineraryData {
	if tpl == nil {
		return data
	}

	addressKeys := addressKeysOf(tpl)
	transport := transportOf(tpl)

	next := data
	for _, key := range tpl.Keys() {
		_, isAddress := addressKeys[key]
		kind := key.Kind()
		if kind != domain.KindTime && kind != domain.KindHours && !isAddress {
			continue
		}
		if keepPickupAddress && transport != nil && key == transport.PickupAddressKey {
			continue
		}
		next = next.With(key, key.DefaultValue())
	}
	return next
}

// FromStrings converts loosely typed input into a partial record for tpl.
// Keys tpl does not declare are dropped; flags accept true/yes/1/on.
func FromStrings(tpl *domain.Template, raw map[string]string) domain.ItineraryData {
	data := domain.NewItineraryData()
	if tpl == nil {
		return data
	}

	for k, v := range raw {
		key := domain.FieldKey(k)
		if !tpl.Declares(key) {
			continue
		}
		if key.Kind() == domain.KindFlag {
			data = data.WithFlag(key, ParseFlag(v))
			continue
		}
		data = data.WithText(key, v)
	}
	return data
}

// Conform restricts partial to the keys tpl declares and coerces every value
// to the kind of its key: flags given as text go through ParseFlag, flags
// given for a text key become "true"/"false".
func Conform(tpl *domain.Template, partial domain.ItineraryData) domain.ItineraryData {
	data := domain.NewItineraryData()
	if tpl == nil {
		return data
	}

	for _, key := range partial.Keys() {
		if !tpl.Declares(key) {
			continue
		}
		v, _ := partial.Get(key)
		data = data.With(key, conformValue(key, v))
	}
	return data
}

func conformValue(key domain.FieldKey, v domain.Value) domain.Value {
	if key.Kind() == domain.KindFlag {
		if v.IsFlag {
			return v
		}
		return domain.FlagValue(ParseFlag(v.Text))
	}
	if v.IsFlag {
		return domain.TextValue(v.String())
	}
	return v
}

// ParseFlag interprets common truthy spellings
func ParseFlag(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "yes", "y", "1", "on":
		return true
	}
	return false
}

func isEmpty(key domain.FieldKey, v domain.Value) bool {
	switch key.Kind() {
	case domain.KindFlag:
		return !v.Flag
	case domain.KindHours:
		t := strings.TrimSpace(v.Text)
		return t == "" || t == "0"
	default:
		return strings.TrimSpace(v.Text) == ""
	}
}

func transportOf(tpl *domain.Template) *domain.TransportSegment {
	if tpl == nil {
		return nil
	}
	return tpl.Transport()
}

func addressKeysOf(tpl *domain.Template) map[domain.FieldKey]struct{} {
	keys := make(map[domain.FieldKey]struct{})
	for _, seg := range tpl.Segments {
		switch seg.Kind {
		case domain.SegmentTransport:
			keys[seg.Transport.PickupAddressKey] = struct{}{}
			if seg.Transport.DropoffAddressKey != "" {
				keys[seg.Transport.DropoffAddressKey] = struct{}{}
			}
		case domain.SegmentStop:
			keys[seg.Stop.AddressKey] = struct{}{}
		}
	}
	return keys
}
