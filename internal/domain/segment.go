package domain

// SegmentKind tags the Segment variant
type SegmentKind string

const (
	SegmentTransport SegmentKind = "transport"
	SegmentStop      SegmentKind = "stop"
	SegmentWait      SegmentKind = "wait"
)

// Segment is one leg of an itinerary. Exactly one of Transport, Stop, Wait is
// set, matching Kind.
type Segment struct {
	Kind      SegmentKind
	Transport *TransportSegment
	Stop      *StopSegment
	Wait      *WaitSegment
}

// TransportSegment binds the pickup and drop-off keys of a travel leg.
// Empty drop-off keys describe a one-way leg with no return.
type TransportSegment struct {
	PickupAddressKey  FieldKey
	PickupTimeKey     FieldKey
	DropoffAddressKey FieldKey
	DropoffTimeKey    FieldKey
	SameAsPickupKey   FieldKey

	// Keys the pickup-time suggestion is derived from
	SuggestFromTimeKey    FieldKey
	SuggestFromAddressKey FieldKey
}

// HasReturn reports whether the leg has a drop-off (return) half
func (t *TransportSegment) HasReturn() bool {
	return t.DropoffAddressKey != ""
}

// StopSegment is a destination with optional start/end time keys
type StopSegment struct {
	Label        string
	AddressKey   FieldKey
	StartTimeKey FieldKey
	EndTimeKey   FieldKey
}

// WaitSegment is a waiting period in decimal hours
type WaitSegment struct {
	Label       string
	DurationKey FieldKey
}

// Transport builds a transport segment
func Transport(t TransportSegment) Segment {
	return Segment{Kind: SegmentTransport, Transport: &t}
}

// Stop builds a stop segment
func Stop(s StopSegment) Segment {
	return Segment{Kind: SegmentStop, Stop: &s}
}

// Wait builds a wait segment
func Wait(label string, durationKey FieldKey) Segment {
	return Segment{Kind: SegmentWait, Wait: &WaitSegment{Label: label, DurationKey: durationKey}}
}

// Keys returns every non-empty field key bound by the segment
func (s Segment) Keys() []FieldKey {
	var keys []FieldKey
	switch s.Kind {
	case SegmentTransport:
		keys = []FieldKey{
			s.Transport.PickupAddressKey,
			s.Transport.PickupTimeKey,
			s.Transport.DropoffAddressKey,
			s.Transport.DropoffTimeKey,
			s.Transport.SameAsPickupKey,
		}
	case SegmentStop:
		keys = []FieldKey{s.Stop.AddressKey, s.Stop.StartTimeKey, s.Stop.EndTimeKey}
	case SegmentWait:
		keys = []FieldKey{s.Wait.DurationKey}
	}
	return compactKeys(keys)
}

// Template is the ordered segment list of one booking mode
type Template struct {
	Mode     Mode
	Name     string
	Segments []Segment

	// ExtraKeys are mode-specific fields that are not part of any segment
	ExtraKeys []FieldKey

	// FixedDurationKey holds an explicit on-site duration in hours, used when
	// a stop has neither an end time nor a sibling wait
	FixedDurationKey FieldKey
}

// Keys returns segment keys then extra keys, de-duplicated, in declaration order
func (t *Template) Keys() []FieldKey {
	seen := make(map[FieldKey]struct{})
	keys := make([]FieldKey, 0)
	add := func(k FieldKey) {
		if k == "" {
			return
		}
		if _, ok := seen[k]; ok {
			return
		}
		seen[k] = struct{}{}
		keys = append(keys, k)
	}

	for _, seg := range t.Segments {
		for _, k := range seg.Keys() {
			add(k)
		}
	}
	for _, k := range t.ExtraKeys {
		add(k)
	}
	add(t.FixedDurationKey)

	return keys
}

// Declares reports whether key belongs to the template
func (t *Template) Declares(key FieldKey) bool {
	for _, k := range t.Keys() {
		if k == key {
			return true
		}
	}
	return false
}

// Transport returns the first transport segment, if any
func (t *Template) Transport() *TransportSegment {
	for _, seg := range t.Segments {
		if seg.Kind == SegmentTransport {
			return seg.Transport
		}
	}
	return nil
}

// HasWait reports whether the template contains a wait segment
func (t *Template) HasWait() bool {
	for _, seg := range t.Segments {
		if seg.Kind == SegmentWait {
			return true
		}
	}
	return false
}

func compactKeys(keys []FieldKey) []FieldKey {
	out := keys[:0]
	for _, k := range keys {
		if k != "" {
			out = append(out, k)
		}
	}
	return out
}
