package domain

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
)

// Value is a single itinerary field value: either text or a flag
type Value struct {
	IsFlag bool
	Text   string
	Flag   bool
}

// TextValue wraps a text, time or hours value
func TextValue(s string) Value {
	return Value{Text: s}
}

// FlagValue wraps a boolean value
func FlagValue(b bool) Value {
	return Value{IsFlag: true, Flag: b}
}

// String renders the value; flags render as "true"/"false"
func (v Value) String() string {
	if v.IsFlag {
		return strconv.FormatBool(v.Flag)
	}
	return v.Text
}

// ItineraryData is an immutable field-value record keyed by FieldKey.
// Every write returns a new record; the receiver is never modified.
type ItineraryData struct {
	values map[FieldKey]Value
}

// NewItineraryData creates an empty record
func NewItineraryData() ItineraryData {
	return ItineraryData{}
}

// Get returns the value stored under key
func (d ItineraryData) Get(key FieldKey) (Value, bool) {
	v, ok := d.values[key]
	return v, ok
}

// Has reports whether key is present
func (d ItineraryData) Has(key FieldKey) bool {
	_, ok := d.values[key]
	return ok
}

// Text returns the text of key, or "" when absent or a flag
func (d ItineraryData) Text(key FieldKey) string {
	v, ok := d.values[key]
	if !ok || v.IsFlag {
		return ""
	}
	return v.Text
}

// Flag returns the flag of key, or false when absent
func (d ItineraryData) Flag(key FieldKey) bool {
	v, ok := d.values[key]
	return ok && v.IsFlag && v.Flag
}

// Len returns the number of keys
func (d ItineraryData) Len() int {
	return len(d.values)
}

// Keys returns the stored keys in lexical order
func (d ItineraryData) Keys() []FieldKey {
	keys := make([]FieldKey, 0, len(d.values))
	for k := range d.values {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// With returns a copy with key set to v
func (d ItineraryData) With(key FieldKey, v Value) ItineraryData {
	next := d.clone(len(d.values) + 1)
	next.values[key] = v
	return next
}

// WithText is a shorthand for With(key, TextValue(s))
func (d ItineraryData) WithText(key FieldKey, s string) ItineraryData {
	return d.With(key, TextValue(s))
}

// WithFlag is a shorthand for With(key, FlagValue(b))
func (d ItineraryData) WithFlag(key FieldKey, b bool) ItineraryData {
	return d.With(key, FlagValue(b))
}

// Merge returns a copy with every key of other written over d
func (d ItineraryData) Merge(other ItineraryData) ItineraryData {
	next := d.clone(len(d.values) + len(other.values))
	for k, v := range other.values {
		next.values[k] = v
	}
	return next
}

// Equal reports whether both records hold the same keys and values
func (d ItineraryData) Equal(other ItineraryData) bool {
	if len(d.values) != len(other.values) {
		return false
	}
	for k, v := range d.values {
		if ov, ok := other.values[k]; !ok || ov != v {
			return false
		}
	}
	return true
}

// Map returns a plain copy, flags as bool and everything else as string
func (d ItineraryData) Map() map[string]interface{} {
	out := make(map[string]interface{}, len(d.values))
	for k, v := range d.values {
		if v.IsFlag {
			out[string(k)] = v.Flag
		} else {
			out[string(k)] = v.Text
		}
	}
	return out
}

// MarshalJSON encodes the record as a flat JSON object
func (d ItineraryData) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Map())
}

// UnmarshalJSON decodes a flat JSON object; bools become flags, numbers and
// strings become text
func (d *ItineraryData) UnmarshalJSON(data []byte) error {
	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	values := make(map[FieldKey]Value, len(raw))
	for k, v := range raw {
		switch typed := v.(type) {
		case bool:
			values[FieldKey(k)] = FlagValue(typed)
		case string:
			values[FieldKey(k)] = TextValue(typed)
		case float64:
			values[FieldKey(k)] = TextValue(strconv.FormatFloat(typed, 'f', -1, 64))
		case nil:
			continue
		default:
			return fmt.Errorf("itinerary field %q: unsupported value type %T", k, v)
		}
	}

	d.values = values
	return nil
}

func (d ItineraryData) clone(capacity int) ItineraryData {
	values := make(map[FieldKey]Value, capacity)
	for k, v := range d.values {
		values[k] = v
	}
	return ItineraryData{values: values}
}
