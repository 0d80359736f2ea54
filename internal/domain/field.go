package domain

// FieldKey names one value of an itinerary record
type FieldKey string

// FieldKind describes how a field value is interpreted
type FieldKind int

const (
	KindText FieldKind = iota
	KindTime           // "HH:MM"
	KindHours          // non-negative decimal hours, e.g. "1.5"
	KindFlag
)

const (
	FieldPickupAddress       FieldKey = "pickupAddress"
	FieldPickupTime          FieldKey = "pickupTime"
	FieldDropoffAddress      FieldKey = "dropoffAddress"
	FieldDropoffTime         FieldKey = "dropoffTime"
	FieldDropoffSameAsPickup FieldKey = "dropoffSameAsPickup"

	FieldEventName      FieldKey = "eventName"
	FieldEventAddress   FieldKey = "eventAddress"
	FieldEventStartTime FieldKey = "eventStartTime"
	FieldEventEndTime   FieldKey = "eventEndTime"
	FieldEventDays      FieldKey = "eventDays"
	FieldOvernightStay  FieldKey = "overnightStay"

	FieldHospitalName        FieldKey = "hospitalName"
	FieldHospitalAddress     FieldKey = "hospitalAddress"
	FieldAppointmentTime     FieldKey = "appointmentTime"
	FieldWaitingRoomDuration FieldKey = "waitingRoomDuration"
	FieldMedicalNotes        FieldKey = "medicalNotes"

	FieldExamName           FieldKey = "examName"
	FieldExamAddress        FieldKey = "examAddress"
	FieldExamStartTime      FieldKey = "examStartTime"
	FieldExamDuration       FieldKey = "examDuration"
	FieldAccessArrangements FieldKey = "accessArrangements"

	FieldSchoolName      FieldKey = "schoolName"
	FieldSchoolAddress   FieldKey = "schoolAddress"
	FieldSchoolStartTime FieldKey = "schoolStartTime"
)

type fieldSpec struct {
	kind  FieldKind
	label string
}

var fieldSpecs = map[FieldKey]fieldSpec{
	FieldPickupAddress:       {KindText, "Pickup address"},
	FieldPickupTime:          {KindTime, "Pickup time"},
	FieldDropoffAddress:      {KindText, "Drop-off address"},
	FieldDropoffTime:         {KindTime, "Drop-off time"},
	FieldDropoffSameAsPickup: {KindFlag, "Drop-off same as pickup"},

	FieldEventName:      {KindText, "Event name"},
	FieldEventAddress:   {KindText, "Event address"},
	FieldEventStartTime: {KindTime, "Event start time"},
	FieldEventEndTime:   {KindTime, "Event end time"},
	FieldEventDays:      {KindText, "Number of days"},
	FieldOvernightStay:  {KindFlag, "Overnight stay"},

	FieldHospitalName:        {KindText, "Hospital name"},
	FieldHospitalAddress:     {KindText, "Hospital address"},
	FieldAppointmentTime:     {KindTime, "Appointment time"},
	FieldWaitingRoomDuration: {KindHours, "Waiting room duration"},
	FieldMedicalNotes:        {KindText, "Medical notes"},

	FieldExamName:           {KindText, "Exam name"},
	FieldExamAddress:        {KindText, "Exam venue address"},
	FieldExamStartTime:      {KindTime, "Exam start time"},
	FieldExamDuration:       {KindHours, "Exam duration"},
	FieldAccessArrangements: {KindText, "Access arrangements"},

	FieldSchoolName:      {KindText, "School name"},
	FieldSchoolAddress:   {KindText, "School address"},
	FieldSchoolStartTime: {KindTime, "School start time"},
}

// Kind returns the declared kind of the key; unknown keys are text
func (k FieldKey) Kind() FieldKind {
	return fieldSpecs[k].kind
}

// Label returns the human-readable name used in missing-field lists
func (k FieldKey) Label() string {
	if fs, ok := fieldSpecs[k]; ok {
		return fs.label
	}
	return string(k)
}

// IsKnown reports whether the key belongs to the closed key set
func (k FieldKey) IsKnown() bool {
	_, ok := fieldSpecs[k]
	return ok
}

// DefaultValue returns the empty default for the key's kind
func (k FieldKey) DefaultValue() Value {
	switch k.Kind() {
	case KindFlag:
		return FlagValue(false)
	case KindHours:
		return TextValue("0")
	default:
		return TextValue("")
	}
}
