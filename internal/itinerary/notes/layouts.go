package notes

import "github.com/m04kA/SMC-SessionService/internal/domain"

// Separator precedes the itinerary block. The separator, the headers and the
// labels below are persisted in session notes; changing any of them breaks
// parsing of notes that are already stored.
const Separator = "--- Session Itinerary ---"

// SameAsPickupText is rendered instead of a drop-off address equal to pickup
const SameAsPickupText = "Same as pickup"

type lineKind int

const (
	lineInline  lineKind = iota // "Label: value"
	lineBlock                   // "Label:" then the value on the following lines
	lineFlag                    // "Label: Yes|No"
	lineDropoff                 // block, or SameAsPickupText when the flag is set
)

type fieldLine struct {
	key   domain.FieldKey
	label string
	kind  lineKind
	// flag set by a SameAsPickupText line (lineDropoff only)
	sameAsKey domain.FieldKey
}

type layout struct {
	mode   domain.Mode
	header string
	lines  []fieldLine
}

var pickupLines = []fieldLine{
	{key: domain.FieldPickupAddress, label: "Pickup Address", kind: lineBlock},
	{key: domain.FieldPickupTime, label: "Pickup Time", kind: lineInline},
}

var dropoffLines = []fieldLine{
	{key: domain.FieldDropoffAddress, label: "Drop-off Address", kind: lineDropoff, sameAsKey: domain.FieldDropoffSameAsPickup},
	{key: domain.FieldDropoffTime, label: "Drop-off Time", kind: lineInline},
}

func compose(parts ...[]fieldLine) []fieldLine {
	out := make([]fieldLine, 0)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

var layouts = []layout{
	{
		mode:   domain.ModeSingleDayEvent,
		header: "[Single-Day Event]",
		lines: compose(
			[]fieldLine{
				{key: domain.FieldEventName, label: "Event", kind: lineInline},
				{key: domain.FieldEventAddress, label: "Event Address", kind: lineBlock},
				{key: domain.FieldEventStartTime, label: "Event Start", kind: lineInline},
				{key: domain.FieldEventEndTime, label: "Event End", kind: lineInline},
			},
			pickupLines,
			dropoffLines,
		),
	},
	{
		mode:   domain.ModeMultiDayEvent,
		header: "[Multi-Day Event]",
		lines: compose(
			[]fieldLine{
				{key: domain.FieldEventName, label: "Event", kind: lineInline},
				{key: domain.FieldEventDays, label: "Number of Days", kind: lineInline},
				{key: domain.FieldOvernightStay, label: "Overnight Stay", kind: lineFlag},
				{key: domain.FieldEventAddress, label: "Event Address", kind: lineBlock},
				{key: domain.FieldEventStartTime, label: "Day 1 Start", kind: lineInline},
				{key: domain.FieldEventEndTime, label: "Day 1 End", kind: lineInline},
			},
			pickupLines,
			dropoffLines,
		),
	},
	{
		mode:   domain.ModeHospitalAppointment,
		header: "[Hospital Appointment]",
		lines: compose(
			[]fieldLine{
				{key: domain.FieldHospitalName, label: "Hospital", kind: lineInline},
				{key: domain.FieldHospitalAddress, label: "Hospital Address", kind: lineBlock},
				{key: domain.FieldAppointmentTime, label: "Appointment Time", kind: lineInline},
				{key: domain.FieldWaitingRoomDuration, label: "Waiting Room (hours)", kind: lineInline},
			},
			pickupLines,
			dropoffLines,
			[]fieldLine{
				{key: domain.FieldMedicalNotes, label: "Medical Notes", kind: lineBlock},
			},
		),
	},
	{
		mode:   domain.ModeExamSupport,
		header: "[Exam Support]",
		lines: compose(
			[]fieldLine{
				{key: domain.FieldExamName, label: "Exam", kind: lineInline},
				{key: domain.FieldExamAddress, label: "Exam Venue", kind: lineBlock},
				{key: domain.FieldExamStartTime, label: "Exam Start", kind: lineInline},
				{key: domain.FieldExamDuration, label: "Exam Duration (hours)", kind: lineInline},
			},
			pickupLines,
			dropoffLines,
			[]fieldLine{
				{key: domain.FieldAccessArrangements, label: "Access Arrangements", kind: lineBlock},
			},
		),
	},
	{
		mode:   domain.ModeSchoolRun,
		header: "[School Run]",
		lines: compose(
			[]fieldLine{
				{key: domain.FieldSchoolName, label: "School", kind: lineInline},
				{key: domain.FieldSchoolAddress, label: "School Address", kind: lineBlock},
				{key: domain.FieldSchoolStartTime, label: "School Start", kind: lineInline},
			},
			pickupLines,
		),
	},
}
