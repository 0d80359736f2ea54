package domain

// Mode identifies a booking mode (single-day event, hospital appointment, ...)
type Mode string

const (
	ModeSingleDayEvent      Mode = "single-day-event"
	ModeMultiDayEvent       Mode = "multi-day-event"
	ModeHospitalAppointment Mode = "hospital-appointment"
	ModeExamSupport         Mode = "exam-support"
	ModeSchoolRun           Mode = "school-run"
)

// ItineraryModes lists every mode that carries an itinerary, in display order
var ItineraryModes = []Mode{
	ModeSingleDayEvent,
	ModeMultiDayEvent,
	ModeHospitalAppointment,
	ModeExamSupport,
	ModeSchoolRun,
}

func (m Mode) String() string {
	return string(m)
}
