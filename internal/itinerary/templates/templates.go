// Package templates declares the itinerary shape of every booking mode.
// Templates are composition only; behaviour lives in the services that read them.
package templates

import "github.com/m04kA/SMC-SessionService/internal/domain"

// roundTrip is the transport leg shared by modes that return the child home
func roundTrip(arrivalTimeKey, destinationAddressKey domain.FieldKey) domain.Segment {
	return domain.Transport(domain.TransportSegment{
		PickupAddressKey:      domain.FieldPickupAddress,
		PickupTimeKey:         domain.FieldPickupTime,
		DropoffAddressKey:     domain.FieldDropoffAddress,
		DropoffTimeKey:        domain.FieldDropoffTime,
		SameAsPickupKey:       domain.FieldDropoffSameAsPickup,
		SuggestFromTimeKey:    arrivalTimeKey,
		SuggestFromAddressKey: destinationAddressKey,
	})
}

var registry = map[domain.Mode]*domain.Template{
	domain.ModeSingleDayEvent: {
		Mode: domain.ModeSingleDayEvent,
		Name: "Single-day event",
		Segments: []domain.Segment{
			roundTrip(domain.FieldEventStartTime, domain.FieldEventAddress),
			domain.Stop(domain.StopSegment{
				Label:        "Event",
				AddressKey:   domain.FieldEventAddress,
				StartTimeKey: domain.FieldEventStartTime,
				EndTimeKey:   domain.FieldEventEndTime,
			}),
		},
		ExtraKeys: []domain.FieldKey{domain.FieldEventName},
	},

	// Only the first day is modelled; later days follow the same pattern
	domain.ModeMultiDayEvent: {
		Mode: domain.ModeMultiDayEvent,
		Name: "Multi-day event",
		Segments: []domain.Segment{
			roundTrip(domain.FieldEventStartTime, domain.FieldEventAddress),
			domain.Stop(domain.StopSegment{
				Label:        "Event (day 1)",
				AddressKey:   domain.FieldEventAddress,
				StartTimeKey: domain.FieldEventStartTime,
				EndTimeKey:   domain.FieldEventEndTime,
			}),
		},
		ExtraKeys: []domain.FieldKey{domain.FieldEventName, domain.FieldEventDays, domain.FieldOvernightStay},
	},

	domain.ModeHospitalAppointment: {
		Mode: domain.ModeHospitalAppointment,
		Name: "Hospital appointment",
		Segments: []domain.Segment{
			roundTrip(domain.FieldAppointmentTime, domain.FieldHospitalAddress),
			domain.Stop(domain.StopSegment{
				Label:        "Hospital",
				AddressKey:   domain.FieldHospitalAddress,
				StartTimeKey: domain.FieldAppointmentTime,
			}),
			domain.Wait("Waiting room", domain.FieldWaitingRoomDuration),
		},
		ExtraKeys: []domain.FieldKey{domain.FieldHospitalName, domain.FieldMedicalNotes},
	},

	domain.ModeExamSupport: {
		Mode: domain.ModeExamSupport,
		Name: "Exam support",
		Segments: []domain.Segment{
			roundTrip(domain.FieldExamStartTime, domain.FieldExamAddress),
			domain.Stop(domain.StopSegment{
				Label:        "Exam",
				AddressKey:   domain.FieldExamAddress,
				StartTimeKey: domain.FieldExamStartTime,
			}),
		},
		ExtraKeys:        []domain.FieldKey{domain.FieldExamName, domain.FieldAccessArrangements},
		FixedDurationKey: domain.FieldExamDuration,
	},

	// One-way: the child stays at school, there is no return leg
	domain.ModeSchoolRun: {
		Mode: domain.ModeSchoolRun,
		Name: "School run",
		Segments: []domain.Segment{
			domain.Transport(domain.TransportSegment{
				PickupAddressKey:      domain.FieldPickupAddress,
				PickupTimeKey:         domain.FieldPickupTime,
				SuggestFromTimeKey:    domain.FieldSchoolStartTime,
				SuggestFromAddressKey: domain.FieldSchoolAddress,
			}),
			domain.Stop(domain.StopSegment{
				Label:        "School",
				AddressKey:   domain.FieldSchoolAddress,
				StartTimeKey: domain.FieldSchoolStartTime,
			}),
		},
		ExtraKeys: []domain.FieldKey{domain.FieldSchoolName},
	},
}

// GetTemplateForMode returns the template of mode. The returned template is
// shared and must be treated as read-only.
func GetTemplateForMode(mode domain.Mode) (*domain.Template, bool) {
	tpl, ok := registry[mode]
	return tpl, ok
}

// All returns every registered template in display order
func All() []*domain.Template {
	out := make([]*domain.Template, 0, len(domain.ItineraryModes))
	for _, mode := range domain.ItineraryModes {
		if tpl, ok := registry[mode]; ok {
			out = append(out, tpl)
		}
	}
	return out
}
