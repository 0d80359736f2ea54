package strategy

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-SessionService/internal/domain"
	"github.com/m04kA/SMC-SessionService/internal/itinerary/suggestions"
	"github.com/m04kA/SMC-SessionService/internal/itinerary/templates"
	"github.com/m04kA/SMC-SessionService/internal/itinerary/validation"
	"github.com/m04kA/SMC-SessionService/pkg/types"
)

// examCheckInMinutes candidates are expected at the venue before the exam starts
const examCheckInMinutes = 30

const (
	SectionPickup   = "pickup"
	SectionEvent    = "event"
	SectionHospital = "hospital"
	SectionExam     = "exam"
	SectionSchool   = "school"
	SectionReturn   = "return"
	SectionNotes    = "notes"
)

func templateOf(mode domain.Mode) *domain.Template {
	tpl, ok := templates.GetTemplateForMode(mode)
	if !ok {
		panic(fmt.Sprintf("strategy: no template registered for mode %s", mode))
	}
	return tpl
}

var (
	pickupSection = validation.Section{
		Name: SectionPickup,
		Keys: []domain.FieldKey{domain.FieldPickupAddress, domain.FieldPickupTime},
	}
	returnSection = validation.Section{
		Name: SectionReturn,
		Keys: []domain.FieldKey{domain.FieldDropoffAddress, domain.FieldDropoffTime, domain.FieldDropoffSameAsPickup},
	}
	notesSection = validation.Section{Name: SectionNotes}
)

func newSingleDayEvent(cfg suggestions.Config) *Strategy {
	return &Strategy{
		Key: domain.ModeSingleDayEvent,
		Meta: Meta{
			Title:       "Day out",
			Description: "A supervised trip to a single event, with travel there and back",
			Icon:        "calendar-day",
			Badge:       "Most booked",
			Popular:     true,
		},
		Sections: []validation.Section{
			{Name: SectionEvent, Keys: []domain.FieldKey{
				domain.FieldEventName, domain.FieldEventAddress, domain.FieldEventStartTime, domain.FieldEventEndTime,
			}},
			pickupSection,
			returnSection,
			notesSection,
		},
		Template:   templateOf(domain.ModeSingleDayEvent),
		suggestCfg: cfg,
		summary:    eventSummary,
	}
}

func newMultiDayEvent(cfg suggestions.Config) *Strategy {
	return &Strategy{
		Key: domain.ModeMultiDayEvent,
		Meta: Meta{
			Title:       "Multi-day event",
			Description: "Camps and tournaments over several days; the first day's travel is planned here",
			Icon:        "calendar-range",
		},
		Sections: []validation.Section{
			{Name: SectionEvent, Keys: []domain.FieldKey{
				domain.FieldEventName, domain.FieldEventDays, domain.FieldOvernightStay,
				domain.FieldEventAddress, domain.FieldEventStartTime, domain.FieldEventEndTime,
			}},
			pickupSection,
			returnSection,
			notesSection,
		},
		Template:   templateOf(domain.ModeMultiDayEvent),
		suggestCfg: cfg,
		summary: func(s *Strategy, data domain.ItineraryData) string {
			days := strings.TrimSpace(data.Text(domain.FieldEventDays))
			base := eventSummary(s, data)
			if days == "" {
				return base
			}
			return joinSummary(days+" days", base)
		},
	}
}

func newHospitalAppointment(cfg suggestions.Config) *Strategy {
	return &Strategy{
		Key: domain.ModeHospitalAppointment,
		Meta: Meta{
			Title:       "Hospital appointment",
			Description: "Escort to a hospital or clinic appointment, including time in the waiting room",
			Icon:        "hospital",
			Badge:       "Medical",
		},
		Sections: []validation.Section{
			{Name: SectionHospital, Keys: []domain.FieldKey{
				domain.FieldHospitalName, domain.FieldHospitalAddress, domain.FieldAppointmentTime,
				domain.FieldWaitingRoomDuration, domain.FieldMedicalNotes,
			}},
			pickupSection,
			returnSection,
			notesSection,
		},
		Template:   templateOf(domain.ModeHospitalAppointment),
		suggestCfg: cfg,
		summary: func(s *Strategy, data domain.ItineraryData) string {
			where := firstNonBlank(data.Text(domain.FieldHospitalName), data.Text(domain.FieldHospitalAddress))
			appointment := ""
			if where != "" {
				appointment = "appointment at " + where
			}
			if t := strings.TrimSpace(data.Text(domain.FieldAppointmentTime)); t != "" {
				appointment = joinWords(appointment, "at "+t)
			}
			return joinSummary(appointment, s.pickupPhrase(data), s.dropoffPhrase(data))
		},
	}
}

func newExamSupport(cfg suggestions.Config) *Strategy {
	return &Strategy{
		Key: domain.ModeExamSupport,
		Meta: Meta{
			Title:       "Exam support",
			Description: "Travel to an exam venue with support before and after the exam",
			Icon:        "graduation-cap",
		},
		Sections: []validation.Section{
			{Name: SectionExam, Keys: []domain.FieldKey{
				domain.FieldExamName, domain.FieldExamAddress, domain.FieldExamStartTime,
				domain.FieldExamDuration, domain.FieldAccessArrangements,
			}},
			pickupSection,
			returnSection,
			notesSection,
		},
		Template:   templateOf(domain.ModeExamSupport),
		suggestCfg: cfg,
		arrival: func(_ *Strategy, data domain.ItineraryData) types.TimeString {
			start, err := types.NewTimeStringFromString(data.Text(domain.FieldExamStartTime))
			if err != nil {
				return ""
			}
			checkIn, err := start.AddMinutes(-examCheckInMinutes)
			if err != nil {
				return ""
			}
			return checkIn
		},
		summary: func(s *Strategy, data domain.ItineraryData) string {
			exam := firstNonBlank(data.Text(domain.FieldExamName), "exam")
			if venue := strings.TrimSpace(data.Text(domain.FieldExamAddress)); venue != "" {
				exam += " at " + venue
			}
			if t := strings.TrimSpace(data.Text(domain.FieldExamStartTime)); t != "" {
				exam += ", starts " + t
			}
			return joinSummary(exam, s.pickupPhrase(data), s.dropoffPhrase(data))
		},
	}
}

func newSchoolRun(cfg suggestions.Config) *Strategy {
	return &Strategy{
		Key: domain.ModeSchoolRun,
		Meta: Meta{
			Title:       "School run",
			Description: "Morning escort from home to school",
			Icon:        "school",
			Badge:       "Weekdays",
		},
		Sections: []validation.Section{
			pickupSection,
			{Name: SectionSchool, Keys: []domain.FieldKey{
				domain.FieldSchoolName, domain.FieldSchoolAddress, domain.FieldSchoolStartTime,
			}},
			notesSection,
		},
		Template:   templateOf(domain.ModeSchoolRun),
		suggestCfg: cfg,
		summary: func(s *Strategy, data domain.ItineraryData) string {
			school := firstNonBlank(data.Text(domain.FieldSchoolName), data.Text(domain.FieldSchoolAddress))
			if school != "" {
				school = "to " + school
			}
			if t := strings.TrimSpace(data.Text(domain.FieldSchoolStartTime)); t != "" {
				school = joinWords(school, "for "+t)
			}
			return joinSummary(school, s.pickupPhrase(data))
		},
	}
}

func eventSummary(s *Strategy, data domain.ItineraryData) string {
	event := firstNonBlank(data.Text(domain.FieldEventName), data.Text(domain.FieldEventAddress))
	if event != "" && strings.TrimSpace(data.Text(domain.FieldEventName)) != "" {
		if addr := strings.TrimSpace(data.Text(domain.FieldEventAddress)); addr != "" {
			event += " at " + addr
		}
	}
	event = joinWords(event, timeRange(data.Text(domain.FieldEventStartTime), data.Text(domain.FieldEventEndTime)))
	return joinSummary(event, s.pickupPhrase(data), s.dropoffPhrase(data))
}

func firstNonBlank(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

func joinWords(words ...string) string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		if w = strings.TrimSpace(w); w != "" {
			out = append(out, w)
		}
	}
	return strings.Join(out, " ")
}
