// Package records holds one strongly typed itinerary record per mode and the
// adapters between them and the keyed domain.ItineraryData used by the
// itinerary services and the notes codec.
package records

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SessionService/internal/domain"
	"github.com/m04kA/SMC-SessionService/pkg/types"
)

// ErrUnknownMode is returned for a mode without an itinerary record
var ErrUnknownMode = errors.New("records: mode has no itinerary record")

// Record is the typed itinerary of one mode
type Record interface {
	Mode() domain.Mode
	ToData() domain.ItineraryData
}

// Pickup is the outbound leg shared by every mode
type Pickup struct {
	PickupAddress string           `json:"pickupAddress"`
	PickupTime    types.TimeString `json:"pickupTime"`
}

// Return is the way back for round-trip modes
type Return struct {
	DropoffAddress      string           `json:"dropoffAddress"`
	DropoffTime         types.TimeString `json:"dropoffTime"`
	DropoffSameAsPickup bool             `json:"dropoffSameAsPickup"`
}

type SingleDayEvent struct {
	Pickup
	Return
	EventName      string           `json:"eventName"`
	EventAddress   string           `json:"eventAddress"`
	EventStartTime types.TimeString `json:"eventStartTime"`
	EventEndTime   types.TimeString `json:"eventEndTime"`
}

// MultiDayEvent models day 1 only
type MultiDayEvent struct {
	Pickup
	Return
	EventName      string           `json:"eventName"`
	EventDays      string           `json:"eventDays"`
	OvernightStay  bool             `json:"overnightStay"`
	EventAddress   string           `json:"eventAddress"`
	EventStartTime types.TimeString `json:"eventStartTime"`
	EventEndTime   types.TimeString `json:"eventEndTime"`
}

type HospitalAppointment struct {
	Pickup
	Return
	HospitalName        string           `json:"hospitalName"`
	HospitalAddress     string           `json:"hospitalAddress"`
	AppointmentTime     types.TimeString `json:"appointmentTime"`
	WaitingRoomDuration Hours            `json:"waitingRoomDuration"`
	MedicalNotes        string           `json:"medicalNotes"`
}

type ExamSupport struct {
	Pickup
	Return
	ExamName           string           `json:"examName"`
	ExamAddress        string           `json:"examAddress"`
	ExamStartTime      types.TimeString `json:"examStartTime"`
	ExamDuration       Hours            `json:"examDuration"`
	AccessArrangements string           `json:"accessArrangements"`
}

// SchoolRun is one-way: there is no return leg
type SchoolRun struct {
	Pickup
	SchoolName      string           `json:"schoolName"`
	SchoolAddress   string           `json:"schoolAddress"`
	SchoolStartTime types.TimeString `json:"schoolStartTime"`
}

func (SingleDayEvent) Mode() domain.Mode      { return domain.ModeSingleDayEvent }
func (MultiDayEvent) Mode() domain.Mode       { return domain.ModeMultiDayEvent }
func (HospitalAppointment) Mode() domain.Mode { return domain.ModeHospitalAppointment }
func (ExamSupport) Mode() domain.Mode         { return domain.ModeExamSupport }
func (SchoolRun) Mode() domain.Mode           { return domain.ModeSchoolRun }

func (r SingleDayEvent) ToData() domain.ItineraryData {
	return r.Return.write(r.Pickup.write(domain.NewItineraryData())).
		WithText(domain.FieldEventName, r.EventName).
		WithText(domain.FieldEventAddress, r.EventAddress).
		WithText(domain.FieldEventStartTime, r.EventStartTime.String()).
		WithText(domain.FieldEventEndTime, r.EventEndTime.String())
}

func (r MultiDayEvent) ToData() domain.ItineraryData {
	return r.Return.write(r.Pickup.write(domain.NewItineraryData())).
		WithText(domain.FieldEventName, r.EventName).
		WithText(domain.FieldEventDays, r.EventDays).
		WithFlag(domain.FieldOvernightStay, r.OvernightStay).
		WithText(domain.FieldEventAddress, r.EventAddress).
		WithText(domain.FieldEventStartTime, r.EventStartTime.String()).
		WithText(domain.FieldEventEndTime, r.EventEndTime.String())
}

func (r HospitalAppointment) ToData() domain.ItineraryData {
	return r.Return.write(r.Pickup.write(domain.NewItineraryData())).
		WithText(domain.FieldHospitalName, r.HospitalName).
		WithText(domain.FieldHospitalAddress, r.HospitalAddress).
		WithText(domain.FieldAppointmentTime, r.AppointmentTime.String()).
		WithText(domain.FieldWaitingRoomDuration, r.WaitingRoomDuration.String()).
		WithText(domain.FieldMedicalNotes, r.MedicalNotes)
}

func (r ExamSupport) ToData() domain.ItineraryData {
	return r.Return.write(r.Pickup.write(domain.NewItineraryData())).
		WithText(domain.FieldExamName, r.ExamName).
		WithText(domain.FieldExamAddress, r.ExamAddress).
		WithText(domain.FieldExamStartTime, r.ExamStartTime.String()).
		WithText(domain.FieldExamDuration, r.ExamDuration.String()).
		WithText(domain.FieldAccessArrangements, r.AccessArrangements)
}

func (r SchoolRun) ToData() domain.ItineraryData {
	return r.Pickup.write(domain.NewItineraryData()).
		WithText(domain.FieldSchoolName, r.SchoolName).
		WithText(domain.FieldSchoolAddress, r.SchoolAddress).
		WithText(domain.FieldSchoolStartTime, r.SchoolStartTime.String())
}

// FromData builds the typed view of data for mode. Keys the mode does not
// declare are ignored.
func FromData(mode domain.Mode, data domain.ItineraryData) (Record, error) {
	pickup := readPickup(data)

	switch mode {
	case domain.ModeSingleDayEvent:
		return SingleDayEvent{
			Pickup:         pickup,
			Return:         readReturn(data),
			EventName:      data.Text(domain.FieldEventName),
			EventAddress:   data.Text(domain.FieldEventAddress),
			EventStartTime: timeOf(data, domain.FieldEventStartTime),
			EventEndTime:   timeOf(data, domain.FieldEventEndTime),
		}, nil

	case domain.ModeMultiDayEvent:
		return MultiDayEvent{
			Pickup:         pickup,
			Return:         readReturn(data),
			EventName:      data.Text(domain.FieldEventName),
			EventDays:      data.Text(domain.FieldEventDays),
			OvernightStay:  data.Flag(domain.FieldOvernightStay),
			EventAddress:   data.Text(domain.FieldEventAddress),
			EventStartTime: timeOf(data, domain.FieldEventStartTime),
			EventEndTime:   timeOf(data, domain.FieldEventEndTime),
		}, nil

	case domain.ModeHospitalAppointment:
		return HospitalAppointment{
			Pickup:              pickup,
			Return:              readReturn(data),
			HospitalName:        data.Text(domain.FieldHospitalName),
			HospitalAddress:     data.Text(domain.FieldHospitalAddress),
			AppointmentTime:     timeOf(data, domain.FieldAppointmentTime),
			WaitingRoomDuration: ParseHours(data.Text(domain.FieldWaitingRoomDuration)),
			MedicalNotes:        data.Text(domain.FieldMedicalNotes),
		}, nil

	case domain.ModeExamSupport:
		return ExamSupport{
			Pickup:             pickup,
			Return:             readReturn(data),
			ExamName:           data.Text(domain.FieldExamName),
			ExamAddress:        data.Text(domain.FieldExamAddress),
			ExamStartTime:      timeOf(data, domain.FieldExamStartTime),
			ExamDuration:       ParseHours(data.Text(domain.FieldExamDuration)),
			AccessArrangements: data.Text(domain.FieldAccessArrangements),
		}, nil

	case domain.ModeSchoolRun:
		return SchoolRun{
			Pickup:          pickup,
			SchoolName:      data.Text(domain.FieldSchoolName),
			SchoolAddress:   data.Text(domain.FieldSchoolAddress),
			SchoolStartTime: timeOf(data, domain.FieldSchoolStartTime),
		}, nil
	}

	return nil, fmt.Errorf("%w: %s", ErrUnknownMode, mode)
}

// Decode reads the JSON form of the mode's record. Empty input yields the
// zero record.
func Decode(mode domain.Mode, raw []byte) (Record, error) {
	var dst Record
	switch mode {
	case domain.ModeSingleDayEvent:
		dst = &SingleDayEvent{}
	case domain.ModeMultiDayEvent:
		dst = &MultiDayEvent{}
	case domain.ModeHospitalAppointment:
		dst = &HospitalAppointment{}
	case domain.ModeExamSupport:
		dst = &ExamSupport{}
	case domain.ModeSchoolRun:
		dst = &SchoolRun{}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownMode, mode)
	}

	if len(raw) > 0 {
		if err := json.Unmarshal(raw, dst); err != nil {
			return nil, fmt.Errorf("records: decode %s: %w", mode, err)
		}
	}
	return dst, nil
}

func (p Pickup) write(data domain.ItineraryData) domain.ItineraryData {
	return data.
		WithText(domain.FieldPickupAddress, p.PickupAddress).
		WithText(domain.FieldPickupTime, p.PickupTime.String())
}

func (r Return) write(data domain.ItineraryData) domain.ItineraryData {
	return data.
		WithText(domain.FieldDropoffAddress, r.DropoffAddress).
		WithText(domain.FieldDropoffTime, r.DropoffTime.String()).
		WithFlag(domain.FieldDropoffSameAsPickup, r.DropoffSameAsPickup)
}

func readPickup(data domain.ItineraryData) Pickup {
	return Pickup{
		PickupAddress: data.Text(domain.FieldPickupAddress),
		PickupTime:    timeOf(data, domain.FieldPickupTime),
	}
}

func readReturn(data domain.ItineraryData) Return {
	return Return{
		DropoffAddress:      data.Text(domain.FieldDropoffAddress),
		DropoffTime:         timeOf(data, domain.FieldDropoffTime),
		DropoffSameAsPickup: data.Flag(domain.FieldDropoffSameAsPickup),
	}
}

// timeOf keeps the raw text: an unfinished entry stays visible to the user
// and is reported by validation rather than dropped here
func timeOf(data domain.ItineraryData, key domain.FieldKey) types.TimeString {
	return types.TimeString(data.Text(key))
}
