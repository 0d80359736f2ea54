package duration

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SessionService/internal/domain"
	"github.com/m04kA/SMC-SessionService/internal/itinerary/store"
	"github.com/m04kA/SMC-SessionService/internal/itinerary/templates"
)

func template(t *testing.T, mode domain.Mode) *domain.Template {
	t.Helper()
	tpl, ok := templates.GetTemplateForMode(mode)
	require.True(t, ok)
	return tpl
}

func fill(tpl *domain.Template, fields map[domain.FieldKey]string, flags ...domain.FieldKey) domain.ItineraryData {
	data := store.Initialize(tpl)
	for k, v := range fields {
		data = data.WithText(k, v)
	}
	for _, k := range flags {
		data = data.WithFlag(k, true)
	}
	return data
}

func TestEstimate_SingleDayEventScenario(t *testing.T) {
	tpl := template(t, domain.ModeSingleDayEvent)
	data := fill(tpl, map[domain.FieldKey]string{
		domain.FieldPickupAddress:  "10 Elm St",
		domain.FieldEventAddress:   "Zoo",
		domain.FieldEventStartTime: "10:00",
		domain.FieldEventEndTime:   "13:00",
	}, domain.FieldDropoffSameAsPickup)

	b := Compute(tpl, data)
	assert.Equal(t, Breakdown{OnSite: 3, Outbound: 2, Return: 2}, b)
	assert.Equal(t, 7.0, Estimate(tpl, data, 10))
	assert.Equal(t, 5.0, Estimate(tpl, data, 5))
}

func TestEstimate_HospitalScenario(t *testing.T) {
	tpl := template(t, domain.ModeHospitalAppointment)
	data := fill(tpl, map[domain.FieldKey]string{
		domain.FieldPickupAddress:       "10 Elm St",
		domain.FieldHospitalAddress:     " 10 ELM st ",
		domain.FieldWaitingRoomDuration: "1.5",
		domain.FieldAppointmentTime:     "14:00",
	})

	assert.Equal(t, Breakdown{OnSite: 2.5, Outbound: 1, Return: 1}, Compute(tpl, data))
	assert.Equal(t, 4.5, Estimate(tpl, data, 20))
}

func TestEstimate_ActualGapOverridesHeuristic(t *testing.T) {
	tpl := template(t, domain.ModeSingleDayEvent)
	data := fill(tpl, map[domain.FieldKey]string{
		domain.FieldPickupAddress:  "10 Elm St",
		domain.FieldPickupTime:     "09:30",
		domain.FieldEventAddress:   "Zoo",
		domain.FieldEventStartTime: "10:00",
		domain.FieldEventEndTime:   "13:00",
		domain.FieldDropoffAddress: "Gran's house",
		domain.FieldDropoffTime:    "14:15",
	})

	b := Compute(tpl, data)
	assert.Equal(t, 0.5, b.Outbound)
	assert.Equal(t, 1.25, b.Return)
	assert.Equal(t, 3.0, b.OnSite)
}

func TestEstimate_NonPositiveGapFallsBackToHeuristic(t *testing.T) {
	tpl := template(t, domain.ModeSingleDayEvent)
	data := fill(tpl, map[domain.FieldKey]string{
		domain.FieldPickupAddress:  "Zoo",
		domain.FieldPickupTime:     "10:30",
		domain.FieldEventAddress:   "zoo",
		domain.FieldEventStartTime: "10:00",
	})

	assert.Equal(t, 1.0, Compute(tpl, data).Outbound)
}

func TestEstimate_SameAsPickupSubstitutesDropoff(t *testing.T) {
	tpl := template(t, domain.ModeSingleDayEvent)
	base := map[domain.FieldKey]string{
		domain.FieldPickupAddress:  "Zoo",
		domain.FieldEventAddress:   "Zoo",
		domain.FieldDropoffAddress: "Somewhere else",
	}

	assert.Equal(t, 2.0, Compute(tpl, fill(tpl, base)).Return)
	assert.Equal(t, 1.0, Compute(tpl, fill(tpl, base, domain.FieldDropoffSameAsPickup)).Return)
}

func TestEstimate_ExamFixedDurationFallback(t *testing.T) {
	tpl := template(t, domain.ModeExamSupport)
	data := fill(tpl, map[domain.FieldKey]string{
		domain.FieldPickupAddress: "10 Elm St",
		domain.FieldExamAddress:   "Town Hall",
		domain.FieldExamStartTime: "09:00",
		domain.FieldExamDuration:  "2.5",
	}, domain.FieldDropoffSameAsPickup)

	assert.Equal(t, Breakdown{OnSite: 2.5, Outbound: 2, Return: 2}, Compute(tpl, data))
}

func TestEstimate_SchoolRunHasNoReturnLeg(t *testing.T) {
	tpl := template(t, domain.ModeSchoolRun)
	data := fill(tpl, map[domain.FieldKey]string{
		domain.FieldPickupAddress:   "10 Elm St",
		domain.FieldSchoolAddress:   "Hillside Primary",
		domain.FieldSchoolStartTime: "08:45",
		domain.FieldPickupTime:      "08:00",
	})

	assert.Equal(t, Breakdown{Outbound: 0.75}, Compute(tpl, data))
	assert.Equal(t, 0.75, Estimate(tpl, data, 3))
}

func TestEstimate_Clamping(t *testing.T) {
	tpl := template(t, domain.ModeSchoolRun)
	empty := store.Initialize(tpl)

	cases := []struct {
		name      string
		data      domain.ItineraryData
		remaining float64
	}{
		{"empty data", empty, 10},
		{"zero budget", empty, 0},
		{"negative budget", empty, -4},
		{"nan budget", empty, math.NaN()},
		{"tiny gap", fill(tpl, map[domain.FieldKey]string{
			domain.FieldPickupTime:      "08:40",
			domain.FieldSchoolStartTime: "08:45",
		}), 10},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Estimate(tpl, tc.data, tc.remaining)
			upper := math.Max(0.5, tc.remaining)
			if math.IsNaN(tc.remaining) {
				upper = 0.5
			}
			assert.GreaterOrEqual(t, got, 0.5)
			assert.LessOrEqual(t, got, upper)
		})
	}
}

func TestEstimate_MonotonicInStopRange(t *testing.T) {
	tpl := template(t, domain.ModeSingleDayEvent)
	ends := []string{"10:00", "10:30", "12:00", "13:45", "14:00", "14:30", "16:00"}

	prev := 0.0
	for _, end := range ends {
		data := fill(tpl, map[domain.FieldKey]string{
			domain.FieldPickupAddress:  "10 Elm St",
			domain.FieldPickupTime:     "09:00",
			domain.FieldEventAddress:   "Zoo",
			domain.FieldEventStartTime: "10:00",
			domain.FieldEventEndTime:   end,
			domain.FieldDropoffTime:    "14:00",
		}, domain.FieldDropoffSameAsPickup)

		got := Estimate(tpl, data, 24)
		assert.GreaterOrEqual(t, got, prev, "end=%s", end)
		prev = got
	}
}

func TestEstimate_Deterministic(t *testing.T) {
	tpl := template(t, domain.ModeHospitalAppointment)
	data := fill(tpl, map[domain.FieldKey]string{
		domain.FieldWaitingRoomDuration: "2",
		domain.FieldAppointmentTime:     "11:00",
	})

	first := Estimate(tpl, data, 8)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Estimate(tpl, data, 8))
	}
}

func TestParseHours(t *testing.T) {
	assert.Equal(t, 1.5, ParseHours(" 1.5 "))
	assert.Equal(t, 0.0, ParseHours(""))
	assert.Equal(t, 0.0, ParseHours("-2"))
	assert.Equal(t, 0.0, ParseHours("abc"))
	assert.Equal(t, 0.0, ParseHours("NaN"))
}
