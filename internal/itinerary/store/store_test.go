package store

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SessionService/internal/domain"
	"github.com/m04kA/SMC-SessionService/internal/itinerary/templates"
)

func mustTemplate(t *testing.T, mode domain.Mode) *domain.Template {
	t.Helper()
	tpl, ok := templates.GetTemplateForMode(mode)
	require.True(t, ok)
	return tpl
}

func TestInitialize_EveryDeclaredKeyHasDefault(t *testing.T) {
	for _, tpl := range templates.All() {
		data := Initialize(tpl)
		for _, key := range tpl.Keys() {
			v, ok := Get(data, key)
			require.True(t, ok, "mode %s missing key %s", tpl.Mode, key)
			assert.Equal(t, key.DefaultValue(), v)
		}
		assert.Equal(t, len(tpl.Keys()), data.Len())
	}

	hospital := Initialize(mustTemplate(t, domain.ModeHospitalAppointment))
	assert.Equal(t, "0", hospital.Text(domain.FieldWaitingRoomDuration))
	assert.False(t, hospital.Flag(domain.FieldDropoffSameAsPickup))
}

func TestInitializeForParent_PrefillsPickup(t *testing.T) {
	data := InitializeForParent(mustTemplate(t, domain.ModeSchoolRun), "10 Elm St")
	assert.Equal(t, "10 Elm St", data.Text(domain.FieldPickupAddress))
}

func TestPatch_IdempotentAndNonDestructive(t *testing.T) {
	tpl := mustTemplate(t, domain.ModeSingleDayEvent)
	current := Initialize(tpl)
	partial := domain.NewItineraryData().
		WithText(domain.FieldEventAddress, "Zoo").
		WithFlag(domain.FieldDropoffSameAsPickup, true)

	once := Patch(current, partial)
	twice := Patch(once, partial)

	assert.True(t, once.Equal(twice))
	assert.Equal(t, current.Len(), once.Len())
	assert.Equal(t, "", current.Text(domain.FieldEventAddress), "input must not change")
	assert.Equal(t, "Zoo", once.Text(domain.FieldEventAddress))
}

func TestPatch_EmptyPartialKeepsKeys(t *testing.T) {
	current := Initialize(mustTemplate(t, domain.ModeExamSupport))
	assert.True(t, current.Equal(Patch(current, domain.NewItineraryData())))
}

func TestReinitialize_PreservesSharedKeys(t *testing.T) {
	event := mustTemplate(t, domain.ModeSingleDayEvent)
	prior := Patch(Initialize(event), domain.NewItineraryData().
		WithText(domain.FieldPickupAddress, "1 Oak Rd").
		WithText(domain.FieldPickupTime, "08:00").
		WithText(domain.FieldEventAddress, "Zoo"))

	hospital := mustTemplate(t, domain.ModeHospitalAppointment)
	next := Reinitialize(hospital, prior, "10 Elm St")

	assert.Equal(t, "1 Oak Rd", next.Text(domain.FieldPickupAddress))
	assert.Equal(t, "08:00", next.Text(domain.FieldPickupTime))
	assert.False(t, next.Has(domain.FieldEventAddress))
	assert.Equal(t, "0", next.Text(domain.FieldWaitingRoomDuration))
}

func TestReinitialize_FallsBackToParentAddress(t *testing.T) {
	next := Reinitialize(mustTemplate(t, domain.ModeExamSupport), domain.NewItineraryData(), "10 Elm St")
	assert.Equal(t, "10 Elm St", next.Text(domain.FieldPickupAddress))
}

func TestResetForNextBooking(t *testing.T) {
	tpl := mustTemplate(t, domain.ModeHospitalAppointment)
	data := Patch(Initialize(tpl), domain.NewItineraryData().
		WithText(domain.FieldPickupAddress, "10 Elm St").
		WithText(domain.FieldPickupTime, "12:00").
		WithText(domain.FieldHospitalAddress, "St Mary's").
		WithText(domain.FieldHospitalName, "St Mary's Hospital").
		WithText(domain.FieldAppointmentTime, "14:00").
		WithText(domain.FieldWaitingRoomDuration, "1.5").
		WithFlag(domain.FieldDropoffSameAsPickup, true))

	kept := ResetForNextBooking(tpl, data, true)
	assert.Equal(t, "10 Elm St", kept.Text(domain.FieldPickupAddress))
	assert.Equal(t, "", kept.Text(domain.FieldPickupTime))
	assert.Equal(t, "", kept.Text(domain.FieldHospitalAddress))
	assert.Equal(t, "", kept.Text(domain.FieldAppointmentTime))
	assert.Equal(t, "0", kept.Text(domain.FieldWaitingRoomDuration))
	assert.Equal(t, "St Mary's Hospital", kept.Text(domain.FieldHospitalName))
	assert.True(t, kept.Flag(domain.FieldDropoffSameAsPickup))

	cleared := ResetForNextBooking(tpl, data, false)
	assert.Equal(t, "", cleared.Text(domain.FieldPickupAddress))
}

func TestFromStrings(t *testing.T) {
	tpl := mustTemplate(t, domain.ModeSingleDayEvent)
	data := FromStrings(tpl, map[string]string{
		"eventAddress":        "Park",
		"dropoffSameAsPickup": "Yes",
		"hospitalAddress":     "ignored",
	})

	assert.Equal(t, "Park", data.Text(domain.FieldEventAddress))
	assert.True(t, data.Flag(domain.FieldDropoffSameAsPickup))
	assert.False(t, data.Has(domain.FieldHospitalAddress))
}

func TestConform(t *testing.T) {
	tpl := mustTemplate(t, domain.ModeHospitalAppointment)

	var partial domain.ItineraryData
	require.NoError(t, json.Unmarshal([]byte(`{
		"dropoffSameAsPickup": "true",
		"waitingRoomDuration": 1.5,
		"hospitalName": true,
		"bogusKey": "x",
		"eventAddress": "Park"
	}`), &partial))

	data := Conform(tpl, partial)

	assert.True(t, data.Flag(domain.FieldDropoffSameAsPickup))
	assert.Equal(t, "1.5", data.Text(domain.FieldWaitingRoomDuration))
	assert.Equal(t, "true", data.Text(domain.FieldHospitalName))
	assert.False(t, data.Has("bogusKey"))
	assert.False(t, data.Has(domain.FieldEventAddress))
	assert.Equal(t, 3, data.Len())
}

func TestReinitialize_CoercesCarriedFlags(t *testing.T) {
	tpl := mustTemplate(t, domain.ModeSingleDayEvent)
	prior := domain.NewItineraryData().WithText(domain.FieldDropoffSameAsPickup, "yes")

	data := Reinitialize(tpl, prior, "")

	assert.True(t, data.Flag(domain.FieldDropoffSameAsPickup))
}
