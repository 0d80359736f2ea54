package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SessionService/internal/domain"
)

func TestGetTemplateForMode_AllModesRegistered(t *testing.T) {
	for _, mode := range domain.ItineraryModes {
		tpl, ok := GetTemplateForMode(mode)
		require.True(t, ok, "mode %s", mode)
		assert.Equal(t, mode, tpl.Mode)
		assert.NotEmpty(t, tpl.Segments)
		assert.NotNil(t, tpl.Transport(), "mode %s has no transport leg", mode)
	}
	assert.Len(t, All(), len(domain.ItineraryModes))
}

func TestGetTemplateForMode_Unknown(t *testing.T) {
	tpl, ok := GetTemplateForMode("unknown-mode")
	assert.False(t, ok)
	assert.Nil(t, tpl)
}

func TestTemplates_OnlyKnownKeys(t *testing.T) {
	for _, tpl := range All() {
		for _, key := range tpl.Keys() {
			assert.True(t, key.IsKnown(), "mode %s declares unknown key %s", tpl.Mode, key)
		}
	}
}

func TestTemplates_Shapes(t *testing.T) {
	hospital, _ := GetTemplateForMode(domain.ModeHospitalAppointment)
	assert.True(t, hospital.HasWait())

	school, _ := GetTemplateForMode(domain.ModeSchoolRun)
	assert.False(t, school.Transport().HasReturn())

	exam, _ := GetTemplateForMode(domain.ModeExamSupport)
	assert.Equal(t, domain.FieldExamDuration, exam.FixedDurationKey)
}
