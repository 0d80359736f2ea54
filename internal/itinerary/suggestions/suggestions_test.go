package suggestions

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-SessionService/pkg/types"
)

func TestSuggest_DifferentAddresses(t *testing.T) {
	got := Suggest(DefaultConfig(), "10:00", "10 Elm St", "Zoo")
	assert.Equal(t, []types.TimeString{"06:00", "06:30", "07:00", "07:30", "08:00"}, got)
}

func TestSuggest_SameAddressUsesOneHour(t *testing.T) {
	got := Suggest(DefaultConfig(), "09:00", "Zoo", " zoo ")
	assert.Equal(t, []types.TimeString{"06:00", "06:30", "07:00", "07:30", "08:00"}, got)
}

func TestSuggest_CandidatesFilteredByFloor(t *testing.T) {
	got := Suggest(DefaultConfig(), "08:45", "10 Elm St", "Hillside Primary")
	assert.Equal(t, []types.TimeString{"06:15", "06:45"}, got)
}

func TestSuggest_PrimaryBeforeFloorGivesNothing(t *testing.T) {
	assert.Empty(t, Suggest(DefaultConfig(), "07:30", "10 Elm St", "Zoo"))
	assert.Empty(t, Suggest(DefaultConfig(), "00:30", "10 Elm St", "Zoo"))
}

func TestSuggest_MissingOrInvalidArrival(t *testing.T) {
	assert.Empty(t, Suggest(DefaultConfig(), "", "a", "b"))
	assert.Empty(t, Suggest(DefaultConfig(), "25:99", "a", "b"))
}

func TestSuggest_NeverBeforeFloor(t *testing.T) {
	cfg := Config{Floor: "07:00", OffsetsMinutes: []int{-30, -60, -90, -120, 0, -30}}

	for minutes := 0; minutes < 24*60; minutes += 5 {
		arrival, err := types.FromMinutes(minutes)
		if err != nil {
			t.Fatal(err)
		}
		got := Suggest(cfg, arrival, "Home", "Venue")
		for i, s := range got {
			assert.False(t, s.IsBefore("07:00"), "arrival %s gave %s", arrival, s)
			if i > 0 {
				assert.True(t, got[i-1].IsBefore(s), "not strictly ascending for arrival %s", arrival)
			}
		}
	}
}

func TestPrimary(t *testing.T) {
	p, ok := Primary(DefaultConfig(), "14:00", "10 Elm St", "St Mary's")
	assert.True(t, ok)
	assert.Equal(t, types.TimeString("12:00"), p)

	_, ok = Primary(DefaultConfig(), "06:30", "10 Elm St", "10 Elm St")
	assert.False(t, ok)
}

func TestConfig_InvalidFloorFallsBackToDefault(t *testing.T) {
	got := Suggest(Config{Floor: "bogus"}, "08:00", "a", "b")
	assert.Equal(t, []types.TimeString{"06:00"}, got)
}
