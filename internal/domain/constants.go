package domain

// Duration estimation constants (hours)
const (
	MinSessionHours        = 0.5
	TravelHoursSameAddress = 1.0
	TravelHoursDifferent   = 2.0
	OnSiteAssumptionHours  = 1.0 // on-site time after a waiting period

	// DefaultRemainingHours is the budget assumed while the budget service is unavailable
	DefaultRemainingHours = 8.0
)

// Pickup suggestion constants
const (
	DefaultSuggestionFloor   = "06:00"
	TravelMinutesSameAddress = 60
	TravelMinutesDifferent   = 120
)

// DefaultSuggestionOffsetsMinutes offsets of the extra candidates relative to the primary suggestion
var DefaultSuggestionOffsetsMinutes = []int{-30, -60, -90, -120}

// Business validation constants
const (
	MaxFreeformNotesLength  = 2000
	MaxCustomActivities     = 10
	MaxCustomActivityLength = 100
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
