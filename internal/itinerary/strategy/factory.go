package strategy

import (
	"github.com/m04kA/SMC-SessionService/internal/domain"
	"github.com/m04kA/SMC-SessionService/internal/itinerary/suggestions"
)

// Factory resolves a mode to its strategy. The table is built once by
// NewFactory and never modified, so concurrent reads need no locking.
type Factory struct {
	strategies map[domain.Mode]*Strategy
	order      []*Strategy
}

// NewFactory builds the strategy of every itinerary mode
func NewFactory(cfg suggestions.Config) *Factory {
	list := []*Strategy{
		newSingleDayEvent(cfg),
		newMultiDayEvent(cfg),
		newHospitalAppointment(cfg),
		newExamSupport(cfg),
		newSchoolRun(cfg),
	}

	f := &Factory{
		strategies: make(map[domain.Mode]*Strategy, len(list)),
		order:      list,
	}
	for _, s := range list {
		f.strategies[s.Key] = s
	}
	return f
}

// Get returns the strategy of mode. A miss means the mode has no itinerary
// requirement; callers skip itinerary validation and duration entirely.
func (f *Factory) Get(mode domain.Mode) (*Strategy, bool) {
	s, ok := f.strategies[mode]
	return s, ok
}

// List returns every strategy in display order
func (f *Factory) List() []*Strategy {
	out := make([]*Strategy, len(f.order))
	copy(out, f.order)
	return out
}
