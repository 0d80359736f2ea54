package create_session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SessionService/internal/domain"
	budgetClient "github.com/m04kA/SMC-SessionService/internal/integrations/budgetservice"
	"github.com/m04kA/SMC-SessionService/internal/itinerary/notes"
	"github.com/m04kA/SMC-SessionService/internal/itinerary/strategy"
	"github.com/m04kA/SMC-SessionService/internal/itinerary/suggestions"
	"github.com/m04kA/SMC-SessionService/pkg/logger"
	"github.com/m04kA/SMC-SessionService/pkg/ptr"
	"github.com/m04kA/SMC-SessionService/pkg/types"
)

type fakeRepo struct {
	saved *domain.Session
	err   error
}

func (r *fakeRepo) Create(_ context.Context, s *domain.Session) (*domain.Session, error) {
	if r.err != nil {
		return nil, r.err
	}
	s.ID = 100
	s.CreatedAt = fixedNow
	s.UpdatedAt = fixedNow
	r.saved = s
	return s, nil
}

type fakeBudget struct {
	hours float64
	err   error
}

func (b *fakeBudget) GetRemainingHoursWithGracefulDegradation(context.Context, int64) (float64, error) {
	return b.hours, b.err
}

type fakeMetrics struct {
	created  map[string]int
	degraded int
}

func (m *fakeMetrics) ObserveSessionCreated(mode string) { m.created[mode]++ }
func (m *fakeMetrics) ObserveBudgetDegraded()            { m.degraded++ }

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

var (
	fixedNow = time.Date(2026, 10, 10, 12, 0, 0, 0, time.UTC)
	tomorrow = time.Date(2026, 10, 11, 0, 0, 0, 0, time.UTC)
)

type env struct {
	uc      *UseCase
	repo    *fakeRepo
	budget  *fakeBudget
	metrics *fakeMetrics
}

func newEnv() *env {
	e := &env{
		repo:    &fakeRepo{},
		budget:  &fakeBudget{hours: 10},
		metrics: &fakeMetrics{created: map[string]int{}},
	}
	e.uc = NewUseCase(e.repo, strategy.NewFactory(suggestions.DefaultConfig()), e.budget, e.metrics, logger.Nop())
	e.uc.timeProvider = fixedTime{now: fixedNow}
	return e
}

func zooRequest() *Request {
	return &Request{
		UserID:        42,
		Mode:          domain.ModeSingleDayEvent,
		Date:          tomorrow,
		ParentAddress: "10 Elm St",
		Itinerary: domain.NewItineraryData().
			WithText(domain.FieldEventName, "Zoo").
			WithText(domain.FieldEventAddress, "Zoo Lane").
			WithText(domain.FieldEventStartTime, "10:00").
			WithText(domain.FieldEventEndTime, "13:00").
			WithFlag(domain.FieldDropoffSameAsPickup, true),
		SelectedActivityIDs: []int64{3},
		Notes:               "Bring inhaler",
	}
}

func TestExecute_SingleDayEvent(t *testing.T) {
	e := newEnv()

	resp, err := e.uc.Execute(context.Background(), zooRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(100), resp.ID)
	assert.Equal(t, 7.0, resp.DurationHours)
	assert.Equal(t, types.TimeString("08:00"), resp.StartTime)
	assert.Equal(t, types.TimeString("15:00"), resp.EndTime)
	assert.Equal(t, domain.TrainerChoiceAny, resp.TrainerChoice)
	assert.False(t, resp.BudgetDegraded)
	assert.NotEmpty(t, resp.Summary)
	assert.Equal(t, 1, e.metrics.created["single-day-event"])

	require.NotNil(t, e.repo.saved)
	assert.True(t, strings.HasPrefix(e.repo.saved.Notes, "Bring inhaler\n\n"+notes.Separator))

	codec, _ := notes.ForMode(domain.ModeSingleDayEvent)
	parsed := codec.Parse(e.repo.saved.Notes)
	assert.Equal(t, "Zoo Lane", parsed.Data.Text(domain.FieldEventAddress))
	assert.Equal(t, "Bring inhaler", parsed.AdditionalNotes)
}

func TestExecute_DurationClampedToRemainingHours(t *testing.T) {
	e := newEnv()
	e.budget.hours = 4

	resp, err := e.uc.Execute(context.Background(), zooRequest())
	require.NoError(t, err)
	assert.Equal(t, 4.0, resp.DurationHours)
	assert.Equal(t, types.TimeString("12:00"), resp.EndTime)
}

func TestExecute_ExplicitStartTimeWins(t *testing.T) {
	e := newEnv()
	req := zooRequest()
	req.StartTime = "7:30"

	resp, err := e.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("07:30"), resp.StartTime)
}

func TestExecute_IncompleteItinerary(t *testing.T) {
	e := newEnv()
	req := zooRequest()
	req.Itinerary = req.Itinerary.WithText(domain.FieldEventEndTime, "")

	_, err := e.uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrItineraryIncomplete)

	var incomplete *IncompleteItineraryError
	require.True(t, errors.As(err, &incomplete))
	assert.Equal(t, []string{domain.FieldEventEndTime.Label()}, incomplete.MissingFields)
	assert.Nil(t, e.repo.saved)
}

func TestExecute_ModeWithoutItinerary(t *testing.T) {
	e := newEnv()
	e.budget.hours = 2

	resp, err := e.uc.Execute(context.Background(), &Request{
		UserID:        42,
		Mode:          "babysitting",
		Date:          tomorrow,
		StartTime:     "10:00",
		DurationHours: ptr.Ptr(3.0),
		Notes:         "Nap at 2pm",
	})
	require.NoError(t, err)

	assert.Equal(t, 2.0, resp.DurationHours)
	assert.Equal(t, types.TimeString("12:00"), resp.EndTime)
	assert.Equal(t, "Nap at 2pm", resp.Notes)
	assert.Empty(t, resp.Summary)
}

func TestExecute_ModeWithoutItineraryNeedsDurationAndStart(t *testing.T) {
	e := newEnv()

	_, err := e.uc.Execute(context.Background(), &Request{
		UserID: 42, Mode: "babysitting", Date: tomorrow, StartTime: "10:00",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = e.uc.Execute(context.Background(), &Request{
		UserID: 42, Mode: "babysitting", Date: tomorrow, DurationHours: ptr.Ptr(1.0),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_EndsAfterMidnight(t *testing.T) {
	e := newEnv()

	_, err := e.uc.Execute(context.Background(), &Request{
		UserID: 42, Mode: "babysitting", Date: tomorrow, StartTime: "23:00", DurationHours: ptr.Ptr(2.0),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_Budget(t *testing.T) {
	t.Run("degraded uses default hours", func(t *testing.T) {
		e := newEnv()
		e.budget.hours = 8
		e.budget.err = fmt.Errorf("%w: timeout", budgetClient.ErrServiceDegraded)

		resp, err := e.uc.Execute(context.Background(), zooRequest())
		require.NoError(t, err)
		assert.True(t, resp.BudgetDegraded)
		assert.Equal(t, 7.0, resp.DurationHours)
		assert.Equal(t, 1, e.metrics.degraded)
	})

	t.Run("no hours package", func(t *testing.T) {
		e := newEnv()
		e.budget.err = budgetClient.ErrUserNotFound

		_, err := e.uc.Execute(context.Background(), zooRequest())
		assert.ErrorIs(t, err, ErrNoHoursPackage)
	})

	t.Run("unexpected error", func(t *testing.T) {
		e := newEnv()
		e.budget.err = errors.New("boom")

		_, err := e.uc.Execute(context.Background(), zooRequest())
		assert.ErrorIs(t, err, ErrInternal)
	})
}

func TestExecute_PastDate(t *testing.T) {
	e := newEnv()
	req := zooRequest()
	req.Date = fixedNow.AddDate(0, 0, -1)

	_, err := e.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_RepositoryError(t *testing.T) {
	e := newEnv()
	e.repo.err = errors.New("db down")

	_, err := e.uc.Execute(context.Background(), zooRequest())
	assert.ErrorIs(t, err, ErrInternal)
	assert.Empty(t, e.metrics.created)
}

func TestValidateRequest(t *testing.T) {
	tests := []struct {
		name   string
		modify func(r *Request)
	}{
		{name: "no user", modify: func(r *Request) { r.UserID = 0 }},
		{name: "no mode", modify: func(r *Request) { r.Mode = "" }},
		{name: "no date", modify: func(r *Request) { r.Date = time.Time{} }},
		{name: "bad start", modify: func(r *Request) { r.StartTime = "25:00" }},
		{name: "zero duration", modify: func(r *Request) { r.DurationHours = ptr.Ptr(0.0) }},
		{name: "unknown trainer choice", modify: func(r *Request) { r.TrainerChoice = "best" }},
		{name: "specific without id", modify: func(r *Request) { r.TrainerChoice = domain.TrainerChoiceSpecific }},
		{name: "bad activity", modify: func(r *Request) { r.SelectedActivityIDs = []int64{-1} }},
		{name: "blank custom activity", modify: func(r *Request) { r.CustomActivities = []string{" "} }},
		{name: "long custom activity", modify: func(r *Request) {
			r.CustomActivities = []string{strings.Repeat("a", domain.MaxCustomActivityLength+1)}
		}},
		{name: "too many custom activities", modify: func(r *Request) {
			r.CustomActivities = make([]string, domain.MaxCustomActivities+1)
			for i := range r.CustomActivities {
				r.CustomActivities[i] = "x"
			}
		}},
		{name: "long notes", modify: func(r *Request) { r.Notes = strings.Repeat("n", domain.MaxFreeformNotesLength+1) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := zooRequest()
			req.TrainerChoice = domain.TrainerChoiceAny
			tt.modify(req)
			assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)
		})
	}
}

func TestExecute_SpecificTrainerKeepsID(t *testing.T) {
	e := newEnv()
	req := zooRequest()
	req.TrainerChoice = domain.TrainerChoiceSpecific
	req.TrainerID = ptr.Ptr(int64(9))

	resp, err := e.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, resp.TrainerID)
	assert.Equal(t, int64(9), *resp.TrainerID)

	e = newEnv()
	req = zooRequest()
	req.TrainerID = ptr.Ptr(int64(9))

	resp, err = e.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Nil(t, resp.TrainerID)
}
