package create_session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SessionService/internal/api/middleware"
	"github.com/m04kA/SMC-SessionService/internal/domain"
	createSession "github.com/m04kA/SMC-SessionService/internal/usecase/create_session"
	"github.com/m04kA/SMC-SessionService/pkg/logger"
)

type fakeUseCase struct {
	got  *createSession.Request
	resp *createSession.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, req *createSession.Request) (*createSession.Response, error) {
	f.got = req
	return f.resp, f.err
}

const body = `{
	"mode": "school-run",
	"date": "2026-10-21",
	"parentAddress": "10 Elm St",
	"itinerary": {"schoolName": "Hillside Primary", "schoolAddress": "1 Hill Rd", "schoolStartTime": "08:45"},
	"notes": "Bring the PE kit"
}`

func serve(uc CreateSessionUseCase, withUser bool, payload string) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodPost, "/api/v1/sessions", strings.NewReader(payload))
	if withUser {
		r = r.WithContext(middleware.WithUserID(r.Context(), 42))
	}
	w := httptest.NewRecorder()
	NewHandler(uc, logger.Nop()).Handle(w, r)
	return w
}

func TestHandle_Created(t *testing.T) {
	uc := &fakeUseCase{resp: &createSession.Response{
		ID:            1,
		UserID:        42,
		Mode:          domain.ModeSchoolRun,
		Date:          time.Date(2026, 10, 21, 0, 0, 0, 0, time.UTC),
		StartTime:     "06:45",
		EndTime:       "09:15",
		DurationHours: 2.5,
		TrainerChoice: domain.TrainerChoiceAny,
	}}

	w := serve(uc, true, body)
	require.Equal(t, http.StatusCreated, w.Code)

	require.NotNil(t, uc.got)
	assert.Equal(t, int64(42), uc.got.UserID)
	assert.Equal(t, domain.ModeSchoolRun, uc.got.Mode)
	assert.True(t, uc.got.StartTime.IsZero())
	assert.Equal(t, "Hillside Primary", uc.got.Itinerary.Text(domain.FieldSchoolName))

	var resp SessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "2026-10-21", resp.Date)
	assert.Equal(t, "06:45", resp.StartTime)
	assert.Equal(t, "09:15", resp.EndTime)
}

func TestHandle_IncompleteItinerary(t *testing.T) {
	uc := &fakeUseCase{err: fmt.Errorf("wrapped: %w", &createSession.IncompleteItineraryError{
		MissingFields: []string{"School name"},
	})}

	w := serve(uc, true, body)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp IncompleteItineraryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []string{"School name"}, resp.MissingFields)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name     string
		withUser bool
		payload  string
		err      error
		status   int
	}{
		{name: "no user", withUser: false, payload: body, status: http.StatusUnauthorized},
		{name: "bad body", withUser: true, payload: `{`, status: http.StatusBadRequest},
		{name: "bad date", withUser: true, payload: `{"mode":"school-run","date":"21.10.2026"}`, status: http.StatusBadRequest},
		{name: "bad time", withUser: true, payload: `{"mode":"school-run","date":"2026-10-21","startTime":"25:00"}`, status: http.StatusBadRequest},
		{name: "no hours", withUser: true, payload: body, err: createSession.ErrNoHoursPackage, status: http.StatusPaymentRequired},
		{name: "past date", withUser: true, payload: body, err: createSession.ErrInvalidDate, status: http.StatusBadRequest},
		{name: "invalid input", withUser: true, payload: body, err: createSession.ErrInvalidInput, status: http.StatusBadRequest},
		{name: "internal", withUser: true, payload: body, err: errors.New("boom"), status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(&fakeUseCase{err: tt.err}, tt.withUser, tt.payload)
			assert.Equal(t, tt.status, w.Code)
		})
	}
}
