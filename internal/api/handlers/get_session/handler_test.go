package get_session

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SessionService/internal/api/middleware"
	"github.com/m04kA/SMC-SessionService/internal/domain"
	"github.com/m04kA/SMC-SessionService/internal/itinerary/validation"
	loadSession "github.com/m04kA/SMC-SessionService/internal/usecase/load_session"
	"github.com/m04kA/SMC-SessionService/pkg/logger"
)

type fakeUseCase struct {
	resp *loadSession.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, _ *loadSession.Request) (*loadSession.Response, error) {
	return f.resp, f.err
}

func serve(uc LoadSessionUseCase, sessionID string) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodGet, "/api/v1/sessions/"+sessionID, nil)
	r = mux.SetURLVars(r, map[string]string{"sessionId": sessionID})
	r = r.WithContext(middleware.WithUserID(r.Context(), 42))
	w := httptest.NewRecorder()
	NewHandler(uc, logger.Nop()).Handle(w, r)
	return w
}

func TestHandle_OK(t *testing.T) {
	uc := &fakeUseCase{resp: &loadSession.Response{
		Session:         &domain.Session{ID: 5, UserID: 42, Mode: domain.ModeSchoolRun, StartTime: "07:00", EndTime: "09:00"},
		Recognized:      true,
		Itinerary:       domain.NewItineraryData().WithText(domain.FieldSchoolName, "Hillside Primary"),
		AdditionalNotes: "Bring the PE kit",
		Validation:      &validation.Result{Valid: false, MissingFields: []string{"School address"}},
	}}

	w := serve(uc, "5")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Session struct {
			ID   int64  `json:"id"`
			Mode string `json:"mode"`
		} `json:"session"`
		Recognized      bool              `json:"recognized"`
		Itinerary       map[string]string `json:"itinerary"`
		AdditionalNotes string            `json:"additionalNotes"`
		Validation      validation.Result `json:"validation"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(5), resp.Session.ID)
	assert.Equal(t, "school-run", resp.Session.Mode)
	assert.True(t, resp.Recognized)
	assert.Equal(t, "Hillside Primary", resp.Itinerary["schoolName"])
	assert.Equal(t, []string{"School address"}, resp.Validation.MissingFields)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name      string
		sessionID string
		err       error
		status    int
	}{
		{name: "bad id", sessionID: "abc", status: http.StatusBadRequest},
		{name: "not found", sessionID: "5", err: loadSession.ErrSessionNotFound, status: http.StatusNotFound},
		{name: "foreign session", sessionID: "5", err: loadSession.ErrAccessDenied, status: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, serve(&fakeUseCase{err: tt.err}, tt.sessionID).Code)
		})
	}
}
