package update_session_itinerary

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SessionService/internal/api/middleware"
	"github.com/m04kA/SMC-SessionService/internal/domain"
	"github.com/m04kA/SMC-SessionService/internal/service/sessions"
	"github.com/m04kA/SMC-SessionService/internal/service/sessions/models"
	"github.com/m04kA/SMC-SessionService/pkg/logger"
)

type fakeService struct {
	resp *models.SessionResponse
	err  error
	got  *models.UpdateItineraryRequest
}

func (f *fakeService) UpdateItinerary(_ context.Context, req *models.UpdateItineraryRequest) (*models.SessionResponse, error) {
	f.got = req
	return f.resp, f.err
}

func serve(svc SessionService, sessionID, body string) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodPut, "/api/v1/sessions/"+sessionID+"/itinerary", strings.NewReader(body))
	r = mux.SetURLVars(r, map[string]string{"sessionId": sessionID})
	r = r.WithContext(middleware.WithUserID(r.Context(), 42))
	w := httptest.NewRecorder()
	NewHandler(svc, logger.Nop()).Handle(w, r)
	return w
}

func TestHandle_OK(t *testing.T) {
	svc := &fakeService{resp: &models.SessionResponse{ID: 3, UserID: 42, Mode: "hospital-appointment", Notes: "updated"}}

	w := serve(svc, "3", `{"itinerary":{"hospitalName":"St Mary's"},"notes":"Allergic to latex"}`)
	require.Equal(t, http.StatusOK, w.Code)

	require.NotNil(t, svc.got)
	assert.Equal(t, int64(42), svc.got.UserID)
	assert.Equal(t, int64(3), svc.got.SessionID)
	assert.Equal(t, "St Mary's", svc.got.Itinerary.Text(domain.FieldHospitalName))
	assert.Equal(t, "Allergic to latex", svc.got.Notes)

	var resp struct {
		ID    int64  `json:"id"`
		Notes string `json:"notes"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(3), resp.ID)
	assert.Equal(t, "updated", resp.Notes)
}

func TestHandle_Incomplete(t *testing.T) {
	svc := &fakeService{err: &sessions.IncompleteItineraryError{MissingFields: []string{"Hospital address"}}}

	w := serve(svc, "3", `{"itinerary":{}}`)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp IncompleteItineraryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []string{"Hospital address"}, resp.MissingFields)
}

func TestHandle_ErrorMapping(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{sessions.ErrSessionNotFound, http.StatusNotFound},
		{sessions.ErrAccessDenied, http.StatusForbidden},
		{fmt.Errorf("%w: hourly", sessions.ErrModeNotSupported), http.StatusBadRequest},
		{fmt.Errorf("%w: notes too long", sessions.ErrInvalidInput), http.StatusBadRequest},
		{fmt.Errorf("%w: db down", sessions.ErrInternal), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		w := serve(&fakeService{err: tc.err}, "3", `{}`)
		assert.Equal(t, tc.want, w.Code, "error %v", tc.err)
	}
}

func TestHandle_BadInput(t *testing.T) {
	svc := &fakeService{}

	assert.Equal(t, http.StatusBadRequest, serve(svc, "abc", `{}`).Code)
	assert.Equal(t, http.StatusBadRequest, serve(svc, "3", `{"itinerary":`).Code)
	assert.Nil(t, svc.got)
}
