package reset_itinerary

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SessionService/internal/itinerary/strategy"
	"github.com/m04kA/SMC-SessionService/internal/itinerary/suggestions"
	"github.com/m04kA/SMC-SessionService/internal/service/itinerary"
	"github.com/m04kA/SMC-SessionService/pkg/logger"
	"github.com/m04kA/SMC-SessionService/pkg/metrics"
)

func serve(mode, body string) *httptest.ResponseRecorder {
	var m *metrics.Metrics
	svc := itinerary.NewService(strategy.NewFactory(suggestions.DefaultConfig()), m, 8, logger.Nop())

	r := httptest.NewRequest(http.MethodPost, "/api/v1/modes/"+mode+"/itinerary/reset", strings.NewReader(body))
	r = mux.SetURLVars(r, map[string]string{"mode": mode})
	w := httptest.NewRecorder()

	NewHandler(svc, logger.Nop()).Handle(w, r)
	return w
}

func TestHandle_KeepsPickupAddress(t *testing.T) {
	w := serve("school-run", `{
		"itinerary": {
			"pickupAddress": "10 Elm St",
			"pickupTime": "07:45",
			"schoolName": "Hillside Primary",
			"schoolStartTime": "08:45"
		},
		"keepPickupAddress": true
	}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Mode      string                 `json:"mode"`
		Itinerary map[string]interface{} `json:"itinerary"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "school-run", resp.Mode)
	assert.Equal(t, "10 Elm St", resp.Itinerary["pickupAddress"])
	assert.Equal(t, "Hillside Primary", resp.Itinerary["schoolName"])
	assert.Equal(t, "", resp.Itinerary["pickupTime"])
	assert.Equal(t, "", resp.Itinerary["schoolStartTime"])
}

func TestHandle_Errors(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, serve("school-run", `{"itinerary":`).Code)
	assert.Equal(t, http.StatusBadRequest, serve("school-run", `{"unknown":1}`).Code)
	assert.Equal(t, http.StatusNotFound, serve("hourly", `{}`).Code)
}
