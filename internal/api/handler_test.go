package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/shinebright/schedule/internal/api"
	"github.com/shinebright/schedule/internal/entity"
	"github.com/shinebright/schedule/internal/mocks"
)

func newTestServer(t *testing.T, apiKeyEnabled bool) (*mocks.MockService, *httptest.Server) {
	t.Helper()

	ctrl := gomock.NewController(t)
	s := mocks.NewMockService(ctrl)

	h := api.NewHandler(s)
	mw := api.NewMiddleware(apiKeyEnabled, "test-key")

	srv := httptest.NewServer(api.NewRouter(h, mw))
	t.Cleanup(srv.Close)

	return s, srv
}

func TestHandler_ClientSchedule(t *testing.T) {
	t.Parallel()

	s, srv := newTestServer(t, false)

	clientID := uuid.Must(uuid.NewV4())
	empID := uuid.Must(uuid.NewV4())
	date := time.Date(2025, time.June, 16, 0, 0, 0, 0, time.UTC)

	jobs := []entity.Job{
		{
			ID:                   uuid.Must(uuid.NewV4()),
			ClientID:             clientID,
			ClientName:           "Sparkle Homes LLC",
			Address:              "12 Main St",
			ScheduledDate:        date,
			Status:               entity.JobStatusPending,
			AssignedEmployeeID:   &empID,
			AssignedEmployeeName: "Dana Reyes",
			Origin:               entity.JobOriginSync,
			Price:                decimal.RequireFromString("85.00"),
		},
	}

	from := time.Date(2025, time.June, 11, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, time.July, 11, 0, 0, 0, 0, time.UTC)

	s.EXPECT().ClientSchedule(gomock.Any(), clientID, from, to).Return(jobs, nil)

	resp, err := http.Get(srv.URL + "/api/schedule/jobs/" + clientID.String() + "?from=2025-06-11&to=2025-07-11")
	require.NoError(t, err)

	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var data api.ClientScheduleResponse

	err = json.NewDecoder(resp.Body).Decode(&data)
	require.NoError(t, err)

	require.Len(t, data.Jobs, 1)
	require.Equal(t, jobs[0].ID, data.Jobs[0].ID)
	require.Equal(t, "2025-06-16", data.Jobs[0].ScheduledDate)
	require.Equal(t, "pending", data.Jobs[0].Status)
	require.Equal(t, "schedule-sync", data.Jobs[0].Origin)
	require.Equal(t, "Dana Reyes", data.Jobs[0].AssignedEmployeeName)
}

func TestHandler_ClientSchedule_InvalidClientID(t *testing.T) {
	t.Parallel()

	_, srv := newTestServer(t, false)

	resp, err := http.Get(srv.URL + "/api/schedule/jobs/not-a-uuid")
	require.NoError(t, err)

	defer resp.Body.Close()

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandler_ClientSchedule_InvalidDate(t *testing.T) {
	t.Parallel()

	_, srv := newTestServer(t, false)

	clientID := uuid.Must(uuid.NewV4())

	resp, err := http.Get(srv.URL + "/api/schedule/jobs/" + clientID.String() + "?from=16-06-2025")
	require.NoError(t, err)

	defer resp.Body.Close()

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandler_ResyncClient(t *testing.T) {
	t.Parallel()

	s, srv := newTestServer(t, true)

	clientID := uuid.Must(uuid.NewV4())

	s.EXPECT().ResyncClient(gomock.Any(), clientID).
		Return(entity.SyncResult{Created: 8, Updated: 0, Deleted: 2}, nil)

	req, err := http.NewRequest(http.MethodPost, srv.URL+"/api/internal/schedule/resync/"+clientID.String(), nil)
	require.NoError(t, err)

	req.Header.Set("X-Api-Key", "test-key")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)

	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var data api.ResyncResponse

	err = json.NewDecoder(resp.Body).Decode(&data)
	require.NoError(t, err)

	require.Equal(t, 8, data.Created)
	require.Equal(t, 2, data.Deleted)
}

func TestHandler_ResyncClient_MissingAPIKey(t *testing.T) {
	t.Parallel()

	_, srv := newTestServer(t, true)

	clientID := uuid.Must(uuid.NewV4())

	resp, err := http.Post(srv.URL+"/api/internal/schedule/resync/"+clientID.String(), "application/json", nil)
	require.NoError(t, err)

	defer resp.Body.Close()

	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestHandler_ResyncClient_NotFound(t *testing.T) {
	t.Parallel()

	s, srv := newTestServer(t, false)

	clientID := uuid.Must(uuid.NewV4())

	s.EXPECT().ResyncClient(gomock.Any(), clientID).
		Return(entity.SyncResult{}, entity.ErrNotFound)

	resp, err := http.Post(srv.URL+"/api/internal/schedule/resync/"+clientID.String(), "application/json", nil)
	require.NoError(t, err)

	defer resp.Body.Close()

	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHandler_Health(t *testing.T) {
	t.Parallel()

	_, srv := newTestServer(t, false)

	resp, err := http.Get(srv.URL + "/api/health")
	require.NoError(t, err)

	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
}
