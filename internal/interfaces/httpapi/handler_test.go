package httpapi

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/depth-chart/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/depth-chart/internal/platform/logging"
	"github.com/riskibarqy/depth-chart/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	APIVersion string           `json:"apiVersion"`
	Data       any              `json:"data"`
	Error      *googleErrorBody `json:"error"`
}

func newTestRouter(t *testing.T, metrics http.Handler) http.Handler {
	t.Helper()

	logger := logging.NewNop()
	service := usecase.NewDepthChartService(memory.NewDepthChartRepository(), nil, logger)
	return NewRouter(NewHandler(service, logger), logger, true, []string{"*"}, metrics)
}

func doRequest(t *testing.T, router http.Handler, method, target, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var out envelope
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &out))
	}
	return rec, out
}

func putPlayer(t *testing.T, router http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	rec, _ := doRequest(t, router, http.MethodPut, "/v1/depth-charts", body)
	return rec
}

func TestHandler_DepthChartScenario(t *testing.T) {
	router := newTestRouter(t, nil)

	require.Equal(t, http.StatusOK, putPlayer(t, router, `{"position":"QB","player":{"number":12,"name":"Tom Brady"},"position_depth":0}`).Code)
	require.Equal(t, http.StatusOK, putPlayer(t, router, `{"position":"QB","player":{"number":11,"name":"Blaine Gabbert"},"position_depth":1}`).Code)
	require.Equal(t, http.StatusOK, putPlayer(t, router, `{"position":"qb","player":{"number":2,"name":"Kyle Trask"}}`).Code)

	rec, body := doRequest(t, router, http.MethodGet, "/v1/depth-charts/positions/QB/backups?player_number=12&player_name=Tom%20Brady", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []any{
		map[string]any{"number": float64(11), "name": "Blaine Gabbert"},
		map[string]any{"number": float64(2), "name": "Kyle Trask"},
	}, body.Data)

	rec, body = doRequest(t, router, http.MethodDelete, "/v1/depth-charts", `{"position":"QB","player":{"number":11,"name":"Blaine Gabbert"}}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, body.Data, 1)

	rec, body = doRequest(t, router, http.MethodDelete, "/v1/depth-charts", `{"position":"QB","player":{"number":11,"name":"Blaine Gabbert"}}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []any{}, body.Data)

	rec, body = doRequest(t, router, http.MethodGet, "/v1/depth-charts/positions/QB", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, body.Data, 2)

	rec, _ = doRequest(t, router, http.MethodGet, "/v1/depth-charts?format=text", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, "QB - (#12, Tom Brady), (#2, Kyle Trask)\n", rec.Body.String())

	rec, body = doRequest(t, router, http.MethodGet, "/v1/depth-charts", "")
	require.Equal(t, http.StatusOK, rec.Code)
	charts, ok := body.Data.(map[string]any)
	require.True(t, ok)
	assert.Len(t, charts["QB"], 2)
}

func TestHandler_AddOrMoveRejectedDepth(t *testing.T) {
	router := newTestRouter(t, nil)

	rec, body := doRequest(t, router, http.MethodPut, "/v1/depth-charts", `{"position":"TE","player":{"number":87,"name":"Rob Gronkowski"},"position_depth":3}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, body.Error)
	assert.Equal(t, "FAILED_PRECONDITION", body.Error.Status)
	require.Len(t, body.Error.Errors, 1)
	assert.Equal(t, "New position depth '3' exceeds current position chart depth '0'", body.Error.Errors[0].Message)
}

func TestHandler_InvalidInput(t *testing.T) {
	router := newTestRouter(t, nil)

	tests := []struct {
		name   string
		method string
		target string
		body   string
	}{
		{name: "unknown position", method: http.MethodPut, target: "/v1/depth-charts", body: `{"position":"GK","player":{"number":1,"name":"A"}}`},
		{name: "missing number", method: http.MethodPut, target: "/v1/depth-charts", body: `{"position":"QB","player":{"name":"A"}}`},
		{name: "negative number", method: http.MethodPut, target: "/v1/depth-charts", body: `{"position":"QB","player":{"number":-4,"name":"A"}}`},
		{name: "blank name", method: http.MethodPut, target: "/v1/depth-charts", body: `{"position":"QB","player":{"number":4,"name":"  "}}`},
		{name: "depth below sentinel", method: http.MethodPut, target: "/v1/depth-charts", body: `{"position":"QB","player":{"number":4,"name":"A"},"position_depth":-2}`},
		{name: "unknown field", method: http.MethodPut, target: "/v1/depth-charts", body: `{"position":"QB","player":{"number":4,"name":"A"},"rank":1}`},
		{name: "malformed json", method: http.MethodDelete, target: "/v1/depth-charts", body: `{"position":`},
		{name: "bad path position", method: http.MethodGet, target: "/v1/depth-charts/positions/XX", body: ""},
		{name: "backups without number", method: http.MethodGet, target: "/v1/depth-charts/positions/QB/backups?player_name=Tom", body: ""},
		{name: "backups non numeric", method: http.MethodGet, target: "/v1/depth-charts/positions/QB/backups?player_number=x&player_name=Tom", body: ""},
		{name: "unsupported format", method: http.MethodGet, target: "/v1/depth-charts?format=xml", body: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, body := doRequest(t, router, tt.method, tt.target, tt.body)
			require.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
			require.NotNil(t, body.Error)
			assert.Equal(t, "INVALID_ARGUMENT", body.Error.Status)
		})
	}
}

func TestHandler_AddPlayersBulk(t *testing.T) {
	router := newTestRouter(t, nil)

	rec, body := doRequest(t, router, http.MethodPut, "/v1/depth-charts/positions/LWR", `[
		{"player":{"number":13,"name":"Mike Evans"}},
		{"player":{"number":1,"name":"Jaelon Darden"},"position_depth":1},
		{"player":{"number":10,"name":"Scott Miller"},"position_depth":9}
	]`)
	require.Equal(t, http.StatusOK, rec.Code)

	items, ok := body.Data.([]any)
	require.True(t, ok)
	require.Len(t, items, 3)
	last := items[2].(map[string]any)
	assert.Equal(t, false, last["is_success"])
	assert.Equal(t, float64(9), last["position_depth"])
	first := items[0].(map[string]any)
	assert.Equal(t, true, first["is_success"])
	assert.Equal(t, float64(-1), first["position_depth"])

	rec, body = doRequest(t, router, http.MethodGet, "/v1/depth-charts/positions/LWR", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, body.Data, 2)
}

func TestHandler_SystemRoutes(t *testing.T) {
	metrics := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("depth_chart_operations_total 0\n"))
	})
	router := newTestRouter(t, metrics)

	rec, body := doRequest(t, router, http.MethodGet, "/healthz", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "2.0", body.APIVersion)

	rec, _ = doRequest(t, router, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "depth_chart_operations_total")

	rec, _ = doRequest(t, router, http.MethodGet, "/openapi.yaml", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/v1/depth-charts")
}

func TestRecoverPanic_WritesInternalError(t *testing.T) {
	handler := recoverPanic(logging.NewNop(), http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("chart exploded")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/depth-charts", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "chart exploded")
	assert.Contains(t, rec.Body.String(), "internal server error")
}
