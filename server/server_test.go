package server_test

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algoviz/config"
	"github.com/katalvlaran/algoviz/engine"
	"github.com/katalvlaran/algoviz/logging"
	"github.com/katalvlaran/algoviz/server"
	"github.com/katalvlaran/algoviz/step"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newRouter() *gin.Engine {
	return server.NewRouter(server.NewHandlers(config.Default().Limits, logging.Discard()))
}

func get(t *testing.T, router http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeTrace(t *testing.T, w *httptest.ResponseRecorder) server.TraceResponse {
	t.Helper()
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp server.TraceResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) server.ErrorResponse {
	t.Helper()
	require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	var resp server.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestSort_DefaultData(t *testing.T) {
	resp := decodeTrace(t, get(t, newRouter(), "/api/sort/bubble"))
	require.NotEmpty(t, resp.Steps)
	last, _ := resp.Steps.Last()
	assert.Equal(t, step.KindComplete, last.Kind)
	assert.Equal(t, []int{11, 12, 22, 25, 34, 64, 90}, last.Array)
	assert.Equal(t, "O(n²)", resp.Complexity["time_worst"])
}

func TestSort_MatchesEngine(t *testing.T) {
	resp := decodeTrace(t, get(t, newRouter(), "/api/sort/quick?data=5,1,4"))
	want, err := engine.Run(engine.Request{Family: engine.Sorting, Variant: "quick", Ints: []int{5, 1, 4}})
	require.NoError(t, err)
	assert.Equal(t, want.Steps.Kinds(), resp.Steps.Kinds())
}

func TestSort_Generated(t *testing.T) {
	resp := decodeTrace(t, get(t, newRouter(), "/api/sort/insertion?generate=descending&size=5"))
	assert.Equal(t, []int{5, 4, 3, 2, 1}, resp.Steps[0].Array)
}

func TestSort_EmptyDataKeepsArray(t *testing.T) {
	w := get(t, newRouter(), "/api/sort/quick?data=")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Steps []map[string]json.RawMessage `json:"steps"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Steps, 1)
	assert.JSONEq(t, `[]`, string(body.Steps[0]["array"]))
}

func TestTree_Traversal(t *testing.T) {
	resp := decodeTrace(t, get(t, newRouter(), "/api/tree/traversal/inorder?tree=1,2,3"))
	var processed []int
	for _, s := range resp.Steps.Filter(step.KindProcess) {
		processed = append(processed, *s.Node)
	}
	assert.Equal(t, []int{2, 1, 3}, processed)
	assert.Equal(t, "O(h)", resp.Complexity["space"])
}

func TestTree_EmptyTree(t *testing.T) {
	w := get(t, newRouter(), "/api/tree/traversal/preorder?tree=")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"steps":[],"complexity":{"time":"O(n)","space":"O(h)"}}`, w.Body.String())
}

func TestRecursion_Defaults(t *testing.T) {
	router := newRouter()

	resp := decodeTrace(t, get(t, router, "/api/recursion/tower"))
	assert.Equal(t, 7, resp.Steps.Count(step.KindMove, step.KindStep2))

	resp = decodeTrace(t, get(t, router, "/api/recursion/factorial"))
	last, _ := resp.Steps.Last()
	require.NotNil(t, last.Result)
	assert.Equal(t, 120, *last.Result)

	resp = decodeTrace(t, get(t, router, "/api/recursion/reverse?text=abc"))
	last, _ = resp.Steps.Last()
	require.NotNil(t, last.TextResult)
	assert.Equal(t, "cba", *last.TextResult)
}

func TestGraph_BFS(t *testing.T) {
	resp := decodeTrace(t, get(t, newRouter(), "/api/graph/bfs"))
	last, _ := resp.Steps.Last()
	assert.Equal(t, step.KindComplete, last.Kind)
	assert.Equal(t, []int{0, 1, 2, 3}, last.Visited)
	assert.Equal(t, "O(V + E)", resp.Complexity["time"])
}

func TestErrors(t *testing.T) {
	cases := []struct {
		target string
		code   string
		msg    string
	}{
		{"/api/sort/bogo", server.CodeUnknownAlgorithm, "Unknown algorithm"},
		{"/api/sort/bogo?data=x", server.CodeUnknownAlgorithm, "Unknown algorithm"},
		{"/api/tree/traversal/levelorder", server.CodeUnknownAlgorithm, "Unknown traversal type"},
		{"/api/recursion/ackermann", server.CodeUnknownAlgorithm, "Unknown algorithm"},
		{"/api/graph/dijkstra", server.CodeUnknownAlgorithm, "Unknown algorithm"},
		{"/api/sort/bubble?data=1,two", server.CodeInvalidInput, ""},
		{"/api/graph/bfs?edges=0-1,1", server.CodeInvalidInput, ""},
		{"/api/recursion/fibonacci?n=-3", server.CodeInvalidInput, ""},
		{"/api/recursion/fibonacci?n=21", server.CodeLimitExceeded, ""},
		{"/api/recursion/tower?n=11", server.CodeLimitExceeded, ""},
		{"/api/sort/merge?generate=random&size=1000", server.CodeLimitExceeded, ""},
	}
	router := newRouter()
	for _, tc := range cases {
		resp := decodeError(t, get(t, router, tc.target))
		assert.Equal(t, tc.code, resp.Code, tc.target)
		if tc.msg != "" {
			assert.Equal(t, tc.msg, resp.Error, tc.target)
		} else {
			assert.NotEmpty(t, resp.Error, tc.target)
		}
	}
}

func TestAlgorithms(t *testing.T) {
	w := get(t, newRouter(), "/api/algorithms")
	require.Equal(t, http.StatusOK, w.Code)

	var resp server.AlgorithmsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []string{"bubble", "insertion", "merge", "quick", "selection"}, resp.Families["sorting"])
	assert.Equal(t, []string{"bfs", "dfs"}, resp.Families["graph"])
	assert.Contains(t, resp.Generators.Shapes, "grid")
	assert.Contains(t, resp.Generators.Sequences, "few_unique")
	assert.Equal(t, []string{"complete"}, resp.Generators.Trees)
}

func TestRequestID(t *testing.T) {
	router := newRouter()

	w := get(t, router, "/healthz")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, w.Header().Get(server.HeaderRequestID), 36)

	req := httptest.NewRequest(http.MethodGet, "/api/sort/bubble", nil)
	req.Header.Set(server.HeaderRequestID, "req-123")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, "req-123", rec.Header().Get(server.HeaderRequestID))
}

func TestMetrics(t *testing.T) {
	router := newRouter()
	get(t, router, "/api/recursion/factorial?n=3")
	get(t, router, "/api/sort/bogo")

	w := get(t, router, "/metrics")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `algoviz_traces_total{family="recursion",variant="factorial"}`)
	assert.Contains(t, body, `algoviz_steps_total{kind="base_case"}`)
	assert.Contains(t, body, `algoviz_request_errors_total{code="UNKNOWN_ALGORITHM"}`)
	assert.Contains(t, body, "algoviz_trace_steps_bucket")
}

func wsURL(srv *httptest.Server, path string) string {
	return "ws" + strings.TrimPrefix(srv.URL, "http") + path
}

func TestStream(t *testing.T) {
	srv := httptest.NewServer(newRouter())
	defer srv.Close()

	ws, _, err := websocket.DefaultDialer.Dial(wsURL(srv, "/api/stream/sorting/bubble?data=3,1,2"), nil)
	require.NoError(t, err)
	defer ws.Close()

	want, err := engine.Run(engine.Request{Family: engine.Sorting, Variant: "bubble", Ints: []int{3, 1, 2}})
	require.NoError(t, err)

	var got step.Trace
	for range want.Steps {
		var s step.Step
		require.NoError(t, ws.ReadJSON(&s))
		got = append(got, s)
	}
	assert.Equal(t, want.Steps.Kinds(), got.Kinds())

	var done server.StreamDone
	require.NoError(t, ws.ReadJSON(&done))
	assert.True(t, done.Done)
	assert.Equal(t, len(want.Steps), done.Steps)
	assert.Equal(t, "O(1)", done.Complexity["space"])

	_, _, err = ws.ReadMessage()
	assert.True(t, websocket.IsCloseError(err, websocket.CloseNormalClosure), "got %v", err)
}

func TestStream_RejectsBeforeUpgrade(t *testing.T) {
	srv := httptest.NewServer(newRouter())
	defer srv.Close()

	_, resp, err := websocket.DefaultDialer.Dial(wsURL(srv, "/api/stream/matrix/bubble"), nil)
	require.ErrorIs(t, err, websocket.ErrBadHandshake)
	require.NotNil(t, resp)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body server.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, server.CodeUnknownAlgorithm, body.Code)
}

func TestServer_ServeAndShutdown(t *testing.T) {
	cfg := config.Default()
	cfg.Server.ShutdownTimeout = time.Second
	s := server.New(cfg, logging.Discard())

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/healthz")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
