package execute_tool

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VoiceScheduler/internal/service/tools"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeExecutor struct {
	toolName string
	args     json.RawMessage
	result   *tools.Result
	err      error
}

func (f *fakeExecutor) Execute(_ context.Context, toolName string, args json.RawMessage) (*tools.Result, error) {
	f.toolName = toolName
	f.args = args
	return f.result, f.err
}

func newRouter(executor ToolExecutor) *mux.Router {
	h := NewHandler(executor, nopLogger{})
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/tools/{toolName}", h.Handle).Methods(http.MethodPost)
	return r
}

func TestHandle_Success(t *testing.T) {
	executor := &fakeExecutor{result: &tools.Result{Success: true, Message: "Found 2 available slots"}}
	router := newRouter(executor)

	body := `{"service_name": "haircut", "start_date": "2030-06-10", "end_date": "2030-06-12"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/tools/find_available_slots", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "find_available_slots", executor.toolName)
	assert.JSONEq(t, body, string(executor.args))

	var result tools.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.True(t, result.Success)
}

func TestHandle_BusinessFailureIsStill200(t *testing.T) {
	executor := &fakeExecutor{result: &tools.Result{Success: false, Error: "That time slot is no longer available"}}
	router := newRouter(executor)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/tools/book_appointment", bytes.NewBufferString(`{}`))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var result tools.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.False(t, result.Success)
	assert.NotEmpty(t, result.Error)
}

func TestHandle_UnknownTool(t *testing.T) {
	executor := &fakeExecutor{err: tools.ErrUnknownTool}
	router := newRouter(executor)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/tools/order_pizza", bytes.NewBufferString(`{}`))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandle_InvalidJSON(t *testing.T) {
	executor := &fakeExecutor{result: &tools.Result{Success: true}}
	router := newRouter(executor)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/tools/book_appointment", bytes.NewBufferString(`{not json`))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, executor.toolName)
}

func TestHandle_EmptyBodyBecomesEmptyObject(t *testing.T) {
	executor := &fakeExecutor{result: &tools.Result{Success: false, Error: "customerPhone is required"}}
	router := newRouter(executor)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/tools/cancel_appointment", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{}`, string(executor.args))
}

func TestHandle_InternalError(t *testing.T) {
	executor := &fakeExecutor{err: tools.ErrInternal}
	router := newRouter(executor)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/tools/book_appointment", bytes.NewBufferString(`{}`))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
