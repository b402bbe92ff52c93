package call_events

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestHandleEvent_AcksKnownEvent(t *testing.T) {
	h := NewHandler("default", "Bright Smile Dental", "gpt-4o-mini", nopLogger{})

	body := `{"data": {"event_type": "call.initiated", "payload": {"call_control_id": "cc-1", "from": "+15550001111", "to": "+15550002222", "direction": "incoming"}}}`
	req := httptest.NewRequest(http.MethodPost, "/telnyx/call-control", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	h.HandleEvent(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var ack EventAck
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ack))
	assert.True(t, ack.Received)
	assert.Equal(t, "call.initiated", ack.EventType)
}

func TestHandleEvent_UnknownEventStillAcked(t *testing.T) {
	h := NewHandler("default", "Bright Smile Dental", "gpt-4o-mini", nopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/telnyx/call-control", bytes.NewBufferString(`{"data": {}}`))
	rec := httptest.NewRecorder()
	h.HandleEvent(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var ack EventAck
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ack))
	assert.True(t, ack.Received)
	assert.Equal(t, "unknown", ack.EventType)
}

func TestHandleEvent_InvalidJSON(t *testing.T) {
	h := NewHandler("default", "Bright Smile Dental", "gpt-4o-mini", nopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/telnyx/call-control", bytes.NewBufferString("{bad"))
	rec := httptest.NewRecorder()
	h.HandleEvent(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleStatus(t *testing.T) {
	h := NewHandler("salon_spa", "Bright Smile Dental", "gpt-4o-mini", nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/telnyx/status", nil)
	rec := httptest.NewRecorder()
	h.HandleStatus(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var status StatusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.Equal(t, "ready", status.Status)
	assert.Equal(t, "salon_spa", status.Configuration["persona"])
	assert.Equal(t, "Bright Smile Dental", status.Configuration["business"])
}
