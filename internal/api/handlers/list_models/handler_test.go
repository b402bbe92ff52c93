package list_models

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{}) {}

func TestHandle_ConfiguredModelFirst(t *testing.T) {
	h := NewHandler("gpt-4.1", nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/v1/models", nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var list ModelList
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Equal(t, "list", list.Object)
	require.NotEmpty(t, list.Data)
	assert.Equal(t, "gpt-4.1", list.Data[0].ID)
	assert.Equal(t, "model", list.Data[0].Object)
}

func TestHandle_NoDuplicateWhenConfiguredIsFallback(t *testing.T) {
	h := NewHandler("gpt-4o-mini", nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/v1/models", nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	var list ModelList
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))

	seen := make(map[string]int)
	for _, m := range list.Data {
		seen[m.ID]++
	}
	assert.Equal(t, 1, seen["gpt-4o-mini"])
}
