package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondJSON_Envelope(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondJSON(rec, http.StatusCreated, map[string]string{"id": "1"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"data":{"id":"1"}}`, rec.Body.String())
}

func TestRespondFieldError(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondFieldError(rec, http.StatusBadRequest, "missing_field", "required field is missing: email", "email")

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "missing_field", body.Error)
	assert.Equal(t, "email", body.Field)
}

func TestRespondInternalError_HidesDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondInternalError(rec)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"internal_error","message":"internal server error"}`, rec.Body.String())
}

func TestDecodeJSON(t *testing.T) {
	var v struct {
		Name string `json:"name"`
	}

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Jane"}`))
	require.NoError(t, DecodeJSON(req, &v))
	assert.Equal(t, "Jane", v.Name)

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Jane","extra":1}`))
	assert.Error(t, DecodeJSON(req, &v))

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"a"}{"name":"b"}`))
	assert.Error(t, DecodeJSON(req, &v))

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`not json`))
	assert.Error(t, DecodeJSON(req, &v))
}
