// Package handlers holds the JSON envelope helpers shared by the endpoint handlers.
package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// maxBodyBytes ограничение размера тела запроса
const maxBodyBytes = 1 << 20

// Коды ошибок в ответе
const (
	CodeBadRequest   = "bad_request"
	CodeUnauthorized = "unauthorized"
	CodeForbidden    = "forbidden"
	CodeNotFound     = "not_found"
	CodeConflict     = "conflict"
	CodeUnavailable  = "unavailable"
	CodeInternal     = "internal_error"
)

const msgInternal = "internal server error"

// DataResponse успешный ответ
type DataResponse struct {
	Data interface{} `json:"data"`
}

// ErrorResponse ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// RespondJSON отправляет данные в конверте {"data": ...}
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	writeJSON(w, status, DataResponse{Data: data})
}

// RespondText отправляет текст
func RespondText(w http.ResponseWriter, status int, text string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, text)
}

// RespondError отправляет ошибку с кодом и сообщением
func RespondError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, ErrorResponse{Error: code, Message: message})
}

// RespondFieldError отправляет ошибку валидации конкретного поля
func RespondFieldError(w http.ResponseWriter, status int, code, message, field string) {
	writeJSON(w, status, ErrorResponse{Error: code, Message: message, Field: field})
}

// RespondBadRequest 400
func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, CodeBadRequest, message)
}

// RespondUnauthorized 401
func RespondUnauthorized(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusUnauthorized, CodeUnauthorized, message)
}

// RespondForbidden 403
func RespondForbidden(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusForbidden, CodeForbidden, message)
}

// RespondNotFound 404
func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, CodeNotFound, message)
}

// RespondUnavailable 503
func RespondUnavailable(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusServiceUnavailable, CodeUnavailable, message)
}

// RespondInternalError 500 без подробностей
func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, CodeInternal, msgInternal)
}

// DecodeJSON читает тело запроса в v. Неизвестные поля и лишние данные считаются ошибкой.
func DecodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return errors.New("empty request body")
	}

	decoder := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(v); err != nil {
		return fmt.Errorf("decode body: %w", err)
	}
	if decoder.More() {
		return errors.New("request body must contain a single JSON object")
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
