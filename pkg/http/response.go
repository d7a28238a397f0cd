package http

import (
	"encoding/json"
	"net/http"

	apperrors "reserbot/pkg/errors"
)

type ErrorResponse struct {
	Error   string         `json:"error"`
	Details map[string]any `json:"details,omitempty"`
}

type ListResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

type CreatedResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type ProbeResponse struct {
	Success       bool   `json:"success"`
	Message       string `json:"message"`
	TotalReservas int64  `json:"totalReservas"`
}

func WriteJSON(w http.ResponseWriter, statusCode int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	return json.NewEncoder(w).Encode(data)
}

// WriteError is the single place where service errors become HTTP responses.
// Caller-input-class failures (validation, store rejections) keep their
// message; anything with a 5xx status gets a generic body so internal detail
// never reaches the caller.
func WriteError(w http.ResponseWriter, err error) error {
	appErr := apperrors.AsAppError(err)

	statusCode := appErr.StatusCode()
	if statusCode == 0 {
		statusCode = http.StatusInternalServerError
	}

	errResp := ErrorResponse{
		Error:   appErr.Message,
		Details: appErr.Details,
	}
	if statusCode >= http.StatusInternalServerError {
		errResp = ErrorResponse{Error: "internal server error"}
	}

	return WriteJSON(w, statusCode, errResp)
}

func WriteList(w http.ResponseWriter, data any) error {
	return WriteJSON(w, http.StatusOK, ListResponse{Success: true, Data: data})
}

func WriteCreated(w http.ResponseWriter, message string, data any) error {
	return WriteJSON(w, http.StatusCreated, CreatedResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func WriteMessage(w http.ResponseWriter, message string) error {
	return WriteJSON(w, http.StatusOK, MessageResponse{Success: true, Message: message})
}

// NotFoundHandler answers every unmatched route, regardless of method.
func NotFoundHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = WriteJSON(w, http.StatusNotFound, ErrorResponse{Error: "route not found"})
	})
}
