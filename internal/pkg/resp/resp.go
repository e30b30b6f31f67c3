/*
Package resp provides helper functions for constructing and sending standardized HTTP JSON responses.

Every response uses the same envelope: a business code (0 on success), a message,
and an optional data payload.
*/
package resp

import (
	"encoding/json"
	"net/http"

	"chatserver/internal/pkg/errs"
	"chatserver/internal/pkg/logx"
)

// JSONResponse defines the standardized JSON response structure returned to clients.
type JSONResponse struct {
	// Code is the business status code (0 for success, see errs package otherwise).
	Code int `json:"code"`

	// Message is the client-friendly status description or error message.
	Message string `json:"message"`

	// Data is the optional response payload.
	Data any `json:"data,omitempty"`
}

// RespondJSON sets the JSON headers and writes payload with the given status.
func RespondJSON(w http.ResponseWriter, r *http.Request, httpStatus int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")

	response, err := json.Marshal(payload)
	if err != nil {
		logx.Error(err, "Error encoding JSON response", "http_status", httpStatus)

		http.Error(w, "Error encoding JSON response", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(httpStatus)
	if _, err := w.Write(response); err != nil {
		logx.Warn("Failed to write JSON response", "error", err.Error())
	}
}

// RespondSuccess sends an HTTP 200 envelope with the given data.
func RespondSuccess(w http.ResponseWriter, r *http.Request, data any) {
	RespondMessage(w, r, http.StatusOK, "success", data)
}

// RespondCreated sends an HTTP 201 envelope with the given data.
func RespondCreated(w http.ResponseWriter, r *http.Request, data any) {
	RespondMessage(w, r, http.StatusCreated, "created", data)
}

// RespondMessage sends a success envelope with a custom status and message.
func RespondMessage(w http.ResponseWriter, r *http.Request, httpStatus int, message string, data any) {
	RespondJSON(w, r, httpStatus, JSONResponse{
		Code:    0,
		Message: message,
		Data:    data,
	})
}

// RespondError sends an envelope describing customErr. A nil error is reported as ErrUnknown.
func RespondError(w http.ResponseWriter, r *http.Request, customErr *errs.CustomError) {
	if customErr == nil {
		customErr = errs.NewError(errs.ErrUnknown)
	}

	res := JSONResponse{
		Code:    customErr.Code,
		Message: customErr.Message,
	}
	RespondJSON(w, r, customErr.Status, res)
}
