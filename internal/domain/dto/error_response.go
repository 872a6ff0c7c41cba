package dto

import "time"

// ErrorResponse is the standard JSON error body returned by the API.
type ErrorResponse struct {
	Message      string    `json:"message" example:"invalid kind parameter"`
	ErrorDetails string    `json:"error,omitempty" example:"trade type \"Bond\" is not known"`
	Timestamp    time.Time `json:"timestamp"`
}

// NewErrorResponse builds an error response, capturing the inner error
// text when one is provided.
func NewErrorResponse(message string, err error) ErrorResponse {
	resp := ErrorResponse{Message: message, Timestamp: time.Now()}
	if err != nil {
		resp.ErrorDetails = err.Error()
	}
	return resp
}

// Error implements the error interface so handlers can pass the response
// through middleware error collection.
func (e ErrorResponse) Error() string {
	if e.ErrorDetails != "" {
		return e.Message + ": " + e.ErrorDetails
	}
	return e.Message
}
