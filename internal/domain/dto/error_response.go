package dto

import "time"

// ErrorResponse is the JSON body of every non-2xx API response.
//
// Fields:
//   - Message: short, client-facing description.
//   - ErrorDetails: the underlying error text, if any.
//   - Timestamp: when the error was produced (UTC).
type ErrorResponse struct {
	Message      string    `json:"message" example:"invalid query parameter"`
	ErrorDetails string    `json:"error,omitempty" example:"invalid timezone: \"Mars/Olympus\""`
	Timestamp    time.Time `json:"timestamp" example:"2025-01-15T10:00:00Z"`
}

// Error lets an ErrorResponse travel as an error value.
func (e ErrorResponse) Error() string {
	if e.ErrorDetails == "" {
		return e.Message
	}
	return e.Message + ": " + e.ErrorDetails
}

// NewErrorResponse builds an ErrorResponse stamped with the current time.
//
// Parameters:
//   - message: client-facing description.
//   - err: optional underlying error; nil leaves ErrorDetails empty.
func NewErrorResponse(message string, err error) ErrorResponse {
	resp := ErrorResponse{
		Message:   message,
		Timestamp: time.Now().UTC(),
	}
	if err != nil {
		resp.ErrorDetails = err.Error()
	}
	return resp
}
