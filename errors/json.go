package errors

import (
	"encoding/json"
)

// ErrorResponse is the flat JSON rendering of an error.
// The message stays plain text; Code and Name are the machine-readable fields.
type ErrorResponse struct {
	// Code is the numeric error code, 0 for errors outside the taxonomy.
	Code int `json:"code"`

	// Name is the symbolic name of the code, e.g. "BAD_FILE".
	Name string `json:"name"`

	// Message is the human-readable error message.
	Message string `json:"message"`
}

// ToJSON converts any error to an ErrorResponse suitable for JSON serialization.
// Returns nil if err is nil.
//
// For Error values, uses the code and message. For other errors, uses code 0,
// the name "UNKNOWN" and err.Error().
func ToJSON(err error) *ErrorResponse {
	if err == nil {
		return nil
	}

	var mathErr Error
	if As(err, &mathErr) {
		return &ErrorResponse{
			Code:    int(mathErr.Code()),
			Name:    mathErr.Code().String(),
			Message: mathErr.Message(),
		}
	}

	return &ErrorResponse{
		Code:    int(CodeNone),
		Name:    "UNKNOWN",
		Message: err.Error(),
	}
}

// MarshalJSON implements json.Marshaler for mathError.
func (e *mathError) MarshalJSON() ([]byte, error) {
	data, err := json.Marshal(&ErrorResponse{
		Code:    int(e.code),
		Name:    e.code.String(),
		Message: e.message,
	})
	if err != nil {
		return nil, Unreachable()
	}
	return data, nil
}
