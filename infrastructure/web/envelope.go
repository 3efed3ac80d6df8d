package web

import (
	"encoding/json"
	"net/http"
)

const jsonContentType = "application/json; charset=utf-8"

// SuccessEnvelope is the body of a successful API response:
// {"success": true, "message": ..., "data": ...}.
type SuccessEnvelope[T any] struct {
	Success bool    `json:"success"`
	Message *string `json:"message"`
	Data    T       `json:"data"`

	status int
}

// Success wraps data in a success envelope answered with 200 OK. message may
// be nil and is then encoded as null.
func Success[T any](data T, message *string) *SuccessEnvelope[T] {
	return SuccessWithStatus(data, message, http.StatusOK)
}

// SuccessWithStatus is Success with an explicit status code.
func SuccessWithStatus[T any](data T, message *string, code int) *SuccessEnvelope[T] {
	return &SuccessEnvelope[T]{
		Success: true,
		Message: message,
		Data:    data,
		status:  code,
	}
}

// Encode implements the Encoder interface.
func (e *SuccessEnvelope[T]) Encode() ([]byte, string, error) {
	data, err := json.Marshal(e)
	if err != nil {
		return nil, "", err
	}
	return data, jsonContentType, nil
}

// HTTPStatus returns the status code, 200 when unset.
func (e *SuccessEnvelope[T]) HTTPStatus() int {
	if e.status == 0 {
		return http.StatusOK
	}
	return e.status
}

// ErrorEnvelope is the body of a failed API response:
// {"success": false, "message": ...}. It carries no data key.
type ErrorEnvelope struct {
	Success bool    `json:"success"`
	Message *string `json:"message"`

	status int
}

// Error builds an error envelope answered with code. The code is used as
// given; zero falls back to 500.
func Error(message *string, code int) *ErrorEnvelope {
	return &ErrorEnvelope{
		Success: false,
		Message: message,
		status:  code,
	}
}

// Encode implements the Encoder interface.
func (e *ErrorEnvelope) Encode() ([]byte, string, error) {
	data, err := json.Marshal(e)
	if err != nil {
		return nil, "", err
	}
	return data, jsonContentType, nil
}

// HTTPStatus returns the status code, 500 when unset.
func (e *ErrorEnvelope) HTTPStatus() int {
	if e.status == 0 {
		return http.StatusInternalServerError
	}
	return e.status
}

// Msg returns a pointer to s for envelope messages.
func Msg(s string) *string {
	return &s
}
