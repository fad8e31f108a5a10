package models

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrAlreadyExists      = errors.New("already exists")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// InvalidInput wraps ErrInvalidInput with a message meant for the client
func InvalidInput(msg string) error {
	return &ClientError{Msg: msg, Kind: ErrInvalidInput}
}

// AlreadyExists wraps ErrAlreadyExists with a message meant for the client
func AlreadyExists(msg string) error {
	return &ClientError{Msg: msg, Kind: ErrAlreadyExists}
}

// NotFound wraps ErrNotFound with a message meant for the client
func NotFound(msg string) error {
	return &ClientError{Msg: msg, Kind: ErrNotFound}
}

// ClientError carries a user-facing message alongside one of the sentinel errors
type ClientError struct {
	Msg  string
	Kind error
}

func (e *ClientError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *ClientError) Unwrap() error {
	return e.Kind
}
