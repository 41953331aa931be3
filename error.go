package consulta

import (
	"fmt"
)

////////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	ErrSuccess Err = iota
	ErrConfigurationMissing
	ErrConfigurationInvalid
	ErrInvalidInput
	ErrSerialization
	ErrTransportInit
	ErrTransport
	ErrResponseDecode
	ErrUpstream
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Errors
type Err int

// UpstreamError is returned when the upstream API answered but the answer
// could not be used. It carries the upstream status code and body so that
// callers can relay them.
type UpstreamError struct {
	Code   Err
	Status int
	Body   []byte
	Reason string
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (e Err) Error() string {
	switch e {
	case ErrSuccess:
		return "success"
	case ErrConfigurationMissing:
		return "configuration file not found"
	case ErrConfigurationInvalid:
		return "invalid configuration"
	case ErrInvalidInput:
		return "invalid input"
	case ErrSerialization:
		return "failed to encode request"
	case ErrTransportInit:
		return "failed to initialize HTTP client"
	case ErrTransport:
		return "upstream request failed"
	case ErrResponseDecode:
		return "failed to decode upstream response"
	case ErrUpstream:
		return "upstream returned an error or an unexpected format"
	}
	return fmt.Sprintf("error code %d", int(e))
}

func (e Err) With(args ...interface{}) error {
	return fmt.Errorf("%w: %s", e, fmt.Sprint(args...))
}

func (e Err) Withf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", e, fmt.Sprintf(format, args...))
}

func (e *UpstreamError) Error() string {
	if e.Reason == "" {
		return e.Code.Error()
	}
	return e.Code.Error() + ": " + e.Reason
}

func (e *UpstreamError) Unwrap() error {
	return e.Code
}
