package adapter

import "errors"

// Transport errors returned (wrapped, with the response body) by
// [ServerAdapter] implementations.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrNotFound            = errors.New("not found")
	ErrInternalServerError = errors.New("internal server error")
	ErrUnexpectedStatus    = errors.New("unexpected status")
)
