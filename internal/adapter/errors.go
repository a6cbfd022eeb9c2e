package adapter

import "errors"

// Sentinel errors mapped from HTTP response statuses. The remote API's error
// body is preserved verbatim inside the wrapping error so callers see exactly
// what the server said.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")
)
