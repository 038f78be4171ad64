package adapter

import "errors"

// Errors mapped from journal server status codes by mapHTTPError.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrNotFound            = errors.New("not found")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrGatewayTimeout      = errors.New("server request timed out")
	ErrUnexpectedStatus    = errors.New("unexpected response status")
)
