// Package gperr defines the typed error sum shared by every decoder
// package. It lives apart from the root gptab package so that leaf
// packages (cursor, inflate, gpx, archive, gpif, gp3, gp5, format) can
// return typed errors without importing the root package and creating an
// import cycle.
package gperr

import (
	"fmt"

	"github.com/pkg/errors"
)

// Code is the decoder's error sum type. Every failure the core library
// surfaces to a caller carries exactly one of these.
type Code string

const (
	Truncated              Code = "TRUNCATED"
	BadHeader              Code = "BAD_HEADER"
	UnrecognizedFormat     Code = "UNRECOGNIZED_FORMAT"
	UnsupportedVersion     Code = "UNSUPPORTED_VERSION"
	CorruptDeflate         Code = "CORRUPT_DEFLATE"
	UnsupportedCompression Code = "UNSUPPORTED_COMPRESSION"
	BadContainer           Code = "BAD_CONTAINER"
	BadXML                 Code = "BAD_XML"
)

// Error is the concrete error type returned by every exported function in
// this module. Err, when present, is the wrapped lower-level cause and is
// reachable via errors.Unwrap/errors.As.
type Error struct {
	Code Code
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("gptab: %s: %s: %s", e.Code, e.Msg, e.Err.Error())
	}
	return fmt.Sprintf("gptab: %s: %s", e.Code, e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }

// Is lets errors.Is(err, &gperr.Error{Code: gperr.Truncated}) match any
// error of the same Code regardless of message or wrapped cause.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// New builds an Error with no wrapped cause.
func New(code Code, msg string) *Error {
	return &Error{Code: code, Msg: msg}
}

// Newf builds an Error with no wrapped cause from a format string.
func Newf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Msg: fmt.Sprintf(format, args...)}
}

// Wrap builds an Error carrying cause, preserved via pkg/errors so a
// stack trace survives up to the point of classification.
func Wrap(code Code, msg string, cause error) *Error {
	if cause == nil {
		return New(code, msg)
	}
	return &Error{Code: code, Msg: msg, Err: errors.Wrap(cause, msg)}
}
