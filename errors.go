package gptab

import "github.com/jsphweid/gptab/gperr"

// Code is the decoder's error sum type. Every error this package
// returns is a *Error carrying exactly one Code.
type Code = gperr.Code

const (
	Truncated              = gperr.Truncated
	BadHeader              = gperr.BadHeader
	UnrecognizedFormat     = gperr.UnrecognizedFormat
	UnsupportedVersion     = gperr.UnsupportedVersion
	CorruptDeflate         = gperr.CorruptDeflate
	UnsupportedCompression = gperr.UnsupportedCompression
	BadContainer           = gperr.BadContainer
	BadXML                 = gperr.BadXML
)

// Error is the concrete error type every exported function in this
// package returns on failure.
type Error = gperr.Error
