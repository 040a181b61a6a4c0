package gddoc

import (
	"errors"
	"fmt"
)

// Application error codes.
//
// These are propagated up the stack so callers can branch on the class of
// failure without string matching. Codes map to user-facing behavior: lookups
// that miss print a message and exit cleanly, corrupt caches trigger
// regeneration, and only EGODOT with no cached fallback is terminal.
const (
	ECACHEMAGIC   = "cache_magic"   // snapshot magic bytes mismatch
	ECACHEVERSION = "cache_version" // snapshot written by a different version
	ECHECKSUM     = "checksum"      // snapshot payload failed integrity check
	EGODOT        = "godot"         // engine subprocess unavailable or failed
	EINTERNAL     = "internal"      // unexpected internal error
	EINVALID      = "invalid"       // validation failed
	EINVALIDJSON  = "invalid_json"  // malformed API description document
	ENOTFOUND     = "not_found"     // symbol or cache entry does not exist
)

// Error represents an application-specific error. Application errors can be
// unwrapped by the caller to extract out the code and message.
//
// Any non-application error (such as a disk error) is reported as an
// EINTERNAL error by ErrorCode, and the human user is shown a generic
// message by ErrorMessage.
type Error struct {
	// Machine-readable error code.
	Code string

	// Human-readable error message.
	Message string
}

// Error implements the error interface. Not used by the application
// otherwise.
func (e *Error) Error() string {
	return fmt.Sprintf("gddoc error: code=%s message=%s", e.Code, e.Message)
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors always return "Internal error".
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

// Errorf is a helper function to return an Error with a given code and
// formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}
