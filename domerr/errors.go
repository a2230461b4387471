// Package domerr implements DOMException, the error type the dom package's
// mutation and creation operations report their failures through.
package domerr

import (
	"fmt"
	"runtime"
)

// Location identifies the source position where a DOMException was raised.
type Location struct {
	File     string
	Line     int
	Function string
}

func (l Location) String() string {
	if l.File == "" {
		return "unknown location"
	}
	return fmt.Sprintf("%s:%d (%s)", l.File, l.Line, l.Function)
}

// DOMException is the error every dom package operation that can fail
// reports through.
// See: https://webidl.spec.whatwg.org/#idl-DOMException
type DOMException struct {
	// Name is one of the exception name tokens defined in codes.go, e.g.
	// HierarchyRequestError.
	Name string

	// Message is a human-readable description of the failure.
	Message string

	// Origin is the call site that raised the exception.
	Origin Location
}

// New constructs a DOMException named name, capturing its caller's source
// position as Origin. If message is "", name's default message is used.
func New(name, message string) *DOMException {
	if message == "" {
		message = DefaultMessage(name)
	}
	return &DOMException{
		Name:    name,
		Message: message,
		Origin:  callerLocation(2),
	}
}

func callerLocation(skip int) Location {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return Location{}
	}
	funcName := "unknown"
	if fn := runtime.FuncForPC(pc); fn != nil {
		funcName = fn.Name()
	}
	return Location{File: file, Line: line, Function: funcName}
}

// Error implements the error interface.
func (e *DOMException) Error() string {
	return fmt.Sprintf("%s: %s (at %s)", e.Name, e.Message, e.Origin)
}

// Exceptions is a collection of DOMExceptions. It implements the error
// interface so a caller that accumulates several (e.g. a batch of element
// creations) can return them together.
type Exceptions []*DOMException

// Error implements the error interface.
func (e Exceptions) Error() string {
	if len(e) == 0 {
		return "no exceptions"
	}
	if len(e) == 1 {
		return e[0].Error()
	}
	msg := fmt.Sprintf("%d exceptions:\n", len(e))
	for i, exc := range e {
		if i > 0 {
			msg += "\n"
		}
		msg += "  - " + exc.Error()
	}
	return msg
}

// Unwrap returns the underlying errors for errors.Is/As support.
func (e Exceptions) Unwrap() []error {
	errs := make([]error, len(e))
	for i, exc := range e {
		errs[i] = exc
	}
	return errs
}
