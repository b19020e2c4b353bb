package client

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrValidation   = errors.New("validation failed")
	ErrNotFound     = errors.New("not found")
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnexpected   = errors.New("unexpected response")
)

// Error is a classified API failure. Err is always one of the sentinel kinds;
// Cause holds the transport or decoding error when there is one.
type Error struct {
	Err    error
	Status int
	Fields map[string][]string
	Cause  error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Err.Error())
	if e.Status != 0 {
		fmt.Fprintf(&b, " (status %d)", e.Status)
	}
	if len(e.Fields) > 0 {
		b.WriteString(": ")
		b.WriteString(strings.Join(e.Messages(), "; "))
	} else if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.Cause}
}

// Messages flattens the field errors into display lines of the form
// "<field> <message>", ordered by field name. Without field errors it
// returns a single generic line for the error kind.
func (e *Error) Messages() []string {
	if len(e.Fields) == 0 {
		return []string{describe(e.Err)}
	}

	fields := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	var out []string
	for _, f := range fields {
		for _, msg := range e.Fields[f] {
			out = append(out, f+" "+msg)
		}
	}
	return out
}

func describe(kind error) string {
	switch kind {
	case ErrUnauthorized:
		return "you need to sign in to do that"
	case ErrValidation:
		return "the server rejected the request"
	case ErrNotFound:
		return "nothing was found"
	case ErrUnavailable:
		return "the server could not be reached"
	default:
		return "something went wrong"
	}
}

// Messages turns any error into display lines: field messages for
// validation failures, a generic line for other API errors, and the error
// text for everything else.
func Messages(err error) []string {
	if err == nil {
		return nil
	}
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Messages()
	}
	return []string{err.Error()}
}

// errorBody is the Conduit error envelope: {"errors": {"field": ["msg"]}}.
type errorBody struct {
	Errors map[string][]string `json:"errors"`
}

func kindForStatus(status int) error {
	switch {
	case status == http.StatusUnauthorized, status == http.StatusForbidden:
		return ErrUnauthorized
	case status == http.StatusUnprocessableEntity:
		return ErrValidation
	case status == http.StatusNotFound:
		return ErrNotFound
	default:
		return ErrUnexpected
	}
}
