package oerror

import "fmt"

// Kind classifies an Error so callers can match it with errors.Is.
type Kind uint8

const (
	KindInternal Kind = iota
	KindConfigMismatch
	KindNoRecording
	KindCorruptRecording
)

var (
	// ErrConfigMismatch is returned when a recording's tick interval differs from the live one.
	ErrConfigMismatch = &Error{Kind: KindConfigMismatch, Err: "recorded tick interval does not match live tick interval"}
	// ErrNoRecording is returned when a run is started without a usable recording.
	ErrNoRecording = &Error{Kind: KindNoRecording, Err: "no playback recording found"}
	// ErrCorruptRecording is returned when a stored recording fails its integrity check.
	ErrCorruptRecording = &Error{Kind: KindCorruptRecording, Err: "recording is corrupt"}
)

type Error struct {
	Kind Kind
	Err  string
}

// New creates an internal error with a formatted message.
func New(format string, args ...any) *Error {
	return &Error{Kind: KindInternal, Err: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string {
	return e.Err
}

// Is reports whether target is an Error of the same Kind. Internal errors only match themselves.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if e.Kind == KindInternal {
		return e == t
	}
	return e.Kind == t.Kind
}
