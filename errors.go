package docopt

import (
	"fmt"

	"golang.org/x/xerrors"
)

// LanguageError reports that the help text itself could not be compiled
// into a pattern tree: a missing or duplicated "Usage:" section,
// unbalanced brackets, unexpected trailing tokens, or an ambiguous option
// descriptor. This is always an author error, never the end user's fault,
// and is never retried.
type LanguageError struct {
	msg   string
	frame xerrors.Frame
}

func newLanguageError(format string, args ...interface{}) *LanguageError {
	return &LanguageError{
		msg:   xerrors.Errorf(format, args...).Error(),
		frame: xerrors.Caller(1),
	}
}

func (e *LanguageError) Error() string { return e.msg }

func (e *LanguageError) Format(f fmt.State, c rune) { xerrors.FormatError(e, f, c) }

func (e *LanguageError) FormatError(p xerrors.Printer) error {
	p.Print(e.msg)
	e.frame.Format(p)
	return nil
}

// ArgumentError reports that argv did not match any alternative of the
// pattern: an unknown or ambiguous option, an arity violation, or leftover
// tokens once matching finished. This is a user error; the caller is
// expected to show it alongside the original help text.
type ArgumentError struct {
	msg   string
	frame xerrors.Frame
}

func newArgumentError(format string, args ...interface{}) *ArgumentError {
	return &ArgumentError{
		msg:   xerrors.Errorf(format, args...).Error(),
		frame: xerrors.Caller(1),
	}
}

func (e *ArgumentError) Error() string { return e.msg }

func (e *ArgumentError) Format(f fmt.State, c rune) { xerrors.FormatError(e, f, c) }

func (e *ArgumentError) FormatError(p xerrors.Printer) error {
	p.Print(e.msg)
	e.frame.Format(p)
	return nil
}

// ErrExitHelp signals that -h/--help was present in argv and help handling
// was requested. It is not an error but an early-exit control-flow signal,
// propagated through the same error-returning mechanism as LanguageError
// and ArgumentError for uniformity, and meant to be caught only at the
// top-level driver (Parse/Run).
var ErrExitHelp = exitSignal{"help requested"}

// ErrExitVersion signals that --version was present in argv and version
// handling was configured.
var ErrExitVersion = exitSignal{"version requested"}

type exitSignal struct{ msg string }

func (e exitSignal) Error() string { return e.msg }
