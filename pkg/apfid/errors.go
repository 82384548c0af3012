package apfid

import "errors"

// Sentinel errors. Every error returned by this package wraps exactly one
// of them, so callers can branch with errors.Is.
var (
	// ErrInvalidFormat is returned when an AlphaFold identifier does not
	// start with the "AF" token.
	ErrInvalidFormat = errors.New("invalid alphafold identifier format")

	// ErrInvalidIdentifier is returned when no APFID grammar matches, or a
	// match yields an empty experiment or chain identifier.
	ErrInvalidIdentifier = errors.New("invalid apfid")

	// ErrUnsupportedVersion is returned when formatting or version changes
	// request a grammar version other than 1 or 2.
	ErrUnsupportedVersion = errors.New("unsupported apfid version")
)

// Error records the operation and input that failed.
type Error struct {
	Op  string // Operation that failed, e.g. "Parse"
	Err error  // Underlying sentinel or wrapped error
	Msg string // Optional context, usually the offending input
}

func (e *Error) Error() string {
	if e.Msg != "" {
		return e.Op + ": " + e.Msg + ": " + e.Err.Error()
	}
	return e.Op + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}
