package apfid

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// WarningCodeDeprecated marks use of a deprecated entry point.
const WarningCodeDeprecated = "deprecated"

// Warning is a non-fatal diagnostic attached to a record.
type Warning struct {
	Code    string `json:"code" yaml:"code"`
	Message string `json:"message" yaml:"message"`
}

func (w Warning) String() string {
	return w.Code + ": " + w.Message
}

// NewFromLegacyString builds a record from an already formatted string by
// splitting it on '_' without grammar matching:
//
//	"1abc_A"       -> experiment "1abc", chain "A"
//	"1abc_A10_A20" -> experiment "1abc", chain "A", residues 10-20
//
// Only the first letter of the second token is used as the chain, and the
// model and second chain are never set. The record carries a deprecation
// Warning, which is also logged at WARN level through WithLogger.
//
// Deprecated: Use Parse, which understands both grammar versions.
func NewFromLegacyString(s string, opts ...Option) (*APFID, error) {
	o := newOptions(opts)

	w := Warning{
		Code:    WarningCodeDeprecated,
		Message: "building an apfid from a raw string is deprecated, use Parse",
	}
	o.logger.Warn(w.Message, "apfid", s)

	f, err := splitLegacy(s)
	if err != nil {
		return nil, err
	}

	a, err := build(f, o)
	if err != nil {
		return nil, err
	}
	a.warnings = append(a.warnings, w)
	return a, nil
}

// splitLegacy extracts fields by position.
func splitLegacy(s string) (Fields, error) {
	tokens := strings.Split(s, "_")
	if len(tokens) < 2 || tokens[1] == "" {
		return Fields{}, &Error{
			Op:  "NewFromLegacyString",
			Err: ErrInvalidIdentifier,
			Msg: fmt.Sprintf("%q has no chain token", s),
		}
	}

	f := Fields{
		ExperimentID: tokens[0],
		Version:      V1,
	}
	if len(tokens) == 2 {
		f.ChainID = tokens[1]
		return f, nil
	}

	f.ChainID = firstRune(tokens[1])
	start, err := strconv.Atoi(dropFirst(tokens[1]))
	if err != nil {
		return Fields{}, &Error{
			Op:  "NewFromLegacyString",
			Err: fmt.Errorf("%w: bad range start: %s", ErrInvalidIdentifier, err),
			Msg: s,
		}
	}
	end, err := strconv.Atoi(dropFirst(tokens[2]))
	if err != nil {
		return Fields{}, &Error{
			Op:  "NewFromLegacyString",
			Err: fmt.Errorf("%w: bad range end: %s", ErrInvalidIdentifier, err),
			Msg: s,
		}
	}
	f.Range = &Range{Start: start, End: end}

	return f, nil
}

// firstRune returns the chain marker in front of a residue number.
func firstRune(s string) string {
	_, size := utf8.DecodeRuneInString(s)
	return s[:size]
}

// dropFirst strips the chain marker in front of a residue number.
func dropFirst(s string) string {
	_, size := utf8.DecodeRuneInString(s)
	return s[size:]
}
