package apfid

import (
	"fmt"
	"strconv"
	"strings"
)

// Version selects the APFID grammar a record is rendered with.
type Version int

const (
	// V1 renders "{exp}_{chain}" or "{exp}_{chain}{start}_{chain}{end}".
	V1 Version = 1

	// V2 renders "{exp}[:{model}]_{chain}[{start}_[{chain2}]{end}]".
	V2 Version = 2
)

// IsValid returns true for V1 and V2.
func (v Version) IsValid() bool {
	return v == V1 || v == V2
}

func (v Version) String() string {
	return "v" + strconv.Itoa(int(v))
}

// Case selects how the experiment token is cased when formatting. Chain
// markers are always written as stored.
type Case int

const (
	CaseUpper Case = iota
	CaseLower
)

func (c Case) String() string {
	if c == CaseLower {
		return "lower"
	}
	return "upper"
}

// ParseCase parses "upper" or "lower". An empty string means upper.
func ParseCase(s string) (Case, error) {
	switch strings.ToLower(s) {
	case "", "upper":
		return CaseUpper, nil
	case "lower":
		return CaseLower, nil
	default:
		return CaseUpper, fmt.Errorf("invalid case %q (valid: upper, lower)", s)
	}
}

// experimentToken is the experiment part of the canonical string. For
// AlphaFold models it is always derived from the parsed identifier, never
// from the original input.
func (a *APFID) experimentToken(c Case) string {
	token := a.experimentID
	if af, ok := a.source.(AlphaFold); ok {
		token = af.ID.PSSKBID()
	}
	if c == CaseLower {
		return strings.ToLower(token)
	}
	return strings.ToUpper(token)
}

// format builds the canonical string. It does not touch the cache.
func (a *APFID) format(c Case, v Version) (string, error) {
	token := a.experimentToken(c)

	switch v {
	case V1:
		if a.rng == nil {
			return token + "_" + a.chainID, nil
		}
		// v1 has no slot for a second chain: the first chain is repeated.
		return fmt.Sprintf("%s_%s%d_%s%d",
			token, a.chainID, a.rng.Start, a.chainID, a.rng.End), nil

	case V2:
		var b strings.Builder
		b.WriteString(token)
		if a.model > 0 {
			b.WriteString(":")
			b.WriteString(strconv.Itoa(a.model))
		}
		b.WriteString("_")
		b.WriteString(a.chainID)
		if a.rng != nil {
			b.WriteString(strconv.Itoa(a.rng.Start))
			b.WriteString("_")
			if a.chain2ID != "" && a.chain2ID != a.chainID {
				b.WriteString(a.chain2ID)
			}
			b.WriteString(strconv.Itoa(a.rng.End))
		}
		return b.String(), nil

	default:
		return "", &Error{
			Op:  "Format",
			Err: ErrUnsupportedVersion,
			Msg: fmt.Sprintf("version %d", int(v)),
		}
	}
}

// Format renders the record with the given case and grammar version.
func (a *APFID) Format(c Case, v Version) (string, error) {
	return a.format(c, v)
}

// Upper renders the record in its current version with an upper case
// experiment token.
func (a *APFID) Upper() string {
	s, _ := a.format(CaseUpper, a.version)
	return s
}

// Lower renders the record in its current version with a lower case
// experiment token.
func (a *APFID) Lower() string {
	s, _ := a.format(CaseLower, a.version)
	return s
}
