package apfid

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const (
	// AlphaFoldPrefix is the leading token of every AlphaFold identifier.
	AlphaFoldPrefix = "AF"

	defaultAlphaFoldFileNumber = 1
	defaultAlphaFoldVersion    = 4
)

var (
	alphaFoldSeparatorRe = regexp.MustCompile(`[_-]`)
	alphaFoldFileNoRe    = regexp.MustCompile(`[Ff](\d+)`)
	alphaFoldVersionRe   = regexp.MustCompile(`[vV](\d+)`)
)

// AlphaFoldID identifies a predicted structure in the AlphaFold database,
// e.g. "AF-P69905-F1-model_v4".
//
// AlphaFoldIDs are immutable once parsed.
type AlphaFoldID struct {
	UniprotID  string `json:"uniprot_id" yaml:"uniprot_id"`
	FileNumber int    `json:"file_number" yaml:"file_number"`
	Version    int    `json:"version" yaml:"version"`
}

// ParseAlphaFoldID parses identifiers like "AF-P69905-F1-v4" or
// "AF_P12345_F2_v7". Tokens are separated by '_' or '-'.
//
// Only the "AF" prefix is mandatory. A missing or malformed fragment token
// leaves FileNumber at 1, a missing or malformed version token leaves
// Version at 4.
func ParseAlphaFoldID(s string) (AlphaFoldID, error) {
	tokens := alphaFoldSeparatorRe.Split(s, -1)
	if !strings.EqualFold(tokens[0], AlphaFoldPrefix) {
		return AlphaFoldID{}, &Error{
			Op:  "ParseAlphaFoldID",
			Err: ErrInvalidFormat,
			Msg: fmt.Sprintf("%q does not start with %s", s, AlphaFoldPrefix),
		}
	}

	id := AlphaFoldID{
		FileNumber: defaultAlphaFoldFileNumber,
		Version:    defaultAlphaFoldVersion,
	}
	if len(tokens) > 1 {
		id.UniprotID = tokens[1]
	}
	if len(tokens) > 2 {
		if n, ok := findNumber(alphaFoldFileNoRe, tokens[2]); ok {
			id.FileNumber = n
		}
	}
	if len(tokens) > 3 {
		if n, ok := findNumber(alphaFoldVersionRe, tokens[len(tokens)-1]); ok {
			id.Version = n
		}
	}

	return id, nil
}

// findNumber returns the first capture group of re in s as an integer.
func findNumber(re *regexp.Regexp, s string) (int, bool) {
	m := re.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

// String returns the display form.
// Format: "AF-{uniprot}-F{file}-v{version}"
func (a AlphaFoldID) String() string {
	return fmt.Sprintf("%s-%s-F%d-v%d", AlphaFoldPrefix, a.UniprotID, a.FileNumber, a.Version)
}

// DownloadID returns the identifier used by the AlphaFold file service.
// Format: "AF-{uniprot}-F{file}-model_v{version}"
func (a AlphaFoldID) DownloadID() string {
	return fmt.Sprintf("%s-%s-F%d-model_v%d", AlphaFoldPrefix, a.UniprotID, a.FileNumber, a.Version)
}

// PSSKBID returns the form embedded as the experiment token of an APFID.
// Format: "AF-{uniprot}-F{file}-V{version}"
func (a AlphaFoldID) PSSKBID() string {
	return fmt.Sprintf("%s-%s-F%d-V%d", AlphaFoldPrefix, a.UniprotID, a.FileNumber, a.Version)
}

// Equal returns true if two AlphaFoldIDs are equal.
func (a AlphaFoldID) Equal(other AlphaFoldID) bool {
	return a == other
}
