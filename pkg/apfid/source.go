package apfid

import (
	"fmt"
	"strings"

	"github.com/iancoleman/strcase"
)

// SourceKind tags where an experiment identifier comes from.
type SourceKind string

const (
	// SourceKindPDB identifies a four character Protein Data Bank code.
	SourceKindPDB SourceKind = "PDB"

	// SourceKindAlphaFold identifies an AlphaFold predicted model.
	SourceKindAlphaFold SourceKind = "AlphaFold"

	// SourceKindUserUpload identifies a user uploaded structure ("USR...").
	SourceKindUserUpload SourceKind = "UserUpload"

	// SourceKindUnknown is used for anything else.
	SourceKindUnknown SourceKind = "Unknown"
)

// ValidSourceKinds returns all source kinds.
func ValidSourceKinds() []SourceKind {
	return []SourceKind{
		SourceKindPDB,
		SourceKindAlphaFold,
		SourceKindUserUpload,
		SourceKindUnknown,
	}
}

// IsValid returns true if this is a recognized source kind.
func (k SourceKind) IsValid() bool {
	switch k {
	case SourceKindPDB, SourceKindAlphaFold, SourceKindUserUpload, SourceKindUnknown:
		return true
	default:
		return false
	}
}

// String returns the string representation of the source kind.
func (k SourceKind) String() string {
	return string(k)
}

// Slug returns the snake case key used for storage, e.g. "user_upload".
func (k SourceKind) Slug() string {
	return strcase.ToSnake(string(k))
}

// ParseSourceKind accepts either the tag ("UserUpload") or its slug
// ("user_upload"), case-insensitively.
func ParseSourceKind(s string) (SourceKind, error) {
	for _, k := range ValidSourceKinds() {
		if strings.EqualFold(s, string(k)) || strings.EqualFold(s, k.Slug()) {
			return k, nil
		}
	}
	return "", fmt.Errorf("invalid source kind: %s (valid: %v)", s, ValidSourceKinds())
}

// Source is the provenance of an experiment identifier. It is one of PDB,
// AlphaFold, UserUpload or Unknown; only AlphaFold carries extra data.
type Source interface {
	Kind() SourceKind
	isSource()
}

// PDB is the source of a Protein Data Bank entry.
type PDB struct{}

// AlphaFold is the source of an AlphaFold model and carries its parsed
// identifier.
type AlphaFold struct {
	ID AlphaFoldID
}

// UserUpload is the source of a user uploaded structure.
type UserUpload struct{}

// Unknown is the source of any other experiment identifier.
type Unknown struct{}

func (PDB) Kind() SourceKind        { return SourceKindPDB }
func (AlphaFold) Kind() SourceKind  { return SourceKindAlphaFold }
func (UserUpload) Kind() SourceKind { return SourceKindUserUpload }
func (Unknown) Kind() SourceKind    { return SourceKindUnknown }

func (PDB) isSource()        {}
func (AlphaFold) isSource()  {}
func (UserUpload) isSource() {}
func (Unknown) isSource()    {}

// classify decides the source of experimentID. For AlphaFold models it
// also returns the download form that replaces the raw identifier.
func classify(experimentID string) (Source, string, error) {
	switch {
	case len(experimentID) == 4:
		return PDB{}, experimentID, nil
	case strings.HasPrefix(experimentID, AlphaFoldPrefix):
		af, err := ParseAlphaFoldID(experimentID)
		if err != nil {
			return nil, "", err
		}
		return AlphaFold{ID: af}, af.DownloadID(), nil
	case strings.HasPrefix(experimentID, "USR"):
		return UserUpload{}, experimentID, nil
	default:
		return Unknown{}, experimentID, nil
	}
}
