package apfid

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/hashicorp/go-hclog"
)

// Range is an inclusive residue interval within a chain.
type Range struct {
	Start int `json:"start" yaml:"start"`
	End   int `json:"end" yaml:"end"`
}

// Fields are the structured inputs of New.
type Fields struct {
	// ExperimentID is the dataset entry, e.g. "1abc" or "AF-P69905-F1-v4".
	ExperimentID string

	// ChainID is the 1-2 letter chain marker.
	ChainID string

	// Chain2ID is the optional chain marker of the range end. Empty means
	// unset.
	Chain2ID string

	// Range is optional. A range whose start equals its end is dropped.
	Range *Range

	// Model is the model number within the entry. Any value above 0
	// forces V2.
	Model int

	// Version is the grammar to render with. Zero means V1.
	Version Version
}

// APFID references a chain, and optionally a residue range, within a PDB
// entry, an AlphaFold model or an uploaded structure.
//
// Records are built with New, Parse or the deprecated NewFromLegacyString.
// Only SetVersion mutates a record after construction, and it must not be
// called concurrently with other methods on the same record.
type APFID struct {
	experimentID string
	chainID      string
	chain2ID     string
	rng          *Range
	model        int
	version      Version
	source       Source

	canonical string
	warnings  []Warning
}

// Option configures New, Parse and NewFromLegacyString.
type Option func(*options)

type options struct {
	logger hclog.Logger
}

// WithLogger sets the logger diagnostics are written to. Without it
// nothing is logged.
func WithLogger(logger hclog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func newOptions(opts []Option) *options {
	o := &options{logger: hclog.NewNullLogger()}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// New builds a record from structured fields.
//
// A model above 0 forces V2 whatever Version says, and a range whose start
// equals its end is dropped. Experiment identifiers starting with "AF" are
// parsed as AlphaFold identifiers; ErrInvalidFormat is returned when that
// fails. ErrUnsupportedVersion is returned for versions other than 1 and 2.
func New(f Fields, opts ...Option) (*APFID, error) {
	return build(f, newOptions(opts))
}

func build(f Fields, o *options) (*APFID, error) {
	a := &APFID{
		experimentID: f.ExperimentID,
		chainID:      f.ChainID,
		chain2ID:     f.Chain2ID,
		model:        f.Model,
		version:      f.Version,
	}

	if a.version == 0 {
		a.version = V1
	}
	if a.model > 0 {
		a.version = V2
	}
	if !a.version.IsValid() {
		return nil, &Error{
			Op:  "New",
			Err: ErrUnsupportedVersion,
			Msg: fmt.Sprintf("version %d", int(a.version)),
		}
	}

	if f.Range != nil && f.Range.Start != f.Range.End {
		r := *f.Range
		a.rng = &r
	}

	if err := a.classify(); err != nil {
		return nil, err
	}

	canonical, err := a.format(CaseUpper, a.version)
	if err != nil {
		return nil, err
	}
	a.canonical = canonical

	o.logger.Trace("built apfid",
		"apfid", a.canonical,
		"source", a.source.Kind(),
		"version", a.version,
	)

	return a, nil
}

// classify sets the source and, for AlphaFold models, rewrites the
// experiment identifier to its download form.
func (a *APFID) classify() error {
	source, experimentID, err := classify(a.experimentID)
	if err != nil {
		return err
	}
	a.source = source
	a.experimentID = experimentID
	return nil
}

// Validate implements validation.Validatable for grammar matches.
func (f rawFields) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.ExperimentID, validation.Required),
		validation.Field(&f.ChainID, validation.Required),
	)
}

// Parse matches s against the v1 and v2 grammars and builds a record from
// the first match. Text after the matched identifier is ignored.
//
// The grammars are tried in the order v1-full, v2-full, v1-chain, v2-chain.
// A range whose end marker the full grammars do not accept therefore falls
// back to a chain-only match: "1YSI_A111-191" parses as "1YSI_A".
func Parse(s string, opts ...Option) (*APFID, error) {
	o := newOptions(opts)

	fields, g, err := match(s)
	if err != nil {
		return nil, err
	}
	if err := fields.Validate(); err != nil {
		return nil, &Error{
			Op:  "Parse",
			Err: fmt.Errorf("%w: %s", ErrInvalidIdentifier, err),
			Msg: s,
		}
	}

	o.logger.Trace("matched apfid grammar", "input", s, "grammar", g.name)

	f := Fields{
		ExperimentID: fields.ExperimentID,
		ChainID:      fields.ChainID,
		Chain2ID:     fields.Chain2ID,
		Model:        fields.Model,
		Version:      g.version,
	}
	if fields.Start != nil && fields.End != nil {
		f.Range = &Range{Start: *fields.Start, End: *fields.End}
	}

	return build(f, o)
}

// MustParse is like Parse but panics on error. It is meant for tests and
// constants.
func MustParse(s string) *APFID {
	a, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("invalid apfid: %s: %v", s, err))
	}
	return a
}

// ExperimentID returns the experiment identifier. For AlphaFold models this
// is the download form, e.g. "AF-P69905-F1-model_v4".
func (a *APFID) ExperimentID() string {
	return a.experimentID
}

// ChainID returns the chain marker.
func (a *APFID) ChainID() string {
	return a.chainID
}

// Chain2ID returns the chain marker of the range end, if one was given.
func (a *APFID) Chain2ID() (string, bool) {
	return a.chain2ID, a.chain2ID != ""
}

// Range returns the residue range. It is absent for whole chains.
func (a *APFID) Range() (Range, bool) {
	if a.rng == nil {
		return Range{}, false
	}
	return *a.rng, true
}

// HasRange returns true if the record references a residue range.
func (a *APFID) HasRange() bool {
	return a.rng != nil
}

// Model returns the model number, 0 when unset.
func (a *APFID) Model() int {
	return a.model
}

// Version returns the grammar version the record renders with.
func (a *APFID) Version() Version {
	return a.version
}

// Source returns the provenance of the experiment identifier.
func (a *APFID) Source() Source {
	return a.source
}

// IDType returns the source tag. It is kept for callers of the older
// id_type attribute.
func (a *APFID) IDType() SourceKind {
	return a.sourceKind()
}

// sourceKind reports Unknown for records that were never built.
func (a *APFID) sourceKind() SourceKind {
	if a.source == nil {
		return SourceKindUnknown
	}
	return a.source.Kind()
}

// AlphaFoldID returns the embedded AlphaFold identifier of AlphaFold
// records.
func (a *APFID) AlphaFoldID() (AlphaFoldID, bool) {
	af, ok := a.source.(AlphaFold)
	return af.ID, ok
}

// Warnings returns the non-fatal diagnostics raised while building the
// record.
func (a *APFID) Warnings() []Warning {
	return a.warnings
}

// SetVersion switches the grammar the record renders with and recomputes
// its canonical string. The record is left unchanged on error.
func (a *APFID) SetVersion(v Version) error {
	canonical, err := a.format(CaseUpper, v)
	if err != nil {
		return err
	}
	a.version = v
	a.canonical = canonical
	return nil
}

// String returns the canonical string in the record's version with an
// upper case experiment token.
func (a *APFID) String() string {
	return a.canonical
}

// Equal returns true if two records carry the same fields.
func (a *APFID) Equal(other *APFID) bool {
	if a == nil || other == nil {
		return a == other
	}
	r1, ok1 := a.Range()
	r2, ok2 := other.Range()
	return a.experimentID == other.experimentID &&
		a.chainID == other.chainID &&
		a.chain2ID == other.chain2ID &&
		ok1 == ok2 && r1 == r2 &&
		a.model == other.model &&
		a.version == other.version &&
		a.source == other.source
}
