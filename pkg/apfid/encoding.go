package apfid

import (
	"bytes"
	"encoding/json"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Summary is the serialized view of a record.
type Summary struct {
	APFID        string       `json:"apfid" yaml:"apfid"`
	ExperimentID string       `json:"experiment_id" yaml:"experiment_id"`
	ChainID      string       `json:"chain_id" yaml:"chain_id"`
	Chain2ID     string       `json:"chain2_id,omitempty" yaml:"chain2_id,omitempty"`
	Start        *int         `json:"start,omitempty" yaml:"start,omitempty"`
	End          *int         `json:"end,omitempty" yaml:"end,omitempty"`
	Model        int          `json:"model" yaml:"model"`
	Version      int          `json:"version" yaml:"version"`
	Source       SourceKind   `json:"source" yaml:"source"`
	AlphaFold    *AlphaFoldID `json:"alphafold,omitempty" yaml:"alphafold,omitempty"`
	Warnings     []Warning    `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// Summary returns the serialized view of the record, with the canonical
// string rendered in case c.
func (a *APFID) Summary(c Case) Summary {
	s := Summary{
		APFID:        a.canonical,
		ExperimentID: a.experimentID,
		ChainID:      a.chainID,
		Chain2ID:     a.chain2ID,
		Model:        a.model,
		Version:      int(a.version),
		Source:       a.sourceKind(),
		Warnings:     a.warnings,
	}
	if c == CaseLower {
		s.APFID = a.Lower()
	}
	if a.rng != nil {
		start, end := a.rng.Start, a.rng.End
		s.Start, s.End = &start, &end
	}
	if af, ok := a.AlphaFoldID(); ok {
		s.AlphaFold = &af
	}
	return s
}

// Validate implements validation.Validatable. It requires the same fields
// as a grammar match.
func (s Summary) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.ExperimentID, validation.Required),
		validation.Field(&s.ChainID, validation.Required),
	)
}

// Fields returns the structured inputs that rebuild this record with New.
// For AlphaFold models the experiment identifier is the download form.
func (s Summary) Fields() Fields {
	f := Fields{
		ExperimentID: s.ExperimentID,
		ChainID:      s.ChainID,
		Chain2ID:     s.Chain2ID,
		Model:        s.Model,
		Version:      Version(s.Version),
	}
	if s.Start != nil && s.End != nil {
		f.Range = &Range{Start: *s.Start, End: *s.End}
	}
	return f
}

// MarshalJSON implements json.Marshaler.
// Serializes as the Summary object.
func (a *APFID) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.Summary(CaseUpper))
}

// UnmarshalJSON implements json.Unmarshaler.
// Accepts either an APFID string, which is parsed, or a Summary object,
// which is rebuilt from its fields. JSON null leaves the record unchanged.
func (a *APFID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("invalid APFID JSON: %w", err)
		}
		return a.UnmarshalText([]byte(s))
	}

	var s Summary
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("invalid APFID JSON: %w", err)
	}
	if err := s.Validate(); err != nil {
		return &Error{
			Op:  "UnmarshalJSON",
			Err: ErrInvalidIdentifier,
			Msg: err.Error(),
		}
	}
	parsed, err := New(s.Fields())
	if err != nil {
		return fmt.Errorf("invalid APFID: %w", err)
	}
	*a = *parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (a *APFID) MarshalText() ([]byte, error) {
	return []byte(a.canonical), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using Parse.
func (a *APFID) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*a = *parsed
	return nil
}
