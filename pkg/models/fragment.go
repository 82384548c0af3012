package models

import (
	"errors"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/hashicorp-forge/apfid/pkg/apfid"
)

// Fragment is a registered APFID. Fragments are keyed by their upper case
// v2 string, which is the lossless rendering of a record.
type Fragment struct {
	gorm.Model

	// UUID is a stable identifier for the fragment that survives
	// re-registration under another database.
	UUID string `gorm:"type:varchar(36);uniqueIndex;not null"`

	// Key is the upper case v2 APFID, e.g. "1ABC:2_A5_B20".
	Key string `gorm:"column:apfid_key;uniqueIndex;not null"`

	// ExperimentID is the experiment identifier as stored on the record;
	// the download form for AlphaFold models.
	ExperimentID string `gorm:"index;not null"`

	ChainID  string `gorm:"not null"`
	Chain2ID *string
	Start    *int
	End      *int
	Model    int `gorm:"not null;default:0"`

	// Version is the grammar version the fragment was registered with.
	Version int `gorm:"not null;default:1"`

	// Source is the snake case source slug, e.g. "pdb" or "alpha_fold".
	Source string `gorm:"index;not null"`

	// UniprotID is set for AlphaFold models.
	UniprotID *string `gorm:"index"`
}

// NewFragment maps a record to a Fragment. The UUID is assigned on Create.
func NewFragment(a *apfid.APFID) (*Fragment, error) {
	key, err := a.Format(apfid.CaseUpper, apfid.V2)
	if err != nil {
		return nil, err
	}

	f := &Fragment{
		Key:          key,
		ExperimentID: a.ExperimentID(),
		ChainID:      a.ChainID(),
		Model:        a.Model(),
		Version:      int(a.Version()),
		Source:       a.Source().Kind().Slug(),
	}
	if chain2, ok := a.Chain2ID(); ok {
		f.Chain2ID = &chain2
	}
	if rng, ok := a.Range(); ok {
		f.Start, f.End = &rng.Start, &rng.End
	}
	if af, ok := a.AlphaFoldID(); ok {
		f.UniprotID = &af.UniprotID
	}
	return f, nil
}

func (f *Fragment) validate() error {
	slugs := make([]interface{}, 0, len(apfid.ValidSourceKinds()))
	for _, k := range apfid.ValidSourceKinds() {
		slugs = append(slugs, k.Slug())
	}

	if err := validation.ValidateStruct(f,
		validation.Field(&f.Key, validation.Required),
		validation.Field(&f.ExperimentID, validation.Required),
		validation.Field(&f.ChainID, validation.Required, validation.Length(1, 2)),
		validation.Field(&f.Version, validation.Required, validation.In(1, 2)),
		validation.Field(&f.Source, validation.Required, validation.In(slugs...)),
		validation.Field(&f.Model, validation.Min(0)),
	); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}
	return nil
}

// BeforeCreate assigns a UUID to fragments that do not have one.
func (f *Fragment) BeforeCreate(tx *gorm.DB) error {
	if f.UUID == "" {
		f.UUID = uuid.NewString()
	}
	return nil
}

// Create inserts a new fragment.
func (f *Fragment) Create(db *gorm.DB) error {
	if err := f.validate(); err != nil {
		return err
	}
	return db.Create(f).Error
}

// FirstOrCreate loads the fragment with the same key, inserting it if it
// is not registered yet.
func (f *Fragment) FirstOrCreate(db *gorm.DB) error {
	if err := f.validate(); err != nil {
		return err
	}

	existing := &Fragment{}
	err := existing.GetByKey(db, f.Key)
	if err == nil {
		*f = *existing
		return nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("error checking for existing fragment: %w", err)
	}

	return db.Create(f).Error
}

// GetByKey retrieves a fragment by its upper case v2 key.
func (f *Fragment) GetByKey(db *gorm.DB, key string) error {
	if err := validation.Validate(key, validation.Required); err != nil {
		return err
	}

	return db.
		Where("apfid_key = ?", key).
		First(f).
		Error
}

// GetByAPFID parses s with either grammar and retrieves the matching
// fragment.
func (f *Fragment) GetByAPFID(db *gorm.DB, s string) error {
	a, err := apfid.Parse(s)
	if err != nil {
		return err
	}
	key, err := a.Format(apfid.CaseUpper, apfid.V2)
	if err != nil {
		return err
	}
	return f.GetByKey(db, key)
}

// GetByUUID retrieves a fragment by UUID.
func (f *Fragment) GetByUUID(db *gorm.DB, id string) error {
	if err := validation.Validate(id, validation.Required); err != nil {
		return err
	}

	return db.
		Where("uuid = ?", id).
		First(f).
		Error
}

// APFID rebuilds the record the fragment was registered from.
func (f *Fragment) APFID() (*apfid.APFID, error) {
	fields := apfid.Fields{
		ExperimentID: f.ExperimentID,
		ChainID:      f.ChainID,
		Model:        f.Model,
		Version:      apfid.Version(f.Version),
	}
	if f.Chain2ID != nil {
		fields.Chain2ID = *f.Chain2ID
	}
	if f.Start != nil && f.End != nil {
		fields.Range = &apfid.Range{Start: *f.Start, End: *f.End}
	}
	return apfid.New(fields)
}

// FindFragmentsBySource retrieves all fragments of a source kind, ordered
// by key.
func FindFragmentsBySource(db *gorm.DB, kind apfid.SourceKind) ([]Fragment, error) {
	var fragments []Fragment
	err := db.
		Where("source = ?", kind.Slug()).
		Order("apfid_key ASC").
		Find(&fragments).
		Error
	return fragments, err
}

// FindFragmentsByExperiment retrieves all fragments of one experiment,
// ordered by key.
func FindFragmentsByExperiment(db *gorm.DB, experimentID string) ([]Fragment, error) {
	var fragments []Fragment
	err := db.
		Where("experiment_id = ?", experimentID).
		Order("apfid_key ASC").
		Find(&fragments).
		Error
	return fragments, err
}
