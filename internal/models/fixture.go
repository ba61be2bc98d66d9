package models

import (
	"errors"
	"fmt"
)

var (
	EmptyManifestError   = errors.New("manifest does not declare any files")
	MissingPrefixError   = errors.New("fixture prefix must be set")
	ConflictingDataError = errors.New("fixture content and random are mutually exclusive")
	NegativeRandomError  = errors.New("fixture random size must not be negative")
)

// Fixture describes a single file to materialize in Dir, or in the temp
// directory when Dir is empty.
type Fixture struct {
	Prefix  string   `yaml:"prefix"`
	Dir     string   `yaml:"dir"`
	Content string   `yaml:"content"`
	Random  int      `yaml:"random"`
	Append  []string `yaml:"append"`
}

// Manifest lists fixtures created together.
type Manifest struct {
	Files []Fixture `yaml:"files"`
}

// Validate checks a single fixture definition.
func (f Fixture) Validate() error {
	if f.Prefix == "" {
		return MissingPrefixError
	}
	if f.Random < 0 {
		return NegativeRandomError
	}
	if f.Content != "" && f.Random > 0 {
		return ConflictingDataError
	}
	return nil
}

// Validate checks that the manifest is usable, reporting the first invalid fixture.
func (m *Manifest) Validate() error {
	if len(m.Files) == 0 {
		return EmptyManifestError
	}

	for idx, fixture := range m.Files {
		if err := fixture.Validate(); err != nil {
			return fmt.Errorf("fixture #%d: %w", idx+1, err)
		}
	}

	return nil
}
