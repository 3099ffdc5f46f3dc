package config

import (
	"bytes"
	"fmt"
	"os"

	"github.com/alnah/go-unitc/internal/unit"
	"github.com/alnah/go-unitc/internal/yamlutil"
)

// UnitFileName is the metadata file looked up in a unit directory.
const UnitFileName = "unit.yaml"

// UnitFile is the decoded form of unit.yaml.
type UnitFile struct {
	Title            string   `yaml:"title"`
	Subtitle         string   `yaml:"subtitle"`
	EstimatedMinutes *int     `yaml:"estimatedMinutes"`
	Objectives       []string `yaml:"objectives"`
}

// Validate checks field lengths and value ranges.
func (u *UnitFile) Validate() error {
	if err := validateFieldLength("title", u.Title, MaxTitleLength); err != nil {
		return err
	}
	if err := validateFieldLength("subtitle", u.Subtitle, MaxSubtitleLength); err != nil {
		return err
	}
	if u.EstimatedMinutes != nil && *u.EstimatedMinutes < 0 {
		return fmt.Errorf("%w: estimatedMinutes must be >= 0, got %d", ErrInvalidValue, *u.EstimatedMinutes)
	}
	if len(u.Objectives) > MaxObjectives {
		return fmt.Errorf("%w: objectives has %d entries (max %d)", ErrInvalidValue, len(u.Objectives), MaxObjectives)
	}
	for i, o := range u.Objectives {
		if err := validateFieldLength(fmt.Sprintf("objectives[%d]", i), o, MaxObjectiveLength); err != nil {
			return err
		}
	}
	return nil
}

// Metadata converts the file into the assembler's input.
func (u *UnitFile) Metadata() unit.Metadata {
	return unit.Metadata{
		Title:            u.Title,
		Subtitle:         u.Subtitle,
		EstimatedMinutes: u.EstimatedMinutes,
		Objectives:       u.Objectives,
	}
}

// LoadUnit reads unit metadata. A missing or blank file yields an empty
// UnitFile: metadata is optional and the title falls back to the unit slug.
func LoadUnit(path string) (*UnitFile, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path is built from the unit directory
	if err != nil {
		if os.IsNotExist(err) {
			return &UnitFile{}, nil
		}
		return nil, fmt.Errorf("reading unit metadata: %w", err)
	}

	var u UnitFile
	if len(bytes.TrimSpace(data)) == 0 {
		return &u, nil
	}
	if err := yamlutil.UnmarshalStrict(data, &u); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigParse, path, err)
	}
	if err := u.Validate(); err != nil {
		return nil, err
	}
	return &u, nil
}
