// Package config loads codec settings and local Z-segment declarations from
// YAML files.
package config

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	hl7 "github.com/kamlesh-microsoft/clear-hl7-net-sub002"
)

// FieldConfig declares one field of a configured segment. Kind names a
// primitive (string, integer, decimal, date, datetime or an HL7 code such as
// NM or DTM); Type names a composite type registered in the catalog and takes
// precedence over Kind.
type FieldConfig struct {
	Name     string `yaml:"name" json:"name"`
	Kind     string `yaml:"kind,omitempty" json:"kind,omitempty"`
	Type     string `yaml:"type,omitempty" json:"type,omitempty"`
	Repeated bool   `yaml:"repeated,omitempty" json:"repeated,omitempty"`
	Table    string `yaml:"table,omitempty" json:"table,omitempty"`
}

// SegmentConfig declares a Z-segment: its description and ordered fields
type SegmentConfig struct {
	Description string        `yaml:"description,omitempty" json:"description,omitempty"`
	Fields      []FieldConfig `yaml:"fields" json:"fields"`
}

// Config holds codec settings and Z-segment declarations read from YAML
type Config struct {
	Separators      hl7.Separators           `yaml:"separators,omitempty" json:"separators,omitempty"`
	Strict          bool                     `yaml:"strict" json:"strict"`
	Escaping        *bool                    `yaml:"escaping,omitempty" json:"escaping,omitempty"`
	Version         string                   `yaml:"version,omitempty" json:"version,omitempty"`
	GenericSegments bool                     `yaml:"generic_segments" json:"generic_segments"`
	Segments        map[string]SegmentConfig `yaml:"segments,omitempty" json:"segments,omitempty"`
}

// Load reads the configuration file at path
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse reads a configuration document
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	for tag := range cfg.Segments {
		if !hl7.IsZSegment(tag) {
			return nil, fmt.Errorf("segment %q: only Z-segments may be configured", tag)
		}
	}
	return &cfg, nil
}

// Options returns the codec options described by the configuration
func (c *Config) Options() []hl7.Option {
	opts := []hl7.Option{
		hl7.WithStrict(c.Strict),
		hl7.WithGenericSegments(c.GenericSegments),
	}
	if !c.Separators.IsZero() {
		opts = append(opts, hl7.WithSeparators(c.Separators))
	}
	if c.Escaping != nil {
		opts = append(opts, hl7.WithEscaping(*c.Escaping))
	}
	if c.Version != "" {
		opts = append(opts, hl7.WithVersion(c.Version))
	}
	return opts
}

// Apply declares the configured segments in every catalog of reg. Composite
// types are resolved per catalog, so a segment may only use types every
// registered version knows.
func (c *Config) Apply(reg *hl7.Registry) error {
	tags := make([]string, 0, len(c.Segments))
	for tag := range c.Segments {
		tags = append(tags, tag)
	}
	sort.Strings(tags)

	for _, version := range reg.Versions() {
		cat, err := reg.Catalog(version)
		if err != nil {
			return err
		}
		for _, tag := range tags {
			def, err := c.segmentDef(tag, cat)
			if err != nil {
				return fmt.Errorf("version %s: %w", version, err)
			}
			cat.AddSegments(def)
		}
	}
	return nil
}

func (c *Config) segmentDef(tag string, cat *hl7.Catalog) (*hl7.SegmentDef, error) {
	sc := c.Segments[tag]
	fields := make([]hl7.Slot, 0, len(sc.Fields))
	for i, fc := range sc.Fields {
		slot, err := fc.slot(cat)
		if err != nil {
			return nil, fmt.Errorf("%s-%d: %w", tag, i+1, err)
		}
		fields = append(fields, slot)
	}
	return hl7.NewSegmentDef(tag, sc.Description, fields...), nil
}

func (fc FieldConfig) slot(cat *hl7.Catalog) (hl7.Slot, error) {
	var slot hl7.Slot
	if fc.Type != "" {
		t := cat.Type(fc.Type)
		if t == nil {
			return slot, fmt.Errorf("unknown composite type %q", fc.Type)
		}
		slot = hl7.CompositeField(fc.Name, t)
	} else {
		kind := hl7.KindString
		if fc.Kind != "" {
			var err error
			if kind, err = hl7.ParseKind(fc.Kind); err != nil {
				return slot, err
			}
		}
		slot = hl7.Field(fc.Name, kind)
	}
	if fc.Repeated {
		slot = slot.Repeating()
	}
	if fc.Table != "" {
		slot = slot.Coded(fc.Table)
	}
	return slot, nil
}
