package config

import (
	"fmt"

	yaml "gopkg.in/yaml.v3"
)

// Kind of reservable front-matter list a document directive can request.
type SectionKind int

const (
	SectionKindFigures SectionKind = iota
	SectionKindTables
	SectionKindExamples
)

var sectionKindNames = map[SectionKind]string{
	SectionKindFigures:  "figures",
	SectionKindTables:   "tables",
	SectionKindExamples: "examples",
}

func (k SectionKind) String() string {
	if name, ok := sectionKindNames[k]; ok {
		return name
	}
	// this should never happen
	panic("unsupported section kind requested")
}

// ParseSectionKind converts textual kind specification to SectionKind.
func ParseSectionKind(name string) (SectionKind, error) {
	for k, n := range sectionKindNames {
		if n == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown section kind %q", name)
}

// SectionKindNames returns all supported kind names for help texts.
func SectionKindNames() []string {
	return []string{
		sectionKindNames[SectionKindFigures],
		sectionKindNames[SectionKindTables],
		sectionKindNames[SectionKindExamples],
	}
}

func (k SectionKind) MarshalYAML() (any, error) {
	return k.String(), nil
}

func (k *SectionKind) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	parsed, err := ParseSectionKind(name)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
