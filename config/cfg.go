package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v3"

	"github.com/rupor-github/gencfg"
)

//go:embed config.yaml.tmpl
var ConfigTmpl []byte

type (
	TemplateFieldName string

	PageConfig struct {
		Width  float64 `yaml:"width" validate:"min=100"`
		Height float64 `yaml:"height" validate:"min=100"`
	}

	SectionConfig struct {
		Kind         SectionKind `yaml:"kind"`
		Title        string      `yaml:"title"`
		HeadingLevel int         `yaml:"heading_level" validate:"min=1,max=6"`
		PageBreak    bool        `yaml:"page_break"`
	}

	DocumentConfig struct {
		StylesheetPath        string          `yaml:"stylesheet_path" sanitize:"assure_file_access"`
		OutputNameTemplate    string          `yaml:"output_name_template"`
		FileNameTransliterate bool            `yaml:"file_name_transliterate"`
		HeadingFloor          int             `yaml:"heading_floor" validate:"min=1,max=6"`
		NumberWidth           int             `yaml:"number_width" validate:"min=1,max=6"`
		FigureHeight          float64         `yaml:"figure_height" validate:"gte=0"`
		Page                  PageConfig      `yaml:"page"`
		Sections              []SectionConfig `yaml:"sections" validate:"dive"`
	}

	Config struct {
		Version   int            `yaml:"version" validate:"eq=1"`
		Document  DocumentConfig `yaml:"document"`
		Logging   LoggingConfig  `yaml:"logging"`
		Reporting ReporterConfig `yaml:"reporting"`
	}
)

const (
	// NOTE: must match yaml field name above, alternative is to use struct
	// field name and reflection which I want to avoid for now
	OutputNameTemplateFieldName TemplateFieldName = "output_name_template"
)

var requiredOptions = append([]func(*gencfg.ProcessingOptions){},
	gencfg.WithDoNotExpandField(string(OutputNameTemplateFieldName)),
)

// Section returns configuration for the requested section kind, falling back
// to sane defaults when the kind is not configured explicitly.
func (conf *DocumentConfig) Section(kind SectionKind) SectionConfig {
	for _, s := range conf.Sections {
		if s.Kind == kind {
			return s
		}
	}
	return SectionConfig{Kind: kind, HeadingLevel: 1, PageBreak: true}
}

func unmarshalConfig(data []byte, cfg *Config, process bool) (*Config, error) {
	// We want to use only fields we defined so we cannot use yaml.Unmarshal
	// directly here
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration data: %w", err)
	}
	if process {
		// sanitize and validate what has been loaded
		if err := gencfg.Sanitize(cfg); err != nil {
			return nil, err
		}
		if err := gencfg.Validate(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// LoadConfiguration reads the configuration from the file at the given path,
// superimposes its values on top of expanded configuration template to provide
// sane defaults and performs validation.
func LoadConfiguration(path string, options ...func(*gencfg.ProcessingOptions)) (*Config, error) {
	haveFile := len(path) > 0

	data, err := gencfg.Process(ConfigTmpl, append(requiredOptions, options...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	cfg, err := unmarshalConfig(data, &Config{}, !haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	if !haveFile {
		return cfg, nil
	}

	// overwrite cfg values with values from the file
	data, err = os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg, err = unmarshalConfig(data, cfg, haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration file: %w", err)
	}
	return cfg, nil
}

// Prepare generates configuration file from template and returns it as a byte
// slice.
func Prepare() ([]byte, error) {
	return gencfg.Process(ConfigTmpl, requiredOptions...)
}

func Dump(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(*cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config to yaml: %v", err)
	}
	return data, nil
}
