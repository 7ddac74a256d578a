package cmd

import (
	"os"

	"github.com/neonfmt/neon"
	"gopkg.in/yaml.v3"
)

// FileConfig is the shape of .neon.yaml: the subset of EncodeOptions and
// DecodeOptions a user might want to pin as project-wide defaults,
// overridable by CLI flags. Fields left unset in the file keep the
// package's built-in defaults.
type FileConfig struct {
	Mode                *string `yaml:"mode"`
	CompressNumbers     *bool   `yaml:"compress_numbers"`
	CompressBooleans    *bool   `yaml:"compress_booleans"`
	CompressNulls       *bool   `yaml:"compress_nulls"`
	CompressStrings     *bool   `yaml:"compress_strings"`
	AbbreviateFields    *bool   `yaml:"abbreviate_fields"`
	Indent              *int    `yaml:"indent"`
	MaxInlineArray      *int    `yaml:"max_inline_array"`
	ExpandAbbreviations *bool   `yaml:"expand_abbreviations"`
	MaxDepth            *int    `yaml:"max_depth"`
}

// LoadConfig reads .neon.yaml (or the path given by --config) and layers
// it over the package defaults. A missing file is not an error: it just
// means every field stays at its built-in default (config precedence is
// CLI flags > .neon.yaml > built-in defaults, per the file's own doc
// comment above).
func LoadConfig() (neon.EncodeOptions, neon.DecodeOptions, error) {
	enc := neon.DefaultEncodeOptions()
	dec := neon.DefaultDecodeOptions()

	path := configPath
	if path == "" {
		path = ".neon.yaml"
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return enc, dec, nil
		}
		return enc, dec, err
	}

	var fc FileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return enc, dec, err
	}

	if fc.Mode != nil {
		switch *fc.Mode {
		case "readable":
			enc.Mode = neon.Readable
		case "compact":
			enc.Mode = neon.Compact
		case "ultra_compact", "ultracompact":
			enc.Mode = neon.UltraCompact
		}
	}
	if fc.CompressNumbers != nil {
		enc.CompressNumbers = *fc.CompressNumbers
	}
	if fc.CompressBooleans != nil {
		enc.CompressBooleans = *fc.CompressBooleans
	}
	if fc.CompressNulls != nil {
		enc.CompressNulls = *fc.CompressNulls
	}
	if fc.CompressStrings != nil {
		enc.CompressStrings = *fc.CompressStrings
	}
	if fc.AbbreviateFields != nil {
		enc.AbbreviateFields = *fc.AbbreviateFields
	}
	if fc.Indent != nil {
		enc.Indent = *fc.Indent
	}
	if fc.MaxInlineArray != nil {
		enc.MaxInlineArray = *fc.MaxInlineArray
	}
	if fc.ExpandAbbreviations != nil {
		dec.ExpandAbbreviations = *fc.ExpandAbbreviations
	}
	if fc.MaxDepth != nil {
		dec.MaxDepth = *fc.MaxDepth
	}

	return enc, dec, nil
}
