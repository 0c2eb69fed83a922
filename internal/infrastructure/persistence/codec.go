package persistence

import (
	"fmt"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"
)

// Format names a persisted text format
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// Codec turns records into text and text into generic documents.
// Decoding always yields map[string]any so one builder serves every format.
type Codec interface {
	Format() Format
	Ext() string
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte) (map[string]any, error)
}

// NewCodec returns the codec for a format name
func NewCodec(format string) (Codec, error) {
	switch Format(strings.ToLower(format)) {
	case FormatJSON, "":
		return JSONCodec{}, nil
	case FormatYAML, "yml":
		return YAMLCodec{}, nil
	case FormatTOML:
		return TOMLCodec{}, nil
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
}

// JSONCodec encodes with sonic, indented by four spaces
type JSONCodec struct{}

func (JSONCodec) Format() Format { return FormatJSON }
func (JSONCodec) Ext() string    { return ".json" }

func (JSONCodec) Marshal(v any) ([]byte, error) {
	return sonic.ConfigStd.MarshalIndent(v, "", "    ")
}

func (JSONCodec) Unmarshal(data []byte) (map[string]any, error) {
	var doc map[string]any
	if err := sonic.ConfigStd.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("JSON parse error: %w", err)
	}
	return doc, nil
}

// YAMLCodec encodes with goccy/go-yaml. Output is flow style with every
// string double-quoted, so content such as ".nan" or "true" decodes back
// as a string.
type YAMLCodec struct{}

func (YAMLCodec) Format() Format { return FormatYAML }
func (YAMLCodec) Ext() string    { return ".yaml" }

func (YAMLCodec) Marshal(v any) ([]byte, error) {
	return yaml.MarshalWithOptions(v, yaml.JSON())
}

func (YAMLCodec) Unmarshal(data []byte) (map[string]any, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("YAML parse error: %w", err)
	}
	return doc, nil
}

// TOMLCodec encodes with pelletier/go-toml
type TOMLCodec struct{}

func (TOMLCodec) Format() Format { return FormatTOML }
func (TOMLCodec) Ext() string    { return ".toml" }

func (TOMLCodec) Marshal(v any) ([]byte, error) {
	return toml.Marshal(v)
}

func (TOMLCodec) Unmarshal(data []byte) (map[string]any, error) {
	var doc map[string]any
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("TOML parse error: %w", err)
	}
	return doc, nil
}
