package schema

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/formtree/pkg/fields"
	"github.com/aretw0/formtree/pkg/registry"
	"gopkg.in/yaml.v3"
)

// Format is the encoding of a document.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatFromPath detects the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unsupported file extension: %s", filepath.Ext(path))
	}
}

// ParseDefinition decodes a definition document.
func ParseDefinition(data []byte, format Format) (*Definition, error) {
	var def Definition
	if err := decode(data, format, &def); err != nil {
		return nil, fmt.Errorf("failed to parse definition: %w", err)
	}
	return &def, nil
}

// LoadFile reads and decodes a definition file.
func LoadFile(path string) (*Definition, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read definition: %w", err)
	}
	return ParseDefinition(data, format)
}

// Load reads a definition file and compiles it.
func Load(path string, reg *registry.Registry) (*fields.ShapeNode, *Definition, error) {
	def, err := LoadFile(path)
	if err != nil {
		return nil, nil, err
	}
	shape, err := def.Compile(reg)
	if err != nil {
		return nil, def, err
	}
	return shape, def, nil
}

// DecodeData decodes a form data document into a record. An empty document
// is an empty record.
func DecodeData(data []byte, format Format) (map[string]any, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return map[string]any{}, nil
	}
	var out map[string]any
	if err := decode(data, format, &out); err != nil {
		return nil, fmt.Errorf("failed to parse data: %w", err)
	}
	if out == nil {
		out = map[string]any{}
	}
	return out, nil
}

func decode(data []byte, format Format, out any) error {
	switch format {
	case FormatYAML:
		return yaml.Unmarshal(data, out)
	case FormatJSON:
		return json.Unmarshal(data, out)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}
