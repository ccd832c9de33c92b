package spec

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// MalformedInputError reports a document that could not be parsed into
// the expected shape. The bicycle from that file is excluded from the
// run; other files are unaffected.
type MalformedInputError struct {
	Path   string
	Reason string
	Err    error
}

func (e *MalformedInputError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed input %s: %s: %v", e.Path, e.Reason, e.Err)
	}
	return fmt.Sprintf("malformed input %s: %s", e.Path, e.Reason)
}

func (e *MalformedInputError) Unwrap() error { return e.Err }

// Load reads a bicycle document from a JSON or YAML file. The format is
// chosen by extension: .json for JSON, .yaml/.yml for YAML.
func Load(path string) (*Bicycle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading bike file: %w", err)
	}

	var file BikeFile
	if err := unmarshal(path, data, &file); err != nil {
		return nil, err
	}

	if file.Bicycle.Name == "" {
		return nil, &MalformedInputError{Path: path, Reason: "missing bicycle.name"}
	}
	return &file.Bicycle, nil
}

// LoadRider reads a rider document from a JSON or YAML file.
func LoadRider(path string) (*Rider, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading rider file: %w", err)
	}

	var file RiderFile
	if err := unmarshal(path, data, &file); err != nil {
		return nil, err
	}
	return &file.Rider, nil
}

func unmarshal(path string, data []byte, v any) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		if err := json.Unmarshal(data, v); err != nil {
			return &MalformedInputError{Path: path, Reason: "parsing JSON", Err: err}
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, v); err != nil {
			return &MalformedInputError{Path: path, Reason: "parsing YAML", Err: err}
		}
	default:
		return &MalformedInputError{Path: path, Reason: fmt.Sprintf("unsupported extension %q", ext)}
	}
	return nil
}
