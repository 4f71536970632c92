// SPDX-License-Identifier: MIT
// Package: mazekit/plan
//
// decode.go — recipe decoding (YAML and TOML).
//
// Contract:
//   - DecodeYAML / DecodeTOML parse a recipe document and validate it;
//     they return a plan only when it would build cleanly.
//   - Load dispatches on the file extension (.yaml/.yml/.toml); anything
//     else is ErrUnknownFormat.
//   - Decoder errors are wrapped with %w so callers can still reach the
//     underlying yaml/toml diagnostics.

package plan

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Recognized recipe file extensions.
const (
	extYAML  = ".yaml"
	extYAML2 = ".yml"
	extTOML  = ".toml"
)

// DecodeYAML parses a YAML recipe document and validates it.
func DecodeYAML(data []byte) (*Plan, error) {
	var p Plan
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("DecodeYAML: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("DecodeYAML: %w", err)
	}
	return &p, nil
}

// DecodeTOML parses a TOML recipe document and validates it.
func DecodeTOML(data []byte) (*Plan, error) {
	var p Plan
	if err := toml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("DecodeTOML: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("DecodeTOML: %w", err)
	}
	return &p, nil
}

// Load reads a recipe file and decodes it according to its extension.
// Supported: .yaml, .yml, .toml. Returns ErrUnknownFormat otherwise.
func Load(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("Load: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case extYAML, extYAML2:
		return DecodeYAML(data)
	case extTOML:
		return DecodeTOML(data)
	default:
		return nil, fmt.Errorf("Load: %s: %w", path, ErrUnknownFormat)
	}
}
