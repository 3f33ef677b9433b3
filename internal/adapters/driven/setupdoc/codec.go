package setupdoc

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/wppm-cli/internal/core/domain"
)

// Format is a serialisation of Document.
type Format string

// Supported formats.
const (
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// FormatForPath picks the format from a file extension. Unknown extensions
// are read as TOML.
func FormatForPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}
	return FormatTOML
}

// Decode parses data in the given format. Unknown keys are rejected.
func Decode(format Format, data []byte) (*Document, error) {
	var doc Document
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("parse json setup: %v: %w", err, domain.ErrInvalidInput)
		}
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			var strict *toml.StrictMissingError
			if errors.As(err, &strict) {
				return nil, fmt.Errorf("parse toml setup: %s: %w", strict.String(), domain.ErrInvalidInput)
			}
			return nil, fmt.Errorf("parse toml setup: %v: %w", err, domain.ErrInvalidInput)
		}
	default:
		return nil, fmt.Errorf("setup format %q: %w", format, domain.ErrInvalidInput)
	}
	return &doc, nil
}

// Encode serialises doc in the given format.
func Encode(format Format, doc *Document) ([]byte, error) {
	switch format {
	case FormatJSON:
		return json.MarshalIndent(doc, "", "  ")
	case FormatTOML:
		return toml.Marshal(doc)
	default:
		return nil, fmt.Errorf("setup format %q: %w", format, domain.ErrInvalidInput)
	}
}
