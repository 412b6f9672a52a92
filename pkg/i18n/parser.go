package i18n

import (
	"context"
	"fmt"
	"path"
	"strings"
)

// Parser turns the content of one translation file into per-language maps.
// The outer map is keyed by language tag; inner maps may nest, and nested
// keys are addressed with dots ("validation.required").
type Parser interface {
	Parse(ctx context.Context, content string) (map[string]map[string]any, error)

	// SupportsFileExtension reports whether files with ext can be parsed.
	// The extension may include a leading dot.
	SupportsFileExtension(ext string) bool
}

// NewParserForFile picks a parser from the file extension, or returns nil
// for unknown formats.
func NewParserForFile(filename string) Parser {
	switch strings.ToLower(strings.TrimPrefix(path.Ext(filename), ".")) {
	case "json":
		return NewJSONParser()
	case "yaml", "yml":
		return NewYAMLParser()
	default:
		return nil
	}
}

// normalize converts the decoded document into per-language maps. Every
// top-level value must itself be a map.
func normalize(data map[string]any) (map[string]map[string]any, error) {
	result := make(map[string]map[string]any, len(data))
	for lang, val := range data {
		m, ok := toStringMap(val)
		if !ok {
			return nil, invalidStructure(lang, val)
		}
		result[lang] = m
	}
	return result, nil
}

// toStringMap accepts both map shapes decoders produce.
func toStringMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			ks, ok := k.(string)
			if !ok {
				return nil, false
			}
			out[ks] = val
		}
		return out, true
	default:
		return nil, false
	}
}

func invalidStructure(lang string, val any) error {
	return fmt.Errorf("%w: language %q: expected map, got %T", ErrInvalidStructure, lang, val)
}
