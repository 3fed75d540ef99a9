// internal/interview/catalog/registry.go
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	apperrors "zone-platform/internal/common/errors"
	"zone-platform/internal/models"
)

// bankSchema validates question-bank registry files before they replace the
// built-in tables. Weights must be positive integers keyed by category id.
const bankSchema = `{
	"type": "object",
	"required": ["version", "categories", "questions"],
	"properties": {
		"version": {"type": "string"},
		"categories": {
			"type": "array",
			"minItems": 1,
			"items": {
				"type": "object",
				"required": ["id", "title"],
				"properties": {
					"id": {"type": "string", "minLength": 1},
					"title": {"type": "string"},
					"description": {"type": "string"},
					"traits": {"type": "array", "items": {"type": "string"}},
					"color": {"type": "string"},
					"icon": {"type": "string"}
				}
			}
		},
		"questions": {
			"type": "array",
			"minItems": 1,
			"items": {
				"type": "object",
				"required": ["id", "question", "options"],
				"properties": {
					"id": {"type": "string", "minLength": 1},
					"question": {"type": "string"},
					"subtitle": {"type": "string"},
					"options": {
						"type": "array",
						"minItems": 1,
						"items": {
							"type": "object",
							"required": ["id", "text", "scores"],
							"properties": {
								"id": {"type": "string", "minLength": 1},
								"text": {"type": "string"},
								"icon": {"type": "string"},
								"scores": {
									"type": "object",
									"additionalProperties": {"type": "integer", "minimum": 1}
								}
							}
						}
					}
				}
			}
		}
	}
}`

// BankRegistry is the on-disk question-bank override format.
type BankRegistry struct {
	Version    string            `json:"version"`
	Categories []models.Category `json:"categories"`
	Questions  []models.Question `json:"questions"`
}

// LoadRegistry reads and validates a question-bank registry file and builds a
// catalog from it.
func LoadRegistry(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read registry %s: %w", path, err)
	}

	schemaLoader := gojsonschema.NewStringLoader(bankSchema)
	documentLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return nil, apperrors.NewCatalogInvalidError(err.Error())
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			msgs = append(msgs, desc.String())
		}
		return nil, apperrors.NewCatalogInvalidError(strings.Join(msgs, "; "))
	}

	var reg BankRegistry
	if err := json.Unmarshal(data, &reg); err != nil {
		return nil, apperrors.NewCatalogInvalidError(err.Error())
	}

	cat, err := FromBank(reg.Categories, reg.Questions)
	if err != nil {
		return nil, apperrors.NewCatalogInvalidError(err.Error())
	}
	return cat, nil
}

// LoadOrDefault loads the registry at path when set, falling back to the
// built-in bank when path is empty or the file is missing or invalid.
func LoadOrDefault(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	cat, err := LoadRegistry(path)
	if err != nil {
		return Default(), err
	}
	return cat, nil
}
