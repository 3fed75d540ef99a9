// internal/interview/catalog/registry_test.go
package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "zone-platform/internal/common/errors"
)

// ==========================
// Test Helper Functions
// ==========================

const validBankJSON = `{
	"version": "1",
	"categories": [
		{"id": "alpha", "title": "Alpha"},
		{"id": "beta", "title": "Beta"}
	],
	"questions": [
		{
			"id": "q1",
			"question": "pick one",
			"options": [
				{"id": "o1", "text": "first", "scores": {"alpha": 5}},
				{"id": "o2", "text": "second", "scores": {"beta": 3}}
			]
		}
	]
}`

func writeBankFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bank.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// ==========================
// Core Functionality Tests
// ==========================

func TestLoadRegistry_ValidBank(t *testing.T) {
	path := writeBankFile(t, validBankJSON)

	cat, err := LoadRegistry(path)
	require.NoError(t, err)

	assert.Equal(t, 1, cat.QuestionCount())
	assert.Len(t, cat.Categories(), 2)
	assert.True(t, cat.OptionBelongs(0, "o2"))
}

func TestLoadRegistry_SchemaViolations(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "missing questions",
			content: `{"version": "1", "categories": [{"id": "a", "title": "A"}]}`,
		},
		{
			name: "zero weight",
			content: `{"version": "1",
				"categories": [{"id": "a", "title": "A"}],
				"questions": [{"id": "q", "question": "?", "options": [{"id": "o", "text": "t", "scores": {"a": 0}}]}]}`,
		},
		{
			name: "empty option list",
			content: `{"version": "1",
				"categories": [{"id": "a", "title": "A"}],
				"questions": [{"id": "q", "question": "?", "options": []}]}`,
		},
		{
			name:    "not json",
			content: `question bank`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeBankFile(t, tt.content)
			_, err := LoadRegistry(path)
			require.Error(t, err)

			var stdErr *apperrors.StandardError
			require.ErrorAs(t, err, &stdErr)
			assert.Equal(t, apperrors.ErrCodeCatalogInvalid, stdErr.Code)
		})
	}
}

func TestLoadRegistry_MissingFile(t *testing.T) {
	_, err := LoadRegistry(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
}

// ==========================
// Edge Case Tests
// ==========================

func TestLoadOrDefault(t *testing.T) {
	cat, err := LoadOrDefault("")
	require.NoError(t, err)
	assert.Equal(t, 5, cat.QuestionCount())

	// Invalid path falls back to the built-in bank but reports the error.
	cat, err = LoadOrDefault(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
	require.NotNil(t, cat)
	assert.Equal(t, 5, cat.QuestionCount())

	path := writeBankFile(t, validBankJSON)
	cat, err = LoadOrDefault(path)
	require.NoError(t, err)
	assert.Equal(t, 1, cat.QuestionCount())
}
