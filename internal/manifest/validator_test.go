package manifest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateFile_ValidManifests(t *testing.T) {
	for _, file := range []string{"valid-base.yaml", "valid-override.yaml"} {
		t.Run(file, func(t *testing.T) {
			result, err := ValidateFile(testPath(file))
			require.NoError(t, err)
			assert.True(t, result.Valid, "issues: %v", result.Issues)
			assert.Empty(t, result.Issues)
		})
	}
}

func TestValidateFile_InvalidManifests(t *testing.T) {
	tests := []struct {
		file    string
		keyword string
	}{
		{"invalid-missing-name.yaml", "required"},
		{"invalid-bad-version.yaml", "pattern"},
		{"invalid-path-and-paths.yaml", "not"},
		{"invalid-extension-missing-type.yaml", "required"},
		{"invalid-unknown-field.yaml", "additionalProperties"},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			result, err := ValidateFile(testPath(tt.file))
			require.NoError(t, err)
			assert.False(t, result.Valid)
			require.NotEmpty(t, result.Issues)

			var keywords []string
			for _, issue := range result.Issues {
				assert.NotEmpty(t, issue.Message)
				keywords = append(keywords, issue.Keyword)
			}
			assert.Contains(t, keywords, tt.keyword)
		})
	}
}

func TestValidate_IssuePath(t *testing.T) {
	result, err := ValidateFile(testPath("invalid-extension-missing-type.yaml"))
	require.NoError(t, err)
	require.NotEmpty(t, result.Issues)
	assert.Equal(t, "/extensions/0", result.Issues[0].Path)
}

func TestValidateFile_InvalidYAML(t *testing.T) {
	_, err := ValidateFile(testPath("invalid-not-yaml.yaml"))
	assert.Error(t, err)
}

func TestValidateFile_NotFound(t *testing.T) {
	_, err := ValidateFile(testPath("nonexistent.yaml"))
	assert.ErrorIs(t, err, ErrNoManifest)
}

func TestValidationIssueString(t *testing.T) {
	issue := ValidationIssue{Message: "missing property 'name'", Keyword: "required"}
	assert.Equal(t, "/: missing property 'name' (required)", issue.String())
}
