package deps

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateGitURLAccepts(t *testing.T) {
	urls := []string{
		"https://github.com/raysan5/raylib.git",
		"git@github.com:raysan5/raylib.git",
		"https://gitlab.com/whatever/anything",
		"git@bitbucket.org:team/repo.git",
	}
	for _, url := range urls {
		assert.NoError(t, ValidateGitURL(url), url)
	}
}

func TestValidateGitURLRejects(t *testing.T) {
	tests := []struct {
		url     string
		wantErr string
	}{
		{"https://example.com/a;b.git", "URL must not contain ';'"},
		{"https://example.com/a#b.git", "URL must not contain '#'"},
		{"https://example.com/a`b.git", "URL must not contain '`'"},
		{`https://example.com/a\b.git`, `URL must not contain '\'`},
		{"https://example.com/${HOME}/r.git", "URL must not contain '{'"},
		{"http://github.com/raysan5/raylib.git", "URL must use HTTPS, not HTTP"},
		{"ftp://example.com/repo.git", "URL must start with 'https://' or 'git@'"},
		{"github.com/raysan5/raylib.git", "URL must start with 'https://' or 'git@'"},
		{"https://github.com/raysan5/raylib", "GitHub URL must be in format"},
		{"https://github.com/raylib.git", "GitHub URL must be in format"},
		{"git@github.com:raylib.git", "GitHub SSH URL must be in format"},
	}
	for _, tt := range tests {
		err := ValidateGitURL(tt.url)
		assert.ErrorContains(t, err, tt.wantErr, tt.url)
	}
}

func TestValidateGitURLCaseInsensitiveShape(t *testing.T) {
	assert.NoError(t, ValidateGitURL("HTTPS://GitHub.com/Owner/Repo.git"))
}

func TestValidateTag(t *testing.T) {
	assert.NoError(t, ValidateTag("v1.2.3"))
	assert.NoError(t, ValidateTag("release/2024"))
	assert.ErrorContains(t, ValidateTag("v1;rm"), "invalid characters")
	assert.ErrorContains(t, ValidateTag(`v1"`), "invalid characters")
	assert.ErrorContains(t, ValidateTag("v1#x"), "invalid characters")
	assert.ErrorContains(t, ValidateTag("v1\n"), "must not include newlines")
}

func TestValidateName(t *testing.T) {
	assert.NoError(t, ValidateName("raylib"))
	assert.ErrorContains(t, ValidateName(""), "must not be empty")
	assert.ErrorContains(t, ValidateName("a\nb"), "must not include newlines")
}

func TestValidateURLNewlines(t *testing.T) {
	assert.NoError(t, ValidateURLNewlines("https://github.com/a/b.git"))
	assert.ErrorContains(t, ValidateURLNewlines("https://x\n.git"), "must not include newlines")
}
