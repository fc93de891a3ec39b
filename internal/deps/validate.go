package deps

import (
	"fmt"
	"regexp"
	"strings"
)

// Characters that could split or re-shape the generated helper call or
// leak into shell/build-script evaluation.
var dangerousURLChars = []string{";", "#", "{", "}", "`", "&", "|", ">", "<", `\`}

var (
	githubHTTPSPattern = regexp.MustCompile(`^https://github\.com/[^/]+/[^/]+\.git$`)
	githubSSHPattern   = regexp.MustCompile(`^git@github\.com:[^/]+/[^/]+\.git$`)
)

// ValidateGitURL rejects URLs that could corrupt the ledger or inject
// content into generated build text. Only https:// and SSH-style git@
// URLs are accepted; known-forge URLs must follow the strict
// owner/repo.git shape.
func ValidateGitURL(url string) error {
	for _, char := range dangerousURLChars {
		if strings.Contains(url, char) {
			return fmt.Errorf("URL must not contain '%s'", char)
		}
	}
	if strings.Contains(url, "${") {
		return fmt.Errorf("URL must not contain variable expansion patterns")
	}
	if strings.Contains(url, "http://") {
		return fmt.Errorf("URL must use HTTPS, not HTTP")
	}

	lower := strings.ToLower(url)
	if !strings.HasPrefix(lower, "https://") && !strings.HasPrefix(lower, "git@") {
		return fmt.Errorf("URL must start with 'https://' or 'git@'")
	}
	if strings.HasPrefix(lower, "https://github.com/") && !githubHTTPSPattern.MatchString(lower) {
		return fmt.Errorf("GitHub URL must be in format 'https://github.com/{owner}/{repo}.git'")
	}
	if strings.HasPrefix(lower, "git@github.com:") && !githubSSHPattern.MatchString(lower) {
		return fmt.Errorf("GitHub SSH URL must be in format 'git@github.com:{owner}/{repo}.git'")
	}
	return nil
}

// ValidateTag rejects tag/branch names that could break out of the
// generated call line.
func ValidateTag(tag string) error {
	if strings.ContainsAny(tag, "\n\r") {
		return fmt.Errorf("tag/branch must not include newlines")
	}
	if strings.ContainsAny(tag, `;#"`) {
		return fmt.Errorf("tag/branch contains invalid characters")
	}
	return nil
}

// ValidateName rejects dependency names that would corrupt the ledger.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("dependency name must not be empty")
	}
	if strings.ContainsAny(name, "\n\r") {
		return fmt.Errorf("dependency name must not include newlines")
	}
	return nil
}

// ValidateURLNewlines guards the URL against line splitting before the
// full shape check runs.
func ValidateURLNewlines(url string) error {
	if strings.ContainsAny(url, "\n\r") {
		return fmt.Errorf("dependency URL must not include newlines")
	}
	return nil
}
