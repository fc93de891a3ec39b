package cmakegen

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/cmkr/cmkr/internal/config"
)

var cxxSuffixes = map[string]bool{
	".cpp": true,
	".cc":  true,
	".cxx": true,
	".c++": true,
}

// MainSource renders a hello-world starter source for the project's
// first main source file. The language is selected by file extension.
func MainSource(project config.Project, path string) string {
	name := strings.ReplaceAll(project.Name, `"`, `\"`)
	if cxxSuffixes[strings.ToLower(filepath.Ext(path))] {
		return fmt.Sprintf(`#include <iostream>

int main() {
  std::cout << "Hello from %s." << std::endl;
  return 0;
}
`, name)
	}
	return fmt.Sprintf(`#include <stdio.h>

int main(void) {
  puts("Hello from %s.");
  return 0;
}
`, name)
}
