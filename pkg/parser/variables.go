package parser

import (
	"bufio"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

// variableFiles are the auxiliary files variables are loaded from, in
// order. Later files override earlier ones on name collision.
var variableFiles = []string{"variables.conf", "defaults.conf"}

// LoadVariablesFile reads $name = value assignments from a single config
// file. Blank lines and comments are ignored; a missing file yields an
// empty map.
func LoadVariablesFile(path string) map[string]string {
	variables := make(map[string]string)

	f, err := os.Open(path)
	if err != nil {
		return variables
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || !strings.HasPrefix(line, "$") {
			continue
		}
		if name, value, found := strings.Cut(line, "="); found {
			variables[strings.TrimSpace(name)] = strings.TrimSpace(value)
		}
	}

	return variables
}

// LoadVariablesDir loads variables from the standard auxiliary files in
// a config directory, applying the override order of variableFiles.
func LoadVariablesDir(dir string) map[string]string {
	variables := make(map[string]string)
	for _, name := range variableFiles {
		for k, v := range LoadVariablesFile(filepath.Join(dir, name)) {
			variables[k] = v
		}
	}
	return variables
}

// ResolveVariables replaces every $name reference in text with its
// value. Longer names are substituted first and a match must end at a
// non-identifier boundary, so a variable that is a prefix of another
// ($mod vs $modKey) never partially matches.
func ResolveVariables(text string, variables map[string]string) string {
	names := make([]string, 0, len(variables))
	for name := range variables {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if len(names[i]) != len(names[j]) {
			return len(names[i]) > len(names[j])
		}
		return names[i] < names[j]
	})

	result := text
	for _, name := range names {
		re := regexp.MustCompile(regexp.QuoteMeta(name) + `\b`)
		result = re.ReplaceAllLiteralString(result, variables[name])
	}
	return result
}
