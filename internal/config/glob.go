package config

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// MatchesGlob checks if a file path matches any of the include patterns
// and does not match any of the exclude patterns.
func MatchesGlob(filePath string, includePatterns []string, excludePatterns []string) bool {
	if len(includePatterns) == 0 {
		return false
	}

	// Normalize path separators
	filePath = filepath.ToSlash(filePath)

	// Check exclude first
	for _, pattern := range excludePatterns {
		pattern = filepath.ToSlash(pattern)
		if globMatch(filePath, pattern) {
			return false
		}
	}

	// Check include
	for _, pattern := range includePatterns {
		pattern = filepath.ToSlash(pattern)
		if globMatch(filePath, pattern) {
			return true
		}
	}

	return false
}

// globMatch matches a path against a glob pattern with ** support.
// The matching is done against suffixes of the path — if the pattern
// is "types/**/*.d.ts", it matches any file under a "types/" directory
// whose name matches "*.d.ts".
func globMatch(filePath, pattern string) bool {
	// Try exact match first
	if matched, _ := filepath.Match(pattern, filePath); matched {
		return true
	}

	// Handle ** glob patterns
	if strings.Contains(pattern, "**") {
		parts := strings.SplitN(pattern, "**", 2)
		prefix := strings.TrimSuffix(parts[0], "/")
		suffix := strings.TrimPrefix(parts[1], "/")

		if prefix == "" {
			// Pattern like **/*.d.ts — match suffix against any file
			if suffix == "" {
				return true
			}
			fileName := filepath.Base(filePath)
			if matched, _ := filepath.Match(suffix, fileName); matched {
				return true
			}
		} else {
			// Pattern like types/**/*.d.ts — find prefix in path, then match suffix
			var remaining string
			if after, ok := strings.CutPrefix(filePath, prefix+"/"); ok {
				remaining = after
			} else if idx := strings.Index(filePath, "/"+prefix+"/"); idx >= 0 {
				remaining = filePath[idx+len(prefix)+2:]
			} else {
				return false
			}
			if suffix == "" {
				return true
			}
			fileName := filepath.Base(remaining)
			if matched, _ := filepath.Match(suffix, fileName); matched {
				return true
			}
			if matched, _ := filepath.Match(suffix, remaining); matched {
				return true
			}
		}
	} else {
		// No ** — try matching just the basename
		baseName := filepath.Base(filePath)
		patternBase := filepath.Base(pattern)
		if matched, _ := filepath.Match(patternBase, baseName); matched {
			return true
		}
	}

	return false
}

// hasGlobMeta reports whether the pattern contains glob metacharacters.
func hasGlobMeta(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[")
}

// ExpandGlobs resolves a mix of literal paths and glob patterns into a
// sorted, de-duplicated file list. Literal paths pass through untouched so a
// missing file surfaces as an error downstream rather than being silently
// dropped; patterns walk the filesystem from their static directory prefix.
func ExpandGlobs(cwd string, patterns []string, exclude []string) ([]string, error) {
	var files []string
	seen := make(map[string]bool)
	add := func(path string) {
		if !seen[path] {
			seen[path] = true
			files = append(files, path)
		}
	}

	for _, pattern := range patterns {
		if !hasGlobMeta(pattern) {
			if !filepath.IsAbs(pattern) {
				pattern = filepath.Join(cwd, pattern)
			}
			add(pattern)
			continue
		}

		root := staticPrefix(pattern)
		if !filepath.IsAbs(root) {
			root = filepath.Join(cwd, root)
		}
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil || d.IsDir() {
				return nil
			}
			rel, relErr := filepath.Rel(cwd, path)
			if relErr != nil {
				rel = path
			}
			if MatchesGlob(rel, []string{pattern}, exclude) || MatchesGlob(path, []string{pattern}, exclude) {
				add(path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	sort.Strings(files)
	return files, nil
}

// staticPrefix returns the directory portion of a pattern before the first
// glob metacharacter, for use as a walk root.
func staticPrefix(pattern string) string {
	pattern = filepath.ToSlash(pattern)
	segments := strings.Split(pattern, "/")
	var static []string
	for _, seg := range segments {
		if hasGlobMeta(seg) {
			break
		}
		static = append(static, seg)
	}
	if len(static) == 0 {
		return "."
	}
	dir := strings.Join(static, "/")
	if len(static) == len(segments) {
		dir = filepath.Dir(dir)
	}
	if dir == "" {
		return "."
	}
	return dir
}
