// Package gitignore converts .gitignore rules into doublestar patterns.
//
// Only the common subset is supported: negations ("!pattern") are skipped,
// a trailing "/" marks a directory, and a leading or inner "/" anchors the
// pattern to the directory that holds the .gitignore file.
package gitignore

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// GitIgnore represents a collection of gitignore patterns
type GitIgnore struct {
	patterns []string
}

// LoadGitIgnore loads and parses a .gitignore file; a missing file yields an empty set
func LoadGitIgnore(gitignorePath string) (*GitIgnore, error) {
	file, err := os.Open(gitignorePath)
	if errors.Is(err, os.ErrNotExist) {
		return &GitIgnore{}, nil
	}
	if err != nil {
		return nil, err
	}
	defer func() { _ = file.Close() }()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", gitignorePath, err)
	}
	return ParseGitIgnoreLines(lines), nil
}

// LoadGitIgnoreFromDir loads .gitignore file from the specified directory
func LoadGitIgnoreFromDir(dirPath string) (*GitIgnore, error) {
	return LoadGitIgnore(filepath.Join(dirPath, ".gitignore"))
}

// ParseGitIgnoreLines parses gitignore patterns from a slice of strings
func ParseGitIgnoreLines(lines []string) *GitIgnore {
	var patterns []string
	for _, line := range lines {
		line = strings.TrimSpace(line)
		// 空行与注释
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		patterns = append(patterns, line)
	}
	return &GitIgnore{patterns: patterns}
}

// GetPatterns returns the raw gitignore patterns
func (gi *GitIgnore) GetPatterns() []string {
	return gi.patterns
}

// Globs translates the rules into doublestar patterns relative to the .gitignore directory
func (gi *GitIgnore) Globs() []string {
	var out []string
	for _, p := range gi.patterns {
		if strings.HasPrefix(p, "!") {
			continue
		}
		out = append(out, toGlobs(p)...)
	}
	return out
}

func toGlobs(pattern string) []string {
	dirOnly := strings.HasSuffix(pattern, "/")
	p := strings.TrimSuffix(pattern, "/")

	anchored := strings.Contains(p, "/")
	p = strings.TrimPrefix(p, "/")
	if p == "" {
		return nil
	}
	if !anchored && !strings.HasPrefix(p, "**/") {
		p = "**/" + p
	}

	if dirOnly {
		return []string{p + "/**"}
	}
	// 既可能是文件，也可能是目录
	return []string{p, p + "/**"}
}
