// Package pathresolve resolves the import/referencing paths that appear in
// Yuho import declarations against a caller-supplied module search root,
// including the wildcard ("*") import form, which is expanded as a doublestar
// glob over the root.
package pathresolve

import (
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
)

// Resolve expands an import path against root. A path containing glob
// metacharacters ("*", "**", "?", "[...]") is matched with doublestar so that
// wildcard imports (`import "statutes/**" as *`) can enumerate every
// matching .yh file; a plain path is simply joined to root and returned as a
// single-element slice.
func Resolve(root, importPath string) ([]string, error) {
	if !containsMeta(importPath) {
		return []string{filepath.Join(root, importPath)}, nil
	}
	fsys := os.DirFS(root)
	matches, err := doublestar.Glob(fsys, importPath)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = filepath.Join(root, m)
	}
	return out, nil
}

func containsMeta(s string) bool {
	for _, r := range s {
		switch r {
		case '*', '?', '[', ']', '{', '}':
			return true
		}
	}
	return false
}
