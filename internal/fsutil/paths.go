// Package fsutil provides file system path helpers shared by the scanner,
// the builder and the CLI.
package fsutil

import (
	"path/filepath"
	"strings"
)

// NormalizePath strips a leading "./" and any trailing "/" from a user
// supplied path. The filesystem root and "." are returned unchanged.
func NormalizePath(p string) string {
	p = strings.TrimPrefix(p, "./")
	if trimmed := strings.TrimRight(p, "/"); trimmed != "" {
		p = trimmed
	} else if p != "" {
		return "/"
	}
	if p == "" {
		return "."
	}
	return p
}

// DefaultOutput returns the output root used when none is configured: a
// directory named "build" next to the input root.
func DefaultOutput(input string) string {
	return filepath.Join(input, "..", "build")
}

// SplitExt splits a file name on its last dot. A name whose only dot is the
// leading one (".nav") has no extension.
func SplitExt(name string) (stem, ext string) {
	ext = filepath.Ext(name)
	if ext == name {
		return name, ""
	}
	return strings.TrimSuffix(name, ext), ext
}

// RelativeStem returns the path of file relative to root, without the
// extension, slash separated and prefixed with "./", together with the
// stripped extension.
func RelativeStem(root, file string) (string, string, error) {
	rel, err := filepath.Rel(root, file)
	if err != nil {
		return "", "", err
	}
	dir, base := filepath.Split(rel)
	stem, ext := SplitExt(base)
	return "./" + filepath.ToSlash(filepath.Join(dir, stem)), ext, nil
}
