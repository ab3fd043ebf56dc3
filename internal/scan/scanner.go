package scan

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/specialistvlad/tagweaver/internal/ctxlog"
	"github.com/specialistvlad/tagweaver/internal/topologystore"
)

// Result summarises one scan.
type Result struct {
	// Files is the number of files recorded in the store.
	Files int
	// Duplicates counts files whose tag overwrote an earlier file's tag.
	Duplicates int
	// Failures counts directories and files that could not be read.
	Failures int
}

// Scanner walks an input root and feeds every file to ParseFile.
type Scanner struct {
	root    string
	store   topologystore.Store
	visited map[string]struct{} // resolved directory paths, guards symlink loops
	result  Result
}

// New creates a scanner that records documents found under root into store.
func New(root string, store topologystore.Store) *Scanner {
	return &Scanner{
		root:    root,
		store:   store,
		visited: make(map[string]struct{}),
	}
}

// Scan walks the whole tree. Read failures are logged and counted; the only
// error returned is the context's when it is cancelled mid-walk.
func (s *Scanner) Scan(ctx context.Context) (Result, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Scan started.", "root", s.root)

	if err := s.scanDir(ctx, s.root); err != nil {
		return s.result, err
	}

	logger.Debug("Scan finished.", "files", s.result.Files, "duplicates", s.result.Duplicates, "failures", s.result.Failures)
	return s.result, nil
}

func (s *Scanner) scanDir(ctx context.Context, dir string) error {
	logger := ctxlog.FromContext(ctx)

	if real, err := filepath.EvalSymlinks(dir); err == nil {
		if _, seen := s.visited[real]; seen {
			logger.Warn("Directory already scanned, skipping symlink loop.", "path", dir, "target", real)
			return nil
		}
		s.visited[real] = struct{}{}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		logger.Error("Failed to read directory, skipping subtree.", "path", dir, "error", err)
		s.result.Failures++
		return nil
	}

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return err
		}

		path := filepath.Join(dir, entry.Name())
		isDir := entry.IsDir()
		if entry.Type()&fs.ModeSymlink != 0 {
			if info, err := os.Stat(path); err == nil {
				isDir = info.IsDir()
			}
		}

		if isDir {
			if err := s.scanDir(ctx, path); err != nil {
				return err
			}
			continue
		}
		s.scanFile(ctx, path)
	}
	return nil
}

func (s *Scanner) scanFile(ctx context.Context, path string) {
	logger := ctxlog.FromContext(ctx)

	prev, err := ParseFile(ctx, path, s.root, s.store)
	if err != nil {
		logger.Error("Failed to parse file, skipping.", "path", path, "error", err)
		s.result.Failures++
		return
	}
	s.result.Files++

	if prev != nil {
		s.result.Duplicates++
		current, _ := s.store.Get(ctx, prev.Tag)
		logger.Warn("Duplicate tag definition found, it will be overwritten.",
			"tag", prev.Tag, "previous", prev.Source.File(), "current", current.Source.File())
	}
}
