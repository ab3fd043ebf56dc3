// Package session runs one build from start to finish. A Session owns all
// per-build state (the topology store, the build ID and the output lock), so
// nothing survives between runs.
package session

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	"github.com/specialistvlad/tagweaver/internal/builder"
	"github.com/specialistvlad/tagweaver/internal/ctxlog"
	"github.com/specialistvlad/tagweaver/internal/dag"
	"github.com/specialistvlad/tagweaver/internal/inmemorytopology"
	"github.com/specialistvlad/tagweaver/internal/manifest"
	"github.com/specialistvlad/tagweaver/internal/scan"
	"github.com/specialistvlad/tagweaver/internal/topologystore"
)

// ErrOutputLocked is returned when another build holds the output root.
var ErrOutputLocked = errors.New("output directory is locked by another build")

// Options configures a Session.
type Options struct {
	Input  string
	Output string
	// Graph, when set, is where the dependency manifest is written.
	Graph string
}

// Report summarises a finished build.
type Report struct {
	BuildID        string
	Files          int
	Duplicates     int
	ScanFailures   int
	Order          []string
	Built          int
	Substitutions  int
	SelfReferences int
}

// Session is a single build run.
type Session struct {
	id    string
	opts  Options
	store topologystore.Store
}

// New creates a session with a fresh build ID and an empty store.
func New(opts Options) *Session {
	return &Session{
		id:    uuid.New().String(),
		opts:  opts,
		store: inmemorytopology.New(),
	}
}

// ID returns the session's build ID.
func (s *Session) ID() string {
	return s.id
}

// Store returns the session's topology store.
func (s *Session) Store() topologystore.Store {
	return s.store
}

// Run scans the input root, orders the documents and builds the output tree.
// A dependency cycle aborts the run before anything is written.
func (s *Session) Run(ctx context.Context) (*Report, error) {
	ctx = ctxlog.With(ctx, "build_id", s.id)
	logger := ctxlog.FromContext(ctx)
	report := &Report{BuildID: s.id}

	info, err := os.Stat(s.opts.Input)
	if err != nil {
		return report, fmt.Errorf("failed to access input directory: %w", err)
	}
	if !info.IsDir() {
		return report, fmt.Errorf("input %s is not a directory", s.opts.Input)
	}

	unlock, err := lockOutput(s.opts.Output)
	if err != nil {
		return report, err
	}
	defer unlock()

	logger.Debug("Scanning input tree.", "input", s.opts.Input)
	scanned, err := scan.New(s.opts.Input, s.store).Scan(ctx)
	report.Files = scanned.Files
	report.Duplicates = scanned.Duplicates
	report.ScanFailures = scanned.Failures
	if err != nil {
		return report, fmt.Errorf("scan interrupted: %w", err)
	}

	order, err := dag.Sort(ctx, s.store)
	if err != nil {
		return report, fmt.Errorf("failed to order documents: %w", err)
	}
	report.Order = order
	logger.Info("Build order resolved.", "tags", len(order))

	if s.opts.Graph != "" {
		if err := manifest.WriteFile(ctx, s.opts.Graph, s.store, order); err != nil {
			return report, err
		}
	}

	built, err := builder.New(s.opts.Input, s.opts.Output, s.store).Build(ctx, order)
	report.Built = built.Built
	report.Substitutions = built.Substitutions
	report.SelfReferences = built.SelfReferences
	if err != nil {
		return report, fmt.Errorf("build failed: %w", err)
	}
	return report, nil
}

// lockOutput takes an exclusive lock next to the output root, so two builds
// never write the same tree at once. The lock file lives outside the output
// tree and is removed on unlock.
func lockOutput(out string) (func(), error) {
	abs, err := filepath.Abs(out)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve output directory: %w", err)
	}
	parent := filepath.Dir(abs)
	if err := os.MkdirAll(parent, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output parent directory: %w", err)
	}

	lockPath := filepath.Join(parent, "."+filepath.Base(abs)+".lock")
	fileLock := flock.New(lockPath)
	locked, err := fileLock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquiring output lock: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("%w: %s", ErrOutputLocked, out)
	}
	return func() {
		_ = fileLock.Unlock()
		_ = os.Remove(lockPath)
	}, nil
}
