package app

import (
	"context"

	"github.com/specialistvlad/tagweaver/internal/session"
)

// Run executes one build based on the app's configuration.
func (a *App) Run(ctx context.Context) error {
	ctx = a.withLogger(ctx)
	a.logger.Debug("App.Run method started.")
	a.logger.Info("Input directory.", "path", a.config.InputPath)
	a.logger.Info("Output directory.", "path", a.config.OutputPath)

	s := session.New(session.Options{
		Input:  a.config.InputPath,
		Output: a.config.OutputPath,
		Graph:  a.config.GraphPath,
	})
	report, err := s.Run(ctx)
	if err != nil {
		a.logger.Error("Build aborted.", "build_id", s.ID(), "error", err)
		return err
	}

	if report.Files == 0 {
		a.logger.Warn("No files found in input directory, nothing was built.")
	}
	a.logger.Info("🏁 Build finished.",
		"build_id", report.BuildID,
		"files", report.Files,
		"built", report.Built,
		"substitutions", report.Substitutions,
		"duplicates", report.Duplicates,
		"self_references", report.SelfReferences,
		"scan_failures", report.ScanFailures,
	)
	return nil
}
