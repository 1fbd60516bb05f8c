// Where: internal/scaffold/engine.go
// What: Sequential scaffold pipeline with an explicit failure policy per step.
// Why: Make fatal-vs-best-effort a named table instead of scattered recovery.
package scaffold

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/sprout-dev/sprout/internal/fileops"
	"github.com/sprout-dev/sprout/internal/meta"
	"github.com/sprout-dev/sprout/internal/tools"
	"github.com/sprout-dev/sprout/internal/ui"
)

// Request captures everything resolved from prompts, flags, and config
// before generation starts. Immutable once built.
type Request struct {
	Name           string
	Template       string
	PackageManager string
	TargetDir      string
	SkipGit        bool
	SkipInstall    bool
	Silent         bool
}

// FailurePolicy decides what a step failure does to the run.
type FailurePolicy int

const (
	// Continue logs a warning and moves on. Partial state is kept.
	Continue FailurePolicy = iota
	// Halt aborts the run with a StepError.
	Halt
)

// Step is one named stage of the scaffold pipeline.
type Step struct {
	Name   string
	Policy FailurePolicy
	run    func(context.Context) error
}

// StepError wraps a failure from a Halt-policy step.
type StepError struct {
	Step string
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s: %v", e.Step, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// Engine executes scaffold requests.
type Engine struct {
	Runner  tools.CommandRunner
	Console *ui.Console

	// Available reports whether an executable exists on the host.
	Available func(name string) bool
}

// NewEngine creates an Engine with host tool discovery.
func NewEngine(runner tools.CommandRunner, console *ui.Console) *Engine {
	return &Engine{
		Runner:    runner,
		Console:   console,
		Available: tools.Available,
	}
}

// Create runs the pipeline for one request. Continue-policy failures are
// reported as warnings and execution proceeds; there is no rollback of
// anything already written. The returned error is always a *StepError
// from a Halt step, or a variant load failure before the pipeline starts.
func (e *Engine) Create(ctx context.Context, req Request) error {
	variant, err := LoadVariant(req.Template)
	if err != nil {
		return err
	}

	for _, step := range e.plan(req, variant) {
		if err := step.run(ctx); err != nil {
			if step.Policy == Halt {
				return &StepError{Step: step.Name, Err: err}
			}
			e.Console.Warn(fmt.Sprintf("%s: %v", step.Name, err))
		}
	}
	return nil
}

// plan is the policy table: each step is named and its failure handling is
// explicit. Order matters and there is no branching back.
func (e *Engine) plan(req Request, variant Variant) []Step {
	return []Step{
		{Name: "create project directory", Policy: Continue, run: func(context.Context) error {
			return fileops.EnsureDir(req.TargetDir)
		}},
		{Name: "write manifest", Policy: Continue, run: func(context.Context) error {
			return e.writeManifest(req, variant)
		}},
		{Name: "write template files", Policy: Continue, run: func(context.Context) error {
			return e.writeTemplateFiles(req, variant)
		}},
		{Name: "initialize git repository", Policy: Continue, run: func(ctx context.Context) error {
			return e.initGit(ctx, req)
		}},
		{Name: "install dependencies", Policy: Halt, run: func(ctx context.Context) error {
			return e.install(ctx, req)
		}},
	}
}

func (e *Engine) writeManifest(req Request, variant Variant) error {
	manifest := BuildManifest(req.Name, variant)
	payload, err := manifest.Encode()
	if err != nil {
		return err
	}
	if err := ValidateManifest(payload); err != nil {
		return err
	}
	return fileops.WriteFile(filepath.Join(req.TargetDir, meta.ManifestFilename), payload)
}

func (e *Engine) writeTemplateFiles(req Request, variant Variant) error {
	for _, dir := range variant.Dirs {
		if err := fileops.EnsureDir(filepath.Join(req.TargetDir, dir)); err != nil {
			return err
		}
	}

	data := TemplateData{Name: req.Name}
	for _, mapping := range variant.Files {
		content, err := renderTemplate(variant.templatePath(mapping), data)
		if err != nil {
			return err
		}
		dest := filepath.Join(req.TargetDir, filepath.FromSlash(mapping.Dest))
		if err := fileops.WriteFile(dest, content); err != nil {
			return err
		}
	}
	return nil
}

func (e *Engine) initGit(ctx context.Context, req Request) error {
	if req.SkipGit {
		e.Console.Info("Skipping git initialization")
		return nil
	}
	if !e.Available("git") {
		e.Console.Info("git not found, skipping repository initialization")
		return nil
	}
	if fileops.DirExists(filepath.Join(req.TargetDir, ".git")) {
		e.Console.Info("Git repository already initialized")
		return nil
	}
	return e.Runner.RunQuiet(ctx, req.TargetDir, "git", "init")
}

func (e *Engine) install(ctx context.Context, req Request) error {
	if req.SkipInstall {
		e.Console.Info("Skipping dependency installation")
		return nil
	}

	pm := req.PackageManager
	if pm == "" {
		pm = "npm"
	}
	if req.Silent {
		return e.Runner.RunQuiet(ctx, req.TargetDir, pm, "install")
	}
	return e.Runner.Run(ctx, req.TargetDir, pm, "install")
}
