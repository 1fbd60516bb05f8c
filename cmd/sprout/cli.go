// Where: cmd/sprout/cli.go
// What: CLI dependency wiring helpers.
// Why: Centralize construction for testability.
package main

import (
	"os"
	"time"

	"github.com/sprout-dev/sprout/internal/app"
	"github.com/sprout-dev/sprout/internal/interaction"
	"github.com/sprout-dev/sprout/internal/tools"
)

var getwd = os.Getwd

// buildDependencies constructs all runtime dependencies required by the
// CLI: the working directory, prompter, and subprocess runner.
func buildDependencies() (app.Dependencies, error) {
	workDir, err := getwd()
	if err != nil {
		return app.Dependencies{}, err
	}

	deps := app.Dependencies{
		WorkDir:     workDir,
		Out:         os.Stdout,
		Prompter:    interaction.HuhPrompter{},
		Runner:      tools.ExecRunner{},
		Now:         time.Now,
		Interactive: interaction.Interactive,
		DetectPM:    tools.DetectPackageManager,
	}

	return deps, nil
}
