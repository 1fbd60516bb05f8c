// Where: internal/app/new.go
// What: Scaffold flow: prompt resolution, pipeline execution, reporting.
// Why: Keep the interactive orchestration separate from the generation engine.
package app

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/sprout-dev/sprout/internal/config"
	"github.com/sprout-dev/sprout/internal/interaction"
	"github.com/sprout-dev/sprout/internal/meta"
	"github.com/sprout-dev/sprout/internal/scaffold"
	"github.com/sprout-dev/sprout/internal/tools"
	"github.com/sprout-dev/sprout/internal/ui"
	"github.com/sprout-dev/sprout/internal/version"
)

// runNew executes the scaffold flow end to end. Exit code 1 is reserved
// for prompt I/O failures, invalid flag values, and install failures; all
// other step failures are reported as warnings and the run keeps going.
func runNew(cli CLI, deps Dependencies, out io.Writer) int {
	console := ui.New(out)
	ui.Banner(out, version.GetVersion())

	defaults := loadDefaults()

	request, variant, err := resolveRequest(cli.New, deps, defaults)
	if err != nil {
		return exitWithError(out, err)
	}

	console.Header("📦", fmt.Sprintf("Creating %s", request.Name))
	console.Item("Template", variant.Label)
	console.Item("Package manager", request.PackageManager)
	console.Item("Directory", request.TargetDir)

	engine := scaffold.NewEngine(deps.Runner, console)
	if err := engine.Create(context.Background(), request); err != nil {
		console.Fail(fmt.Sprintf("Project creation failed: %v", err))
		return 1
	}

	if err := registerProject(request, deps); err != nil {
		console.Warn(fmt.Sprintf("record project: %v", err))
	}

	console.Success(fmt.Sprintf("Created %s at %s", request.Name, request.TargetDir))
	console.Info("Next steps:")
	console.ItemPlain(fmt.Sprintf("cd %s", request.Name))
	if request.SkipInstall {
		console.ItemPlain(fmt.Sprintf("%s install", request.PackageManager))
	}
	console.ItemPlain(fmt.Sprintf("%s run dev", request.PackageManager))
	return 0
}

// loadDefaults reads operator preferences from the global config; a
// missing or unreadable config falls back to built-in defaults silently.
func loadDefaults() config.Defaults {
	path, err := config.GlobalConfigPath()
	if err != nil {
		return config.Defaults{}
	}
	cfg, err := config.LoadGlobalConfig(path)
	if err != nil {
		return config.Defaults{}
	}
	return cfg.Defaults
}

// resolveRequest turns flags, prompts, and config defaults into an
// immutable scaffold request. Prompts only fire on a terminal and without
// --yes; the first select entry and the suggested name are the defaults
// otherwise.
func resolveRequest(cmd NewCmd, deps Dependencies, defaults config.Defaults) (scaffold.Request, scaffold.Variant, error) {
	interactive := deps.Interactive != nil && deps.Interactive() && !cmd.Yes

	name := cmd.Name
	if name == "" {
		if interactive {
			answer, err := deps.Prompter.Input("Project name", meta.DefaultProjectName)
			if err != nil {
				return scaffold.Request{}, scaffold.Variant{}, err
			}
			// Accepted as typed; only surrounding whitespace is dropped.
			name = strings.TrimSpace(answer)
		} else {
			name = meta.DefaultProjectName
		}
	}

	templateKey, err := resolveTemplate(cmd, deps, defaults, interactive)
	if err != nil {
		return scaffold.Request{}, scaffold.Variant{}, err
	}
	variant, err := scaffold.LoadVariant(templateKey)
	if err != nil {
		return scaffold.Request{}, scaffold.Variant{}, err
	}

	pm, err := resolvePackageManager(cmd, deps, defaults)
	if err != nil {
		return scaffold.Request{}, scaffold.Variant{}, err
	}

	return scaffold.Request{
		Name:           name,
		Template:       templateKey,
		PackageManager: pm,
		TargetDir:      filepath.Join(deps.WorkDir, name),
		SkipGit:        cmd.SkipGit,
		SkipInstall:    cmd.SkipInstall,
		Silent:         cmd.Silent,
	}, variant, nil
}

func resolveTemplate(cmd NewCmd, deps Dependencies, defaults config.Defaults, interactive bool) (string, error) {
	if cmd.Template != "" {
		if !scaffold.KnownVariant(cmd.Template) {
			return "", fmt.Errorf("unknown template %q (expected one of: %s)",
				cmd.Template, strings.Join(scaffold.VariantKeys, ", "))
		}
		return cmd.Template, nil
	}
	if scaffold.KnownVariant(defaults.Template) {
		return defaults.Template, nil
	}
	if !interactive {
		return scaffold.VariantKeys[0], nil
	}

	variants, err := scaffold.Variants()
	if err != nil {
		return "", err
	}
	options := make([]interaction.SelectOption, len(variants))
	for i, variant := range variants {
		options[i] = interaction.SelectOption{Label: variant.Label, Value: variant.Key}
	}
	selected, err := deps.Prompter.SelectValue("Template", options)
	if err != nil {
		return "", err
	}
	if selected == "" {
		selected = scaffold.VariantKeys[0]
	}
	return selected, nil
}

func resolvePackageManager(cmd NewCmd, deps Dependencies, defaults config.Defaults) (string, error) {
	if cmd.PkgManager != "" {
		if !tools.SupportedPackageManager(cmd.PkgManager) {
			return "", fmt.Errorf("unsupported package manager %q (expected one of: %s)",
				cmd.PkgManager, strings.Join(tools.PackageManagers, ", "))
		}
		return cmd.PkgManager, nil
	}
	if tools.SupportedPackageManager(defaults.PackageManager) {
		return defaults.PackageManager, nil
	}
	if deps.DetectPM != nil {
		if pm := deps.DetectPM(); pm != "" {
			return pm, nil
		}
	}
	return "npm", nil
}
