// Where: internal/app/config_cmd.go
// What: Config subcommands for operator defaults.
// Why: Let repeated runs skip the same flag/prompt answers.
package app

import (
	"fmt"
	"io"
	"strings"

	"github.com/sprout-dev/sprout/internal/config"
	"github.com/sprout-dev/sprout/internal/scaffold"
	"github.com/sprout-dev/sprout/internal/tools"
	"github.com/sprout-dev/sprout/internal/ui"
)

func runConfigSetPm(cli CLI, _ Dependencies, out io.Writer) int {
	name := cli.Config.SetPm.Name
	if !tools.SupportedPackageManager(name) {
		return exitWithError(out, fmt.Errorf("unsupported package manager %q (expected one of: %s)",
			name, strings.Join(tools.PackageManagers, ", ")))
	}

	if err := updateDefaults(func(defaults *config.Defaults) {
		defaults.PackageManager = name
	}); err != nil {
		return exitWithError(out, err)
	}

	ui.New(out).Success(fmt.Sprintf("Default package manager set to %s", name))
	return 0
}

func runConfigSetTemplate(cli CLI, _ Dependencies, out io.Writer) int {
	key := cli.Config.SetTemplate.Key
	if !scaffold.KnownVariant(key) {
		return exitWithError(out, fmt.Errorf("unknown template %q (expected one of: %s)",
			key, strings.Join(scaffold.VariantKeys, ", ")))
	}

	if err := updateDefaults(func(defaults *config.Defaults) {
		defaults.Template = key
	}); err != nil {
		return exitWithError(out, err)
	}

	ui.New(out).Success(fmt.Sprintf("Default template set to %s", key))
	return 0
}

func updateDefaults(apply func(*config.Defaults)) error {
	path, err := config.GlobalConfigPath()
	if err != nil {
		return err
	}
	cfg, err := config.LoadGlobalConfig(path)
	if err != nil {
		cfg = config.DefaultGlobalConfig()
	}
	apply(&cfg.Defaults)
	return config.SaveGlobalConfig(path, cfg)
}
