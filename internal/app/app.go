// Where: internal/app/app.go
// What: CLI entrypoint logic.
// Why: Provide a testable command dispatcher.
package app

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"github.com/sprout-dev/sprout/internal/config"
	"github.com/sprout-dev/sprout/internal/interaction"
	"github.com/sprout-dev/sprout/internal/tools"
	"github.com/sprout-dev/sprout/internal/version"
)

// Dependencies holds all injected dependencies required for CLI command
// execution. The structure enables swapping subsystems in tests.
type Dependencies struct {
	WorkDir     string
	Out         io.Writer
	Prompter    interaction.Prompter
	Runner      tools.CommandRunner
	Now         func() time.Time
	Interactive func() bool
	DetectPM    func() string
}

// CLI defines the command-line interface structure parsed by Kong.
// The scaffold flow is the default command; bare invocation runs it.
type CLI struct {
	EnvFile string `name:"env-file" help:"Path to .env file"`

	New     NewCmd     `cmd:"" default:"withargs" help:"Scaffold a new web application"`
	List    ListCmd    `cmd:"" help:"List previously scaffolded projects"`
	Config  ConfigCmd  `cmd:"" help:"Manage configuration defaults"`
	Version VersionCmd `cmd:"" help:"Show version information"`
}

// NewCmd carries the flags of the scaffold flow.
type NewCmd struct {
	Name        string `arg:"" optional:"" help:"Project name (prompted when omitted)"`
	Template    string `short:"t" help:"Template variant: default, typescript, tailwind"`
	PkgManager  string `name:"pkg-manager" help:"Package manager: npm, pnpm, yarn"`
	SkipInstall bool   `name:"skip-install" help:"Skip dependency installation"`
	SkipGit     bool   `name:"skip-git" help:"Skip git repository initialization"`
	Yes         bool   `short:"y" help:"Accept defaults without prompting"`
	Silent      bool   `help:"Suppress subprocess output"`
}

type ListCmd struct{}

type ConfigCmd struct {
	SetPm       SetPmCmd       `cmd:"" name:"set-pm" help:"Set the default package manager"`
	SetTemplate SetTemplateCmd `cmd:"" name:"set-template" help:"Set the default template"`
}

type SetPmCmd struct {
	Name string `arg:"" help:"Package manager: npm, pnpm, yarn"`
}

type SetTemplateCmd struct {
	Key string `arg:"" help:"Template variant: default, typescript, tailwind"`
}

type VersionCmd struct{}

// Run is the main entry point for CLI command execution.
// It parses the command-line arguments, identifies the requested command,
// and dispatches to the appropriate handler. Returns 0 on success, 1 on error.
func Run(args []string, deps Dependencies) int {
	out := deps.Out
	if out == nil {
		out = os.Stdout
	}

	if err := config.EnsureGlobalConfig(); err != nil {
		return exitWithError(out, err)
	}

	cli := CLI{}
	parser, err := kong.New(&cli)
	if err != nil {
		return exitWithError(out, err)
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		return exitWithError(out, err)
	}

	// Load environment file if provided or if .env exists in current directory
	if cli.EnvFile != "" {
		if err := godotenv.Load(cli.EnvFile); err != nil {
			fmt.Fprintf(out, "Warning: failed to load env file %s: %v\n", cli.EnvFile, err)
		}
	} else {
		if _, err := os.Stat(".env"); err == nil {
			if err := godotenv.Load(); err != nil {
				fmt.Fprintf(out, "Warning: failed to load .env: %v\n", err)
			}
		}
	}

	command := ctx.Command()
	if exitCode, handled := dispatchCommand(command, cli, deps, out); handled {
		return exitCode
	}

	fmt.Fprintln(out, "unknown command")
	return 1
}

type commandHandler func(CLI, Dependencies, io.Writer) int

type prefixHandler struct {
	prefix  string
	handler commandHandler
}

func dispatchCommand(command string, cli CLI, deps Dependencies, out io.Writer) (int, bool) {
	exactHandlers := map[string]commandHandler{
		"list":    runList,
		"version": func(_ CLI, _ Dependencies, out io.Writer) int { return runVersion(out) },
	}

	if handler, ok := exactHandlers[command]; ok {
		return handler(cli, deps, out), true
	}

	prefixHandlers := []prefixHandler{
		{prefix: "new", handler: runNew},
		{prefix: "config set-pm", handler: runConfigSetPm},
		{prefix: "config set-template", handler: runConfigSetTemplate},
	}

	for _, entry := range prefixHandlers {
		if strings.HasPrefix(command, entry.prefix) {
			return entry.handler(cli, deps, out), true
		}
	}

	return 1, false
}

// runVersion prints the version information of the CLI.
func runVersion(out io.Writer) int {
	fmt.Fprintln(out, version.GetVersion())
	return 0
}

func exitWithError(out io.Writer, err error) int {
	fmt.Fprintf(out, "Error: %v\n", err)
	return 1
}
