// Where: internal/app/config_cmd_test.go
// What: Tests for config and list subcommands.
// Why: Ensure defaults persist and the registry renders.
package app

import (
	"strings"
	"testing"

	"github.com/sprout-dev/sprout/internal/config"
)

func TestConfigSetPmPersists(t *testing.T) {
	deps, buf := testDeps(t, &fakeRunner{}, fakePrompter{}, false)

	code := Run([]string{"config", "set-pm", "pnpm"}, deps)
	if code != 0 {
		t.Fatalf("expected exit 0, got %d\n%s", code, buf.String())
	}

	path, err := config.GlobalConfigPath()
	if err != nil {
		t.Fatalf("config path: %v", err)
	}
	cfg, err := config.LoadGlobalConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Defaults.PackageManager != "pnpm" {
		t.Fatalf("expected pnpm persisted, got %q", cfg.Defaults.PackageManager)
	}
}

func TestConfigSetPmRejectsUnknown(t *testing.T) {
	deps, buf := testDeps(t, &fakeRunner{}, fakePrompter{}, false)

	if code := Run([]string{"config", "set-pm", "bower"}, deps); code != 1 {
		t.Fatalf("expected exit 1, got %d\n%s", code, buf.String())
	}
}

func TestConfigSetTemplatePersists(t *testing.T) {
	deps, buf := testDeps(t, &fakeRunner{}, fakePrompter{}, false)

	code := Run([]string{"config", "set-template", "tailwind"}, deps)
	if code != 0 {
		t.Fatalf("expected exit 0, got %d\n%s", code, buf.String())
	}

	path, err := config.GlobalConfigPath()
	if err != nil {
		t.Fatalf("config path: %v", err)
	}
	cfg, err := config.LoadGlobalConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Defaults.Template != "tailwind" {
		t.Fatalf("expected tailwind persisted, got %q", cfg.Defaults.Template)
	}
}

func TestConfigSetTemplateRejectsUnknown(t *testing.T) {
	deps, buf := testDeps(t, &fakeRunner{}, fakePrompter{}, false)

	if code := Run([]string{"config", "set-template", "angular"}, deps); code != 1 {
		t.Fatalf("expected exit 1, got %d\n%s", code, buf.String())
	}
}

func TestListEmpty(t *testing.T) {
	deps, buf := testDeps(t, &fakeRunner{}, fakePrompter{}, false)

	if code := Run([]string{"list"}, deps); code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}
	if !strings.Contains(buf.String(), "No projects scaffolded yet") {
		t.Fatalf("expected empty notice, got:\n%s", buf.String())
	}
}

func TestListShowsRegisteredProjects(t *testing.T) {
	deps, buf := testDeps(t, &fakeRunner{}, fakePrompter{}, false)

	if code := Run([]string{"new", "alpha", "--skip-install", "--skip-git"}, deps); code != 0 {
		t.Fatalf("scaffold failed:\n%s", buf.String())
	}
	buf.Reset()

	if code := Run([]string{"list"}, deps); code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}
	out := buf.String()
	if !strings.Contains(out, "alpha") {
		t.Fatalf("expected project name in listing:\n%s", out)
	}
	if !strings.Contains(out, "(default)") {
		t.Fatalf("expected template in listing:\n%s", out)
	}
}
