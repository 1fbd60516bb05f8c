// Where: internal/scaffold/renderer_test.go
// What: Tests for template rendering.
// Why: Ensure project data lands in output and bad paths fail loudly.
package scaffold

import (
	"bytes"
	"strings"
	"testing"
)

func TestRenderTemplateInjectsName(t *testing.T) {
	content, err := renderTemplate(
		"templates/default/files/src/app/page.js.tmpl",
		TemplateData{Name: "demo-app"},
	)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(string(content), "Welcome to demo-app") {
		t.Fatalf("rendered output missing project name:\n%s", content)
	}
}

func TestRenderTemplateCachedResultStable(t *testing.T) {
	first, err := renderTemplate(
		"templates/default/files/src/app/layout.js.tmpl",
		TemplateData{Name: "demo-app"},
	)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	second, err := renderTemplate(
		"templates/default/files/src/app/layout.js.tmpl",
		TemplateData{Name: "demo-app"},
	)
	if err != nil {
		t.Fatalf("render again: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Fatal("expected identical output from cached template")
	}
}

func TestRenderTemplateEmptyNameFallsBack(t *testing.T) {
	content, err := renderTemplate(
		"templates/default/files/src/app/layout.js.tmpl",
		TemplateData{Name: ""},
	)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(string(content), `title: "web-app"`) {
		t.Fatalf("expected fallback title in:\n%s", content)
	}
}

func TestRenderTemplateUnknownPath(t *testing.T) {
	if _, err := renderTemplate("templates/default/files/missing.tmpl", TemplateData{}); err == nil {
		t.Fatal("expected error for missing template")
	}
}
