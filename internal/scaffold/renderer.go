// Where: internal/scaffold/renderer.go
// What: Render embedded scaffold templates with project data.
// Why: Keep template parsing cached and the function set consistent.
package scaffold

import (
	"bytes"
	"fmt"
	"io/fs"
	"path"
	"sync"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/sprout-dev/sprout/assets"
)

// TemplateData is the context available to every scaffold template.
type TemplateData struct {
	Name string
}

var templateCache sync.Map

func renderTemplate(templatePath string, data TemplateData) ([]byte, error) {
	tmpl, err := lookupTemplate(templatePath)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render %s: %w", templatePath, err)
	}
	return buf.Bytes(), nil
}

func lookupTemplate(templatePath string) (*template.Template, error) {
	if cached, ok := templateCache.Load(templatePath); ok {
		return cached.(*template.Template), nil
	}

	payload, err := fs.ReadFile(assets.TemplatesFS, templatePath)
	if err != nil {
		return nil, fmt.Errorf("read template %s: %w", templatePath, err)
	}

	tmpl, err := template.New(path.Base(templatePath)).
		Funcs(sprig.FuncMap()).
		Parse(string(payload))
	if err != nil {
		return nil, fmt.Errorf("parse template %s: %w", templatePath, err)
	}

	templateCache.Store(templatePath, tmpl)
	return tmpl, nil
}
