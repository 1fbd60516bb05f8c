// Where: internal/interaction/selector.go
// What: Interactive prompt implementations using the huh library.
// Why: Provide keyboard-based input and selection for the scaffold flow.
package interaction

import (
	"github.com/charmbracelet/huh"
)

// HuhPrompter implements the Prompter interface using the huh TUI library.
type HuhPrompter struct{}

// Input shows a free-text prompt pre-filled with initial. Accepting the
// prompt without edits returns initial unchanged; the typed value is
// otherwise returned as-is.
func (p HuhPrompter) Input(title, initial string) (string, error) {
	input := initial
	err := huh.NewInput().
		Title(title).
		Value(&input).
		Run()
	if err != nil {
		return "", err
	}
	return input, nil
}

// SelectValue shows a single-choice menu and returns the value of the
// chosen option. The first option is the effective default.
func (p HuhPrompter) SelectValue(title string, options []SelectOption) (string, error) {
	if len(options) == 0 {
		return "", nil
	}

	huhOptions := make([]huh.Option[string], len(options))
	for i, opt := range options {
		huhOptions[i] = huh.NewOption(opt.Label, opt.Value)
	}

	var selected string
	err := huh.NewSelect[string]().
		Title(title).
		Options(huhOptions...).
		Value(&selected).
		Run()
	if err != nil {
		return "", err
	}
	return selected, nil
}
