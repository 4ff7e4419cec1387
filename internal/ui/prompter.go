package ui

import (
	"fmt"
	"strings"

	"checkout/internal/errors"

	"github.com/manifoldco/promptui"
	"github.com/pkg/browser"
)

var selectTemplates = &promptui.SelectTemplates{
	Label:    "{{ . }}?",
	Active:   `{{ "✔" | cyan }} {{ . | cyan }}`,
	Inactive: `  {{ . }}`,
	Selected: `{{ "✔" | green }} {{ . | green }}`,
}

// Terminal implements the interactive prompts used by the payment flows
// with promptui, and opens links in the system browser.
type Terminal struct {
	openURL func(string) error
}

// NewTerminal creates a promptui-backed terminal
func NewTerminal() *Terminal {
	return &Terminal{openURL: browser.OpenURL}
}

// Select shows items and returns the chosen index and label
func (t *Terminal) Select(label string, items []string) (int, string, error) {
	prompt := promptui.Select{
		Label:     label,
		Items:     items,
		Size:      min(12, len(items)),
		Templates: selectTemplates,
	}

	index, value, err := prompt.Run()
	if err != nil {
		return -1, "", promptError(label, err)
	}
	return index, value, nil
}

// Prompt asks for free text. Masked prompts hide the typed characters.
func (t *Terminal) Prompt(label string, masked bool, validate func(string) error) (string, error) {
	prompt := promptui.Prompt{
		Label:    label,
		Validate: validate,
	}
	if masked {
		prompt.Mask = '*'
	}

	value, err := prompt.Run()
	if err != nil {
		return "", promptError(label, err)
	}
	return strings.TrimSpace(value), nil
}

// Confirm asks a yes/no question
func (t *Terminal) Confirm(label string) (bool, error) {
	prompt := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
	}

	_, err := prompt.Run()
	if err == nil {
		return true, nil
	}
	if errors.Is(err, promptui.ErrAbort) {
		return false, nil
	}
	return false, promptError(label, err)
}

// OpenURL opens url in the system browser
func (t *Terminal) OpenURL(url string) error {
	if err := t.openURL(url); err != nil {
		return errors.Wrap(err, errors.ErrorTypeExternal, "failed to open browser")
	}
	return nil
}

// TextPrompter asks for free text
type TextPrompter interface {
	Prompt(label string, masked bool, validate func(string) error) (string, error)
}

// PromptListURL asks for the List URL of a payment session
func PromptListURL(p TextPrompter, validate func(string) error) (string, error) {
	return p.Prompt("List URL", false, validate)
}

// promptError turns Ctrl-C / Ctrl-D into a canceled error
func promptError(label string, err error) error {
	if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
		return errors.Wrap(err, errors.ErrorTypeCanceled, fmt.Sprintf("%s canceled", strings.ToLower(label)))
	}
	return errors.Wrap(err, errors.ErrorTypeInternal, "prompt failed")
}
