// Package sdk is the payment SDK surface the example clients drive: a
// configuration built from a List URL, and a Launcher that shows the
// payment list or charges a preset account and hands back a PaymentResult.
package sdk

import (
	"net/url"
	"strings"

	"checkout/internal/errors"

	"github.com/manifoldco/promptui"
)

// MessageInvalidListURL is shown when the pasted List URL cannot be used
const MessageInvalidListURL = "Please paste a valid List Url in the input field."

// Theme styles the terminal screens of the payment flows
type Theme struct {
	name    string
	toolbar func(any) string
	content func(any) string
}

// DefaultTheme returns the stock theme
func DefaultTheme() Theme {
	return Theme{
		name:    "default",
		toolbar: promptui.Styler(promptui.FGCyan, promptui.FGBold),
		content: promptui.Styler(promptui.FGWhite),
	}
}

// CustomTheme returns the alternative theme selected with --custom-theme
func CustomTheme() Theme {
	return Theme{
		name:    "custom",
		toolbar: promptui.Styler(promptui.FGMagenta, promptui.FGBold, promptui.FGUnderline),
		content: promptui.Styler(promptui.FGYellow),
	}
}

func (t Theme) Name() string {
	return t.name
}

// Toolbar renders a screen title
func (t Theme) Toolbar(s string) string {
	if t.toolbar == nil {
		return s
	}
	return t.toolbar(s)
}

// Content renders body text
func (t Theme) Content(s string) string {
	if t.content == nil {
		return s
	}
	return t.content(s)
}

// Configuration is immutable once built
type Configuration struct {
	listURL string
	theme   Theme
}

// Option customises a Configuration
type Option func(*Configuration)

// WithTheme sets the theme of the payment screens
func WithTheme(theme Theme) Option {
	return func(c *Configuration) {
		c.theme = theme
	}
}

// NewConfiguration validates listURL and builds a configuration for it
func NewConfiguration(listURL string, opts ...Option) (*Configuration, error) {
	listURL = strings.TrimSpace(listURL)
	if err := ValidateListURL(listURL); err != nil {
		return nil, err
	}

	c := &Configuration{
		listURL: listURL,
		theme:   DefaultTheme(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// ValidateListURL checks that raw is an absolute http(s) URL with a
// plausible host.
func ValidateListURL(raw string) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return errors.Validation(MessageInvalidListURL)
	}

	u, err := url.Parse(raw)
	if err != nil {
		return errors.Wrap(err, errors.ErrorTypeValidation, MessageInvalidListURL)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return errors.Validation(MessageInvalidListURL).WithContext("url", raw)
	}

	host := u.Hostname()
	if host == "" || (host != "localhost" && !strings.Contains(host, ".")) {
		return errors.Validation(MessageInvalidListURL).WithContext("url", raw)
	}
	return nil
}

func (c *Configuration) ListURL() string {
	return c.listURL
}

func (c *Configuration) Theme() Theme {
	return c.theme
}
