package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/manifoldco/promptui"
)

// CreateHyperlink creates a clickable hyperlink using ANSI escape sequences
// Falls back to plain text if hyperlinks are disabled
func CreateHyperlink(url, text string) string {
	if os.Getenv("CHECKOUT_NO_HYPERLINKS") == "1" {
		return fmt.Sprintf("%s (%s)", text, url)
	}

	// ANSI hyperlink escape sequence: \x1b]8;;URL\x1b\URL Text\x1b]8;;\x1b\
	return fmt.Sprintf("\x1b]8;;%s\x1b\\%s\x1b]8;;\x1b\\", url, text)
}

// IsInteractive returns true if running in an interactive terminal
func IsInteractive() bool {
	fileInfo, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}

// ShouldEnableHyperlinks reports whether OSC-8 links are likely to render
func ShouldEnableHyperlinks() bool {
	if os.Getenv("TERM") == "dumb" || os.Getenv("CI") != "" {
		return false
	}
	return IsInteractive()
}

// ShowErrorDialog shows a modal error. Interactive terminals block until the
// user acknowledges it; otherwise the dialog is printed to out.
func ShowErrorDialog(out io.Writer, title, message string) {
	if title == "" {
		title = "Error"
	}

	fmt.Fprintf(out, "\n[%s]\n", strings.ToLower(title))
	for _, line := range WordWrap(message, 72) {
		fmt.Fprintln(out, line)
	}

	if !IsInteractive() {
		return
	}

	prompt := promptui.Select{
		Label:     title,
		Items:     []string{"OK"},
		Size:      1,
		HideHelp:  true,
		Templates: selectTemplates,
	}
	// Any answer, including Ctrl-C, closes the dialog.
	_, _, _ = prompt.Run()
}
