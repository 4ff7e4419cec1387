package ui

import (
	"fmt"
	"strings"

	"checkout/internal/payment"
)

// AccountView is the title/subtitle pair a summary shows for an account
type AccountView struct {
	Title    string
	Subtitle string
}

// FormatPresetAccount renders a preset account for the summary screen.
// Cards show the masked number and expiry date, other methods their
// display label; without a mask the network code is shown.
func FormatPresetAccount(account *payment.PresetAccount) AccountView {
	if account == nil {
		return AccountView{}
	}

	mask := account.MaskedAccount
	if mask == nil {
		return AccountView{Title: account.Code}
	}

	if account.IsCard() {
		title := mask.Number
		if title == "" {
			title = mask.DisplayLabel
		}
		return AccountView{
			Title:    title,
			Subtitle: FormatExpiryDate(mask.ExpiryMonth, mask.ExpiryYear),
		}
	}
	return AccountView{Title: mask.DisplayLabel}
}

// FormatExpiryDate renders a card expiry as "MM / YY", or "" when either
// part is missing.
func FormatExpiryDate(month, year *int) string {
	if month == nil || year == nil {
		return ""
	}
	return fmt.Sprintf("%02d / %d", *month, *year%100)
}

// FormatAmount renders an amount such as "19.99 EUR"
func FormatAmount(amount float64, currency string) string {
	return strings.TrimSpace(fmt.Sprintf("%.2f %s", amount, currency))
}

// TruncateText truncates text to the specified length, adding "..." if truncated
func TruncateText(text string, maxLen int) string {
	if text == "" {
		return ""
	}

	text = strings.ReplaceAll(text, "\n", " ")
	text = strings.ReplaceAll(text, "\r", " ")
	text = strings.Join(strings.Fields(text), " ")

	if len(text) <= maxLen {
		return text
	}

	if maxLen <= 3 {
		return text[:maxLen]
	}

	return text[:maxLen-3] + "..."
}

// WordWrap wraps text to the specified width, preserving word boundaries
func WordWrap(text string, width int) []string {
	if text == "" || width <= 0 {
		return []string{}
	}

	var lines []string
	currentLine := ""

	for _, word := range strings.Fields(text) {
		switch {
		case currentLine == "":
			currentLine = word
		case len(currentLine)+1+len(word) <= width:
			currentLine += " " + word
		default:
			lines = append(lines, currentLine)
			currentLine = word
		}
	}

	if currentLine != "" {
		lines = append(lines, currentLine)
	}

	return lines
}

// FormatLink returns an OSC-8 hyperlink when enabled, "text (url)" otherwise
func FormatLink(text, url string, enabled bool) string {
	if !enabled {
		return fmt.Sprintf("%s (%s)", text, url)
	}
	return CreateHyperlink(url, text)
}
