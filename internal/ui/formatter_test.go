package ui

import (
	"bytes"
	"testing"

	"checkout/internal/payment"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func TestFormatPresetAccount(t *testing.T) {
	tests := []struct {
		name    string
		account *payment.PresetAccount
		want    AccountView
	}{
		{
			name: "card with expiry",
			account: &payment.PresetAccount{
				Code:   "VISA",
				Method: payment.MethodCreditCard,
				MaskedAccount: &payment.AccountMask{
					DisplayLabel: "41 *** 1111",
					Number:       "41 *** 1111",
					ExpiryMonth:  intPtr(7),
					ExpiryYear:   intPtr(2027),
				},
			},
			want: AccountView{Title: "41 *** 1111", Subtitle: "07 / 27"},
		},
		{
			name: "card without expiry",
			account: &payment.PresetAccount{
				Code:          "MASTERCARD",
				Method:        payment.MethodDebitCard,
				MaskedAccount: &payment.AccountMask{Number: "55 *** 4444"},
			},
			want: AccountView{Title: "55 *** 4444"},
		},
		{
			name: "wallet shows display label",
			account: &payment.PresetAccount{
				Code:          "PAYPAL",
				Method:        "WALLET",
				MaskedAccount: &payment.AccountMask{DisplayLabel: "john.doe@example.com"},
			},
			want: AccountView{Title: "john.doe@example.com"},
		},
		{
			name:    "no mask shows network code",
			account: &payment.PresetAccount{Code: "SEPADD", Method: "DIRECT_DEBIT"},
			want:    AccountView{Title: "SEPADD"},
		},
		{
			name: "nil account",
			want: AccountView{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatPresetAccount(tt.account))
		})
	}
}

func TestFormatExpiryDate(t *testing.T) {
	assert.Equal(t, "12 / 30", FormatExpiryDate(intPtr(12), intPtr(2030)))
	assert.Equal(t, "", FormatExpiryDate(nil, intPtr(2030)))
	assert.Equal(t, "", FormatExpiryDate(intPtr(1), nil))
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "19.99 EUR", FormatAmount(19.99, "EUR"))
	assert.Equal(t, "5.00", FormatAmount(5, ""))
}

func TestTruncateText(t *testing.T) {
	assert.Equal(t, "", TruncateText("", 10))
	assert.Equal(t, "short", TruncateText("short", 10))
	assert.Equal(t, "Visa De...", TruncateText("Visa Debit Card", 10))
	assert.Equal(t, "a b", TruncateText("a\n  b", 10))
}

func TestWordWrap(t *testing.T) {
	assert.Equal(t, []string{"Please paste a", "valid List Url"}, WordWrap("Please paste a valid List Url", 14))
	assert.Empty(t, WordWrap("", 10))
}

func TestFormatLink(t *testing.T) {
	assert.Equal(t, "list (https://x/lists/1)", FormatLink("list", "https://x/lists/1", false))
}

func TestShowErrorDialogPrintsMessage(t *testing.T) {
	var buf bytes.Buffer
	ShowErrorDialog(&buf, "", "Please paste a valid List Url in the input field.")

	assert.Contains(t, buf.String(), "[error]")
	assert.Contains(t, buf.String(), "Please paste a valid List Url in the input field.")
}
