package payment

// Documents exchanged with the Payment API. Only the fields the example
// clients read are modelled; unknown fields are ignored when decoding.

// Links maps a link relation (self, operation, logo, ...) to its URL
type Links map[string]string

// Link names used by the Payment API
const (
	LinkSelf      = "self"
	LinkOperation = "operation"
	LinkLogo      = "logo"
)

// Payment methods that render as cards in summaries
const (
	MethodCreditCard = "CREDIT_CARD"
	MethodDebitCard  = "DEBIT_CARD"
)

// Redirect types carried in operation results
const (
	RedirectSummary  = "SUMMARY"
	RedirectProvider = "PROVIDER"
)

// Operation types of a LIST session
const (
	OperationCharge = "CHARGE"
	OperationPreset = "PRESET"
)

type Interaction struct {
	Code   InteractionCode `json:"code"`
	Reason string          `json:"reason"`
}

type Parameter struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type Redirect struct {
	URL            string      `json:"url"`
	Method         string      `json:"method,omitempty"`
	Parameters     []Parameter `json:"parameters,omitempty"`
	SuppressIFrame *bool       `json:"suppressIFrame,omitempty"`
	Type           string      `json:"type,omitempty"`
}

// OperationResult is returned by POSTs to operation links and is the
// payload of a PaymentResult.
type OperationResult struct {
	Links       Links        `json:"links,omitempty"`
	ResultInfo  string       `json:"resultInfo"`
	Interaction *Interaction `json:"interaction,omitempty"`
	Redirect    *Redirect    `json:"redirect,omitempty"`
}

// ErrorInfo is the body the Payment API sends with non-2xx responses
type ErrorInfo struct {
	ResultInfo  string       `json:"resultInfo"`
	Interaction *Interaction `json:"interaction,omitempty"`
}

type AccountMask struct {
	DisplayLabel string `json:"displayLabel"`
	HolderName   string `json:"holderName,omitempty"`
	Number       string `json:"number,omitempty"`
	BankCode     string `json:"bankCode,omitempty"`
	BankName     string `json:"bankName,omitempty"`
	BIC          string `json:"bic,omitempty"`
	Branch       string `json:"branch,omitempty"`
	City         string `json:"city,omitempty"`
	ExpiryMonth  *int   `json:"expiryMonth,omitempty"`
	ExpiryYear   *int   `json:"expiryYear,omitempty"`
	IBAN         string `json:"iban,omitempty"`
	Login        string `json:"login,omitempty"`
}

// PresetAccount is a previously selected account that can be charged
// without selecting a payment method again.
type PresetAccount struct {
	Links            Links        `json:"links"`
	Code             string       `json:"code"`
	OperationType    string       `json:"operationType,omitempty"`
	MaskedAccount    *AccountMask `json:"maskedAccount,omitempty"`
	Redirect         *Redirect    `json:"redirect,omitempty"`
	Method           string       `json:"method"`
	Registered       bool         `json:"registered"`
	AutoRegistration bool         `json:"autoRegistration"`
	AllowRecurrence  bool         `json:"allowRecurrence"`
}

type InputElement struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

type ApplicableNetwork struct {
	Code          string         `json:"code"`
	Label         string         `json:"label"`
	Method        string         `json:"method"`
	OperationType string         `json:"operationType,omitempty"`
	Redirect      bool           `json:"redirect"`
	Links         Links          `json:"links"`
	InputElements []InputElement `json:"inputElements,omitempty"`
}

type Networks struct {
	Applicable []ApplicableNetwork `json:"applicable"`
}

type Amount struct {
	Reference string  `json:"reference"`
	Amount    float64 `json:"amount"`
	Currency  string  `json:"currency"`
}

// ListResult is the document behind a List URL
type ListResult struct {
	Links           Links          `json:"links"`
	ResultInfo      string         `json:"resultInfo"`
	Interaction     *Interaction   `json:"interaction,omitempty"`
	Networks        *Networks      `json:"networks,omitempty"`
	PresetAccount   *PresetAccount `json:"presetAccount,omitempty"`
	OperationType   string         `json:"operationType,omitempty"`
	Payment         *Amount        `json:"payment,omitempty"`
	IntegrationType string         `json:"integrationType,omitempty"`
}

// SelfURL returns the list's self link or an empty string
func (l *ListResult) SelfURL() string {
	if l == nil {
		return ""
	}
	return l.Links[LinkSelf]
}

// ApplicableNetworks returns the networks the customer may choose from
func (l *ListResult) ApplicableNetworks() []ApplicableNetwork {
	if l == nil || l.Networks == nil {
		return nil
	}
	return l.Networks.Applicable
}

// IsCard reports whether the account's method renders as a card
func (p *PresetAccount) IsCard() bool {
	return p != nil && (p.Method == MethodCreditCard || p.Method == MethodDebitCard)
}
