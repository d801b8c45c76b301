package responses

import "xpresspay-sdk/internal/pkg/constvars"

// Payment is a parsed payment API response. Raw always holds the full
// decoded body for fields the typed accessors do not cover.
type Payment struct {
	Status  string                 `json:"status"`
	Message string                 `json:"message"`
	Raw     map[string]interface{} `json:"-"`
}

func (p *Payment) paymentData() map[string]interface{} {
	data, ok := p.Raw["data"].(map[string]interface{})
	if !ok {
		return nil
	}
	payment, ok := data["payment"].(map[string]interface{})
	if !ok {
		return nil
	}
	return payment
}

func (p *Payment) paymentString(key string) string {
	value, ok := p.paymentData()[key].(string)
	if !ok {
		return ""
	}
	return value
}

// IsSuccessful reports whether the gateway marks the transaction as fully
// settled.
func (p *Payment) IsSuccessful() bool {
	return p.paymentString("paymentResponseCode") == constvars.PaymentResponseCodeSuccessful
}

// RequiresValidation reports whether an OTP/PIN step is still needed.
func (p *Payment) RequiresValidation() bool {
	return p.paymentString("authenticatePaymentResponseCode") == constvars.AuthenticateResponseCodeValidateOtp
}

// SuggestedAuthentication returns "PIN", "AVS_VBVSECURECODE", or "".
func (p *Payment) SuggestedAuthentication() string {
	return p.paymentString("suggestedAuthentication")
}

// AuthUrl is the 3DSecure iframe URL, present for international AVS cards.
func (p *Payment) AuthUrl() string {
	return p.paymentString("authUrl")
}

func (p *Payment) UniqueKey() string {
	return p.paymentString("uniqueKey")
}

func (p *Payment) TransactionReference() string {
	return p.paymentString("transactionReference")
}

func (p *Payment) Amount() string {
	return p.paymentString("amount")
}

func (p *Payment) ChargedAmount() string {
	return p.paymentString("chargedAmount")
}

func (p *Payment) PaymentType() string {
	return p.paymentString("paymentType")
}

// ValidationInstruction is the human-readable next customer action.
func (p *Payment) ValidationInstruction() string {
	return p.paymentString("validationInstruction")
}
