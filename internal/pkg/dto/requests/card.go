package requests

import (
	"xpresspay-sdk/internal/pkg/constvars"
	"xpresspay-sdk/internal/pkg/encryption"
)

// CardPayment carries the fields required to initiate a card payment. Only
// the validated fields are mandatory; the optional ones improve auth success
// rates for international cards.
type CardPayment struct {
	PublicKey     string `json:"publicKey" validate:"required"`
	CardNumber    string `json:"cardNumber" validate:"required,credit_card"`
	Cvv           string `json:"cvv" validate:"required,numeric,min=3,max=4"`
	ExpiryMonth   string `json:"expiryMonth" validate:"required,expiry_month"`
	ExpiryYear    string `json:"expiryYear" validate:"required,expiry_year"`
	Amount        string `json:"amount" validate:"required,amount_string"`
	Email         string `json:"email" validate:"required,email"`
	TransactionID string `json:"transactionId" validate:"required"`

	Currency string `json:"currency"`
	Country  string `json:"country"`

	PhoneNumber       string `json:"phoneNumber"`
	FirstName         string `json:"firstName"`
	LastName          string `json:"lastName"`
	IP                string `json:"ip"`
	DeviceFingerPrint string `json:"deviceFingerPrint"`
	RedirectUrl       string `json:"redirectUrl"`

	// Billing address, required for AVS / international cards
	BillingZip     string `json:"billingZip"`
	BillingCity    string `json:"billingCity"`
	BillingAddress string `json:"billingAddress"`
	BillingState   string `json:"billingState"`
	BillingCountry string `json:"billingCountry"`

	Meta []map[string]string `json:"meta"`
}

// ToEncryptPayload builds the ordered field set that gets JSON-serialized and
// encrypted. The field order is fixed; it is part of the byte layout the
// gateway decrypts.
func (r *CardPayment) ToEncryptPayload() *encryption.Payload {
	currency := r.Currency
	if currency == "" {
		currency = constvars.DefaultCurrency
	}
	country := r.Country
	if country == "" {
		country = constvars.DefaultCountry
	}

	payload := encryption.NewPayload().
		Set("publicKey", r.PublicKey).
		Set("cardNumber", r.CardNumber).
		Set("cvv", r.Cvv).
		Set("expiryMonth", r.ExpiryMonth).
		Set("expiryYear", r.ExpiryYear).
		Set("amount", r.Amount).
		Set("email", r.Email).
		Set("transactionId", r.TransactionID).
		Set("currency", currency).
		Set("country", country).
		Set("paymentType", string(constvars.PaymentTypeCard))

	payload.SetNonEmpty("phoneNumber", r.PhoneNumber).
		SetNonEmpty("firstName", r.FirstName).
		SetNonEmpty("lastName", r.LastName).
		SetNonEmpty("ip", r.IP).
		SetNonEmpty("deviceFingerPrint", r.DeviceFingerPrint).
		SetNonEmpty("redirectUrl", r.RedirectUrl).
		SetNonEmpty("billingZip", r.BillingZip).
		SetNonEmpty("billingCity", r.BillingCity).
		SetNonEmpty("billingAddress", r.BillingAddress).
		SetNonEmpty("billingState", r.BillingState).
		SetNonEmpty("billingCountry", r.BillingCountry)

	if len(r.Meta) > 0 {
		payload.Set("meta", r.Meta)
	}
	return payload
}

// CardPinAuth authenticates a card payment that requires a PIN (local
// Nigerian cards).
type CardPinAuth struct {
	PublicKey     string `json:"publicKey" validate:"required"`
	TransactionID string `json:"transactionId" validate:"required"`
	Pin           string `json:"pin" validate:"required,numeric,len=4"`
}

func (r *CardPinAuth) ToBody() *CardAuthBody {
	return &CardAuthBody{
		PublicKey:               r.PublicKey,
		SuggestedAuthentication: constvars.SuggestedAuthPin,
		Pin:                     r.Pin,
		TransactionID:           r.TransactionID,
		PaymentType:             string(constvars.PaymentTypeCard),
	}
}

// CardAvsAuth authenticates a card payment that requires AVS / 3DSecure
// (international cards).
type CardAvsAuth struct {
	PublicKey     string `json:"publicKey" validate:"required"`
	TransactionID string `json:"transactionId" validate:"required"`

	BillingZip     string `json:"billingZip"`
	BillingCity    string `json:"billingCity"`
	BillingAddress string `json:"billingAddress"`
	BillingState   string `json:"billingState"`
	BillingCountry string `json:"billingCountry"`
}

func (r *CardAvsAuth) ToBody() *CardAuthBody {
	return &CardAuthBody{
		PublicKey:               r.PublicKey,
		SuggestedAuthentication: constvars.SuggestedAuthAvs,
		TransactionID:           r.TransactionID,
		PaymentType:             string(constvars.PaymentTypeCard),
		BillingZip:              r.BillingZip,
		BillingCity:             r.BillingCity,
		BillingAddress:          r.BillingAddress,
		BillingState:            r.BillingState,
		BillingCountry:          r.BillingCountry,
	}
}

// CardAuthBody is the cleartext wire body for /v1/payments/authenticate.
type CardAuthBody struct {
	PublicKey               string `json:"publicKey"`
	SuggestedAuthentication string `json:"suggestedAuthentication"`
	Pin                     string `json:"pin,omitempty"`
	TransactionID           string `json:"transactionId"`
	PaymentType             string `json:"paymentType"`
	BillingZip              string `json:"billingZip,omitempty"`
	BillingCity             string `json:"billingCity,omitempty"`
	BillingAddress          string `json:"billingAddress,omitempty"`
	BillingState            string `json:"billingState,omitempty"`
	BillingCountry          string `json:"billingCountry,omitempty"`
}
