package requests

import (
	"xpresspay-sdk/internal/pkg/constvars"
	"xpresspay-sdk/internal/pkg/encryption"
)

// AccountPayment carries the fields required to initiate a direct bank
// account debit.
//
// Bank-specific requirements:
//   - Zenith / UBA: DateOfBirth must be set (DDMMYYYY)
//   - UBA: Bvn must be set
//   - GTB / First Bank: RedirectUrl must be set
type AccountPayment struct {
	PublicKey     string `json:"publicKey" validate:"required"`
	AccountNumber string `json:"accountNumber" validate:"required,numeric,len=10"`
	BankCode      string `json:"bankCode" validate:"required"`
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

	DateOfBirth string `json:"dateOfBirth"`
	Bvn         string `json:"bvn"`
	RedirectUrl string `json:"redirectUrl"`
}

// ToEncryptPayload builds the ordered field set that gets JSON-serialized and
// encrypted, mirroring the documented wire layout.
func (r *AccountPayment) ToEncryptPayload() *encryption.Payload {
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
		Set("accountNumber", r.AccountNumber).
		Set("bankCode", r.BankCode).
		Set("amount", r.Amount).
		Set("email", r.Email).
		Set("transactionId", r.TransactionID).
		Set("currency", currency).
		Set("country", country).
		Set("paymentType", string(constvars.PaymentTypeAccount))

	payload.SetNonEmpty("phoneNumber", r.PhoneNumber).
		SetNonEmpty("firstName", r.FirstName).
		SetNonEmpty("lastName", r.LastName).
		SetNonEmpty("ip", r.IP).
		SetNonEmpty("deviceFingerPrint", r.DeviceFingerPrint).
		SetNonEmpty("dateOfBirth", r.DateOfBirth).
		SetNonEmpty("bvn", r.Bvn).
		SetNonEmpty("redirectUrl", r.RedirectUrl)

	return payload
}
