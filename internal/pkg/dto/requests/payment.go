package requests

import "xpresspay-sdk/internal/pkg/constvars"

// PaymentEnvelope is the outer cleartext JSON body for encrypted payment
// initiations. Request holds the Base64 ciphertext produced by the
// encryption package; Alg is the fixed algorithm tag the gateway expects.
type PaymentEnvelope struct {
	PublicKey   string `json:"publicKey"`
	Request     string `json:"request"`
	Alg         string `json:"alg"`
	PaymentType string `json:"paymentType"`
}

// OtpValidation submits the OTP received by the customer for a card or
// account payment. The gateway keys this call by transactionReference.
type OtpValidation struct {
	PublicKey     string                         `json:"publicKey" validate:"required"`
	TransactionID string                         `json:"transactionId" validate:"required"`
	Otp           string                         `json:"otp" validate:"required,numeric"`
	PaymentType   constvars.XpresspayPaymentType `json:"paymentType" validate:"required,oneof=CARD ACCOUNT"`
}

func (r *OtpValidation) ToBody() *OtpValidationBody {
	return &OtpValidationBody{
		PublicKey:            r.PublicKey,
		TransactionReference: r.TransactionID,
		Otp:                  r.Otp,
		PaymentType:          string(r.PaymentType),
	}
}

type OtpValidationBody struct {
	PublicKey            string `json:"publicKey"`
	TransactionReference string `json:"transactionReference"`
	Otp                  string `json:"otp"`
	PaymentType          string `json:"paymentType"`
}

// PaymentQuery checks the final status of any payment. Always verify the
// queried amount against the order total before delivering value.
type PaymentQuery struct {
	PublicKey     string                         `json:"publicKey" validate:"required"`
	TransactionID string                         `json:"transactionId" validate:"required"`
	PaymentType   constvars.XpresspayPaymentType `json:"paymentType" validate:"required,oneof=CARD ACCOUNT QR USSD WALLET"`
}
