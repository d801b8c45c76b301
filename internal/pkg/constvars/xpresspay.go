package constvars

const (
	XpresspayLiveBaseUrl    = "https://myxpresspay.com:6004"
	XpresspaySandboxBaseUrl = "https://pgsandbox.xpresspayments.com:6004"
)

const (
	XpresspayPublicKeyPrefix = "XPPUBK-"
	XpresspaySecretKeyPrefix = "XPSECK-"
)

// EncryptionAlg is the algorithm tag the gateway expects in the request envelope.
const EncryptionAlg = "3DES-24"

const (
	EndpointPayments             = "/v1/payments"
	EndpointPaymentsAuthenticate = "/v1/payments/authenticate"
	EndpointPaymentsValidate     = "/v1/payments/validate"
	EndpointBanks                = "/v1/banks"
	EndpointPaymentsQuery        = "/v1/payments/query"
)

// XpresspayPaymentType discriminates payment channels in envelopes and queries
type XpresspayPaymentType string

const (
	PaymentTypeCard    XpresspayPaymentType = "CARD"
	PaymentTypeAccount XpresspayPaymentType = "ACCOUNT"
	PaymentTypeQR      XpresspayPaymentType = "QR"
	PaymentTypeUSSD    XpresspayPaymentType = "USSD"
	PaymentTypeWallet  XpresspayPaymentType = "WALLET"
)

const (
	SuggestedAuthPin = "PIN"
	SuggestedAuthAvs = "AVS_VBVSECURECODE"
)

const (
	PaymentResponseCodeSuccessful       = "000"
	AuthenticateResponseCodeValidateOtp = "02"
)

const (
	DefaultCurrency = "NGN"
	DefaultCountry  = "NG"
)
