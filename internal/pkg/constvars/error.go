package constvars

// Validation messages, map it with respective tag field
var CustomValidationErrorMessages = map[string]string{
	"required":      "is required",
	"email":         "must be a valid email",
	"alphanum":      "must contain only alphanumeric characters",
	"min":           "must be at least %s characters long",
	"max":           "maximum at %s characters long",
	"oneof":         "must be one of: %s",
	"credit_card":   "must be a valid card number",
	"amount_string": "must be a positive amount string",
	"expiry_month":  "must be a two-digit month between 01 and 12",
	"expiry_year":   "must be a two-digit year",
}

var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
}

// Error codes carried on CustomError for machine-readable branching
const (
	ErrCodeEncryptionEmptySecret     = "ENCRYPTION_EMPTY_SECRET"
	ErrCodeEncryptionSecretTooShort  = "ENCRYPTION_SECRET_TOO_SHORT"
	ErrCodeEncryptionNotSerializable = "ENCRYPTION_NOT_SERIALIZABLE"
	ErrCodeEncryptionCipherFailure   = "ENCRYPTION_CIPHER_FAILURE"
	ErrCodeValidationFailed          = "VALIDATION_FAILED"
	ErrCodeAuthenticationFailed      = "AUTHENTICATION_FAILED"
	ErrCodeNotFound                  = "NOT_FOUND"
	ErrCodeProcessingError           = "PROCESSING_ERROR"
	ErrCodeNetworkError              = "NETWORK_ERROR"
	ErrCodeInternalError             = "INTERNAL_ERROR"
)

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the payment gateway is taking too long to respond"
	ErrClientNotAuthorized                 = "invalid or missing Xpresspay API key"
	ErrClientPaymentNotFound               = "the requested payment could not be found"
	ErrClientGatewayUnavailable            = "the payment gateway is currently unavailable"
	ErrClientInvalidSecretKey              = "the configured Xpresspay secret key is invalid"
)

// Error messages for developers
const (
	ErrDevValidationFailed      = "validation failed"
	ErrDevInvalidRequestPayload = "invalid request payload"
	ErrDevCannotMarshalJSON     = "cannot marshal JSON"
	ErrDevCannotParseJSON       = "cannot parse JSON"
	ErrDevCreateHTTPRequest     = "failed to create HTTP request"
	ErrDevSendHTTPRequest       = "failed to send HTTP request"
	ErrDevDecodeResponse        = "failed to decode %s response"
	ErrDevReadResponseBody      = "failed to read response body"
	ErrDevRateLimitWait         = "rate limiter interrupted while waiting for a slot"

	// Encryption messages
	ErrDevEncryptionEmptySecret    = "secret key must not be empty"
	ErrDevEncryptionSecretTooShort = "secret key is too short to derive an encryption key, ensure you are using the full key from your Xpresspay dashboard"
	ErrDevEncryptionSerialize      = "failed to serialize payload to JSON"
	ErrDevEncryptionCipher         = "encryption failed"
	ErrDevDecryptionCipher         = "decryption failed"
	ErrDevDecryptionBadPadding     = "ciphertext has invalid padding"
	ErrDevDecryptionBadLength      = "ciphertext length is not a multiple of the cipher block size"

	// Gateway messages
	ErrDevGatewayRejectedRequest = "the gateway rejected the request"
	ErrDevGatewayAuthFailed      = "API key authentication failed"
	ErrDevGatewayNotFound        = "resource not found on the gateway"
	ErrDevGatewayProcessing      = "server-side processing error on the gateway"
	ErrDevGatewayUnexpected      = "unexpected gateway response status"

	// Client construction messages
	ErrDevMissingPublicKey = "a valid Xpresspay public key starting with 'XPPUBK-' is required, pass it via config or the XPRESSPAY_PUBLIC_KEY environment variable"
	ErrDevMissingSecretKey = "a valid Xpresspay secret key starting with 'XPSECK-' is required, pass it via config or the XPRESSPAY_SECRET_KEY environment variable"
)

const ResponseUnknown = "UNKNOWN"
