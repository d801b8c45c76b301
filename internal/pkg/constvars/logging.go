package constvars

type contextKey string

const CONTEXT_REQUEST_ID_KEY contextKey = "request_id"

const (
	LoggingRequestIDKey     = "request_id"
	LoggingOperationKey     = "operation"
	LoggingDurationKey      = "duration"
	LoggingSuccessKey       = "success"
	LoggingErrorCodeKey     = "error_code"
	LoggingErrorMessageKey  = "error_message"
	LoggingTransactionIDKey = "transaction_id"
	LoggingPaymentTypeKey   = "payment_type"
	LoggingMaskedCardKey    = "masked_card_number"
	LoggingHTTPStatusKey    = "http_status"
	LoggingEndpointKey      = "endpoint"
)
