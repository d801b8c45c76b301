package responses

// Bank is a supported bank with its routing code. The code is required when
// initiating an account payment.
type Bank struct {
	Name string                 `json:"name"`
	Code string                 `json:"code"`
	Raw  map[string]interface{} `json:"-"`
}

// GatewayError is the error body shape the gateway returns on non-2xx
// statuses. Field names vary per endpoint generation, so both message keys
// are captured.
type GatewayError struct {
	ResponseMessage string `json:"responseMessage"`
	Message         string `json:"message"`
	Error           string `json:"error"`
}

// BestMessage picks the most specific message the body carried.
func (e *GatewayError) BestMessage(fallback string) string {
	if e.ResponseMessage != "" {
		return e.ResponseMessage
	}
	if e.Message != "" {
		return e.Message
	}
	if fallback != "" {
		return fallback
	}
	return "unknown error"
}
