package exceptions

import (
	"fmt"
	"xpresspay-sdk/internal/pkg/constvars"
)

var (
	// Encryption
	ErrEncryptionEmptySecret = func() *CustomError {
		return BuildNewCustomError(nil, constvars.StatusUnprocessableEntity, constvars.ErrCodeEncryptionEmptySecret, constvars.ErrClientInvalidSecretKey, constvars.ErrDevEncryptionEmptySecret)
	}
	ErrEncryptionSecretTooShort = func() *CustomError {
		return BuildNewCustomError(nil, constvars.StatusUnprocessableEntity, constvars.ErrCodeEncryptionSecretTooShort, constvars.ErrClientInvalidSecretKey, constvars.ErrDevEncryptionSecretTooShort)
	}
	ErrEncryptionNotSerializable = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnprocessableEntity, constvars.ErrCodeEncryptionNotSerializable, constvars.ErrClientCannotProcessRequest, constvars.ErrDevEncryptionSerialize)
	}
	ErrEncryptionCipherFailure = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrCodeEncryptionCipherFailure, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevEncryptionCipher)
	}
	ErrDecryptionCipherFailure = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrCodeEncryptionCipherFailure, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDecryptionCipher)
	}

	// Validation
	ErrInputValidation = func(err error) *CustomError {
		devMessage := fmt.Sprintf("%s: %s", constvars.ErrDevValidationFailed, FormatAllValidationErrors(err))
		return BuildNewCustomError(nil, constvars.StatusBadRequest, constvars.ErrCodeValidationFailed, FormatFirstValidationError(err), devMessage)
	}

	// HTTP plumbing
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrCodeInternalError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotMarshalJSON)
	}
	ErrCreateHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrCodeInternalError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCreateHTTPRequest)
	}
	ErrSendHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusServiceUnavailable, constvars.ErrCodeNetworkError, constvars.ErrClientGatewayUnavailable, constvars.ErrDevSendHTTPRequest)
	}
	ErrRequestTimeout = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusGatewayTimeout, constvars.ErrCodeNetworkError, constvars.ErrClientServerLongRespond, constvars.ErrDevSendHTTPRequest)
	}
	ErrDecodeResponse = func(err error, resource string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrCodeProcessingError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevDecodeResponse, resource))
	}
	ErrRateLimitWait = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusRequestTimeout, constvars.ErrCodeNetworkError, constvars.ErrClientServerLongRespond, constvars.ErrDevRateLimitWait)
	}

	// Gateway status mapping
	ErrGatewayValidation = func(message string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadRequest, constvars.ErrCodeValidationFailed, message, constvars.ErrDevGatewayRejectedRequest)
	}
	ErrGatewayAuthentication = func(message string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusUnauthorized, constvars.ErrCodeAuthenticationFailed, constvars.ErrClientNotAuthorized, fmt.Sprintf("%s: %s", constvars.ErrDevGatewayAuthFailed, message))
	}
	ErrGatewayNotFound = func(message string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusNotFound, constvars.ErrCodeNotFound, constvars.ErrClientPaymentNotFound, fmt.Sprintf("%s: %s", constvars.ErrDevGatewayNotFound, message))
	}
	ErrGatewayProcessing = func(statusCode int, message string) *CustomError {
		return BuildNewCustomError(nil, statusCode, constvars.ErrCodeProcessingError, constvars.ErrClientGatewayUnavailable, fmt.Sprintf("%s: %s", constvars.ErrDevGatewayProcessing, message))
	}
	ErrGatewayUnexpectedStatus = func(statusCode int, message string) *CustomError {
		return BuildNewCustomError(nil, statusCode, constvars.ErrCodeProcessingError, constvars.ErrClientCannotProcessRequest, fmt.Sprintf("%s %d: %s", constvars.ErrDevGatewayUnexpected, statusCode, message))
	}

	// Client construction
	ErrMissingPublicKey = func() *CustomError {
		return BuildNewCustomError(nil, constvars.StatusUnprocessableEntity, constvars.ErrCodeValidationFailed, constvars.ErrClientNotAuthorized, constvars.ErrDevMissingPublicKey)
	}
	ErrMissingSecretKey = func() *CustomError {
		return BuildNewCustomError(nil, constvars.StatusUnprocessableEntity, constvars.ErrCodeValidationFailed, constvars.ErrClientInvalidSecretKey, constvars.ErrDevMissingSecretKey)
	}
)
