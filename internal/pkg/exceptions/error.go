package exceptions

import (
	"errors"
	"fmt"
	"runtime"
	"xpresspay-sdk/internal/pkg/constvars"
)

type CustomError struct {
	StatusCode    int      `json:"status_code"`
	Code          string   `json:"code"`
	Success       bool     `json:"success"`
	ClientMessage string   `json:"message"`
	DevMessage    string   `json:"-"`
	Location      Location `json:"-"`
}

type Location struct {
	File         string
	Line         int
	FunctionName string
}

func (e *CustomError) Error() string {
	return fmt.Sprintf("%s (%s:%d %s)", e.DevMessage, e.Location.File, e.Location.Line, e.Location.FunctionName)
}

func BuildNewCustomError(err error, statusCode int, code, clientMessage, devMessage string) *CustomError {
	location := getLocation(3)
	devMsg := devMessage
	if err != nil {
		devMsg = fmt.Sprintf("%s: %s", devMessage, err.Error())
	}
	return &CustomError{
		StatusCode:    statusCode,
		Code:          code,
		ClientMessage: clientMessage,
		DevMessage:    devMsg,
		Location:      location,
	}
}

// ErrorCode extracts the machine-readable code from any error returned by
// the SDK, or constvars.ErrCodeInternalError when the error is not ours.
func ErrorCode(err error) string {
	var customErr *CustomError
	if errors.As(err, &customErr) {
		return customErr.Code
	}
	return constvars.ErrCodeInternalError
}

// IsEncryptionError reports whether err is any of the payload encryption
// failure variants.
func IsEncryptionError(err error) bool {
	switch ErrorCode(err) {
	case constvars.ErrCodeEncryptionEmptySecret,
		constvars.ErrCodeEncryptionSecretTooShort,
		constvars.ErrCodeEncryptionNotSerializable,
		constvars.ErrCodeEncryptionCipherFailure:
		return true
	}
	return false
}

func getLocation(skip int) Location {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return Location{
			File:         constvars.ResponseUnknown,
			Line:         0,
			FunctionName: constvars.ResponseUnknown,
		}
	}
	function := runtime.FuncForPC(pc).Name()
	return Location{
		File:         file,
		Line:         line,
		FunctionName: function,
	}
}
