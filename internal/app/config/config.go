package config

import (
	"xpresspay-sdk/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "info"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:      utils.GetEnvString("APP_ENV", "development"),
			Timezone: utils.GetEnvString("APP_TIMEZONE", "Africa/Lagos"),
		},
		Xpresspay: Xpresspay{
			PublicKey:               utils.GetEnvString("XPRESSPAY_PUBLIC_KEY", ""),
			SecretKey:               utils.GetEnvString("XPRESSPAY_SECRET_KEY", ""),
			Sandbox:                 utils.GetEnvBool("XPRESSPAY_SANDBOX", true),
			RequestTimeoutInSeconds: utils.GetEnvInt("XPRESSPAY_REQUEST_TIMEOUT_IN_SECONDS", 30),
			MaxRequestsPerSecond:    utils.GetEnvInt("XPRESSPAY_MAX_REQUESTS_PER_SECOND", 10),
			RequestBurst:            utils.GetEnvInt("XPRESSPAY_REQUEST_BURST", 5),
			TransactionIDPrefix:     utils.GetEnvString("XPRESSPAY_TRANSACTION_ID_PREFIX", "ORDER"),
		},
	}
}
