package config

type (
	InternalConfig struct {
		App       App
		Xpresspay Xpresspay
	}

	DriverConfig struct {
		Logger Logger
	}

	App struct {
		Env      string
		Timezone string
	}

	Xpresspay struct {
		PublicKey               string
		SecretKey               string
		Sandbox                 bool
		RequestTimeoutInSeconds int
		MaxRequestsPerSecond    int
		RequestBurst            int
		TransactionIDPrefix     string
	}

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
)
