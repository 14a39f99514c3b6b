package config

type (
	DriverConfig struct {
		Logger Logger `envconfig:"LOGGER"`
	}

	Logger struct {
		Level               string `envconfig:"LEVEL" default:"debug" validate:"oneof=debug info warn error"`
		OutputFileName      string `envconfig:"OUTPUT_FILENAME" default:"logger.log"`
		OutputErrorFileName string `envconfig:"OUTPUT_ERROR_FILENAME" default:"logger_error.log"`
	}
)

type InternalConfig struct {
	App        App        `envconfig:"APP"`
	HTTPClient HTTPClient `envconfig:"HTTP_CLIENT"`
}

type App struct {
	Env        string `envconfig:"ENV" default:"development"`
	Version    string `envconfig:"VERSION" default:"v1.0"`
	APIBaseUrl string `envconfig:"API_BASE_URL" default:"https://smartrx-hws1.onrender.com" validate:"required,url"`
	// MaxRequestsPerSecond throttles outgoing calls; 0 disables the throttle
	MaxRequestsPerSecond int `envconfig:"MAX_REQUESTS_PER_SECOND" default:"0" validate:"gte=0"`
}

type HTTPClient struct {
	// TimeoutInSeconds of 0 means requests wait until the context is done
	TimeoutInSeconds int    `envconfig:"TIMEOUT_IN_SECONDS" default:"0" validate:"gte=0"`
	UserAgent        string `envconfig:"USER_AGENT" default:"smartrx-client/1.0"`
}
