package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY ContextKey = "request_id"
	CONTEXT_APP_STORE_KEY  ContextKey = "app_store"
)

const (
	REQUEST_ID_PREFIX = "SMARTRX_CLI_"
)

const (
	AppName        = "smartrx"
	AppUserAgent   = "smartrx-client/1.0"
	EnvProduction  = "production"
	EnvDevelopment = "development"
)
