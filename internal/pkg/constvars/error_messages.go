package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":    "is required",
	"url":         "must be a valid URL",
	"startswith":  "must start with %s",
	"oneof":       "must be one of [%s]",
	"min":         "must be at least %s",
	"gte":         "must be greater than or equal to %s",
	"http_method": "must be a supported HTTP method",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"startswith": true,
	"oneof":      true,
	"min":        true,
	"gte":        true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerUnavailable             = "the SmartRx service could not be reached"
	ErrClientFailedToDeletePrescription    = "failed to delete prescription from backend"
	ErrClientFailedToSaveUserData          = "failed to save user data"
)

// Error messages for developers
const (
	ErrDevInvalidInput                = "invalid input"
	ErrDevValidationFailed            = "validation failed"
	ErrDevCannotMarshalJSON           = "cannot convert struct or other data types to JSON"
	ErrDevCreateHTTPRequest           = "failed to create HTTP request"
	ErrDevSendHTTPRequest             = "failed to send HTTP request"
	ErrDevReadResponseBody            = "failed to read response body"
	ErrDevAPIUnexpectedStatus         = "API error: %d"
	ErrDevAPIGetResource              = "failed to get %s from SmartRx API"
	ErrDevAPISaveResource             = "failed to save %s to SmartRx API"
	ErrDevAPIDeleteResource           = "failed to delete %s from SmartRx API"
	ErrDevAPIDecodeResourceResponse   = "failed to decode %s response from SmartRx API"
	ErrDevStoreNotInContext           = "app store must be attached to the context before use"
	ErrDevStoreInitialDataFetchFailed = "error fetching initial data"
	ErrDevConfigLoad                  = "failed to load configuration from environment"
	ErrDevURLParamIDValidationFailed  = "parameter %s validation failed"
)

const (
	ResponseUnknown = "unknown"
)
