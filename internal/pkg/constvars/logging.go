package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingOperationKey      = "operation"
	LoggingDurationKey       = "duration"
	LoggingSuccessKey        = "success"
	LoggingEndpointKey       = "endpoint"
	LoggingMethodKey         = "method"
	LoggingStatusCodeKey     = "status_code"
	LoggingResourceKey       = "resource"
	LoggingResponseLengthKey = "response_length"
	LoggingPrescriptionIDKey = "prescription_id"
	LoggingProfileNameKey    = "profile_name"
)
