package exceptions

import (
	"errors"
	"fmt"

	"smartrx-client/internal/pkg/constvars"
)

var (
	ErrStoreNotInContext = errors.New(constvars.ErrDevStoreNotInContext)
)

var (
	ErrURLParamIDValidation = func(err error, paramName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevURLParamIDValidationFailed, paramName))
	}
	ErrInputValidation = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, FormatFirstValidationError(err), constvars.ErrDevValidationFailed)
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotMarshalJSON)
	}
	ErrLoadConfig = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevConfigLoad)
	}

	// HTTP
	ErrCreateHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCreateHTTPRequest)
	}
	ErrSendHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientServerUnavailable, constvars.ErrDevSendHTTPRequest)
	}
	ErrReadResponseBody = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientServerUnavailable, constvars.ErrDevReadResponseBody)
	}
	ErrUnexpectedStatus = func(statusCode int) *CustomError {
		message := fmt.Sprintf(constvars.ErrDevAPIUnexpectedStatus, statusCode)
		return BuildNewCustomError(nil, statusCode, message, message)
	}

	// SmartRx API
	ErrGetResource = func(err error, resource string) *CustomError {
		return BuildNewCustomError(err, StatusCode(err), constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevAPIGetResource, resource))
	}
	ErrSaveResource = func(err error, resource string) *CustomError {
		return BuildNewCustomError(err, StatusCode(err), constvars.ErrClientFailedToSaveUserData, fmt.Sprintf(constvars.ErrDevAPISaveResource, resource))
	}
	ErrDeletePrescription = func(statusCode int, message string) *CustomError {
		if message == "" {
			message = constvars.ErrClientFailedToDeletePrescription
		}
		return BuildNewCustomError(errors.New(message), statusCode, message, fmt.Sprintf(constvars.ErrDevAPIDeleteResource, constvars.ResourceNamePrescription))
	}
	ErrDecodeResponse = func(err error, resource string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevAPIDecodeResourceResponse, resource))
	}
)
