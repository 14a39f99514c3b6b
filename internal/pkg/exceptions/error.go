package exceptions

import (
	"errors"
	"fmt"
	"runtime"

	"smartrx-client/internal/pkg/constvars"
)

type CustomError struct {
	StatusCode    int      `json:"status_code"`
	Success       bool     `json:"success"`
	ClientMessage string   `json:"message"`
	DevMessage    string   `json:"-"`
	Location      Location `json:"-"`
	Err           error    `json:"-"`
}

type Location struct {
	File         string
	Line         int
	FunctionName string
}

func (e *CustomError) Error() string {
	return fmt.Sprintf("%s (%s:%d %s)", e.DevMessage, e.Location.File, e.Location.Line, e.Location.FunctionName)
}

func (e *CustomError) Unwrap() error {
	return e.Err
}

// BuildNewCustomError records the location of the code that called the
// error constructor, two frames above this function.
func BuildNewCustomError(err error, statusCode int, clientMessage, devMessage string) *CustomError {
	customError := &CustomError{
		StatusCode:    statusCode,
		ClientMessage: clientMessage,
		DevMessage:    devMessage,
		Location:      getLocation(3),
		Err:           err,
	}
	if err != nil {
		customError.DevMessage = fmt.Sprintf("%s: %s", devMessage, err.Error())
	}
	return customError
}

// StatusCode returns the status carried by the first CustomError in err's
// chain, or 0.
func StatusCode(err error) int {
	var customError *CustomError
	if errors.As(err, &customError) {
		return customError.StatusCode
	}
	return 0
}

// Message returns the client facing message of err.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var customError *CustomError
	if errors.As(err, &customError) {
		return customError.ClientMessage
	}
	return err.Error()
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
