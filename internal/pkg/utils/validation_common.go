package utils

import (
	"errors"
	"strings"
)

// ValidateUrlParamID rejects a blank identifier, which would turn an item
// path into its collection path.
func ValidateUrlParamID(param string) error {
	if strings.TrimSpace(param) == "" {
		return errors.New("parameter is missing from url path")
	}
	if strings.Contains(param, "/") {
		return errors.New("parameter must be a single path segment")
	}
	return nil
}
