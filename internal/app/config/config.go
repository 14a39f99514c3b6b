package config

import (
	"strings"

	"smartrx-client/internal/pkg/exceptions"
	"smartrx-client/internal/pkg/utils"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() (*DriverConfig, error) {
	driverConfig := &DriverConfig{}
	err := envconfig.Process("", driverConfig)
	if err != nil {
		return nil, exceptions.ErrLoadConfig(err)
	}

	err = utils.ValidateStruct(driverConfig)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}
	return driverConfig, nil
}

func NewInternalConfig() (*InternalConfig, error) {
	internalConfig := &InternalConfig{}
	err := envconfig.Process("", internalConfig)
	if err != nil {
		return nil, exceptions.ErrLoadConfig(err)
	}

	err = utils.ValidateStruct(internalConfig)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	internalConfig.App.APIBaseUrl = strings.TrimRight(internalConfig.App.APIBaseUrl, "/")
	return internalConfig, nil
}
