package command

import (
	"io"

	"smartrx-client/internal/app/config"
	"smartrx-client/internal/app/drivers/httpclient"
	"smartrx-client/internal/app/drivers/logger"
	"smartrx-client/internal/app/services/medications"
	"smartrx-client/internal/app/services/prescriptions"
	"smartrx-client/internal/app/services/profiles"
	"smartrx-client/internal/app/services/reminders"
	"smartrx-client/internal/app/services/shared/apiclient"
	"smartrx-client/internal/app/services/store"
	"smartrx-client/internal/pkg/exceptions"

	"github.com/sirupsen/logrus"
)

type application struct {
	Bootstrap *config.Bootstrap
	Store     *store.Store
	Console   *logrus.Logger
}

func (a *application) start(out io.Writer) error {
	driverConfig, err := config.NewDriverConfig()
	if err != nil {
		return err
	}
	internalConfig, err := config.NewInternalConfig()
	if err != nil {
		return err
	}

	log, err := logger.NewZapLogger(driverConfig, internalConfig)
	if err != nil {
		return exceptions.ErrLoadConfig(err)
	}

	a.Bootstrap = &config.Bootstrap{
		HTTPClient:     httpclient.NewHTTPClient(internalConfig),
		Logger:         log,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}
	a.Console = logger.NewLogrusLogger(internalConfig, out)
	a.Store = bootstrapingTheApp(a.Bootstrap)
	return nil
}

func (a *application) stop() error {
	if a.Bootstrap == nil {
		return nil
	}
	return a.Bootstrap.Shutdown()
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) *store.Store {
	// SmartRx API
	apiClient := apiclient.NewAPIClient(
		bootstrap.InternalConfig.App.APIBaseUrl,
		bootstrap.InternalConfig.HTTPClient.UserAgent,
		bootstrap.HTTPClient,
		bootstrap.Logger,
	)

	// Resources
	prescriptionClient := prescriptions.NewPrescriptionClient(apiClient, bootstrap.Logger)
	medicationClient := medications.NewMedicationClient(apiClient, bootstrap.Logger)
	reminderClient := reminders.NewReminderClient(apiClient, bootstrap.Logger)
	profileClient := profiles.NewProfileClient(apiClient, bootstrap.Logger)

	return store.NewStore(
		apiClient,
		prescriptionClient,
		medicationClient,
		reminderClient,
		profileClient,
		bootstrap.Logger,
	)
}
